/*
Copyright (C) 2025 Regents of the University of Wisconsin-Madison.
This file is part of the Polar2Grid mapping toolkit.

Polar2Grid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Polar2Grid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Polar2Grid.  If not, see <http://www.gnu.org/licenses/>.
*/

package mapx

import (
	"fmt"

	"github.com/ctessum/geom"
)

// pointFunc transforms one vertex; geometries carry X=longitude,
// Y=latitude on the geographic side.
type pointFunc func(geom.Point) (geom.Point, error)

// Project converts a geographic geometry, with X as longitude and Y as
// latitude in degrees, to map coordinates. The result has the same
// shape as the input. Projection stops at the first vertex that fails.
func (m *Mapx) Project(g geom.Geom) (geom.Geom, error) {
	return m.transformGeom(g, func(pt geom.Point) (geom.Point, error) {
		x, y, err := m.Forward(pt.Y, pt.X)
		if err != nil {
			return geom.Point{}, err
		}
		return geom.Point{X: x, Y: y}, nil
	})
}

// Unproject converts a map-coordinate geometry back to geographic
// coordinates, with X as longitude and Y as latitude in degrees.
func (m *Mapx) Unproject(g geom.Geom) (geom.Geom, error) {
	return m.transformGeom(g, func(pt geom.Point) (geom.Point, error) {
		lat, lon, err := m.Inverse(pt.X, pt.Y)
		if err != nil {
			return geom.Point{}, err
		}
		return geom.Point{X: lon, Y: lat}, nil
	})
}

func (m *Mapx) transformGeom(g geom.Geom, f pointFunc) (geom.Geom, error) {
	switch g := g.(type) {
	case geom.Point:
		return f(g)
	case geom.MultiPoint:
		o := make(geom.MultiPoint, len(g))
		for i, pt := range g {
			p, err := f(pt)
			if err != nil {
				return nil, err
			}
			o[i] = p
		}
		return o, nil
	case geom.LineString:
		o, err := m.transformPoints(g, f)
		return geom.LineString(o), err
	case geom.MultiLineString:
		o := make(geom.MultiLineString, len(g))
		for i, ls := range g {
			pts, err := m.transformPoints(ls, f)
			if err != nil {
				return nil, err
			}
			o[i] = geom.LineString(pts)
		}
		return o, nil
	case geom.Polygon:
		o, err := m.transformRings(g, f)
		return geom.Polygon(o), err
	case geom.MultiPolygon:
		o := make(geom.MultiPolygon, len(g))
		for i, poly := range g {
			rings, err := m.transformRings(poly, f)
			if err != nil {
				return nil, err
			}
			o[i] = geom.Polygon(rings)
		}
		return o, nil
	case geom.GeometryCollection:
		o := make(geom.GeometryCollection, len(g))
		for i, gg := range g {
			var err error
			if o[i], err = m.transformGeom(gg, f); err != nil {
				return nil, err
			}
		}
		return o, nil
	default:
		return nil, fmt.Errorf("mapx: unsupported geometry type %T", g)
	}
}

func (m *Mapx) transformPoints(pts []geom.Point, f pointFunc) ([]geom.Point, error) {
	o := make([]geom.Point, len(pts))
	for i, pt := range pts {
		p, err := f(pt)
		if err != nil {
			return nil, err
		}
		o[i] = p
	}
	return o, nil
}

func (m *Mapx) transformRings(rings []geom.Path, f pointFunc) ([]geom.Path, error) {
	o := make([]geom.Path, len(rings))
	for i, ring := range rings {
		r, err := m.transformPoints(ring, f)
		if err != nil {
			return nil, err
		}
		o[i] = geom.Path(r)
	}
	return o, nil
}
