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

import "math"

// orthographic is the spherical orthographic projection: the view of
// the globe from infinity. Only the hemisphere centered on the
// reference point is in the projection's domain.
type orthographic struct {
	d                *derived
	sinLat0, cosLat0 float64
}

func (p *orthographic) init(d *derived, _ *Params) error {
	p.d = d
	p.sinLat0, p.cosLat0 = math.Sincos(d.lat0)
	return nil
}

func (p *orthographic) forward(lat, lon float64) (u, v float64, err error) {
	sinlat, coslat := math.Sincos(lat)
	sindl, cosdl := math.Sincos(adjlon(lon - p.d.lon0))
	cosc := p.sinLat0*sinlat + p.cosLat0*coslat*cosdl
	if cosc < -eps {
		return 0, 0, &DomainError{Proj: "Orthographic", Detail: "point on the far hemisphere"}
	}
	u = p.d.rg * coslat * sindl
	v = p.d.rg * (p.cosLat0*sinlat - p.sinLat0*coslat*cosdl)
	return u, v, nil
}

func (p *orthographic) inverse(u, v float64) (lat, lon float64, err error) {
	rho := math.Hypot(u, v) / p.d.rg
	if rho > 1+eps {
		return 0, 0, &DomainError{Proj: "Orthographic", Detail: "point outside the map circle"}
	}
	if rho < eps {
		return p.d.lat0, p.d.lon0, nil
	}
	c := math.Asin(clampAbs(rho, 1))
	sinc, cosc := math.Sincos(c)
	xs := u / p.d.rg
	ys := v / p.d.rg
	lat = math.Asin(clampAbs(cosc*p.sinLat0+ys*sinc*p.cosLat0/rho, 1))
	lon = p.d.lon0 + math.Atan2(xs*sinc, rho*p.cosLat0*cosc-ys*p.sinLat0*sinc)
	return lat, lon, nil
}
