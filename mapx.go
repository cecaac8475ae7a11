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
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Mapx is a derived projection context: one resolved projection variant
// plus the rotation, origin translation and bounds shared by every
// variant. It is immutable once constructed; Forward, Inverse and
// Within may be called concurrently.
type Mapx struct {
	params  Params
	variant Variant
	*derived
}

// derived holds everything computed from the resolved parameters. The
// whole record is replaced atomically by Reinit; nothing here is
// user-set directly.
type derived struct {
	// Ellipsoid.
	a    float64 // equatorial radius, physical units
	e    float64
	e2   float64
	e4   float64
	e6   float64
	e8   float64
	flat float64 // flattening
	rg   float64 // scaled radius: a / map scale

	// Reference points in radians. hasLat1 distinguishes an explicit
	// second reference from the 999 sentinel.
	lat0, lon0 float64
	lat1, lon1 float64
	hasLat1    bool
	hasLon1    bool

	k0     float64 // center scale factor
	maxErr float64 // round-trip tolerance, radius units; 0 disables
	scale  float64

	falseEast  float64
	falseNorth float64

	// Rotation matrix and origin translation.
	cosR, sinR float64
	u0, v0     float64

	// Normalized bounds, degrees.
	south, north float64
	west, east   float64
	straddle     bool

	proj projection
	log  logrus.FieldLogger
}

// New resolves the projection name, applies family defaults, and
// derives a ready-to-use Mapx. Construction either succeeds completely
// or returns a nil Mapx with one of the construction errors
// (*ParameterError, *UnknownProjectionError).
func New(p Params) (*Mapx, error) {
	v, err := resolveProjection(p.Projection, p.Log)
	if err != nil {
		return nil, err
	}
	rp, err := resolveParams(p, v)
	if err != nil {
		return nil, err
	}
	d, err := derive(rp, v)
	if err != nil {
		return nil, err
	}
	return &Mapx{params: rp, variant: v, derived: d}, nil
}

// NewFromLabels builds a Mapx from the keyword/value fields of a map
// label, as produced by the external label parser.
func NewFromLabels(labels map[string]string) (*Mapx, error) {
	p, err := ParamsFromLabels(labels)
	if err != nil {
		return nil, err
	}
	return New(p)
}

// Params returns the resolved parameter record, with all family
// defaults filled in.
func (m *Mapx) Params() Params { return m.params }

// Variant returns the resolved projection variant.
func (m *Mapx) Variant() Variant { return m.variant }

// Reinit re-derives the context from a new parameter record, for
// example to re-center the map origin. On success all derived state is
// replaced at once; on failure the previous state stays usable. Reinit
// must not run concurrently with transforms on the same Mapx.
func (m *Mapx) Reinit(p Params) error {
	v, err := resolveProjection(p.Projection, p.Log)
	if err != nil {
		return err
	}
	rp, err := resolveParams(p, v)
	if err != nil {
		return err
	}
	d, err := derive(rp, v)
	if err != nil {
		return err
	}
	m.params, m.variant, m.derived = rp, v, d
	return nil
}

// derive computes the derived constants and runs the variant
// initializer. Any failure aborts with no partially derived state.
func derive(p Params, v Variant) (*derived, error) {
	d := &derived{log: p.Log}

	var err error
	d.south, d.north, d.west, d.east, d.straddle, err = deriveBounds(p)
	if err != nil {
		return nil, err
	}

	d.a = p.EquatorialRadius
	d.e = p.Eccentricity
	d.e2 = p.EccentricitySquared
	d.e4 = d.e2 * d.e2
	d.e6 = d.e4 * d.e2
	d.e8 = d.e4 * d.e4
	d.flat = 1 - math.Sqrt(1-d.e2)
	d.scale = p.Scale
	d.rg = p.EquatorialRadius / p.Scale

	d.lat0 = radians(p.Lat0)
	d.lon0 = radians(normlon(p.Lon0))
	d.hasLat1 = isSet(p.Lat1)
	d.hasLon1 = isSet(p.Lon1)
	if d.hasLat1 {
		d.lat1 = radians(p.Lat1)
	}
	if d.hasLon1 {
		d.lon1 = radians(normlon(p.Lon1))
	}
	d.k0 = p.CenterScale
	d.maxErr = p.MaxError
	d.falseEast = p.FalseEasting
	d.falseNorth = p.FalseNorthing

	d.proj = newProjection(v)
	if err := d.proj.init(d, &p); err != nil {
		return nil, err
	}

	sinR, cosR := math.Sincos(radians(p.Rotation))
	d.cosR, d.sinR = cosR, sinR

	// Origin translation: explicit origin coordinates are used
	// directly; otherwise the origin point is forward-projected through
	// the un-translated variant and rotated into the translation terms.
	if isSet(p.OriginX) || isSet(p.OriginY) {
		if !isSet(p.OriginX) || !isSet(p.OriginY) {
			return nil, parameterErrorf("origin x and y must be given together")
		}
		d.u0, d.v0 = p.OriginX, p.OriginY
	} else {
		olat := orDefault(p.OriginLat, p.Lat0)
		olon := orDefault(p.OriginLon, p.Lon0)
		ou, ov, err := d.proj.forward(radians(olat), radians(normlon(olon)))
		if err != nil {
			return nil, parameterErrorf("origin %g, %g cannot be projected: %v", olat, olon, err)
		}
		rot := mat.NewDense(2, 2, []float64{cosR, sinR, -sinR, cosR})
		var uv mat.VecDense
		uv.MulVec(rot, mat.NewVecDense(2, []float64{ou, ov}))
		d.u0, d.v0 = uv.AtVec(0), uv.AtVec(1)
	}
	return d, nil
}

// Forward converts geographic coordinates in decimal degrees to map
// coordinates. On failure x and y are NaN and the error is one of
// *DomainError, *ConvergenceError or *AccuracyError.
func (m *Mapx) Forward(lat, lon float64) (x, y float64, err error) {
	d := m.derived
	x, y, err = d.forwardRaw(lat, lon)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	if d.maxErr > 0 {
		// A round trip that cannot be measured at all is treated the
		// same as one that measures too large.
		lat2, lon2, err := d.inverseRaw(x, y)
		if err != nil {
			return math.NaN(), math.NaN(), &AccuracyError{Distance: math.NaN(), Tolerance: d.maxErr}
		}
		dist := geodesic(d.a, d.flat,
			radians(lat), radians(lon), radians(lat2), radians(lon2))
		if !(dist <= d.maxErr) { // also catches NaN
			return math.NaN(), math.NaN(), &AccuracyError{Distance: dist, Tolerance: d.maxErr}
		}
	}
	return x, y, nil
}

// Inverse converts map coordinates to geographic coordinates in decimal
// degrees. On failure lat and lon are NaN and the error is one of
// *DomainError, *ConvergenceError or *AccuracyError.
func (m *Mapx) Inverse(x, y float64) (lat, lon float64, err error) {
	d := m.derived
	lat, lon, err = d.inverseRaw(x, y)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	if d.maxErr > 0 {
		x2, y2, err := d.forwardRaw(lat, lon)
		if err != nil {
			return math.NaN(), math.NaN(), &AccuracyError{Distance: math.NaN(), Tolerance: d.maxErr}
		}
		// Planar distance in map units, rescaled to radius units to
		// compare against the same tolerance as Forward.
		dist := math.Hypot(x-x2, y-y2) * d.scale
		if !(dist <= d.maxErr) {
			return math.NaN(), math.NaN(), &AccuracyError{Distance: dist, Tolerance: d.maxErr}
		}
	}
	return lat, lon, nil
}

func (d *derived) forwardRaw(lat, lon float64) (x, y float64, err error) {
	if math.Abs(lat) > 90+eps {
		return math.NaN(), math.NaN(),
			&DomainError{Proj: "forward", Detail: "latitude outside [-90, 90]"}
	}
	u, v, err := d.proj.forward(radians(lat), radians(lon))
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	x = d.cosR*u + d.sinR*v - d.u0 + d.falseEast
	y = -d.sinR*u + d.cosR*v - d.v0 + d.falseNorth
	return x, y, nil
}

func (d *derived) inverseRaw(x, y float64) (lat, lon float64, err error) {
	ru := x - d.falseEast + d.u0
	rv := y - d.falseNorth + d.v0
	u := d.cosR*ru - d.sinR*rv
	v := d.sinR*ru + d.cosR*rv
	latr, lonr, err := d.proj.inverse(u, v)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	return degrees(latr), degrees(adjlon(lonr)), nil
}
