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

// polarStereographic is the spherical polar stereographic projection.
// The reference latitude must be one of the poles; the second reference
// latitude, when given, is the parallel of true scale.
type polarStereographic struct {
	d     *derived
	north bool
	f     float64 // radial factor: rg * k0 * (1 + sin(true-scale lat))
}

func (p *polarStereographic) init(d *derived, _ *Params) error {
	if math.Abs(d.lat0) < halfPi-eps {
		return parameterErrorf("Polar Stereographic requires a polar reference latitude, got %g",
			degrees(d.lat0))
	}
	p.d = d
	p.north = d.lat0 > 0
	trueScale := halfPi
	if d.hasLat1 {
		trueScale = math.Abs(d.lat1)
	}
	p.f = d.rg * d.k0 * (1 + math.Sin(trueScale))
	return nil
}

func (p *polarStereographic) forward(lat, lon float64) (u, v float64, err error) {
	s := 1.0
	if !p.north {
		s = -1
	}
	if s*lat < -(halfPi - eps) {
		return 0, 0, &DomainError{Proj: "Polar Stereographic", Detail: "opposite pole maps to infinity"}
	}
	rho := p.f * math.Tan(math.Pi/4-0.5*s*lat)
	sindl, cosdl := math.Sincos(adjlon(lon - p.d.lon0))
	return rho * sindl, -s * rho * cosdl, nil
}

func (p *polarStereographic) inverse(u, v float64) (lat, lon float64, err error) {
	s := 1.0
	if !p.north {
		s = -1
	}
	rho := math.Hypot(u, v)
	lat = s * (halfPi - 2*math.Atan(rho/p.f))
	if rho < eps {
		return lat, p.d.lon0, nil
	}
	return lat, p.d.lon0 + math.Atan2(u, -s*v), nil
}

// polarStereographicEllipsoid is the ellipsoidal polar stereographic
// projection (Snyder section 21). The inverse recovers latitude from
// the conformal quantity by iteration.
type polarStereographicEllipsoid struct {
	d     *derived
	north bool
	f     float64 // rho = f * tsfn(lat)
}

func (p *polarStereographicEllipsoid) init(d *derived, _ *Params) error {
	if math.Abs(d.lat0) < halfPi-eps {
		return parameterErrorf("Polar Stereographic (Ellipsoid) requires a polar reference latitude, got %g",
			degrees(d.lat0))
	}
	p.d = d
	p.north = d.lat0 > 0
	if d.hasLat1 && math.Abs(d.lat1) < halfPi-eps {
		trueScale := math.Abs(d.lat1)
		sinc, cosc := math.Sincos(trueScale)
		p.f = d.rg * d.k0 * msfn(sinc, cosc, d.e2) / tsfn(trueScale, sinc, d.e)
	} else {
		p.f = 2 * d.rg * d.k0 /
			math.Sqrt(math.Pow(1+d.e, 1+d.e)*math.Pow(1-d.e, 1-d.e))
	}
	return nil
}

func (p *polarStereographicEllipsoid) forward(lat, lon float64) (u, v float64, err error) {
	s := 1.0
	if !p.north {
		s = -1
	}
	if s*lat < -(halfPi - eps) {
		return 0, 0, &DomainError{Proj: "Polar Stereographic (Ellipsoid)", Detail: "opposite pole maps to infinity"}
	}
	rho := p.f * tsfn(s*lat, math.Sin(s*lat), p.d.e)
	sindl, cosdl := math.Sincos(adjlon(lon - p.d.lon0))
	return rho * sindl, -s * rho * cosdl, nil
}

func (p *polarStereographicEllipsoid) inverse(u, v float64) (lat, lon float64, err error) {
	s := 1.0
	if !p.north {
		s = -1
	}
	rho := math.Hypot(u, v)
	phi, err := phi2(rho/p.f, p.d.e, "Polar Stereographic (Ellipsoid)")
	if err != nil {
		return 0, 0, err
	}
	lat = s * phi
	if rho < eps {
		return lat, p.d.lon0, nil
	}
	return lat, p.d.lon0 + math.Atan2(u, -s*v), nil
}
