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

// The conic projections take their standard parallels from the
// reference latitude and the second reference latitude; when the second
// is unset or coincides with the first, the cone is tangent at a single
// parallel. The cone constant n must not vanish, which excludes
// standard parallels symmetric about (or on) the equator.

func conicParallels(d *derived) (phi1, phi2 float64) {
	phi1 = d.lat0
	phi2 = phi1
	if d.hasLat1 {
		phi2 = d.lat1
	}
	return phi1, phi2
}

// albersConicEqualArea is the spherical Albers projection
// (Snyder section 14).
type albersConicEqualArea struct {
	d    *derived
	n    float64
	c    float64
	rho0 float64
}

func (p *albersConicEqualArea) init(d *derived, _ *Params) error {
	p.d = d
	phi1, phi2 := conicParallels(d)
	sin1, cos1 := math.Sincos(phi1)
	p.n = 0.5 * (sin1 + math.Sin(phi2))
	if math.Abs(p.n) < eps {
		return parameterErrorf("Albers Conic Equal-Area: standard parallels %g, %g give a degenerate cone",
			degrees(phi1), degrees(phi2))
	}
	p.c = cos1*cos1 + 2*p.n*sin1
	p.rho0 = p.rho(math.Sin(d.lat0))
	return nil
}

func (p *albersConicEqualArea) rho(sinlat float64) float64 {
	return p.d.rg * math.Sqrt(math.Max(p.c-2*p.n*sinlat, 0)) / p.n
}

func (p *albersConicEqualArea) forward(lat, lon float64) (u, v float64, err error) {
	if p.c-2*p.n*math.Sin(lat) < -eps {
		return 0, 0, &DomainError{Proj: "Albers Conic Equal-Area", Detail: "latitude beyond the cone"}
	}
	rho := p.rho(math.Sin(lat))
	sinth, costh := math.Sincos(p.n * adjlon(lon-p.d.lon0))
	return rho * sinth, p.rho0 - rho*costh, nil
}

func (p *albersConicEqualArea) inverse(u, v float64) (lat, lon float64, err error) {
	s := 1.0
	if p.n < 0 {
		s = -1
	}
	rho := s * math.Hypot(u, p.rho0-v)
	theta := math.Atan2(s*u, s*(p.rho0-v))
	rn := rho * p.n / p.d.rg
	sinlat := (p.c - rn*rn) / (2 * p.n)
	if math.Abs(sinlat) > 1+eps {
		return 0, 0, &DomainError{Proj: "Albers Conic Equal-Area", Detail: "point outside the cone"}
	}
	return math.Asin(clampAbs(sinlat, 1)), p.d.lon0 + theta/p.n, nil
}

// albersConicEqualAreaEllipsoid is the ellipsoidal Albers projection
// (Snyder section 14). The inverse recovers latitude from the authalic
// quantity by iteration.
type albersConicEqualAreaEllipsoid struct {
	d    *derived
	n    float64
	c    float64
	qp   float64
	rho0 float64
}

func (p *albersConicEqualAreaEllipsoid) init(d *derived, _ *Params) error {
	p.d = d
	phi1, phi2 := conicParallels(d)
	sin1, cos1 := math.Sincos(phi1)
	m1 := msfn(sin1, cos1, d.e2)
	q1 := qsfn(sin1, d.e, d.e2)
	p.qp = qsfn(1, d.e, d.e2)
	if math.Abs(phi1-phi2) < eps {
		p.n = sin1
	} else {
		sin2, cos2 := math.Sincos(phi2)
		m2 := msfn(sin2, cos2, d.e2)
		q2 := qsfn(sin2, d.e, d.e2)
		p.n = (m1*m1 - m2*m2) / (q2 - q1)
	}
	if math.Abs(p.n) < eps {
		return parameterErrorf("Albers Conic Equal-Area (Ellipsoid): standard parallels %g, %g give a degenerate cone",
			degrees(phi1), degrees(phi2))
	}
	p.c = m1*m1 + p.n*q1
	p.rho0 = p.rho(qsfn(math.Sin(d.lat0), d.e, d.e2))
	return nil
}

func (p *albersConicEqualAreaEllipsoid) rho(q float64) float64 {
	return p.d.rg * math.Sqrt(math.Max(p.c-p.n*q, 0)) / p.n
}

func (p *albersConicEqualAreaEllipsoid) forward(lat, lon float64) (u, v float64, err error) {
	q := qsfn(math.Sin(lat), p.d.e, p.d.e2)
	if p.c-p.n*q < -eps {
		return 0, 0, &DomainError{Proj: "Albers Conic Equal-Area (Ellipsoid)", Detail: "latitude beyond the cone"}
	}
	rho := p.rho(q)
	sinth, costh := math.Sincos(p.n * adjlon(lon-p.d.lon0))
	return rho * sinth, p.rho0 - rho*costh, nil
}

func (p *albersConicEqualAreaEllipsoid) inverse(u, v float64) (lat, lon float64, err error) {
	const name = "Albers Conic Equal-Area (Ellipsoid)"
	s := 1.0
	if p.n < 0 {
		s = -1
	}
	rho := s * math.Hypot(u, p.rho0-v)
	theta := math.Atan2(s*u, s*(p.rho0-v))
	rn := rho * p.n / p.d.rg
	q := (p.c - rn*rn) / p.n
	if math.Abs(q) > p.qp+eps {
		return 0, 0, &DomainError{Proj: name, Detail: "point outside the cone"}
	}
	lat, err = phiFromQ(clampAbs(q, p.qp), p.qp, p.d.e, p.d.e2, name)
	if err != nil {
		return 0, 0, err
	}
	return lat, p.d.lon0 + theta/p.n, nil
}

// lambertConicConformal is the ellipsoidal Lambert conformal conic
// projection (Snyder section 15). The inverse recovers latitude from
// the conformal quantity by iteration.
type lambertConicConformal struct {
	d    *derived
	n    float64
	f    float64
	rho0 float64
}

func (p *lambertConicConformal) init(d *derived, _ *Params) error {
	phi1, phi2 := conicParallels(d)
	if math.Abs(phi1) >= halfPi-eps || math.Abs(phi2) >= halfPi-eps {
		return parameterErrorf("Lambert Conic Conformal: standard parallel at a pole")
	}
	p.d = d
	sin1, cos1 := math.Sincos(phi1)
	m1 := msfn(sin1, cos1, d.e2)
	t1 := tsfn(phi1, sin1, d.e)
	if math.Abs(phi1-phi2) < eps {
		p.n = sin1
	} else {
		sin2, cos2 := math.Sincos(phi2)
		m2 := msfn(sin2, cos2, d.e2)
		t2 := tsfn(phi2, sin2, d.e)
		p.n = math.Log(m1/m2) / math.Log(t1/t2)
	}
	if math.Abs(p.n) < eps {
		return parameterErrorf("Lambert Conic Conformal: standard parallels %g, %g give a degenerate cone",
			degrees(phi1), degrees(phi2))
	}
	p.f = m1 / (p.n * math.Pow(t1, p.n))
	t0 := tsfn(d.lat0, math.Sin(d.lat0), d.e)
	p.rho0 = d.rg * p.f * math.Pow(t0, p.n)
	return nil
}

func (p *lambertConicConformal) forward(lat, lon float64) (u, v float64, err error) {
	var rho float64
	if math.Abs(lat) >= halfPi-eps {
		if lat*p.n <= 0 {
			return 0, 0, &DomainError{Proj: "Lambert Conic Conformal", Detail: "pole opposite the cone apex maps to infinity"}
		}
		rho = 0
	} else {
		rho = p.d.rg * p.f * math.Pow(tsfn(lat, math.Sin(lat), p.d.e), p.n)
	}
	sinth, costh := math.Sincos(p.n * adjlon(lon-p.d.lon0))
	return rho * sinth, p.rho0 - rho*costh, nil
}

func (p *lambertConicConformal) inverse(u, v float64) (lat, lon float64, err error) {
	s := 1.0
	if p.n < 0 {
		s = -1
	}
	rho := s * math.Hypot(u, p.rho0-v)
	if rho < eps {
		return math.Copysign(halfPi, p.n), p.d.lon0, nil
	}
	theta := math.Atan2(s*u, s*(p.rho0-v))
	t := math.Pow(rho/(p.d.rg*p.f), 1/p.n)
	lat, err = phi2(t, p.d.e, "Lambert Conic Conformal")
	if err != nil {
		return 0, 0, err
	}
	return lat, p.d.lon0 + theta/p.n, nil
}
