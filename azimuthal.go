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

// azimuthalEqualArea is the spherical Lambert azimuthal equal-area
// projection in its general oblique aspect (Snyder section 24).
type azimuthalEqualArea struct {
	d                *derived
	sinLat0, cosLat0 float64
}

func (p *azimuthalEqualArea) init(d *derived, _ *Params) error {
	p.d = d
	p.sinLat0, p.cosLat0 = math.Sincos(d.lat0)
	return nil
}

func (p *azimuthalEqualArea) forward(lat, lon float64) (u, v float64, err error) {
	sinlat, coslat := math.Sincos(lat)
	sindl, cosdl := math.Sincos(adjlon(lon - p.d.lon0))
	g := p.sinLat0*sinlat + p.cosLat0*coslat*cosdl
	if 1+g < eps {
		return 0, 0, &DomainError{Proj: "Azimuthal Equal-Area", Detail: "antipodal point"}
	}
	k := math.Sqrt(2 / (1 + g))
	u = p.d.rg * k * coslat * sindl
	v = p.d.rg * k * (p.cosLat0*sinlat - p.sinLat0*coslat*cosdl)
	return u, v, nil
}

func (p *azimuthalEqualArea) inverse(u, v float64) (lat, lon float64, err error) {
	rho := math.Hypot(u, v) / p.d.rg
	if rho > 2+eps {
		return 0, 0, &DomainError{Proj: "Azimuthal Equal-Area", Detail: "point outside the map circle"}
	}
	if rho < eps {
		return p.d.lat0, p.d.lon0, nil
	}
	c := 2 * math.Asin(clampAbs(0.5*rho, 1))
	sinc, cosc := math.Sincos(c)
	ys := v / p.d.rg
	xs := u / p.d.rg
	lat = math.Asin(clampAbs(cosc*p.sinLat0+ys*sinc*p.cosLat0/rho, 1))
	lon = p.d.lon0 + math.Atan2(xs*sinc, rho*p.cosLat0*cosc-ys*p.sinLat0*sinc)
	return lat, lon, nil
}

// azimuthalEqualAreaEllipsoid is the ellipsoidal Lambert azimuthal
// equal-area projection. The forward direction moves through the
// authalic latitude (Snyder eq. 3-12); the inverse recovers geodetic
// latitude by iterating the same series, with closed forms at the
// poles where the series denominator vanishes.
type azimuthalEqualAreaEllipsoid struct {
	d                *derived
	qp               float64
	sinB0, cosB0     float64
	sinLat0, cosLat0 float64
	rq               float64
	dd               float64 // oblique-aspect stretching constant
	polar            bool
	north            bool
}

func (p *azimuthalEqualAreaEllipsoid) init(d *derived, _ *Params) error {
	p.d = d
	p.qp = qsfn(1, d.e, d.e2)
	p.sinLat0, p.cosLat0 = math.Sincos(d.lat0)
	p.polar = math.Abs(d.lat0) >= halfPi-eps
	p.north = d.lat0 > 0
	p.rq = d.rg * math.Sqrt(0.5*p.qp)
	if !p.polar {
		q0 := qsfn(p.sinLat0, d.e, d.e2)
		p.sinB0 = clampAbs(q0/p.qp, 1)
		p.cosB0 = math.Sqrt(1 - p.sinB0*p.sinB0)
		m0 := msfn(p.sinLat0, p.cosLat0, d.e2)
		p.dd = d.rg * m0 / (p.rq * p.cosB0)
	}
	return nil
}

func (p *azimuthalEqualAreaEllipsoid) forward(lat, lon float64) (u, v float64, err error) {
	dlon := adjlon(lon - p.d.lon0)
	sindl, cosdl := math.Sincos(dlon)
	q := qsfn(math.Sin(lat), p.d.e, p.d.e2)
	if p.polar {
		var rho float64
		if p.north {
			rho = p.d.rg * math.Sqrt(math.Max(p.qp-q, 0))
			return rho * sindl, -rho * cosdl, nil
		}
		rho = p.d.rg * math.Sqrt(math.Max(p.qp+q, 0))
		return rho * sindl, rho * cosdl, nil
	}
	sinB := clampAbs(q/p.qp, 1)
	cosB := math.Sqrt(1 - sinB*sinB)
	den := 1 + p.sinB0*sinB + p.cosB0*cosB*cosdl
	if den < eps {
		return 0, 0, &DomainError{Proj: "Azimuthal Equal-Area (Ellipsoid)", Detail: "antipodal point"}
	}
	b := p.rq * math.Sqrt(2/den)
	u = b * p.dd * cosB * sindl
	v = (b / p.dd) * (p.cosB0*sinB - p.sinB0*cosB*cosdl)
	return u, v, nil
}

func (p *azimuthalEqualAreaEllipsoid) inverse(u, v float64) (lat, lon float64, err error) {
	const name = "Azimuthal Equal-Area (Ellipsoid)"
	if p.polar {
		rho := math.Hypot(u, v)
		q := p.qp - (rho/p.d.rg)*(rho/p.d.rg)
		if !p.north {
			q = -q
		}
		if math.Abs(q) > p.qp+eps {
			return 0, 0, &DomainError{Proj: name, Detail: "point outside the map circle"}
		}
		lat, err = phiFromQ(clampAbs(q, p.qp), p.qp, p.d.e, p.d.e2, name)
		if err != nil {
			return 0, 0, err
		}
		if rho < eps {
			return lat, p.d.lon0, nil
		}
		if p.north {
			return lat, p.d.lon0 + math.Atan2(u, -v), nil
		}
		return lat, p.d.lon0 + math.Atan2(u, v), nil
	}
	rho := math.Hypot(u/p.dd, p.dd*v)
	if rho < eps {
		return p.d.lat0, p.d.lon0, nil
	}
	arg := 0.5 * rho / p.rq
	if arg > 1+eps {
		return 0, 0, &DomainError{Proj: name, Detail: "point outside the map circle"}
	}
	ce := 2 * math.Asin(clampAbs(arg, 1))
	since, cosce := math.Sincos(ce)
	q := p.qp * (cosce*p.sinB0 + p.dd*v*since*p.cosB0/rho)
	lat, err = phiFromQ(clampAbs(q, p.qp), p.qp, p.d.e, p.d.e2, name)
	if err != nil {
		return 0, 0, err
	}
	lon = p.d.lon0 + math.Atan2(u*since,
		p.dd*rho*p.cosB0*cosce-p.dd*p.dd*v*p.sinB0*since)
	return lat, lon, nil
}
