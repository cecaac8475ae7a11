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

// transverseMercator is the exact spherical transverse Mercator
// projection (Snyder section 8).
type transverseMercator struct {
	d *derived
}

func (p *transverseMercator) init(d *derived, _ *Params) error {
	p.d = d
	return nil
}

func (p *transverseMercator) forward(lat, lon float64) (u, v float64, err error) {
	dlon := adjlon(lon - p.d.lon0)
	b := math.Cos(lat) * math.Sin(dlon)
	if math.Abs(b) > 1-eps {
		return 0, 0, &DomainError{Proj: "Transverse Mercator",
			Detail: "point 90 degrees from the central meridian"}
	}
	rk := p.d.rg * p.d.k0
	u = 0.5 * rk * math.Log((1+b)/(1-b))
	v = rk * (math.Atan2(math.Tan(lat), math.Cos(dlon)) - p.d.lat0)
	return u, v, nil
}

func (p *transverseMercator) inverse(u, v float64) (lat, lon float64, err error) {
	rk := p.d.rg * p.d.k0
	dd := v/rk + p.d.lat0
	xs := u / rk
	lat = math.Asin(clampAbs(math.Sin(dd)/math.Cosh(xs), 1))
	lon = p.d.lon0 + math.Atan2(math.Sinh(xs), math.Cos(dd))
	return lat, lon, nil
}

// transverseMercatorEllipsoid is the ellipsoidal transverse Mercator
// projection (Snyder section 8). The forward direction is built on the
// meridian-distance series; the inverse first recovers the footprint
// latitude, the latitude on the central meridian with the point's
// northing, then refines with the series correction terms. UTM is this
// projection with the zone conventions resolved into the parameters.
type transverseMercatorEllipsoid struct {
	d     *derived
	isUTM bool
	esp   float64 // e'^2 = e2/(1-e2)
	e1    float64 // footprint-latitude series constant
	m0    float64 // meridian distance at the reference latitude
	muFac float64 // rectifying denominator: rg*(1 - e2/4 - ...)
}

func (p *transverseMercatorEllipsoid) name() string {
	if p.isUTM {
		return "Universal Transverse Mercator"
	}
	return "Transverse Mercator (Ellipsoid)"
}

func (p *transverseMercatorEllipsoid) init(d *derived, _ *Params) error {
	p.d = d
	p.esp = d.e2 / (1 - d.e2)
	sqrt1e := math.Sqrt(1 - d.e2)
	p.e1 = (1 - sqrt1e) / (1 + sqrt1e)
	p.m0 = d.rg * mlfn(d.lat0, d.e2, d.e4, d.e6)
	p.muFac = d.rg * (1 - d.e2/4 - 3*d.e4/64 - 5*d.e6/256)
	return nil
}

func (p *transverseMercatorEllipsoid) forward(lat, lon float64) (u, v float64, err error) {
	d := p.d
	dlon := adjlon(lon - d.lon0)
	if math.Abs(dlon) >= halfPi-eps {
		return 0, 0, &DomainError{Proj: p.name(),
			Detail: "point 90 degrees from the central meridian"}
	}
	m := d.rg * mlfn(lat, d.e2, d.e4, d.e6)
	if math.Abs(lat) >= halfPi-eps {
		// On the central meridian's extension through the pole the
		// easting terms vanish.
		return 0, d.k0 * (m - p.m0), nil
	}
	sinlat, coslat := math.Sincos(lat)
	tanlat := sinlat / coslat
	n := d.rg / math.Sqrt(1-d.e2*sinlat*sinlat)
	t := tanlat * tanlat
	c := p.esp * coslat * coslat
	a := coslat * dlon
	a2 := a * a
	a3 := a2 * a
	u = d.k0 * n * (a + (1-t+c)*a3/6 +
		(5-18*t+t*t+72*c-58*p.esp)*a3*a2/120)
	v = d.k0 * (m - p.m0 + n*tanlat*(a2/2 +
		(5-t+9*c+4*c*c)*a2*a2/24 +
		(61-58*t+t*t+600*c-330*p.esp)*a3*a3/720))
	return u, v, nil
}

func (p *transverseMercatorEllipsoid) inverse(u, v float64) (lat, lon float64, err error) {
	d := p.d
	m := p.m0 + v/d.k0
	mu := m / p.muFac
	phi1 := footprint(mu, p.e1)
	if math.Abs(phi1) >= halfPi-eps {
		return math.Copysign(halfPi, phi1), d.lon0, nil
	}
	sin1, cos1 := math.Sincos(phi1)
	tan1 := sin1 / cos1
	c1 := p.esp * cos1 * cos1
	t1 := tan1 * tan1
	con := 1 - d.e2*sin1*sin1
	n1 := d.rg / math.Sqrt(con)
	r1 := d.rg * (1 - d.e2) / (con * math.Sqrt(con))
	dd := u / (n1 * d.k0)
	dd2 := dd * dd
	dd3 := dd2 * dd
	lat = phi1 - (n1*tan1/r1)*(dd2/2 -
		(5+3*t1+10*c1-4*c1*c1-9*p.esp)*dd2*dd2/24 +
		(61+90*t1+298*c1+45*t1*t1-252*p.esp-3*c1*c1)*dd3*dd3/720)
	lon = d.lon0 + (dd-(1+2*t1+c1)*dd3/6+
		(5-2*c1+28*t1-3*c1*c1+8*p.esp+24*t1*t1)*dd3*dd2/120)/cos1
	return lat, lon, nil
}
