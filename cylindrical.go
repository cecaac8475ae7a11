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

// standardParallel is the true-scale latitude for the cylindrical
// family: the second reference latitude when given, else the reference
// latitude.
func standardParallel(d *derived) float64 {
	if d.hasLat1 {
		return d.lat1
	}
	return d.lat0
}

// cylindricalEquidistant is the equirectangular projection with true
// scale along the standard parallel.
type cylindricalEquidistant struct {
	d      *derived
	cosStd float64
}

func (p *cylindricalEquidistant) init(d *derived, _ *Params) error {
	p.d = d
	p.cosStd = math.Cos(standardParallel(d))
	if p.cosStd < eps {
		return parameterErrorf("Cylindrical Equidistant: standard parallel at a pole")
	}
	return nil
}

func (p *cylindricalEquidistant) forward(lat, lon float64) (u, v float64, err error) {
	u = p.d.rg * adjlon(lon-p.d.lon0) * p.cosStd
	v = p.d.rg * lat
	return u, v, nil
}

func (p *cylindricalEquidistant) inverse(u, v float64) (lat, lon float64, err error) {
	lat = v / p.d.rg
	if math.Abs(lat) > halfPi+eps {
		return 0, 0, &DomainError{Proj: "Cylindrical Equidistant", Detail: "northing beyond the pole"}
	}
	dlon := u / (p.d.rg * p.cosStd)
	if math.Abs(dlon) > math.Pi+eps {
		return 0, 0, &DomainError{Proj: "Cylindrical Equidistant", Detail: "easting outside the map"}
	}
	return clampAbs(lat, halfPi), p.d.lon0 + dlon, nil
}

// cylindricalEqualArea is the spherical Lambert cylindrical equal-area
// projection.
type cylindricalEqualArea struct {
	d      *derived
	cosStd float64
}

func (p *cylindricalEqualArea) init(d *derived, _ *Params) error {
	p.d = d
	p.cosStd = math.Cos(standardParallel(d))
	if p.cosStd < eps {
		return parameterErrorf("Cylindrical Equal-Area: standard parallel at a pole")
	}
	return nil
}

func (p *cylindricalEqualArea) forward(lat, lon float64) (u, v float64, err error) {
	u = p.d.rg * adjlon(lon-p.d.lon0) * p.cosStd
	v = p.d.rg * math.Sin(lat) / p.cosStd
	return u, v, nil
}

func (p *cylindricalEqualArea) inverse(u, v float64) (lat, lon float64, err error) {
	sinlat := v * p.cosStd / p.d.rg
	if math.Abs(sinlat) > 1+eps {
		return 0, 0, &DomainError{Proj: "Cylindrical Equal-Area", Detail: "northing beyond the pole"}
	}
	dlon := u / (p.d.rg * p.cosStd)
	if math.Abs(dlon) > math.Pi+eps {
		return 0, 0, &DomainError{Proj: "Cylindrical Equal-Area", Detail: "easting outside the map"}
	}
	return math.Asin(clampAbs(sinlat, 1)), p.d.lon0 + dlon, nil
}

// cylindricalEqualAreaEllipsoid is the ellipsoidal form, which maps the
// authalic quantity q linearly to northing (Snyder section 10).
type cylindricalEqualAreaEllipsoid struct {
	d    *derived
	kStd float64 // msfn at the standard parallel
	qp   float64 // authalic q at the pole
}

func (p *cylindricalEqualAreaEllipsoid) init(d *derived, _ *Params) error {
	p.d = d
	std := standardParallel(d)
	sinStd, cosStd := math.Sincos(std)
	p.kStd = msfn(sinStd, cosStd, d.e2)
	if p.kStd < eps {
		return parameterErrorf("Cylindrical Equal-Area (Ellipsoid): standard parallel at a pole")
	}
	p.qp = qsfn(1, d.e, d.e2)
	return nil
}

func (p *cylindricalEqualAreaEllipsoid) forward(lat, lon float64) (u, v float64, err error) {
	q := qsfn(math.Sin(lat), p.d.e, p.d.e2)
	u = p.d.rg * adjlon(lon-p.d.lon0) * p.kStd
	v = p.d.rg * q / (2 * p.kStd)
	return u, v, nil
}

func (p *cylindricalEqualAreaEllipsoid) inverse(u, v float64) (lat, lon float64, err error) {
	q := 2 * v * p.kStd / p.d.rg
	if math.Abs(q) > p.qp+eps {
		return 0, 0, &DomainError{Proj: "Cylindrical Equal-Area (Ellipsoid)", Detail: "northing beyond the pole"}
	}
	dlon := u / (p.d.rg * p.kStd)
	if math.Abs(dlon) > math.Pi+eps {
		return 0, 0, &DomainError{Proj: "Cylindrical Equal-Area (Ellipsoid)", Detail: "easting outside the map"}
	}
	lat, err = phiFromQ(clampAbs(q, p.qp), p.qp, p.d.e, p.d.e2, "Cylindrical Equal-Area (Ellipsoid)")
	if err != nil {
		return 0, 0, err
	}
	return lat, p.d.lon0 + dlon, nil
}
