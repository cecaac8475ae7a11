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

// The interrupted Goode homolosine splits the world into twelve fixed
// lune/zone regions: sinusoidal math between the fusion latitude
// 40°44'11.8" and the equator, Mollweide math poleward of it, with a
// constant northing shift so the two halves meet. The region table and
// thresholds are the classic interruption layout over the continents.

const (
	goodeFuseLat = 0.710987989993 // 40°44'11.8" in radians
	goodeYShift  = 0.0528035274542
)

// goodeLonCenter is the central meridian of each of the 12 regions.
var goodeLonCenter = [12]float64{
	-1.74532925199, // 0: north of fuse, -180..-40
	-1.74532925199, // 1: equator..fuse, -180..-40
	0.523598775598, // 2: north of fuse, -40..180
	0.523598775598, // 3: equator..fuse, -40..180
	-2.79252680319, // 4: fuse..equator (south), -180..-100
	-1.0471975512,  // 5: south, -100..-20
	-2.79252680319, // 6: below south fuse, -180..-100
	-1.0471975512,  // 7: below south fuse, -100..-20
	0.349065850399, // 8: south, -20..80
	2.44346095279,  // 9: south, 80..180
	0.349065850399, // 10: below south fuse, -20..80
	2.44346095279,  // 11: below south fuse, 80..180
}

// goodeLonRange is the [west, east] lune of each region, used by the
// inverse to reject points whose recovered longitude escapes the region
// the easting placed them in.
var goodeLonRange = [12][2]float64{
	{-math.Pi, -0.698131700798},
	{-math.Pi, -0.698131700798},
	{-0.698131700798, math.Pi},
	{-0.698131700798, math.Pi},
	{-math.Pi, -1.74532925199},
	{-1.74532925199, -0.349065850399},
	{-math.Pi, -1.74532925199},
	{-1.74532925199, -0.349065850399},
	{-0.349065850399, 1.3962634016},
	{1.3962634016, math.Pi},
	{-0.349065850399, 1.3962634016},
	{1.3962634016, math.Pi},
}

// goodeMollweide reports whether the region uses Mollweide math.
func goodeMollweide(region int) bool {
	switch region {
	case 0, 2, 6, 7, 10, 11:
		return true
	}
	return false
}

func goodeRegion(lat, lon float64) int {
	switch {
	case lat >= goodeFuseLat:
		if lon <= -0.698131700798 {
			return 0
		}
		return 2
	case lat >= 0:
		if lon <= -0.698131700798 {
			return 1
		}
		return 3
	case lat >= -goodeFuseLat:
		switch {
		case lon <= -1.74532925199:
			return 4
		case lon <= -0.349065850399:
			return 5
		case lon <= 1.3962634016:
			return 8
		}
		return 9
	default:
		switch {
		case lon <= -1.74532925199:
			return 6
		case lon <= -0.349065850399:
			return 7
		case lon <= 1.3962634016:
			return 10
		}
		return 11
	}
}

type goodeHomolosine struct {
	d *derived
}

func (p *goodeHomolosine) init(d *derived, _ *Params) error {
	p.d = d
	return nil
}

func (p *goodeHomolosine) forward(lat, lon float64) (u, v float64, err error) {
	const name = "Interrupted Homolosine Equal-Area"
	rg := p.d.rg
	wlon := adjlon(lon - p.d.lon0)
	r := goodeRegion(lat, wlon)
	cen := goodeLonCenter[r]
	if !goodeMollweide(r) {
		u = rg*cen + rg*(wlon-cen)*math.Cos(lat)
		v = rg * lat
		return u, v, nil
	}
	theta, err := mollweideTheta(lat, name)
	if err != nil {
		return 0, 0, err
	}
	u = rg*cen + rg*mollweideXFactor*(wlon-cen)*math.Cos(theta)
	v = rg * (mollweideYFactor*math.Sin(theta) - math.Copysign(goodeYShift, lat))
	return u, v, nil
}

func (p *goodeHomolosine) inverse(u, v float64) (lat, lon float64, err error) {
	const name = "Interrupted Homolosine Equal-Area"
	rg := p.d.rg
	xs := u / rg
	ys := v / rg
	var r int
	switch {
	case ys >= goodeFuseLat:
		if xs <= -0.698131700798 {
			r = 0
		} else {
			r = 2
		}
	case ys >= 0:
		if xs <= -0.698131700798 {
			r = 1
		} else {
			r = 3
		}
	case ys >= -goodeFuseLat:
		switch {
		case xs <= -1.74532925199:
			r = 4
		case xs <= -0.349065850399:
			r = 5
		case xs <= 1.3962634016:
			r = 8
		default:
			r = 9
		}
	default:
		switch {
		case xs <= -1.74532925199:
			r = 6
		case xs <= -0.349065850399:
			r = 7
		case xs <= 1.3962634016:
			r = 10
		default:
			r = 11
		}
	}
	cen := goodeLonCenter[r]
	var wlon float64
	if !goodeMollweide(r) {
		lat = ys
		if math.Abs(lat) > halfPi+eps {
			return 0, 0, &DomainError{Proj: name, Detail: "northing beyond the pole"}
		}
		lat = clampAbs(lat, halfPi)
		coslat := math.Cos(lat)
		if coslat < eps {
			wlon = cen
		} else {
			wlon = cen + (xs-cen)/coslat
		}
	} else {
		arg := (ys + math.Copysign(goodeYShift, ys)) / mollweideYFactor
		if math.Abs(arg) > 1+eps {
			return 0, 0, &DomainError{Proj: name, Detail: "northing beyond the pole"}
		}
		theta := math.Asin(clampAbs(arg, 1))
		lat = math.Asin(clampAbs((2*theta+math.Sin(2*theta))/math.Pi, 1))
		cosTheta := math.Cos(theta)
		if cosTheta < eps {
			wlon = cen
		} else {
			wlon = cen + (xs-cen)/(mollweideXFactor*cosTheta)
		}
	}
	// The recovered longitude must still lie in the lune the easting
	// selected; interruptions make the in-between strips unreachable.
	if wlon < goodeLonRange[r][0]-solverTol || wlon > goodeLonRange[r][1]+solverTol {
		return 0, 0, &DomainError{Proj: name, Detail: "point between interrupted lobes"}
	}
	return lat, adjlon(wlon + p.d.lon0), nil
}
