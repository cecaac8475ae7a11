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

// geodesic returns the surface distance between two points given in
// radians, in the units of the equatorial radius a. On a sphere this is
// the great-circle arc; with nonzero flattening the Lambert correction
// on reduced latitudes is applied, which is accurate to well under the
// round-trip tolerances this package validates against.
func geodesic(a, f, lat1, lon1, lat2, lon2 float64) float64 {
	if f == 0 {
		return a * arc(lat1, lon1, lat2, lon2)
	}
	b1 := math.Atan((1 - f) * math.Tan(lat1))
	b2 := math.Atan((1 - f) * math.Tan(lat2))
	sigma := arc(b1, lon1, b2, lon2)
	if sigma < eps {
		return a * sigma
	}
	p := 0.5 * (b1 + b2)
	q := 0.5 * (b2 - b1)
	sinP, cosP := math.Sincos(p)
	sinQ, cosQ := math.Sincos(q)
	cosHalf := math.Cos(0.5 * sigma)
	sinHalf := math.Sin(0.5 * sigma)
	x := (sigma - math.Sin(sigma)) * sinP * sinP * cosQ * cosQ / (cosHalf * cosHalf)
	y := (sigma + math.Sin(sigma)) * cosP * cosP * sinQ * sinQ / (sinHalf * sinHalf)
	return a * (sigma - 0.5*f*(x+y))
}

// arc is the haversine central angle between two points in radians.
func arc(lat1, lon1, lat2, lon2 float64) float64 {
	sinLat := math.Sin(0.5 * (lat2 - lat1))
	sinLon := math.Sin(0.5 * adjlon(lon2-lon1))
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	if h > 1 {
		h = 1
	}
	return 2 * math.Asin(math.Sqrt(h))
}
