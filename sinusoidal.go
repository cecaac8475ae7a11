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

// sinusoidal is the spherical sinusoidal (Sanson-Flamsteed) projection.
type sinusoidal struct {
	d *derived
}

func (p *sinusoidal) init(d *derived, _ *Params) error {
	p.d = d
	return nil
}

func (p *sinusoidal) forward(lat, lon float64) (u, v float64, err error) {
	dlon := adjlon(lon - p.d.lon0)
	u = p.d.rg * dlon * math.Cos(lat)
	v = p.d.rg * lat
	return u, v, nil
}

func (p *sinusoidal) inverse(u, v float64) (lat, lon float64, err error) {
	lat = v / p.d.rg
	if math.Abs(lat) > halfPi+eps {
		return 0, 0, &DomainError{Proj: "Sinusoidal", Detail: "northing beyond the pole"}
	}
	lat = clampAbs(lat, halfPi)
	coslat := math.Cos(lat)
	if coslat < eps {
		// At the pole every easting maps to the central meridian.
		return lat, p.d.lon0, nil
	}
	dlon := u / (p.d.rg * coslat)
	if math.Abs(dlon) > math.Pi+eps {
		return 0, 0, &DomainError{Proj: "Sinusoidal", Detail: "easting outside the map"}
	}
	return lat, p.d.lon0 + dlon, nil
}

func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
