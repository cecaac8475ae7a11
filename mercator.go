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

// mercator is the spherical Mercator projection.
type mercator struct {
	d *derived
}

func (p *mercator) init(d *derived, _ *Params) error {
	p.d = d
	return nil
}

func (p *mercator) forward(lat, lon float64) (u, v float64, err error) {
	if math.Abs(lat) >= halfPi-eps {
		return 0, 0, &DomainError{Proj: "Mercator", Detail: "pole maps to infinity"}
	}
	u = p.d.rg * adjlon(lon-p.d.lon0)
	v = p.d.rg * math.Log(math.Tan(math.Pi/4+0.5*lat))
	return u, v, nil
}

func (p *mercator) inverse(u, v float64) (lat, lon float64, err error) {
	dlon := u / p.d.rg
	if math.Abs(dlon) > math.Pi+eps {
		return 0, 0, &DomainError{Proj: "Mercator", Detail: "easting outside the map"}
	}
	lat = halfPi - 2*math.Atan(math.Exp(-v/p.d.rg))
	return lat, p.d.lon0 + dlon, nil
}
