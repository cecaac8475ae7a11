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

const (
	mollweideXFactor = 0.900316316158    // 2*sqrt(2)/pi
	mollweideYFactor = 1.4142135623731   // sqrt(2)
)

// mollweideTheta solves theta + sin(theta) = pi*sin(lat) by Newton
// iteration and returns theta/2, the auxiliary angle of the Mollweide
// equations. The poles are handled in closed form; the Newton
// denominator vanishes there.
func mollweideTheta(lat float64, proj string) (float64, error) {
	if halfPi-math.Abs(lat) < eps {
		return math.Copysign(halfPi, lat), nil
	}
	target := math.Pi * math.Sin(lat)
	theta := lat
	for i := 0; i < solverMaxIter; i++ {
		den := 1 + math.Cos(theta)
		if den < eps {
			return math.Copysign(halfPi, lat), nil
		}
		delta := -(theta + math.Sin(theta) - target) / den
		theta += delta
		if math.Abs(delta) < solverTol {
			return 0.5 * theta, nil
		}
	}
	return math.NaN(), &ConvergenceError{Proj: proj, Op: "Mollweide theta", Iterations: solverMaxIter}
}

// mollweide is the Mollweide pseudocylindrical equal-area projection.
type mollweide struct {
	d *derived
}

func (p *mollweide) init(d *derived, _ *Params) error {
	p.d = d
	return nil
}

func (p *mollweide) forward(lat, lon float64) (u, v float64, err error) {
	theta, err := mollweideTheta(lat, "Mollweide")
	if err != nil {
		return 0, 0, err
	}
	u = p.d.rg * mollweideXFactor * adjlon(lon-p.d.lon0) * math.Cos(theta)
	v = p.d.rg * mollweideYFactor * math.Sin(theta)
	return u, v, nil
}

func (p *mollweide) inverse(u, v float64) (lat, lon float64, err error) {
	sinTheta := v / (p.d.rg * mollweideYFactor)
	if math.Abs(sinTheta) > 1+eps {
		return 0, 0, &DomainError{Proj: "Mollweide", Detail: "northing beyond the pole"}
	}
	theta := math.Asin(clampAbs(sinTheta, 1))
	lat = math.Asin(clampAbs((2*theta+math.Sin(2*theta))/math.Pi, 1))
	cosTheta := math.Cos(theta)
	if cosTheta < eps {
		return lat, p.d.lon0, nil
	}
	dlon := u / (p.d.rg * mollweideXFactor * cosTheta)
	if math.Abs(dlon) > math.Pi+eps {
		return 0, 0, &DomainError{Proj: "Mollweide", Detail: "easting outside the map"}
	}
	return lat, p.d.lon0 + dlon, nil
}
