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

// Reference ellipsoid and sphere constants, in meters. These are the
// family defaults the resolver applies when the caller leaves the
// ellipsoid shape unset.
const (
	// WGS84EquatorialRadius and WGS84Eccentricity define the WGS-84
	// ellipsoid used by default for UTM maps.
	WGS84EquatorialRadius = 6378137.0
	WGS84Eccentricity     = 0.081819190843

	// Clarke1866EquatorialRadius and Clarke1866Eccentricity define the
	// Clarke 1866 ellipsoid used by default for the other ellipsoidal
	// projections.
	Clarke1866EquatorialRadius = 6378206.4
	Clarke1866Eccentricity     = 0.082271673

	// AuthalicSphereRadius is the radius of the sphere with the same
	// surface area as the WGS-84 ellipsoid, used by default for the
	// spherical projections and for the integerized sinusoidal grid.
	AuthalicSphereRadius = 6371007.181
)

const (
	halfPi = math.Pi / 2
	twoPi  = 2 * math.Pi

	// eps guards comparisons against trigonometric noise.
	eps = 1e-10

	// Latitude-recovery solvers (authalic latitude, Mollweide theta)
	// iterate at most solverMaxIter times to within solverTol radians.
	// These are behavioral contracts shared with the C toolkit, not
	// tuning knobs.
	solverMaxIter = 35
	solverTol     = 1e-6

	// Conformal-latitude recovery budget (Mercator, Lambert conformal
	// and polar stereographic inverses).
	conformalMaxIter = 15
	conformalTol     = 1e-10
)

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// adjlon reduces a longitude in radians to (-pi, pi].
func adjlon(lon float64) float64 {
	if math.Abs(lon) <= math.Pi {
		return lon
	}
	lon += math.Pi
	lon -= twoPi * math.Floor(lon/twoPi)
	return lon - math.Pi
}

// normlon reduces a longitude in degrees to [-180, 180].
func normlon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

// msfn is the radius of the parallel of latitude phi divided by the
// ellipsoid semimajor axis (Snyder 14-15).
func msfn(sinphi, cosphi, e2 float64) float64 {
	return cosphi / math.Sqrt(1-e2*sinphi*sinphi)
}

// tsfn computes the half-colatitude tangent function used by the
// conformal projections (Snyder 15-9).
func tsfn(phi, sinphi, e float64) float64 {
	sinphi *= e
	return math.Tan(0.5*(halfPi-phi)) /
		math.Pow((1-sinphi)/(1+sinphi), 0.5*e)
}

// phi2 recovers geodetic latitude from the conformal quantity ts,
// inverting tsfn by fixed-point iteration (Snyder 7-9).
func phi2(ts, e float64, proj string) (float64, error) {
	phi := halfPi - 2*math.Atan(ts)
	for i := 0; i < conformalMaxIter; i++ {
		con := e * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), 0.5*e)) - phi
		phi += dphi
		if math.Abs(dphi) <= conformalTol {
			return phi, nil
		}
	}
	return math.NaN(), &ConvergenceError{Proj: proj, Op: "conformal latitude", Iterations: conformalMaxIter}
}

// qsfn computes the authalic quantity q for latitude phi
// (Snyder 3-12). For a sphere it reduces to 2 sin(phi).
func qsfn(sinphi, e, e2 float64) float64 {
	if e < eps {
		return 2 * sinphi
	}
	con := e * sinphi
	return (1 - e2) * (sinphi/(1-con*con) - (0.5/e)*math.Log((1-con)/(1+con)))
}

// phiFromQ recovers geodetic latitude from the authalic quantity q by
// Newton-style iteration on Snyder 3-16. qp is q evaluated at the pole.
// At the poles the latitude is returned in closed form; the series
// denominator vanishes there.
func phiFromQ(q, qp, e, e2 float64, proj string) (float64, error) {
	if math.Abs(q) >= qp-eps {
		return math.Copysign(halfPi, q), nil
	}
	phi := math.Asin(0.5 * q)
	if e < eps {
		return phi, nil
	}
	for i := 0; i < solverMaxIter; i++ {
		sinphi := math.Sin(phi)
		cosphi := math.Cos(phi)
		con := e * sinphi
		com := 1 - con*con
		dphi := 0.5 * com * com / cosphi *
			(q/(1-e2) - sinphi/com + (0.5/e)*math.Log((1-con)/(1+con)))
		phi += dphi
		if math.Abs(dphi) <= solverTol {
			return phi, nil
		}
	}
	return math.NaN(), &ConvergenceError{Proj: proj, Op: "authalic latitude", Iterations: solverMaxIter}
}

// mlfn computes the meridian distance from the equator to latitude phi
// divided by the semimajor axis (Snyder 3-21).
func mlfn(phi, e2, e4, e6 float64) float64 {
	return (1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi)
}

// footprint recovers the footprint latitude from the rectifying
// quantity mu using the e1 series (Snyder 3-26, 7-19).
func footprint(mu, e1 float64) float64 {
	e1sq := e1 * e1
	return mu +
		(3*e1/2-27*e1*e1sq/32)*math.Sin(2*mu) +
		(21*e1sq/16-55*e1sq*e1sq/32)*math.Sin(4*mu) +
		(151*e1*e1sq/96)*math.Sin(6*mu) +
		(1097*e1sq*e1sq/512)*math.Sin(8*mu)
}
