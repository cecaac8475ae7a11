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

// projection is the per-variant triple behind the transform façade:
// a one-time initializer plus the pure geo→map and map→geo halves.
// Angles are radians; u, v are un-rotated, un-translated map units.
// Implementations are stateless after init and safe for concurrent use.
type projection interface {
	init(d *derived, p *Params) error
	forward(lat, lon float64) (u, v float64, err error)
	inverse(u, v float64) (lat, lon float64, err error)
}

// newProjection binds a variant to its implementation. Spherical and
// ellipsoidal forms of the same family are distinct implementations
// sharing the series helpers in ellipsoid.go.
func newProjection(v Variant) projection {
	switch v {
	case AzimuthalEqualArea:
		return &azimuthalEqualArea{}
	case AzimuthalEqualAreaEllipsoid:
		return &azimuthalEqualAreaEllipsoid{}
	case CylindricalEqualArea:
		return &cylindricalEqualArea{}
	case CylindricalEqualAreaEllipsoid:
		return &cylindricalEqualAreaEllipsoid{}
	case CylindricalEquidistant:
		return &cylindricalEquidistant{}
	case Mercator:
		return &mercator{}
	case Mollweide:
		return &mollweide{}
	case Orthographic:
		return &orthographic{}
	case PolarStereographic:
		return &polarStereographic{}
	case PolarStereographicEllipsoid:
		return &polarStereographicEllipsoid{}
	case Sinusoidal:
		return &sinusoidal{}
	case AlbersConicEqualArea:
		return &albersConicEqualArea{}
	case AlbersConicEqualAreaEllipsoid:
		return &albersConicEqualAreaEllipsoid{}
	case LambertConicConformalEllipsoid:
		return &lambertConicConformal{}
	case InterruptedHomolosineEqualArea:
		return &goodeHomolosine{}
	case IntegerizedSinusoidal:
		return &integerizedSinusoidal{}
	case TransverseMercator:
		return &transverseMercator{}
	case TransverseMercatorEllipsoid:
		return &transverseMercatorEllipsoid{}
	case UniversalTransverseMercator:
		// UTM is the ellipsoidal transverse Mercator with the zone
		// conventions already folded into the resolved parameters.
		return &transverseMercatorEllipsoid{isUTM: true}
	}
	return nil
}
