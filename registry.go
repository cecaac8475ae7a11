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

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// Variant identifies one of the supported map projections.
type Variant int

const (
	AzimuthalEqualArea Variant = iota
	AzimuthalEqualAreaEllipsoid
	CylindricalEqualArea
	CylindricalEqualAreaEllipsoid
	CylindricalEquidistant
	Mercator
	Mollweide
	Orthographic
	PolarStereographic
	PolarStereographicEllipsoid
	Sinusoidal
	AlbersConicEqualArea
	AlbersConicEqualAreaEllipsoid
	LambertConicConformalEllipsoid
	InterruptedHomolosineEqualArea
	IntegerizedSinusoidal
	TransverseMercator
	TransverseMercatorEllipsoid
	UniversalTransverseMercator
	numVariants
)

var canonicalName = [numVariants]string{
	AzimuthalEqualArea:             "Azimuthal Equal-Area",
	AzimuthalEqualAreaEllipsoid:    "Azimuthal Equal-Area (Ellipsoid)",
	CylindricalEqualArea:           "Cylindrical Equal-Area",
	CylindricalEqualAreaEllipsoid:  "Cylindrical Equal-Area (Ellipsoid)",
	CylindricalEquidistant:         "Cylindrical Equidistant",
	Mercator:                       "Mercator",
	Mollweide:                      "Mollweide",
	Orthographic:                   "Orthographic",
	PolarStereographic:             "Polar Stereographic",
	PolarStereographicEllipsoid:    "Polar Stereographic (Ellipsoid)",
	Sinusoidal:                     "Sinusoidal",
	AlbersConicEqualArea:           "Albers Conic Equal-Area",
	AlbersConicEqualAreaEllipsoid:  "Albers Conic Equal-Area (Ellipsoid)",
	LambertConicConformalEllipsoid: "Lambert Conic Conformal (Ellipsoid)",
	InterruptedHomolosineEqualArea: "Interrupted Homolosine Equal-Area",
	IntegerizedSinusoidal:          "Integerized Sinusoidal",
	TransverseMercator:             "Transverse Mercator",
	TransverseMercatorEllipsoid:    "Transverse Mercator (Ellipsoid)",
	UniversalTransverseMercator:    "Universal Transverse Mercator",
}

func (v Variant) String() string {
	if v < 0 || v >= numVariants {
		return "invalid projection"
	}
	return canonicalName[v]
}

// aliasTable folds the historical synonyms onto the canonical variants.
// It is data, not logic: resolution normalizes away case and
// punctuation and looks the result up here.
var aliasTable = []struct {
	name string
	v    Variant
}{
	{"Azimuthal Equal-Area", AzimuthalEqualArea},
	{"Equal-Area Azimuthal", AzimuthalEqualArea},
	{"Lambert Azimuthal Equal-Area", AzimuthalEqualArea},
	{"Azimuthal Equal-Area (Ellipsoid)", AzimuthalEqualAreaEllipsoid},
	{"Equal-Area Azimuthal Ellipsoid", AzimuthalEqualAreaEllipsoid},
	{"Lambert Azimuthal Equal-Area (Ellipsoid)", AzimuthalEqualAreaEllipsoid},
	{"Cylindrical Equal-Area", CylindricalEqualArea},
	{"Equal-Area Cylindrical", CylindricalEqualArea},
	{"Lambert Cylindrical Equal-Area", CylindricalEqualArea},
	{"Cylindrical Equal-Area (Ellipsoid)", CylindricalEqualAreaEllipsoid},
	{"Equal-Area Cylindrical Ellipsoid", CylindricalEqualAreaEllipsoid},
	{"Cylindrical Equidistant", CylindricalEquidistant},
	{"Equidistant Cylindrical", CylindricalEquidistant},
	{"Plate Carree", CylindricalEquidistant},
	{"Mercator", Mercator},
	{"Mollweide", Mollweide},
	{"Orthographic", Orthographic},
	{"Polar Stereographic", PolarStereographic},
	{"Stereographic Polar", PolarStereographic},
	{"Polar Stereographic (Ellipsoid)", PolarStereographicEllipsoid},
	{"Sinusoidal", Sinusoidal},
	{"Albers Conic Equal-Area", AlbersConicEqualArea},
	{"Albers Equal-Area Conic", AlbersConicEqualArea},
	{"Albers Conic Equal-Area (Ellipsoid)", AlbersConicEqualAreaEllipsoid},
	{"Albers Equal-Area Conic (Ellipsoid)", AlbersConicEqualAreaEllipsoid},
	{"Lambert Conic Conformal (Ellipsoid)", LambertConicConformalEllipsoid},
	{"Lambert Conformal Conic", LambertConicConformalEllipsoid},
	{"Lambert Conic Conformal", LambertConicConformalEllipsoid},
	{"Interrupted Homolosine Equal-Area", InterruptedHomolosineEqualArea},
	{"Interrupted Goode Homolosine", InterruptedHomolosineEqualArea},
	{"Goode Homolosine", InterruptedHomolosineEqualArea},
	{"Goodes Homolosine", InterruptedHomolosineEqualArea},
	{"Integerized Sinusoidal", IntegerizedSinusoidal},
	{"ISin", IntegerizedSinusoidal},
	{"Sinusoidal Integerized", IntegerizedSinusoidal},
	{"Transverse Mercator", TransverseMercator},
	{"Mercator Transverse", TransverseMercator},
	{"Transverse Mercator (Ellipsoid)", TransverseMercatorEllipsoid},
	{"Universal Transverse Mercator", UniversalTransverseMercator},
	{"Universal Mercator Transverse", UniversalTransverseMercator},
	{"UTM", UniversalTransverseMercator},
}

var aliases = func() map[string]Variant {
	m := make(map[string]Variant, len(aliasTable))
	for _, a := range aliasTable {
		m[normalizeName(a.name)] = a.v
	}
	return m
}()

// normalizeName strips separators and case so that, for example,
// "polar_stereographic (ellipsoid)" and "Polar Stereographic Ellipsoid"
// resolve identically.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidNames returns the canonical projection names.
func ValidNames() []string {
	names := make([]string, numVariants)
	for i := range names {
		names[i] = canonicalName[i]
	}
	return names
}

// ResolveProjection maps a projection name, canonical or historical,
// onto its Variant.
func ResolveProjection(name string) (Variant, error) {
	if v, ok := aliases[normalizeName(name)]; ok {
		return v, nil
	}
	return -1, &UnknownProjectionError{Name: name, Valid: ValidNames()}
}

func resolveProjection(name string, log logrus.FieldLogger) (Variant, error) {
	v, err := ResolveProjection(name)
	if err != nil && log != nil {
		log.WithField("projection", name).Error("unknown map projection")
		for _, n := range ValidNames() {
			log.Infof("valid projection name: %s", n)
		}
	}
	return v, err
}

// ellipsoidal reports whether the variant's math works on a reference
// ellipsoid rather than a sphere.
func (v Variant) ellipsoidal() bool {
	switch v {
	case AzimuthalEqualAreaEllipsoid, CylindricalEqualAreaEllipsoid,
		PolarStereographicEllipsoid, AlbersConicEqualAreaEllipsoid,
		LambertConicConformalEllipsoid, TransverseMercatorEllipsoid,
		UniversalTransverseMercator:
		return true
	}
	return false
}

// familyDefaults returns the default equatorial radius and eccentricity
// for the variant's projection family.
func (v Variant) familyDefaults() (radius, ecc float64) {
	switch {
	case v == UniversalTransverseMercator:
		return WGS84EquatorialRadius, WGS84Eccentricity
	case v == IntegerizedSinusoidal:
		return AuthalicSphereRadius, 0
	case v.ellipsoidal():
		return Clarke1866EquatorialRadius, Clarke1866Eccentricity
	}
	return AuthalicSphereRadius, 0
}

// resolveParams applies the projection-family defaults of the resolver
// and validates the parameter record. It returns the completed record;
// the input is not modified.
func resolveParams(p Params, v Variant) (Params, error) {
	// Ellipsoid shape: any one of eccentricity, eccentricity squared or
	// polar radius pins the shape; the rest is derived.
	defRadius, defEcc := v.familyDefaults()
	if !isSet(p.EquatorialRadius) {
		p.EquatorialRadius = defRadius
	}
	if p.EquatorialRadius <= 0 {
		return p, parameterErrorf("equatorial radius %g must be positive", p.EquatorialRadius)
	}
	switch {
	case isSet(p.Eccentricity):
		if isSet(p.EccentricitySquared) &&
			math.Abs(p.EccentricitySquared-p.Eccentricity*p.Eccentricity) > 1e-9 {
			return p, parameterErrorf("eccentricity %g and eccentricity squared %g disagree",
				p.Eccentricity, p.EccentricitySquared)
		}
	case isSet(p.EccentricitySquared):
		if p.EccentricitySquared < 0 {
			return p, parameterErrorf("eccentricity squared %g is negative", p.EccentricitySquared)
		}
		p.Eccentricity = math.Sqrt(p.EccentricitySquared)
	case isSet(p.PolarRadius):
		if p.PolarRadius > p.EquatorialRadius {
			return p, parameterErrorf("polar radius %g exceeds equatorial radius %g",
				p.PolarRadius, p.EquatorialRadius)
		}
		ratio := p.PolarRadius / p.EquatorialRadius
		p.Eccentricity = math.Sqrt(1 - ratio*ratio)
	default:
		p.Eccentricity = defEcc
	}
	if p.Eccentricity < 0 || p.Eccentricity >= 1 {
		return p, parameterErrorf("eccentricity %g outside [0, 1)", p.Eccentricity)
	}
	p.EccentricitySquared = p.Eccentricity * p.Eccentricity
	p.PolarRadius = p.EquatorialRadius * math.Sqrt(1-p.EccentricitySquared)
	if p.Eccentricity > 0 && !v.ellipsoidal() {
		return p, parameterErrorf("%s is not an ellipsoid projection but eccentricity is %g",
			v, p.Eccentricity)
	}

	p.Scale = orDefault(p.Scale, 1)
	if p.Scale <= 0 {
		return p, parameterErrorf("scale %g must be positive", p.Scale)
	}

	switch v {
	case UniversalTransverseMercator:
		if err := resolveUTM(&p); err != nil {
			return p, err
		}
	case IntegerizedSinusoidal:
		p.Lat0 = orDefault(p.Lat0, 0)
		p.Lon0 = orDefault(p.Lon0, 0)
		if p.ISinNZone < 2 || p.ISinNZone%2 != 0 {
			return p, parameterErrorf("ISin zone count %d must be even and at least 2", p.ISinNZone)
		}
		if p.ISinJustify < 0 || p.ISinJustify > 2 {
			return p, parameterErrorf("ISin justify %d outside 0..2", p.ISinJustify)
		}
	default:
		if !isSet(p.Lat0) || !isSet(p.Lon0) {
			return p, parameterErrorf("%s requires a reference latitude and longitude", v)
		}
	}
	if v != UniversalTransverseMercator {
		p.CenterScale = orDefault(p.CenterScale, 1)
		p.MaxError = orDefault(p.MaxError, 0)
		p.FalseEasting = orDefault(p.FalseEasting, 0)
		p.FalseNorthing = orDefault(p.FalseNorthing, 0)
	}
	if p.CenterScale <= 0 {
		return p, parameterErrorf("center scale %g must be positive", p.CenterScale)
	}
	if p.MaxError < 0 {
		return p, parameterErrorf("maximum error %g is negative", p.MaxError)
	}

	if isSet(p.Lat0) && math.Abs(p.Lat0) > 90 {
		return p, parameterErrorf("reference latitude %g outside [-90, 90]", p.Lat0)
	}
	if isSet(p.Lat1) && math.Abs(p.Lat1) > 90 {
		return p, parameterErrorf("second reference latitude %g outside [-90, 90]", p.Lat1)
	}
	return p, nil
}

// resolveUTM fills in the zone conventions: a zone derived from the
// reference longitude and hemisphere when none is given, the equatorial
// projection origin on the zone's central meridian, and the standard
// false easting/northing, scale factor and round-trip tolerance.
func resolveUTM(p *Params) error {
	zone := p.UTMZone
	if zone == 0 {
		if !isSet(p.Lon0) {
			return parameterErrorf("UTM requires a reference longitude or an explicit zone")
		}
		zone = int(math.Floor((normlon(p.Lon0)+180)/6)) + 1
		if zone > 60 {
			zone = 60 // lon exactly 180
		}
	}
	if zone < 1 || zone > 60 {
		return parameterErrorf("UTM zone %d outside 1..60", zone)
	}
	south := isSet(p.Lat0) && p.Lat0 < 0
	p.UTMZone = zone
	p.Lat0 = 0
	p.Lon0 = float64(6*zone - 183)
	p.CenterScale = orDefault(p.CenterScale, 0.9996)
	p.MaxError = orDefault(p.MaxError, 100)
	p.FalseEasting = orDefault(p.FalseEasting, 500000)
	if south {
		p.FalseNorthing = orDefault(p.FalseNorthing, 1e7)
	} else {
		p.FalseNorthing = orDefault(p.FalseNorthing, 0)
	}
	return nil
}
