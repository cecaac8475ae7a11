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
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Unset marks a floating-point parameter the caller did not supply, so
// that projection-family defaults can be applied in its place. It is
// the historical 999 sentinel of the map parameter files.
const Unset = 999.0

// Params holds the user-specified configuration for one map. Start from
// DefaultParams so that omitted fields keep their Unset sentinels;
// a zero-valued Params is not meaningful.
//
// Angles are in decimal degrees. Radii are in whatever length unit the
// caller works in (conventionally meters); map coordinates come out in
// those units divided by Scale.
type Params struct {
	// Projection is the canonical or historical name of the map
	// projection. Required.
	Projection string

	// Lat0, Lon0 are the reference latitude and longitude. Required
	// except for UTM (where the zone may be given instead) and
	// integerized sinusoidal (where they default to 0).
	Lat0 float64
	Lon0 float64

	// Lat1, Lon1 are the optional second reference point, used as the
	// second standard parallel by the conic projections and as the
	// true-scale parallel by the cylindrical and polar-stereographic
	// families.
	Lat1 float64
	Lon1 float64

	// Rotation is the map rotation in degrees counterclockwise.
	Rotation float64

	// Scale is in radius units per map unit.
	Scale float64

	// OriginLat, OriginLon locate the map origin; they default to the
	// reference point. OriginX, OriginY override the derived origin
	// offset directly, in map units.
	OriginLat float64
	OriginLon float64
	OriginX   float64
	OriginY   float64

	FalseEasting  float64
	FalseNorthing float64

	// Geographic bounds in degrees. An eastern bound numerically less
	// than the western bound (or greater than 180) straddles the
	// antimeridian.
	SouthBound float64
	NorthBound float64
	WestBound  float64
	EastBound  float64

	// Ellipsoid shape. Any one of Eccentricity, EccentricitySquared or
	// PolarRadius (together with EquatorialRadius) is sufficient; the
	// others are derived. All left Unset selects the projection-family
	// default.
	EquatorialRadius    float64
	Eccentricity        float64
	EccentricitySquared float64
	PolarRadius         float64

	// CenterScale is the scale factor k0 at the projection center.
	CenterScale float64

	// MaxError enables round-trip validation of every transform when
	// positive, in radius units. Zero disables validation.
	MaxError float64

	// Integerized-sinusoidal zone table shape.
	ISinNZone   int
	ISinJustify int

	// UTMZone selects the UTM zone; 0 derives it from the reference
	// longitude.
	UTMZone int

	// Log receives construction diagnostics. Nil means silent.
	Log logrus.FieldLogger `toml:"-"`
}

// DefaultParams returns a Params with every optional field at its
// documented default and every family-dependent field at Unset.
func DefaultParams() Params {
	return Params{
		Lat0: Unset, Lon0: Unset,
		Lat1: Unset, Lon1: Unset,
		Scale:     Unset,
		OriginLat: Unset, OriginLon: Unset,
		OriginX: Unset, OriginY: Unset,
		FalseEasting: Unset, FalseNorthing: Unset,
		SouthBound: -90, NorthBound: 90,
		WestBound: -180, EastBound: 180,
		EquatorialRadius: Unset, Eccentricity: Unset,
		EccentricitySquared: Unset, PolarRadius: Unset,
		CenterScale: Unset,
		MaxError:    Unset,
		ISinNZone:   86400,
		ISinJustify: 1,
	}
}

// ReadParams decodes a TOML parameter file, leaving omitted fields at
// their defaults.
func ReadParams(r io.Reader) (Params, error) {
	p := DefaultParams()
	if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
		return Params{}, fmt.Errorf("mapx: reading parameters: %w", err)
	}
	return p, nil
}

// ReadParamsFile decodes the TOML parameter file at path.
func ReadParamsFile(path string) (Params, error) {
	p := DefaultParams()
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Params{}, fmt.Errorf("mapx: reading %s: %w", path, err)
	}
	return p, nil
}

// ParamsFromLabels converts the flat keyword/value fields produced by
// the map-label parser into a Params. Keys are matched
// case-insensitively; keys the engine does not recognize (grid-layer
// labels, comments) are ignored.
func ParamsFromLabels(labels map[string]string) (Params, error) {
	p := DefaultParams()
	for key, val := range labels {
		if err := p.setLabel(strings.ToLower(strings.TrimSpace(key)), val); err != nil {
			return Params{}, parameterErrorf("label %q: %v", key, err)
		}
	}
	return p, nil
}

func (p *Params) setLabel(key, val string) error {
	setFloat := func(dst *float64) error {
		f, err := cast.ToFloat64E(strings.TrimSpace(val))
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
	setInt := func(dst *int) error {
		n, err := cast.ToIntE(strings.TrimSpace(val))
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
	switch key {
	case "map projection":
		p.Projection = strings.TrimSpace(val)
		return nil
	case "map reference latitude":
		return setFloat(&p.Lat0)
	case "map reference longitude":
		return setFloat(&p.Lon0)
	case "map second reference latitude":
		return setFloat(&p.Lat1)
	case "map second reference longitude":
		return setFloat(&p.Lon1)
	case "map rotation":
		return setFloat(&p.Rotation)
	case "map scale":
		return setFloat(&p.Scale)
	case "map origin latitude":
		return setFloat(&p.OriginLat)
	case "map origin longitude":
		return setFloat(&p.OriginLon)
	case "map origin x":
		return setFloat(&p.OriginX)
	case "map origin y":
		return setFloat(&p.OriginY)
	case "map false easting":
		return setFloat(&p.FalseEasting)
	case "map false northing":
		return setFloat(&p.FalseNorthing)
	case "map southern bound":
		return setFloat(&p.SouthBound)
	case "map northern bound":
		return setFloat(&p.NorthBound)
	case "map western bound":
		return setFloat(&p.WestBound)
	case "map eastern bound":
		return setFloat(&p.EastBound)
	case "map equatorial radius":
		return setFloat(&p.EquatorialRadius)
	case "map eccentricity":
		return setFloat(&p.Eccentricity)
	case "map eccentricity squared":
		return setFloat(&p.EccentricitySquared)
	case "map polar radius":
		return setFloat(&p.PolarRadius)
	case "map center scale":
		return setFloat(&p.CenterScale)
	case "map maximum error":
		return setFloat(&p.MaxError)
	case "map isin nzone":
		return setInt(&p.ISinNZone)
	case "map isin justify":
		return setInt(&p.ISinJustify)
	case "map utm zone":
		return setInt(&p.UTMZone)
	}
	return nil
}

func isSet(v float64) bool { return v != Unset }

func orDefault(v, def float64) float64 {
	if v == Unset {
		return def
	}
	return v
}
