package mapx

import (
	"errors"
	"testing"
)

func TestResolveProjection(t *testing.T) {
	cases := []struct {
		name string
		want Variant
	}{
		{"Azimuthal Equal-Area", AzimuthalEqualArea},
		{"Equal-Area Azimuthal", AzimuthalEqualArea},
		{"azimuthal equal-area", AzimuthalEqualArea},
		{"AZIMUTHAL_EQUAL_AREA", AzimuthalEqualArea},
		{"Lambert Azimuthal Equal-Area (Ellipsoid)", AzimuthalEqualAreaEllipsoid},
		{"Plate Carree", CylindricalEquidistant},
		{"equidistant cylindrical", CylindricalEquidistant},
		{"Mercator", Mercator},
		{"polar_stereographic (ellipsoid)", PolarStereographicEllipsoid},
		{"Stereographic Polar", PolarStereographic},
		{"Goode Homolosine", InterruptedHomolosineEqualArea},
		{"Interrupted Homolosine Equal-Area", InterruptedHomolosineEqualArea},
		{"ISin", IntegerizedSinusoidal},
		{"integerized sinusoidal", IntegerizedSinusoidal},
		{"UTM", UniversalTransverseMercator},
		{"Universal Mercator Transverse", UniversalTransverseMercator},
		{"Lambert Conformal Conic", LambertConicConformalEllipsoid},
		{"Albers Equal-Area Conic", AlbersConicEqualArea},
		{"transverse mercator ellipsoid", TransverseMercatorEllipsoid},
	}
	for _, c := range cases {
		v, err := ResolveProjection(c.name)
		if err != nil {
			t.Errorf("ResolveProjection(%q): %v", c.name, err)
			continue
		}
		if v != c.want {
			t.Errorf("ResolveProjection(%q) = %v, want %v", c.name, v, c.want)
		}
	}
}

func TestResolveProjectionUnknown(t *testing.T) {
	_, err := ResolveProjection("conformal azimuthal frobnitz")
	var uerr *UnknownProjectionError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v, want UnknownProjectionError", err)
	}
	if uerr.Name != "conformal azimuthal frobnitz" {
		t.Errorf("Name = %q", uerr.Name)
	}
	if len(uerr.Valid) != int(numVariants) {
		t.Errorf("Valid has %d names, want %d", len(uerr.Valid), numVariants)
	}
}

func TestCanonicalNamesResolve(t *testing.T) {
	// Every canonical name must resolve back to its own variant.
	for i, name := range ValidNames() {
		v, err := ResolveProjection(name)
		if err != nil {
			t.Errorf("ResolveProjection(%q): %v", name, err)
			continue
		}
		if v != Variant(i) {
			t.Errorf("ResolveProjection(%q) = %v, want %v", name, v, Variant(i))
		}
	}
}

func TestVariantString(t *testing.T) {
	if s := Mollweide.String(); s != "Mollweide" {
		t.Errorf("Mollweide.String() = %q", s)
	}
	if s := Variant(-1).String(); s != "invalid projection" {
		t.Errorf("Variant(-1).String() = %q", s)
	}
}
