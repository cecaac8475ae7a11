package mapx

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// newTestMap builds a map from defaults plus the given edits, failing
// the test on any construction error.
func newTestMap(t *testing.T, projection string, edit func(*Params)) *Mapx {
	t.Helper()
	p := DefaultParams()
	p.Projection = projection
	if edit != nil {
		edit(&p)
	}
	m, err := New(p)
	if err != nil {
		t.Fatalf("New(%s): %v", projection, err)
	}
	return m
}

func TestRoundTrip(t *testing.T) {
	const tol = 1.0e-5 // degrees

	ref := func(lat0, lon0 float64) func(*Params) {
		return func(p *Params) {
			p.Lat0 = lat0
			p.Lon0 = lon0
		}
	}
	conic := func(p *Params) {
		p.Lat0 = 29.5
		p.Lat1 = 45.5
		p.Lon0 = -96
	}

	cases := []struct {
		projection string
		edit       func(*Params)
		points     [][2]float64 // lat, lon
	}{
		{"Azimuthal Equal-Area", ref(45, -90),
			[][2]float64{{45, -90}, {40, -100}, {60, -60}, {10, -90}}},
		{"Azimuthal Equal-Area (Ellipsoid)", ref(90, 0),
			[][2]float64{{90, 0}, {70, -40}, {55, 120}}},
		{"Azimuthal Equal-Area (Ellipsoid)", ref(45, -100),
			[][2]float64{{45, -100}, {30, -120}, {60, -80}}},
		{"Cylindrical Equal-Area", func(p *Params) {
			p.Lat0 = 0
			p.Lat1 = 30
			p.Lon0 = 0
		}, [][2]float64{{0, 0}, {-35, 100}, {48, -3}}},
		{"Cylindrical Equal-Area (Ellipsoid)", ref(0, 0),
			[][2]float64{{0, 0}, {45, 10}, {-60, -170}}},
		{"Cylindrical Equidistant", ref(0, 0),
			[][2]float64{{0, 0}, {48.9, 2.3}, {-89, 179}}},
		{"Mercator", ref(0, 0),
			[][2]float64{{0, 0}, {40, -75}, {-60, 150}}},
		{"Mollweide", ref(0, 0),
			[][2]float64{{0, 0}, {40, -100}, {-70, 60}}},
		{"Orthographic", ref(40, -100),
			[][2]float64{{40, -100}, {45, -90}, {20, -110}}},
		{"Polar Stereographic", func(p *Params) {
			p.Lat0 = 90
			p.Lat1 = 60
			p.Lon0 = -45
		}, [][2]float64{{90, 0}, {70, -40}, {45, 135}}},
		{"Polar Stereographic (Ellipsoid)", func(p *Params) {
			p.Lat0 = 90
			p.Lat1 = 70
			p.Lon0 = -45
		}, [][2]float64{{90, 0}, {75, -45}, {60, 100}}},
		{"Sinusoidal", ref(0, 0),
			[][2]float64{{0, 0}, {30, -60}, {-45, 170}}},
		{"Albers Conic Equal-Area", conic,
			[][2]float64{{29.5, -96}, {40, -100}, {25, -80}}},
		{"Albers Conic Equal-Area (Ellipsoid)", conic,
			[][2]float64{{29.5, -96}, {40, -100}, {25, -80}}},
		{"Lambert Conic Conformal (Ellipsoid)", func(p *Params) {
			p.Lat0 = 33
			p.Lat1 = 45
			p.Lon0 = -95
		}, [][2]float64{{33, -95}, {40, -100}, {28, -85}}},
		{"Interrupted Homolosine Equal-Area", ref(0, 0),
			[][2]float64{{20, -50}, {50, 30}, {-30, 140}, {-60, 140}, {10, -120}}},
		{"Integerized Sinusoidal", nil,
			[][2]float64{{0, 0}, {40, -100}, {-65.3, 179.2}}},
		{"Transverse Mercator", ref(0, -75),
			[][2]float64{{0, -75}, {40.5, -73.5}, {-30, -78}}},
		{"Transverse Mercator (Ellipsoid)", ref(0, -75),
			[][2]float64{{0, -75}, {40.5, -73.5}, {-30, -78}}},
		{"Universal Transverse Mercator", ref(40, -105),
			[][2]float64{{39.7392, -104.9903}, {45, -106}, {35, -103.5}}},
	}

	for _, c := range cases {
		m := newTestMap(t, c.projection, c.edit)
		for _, pt := range c.points {
			x, y, err := m.Forward(pt[0], pt[1])
			if err != nil {
				t.Errorf("%s: Forward(%g, %g): %v", c.projection, pt[0], pt[1], err)
				continue
			}
			lat, lon, err := m.Inverse(x, y)
			if err != nil {
				t.Errorf("%s: Inverse(%g, %g): %v", c.projection, x, y, err)
				continue
			}
			if !scalar.EqualWithinAbs(lat, pt[0], tol) {
				t.Errorf("%s: round trip latitude %g, want %g", c.projection, lat, pt[0])
			}
			// At the poles longitude is degenerate.
			if math.Abs(pt[0]) < 90 && math.Abs(adjlon(radians(lon-pt[1]))) > radians(tol) {
				t.Errorf("%s: round trip longitude %g, want %g", c.projection, lon, pt[1])
			}
		}
	}
}

// The map origin defaults to the reference point, so the reference
// point must land on the false easting and northing.
func TestForwardAtOrigin(t *testing.T) {
	const tol = 1.0e-6
	for _, projection := range []string{
		"Sinusoidal", "Mercator", "Cylindrical Equal-Area", "Cylindrical Equidistant",
	} {
		m := newTestMap(t, projection, func(p *Params) {
			p.Lat0 = 0
			p.Lon0 = -40
		})
		x, y, err := m.Forward(0, -40)
		if err != nil {
			t.Fatalf("%s: Forward at origin: %v", projection, err)
		}
		if !scalar.EqualWithinAbs(x, 0, tol) || !scalar.EqualWithinAbs(y, 0, tol) {
			t.Errorf("%s: origin maps to (%g, %g), want (0, 0)", projection, x, y)
		}
	}
}

func TestSinusoidalScaling(t *testing.T) {
	m := newTestMap(t, "Sinusoidal", func(p *Params) {
		p.Lat0 = 0
		p.Lon0 = 0
	})
	x, y, err := m.Forward(0, 90)
	if err != nil {
		t.Fatal(err)
	}
	want := AuthalicSphereRadius * math.Pi / 2
	if !scalar.EqualWithinAbs(x, want, 1e-3) || !scalar.EqualWithinAbs(y, 0, 1e-3) {
		t.Errorf("Forward(0, 90) = (%g, %g), want (%g, 0)", x, y, want)
	}

	// A map scale divides the output coordinates.
	m = newTestMap(t, "Sinusoidal", func(p *Params) {
		p.Lat0 = 0
		p.Lon0 = 0
		p.Scale = 1000
	})
	x, _, err = m.Forward(0, 90)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(x, want/1000, 1e-6) {
		t.Errorf("scaled Forward(0, 90) x = %g, want %g", x, want/1000)
	}
}

func TestExplicitOrigin(t *testing.T) {
	m := newTestMap(t, "Cylindrical Equidistant", func(p *Params) {
		p.Lat0 = 0
		p.Lon0 = 0
		p.OriginLat = 45
		p.OriginLon = 10
	})
	x, y, err := m.Forward(45, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(x, 0, 1e-6) || !scalar.EqualWithinAbs(y, 0, 1e-6) {
		t.Errorf("origin maps to (%g, %g), want (0, 0)", x, y)
	}
}

func TestRotationAndFalseOffsets(t *testing.T) {
	const tol = 1.0e-5
	m := newTestMap(t, "Polar Stereographic", func(p *Params) {
		p.Lat0 = 90
		p.Lat1 = 60
		p.Lon0 = -45
		p.Rotation = 30
		p.FalseEasting = 2e6
		p.FalseNorthing = -1e6
	})
	x, y, err := m.Forward(90, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(x, 2e6, 1e-3) || !scalar.EqualWithinAbs(y, -1e6, 1e-3) {
		t.Errorf("pole maps to (%g, %g), want false offsets (2e6, -1e6)", x, y)
	}
	for _, pt := range [][2]float64{{70, -40}, {55, 80}} {
		x, y, err := m.Forward(pt[0], pt[1])
		if err != nil {
			t.Fatal(err)
		}
		lat, lon, err := m.Inverse(x, y)
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(lat, pt[0], tol) || !scalar.EqualWithinAbs(lon, pt[1], tol) {
			t.Errorf("rotated round trip (%g, %g), want (%g, %g)", lat, lon, pt[0], pt[1])
		}
	}
}

func TestForwardDomainErrors(t *testing.T) {
	cases := []struct {
		projection string
		edit       func(*Params)
		lat, lon   float64
	}{
		{"Mercator", func(p *Params) { p.Lat0 = 0; p.Lon0 = 0 }, 90, 0},
		{"Orthographic", func(p *Params) { p.Lat0 = 40; p.Lon0 = -100 }, -50, 80},
		{"Transverse Mercator", func(p *Params) { p.Lat0 = 0; p.Lon0 = 0 }, 0, 90},
		{"Azimuthal Equal-Area", func(p *Params) { p.Lat0 = 45; p.Lon0 = -90 }, -45, 90},
		{"Lambert Conic Conformal", func(p *Params) {
			p.Lat0 = 33
			p.Lat1 = 45
			p.Lon0 = -95
		}, -90, -95},
	}
	for _, c := range cases {
		m := newTestMap(t, c.projection, c.edit)
		x, y, err := m.Forward(c.lat, c.lon)
		var derr *DomainError
		if !errors.As(err, &derr) {
			t.Errorf("%s: Forward(%g, %g) error = %v, want DomainError",
				c.projection, c.lat, c.lon, err)
			continue
		}
		if !math.IsNaN(x) || !math.IsNaN(y) {
			t.Errorf("%s: failed Forward returned (%g, %g), want NaN", c.projection, x, y)
		}
	}
}

func TestLatitudeOutOfRange(t *testing.T) {
	m := newTestMap(t, "Sinusoidal", func(p *Params) { p.Lat0 = 0; p.Lon0 = 0 })
	_, _, err := m.Forward(91, 0)
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Errorf("Forward(91, 0) error = %v, want DomainError", err)
	}
}

func TestGoodeInterruptionGap(t *testing.T) {
	m := newTestMap(t, "Goode Homolosine", func(p *Params) { p.Lat0 = 0; p.Lon0 = 0 })
	// Just east of the southern interruption at 20°W, reachable only
	// through the lobe on the other side of the cut.
	u := -0.35 * AuthalicSphereRadius
	v := -0.30 * AuthalicSphereRadius
	_, _, err := m.Inverse(u, v)
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Errorf("Inverse in interruption gap: error = %v, want DomainError", err)
	}
}

func TestConstructionErrors(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Params)
	}{
		{"eccentricity on a spherical projection", func(p *Params) {
			p.Projection = "Mercator"
			p.Lat0 = 0
			p.Lon0 = 0
			p.Eccentricity = 0.08
		}},
		{"missing reference point", func(p *Params) {
			p.Projection = "Mercator"
		}},
		{"non-polar polar stereographic", func(p *Params) {
			p.Projection = "Polar Stereographic"
			p.Lat0 = 60
			p.Lon0 = 0
		}},
		{"degenerate cone", func(p *Params) {
			p.Projection = "Albers Conic Equal-Area"
			p.Lat0 = -30
			p.Lat1 = 30
			p.Lon0 = 0
		}},
		{"odd ISin zone count", func(p *Params) {
			p.Projection = "Integerized Sinusoidal"
			p.ISinNZone = 43201
		}},
		{"negative maximum error", func(p *Params) {
			p.Projection = "Mercator"
			p.Lat0 = 0
			p.Lon0 = 0
			p.MaxError = -1
		}},
		{"mismatched eccentricity forms", func(p *Params) {
			p.Projection = "Transverse Mercator (Ellipsoid)"
			p.Lat0 = 0
			p.Lon0 = 0
			p.Eccentricity = 0.08
			p.EccentricitySquared = 0.08
		}},
		{"origin x without origin y", func(p *Params) {
			p.Projection = "Mercator"
			p.Lat0 = 0
			p.Lon0 = 0
			p.OriginX = 100
		}},
	}
	for _, c := range cases {
		p := DefaultParams()
		c.edit(&p)
		m, err := New(p)
		var perr *ParameterError
		if !errors.As(err, &perr) {
			t.Errorf("%s: error = %v, want ParameterError", c.name, err)
		}
		if m != nil {
			t.Errorf("%s: New returned a non-nil map alongside the error", c.name)
		}
	}
}

func TestReinit(t *testing.T) {
	m := newTestMap(t, "Cylindrical Equidistant", func(p *Params) {
		p.Lat0 = 0
		p.Lon0 = 0
	})
	x0, _, err := m.Forward(0, 10)
	if err != nil {
		t.Fatal(err)
	}

	p := m.Params()
	p.Lon0 = 10
	if err := m.Reinit(p); err != nil {
		t.Fatalf("Reinit: %v", err)
	}
	x1, _, err := m.Forward(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(x1, 0, 1e-6) {
		t.Errorf("after re-centering, Forward(0, 10) x = %g, want 0", x1)
	}
	if scalar.EqualWithinAbs(x0, x1, 1) {
		t.Error("re-centering did not change the projection")
	}

	// A failed Reinit must leave the previous state usable.
	bad := m.Params()
	bad.Projection = "no such projection"
	if err := m.Reinit(bad); err == nil {
		t.Fatal("Reinit with an unknown projection succeeded")
	}
	x2, _, err := m.Forward(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(x2, x1, 1e-9) {
		t.Errorf("state changed after failed Reinit: x = %g, want %g", x2, x1)
	}
}

func TestRoundTripValidation(t *testing.T) {
	// With a tolerance configured, clean transforms still succeed.
	m := newTestMap(t, "UTM", func(p *Params) {
		p.Lat0 = 40
		p.Lon0 = -105
	})
	if m.Params().MaxError != 100 {
		t.Fatalf("UTM MaxError = %g, want 100", m.Params().MaxError)
	}
	if _, _, err := m.Forward(39.7392, -104.9903); err != nil {
		t.Errorf("validated Forward: %v", err)
	}

	x, y, err := m.Forward(44, -106)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.Inverse(x, y); err != nil {
		t.Errorf("validated Inverse: %v", err)
	}
}

func TestAccuracyError(t *testing.T) {
	m := newTestMap(t, "UTM", func(p *Params) {
		p.Lat0 = 40
		p.Lon0 = -105
		p.MaxError = 1e-13
	})
	// The series truncation error is far above this tolerance away from
	// the central meridian.
	x, y, err := m.Forward(44, -106)
	var aerr *AccuracyError
	if !errors.As(err, &aerr) {
		t.Fatalf("Forward error = %v, want AccuracyError", err)
	}
	if !math.IsNaN(x) || !math.IsNaN(y) {
		t.Errorf("failed Forward returned (%g, %g), want NaN", x, y)
	}
	if aerr.Tolerance != 1e-13 || aerr.Distance <= aerr.Tolerance {
		t.Errorf("Distance = %g, Tolerance = %g", aerr.Distance, aerr.Tolerance)
	}

	lat, lon, err := m.Inverse(400000, 4.9e6)
	if !errors.As(err, &aerr) {
		t.Fatalf("Inverse error = %v, want AccuracyError", err)
	}
	if !math.IsNaN(lat) || !math.IsNaN(lon) {
		t.Errorf("failed Inverse returned (%g, %g), want NaN", lat, lon)
	}

	// The failure is local to the call: on the central meridian the
	// round trip is exact and the same context still transforms.
	x, y, err = m.Forward(0, -105)
	if err != nil {
		t.Fatalf("Forward after accuracy failure: %v", err)
	}
	if !scalar.EqualWithinAbs(x, 500000, 1e-6) || !scalar.EqualWithinAbs(y, 0, 1e-6) {
		t.Errorf("Forward(0, -105) = (%g, %g), want (500000, 0)", x, y)
	}
}

// inverseless fails every map→geo call, leaving the validator with a
// round trip it cannot measure.
type inverseless struct{}

func (inverseless) init(*derived, *Params) error { return nil }

func (inverseless) forward(lat, lon float64) (float64, float64, error) {
	return lon, lat, nil
}

func (inverseless) inverse(u, v float64) (float64, float64, error) {
	return 0, 0, &DomainError{Proj: "inverseless", Detail: "no inverse"}
}

func TestValidatorUnmeasurableRoundTrip(t *testing.T) {
	d := &derived{a: 1, rg: 1, scale: 1, cosR: 1, maxErr: 0.5, proj: inverseless{}}
	m := &Mapx{derived: d}
	x, y, err := m.Forward(10, 20)
	var aerr *AccuracyError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v, want AccuracyError", err)
	}
	if !math.IsNaN(aerr.Distance) || aerr.Tolerance != 0.5 {
		t.Errorf("Distance = %g, Tolerance = %g", aerr.Distance, aerr.Tolerance)
	}
	if !math.IsNaN(x) || !math.IsNaN(y) {
		t.Errorf("failed Forward returned (%g, %g), want NaN", x, y)
	}
}

func TestGeodesic(t *testing.T) {
	// Quarter meridian on a sphere.
	d := geodesic(AuthalicSphereRadius, 0, 0, 0, radians(90), 0)
	want := AuthalicSphereRadius * math.Pi / 2
	if !scalar.EqualWithinAbs(d, want, 1e-3) {
		t.Errorf("sphere quarter meridian = %g, want %g", d, want)
	}

	// WGS-84 quarter meridian is close to 10,001,966 m.
	f := 1 - math.Sqrt(1-WGS84Eccentricity*WGS84Eccentricity)
	d = geodesic(WGS84EquatorialRadius, f, 0, 0, radians(90), 0)
	if !scalar.EqualWithinAbs(d, 1.0001966e7, 5e3) {
		t.Errorf("ellipsoid quarter meridian = %g", d)
	}

	if d := geodesic(WGS84EquatorialRadius, f, radians(40), radians(-105), radians(40), radians(-105)); d != 0 {
		t.Errorf("zero-length geodesic = %g", d)
	}
}
