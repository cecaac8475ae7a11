package mapx

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestUTMConventions(t *testing.T) {
	m := newTestMap(t, "UTM", func(p *Params) {
		p.Lat0 = 40
		p.Lon0 = -105
	})
	p := m.Params()
	if p.UTMZone != 13 {
		t.Errorf("zone for 105°W = %d, want 13", p.UTMZone)
	}
	if p.Lat0 != 0 || p.Lon0 != -105 {
		t.Errorf("projection origin = %g, %g, want 0, -105", p.Lat0, p.Lon0)
	}
	if p.CenterScale != 0.9996 {
		t.Errorf("CenterScale = %g, want 0.9996", p.CenterScale)
	}
	if p.FalseEasting != 500000 || p.FalseNorthing != 0 {
		t.Errorf("false offsets = %g, %g, want 500000, 0", p.FalseEasting, p.FalseNorthing)
	}
	if p.MaxError != 100 {
		t.Errorf("MaxError = %g, want 100", p.MaxError)
	}
	if p.EquatorialRadius != WGS84EquatorialRadius || p.Eccentricity != WGS84Eccentricity {
		t.Errorf("ellipsoid = %g, %g, want WGS-84", p.EquatorialRadius, p.Eccentricity)
	}

	// Points west of the central meridian fall short of the false
	// easting, points east exceed it.
	x, _, err := m.Forward(40, -105.5)
	if err != nil {
		t.Fatal(err)
	}
	if x >= 500000 {
		t.Errorf("easting west of the central meridian = %g", x)
	}
	x, _, err = m.Forward(40, -104.5)
	if err != nil {
		t.Fatal(err)
	}
	if x <= 500000 {
		t.Errorf("easting east of the central meridian = %g", x)
	}
}

func TestUTMSouthernHemisphere(t *testing.T) {
	m := newTestMap(t, "UTM", func(p *Params) {
		p.Lat0 = -33.9
		p.Lon0 = 18.4
	})
	p := m.Params()
	if p.UTMZone != 34 {
		t.Errorf("zone for 18.4°E = %d, want 34", p.UTMZone)
	}
	if p.FalseNorthing != 1e7 {
		t.Errorf("southern FalseNorthing = %g, want 1e7", p.FalseNorthing)
	}
	_, y, err := m.Forward(-33.9, 18.4)
	if err != nil {
		t.Fatal(err)
	}
	if y <= 0 || y >= 1e7 {
		t.Errorf("southern northing = %g, want in (0, 1e7)", y)
	}
}

func TestUTMExplicitZone(t *testing.T) {
	m := newTestMap(t, "UTM", func(p *Params) {
		p.UTMZone = 31
	})
	p := m.Params()
	if p.Lon0 != 3 {
		t.Errorf("central meridian of zone 31 = %g, want 3", p.Lon0)
	}

	bad := DefaultParams()
	bad.Projection = "UTM"
	bad.UTMZone = 61
	_, err := New(bad)
	var perr *ParameterError
	if !errors.As(err, &perr) {
		t.Errorf("zone 61: error = %v, want ParameterError", err)
	}

	missing := DefaultParams()
	missing.Projection = "UTM"
	_, err = New(missing)
	if !errors.As(err, &perr) {
		t.Errorf("no zone, no longitude: error = %v, want ParameterError", err)
	}
}

// Compare the ellipsoidal series against a published Snyder test point:
// Clarke 1866, central meridian 75°W, k0 = 0.9996, lat 40°30'N,
// lon 73°30'W gives x = 127,106.5 m and y = 4,484,124.4 m
// (Snyder, Map Projections: A Working Manual, p. 269).
func TestTransverseMercatorSnyderPoint(t *testing.T) {
	m := newTestMap(t, "Transverse Mercator (Ellipsoid)", func(p *Params) {
		p.Lat0 = 0
		p.Lon0 = -75
		p.CenterScale = 0.9996
	})
	x, y, err := m.Forward(40.5, -73.5)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(x, 127106.5, 1.0) {
		t.Errorf("x = %g, want 127106.5", x)
	}
	if !scalar.EqualWithinAbs(y, 4484124.4, 1.0) {
		t.Errorf("y = %g, want 4484124.4", y)
	}

	lat, lon, err := m.Inverse(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(lat, 40.5, 1e-6) || !scalar.EqualWithinAbs(lon, -73.5, 1e-6) {
		t.Errorf("inverse = %g, %g, want 40.5, -73.5", lat, lon)
	}
}
