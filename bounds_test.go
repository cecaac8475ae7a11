package mapx

import (
	"errors"
	"testing"
)

func TestWithin(t *testing.T) {
	m := newTestMap(t, "Cylindrical Equidistant", func(p *Params) {
		p.Lat0 = 0
		p.Lon0 = 0
		p.SouthBound = -60
		p.NorthBound = 60
		p.WestBound = -120
		p.EastBound = 30
	})
	cases := []struct {
		lat, lon float64
		want     bool
	}{
		{0, 0, true},
		{-60, -120, true},
		{60, 30, true},
		{61, 0, false},
		{0, 31, false},
		{0, -121, false},
		{0, 300, true}, // normalizes to -60
	}
	for _, c := range cases {
		if got := m.Within(c.lat, c.lon); got != c.want {
			t.Errorf("Within(%g, %g) = %v, want %v", c.lat, c.lon, got, c.want)
		}
	}
}

func TestWithinAcrossAntimeridian(t *testing.T) {
	m := newTestMap(t, "Cylindrical Equidistant", func(p *Params) {
		p.Lat0 = 0
		p.Lon0 = 180
		p.WestBound = 170
		p.EastBound = -170
	})
	cases := []struct {
		lon  float64
		want bool
	}{
		{180, true},
		{-180, true},
		{175, true},
		{-175, true},
		{170, true},
		{-170, true},
		{0, false},
		{160, false},
		{-160, false},
	}
	for _, c := range cases {
		if got := m.Within(0, c.lon); got != c.want {
			t.Errorf("Within(0, %g) = %v, want %v", c.lon, got, c.want)
		}
	}
}

// Bounds given as 190..350 describe the same strip as -170..-10 and
// must not be treated as straddling the antimeridian.
func TestBoundsAbove180(t *testing.T) {
	m := newTestMap(t, "Cylindrical Equidistant", func(p *Params) {
		p.Lat0 = 0
		p.Lon0 = -90
		p.WestBound = 190
		p.EastBound = 350
	})
	if !m.Within(0, -90) {
		t.Error("Within(0, -90) = false inside 190..350")
	}
	if m.Within(0, 0) {
		t.Error("Within(0, 0) = true outside 190..350")
	}
	if m.Within(0, 180) {
		t.Error("Within(0, 180) = true outside 190..350")
	}
}

func TestBoundsValidation(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Params)
	}{
		{"south above north", func(p *Params) { p.SouthBound = 10; p.NorthBound = -10 }},
		{"west below -180", func(p *Params) { p.WestBound = -190 }},
		{"east above 360", func(p *Params) { p.EastBound = 361 }},
		{"span above 360", func(p *Params) { p.WestBound = -180; p.EastBound = 200 }},
	}
	for _, c := range cases {
		p := DefaultParams()
		p.Projection = "Mercator"
		p.Lat0 = 0
		p.Lon0 = 0
		c.edit(&p)
		_, err := New(p)
		var perr *ParameterError
		if !errors.As(err, &perr) {
			t.Errorf("%s: error = %v, want ParameterError", c.name, err)
		}
	}
}
