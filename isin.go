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

// isinRow describes one latitudinal half-band of the integerized
// sinusoidal grid: how many equal-area columns ring the globe at that
// band, which column's left edge touches the central meridian, and the
// reciprocal column count used by the inverse lookup.
type isinRow struct {
	ncol    int
	icolCen int
	ncolInv float64
}

// zoneTable is the discrete spatial index of the integerized
// sinusoidal projection: one row descriptor per half-band from the
// equator to the pole, mirrored across the equator. It is built once
// per configuration and owned by its Mapx.
type zoneTable struct {
	rows     []isinRow
	dlat     float64 // band height, radians
	colWidth float64 // equatorial column width, map units
}

// newZoneTable builds the table for nzone latitude bands pole to pole.
// Justify 0 rounds each band's column count to nearest; 1 rounds to the
// nearest even count; 2 rounds down to an even count. For justify 0 and
// 1 the equatorial band gets exactly 2*nzone columns.
func newZoneTable(nzone, justify int, rg float64) *zoneTable {
	half := nzone / 2
	t := &zoneTable{
		rows:     make([]isinRow, half),
		dlat:     halfPi / float64(half),
		colWidth: math.Pi * rg / float64(nzone),
	}
	for i := range t.rows {
		clat := (float64(i) + 0.5) * t.dlat
		raw := 2 * float64(nzone) * math.Cos(clat)
		var ncol int
		switch justify {
		case 0:
			ncol = int(raw + 0.5)
		case 1:
			ncol = 2 * int(0.5*raw+0.5)
		default:
			ncol = 2 * int(0.5*raw)
		}
		if ncol < 1 {
			ncol = 1
		}
		t.rows[i] = isinRow{
			ncol:    ncol,
			icolCen: ncol / 2,
			ncolInv: 1 / float64(ncol),
		}
	}
	return t
}

// row returns the half-band descriptor for a latitude, clamped at the
// pole and mirrored across the equator.
func (t *zoneTable) row(lat float64) isinRow {
	i := int(math.Abs(lat) / t.dlat)
	if i >= len(t.rows) {
		i = len(t.rows) - 1
	}
	return t.rows[i]
}

// integerizedSinusoidal maps latitude to a half-band row and fractional
// longitude to a column offset from the band's center column. Northing
// is continuous as in the plain sinusoidal; easting is quantized to the
// band's column geometry, giving near-constant-area cells.
type integerizedSinusoidal struct {
	d     *derived
	zones *zoneTable
}

func (p *integerizedSinusoidal) init(d *derived, params *Params) error {
	p.d = d
	p.zones = newZoneTable(params.ISinNZone, params.ISinJustify, d.rg)
	return nil
}

func (p *integerizedSinusoidal) forward(lat, lon float64) (u, v float64, err error) {
	if math.Abs(lat) > halfPi+eps {
		return 0, 0, &DomainError{Proj: "Integerized Sinusoidal", Detail: "latitude beyond the pole"}
	}
	lat = clampAbs(lat, halfPi)
	r := p.zones.row(lat)
	flon := (adjlon(lon-p.d.lon0) + math.Pi) / twoPi
	col := flon * float64(r.ncol)
	u = (col - float64(r.icolCen)) * p.zones.colWidth
	v = p.d.rg * lat
	return u, v, nil
}

func (p *integerizedSinusoidal) inverse(u, v float64) (lat, lon float64, err error) {
	lat = v / p.d.rg
	if math.Abs(lat) > halfPi+eps {
		return 0, 0, &DomainError{Proj: "Integerized Sinusoidal", Detail: "northing beyond the pole"}
	}
	lat = clampAbs(lat, halfPi)
	r := p.zones.row(lat)
	col := u/p.zones.colWidth + float64(r.icolCen)
	flon := col * r.ncolInv
	if flon < -eps || flon > 1+eps {
		return 0, 0, &DomainError{Proj: "Integerized Sinusoidal", Detail: "easting outside the band"}
	}
	if flon < 0 {
		flon = 0
	} else if flon > 1 {
		flon = 1
	}
	return lat, adjlon(p.d.lon0 + flon*twoPi - math.Pi), nil
}
