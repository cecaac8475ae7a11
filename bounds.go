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

// deriveBounds validates and normalizes the configured geographic
// bounds. West and east must lie in [-180, 360] and span at most 360°;
// if both exceed 180 they are shifted down a revolution. The straddle
// flag records an antimeridian-crossing map before both longitudes are
// normalized to [-180, 180].
func deriveBounds(p Params) (south, north, west, east float64, straddle bool, err error) {
	south, north = p.SouthBound, p.NorthBound
	west, east = p.WestBound, p.EastBound
	if south < -90 || north > 90 || south > north {
		return 0, 0, 0, 0, false,
			parameterErrorf("latitude bounds %g..%g invalid", south, north)
	}
	if west < -180 || west > 360 || east < -180 || east > 360 {
		return 0, 0, 0, 0, false,
			parameterErrorf("longitude bounds %g..%g outside [-180, 360]", west, east)
	}
	if east-west > 360 {
		return 0, 0, 0, 0, false,
			parameterErrorf("longitude bounds %g..%g span more than 360 degrees", west, east)
	}
	if west > 180 && east > 180 {
		west -= 360
		east -= 360
	}
	straddle = east < west || east > 180
	west = normlon(west)
	east = normlon(east)
	return south, north, west, east, straddle, nil
}

// Within reports whether the point lies inside the configured
// geographic bounds. On an antimeridian-straddling map the excluded
// region is the gap strictly between the eastern and western bounds on
// the far side of the map.
func (m *Mapx) Within(lat, lon float64) bool {
	d := m.derived
	if lat < d.south || lat > d.north {
		return false
	}
	lon = normlon(lon)
	if d.straddle {
		return !(lon > d.east && lon < d.west)
	}
	return lon >= d.west && lon <= d.east
}
