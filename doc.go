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

// Package mapx converts between geographic coordinates on a sphere or
// reference ellipsoid and planar map coordinates for satellite-swath
// regridding.
//
// A Mapx is built from a Params record that names one of the supported
// map projections and supplies a reference point, ellipsoid shape,
// scale, rotation and geographic bounds. Construction resolves the
// projection name through an alias table, applies projection-family
// defaults for any ellipsoid parameters left unset, and derives the
// constants the transforms need. Construction either succeeds
// completely or returns an error; there is no partially initialized
// state.
//
// Angles cross the package boundary in decimal degrees; all internal
// work is in radians. Forward and Inverse report failures (points
// outside a projection's mathematical domain, iterative solvers that do
// not converge, round-trip error above the configured tolerance) as
// typed errors alongside NaN coordinates. A failed call does not affect
// later calls on the same Mapx.
//
// A derived Mapx is immutable: concurrent Forward, Inverse and Within
// calls from multiple goroutines are safe, which is how row-parallel
// grid resamplers use it. Reinit replaces the derived state and must
// not race with in-flight transforms. No explicit release is needed;
// the integerized-sinusoidal zone table is owned by its Mapx and is
// collected with it.
package mapx
