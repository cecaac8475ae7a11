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
	"strings"
)

// ParameterError indicates missing or contradictory configuration and is
// only returned at construction time; a Mapx is never created from
// parameters that produce one.
type ParameterError struct {
	Msg string
}

func (e *ParameterError) Error() string {
	return "mapx: parameter: " + e.Msg
}

func parameterErrorf(format string, args ...interface{}) error {
	return &ParameterError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownProjectionError is returned when a projection name cannot be
// resolved through the alias table. Valid holds the canonical names.
type UnknownProjectionError struct {
	Name  string
	Valid []string
}

func (e *UnknownProjectionError) Error() string {
	return fmt.Sprintf("mapx: unknown projection %q (valid names: %s)",
		e.Name, strings.Join(e.Valid, "; "))
}

// DomainError indicates a point outside a projection's valid
// mathematical domain, such as the antipodal point in an orthographic
// map or a longitude 90° from the central meridian in a transverse
// Mercator map. The output coordinates of the failed call are NaN.
type DomainError struct {
	Proj   string
	Detail string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("mapx: %s: point outside projection domain: %s", e.Proj, e.Detail)
}

// ConvergenceError indicates that an iterative solver exhausted its
// iteration budget without reaching its convergence tolerance. It is a
// hard failure; no best-effort estimate is returned.
type ConvergenceError struct {
	Proj       string
	Op         string
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("mapx: %s: %s did not converge after %d iterations",
		e.Proj, e.Op, e.Iterations)
}

// AccuracyError indicates that round-trip validation of a transform
// exceeded the configured maximum error. Distance and Tolerance are in
// the units of the ellipsoid equatorial radius.
type AccuracyError struct {
	Distance  float64
	Tolerance float64
}

func (e *AccuracyError) Error() string {
	return fmt.Sprintf("mapx: round-trip error %g exceeds maximum %g",
		e.Distance, e.Tolerance)
}
