// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
)

// GeometryError reports a cell with non-positive Jacobian determinant
type GeometryError struct {
	CellId int   // id of cell
	Err    error // underlying *shp.GeometryError
}

func (e *GeometryError) Error() string {
	return io.Sf("cell %d has an invalid geometry: %v", e.CellId, e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }

// DofMismatchError reports that the number of equations of a cell does not match its shape structures
type DofMismatchError struct {
	CellId int    // id of cell
	Key    string // "u" or "p"
	Want   int    // number of equations required by the shape structure
	Got    int    // number of equations given
}

func (e *DofMismatchError) Error() string {
	return io.Sf("cell %d: number of %s equations %d does not match number required by shape structure %d", e.CellId, e.Key, e.Got, e.Want)
}

// OrderingError reports a pipeline stage called out of order
type OrderingError struct {
	Op    string // operation called; e.g. "Solve"
	Stage Stage  // current stage
}

func (e *OrderingError) Error() string {
	return io.Sf("%s cannot be called at stage %q", e.Op, e.Stage)
}

// SingularSystemError reports a singular global system
type SingularSystemError struct {
	Eq  int   // equation where factorisation failed; -1 if unknown
	Err error // underlying error from linear solver
}

func (e *SingularSystemError) Error() string {
	return io.Sf("global system is singular (equation %d): %v", e.Eq, e.Err)
}

func (e *SingularSystemError) Unwrap() error { return e.Err }
