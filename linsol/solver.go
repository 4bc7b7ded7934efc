// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package linsol implements direct solvers for sparse linear systems
package linsol

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Sparse defines the sparse matrices accepted by solvers; e.g. *sparse.CSR or *sparse.DOK
type Sparse interface {
	Dims() (r, c int)                       // number of rows and columns
	DoNonZero(fn func(i, j int, v float64)) // calls fn for each non-zero entry
}

// Solver defines linear solvers
//
//	Note: the matrix must not be modified after Init
type Solver interface {
	Init(A Sparse) error         // analyses and factorises A
	Solve(x, b []float64) error  // solves A・x = b with factorised A
	Stats() (n, kl, ku, nnz int) // dimension, bandwidths and number of non-zeros of A
}

// SingularError reports a zero (or too small) pivot during factorisation
type SingularError struct {
	Eq    int     // equation (column) where factorisation failed; -1 if unknown
	Pivot float64 // offending pivot; or condition number if Eq == -1
}

func (e *SingularError) Error() string {
	if e.Eq < 0 {
		return io.Sf("matrix is singular or ill-conditioned: condition number = %g", e.Pivot)
	}
	return io.Sf("matrix is singular: pivot = %g at equation %d", e.Pivot, e.Eq)
}

// allocators holds all available solvers
var allocators = make(map[string]func() Solver)

// New returns a new solver
//
//	name -- "band" or "dense"; empty means "band"
func New(name string) (Solver, error) {
	if name == "" {
		name = "band"
	}
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find linear solver named %q; available: %v", name, Names())
	}
	return alloc(), nil
}

// Names returns the names of all available solvers
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// bandwidths computes the dimension, lower and upper bandwidths and number of non-zeros of A
func bandwidths(A Sparse) (n, kl, ku, nnz int, err error) {
	r, c := A.Dims()
	if r != c {
		return 0, 0, 0, 0, chk.Err("matrix must be square; %d×%d is invalid", r, c)
	}
	if r < 1 {
		return 0, 0, 0, 0, chk.Err("matrix must have at least one row")
	}
	n = r
	A.DoNonZero(func(i, j int, v float64) {
		if v == 0 {
			return
		}
		nnz++
		if i-j > kl {
			kl = i - j
		}
		if j-i > ku {
			ku = j - i
		}
	})
	return
}
