// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// PivTol is the tolerance (relative to the largest entry of A) below which pivots are zero
var PivTol = 1e-14

// Band implements a direct solver for banded matrices: LU factorisation with partial pivoting.
// Row r of A is stored in ab[r] with column c at position c - r + kl; each row has
// 2・kl + ku + 1 entries to accommodate fill-in due to row interchanges.
type Band struct {
	n, kl, ku, nnz int         // dimension, lower and upper bandwidths, number of non-zeros
	ab             [][]float64 // [n][2kl+ku+1] band storage of U (after Init)
	ml             [][]float64 // [n][kl] multipliers of L; ml[k][i] => row k+1+i
	ipiv           []int       // [n] row interchanged with row k at step k
	ready          bool        // factorisation is available
}

// add solver to factory
func init() {
	allocators["band"] = func() Solver { return new(Band) }
}

// Init analyses and factorises A
func (o *Band) Init(A Sparse) (err error) {

	// dimensions
	o.ready = false
	o.n, o.kl, o.ku, o.nnz, err = bandwidths(A)
	if err != nil {
		return
	}
	n, kl, ku := o.n, o.kl, o.ku

	// fill band storage
	w := 2*kl + ku + 1
	o.ab = utl.Alloc(n, w)
	anorm := 0.0
	A.DoNonZero(func(i, j int, v float64) {
		o.ab[i][j-i+kl] += v
		anorm = math.Max(anorm, math.Abs(v))
	})
	if anorm == 0 {
		return &SingularError{0, 0}
	}
	tol := PivTol * anorm

	// factorise
	o.ml = utl.Alloc(n, kl)
	o.ipiv = make([]int, n)
	for k := 0; k < n; k++ {
		imax := min(n-1, k+kl)
		cmax := min(n-1, k+kl+ku)

		// find pivot in column k
		p := k
		for i := k + 1; i <= imax; i++ {
			if math.Abs(o.ab[i][k-i+kl]) > math.Abs(o.ab[p][k-p+kl]) {
				p = i
			}
		}
		piv := o.ab[p][k-p+kl]
		if math.Abs(piv) <= tol {
			return &SingularError{k, piv}
		}
		o.ipiv[k] = p

		// interchange rows
		if p != k {
			for c := k; c <= cmax; c++ {
				o.ab[k][c-k+kl], o.ab[p][c-p+kl] = o.ab[p][c-p+kl], o.ab[k][c-k+kl]
			}
		}

		// eliminate
		rk := o.ab[k]
		for i := k + 1; i <= imax; i++ {
			ri := o.ab[i]
			m := ri[k-i+kl] / rk[kl]
			o.ml[k][i-k-1] = m
			ri[k-i+kl] = 0
			if m == 0 {
				continue
			}
			for c := k + 1; c <= cmax; c++ {
				ri[c-i+kl] -= m * rk[c-k+kl]
			}
		}
	}
	o.ready = true
	return
}

// Solve solves A・x = b with factorised A
func (o *Band) Solve(x, b []float64) (err error) {

	// check
	if !o.ready {
		return chk.Err("band solver: Init must be called (and succeed) before Solve")
	}
	if len(x) != o.n || len(b) != o.n {
		return chk.Err("band solver: vectors must have size %d; len(x)=%d and len(b)=%d are invalid", o.n, len(x), len(b))
	}
	n, kl, ku := o.n, o.kl, o.ku

	// forward: x := L⁻¹・P・b
	copy(x, b)
	for k := 0; k < n; k++ {
		if p := o.ipiv[k]; p != k {
			x[k], x[p] = x[p], x[k]
		}
		imax := min(n-1, k+kl)
		for i := k + 1; i <= imax; i++ {
			x[i] -= o.ml[k][i-k-1] * x[k]
		}
	}

	// backward: x := U⁻¹・x
	for k := n - 1; k >= 0; k-- {
		rk := o.ab[k]
		cmax := min(n-1, k+kl+ku)
		for c := k + 1; c <= cmax; c++ {
			x[k] -= rk[c-k+kl] * x[c]
		}
		x[k] /= rk[kl]
	}

	// check
	if floats.HasNaN(x) {
		return &SingularError{-1, math.NaN()}
	}
	return
}

// Stats returns the dimension, bandwidths and number of non-zeros of A
func (o *Band) Stats() (n, kl, ku, nnz int) {
	return o.n, o.kl, o.ku, o.nnz
}
