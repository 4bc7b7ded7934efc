// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// MaxCond is the largest condition number accepted by the dense solver
var MaxCond = 1e15

// Dense implements a direct solver based on dense LU factorisation (gonum)
//
//	Note: only suitable for small systems; e.g. tests
type Dense struct {
	n, kl, ku, nnz int    // dimension, bandwidths and number of non-zeros
	lu             mat.LU // factorisation
	ready          bool   // factorisation is available
}

// add solver to factory
func init() {
	allocators["dense"] = func() Solver { return new(Dense) }
}

// Init analyses and factorises A
func (o *Dense) Init(A Sparse) (err error) {
	o.ready = false
	o.n, o.kl, o.ku, o.nnz, err = bandwidths(A)
	if err != nil {
		return
	}
	a := mat.NewDense(o.n, o.n, nil)
	A.DoNonZero(func(i, j int, v float64) {
		a.Set(i, j, a.At(i, j)+v)
	})
	o.lu.Factorize(a)
	if cond := o.lu.Cond(); cond > MaxCond || math.IsNaN(cond) {
		return &SingularError{-1, cond}
	}
	o.ready = true
	return
}

// Solve solves A・x = b with factorised A
func (o *Dense) Solve(x, b []float64) (err error) {
	if !o.ready {
		return chk.Err("dense solver: Init must be called (and succeed) before Solve")
	}
	if len(x) != o.n || len(b) != o.n {
		return chk.Err("dense solver: vectors must have size %d; len(x)=%d and len(b)=%d are invalid", o.n, len(x), len(b))
	}
	dst := mat.NewVecDense(o.n, x)
	err = o.lu.SolveVecTo(dst, false, mat.NewVecDense(o.n, append([]float64{}, b...)))
	if err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return &SingularError{-1, float64(cond)}
		}
		return chk.Err("dense solver failed:\n%v", err)
	}
	return
}

// Stats returns the dimension, bandwidths and number of non-zeros of A
func (o *Dense) Stats() (n, kl, ku, nnz int) {
	return o.n, o.kl, o.ku, o.nnz
}
