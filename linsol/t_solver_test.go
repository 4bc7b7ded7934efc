// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// matvec computes A・x
func matvec(A Sparse, x []float64) (y []float64) {
	n, _ := A.Dims()
	y = make([]float64, n)
	A.DoNonZero(func(i, j int, v float64) {
		y[i] += v * x[j]
	})
	return
}

func Test_band01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("band01. small systems")

	// tridiagonal
	A := sparse.NewDOK(4, 4)
	for i := 0; i < 4; i++ {
		A.Set(i, i, 2)
		if i > 0 {
			A.Set(i, i-1, -1)
		}
		if i < 3 {
			A.Set(i, i+1, -1)
		}
	}
	for _, name := range []string{"band", "dense"} {
		solver, err := New(name)
		require.NoError(tst, err)
		require.NoError(tst, solver.Init(A.ToCSR()))
		x := make([]float64, 4)
		require.NoError(tst, solver.Solve(x, []float64{1, 0, 0, 1}))
		io.Pforan("%s: x = %v\n", name, x)
		chk.Array(tst, name+": x", 1e-14, x, []float64{1, 1, 1, 1})
		n, kl, ku, nnz := solver.Stats()
		assert.Equal(tst, []int{4, 1, 1, 10}, []int{n, kl, ku, nnz})
	}

	// zero diagonal requires pivoting
	B := sparse.NewDOK(3, 3)
	B.Set(0, 1, 1)
	B.Set(1, 0, 1)
	B.Set(1, 2, 2)
	B.Set(2, 1, 2)
	B.Set(2, 2, 1)
	band := new(Band)
	require.NoError(tst, band.Init(B))
	x := make([]float64, 3)
	require.NoError(tst, band.Solve(x, []float64{2, 7, 7}))
	chk.Array(tst, "x", 1e-14, x, []float64{1, 2, 3})
}

func Test_band02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("band02. random banded unsymmetric")

	rnd := rand.New(rand.NewSource(1234))
	n, kl, ku := 60, 4, 7
	A := sparse.NewDOK(n, n)
	for i := 0; i < n; i++ {
		for j := max(0, i-kl); j <= min(n-1, i+ku); j++ {
			if rnd.Float64() < 0.7 {
				A.Set(i, j, rnd.Float64()*2-1)
			}
		}
		A.Set(i, i, 0.01*rnd.Float64()) // small diagonal forces interchanges
	}
	xcorrect := make([]float64, n)
	for i := range xcorrect {
		xcorrect[i] = float64(i%5) - 2
	}
	b := matvec(A, xcorrect)

	for _, name := range Names() {
		solver, err := New(name)
		require.NoError(tst, err)
		require.NoError(tst, solver.Init(A.ToCSR()))
		x := make([]float64, n)
		require.NoError(tst, solver.Solve(x, b))
		r := matvec(A, x)
		floats.Sub(r, b)
		io.Pforan("%s: ‖A・x-b‖ = %v\n", name, floats.Norm(r, 2))
		chk.Array(tst, name+": x", 1e-9, x, xcorrect)
	}
}

func Test_band03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("band03. singular and invalid")

	// singular: two equal rows
	A := sparse.NewDOK(3, 3)
	A.Set(0, 0, 1)
	A.Set(0, 1, 2)
	A.Set(1, 0, 1)
	A.Set(1, 1, 2)
	A.Set(2, 2, 1)
	for _, name := range Names() {
		solver, err := New(name)
		require.NoError(tst, err)
		err = solver.Init(A)
		var serr *SingularError
		require.True(tst, errors.As(err, &serr), "%s: SingularError expected; got %v", name, err)
		io.Pforan("%s: %v\n", name, err)
		x := make([]float64, 3)
		assert.Error(tst, solver.Solve(x, []float64{1, 1, 1}), "Solve after failed Init must fail")
	}

	// band reports the equation
	band := new(Band)
	err := band.Init(A)
	var serr *SingularError
	require.True(tst, errors.As(err, &serr))
	assert.Equal(tst, 1, serr.Eq)

	// zero matrix
	assert.Error(tst, band.Init(sparse.NewDOK(2, 2)))

	// non-square
	assert.Error(tst, band.Init(sparse.NewDOK(2, 3)))

	// wrong sizes
	I := sparse.NewDOK(2, 2)
	I.Set(0, 0, 1)
	I.Set(1, 1, 1)
	require.NoError(tst, band.Init(I))
	assert.Error(tst, band.Solve(make([]float64, 3), make([]float64, 2)))

	// unknown solver
	_, err = New("umfpack")
	assert.Error(tst, err)
	solver, err := New("")
	require.NoError(tst, err)
	assert.IsType(tst, &Band{}, solver)
}
