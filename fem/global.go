// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/james-bowman/sparse"
)

// Global holds the global system K・y = F
type Global struct {
	Neq int         // number of equations
	K   *sparse.DOK // global matrix (dictionary of keys)
	F   []float64   // global right-hand side
}

// NewGlobal allocates a new global system with neq equations
func NewGlobal(neq int) (o *Global) {
	if neq < 1 {
		chk.Panic("cannot allocate global system with %d equations", neq)
	}
	o = &Global{Neq: neq}
	o.Reset()
	return
}

// Reset zeroes the global system
func (o *Global) Reset() {
	o.K = sparse.NewDOK(o.Neq, o.Neq)
	o.F = make([]float64, o.Neq)
}

// Scatter adds an element system into the global system
//
//	K   -- [nloc][nloc] element matrix
//	F   -- [nloc] element right-hand side
//	eqs -- [nloc] global equations
func (o *Global) Scatter(K [][]float64, F []float64, eqs []int) {
	for i, I := range eqs {
		o.F[I] += F[i]
		for j, J := range eqs {
			if K[i][j] != 0 {
				o.K.Set(I, J, o.K.At(I, J)+K[i][j])
			}
		}
	}
}

// Triplet holds one non-zero entry of a sparse matrix
type Triplet struct {
	I, J int     // row and column
	V    float64 // value
}

// Triplets returns all non-zero entries of K sorted by row and column
func (o *Global) Triplets() (t []Triplet) {
	t = make([]Triplet, 0, o.K.NNZ())
	o.K.DoNonZero(func(i, j int, v float64) {
		t = append(t, Triplet{i, j, v})
	})
	sort.Slice(t, func(a, b int) bool {
		if t[a].I != t[b].I {
			return t[a].I < t[b].I
		}
		return t[a].J < t[b].J
	})
	return
}

// Constrain imposes y[eq] = vals[eq] by elimination. For each prescribed equation d:
//
//	F[i] -= K[i][d]・v  for all free rows i
//	K[d][:] = K[:][d] = 0,  K[d][d] = 1,  F[d] = v
func (o *Global) Constrain(vals map[int]float64) (err error) {

	// check
	for eq := range vals {
		if eq < 0 || eq >= o.Neq {
			return chk.Err("cannot constrain equation %d: it must be in [0, %d)", eq, o.Neq)
		}
	}

	// modify right-hand side and collect entries of free rows and columns
	entries := o.Triplets()
	o.K = sparse.NewDOK(o.Neq, o.Neq)
	for _, t := range entries {
		_, rowFixed := vals[t.I]
		v, colFixed := vals[t.J]
		if rowFixed {
			continue
		}
		if colFixed {
			o.F[t.I] -= t.V * v
			continue
		}
		o.K.Set(t.I, t.J, t.V)
	}

	// prescribed values
	eqs := make([]int, 0, len(vals))
	for eq := range vals {
		eqs = append(eqs, eq)
	}
	sort.Ints(eqs)
	for _, eq := range eqs {
		o.K.Set(eq, eq, 1)
		o.F[eq] = vals[eq]
	}
	return
}

// ToCSR returns the compressed form of K
func (o *Global) ToCSR() *sparse.CSR {
	return o.K.ToCSR()
}
