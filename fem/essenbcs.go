// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// EssentialBc holds information about essential bounday conditions such as constrained nodes.
// Constraints are imposed by elimination:
//
//	y[Eq] = Fcn.F(t, nil)
type EssentialBc struct {
	Key string // key such as 'ux', 'uy', 'p'
	Eq  int    // equation number
	Fcn dbf.T  // function that computes the prescribed value
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential bcs / constraints.
// Each equation is constrained at most once; setting it again replaces the previous constraint.
type EssentialBcs struct {
	Bcs    EbcArray    // active essential bcs / constraints
	eq2idx map[int]int // equation => index in Bcs
}

// Init initialises this structure
func (o *EssentialBcs) Init() {
	o.Bcs = make([]*EssentialBc, 0)
	o.eq2idx = make(map[int]int)
}

// Set sets a single-point constraint on all nodes with a given key
//
//	key -- Dof key such as "ux", "uy" or "p"
//	Note: nodes without key are skipped; e.g. "p" at midside nodes of tri6 with LBB
func (o *EssentialBcs) Set(key string, nodes []*Node, fcn dbf.T) (err error) {

	// check
	if o.eq2idx == nil {
		o.Init()
	}
	if len(nodes) == 0 {
		return chk.Err("cannot set %q constraint without nodes", key)
	}
	if fcn == nil {
		return chk.Err("cannot set %q constraint without function", key)
	}
	switch key {
	case "ux", "uy", "p":
	default:
		return chk.Err("cannot set constraint with key %q; use \"ux\", \"uy\" or \"p\"", key)
	}

	// for each node
	for _, nod := range nodes {

		// get DOF
		d := nod.GetDof(key)
		if d == nil {
			continue
		}

		// set constraint
		o.set_eq(key, d.Eq, fcn)
	}
	return
}

// Values returns the prescribed values at time t
func (o *EssentialBcs) Values(t float64) (vals map[int]float64) {
	vals = make(map[int]float64, len(o.Bcs))
	for _, bc := range o.Bcs {
		vals[bc.Eq] = bc.Fcn.F(t, nil)
	}
	return
}

// Apply imposes the constraints into the global system at time t
func (o *EssentialBcs) Apply(g *Global, t float64) (err error) {
	return g.Constrain(o.Values(t))
}

// Has returns whether equation eq is constrained
func (o *EssentialBcs) Has(eq int) bool {
	_, ok := o.eq2idx[eq]
	return ok
}

// List returns a simple list logging bcs at time t
func (o *EssentialBcs) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%25s%25s\n", "eq", "key", "value @ t=0", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	sort.Sort(o.Bcs)
	for i, bc := range o.Bcs {
		o.eq2idx[bc.Eq] = i
		l += io.Sf("%8d%8s%25.13f%25.13f\n", bc.Eq, bc.Key, bc.Fcn.F(0, nil), bc.Fcn.F(t, nil))
	}
	l += "==================================================================\n"
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// set_eq sets/replace constraint
func (o *EssentialBcs) set_eq(key string, eq int, fcn dbf.T) {

	// replace existent
	if idx, ok := o.eq2idx[eq]; ok {
		o.Bcs[idx].Key, o.Bcs[idx].Fcn = key, fcn
		return
	}

	// add new
	o.eq2idx[eq] = len(o.Bcs)
	o.Bcs = append(o.Bcs, &EssentialBc{key, eq, fcn})
}

// functions to implement Sort interface
func (o EbcArray) Len() int           { return len(o) }
func (o EbcArray) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool { return o[i].Eq < o[j].Eq }
