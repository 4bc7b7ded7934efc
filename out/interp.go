// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/upfem/upfem/fem"
	"github.com/upfem/upfem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// TolR is the tolerance on natural coordinates used to decide whether a point is inside a cell
var TolR = 1e-8

// ValuesAt interpolates ux, uy and p at an arbitrary point x with the shape functions of the
// cell containing x. The first cell found is used if x is on a shared edge.
//
//	Output:
//	 vals -- "ux", "uy" and "p"
//	 cid  -- id of cell containing x
//	 r    -- natural coordinates of x in cell
func ValuesAt(x []float64) (vals map[string]float64, cid int, r []float64, err error) {

	// check
	if Dom == nil || Dom.Sol == nil {
		return nil, -1, nil, chk.Err("results are not available; call Start or StartDomain first")
	}
	if len(x) != 2 {
		return nil, -1, nil, chk.Err("point must have 2 coordinates; %d is invalid", len(x))
	}

	// find cell
	r = make([]float64, 3)
	for _, c := range Dom.Cells {
		if !in_box(c.X, x) {
			continue
		}

		// shapes
		ush := shp.Get(c.Cell.Type, 0)
		psh := shp.Get(fem.PressureType(c.Cell.Type, Dom.Dofs.Lbb), 0)
		if ush == nil || psh == nil {
			return nil, -1, nil, chk.Err("cannot get shape structures of cell %d", c.Cell.Id)
		}

		// natural coordinates
		if ush.InvMap(r, x, c.X) != nil {
			continue
		}
		if r[0] < -TolR || r[1] < -TolR || r[0]+r[1] > 1+TolR {
			continue
		}

		// displacements
		vals = map[string]float64{"ux": 0, "uy": 0, "p": 0}
		S := make([]float64, ush.Nverts)
		ush.Func(S, nil, r, false)
		for m := 0; m < ush.Nverts; m++ {
			vals["ux"] += S[m] * Dom.Sol[c.Umap[2*m]]
			vals["uy"] += S[m] * Dom.Sol[c.Umap[2*m+1]]
		}

		// pressure
		S = make([]float64, psh.Nverts)
		psh.Func(S, nil, r, false)
		for n, eq := range c.Pmap {
			vals["p"] += S[n] * Dom.Sol[eq]
		}
		return vals, c.Cell.Id, r, nil
	}
	return nil, -1, nil, chk.Err("cannot find cell containing point (%g, %g)", x[0], x[1])
}

// in_box tells whether y is within the bounding box of coordinates X[ndim][nverts]
func in_box(X [][]float64, y []float64) bool {
	for i, xi := range X {
		lo, hi := xi[0], xi[0]
		for _, v := range xi[1:] {
			lo, hi = utl.Min(lo, v), utl.Max(hi, v)
		}
		if y[i] < lo-TolC || y[i] > hi+TolC {
			return false
		}
	}
	return true
}
