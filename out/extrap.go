// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/upfem/upfem/fem"
	"github.com/upfem/upfem/shp"

	"github.com/cpmech/gosl/chk"
)

// compute_extrapolated_values computes the pressure at all vertices by interpolating the
// pressure field of cells at their vertices; e.g. at midside nodes of tri6/tri3 cells
func compute_extrapolated_values() (err error) {

	// allocate structures for extrapolation
	nverts := len(Dom.Msh.Verts)
	ExVals = make([]map[string]float64, nverts)
	counts := make([]float64, nverts)
	for i := 0; i < nverts; i++ {
		ExVals[i] = make(map[string]float64)
	}

	// loop over cells
	r := []float64{0, 0, 0}
	for _, c := range Dom.Cells {

		// shapes
		ush := shp.Get(c.Cell.Type, 0)
		psh := shp.Get(fem.PressureType(c.Cell.Type, Dom.Dofs.Lbb), 0)
		if ush == nil || psh == nil {
			return chk.Err("cannot get shape structures of cell %d", c.Cell.Id)
		}
		S := make([]float64, psh.Nverts)

		// pressure at each vertex of cell
		for m, vid := range c.Cell.Verts {
			for i := 0; i < ush.Gndim; i++ {
				r[i] = ush.NatCoords[i][m]
			}
			psh.Func(S, nil, r, false)
			var p float64
			for n, eq := range c.Pmap {
				p += S[n] * Dom.Sol[eq]
			}
			ExVals[vid]["p"] += p
			counts[vid]++
		}
	}

	// average
	for vid, cnt := range counts {
		if cnt > 0 {
			ExVals[vid]["p"] /= cnt
		}
	}
	return
}
