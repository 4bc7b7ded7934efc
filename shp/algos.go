// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	INVMAP_TOL = 1.0e-10 // tolerance for inverse mapping function
	INVMAP_NIT = 25      // maximum number of iterations for inverse mapping
)

// InvMap computes the natural coordinates r, given the real coordinate y
//
//	Input:
//	 y[ndim]         -- are the 2D point coordinates
//	 x[ndim][nverts] -- coordinates matrix of solid element
//	Output:
//	 r[2] -- are the natural coordinates of given point
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {

	// check
	if o.Gndim != 2 {
		return chk.Err("inverse mapping is implemented for 2D shapes only\n")
	}

	e := make([]float64, o.Gndim)  // residual
	δr := make([]float64, o.Gndim) // corrector
	r[0], r[1] = 0, 0              // first trial
	for it := 0; it < INVMAP_NIT; it++ {

		// shape functions and derivatives
		err = o.CalcAtIp(x, r, true)
		if err != nil {
			return
		}

		// residual: e = y - x * S
		for i := 0; i < o.Gndim; i++ {
			e[i] = y[i]
			for j := 0; j < o.Nverts; j++ {
				e[i] -= x[i][j] * o.S[j]
			}
		}

		// corrector: δr = dRdx * e
		var δRnorm float64
		for i := 0; i < o.Gndim; i++ {
			δr[i] = 0.0
			for j := 0; j < o.Gndim; j++ {
				δr[i] += o.DRdx[i][j] * e[j]
			}
			r[i] += δr[i]
			δRnorm += δr[i] * δr[i]
		}

		// converged?
		if math.Sqrt(δRnorm) < INVMAP_TOL {
			return
		}
	}
	return chk.Err("inverse mapping did not converge after %d iterations", INVMAP_NIT)
}
