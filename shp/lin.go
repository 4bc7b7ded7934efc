// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shapes
func init() {

	// lin2
	register(&Shape{
		Type:       "lin2",
		Func:       Lin2,
		BasicType:  "lin2",
		Gndim:      1,
		Nverts:     2,
		VtkCode:    VTK_LINE,
		NatCoords:  [][]float64{{-1, 1}},
		RefMeasure: 2,
	})

	// lin3
	register(&Shape{
		Type:       "lin3",
		Func:       Lin3,
		BasicType:  "lin2",
		Gndim:      1,
		Nverts:     3,
		VtkCode:    VTK_QUADRATIC_EDGE,
		NatCoords:  [][]float64{{-1, 1, 0}},
		RefMeasure: 2,
	})
}

// Lin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements at {r} natural coordinates. The derivatives are calculated only if derivs==true.
//
//	-1     0    +1
//	 0-----------1-->r
func Lin2(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r := R[0]
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// Lin3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin3
// elements at {r} natural coordinates. The derivatives are calculated only if derivs==true.
//
//	-1     0    +1
//	 0-----2-----1-->r
func Lin3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r := R[0]
	S[0] = 0.5 * (r*r - r)
	S[1] = 0.5 * (r*r + r)
	S[2] = 1.0 - r*r
	if !derivs {
		return
	}
	dSdR[0][0] = r - 0.5
	dSdR[1][0] = r + 0.5
	dSdR[2][0] = -2.0 * r
}
