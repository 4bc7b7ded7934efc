// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shapes
func init() {

	// tri3
	register(&Shape{
		Type:           "tri3",
		Func:           Tri3,
		FaceFunc:       Lin2,
		BasicType:      "tri3",
		FaceType:       "lin2",
		Gndim:          2,
		Nverts:         3,
		VtkCode:        VTK_TRIANGLE,
		FaceNvertsMax:  2,
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
		NatCoords: [][]float64{
			{0, 1, 0},
			{0, 0, 1},
		},
		RefMeasure: 0.5,
	})

	// tri6
	register(&Shape{
		Type:           "tri6",
		Func:           Tri6,
		FaceFunc:       Lin3,
		BasicType:      "tri3",
		FaceType:       "lin3",
		Gndim:          2,
		Nverts:         6,
		VtkCode:        VTK_QUADRATIC_TRIANGLE,
		FaceNvertsMax:  3,
		FaceLocalVerts: [][]int{{0, 1, 3}, {1, 2, 4}, {2, 0, 5}},
		NatCoords: [][]float64{
			{0, 1, 0, 0.5, 0.5, 0},
			{0, 0, 1, 0, 0.5, 0.5},
		},
		RefMeasure: 0.5,
	})
}

// VTK codes
const (
	VTK_LINE               = 3
	VTK_TRIANGLE           = 5
	VTK_QUADRATIC_EDGE     = 21
	VTK_QUADRATIC_TRIANGLE = 22
)

// Tri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements at {r,s} natural coordinates. The derivatives are calculated only if derivs==true.
//
//	s
//	|
//	2, (0,1)
//	| ',
//	|   ',
//	|     ',
//	|       ',
//	|         ',
//	|           ',
//	|             ',
//	| (0,0)         ', (1,0)
//	0-----------------1 ---- r
func Tri3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = 1.0 - r - s
	S[1] = r
	S[2] = s
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// Tri6 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri6
// elements at {r,s} natural coordinates. The derivatives are calculated only if derivs==true.
//
//	s
//	|
//	2, (0,1)
//	| ',
//	|   ',
//	|     ',
//	|       ',
//	5         4,
//	| (0,.5)    ', (.5,.5)
//	|             ',
//	| (0,0)         ', (1,0)
//	0-------3---------1 ---- r
//	      (.5,0)
func Tri6(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = 1.0 - (r+s)*(3.0-2.0*(r+s))
	S[1] = r * (2.0*r - 1.0)
	S[2] = s * (2.0*s - 1.0)
	S[3] = 4.0 * r * (1.0 - (r + s))
	S[4] = 4.0 * r * s
	S[5] = 4.0 * s * (1.0 - (r + s))
	if !derivs {
		return
	}
	dSdR[0][0] = -3.0 + 4.0*(r+s)
	dSdR[1][0] = 4.0*r - 1.0
	dSdR[2][0] = 0.0
	dSdR[3][0] = 4.0 - 8.0*r - 4.0*s
	dSdR[4][0] = 4.0 * s
	dSdR[5][0] = -4.0 * s

	dSdR[0][1] = -3.0 + 4.0*(r+s)
	dSdR[1][1] = 0.0
	dSdR[2][1] = 4.0*s - 1.0
	dSdR[3][1] = -4.0 * r
	dSdR[4][1] = 4.0 * r
	dSdR[5][1] = 4.0 - 4.0*r - 8.0*s
}
