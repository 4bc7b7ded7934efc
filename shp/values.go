// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Values holds shape functions and their natural derivatives tabulated at all integration
// points of a cell, plus the real-space data recomputed by Reinit for each cell.
//
//	Note: S and DSdR do not depend on geometry and are computed once in NewValues;
//	      J and G depend on the cell coordinates and must be recomputed for every cell
type Values struct {

	// reference data (immutable)
	Shp  *Shape        // shape structure
	Ips  []*Ipoint     // integration points
	S    [][]float64   // [nip][nverts] shape functions
	DSdR [][][]float64 // [nip][nverts][gndim] derivatives of S w.r.t natural coordinates

	// cell data (set by Reinit)
	J []float64     // [nip] determinant of dxdR
	G [][][]float64 // [nip][nverts][gndim] dSdx

	// scratchpad
	dxdR [][]float64
	dRdx [][]float64
}

// NewValues tabulates shape functions of shape at integration points ips
func NewValues(shape *Shape, ips []*Ipoint) (o *Values) {
	if shape == nil {
		chk.Panic("cannot allocate Values with nil shape")
	}
	nip := len(ips)
	o = new(Values)
	o.Shp = shape
	o.Ips = ips
	o.S = utl.Alloc(nip, shape.Nverts)
	o.DSdR = make([][][]float64, nip)
	o.J = make([]float64, nip)
	o.G = make([][][]float64, nip)
	for idx, ip := range ips {
		o.DSdR[idx] = utl.Alloc(shape.Nverts, shape.Gndim)
		o.G[idx] = utl.Alloc(shape.Nverts, shape.Gndim)
		shape.Func(o.S[idx], o.DSdR[idx], ip.Coords(), true)
	}
	o.dxdR = utl.Alloc(shape.Gndim, shape.Gndim)
	o.dRdx = utl.Alloc(shape.Gndim, shape.Gndim)
	return
}

// Nverts returns the number of basis functions
func (o *Values) Nverts() int { return o.Shp.Nverts }

// Nip returns the number of integration points
func (o *Values) Nip() int { return len(o.Ips) }

// Reinit computes the Jacobian determinant and real-space gradients at all integration points
//
//	Input:
//	 x[ndim][nverts] -- coordinates matrix of cell
//	Note: a non-positive determinant returns a *GeometryError
func (o *Values) Reinit(x [][]float64) (err error) {
	gnd := o.Shp.Gndim
	if len(x) != gnd {
		return chk.Err("%s: coordinates matrix must have %d rows; %d is invalid", o.Shp.Type, gnd, len(x))
	}
	for i := 0; i < gnd; i++ {
		if len(x[i]) < o.Shp.Nverts {
			return chk.Err("%s: coordinates matrix must have %d columns; %d is invalid", o.Shp.Type, o.Shp.Nverts, len(x[i]))
		}
	}
	for idx := range o.Ips {

		// dxdR := sum_n x * dSdR
		dSdR := o.DSdR[idx]
		for i := 0; i < gnd; i++ {
			for j := 0; j < gnd; j++ {
				o.dxdR[i][j] = 0
				for n := 0; n < o.Shp.Nverts; n++ {
					o.dxdR[i][j] += x[i][n] * dSdR[n][j]
				}
			}
		}

		// dRdx := inv(dxdR)
		o.J[idx], err = inv2(o.dRdx, o.dxdR)
		if err != nil {
			return &GeometryError{o.Shp.Type, idx, -1, o.J[idx]}
		}

		// G := dSdR * dRdx
		G := o.G[idx]
		for m := 0; m < o.Shp.Nverts; m++ {
			for j := 0; j < gnd; j++ {
				G[m][j] = 0
				for i := 0; i < gnd; i++ {
					G[m][j] += dSdR[m][i] * o.dRdx[i][j]
				}
			}
		}
	}
	return
}

// RealCoords returns the real coordinates of integration point idx
func (o *Values) RealCoords(x [][]float64, idx int) (y []float64) {
	y = make([]float64, len(x))
	for i := range x {
		for m := 0; m < o.Shp.Nverts; m++ {
			y[i] += o.S[idx][m] * x[i][m]
		}
	}
	return
}

// FaceValues holds face shape functions tabulated at the integration points of a reference face
type FaceValues struct {

	// reference data (immutable)
	Shp    *Shape        // shape structure of the cell
	Ips    []*Ipoint     // integration points on reference face
	Sf     [][]float64   // [nip][FaceNvertsMax] face shape functions
	DSfdRf [][][]float64 // [nip][FaceNvertsMax][gndim-1] derivatives of Sf w.r.t natural coordinates

	// face data (set by Reinit)
	Face  int         // local index of current face
	Jf    []float64   // [nip] face Jacobian: norm of dxf/dRf
	Fnvec [][]float64 // [nip][gndim] outward normal multiplied by Jf
}

// NewFaceValues tabulates face shape functions of shape at integration points ips
func NewFaceValues(shape *Shape, ips []*Ipoint) (o *FaceValues) {
	if shape == nil || shape.FaceFunc == nil {
		chk.Panic("cannot allocate FaceValues: shape has no faces")
	}
	nip := len(ips)
	o = new(FaceValues)
	o.Shp = shape
	o.Ips = ips
	o.Sf = utl.Alloc(nip, shape.FaceNvertsMax)
	o.DSfdRf = make([][][]float64, nip)
	for idx, ip := range ips {
		o.DSfdRf[idx] = utl.Alloc(shape.FaceNvertsMax, shape.Gndim-1)
		shape.FaceFunc(o.Sf[idx], o.DSfdRf[idx], ip.Coords(), true)
	}
	o.Face = -1
	o.Jf = make([]float64, nip)
	o.Fnvec = utl.Alloc(nip, shape.Gndim)
	return
}

// Reinit computes the face Jacobian of face idxface at all integration points
//
//	Input:
//	 x[ndim][nverts] -- coordinates matrix of cell
//	 idxface         -- local index of face
func (o *FaceValues) Reinit(x [][]float64, idxface int) (err error) {
	if idxface < 0 || idxface >= len(o.Shp.FaceLocalVerts) {
		return chk.Err("%s: face index %d is out of range", o.Shp.Type, idxface)
	}
	o.Face = idxface
	lverts := o.Shp.FaceLocalVerts[idxface]
	for idx := range o.Ips {
		var dxdr, dydr float64
		for k, n := range lverts {
			dxdr += x[0][n] * o.DSfdRf[idx][k][0]
			dydr += x[1][n] * o.DSfdRf[idx][k][0]
		}
		o.Fnvec[idx][0] = dydr
		o.Fnvec[idx][1] = -dxdr
		o.Jf[idx] = math.Sqrt(dxdr*dxdr + dydr*dydr)
		if o.Jf[idx] < MINDET {
			return &GeometryError{o.Shp.Type, idx, idxface, o.Jf[idx]}
		}
	}
	return
}

// LocalVerts returns the local vertices of the current face
func (o *FaceValues) LocalVerts() []int { return o.Shp.FaceLocalVerts[o.Face] }
