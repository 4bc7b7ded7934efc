// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type           string      // name; e.g. "tri3"
	Func           ShpFunc     // shape/derivs function callback function
	FaceFunc       ShpFunc     // face shape/derivs function callback function
	BasicType      string      // geometry of basic element; e.g. "tri6" => "tri3"
	FaceType       string      // geometry of face; e.g. "tri6" => "lin3"
	Gndim          int         // geometry of shape; e.g. "lin3" => gnd == 1
	Nverts         int         // number of vertices in cell; e.g. "tri6" => 6
	VtkCode        int         // VTK code
	FaceNvertsMax  int         // max number of vertices on face
	FaceLocalVerts [][]int     // face local vertices [nfaces][...]
	NatCoords      [][]float64 // natural coordinates [gndim][nverts]
	RefMeasure     float64     // length/area of reference element

	// scratchpad: used by CalcAtIp and InvMap
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)
}

// GeometryError reports a degenerate or inverted mapping from natural to real coordinates
type GeometryError struct {
	Type string  // shape type
	Ip   int     // index of integration point; -1 if unknown
	Face int     // local face index; -1 for volume
	J    float64 // offending determinant (or face Jacobian)
}

func (e *GeometryError) Error() string {
	if e.Face >= 0 {
		return io.Sf("%s: face %d is degenerate: Jf=%g at integration point %d", e.Type, e.Face, e.J, e.Ip)
	}
	return io.Sf("%s: non-positive Jacobian determinant J=%g at integration point %d", e.Type, e.J, e.Ip)
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {

	// new structure
	var p Shape

	// geometry
	p.Type = o.Type
	p.Func = o.Func
	p.FaceFunc = o.FaceFunc
	p.BasicType = o.BasicType
	p.FaceType = o.FaceType
	p.Gndim = o.Gndim
	p.Nverts = o.Nverts
	p.VtkCode = o.VtkCode
	p.FaceNvertsMax = o.FaceNvertsMax
	p.FaceLocalVerts = intsClone(o.FaceLocalVerts)
	p.NatCoords = matClone(o.NatCoords)
	p.RefMeasure = o.RefMeasure

	// scratchpad
	p.init_scratchpad()
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//
//	Note: 1) returns nil on errors
//	      2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// GetNverts returns the number of vertices of a shape; or -1 if geoType is not available
func GetNverts(geoType string) int {
	s, ok := factory[geoType]
	if !ok {
		return -1
	}
	return s.Nverts
}

// GetBasicType returns the geometry of the basic element; e.g. "tri6" => "tri3"
func GetBasicType(geoType string) string {
	s, ok := factory[geoType]
	if !ok {
		return ""
	}
	return s.BasicType
}

// GetFaceLocalVerts returns the local vertices of face idxface
func GetFaceLocalVerts(geoType string, idxface int) []int {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if idxface < 0 || idxface >= len(s.FaceLocalVerts) {
		return nil
	}
	return s.FaceLocalVerts[idxface]
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//
//	Input:
//	 x[ndim][nverts] -- coordinates matrix of solid element
//	 r               -- natural coordinates
//	Output:
//	 S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, r []float64, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, r, derivs)
	if !derivs {
		return
	}
	if len(x) != o.Gndim {
		return chk.Err("%s: cannot compute derivatives with %d-dimensional coordinates", o.Type, len(x))
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	o.J, err = inv2(o.DRdx, o.DxdR)
	if err != nil {
		return &GeometryError{o.Type, -1, -1, o.J}
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// init_scratchpad initialise volume data (scratchpad)
func (o *Shape) init_scratchpad() {

	// volume data
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)
}

// register adds shape to factory; it panics on duplicates
func register(o *Shape) {
	if _, ok := factory[o.Type]; ok {
		chk.Panic("shape %q is already registered", o.Type)
	}
	o.init_scratchpad()
	factory[o.Type] = o
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// inv2 computes the inverse of a 2x2 (or 1x1) matrix and returns its determinant
func inv2(ai, a [][]float64) (det float64, err error) {
	if len(a) == 1 {
		det = a[0][0]
		if det < MINDET {
			return det, chk.Err("determinant is too small: %g", det)
		}
		ai[0][0] = 1.0 / det
		return
	}
	det = a[0][0]*a[1][1] - a[0][1]*a[1][0]
	if det < MINDET {
		return det, chk.Err("determinant is too small or negative: %g", det)
	}
	ai[0][0] = a[1][1] / det
	ai[0][1] = -a[0][1] / det
	ai[1][0] = -a[1][0] / det
	ai[1][1] = a[0][0] / det
	return
}

func matClone(a [][]float64) (b [][]float64) {
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = append([]float64{}, a[i]...)
	}
	return
}

func intsClone(a [][]int) (b [][]int) {
	b = make([][]int, len(a))
	for i := range a {
		b[i] = append([]int{}, a[i]...)
	}
	return
}
