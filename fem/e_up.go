// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"github.com/upfem/upfem/inp"
	"github.com/upfem/upfem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// FaceLoad holds a traction applied on a face of a cell
type FaceLoad struct {
	Face int       // local index of face
	T    []float64 // [ndim] traction vector
}

// CellData holds the data of one cell required to compute its element system
type CellData struct {
	Cell  *inp.Cell   // cell
	X     [][]float64 // [ndim][nverts] coordinates
	Umap  []int       // [nu] displacement equations
	Pmap  []int       // [np] pressure equations
	Loads []*FaceLoad // traction loads on faces
}

// NewCellData collects the coordinates, equations and face loads of cell
//
//	Note: a number of equations that does not match the shape structures returns *DofMismatchError
func NewCellData(msh *inp.Mesh, cell *inp.Cell, dofs *DofLayout) (o *CellData, err error) {

	// basic data
	o = &CellData{Cell: cell}
	o.X = msh.ExtractCellCoords(cell.Id)
	o.Umap = dofs.Umap(cell)
	o.Pmap = dofs.Pmap(cell)

	// check equations
	err = checkMaps(cell, o.Umap, o.Pmap, dofs.Lbb)
	if err != nil {
		return nil, err
	}

	// face loads
	for _, fc := range cell.FaceBcs {
		var i int
		switch fc.Cond {
		case "tx":
			i = 0
		case "ty":
			i = 1
		default:
			continue
		}
		var load *FaceLoad
		for _, l := range o.Loads {
			if l.Face == fc.FaceId {
				load = l
			}
		}
		if load == nil {
			load = &FaceLoad{fc.FaceId, make([]float64, 2)}
			o.Loads = append(o.Loads, load)
		}
		load.T[i] += fc.Val
	}
	return
}

// checkMaps checks the number of displacement and pressure equations of a cell
func checkMaps(cell *inp.Cell, umap, pmap []int, lbb bool) error {
	nu := 2 * shp.GetNverts(cell.Type)
	np := shp.GetNverts(PressureType(cell.Type, lbb))
	if got := countValid(umap); got != nu || len(umap) != nu {
		return &DofMismatchError{cell.Id, "u", nu, got}
	}
	if got := countValid(pmap); got != np || len(pmap) != np {
		return &DofMismatchError{cell.Id, "p", np, got}
	}
	return nil
}

// countValid returns the number of non-negative equations
func countValid(eqs []int) (n int) {
	for _, eq := range eqs {
		if eq >= 0 {
			n++
		}
	}
	return
}

// ElemUP computes element systems of the mixed u-p formulation of linear elasticity (plane-strain)
//
//	      _        _   _   _     _   _
//	     |  Kuu Kup | | δu |   | Fu |
//	     |          | |    | = |    |
//	     |_ Kpu Kpp_| |_ p_|   |_ 0_|
//
//	Kuu = ∫ 2 G dev(ε(φ)) : dev(ε(φ)) dΩ
//	Kup = -∫ div(φ) ψ dΩ         Kpu = Kupᵀ
//	Kpp = -∫ (1/K) ψ ψ dΩ
//	Fu  = ∫ φ · t dΓ
//
// where φ and ψ are the displacement and pressure shape functions and dev(ε) = ε - tr(ε)/3 I
// is taken over the in-plane components of the strain. An ElemUP is not safe for concurrent use: each goroutine needs its own.
type ElemUP struct {

	// data
	Utype string    // geometry type of displacement interpolation; e.g. "tri6"
	Ptype string    // geometry type of pressure interpolation; e.g. "tri3"
	Mat   *Material // material

	// shape functions
	U  *shp.Values     // displacements
	P  *shp.Values     // pressure
	Uf *shp.FaceValues // displacements on faces

	// element system
	Nu  int         // number of displacement equations
	Np  int         // number of pressure equations
	K   [][]float64 // [nu+np][nu+np] element matrix
	F   []float64   // [nu+np] element right-hand side
	Eqs []int       // [nu+np] global equations of current cell: umap and pmap
}

// NewElemUP allocates a new ElemUP
//
//	utype       -- geometry type of displacement interpolation; e.g. "tri3" or "tri6"
//	lbb         -- use basic geometry for pressure; e.g. tri6 => tri3
//	nip, nipf   -- number of integration points in cell and on faces; 0 means default
//	goroutineId -- use goroutineId > 0 to work with copies of shape structures
func NewElemUP(utype string, lbb bool, mat *Material, nip, nipf, goroutineId int) (o *ElemUP, err error) {

	// data
	o = &ElemUP{Utype: utype, Ptype: PressureType(utype, lbb), Mat: mat}
	if mat == nil {
		return nil, chk.Err("cannot allocate %q element without material", utype)
	}

	// shapes
	ushp := shp.Get(o.Utype, goroutineId)
	if ushp == nil {
		return nil, chk.Err("cannot find shape type %q for displacements", o.Utype)
	}
	pshp := shp.Get(o.Ptype, goroutineId)
	if pshp == nil {
		return nil, chk.Err("cannot find shape type %q for pressure", o.Ptype)
	}

	// integration points
	ips, ipsf, err := shp.GetIntegrationPoints(nip, nipf, o.Utype)
	if err != nil {
		return nil, err
	}

	// shape functions at integration points
	o.U = shp.NewValues(ushp, ips)
	o.P = shp.NewValues(pshp, ips)
	o.Uf = shp.NewFaceValues(ushp, ipsf)

	// element system
	o.Nu = 2 * ushp.Nverts
	o.Np = pshp.Nverts
	o.K = utl.Alloc(o.Nu+o.Np, o.Nu+o.Np)
	o.F = make([]float64, o.Nu+o.Np)
	o.Eqs = make([]int, o.Nu+o.Np)
	return
}

// Compute computes the element matrix K and right-hand side F of cell
//
//	Note: K and F are overwritten; an inverted cell returns *GeometryError
func (o *ElemUP) Compute(c *CellData) (err error) {

	// check
	if c.Cell.Type != o.Utype {
		return chk.Err("cell %d: cannot compute %q cell with %q element", c.Cell.Id, c.Cell.Type, o.Utype)
	}
	if len(c.Umap) != o.Nu {
		return &DofMismatchError{c.Cell.Id, "u", o.Nu, len(c.Umap)}
	}
	if len(c.Pmap) != o.Np {
		return &DofMismatchError{c.Cell.Id, "p", o.Np, len(c.Pmap)}
	}

	// clear
	for i := range o.K {
		for j := range o.K[i] {
			o.K[i][j] = 0
		}
		o.F[i] = 0
	}
	copy(o.Eqs, c.Umap)
	copy(o.Eqs[o.Nu:], c.Pmap)

	// Jacobians and gradients
	err = o.U.Reinit(c.X)
	if err != nil {
		return wrapGeometryError(c.Cell.Id, err)
	}

	// volume terms
	nu, np := o.Nu, o.Np
	nverts := o.U.Nverts()
	twoG := 2.0 * o.Mat.G
	invK := o.Mat.InvK()
	for idx, ip := range o.U.Ips {
		coef := o.U.J[idx] * ip.W
		G := o.U.G[idx]
		Sb := o.P.S[idx]

		for m := 0; m < nverts; m++ {

			// Kuu: dev(ε) = ε - tr(ε)/3 I over the in-plane components only, thus
			// dev(εa):dev(εb) = εa:εb - 4/9 tr(εa) tr(εb)
			for n := 0; n < nverts; n++ {
				gmgn := G[m][0]*G[n][0] + G[m][1]*G[n][1]
				for i := 0; i < 2; i++ {
					for j := 0; j < 2; j++ {
						dd := 0.5*(G[m][j]*G[n][i]) - 4.0*(G[m][i]*G[n][j])/9.0
						if i == j {
							dd += 0.5 * gmgn
						}
						o.K[2*m+i][2*n+j] += coef * twoG * dd
					}
				}
			}

			// Kup and Kpu
			for n := 0; n < np; n++ {
				for i := 0; i < 2; i++ {
					v := -coef * G[m][i] * Sb[n]
					o.K[2*m+i][nu+n] += v
					o.K[nu+n][2*m+i] += v
				}
			}
		}

		// Kpp
		if invK != 0 {
			for m := 0; m < np; m++ {
				for n := 0; n < np; n++ {
					o.K[nu+m][nu+n] -= coef * invK * (Sb[m] * Sb[n])
				}
			}
		}
	}

	// tractions
	for _, load := range c.Loads {
		err = o.Uf.Reinit(c.X, load.Face)
		if err != nil {
			return wrapGeometryError(c.Cell.Id, err)
		}
		lverts := o.Uf.LocalVerts()
		for idx, ip := range o.Uf.Ips {
			coef := o.Uf.Jf[idx] * ip.W
			for k, m := range lverts {
				for i := 0; i < 2; i++ {
					o.F[2*m+i] += coef * o.Uf.Sf[idx][k] * load.T[i]
				}
			}
		}
	}
	return
}

// wrapGeometryError attaches the cell id to geometry errors
func wrapGeometryError(cid int, err error) error {
	var gerr *shp.GeometryError
	if errors.As(err, &gerr) {
		return &GeometryError{cid, err}
	}
	return chk.Err("cell %d: %v", cid, err)
}
