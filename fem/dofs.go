// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/upfem/upfem/inp"
	"github.com/upfem/upfem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key. e.g. "ux", "uy" or "p"
	Eq  int    // equation number
}

// Node holds node dofs information
type Node struct {
	Dofs []*Dof    // degrees-of-freedom == solution variables
	Vert *inp.Vert // pointer to Vertex
}

// NewNode allocates a new Node
func NewNode(v *inp.Vert) *Node {
	return &Node{Vert: v}
}

// AddDofAndEq adds a new dof and respective equation number to node
//
//	Note: if the dof key exists already, nothing is added and the existent equation is returned
func (o *Node) AddDofAndEq(key string, eqNumber int) (eq int) {
	for _, d := range o.Dofs {
		if d.Key == key {
			return d.Eq
		}
	}
	o.Dofs = append(o.Dofs, &Dof{key, eqNumber})
	return eqNumber
}

// GetDof returns the Dof structure for given Dof name (ukey)
//
//	Note: returns nil if not found
func (o *Node) GetDof(ukey string) *Dof {
	for _, d := range o.Dofs {
		if d.Key == ukey {
			return d
		}
	}
	return nil
}

// GetEq returns equation number for given Dof name (ukey)
//
//	Note: returns -1 if not found
func (o *Node) GetEq(ukey string) int {
	if d := o.GetDof(ukey); d != nil {
		return d.Eq
	}
	return -1
}

// String returns a string representation of node
func (o *Node) String() string {
	l := io.Sf("{\"vid\":%d, \"dofs\":[", o.Vert.Id)
	for i, d := range o.Dofs {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"%s\":%d}", d.Key, d.Eq)
	}
	return l + "]}"
}

// DofLayout holds the numbering of equations of a mesh for the u-p formulation.
// Equations are numbered per node, in increasing vertex id, as {ux, uy, p};
// nodes without pressure have {ux, uy} only.
type DofLayout struct {
	Lbb      bool    // pressure uses the basic geometry of cells; e.g. tri6 => tri3
	Nodes    []*Node // nodes with dofs (sorted by vertex id)
	Vid2node []*Node // [nverts] VertexId => node; nil if vertex is not used by any cell
	Neq      int     // total number of equations
	Nu       int     // number of displacement equations
	Np       int     // number of pressure equations
}

// PressureType returns the geometry type of the pressure interpolation
func PressureType(ctype string, lbb bool) string {
	if lbb {
		return shp.GetBasicType(ctype)
	}
	return ctype
}

// NewDofLayout numbers the equations of all vertices of mesh
func NewDofLayout(msh *inp.Mesh, lbb bool) (o *DofLayout, err error) {

	// flags
	nverts := len(msh.Verts)
	hasU := make([]bool, nverts)
	hasP := make([]bool, nverts)
	for _, c := range msh.Cells {
		ptype := PressureType(c.Type, lbb)
		npverts := shp.GetNverts(ptype)
		if npverts < 0 || npverts > len(c.Verts) {
			return nil, chk.Err("cell %d: cannot use %q pressure interpolation in %q cell", c.Id, ptype, c.Type)
		}
		for m, vid := range c.Verts {
			hasU[vid] = true
			if m < npverts {
				hasP[vid] = true
			}
		}
	}

	// equations
	o = &DofLayout{Lbb: lbb, Vid2node: make([]*Node, nverts)}
	for vid, v := range msh.Verts {
		if !hasU[vid] {
			continue
		}
		n := NewNode(v)
		n.AddDofAndEq("ux", o.Neq)
		n.AddDofAndEq("uy", o.Neq+1)
		o.Neq += 2
		o.Nu += 2
		if hasP[vid] {
			n.AddDofAndEq("p", o.Neq)
			o.Neq++
			o.Np++
		}
		o.Nodes = append(o.Nodes, n)
		o.Vid2node[vid] = n
	}
	return
}

// Umap returns the displacement equations of cell: {ux0, uy0, ux1, uy1, ...}
func (o *DofLayout) Umap(cell *inp.Cell) (umap []int) {
	umap = make([]int, 0, 2*len(cell.Verts))
	for _, vid := range cell.Verts {
		n := o.Vid2node[vid]
		umap = append(umap, n.GetEq("ux"), n.GetEq("uy"))
	}
	return
}

// Pmap returns the pressure equations of cell: {p0, p1, ...}
func (o *DofLayout) Pmap(cell *inp.Cell) (pmap []int) {
	npverts := shp.GetNverts(PressureType(cell.Type, o.Lbb))
	pmap = make([]int, 0, npverts)
	for m := 0; m < npverts; m++ {
		pmap = append(pmap, o.Vid2node[cell.Verts[m]].GetEq("p"))
	}
	return
}

// Eqs returns the equations of a vertex key; e.g. "ux" of all vertices in vids
//
//	Note: vertices without key are skipped
func (o *DofLayout) Eqs(key string, vids []int) (eqs []int) {
	for _, vid := range vids {
		if n := o.Vid2node[vid]; n != nil {
			if eq := n.GetEq(key); eq >= 0 {
				eqs = append(eqs, eq)
			}
		}
	}
	return
}
