// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"path/filepath"
	"sort"

	"github.com/upfem/upfem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// constants
const Xtol = 1e-10 // tolerance to compare coordinates of vertices

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==2)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag
	Type  string `json:"type"`  // geometry type (string); e.g. "tri3", "tri6"
	Verts []int  `json:"verts"` // vertices
	FTags []int  `json:"ftags"` // edge tags

	// derived
	Shp     *shp.Shape `json:"-"` // shape structure
	FaceBcs FaceConds  `json:"-"` // face boundary conditions
}

// CellFaceId structure
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // face id
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts    []*Vert        `json:"verts"`    // vertices
	Cells    []*Cell        `json:"cells"`    // cells
	TagNames map[string]int `json:"tagnames"` // maps names of vertex or face sets to tags; e.g. "clamped" => -13

	// derived
	FnamePath  string  `json:"-"` // complete filename path
	Ndim       int     `json:"-"` // space dimension
	Xmin, Xmax float64 `json:"-"` // min and max x-coordinate
	Ymin, Ymax float64 `json:"-"` // min and max y-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert      `json:"-"` // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      `json:"-"` // cell tag => set of cells
	FaceTag2cells map[int][]CellFaceId `json:"-"` // face tag => set of cells
	FaceTag2verts map[int][]int        `json:"-"` // face tag => vertices on tagged face
	Ctype2cells   map[string][]*Cell   `json:"-"` // cell type => set of cells
}

// ReadMsh reads a mesh for FE analyses
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := readFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.Init()
	if err != nil {
		return nil, chk.Err("mesh file %q is invalid:\n%v", o.FnamePath, err)
	}
	return
}

// Init checks the mesh and computes derived data
func (o *Mesh) Init() (err error) {

	// check
	err = o.Check()
	if err != nil {
		return
	}

	// vertex related derived data
	o.Ndim = 2
	o.Xmin, o.Xmax = o.Verts[0].C[0], o.Verts[0].C[0]
	o.Ymin, o.Ymax = o.Verts[0].C[1], o.Verts[0].C[1]
	o.VertTag2verts = make(map[int][]*Vert)
	for _, v := range o.Verts {

		// tags
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	o.FaceTag2verts = make(map[int][]int)
	o.Ctype2cells = make(map[string][]*Cell)
	for _, c := range o.Cells {

		// cell tags and types
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		o.Ctype2cells[c.Type] = append(o.Ctype2cells[c.Type], c)

		// face tags
		for i, ftag := range c.FTags {
			if ftag < 0 {
				o.FaceTag2cells[ftag] = append(o.FaceTag2cells[ftag], CellFaceId{c, i})
				for _, l := range shp.GetFaceLocalVerts(c.Type, i) {
					o.FaceTag2verts[ftag] = append(o.FaceTag2verts[ftag], c.Verts[l])
				}
			}
		}

		// shape structure
		c.Shp = shp.Get(c.Type, 0)
	}

	// remove duplicates
	for ftag, verts := range o.FaceTag2verts {
		o.FaceTag2verts[ftag] = utl.IntUnique(verts)
	}
	return
}

// Check checks that all cells reference existent vertices and that vertices are unique
func (o *Mesh) Check() (err error) {

	// sizes
	if len(o.Verts) < 3 {
		return chk.Err("mesh must have at least 3 vertices; %d is invalid", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh must have at least 1 cell")
	}

	// vertices
	for i, v := range o.Verts {
		if v == nil {
			return chk.Err("vertex %d is missing", i)
		}
		if v.Id != i {
			return chk.Err("vertex id must be equal to its position: %d != %d", v.Id, i)
		}
		if len(v.C) != 2 {
			return chk.Err("vertex %d must have 2 coordinates; %d is invalid", v.Id, len(v.C))
		}
		if math.IsNaN(v.C[0]) || math.IsNaN(v.C[1]) || math.IsInf(v.C[0], 0) || math.IsInf(v.C[1], 0) {
			return chk.Err("vertex %d has invalid coordinates %v", v.Id, v.C)
		}
	}

	// coincident vertices
	idx := make([]int, len(o.Verts))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ca, cb := o.Verts[idx[a]].C, o.Verts[idx[b]].C
		if ca[0] != cb[0] {
			return ca[0] < cb[0]
		}
		return ca[1] < cb[1]
	})
	for k := 1; k < len(idx); k++ {
		for l := k - 1; l >= 0; l-- {
			ca, cb := o.Verts[idx[k]].C, o.Verts[idx[l]].C
			if ca[0]-cb[0] > Xtol {
				break
			}
			if math.Abs(ca[1]-cb[1]) <= Xtol {
				return chk.Err("vertices %d and %d have the same coordinates %v", idx[l], idx[k], ca)
			}
		}
	}

	// cells
	for i, c := range o.Cells {
		if c == nil {
			return chk.Err("cell %d is missing", i)
		}
		if c.Id != i {
			return chk.Err("cell id must be equal to its position: %d != %d", c.Id, i)
		}
		nverts := shp.GetNverts(c.Type)
		if nverts < 0 {
			return chk.Err("cell %d: geometry type %q is not available", c.Id, c.Type)
		}
		if len(c.Verts) != nverts {
			return chk.Err("cell %d: %q requires %d vertices; %d is invalid", c.Id, c.Type, nverts, len(c.Verts))
		}
		for _, vid := range c.Verts {
			if vid < 0 || vid >= len(o.Verts) {
				return chk.Err("cell %d: vertex %d is out of range [0, %d)", c.Id, vid, len(o.Verts))
			}
		}
		nfaces := len(shp.Get(c.Type, 0).FaceLocalVerts)
		if len(c.FTags) > nfaces {
			return chk.Err("cell %d: %q has %d faces; %d face tags is invalid", c.Id, c.Type, nfaces, len(c.FTags))
		}
	}
	return
}

// GetTag returns the tag of a named vertex or face set
//
//	Note: names that are not in TagNames are invalid
func (o *Mesh) GetTag(name string) (tag int, err error) {
	tag, ok := o.TagNames[name]
	if !ok {
		return 0, chk.Err("cannot find tag named %q", name)
	}
	return
}

// ResolveTag returns tag if name is empty or the tag of name otherwise
func (o *Mesh) ResolveTag(tag int, name string) (int, error) {
	if name == "" {
		return tag, nil
	}
	return o.GetTag(name)
}

// GetVertsOnTag returns the ids of all vertices of a vertex set or on a face set (sorted)
func (o *Mesh) GetVertsOnTag(tag int) (vids []int) {
	for _, v := range o.VertTag2verts[tag] {
		vids = append(vids, v.Id)
	}
	vids = append(vids, o.FaceTag2verts[tag]...)
	return utl.IntUnique(vids)
}

// ExtractCellCoords extracts cell coordinates
//
//	X -- matrix with coordinates [ndim][nverts]
func (o *Mesh) ExtractCellCoords(cid int) (X [][]float64) {
	c := o.Cells[cid]
	X = utl.Alloc(o.Ndim, len(c.Verts))
	for m, v := range c.Verts {
		for i := 0; i < o.Ndim; i++ {
			X[i][m] = o.Verts[v].C[i]
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "], \"ftags\":["
	for i, x := range o.FTags {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]"
	if len(o.TagNames) > 0 {
		names := make([]string, 0, len(o.TagNames))
		for name := range o.TagNames {
			names = append(names, name)
		}
		sort.Strings(names)
		l += ",\n  \"tagnames\" : {"
		for i, name := range names {
			if i > 0 {
				l += ", "
			}
			l += io.Sf("%q:%d", name, o.TagNames[name])
		}
		l += "}"
	}
	l += "\n}"
	return l
}

// readFile reads a whole file with io.ReadFile, turning its panic into an error
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read file <%s>: %v", fn, r)
		}
	}()
	return io.ReadFile(fn), nil
}
