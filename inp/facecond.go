// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/upfem/upfem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// FaceCond holds information of one single face boundary condition. Example:
//
//	36 (2)
//	    | ',           -11 => "tx", "ty"
//	    |   ', 1       -12 => "ty"
//	  2 |     ', -12
//	    |       ',     face id => conditions
//	    |         ',         0 => {"tx", "ty"} => localVerts={0,1} => globalVerts={34,35}
//	   (0)--------(1)        1 => {"ty"}       => localVerts={1,2} => globalVerts={35,36}
//	   34    0     35        2 => <nil>
//	        -11
type FaceCond struct {
	FaceId      int     // msh: cell's face local id
	LocalVerts  []int   // msh: cell's face local vertices ids
	GlobalVerts []int   // msh: global vertices ids
	Cond        string  // sim: condition; e.g. "tx" or "ux"
	Val         float64 // sim: value of boundary condition
}

// FaceConds hold many face boundary conditions
type FaceConds []*FaceCond

// GetVerts gets all local vertices with any of the given conditions (sorted)
func (o FaceConds) GetVerts(conds ...string) (verts []int) {
	for _, fc := range o {
		found := false
		for _, c := range conds {
			if c == fc.Cond {
				found = true
				break
			}
		}
		if !found {
			continue
		}
		verts = append(verts, fc.LocalVerts...)
	}
	verts = utl.IntUnique(verts)
	return
}

// SetFaceConds sets face boundary conditions in cell. Named tags are resolved against msh,
// the mesh this cell belongs to
func (o *Cell) SetFaceConds(sim *Simulation, msh *Mesh) (err error) {

	// for each face tag
	o.FaceBcs = make([]*FaceCond, 0)
	for faceId, faceTag := range o.FTags {

		// skip zero or positive tags
		if faceTag >= 0 {
			continue
		}

		// local and global ids of vertices on face
		lverts := shp.GetFaceLocalVerts(o.Type, faceId)
		gverts := make([]int, len(lverts))
		for i, l := range lverts {
			gverts[i] = o.Verts[l]
		}

		// for each face boundary condition with this tag
		for _, fbc := range sim.FaceBcs {
			tag, err := msh.ResolveTag(fbc.Tag, fbc.Name)
			if err != nil {
				return chk.Err("cannot set face conditions of cell %d:\n%v", o.Id, err)
			}
			if tag != faceTag {
				continue
			}
			if len(fbc.Keys) != len(fbc.Vals) {
				return chk.Err("face boundary condition with tag %d has %d keys but %d values", tag, len(fbc.Keys), len(fbc.Vals))
			}
			for j, key := range fbc.Keys {
				o.FaceBcs = append(o.FaceBcs, &FaceCond{faceId, lverts, gverts, key, fbc.Vals[j]})
			}
		}
	}
	return
}
