// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// tags set by GenQuadrilateral
//
//	            -12 (top)
//	   -4 (3)------------(2) -3
//	       |              |
//	-13    |              |  -11
//	(left) |              | (right)
//	       |              |
//	   -1 (0)------------(1) -2
//	            -10 (bottom)
const (
	TagBottom = -10 // face tag of edge from corner 0 to corner 1
	TagRight  = -11 // face tag of edge from corner 1 to corner 2
	TagTop    = -12 // face tag of edge from corner 2 to corner 3
	TagLeft   = -13 // face tag of edge from corner 3 to corner 0
)

// GenQuadrilateral generates a structured triangular mesh of the quadrilateral with the given
// corners (counter-clockwise) using a bilinear map. Each of the nx×ny quadrilaterals is split
// into two triangles along the diagonal from (i+1,j) to (i,j+1).
//
//	Input:
//	 corners -- [4][2] coordinates of the corners
//	 nx, ny  -- number of divisions along the 0-1 and 1-2 edges
//	 ctype   -- "tri3" or "tri6"
//	Output:
//	 mesh with vertex tags -1..-4 at corners, face tags TagBottom..TagLeft and TagNames
//	 "bottom", "right", "top", "left", "corner0".."corner3"
func GenQuadrilateral(corners [][]float64, nx, ny int, ctype string) (o *Mesh, err error) {

	// check
	if len(corners) != 4 {
		return nil, chk.Err("quadrilateral requires 4 corners; %d is invalid", len(corners))
	}
	for i, c := range corners {
		if len(c) != 2 {
			return nil, chk.Err("corner %d must have 2 coordinates; %d is invalid", i, len(c))
		}
	}
	if nx < 1 || ny < 1 {
		return nil, chk.Err("number of divisions must be positive; nx=%d, ny=%d is invalid", nx, ny)
	}

	// number of points per division
	var k int
	switch ctype {
	case "tri3":
		k = 1
	case "tri6":
		k = 2
	default:
		return nil, chk.Err("cannot generate mesh with cells of type %q", ctype)
	}

	// vertices: x runs fastest
	nvx, nvy := k*nx+1, k*ny+1
	o = new(Mesh)
	o.Verts = make([]*Vert, nvx*nvy)
	for J := 0; J < nvy; J++ {
		η := float64(J) / float64(nvy-1)
		for I := 0; I < nvx; I++ {
			ξ := float64(I) / float64(nvx-1)
			id := I + J*nvx
			o.Verts[id] = &Vert{Id: id, C: bilinear(corners, ξ, η)}
		}
	}
	o.Verts[0].Tag = -1
	o.Verts[nvx-1].Tag = -2
	o.Verts[nvx*nvy-1].Tag = -3
	o.Verts[nvx*(nvy-1)].Tag = -4

	// vertex index on fine grid
	N := func(I, J int) int { return I + J*nvx }

	// cells
	o.Cells = make([]*Cell, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			I, J := k*i, k*j

			// lower-left triangle: faces {bottom, diagonal, left}
			a := &Cell{Id: len(o.Cells), Tag: -1, Type: ctype, FTags: []int{0, 0, 0}}
			if j == 0 {
				a.FTags[0] = TagBottom
			}
			if i == 0 {
				a.FTags[2] = TagLeft
			}
			if ctype == "tri3" {
				a.Verts = []int{N(I, J), N(I+1, J), N(I, J+1)}
			} else {
				a.Verts = []int{N(I, J), N(I+2, J), N(I, J+2), N(I+1, J), N(I+1, J+1), N(I, J+1)}
			}
			o.Cells = append(o.Cells, a)

			// upper-right triangle: faces {right, top, diagonal}
			b := &Cell{Id: len(o.Cells), Tag: -1, Type: ctype, FTags: []int{0, 0, 0}}
			if i == nx-1 {
				b.FTags[0] = TagRight
			}
			if j == ny-1 {
				b.FTags[1] = TagTop
			}
			if ctype == "tri3" {
				b.Verts = []int{N(I+1, J), N(I+1, J+1), N(I, J+1)}
			} else {
				b.Verts = []int{N(I+2, J), N(I+2, J+2), N(I, J+2), N(I+2, J+1), N(I+1, J+2), N(I+1, J+1)}
			}
			o.Cells = append(o.Cells, b)
		}
	}

	// names
	o.TagNames = map[string]int{
		"bottom":  TagBottom,
		"right":   TagRight,
		"top":     TagTop,
		"left":    TagLeft,
		"corner0": -1,
		"corner1": -2,
		"corner2": -3,
		"corner3": -4,
	}

	// derived data
	err = o.Init()
	if err != nil {
		return nil, err
	}
	return
}

// CooksMembraneCorners returns the corners of Cook's membrane
func CooksMembraneCorners() [][]float64 {
	return [][]float64{{0, 0}, {48, 44}, {48, 60}, {0, 44}}
}

// bilinear maps (ξ,η) ∈ [0,1]² onto the quadrilateral with the given corners
func bilinear(c [][]float64, ξ, η float64) []float64 {
	n0 := (1 - ξ) * (1 - η)
	n1 := ξ * (1 - η)
	n2 := ξ * η
	n3 := (1 - ξ) * η
	return []float64{
		n0*c[0][0] + n1*c[1][0] + n2*c[2][0] + n3*c[3][0],
		n0*c[0][1] + n1*c[1][1] + n2*c[2][1] + n3*c[3][1],
	}
}
