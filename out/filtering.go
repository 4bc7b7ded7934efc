// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"sort"
)

// Locator defines interface for locating space positions
type Locator interface {
	Locate() Points
}

// At implements locator at point
type At []float64

// N implements node locator
// Ids or tags of vertices can be stored in N
type N []int

// Along implements locator along line => LineLocator
//
//	Example: {{0,0}, {1,1}}
type Along [][]float64

// AlongX implements LineLocator with []float64{y_cte}
type AlongX []float64

// AlongY implements LineLocator with []float64{x_cte}
type AlongY []float64

// Locate finds points
func (o At) Locate() Points {
	for _, nod := range Dom.Dofs.Nodes {
		if dist(nod.Vert.C, o) < TolC {
			return Points{get_nod_point(nod.Vert.Id, nil)}
		}
	}
	return nil
}

// Locate finds nodes
//
//	Note: negative values are vertex tags
func (o N) Locate() (res Points) {
	var A []float64 // reference point
	for _, idortag := range o {
		var vids []int
		if idortag < 0 {
			for _, v := range Dom.Msh.VertTag2verts[idortag] {
				vids = append(vids, v.Id)
			}
		} else {
			vids = []int{idortag}
		}
		for _, vid := range vids {
			q := get_nod_point(vid, A)
			if q != nil {
				res = append(res, q)
				if A == nil {
					A = q.X
				}
			}
		}
	}
	return
}

// Locate finds points
func (o Along) Locate() (res Points) {

	// check if there are two points
	if len(o) != 2 {
		return
	}
	A, B := o[0], o[1]
	L := dist(A, B)
	if L < TolC {
		return
	}

	// nodes on line through A and B
	for _, nod := range Dom.Dofs.Nodes {
		x := nod.Vert.C
		cross := (B[0]-A[0])*(x[1]-A[1]) - (B[1]-A[1])*(x[0]-A[0])
		if math.Abs(cross)/L < TolC {
			res = append(res, get_nod_point(nod.Vert.Id, A))
		}
	}
	sort.Sort(res)
	return
}

// Locate finds points
func (o AlongX) Locate() (res Points) {
	return Along{{0, o[0]}, {1, o[0]}}.Locate()
}

// Locate finds points
func (o AlongY) Locate() (res Points) {
	return Along{{o[0], 0}, {o[0], 1}}.Locate()
}

// AllNodes returns all nodes
func AllNodes() N {
	var res []int
	for _, nod := range Dom.Dofs.Nodes {
		res = append(res, nod.Vert.Id)
	}
	return res
}

// get_nod_point returns a new point at vertex vid; nil if vertex has no dofs
//
//	A -- reference point to compute distance; may be nil
func get_nod_point(vid int, A []float64) *Point {
	if vid < 0 || vid >= len(Dom.Dofs.Vid2node) || Dom.Dofs.Vid2node[vid] == nil {
		return nil
	}
	x := append([]float64{}, Dom.Msh.Verts[vid].C...)
	q := &Point{Vid: vid, X: x, Vals: make(map[string]float64)}
	if A != nil {
		q.Dist = dist(A, x)
	}
	return q
}

// dist returns the distance between 2D points a and b
func dist(a, b []float64) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}
