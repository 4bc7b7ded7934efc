// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/integrate"
)

// Point holds the results at a vertex
type Point struct {
	Vid  int                // vertex id
	X    []float64          // coordinates
	Dist float64            // distance to reference point
	Vals map[string]float64 // results; e.g. "ux", "uy", "p"
}

// Points is a set of points
type Points []*Point

// functions to implement Sort interface
func (o Points) Len() int           { return len(o) }
func (o Points) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o Points) Less(i, j int) bool { return o[i].Dist < o[j].Dist }

// Define defines aliases
//
//	alias -- an alias to a group of points, an individual point, or to a set of points.
//	         Example: "A", "left-column" or "a b c". If the number of points found is different
//	         than the number of aliases, a group is created.
//	Note:
//	  To use spaces in aliases, prefix the alias with an exclamation mark; e.g "!right column"
func Define(alias string, loc Locator) (err error) {

	// check
	if len(alias) < 1 {
		return chk.Err("alias must have at least one character. %q is invalid", alias)
	}

	// locate points
	pts := loc.Locate()
	if len(pts) < 1 {
		return chk.Err("cannot define entities with alias=%q and locator=%v", alias, loc)
	}

	// set results map
	if alias[0] == '!' {
		Results[alias[1:]] = pts
		return
	}
	lbls := strings.Fields(alias)
	if len(lbls) == len(pts) {
		for i, l := range lbls {
			Results[l] = Points{pts[i]}
		}
		return
	}
	Results[alias] = pts
	return
}

// LoadResults loads all results after points are defined
func LoadResults() {
	for _, pts := range Results {
		for _, p := range pts {

			// dofs
			nod := Dom.Dofs.Vid2node[p.Vid]
			for _, dof := range nod.Dofs {
				p.Vals[dof.Key] = Dom.Sol[dof.Eq]
			}

			// extrapolated values
			for key, val := range ExVals[p.Vid] {
				if _, ok := p.Vals[key]; !ok {
					p.Vals[key] = val
				}
			}
		}
	}
}

// GetRes gets results corresponding to a given alias for a single point or set of points
func GetRes(key, alias string) (res []float64) {
	pts, ok := Results[alias]
	if !ok {
		chk.Panic("cannot get %q at %q", key, alias)
	}
	for _, p := range pts {
		if v, ok := p.Vals[key]; ok {
			res = append(res, v)
		}
	}
	return
}

// GetIds return the ids corresponding to alias
func GetIds(alias string) (vids []int) {
	for _, p := range Results[alias] {
		vids = append(vids, p.Vid)
	}
	return
}

// GetCoords returns the coordinates of a single point
func GetCoords(alias string) []float64 {
	if pts, ok := Results[alias]; ok {
		if len(pts) == 1 {
			return pts[0].X
		}
	}
	chk.Panic("cannot get coordinates of point with alias %q (make sure this alias corresponds to a single point)", alias)
	return nil
}

// GetDist returns the distance from a reference point on the given line with selected points
// if they contain a given key
//
//	key -- use any to get distances of points with any key such as "ux", "p", etc.
func GetDist(key, alias string) (dist []float64) {
	any := key == "any"
	pts, ok := Results[alias]
	if !ok {
		chk.Panic("cannot get distance with key %q and alias %q", key, alias)
	}
	for _, p := range pts {
		if _, ok := p.Vals[key]; ok || any {
			dist = append(dist, p.Dist)
		}
	}
	return
}

// GetXY returns the x-y coordinates of selected points that have a specified key
//
//	key -- use any to get coordinates of points with any key such as "ux", "p", etc.
func GetXY(key, alias string) (x, y []float64) {
	any := key == "any"
	pts, ok := Results[alias]
	if !ok {
		chk.Panic("cannot get x-y coordinates with key %q and alias %q", key, alias)
	}
	for _, p := range pts {
		if _, ok := p.Vals[key]; ok || any {
			x = append(x, p.X[0])
			y = append(y, p.X[1])
		}
	}
	return
}

// Integrate integrates key along the line defined by alias using the trapezoidal rule
//
//	Note: points must have been located with Along, AlongX or AlongY
func Integrate(key, alias string) float64 {
	pts, ok := Results[alias]
	if !ok {
		chk.Panic("cannot integrate %q along %q: alias is not defined", key, alias)
	}
	var s, f []float64
	for _, p := range pts {
		if v, ok := p.Vals[key]; ok {
			s = append(s, p.Dist)
			f = append(f, v)
		}
	}
	if len(s) < 2 {
		chk.Panic("cannot integrate %q along %q: at least two points are required", key, alias)
	}
	return integrate.Trapezoidal(s, f)
}

// MaxAbsU returns the maximum absolute displacement component among all nodes
//
//	Output:
//	 umax -- max(|ux|, |uy|)
//	 vid  -- vertex where umax happens
//	 key  -- "ux" or "uy"
func MaxAbsU() (umax float64, vid int, key string) {
	vid = -1
	for _, nod := range Dom.Dofs.Nodes {
		for _, k := range []string{"ux", "uy"} {
			if u := math.Abs(Dom.Sol[nod.GetEq(k)]); u > umax || vid < 0 {
				umax, vid, key = u, nod.Vert.Id, k
			}
		}
	}
	return
}
