// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/upfem/upfem/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func get_nids_eqs(dom *Domain) (nids, eqs []int) {
	for _, nod := range dom.Dofs.Nodes {
		nids = append(nids, nod.Vert.Id)
		for _, dof := range nod.Dofs {
			eqs = append(eqs, dof.Eq)
		}
	}
	return
}

// rectangle returns the corners of [0,lx]×[0,ly]
func rectangle(lx, ly float64) [][]float64 {
	return [][]float64{{0, 0}, {lx, 0}, {lx, ly}, {0, ly}}
}

// new_sim returns simulation data with a generated mesh and no boundary conditions
func new_sim(tst *testing.T, corners [][]float64, nx, ny int, ctype string, E, nu float64, nolbb bool, nworkers int) *inp.Simulation {
	sim := new(inp.Simulation)
	sim.SetDefault()
	sim.Key = io.Sf("test-%s-%dx%d", ctype, nx, ny)
	sim.Data.DirOut = tst.TempDir()
	sim.Data.NoLBB = nolbb
	sim.Data.Nworkers = nworkers
	sim.Data.Verbose = chk.Verbose
	sim.Mat.E = E
	sim.Mat.Nu = nu
	sim.Mesh.Type = ctype
	sim.Mesh.Nx = nx
	sim.Mesh.Ny = ny
	sim.Mesh.Corners = corners
	err := sim.PostProcess("")
	if err != nil {
		tst.Fatalf("PostProcess failed:\n%v", err)
	}
	return sim
}

// patch_sim returns the uniaxial tension test: ux = 0 on the left edge, uy = 0 at corner 0 and
// traction {t, 0} on the right edge of [0,2]×[0,1]
func patch_sim(tst *testing.T, ctype string, nu, t float64, nolbb bool, nworkers int) *inp.Simulation {
	sim := new_sim(tst, rectangle(2, 1), 4, 3, ctype, 1, nu, nolbb, nworkers)
	sim.FaceBcs = []*inp.FaceBc{
		{Name: "left", Keys: []string{"ux"}, Vals: []float64{0}},
		{Name: "right", Keys: []string{"tx"}, Vals: []float64{t}},
	}
	sim.NodeBcs = []*inp.NodeBc{
		{Name: "corner0", Keys: []string{"uy"}, Vals: []float64{0}},
	}
	return sim
}

// cook_sim returns Cook's membrane with a vertical traction on the right edge
func cook_sim(tst *testing.T, nx, ny int, ctype string, nu, traction float64, nolbb bool, nworkers int) *inp.Simulation {
	sim, err := inp.NewCooksMembrane(nx, ny, ctype, 1, nu, traction, nolbb)
	if err != nil {
		tst.Fatalf("NewCooksMembrane failed:\n%v", err)
	}
	sim.DirOut = tst.TempDir()
	sim.Data.Nworkers = nworkers
	sim.Data.Verbose = chk.Verbose
	return sim
}

// max_abs_u returns the maximum absolute displacement component
func max_abs_u(dom *Domain) (res float64) {
	for _, nod := range dom.Dofs.Nodes {
		res = math.Max(res, math.Abs(dom.Sol[nod.GetEq("ux")]))
		res = math.Max(res, math.Abs(dom.Sol[nod.GetEq("uy")]))
	}
	return
}

// vert_at returns the id of vertex at {x, y}; -1 if not found
func vert_at(msh *inp.Mesh, x, y float64) int {
	for _, v := range msh.Verts {
		if math.Abs(v.C[0]-x) < 1e-10 && math.Abs(v.C[1]-y) < 1e-10 {
			return v.Id
		}
	}
	return -1
}
