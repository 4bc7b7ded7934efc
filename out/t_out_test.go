// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/upfem/upfem/ana"
	"github.com/upfem/upfem/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// write_patch writes the uniaxial tension test on [0,2]×[0,1] and returns the .sim path
func write_patch(tst *testing.T, ctype, encoder string) (simfile string) {
	dir := tst.TempDir()
	simfile = filepath.Join(dir, "patch.sim")
	err := os.WriteFile(simfile, []byte(`{
  "data" : { "desc":"uniaxial tension", "dirout":"`+dir+`/out", "encoder":"`+encoder+`", "nworkers":2 },
  "material" : { "E":1, "nu":0.3 },
  "mesh" : { "type":"`+ctype+`", "nx":4, "ny":2, "corners":[[0,0],[2,0],[2,1],[0,1]] },
  "facebcs" : [
    { "name":"left",  "keys":["ux"], "vals":[0] },
    { "name":"right", "keys":["tx"], "vals":[0.1] }
  ],
  "nodebcs" : [
    { "name":"corner0", "keys":["uy"], "vals":[0] }
  ]
}`), 0644)
	require.NoError(tst, err)
	return
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. results from file")

	for _, enc := range []string{"gob", "json"} {

		// run FE simulation
		simfile := write_patch(tst, "tri6", enc)
		analysis, err := fem.NewFEM(simfile, "", true, true, chk.Verbose)
		require.NoError(tst, err)
		require.NoError(tst, analysis.Run())

		// start post-processing
		require.NoError(tst, Start(simfile, ""))
		require.NotNil(tst, Sum)
		assert.Equal(tst, analysis.Summary.RunId, Sum.RunId)
		chk.Array(tst, "Sol", 1e-17, Dom.Sol, analysis.Domain.Sol)

		// analytical solution
		var sol ana.UniaxialTension
		require.NoError(tst, sol.Init(Dom.Mat.G, Dom.Mat.K, 0.1, 0, 0))

		// define entities
		require.NoError(tst, Define("A", At{2, 1}))
		require.NoError(tst, Define("mid", At{1.75, 0.5}))
		require.NoError(tst, Define("right", AlongY{2}))
		require.NoError(tst, Define("bottom", AlongX{0}))
		require.NoError(tst, Define("a b", N{-1, -2}))
		assert.Error(tst, Define("none", At{5, 5}))
		assert.Error(tst, Define("", At{2, 1}))
		LoadResults()

		// point A
		ux, uy := sol.Disp(2, 1)
		chk.Float64(tst, "ux @ A", 1e-12, GetRes("ux", "A")[0], ux)
		chk.Float64(tst, "uy @ A", 1e-12, GetRes("uy", "A")[0], uy)
		chk.Float64(tst, "p  @ A", 1e-11, GetRes("p", "A")[0], sol.P)
		chk.Array(tst, "A", 1e-15, GetCoords("A"), []float64{2, 1})

		// midside node: extrapolated pressure
		chk.Float64(tst, "p @ mid", 1e-11, GetRes("p", "mid")[0], sol.P)
		assert.Equal(tst, -1, Dom.Dofs.Vid2node[GetIds("mid")[0]].GetEq("p"))

		// along right edge: 2 ny + 1 nodes sorted by distance
		chk.Array(tst, "dist", 1e-15, GetDist("any", "right"), []float64{0, 0.25, 0.5, 0.75, 1})
		x, y := GetXY("ux", "right")
		chk.Array(tst, "x", 1e-15, x, []float64{2, 2, 2, 2, 2})
		chk.Array(tst, "y", 1e-15, y, []float64{0, 0.25, 0.5, 0.75, 1})
		chk.Float64(tst, "∫ p dy", 1e-11, Integrate("p", "right"), sol.P)
		chk.Float64(tst, "∫ ux dy", 1e-12, Integrate("ux", "right"), ux)
		chk.Int(tst, "len(bottom)", len(Results["bottom"]), 9)

		// corners
		chk.Ints(tst, "a", GetIds("a"), []int{0})
		chk.Ints(tst, "b", GetIds("b"), []int{8})

		// max displacement
		umax, vid, key := MaxAbsU()
		chk.Float64(tst, "umax", 1e-12, umax, 2*sol.Exx)
		assert.Equal(tst, "ux", key)
		chk.Float64(tst, "x @ umax", 1e-15, Dom.Msh.Verts[vid].C[0], 2)

		// table
		dir := filepath.Dir(simfile)
		require.NoError(tst, WriteTable(dir, "right", "right", "ux", "uy", "p", "none"))
		b, err := os.ReadFile(filepath.Join(dir, "right.dat"))
		require.NoError(tst, err)
		lines := strings.Split(strings.TrimSpace(string(b)), "\n")
		assert.Len(tst, lines, 6)
		assert.Contains(tst, lines[1], "NaN")
		assert.Error(tst, WriteTable(dir, "x", "undefined"))
	}
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. results from domain")

	// not solved
	assert.Error(tst, StartDomain(nil))

	// missing results
	simfile := write_patch(tst, "tri3", "gob")
	assert.Error(tst, Start(simfile, ""))

	// run
	analysis, err := fem.NewFEM(simfile, "", true, false, false)
	require.NoError(tst, err)
	dom := analysis.Domain
	assert.Error(tst, StartDomain(dom))
	require.NoError(tst, analysis.Run())
	require.NoError(tst, StartDomain(dom))
	assert.Nil(tst, Sum)

	// all nodes
	require.NoError(tst, Define("!all nodes", AllNodes()))
	LoadResults()
	chk.Int(tst, "nnodes", len(Results["all nodes"]), 5*3)
	for _, p := range Results["all nodes"] {
		assert.Len(tst, p.Vals, 3)
		chk.Float64(tst, "p", 1e-11, p.Vals["p"], ExVals[p.Vid]["p"])
	}
}

func Test_vtu01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vtu01. ParaView file")

	simfile := write_patch(tst, "tri6", "gob")
	analysis, err := fem.NewFEM(simfile, "", true, false, false)
	require.NoError(tst, err)
	require.NoError(tst, analysis.Run())
	require.NoError(tst, StartDomain(analysis.Domain))

	dir := tst.TempDir()
	require.NoError(tst, WriteVtu(dir, "patch"))
	b, err := os.ReadFile(filepath.Join(dir, "patch.vtu"))
	require.NoError(tst, err)
	vtu := string(b)
	assert.Contains(tst, vtu, `<Piece NumberOfPoints="45" NumberOfCells="16">`)
	assert.Contains(tst, vtu, `Name="u" NumberOfComponents="3"`)
	assert.Contains(tst, vtu, `Name="p"`)
	types := strings.Split(strings.Split(vtu, `Name="types"`)[1], "</Cells>")[0]
	assert.Equal(tst, 16, strings.Count(types, "22 "))

	// output directory cannot be created below a regular file
	blocker := filepath.Join(dir, "blocker")
	require.NoError(tst, os.WriteFile(blocker, []byte("x"), 0644))
	assert.Error(tst, WriteVtu(filepath.Join(blocker, "sub"), "patch"))
}

func Test_out03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out03. values at arbitrary points")

	// not started
	Dom = nil
	_, _, _, err := ValuesAt([]float64{1, 0.5})
	assert.Error(tst, err)

	for _, ctype := range []string{"tri3", "tri6"} {

		// run
		simfile := write_patch(tst, ctype, "gob")
		analysis, err := fem.NewFEM(simfile, "", true, false, false)
		require.NoError(tst, err)
		require.NoError(tst, analysis.Run())
		require.NoError(tst, StartDomain(analysis.Domain))

		// analytical solution
		var sol ana.UniaxialTension
		require.NoError(tst, sol.Init(Dom.Mat.G, Dom.Mat.K, 0.1, 0, 0))

		// linear displacements and constant pressure are reproduced everywhere
		for _, x := range [][]float64{{0.3, 0.2}, {1.1, 0.77}, {1.9, 0.05}, {1, 0.5}, {2, 1}} {
			vals, cid, r, err := ValuesAt(x)
			require.NoError(tst, err, "%s @ %v", ctype, x)
			ux, uy := sol.Disp(x[0], x[1])
			chk.Float64(tst, io.Sf("%s: ux @ %v", ctype, x), 1e-12, vals["ux"], ux)
			chk.Float64(tst, io.Sf("%s: uy @ %v", ctype, x), 1e-12, vals["uy"], uy)
			chk.Float64(tst, io.Sf("%s: p  @ %v", ctype, x), 1e-11, vals["p"], sol.P)

			// r maps back to x
			y := make([]float64, 2)
			S := make([]float64, len(Dom.Cells[cid].Cell.Verts))
			Dom.Cells[cid].Cell.Shp.Func(S, nil, r, false)
			for i := range y {
				for m, v := range S {
					y[i] += v * Dom.Cells[cid].X[i][m]
				}
			}
			chk.Array(tst, io.Sf("%s: x(r)", ctype), 1e-12, y, x)
		}

		// outside
		_, cid, _, err := ValuesAt([]float64{2.5, 0.5})
		assert.Error(tst, err)
		assert.Equal(tst, -1, cid)
		_, _, _, err = ValuesAt([]float64{1})
		assert.Error(tst, err)
	}
}
