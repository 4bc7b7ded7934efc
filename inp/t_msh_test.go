// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_gen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gen01. tri3")

	msh, err := GenQuadrilateral(CooksMembraneCorners(), 2, 2, "tri3")
	if err != nil {
		tst.Errorf("GenQuadrilateral failed:\n%v", err)
		return
	}
	if chk.Verbose {
		io.Pf("%v\n", msh)
	}
	chk.Int(tst, "nverts", len(msh.Verts), 9)
	chk.Int(tst, "ncells", len(msh.Cells), 8)
	chk.Float64(tst, "xmin", 1e-15, msh.Xmin, 0)
	chk.Float64(tst, "xmax", 1e-15, msh.Xmax, 48)
	chk.Float64(tst, "ymin", 1e-15, msh.Ymin, 0)
	chk.Float64(tst, "ymax", 1e-15, msh.Ymax, 60)

	// bilinear map: centre of quadrilateral is the mean of the corners
	chk.Array(tst, "x4", 1e-15, msh.Verts[4].C, []float64{24, 37})

	// first quadrilateral
	chk.Ints(tst, "cell 0", msh.Cells[0].Verts, []int{0, 1, 3})
	chk.Ints(tst, "cell 1", msh.Cells[1].Verts, []int{1, 4, 3})
	chk.Ints(tst, "ftags 0", msh.Cells[0].FTags, []int{TagBottom, 0, TagLeft})

	// tags
	chk.Ints(tst, "left", msh.FaceTag2verts[TagLeft], []int{0, 3, 6})
	chk.Ints(tst, "right", msh.FaceTag2verts[TagRight], []int{2, 5, 8})
	chk.Ints(tst, "bottom", msh.FaceTag2verts[TagBottom], []int{0, 1, 2})
	chk.Ints(tst, "top", msh.FaceTag2verts[TagTop], []int{6, 7, 8})
	chk.Int(tst, "corner0", msh.VertTag2verts[-1][0].Id, 0)
	chk.Int(tst, "corner2", msh.VertTag2verts[-3][0].Id, 8)
	chk.Int(tst, "ncells on right", len(msh.FaceTag2cells[TagRight]), 2)
	tag, err := msh.GetTag("right")
	if err != nil {
		tst.Errorf("GetTag failed:\n%v", err)
		return
	}
	chk.Int(tst, "right", tag, TagRight)
	if _, err = msh.GetTag("nothing"); err == nil {
		tst.Errorf("GetTag should have failed")
	}
	chk.Ints(tst, "verts on corner3", msh.GetVertsOnTag(-4), []int{6})

	// all cells are counter-clockwise
	for _, c := range msh.Cells {
		X := msh.ExtractCellCoords(c.Id)
		area2 := (X[0][1]-X[0][0])*(X[1][2]-X[1][0]) - (X[0][2]-X[0][0])*(X[1][1]-X[1][0])
		if area2 <= 0 {
			tst.Errorf("cell %d is not counter-clockwise", c.Id)
		}
	}
}

func Test_gen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gen02. tri6")

	msh, err := GenQuadrilateral([][]float64{{0, 0}, {2, 0}, {2, 1}, {0, 1}}, 2, 1, "tri6")
	if err != nil {
		tst.Errorf("GenQuadrilateral failed:\n%v", err)
		return
	}
	chk.Int(tst, "nverts", len(msh.Verts), 15)
	chk.Int(tst, "ncells", len(msh.Cells), 4)
	chk.Ints(tst, "cell 0", msh.Cells[0].Verts, []int{0, 2, 10, 1, 6, 5})
	chk.Ints(tst, "cell 1", msh.Cells[1].Verts, []int{2, 12, 10, 7, 11, 6})

	// midside vertices are in the middle of straight edges
	for _, c := range msh.Cells {
		X := msh.ExtractCellCoords(c.Id)
		for f, lverts := range c.Shp.FaceLocalVerts {
			a, b, m := lverts[0], lverts[1], lverts[2]
			for i := 0; i < 2; i++ {
				chk.Float64(tst, io.Sf("cell %d face %d", c.Id, f), 1e-15, X[i][m], (X[i][a]+X[i][b])/2)
			}
		}
	}

	// right edge includes midside vertices
	chk.Ints(tst, "right", msh.FaceTag2verts[TagRight], []int{4, 9, 14})
}

func Test_gen03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gen03. errors")

	if _, err := GenQuadrilateral(CooksMembraneCorners(), 0, 1, "tri3"); err == nil {
		tst.Errorf("nx=0 should have failed")
	}
	if _, err := GenQuadrilateral(CooksMembraneCorners(), 1, 1, "qua4"); err == nil {
		tst.Errorf("qua4 should have failed")
	}
	if _, err := GenQuadrilateral(CooksMembraneCorners()[:3], 1, 1, "tri3"); err == nil {
		tst.Errorf("3 corners should have failed")
	}

	// inverted quadrilateral is generated; detecting inverted cells is up to the element
	msh, err := GenQuadrilateral([][]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, 1, 1, "tri3")
	if err != nil {
		tst.Errorf("GenQuadrilateral failed:\n%v", err)
		return
	}
	chk.Int(tst, "ncells", len(msh.Cells), 2)
}

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. check")

	newMesh := func() *Mesh {
		return &Mesh{
			Verts: []*Vert{
				{Id: 0, Tag: -1, C: []float64{0, 0}},
				{Id: 1, C: []float64{1, 0}},
				{Id: 2, C: []float64{1, 1}},
				{Id: 3, Tag: -2, C: []float64{0, 1}},
			},
			Cells: []*Cell{
				{Id: 0, Tag: -1, Type: "tri3", Verts: []int{0, 1, 3}, FTags: []int{-10, 0, -13}},
				{Id: 1, Tag: -1, Type: "tri3", Verts: []int{1, 2, 3}, FTags: []int{-11}},
			},
		}
	}

	msh := newMesh()
	err := msh.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Ints(tst, "left", msh.FaceTag2verts[-13], []int{0, 3})
	chk.Ints(tst, "right", msh.FaceTag2verts[-11], []int{1, 2})

	// vertex out of range
	msh = newMesh()
	msh.Cells[1].Verts[1] = 4
	if err = msh.Check(); err == nil {
		tst.Errorf("vertex out of range should have been detected")
	}

	// coincident vertices
	msh = newMesh()
	msh.Verts[2].C = []float64{1, 0}
	if err = msh.Check(); err == nil {
		tst.Errorf("coincident vertices should have been detected")
	}
	io.Pforan("err = %v\n", err)

	// wrong id
	msh = newMesh()
	msh.Verts[2].Id = 7
	if err = msh.Check(); err == nil {
		tst.Errorf("wrong id should have been detected")
	}

	// wrong number of vertices
	msh = newMesh()
	msh.Cells[0].Type = "tri6"
	if err = msh.Check(); err == nil {
		tst.Errorf("wrong number of vertices should have been detected")
	}

	// too many face tags
	msh = newMesh()
	msh.Cells[0].FTags = []int{0, 0, 0, 0}
	if err = msh.Check(); err == nil {
		tst.Errorf("wrong number of face tags should have been detected")
	}
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. read")

	// write mesh
	gen, err := GenQuadrilateral([][]float64{{0, 0}, {2, 0}, {2, 1}, {0, 1}}, 2, 1, "tri3")
	if err != nil {
		tst.Errorf("GenQuadrilateral failed:\n%v", err)
		return
	}
	dir := tst.TempDir()
	err = os.WriteFile(filepath.Join(dir, "rect.msh"), []byte(gen.String()), 0644)
	if err != nil {
		tst.Errorf("cannot write mesh:\n%v", err)
		return
	}

	// read mesh
	msh, err := ReadMsh(dir, "rect.msh")
	if err != nil {
		tst.Errorf("ReadMsh failed:\n%v", err)
		return
	}
	chk.Int(tst, "nverts", len(msh.Verts), len(gen.Verts))
	chk.Int(tst, "ncells", len(msh.Cells), len(gen.Cells))
	for i, v := range msh.Verts {
		chk.Array(tst, io.Sf("x%d", i), 1e-15, v.C, gen.Verts[i].C)
	}
	for i, c := range msh.Cells {
		chk.Ints(tst, io.Sf("cell %d", i), c.Verts, gen.Cells[i].Verts)
		chk.Ints(tst, io.Sf("ftags %d", i), c.FTags, gen.Cells[i].FTags)
	}
	chk.Int(tst, "tag of left", msh.TagNames["left"], TagLeft)
	chk.Ints(tst, "left", msh.FaceTag2verts[TagLeft], []int{0, 3})

	// invalid file
	if _, err = ReadMsh(dir, "nothing.msh"); err == nil {
		tst.Errorf("ReadMsh should have failed")
	}
	b, err := readFile(filepath.Join(dir, "nothing.msh"))
	if err == nil || b != nil {
		tst.Errorf("readFile should have returned an error and no data")
	}
	io.Pforan("%v\n", err)
	b, err = readFile(filepath.Join(dir, "rect.msh"))
	if err != nil {
		tst.Errorf("readFile failed:\n%v", err)
		return
	}
	chk.String(tst, string(b), gen.String())
}
