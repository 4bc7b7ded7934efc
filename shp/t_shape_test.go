// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01")

	r := []float64{0.2, 0.3, 0}

	verb := chk.Verbose
	for name, shape := range factory {

		io.Pfyel("--------------------------------- %-6s---------------------------------\n", name)

		// check S
		tol := 1e-15
		CheckShape(tst, shape, tol, verb)

		// check Sf
		CheckShapeFace(tst, shape, tol, verb)

		// check dSdR
		tol = 1e-9
		CheckDSdR(tst, shape, r, tol, verb)
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02")

	// right triangle with legs 3 and 2
	xmat := [][]float64{
		{10, 13, 10},
		{8, 8, 10},
	}
	r := []float64{0.25, 0.25, 0}
	shape := Get("tri3", 1)
	err := shape.CalcAtIp(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	io.Pforan("J = %v\n", shape.J)
	chk.Float64(tst, "J", 1e-15, shape.J, 6.0)

	tol := 1e-8
	x := []float64{11.0, 8.5}
	CheckDSdx(tst, shape, xmat, x, tol, chk.Verbose)

	// curved-free quadratic triangle with straight edges
	xmat6 := [][]float64{
		{0, 2, 0, 1, 1, 0},
		{0, 0, 1, 0, 0.5, 0.5},
	}
	CheckDSdx(tst, Get("tri6", 1), xmat6, []float64{0.5, 0.25}, tol, chk.Verbose)
}

func Test_ips01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips01")

	// weights sum to reference measure
	for degree := 0; degree <= 5; degree++ {
		ips, err := IpsTri(degree)
		if err != nil {
			tst.Errorf("IpsTri failed:\n%v", err)
			return
		}
		sum := 0.0
		for _, ip := range ips {
			sum += ip.W
		}
		chk.Float64(tst, io.Sf("tri: sum(w) degree=%d", degree), 1e-15, sum, Get("tri3", 0).RefMeasure)
	}
	for n := 1; n <= 4; n++ {
		ips, err := IpsLin(n)
		if err != nil {
			tst.Errorf("IpsLin failed:\n%v", err)
			return
		}
		sum := 0.0
		for _, ip := range ips {
			sum += ip.W
		}
		chk.Float64(tst, io.Sf("lin: sum(w) n=%d", n), 1e-15, sum, Get("lin2", 0).RefMeasure)
	}

	// invalid requests
	if _, err := IpsTri(6); err == nil {
		tst.Errorf("IpsTri(6) should have failed")
	}
	if _, err := IpsLin(5); err == nil {
		tst.Errorf("IpsLin(5) should have failed")
	}
	if _, _, err := GetIntegrationPoints(4, 0, "tri3"); err == nil {
		tst.Errorf("GetIntegrationPoints with nip=4 should have failed")
	}
	if _, _, err := GetIntegrationPoints(0, 0, "qua4"); err == nil {
		tst.Errorf("GetIntegrationPoints with qua4 should have failed")
	}
}

func Test_ips02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips02. integral of basis functions")

	// tri3: each function integrates to 1/6
	ips, _, err := GetIntegrationPoints(0, 0, "tri3")
	if err != nil {
		tst.Errorf("GetIntegrationPoints failed:\n%v", err)
		return
	}
	N := NewValues(Get("tri3", 0), ips).S
	integ := make([]float64, 3)
	for idx, ip := range ips {
		for m := range integ {
			integ[m] += ip.W * N[idx][m]
		}
	}
	io.Pforan("tri3: integ = %v\n", integ)
	chk.Array(tst, "tri3: ∫S", 1e-15, integ, []float64{1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0})

	// tri6: corners integrate to 0 and midside functions to 1/6
	ips, _, err = GetIntegrationPoints(0, 0, "tri6")
	if err != nil {
		tst.Errorf("GetIntegrationPoints failed:\n%v", err)
		return
	}
	vals := NewValues(Get("tri6", 0), ips)
	integ = make([]float64, 6)
	for idx, ip := range ips {
		for m := range integ {
			integ[m] += ip.W * vals.S[idx][m]
		}
	}
	io.Pforan("tri6: integ = %v\n", integ)
	chk.Array(tst, "tri6: ∫S", 1e-15, integ, []float64{0, 0, 0, 1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0})

	// degree 5 rule integrates r²s² exactly: ∫ r²s² = 2!2!/6! = 1/180
	ips, _ = IpsTri(4)
	res := 0.0
	for _, ip := range ips {
		res += ip.W * ip.R * ip.R * ip.S * ip.S
	}
	chk.Float64(tst, "∫r²s²", 1e-15, res, 1.0/180.0)
}

func Test_values01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("values01")

	ips, ipsf, err := GetIntegrationPoints(0, 0, "tri3")
	if err != nil {
		tst.Errorf("GetIntegrationPoints failed:\n%v", err)
		return
	}

	// triangle with area 3
	x := [][]float64{
		{1, 4, 1},
		{1, 1, 3},
	}
	vals := NewValues(Get("tri3", 0), ips)
	err = vals.Reinit(x)
	if err != nil {
		tst.Errorf("Reinit failed:\n%v", err)
		return
	}
	area := 0.0
	for idx, ip := range ips {
		chk.Float64(tst, "J", 1e-15, vals.J[idx], 6.0)
		area += ip.W * vals.J[idx]
	}
	chk.Float64(tst, "area", 1e-14, area, 3.0)

	// gradients of linear functions are constant: sum of G is zero
	for idx := range ips {
		for j := 0; j < 2; j++ {
			sum := 0.0
			for m := 0; m < 3; m++ {
				sum += vals.G[idx][m][j]
			}
			chk.Float64(tst, "ΣG", 1e-15, sum, 0)
		}
		chk.Array(tst, "G0", 1e-15, vals.G[idx][0], []float64{-1.0 / 3.0, -0.5})
	}

	// real coordinates of the centroid rule
	ips1, _ := IpsTri(1)
	vals1 := NewValues(Get("tri3", 0), ips1)
	chk.Array(tst, "centroid", 1e-15, vals1.RealCoords(x, 0), []float64{2, 5.0 / 3.0})

	// face 1 goes from (4,1) to (1,3): length = sqrt(13)
	fvals := NewFaceValues(Get("tri3", 0), ipsf)
	err = fvals.Reinit(x, 1)
	if err != nil {
		tst.Errorf("Reinit failed:\n%v", err)
		return
	}
	length := 0.0
	for idx, ip := range ipsf {
		length += ip.W * fvals.Jf[idx]
	}
	chk.Float64(tst, "length", 1e-14, length, 3.605551275463989)
	chk.Ints(tst, "face verts", fvals.LocalVerts(), []int{1, 2})

	// outward normal of face 1 points away from vertex 0
	nx, ny := fvals.Fnvec[0][0]/fvals.Jf[0], fvals.Fnvec[0][1]/fvals.Jf[0]
	if nx*(1-4)+ny*(1-1) > 0 {
		tst.Errorf("normal of face 1 is not outward: (%g, %g)", nx, ny)
	}
}

func Test_values02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("values02. inverted cell")

	ips, _, _ := GetIntegrationPoints(0, 0, "tri3")
	vals := NewValues(Get("tri3", 0), ips)

	// clockwise
	err := vals.Reinit([][]float64{
		{0, 0, 1},
		{0, 1, 0},
	})
	var gerr *GeometryError
	if !errors.As(err, &gerr) {
		tst.Errorf("GeometryError expected; got %v", err)
		return
	}
	io.Pforan("err = %v\n", err)
	chk.Float64(tst, "J", 1e-15, gerr.J, -1)
	chk.Int(tst, "Ip", gerr.Ip, 0)
	chk.Int(tst, "Face", gerr.Face, -1)

	// collapsed
	err = vals.Reinit([][]float64{
		{0, 1, 2},
		{0, 1, 2},
	})
	if !errors.As(err, &gerr) {
		tst.Errorf("GeometryError expected; got %v", err)
	}

	// collapsed face
	ipsf, _ := IpsLin(2)
	fvals := NewFaceValues(Get("tri3", 0), ipsf)
	err = fvals.Reinit([][]float64{
		{0, 0, 1},
		{0, 0, 1},
	}, 0)
	if !errors.As(err, &gerr) {
		tst.Errorf("GeometryError expected; got %v", err)
		return
	}
	chk.Int(tst, "Face", gerr.Face, 0)
}

func Test_invmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invmap01")

	x := [][]float64{
		{1, 4, 1},
		{1, 1, 3},
	}
	shape := Get("tri3", 1)
	r := make([]float64, 3)
	err := shape.InvMap(r, []float64{2, 5.0 / 3.0}, x)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}
	chk.Array(tst, "r", 1e-12, r[:2], []float64{1.0 / 3.0, 1.0 / 3.0})
	y := NewValues(shape, []*Ipoint{{r[0], r[1], 0, 0}}).RealCoords(x, 0)
	chk.Array(tst, "y", 1e-12, y, []float64{2, 5.0 / 3.0})

	chk.Int(tst, "nverts(tri6)", GetNverts("tri6"), 6)
	chk.Int(tst, "nverts(qua4)", GetNverts("qua4"), -1)
	chk.String(tst, GetBasicType("tri6"), "tri3")
	chk.Ints(tst, "face 2 of tri6", GetFaceLocalVerts("tri6", 2), []int{2, 0, 5})
	if GetFaceLocalVerts("tri6", 3) != nil {
		tst.Errorf("face 3 of tri6 should not exist")
	}
}
