// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// UniaxialTension implements the homogeneous plane-strain solution of a body loaded by a
// traction t along x, with ux = 0 on the left edge (x = x0) and free top and bottom edges
//
//	     ┌─────────┐
//	    ▷│         │→ t
//	    ▷│         │→ t
//	    ▷└─────────┘→ t
//	     ▲
//
//	σxx = t    σyy = 0    p = -K (εxx + εyy)
type UniaxialTension struct {

	// input
	G  float64 // shear modulus
	K  float64 // volumetric modulus; +Inf => incompressible
	T  float64 // traction on right edge
	X0 float64 // x-coordinate of clamped (left) edge
	Y0 float64 // y-coordinate of vertex with uy = 0

	// derived
	Exx float64 // strain along x
	Eyy float64 // strain along y
	P   float64 // pressure
}

// Init initialises this structure
func (o *UniaxialTension) Init(G, K, t, x0, y0 float64) (err error) {
	if G <= 0 || K <= 0 {
		return chk.Err("moduli must be positive; G=%g and K=%g are invalid", G, K)
	}
	o.G, o.K, o.T, o.X0, o.Y0 = G, K, t, x0, y0

	// incompressible: εyy = -εxx and σxx = 4 G εxx
	if math.IsInf(K, 1) {
		o.Exx = t / (4.0 * G)
		o.Eyy = -o.Exx
		o.P = -t / 2.0
		return
	}

	// σxx = a εxx + λ εyy = t and σyy = λ εxx + a εyy = 0
	λ := K - 8.0*G/9.0
	a := K + 10.0*G/9.0
	o.Exx = t * a / (a*a - λ*λ)
	o.Eyy = -λ * o.Exx / a
	o.P = -K * (o.Exx + o.Eyy)
	return
}

// InitEnu initialises this structure with Young's modulus and Poisson's coefficient
func (o *UniaxialTension) InitEnu(E, nu, t, x0, y0 float64) (err error) {
	G := E / (2.0 * (1.0 + nu))
	K := math.Inf(1)
	if nu < 0.5 {
		K = E * nu / ((1.0 + nu) * (1.0 - 2.0*nu))
	}
	return o.Init(G, K, t, x0, y0)
}

// Disp computes the displacements at {x, y}
func (o UniaxialTension) Disp(x, y float64) (ux, uy float64) {
	return o.Exx * (x - o.X0), o.Eyy * (y - o.Y0)
}

// Stress computes the total stresses {σxx, σyy, σzz, σxy}
// The deviator acts on the in-plane strains only, thus σzz = -p
func (o UniaxialTension) Stress() (sx, sy, sz, sxy float64) {
	sx = o.T
	sz = -o.P
	return
}
