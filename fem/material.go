// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/upfem/upfem/inp"

	"github.com/cpmech/gosl/chk"
)

// Material holds the parameters of the mixed u-p linear elastic model
//
//	σ = 2 G ε - 8/9 G tr(ε) I - p I    with    p = -K tr(ε)
//
// where ε holds the in-plane components; the first two terms derive from the energy
// G dev(ε):dev(ε) with dev(ε) = ε - tr(ε)/3 I.
type Material struct {
	E  float64 // Young's modulus; zero if given by {G, K}
	Nu float64 // Poisson's coefficient; zero if given by {G, K}
	G  float64 // shear modulus
	K  float64 // volumetric penalty modulus; +Inf => incompressible
}

// NewMaterial returns a new material computed from E and ν
//
//	G = E / (2 (1 + ν))
//	K = E ν / ((1 + ν) (1 - 2 ν))  =>  K = +Inf if ν == 0.5
//
// K must be positive, thus ν must be in (0, 0.5]
func NewMaterial(E, nu float64) (o *Material, err error) {
	if E <= 0 || math.IsNaN(E) || math.IsInf(E, 0) {
		return nil, chk.Err("Young's modulus must be positive and finite; E=%g is invalid", E)
	}
	if nu <= 0 || nu > 0.5 || math.IsNaN(nu) {
		return nil, chk.Err("Poisson's coefficient must be in (0, 0.5] to give a positive volumetric modulus; nu=%g is invalid", nu)
	}
	o = &Material{E: E, Nu: nu}
	o.G = E / (2.0 * (1.0 + nu))
	if nu == 0.5 {
		o.K = math.Inf(1)
	} else {
		o.K = E * nu / ((1.0 + nu) * (1.0 - 2.0*nu))
	}
	return
}

// NewMaterialGK returns a new material with given G and K
func NewMaterialGK(G, K float64) (o *Material, err error) {
	if G <= 0 || math.IsNaN(G) || math.IsInf(G, 0) {
		return nil, chk.Err("shear modulus must be positive and finite; G=%g is invalid", G)
	}
	if K <= 0 || math.IsNaN(K) {
		return nil, chk.Err("volumetric modulus must be positive; K=%g is invalid", K)
	}
	return &Material{G: G, K: K}, nil
}

// GetMaterial returns the material defined in simulation data
func GetMaterial(dat *inp.MatData) (*Material, error) {
	if dat.G != 0 || dat.K != 0 {
		return NewMaterialGK(dat.G, dat.K)
	}
	return NewMaterial(dat.E, dat.Nu)
}

// Incompressible returns whether the volumetric penalty term vanishes
func (o *Material) Incompressible() bool { return math.IsInf(o.K, 1) }

// InvK returns 1/K; zero if incompressible
func (o *Material) InvK() float64 {
	if o.Incompressible() {
		return 0
	}
	return 1.0 / o.K
}
