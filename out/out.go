// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements FE simulation output handling for analyses and tables
package out

import (
	"github.com/upfem/upfem/fem"

	"github.com/cpmech/gosl/chk"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y coordinates
)

// ResultsMap maps aliases to points
type ResultsMap map[string]Points

// Global variables
var (

	// data set by Start
	Analysis *fem.FEM     // the fem structure; nil if started with a domain
	Sum      *fem.Summary // summary; nil if not available
	Dom      *fem.Domain  // FE domain

	// defined entities and results loaded by LoadResults
	Results ResultsMap // maps labels => points

	// extrapolated values
	ExVals []map[string]float64 // [nverts] values at vertices; e.g. "p" at midside nodes
)

// Start starts handling of results given a simulation input file. The summary and solution
// saved by a previous run are read back.
func Start(simfnpath, alias string) (err error) {

	// fem structure
	analysis, err := fem.NewFEM(simfnpath, alias, false, false, false)
	if err != nil {
		return
	}
	sim := analysis.Sim

	// summary
	sum, err := fem.ReadSummary(sim.DirOut, sim.Key, sim.EncType)
	if err != nil {
		return chk.Err("cannot read summary:\n%v", err)
	}

	// solution
	dom := analysis.Domain
	err = dom.Bind(sim.Msh)
	if err != nil {
		return
	}
	err = dom.ReadSol(sim.DirOut, sim.Key, sim.EncType)
	if err != nil {
		return chk.Err("cannot read solution:\n%v", err)
	}
	if sum.Neq != dom.Dofs.Neq {
		return chk.Err("inconsistency of results detected: summary and simulation file might be different")
	}

	// results
	err = StartDomain(dom)
	if err != nil {
		return
	}
	Analysis = analysis
	Sum = sum
	return
}

// StartDomain starts handling of results of a solved domain
func StartDomain(dom *fem.Domain) (err error) {
	if dom == nil || dom.Stage() != fem.Solved {
		return chk.Err("cannot handle results of a domain that is not solved")
	}
	Analysis = nil
	Sum = nil
	Dom = dom
	Results = make(map[string]Points)
	return compute_extrapolated_values()
}
