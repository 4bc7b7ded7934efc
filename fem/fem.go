// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the mixed displacement-pressure finite element method for
// plane-strain linear elasticity
package fem

import (
	"bytes"
	"time"

	"github.com/upfem/upfem/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FEM holds all data for a simulation using the finite element method
type FEM struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure; nil if not saved
	Domain  *Domain         // FE domain
	Verbose bool            // show messages
}

// NewFEM returns a new FEM structure
//
//	Input:
//	 simfilepath -- simulation (.sim) filename including full path
//	 alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//	 erasePrev   -- erase previous results files
//	 saveSummary -- save summary
//	 verbose     -- show messages
func NewFEM(simfilepath, alias string, erasePrev, saveSummary, verbose bool) (o *FEM, err error) {
	sim, err := inp.ReadSim(simfilepath, alias, erasePrev)
	if err != nil {
		return nil, chk.Err("cannot read simulation input data:\n%v", err)
	}
	return NewFEMsim(sim, saveSummary, verbose)
}

// NewFEMsim returns a new FEM structure from simulation data already in memory
func NewFEMsim(sim *inp.Simulation, saveSummary, verbose bool) (o *FEM, err error) {
	o = &FEM{Sim: sim, Verbose: verbose}
	sim.Data.Verbose = sim.Data.Verbose || verbose
	if saveSummary {
		o.Summary = NewSummary()
	}
	o.Domain, err = NewDomain(sim)
	if err != nil {
		return nil, err
	}
	return
}

// Run runs FE simulation
func (o *FEM) Run() (err error) {

	// message
	if o.Verbose {
		var buf bytes.Buffer
		if o.Sim.GetInfo(&buf) == nil {
			io.Pf("%s\n", buf.String())
		}
	}

	// solve
	cputime := time.Now()
	err = o.Domain.Run()
	if err != nil {
		inp.LogErr(err, "Run failed")
		return
	}

	// message
	if o.Verbose {
		io.Pfyel("cpu time            = %v\n", time.Since(cputime))
	}

	// save results
	if o.Summary != nil {
		err = o.Domain.SaveSol(o.Verbose)
		if err != nil {
			return
		}
		o.Summary.Collect(o.Domain, time.Since(cputime))
		err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.Verbose)
	}
	return
}
