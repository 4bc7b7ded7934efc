// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/upfem/upfem/fem"
	"github.com/upfem/upfem/inp"
	"github.com/upfem/upfem/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
		inp.FlushLog()
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "examples/cooks_membrane/cook-tri3", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	writeVtu := io.ArgToBool(3, false)
	alias := io.ArgToString(4, "")

	// message
	if verbose {
		io.PfWhite("\nupfem -- mixed u-p finite element method\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"write vtu file", "writeVtu", writeVtu,
			"word to add to results", "alias", alias,
		))
	}

	// analysis data
	analysis, err := fem.NewFEM(fnamepath, alias, erasePrev, true, verbose)
	if err != nil {
		chk.Panic("NewFEM failed:\n%v", err)
	}
	sim := analysis.Sim
	err = inp.InitLogFile(sim.DirOut, sim.Key)
	if err != nil {
		chk.Panic("cannot create log file:\n%v", err)
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	err = out.StartDomain(analysis.Domain)
	if err != nil {
		chk.Panic("cannot handle results:\n%v", err)
	}
	umax, vid, key := out.MaxAbsU()
	inp.Logf("max|%s| = %.14f at vertex %d", key, umax, vid)
	if verbose {
		io.Pforan("max|%s| = %.14f at vertex %d %v\n", key, umax, vid, sim.Msh.Verts[vid].C)
		io.Pf("run id  = %s\n", analysis.Summary.RunId)
	}
	if writeVtu {
		err = out.WriteVtu(sim.DirOut, sim.Key)
		if err != nil {
			chk.Panic("cannot write vtu file:\n%v", err)
		}
	}
}
