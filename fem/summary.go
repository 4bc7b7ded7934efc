// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/google/uuid"
)

// Summary records summary of a run
type Summary struct {

	// main data
	RunId    string        // unique identifier of run
	Dirout   string        // directory where results are stored
	Fnkey    string        // filename key of simulation
	Ncells   int           // number of cells
	Neq      int           // number of equations
	Nu       int           // number of displacement equations
	Np       int           // number of pressure equations
	Nworkers int           // number of goroutines used in assembly
	LinSol   string        // name of linear solver
	Kl       int           // lower bandwidth of global matrix
	Ku       int           // upper bandwidth of global matrix
	Nnz      int           // number of non-zeros in global matrix
	CpuTime  time.Duration // time spent by Run
}

// NewSummary returns a new summary with a fresh run identifier
func NewSummary() *Summary {
	return &Summary{RunId: uuid.NewString()}
}

// Collect records the data of a solved domain
func (o *Summary) Collect(dom *Domain, cputime time.Duration) {
	o.Dirout = dom.Sim.DirOut
	o.Fnkey = dom.Sim.Key
	o.Ncells = len(dom.Cells)
	o.Nworkers = dom.Nworkers
	o.LinSol = dom.Sim.LinSol.Name
	o.CpuTime = cputime
	if dom.Dofs != nil {
		o.Neq, o.Nu, o.Np = dom.Dofs.Neq, dom.Dofs.Nu, dom.Dofs.Np
	}
	if dom.stage == Solved {
		_, o.Kl, o.Ku, o.Nnz = dom.LinSol.Stats()
	}
}

// Save saves summary to <dirout>/<fnkey>_sum.<enc>
func (o *Summary) Save(dirout, fnkey, enctype string, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode summary
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary\n%v", err)
	}

	// save file
	return save_file(out_sum_path(dirout, fnkey, enctype), &buf, verbose)
}

// ReadSummary reads summary back
func ReadSummary(dir, fnkey, enctype string) (o *Summary, err error) {

	// open file
	fil, err := os.Open(out_sum_path(dir, fnkey, enctype))
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decode summary
	o = new(Summary)
	err = GetDecoder(fil, enctype).Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode summary\n%v", err)
	}
	if _, e := uuid.Parse(o.RunId); e != nil {
		return nil, chk.Err("summary has an invalid run identifier %q:\n%v", o.RunId, e)
	}
	return
}
