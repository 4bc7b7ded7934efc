// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/upfem/upfem/inp"
	"github.com/upfem/upfem/linsol"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Stage defines the stages of the solution pipeline
type Stage int

// stages
const (
	Uninitialized      Stage = iota // nothing done yet
	MeshBound                       // equations, cells and constraints are set
	SystemAssembled                 // global matrix and right-hand side are assembled
	ConstraintsApplied              // essential boundary conditions are imposed
	Solved                          // solution is available
)

// String returns the name of stage
func (s Stage) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case MeshBound:
		return "mesh-bound"
	case SystemAssembled:
		return "system-assembled"
	case ConstraintsApplied:
		return "constraints-applied"
	case Solved:
		return "solved"
	}
	return io.Sf("stage(%d)", int(s))
}

// Domain holds the mesh, equations and elements of a mixed u-p problem, in addition to the
// global system and its solution. The pipeline must be run in the following order:
//
//	Bind → Assemble → ApplyConstraints → Solve
//
// Assemble may be called again after Solve.
type Domain struct {

	// init: auxiliary variables
	Sim      *inp.Simulation // input data
	Mat      *Material       // material
	LinSol   linsol.Solver   // linear solver
	Nworkers int             // number of goroutines computing element systems
	Verbose  bool            // show messages

	// bind: nodes, cells and constraints
	Msh      *inp.Mesh    // mesh data
	Dofs     *DofLayout   // equation numbers
	Cells    []*CellData  // [ncells] data of cells
	EssenBcs EssentialBcs // constraints

	// solution
	T   float64   // time used to compute prescribed values
	Kb  *Global   // global system
	Sol []float64 // [neq] solution {ux, uy, p} @ nodes

	// auxiliary
	stage Stage // current stage
}

// NewDomain returns a new domain
func NewDomain(sim *inp.Simulation) (o *Domain, err error) {
	if sim == nil {
		return nil, chk.Err("cannot allocate domain without simulation data")
	}
	o = &Domain{Sim: sim, Nworkers: sim.Data.Nworkers, Verbose: sim.Data.Verbose}
	o.Mat, err = GetMaterial(&sim.Mat)
	if err != nil {
		return nil, err
	}
	o.LinSol, err = linsol.New(sim.LinSol.Name)
	if err != nil {
		return nil, err
	}
	if o.Nworkers < 1 {
		o.Nworkers = 1
	}
	return
}

// Stage returns the current stage of the pipeline
func (o *Domain) Stage() Stage { return o.stage }

// Bind numbers the equations of mesh, collects cells data and sets the essential boundary conditions
func (o *Domain) Bind(msh *inp.Mesh) (err error) {

	// check
	if o.stage != Uninitialized {
		return &OrderingError{"Bind", o.stage}
	}
	if msh == nil {
		return chk.Err("cannot bind nil mesh")
	}
	if o.Sim.Msh == nil {
		o.Sim.Msh = msh
	}

	// equations
	dofs, err := NewDofLayout(msh, o.Sim.Elem.Lbb)
	if err != nil {
		return
	}

	// cells
	cells := make([]*CellData, len(msh.Cells))
	for i, cell := range msh.Cells {
		err = cell.SetFaceConds(o.Sim, msh)
		if err != nil {
			return
		}
		cells[i], err = NewCellData(msh, cell, dofs)
		if err != nil {
			return
		}
	}

	// face boundary conditions
	var ebcs EssentialBcs
	ebcs.Init()
	for _, fbc := range o.Sim.FaceBcs {
		tag, err := msh.ResolveTag(fbc.Tag, fbc.Name)
		if err != nil {
			return err
		}
		if _, ok := msh.FaceTag2cells[tag]; !ok {
			return chk.Err("cannot find faces with tag %d", tag)
		}
		err = setEssenBcs(&ebcs, dofs, msh.FaceTag2verts[tag], fbc.Keys, fbc.Vals, true)
		if err != nil {
			return chk.Err("face boundary condition with tag %d is invalid:\n%v", tag, err)
		}
	}

	// node boundary conditions
	for _, nbc := range o.Sim.NodeBcs {
		tag, err := msh.ResolveTag(nbc.Tag, nbc.Name)
		if err != nil {
			return err
		}
		vids := msh.GetVertsOnTag(tag)
		if len(vids) == 0 {
			return chk.Err("cannot find vertices with tag %d", tag)
		}
		err = setEssenBcs(&ebcs, dofs, vids, nbc.Keys, nbc.Vals, false)
		if err != nil {
			return chk.Err("node boundary condition with tag %d is invalid:\n%v", tag, err)
		}
	}

	// results
	o.Msh = msh
	o.Dofs = dofs
	o.Cells = cells
	o.EssenBcs = ebcs
	o.Kb = NewGlobal(dofs.Neq)
	o.Sol = make([]float64, dofs.Neq)
	o.stage = MeshBound
	if o.Verbose {
		io.Pf("number of cells     = %d\n", len(cells))
		io.Pf("number of equations = %d (nu=%d, np=%d)\n", dofs.Neq, dofs.Nu, dofs.Np)
		io.Pf("number of ebcs      = %d\n", len(ebcs.Bcs))
	}
	inp.Logf("bind: ncells=%d neq=%d nu=%d np=%d nebcs=%d", len(cells), dofs.Neq, dofs.Nu, dofs.Np, len(ebcs.Bcs))
	return
}

// Assemble computes all element systems and assembles the global system
//
//	Note: element systems are computed by Nworkers goroutines and added to the global system
//	      in the order of cells; the first error found aborts assembly
func (o *Domain) Assemble() (err error) {

	// check
	if o.stage != MeshBound && o.stage != Solved {
		return &OrderingError{"Assemble", o.stage}
	}

	// element systems
	cputime := time.Now()
	systems, err := o.computeElems()
	if err != nil {
		return
	}

	// global system
	o.Kb.Reset()
	for _, s := range systems {
		o.Kb.Scatter(s.K, s.F, s.Eqs)
	}
	o.stage = SystemAssembled
	if o.Verbose {
		io.Pf("assembly time       = %v\n", time.Since(cputime))
	}
	inp.Logf("assemble: nworkers=%d nnz=%d time=%v", o.Nworkers, o.Kb.K.NNZ(), time.Since(cputime))
	return
}

// ApplyConstraints imposes the essential boundary conditions at time T
func (o *Domain) ApplyConstraints() (err error) {
	if o.stage != SystemAssembled {
		return &OrderingError{"ApplyConstraints", o.stage}
	}
	err = o.EssenBcs.Apply(o.Kb, o.T)
	if err != nil {
		return
	}
	o.stage = ConstraintsApplied
	return
}

// Solve solves the global system
//
//	Note: a singular system returns *SingularSystemError
func (o *Domain) Solve() (err error) {

	// check
	if o.stage != ConstraintsApplied {
		return &OrderingError{"Solve", o.stage}
	}

	// factorise and solve
	cputime := time.Now()
	err = o.LinSol.Init(o.Kb.ToCSR())
	if err == nil {
		err = o.LinSol.Solve(o.Sol, o.Kb.F)
	}
	if err != nil {
		var serr *linsol.SingularError
		if errors.As(err, &serr) {
			err = &SingularSystemError{serr.Eq, err}
		}
		inp.Logf("solve: %v", err)
		return
	}
	o.stage = Solved

	// message
	n, kl, ku, nnz := o.LinSol.Stats()
	if o.Verbose {
		io.Pf("bandwidths          = %d, %d\n", kl, ku)
		io.Pf("solution time       = %v\n", time.Since(cputime))
	}
	inp.Logf("solve: n=%d kl=%d ku=%d nnz=%d time=%v", n, kl, ku, nnz, time.Since(cputime))
	return
}

// Run binds the mesh of simulation (if not bound yet), assembles, applies constraints and solves
func (o *Domain) Run() (err error) {
	if o.stage == Uninitialized {
		err = o.Bind(o.Sim.Msh)
		if err != nil {
			return
		}
	}
	err = o.Assemble()
	if err != nil {
		return
	}
	err = o.ApplyConstraints()
	if err != nil {
		return
	}
	return o.Solve()
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// elemSystem holds a copy of an element system
type elemSystem struct {
	K   [][]float64
	F   []float64
	Eqs []int
}

// computeElems computes the element systems of all cells using Nworkers goroutines
func (o *Domain) computeElems() (systems []*elemSystem, err error) {

	// jobs
	ncells := len(o.Cells)
	systems = make([]*elemSystem, ncells)
	errs := make([]error, ncells)
	jobs := make(chan int, ncells)
	for i := 0; i < ncells; i++ {
		jobs <- i
	}
	close(jobs)

	// workers; cells after the first failed one are skipped
	var failed atomic.Int64
	failed.Store(int64(ncells))
	fail := func(idx int) {
		for {
			cur := failed.Load()
			if int64(idx) >= cur || failed.CompareAndSwap(cur, int64(idx)) {
				return
			}
		}
	}
	var wg sync.WaitGroup
	nworkers := max(1, min(o.Nworkers, ncells))
	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func(goroutineId int) {
			defer wg.Done()
			elems := make(map[string]*ElemUP)
			for idx := range jobs {
				if int64(idx) > failed.Load() {
					continue
				}
				c := o.Cells[idx]
				e, ok := elems[c.Cell.Type]
				if !ok {
					e, errs[idx] = NewElemUP(c.Cell.Type, o.Dofs.Lbb, o.Mat, o.Sim.Elem.Nip, o.Sim.Elem.Nipf, goroutineId)
					if errs[idx] != nil {
						fail(idx)
						continue
					}
					elems[c.Cell.Type] = e
				}
				errs[idx] = e.Compute(c)
				if errs[idx] != nil {
					fail(idx)
					continue
				}
				systems[idx] = e.copySystem()
			}
		}(w + 1)
	}
	wg.Wait()

	// first error
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return
}

// copySystem returns a copy of the current element system
func (o *ElemUP) copySystem() *elemSystem {
	s := &elemSystem{
		K:   make([][]float64, len(o.K)),
		F:   append([]float64{}, o.F...),
		Eqs: append([]int{}, o.Eqs...),
	}
	for i := range o.K {
		s.K[i] = append([]float64{}, o.K[i]...)
	}
	return s
}

// setEssenBcs sets essential boundary conditions of vertices
//
//	faceKeys -- traction keys "tx" and "ty" are accepted and skipped (set by cells)
func setEssenBcs(ebcs *EssentialBcs, dofs *DofLayout, vids []int, keys []string, vals []float64, faceKeys bool) (err error) {
	if len(keys) != len(vals) {
		return chk.Err("number of keys (%d) must be equal to number of values (%d)", len(keys), len(vals))
	}
	var nodes []*Node
	for _, vid := range vids {
		if n := dofs.Vid2node[vid]; n != nil {
			nodes = append(nodes, n)
		}
	}
	for i, key := range keys {
		if faceKeys && (key == "tx" || key == "ty") {
			continue
		}
		err = ebcs.Set(key, nodes, &dbf.Cte{C: vals[i]})
		if err != nil {
			return
		}
	}
	return
}
