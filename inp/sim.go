// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc"`     // description of simulation
	DirOut   string `json:"dirout"`   // directory for output; e.g. /tmp/upfem
	Encoder  string `json:"encoder"`  // encoder name; e.g. "gob" "json"
	NoLBB    bool   `json:"nolbb"`    // do not satisfy Ladyženskaja-Babuška-Brezzi condition; i.e. use [tri6,tri6] instead of [tri6,tri3]
	Nworkers int    `json:"nworkers"` // number of goroutines computing element matrices
	Verbose  bool   `json:"verbose"`  // show messages
}

// MatData holds material data. Either {E, nu} or {G, K} must be given
type MatData struct {
	E  float64 `json:"E"`  // Young's modulus
	Nu float64 `json:"nu"` // Poisson's coefficient
	G  float64 `json:"G"`  // shear modulus
	K  float64 `json:"K"`  // volumetric penalty modulus; "K":0 with "G":0 means compute from E and nu
}

// MeshData holds the definition of a mesh: either from file or generated
type MeshData struct {
	File    string      `json:"file"`    // mesh file path; if empty, a quadrilateral is generated
	AbsPath bool        `json:"abspath"` // mesh filename is given in absolute path
	Type    string      `json:"type"`    // generated cells: "tri3" or "tri6"
	Nx      int         `json:"nx"`      // generated divisions along x
	Ny      int         `json:"ny"`      // generated divisions along y
	Corners [][]float64 `json:"corners"` // [4][2] corners of generated quadrilateral
}

// ElemData holds element data
type ElemData struct {

	// input data
	Type string `json:"type"` // type of element. only "up" is available
	Nip  int    `json:"nip"`  // number of integration points; 0 => use default
	Nipf int    `json:"nipf"` // number of integration points on face; 0 => use default

	// derived
	Lbb bool // LBB element; i.e. pressure uses the basic geometry, unless NoLBB is true
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name string `json:"name"` // "band" or "dense"
}

// FaceBc holds face boundary condition
type FaceBc struct {
	Tag  int       `json:"tag"`  // tag of face
	Name string    `json:"name"` // name of face set (in mesh TagNames); used instead of Tag if not empty
	Keys []string  `json:"keys"` // key indicating type of bcs. ex: ux, uy, p (essential) or tx, ty (traction)
	Vals []float64 `json:"vals"` // values corresponding to keys
}

// NodeBc holds node boundary condition
type NodeBc struct {
	Tag  int       `json:"tag"`  // tag of node
	Name string    `json:"name"` // name of vertex set (in mesh TagNames); used instead of Tag if not empty
	Keys []string  `json:"keys"` // key indicating type of bcs. ex: ux, uy, p
	Vals []float64 `json:"vals"` // values corresponding to keys
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data    Data       `json:"data"`     // stores global simulation data
	Mat     MatData    `json:"material"` // material data
	Mesh    MeshData   `json:"mesh"`     // mesh data
	Elem    ElemData   `json:"element"`  // element data
	LinSol  LinSolData `json:"linsol"`   // linear solver data
	FaceBcs []*FaceBc  `json:"facebcs"`  // face boundary conditions
	NodeBcs []*NodeBc  `json:"nodebcs"`  // node boundary conditions

	// derived
	DirOut  string // directory to save results
	Key     string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType string // encoder type
	Msh     *Mesh  `json:"-"` // the mesh
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasefiles bool) (o *Simulation, err error) {

	// read file
	b, err := readFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values and decode
	o = new(Simulation)
	o.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// derived data
	err = o.PostProcess(dir)
	if err != nil {
		return nil, chk.Err("ReadSim: %v", err)
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}
	return
}

// SetDefault sets defaults values
func (o *Simulation) SetDefault() {
	o.Data.Nworkers = 1
	o.Mat.E = 1
	o.Mat.Nu = 0.3
	o.Mesh.Type = "tri3"
	o.Mesh.Nx = 50
	o.Mesh.Ny = 50
	o.Elem.Type = "up"
	o.LinSol.Name = "band"
}

// PostProcess validates the input data, sets derived values and loads or generates the mesh
//
//	dir -- directory of .sim file; mesh file paths are relative to it unless AbsPath
func (o *Simulation) PostProcess(dir string) (err error) {

	// key
	if o.Key == "" {
		o.Key = "upfem"
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/upfem/" + o.Key
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// workers
	if o.Data.Nworkers < 1 {
		o.Data.Nworkers = 1
	}

	// element
	if o.Elem.Type != "up" {
		return chk.Err("element type %q is not available; use \"up\"", o.Elem.Type)
	}
	o.Elem.Lbb = !o.Data.NoLBB

	// material
	if o.Mat.G == 0 && o.Mat.K == 0 {
		if o.Mat.E <= 0 {
			return chk.Err("Young's modulus must be positive; E=%g is invalid", o.Mat.E)
		}
		if o.Mat.Nu <= 0 || o.Mat.Nu > 0.5 || math.IsNaN(o.Mat.Nu) {
			return chk.Err("Poisson's coefficient must be in (0, 0.5]; nu=%g is invalid", o.Mat.Nu)
		}
	}

	// mesh
	if o.Mesh.File != "" {
		ddir := dir
		if o.Mesh.AbsPath {
			ddir = ""
		}
		o.Msh, err = ReadMsh(ddir, o.Mesh.File)
		return
	}
	if len(o.Mesh.Corners) == 0 {
		o.Mesh.Corners = CooksMembraneCorners()
	}
	o.Msh, err = GenQuadrilateral(o.Mesh.Corners, o.Mesh.Nx, o.Mesh.Ny, o.Mesh.Type)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// ResolveTag returns the tag of a face or node boundary condition
func (o *Simulation) ResolveTag(tag int, name string) (int, error) {
	if o.Msh == nil {
		return 0, chk.Err("mesh is not available")
	}
	return o.Msh.ResolveTag(tag, name)
}

// NewCooksMembrane returns a simulation of Cook's membrane: clamped on the left edge and loaded
// by a vertical traction on the right edge
//
//	ctype -- "tri3" or "tri6"
//	nolbb -- use equal-order interpolation for pressure
func NewCooksMembrane(nx, ny int, ctype string, E, nu, traction float64, nolbb bool) (o *Simulation, err error) {
	o = new(Simulation)
	o.SetDefault()
	o.Key = io.Sf("cook-%s-%dx%d", ctype, nx, ny)
	o.Data.Desc = "Cook's membrane"
	o.Data.NoLBB = nolbb
	o.Mat.E = E
	o.Mat.Nu = nu
	o.Mesh.Type = ctype
	o.Mesh.Nx = nx
	o.Mesh.Ny = ny
	o.FaceBcs = []*FaceBc{
		{Name: "left", Keys: []string{"ux", "uy"}, Vals: []float64{0, 0}},
		{Name: "right", Keys: []string{"tx", "ty"}, Vals: []float64{0, traction}},
	}
	err = o.PostProcess("")
	return
}
