// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SaveSol saves the solution (T and Sol) to <dirout>/<key>_sol.<enc>
func (o *Domain) SaveSol(verbose bool) (err error) {

	// check
	if o.stage != Solved {
		return &OrderingError{"SaveSol", o.stage}
	}

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, o.Sim.EncType)

	// encode solution
	err = enc.Encode(o.T)
	if err != nil {
		return chk.Err("cannot encode Domain.T\n%v", err)
	}
	err = enc.Encode(o.Sol)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol\n%v", err)
	}

	// save file
	fn := out_sol_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType)
	return save_file(fn, &buf, verbose)
}

// ReadSol reads the solution saved by SaveSol
//
//	Note: the mesh must be bound already; the domain is set as solved
func (o *Domain) ReadSol(dir, fnkey, enctype string) (err error) {

	// check
	if o.stage == Uninitialized {
		return &OrderingError{"ReadSol", o.stage}
	}

	// open file
	fn := out_sol_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decode solution
	dec := GetDecoder(fil, enctype)
	var sol []float64
	err = dec.Decode(&o.T)
	if err != nil {
		return chk.Err("cannot decode Domain.T\n%v", err)
	}
	err = dec.Decode(&sol)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol\n%v", err)
	}
	if len(sol) != o.Dofs.Neq {
		return chk.Err("solution in <%s> has %d equations; %d are required by mesh", fn, len(sol), o.Dofs.Neq)
	}
	copy(o.Sol, sol)
	o.stage = Solved
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sol_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_sol.%s", fnkey, enctype))
}

func out_sum_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	err = os.MkdirAll(path.Dir(filename), 0777)
	if err != nil {
		return
	}
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
