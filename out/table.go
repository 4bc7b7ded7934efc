// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteTable writes the results of points with alias to <dirout>/<fnkey>.dat as a table with
// columns {vid, x, y, dist, keys...}
//
//	keys -- results keys; e.g. "ux", "uy", "p". Missing values are written as NaN
func WriteTable(dirout, fnkey, alias string, keys ...string) (err error) {

	// points
	pts, ok := Results[alias]
	if !ok {
		return chk.Err("cannot write table: alias %q is not defined", alias)
	}

	// header
	var buf bytes.Buffer
	io.Ff(&buf, "%6s%23s%23s%23s", "vid", "x", "y", "dist")
	for _, key := range keys {
		io.Ff(&buf, "%23s", key)
	}
	io.Ff(&buf, "\n")

	// rows
	for _, p := range pts {
		io.Ff(&buf, "%6d%23.15e%23.15e%23.15e", p.Vid, p.X[0], p.X[1], p.Dist)
		for _, key := range keys {
			v, ok := p.Vals[key]
			if !ok {
				io.Ff(&buf, "%23s", "NaN")
				continue
			}
			io.Ff(&buf, "%23.15e", v)
		}
		io.Ff(&buf, "\n")
	}

	// save file
	return write_file(dirout, fnkey+".dat", &buf)
}

// write_file writes buffers to <dirout>/<fn> with io.WriteFileD (or io.WriteFileVD if the
// domain is verbose), turning their panic into an error
func write_file(dirout, fn string, buffers ...*bytes.Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot write file <%s>: %v", filepath.Join(dirout, fn), r)
		}
	}()
	if Dom != nil && Dom.Verbose {
		io.WriteFileVD(dirout, fn, buffers...)
		return
	}
	io.WriteFileD(dirout, fn, buffers...)
	return
}
