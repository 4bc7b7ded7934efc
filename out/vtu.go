// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/upfem/upfem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteVtu writes the mesh, displacements and pressure to <dirout>/<fnkey>.vtu (ParaView)
func WriteVtu(dirout, fnkey string) (err error) {

	// buffers
	var hdr, geo, dat, foo bytes.Buffer
	nv := len(Dom.Msh.Verts)
	nc := len(Dom.Msh.Cells)
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")

	// topology
	err = vtu_topology(&geo)
	if err != nil {
		return
	}

	// points and cells data
	vtu_pdata(&dat)
	vtu_cdata(&dat)

	// write vtu file
	return write_file(dirout, fnkey+".vtu", &hdr, &geo, &dat, &foo)
}

// topology ////////////////////////////////////////////////////////////////////////////////////////

func vtu_topology(buf *bytes.Buffer) (err error) {

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range Dom.Msh.Verts {
		io.Ff(buf, "%23.15e %23.15e %23.15e ", v.C[0], v.C[1], 0.0)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range Dom.Msh.Cells {
		for _, vid := range c.Verts {
			io.Ff(buf, "%d ", vid)
		}
	}

	// offsets
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, c := range Dom.Msh.Cells {
		offset += len(c.Verts)
		io.Ff(buf, "%d ", offset)
	}

	// types
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range Dom.Msh.Cells {
		s := shp.Get(c.Type, 0)
		if s == nil {
			return chk.Err("cannot handle cell type %q", c.Type)
		}
		io.Ff(buf, "%d ", s.VtkCode)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
	return
}

// points data /////////////////////////////////////////////////////////////////////////////////////

func vtu_pdata(buf *bytes.Buffer) {

	// open
	io.Ff(buf, "<PointData Scalars=\"TheScalars\">\n")

	// ids
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"nid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range Dom.Msh.Verts {
		io.Ff(buf, "%d ", v.Id)
	}

	// displacements
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"u\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range Dom.Msh.Verts {
		var ux, uy float64
		if nod := Dom.Dofs.Vid2node[v.Id]; nod != nil {
			ux, uy = Dom.Sol[nod.GetEq("ux")], Dom.Sol[nod.GetEq("uy")]
		}
		io.Ff(buf, "%23.15e %23.15e %23.15e ", ux, uy, 0.0)
	}

	// pressure
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"p\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range Dom.Msh.Verts {
		io.Ff(buf, "%23.15e ", ExVals[v.Id]["p"])
	}

	// close
	io.Ff(buf, "\n</DataArray>\n</PointData>\n")
}

func vtu_cdata(buf *bytes.Buffer) {

	// open
	io.Ff(buf, "<CellData Scalars=\"TheScalars\">\n")

	// ids
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range Dom.Msh.Cells {
		io.Ff(buf, "%d ", c.Id)
	}

	// cells positive tags
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"tag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range Dom.Msh.Cells {
		io.Ff(buf, "%d ", iabs(c.Tag))
	}

	// close
	io.Ff(buf, "\n</DataArray>\n</CellData>\n")
}

func iabs(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
