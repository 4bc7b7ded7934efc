// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds integration point data
type Ipoint struct {
	R float64 // natural coordinate
	S float64 // natural coordinate
	T float64 // natural coordinate
	W float64 // weight
}

// Coords returns the natural coordinates as a slice
func (o Ipoint) Coords() []float64 { return []float64{o.R, o.S, o.T} }

// IpsLin returns Gauss-Legendre integration points on the reference line [-1, 1]
//
//	n -- number of points; exact for polynomials of degree 2n-1
func IpsLin(n int) (ips []*Ipoint, err error) {
	switch n {
	case 1:
		return []*Ipoint{{0, 0, 0, 2}}, nil
	case 2:
		a := 1.0 / math.Sqrt(3.0)
		return []*Ipoint{{-a, 0, 0, 1}, {a, 0, 0, 1}}, nil
	case 3:
		a := math.Sqrt(3.0 / 5.0)
		return []*Ipoint{{-a, 0, 0, 5.0 / 9.0}, {0, 0, 0, 8.0 / 9.0}, {a, 0, 0, 5.0 / 9.0}}, nil
	case 4:
		a := math.Sqrt(3.0/7.0 - 2.0/7.0*math.Sqrt(6.0/5.0))
		b := math.Sqrt(3.0/7.0 + 2.0/7.0*math.Sqrt(6.0/5.0))
		wa := (18.0 + math.Sqrt(30.0)) / 36.0
		wb := (18.0 - math.Sqrt(30.0)) / 36.0
		return []*Ipoint{{-b, 0, 0, wb}, {-a, 0, 0, wa}, {a, 0, 0, wa}, {b, 0, 0, wb}}, nil
	}
	return nil, chk.Err("number of integration points for lines must be in [1, 4]; %d is invalid", n)
}

// IpsTri returns integration points on the reference triangle {(0,0), (1,0), (0,1)} that
// integrate exactly polynomials of the given degree. The weights sum to 1/2.
func IpsTri(degree int) (ips []*Ipoint, err error) {
	switch {
	case degree < 0:
		return nil, chk.Err("degree of exactness must be non-negative; %d is invalid", degree)
	case degree <= 1:
		return ipsTri1(), nil
	case degree == 2:
		return ipsTri3(), nil
	case degree <= 4:
		return ipsTri6(), nil
	case degree == 5:
		return ipsTri7(), nil
	}
	return nil, chk.Err("degree of exactness for triangles must be at most 5; %d is invalid", degree)
}

// GetIntegrationPoints returns the integration points of cells and faces
//
//	nip  -- number of integration points in cell; 0 means default
//	nipf -- number of integration points on face; 0 means default
func GetIntegrationPoints(nip, nipf int, cellType string) (ipsElem, ipsFace []*Ipoint, err error) {

	// default values
	switch cellType {
	case "tri3":
		if nip == 0 {
			nip = 3
		}
		if nipf == 0 {
			nipf = 2
		}
	case "tri6":
		if nip == 0 {
			nip = 6
		}
		if nipf == 0 {
			nipf = 3
		}
	default:
		return nil, nil, chk.Err("cannot find integration points for cell type %q", cellType)
	}

	// cell
	switch nip {
	case 1:
		ipsElem = ipsTri1()
	case 3:
		ipsElem = ipsTri3()
	case 6:
		ipsElem = ipsTri6()
	case 7:
		ipsElem = ipsTri7()
	default:
		return nil, nil, chk.Err("number of integration points %d is not available for %q; use 1, 3, 6 or 7", nip, cellType)
	}

	// face
	ipsFace, err = IpsLin(nipf)
	return
}

// ipsTri1 is exact for degree 1
func ipsTri1() []*Ipoint {
	return []*Ipoint{{1.0 / 3.0, 1.0 / 3.0, 0, 0.5}}
}

// ipsTri3 is exact for degree 2
func ipsTri3() []*Ipoint {
	return []*Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	}
}

// ipsTri6 is exact for degree 4 (Dunavant)
func ipsTri6() []*Ipoint {
	a, wa := 0.445948490915964886318329253883, 0.223381589678011465944640732250/2.0
	b, wb := 0.091576213509770743459571463402, 0.109951743655321867388692601083/2.0
	return []*Ipoint{
		{a, a, 0, wa},
		{1.0 - 2.0*a, a, 0, wa},
		{a, 1.0 - 2.0*a, 0, wa},
		{b, b, 0, wb},
		{1.0 - 2.0*b, b, 0, wb},
		{b, 1.0 - 2.0*b, 0, wb},
	}
}

// ipsTri7 is exact for degree 5 (Radon)
func ipsTri7() []*Ipoint {
	sq := math.Sqrt(15.0)
	a, wa := (6.0-sq)/21.0, (155.0-sq)/2400.0
	b, wb := (6.0+sq)/21.0, (155.0+sq)/2400.0
	return []*Ipoint{
		{1.0 / 3.0, 1.0 / 3.0, 0, 9.0 / 80.0},
		{a, a, 0, wa},
		{1.0 - 2.0*a, a, 0, wa},
		{a, 1.0 - 2.0*a, 0, wa},
		{b, b, 0, wb},
		{1.0 - 2.0*b, b, 0, wb},
		{b, 1.0 - 2.0*b, 0, wb},
	}
}
