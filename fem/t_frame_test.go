// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// xBeamModel builds one horizontal steel member along global X
func xBeamModel(length float64) *inp.Model {
	m := &inp.Model{
		Nodes: []*inp.Node{
			{Id: 0, C: []float64{0, 0, 0}, Rest: []bool{true, true, true, true, true, true}},
			{Id: 1, C: []float64{length, 0, 0}},
		},
		Elems: []*inp.Element{
			{Id: 0, Kind: inp.KindBeam, Verts: [2]int{0, 1}, Sec: "r2040", Mat: "steel"},
		},
		Secs: []*inp.Section{
			{Name: "r2040", Kind: inp.SecRectangle, Wid: 0.2, Hei: 0.4},
		},
		Mats: []*inp.Material{
			{Name: "steel", Kind: inp.MatSteel, E: 200e9, Nu: 0.3, Rho: 7850, Fy: 250e6},
		},
	}
	m.Init()
	return m
}

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01. stiffness entries of an axis-aligned member")

	m := xBeamModel(4.0)
	dm := NewDofMap(m)
	e, err := NewFrame(m.Elems[0], m, dm)
	if err != nil {
		tst.Errorf("NewFrame failed:\n%v", err)
		return
	}

	chk.Scalar(tst, "L", 1e-15, e.L, 4.0)
	chk.Vector(tst, "dircos", 1e-15, e.Dircos, []float64{1, 0, 0})

	// a member along X keeps local t = global X, so K equals Kl
	chk.Matrix(tst, "K == Kl", 1e-4, e.K, e.Kl)

	l := e.L
	chk.Scalar(tst, "Kl[0][0] = EA/L   ", 1e-10, e.Kl[0][0], e.E*e.A/l)
	chk.Scalar(tst, "Kl[0][6] = -EA/L  ", 1e-10, e.Kl[0][6], -e.E*e.A/l)
	chk.Scalar(tst, "Kl[3][3] = GJ/L   ", 1e-10, e.Kl[3][3], e.G*e.Jtt/l)
	chk.Scalar(tst, "Kl[1][1] = 12EI/L3", 1e-10, e.Kl[1][1], 12.0*e.E*e.I22/(l*l*l))
	chk.Scalar(tst, "Kl[5][5] = 4EI/L  ", 1e-10, e.Kl[5][5], 4.0*e.E*e.I22/l)
	chk.Scalar(tst, "Kl[5][11] = 2EI/L ", 1e-10, e.Kl[5][11], 2.0*e.E*e.I22/l)

	// symmetry
	for i := 0; i < 12; i++ {
		for j := i + 1; j < 12; j++ {
			chk.Scalar(tst, io.Sf("K[%d][%d] sym", i, j), 1e-4, e.K[i][j], e.K[j][i])
		}
	}
}

func Test_frame02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame02. vertical member and rigid body motion")

	m := xBeamModel(3.0)
	m.Nodes[1].C = []float64{0, 0, 3} // make the member vertical
	m.Init()
	dm := NewDofMap(m)
	e, err := NewFrame(m.Elems[0], m, dm)
	if err != nil {
		tst.Errorf("NewFrame failed:\n%v", err)
		return
	}
	chk.Vector(tst, "dircos", 1e-15, e.Dircos, []float64{0, 0, 1})

	// axial stiffness moved to the global Z rows
	l := e.L
	chk.Scalar(tst, "K[2][2] = EA/L ", 1e-4, e.K[2][2], e.E*e.A/l)
	chk.Scalar(tst, "K[2][8] = -EA/L", 1e-4, e.K[2][8], -e.E*e.A/l)
	chk.Scalar(tst, "K[8][8] = EA/L ", 1e-4, e.K[8][8], e.E*e.A/l)

	// a rigid body translation produces no end forces
	u := make([]float64, dm.Ny)
	for n := 0; n < 2; n++ {
		u[dm.Eq(n, UX)] = 0.01
		u[dm.Eq(n, UY)] = -0.02
		u[dm.Eq(n, UZ)] = 0.03
	}
	f := e.Forces(u)
	io.Pforan("rigid body forces: N=%g V2=%g V3=%g Tq=%g\n", f.N, f.V2, f.V3, f.Tq)
	chk.Scalar(tst, "N ", 1e-2, f.N, 0)
	chk.Scalar(tst, "V2", 1e-2, f.V2, 0)
	chk.Scalar(tst, "V3", 1e-2, f.V3, 0)
	chk.Scalar(tst, "Tq", 1e-2, f.Tq, 0)
}

func Test_frame03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame03. skew member preserves strain energy")

	m := xBeamModel(1.0)
	m.Nodes[1].C = []float64{3, 4, 12} // length 13
	m.Init()
	dm := NewDofMap(m)
	e, err := NewFrame(m.Elems[0], m, dm)
	if err != nil {
		tst.Errorf("NewFrame failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "L", 1e-13, e.L, 13.0)
	unorm := math.Sqrt(utlDot(e.Dircos, e.Dircos))
	chk.Scalar(tst, "|dircos| = 1", 1e-15, unorm, 1.0)

	// the transformation is orthogonal: strain energy of a pure axial
	// stretch is invariant, 0.5·(EA/L)·d², regardless of orientation
	d := 0.002
	u := make([]float64, dm.Ny)
	for i := 0; i < 3; i++ {
		u[dm.Eq(1, i)] = d * e.Dircos[i]
	}
	f := e.Forces(u)
	chk.Scalar(tst, "N = EA/L*d", 1e-3, f.N, e.E*e.A/e.L*d)
	chk.Scalar(tst, "V2", 1e-3, f.V2, 0)
	chk.Scalar(tst, "V3", 1e-3, f.V3, 0)

	// element mass
	chk.Scalar(tst, "mass", 1e-8, e.Mass(), e.Rho*e.A*13.0)
}

func utlDot(u, v []float64) (res float64) {
	for i := range u {
		res += u[i] * v[i]
	}
	return
}
