// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"testing"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/ana"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// portalModel builds a one-bay one-story concrete portal frame:
//
//	1 o--------o 2     beam at z = 3
//	  |        |
//	  |        |       columns 0-1 and 3-2
//	0 o        o 3     fixed bases
func portalModel() *inp.Model {
	m := &inp.Model{
		Desc: "portal frame",
		Nodes: []*inp.Node{
			{Id: 0, C: []float64{0, 0, 0}, Rest: []bool{true, true, true, true, true, true}},
			{Id: 1, C: []float64{0, 0, 3}},
			{Id: 2, C: []float64{4, 0, 3}},
			{Id: 3, C: []float64{4, 0, 0}, Rest: []bool{true, true, true, true, true, true}},
		},
		Elems: []*inp.Element{
			{Id: 0, Kind: inp.KindColumn, Verts: [2]int{0, 1}, Sec: "c3040", Mat: "c30"},
			{Id: 1, Kind: inp.KindBeam, Verts: [2]int{1, 2}, Sec: "c3040", Mat: "c30"},
			{Id: 2, Kind: inp.KindColumn, Verts: [2]int{3, 2}, Sec: "c3040", Mat: "c30"},
		},
		Secs: []*inp.Section{
			{Name: "c3040", Kind: inp.SecRectangle, Wid: 0.3, Hei: 0.4},
		},
		Mats: []*inp.Material{
			{Name: "c30", Kind: inp.MatConcrete, E: 25e9, Nu: 0.2, Rho: 2400, Fc: 30e6},
		},
		Cases: []*inp.LoadCase{
			{Name: "wind", Loads: []*inp.Load{
				{Node: 1, Elem: -1, Dir: inp.FX, Value: 20e3, Dist: inp.DistPoint},
			}},
			{Name: "live", Loads: []*inp.Load{
				{Elem: 1, Node: -1, Dir: inp.FZ, Value: -5e3, Dist: inp.DistUniform},
			}},
		},
		Combos: []*inp.LoadCombo{
			{Name: "uls", Factors: map[string]float64{"wind": 1.0, "live": 1.6}},
		},
	}
	m.Init()
	return m
}

func Test_static01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static01. axial bar: u = PL/EA")

	// bar along X, fixed at node 0, pulled at node 1
	E, L, P := 2e11, 5.0, 1e5
	m := xBeamModel(L)
	m.Cases = []*inp.LoadCase{
		{Name: "pull", Loads: []*inp.Load{
			{Node: 1, Elem: -1, Dir: inp.FX, Value: P, Dist: inp.DistPoint},
		}},
	}
	m.Init()

	res, err := PerformAnalysis(context.Background(), m, Options{Kind: Static})
	if err != nil {
		tst.Errorf("PerformAnalysis failed:\n%v", err)
		return
	}
	if !res.Success {
		tst.Errorf("analysis must succeed: %s", res.Diagnostic)
		return
	}

	rod := ana.AxialRod{E: E, A: 0.2 * 0.4, L: L, P: P}
	io.Pforan("tip displacement = %v (ref = %v)\n", res.Nodes[1].U[UX], rod.Elongation())
	chk.Scalar(tst, "tip ux", 1e-12, res.Nodes[1].U[UX], rod.Elongation())
	chk.Vector(tst, "base fixed", 1e-17, res.Nodes[0].U, []float64{0, 0, 0, 0, 0, 0})

	// recovered axial force and stress
	f := res.Elems[0].Forces
	chk.Scalar(tst, "N", 1e-6, f.N, P)
	chk.Scalar(tst, "sig axial", 1e-5, res.Elems[0].SigAxial, rod.Stress())
	if !res.Elems[0].Safe {
		tst.Errorf("a lightly loaded bar must come out safe (util = %g)", res.Elems[0].Util)
	}
}

func Test_static02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static02. zero load gives zero displacements")

	m := portalModel()
	m.Cases = nil
	m.Combos = nil
	m.Init()

	res, err := PerformAnalysis(context.Background(), m, Options{Kind: Static})
	if err != nil {
		tst.Errorf("PerformAnalysis failed:\n%v", err)
		return
	}
	for _, nr := range res.Nodes {
		chk.Vector(tst, io.Sf("node %d", nr.NodeId), 1e-17, nr.U, []float64{0, 0, 0, 0, 0, 0})
	}
	chk.Scalar(tst, "max util", 1e-17, res.Summary.MaxUtil, 0)
}

func Test_static03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static03. solver strategies agree")

	m := portalModel()

	dense, err := PerformAnalysis(context.Background(), m, Options{Kind: Static, Combo: "uls", Solver: Dense})
	if err != nil {
		tst.Errorf("dense run failed:\n%v", err)
		return
	}
	cg, err := PerformAnalysis(context.Background(), m, Options{Kind: Static, Combo: "uls", Solver: CG, MaxIt: 500})
	if err != nil {
		tst.Errorf("CG run failed:\n%v", err)
		return
	}
	lu, err := PerformAnalysis(context.Background(), m, Options{Kind: Static, Combo: "uls", Solver: LU})
	if err != nil {
		tst.Errorf("LU run failed:\n%v", err)
		return
	}

	for i, nr := range dense.Nodes {
		io.Pforan("node %d: ux = %v\n", nr.NodeId, nr.U[UX])
		chk.Vector(tst, io.Sf("node %d (CG)", nr.NodeId), 1e-7, cg.Nodes[i].U, nr.U)
		chk.Vector(tst, io.Sf("node %d (LU)", nr.NodeId), 1e-10, lu.Nodes[i].U, nr.U)
	}

	// two identical runs give bit-identical displacements
	again, err := PerformAnalysis(context.Background(), m, Options{Kind: Static, Combo: "uls", Solver: Dense})
	if err != nil {
		tst.Errorf("repeat run failed:\n%v", err)
		return
	}
	for i, nr := range dense.Nodes {
		chk.Vector(tst, io.Sf("node %d (repeat)", nr.NodeId), 0, again.Nodes[i].U, nr.U)
	}
	if again.RunId == dense.RunId {
		tst.Errorf("each run must carry a fresh id")
	}
}

func Test_static04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static04. load lumping and combinations")

	m := portalModel()
	d, err := NewDomain(m)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}

	// "" means every case with factor 1
	if err = d.BuildFb(""); err != nil {
		tst.Errorf("BuildFb failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "wind at node 1", 1e-10, d.Fb[d.Dofs.Eq(1, UX)], 20e3)

	// uniform -5e3 N/m over the 4 m beam lumps -10e3 to each end
	chk.Scalar(tst, "live at node 1", 1e-10, d.Fb[d.Dofs.Eq(1, UZ)], -10e3)
	chk.Scalar(tst, "live at node 2", 1e-10, d.Fb[d.Dofs.Eq(2, UZ)], -10e3)

	// the combination scales per-case
	if err = d.BuildFb("uls"); err != nil {
		tst.Errorf("BuildFb failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "uls wind", 1e-10, d.Fb[d.Dofs.Eq(1, UX)], 20e3)
	chk.Scalar(tst, "uls live", 1e-10, d.Fb[d.Dofs.Eq(1, UZ)], -16e3)

	// restrained entries stay zero
	chk.Scalar(tst, "base row", 1e-17, d.Fb[d.Dofs.Eq(0, UX)], 0)

	// unknown combination is rejected
	if err = d.BuildFb("nosuch"); err == nil {
		tst.Errorf("BuildFb must reject an unknown combination")
	}

	// an element load whose end node is not in the DOF map must error
	m.Elems[1].Verts[1] = 99
	if err = d.BuildFb(""); err == nil {
		tst.Errorf("BuildFb must reject an element load on a missing node")
	}
	io.Pforan("dangling element load rejected\n")
}

func Test_static05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static05. cancellation and validation failures")

	// a cancelled context aborts the run without an error
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := PerformAnalysis(ctx, portalModel(), Options{Kind: Static})
	if err != nil {
		tst.Errorf("aborted runs must not return an error, got:\n%v", err)
		return
	}
	if !res.Aborted {
		tst.Errorf("cancelled run must be flagged as aborted")
	}
	if res.Success {
		tst.Errorf("aborted run must not claim success")
	}

	// a broken model fails with a validation error carrying all findings
	m := portalModel()
	m.Elems[0].Sec = "nosuch"
	m.Nodes[0].Rest = nil
	m.Nodes[3].Rest = nil
	m.Init()
	res, err = PerformAnalysis(context.Background(), m, Options{Kind: Static})
	if err == nil {
		tst.Errorf("invalid model must fail")
		return
	}
	if KindOf(err) != ErrValidation {
		tst.Errorf("wrong error kind: %v", KindOf(err))
	}
	if !inp.HasErrors(res.Issues) {
		tst.Errorf("findings must be attached to the result")
	}
	io.Pforan("issues:\n")
	for _, is := range res.Issues {
		io.Pforan("  %v\n", is)
	}
}
