// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sec01. rectangle properties")

	s := Section{Name: "b2040", Kind: SecRectangle, Wid: 0.2, Hei: 0.4}
	p := s.Props()
	io.Pforan("0.2 x 0.4 rectangle: %+v\n", p)
	chk.Scalar(tst, "A  ", 1e-15, p.A, 0.08)
	chk.Scalar(tst, "I22", 1e-15, p.I22, 0.2*0.4*0.4*0.4/12.0)
	chk.Scalar(tst, "I11", 1e-15, p.I11, 0.4*0.2*0.2*0.2/12.0)
	chk.Scalar(tst, "S22", 1e-15, p.S22, p.I22/0.2)
	chk.Scalar(tst, "S11", 1e-15, p.S11, p.I11/0.1)
	chk.Scalar(tst, "Jtt", 1e-15, p.Jtt, 0.2*0.4*0.4*0.4/3.0)
}

func Test_sec02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sec02. circle properties")

	s := Section{Name: "d30", Kind: SecCircle, Dia: 0.3}
	p := s.Props()
	io.Pforan("d=0.3 circle: %+v\n", p)
	r := 0.15
	chk.Scalar(tst, "A  ", 1e-15, p.A, math.Pi*r*r)
	chk.Scalar(tst, "I22", 1e-15, p.I22, math.Pi*r*r*r*r/4.0)
	chk.Scalar(tst, "I11", 1e-15, p.I11, p.I22)
	chk.Scalar(tst, "S22", 1e-15, p.S22, p.I22/r)
	chk.Scalar(tst, "Jtt", 1e-15, p.Jtt, 2.0*p.I22) // polar moment
}

func Test_sec03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sec03. custom overrides and degenerate shapes")

	// custom: given values win, the rest falls back to rectangle formulas
	s := Section{Name: "w310", Kind: SecCustom, Wid: 0.2, Hei: 0.3, A: 0.0094, I22: 9.9e-5}
	p := s.Props()
	chk.Scalar(tst, "A override  ", 1e-17, p.A, 0.0094)
	chk.Scalar(tst, "I22 override", 1e-17, p.I22, 9.9e-5)
	chk.Scalar(tst, "I11 fallback", 1e-15, p.I11, 0.3*0.2*0.2*0.2/12.0)

	// overrides also apply to named shapes
	s = Section{Name: "r", Kind: SecRectangle, Wid: 0.2, Hei: 0.4, Jtt: 1e-3}
	p = s.Props()
	chk.Scalar(tst, "Jtt override", 1e-17, p.Jtt, 1e-3)

	// zero dimensions never panic; Props yields explicit zeros and
	// Validate rejects the section
	s = Section{Name: "empty", Kind: SecRectangle}
	p = s.Props()
	chk.Scalar(tst, "zero A", 1e-17, p.A, 0.0)
	chk.Scalar(tst, "zero S", 1e-17, p.S22, 0.0)
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. shear modulus and allowable stress")

	steel := Material{Name: "a36", Kind: MatSteel, E: 200e9, Nu: 0.3, Rho: 7850, Fy: 250e6}
	chk.Scalar(tst, "steel G", 1e-2, steel.G(), 200e9/2.6)
	chk.Scalar(tst, "steel allowable", 1e-8, steel.Allowable(), 150e6)

	conc := Material{Name: "c30", Kind: MatConcrete, E: 25e9, Nu: 0.2, Rho: 2400, Fc: 30e6}
	chk.Scalar(tst, "concrete allowable", 1e-8, conc.Allowable(), 0.85*30e6*0.6)

	timber := Material{Name: "glulam", Kind: MatTimber, E: 11e9, Nu: 0.3, Rho: 500, Fu: 24e6}
	chk.Scalar(tst, "timber allowable", 1e-8, timber.Allowable(), 0.6*24e6)

	comp := Material{Name: "cft", Kind: MatComposite, E: 180e9, Nu: 0.28, Rho: 5000, Fy: 345e6}
	chk.Scalar(tst, "composite allowable", 1e-8, comp.Allowable(), 0.6*345e6)
}
