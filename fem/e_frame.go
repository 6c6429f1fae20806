// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Frame represents a 3D two-node frame element (Euler-Bernoulli, linear
// elastic) with 6 DOFs per node
//
//                        ,o--------o    ,t
//                      ,' |     ,' |  ,'
//         s          ,'       ,'   |,'
//         ^        ,'       ,'    ,|
//         |      ,'       ,'    ,  |
//         |    ,'       ,'  | ,    |
//         |  ,'       ,'   (1)     |     Props:       Nodes:
//         |,'       ,'   ,       ,'       E, G, A      0 and 1
//         o--------o   ,       ,'         I22 = Imax
//         |        | ,       ,'           I11 = Imin
//        (0)-------o' --------> r         Jtt
//
// The local triad (t, s, r) is built from the element axis and a global
// reference direction, so arbitrarily oriented members transform correctly.
type Frame struct {

	// basic data
	Id   int           // element id
	Kind inp.ElemKind  // structural role
	Mat  *inp.Material // material reference
	X    [][]float64   // matrix of nodal coordinates [ndim][nnode]
	Nu   int           // total number of unknowns (12)

	// parameters and properties
	E   float64 // Young's modulus
	G   float64 // shear modulus
	A   float64 // cross-sectional area
	I22 float64 // major moment of inertia
	I11 float64 // minor moment of inertia
	Jtt float64 // torsional constant
	S22 float64 // section modulus, plane of I22
	S11 float64 // section modulus, plane of I11
	Rho float64 // density
	L   float64 // (derived) element length

	// vectors and matrices
	Dircos []float64   // unit axis direction cosines [3]
	T      [][]float64 // global-to-local transformation matrix [12][12]
	Kl     [][]float64 // local K matrix
	K      [][]float64 // global K matrix

	// problem variables
	Umap []int // assembly map: 12 global equation numbers

	// scratchpad
	ue []float64 // global element displacements
	ul []float64 // local element displacements
	fl []float64 // local end forces
}

// ElemForces holds recovered internal forces of one element, in the local
// system. Axial force is positive in tension. Moments are reported at both
// ends; the governing (largest magnitude) value drives the stress checks.
type ElemForces struct {
	N   float64    // axial force
	V2  float64    // shear in the local s direction
	V3  float64    // shear in the local r direction
	Tq  float64    // torsion about the axis
	M22 [2]float64 // bending moments about axis 2 at both ends
	M11 [2]float64 // bending moments about axis 1 at both ends
}

// NewFrame allocates a frame element, computes its length, transformation
// and stiffness, and records its assembly map
func NewFrame(e *inp.Element, m *inp.Model, dm *DofMap) (o *Frame, err error) {

	// basic data
	o = &Frame{Id: e.Id, Kind: e.Kind, Nu: 2 * NdofPerNode}
	a, b := m.GetNode(e.Verts[0]), m.GetNode(e.Verts[1])
	if a == nil || b == nil {
		return nil, chk.Err("element %d has a dangling node reference", e.Id)
	}
	o.X = la.MatAlloc(3, 2)
	for i := 0; i < 3; i++ {
		o.X[i][0] = a.C[i]
		o.X[i][1] = b.C[i]
	}

	// parameters
	sec, mat := m.GetSec(e.Sec), m.GetMat(e.Mat)
	if sec == nil || mat == nil {
		return nil, chk.Err("element %d references unknown section %q or material %q", e.Id, e.Sec, e.Mat)
	}
	p := sec.Props()
	o.Mat = mat
	o.E, o.G, o.Rho = mat.E, mat.G(), mat.Rho
	o.A, o.I22, o.I11, o.Jtt = p.A, p.I22, p.I11, p.Jtt
	o.S22, o.S11 = p.S22, p.S11
	if o.E <= 0 || o.A <= 0 {
		return nil, chk.Err("element %d needs positive E and A (E=%g, A=%g)", e.Id, o.E, o.A)
	}

	// vectors and matrices
	o.T = la.MatAlloc(o.Nu, o.Nu)
	o.Kl = la.MatAlloc(o.Nu, o.Nu)
	o.K = la.MatAlloc(o.Nu, o.Nu)
	o.ue = make([]float64, o.Nu)
	o.ul = make([]float64, o.Nu)
	o.fl = make([]float64, o.Nu)
	if err = o.Recompute(); err != nil {
		return nil, err
	}

	// assembly map
	o.Umap = make([]int, o.Nu)
	for n := 0; n < 2; n++ {
		for i := 0; i < NdofPerNode; i++ {
			o.Umap[i+n*NdofPerNode] = dm.Eq(e.Verts[n], i)
		}
	}
	return
}

// Recompute builds the transformation matrix and the local and global
// stiffness matrices from the current coordinates and properties
func (o *Frame) Recompute() (err error) {

	// local triad: vt along the axis; vs and vr complete a right-handed
	// system built against a global reference direction. A member parallel
	// to global Z uses global X as reference instead.
	vt := make([]float64, 3)
	for i := 0; i < 3; i++ {
		vt[i] = o.X[i][1] - o.X[i][0]
	}
	l := math.Sqrt(utl.Dot3d(vt, vt))
	o.L = l
	if l < inp.MinLength {
		return chk.Err("element %d has near-zero length = %g", o.Id, l)
	}
	for i := 0; i < 3; i++ {
		vt[i] /= l
	}
	ref := []float64{0, 0, 1}
	if math.Abs(vt[2]) > 0.999999 {
		ref = []float64{1, 0, 0}
	}
	vs := make([]float64, 3)
	utl.Cross3d(vs, ref, vt) // vs := ref cross vt
	ls := math.Sqrt(utl.Dot3d(vs, vs))
	for i := 0; i < 3; i++ {
		vs[i] /= ls
	}
	vr := make([]float64, 3)
	utl.Cross3d(vr, vt, vs) // vr := vt cross vs
	o.Dircos = vt

	// global-to-local transformation matrix
	for k := 0; k < 4; k++ {
		o.T[3*k+0][3*k+0], o.T[3*k+0][3*k+1], o.T[3*k+0][3*k+2] = vt[0], vt[1], vt[2]
		o.T[3*k+1][3*k+0], o.T[3*k+1][3*k+1], o.T[3*k+1][3*k+2] = vs[0], vs[1], vs[2]
		o.T[3*k+2][3*k+0], o.T[3*k+2][3*k+1], o.T[3*k+2][3*k+2] = vr[0], vr[1], vr[2]
	}

	// constants
	EI2, EI1, GJ, EA := o.E*o.I22, o.E*o.I11, o.G*o.Jtt, o.E*o.A
	ll := l * l
	lll := l * ll

	// stiffness matrix in local system
	la.MatFill(o.Kl, 0)

	o.Kl[0][0] = EA / l
	o.Kl[0][6] = -EA / l

	o.Kl[1][1] = 12.0 * EI2 / lll
	o.Kl[1][5] = 6.0 * EI2 / ll
	o.Kl[1][7] = -12.0 * EI2 / lll
	o.Kl[1][11] = 6.0 * EI2 / ll

	o.Kl[2][2] = 12.0 * EI1 / lll
	o.Kl[2][4] = -6.0 * EI1 / ll
	o.Kl[2][8] = -12.0 * EI1 / lll
	o.Kl[2][10] = -6.0 * EI1 / ll

	o.Kl[3][3] = GJ / l
	o.Kl[3][9] = -GJ / l

	o.Kl[4][2] = -6.0 * EI1 / ll
	o.Kl[4][4] = 4.0 * EI1 / l
	o.Kl[4][8] = 6.0 * EI1 / ll
	o.Kl[4][10] = 2.0 * EI1 / l

	o.Kl[5][1] = 6.0 * EI2 / ll
	o.Kl[5][5] = 4.0 * EI2 / l
	o.Kl[5][7] = -6.0 * EI2 / ll
	o.Kl[5][11] = 2.0 * EI2 / l

	o.Kl[6][0] = -EA / l
	o.Kl[6][6] = EA / l

	o.Kl[7][1] = -12.0 * EI2 / lll
	o.Kl[7][5] = -6.0 * EI2 / ll
	o.Kl[7][7] = 12.0 * EI2 / lll
	o.Kl[7][11] = -6.0 * EI2 / ll

	o.Kl[8][2] = -12.0 * EI1 / lll
	o.Kl[8][4] = 6.0 * EI1 / ll
	o.Kl[8][8] = 12.0 * EI1 / lll
	o.Kl[8][10] = 6.0 * EI1 / ll

	o.Kl[9][3] = -GJ / l
	o.Kl[9][9] = GJ / l

	o.Kl[10][2] = -6.0 * EI1 / ll
	o.Kl[10][4] = 2.0 * EI1 / l
	o.Kl[10][8] = 6.0 * EI1 / ll
	o.Kl[10][10] = 4.0 * EI1 / l

	o.Kl[11][1] = 6.0 * EI2 / ll
	o.Kl[11][5] = 2.0 * EI2 / l
	o.Kl[11][7] = -6.0 * EI2 / ll
	o.Kl[11][11] = 4.0 * EI2 / l

	// stiffness matrix in global system
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := 1 * trans(T) * Kl * T
	return
}

// Mass returns the total element mass = ρ·A·L
func (o *Frame) Mass() float64 {
	return o.Rho * o.A * o.L
}

// LocalDisp gathers the element displacements from the global solution
// vector and rotates them to the local system: ul = T · ue
func (o *Frame) LocalDisp(u []float64) []float64 {
	for i, I := range o.Umap {
		o.ue[i] = u[I]
	}
	la.MatVecMul(o.ul, 1, o.T, o.ue) // ul := 1 * T * ue
	return o.ul
}

// Forces recovers the internal forces from the global solution vector via
// the local end-force vector fl = Kl · (T · ue)
func (o *Frame) Forces(u []float64) (f ElemForces) {
	o.LocalDisp(u)
	la.MatVecMul(o.fl, 1, o.Kl, o.ul) // fl := 1 * Kl * ul

	// end-force sign convention: entries at the second node carry the
	// member force; axial tension and torsion follow the +t axis
	f.N = o.fl[6]
	f.V2 = o.fl[1]
	f.V3 = o.fl[2]
	f.Tq = o.fl[9]
	f.M22 = [2]float64{o.fl[5], o.fl[11]}
	f.M11 = [2]float64{o.fl[4], o.fl[10]}
	return
}

// Stresses derives stresses from recovered forces: axial N/A and bending
// M/S per plane. The combined value sums axial and governing bending
// magnitudes (simplified interaction, not a biaxial surface).
func (o *Frame) Stresses(f ElemForces) (sigAxial, sigBending, sigCombined float64) {
	if o.A > 0 {
		sigAxial = f.N / o.A
	}
	m2 := math.Max(math.Abs(f.M22[0]), math.Abs(f.M22[1]))
	m1 := math.Max(math.Abs(f.M11[0]), math.Abs(f.M11[1]))
	var sb2, sb1 float64
	if o.S22 > 0 {
		sb2 = m2 / o.S22
	}
	if o.S11 > 0 {
		sb1 = m1 / o.S11
	}
	sigBending = math.Max(sb2, sb1)
	sigCombined = math.Abs(sigAxial) + sigBending
	return
}
