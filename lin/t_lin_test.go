// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lin

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_dense01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dense01. Gaussian elimination with pivoting")

	A := [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	}
	b := []float64{8, -11, -3}
	x, err := DenseSolve(A, b)
	if err != nil {
		tst.Errorf("DenseSolve failed:\n%v", err)
		return
	}
	io.Pforan("x = %v\n", x)
	chk.Vector(tst, "x", 1e-13, x, []float64{2, 3, -1})

	// pivoting: zero on the diagonal must not break the elimination
	A = [][]float64{
		{0, 1},
		{1, 0},
	}
	b = []float64{3, 7}
	x, err = DenseSolve(A, b)
	if err != nil {
		tst.Errorf("DenseSolve failed:\n%v", err)
		return
	}
	chk.Vector(tst, "x (permuted)", 1e-15, x, []float64{7, 3})

	// the input matrix must not be mutated
	chk.Scalar(tst, "A[0][1] unchanged", 1e-17, A[0][1], 1.0)
}

func Test_dense02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dense02. singular matrix")

	A := [][]float64{
		{1, 2},
		{2, 4},
	}
	b := []float64{1, 2}
	x, err := DenseSolve(A, b)
	if err == nil {
		tst.Errorf("DenseSolve must fail on a singular matrix")
		return
	}
	io.Pforan("err = %v\n", err)
	chk.Vector(tst, "x zero-filled", 1e-17, x, []float64{0, 0})
}

func Test_sparse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse01. COO to CRS with duplicates")

	// duplicates accumulate; entries below DropTol vanish
	t := NewCoo(3, 3, 10)
	t.Put(0, 0, 1.0)
	t.Put(1, 1, 2.0)
	t.Put(0, 0, 1.5) // duplicate of (0,0)
	t.Put(2, 2, 3.0)
	t.Put(2, 0, 0.5)
	t.Put(1, 2, 1e-15) // dropped
	a := t.ToCRS()

	io.Pforan("dense = %v\n", a.ToDense())
	chk.IntAssert(a.Nnz(), 4)
	chk.Scalar(tst, "a00", 1e-17, a.At(0, 0), 2.5)
	chk.Scalar(tst, "a11", 1e-17, a.At(1, 1), 2.0)
	chk.Scalar(tst, "a12", 1e-17, a.At(1, 2), 0.0)
	chk.Scalar(tst, "a20", 1e-17, a.At(2, 0), 0.5)

	y := make([]float64, 3)
	a.MulVec(y, []float64{1, 1, 1})
	chk.Vector(tst, "A*1", 1e-15, y, []float64{2.5, 2.0, 3.5})
}

func Test_sparse02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse02. CRS matches dense product")

	t := NewCoo(4, 4, 16)
	den := la.MatAlloc(4, 4)
	put := func(i, j int, v float64) {
		t.Put(i, j, v)
		den[i][j] += v
	}
	put(0, 0, 4)
	put(0, 1, -1)
	put(1, 0, -1)
	put(1, 1, 4)
	put(1, 2, -1)
	put(2, 1, -1)
	put(2, 2, 4)
	put(2, 3, -1)
	put(3, 2, -1)
	put(3, 3, 4)
	a := t.ToCRS()

	x := []float64{1, -2, 3, 0.5}
	y := make([]float64, 4)
	a.MulVec(y, x)
	yref := make([]float64, 4)
	la.MatVecMul(yref, 1, den, x)
	chk.Vector(tst, "A*x", 1e-15, y, yref)
}

func Test_cg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cg01. conjugate gradients vs dense solution")

	// SPD 1D Laplacian-like system
	n := 12
	t := NewCoo(n, n, 3*n)
	den := la.MatAlloc(n, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		t.Put(i, i, 2.5)
		den[i][i] = 2.5
		if i > 0 {
			t.Put(i, i-1, -1)
			den[i][i-1] = -1
		}
		if i < n-1 {
			t.Put(i, i+1, -1)
			den[i][i+1] = -1
		}
		b[i] = float64(i%3) + 1.0
	}
	a := t.ToCRS()

	x, st, err := CG(a, b, 0, 0) // defaults
	if err != nil {
		tst.Errorf("CG failed:\n%v", err)
		return
	}
	io.Pforan("iterations = %d  residual = %g\n", st.Iterations, st.Residual)
	if !st.Converged {
		tst.Errorf("CG must converge on an SPD system")
		return
	}

	xref, err := DenseSolve(den, b)
	if err != nil {
		tst.Errorf("DenseSolve failed:\n%v", err)
		return
	}
	chk.Vector(tst, "x (CG vs dense)", 1e-8, x, xref)
}

func Test_cg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cg02. non-positive-definite detection")

	t := NewCoo(2, 2, 4)
	t.Put(0, 0, 1)
	t.Put(1, 1, -1)
	a := t.ToCRS()
	_, _, err := CG(a, []float64{0, 1}, 0, 0)
	if err == nil {
		tst.Errorf("CG must fail on an indefinite matrix")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_lu01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lu01. sparse LU vs dense solution")

	// nonsymmetric band system with fill-in
	n := 9
	t := NewCoo(n, n, 4*n)
	den := la.MatAlloc(n, n)
	put := func(i, j int, v float64) {
		t.Put(i, j, v)
		den[i][j] += v
	}
	for i := 0; i < n; i++ {
		put(i, i, 5.0+float64(i)*0.25)
		if i > 0 {
			put(i, i-1, -1.5)
		}
		if i < n-1 {
			put(i, i+1, -0.5)
		}
	}
	put(0, n-1, 0.75)
	put(n-1, 0, 0.25)
	a := t.ToCRS()

	b := make([]float64, n)
	for i := 0; i < n; i++ {
		b[i] = float64(i) - 3.0
	}

	lu, err := Factorize(a)
	if err != nil {
		tst.Errorf("Factorize failed:\n%v", err)
		return
	}
	x, err := lu.Solve(b)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	xref, err := DenseSolve(den, b)
	if err != nil {
		tst.Errorf("DenseSolve failed:\n%v", err)
		return
	}
	chk.Vector(tst, "x (LU vs dense)", 1e-11, x, xref)

	// the factorization is reusable for multiple right-hand sides
	a.MulVec(b, xref)
	x2, err := lu.Solve(b)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Vector(tst, "x (second rhs)", 1e-11, x2, xref)
}

func Test_lu02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lu02. singular pivot")

	t := NewCoo(2, 2, 4)
	t.Put(0, 0, 1)
	t.Put(0, 1, 2)
	t.Put(1, 0, 2)
	t.Put(1, 1, 4)
	_, err := Factorize(t.ToCRS())
	if err == nil {
		tst.Errorf("Factorize must fail on a singular matrix")
		return
	}
	io.Pforan("err = %v\n", err)
}
