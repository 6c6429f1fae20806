// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lin

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CG solver defaults
const (
	CGDefaultTol   = 1e-10 // residual norm tolerance
	CGDefaultMaxIt = 1000  // iteration cap before min(n, cap)
)

// CGStatus reports how a Conjugate Gradient run ended
type CGStatus struct {
	Iterations int     // iterations performed
	Residual   float64 // final residual norm ‖b − A·x‖
	Converged  bool    // residual ≤ tolerance
}

// CG solves A·x = b for a symmetric positive-definite sparse matrix by the
// Conjugate Gradient method. Convergence is on the residual norm relative
// to ‖b‖, so the criterion is insensitive to the scale of the matrix
// entries. tol ≤ 0 selects CGDefaultTol; maxIt ≤ 0 selects
// min(n, CGDefaultMaxIt). The method is deterministic: the matrix-vector
// products run in the CRS canonical order. When the cap is exceeded the
// best estimate is still returned together with a convergence error.
func CG(A *CRS, b []float64, tol float64, maxIt int) (x []float64, st CGStatus, err error) {

	// defaults
	n := len(b)
	if tol <= 0 {
		tol = CGDefaultTol
	}
	if maxIt <= 0 {
		maxIt = n
		if maxIt > CGDefaultMaxIt {
			maxIt = CGDefaultMaxIt
		}
	}

	// x = 0  =>  r = b
	x = make([]float64, n)
	r := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)
	copy(r, b)
	copy(p, b)

	// x0 = 0, so the initial residual norm is ‖b‖
	rr := dot(r, r)
	st.Residual = math.Sqrt(rr)
	thresh := tol * st.Residual
	if st.Residual == 0 {
		st.Converged = true
		return
	}

	for st.Iterations = 1; st.Iterations <= maxIt; st.Iterations++ {

		A.MulVec(ap, p)
		pap := dot(p, ap)
		if pap <= 0 {
			return x, st, chk.Err("CG: matrix is not positive-definite (p·A·p = %g at iteration %d)", pap, st.Iterations)
		}
		alpha := rr / pap
		for i := 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}

		rrNew := dot(r, r)
		st.Residual = math.Sqrt(rrNew)
		if st.Residual <= thresh {
			st.Converged = true
			return
		}

		beta := rrNew / rr
		rr = rrNew
		for i := 0; i < n; i++ {
			p[i] = r[i] + beta*p[i]
		}
	}

	st.Iterations = maxIt
	return x, st, chk.Err("CG did not converge after %d iterations: residual = %g > threshold = %g", maxIt, st.Residual, thresh)
}

// dot computes the inner product of two vectors
func dot(u, v []float64) (res float64) {
	for i := range u {
		res += u[i] * v[i]
	}
	return
}
