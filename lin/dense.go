// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lin implements the linear system solvers of the analysis engine:
// dense Gaussian elimination, an integer-indexed sparse format with
// Conjugate Gradient, and a sparse LU decomposition
package lin

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// PivotTol is the smallest pivot magnitude accepted during elimination.
// Anything below it means the matrix is numerically singular.
const PivotTol = 1e-12

// DenseSolve solves A·x = b by Gaussian elimination with partial pivoting
// (row swap on the largest absolute pivot), forward elimination and back
// substitution. A and b are preserved. On a numerically singular pivot the
// returned x is zero-filled and err reports the offending column, so the
// caller never divides by a near-zero value.
func DenseSolve(A [][]float64, b []float64) (x []float64, err error) {

	// augmented copy [A|b]
	n := len(b)
	x = make([]float64, n)
	if len(A) != n {
		return x, chk.Err("matrix/vector size mismatch: %d rows, %d entries", len(A), n)
	}
	m := la.MatAlloc(n, n+1)
	for i := 0; i < n; i++ {
		copy(m[i], A[i])
		m[i][n] = b[i]
	}

	// forward elimination with partial pivoting
	for k := 0; k < n; k++ {

		// pivot row
		p := k
		big := math.Abs(m[k][k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(m[i][k]); v > big {
				big, p = v, i
			}
		}
		if big < PivotTol {
			return x, chk.Err("singular matrix: pivot %g at column %d", big, k)
		}
		if p != k {
			m[p], m[k] = m[k], m[p]
		}

		// eliminate below pivot
		for i := k + 1; i < n; i++ {
			f := m[i][k] / m[k][k]
			if f == 0 {
				continue
			}
			for j := k; j <= n; j++ {
				m[i][j] -= f * m[k][j]
			}
		}
	}

	// back substitution
	for i := n - 1; i >= 0; i-- {
		sum := m[i][n]
		for j := i + 1; j < n; j++ {
			sum -= m[i][j] * x[j]
		}
		x[i] = sum / m[i][i]
	}
	return
}
