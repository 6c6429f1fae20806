// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lin

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// LU holds a sparse LU decomposition with unit-diagonal L. Rows are stored
// as sorted (column, value) pairs so all merges run in ascending column
// order, keeping the factorization deterministic. No pivoting is
// performed: assembled stiffness matrices are diagonally dominant after
// boundary conditions, and a near-zero diagonal is reported as an explicit
// failure instead.
type LU struct {
	n     int
	lcols [][]int     // L strictly-lower columns per row
	lvals [][]float64 // L strictly-lower values per row
	ucols [][]int     // U upper (incl. diagonal) columns per row
	uvals [][]float64 // U upper values per row
	diag  []float64   // U diagonal
}

// Factorize computes the LU decomposition of a CRS matrix using row-merge
// (up-looking) elimination. Fill-in appears naturally from the sorted-row
// merges. An explicit error reports a near-zero pivot.
func Factorize(A *CRS) (o *LU, err error) {

	if A.M != A.N {
		return nil, chk.Err("LU needs a square matrix; got %d×%d", A.M, A.N)
	}
	n := A.M
	o = &LU{
		n:     n,
		lcols: make([][]int, n),
		lvals: make([][]float64, n),
		ucols: make([][]int, n),
		uvals: make([][]float64, n),
		diag:  make([]float64, n),
	}

	// scratch row as sorted (cols, vals)
	var cols []int
	var vals []float64

	for i := 0; i < n; i++ {

		// load row i
		cols = cols[:0]
		vals = vals[:0]
		for p := A.Ap[i]; p < A.Ap[i+1]; p++ {
			cols = append(cols, A.Aj[p])
			vals = append(vals, A.Ax[p])
		}

		// eliminate columns k < i in ascending order; each elimination may
		// introduce fill to the right of k only, so a single left-to-right
		// sweep suffices
		var lc []int
		var lv []float64
		for idx := 0; idx < len(cols) && cols[idx] < i; idx++ {
			k := cols[idx]
			f := vals[idx] / o.diag[k]
			if math.Abs(f) <= DropTol {
				continue
			}
			lc = append(lc, k)
			lv = append(lv, f)
			// row_i -= f * U_row_k   (columns > k)
			cols, vals = axpyRow(cols, vals, idx+1, -f, o.ucols[k], o.uvals[k])
		}

		// split into L and U parts
		o.lcols[i], o.lvals[i] = lc, lv
		var uc []int
		var uv []float64
		for idx, c := range cols {
			if c < i {
				continue
			}
			if c > i && math.Abs(vals[idx]) <= DropTol {
				continue
			}
			uc = append(uc, c)
			uv = append(uv, vals[idx])
		}
		if len(uc) == 0 || uc[0] != i || math.Abs(uv[0]) < PivotTol {
			return nil, chk.Err("LU: near-zero pivot at row %d", i)
		}
		o.ucols[i], o.uvals[i] = uc, uv
		o.diag[i] = uv[0]
	}
	return
}

// axpyRow merges row (cols, vals) with f times the sparse row (bc, bv),
// considering only b-columns strictly greater than bc[0] (the pivot). The
// merge starts at position `from` in the target row and keeps columns
// sorted. Returns the possibly reallocated row.
func axpyRow(cols []int, vals []float64, from int, f float64, bc []int, bv []float64) ([]int, []float64) {

	// skip the pivot entry of the source row
	q := 1
	p := from
	for q < len(bc) {
		c, v := bc[q], f*bv[q]
		for p < len(cols) && cols[p] < c {
			p++
		}
		if p < len(cols) && cols[p] == c {
			vals[p] += v
			p++
			q++
			continue
		}
		// insert fill-in at p
		cols = append(cols, 0)
		vals = append(vals, 0)
		copy(cols[p+1:], cols[p:])
		copy(vals[p+1:], vals[p:])
		cols[p] = c
		vals[p] = v
		p++
		q++
	}
	return cols, vals
}

// Solve computes x from L·U·x = b by forward and back substitution
func (o *LU) Solve(b []float64) (x []float64, err error) {
	if len(b) != o.n {
		return nil, chk.Err("LU: vector size %d does not match system size %d", len(b), o.n)
	}

	// forward: L·y = b (unit diagonal)
	y := make([]float64, o.n)
	for i := 0; i < o.n; i++ {
		sum := b[i]
		for idx, k := range o.lcols[i] {
			sum -= o.lvals[i][idx] * y[k]
		}
		y[i] = sum
	}

	// back: U·x = y
	x = make([]float64, o.n)
	for i := o.n - 1; i >= 0; i-- {
		sum := y[i]
		for idx := 1; idx < len(o.ucols[i]); idx++ {
			sum -= o.uvals[i][idx] * x[o.ucols[i][idx]]
		}
		x[i] = sum / o.diag[i]
	}
	return
}
