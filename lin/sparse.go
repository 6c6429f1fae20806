// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lin

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/la"
)

// DropTol is the magnitude below which a compiled sparse entry is treated
// as a structural zero and discarded.
const DropTol = 1e-12

// Coo holds a sparse matrix in coordinate (triplet) form, indexed by
// integer (row, col) pairs. Duplicate entries accumulate additively when
// the matrix is compiled, which is exactly what scatter-add assembly
// needs. Compare la.Triplet; this one compiles to a compressed-row form
// with a canonical iteration order so that repeated runs sum entries in
// the same sequence and produce bit-identical results.
type Coo struct {
	m, n int
	i    []int
	j    []int
	v    []float64
}

// NewCoo returns a new m×n triplet store with capacity for guess entries
func NewCoo(m, n, guess int) *Coo {
	return &Coo{
		m: m, n: n,
		i: make([]int, 0, guess),
		j: make([]int, 0, guess),
		v: make([]float64, 0, guess),
	}
}

// Put records A[i][j] += v
func (o *Coo) Put(i, j int, v float64) {
	o.i = append(o.i, i)
	o.j = append(o.j, j)
	o.v = append(o.v, v)
}

// Size returns the matrix dimensions
func (o *Coo) Size() (m, n int) { return o.m, o.n }

// CRS holds a compressed-row sparse matrix. Within each row the column
// indices are strictly increasing; iterating rows outermost and columns
// innermost is therefore the canonical (row-major) order.
type CRS struct {
	M, N int
	Ap   []int     // row pointers [M+1]
	Aj   []int     // column indices [nnz]
	Ax   []float64 // values [nnz]
}

// ToCRS compiles the triplets into compressed-row form. Duplicates are
// summed in insertion order within each (row, col) pair; entries whose
// accumulated magnitude is at most DropTol are dropped.
func (o *Coo) ToCRS() *CRS {

	// order entry indices row-major; stable keeps insertion order of
	// duplicates so the floating-point summation sequence is fixed
	idx := make([]int, len(o.v))
	for k := range idx {
		idx[k] = k
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := idx[a], idx[b]
		if o.i[ka] != o.i[kb] {
			return o.i[ka] < o.i[kb]
		}
		return o.j[ka] < o.j[kb]
	})

	// accumulate duplicates, then drop entries that collapsed to zero
	rows := make([]int, 0, len(idx))
	cols := make([]int, 0, len(idx))
	vals := make([]float64, 0, len(idx))
	for _, k := range idx {
		i, j, v := o.i[k], o.j[k], o.v[k]
		if n := len(vals); n > 0 && rows[n-1] == i && cols[n-1] == j {
			vals[n-1] += v
			continue
		}
		rows = append(rows, i)
		cols = append(cols, j)
		vals = append(vals, v)
	}

	r := &CRS{M: o.m, N: o.n, Ap: make([]int, o.m+1)}
	for k, v := range vals {
		if math.Abs(v) <= DropTol {
			continue
		}
		r.Aj = append(r.Aj, cols[k])
		r.Ax = append(r.Ax, v)
		r.Ap[rows[k]+1]++
	}
	for i := 0; i < o.m; i++ {
		r.Ap[i+1] += r.Ap[i]
	}
	return r
}

// MulVec computes y := A·x in canonical row-major order
func (o *CRS) MulVec(y, x []float64) {
	for i := 0; i < o.M; i++ {
		sum := 0.0
		for p := o.Ap[i]; p < o.Ap[i+1]; p++ {
			sum += o.Ax[p] * x[o.Aj[p]]
		}
		y[i] = sum
	}
}

// At returns A[i][j] (zero if not stored)
func (o *CRS) At(i, j int) float64 {
	for p := o.Ap[i]; p < o.Ap[i+1]; p++ {
		if o.Aj[p] == j {
			return o.Ax[p]
		}
		if o.Aj[p] > j {
			break
		}
	}
	return 0
}

// Nnz returns the number of stored entries
func (o *CRS) Nnz() int { return len(o.Ax) }

// ToDense expands the matrix into a dense [][]float64
func (o *CRS) ToDense() [][]float64 {
	d := la.MatAlloc(o.M, o.N)
	for i := 0; i < o.M; i++ {
		for p := o.Ap[i]; p < o.Ap[i+1]; p++ {
			d[i][o.Aj[p]] = o.Ax[p]
		}
	}
	return d
}
