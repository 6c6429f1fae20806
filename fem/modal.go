// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"math"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/lin"
)

// modal solver parameters
const (
	modalMaxIt  = 200   // inverse-iteration cap per mode
	modalTol    = 1e-10 // relative eigenvalue change for convergence
	modalMinFrq = 1e-8  // eigenvalues below this are treated as spurious
)

// ModalSolve extracts the lowest nmodes natural frequencies and mode
// shapes from the assembled (boundary-condition-applied) stiffness and
// lumped mass matrices by inverse iteration: K is factorized once
// and each iterate solves K·w = M·v. Converged modes are deflated away by
// M-orthogonalization, so successive runs climb the spectrum from the
// fundamental mode. The starting vector is a fixed deterministic pattern;
// repeated runs return identical modes.
func (o *Domain) ModalSolve(ctx context.Context, nmodes int) (modes []Mode, err error) {

	if o.Kb == nil {
		return nil, newErr(ErrCalculation, "modal solve requires an assembled stiffness matrix")
	}
	if o.Mb == nil {
		o.AssembleM()
	}

	// the massed subspace bounds how many modes exist
	n := o.Ny
	nmass := 0
	for _, m := range o.Mb {
		if m > 0 {
			nmass++
		}
	}
	if nmass == 0 {
		return nil, newErr(ErrCalculation, "modal solve requires at least one unrestrained translational DOF with mass")
	}
	if nmodes > nmass {
		nmodes = nmass
	}

	// factorize K once; a singular factorization means the structure is
	// inadequately restrained
	lu, err := lin.Factorize(o.Kb)
	if err != nil {
		return nil, newErr(ErrSingularMatrix, "modal factorization failed: %v", err)
	}

	v := make([]float64, n)
	mv := make([]float64, n)
	kv := make([]float64, n)

	for m := 0; m < nmodes; m++ {
		if err = ctx.Err(); err != nil {
			return modes, err
		}

		// deterministic start vector spread over the massed DOFs, with a
		// mild index-dependent variation to break structural symmetry
		for i := 0; i < n; i++ {
			v[i] = 0
			if o.Mb[i] > 0 {
				v[i] = 1.0 + 0.01*float64(i%13)
			}
		}
		o.mgs(v, modes)
		if o.mnorm(v) == 0 {
			break // nothing left outside the span of found modes
		}
		o.mnormalize(v)

		// inverse iteration: w = K⁻¹·M·v
		lam, lamOld := 0.0, 0.0
		for it := 0; it < modalMaxIt; it++ {
			for i := 0; i < n; i++ {
				mv[i] = o.Mb[i] * v[i]
			}
			w, errS := lu.Solve(mv)
			if errS != nil {
				return modes, newErr(ErrSingularMatrix, "modal substitution failed: %v", errS)
			}
			o.mgs(w, modes)
			if o.mnorm(w) == 0 {
				break
			}
			copy(v, w)
			o.mnormalize(v)

			// Rayleigh quotient λ = vᵀKv / vᵀMv (v is M-normalized)
			o.Kb.MulVec(kv, v)
			lam = 0
			for i := 0; i < n; i++ {
				lam += v[i] * kv[i]
			}
			if it > 0 && math.Abs(lam-lamOld) <= modalTol*math.Abs(lam) {
				break
			}
			lamOld = lam
		}

		if lam <= modalMinFrq {
			break // remaining subspace carries no strain energy
		}
		omega := math.Sqrt(lam)
		freq := omega / (2.0 * math.Pi)
		shape := make([]float64, n)
		copy(shape, v)
		modes = append(modes, Mode{
			Omega:  omega,
			Freq:   freq,
			Period: 1.0 / freq,
			Shape:  shape,
		})
	}

	if len(modes) == 0 {
		return nil, newErr(ErrConvergence, "inverse iteration produced no converged mode")
	}
	return
}

// mgs removes the M-projection of already-found modes from v
// (Gram-Schmidt in the M inner product)
func (o *Domain) mgs(v []float64, modes []Mode) {
	for _, md := range modes {
		num := 0.0
		for i := range v {
			num += md.Shape[i] * o.Mb[i] * v[i]
		}
		// shapes are M-normalized, so the projection is just num
		for i := range v {
			v[i] -= num * md.Shape[i]
		}
	}
}

// mnorm computes the M-norm √(vᵀMv)
func (o *Domain) mnorm(v []float64) float64 {
	sum := 0.0
	for i := range v {
		sum += v[i] * o.Mb[i] * v[i]
	}
	return math.Sqrt(sum)
}

// mnormalize scales v to unit M-norm
func (o *Domain) mnormalize(v []float64) {
	nrm := o.mnorm(v)
	if nrm == 0 {
		return
	}
	for i := range v {
		v[i] /= nrm
	}
}
