// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seis

import "math"

// Cs computes the seismic response coefficient Cs = Sa(T)·Ie/R, floored
// at max(0.044·Sds·Ie, 0.01) regardless of the computed value
func Cs(sp *Spectrum, p *Params, T float64) float64 {
	ie := ImportanceFactor(p.Occ)
	r := p.R
	if r <= 0 {
		r = 1.0
	}
	cs := sp.Sa(T) * ie / r
	csMin := math.Max(0.044*sp.Sds*ie, 0.01)
	if cs < csMin {
		cs = csMin
	}
	return cs
}

// BaseShear computes the design base shear V = Cs·W for a total seismic
// weight W [N]. The Cs floor guarantees V ≥ Cs_min·W.
func BaseShear(sp *Spectrum, p *Params, T, weight float64) float64 {
	return Cs(sp, p, T) * weight
}

// ApproxPeriod estimates the fundamental period Ta = Ct·hn^x from the
// structural height hn [m], using the code coefficients for moment
// frames: concrete Ct=0.0466, x=0.9; steel Ct=0.0724, x=0.8. steel==false
// selects the concrete coefficients.
func ApproxPeriod(hn float64, steel bool) float64 {
	if hn <= 0 {
		return 0
	}
	if steel {
		return 0.0724 * math.Pow(hn, 0.8)
	}
	return 0.0466 * math.Pow(hn, 0.9)
}
