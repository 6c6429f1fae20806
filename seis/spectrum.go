// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seis

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// site coefficient tables, linearly interpolated between the anchor
// points and clamped outside them
var (
	faSs     = []float64{0.25, 0.50, 0.75, 1.00, 1.25}
	fvS1     = []float64{0.10, 0.20, 0.30, 0.40, 0.50}
	faBySite = map[SiteClass][]float64{
		"A": {0.8, 0.8, 0.8, 0.8, 0.8},
		"B": {1.0, 1.0, 1.0, 1.0, 1.0},
		"C": {1.2, 1.2, 1.1, 1.0, 1.0},
		"D": {1.6, 1.4, 1.2, 1.1, 1.0},
		"E": {2.5, 1.7, 1.2, 0.9, 0.9},
	}
	fvBySite = map[SiteClass][]float64{
		"A": {0.8, 0.8, 0.8, 0.8, 0.8},
		"B": {1.0, 1.0, 1.0, 1.0, 1.0},
		"C": {1.7, 1.6, 1.5, 1.4, 1.3},
		"D": {2.4, 2.0, 1.8, 1.6, 1.5},
		"E": {3.5, 3.2, 2.8, 2.4, 2.4},
	}
)

// interp interpolates y(x) linearly over anchor points, clamping outside
func interp(xs, ys []float64, x float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	n := len(xs)
	if x >= xs[n-1] {
		return ys[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= xs[i] {
			f := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + f*(ys[i]-ys[i-1])
		}
	}
	return ys[n-1]
}

// Fa returns the short-period site coefficient for a site class
func Fa(site SiteClass, ss float64) (float64, error) {
	row, ok := faBySite[site]
	if !ok {
		return 0, chk.Err("unknown site class %q", site)
	}
	return interp(faSs, row, ss), nil
}

// Fv returns the 1-second site coefficient for a site class
func Fv(site SiteClass, s1 float64) (float64, error) {
	row, ok := fvBySite[site]
	if !ok {
		return 0, chk.Err("unknown site class %q", site)
	}
	return interp(fvS1, row, s1), nil
}

// Spectrum holds the derived design response spectrum parameters
type Spectrum struct {
	Sds float64 // design short-period spectral acceleration = (2/3)·Fa·Ss
	Sd1 float64 // design 1-second spectral acceleration = (2/3)·Fv·S1
	T0  float64 // 0.2·Ts
	Ts  float64 // transition period = Sd1/Sds
	Tl  float64 // long-period transition
}

// NewSpectrum derives the design spectrum from site parameters
func NewSpectrum(p *Params) (o *Spectrum, err error) {
	fa, err := Fa(p.Site, p.Ss)
	if err != nil {
		return
	}
	fv, err := Fv(p.Site, p.S1)
	if err != nil {
		return
	}
	sms := fa * p.Ss
	sm1 := fv * p.S1
	o = &Spectrum{
		Sds: 2.0 / 3.0 * sms,
		Sd1: 2.0 / 3.0 * sm1,
		Tl:  p.Tl,
	}
	if o.Tl <= 0 {
		o.Tl = DefaultTl
	}
	if o.Sds > 0 {
		o.Ts = o.Sd1 / o.Sds
		o.T0 = 0.2 * o.Ts
	}
	return
}

// Sa evaluates the design spectral acceleration at period T [s]:
//
//	T ≤ Ts       Sa = Sds·(0.4 + 0.6·T/Ts)
//	Ts < T ≤ Tl  Sa = Sds
//	T > Tl       Sa = Sd1/T
//
// The curve is continuous at Ts by construction.
func (o *Spectrum) Sa(T float64) float64 {
	switch {
	case o.Ts <= 0:
		return 0
	case T <= 0:
		return 0.4 * o.Sds
	case T <= o.Ts:
		return o.Sds * (0.4 + 0.6*T/o.Ts)
	case T <= o.Tl:
		return o.Sds
	}
	return o.Sd1 / T
}

// Sample evaluates the spectrum at n equally spaced periods in [0, tmax].
// tmax ≤ 0 selects 4 s, a practical plotting range for buildings.
func (o *Spectrum) Sample(n int, tmax float64) (T, Sa []float64) {
	if n < 2 {
		n = 2
	}
	if tmax <= 0 {
		tmax = 4.0
	}
	T = utl.LinSpace(0, tmax, n)
	Sa = make([]float64, n)
	for i, t := range T {
		Sa[i] = o.Sa(t)
	}
	return
}
