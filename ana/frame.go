// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form reference solutions of simple frame
// problems, used to verify the numerical engine
package ana

import "math"

// AxialRod is a prismatic rod fixed at one end with an axial tip load
type AxialRod struct {
	E float64 // Young's modulus
	A float64 // cross-sectional area
	L float64 // length
	P float64 // axial tip load (tension positive)
}

// Elongation returns the tip elongation δ = P·L/(E·A)
func (o *AxialRod) Elongation() float64 {
	return o.P * o.L / (o.E * o.A)
}

// Stress returns the axial stress σ = P/A
func (o *AxialRod) Stress() float64 {
	return o.P / o.A
}

// Cantilever is a prismatic cantilever with a transverse tip load
type Cantilever struct {
	E float64 // Young's modulus
	I float64 // moment of inertia of the bending plane
	L float64 // length
	P float64 // transverse tip load
}

// TipDeflection returns δ = P·L³/(3·E·I)
func (o *Cantilever) TipDeflection() float64 {
	return o.P * o.L * o.L * o.L / (3.0 * o.E * o.I)
}

// TipRotation returns θ = P·L²/(2·E·I)
func (o *Cantilever) TipRotation() float64 {
	return o.P * o.L * o.L / (2.0 * o.E * o.I)
}

// FixedMoment returns the support moment M = P·L
func (o *Cantilever) FixedMoment() float64 {
	return o.P * o.L
}

// LateralStiffness returns the tip lateral stiffness k = 3·E·I/L³ of a
// cantilever free to rotate at the tip
func (o *Cantilever) LateralStiffness() float64 {
	return 3.0 * o.E * o.I / (o.L * o.L * o.L)
}

// SdofOmega returns the circular frequency ω = √(k/m) of a single-mass
// oscillator
func SdofOmega(k, m float64) float64 {
	return math.Sqrt(k / m)
}
