// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package design implements demand/capacity checks for frame members
package design

import (
	"math"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/inp"

	"github.com/cpmech/gosl/io"
)

// CheckType identifies which capacity a check compares against
type CheckType int

// check types
const (
	Flexure CheckType = iota
	Shear
	Axial
	Combined
)

var checkTypeNames = []string{"flexure", "shear", "axial", "combined"}

// String returns the name of this check type
func (o CheckType) String() string {
	if o < Flexure || o > Combined {
		return io.Sf("CheckType(%d)", int(o))
	}
	return checkTypeNames[o]
}

// Check is the outcome of one demand/capacity comparison. A check passes
// when Ratio ≤ 1. Non-applicable checks (e.g. flexure on a brace) carry
// Applicable=false and pass trivially.
type Check struct {
	ElemId     int       // element id
	Type       CheckType // which capacity was checked
	Applicable bool      // whether the check applies to this member kind
	Pass       bool      // Ratio ≤ 1 (or not applicable)
	Ratio      float64   // demand / capacity
	Demand     float64   // demand value [Pa]
	Capacity   float64   // capacity value [Pa]
	CodeRef    string    // code clause the capacity comes from
}

// Demands carries the stress demands of one element, already recovered
// from the solved displacements
type Demands struct {
	SigAxial    float64 // |N|/A
	SigBending  float64 // governing M/S over both planes
	SigShear    float64 // governing V/A
	SigCombined float64 // |axial| + bending
}

// code reference strings per material family
func codeRef(kind inp.MatKind) string {
	switch kind {
	case inp.MatConcrete:
		return "SNI 2847:2019"
	case inp.MatTimber:
		return "SNI 7973:2013"
	default:
		return "SNI 1729:2020"
	}
}

// shearAllowable computes the allowable shear stress per material family:
// steel/composite 0.4·fy, concrete 0.17·√f'c (f'c in MPa), timber 0.1·Fu
func shearAllowable(m *inp.Material) float64 {
	switch m.Kind {
	case inp.MatConcrete:
		if m.Fc <= 0 {
			return 0
		}
		return 0.17 * math.Sqrt(m.Fc/1e6) * 1e6
	case inp.MatTimber:
		return 0.1 * m.Fu
	default:
		return 0.4 * m.Fy
	}
}

// flexureApplies tells whether a member kind carries bending by design;
// braces are axial-only members
func flexureApplies(kind inp.ElemKind) bool {
	switch kind {
	case inp.KindBeam, inp.KindColumn, inp.KindSlab, inp.KindWall:
		return true
	case inp.KindBrace:
		return false
	}
	return false
}

// ratioCheck builds one check record from a demand and a capacity. A zero
// capacity with nonzero demand fails with an infinite ratio rather than
// dividing by zero.
func ratioCheck(elemId int, typ CheckType, applicable bool, demand, capacity float64, ref string) Check {
	c := Check{
		ElemId:     elemId,
		Type:       typ,
		Applicable: applicable,
		Demand:     demand,
		Capacity:   capacity,
		CodeRef:    ref,
	}
	if !applicable {
		c.Pass = true
		return c
	}
	if capacity > 0 {
		c.Ratio = demand / capacity
	} else if demand > 0 {
		c.Ratio = math.Inf(1)
	}
	c.Pass = c.Ratio <= 1.0
	return c
}

// All runs the four standard checks for one element and returns the
// records in a fixed order: flexure, shear, axial, combined
func All(elemId int, kind inp.ElemKind, mat *inp.Material, d Demands) []Check {
	ref := codeRef(mat.Kind)
	allow := mat.Allowable()
	return []Check{
		ratioCheck(elemId, Flexure, flexureApplies(kind), d.SigBending, allow, ref),
		ratioCheck(elemId, Shear, true, d.SigShear, shearAllowable(mat), ref),
		ratioCheck(elemId, Axial, true, d.SigAxial, allow, ref),
		ratioCheck(elemId, Combined, true, d.SigCombined, allow, ref),
	}
}
