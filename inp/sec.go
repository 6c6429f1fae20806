// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SecKind distinguishes cross-section shapes
type SecKind int

// section kinds
const (
	SecRectangle SecKind = iota
	SecCircle
	SecCustom
)

var secKindNames = []string{"rectangle", "circle", "custom"}

// String returns the name of this kind
func (o SecKind) String() string {
	if o < SecRectangle || o > SecCustom {
		return io.Sf("SecKind(%d)", int(o))
	}
	return secKindNames[o]
}

// MarshalJSON encodes kind as its name
func (o SecKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes kind from its name
func (o *SecKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for i, name := range secKindNames {
		if s == name {
			*o = SecKind(i)
			return nil
		}
	}
	return chk.Err("unknown section kind %q", s)
}

// SecProps holds the derived cross-section properties
//
//         2 (s)
//         ^
//         |
//   +-----------+  ---
//   |     |     |   |
//   |     +-----|---|--> 1 (r)   h = Hei
//   |           |   |
//   +-----------+  ---
//     b = Wid
//
//   I22 -- inertia about axis 2 (major, bending in plane 1-t)
//   I11 -- inertia about axis 1 (minor)
//   S22, S11 -- elastic section moduli for each bending plane
//   Jtt -- torsional constant about the element axis t
type SecProps struct {
	A   float64 // cross-sectional area
	I22 float64 // major moment of inertia
	I11 float64 // minor moment of inertia
	S22 float64 // section modulus, plane of I22
	S11 float64 // section modulus, plane of I11
	Jtt float64 // torsional constant
}

// Section holds a cross-section description. Wid/Hei apply to rectangles,
// Dia to circles. The override fields, when nonzero, replace the computed
// value; custom shapes rely on them and fall back to the rectangle formulas
// for anything left unset.
type Section struct {
	Name string  `json:"name"`          // unique name
	Kind SecKind `json:"kind"`          // shape
	Wid  float64 `json:"wid,omitempty"` // width b
	Hei  float64 `json:"hei,omitempty"` // height h
	Dia  float64 `json:"dia,omitempty"` // diameter d

	// overrides (0 = compute from shape)
	A   float64 `json:"a,omitempty"`
	I22 float64 `json:"i22,omitempty"`
	I11 float64 `json:"i11,omitempty"`
	S22 float64 `json:"s22,omitempty"`
	S11 float64 `json:"s11,omitempty"`
	Jtt float64 `json:"jtt,omitempty"`
}

// Props computes the derived cross-section properties. It never fails: a
// shape it cannot interpret is treated as a rectangle built from Wid/Hei,
// and explicit overrides always win. Zero dimensions yield explicit zeros.
//
// The rectangle torsional constant uses the thin-member approximation
// Jtt ≈ b·h³/3. The circle value is the exact polar moment π·r⁴/2.
func (o *Section) Props() (p SecProps) {
	switch o.Kind {
	case SecCircle:
		r := o.Dia / 2.0
		r2 := r * r
		p.A = math.Pi * r2
		p.I22 = math.Pi * r2 * r2 / 4.0
		p.I11 = p.I22
		if r > 0 {
			p.S22 = p.I22 / r
			p.S11 = p.S22
		}
		p.Jtt = p.I22 + p.I11 // polar moment, exact for circular sections
	default:
		// rectangle formulas; also the fallback for custom shapes
		b, h := o.Wid, o.Hei
		p.A = b * h
		p.I22 = b * h * h * h / 12.0
		p.I11 = h * b * b * b / 12.0
		if h > 0 {
			p.S22 = p.I22 / (h / 2.0)
		}
		if b > 0 {
			p.S11 = p.I11 / (b / 2.0)
		}
		p.Jtt = b * h * h * h / 3.0 // thin-member approximation
	}

	// overrides
	if o.A > 0 {
		p.A = o.A
	}
	if o.I22 > 0 {
		p.I22 = o.I22
	}
	if o.I11 > 0 {
		p.I11 = o.I11
	}
	if o.S22 > 0 {
		p.S22 = o.S22
	}
	if o.S11 > 0 {
		p.S11 = o.S11
	}
	if o.Jtt > 0 {
		p.Jtt = o.Jtt
	}
	return
}
