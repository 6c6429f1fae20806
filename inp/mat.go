// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MatKind distinguishes material families
type MatKind int

// material kinds
const (
	MatConcrete MatKind = iota
	MatSteel
	MatComposite
	MatTimber
)

var matKindNames = []string{"concrete", "steel", "composite", "timber"}

// String returns the name of this kind
func (o MatKind) String() string {
	if o < MatConcrete || o > MatTimber {
		return io.Sf("MatKind(%d)", int(o))
	}
	return matKindNames[o]
}

// MarshalJSON encodes kind as its name
func (o MatKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes kind from its name
func (o *MatKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for i, name := range matKindNames {
		if s == name {
			*o = MatKind(i)
			return nil
		}
	}
	return chk.Err("unknown material kind %q", s)
}

// Material holds linear-elastic material data. Units are SI: E, Fy, Fu and
// Fc in [Pa]; Rho in [kg/m³].
type Material struct {
	Name string  `json:"name"`         // unique name
	Kind MatKind `json:"kind"`         // material family
	E    float64 `json:"e"`            // Young's modulus
	Nu   float64 `json:"nu"`           // Poisson's ratio
	Rho  float64 `json:"rho"`          // density
	Fy   float64 `json:"fy,omitempty"` // yield strength
	Fu   float64 `json:"fu,omitempty"` // ultimate strength
	Fc   float64 `json:"fc,omitempty"` // concrete compressive strength f'c
}

// G computes the shear modulus from E and Poisson's ratio
func (o *Material) G() float64 {
	return o.E / (2.0 * (1.0 + o.Nu))
}

// Allowable computes the allowable stress used by the safety check:
// concrete 0.85·f'c·0.6, steel 0.6·fy, timber 0.6·Fu. Composite sections
// follow the steel rule since their capacity is steel-governed here.
func (o *Material) Allowable() float64 {
	switch o.Kind {
	case MatConcrete:
		return 0.85 * o.Fc * 0.6
	case MatTimber:
		return 0.6 * o.Fu
	default:
		return 0.6 * o.Fy
	}
}
