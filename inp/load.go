// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Dir identifies a global load direction: a force along an axis or a
// moment about an axis. The integer value is also the DOF component index
// within a node's 6-entry block.
type Dir int

// load directions
const (
	FX Dir = iota
	FY
	FZ
	MX
	MY
	MZ
)

var dirNames = []string{"fx", "fy", "fz", "mx", "my", "mz"}

// String returns the name of this direction
func (o Dir) String() string {
	if o < FX || o > MZ {
		return io.Sf("Dir(%d)", int(o))
	}
	return dirNames[o]
}

// MarshalJSON encodes direction as its name
func (o Dir) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes direction from its name
func (o *Dir) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for i, name := range dirNames {
		if s == name {
			*o = Dir(i)
			return nil
		}
	}
	return chk.Err("unknown load direction %q", s)
}

// Dist identifies the spatial distribution of a load
type Dist int

// load distributions
const (
	DistPoint   Dist = iota // concentrated at a node
	DistUniform             // constant along an element
	DistLinear              // ramp from zero at the start node to Value at the end node
)

var distNames = []string{"point", "uniform", "linear"}

// String returns the name of this distribution
func (o Dist) String() string {
	if o < DistPoint || o > DistLinear {
		return io.Sf("Dist(%d)", int(o))
	}
	return distNames[o]
}

// MarshalJSON encodes distribution as its name
func (o Dist) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes distribution from its name
func (o *Dist) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for i, name := range distNames {
		if s == name {
			*o = Dist(i)
			return nil
		}
	}
	return chk.Err("unknown load distribution %q", s)
}

// Load holds one applied load. Exactly one of Node/Elem identifies the
// target; the unset one is -1. Point loads target nodes; uniform and
// linear loads target elements and carry intensity in [N/m].
type Load struct {
	Node  int     // target node id; -1 if element load
	Elem  int     // target element id; -1 if nodal load
	Dir   Dir     // global direction
	Value float64 // magnitude [N], [N·m] or [N/m]
	Dist  Dist    // distribution
}

// loadAlias mirrors Load for JSON with optional targets
type loadAlias struct {
	Node  *int    `json:"node,omitempty"`
	Elem  *int    `json:"elem,omitempty"`
	Dir   Dir     `json:"dir"`
	Value float64 `json:"value"`
	Dist  Dist    `json:"dist"`
}

// MarshalJSON encodes the load, emitting only the set target
func (o Load) MarshalJSON() ([]byte, error) {
	a := loadAlias{Dir: o.Dir, Value: o.Value, Dist: o.Dist}
	if o.Node >= 0 {
		n := o.Node
		a.Node = &n
	}
	if o.Elem >= 0 {
		e := o.Elem
		a.Elem = &e
	}
	return json.Marshal(a)
}

// UnmarshalJSON decodes the load, defaulting missing targets to -1
func (o *Load) UnmarshalJSON(b []byte) error {
	var a loadAlias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	o.Node, o.Elem = -1, -1
	if a.Node != nil {
		o.Node = *a.Node
	}
	if a.Elem != nil {
		o.Elem = *a.Elem
	}
	o.Dir, o.Value, o.Dist = a.Dir, a.Value, a.Dist
	return nil
}

// LoadCase groups loads under one name; e.g. "dead", "live", "eqx"
type LoadCase struct {
	Name  string  `json:"name"`
	Loads []*Load `json:"loads"`
}

// LoadCombo applies scale factors to named load cases; e.g.
// {"dead": 1.2, "live": 1.6}
type LoadCombo struct {
	Name    string             `json:"name"`
	Factors map[string]float64 `json:"factors"`
}
