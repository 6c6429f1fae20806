// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the structural model read from a (.json) model file
package inp

import (
	"encoding/json"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MinLength is the smallest acceptable element length. Elements shorter than
// this are treated as degenerate and rejected by validation.
const MinLength = 1e-9

// ElemKind distinguishes the structural role of a line element
type ElemKind int

// element kinds
const (
	KindBeam ElemKind = iota
	KindColumn
	KindBrace
	KindSlab
	KindWall
)

var elemKindNames = []string{"beam", "column", "brace", "slab", "wall"}

// String returns the name of this kind
func (o ElemKind) String() string {
	if o < KindBeam || o > KindWall {
		return io.Sf("ElemKind(%d)", int(o))
	}
	return elemKindNames[o]
}

// MarshalJSON encodes kind as its name
func (o ElemKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes kind from its name
func (o *ElemKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for i, name := range elemKindNames {
		if s == name {
			*o = ElemKind(i)
			return nil
		}
	}
	return chk.Err("unknown element kind %q", s)
}

// Node holds vertex data: position, support restraints and directly applied
// nodal forces/moments
type Node struct {
	Id   int       `json:"id"`             // unique identifier
	C    []float64 `json:"c"`              // coordinates [3]
	Rest []bool    `json:"rest,omitempty"` // restraint mask [6]: ux,uy,uz,rx,ry,rz; true => restrained
	F    []float64 `json:"f,omitempty"`    // applied nodal force/moment [6]; nil => none
}

// Element holds a two-node line element connecting Verts[0] to Verts[1]
type Element struct {
	Id    int      `json:"id"`    // unique identifier
	Kind  ElemKind `json:"kind"`  // structural role
	Verts [2]int   `json:"verts"` // start and end node ids
	Sec   string   `json:"sec"`   // section name
	Mat   string   `json:"mat"`   // material name
}

// Model holds the complete structural data graph. It is pure data: geometry,
// topology, properties and loads. Analysis never mutates a model.
type Model struct {

	// input
	Desc   string       `json:"desc"`             // description
	Nodes  []*Node      `json:"nodes"`            // vertices
	Elems  []*Element   `json:"elems"`            // line elements
	Secs   []*Section   `json:"secs"`             // cross-sections
	Mats   []*Material  `json:"mats"`             // materials
	Cases  []*LoadCase  `json:"cases,omitempty"`  // load cases
	Combos []*LoadCombo `json:"combos,omitempty"` // load combinations

	// derived (set by Init)
	nid2node map[int]*Node
	eid2elem map[int]*Element
	secs     map[string]*Section
	mats     map[string]*Material
	cases    map[string]*LoadCase
}

// Init builds the derived lookup maps. Duplicate ids/names are reported by
// Validate; here the first occurrence wins so a partially broken model can
// still be inspected.
func (o *Model) Init() {
	o.nid2node = make(map[int]*Node)
	for _, n := range o.Nodes {
		if _, ok := o.nid2node[n.Id]; !ok {
			o.nid2node[n.Id] = n
		}
	}
	o.eid2elem = make(map[int]*Element)
	for _, e := range o.Elems {
		if _, ok := o.eid2elem[e.Id]; !ok {
			o.eid2elem[e.Id] = e
		}
	}
	o.secs = make(map[string]*Section)
	for _, s := range o.Secs {
		if _, ok := o.secs[s.Name]; !ok {
			o.secs[s.Name] = s
		}
	}
	o.mats = make(map[string]*Material)
	for _, m := range o.Mats {
		if _, ok := o.mats[m.Name]; !ok {
			o.mats[m.Name] = m
		}
	}
	o.cases = make(map[string]*LoadCase)
	for _, c := range o.Cases {
		if _, ok := o.cases[c.Name]; !ok {
			o.cases[c.Name] = c
		}
	}
}

// GetNode returns the node with given id or nil
func (o *Model) GetNode(id int) *Node { return o.nid2node[id] }

// GetElem returns the element with given id or nil
func (o *Model) GetElem(id int) *Element { return o.eid2elem[id] }

// GetSec returns the section with given name or nil
func (o *Model) GetSec(name string) *Section { return o.secs[name] }

// GetMat returns the material with given name or nil
func (o *Model) GetMat(name string) *Material { return o.mats[name] }

// GetCase returns the load case with given name or nil
func (o *Model) GetCase(name string) *LoadCase { return o.cases[name] }

// ElemLength computes the Euclidean length of an element. Returns 0 if a
// node reference is dangling; validation flags that case separately.
func (o *Model) ElemLength(e *Element) float64 {
	a, b := o.GetNode(e.Verts[0]), o.GetNode(e.Verts[1])
	if a == nil || b == nil {
		return 0
	}
	dx := b.C[0] - a.C[0]
	dy := b.C[1] - a.C[1]
	dz := b.C[2] - a.C[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ElemDircos computes the unit direction cosines of an element axis,
// from start node to end node
func (o *Model) ElemDircos(e *Element) (t []float64, err error) {
	a, b := o.GetNode(e.Verts[0]), o.GetNode(e.Verts[1])
	if a == nil || b == nil {
		return nil, chk.Err("element %d has a dangling node reference", e.Id)
	}
	l := o.ElemLength(e)
	if l < MinLength {
		return nil, chk.Err("element %d has near-zero length = %g", e.Id, l)
	}
	t = make([]float64, 3)
	for i := 0; i < 3; i++ {
		t[i] = (b.C[i] - a.C[i]) / l
	}
	return
}

// ReadModel reads a model from a JSON file and initialises the lookup maps
func ReadModel(path string) (o *Model, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", path, err)
	}
	o = new(Model)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse model file %q:\n%v", path, err)
	}
	o.Init()
	return
}

// SaveJSON writes the model to a JSON file
func (o *Model) SaveJSON(path string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode model:\n%v", err)
	}
	if err = os.WriteFile(path, b, 0644); err != nil {
		return chk.Err("cannot write model file %q:\n%v", path, err)
	}
	return
}
