// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/inp"
)

// node DOF components
const (
	UX = iota
	UY
	UZ
	RX
	RY
	RZ
)

// NdofPerNode is the number of degrees of freedom per node in 3D:
// three translations and three rotations
const NdofPerNode = 6

// DofMap numbers the global equations. The ordering is canonical: node
// positions follow the model's node list, and equation index =
// 6·position + component (ux,uy,uz,rx,ry,rz). Everything downstream —
// assembly, BC application, solution vectors — shares this ordering.
type DofMap struct {
	Ny         int         // total number of equations = 6 × node count
	NodeIds    []int       // node id per position
	Restrained []bool      // [Ny] whether an equation is fixed by a support
	nid2pos    map[int]int // node id => position
}

// NewDofMap builds the equation numbering for a model
func NewDofMap(m *inp.Model) (o *DofMap) {
	o = &DofMap{
		Ny:      NdofPerNode * len(m.Nodes),
		NodeIds: make([]int, len(m.Nodes)),
		nid2pos: make(map[int]int, len(m.Nodes)),
	}
	o.Restrained = make([]bool, o.Ny)
	for p, n := range m.Nodes {
		o.NodeIds[p] = n.Id
		o.nid2pos[n.Id] = p
		for c, r := range n.Rest {
			if r {
				o.Restrained[NdofPerNode*p+c] = true
			}
		}
	}
	return
}

// Eq returns the global equation index of (node id, component) or -1 if
// the node is unknown
func (o *DofMap) Eq(nodeId, component int) int {
	p, ok := o.nid2pos[nodeId]
	if !ok {
		return -1
	}
	return NdofPerNode*p + component
}

// Pos returns the position of a node id in the canonical ordering, or -1
func (o *DofMap) Pos(nodeId int) int {
	p, ok := o.nid2pos[nodeId]
	if !ok {
		return -1
	}
	return p
}

// NumRestrained counts the restrained equations
func (o *DofMap) NumRestrained() (n int) {
	for _, r := range o.Restrained {
		if r {
			n++
		}
	}
	return
}
