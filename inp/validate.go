// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Severity grades a validation issue
type Severity int

// severities
const (
	Info Severity = iota
	Warning
	Error
)

var severityNames = []string{"info", "warning", "error"}

// String returns the name of this severity
func (o Severity) String() string {
	if o < Info || o > Error {
		return io.Sf("Severity(%d)", int(o))
	}
	return severityNames[o]
}

// Issue is one validation finding. Error-severity issues block analysis;
// warnings surface as recommendations only.
type Issue struct {
	Sev Severity
	Msg string
}

// String returns "severity: message"
func (o Issue) String() string {
	return io.Sf("%s: %s", o.Sev, o.Msg)
}

// HasErrors tells whether any issue has Error severity
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Sev == Error {
			return true
		}
	}
	return false
}

// Validate checks the model integrity and returns ALL findings instead of
// stopping at the first one, so the caller can present the complete list.
// Init must have been called.
func (o *Model) Validate() (issues []Issue) {

	add := func(sev Severity, format string, prm ...interface{}) {
		issues = append(issues, Issue{sev, io.Sf(format, prm...)})
	}

	// nodes
	seenNid := make(map[int]bool)
	nrest := 0
	for _, n := range o.Nodes {
		if seenNid[n.Id] {
			add(Error, "duplicate node id %d", n.Id)
			continue
		}
		seenNid[n.Id] = true
		if len(n.C) != 3 {
			add(Error, "node %d must have 3 coordinates, has %d", n.Id, len(n.C))
			continue
		}
		for i, c := range n.C {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				add(Error, "node %d has non-finite coordinate c[%d]", n.Id, i)
			}
		}
		if n.Rest != nil && len(n.Rest) != 6 {
			add(Error, "node %d restraint mask must have 6 entries, has %d", n.Id, len(n.Rest))
		}
		if n.F != nil && len(n.F) != 6 {
			add(Error, "node %d nodal force vector must have 6 entries, has %d", n.Id, len(n.F))
		}
		for _, r := range n.Rest {
			if r {
				nrest++
			}
		}
	}
	if len(o.Nodes) == 0 {
		add(Error, "model has no nodes")
	}

	// under-restrained structures would make the stiffness matrix singular;
	// reject before any assembly happens
	if len(o.Nodes) > 0 && nrest == 0 {
		add(Error, "model is under-restrained: no restrained DOF in any node")
	}

	// materials
	for _, m := range o.Mats {
		if m.E <= 0 {
			add(Error, "material %q has non-positive elastic modulus E = %g", m.Name, m.E)
		}
		if m.Rho <= 0 {
			add(Error, "material %q has non-positive density rho = %g", m.Name, m.Rho)
		}
		if m.Nu < 0 || m.Nu >= 0.5 {
			add(Warning, "material %q has Poisson ratio nu = %g outside [0, 0.5)", m.Name, m.Nu)
		}
		switch m.Kind {
		case MatConcrete:
			if m.Fc <= 0 {
				add(Warning, "concrete material %q has no compressive strength fc; capacity checks will report zero capacity", m.Name)
			}
		case MatTimber:
			if m.Fu <= 0 {
				add(Warning, "timber material %q has no ultimate strength fu; capacity checks will report zero capacity", m.Name)
			}
		default:
			if m.Fy <= 0 {
				add(Warning, "material %q has no yield strength fy; capacity checks will report zero capacity", m.Name)
			}
		}
	}

	// sections
	for _, s := range o.Secs {
		p := s.Props()
		if p.A <= 0 {
			add(Error, "section %q derives a non-positive area A = %g", s.Name, p.A)
		}
		if p.I22 <= 0 || p.I11 <= 0 {
			add(Warning, "section %q derives non-positive inertia (I22=%g, I11=%g)", s.Name, p.I22, p.I11)
		}
	}

	// elements
	seenEid := make(map[int]bool)
	for _, e := range o.Elems {
		if seenEid[e.Id] {
			add(Error, "duplicate element id %d", e.Id)
			continue
		}
		seenEid[e.Id] = true
		if e.Kind < KindBeam || e.Kind > KindWall {
			add(Error, "element %d has invalid kind %d", e.Id, int(e.Kind))
		}
		a, b := o.GetNode(e.Verts[0]), o.GetNode(e.Verts[1])
		if a == nil {
			add(Error, "element %d references missing node %d", e.Id, e.Verts[0])
		}
		if b == nil {
			add(Error, "element %d references missing node %d", e.Id, e.Verts[1])
		}
		if e.Verts[0] == e.Verts[1] {
			add(Error, "element %d connects node %d to itself", e.Id, e.Verts[0])
		} else if a != nil && b != nil && len(a.C) == 3 && len(b.C) == 3 {
			if l := o.ElemLength(e); l < MinLength {
				add(Error, "element %d has near-zero length = %g", e.Id, l)
			}
		}
		if o.GetSec(e.Sec) == nil {
			add(Error, "element %d references unknown section %q", e.Id, e.Sec)
		}
		if o.GetMat(e.Mat) == nil {
			add(Error, "element %d references unknown material %q", e.Id, e.Mat)
		}
	}
	if len(o.Elems) == 0 {
		add(Error, "model has no elements")
	}

	// loads
	for _, c := range o.Cases {
		for i, l := range c.Loads {
			switch {
			case l.Node >= 0 && l.Elem >= 0:
				add(Error, "case %q load %d targets both a node and an element", c.Name, i)
			case l.Node >= 0:
				if o.GetNode(l.Node) == nil {
					add(Error, "case %q load %d targets missing node %d", c.Name, i, l.Node)
				}
				if l.Dist != DistPoint {
					add(Error, "case %q load %d: nodal loads must be point loads", c.Name, i)
				}
			case l.Elem >= 0:
				if o.GetElem(l.Elem) == nil {
					add(Error, "case %q load %d targets missing element %d", c.Name, i, l.Elem)
				}
				if l.Dist == DistPoint {
					add(Warning, "case %q load %d: point load on element %d is lumped half to each end node", c.Name, i, l.Elem)
				}
			default:
				add(Error, "case %q load %d has no target", c.Name, i)
			}
			if l.Value == 0 {
				add(Info, "case %q load %d has zero magnitude", c.Name, i)
			}
		}
	}

	// combinations
	for _, cb := range o.Combos {
		for name := range cb.Factors {
			if o.GetCase(name) == nil {
				add(Error, "combination %q references unknown load case %q", cb.Name, name)
			}
		}
	}
	return
}
