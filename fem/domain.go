// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/inp"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/lin"

	"github.com/cpmech/gosl/chk"
)

// cancelCheckEvery is how many elements are processed between cooperative
// cancellation checks during assembly loops
const cancelCheckEvery = 64

// Domain holds the elements, equation numbering and assembled matrices of
// one analysis run. A Domain is created per call; the engine keeps no
// global state between runs.
type Domain struct {

	// input
	Model *inp.Model // the structural model (read-only here)
	Dofs  *DofMap    // canonical equation numbering
	Elems []*Frame   // one frame element per model element
	Ny    int        // number of equations

	// assembled system
	Kb *lin.CRS  // global stiffness with boundary conditions applied
	Mb []float64 // lumped global mass diagonal (restrained entries zeroed)
	Fb []float64 // global load vector (restrained entries zeroed)
}

// NewDomain allocates the elements of a model. The model must have passed
// validation; element-level inconsistencies still return errors.
func NewDomain(m *inp.Model) (o *Domain, err error) {
	o = &Domain{Model: m, Dofs: NewDofMap(m)}
	o.Ny = o.Dofs.Ny
	o.Elems = make([]*Frame, len(m.Elems))
	for i, e := range m.Elems {
		o.Elems[i], err = NewFrame(e, m, o.Dofs)
		if err != nil {
			return nil, err
		}
	}
	return
}

// AssembleK builds the global stiffness matrix by scatter-adding each
// element's 12×12 global block, applying boundary conditions on the fly:
// rows and columns of restrained equations are left empty and their
// diagonal set to 1, so a zeroed load entry yields zero displacement.
// Elements sharing a node accumulate additively at shared positions.
func (o *Domain) AssembleK(ctx context.Context) (err error) {

	rest := o.Dofs.Restrained
	coo := lin.NewCoo(o.Ny, o.Ny, len(o.Elems)*144+o.Ny)
	for n, e := range o.Elems {
		if n%cancelCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return
			}
		}
		for i, I := range e.Umap {
			if rest[I] {
				continue
			}
			for j, J := range e.Umap {
				if rest[J] {
					continue
				}
				coo.Put(I, J, e.K[i][j])
			}
		}
	}
	for eq, r := range rest {
		if r {
			coo.Put(eq, eq, 1.0)
		}
	}
	o.Kb = coo.ToCRS()
	return
}

// AssembleM builds the lumped global mass diagonal: each element
// contributes ρ·A·L/2 to the three translational DOFs of each end node.
// Rotational inertia is neglected (documented simplification), and
// restrained entries are zeroed so the modal matrices stay consistent
// with the stiffness boundary conditions.
func (o *Domain) AssembleM() {
	o.Mb = make([]float64, o.Ny)
	for _, e := range o.Elems {
		half := e.Mass() / 2.0
		for n := 0; n < 2; n++ {
			for c := UX; c <= UZ; c++ {
				o.Mb[e.Umap[c+n*NdofPerNode]] += half
			}
		}
	}
	for eq, r := range o.Dofs.Restrained {
		if r {
			o.Mb[eq] = 0
		}
	}
}

// TotalWeight computes the total seismic weight W = Σ ρ·A·L·g
func (o *Domain) TotalWeight() (w float64) {
	for _, e := range o.Elems {
		w += e.Mass() * Gravity
	}
	return
}

// Gravity is the gravitational acceleration [m/s²]
const Gravity = 9.81

// BuildFb assembles the global load vector for one load combination.
// comboName == "" applies every load case with factor 1. Directly applied
// nodal forces (Node.F) always enter with factor 1. Restrained entries are
// zeroed to match the stiffness boundary conditions.
func (o *Domain) BuildFb(comboName string) (err error) {

	o.Fb = make([]float64, o.Ny)
	m := o.Model

	// factors per case
	factors := make(map[string]float64)
	if comboName == "" {
		for _, c := range m.Cases {
			factors[c.Name] = 1.0
		}
	} else {
		found := false
		for _, cb := range m.Combos {
			if cb.Name == comboName {
				factors = cb.Factors
				found = true
				break
			}
		}
		if !found {
			return chk.Err("unknown load combination %q", comboName)
		}
	}

	// nodal forces applied directly on nodes
	for _, n := range m.Nodes {
		if n.F == nil {
			continue
		}
		for c, v := range n.F {
			o.Fb[o.Dofs.Eq(n.Id, c)] += v
		}
	}

	// loads per case; iterate model order (not map order) so the
	// floating-point accumulation sequence is canonical
	for _, c := range m.Cases {
		f, ok := factors[c.Name]
		if !ok || f == 0 {
			continue
		}
		for _, l := range c.Loads {
			if err = o.addLoad(l, f); err != nil {
				return
			}
		}
	}

	// boundary conditions
	for eq, r := range o.Dofs.Restrained {
		if r {
			o.Fb[eq] = 0
		}
	}
	return
}

// addLoad scatters one load, scaled by f, into the global vector.
// Element loads are lumped to the end nodes with statically-equivalent
// rules: uniform intensities split half-and-half, linear ramps put 1/3 of
// the resultant at the start node and 2/3 at the end node. This is a
// documented approximation; fixed-end moments are not generated.
func (o *Domain) addLoad(l *inp.Load, f float64) error {

	// nodal point load
	if l.Node >= 0 {
		eq := o.Dofs.Eq(l.Node, int(l.Dir))
		if eq < 0 {
			return chk.Err("load targets missing node %d", l.Node)
		}
		o.Fb[eq] += f * l.Value
		return nil
	}

	// element load
	e := o.Model.GetElem(l.Elem)
	if e == nil {
		return chk.Err("load targets missing element %d", l.Elem)
	}
	length := o.Model.ElemLength(e)
	var w0, w1 float64 // forces at start and end nodes
	switch l.Dist {
	case inp.DistUniform:
		total := l.Value * length
		w0, w1 = total/2.0, total/2.0
	case inp.DistLinear:
		total := l.Value * length / 2.0
		w0, w1 = total/3.0, 2.0*total/3.0
	default:
		// a point load on an element has no position information here;
		// lump half to each end
		w0, w1 = l.Value/2.0, l.Value/2.0
	}
	eq0 := o.Dofs.Eq(e.Verts[0], int(l.Dir))
	eq1 := o.Dofs.Eq(e.Verts[1], int(l.Dir))
	if eq0 < 0 || eq1 < 0 {
		return chk.Err("load on element %d references a missing node", l.Elem)
	}
	o.Fb[eq0] += f * w0
	o.Fb[eq1] += f * w1
	return nil
}
