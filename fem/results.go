// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/design"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/inp"
)

// NodeResult holds the solved displacements and rotations of one node
type NodeResult struct {
	NodeId int       // node id
	U      []float64 // [6] ux,uy,uz,rx,ry,rz
}

// ElemResult holds the recovered forces, stresses and safety verdict of
// one element
type ElemResult struct {
	ElemId      int        // element id
	Forces      ElemForces // internal forces in the local system
	SigAxial    float64    // axial stress N/A
	SigBending  float64    // governing bending stress M/S
	SigCombined float64    // |axial| + bending (simplified interaction)
	Allowable   float64    // allowable stress from the material
	Util        float64    // combined / allowable
	Safe        bool       // Util ≤ 1
}

// Mode holds one natural vibration mode
type Mode struct {
	Omega  float64   // circular frequency [rad/s]
	Freq   float64   // frequency [Hz]
	Period float64   // period [s]
	Shape  []float64 // global mode shape vector [Ny], M-normalized
}

// LevelDrift holds the lateral drift of one story
type LevelDrift struct {
	Elev   float64 // level elevation [m]
	Height float64 // story height below this level [m]
	Drift  float64 // inter-story drift ratio
}

// Summary holds the per-run global figures
type Summary struct {
	TotalWeight float64      // total seismic weight [N]
	Periods     []float64    // natural periods, fundamental first [s]
	Cs          float64      // seismic response coefficient (seismic runs)
	BaseShear   float64      // design base shear [N] (seismic runs)
	Drifts      []LevelDrift // inter-story drift ratios, bottom-up
	MaxUtil     float64      // worst element utilization
}

// Results is the immutable product of one analysis run. Each run creates
// a fresh Results value; the engine never mutates a previous one.
type Results struct {
	RunId      string         // unique id of this run
	Success    bool           // whether the requested analysis completed
	Aborted    bool           // whether the run was cancelled mid-way
	Diagnostic string         // failure/abort explanation, empty on success
	Issues     []inp.Issue    // collected validation findings
	Nodes      []NodeResult   // per-node displacements (static runs)
	Elems      []ElemResult   // per-element forces/stresses (static runs)
	Checks     []design.Check // design check records (when requested)
	Modes      []Mode         // vibration modes (modal/seismic runs)
	Summary    Summary        // global figures
}

// extractNodes splits the global solution vector into per-node results in
// the canonical node order
func (o *Domain) extractNodes(u []float64) []NodeResult {
	res := make([]NodeResult, len(o.Dofs.NodeIds))
	for p, id := range o.Dofs.NodeIds {
		v := make([]float64, NdofPerNode)
		copy(v, u[NdofPerNode*p:NdofPerNode*(p+1)])
		res[p] = NodeResult{NodeId: id, U: v}
	}
	return res
}

// levelTol groups node elevations within this tolerance into one story
const levelTol = 1e-6

// storyDrifts groups nodes by elevation (global Z) and computes the
// inter-story drift ratio: difference of the largest lateral displacement
// between adjacent levels divided by the story height
func (o *Domain) storyDrifts(u []float64) []LevelDrift {

	// collect unique elevations bottom-up
	var elevs []float64
	for _, n := range o.Model.Nodes {
		z := n.C[2]
		found := false
		for _, e := range elevs {
			if math.Abs(e-z) < levelTol {
				found = true
				break
			}
		}
		if !found {
			elevs = append(elevs, z)
		}
	}
	sort.Float64s(elevs)
	if len(elevs) < 2 {
		return nil
	}

	// largest lateral displacement per level
	lat := make([]float64, len(elevs))
	for p, n := range o.Model.Nodes {
		z := n.C[2]
		lvl := -1
		for i, e := range elevs {
			if math.Abs(e-z) < levelTol {
				lvl = i
				break
			}
		}
		ux := u[NdofPerNode*p+UX]
		uy := u[NdofPerNode*p+UY]
		if d := math.Sqrt(ux*ux + uy*uy); d > lat[lvl] {
			lat[lvl] = d
		}
	}

	// drift ratios between adjacent levels
	drifts := make([]LevelDrift, 0, len(elevs)-1)
	for i := 1; i < len(elevs); i++ {
		h := elevs[i] - elevs[i-1]
		d := LevelDrift{Elev: elevs[i], Height: h}
		if h > 0 {
			d.Drift = math.Abs(lat[i]-lat[i-1]) / h
		}
		drifts = append(drifts, d)
	}
	return drifts
}
