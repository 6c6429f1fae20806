// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the frame analysis engine: DOF management,
// element stiffness with full 3D transformation, global assembly,
// boundary conditions, linear solving, force/stress recovery and modal
// extraction
package fem

import (
	"context"
	"math"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/design"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/inp"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/lin"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/seis"

	"github.com/google/uuid"
)

// AnalysisKind selects what one run computes
type AnalysisKind int

// analysis kinds
const (
	Static  AnalysisKind = iota // displacements, forces, stresses
	Modal                       // natural frequencies and mode shapes
	Seismic                     // static + modal + code seismic demand
)

// SolverKind selects the linear system strategy
type SolverKind int

// solver kinds
const (
	Auto  SolverKind = iota // dense below DenseCutoff equations, CG above
	Dense                   // Gaussian elimination with partial pivoting
	CG                      // sparse Conjugate Gradient
	LU                      // sparse LU decomposition
)

// DenseCutoff is the system size (equations) above which Auto switches
// from dense elimination to the sparse path
const DenseCutoff = 90

// Options configures one analysis run
type Options struct {
	Kind    AnalysisKind // what to compute
	Combo   string       // load combination name; "" = all cases, factor 1
	Solver  SolverKind   // linear solver strategy
	Nmodes  int          // modes to extract; 0 => 3 for modal/seismic runs
	Checks  bool         // run design checks
	Tol     float64      // CG tolerance; 0 => default
	MaxIt   int          // CG iteration cap; 0 => default
	Seismic *seis.Params // site parameters; required for Seismic runs

	// Progress, when set, receives phase notifications (percentage and
	// message). It is called synchronously between phases and must not
	// block; the engine never waits on the caller.
	Progress func(pct float64, msg string)
}

// PerformAnalysis runs one complete analysis of a model and returns an
// immutable Results value. Validation findings are collected and returned
// together; Error-severity findings block the run with a validation
// error. Solver-level failures return Success=false with a diagnostic and
// the best partial result alongside a classified error. Cancelling ctx
// aborts cooperatively between phases: the partial result carries
// Aborted=true and no error is returned, since an aborted run is the
// caller's decision to keep or drop.
func PerformAnalysis(ctx context.Context, m *inp.Model, opts Options) (res *Results, err error) {

	res = &Results{RunId: uuid.NewString()}
	prog := func(pct float64, msg string) {
		if opts.Progress != nil {
			opts.Progress(pct, msg)
		}
	}

	// validation: collect everything, then decide
	prog(0, "validating model")
	res.Issues = m.Validate()
	if inp.HasErrors(res.Issues) {
		res.Diagnostic = "model validation failed"
		return res, newErr(ErrValidation, "model validation failed with %d finding(s)", len(res.Issues))
	}

	// domain
	dom, err := NewDomain(m)
	if err != nil {
		res.Diagnostic = err.Error()
		return res, newErr(ErrValidation, "%v", err)
	}
	res.Summary.TotalWeight = dom.TotalWeight()

	// assembly
	prog(10, "assembling stiffness matrix")
	if err = dom.AssembleK(ctx); err != nil {
		return aborted(res, "assembly cancelled")
	}

	// loads
	prog(30, "building load vector")
	if err = dom.BuildFb(opts.Combo); err != nil {
		res.Diagnostic = err.Error()
		return res, newErr(ErrValidation, "%v", err)
	}

	// static path
	var u []float64
	if opts.Kind == Static || opts.Kind == Seismic {
		prog(40, "solving linear system")
		var solveErr error
		u, solveErr = dom.solve(opts)
		if solveErr != nil {
			res.Diagnostic = solveErr.Error()
			res.Nodes = dom.extractNodes(u)
			return res, solveErr
		}
		if err = ctx.Err(); err != nil {
			return aborted(res, "solve cancelled")
		}

		// recovery
		prog(60, "recovering element forces")
		res.Nodes = dom.extractNodes(u)
		res.Elems = make([]ElemResult, len(dom.Elems))
		for i, e := range dom.Elems {
			if i%cancelCheckEvery == 0 && ctx.Err() != nil {
				return aborted(res, "recovery cancelled")
			}
			res.Elems[i] = dom.recover(e, u)
			if res.Elems[i].Util > res.Summary.MaxUtil {
				res.Summary.MaxUtil = res.Elems[i].Util
			}
		}
		res.Summary.Drifts = dom.storyDrifts(u)

		// design checks
		if opts.Checks {
			prog(70, "running design checks")
			for i, e := range dom.Elems {
				d := design.Demands{
					SigAxial:    math.Abs(res.Elems[i].SigAxial),
					SigBending:  res.Elems[i].SigBending,
					SigCombined: res.Elems[i].SigCombined,
					SigShear:    shearDemand(e, res.Elems[i].Forces),
				}
				res.Checks = append(res.Checks, design.All(e.Id, e.Kind, e.Mat, d)...)
			}
		}
	}

	// modal path
	if opts.Kind == Modal || opts.Kind == Seismic {
		prog(80, "extracting vibration modes")
		nmodes := opts.Nmodes
		if nmodes <= 0 {
			nmodes = 3
		}
		modes, errM := dom.ModalSolve(ctx, nmodes)
		res.Modes = modes
		if errM != nil {
			if ctx.Err() != nil {
				return aborted(res, "modal solve cancelled")
			}
			res.Diagnostic = errM.Error()
			return res, errM
		}
		for _, md := range modes {
			res.Summary.Periods = append(res.Summary.Periods, md.Period)
		}
	}

	// seismic path
	if opts.Kind == Seismic {
		prog(90, "computing seismic demand")
		if opts.Seismic == nil {
			res.Diagnostic = "seismic analysis requires site parameters"
			return res, newErr(ErrValidation, "seismic analysis requires site parameters")
		}
		sp, errS := seis.NewSpectrum(opts.Seismic)
		if errS != nil {
			res.Diagnostic = errS.Error()
			return res, newErr(ErrValidation, "%v", errS)
		}
		T := dom.fundamentalPeriod(res.Modes, m)
		res.Summary.Cs = seis.Cs(sp, opts.Seismic, T)
		res.Summary.BaseShear = res.Summary.Cs * res.Summary.TotalWeight
	}

	prog(100, "done")
	res.Success = true
	return res, nil
}

// CalculateResponseSpectrum samples the design response spectrum for the
// given site parameters at n periods up to tmax seconds
func CalculateResponseSpectrum(p *seis.Params, n int, tmax float64) (T, Sa []float64, err error) {
	sp, err := seis.NewSpectrum(p)
	if err != nil {
		return
	}
	T, Sa = sp.Sample(n, tmax)
	return
}

// CalculateBaseShear computes the design base shear for a total weight
// [N] and fundamental period [s]
func CalculateBaseShear(weight, period float64, p *seis.Params) (float64, error) {
	sp, err := seis.NewSpectrum(p)
	if err != nil {
		return 0, err
	}
	return seis.BaseShear(sp, p, period, weight), nil
}

// solve picks the linear system strategy and runs it
func (o *Domain) solve(opts Options) (u []float64, err error) {

	kind := opts.Solver
	if kind == Auto {
		if o.Ny <= DenseCutoff {
			kind = Dense
		} else {
			kind = CG
		}
	}

	switch kind {
	case Dense:
		u, errD := lin.DenseSolve(o.Kb.ToDense(), o.Fb)
		if errD != nil {
			return u, newErr(ErrSingularMatrix, "%v", errD)
		}
		return u, nil

	case LU:
		lu, errF := lin.Factorize(o.Kb)
		if errF != nil {
			return make([]float64, o.Ny), newErr(ErrSingularMatrix, "%v", errF)
		}
		u, errS := lu.Solve(o.Fb)
		if errS != nil {
			return make([]float64, o.Ny), newErr(ErrSingularMatrix, "%v", errS)
		}
		return u, nil
	}

	// conjugate gradient: the assembled matrix is symmetric
	// positive-definite once boundary conditions are in
	u, _, errC := lin.CG(o.Kb, o.Fb, opts.Tol, opts.MaxIt)
	if errC != nil {
		return u, newErr(ErrConvergence, "%v", errC)
	}
	return u, nil
}

// recover back-computes forces, stresses and the safety verdict of one
// element from the global solution vector
func (o *Domain) recover(e *Frame, u []float64) ElemResult {
	f := e.Forces(u)
	sa, sb, sc := e.Stresses(f)
	r := ElemResult{
		ElemId:      e.Id,
		Forces:      f,
		SigAxial:    sa,
		SigBending:  sb,
		SigCombined: sc,
	}
	r.Allowable = e.Mat.Allowable()
	if r.Allowable > 0 {
		r.Util = sc / r.Allowable
	} else if sc > 0 {
		r.Util = math.Inf(1)
	}
	r.Safe = r.Util <= 1.0
	return r
}

// shearDemand computes the governing average shear stress V/A
func shearDemand(e *Frame, f ElemForces) float64 {
	if e.A <= 0 {
		return 0
	}
	v := math.Max(math.Abs(f.V2), math.Abs(f.V3))
	return v / e.A
}

// fundamentalPeriod picks the period driving the seismic coefficient: the
// first extracted mode when available, otherwise the code approximation
// from the structural height
func (o *Domain) fundamentalPeriod(modes []Mode, m *inp.Model) float64 {
	if len(modes) > 0 {
		return modes[0].Period
	}
	zmin, zmax := math.Inf(1), math.Inf(-1)
	for _, n := range m.Nodes {
		if n.C[2] < zmin {
			zmin = n.C[2]
		}
		if n.C[2] > zmax {
			zmax = n.C[2]
		}
	}
	steel := false
	for _, mt := range m.Mats {
		if mt.Kind == inp.MatSteel {
			steel = true
			break
		}
	}
	return seis.ApproxPeriod(zmax-zmin, steel)
}

// aborted marks a run as cancelled and returns the partial result
func aborted(res *Results, msg string) (*Results, error) {
	res.Aborted = true
	res.Diagnostic = msg
	return res, nil
}
