// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out formats analysis results for the command line: tabulated
// reports and response-spectrum plots
package out

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/fem"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/inp"
)

// WriteReport prints a human-readable report of one analysis run
func WriteReport(w io.Writer, res *fem.Results, m *inp.Model) {

	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     STRUCTURAL ANALYSIS — %s\n", m.Desc)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  run %s\n\n", res.RunId)

	// validation findings
	if len(res.Issues) > 0 {
		fmt.Fprintln(w, "VALIDATION:")
		fmt.Fprintln(w, "───────────────────────────────────────────────────────────────")
		for _, is := range res.Issues {
			fmt.Fprintf(w, "  %s\n", is)
		}
		fmt.Fprintln(w)
	}
	if !res.Success {
		status := "FAILED"
		if res.Aborted {
			status = "ABORTED"
		}
		fmt.Fprintf(w, "STATUS: %s — %s\n", status, res.Diagnostic)
		return
	}

	// nodal displacements
	if len(res.Nodes) > 0 {
		fmt.Fprintln(w, "NODAL DISPLACEMENTS:")
		fmt.Fprintln(w, "───────────────────────────────────────────────────────────────")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  node\tux [m]\tuy [m]\tuz [m]\trx [rad]\try [rad]\trz [rad]")
		for _, n := range res.Nodes {
			fmt.Fprintf(tw, "  %d\t%.6e\t%.6e\t%.6e\t%.6e\t%.6e\t%.6e\n",
				n.NodeId, n.U[0], n.U[1], n.U[2], n.U[3], n.U[4], n.U[5])
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	// element forces
	if len(res.Elems) > 0 {
		fmt.Fprintln(w, "ELEMENT FORCES AND STRESSES:")
		fmt.Fprintln(w, "───────────────────────────────────────────────────────────────")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  elem\tN [N]\tV2 [N]\tV3 [N]\tT [N·m]\tσ_comb [Pa]\tutil\tsafe")
		for _, e := range res.Elems {
			safe := "✓"
			if !e.Safe {
				safe = "✗"
			}
			fmt.Fprintf(tw, "  %d\t%.4e\t%.4e\t%.4e\t%.4e\t%.4e\t%.3f\t%s\n",
				e.ElemId, e.Forces.N, e.Forces.V2, e.Forces.V3, e.Forces.Tq,
				e.SigCombined, e.Util, safe)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	// design checks
	if len(res.Checks) > 0 {
		fmt.Fprintln(w, "DESIGN CHECKS:")
		fmt.Fprintln(w, "───────────────────────────────────────────────────────────────")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  elem\tcheck\tratio\tdemand [Pa]\tcapacity [Pa]\tstatus\tref")
		for _, c := range res.Checks {
			if !c.Applicable {
				continue
			}
			status := "PASS"
			if !c.Pass {
				status = "FAIL"
			}
			fmt.Fprintf(tw, "  %d\t%s\t%.3f\t%.4e\t%.4e\t%s\t%s\n",
				c.ElemId, c.Type, c.Ratio, c.Demand, c.Capacity, status, c.CodeRef)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	// modes
	if len(res.Modes) > 0 {
		fmt.Fprintln(w, "VIBRATION MODES:")
		fmt.Fprintln(w, "───────────────────────────────────────────────────────────────")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  mode\tω [rad/s]\tf [Hz]\tT [s]")
		for i, md := range res.Modes {
			fmt.Fprintf(tw, "  %d\t%.4f\t%.4f\t%.4f\n", i+1, md.Omega, md.Freq, md.Period)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	// summary
	fmt.Fprintln(w, "SUMMARY:")
	fmt.Fprintln(w, "───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Total weight:\t%.4e N\n", res.Summary.TotalWeight)
	if len(res.Summary.Periods) > 0 {
		fmt.Fprintf(tw, "  Fundamental period:\t%.4f s\n", res.Summary.Periods[0])
	}
	if res.Summary.BaseShear > 0 {
		fmt.Fprintf(tw, "  Seismic coefficient Cs:\t%.4f\n", res.Summary.Cs)
		fmt.Fprintf(tw, "  Base shear:\t%.4e N\n", res.Summary.BaseShear)
	}
	fmt.Fprintf(tw, "  Max utilization:\t%.3f\n", res.Summary.MaxUtil)
	tw.Flush()
	for _, d := range res.Summary.Drifts {
		fmt.Fprintf(w, "  drift @ z=%.2f m: %.5f\n", d.Elev, d.Drift)
	}
	fmt.Fprintln(w)
}
