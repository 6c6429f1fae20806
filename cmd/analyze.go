// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/fem"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/inp"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/out"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/seis"

	"github.com/spf13/cobra"
)

var (
	analyzeKind    string
	analyzeCombo   string
	analyzeNmodes  int
	analyzeChecks  bool
	analyzeParams  string
	analyzeVerbose bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <model.json>",
	Short: "Run a static, modal or seismic analysis of a model file",
	Long: `Read a JSON model file, validate it and run the requested analysis.

Examples:
  # static analysis with design checks
  struktur analyze frame.json --checks

  # modal analysis, first 5 modes
  struktur analyze frame.json --kind modal --nmodes 5

  # seismic analysis with site parameters from a YAML file
  struktur analyze frame.json --kind seismic --params site.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeKind, "kind", "k", "static", "Analysis kind: static, modal or seismic")
	analyzeCmd.Flags().StringVarP(&analyzeCombo, "combo", "c", "", "Load combination name (default: all cases, factor 1)")
	analyzeCmd.Flags().IntVarP(&analyzeNmodes, "nmodes", "n", 0, "Number of modes to extract")
	analyzeCmd.Flags().BoolVar(&analyzeChecks, "checks", false, "Run design checks")
	analyzeCmd.Flags().StringVarP(&analyzeParams, "params", "p", "", "Seismic parameters YAML file (seismic runs)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Show progress messages")
}

func runAnalyze(cmd *cobra.Command, args []string) error {

	m, err := inp.ReadModel(args[0])
	if err != nil {
		return err
	}

	opts := fem.Options{
		Combo:  analyzeCombo,
		Nmodes: analyzeNmodes,
		Checks: analyzeChecks,
	}
	switch analyzeKind {
	case "static":
		opts.Kind = fem.Static
	case "modal":
		opts.Kind = fem.Modal
	case "seismic":
		opts.Kind = fem.Seismic
	default:
		return fmt.Errorf("unknown analysis kind %q", analyzeKind)
	}
	if analyzeParams != "" {
		p, errP := seis.LoadParams(analyzeParams)
		if errP != nil {
			return errP
		}
		opts.Seismic = p
	}
	if analyzeVerbose {
		opts.Progress = func(pct float64, msg string) {
			fmt.Printf("  [%3.0f%%] %s\n", pct, msg)
		}
	}

	res, err := fem.PerformAnalysis(context.Background(), m, opts)
	out.WriteReport(os.Stdout, res, m)
	if err != nil && fem.KindOf(err) == fem.ErrValidation {
		os.Exit(1)
	}
	return err
}
