// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the struktur command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "struktur",
	Short: "3D frame structural analysis",
	Long: `struktur - finite-element analysis for building frames

Computes displacements, internal forces, natural frequencies and
code-based seismic demand for 3D frames of beams, columns and braces.

Commands:
  analyze   run a static/modal/seismic analysis of a JSON model file
  spectrum  compute a design response spectrum from site parameters
  version   print the version`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
