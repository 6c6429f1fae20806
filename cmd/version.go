// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of struktur",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("struktur v%s\n", Version)
		fmt.Println("3D Frame Structural Analysis Engine")
		fmt.Println("Design checks per SNI 2847:2019, SNI 1729:2020 and SNI 7973:2013")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
