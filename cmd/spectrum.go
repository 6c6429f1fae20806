// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/out"
	"github.com/Latif080790/APP-STRUKTUR-BLACKBOX-sub009/seis"

	"github.com/spf13/cobra"
)

var (
	specSs     float64
	specS1     float64
	specSite   string
	specR      float64
	specOcc    string
	specParams string
	specNpts   int
	specTmax   float64
	specPlot   string
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Compute a design response spectrum from site parameters",
	Long: `Build the design response spectrum for a site, print the control
points and the sampled Sa(T) curve, and optionally save a plot.

Examples:
  struktur spectrum --ss 1.0 --s1 0.4 --site D
  struktur spectrum --params site.yaml --plot spectrum.png`,
	RunE: runSpectrum,
}

func init() {
	rootCmd.AddCommand(spectrumCmd)
	spectrumCmd.Flags().Float64Var(&specSs, "ss", 0, "Mapped short-period spectral acceleration Ss [g]")
	spectrumCmd.Flags().Float64Var(&specS1, "s1", 0, "Mapped 1-second spectral acceleration S1 [g]")
	spectrumCmd.Flags().StringVar(&specSite, "site", "D", "Site class (A-E)")
	spectrumCmd.Flags().Float64Var(&specR, "r", 8, "Response modification factor R")
	spectrumCmd.Flags().StringVar(&specOcc, "occ", "II", "Occupancy category (I-IV)")
	spectrumCmd.Flags().StringVarP(&specParams, "params", "p", "", "Seismic parameters YAML file (overrides flags)")
	spectrumCmd.Flags().IntVar(&specNpts, "npts", 21, "Number of sample points")
	spectrumCmd.Flags().Float64Var(&specTmax, "tmax", 4.0, "Maximum period sampled [s]")
	spectrumCmd.Flags().StringVar(&specPlot, "plot", "", "Save the spectrum plot to this PNG file")
}

func runSpectrum(cmd *cobra.Command, args []string) error {

	var p *seis.Params
	if specParams != "" {
		var err error
		p, err = seis.LoadParams(specParams)
		if err != nil {
			return err
		}
	} else {
		p = &seis.Params{
			Ss:   specSs,
			S1:   specS1,
			Site: seis.SiteClass(specSite),
			R:    specR,
			Occ:  seis.Occupancy(specOcc),
		}
	}

	sp, err := seis.NewSpectrum(p)
	if err != nil {
		return err
	}

	fmt.Printf("Design response spectrum (site class %s)\n\n", p.Site)
	fmt.Printf("  Sds = %.4f g\n", sp.Sds)
	fmt.Printf("  Sd1 = %.4f g\n", sp.Sd1)
	fmt.Printf("  T0  = %.4f s\n", sp.T0)
	fmt.Printf("  Ts  = %.4f s\n", sp.Ts)
	fmt.Printf("  Tl  = %.4f s\n\n", sp.Tl)

	T, Sa := sp.Sample(specNpts, specTmax)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "T [s]\tSa [g]")
	for i := range T {
		fmt.Fprintf(tw, "%.3f\t%.4f\n", T[i], Sa[i])
	}
	tw.Flush()

	if specPlot != "" {
		if err := out.SaveSpectrumPlot(specPlot, T, Sa); err != nil {
			return err
		}
		fmt.Printf("\nplot saved to %s\n", specPlot)
	}
	return nil
}
