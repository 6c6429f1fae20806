// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveSpectrumPlot exports a response-spectrum curve to an image file
// (format chosen by extension: .png, .pdf, .svg)
func SaveSpectrumPlot(filename string, T, Sa []float64) error {
	p := plot.New()
	p.Title.Text = "Design Response Spectrum"
	p.X.Label.Text = "Period T (s)"
	p.Y.Label.Text = "Sa (g)"

	pts := make(plotter.XYs, len(T))
	for i := range T {
		pts[i] = plotter.XY{X: T[i], Y: Sa[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 178, B: 30, A: 255}
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
