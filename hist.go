// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/plotstyle/plotting/frame"
)

// DefaultBins is the number of histogram bins used when none is given.
const DefaultBins = 10

// Hist renders a histogram of the given numeric column.
// If bins <= 0, [DefaultBins] is used. NaN values are skipped.
func (pl *Plotter) Hist(dt *frame.Table, column string, bins int) error {
	p, err := pl.histPlot(dt, column, bins, 0)
	if err != nil {
		return fmt.Errorf("plotting.Hist: %w", err)
	}
	setLabels(p, column, "Count")
	return pl.render("hist", p)
}

// histPlot returns a histogram plot without axis labels,
// filled with the given palette color.
func (pl *Plotter) histPlot(dt *frame.Table, column string, bins, clr int) (*plot.Plot, error) {
	vals, err := dt.Floats(column)
	if err != nil {
		return nil, err
	}
	vs := finite(vals)
	if len(vs) == 0 {
		return nil, fmt.Errorf("column %q has no finite values", column)
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	var h *plotter.Histogram
	if lo, hi := floats.Min(vs), floats.Max(vs); lo == hi {
		// a single bin of unit width centered on the constant value
		h = &plotter.Histogram{
			Bins:  []plotter.HistogramBin{{Min: lo - 0.5, Max: hi + 0.5, Weight: float64(len(vs))}},
			Width: 1,
		}
	} else {
		h, err = plotter.NewHist(vs, bins)
		if err != nil {
			return nil, err
		}
	}
	h.FillColor = pl.Style.Fill(clr)
	h.LineStyle.Color = color.White
	h.LineStyle.Width = vg.Points(pl.Style.AxisWidth)
	p := pl.newPlot("", "")
	p.Add(h)
	return p, nil
}
