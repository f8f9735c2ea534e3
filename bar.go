// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/plotstyle/plotting/frame"
)

// BarWidth is the width of each bar in a bar plot.
const BarWidth = 20 * vg.Millimeter

// errorPoints combines points with their Y errors, for [plotter.NewYErrorBars].
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Bar renders one bar per category of column x, in order of first
// appearance, with height equal to the mean of the numeric column y over
// the rows of that category. Categories with more than one row get an
// error bar of one standard deviation.
func (pl *Plotter) Bar(dt *frame.Table, x, y string) error {
	if _, err := dt.Floats(y); err != nil {
		return fmt.Errorf("plotting.Bar: %w", err)
	}
	cats, rows, err := dt.Categories(x)
	if err != nil {
		return fmt.Errorf("plotting.Bar: %w", err)
	}
	p := pl.newPlot(x, y)
	var errs errorPoints
	for i, cat := range cats {
		sel, _ := dt.Select(y, rows[cat])
		vs := finite(sel)
		if len(vs) == 0 {
			return fmt.Errorf("plotting.Bar: category %q of %q has no finite values", cat, y)
		}
		mean, std := stat.MeanStdDev(vs, nil)
		bc, err := plotter.NewBarChart(plotter.Values{mean}, BarWidth)
		if err != nil {
			return fmt.Errorf("plotting.Bar: %w", err)
		}
		bc.XMin = float64(i)
		bc.Color = pl.Style.Fill(i)
		bc.LineStyle.Width = 0
		p.Add(bc)
		if len(vs) > 1 {
			errs.XYs = append(errs.XYs, plotter.XY{X: float64(i), Y: mean})
			errs.YErrors = append(errs.YErrors, struct{ Low, High float64 }{std, std})
		}
	}
	if len(errs.XYs) > 0 {
		eb, err := plotter.NewYErrorBars(errs)
		if err != nil {
			return fmt.Errorf("plotting.Bar: %w", err)
		}
		eb.LineStyle.Color = color.Gray{Y: 64}
		eb.LineStyle.Width = vg.Points(pl.Style.LineWidth) / 2
		p.Add(eb)
	}
	nominal(p, cats...)
	return pl.render("bar", p)
}
