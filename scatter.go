// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotstyle/plotting/frame"
)

// MatrixCellSize is the width and height of each plot in a scatter matrix.
const MatrixCellSize = 2.5 * vg.Inch

// Scatter renders a scatter plot of column y against column x.
// If hue is not empty, the points of each category of the hue column
// are drawn in successive palette colors, with a legend.
func (pl *Plotter) Scatter(dt *frame.Table, x, y, hue string) error {
	p, err := pl.scatterPlot(dt, x, y, hue)
	if err != nil {
		return fmt.Errorf("plotting.Scatter: %w", err)
	}
	setLabels(p, x, y)
	return pl.render("scatter", p)
}

func (pl *Plotter) scatterPlot(dt *frame.Table, x, y, hue string) (*plot.Plot, error) {
	xs, err := dt.Floats(x)
	if err != nil {
		return nil, err
	}
	ys, err := dt.Floats(y)
	if err != nil {
		return nil, err
	}
	p := pl.newPlot("", "")
	if hue == "" {
		s, err := pl.scatter(finiteXYs(xs, ys), 0)
		if err != nil {
			return nil, err
		}
		p.Add(s)
		return p, nil
	}
	cats, rows, err := dt.Categories(hue)
	if err != nil {
		return nil, err
	}
	added := 0
	for i, cat := range cats {
		cx, _ := dt.Select(x, rows[cat])
		cy, _ := dt.Select(y, rows[cat])
		xys := finiteXYs(cx, cy)
		if len(xys) == 0 {
			continue
		}
		s, err := pl.scatter(xys, i)
		if err != nil {
			return nil, err
		}
		p.Add(s)
		legend(p, cat, s)
		added++
	}
	if added == 0 {
		return nil, fmt.Errorf("columns %q and %q have no finite points", x, y)
	}
	return p, nil
}

func (pl *Plotter) scatter(xys plotter.XYs, clr int) (*plotter.Scatter, error) {
	if len(xys) == 0 {
		return nil, fmt.Errorf("no finite points")
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = pl.Style.Fill(clr)
	s.GlyphStyle.Radius = vg.Points(pl.Style.PointRadius)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

// ScatterMatrix renders a grid of plots of every pair of the given
// numeric columns: histograms on the diagonal and scatter plots of the
// row column against the column column elsewhere. If no columns are
// given, all numeric columns are used.
func (pl *Plotter) ScatterMatrix(dt *frame.Table, columns ...string) error {
	if len(columns) == 0 {
		columns = dt.NumericColumns()
	}
	if len(columns) == 0 {
		return fmt.Errorf("plotting.ScatterMatrix: %w: no numeric columns", frame.ErrNotNumeric)
	}
	n := len(columns)
	plots := make([][]*plot.Plot, n)
	for j, ycol := range columns {
		plots[j] = make([]*plot.Plot, n)
		for i, xcol := range columns {
			var p *plot.Plot
			var err error
			if i == j {
				p, err = pl.histPlot(dt, xcol, 0, 0)
			} else {
				p, err = pl.scatterPlot(dt, xcol, ycol, "")
			}
			if err != nil {
				return fmt.Errorf("plotting.ScatterMatrix: %w", err)
			}
			var xl, yl string
			if j == n-1 {
				xl = xcol
			}
			if i == 0 {
				yl = ycol
			}
			setLabels(p, xl, yl)
			plots[j][i] = p
		}
	}
	sz := MatrixCellSize * vg.Length(n)
	return pl.renderFigure(NewGridFigure("matrix", plots, sz, sz))
}
