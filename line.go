// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/plotstyle/plotting/frame"
)

// Line renders one line per y column against the numeric x column, in
// successive palette colors, with points sorted by x. If no y columns
// are given, all other numeric columns are used. A legend is added
// when there is more than one line.
func (pl *Plotter) Line(dt *frame.Table, x string, ys ...string) error {
	xs, err := dt.Floats(x)
	if err != nil {
		return fmt.Errorf("plotting.Line: %w", err)
	}
	if len(ys) == 0 {
		for _, nm := range dt.NumericColumns() {
			if nm != x {
				ys = append(ys, nm)
			}
		}
	}
	if len(ys) == 0 {
		return fmt.Errorf("plotting.Line: %w: no y columns", frame.ErrNotNumeric)
	}
	ylabel := ""
	if len(ys) == 1 {
		ylabel = ys[0]
	}
	p := pl.newPlot(x, ylabel)
	for i, y := range ys {
		yv, err := dt.Floats(y)
		if err != nil {
			return fmt.Errorf("plotting.Line: %w", err)
		}
		xys := finiteXYs(xs, yv)
		if len(xys) == 0 {
			return fmt.Errorf("plotting.Line: columns %q and %q have no finite points", x, y)
		}
		slices.SortStableFunc(xys, func(a, b plotter.XY) int { return cmp.Compare(a.X, b.X) })
		l, err := pl.line(xys, i)
		if err != nil {
			return fmt.Errorf("plotting.Line: %w", err)
		}
		p.Add(l)
		if len(ys) > 1 {
			legend(p, y, l)
		}
	}
	return pl.render("line", p)
}

func (pl *Plotter) line(xys plotter.XYs, clr int) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = pl.Style.Color(clr)
	l.LineStyle.Width = vg.Points(pl.Style.LineWidth)
	return l, nil
}

// SinusoidalLines renders sine curves shifted evenly over one period,
// one for each color of the style color cycle, as a preview of the style.
func (pl *Plotter) SinusoidalLines() error {
	const n = 50
	period := 2 * math.Pi
	xs := floats.Span(make([]float64, n), 0, period)
	ncolors := len(pl.Style.Colors())
	p := pl.newPlot("$x$", `$\sin(x)$`)
	for k := range ncolors {
		shift := period * float64(k) / float64(ncolors)
		xys := make(plotter.XYs, n)
		for i, x := range xs {
			xys[i] = plotter.XY{X: x, Y: math.Sin(x + shift)}
		}
		l, err := pl.line(xys, k)
		if err != nil {
			return fmt.Errorf("plotting.SinusoidalLines: %w", err)
		}
		p.Add(l)
	}
	p.X.Min = xs[0]
	p.X.Max = xs[n-1]
	return pl.render("sine", p)
}
