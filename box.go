// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/plotstyle/plotting/frame"
	"github.com/plotstyle/plotting/palette"
)

const (
	// BoxWidth is the width of each box in a box plot.
	BoxWidth = 15 * vg.Millimeter

	// boxSaturation is the proportion of saturation kept for box fills.
	boxSaturation = 0.75
)

// Box renders box plots of the numeric column y, one box for each
// category of column x in order of first appearance. If x is empty,
// a single box of all values of y is drawn.
func (pl *Plotter) Box(dt *frame.Table, x, y string) error {
	vals, err := dt.Floats(y)
	if err != nil {
		return fmt.Errorf("plotting.Box: %w", err)
	}
	cats := []string{y}
	groups := [][]float64{vals}
	if x != "" {
		var rows map[string][]int
		cats, rows, err = dt.Categories(x)
		if err != nil {
			return fmt.Errorf("plotting.Box: %w", err)
		}
		groups = make([][]float64, len(cats))
		for i, cat := range cats {
			groups[i], _ = dt.Select(y, rows[cat])
		}
	}
	p := pl.newPlot(x, y)
	for i, g := range groups {
		vs := finite(g)
		if len(vs) == 0 {
			return fmt.Errorf("plotting.Box: category %q of %q has no finite values", cats[i], y)
		}
		b, err := plotter.NewBoxPlot(BoxWidth, float64(i), vs)
		if err != nil {
			return fmt.Errorf("plotting.Box: %w", err)
		}
		b.FillColor = palette.Desaturate(pl.Style.Color(i), boxSaturation)
		b.BoxStyle.Width = vg.Points(pl.Style.AxisWidth)
		b.WhiskerStyle.Width = vg.Points(pl.Style.AxisWidth)
		b.MedianStyle.Width = vg.Points(pl.Style.AxisWidth) * 2
		p.Add(b)
	}
	nominal(p, cats...)
	return pl.render("box", p)
}
