// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"github.com/plotstyle/plotting/frame"
	"github.com/plotstyle/plotting/palette"
	"github.com/plotstyle/plotting/style"
)

const (
	// heatmapColors is the number of colors in the heatmap color map.
	heatmapColors = 255

	// maxRowTicks is the maximum number of labeled rows on a heatmap.
	maxRowTicks = 20
)

// matrixGrid is a [plotter.GridXYZ] over a matrix, with row 0 of the
// matrix drawn at the top, as for a table.
type matrixGrid struct {
	m mat.Matrix
}

func (g matrixGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g matrixGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g matrixGrid) X(c int) float64 { return float64(c) }
func (g matrixGrid) Y(r int) float64 { return float64(r) }

// Heatmap renders the values of the given numeric columns as a heatmap,
// with one cell per table row and column, using a diverging color map.
// If no columns are given, all numeric columns are used.
func (pl *Plotter) Heatmap(dt *frame.Table, columns ...string) error {
	if len(columns) == 0 {
		columns = dt.NumericColumns()
	}
	m, err := dt.Matrix(columns...)
	if err != nil {
		return fmt.Errorf("plotting.Heatmap: %w", err)
	}
	rows, _ := m.Dims()
	rowNames := make([]string, rows)
	for i := range rowNames {
		rowNames[i] = strconv.Itoa(i)
	}
	p, _ := pl.heatmapPlot(m, columns, rowNames)
	return pl.render("heatmap", p)
}

// Corr renders the Pearson correlation matrix of the given numeric
// columns as a heatmap over [-1, 1], annotated with the coefficients.
// If no columns are given, all numeric columns are used.
func (pl *Plotter) Corr(dt *frame.Table, columns ...string) error {
	if len(columns) == 0 {
		columns = dt.NumericColumns()
	}
	m, err := dt.Matrix(columns...)
	if err != nil {
		return fmt.Errorf("plotting.Corr: %w", err)
	}
	corr := &mat.SymDense{}
	stat.CorrelationMatrix(corr, m, nil)
	p, hm := pl.heatmapPlot(corr, columns, columns)
	hm.Min = -1
	hm.Max = 1

	n := len(columns)
	lbls := plotter.XYLabels{XYs: make(plotter.XYs, 0, n*n), Labels: make([]string, 0, n*n)}
	g := matrixGrid{corr}
	for r := range n {
		for c := range n {
			lbls.XYs = append(lbls.XYs, plotter.XY{X: g.X(c), Y: g.Y(r)})
			lbls.Labels = append(lbls.Labels, fmt.Sprintf("%.2f", g.Z(c, r)))
		}
	}
	ls, err := plotter.NewLabels(lbls)
	if err != nil {
		return fmt.Errorf("plotting.Corr: %w", err)
	}
	for i := range ls.TextStyle {
		ls.TextStyle[i].Font = pl.Style.Font(pl.Style.TickSize)
		ls.TextStyle[i].XAlign = text.XCenter
		ls.TextStyle[i].YAlign = text.YCenter
		ls.TextStyle[i].Color = color.Black
	}
	p.Add(ls)
	return pl.render("corr", p)
}

// heatmapPlot returns a plot of the matrix, with the given column names
// along X and row names along Y, top to bottom, and the heatmap itself.
func (pl *Plotter) heatmapPlot(m mat.Matrix, colNames, rowNames []string) (*plot.Plot, *plotter.HeatMap) {
	p := plot.New()
	st := pl.Style.Clone()
	st.Grid = false
	st.Decorate(p)
	hm := plotter.NewHeatMap(matrixGrid{m}, palette.Diverging(heatmapColors))
	hm.NaN = color.Transparent
	hm.Min, hm.Max = finiteRange(m)
	p.Add(hm)

	xt := make([]plot.Tick, len(colNames))
	for c, nm := range colNames {
		xt[c] = plot.Tick{Value: float64(c), Label: nm}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xt)
	style.PlainText(&p.X.Tick.Label, colNames...)

	rows := len(rowNames)
	step := max(1, (rows+maxRowTicks-1)/maxRowTicks)
	var yt []plot.Tick
	for r := 0; r < rows; r += step {
		yt = append(yt, plot.Tick{Value: float64(rows - 1 - r), Label: rowNames[r]})
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yt)
	style.PlainText(&p.Y.Tick.Label, rowNames...)
	return p, hm
}

// finiteRange returns the range of the finite values of m, widened to
// a unit range around a constant value and [0, 1] when there are none.
func finiteRange(m mat.Matrix) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	r, c := m.Dims()
	for i := range r {
		for j := range c {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	switch {
	case lo > hi:
		return 0, 1
	case lo == hi:
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}
