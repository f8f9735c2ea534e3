// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"log/slog"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/plotstyle/plotting/style"
)

// Plotter creates charts in a consistent [style.Style] and hands
// each one to its [Renderer].
type Plotter struct {

	// Style is the style applied by [NewWithStyle].
	Style *style.Style

	// Renderer receives each finished chart.
	// Defaults to a [FileRenderer] writing into the current directory.
	Renderer Renderer

	// Width and Height are the size of single-plot figures.
	// They default to the style figure size.
	Width, Height vg.Length

	// Stylers are run on every plot just before it is rendered.
	Stylers Stylers
}

// Stylers is a list of functions that modify a plot.
// These are called in the order added.
type Stylers []func(p *plot.Plot)

// Add adds a styling function to the list.
func (st *Stylers) Add(f func(p *plot.Plot)) {
	*st = append(*st, f)
}

// Run runs the list of styling functions on the given plot.
func (st *Stylers) Run(p *plot.Plot) {
	for _, f := range *st {
		f(p)
	}
}

// New returns a new Plotter using the default style, which is
// applied to the process-wide gonum/plot configuration.
func New() (*Plotter, error) {
	return NewWithStyle(style.Default())
}

// NewWithStyle returns a new Plotter using the given style, which is
// applied to the process-wide gonum/plot configuration.
func NewWithStyle(st *style.Style) (*Plotter, error) {
	if err := style.Apply(st); err != nil {
		return nil, err
	}
	w, h := st.Size()
	return &Plotter{Style: st, Renderer: &FileRenderer{}, Width: w, Height: h}, nil
}

// newPlot returns a new plot decorated with the style and axis labels.
func (pl *Plotter) newPlot(xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	pl.Style.Decorate(p)
	setLabels(p, xlabel, ylabel)
	return p
}

// render renders a single plot figure.
func (pl *Plotter) render(name string, p *plot.Plot) error {
	return pl.renderFigure(NewFigure(name, p, pl.Width, pl.Height))
}

func (pl *Plotter) renderFigure(fig *Figure) error {
	for _, row := range fig.Plots {
		for _, p := range row {
			pl.Stylers.Run(p)
		}
	}
	slog.Debug("plotting: rendering", "chart", fig.Name, "rows", fig.Rows(), "cols", fig.Cols())
	return pl.Renderer.Render(fig)
}

func setLabels(p *plot.Plot, xlabel, ylabel string) {
	p.X.Label.Text = xlabel
	style.PlainText(&p.X.Label.TextStyle, xlabel)
	p.Y.Label.Text = ylabel
	style.PlainText(&p.Y.Label.TextStyle, ylabel)
}

// nominal sets the category names as the X axis tick labels.
func nominal(p *plot.Plot, names ...string) {
	if len(names) == 0 {
		return
	}
	// NominalX measures the first name with the tick label handler.
	style.PlainText(&p.X.Tick.Label, names...)
	p.NominalX(names...)
}

// legend adds a legend entry, switching the legend to plain text if needed.
func legend(p *plot.Plot, name string, thumbs ...plot.Thumbnailer) {
	p.Legend.Add(name, thumbs...)
	style.PlainText(&p.Legend.TextStyle, name)
}

// finite returns the values that are not NaN or infinite.
func finite(vals []float64) plotter.Values {
	out := make(plotter.Values, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// finiteXYs returns the points for which both x and y are finite.
func finiteXYs(xs, ys []float64) plotter.XYs {
	out := make(plotter.XYs, 0, len(xs))
	for i, x := range xs {
		y := ys[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		out = append(out, plotter.XY{X: x, Y: y})
	}
	return out
}
