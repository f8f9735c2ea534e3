// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is one rendered unit: either a single plot or a grid of
// plots aligned on a common canvas.
type Figure struct {

	// Name is the kind of chart, such as "hist", used in logging.
	Name string

	// Plots has the rows of plots. A single plot is a 1x1 grid.
	Plots [][]*plot.Plot

	// Width and Height are the size of the whole figure.
	Width, Height vg.Length
}

// NewFigure returns a Figure with a single plot.
func NewFigure(name string, p *plot.Plot, w, h vg.Length) *Figure {
	return &Figure{Name: name, Plots: [][]*plot.Plot{{p}}, Width: w, Height: h}
}

// NewGridFigure returns a Figure with the given rows of plots.
// All rows must have the same length.
func NewGridFigure(name string, plots [][]*plot.Plot, w, h vg.Length) *Figure {
	return &Figure{Name: name, Plots: plots, Width: w, Height: h}
}

// Rows returns the number of rows of plots.
func (f *Figure) Rows() int { return len(f.Plots) }

// Cols returns the number of columns of plots.
func (f *Figure) Cols() int {
	if len(f.Plots) == 0 {
		return 0
	}
	return len(f.Plots[0])
}

// Plot returns the plot at the given row and column.
func (f *Figure) Plot(row, col int) *plot.Plot { return f.Plots[row][col] }

// Draw draws the figure onto the given canvas. Grids are laid out with
// [plot.Align], so the data areas of the plots line up.
func (f *Figure) Draw(dc draw.Canvas) {
	if f.Rows() == 1 && f.Cols() == 1 {
		f.Plots[0][0].Draw(dc)
		return
	}
	tiles := draw.Tiles{
		Rows:      f.Rows(),
		Cols:      f.Cols(),
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	cs := plot.Align(f.Plots, tiles, dc)
	for j, row := range f.Plots {
		for i, p := range row {
			if p != nil {
				p.Draw(cs[j][i])
			}
		}
	}
}

// WriterTo returns an [io.WriterTo] that writes the figure in the given
// format: eps, jpg, jpeg, pdf, png, svg, tex, tif or tiff.
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	if f.Rows() == 0 || f.Cols() == 0 {
		return nil, fmt.Errorf("plotting.Figure %s: no plots", f.Name)
	}
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return nil, err
	}
	f.Draw(draw.New(c))
	return c, nil
}

// Save writes the figure to the named file, with the format
// given by the file extension.
func (f *Figure) Save(filename string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	wt, err := f.WriterTo(format)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = wt.WriteTo(fp)
	return err
}
