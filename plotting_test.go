// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/plotstyle/plotting/frame"
	"github.com/plotstyle/plotting/style"
)

// recorder is a Renderer that keeps the figures it is given.
type recorder struct {
	figs []*Figure
}

func (rc *recorder) Render(fig *Figure) error {
	rc.figs = append(rc.figs, fig)
	return nil
}

func newTestPlotter(t *testing.T) (*Plotter, *recorder) {
	t.Helper()
	pl, err := New()
	require.NoError(t, err)
	rc := &recorder{}
	pl.Renderer = rc
	return pl, rc
}

func openTips(t *testing.T) *frame.Table {
	t.Helper()
	dt, err := frame.OpenCSV("testdata/tips.csv")
	require.NoError(t, err)
	return dt
}

func TestNew(t *testing.T) {
	pl, err := New()
	require.NoError(t, err)
	assert.Equal(t, 8*vg.Inch, pl.Width)
	assert.Equal(t, 5.5*vg.Inch, pl.Height)
	assert.IsType(t, &FileRenderer{}, pl.Renderer)
	assert.Equal(t, style.Typeface, plot.DefaultFont.Typeface)
	assert.Equal(t, 14.0, style.Current().LabelSize)

	bad := style.Default()
	bad.AxisColor = "nope"
	_, err = NewWithStyle(bad)
	assert.Error(t, err)
}

func TestCharts(t *testing.T) {
	tests := []struct {
		name string
		draw func(pl *Plotter, dt *frame.Table) error
	}{
		{"hist", func(pl *Plotter, dt *frame.Table) error { return pl.Hist(dt, "total_bill", 0) }},
		{"scatter", func(pl *Plotter, dt *frame.Table) error { return pl.Scatter(dt, "total_bill", "tip", "") }},
		{"scatter", func(pl *Plotter, dt *frame.Table) error { return pl.Scatter(dt, "total_bill", "tip", "day") }},
		{"matrix", func(pl *Plotter, dt *frame.Table) error { return pl.ScatterMatrix(dt) }},
		{"line", func(pl *Plotter, dt *frame.Table) error { return pl.Line(dt, "total_bill", "tip") }},
		{"line", func(pl *Plotter, dt *frame.Table) error { return pl.Line(dt, "total_bill") }},
		{"box", func(pl *Plotter, dt *frame.Table) error { return pl.Box(dt, "day", "tip") }},
		{"box", func(pl *Plotter, dt *frame.Table) error { return pl.Box(dt, "", "tip") }},
		{"bar", func(pl *Plotter, dt *frame.Table) error { return pl.Bar(dt, "day", "total_bill") }},
		{"heatmap", func(pl *Plotter, dt *frame.Table) error { return pl.Heatmap(dt) }},
		{"corr", func(pl *Plotter, dt *frame.Table) error { return pl.Corr(dt, "total_bill", "size") }},
		{"sine", func(pl *Plotter, dt *frame.Table) error { return pl.SinusoidalLines() }},
	}
	dt := openTips(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl, rc := newTestPlotter(t)
			require.NoError(t, tt.draw(pl, dt))
			require.Len(t, rc.figs, 1, "exactly one render call")
			assert.Equal(t, tt.name, rc.figs[0].Name)
		})
	}
}

func TestChartsMissingColumn(t *testing.T) {
	tests := []struct {
		name string
		draw func(pl *Plotter, dt *frame.Table) error
	}{
		{"hist", func(pl *Plotter, dt *frame.Table) error { return pl.Hist(dt, "missing", 10) }},
		{"scatter x", func(pl *Plotter, dt *frame.Table) error { return pl.Scatter(dt, "missing", "tip", "") }},
		{"scatter hue", func(pl *Plotter, dt *frame.Table) error { return pl.Scatter(dt, "total_bill", "tip", "missing") }},
		{"matrix", func(pl *Plotter, dt *frame.Table) error { return pl.ScatterMatrix(dt, "tip", "missing") }},
		{"line x", func(pl *Plotter, dt *frame.Table) error { return pl.Line(dt, "missing", "tip") }},
		{"line y", func(pl *Plotter, dt *frame.Table) error { return pl.Line(dt, "total_bill", "missing") }},
		{"box", func(pl *Plotter, dt *frame.Table) error { return pl.Box(dt, "missing", "tip") }},
		{"bar", func(pl *Plotter, dt *frame.Table) error { return pl.Bar(dt, "day", "missing") }},
		{"heatmap", func(pl *Plotter, dt *frame.Table) error { return pl.Heatmap(dt, "missing") }},
		{"corr", func(pl *Plotter, dt *frame.Table) error { return pl.Corr(dt, "tip", "missing") }},
	}
	dt := openTips(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl, rc := newTestPlotter(t)
			err := tt.draw(pl, dt)
			assert.ErrorIs(t, err, frame.ErrColumnNotFound)
			assert.Empty(t, rc.figs)
		})
	}
}

func TestNotNumeric(t *testing.T) {
	pl, rc := newTestPlotter(t)
	dt := openTips(t)
	assert.ErrorIs(t, pl.Hist(dt, "day", 5), frame.ErrNotNumeric)
	assert.ErrorIs(t, pl.Box(dt, "tip", "day"), frame.ErrNotNumeric)
	assert.Empty(t, rc.figs)
}

func TestScatterMatrixLayout(t *testing.T) {
	pl, rc := newTestPlotter(t)
	dt := openTips(t)
	require.NoError(t, pl.ScatterMatrix(dt))
	fig := rc.figs[0]
	require.Equal(t, 3, fig.Rows())
	require.Equal(t, 3, fig.Cols())
	assert.Equal(t, 3*MatrixCellSize, fig.Width)
	assert.Equal(t, "total_bill", fig.Plot(2, 0).X.Label.Text)
	assert.Equal(t, "size", fig.Plot(2, 2).X.Label.Text)
	assert.Equal(t, "tip", fig.Plot(1, 0).Y.Label.Text)
	assert.Empty(t, fig.Plot(0, 1).X.Label.Text)
	assert.Empty(t, fig.Plot(1, 1).Y.Label.Text)
}

func TestCategoryOrder(t *testing.T) {
	pl, rc := newTestPlotter(t)
	dt := openTips(t)
	require.NoError(t, pl.Bar(dt, "day", "tip"))
	p := rc.figs[0].Plot(0, 0)
	var labels []string
	for _, tk := range p.X.Tick.Marker.Ticks(0, 3) {
		labels = append(labels, tk.Label)
	}
	assert.Equal(t, []string{"Sun", "Sat", "Thur", "Fri"}, labels)
	assert.Equal(t, "day", p.X.Label.Text)
}

func TestCategoryTeXSpecials(t *testing.T) {
	pl, rc := newTestPlotter(t)
	dt := frame.New()
	require.NoError(t, dt.AddStrings("group", []string{"x_1", "10%", "x_1"}))
	require.NoError(t, dt.AddFloats("y", []float64{1, 2, 3}))
	require.NoError(t, pl.Box(dt, "group", "y"))
	require.NoError(t, pl.Bar(dt, "group", "y"))
	require.Len(t, rc.figs, 2)
	for _, fig := range rc.figs {
		assert.IsType(t, text.Plain{}, fig.Plot(0, 0).X.Tick.Label.Handler, fig.Name)
	}
}

// texTable returns a table whose names and categories need plain text,
// with a constant column and a missing value.
func texTable(t *testing.T, rows int) *frame.Table {
	t.Helper()
	cols := map[string][]float64{
		"x_1":   {1, 2, 3, 4},
		"rate%": {0.5, 1.5, 1, 2},
		"const": {3, 3, 3, 3},
		"gap":   {1, math.NaN(), 2, 4},
	}
	dt := frame.New("tex")
	for _, nm := range []string{"x_1", "rate%", "const", "gap"} {
		require.NoError(t, dt.AddFloats(nm, cols[nm][:rows]))
	}
	require.NoError(t, dt.AddStrings("group", []string{"x_1", "10%", "x_1", "10%"}[:rows]))
	return dt
}

func TestRenderPNG(t *testing.T) {
	charts := []struct {
		name string
		draw func(pl *Plotter, dt *frame.Table) error
	}{
		{"hist", func(pl *Plotter, dt *frame.Table) error { return pl.Hist(dt, "x_1", 0) }},
		{"hist const", func(pl *Plotter, dt *frame.Table) error { return pl.Hist(dt, "const", 5) }},
		{"scatter", func(pl *Plotter, dt *frame.Table) error { return pl.Scatter(dt, "x_1", "rate%", "group") }},
		{"matrix", func(pl *Plotter, dt *frame.Table) error { return pl.ScatterMatrix(dt, "x_1", "rate%", "const") }},
		{"line", func(pl *Plotter, dt *frame.Table) error { return pl.Line(dt, "x_1", "rate%", "gap") }},
		{"box", func(pl *Plotter, dt *frame.Table) error { return pl.Box(dt, "group", "rate%") }},
		{"bar", func(pl *Plotter, dt *frame.Table) error { return pl.Bar(dt, "group", "rate%") }},
		{"heatmap", func(pl *Plotter, dt *frame.Table) error { return pl.Heatmap(dt, "x_1", "gap", "const") }},
		{"corr", func(pl *Plotter, dt *frame.Table) error { return pl.Corr(dt, "x_1", "rate%", "const") }},
		{"sine", func(pl *Plotter, dt *frame.Table) error { return pl.SinusoidalLines() }},
	}
	for _, rows := range []int{4, 1} {
		dt := texTable(t, rows)
		for _, tt := range charts {
			t.Run(fmt.Sprintf("%s/%d", tt.name, rows), func(t *testing.T) {
				pl, err := New()
				require.NoError(t, err)
				var buf bytes.Buffer
				pl.Renderer = &WriterRenderer{W: &buf}
				require.NoError(t, tt.draw(pl, dt))
				assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
			})
		}
	}
}

func TestSinusoidalLinesRange(t *testing.T) {
	pl, rc := newTestPlotter(t)
	require.NoError(t, pl.SinusoidalLines())
	p := rc.figs[0].Plot(0, 0)
	assert.Equal(t, 0.0, p.X.Min)
	assert.InDelta(t, 6.283185307, p.X.Max, 1e-6)
	assert.Equal(t, "$x$", p.X.Label.Text)
	assert.Len(t, pl.Style.Colors(), 6)
}

func TestStylers(t *testing.T) {
	pl, rc := newTestPlotter(t)
	n := 0
	pl.Stylers.Add(func(p *plot.Plot) {
		p.Title.Text = "Tips"
		n++
	})
	dt := openTips(t)
	require.NoError(t, pl.Hist(dt, "tip", 5))
	assert.Equal(t, 1, n)
	assert.Equal(t, "Tips", rc.figs[0].Plot(0, 0).Title.Text)

	require.NoError(t, pl.ScatterMatrix(dt, "tip", "size"))
	assert.Equal(t, 5, n)
}

func TestFileRenderer(t *testing.T) {
	pl, err := New()
	require.NoError(t, err)
	dir := t.TempDir()
	fr := &FileRenderer{Dir: dir}
	pl.Renderer = fr
	dt := openTips(t)
	require.NoError(t, pl.Hist(dt, "tip", 0))
	require.NoError(t, pl.ScatterMatrix(dt, "tip", "size"))
	require.NoError(t, pl.SinusoidalLines())
	assert.Equal(t, []string{
		filepath.Join(dir, "figure-001.png"),
		filepath.Join(dir, "figure-002.png"),
		filepath.Join(dir, "figure-003.png"),
	}, fr.Saved)
	for _, fn := range fr.Saved {
		fi, err := os.Stat(fn)
		require.NoError(t, err)
		assert.Positive(t, fi.Size())
	}

	fr = &FileRenderer{Filename: filepath.Join(dir, "bar.svg")}
	pl.Renderer = fr
	require.NoError(t, pl.Bar(dt, "day", "tip"))
	b, err := os.ReadFile(fr.Filename)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestWriterRenderer(t *testing.T) {
	pl, err := New()
	require.NoError(t, err)
	var buf bytes.Buffer
	pl.Renderer = &WriterRenderer{W: &buf}
	require.NoError(t, pl.Corr(openTips(t)))
	assert.Equal(t, "\x89PNG", buf.String()[:4])

	pl.Renderer = &WriterRenderer{W: &buf, Format: "bmp"}
	assert.Error(t, pl.SinusoidalLines())
}

func TestRenderError(t *testing.T) {
	pl, err := New()
	require.NoError(t, err)
	pl.Renderer = RenderFunc(func(fig *Figure) error { return os.ErrClosed })
	assert.ErrorIs(t, pl.SinusoidalLines(), os.ErrClosed)
}
