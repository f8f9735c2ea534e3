// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style holds the fixed set of rendering defaults for plots
// (font, label and tick sizes, line widths, axis color, math text font,
// color cycle) and applies them onto the process-wide configuration
// of gonum/plot.
package style

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"cogentcore.org/core/base/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotstyle/plotting/palette"
)

// Style contains the rendering defaults applied to every plot.
// Sizes are in points, figure dimensions in inches.
type Style struct {

	// FontFamily is the generic font family: sans-serif, serif or monospace,
	// all rendered with the Latin Modern (Computer Modern) faces.
	FontFamily string `toml:"font_family"`

	// FontSize is the size of titles.
	FontSize float64 `toml:"font_size"`

	// LabelSize is the size of axis labels.
	LabelSize float64 `toml:"label_size"`

	// TickSize is the size of tick labels and legend text.
	TickSize float64 `toml:"tick_size"`

	// TickLength is the length of major ticks.
	TickLength float64 `toml:"tick_length"`

	// LineWidth is the width of plotted lines.
	LineWidth float64 `toml:"line_width"`

	// AxisWidth is the width of the axis lines.
	AxisWidth float64 `toml:"axis_width"`

	// AxisColor is the color of the axis lines and ticks.
	AxisColor string `toml:"axis_color"`

	// UseTeX renders all text with the LaTeX text handler.
	UseTeX bool `toml:"use_tex"`

	// MathFont is the font set for math text: "cm" is the only one available.
	MathFont string `toml:"math_font"`

	// Palette is the color cycle used for successive data series.
	Palette []string `toml:"palette"`

	// Alpha is the opacity of filled marks (histogram bars, points).
	Alpha float64 `toml:"alpha"`

	// Background is the color of the plotting area.
	Background string `toml:"background"`

	// Grid draws grid lines behind the data.
	Grid bool `toml:"grid"`

	// GridColor is the color of the grid lines.
	GridColor string `toml:"grid_color"`

	// PointRadius is the radius of scatter points.
	PointRadius float64 `toml:"point_radius"`

	// Width is the default figure width.
	Width float64 `toml:"width"`

	// Height is the default figure height.
	Height float64 `toml:"height"`

	resolved *resolved
}

// resolved holds the parsed forms of the string fields.
type resolved struct {
	variant    font.Variant
	axis       color.Color
	background color.Color
	grid       color.Color
	palette    palette.Cycle
}

// Default returns a new resolved Style with [Style.Defaults] applied.
func Default() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

// Defaults sets the fixed style values.
func (st *Style) Defaults() {
	labelSize := 14.0
	st.FontFamily = "sans-serif"
	st.FontSize = 16
	st.LabelSize = labelSize
	st.TickSize = labelSize - 2
	st.TickLength = 3
	st.LineWidth = 3
	st.AxisWidth = 0.8
	st.AxisColor = "0.25"
	st.UseTeX = true
	st.MathFont = "cm"
	st.Palette = append([]string(nil), palette.DeepHex...)
	st.Alpha = 0.7
	st.Background = "#EAEAF2"
	st.Grid = true
	st.GridColor = "white"
	st.PointRadius = 3
	st.Width = 8
	st.Height = 5.5
	st.resolved = nil
	errors.Log(st.Resolve())
}

// Clone returns a deep copy of the style.
func (st *Style) Clone() *Style {
	cp := *st
	cp.Palette = append([]string(nil), st.Palette...)
	return &cp
}

// Resolve parses the string-valued fields, returning an error for
// an unknown font family or math font, or an unparsable color.
// It must be called again after changing fields of a resolved style;
// [Load] and [Apply] call it.
func (st *Style) Resolve() error {
	rs, err := st.parse()
	if err != nil {
		return err
	}
	st.resolved = rs
	return nil
}

func (st *Style) parse() (*resolved, error) {
	rs := &resolved{}
	var err error
	if rs.variant, err = Variant(st.FontFamily); err != nil {
		return nil, err
	}
	if st.MathFont != "cm" {
		return nil, fmt.Errorf("style: unknown math font %q (want cm)", st.MathFont)
	}
	if rs.axis, err = palette.ParseColor(st.AxisColor); err != nil {
		return nil, fmt.Errorf("style: axis_color: %w", err)
	}
	if rs.background, err = palette.ParseColor(st.Background); err != nil {
		return nil, fmt.Errorf("style: background: %w", err)
	}
	if rs.grid, err = palette.ParseColor(st.GridColor); err != nil {
		return nil, fmt.Errorf("style: grid_color: %w", err)
	}
	if len(st.Palette) == 0 {
		return nil, fmt.Errorf("style: palette must have at least one color")
	}
	if rs.palette, err = palette.Parse(st.Palette); err != nil {
		return nil, fmt.Errorf("style: palette: %w", err)
	}
	if st.Alpha < 0 || st.Alpha > 1 {
		return nil, fmt.Errorf("style: alpha %g must be in [0, 1]", st.Alpha)
	}
	return rs, nil
}

// mustResolve returns the parsed fields, falling back on the
// defaults (and logging the error) if the style is invalid.
// It never writes to st, so a resolved style is safe for concurrent readers.
func (st *Style) mustResolve() *resolved {
	if st.resolved != nil {
		return st.resolved
	}
	rs, err := st.parse()
	if errors.Log(err) != nil {
		rs = Default().resolved
	}
	return rs
}

// Colors returns the color cycle. The style must be valid.
func (st *Style) Colors() palette.Cycle { return st.mustResolve().palette }

// Color returns the i-th color of the cycle, wrapping around.
func (st *Style) Color(i int) color.Color { return st.Colors().At(i) }

// Fill returns the i-th color of the cycle with the style Alpha applied.
func (st *Style) Fill(i int) color.Color { return palette.WithAlpha(st.Color(i), st.Alpha) }

// Font returns the text font at the given size in points.
func (st *Style) Font(size float64) font.Font {
	return font.Font{Typeface: Typeface, Variant: st.mustResolve().variant, Size: vg.Points(size)}
}

// Size returns the default figure width and height.
func (st *Style) Size() (w, h vg.Length) {
	return vg.Length(st.Width) * vg.Inch, vg.Length(st.Height) * vg.Inch
}

// TextHandler returns the text handler implied by UseTeX.
func (st *Style) TextHandler() text.Handler {
	if st.UseTeX {
		return text.Latex{Fonts: font.DefaultCache}
	}
	return text.Plain{Fonts: font.DefaultCache}
}

var (
	mu      sync.RWMutex
	current *Style
)

// Apply sets the style onto the process-wide configuration of gonum/plot
// ([plot.DefaultFont], [plot.DefaultTextHandler], [plotter.DefaultLineStyle]
// and [plotter.DefaultGlyphStyle]), and records it as the [Current] style.
// The settings persist until Apply is called again or they are overwritten
// elsewhere in the process.
func Apply(st *Style) error {
	if err := st.Resolve(); err != nil {
		return err
	}
	if err := RegisterFonts(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	plot.DefaultFont = font.Font{Typeface: Typeface, Variant: st.resolved.variant}
	plot.DefaultTextHandler = st.TextHandler()
	plotter.DefaultLineStyle = draw.LineStyle{
		Color: color.Black,
		Width: vg.Points(st.LineWidth),
	}
	plotter.DefaultGlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(st.PointRadius),
		Shape:  draw.CircleGlyph{},
	}
	current = st.Clone()
	return nil
}

// Current returns a copy of the last applied style, or the
// defaults if [Apply] has not been called.
func Current() *Style {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return Default()
	}
	return current.Clone()
}

// Decorate applies the parts of the style that gonum/plot has no
// global default for onto a newly created plot: title, label and tick
// sizes, tick length, axis line style, background and grid.
// It must be called before data are added, so the grid is drawn first.
func (st *Style) Decorate(p *plot.Plot) {
	rs := st.mustResolve()
	p.BackgroundColor = rs.background
	p.Title.TextStyle.Font = st.Font(st.FontSize)
	p.Legend.TextStyle.Font = st.Font(st.TickSize)
	p.Legend.Top = true
	axisLine := draw.LineStyle{Color: rs.axis, Width: vg.Points(st.AxisWidth)}
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font = st.Font(st.LabelSize)
		ax.Tick.Label.Font = st.Font(st.TickSize)
		ax.Tick.Length = vg.Points(st.TickLength)
		ax.Tick.LineStyle = axisLine
		ax.LineStyle = axisLine
	}
	if st.Grid {
		g := plotter.NewGrid()
		g.Vertical.Color = rs.grid
		g.Horizontal.Color = rs.grid
		g.Vertical.Width = vg.Points(st.AxisWidth)
		g.Horizontal.Width = vg.Points(st.AxisWidth)
		g.Vertical.Dashes = nil
		g.Horizontal.Dashes = nil
		p.Add(g)
	}
}

// texSpecials are the characters that the LaTeX handler treats specially
// outside of math mode.
const texSpecials = `_^\{}%&#~`

// PlainText switches sty to the plain text handler if any of the given
// strings would not render as-is under the LaTeX handler, such as
// column names containing underscores. Strings wrapped in $ are math
// text and keep the LaTeX handler.
func PlainText(sty *text.Style, strs ...string) {
	if _, isTeX := sty.Handler.(text.Latex); !isTeX {
		return
	}
	for _, s := range strs {
		if strings.HasPrefix(s, "$") && strings.HasSuffix(s, "$") && len(s) > 1 {
			continue
		}
		if strings.ContainsAny(s, texSpecials+"$") {
			sty.Handler = text.Plain{Fonts: font.DefaultCache}
			return
		}
	}
}
