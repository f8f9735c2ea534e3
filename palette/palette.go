// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides the color cycle and color maps used by the
// plotting style, along with color parsing helpers.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// DeepHex is the six color "deep" cycle of the seaborn matplotlib style sheet.
var DeepHex = []string{
	"#4C72B0", "#55A868", "#C44E52", "#8172B2", "#CCB974", "#64B5CD",
}

// Cycle is an ordered list of colors that repeats when indexed
// past its end. It implements [palette.Palette].
type Cycle []color.Color

// Colors returns the colors of the cycle.
func (c Cycle) Colors() []color.Color { return c }

// At returns the color at index i, wrapping around.
// An empty cycle returns black.
func (c Cycle) At(i int) color.Color {
	if len(c) == 0 {
		return color.Black
	}
	return c[i%len(c)]
}

// Deep returns the seaborn style sheet color cycle.
func Deep() Cycle {
	c, _ := Parse(DeepHex)
	return c
}

// Parse returns a Cycle from the given color strings, using [ParseColor].
func Parse(strs []string) (Cycle, error) {
	c := make(Cycle, len(strs))
	for i, s := range strs {
		clr, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		c[i] = clr
	}
	return c, nil
}

// ParseColor parses a color in one of the forms matplotlib accepts in a
// style sheet: hex "#rrggbb" or "#rgb", a named color such as "white",
// or a gray level between "0" (black) and "1" (white).
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("palette.ParseColor: empty color")
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("palette.ParseColor %q: %w", s, err)
		}
		r, g, b := c.Clamped().RGB255()
		return color.RGBA{r, g, b, 0xff}, nil
	}
	if lv, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(lv) || lv < 0 || lv > 1 {
			return nil, fmt.Errorf("palette.ParseColor %q: gray level must be in [0, 1]", s)
		}
		return color.Gray{Y: uint8(lv*255 + 0.5)}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("palette.ParseColor: unknown color %q", s)
}

// WithAlpha returns c with the given opacity in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(alpha*255 + 0.5)
	return n
}

// Desaturate reduces the saturation of c by the given proportion,
// as seaborn does for the fill of box plots.
func Desaturate(c color.Color, prop float64) color.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	h, s, l := cf.Hsl()
	r, g, b := colorful.Hsl(h, s*prop, l).Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// Diverging returns a blue-white-red palette with n colors, for heatmaps.
func Diverging(n int) palette.Palette {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	return cm.Palette(n)
}
