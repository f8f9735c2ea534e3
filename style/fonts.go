// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10italic"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
)

// Typeface is the typeface name under which the Latin Modern faces
// are registered in [font.DefaultCache]. Latin Modern is the OpenType
// continuation of the Computer Modern family used by TeX.
const Typeface font.Typeface = "Latin Modern"

var (
	fontsOnce sync.Once
	fontsErr  error
)

// families maps the generic font family names accepted by [Style.FontFamily]
// to the registered font variant.
var families = map[string]font.Variant{
	"sans-serif": "Sans",
	"serif":      "Serif",
	"monospace":  "Mono",
}

// Variant returns the font variant for the given generic family name.
func Variant(family string) (font.Variant, error) {
	v, ok := families[family]
	if !ok {
		return "", fmt.Errorf("style: unknown font family %q (want sans-serif, serif or monospace)", family)
	}
	return v, nil
}

// RegisterFonts adds the Latin Modern font collection to
// [font.DefaultCache]. It only does work the first time it is called.
func RegisterFonts() error {
	fontsOnce.Do(func() {
		var coll font.Collection
		add := func(variant font.Variant, sty xfont.Style, wt xfont.Weight, ttf []byte) {
			if fontsErr != nil {
				return
			}
			fc, err := opentype.Parse(ttf)
			if err != nil {
				fontsErr = fmt.Errorf("style: parsing %s font: %w", variant, err)
				return
			}
			coll = append(coll, font.Face{
				Font: font.Font{Typeface: Typeface, Variant: variant, Style: sty, Weight: wt},
				Face: fc,
			})
		}
		// cmss
		add("Sans", xfont.StyleNormal, xfont.WeightNormal, lmsans10regular.TTF)
		add("Sans", xfont.StyleNormal, xfont.WeightBold, lmsans10bold.TTF)
		add("Sans", xfont.StyleItalic, xfont.WeightNormal, lmsans10oblique.TTF)
		// cmr
		add("Serif", xfont.StyleNormal, xfont.WeightNormal, lmroman10regular.TTF)
		add("Serif", xfont.StyleNormal, xfont.WeightBold, lmroman10bold.TTF)
		add("Serif", xfont.StyleItalic, xfont.WeightNormal, lmroman10italic.TTF)
		add("Serif", xfont.StyleItalic, xfont.WeightBold, lmroman10bolditalic.TTF)
		// cmtt
		add("Mono", xfont.StyleNormal, xfont.WeightNormal, lmmono10regular.TTF)
		add("Mono", xfont.StyleItalic, xfont.WeightNormal, lmmono10italic.TTF)
		if fontsErr == nil {
			font.DefaultCache.Add(coll)
		}
	})
	return fontsErr
}
