// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"#4C72B0", color.RGBA{0x4c, 0x72, 0xb0, 0xff}},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"0.25", color.Gray{Y: 64}},
		{"white", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"Black", color.RGBA{0, 0, 0, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
	for _, bad := range []string{"", "#zzzzzz", "1.5", "-0.1", "nan", "NaN", "notacolor"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestCycle(t *testing.T) {
	c := Deep()
	require.Len(t, c, 6)
	assert.Equal(t, color.RGBA{0x55, 0xa8, 0x68, 0xff}, c.At(1))
	assert.Equal(t, c[0], c.At(6))
	assert.Equal(t, c[1], c.At(13))
	assert.Len(t, c.Colors(), 6)
	assert.Equal(t, color.Black, Cycle{}.At(2))
}

func TestAlphaDesaturate(t *testing.T) {
	c := WithAlpha(color.RGBA{255, 0, 0, 255}, 0.5)
	assert.Equal(t, color.NRGBA{255, 0, 0, 128}, c)

	gray := Desaturate(color.RGBA{255, 0, 0, 255}, 0)
	r, g, b, _ := gray.RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestDiverging(t *testing.T) {
	p := Diverging(16)
	assert.Len(t, p.Colors(), 16)
}
