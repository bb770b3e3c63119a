// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"
	"testing"

	"cogentcore.org/cam/base/num"
	"cogentcore.org/cam/cie"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestLightenDarken(t *testing.T) {
	gray := FromARGB(0xFF777777)
	assert.InDelta(t, 70, FromColor(Lighten(gray, 20)).Tone, 0.5)
	assert.InDelta(t, 30, FromColor(Darken(gray, 20)).Tone, 0.5)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Lighten(gray, 80))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Darken(gray, 80))

	assert.Less(t, FromColor(Highlight(colornames.White, 30)).Tone, 75.0)
	assert.Greater(t, FromColor(Highlight(colornames.Black, 30)).Tone, 25.0)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Samelight(colornames.White, 30))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Samelight(colornames.Black, 30))
}

func TestSaturateSpin(t *testing.T) {
	red := FromColor(colornames.Red)
	d := Desaturate(red, 1000)
	assert.Equal(t, d.R, d.G)
	assert.Equal(t, d.G, d.B)
	assert.Less(t, FromColor(Desaturate(red, 40)).Chroma, red.Chroma)

	muted := FromARGB(0xFF8F6F6F)
	assert.Greater(t, FromColor(Saturate(muted, 20)).Chroma, muted.Chroma)

	sp := FromColor(Spin(red, 180))
	assert.InDelta(t, 180, num.DifferenceDegrees(red.Hue, sp.Hue), 4)
}

func TestMinHueDistance(t *testing.T) {
	assert.Equal(t, 20.0, MinHueDistance(350, 10))
	assert.Equal(t, -20.0, MinHueDistance(10, 350))
	assert.Equal(t, 90.0, MinHueDistance(0, 90))
}

func TestBlend(t *testing.T) {
	x := cie.ARGB(0xFFFFFF00)
	y := cie.ARGB(0xFF0000FF)
	assert.True(t, nearARGB(x, cie.FromColor(Blend(100, x, y))))
	assert.True(t, nearARGB(y, cie.FromColor(Blend(0, x, y))))

	mid := FromColor(Blend(50, x, y))
	hx, hy := FromARGB(x), FromARGB(y)
	assert.InDelta(t, (hx.Tone+hy.Tone)/2, mid.Tone, 0.5)

	half := Blend(50, cie.FromRGBA(255, 0, 0, 0), colornames.Red)
	assert.InDelta(t, 128, int(half.A), 1)
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(colornames.White))
	assert.False(t, IsDark(colornames.White))
	assert.True(t, IsDark(colornames.Navy))
}
