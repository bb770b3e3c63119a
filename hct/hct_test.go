// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"fmt"
	"image/color"
	"testing"

	"cogentcore.org/cam/base/num"
	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
	"golang.org/x/sync/errgroup"
)

func channelDiff(a, b uint8) int {
	return num.Abs(int(a) - int(b))
}

// nearARGB returns whether every channel of a and b differs by at most 1.
func nearARGB(a, b cie.ARGB) bool {
	return channelDiff(a.Red(), b.Red()) <= 1 && channelDiff(a.Green(), b.Green()) <= 1 &&
		channelDiff(a.Blue(), b.Blue()) <= 1
}

// onBoundary returns whether the color lies on a face of the sRGB cube.
func onBoundary(c cie.ARGB) bool {
	for _, v := range [...]uint8{c.Red(), c.Green(), c.Blue()} {
		if v == 0 || v == 255 {
			return true
		}
	}
	return false
}

func TestHCT(t *testing.T) {
	h := FromARGB(0xFFFFFFFF)
	assert.InDelta(t, 209.492, h.Hue, 0.001)
	assert.InDelta(t, 2.869, h.Chroma, 0.001)
	assert.InDelta(t, 100, h.Tone, 0.001)

	h = New(120, 60, 50)
	assert.InDelta(t, 120, h.Hue, 4)
	assert.InDelta(t, 50, h.Tone, 0.5)
	// 60 can not be reached at this hue and tone
	assert.Less(t, h.Chroma, 60.0)
	assert.Greater(t, h.Chroma, 45.0)
	assert.True(t, onBoundary(h.ARGB()), "%v", h.ARGB())
}

func TestRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 51 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 51 {
				c := cie.FromRGB(uint8(r), uint8(g), uint8(b))
				h := FromARGB(c)
				assert.Equal(t, c, h.ARGB())
				got := New(h.Hue, h.Chroma, h.Tone).ARGB()
				assert.True(t, nearARGB(c, got), "%v -> %v -> %v", c, h, got)
			}
		}
	}
	c := cie.FromRGBA(0x66, 0x33, 0xcc, 0x80)
	assert.Equal(t, c, FromARGB(c).ARGB())
}

func TestGray(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 30 {
		for tone := 0.0; tone <= 100; tone += 10 {
			c := New(hue, 0, tone).ARGB()
			assert.Equal(t, cie.ARGBFromLstar(tone), c)
			assert.Equal(t, c.Red(), c.Green())
			assert.Equal(t, c.Green(), c.Blue())
		}
	}
}

func TestHCTAll(t *testing.T) {
	hues := []float64{15, 45, 75, 105, 135, 165, 195, 225, 255, 285, 315, 345}
	chromas := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	tones := []float64{20, 30, 40, 50, 60, 70, 80}

	for _, hue := range hues {
		for _, chroma := range chromas {
			for _, tone := range tones {
				h := New(hue, chroma, tone)
				if chroma > 0 {
					assert.LessOrEqual(t, num.DifferenceDegrees(hue, h.Hue), 4.0, "hue of %v", h)
				}
				assert.LessOrEqual(t, h.Chroma, chroma+2.5, "chroma of %v", h)
				if h.Chroma < chroma-2.5 {
					assert.True(t, onBoundary(h.ARGB()), "%v should be on the gamut boundary", h)
				}
				assert.InDelta(t, tone, h.Tone, 0.5, "tone of %v", h)
			}
		}
	}
}

func TestWith(t *testing.T) {
	h := FromARGB(0xFF6633CC)
	orig := h
	lt := h.WithTone(80)
	assert.Equal(t, orig, h)
	assert.InDelta(t, 80, lt.Tone, 0.5)
	assert.InDelta(t, h.Hue, lt.Hue, 4)

	h.SetTone(80)
	assert.Equal(t, lt, h)

	h.SetHue(h.Hue + 360)
	assert.InDelta(t, lt.Hue, h.Hue, 4)

	h.SetChroma(0)
	assert.Equal(t, h.ARGB().Red(), h.ARGB().Green())

	tr := FromARGB(cie.FromRGBA(0x66, 0x33, 0xcc, 0x80)).WithHue(30)
	assert.Equal(t, uint8(0x80), tr.ARGB().Alpha())
}

func TestModel(t *testing.T) {
	h := Model.Convert(colornames.Red).(HCT)
	assert.InDelta(t, 27.408, h.Hue, 0.01)
	assert.InDelta(t, 113.357, h.Chroma, 0.01)
	assert.InDelta(t, 53.233, h.Tone, 0.01)
	assert.Equal(t, h, FromColor(h))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, h.AsRGBA())
	r, g, b, a := h.RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}

func TestInViewingConditions(t *testing.T) {
	h := FromARGB(0xFF6633CC)
	same := h.InViewingConditions(cam16.StdView())
	assert.True(t, nearARGB(h.ARGB(), same.ARGB()), "%v", same.ARGB())

	dark := cam16.NewView(cie.WhiteD65, 5, 20, cam16.SurroundDark, false)
	other := h.InViewingConditions(dark)
	assert.NotEqual(t, h.ARGB(), other.ARGB())
}

func TestConcurrent(t *testing.T) {
	var g errgroup.Group
	res := make([]cie.ARGB, 24)
	for i := range res {
		g.Go(func() error {
			res[i] = New(float64(i*15), 40, 60).ARGB()
			return nil
		})
	}
	assert.NoError(t, g.Wait())
	for i, c := range res {
		assert.Equal(t, New(float64(i*15), 40, 60).ARGB(), c)
	}
}

func BenchmarkHCT(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(120, 45, 56)
	}
}

func ExampleNew() {
	fmt.Println(New(0, 0, 50).ARGB())
	// Output: argb(0xff777777)
}
