// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"

	"cogentcore.org/cam/base/num"
)

// Lighten returns a color that is lighter by the
// given absolute HCT tone amount (0-100, ranges enforced)
func Lighten(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	return h.WithTone(h.Tone + amount).AsRGBA()
}

// Darken returns a color that is darker by the
// given absolute HCT tone amount (0-100, ranges enforced)
func Darken(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	return h.WithTone(h.Tone - amount).AsRGBA()
}

// Highlight returns a color that is either lighter or darker by the
// given absolute HCT tone amount (0-100, ranges enforced), making
// the color darker if it is light (tone >= 50) and lighter otherwise.
// It is the opposite of [Samelight].
func Highlight(c color.Color, amount float64) color.RGBA {
	if IsLight(c) {
		return Darken(c, amount)
	}
	return Lighten(c, amount)
}

// Samelight returns a color that is either lighter or darker by the
// given absolute HCT tone amount (0-100, ranges enforced), making
// the color lighter if it is light (tone >= 50) and darker otherwise.
// It is the opposite of [Highlight].
func Samelight(c color.Color, amount float64) color.RGBA {
	if IsLight(c) {
		return Lighten(c, amount)
	}
	return Darken(c, amount)
}

// Saturate returns a color that is more saturated by the
// given absolute HCT chroma amount (0-max, ranges enforced)
func Saturate(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	return h.WithChroma(h.Chroma + amount).AsRGBA()
}

// Desaturate returns a color that is less saturated by the
// given absolute HCT chroma amount (0-max, ranges enforced)
func Desaturate(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	return h.WithChroma(max(0, h.Chroma-amount)).AsRGBA()
}

// Spin returns a color that has a different hue by the
// given absolute HCT hue amount (±0-360, ranges enforced)
func Spin(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	return h.WithHue(num.SanitizeDegrees(h.Hue + amount)).AsRGBA()
}

// MinHueDistance finds the minimum distance between two hues.
// A positive number means add to a to get to b.
// A negative number means subtract from a to get to b.
func MinHueDistance(a, b float64) float64 {
	return num.ShortestRotation(a, b)
}

// Blend returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the first and 90% of the second, etc;
// blending is done directly on non-premultiplied HCT values, and
// a correctly premultiplied color is returned.
func Blend(pct float64, x, y color.Color) color.RGBA {
	hx := FromColor(x)
	hy := FromColor(y)
	pct = num.Clamp(0, 100, pct)
	px := pct / 100
	py := 1 - px

	dhue := MinHueDistance(hx.Hue, hy.Hue)

	// weight as a function of chroma strength: if near grey, hue is unreliable
	cpy := 0.0
	if sum := px*hx.Chroma + py*hy.Chroma; sum > 0 {
		cpy = py * hy.Chroma / sum
	}
	hue := hx.Hue + cpy*dhue

	chroma := px*hx.Chroma + py*hy.Chroma
	tone := px*hx.Tone + py*hy.Tone
	hr := New(hue, chroma, tone).ARGB().AsNRGBA()
	hr.A = uint8(px*float64(hx.ARGB().Alpha()) + py*float64(hy.ARGB().Alpha()) + 0.5)
	return color.RGBAModel.Convert(hr).(color.RGBA)
}

// IsLight returns whether the given color is light
// (has an HCT tone greater than or equal to 50)
func IsLight(c color.Color) bool {
	return FromColor(c).Tone >= 50
}

// IsDark returns whether the given color is dark
// (has an HCT tone less than 50)
func IsDark(c color.Color) bool {
	return FromColor(c).Tone < 50
}
