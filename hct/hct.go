// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hct provides the HCT (hue, chroma, tone) color space, which
// combines the hue and chroma of CAM16 with the L* tone of CIE L*a*b*.
package hct

import (
	"fmt"
	"image/color"

	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
)

// HCT, hue, chroma, and tone. A color system that provides a perceptually
// accurate color measurement system that can also accurately render what
// colors will appear as in different lighting environments.
//
// The fields always describe the sRGB color the HCT resolves to, which
// may have less chroma than was requested. Use the With and Set methods
// to change them, so that the color is solved again. Those methods keep
// the alpha of the color.
type HCT struct {

	// Hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float64 `min:"0" max:"360"`

	// Chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma. The maximum varies as a function of hue and tone, but 150 is an upper bound.
	Chroma float64 `min:"0" max:"150"`

	// Tone is the L* component from the LAB (L*a*b*) color system, which is linear in human perception of lightness
	Tone float64 `min:"0" max:"100"`

	// argb is the resolved sRGB color
	argb cie.ARGB
}

// New returns a new HCT representation for given parameters:
// hue = 0..360
// chroma = 0..? depends on other params
// tone = 0..100
// The resulting color is kept within the sRGB gamut,
// which may cause the chroma to decrease until it is inside the gamut.
// It is always opaque.
func New(hue, chroma, tone float64) HCT {
	return FromARGB(SolveToARGB(hue, chroma, tone))
}

// FromARGB returns the HCT of the given color under the standard
// viewing conditions. ARGB returns the given color unchanged,
// including its alpha.
func FromARGB(c cie.ARGB) HCT {
	cam := cam16.FromARGB(c)
	return HCT{Hue: cam.Hue, Chroma: cam.Chroma, Tone: cie.LstarFromARGB(c), argb: c}
}

// FromColor constructs a new HCT color from a standard [color.Color].
func FromColor(c color.Color) HCT {
	if h, ok := c.(HCT); ok {
		return h
	}
	return FromARGB(cie.FromColor(c))
}

// Model is the standard [color.Model] that converts colors to HCT.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	return FromColor(c)
}

// ARGB returns the sRGB color of the HCT.
func (h HCT) ARGB() cie.ARGB {
	return h.argb
}

// RGBA implements the [color.Color] interface.
func (h HCT) RGBA() (r, g, b, a uint32) {
	return h.argb.RGBA()
}

// AsRGBA returns a standard alpha-premultiplied [color.RGBA].
func (h HCT) AsRGBA() color.RGBA {
	return h.argb.AsRGBA()
}

// with returns the solved color for the given values,
// with the alpha of h.
func (h HCT) with(hue, chroma, tone float64) HCT {
	c := SolveToARGB(hue, chroma, tone)
	return FromARGB(c&0x00ffffff | h.argb&0xff000000)
}

// WithHue returns a new color with the given hue. Chroma may decrease
// because chroma has a different maximum for any given hue and tone.
// Hues outside of 0-360 are wrapped into that range.
func (h HCT) WithHue(hue float64) HCT {
	return h.with(hue, h.Chroma, h.Tone)
}

// SetHue is like [HCT.WithHue] except it sets the existing color.
func (h *HCT) SetHue(hue float64) {
	*h = h.WithHue(hue)
}

// WithChroma returns a new color with the given chroma (0 to max that
// depends on other params), while keeping the sRGB representation within
// its gamut, which may cause the chroma to decrease until it is inside the gamut.
func (h HCT) WithChroma(chroma float64) HCT {
	return h.with(h.Hue, chroma, h.Tone)
}

// SetChroma is like [HCT.WithChroma] except it sets the existing color.
func (h *HCT) SetChroma(chroma float64) {
	*h = h.WithChroma(chroma)
}

// WithTone returns a new color with the given tone (0 < tone < 100),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h HCT) WithTone(tone float64) HCT {
	return h.with(h.Hue, h.Chroma, tone)
}

// SetTone is like [HCT.WithTone] except it sets the existing color.
func (h *HCT) SetTone(tone float64) {
	*h = h.WithTone(tone)
}

// InViewingConditions returns the color that, viewed under the standard
// viewing conditions, looks like this color does under the given ones.
//
// Colors change appearance. They look different with lights on versus off,
// and the same color on white looks different when on black. CAM16, on
// which HCT is based, can account for this.
func (h HCT) InViewingConditions(vw *cam16.View) HCT {
	// 1. find the XYZ coordinates of the color in the given view
	x, y, z := cam16.FromARGB(h.argb).XYZView(vw)
	// 2. recast those coordinates in the standard view
	recast := cam16.FromXYZ(x, y, z)
	// 3. use the hue and chroma of the recast color with the L* of Y in the given view
	return h.with(recast.Hue, recast.Chroma, cie.LstarFromY(y))
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.Hue, h.Chroma, h.Tone)
}
