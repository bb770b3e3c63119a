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

package hct

import (
	"image/color"
	"math"

	"cogentcore.org/cam/base/num"
	"cogentcore.org/cam/cie"
)

// ContrastRatio returns the WCAG contrast ratio of two colors, which is
// 1 for colors of the same tone and 21 for black against white.
func ContrastRatio(a, b color.Color) float64 {
	return ToneContrastRatio(FromColor(a).Tone, FromColor(b).Tone)
}

// ToneContrastRatio returns the contrast ratio (1-21) of two tones,
// after clamping each of them to 0-100.
func ToneContrastRatio(a, b float64) float64 {
	ya := cie.YFromLstar(num.Clamp(0, 100, a))
	yb := cie.YFromLstar(num.Clamp(0, 100, b))
	return ContrastRatioOfYs(ya, yb)
}

// ContrastRatioOfYs returns the contrast ratio of two relative
// luminances (XYZ Y, 0-100).
func ContrastRatioOfYs(a, b float64) float64 {
	return (max(a, b) + 5) / (min(a, b) + 5)
}

// ContrastColor returns c with its tone changed so that the contrast ratio
// (1-21) between c and the result is at least ratio. Light colors (tone
// above 50) are darkened if possible and lightened otherwise; dark colors
// are lightened first. It returns nil, false if neither reaches the ratio.
func ContrastColor(c color.Color, ratio float64) (color.Color, bool) {
	h := FromColor(c)
	tone, ok := ContrastTone(h.Tone, ratio)
	if !ok {
		return nil, false
	}
	return h.WithTone(tone), true
}

// ContrastColorUnsafe is like [ContrastColor], except that when the ratio
// can not be reached it returns the color of the most contrasting tone.
// The result may therefore have less than the requested contrast.
func ContrastColorUnsafe(c color.Color, ratio float64) color.Color {
	h := FromColor(c)
	return h.WithTone(ContrastToneUnsafe(h.Tone, ratio))
}

// ContrastTone returns a tone whose contrast ratio (1-21) with the given
// tone (0-100) is at least ratio, trying darker tones first when the tone
// is above 50 and lighter tones first otherwise. It returns -1, false if
// neither direction reaches the ratio.
func ContrastTone(tone, ratio float64) (float64, bool) {
	try := [2]func(float64, float64) (float64, bool){ContrastToneLighter, ContrastToneDarker}
	if tone > 50 {
		try[0], try[1] = try[1], try[0]
	}
	for _, f := range try {
		if t, ok := f(tone, ratio); ok {
			return t, true
		}
	}
	return -1, false
}

// ContrastToneUnsafe is like [ContrastTone], except that when the ratio
// can not be reached it returns whichever of 0 and 100 contrasts most
// with the tone.
func ContrastToneUnsafe(tone, ratio float64) float64 {
	if t, ok := ContrastTone(tone, ratio); ok {
		return t
	}
	if ToneContrastRatio(tone, 0) > ToneContrastRatio(tone, 100) {
		return 0
	}
	return 100
}

// ContrastToneLighter returns the darkest tone at or above the given tone
// (0-100) whose contrast ratio with it is at least ratio (1-21), or -1,
// false if no such tone exists.
func ContrastToneLighter(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	darkY := cie.YFromLstar(tone)
	lightY := ratio*(darkY+5) - 5
	// 0.4 of headroom so that gamut mapping, which is only accurate to a
	// range of tones, still meets the ratio
	return contrastResult(lightY, darkY, ratio, cie.LstarFromY(lightY)+0.4)
}

// ContrastToneDarker returns the lightest tone at or below the given tone
// (0-100) whose contrast ratio with it is at least ratio (1-21), or -1,
// false if no such tone exists.
func ContrastToneDarker(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	lightY := cie.YFromLstar(tone)
	darkY := (lightY+5)/ratio - 5
	return contrastResult(lightY, darkY, ratio, cie.LstarFromY(darkY)-0.4)
}

// contrastResult checks that the luminances reach the ratio
// and that the resulting tone is valid.
func contrastResult(lightY, darkY, ratio, tone float64) (float64, bool) {
	got := ContrastRatioOfYs(lightY, darkY)
	if got < ratio && math.Abs(got-ratio) > 0.04 {
		return -1, false
	}
	if tone < 0 || tone > 100 {
		return -1, false
	}
	return tone, true
}

// ContrastToneLighterUnsafe is like [ContrastToneLighter],
// except that it returns 100 when there is no such tone.
func ContrastToneLighterUnsafe(tone, ratio float64) float64 {
	if t, ok := ContrastToneLighter(tone, ratio); ok {
		return t
	}
	return 100
}

// ContrastToneDarkerUnsafe is like [ContrastToneDarker],
// except that it returns 0 when there is no such tone.
func ContrastToneDarkerUnsafe(tone, ratio float64) float64 {
	if t, ok := ContrastToneDarker(tone, ratio); ok {
		return t
	}
	return 0
}
