// Copyright (c) 2024, Cogent Core. All rights reserved.
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

// Package blend provides functions for blending colors in the HCT
// and CAM16-UCS color spaces.
package blend

import (
	"cogentcore.org/cam/base/num"
	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/hct"
)

// MaxHarmonizeRotation is the maximum number of degrees
// by which [Harmonize] rotates a hue.
const MaxHarmonizeRotation = 15

// Harmonize returns the design color with its hue shifted towards the hue
// of the source color, so that the two look more like they belong together.
// The hue is rotated by half of the difference between the two hues, at
// most [MaxHarmonizeRotation] degrees, in the direction of the shortest
// rotation. The chroma and tone of the design color are kept.
func Harmonize(design, source cie.ARGB) cie.ARGB {
	from := hct.FromARGB(design)
	to := hct.FromARGB(source)
	rotation := min(num.DifferenceDegrees(from.Hue, to.Hue)*0.5, MaxHarmonizeRotation)
	if rotation == 0 {
		return design
	}
	hue := num.SanitizeDegrees(from.Hue + rotation*num.RotationDirection(from.Hue, to.Hue))
	return hct.New(hue, from.Chroma, from.Tone).ARGB()
}

// HCTHue blends the hue of from towards the hue of to by the given
// amount (0-1), keeping the chroma and tone of from. The hue is
// interpolated in CAM16-UCS, as by [CAM16UCS].
func HCTHue(from, to cie.ARGB, amount float64) cie.ARGB {
	ucs := cam16.FromARGB(CAM16UCS(from, to, amount))
	fcam := cam16.FromARGB(from)
	return hct.New(ucs.Hue, fcam.Chroma, cie.LstarFromARGB(from)).ARGB()
}

// CAM16UCS blends from towards to by the given amount (0-1), by
// linear interpolation of each of their CAM16-UCS coordinates.
func CAM16UCS(from, to cie.ARGB, amount float64) cie.ARGB {
	fj, fa, fb := cam16.FromARGB(from).UCS()
	tj, ta, tb := cam16.FromARGB(to).UCS()
	jstar := num.Lerp(fj, tj, amount)
	astar := num.Lerp(fa, ta, amount)
	bstar := num.Lerp(fb, tb, amount)
	return cam16.FromUCS(jstar, astar, bstar).ARGB()
}
