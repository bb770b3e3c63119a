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

package cie

import "math"

const (
	// LABEpsilon is the breakpoint of the L*a*b* compression function.
	LABEpsilon = 216.0 / 24389.0

	// LABKappa is the slope of the linear part of the L*a*b* compression function.
	LABKappa = 24389.0 / 27.0
)

// LABF is the L*a*b* compression function applied to a white
// normalized XYZ component: a cube root above [LABEpsilon], linear below.
func LABF(t float64) float64 {
	if t > LABEpsilon {
		return math.Cbrt(t)
	}
	return (LABKappa*t + 16) / 116
}

// LABInvF is the inverse of [LABF].
func LABInvF(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > LABEpsilon {
		return ft3
	}
	return (116*ft - 16) / LABKappa
}

// LABFromARGB returns the L*a*b* coordinates of the given color,
// relative to the D65 white point.
func LABFromARGB(c ARGB) (l, a, b float64) {
	x, y, z := XYZFromARGB(c)
	fx := LABF(x / WhiteD65[0])
	fy := LABF(y / WhiteD65[1])
	fz := LABF(z / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// ARGBFromLAB returns the opaque color with the given L*a*b*
// coordinates, relative to the D65 white point.
func ARGBFromLAB(l, a, b float64) ARGB {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x := LABInvF(fx) * WhiteD65[0]
	y := LABInvF(fy) * WhiteD65[1]
	z := LABInvF(fz) * WhiteD65[2]
	return ARGBFromXYZ(x, y, z)
}

// YFromLstar returns the 0-100 relative luminance Y for the given
// L* lightness (tone) in the range 0-100.
func YFromLstar(lstar float64) float64 {
	return 100 * LABInvF((lstar+16)/116)
}

// LstarFromY returns the L* lightness (tone) for the given
// 0-100 relative luminance Y.
func LstarFromY(y float64) float64 {
	return 116*LABF(y/100) - 16
}

// LstarFromARGB returns the L* lightness (tone) of the given color.
func LstarFromARGB(c ARGB) float64 {
	_, y, _ := XYZFromARGB(c)
	return LstarFromY(y)
}

// ARGBFromLstar returns the neutral gray with the given L* lightness.
// All three channels are equal, since linear RGB grays have Y
// equal to each channel.
func ARGBFromLstar(lstar float64) ARGB {
	c := Delinearize(YFromLstar(lstar))
	return FromRGB(c, c, c)
}
