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

import (
	"math"

	"cogentcore.org/cam/base/num"
)

// Linearize converts an 8 bit gamma encoded sRGB channel into
// a linear channel in the range 0-100.
func Linearize(component uint8) float64 {
	normalized := float64(component) / 255
	if normalized <= 0.040449936 {
		return normalized / 12.92 * 100
	}
	return math.Pow((normalized+0.055)/1.055, 2.4) * 100
}

// TrueDelinearize converts a linear channel in the range 0-100 into
// a gamma encoded sRGB channel in the range 0-255, without rounding
// or clamping.
func TrueDelinearize(component float64) float64 {
	normalized := component / 100
	var delinearized float64
	if normalized <= 0.0031308 {
		delinearized = normalized * 12.92
	} else {
		delinearized = 1.055*math.Pow(normalized, 1.0/2.4) - 0.055
	}
	return delinearized * 255
}

// Delinearize converts a linear channel in the range 0-100 into an
// 8 bit gamma encoded sRGB channel, rounded and clamped to 0-255.
func Delinearize(component float64) uint8 {
	return uint8(num.Clamp(0, 255, math.Round(TrueDelinearize(component))))
}

// LinearRGBFromARGB returns the linear RGB channels (0-100) of the color.
func LinearRGBFromARGB(c ARGB) num.Vec3 {
	return num.Vec3{Linearize(c.Red()), Linearize(c.Green()), Linearize(c.Blue())}
}

// ARGBFromLinearRGB returns the opaque color with the given
// linear RGB channels (0-100). Out of gamut channels are clamped.
func ARGBFromLinearRGB(linrgb num.Vec3) ARGB {
	return FromRGB(Delinearize(linrgb[0]), Delinearize(linrgb[1]), Delinearize(linrgb[2]))
}
