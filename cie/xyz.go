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

import "cogentcore.org/cam/base/num"

// WhiteD65 is the D65 standard illuminant white point in 0-100 XYZ.
var WhiteD65 = num.Vec3{95.047, 100, 108.883}

// SRGBToXYZ converts linear sRGB (0-100) to D65 XYZ (0-100).
var SRGBToXYZ = num.Mat3{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// XYZToSRGB converts D65 XYZ (0-100) to linear sRGB (0-100).
var XYZToSRGB = num.Mat3{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// XYZFromARGB returns the 0-100 XYZ coordinates of the given color.
func XYZFromARGB(c ARGB) (x, y, z float64) {
	xyz := num.MatMul(LinearRGBFromARGB(c), SRGBToXYZ)
	return xyz[0], xyz[1], xyz[2]
}

// ARGBFromXYZ returns the opaque color with the given 0-100 XYZ
// coordinates. Out of gamut colors are clamped channel by channel.
func ARGBFromXYZ(x, y, z float64) ARGB {
	return ARGBFromLinearRGB(num.MatMul(num.Vec3{x, y, z}, XYZToSRGB))
}
