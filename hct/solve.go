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
	"math"

	"cogentcore.org/cam/base/num"
	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
)

// SolveToARGB finds the sRGB color with the given hue (in degrees),
// chroma and tone under the standard view. If the chroma can not be
// reached at that hue and tone, the color on the edge of the sRGB gamut
// with the closest hue and the same tone is returned instead, so the
// resulting chroma is the maximum achievable one.
//
// It first tries a few Newton iterations on CAM16 lightness J, and falls
// back on bisecting the boundary of the RGB cube. Both steps run a fixed
// maximum number of iterations.
func SolveToARGB(hue, chroma, tone float64) cie.ARGB {
	if chroma < 0.0001 || tone < 0.0001 || tone > 99.9999 {
		return cie.ARGBFromLstar(tone)
	}
	hueRadians := num.SanitizeDegrees(hue) / 180 * math.Pi
	y := cie.YFromLstar(tone)
	if c, ok := findResultByJ(hueRadians, chroma, y); ok {
		return c
	}
	return cie.ARGBFromLinearRGB(bisectToLimit(y, hueRadians))
}

// findResultByJ looks for the in gamut color with the given hue (in
// radians), chroma and relative luminance y by iterating on J.
// It returns false if there is no such color or the iteration
// does not settle on one.
func findResultByJ(hueRadians, chroma, y float64) (cie.ARGB, bool) {
	// initial estimate of j
	j := math.Sqrt(y) * 11

	vw := cam16.StdView()
	tInnerCoeff := 1 / math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)
	eHue := 0.25 * (math.Cos(hueRadians+2) + 3.8)
	p1 := eHue * (50000.0 / 13.0) * vw.NC * vw.NCB
	hSin := math.Sin(hueRadians)
	hCos := math.Cos(hueRadians)
	for round := range 5 {
		jNormalized := j / 100
		alpha := 0.0
		if chroma != 0 && j != 0 {
			alpha = chroma / math.Sqrt(jNormalized)
		}
		t := math.Pow(alpha*tInnerCoeff, 1/0.9)
		ac := vw.AW * math.Pow(jNormalized, 1/vw.C/vw.Z)
		p2 := ac / vw.NBB
		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403
		scaled := num.Vec3{
			cam16.InverseChromaticAdapt(rA),
			cam16.InverseChromaticAdapt(gA),
			cam16.InverseChromaticAdapt(bA),
		}
		linrgb := num.MatMul(scaled, linRGBFromScaledDiscount)
		if linrgb[0] < 0 || linrgb[1] < 0 || linrgb[2] < 0 {
			return 0, false
		}
		fnj := yFromLinRGB[0]*linrgb[0] + yFromLinRGB[1]*linrgb[1] + yFromLinRGB[2]*linrgb[2]
		if fnj <= 0 {
			return 0, false
		}
		if round == 4 || math.Abs(fnj-y) < 0.002 {
			if linrgb[0] > 100.01 || linrgb[1] > 100.01 || linrgb[2] > 100.01 {
				return 0, false
			}
			return cie.ARGBFromLinearRGB(linrgb), true
		}
		// Newton step, using 2 * fn(j) / j as the approximation of fn'(j)
		j -= (fnj - y) * j / (2 * fnj)
	}
	return 0, false
}
