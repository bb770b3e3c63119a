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

// Package cam16 provides the CAM16 color appearance model and its
// CAM16-UCS uniform color space. Colors are not just defined by their
// sRGB values, but by those values and the viewing conditions ([View])
// under which they are seen.
package cam16

import (
	"fmt"
	"math"

	"cogentcore.org/cam/base/num"
	"cogentcore.org/cam/cie"
)

// CAM represents a point in the cam16 color model along 6 dimensions
// representing the perceived hue, colorfulness, and brightness,
// similar to HSL but much more well-calibrated to actual human subjective
// judgments, plus its 3 coordinates in the CAM16-UCS uniform color space.
//
// All of the dimensions can be computed from 3 of them: {J or Q},
// {C, M or s} and hue, or J*, a* and b*. The From functions construct
// a CAM from such a combination and compute all the others.
type CAM struct {

	// Hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float64

	// Chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma
	Chroma float64

	// Lightness (J) is the brightness relative to a reference white, which varies as a function of chroma and hue
	Lightness float64

	// Brightness (Q) is the apparent amount of light from the color, which is not a simple function of actual light energy emitted
	Brightness float64

	// Colorfulness (M) is the absolute chromatic intensity
	Colorfulness float64

	// Saturation (s) is the colorfulness relative to brightness
	Saturation float64

	// JStar is the CAM16-UCS lightness coordinate (J*)
	JStar float64

	// AStar is the CAM16-UCS a* coordinate, the redness-greenness axis
	AStar float64

	// BStar is the CAM16-UCS b* coordinate, the yellowness-blueness axis
	BStar float64
}

// newCAM returns the CAM for the given hue, chroma, lightness,
// brightness, colorfulness and saturation, computing the
// CAM16-UCS coordinates from them.
func newCAM(h, c, j, q, m, s float64) *CAM {
	cam := &CAM{Hue: h, Chroma: c, Lightness: j, Brightness: q, Colorfulness: m, Saturation: s}
	cam.JStar = (1 + 100*0.007) * j / (1 + 0.007*j)
	mstar := math.Log1p(0.0228*m) / 0.0228
	hr := h * math.Pi / 180
	cam.AStar = mstar * math.Cos(hr)
	cam.BStar = mstar * math.Sin(hr)
	return cam
}

// FromARGB returns the CAM of the given color under [StdView].
func FromARGB(c cie.ARGB) *CAM {
	return FromARGBView(c, StdView())
}

// FromARGBView returns the CAM of the given color under the given viewing conditions.
func FromARGBView(c cie.ARGB, vw *View) *CAM {
	x, y, z := cie.XYZFromARGB(c)
	return FromXYZView(x, y, z, vw)
}

// FromXYZ returns the CAM of the given 0-100 XYZ coordinates under [StdView].
func FromXYZ(x, y, z float64) *CAM {
	return FromXYZView(x, y, z, StdView())
}

// FromXYZView returns the CAM of the given 0-100 XYZ coordinates
// under the given viewing conditions.
func FromXYZView(x, y, z float64, vw *View) *CAM {
	lms := XYZToLMS(num.Vec3{x, y, z})

	// Chromatic adaptation and post-adaptation compression
	var adapted num.Vec3
	for i := range 3 {
		adapted[i] = ChromaticAdapt(vw.FL * vw.RGBD[i] * lms[i] / 100)
	}
	rA, gA, bA := adapted[0], adapted[1], adapted[2]

	// redness-greenness
	a := (11*rA + -12*gA + bA) / 11
	// yellowness-blueness
	b := (rA + gA - 2*bA) / 9
	// auxiliary components
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	hue := num.SanitizeDegrees(math.Atan2(b, a) * 180 / math.Pi)

	// achromatic response to color
	ac := p2 * vw.NBB

	// CAM16 lightness and brightness
	j := 100 * math.Pow(ac/vw.AW, vw.C*vw.Z)
	q := (4 / vw.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot

	// CAM16 chroma, colorfulness, and saturation.
	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000.0 / 13.0 * eHue * vw.NC * vw.NCB
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)
	c := alpha * math.Sqrt(j/100)
	m := c * vw.FLRoot
	s := 50 * math.Sqrt((alpha*vw.C)/(vw.AW+4))
	return newCAM(hue, c, j, q, m, s)
}

// FromJCH returns the CAM with the given lightness (j), chroma (c),
// and hue (h) under [StdView].
func FromJCH(j, c, h float64) *CAM {
	return FromJCHView(j, c, h, StdView())
}

// FromJCHView returns the CAM with the given lightness (j), chroma (c),
// and hue (h) under the given viewing conditions.
func FromJCHView(j, c, h float64, vw *View) *CAM {
	q := (4 / vw.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot
	m := c * vw.FLRoot
	alpha := 0.0
	if j != 0 {
		alpha = c / math.Sqrt(j/100)
	}
	s := 50 * math.Sqrt((alpha*vw.C)/(vw.AW+4))
	return newCAM(h, c, j, q, m, s)
}

// FromUCS returns the CAM with the given CAM16-UCS coordinates
// (jstar, astar, and bstar) under [StdView].
func FromUCS(jstar, astar, bstar float64) *CAM {
	return FromUCSView(jstar, astar, bstar, StdView())
}

// FromUCSView returns the CAM with the given CAM16-UCS coordinates
// (jstar, astar, and bstar) under the given viewing conditions.
func FromUCSView(jstar, astar, bstar float64, vw *View) *CAM {
	mstar := math.Hypot(astar, bstar)
	m := math.Expm1(mstar*0.0228) / 0.0228
	c := m / vw.FLRoot
	h := num.SanitizeDegrees(math.Atan2(bstar, astar) * 180 / math.Pi)
	j := jstar / (1 - (jstar-100)*0.007)
	return FromJCHView(j, c, h, vw)
}

// UCS returns the CAM16-UCS coordinates of the color.
func (cam *CAM) UCS() (jstar, astar, bstar float64) {
	return cam.JStar, cam.AStar, cam.BStar
}

// Distance returns the CAM16-UCS color difference between the two
// colors, 1.41 * ΔE'^0.63, where ΔE' is the Euclidean distance
// between their J*, a*, b* coordinates.
func (cam *CAM) Distance(other *CAM) float64 {
	dJ := cam.JStar - other.JStar
	dA := cam.AStar - other.AStar
	dB := cam.BStar - other.BStar
	dEPrime := math.Sqrt(dJ*dJ + dA*dA + dB*dB)
	return 1.41 * math.Pow(dEPrime, 0.63)
}

// ARGB returns the color, assuming it was viewed under [StdView].
func (cam *CAM) ARGB() cie.ARGB {
	return cam.ARGBView(StdView())
}

// ARGBView returns the color, assuming it was viewed under the given
// viewing conditions. Colors outside of the sRGB gamut are clamped.
func (cam *CAM) ARGBView(vw *View) cie.ARGB {
	x, y, z := cam.XYZView(vw)
	return cie.ARGBFromXYZ(x, y, z)
}

// XYZView returns the 0-100 XYZ coordinates of the color,
// assuming it was viewed under the given viewing conditions.
func (cam *CAM) XYZView(vw *View) (x, y, z float64) {
	alpha := 0.0
	if cam.Chroma != 0 && cam.Lightness != 0 {
		alpha = cam.Chroma / math.Sqrt(cam.Lightness/100)
	}

	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vw.N), 0.73), 1/0.9)
	hRad := cam.Hue * math.Pi / 180

	eHue := 0.25 * (math.Cos(hRad+2) + 3.8)
	ac := vw.AW * math.Pow(cam.Lightness/100, 1/vw.C/vw.Z)
	p1 := eHue * (50000.0 / 13.0) * vw.NC * vw.NCB
	p2 := ac / vw.NBB

	hSin := math.Sin(hRad)
	hCos := math.Cos(hRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	var lms num.Vec3
	for i, adapted := range [3]float64{rA, gA, bA} {
		lms[i] = InverseChromaticAdapt(adapted) * (100 / vw.FL) / vw.RGBD[i]
	}
	xyz := LMSToXYZ(lms)
	return xyz[0], xyz[1], xyz[2]
}

// RGBA implements the [color.Color] interface, under [StdView].
func (cam *CAM) RGBA() (r, g, b, a uint32) {
	return cam.ARGB().RGBA()
}

func (cam *CAM) String() string {
	return fmt.Sprintf("cam16(h: %g, C: %g, J: %g)", cam.Hue, cam.Chroma, cam.Lightness)
}
