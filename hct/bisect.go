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

// noVertex marks a vertex of the Y plane that lies outside the RGB cube.
var noVertex = num.Vec3{-1, -1, -1}

// hueOf returns the CAM16 hue in radians of a linear RGB color
// under the standard view.
func hueOf(linrgb num.Vec3) float64 {
	sd := num.MatMul(linrgb, scaledDiscountFromLinRGB)
	rA := cam16.ChromaticAdapt(sd[0])
	gA := cam16.ChromaticAdapt(sd[1])
	bA := cam16.ChromaticAdapt(sd[2])
	// redness-greenness
	a := (11*rA + -12*gA + bA) / 11
	// yellowness-blueness
	b := (rA + gA - 2*bA) / 9
	return math.Atan2(b, a)
}

// intercept solves the lerp equation, returning t such that
// lerp(source, target, t) = mid.
func intercept(source, mid, target float64) float64 {
	return (mid - source) / (target - source)
}

// setCoordinate intersects the segment from source to target with the
// plane where the given axis (0: R, 1: G, 2: B) equals coord.
func setCoordinate(source, target num.Vec3, coord float64, axis int) num.Vec3 {
	t := intercept(source[axis], coord, target[axis])
	return source.Lerp(target, t)
}

func isBounded(x float64) bool {
	return 0 <= x && x <= 100
}

// nthVertex returns the nth (0-11) possible vertex of the polygon where
// the plane of constant y intersects the linear RGB cube, or [noVertex]
// if that vertex lies outside of the cube.
func nthVertex(y float64, n int) num.Vec3 {
	kR, kG, kB := yFromLinRGB[0], yFromLinRGB[1], yFromLinRGB[2]
	coordA := 0.0
	if n%4 > 1 {
		coordA = 100
	}
	coordB := 0.0
	if n%2 != 0 {
		coordB = 100
	}
	switch {
	case n < 4:
		g, b := coordA, coordB
		r := (y - g*kG - b*kB) / kR
		if isBounded(r) {
			return num.Vec3{r, g, b}
		}
	case n < 8:
		b, r := coordA, coordB
		g := (y - r*kR - b*kB) / kG
		if isBounded(g) {
			return num.Vec3{r, g, b}
		}
	default:
		r, g := coordA, coordB
		b := (y - r*kR - g*kG) / kB
		if isBounded(b) {
			return num.Vec3{r, g, b}
		}
	}
	return noVertex
}

// bisectToSegment returns the endpoints, in linear RGB, of the edge of
// the constant y polygon that contains the color with the target hue
// (in radians).
func bisectToSegment(y, targetHue float64) (left, right num.Vec3) {
	left, right = noVertex, noVertex
	leftHue, rightHue := 0.0, 0.0
	initialized := false
	uncut := true
	for n := range 12 {
		mid := nthVertex(y, n)
		if mid[0] < 0 {
			continue
		}
		midHue := hueOf(mid)
		if !initialized {
			left, right = mid, mid
			leftHue, rightHue = midHue, midHue
			initialized = true
			continue
		}
		if uncut || num.InCyclicOrder(leftHue, midHue, rightHue) {
			uncut = false
			if num.InCyclicOrder(leftHue, targetHue, midHue) {
				right, rightHue = mid, midHue
			} else {
				left, leftHue = mid, midHue
			}
		}
	}
	return left, right
}

func criticalPlaneBelow(x float64) int { return int(math.Floor(x - 0.5)) }

func criticalPlaneAbove(x float64) int { return int(math.Ceil(x - 0.5)) }

// bisectToLimit returns the color in linear RGB with the given y and
// target hue (in radians) that lies on the boundary of the RGB cube.
// Each axis is narrowed with at most 8 bisections between the
// critical planes of 8 bit sRGB.
func bisectToLimit(y, targetHue float64) num.Vec3 {
	left, right := bisectToSegment(y, targetHue)
	leftHue := hueOf(left)
	for axis := range 3 {
		if left[axis] == right[axis] {
			continue
		}
		var lPlane, rPlane int
		if left[axis] < right[axis] {
			lPlane = criticalPlaneBelow(cie.TrueDelinearize(left[axis]))
			rPlane = criticalPlaneAbove(cie.TrueDelinearize(right[axis]))
		} else {
			lPlane = criticalPlaneAbove(cie.TrueDelinearize(left[axis]))
			rPlane = criticalPlaneBelow(cie.TrueDelinearize(right[axis]))
		}
		for range 8 {
			if num.Abs(rPlane-lPlane) <= 1 {
				break
			}
			mPlane := int(math.Floor(float64(lPlane+rPlane) / 2))
			mid := setCoordinate(left, right, criticalPlanes[mPlane], axis)
			midHue := hueOf(mid)
			if num.InCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rPlane = mPlane
			} else {
				left, leftHue = mid, midHue
				lPlane = mPlane
			}
		}
	}
	return left.Midpoint(right)
}
