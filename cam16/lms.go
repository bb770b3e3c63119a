// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"math"

	"cogentcore.org/cam/base/num"
)

// XYZToLMSMat is the CAM16 matrix from XYZ to cone responses.
var XYZToLMSMat = num.Mat3{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

// LMSToXYZMat is the inverse of [XYZToLMSMat].
var LMSToXYZMat = num.Mat3{
	{1.86206786, -1.01125463, 0.14918677},
	{0.38752654, 0.62144744, -0.00897398},
	{-0.01584150, -0.03412294, 1.04996444},
}

// XYZToLMS converts 0-100 XYZ to CAM16 long, medium, short cone responses.
func XYZToLMS(xyz num.Vec3) num.Vec3 {
	return num.MatMul(xyz, XYZToLMSMat)
}

// LMSToXYZ converts CAM16 cone responses back to 0-100 XYZ.
func LMSToXYZ(lms num.Vec3) num.Vec3 {
	return num.MatMul(lms, LMSToXYZMat)
}

// ChromaticAdapt applies the CAM16 post-adaptation nonlinear compression
// to a luminance-adapted cone response, preserving its sign.
func ChromaticAdapt(component float64) float64 {
	af := math.Pow(math.Abs(component), 0.42)
	return num.Signum(component) * 400 * af / (af + 27.13)
}

// InverseChromaticAdapt is the inverse of [ChromaticAdapt].
func InverseChromaticAdapt(adapted float64) float64 {
	adaptedAbs := math.Abs(adapted)
	base := max(0, 27.13*adaptedAbs/(400-adaptedAbs))
	return num.Signum(adapted) * math.Pow(base, 1/0.42)
}
