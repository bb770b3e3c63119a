// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "math"

// SanitizeDegrees returns degrees reduced to the range [0, 360).
func SanitizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	// -1e-20 + 360 rounds to 360
	if degrees >= 360 {
		degrees = 0
	}
	return degrees
}

// SanitizeDegreesInt returns degrees reduced to the range [0, 359].
func SanitizeDegreesInt(degrees int) int {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// SanitizeRadians returns angle reduced to the range [0, 2π).
// It is only valid for angles above -8π.
func SanitizeRadians(angle float64) float64 {
	return math.Mod(angle+math.Pi*8, math.Pi*2)
}

// DifferenceDegrees returns the shortest angular distance between
// a and b, in the range [0, 180].
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// ShortestRotation returns the signed number of degrees of the shortest
// rotation that takes from to to, for angles in [0, 360). It is positive
// for increasing degrees and negative for decreasing degrees.
func ShortestRotation(from, to float64) float64 {
	d := to - from
	best := d
	for _, c := range [...]float64{d + 360, d - 360} {
		if math.Abs(c) < math.Abs(best) {
			best = c
		}
	}
	return best
}

// RotationDirection returns the sign of [ShortestRotation]: 1 for
// increasing degrees, -1 for decreasing degrees, and 0 when the two
// angles coincide.
func RotationDirection(from, to float64) float64 {
	return Signum(ShortestRotation(from, to))
}

// InCyclicOrder returns whether the angles a, b and c (in radians)
// are in that cyclic order going counterclockwise.
func InCyclicOrder(a, b, c float64) bool {
	deltaAB := SanitizeRadians(b - a)
	deltaAC := SanitizeRadians(c - a)
	return deltaAB < deltaAC
}
