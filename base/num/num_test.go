// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(0, 255, -12))
	assert.Equal(t, 255, Clamp(0, 255, 300))
	assert.Equal(t, 17, Clamp(0, 255, 17))
	assert.Equal(t, 0.5, Clamp(0.0, 1.0, 0.5))
	assert.Equal(t, 1.0, Clamp(0.0, 1.0, math.Inf(1)))
	assert.Equal(t, 3.0, Clamp(3.0, 3.0, 2.0))

	assert.Panics(t, func() { Clamp(10, 5, 7) })
	assert.Panics(t, func() { Clamp(1.0, 0.0, 0.5) })
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 2.0, Lerp(2.0, 4.0, 0))
	assert.Equal(t, 4.0, Lerp(2.0, 4.0, 1))
	assert.Equal(t, 3.0, Lerp(2.0, 4.0, 0.5))
}

func TestSignum(t *testing.T) {
	assert.Equal(t, -1.0, Signum(-0.3))
	assert.Equal(t, 0.0, Signum(0.0))
	assert.Equal(t, 1.0, Signum(12.0))
	assert.Equal(t, -1, Signum(-4))
}

func TestSanitizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{30, 30},
		{360, 0},
		{361.5, 1.5},
		{-30, 330},
		{-720, 0},
		{725, 5},
		{-1e-20, 0},
	}
	for _, test := range tests {
		got := SanitizeDegrees(test.in)
		assert.InDelta(t, test.want, got, 1e-9, "SanitizeDegrees(%g)", test.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}

	assert.Equal(t, 330, SanitizeDegreesInt(-30))
	assert.Equal(t, 5, SanitizeDegreesInt(725))
	assert.Equal(t, 0, SanitizeDegreesInt(360))
}

func TestDifferenceDegrees(t *testing.T) {
	angles := []float64{0, 1, 45, 90, 179, 180, 181, 270, 359, 359.9}
	for _, a := range angles {
		assert.Equal(t, 0.0, DifferenceDegrees(a, a))
		for _, b := range angles {
			d := DifferenceDegrees(a, b)
			assert.Equal(t, d, DifferenceDegrees(b, a), "symmetry for %g, %g", a, b)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, 180.0)
		}
	}
	assert.InDelta(t, 2.0, DifferenceDegrees(359, 1), 1e-9)
	assert.InDelta(t, 180.0, DifferenceDegrees(90, 270), 1e-9)
}

func TestRotationDirection(t *testing.T) {
	assert.Equal(t, 1.0, RotationDirection(0, 90))
	assert.Equal(t, -1.0, RotationDirection(180, 90))
	assert.Equal(t, 1.0, RotationDirection(350, 10))
	assert.Equal(t, -1.0, RotationDirection(10, 350))
	assert.Equal(t, 0.0, RotationDirection(42, 42))
}

func TestShortestRotation(t *testing.T) {
	assert.Equal(t, 20.0, ShortestRotation(350, 10))
	assert.Equal(t, -20.0, ShortestRotation(10, 350))
	assert.Equal(t, 90.0, ShortestRotation(0, 90))
	assert.Equal(t, 0.0, ShortestRotation(42, 42))
	for _, p := range [][2]float64{{0, 90}, {180, 90}, {350, 10}, {10, 350}, {30, 200}} {
		assert.Equal(t, Signum(ShortestRotation(p[0], p[1])), RotationDirection(p[0], p[1]))
		assert.InDelta(t, DifferenceDegrees(p[0], p[1]), Abs(ShortestRotation(p[0], p[1])), 1e-9)
	}
}

func TestInCyclicOrder(t *testing.T) {
	assert.True(t, InCyclicOrder(0, 1, 2))
	assert.False(t, InCyclicOrder(0, 2, 1))
	assert.True(t, InCyclicOrder(6, 0.1, 0.2))
}

func TestMatMul(t *testing.T) {
	id := Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	v := Vec3{1, 2, 3}
	assert.Equal(t, v, MatMul(v, id))

	m := Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Equal(t, Vec3{14, 32, 50}, MatMul(v, m))

	assert.Equal(t, Vec3{2, 3, 4}, Vec3{0, 2, 4}.Lerp(Vec3{4, 4, 4}, 0.5))
	assert.Equal(t, Vec3{2, 3, 4}, Vec3{0, 2, 4}.Midpoint(Vec3{4, 4, 4}))
}
