// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic numeric helpers and the small amount of
// angle and matrix math shared by the color packages.
package num

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is a type constraint for all integer and floating point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is a type constraint for all signed integer and floating point types.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Clamp returns input limited to the closed range [min, max].
// It panics if min > max.
func Clamp[T Number](min, max, input T) T {
	if min > max {
		panic(fmt.Sprintf("num.Clamp: min %v is greater than max %v", min, max))
	}
	if input < min {
		return min
	}
	if input > max {
		return max
	}
	return input
}

// Lerp returns the linear interpolation between start and stop
// at the given amount, where 0 gives start and 1 gives stop.
func Lerp[T constraints.Float](start, stop, amount T) T {
	return (1-amount)*start + amount*stop
}

// Signum returns -1 for negative values, 0 for zero and 1 for positive values.
func Signum[T Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x == 0:
		return 0
	}
	return 1
}

// Abs returns the absolute value of x.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
