// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// Vec3 is a 3 component vector, such as an XYZ coordinate
// or a linear RGB color.
type Vec3 [3]float64

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// MatMul returns the product of the matrix m and the column vector v.
func MatMul(v Vec3, m Mat3) Vec3 {
	return Vec3{
		v[0]*m[0][0] + v[1]*m[0][1] + v[2]*m[0][2],
		v[0]*m[1][0] + v[1]*m[1][1] + v[2]*m[1][2],
		v[0]*m[2][0] + v[1]*m[2][1] + v[2]*m[2][2],
	}
}

// Lerp returns the point at fraction t along the segment from v to to.
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{
		v[0] + (to[0]-v[0])*t,
		v[1] + (to[1]-v[1])*t,
		v[2] + (to[2]-v[2])*t,
	}
}

// Midpoint returns the point halfway between v and o.
func (v Vec3) Midpoint(o Vec3) Vec3 {
	return Vec3{(v[0] + o[0]) / 2, (v[1] + o[1]) / 2, (v[2] + o[2]) / 2}
}
