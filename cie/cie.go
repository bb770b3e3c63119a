// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE color spaces underneath CAM16 and HCT:
// packed ARGB colors, gamma encoded and linear sRGB, XYZ, and L*a*b*.
// All XYZ and linear RGB values are in the 0-100 range, relative
// to the D65 white point.
package cie
