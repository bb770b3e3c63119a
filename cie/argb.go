// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"image/color"
)

// ARGB is a color packed into 32 bits as [alpha:8][red:8][green:8][blue:8].
// The sRGB channels are gamma encoded and not premultiplied by alpha.
// Conversions in this module ignore alpha and produce opaque colors.
type ARGB uint32

// FromRGB returns the opaque ARGB color with the given sRGB channels.
func FromRGB(r, g, b uint8) ARGB {
	return FromRGBA(r, g, b, 0xff)
}

// FromRGBA returns the ARGB color with the given sRGB channels and alpha.
func FromRGBA(r, g, b, a uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel of the color.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel of the color.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel of the color.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel of the color.
func (c ARGB) Blue() uint8 { return uint8(c) }

// IsOpaque returns whether the alpha channel is fully opaque.
func (c ARGB) IsOpaque() bool { return c.Alpha() == 0xff }

// AsNRGBA returns the color as a non-premultiplied [color.NRGBA].
func (c ARGB) AsNRGBA() color.NRGBA {
	return color.NRGBA{c.Red(), c.Green(), c.Blue(), c.Alpha()}
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (c ARGB) AsRGBA() color.RGBA {
	return color.RGBAModel.Convert(c.AsNRGBA()).(color.RGBA)
}

// RGBA implements the [color.Color] interface.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.AsNRGBA().RGBA()
}

// Hex returns the color as a #rrggbb hex string, ignoring alpha.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

func (c ARGB) String() string {
	return fmt.Sprintf("argb(0x%08x)", uint32(c))
}

// FromColor returns the ARGB form of the given standard [color.Color].
func FromColor(c color.Color) ARGB {
	if a, ok := c.(ARGB); ok {
		return a
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBA(n.R, n.G, n.B, n.A)
}

// Model is the standard [color.Model] that converts colors to ARGB.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	return FromColor(c)
}
