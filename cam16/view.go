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

package cam16

import (
	"fmt"
	"math"
	"sync"

	"cogentcore.org/cam/base/num"
	"cogentcore.org/cam/cie"
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. A View is computed once
// by [NewView] and must not be modified afterwards; it is safe for
// concurrent use.
type View struct {

	// WhitePoint is the illuminant white in 0-100 XYZ, typically [cie.WhiteD65].
	WhitePoint num.Vec3

	// AdaptingLuminance is the luminance of the adapting field in cd/m^2.
	AdaptingLuminance float64

	// BackgroundLstar is the L* of the background, at least 0.1.
	BackgroundLstar float64

	// Surround is the brightness of the surrounding environment.
	Surround Surround

	// Discounting is whether the eyes have fully adapted to the illuminant.
	Discounting bool

	// N is the ratio of background to white relative luminance.
	N float64

	// AW is the achromatic response of the adapted white.
	AW float64

	// NBB is the brightness (luminance level) induction factor.
	NBB float64

	// NCB is the chromatic (luminance level) induction factor.
	NCB float64

	// C is the exponential nonlinearity from the surround.
	C float64

	// NC is the chromatic induction factor from the surround.
	NC float64

	// FL is the luminance-level adaptation factor.
	FL float64

	// FLRoot is FL to the 1/4 power.
	FLRoot float64

	// Z is the base exponential nonlinearity.
	Z float64

	// RGBD is the per-cone degree of chromatic adaptation to the white point.
	RGBD num.Vec3
}

// NewView returns the viewing conditions for the given parameters:
// whitePoint in 0-100 XYZ, the adaptingLuminance in cd/m^2 (often
// computed as lux / π times the relative luminance of the background),
// the backgroundLstar of the region around the color, the surround,
// and whether the illuminant is discounted (fully adapted to).
func NewView(whitePoint num.Vec3, adaptingLuminance, backgroundLstar float64, surround Surround, discounting bool) *View {
	// A background of pure black is non-physical and leads to infinities that
	// represent the idea that any color viewed in pure black can't be seen.
	backgroundLstar = max(0.1, backgroundLstar)
	vw := &View{
		WhitePoint:        whitePoint,
		AdaptingLuminance: adaptingLuminance,
		BackgroundLstar:   backgroundLstar,
		Surround:          surround,
		Discounting:       discounting,
	}

	// Transform test illuminant white in XYZ to 'cone'/'rgb' responses
	rgbW := XYZToLMS(whitePoint)

	f, c, nc := surround.Factors()
	vw.C = c
	vw.NC = nc

	// Calculate degree of adaptation to illuminant
	d := 1.0
	if !discounting {
		d = f * (1 - (1/3.6)*math.Exp((-adaptingLuminance-42)/92))
	}
	// Per Li et al, if D is greater than 1 or less than 0, set it to 1 or 0.
	d = num.Clamp(0, 1, d)

	// Cone responses to the whitePoint, adjusted for discounting.
	//
	// 100 is used instead of the white point's relative luminance, since
	// later parts of the conversion account for scaling of appearance
	// relative to the white point relative luminance (Fairchild, Color
	// Appearance Models, 3rd edition).
	for i := range 3 {
		vw.RGBD[i] = max(0, d*(100/rgbW[i])+1-d)
	}

	// Factor used in calculating meaningful factors
	k := 1 / (5*adaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4

	// Luminance-level adaptation factor
	vw.FL = k4*adaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5*adaptingLuminance)
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	vw.N = cie.YFromLstar(backgroundLstar) / whitePoint[1]
	// note Schlomer 2018 has a typo and uses 1.58, the correct factor is 1.48
	vw.Z = 1.48 + math.Sqrt(vw.N)
	vw.NBB = 0.725 / math.Pow(vw.N, 0.2)
	vw.NCB = vw.NBB

	// Discounted cone responses to the white point, adjusted for post-saturation
	// adaptation perceptual nonlinearities.
	var rgbA num.Vec3
	for i := range 3 {
		rgbA[i] = ChromaticAdapt(vw.FL * vw.RGBD[i] * rgbW[i] / 100)
	}
	vw.AW = (2*rgbA[0] + rgbA[1] + 0.05*rgbA[2]) * vw.NBB
	return vw
}

var (
	stdView     *View
	stdViewOnce sync.Once
)

// StdView returns the standard viewing conditions: a D65 white point,
// 200 lux of ambient light (an adapting luminance of about 11.72 cd/m^2),
// a 50% gray background (L* 50), an average surround and no discounting.
// These approximate the viewing conditions assumed by sRGB. The same
// [View] is returned on every call and must not be modified.
func StdView() *View {
	stdViewOnce.Do(func() {
		stdView = NewView(cie.WhiteD65, (200/math.Pi)*cie.YFromLstar(50)/100, 50, SurroundAverage, false)
	})
	return stdView
}

// ViewOptions are the parameters from which a [View] is computed,
// in a form that can be saved and loaded from TOML files.
type ViewOptions struct {

	// WhitePoint is the illuminant white in 0-100 XYZ.
	WhitePoint [3]float64 `toml:"white_point"`

	// AmbientLux is the ambient illuminance in lux. It is used to
	// compute the adapting luminance as lux / π * Y(background) / 100
	// when AdaptingLuminance is 0.
	AmbientLux float64 `toml:"ambient_lux"`

	// AdaptingLuminance is the luminance of the adapting field in cd/m^2.
	// If it is 0, it is computed from AmbientLux.
	AdaptingLuminance float64 `toml:"adapting_luminance,omitempty"`

	// BackgroundLstar is the L* of the background.
	BackgroundLstar float64 `toml:"background_lstar"`

	// Surround is the brightness of the environment: dark, dim or average.
	Surround Surround `toml:"surround"`

	// Discounting is whether the eyes have fully adapted to the illuminant.
	Discounting bool `toml:"discounting"`
}

// DefaultViewOptions returns the options corresponding to [StdView].
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		WhitePoint:      cie.WhiteD65,
		AmbientLux:      200,
		BackgroundLstar: 50,
		Surround:        SurroundAverage,
	}
}

// View returns the [View] for these options. It returns an error if the
// adapting luminance is not positive, since no color can be perceived
// without light.
func (vo *ViewOptions) View() (*View, error) {
	al := vo.AdaptingLuminance
	if al == 0 {
		al = (vo.AmbientLux / math.Pi) * cie.YFromLstar(vo.BackgroundLstar) / 100
	}
	if !(al > 0) || math.IsInf(al, 0) {
		return nil, fmt.Errorf("cam16: adapting luminance must be positive and finite, not %g (ambient_lux = %g, adapting_luminance = %g)", al, vo.AmbientLux, vo.AdaptingLuminance)
	}
	return NewView(vo.WhitePoint, al, vo.BackgroundLstar, vo.Surround, vo.Discounting), nil
}
