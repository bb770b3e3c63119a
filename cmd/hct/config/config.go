// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the hct tool.
package config

// Config is the main config struct that contains all
// of the configuration options for the hct tool.
type Config struct {

	// View is a list of TOML files with the viewing conditions,
	// where later files override earlier ones. If it is empty,
	// the standard viewing conditions are used.
	View []string

	// Format is the output format.
	Format Formats `default:"text"`

	// Color is whether to print color swatches using terminal escape codes.
	Color bool

	// Verbose is whether to print verbose info log messages.
	Verbose bool

	// VeryVerbose is whether to print debug log messages.
	VeryVerbose bool

	// Quiet is whether to only print error log messages.
	Quiet bool

	// Ramp contains the configuration options for the ramp command.
	Ramp Ramp

	// Blend contains the configuration options for the blend command.
	Blend Blend

	// Contrast contains the configuration options for the contrast command.
	Contrast Contrast
}

// Ramp contains the configuration options for the ramp command.
type Ramp struct {

	// Tones are the tones of the ramp.
	Tones []float64 `default:"0,10,20,30,40,50,60,70,80,90,95,99,100"`

	// Hues is the number of hues to print ramps for, starting
	// at the hue of the color and spaced by HueStep.
	Hues int `default:"1"`

	// HueStep is the number of degrees between the hues.
	HueStep float64 `default:"30"`
}

// Blend contains the configuration options for the blend command.
type Blend struct {

	// Amount is how far to blend towards the second color, from 0 to 1.
	Amount float64 `default:"0.5"`

	// Mode is the color space the blend is done in.
	Mode BlendModes `default:"ucs"`
}

// Contrast contains the configuration options for the contrast command.
type Contrast struct {

	// Ratio is the contrast ratio (1-21) to find a color for.
	// If it is 0, no color is searched for.
	Ratio float64
}
