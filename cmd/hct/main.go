// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hct converts colors between sRGB and the HCT, CAM16,
// CAM16-UCS and L*a*b* color spaces, and builds tone ramps,
// harmonizes, blends and finds contrasting colors in HCT.
package main

import (
	"os"

	"cogentcore.org/cam/cli"
	"cogentcore.org/cam/cmd/hct/cmd"
	"cogentcore.org/cam/cmd/hct/config"
)

func main() {
	c := &config.Config{}
	if err := cli.SetFromDefaults(c); err != nil {
		os.Exit(1)
	}
	if err := cmd.Root(c).Execute(); err != nil {
		os.Exit(1)
	}
}
