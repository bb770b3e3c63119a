// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd provides the commands of the hct tool.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/cam/base/errors"
	"cogentcore.org/cam/base/iox/tomlx"
	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/cmd/hct/config"
	"cogentcore.org/cam/logx"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"
)

// Root returns the root command of the hct tool with all of its
// subcommands. Its flags are bound to the fields of the given config,
// whose current values are used as the flag defaults.
func Root(c *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "hct",
		Short: "Convert, ramp, harmonize and blend colors in the HCT and CAM16 color spaces",
		Long: `hct converts colors between sRGB, HCT, CAM16, CAM16-UCS and L*a*b*,
and uses the HCT color space to build tone ramps, harmonize and blend colors,
and find colors with a given contrast ratio.

Colors are given as hex codes (#rrggbb, #rgb, or without the #) or CSS color names.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			logx.SetDefaultLogger(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.StringSliceVar(&c.View, "view", c.View, "TOML files with the viewing conditions, where later files override earlier ones")
	pf.Var(&c.Format, "format", "the output format (text, json or yaml)")
	pf.BoolVar(&c.Color, "color", c.Color, "print color swatches using terminal escape codes")
	pf.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "print verbose info log messages")
	pf.BoolVar(&c.VeryVerbose, "vv", c.VeryVerbose, "print debug log messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "only print error log messages")

	root.AddCommand(
		convertCmd(c),
		rampCmd(c),
		harmonizeCmd(c),
		blendCmd(c),
		contrastCmd(c),
		viewCmd(c),
	)
	return root
}

// ParseColor parses the given color, which can be a hex code with or
// without the leading # (#rrggbb or #rgb) or a CSS color name.
func ParseColor(s string) (cie.ARGB, error) {
	if nc, ok := colornames.Map[strings.ToLower(s)]; ok {
		return cie.FromColor(nc), nil
	}
	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	cf, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return cie.FromRGB(cf.RGB255()), nil
}

// parseColors parses all of the given colors.
func parseColors(args []string) ([]cie.ARGB, error) {
	cs := make([]cie.ARGB, len(args))
	for i, a := range args {
		c, err := ParseColor(a)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}

// viewOptions returns the viewing condition options of the config,
// starting from the standard ones and applying the config's view files.
func viewOptions(c *config.Config) (cam16.ViewOptions, error) {
	vo := cam16.DefaultViewOptions()
	if len(c.View) == 0 {
		return vo, nil
	}
	if err := errors.Log(tomlx.OpenFiles(&vo, c.View...)); err != nil {
		return vo, fmt.Errorf("loading viewing conditions: %w", err)
	}
	slog.Info("loaded viewing conditions", "files", c.View, "surround", vo.Surround, "background", vo.BackgroundLstar)
	return vo, nil
}

// loadView returns the viewing conditions of the config.
func loadView(c *config.Config) (*cam16.View, error) {
	if len(c.View) == 0 {
		return cam16.StdView(), nil
	}
	vo, err := viewOptions(c)
	if err != nil {
		return nil, err
	}
	return vo.View()
}
