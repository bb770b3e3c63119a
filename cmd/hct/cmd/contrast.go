// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/cmd/hct/config"
	"cogentcore.org/cam/hct"
	"github.com/spf13/cobra"
)

// contrastReport is the result of the contrast command.
type contrastReport struct {
	Ratio float64 `json:"ratio,omitempty" yaml:"ratio,omitempty"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

func contrastCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrast <color> [other]",
		Short: "Print contrast ratios and find colors with a given contrast",
		Long: `contrast prints the contrast ratio (1-21) between two colors. With --ratio, it
also prints the color with the hue and chroma of the first color that has at least
that contrast ratio with it.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return contrast(cmd, c, args)
		},
	}
	cmd.Flags().Float64Var(&c.Contrast.Ratio, "ratio", c.Contrast.Ratio, "the contrast ratio (1-21) to find a color for")
	return cmd
}

func contrast(cmd *cobra.Command, c *config.Config, args []string) error {
	cs, err := parseColors(args)
	if err != nil {
		return err
	}
	if len(cs) == 1 && c.Contrast.Ratio == 0 {
		return fmt.Errorf("contrast needs a second color or a --ratio")
	}
	var rep contrastReport
	var found cie.ARGB
	if len(cs) == 2 {
		rep.Ratio = hct.ContrastRatio(cs[0], cs[1])
	}
	if c.Contrast.Ratio != 0 {
		if c.Contrast.Ratio < 1 || c.Contrast.Ratio > 21 {
			return fmt.Errorf("contrast ratio %g is not between 1 and 21", c.Contrast.Ratio)
		}
		cc, ok := hct.ContrastColor(cs[0], c.Contrast.Ratio)
		if !ok {
			return fmt.Errorf("no color has a contrast ratio of %g with %s", c.Contrast.Ratio, cs[0].Hex())
		}
		found = cie.FromColor(cc)
		rep.Color = found.Hex()
	}
	w := cmd.OutOrStdout()
	return write(w, c, rep, func() error {
		if len(cs) == 2 {
			if _, err := fmt.Fprintf(w, "%.2f\n", rep.Ratio); err != nil {
				return err
			}
		}
		if rep.Color != "" {
			if _, err := fmt.Fprintln(w, newPainter(c).swatch(found)); err != nil {
				return err
			}
		}
		return nil
	})
}
