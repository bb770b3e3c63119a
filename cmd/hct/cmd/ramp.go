// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/cam/base/num"
	"cogentcore.org/cam/cmd/hct/config"
	"cogentcore.org/cam/hct"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// rampRow is the tone ramp of one hue.
type rampRow struct {
	Hue    float64  `json:"hue" yaml:"hue"`
	Chroma float64  `json:"chroma" yaml:"chroma"`
	Colors []string `json:"colors" yaml:"colors"`

	colors []hct.HCT
}

func rampCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ramp <color>",
		Short: "Print the tone ramp of a color",
		Long: `ramp prints the colors with the hue and chroma of the given color at each of
the given tones. The chroma is reduced where it can not be reached. With --hues,
ramps are also printed for the hues that follow, spaced by --hue-step degrees.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ramp(cmd, c, args[0])
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&c.Ramp.Tones, "tones", c.Ramp.Tones, "the tones of the ramp, from 0 to 100")
	f.IntVar(&c.Ramp.Hues, "hues", c.Ramp.Hues, "the number of hues to print ramps for")
	f.Float64Var(&c.Ramp.HueStep, "hue-step", c.Ramp.HueStep, "the number of degrees between the hues")
	return cmd
}

func ramp(cmd *cobra.Command, c *config.Config, arg string) error {
	base, err := ParseColor(arg)
	if err != nil {
		return err
	}
	for _, t := range c.Ramp.Tones {
		if t < 0 || t > 100 {
			return fmt.Errorf("tone %g is not between 0 and 100", t)
		}
	}
	if c.Ramp.Hues < 1 {
		return fmt.Errorf("the number of hues must be at least 1, not %d", c.Ramp.Hues)
	}
	h := hct.FromARGB(base)
	rows := make([]rampRow, c.Ramp.Hues)
	var g errgroup.Group
	for i := range rows {
		g.Go(func() error {
			hue := num.SanitizeDegrees(h.Hue + float64(i)*c.Ramp.HueStep)
			row := rampRow{Hue: hue, Chroma: h.Chroma}
			for _, t := range c.Ramp.Tones {
				tc := hct.New(hue, h.Chroma, t)
				row.colors = append(row.colors, tc)
				row.Colors = append(row.Colors, tc.ARGB().Hex())
			}
			slog.Debug("computed ramp", "hue", hue, "tones", len(row.colors))
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	p := newPainter(c)
	w := cmd.OutOrStdout()
	return write(w, c, rows, func() error {
		for _, row := range rows {
			sw := make([]string, len(row.colors))
			for i, tc := range row.colors {
				sw[i] = p.swatch(tc.ARGB())
			}
			if _, err := fmt.Fprintf(w, "%6.2f %s\n", row.Hue, strings.Join(sw, " ")); err != nil {
				return err
			}
		}
		return nil
	})
}
