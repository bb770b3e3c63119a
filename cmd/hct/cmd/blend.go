// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"

	"cogentcore.org/cam/blend"
	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/cmd/hct/config"
	"cogentcore.org/cam/hct"
	"github.com/spf13/cobra"
)

func blendCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blend <from> <to>",
		Short: "Blend two colors",
		Long: `blend prints the color that is --amount of the way from the first color to the
second. The ucs mode interpolates their CAM16-UCS coordinates, the hue mode rotates
the hue of the first color towards the second, and the hct mode interpolates their
hue, chroma and tone.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return blendColors(cmd, c, args)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&c.Blend.Amount, "amount", c.Blend.Amount, "how far to blend towards the second color, from 0 to 1")
	f.Var(&c.Blend.Mode, "mode", "the color space to blend in (ucs, hue or hct)")
	return cmd
}

func blendColors(cmd *cobra.Command, c *config.Config, args []string) error {
	amount := c.Blend.Amount
	if amount < 0 || amount > 1 {
		return fmt.Errorf("blend amount %g is not between 0 and 1", amount)
	}
	cs, err := parseColors(args)
	if err != nil {
		return err
	}
	from, to := cs[0], cs[1]
	var res cie.ARGB
	switch c.Blend.Mode {
	case config.BlendUCS:
		res = blend.CAM16UCS(from, to, amount)
	case config.BlendHue:
		res = blend.HCTHue(from, to, amount)
	case config.BlendHCT:
		res = cie.FromColor(hct.Blend((1-amount)*100, from, to))
	default:
		return fmt.Errorf("unknown blend mode %v", c.Blend.Mode)
	}
	slog.Info("blended colors", "from", from, "to", to, "amount", amount, "mode", c.Blend.Mode)
	w := cmd.OutOrStdout()
	return write(w, c, res.Hex(), func() error {
		_, err := fmt.Fprintln(w, newPainter(c).swatch(res))
		return err
	})
}
