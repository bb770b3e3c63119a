// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/cam/blend"
	"cogentcore.org/cam/cmd/hct/config"
	"github.com/spf13/cobra"
)

func harmonizeCmd(c *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "harmonize <design> <source>",
		Short: "Rotate the hue of a design color towards a source color",
		Long: fmt.Sprintf(`harmonize rotates the HCT hue of the design color towards the hue of the
source color by up to %d degrees, keeping its chroma and tone.`, blend.MaxHarmonizeRotation),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			res := blend.Harmonize(cs[0], cs[1])
			w := cmd.OutOrStdout()
			return write(w, c, res.Hex(), func() error {
				_, err := fmt.Fprintln(w, newPainter(c).swatch(res))
				return err
			})
		},
	}
}
