// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/cam/base/iox/tomlx"
	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cmd/hct/config"
	"github.com/spf13/cobra"
)

// viewReport is the result of the view command.
type viewReport struct {
	WhitePoint        [3]float64     `json:"white_point" yaml:"white_point"`
	AmbientLux        float64        `json:"ambient_lux" yaml:"ambient_lux"`
	AdaptingLuminance float64        `json:"adapting_luminance" yaml:"adapting_luminance"`
	BackgroundLstar   float64        `json:"background_lstar" yaml:"background_lstar"`
	Surround          cam16.Surround `json:"surround" yaml:"surround"`
	Discounting       bool           `json:"discounting" yaml:"discounting"`

	N      float64    `json:"n" yaml:"n"`
	AW     float64    `json:"aw" yaml:"aw"`
	NBB    float64    `json:"nbb" yaml:"nbb"`
	NCB    float64    `json:"ncb" yaml:"ncb"`
	C      float64    `json:"c" yaml:"c"`
	NC     float64    `json:"nc" yaml:"nc"`
	FL     float64    `json:"fl" yaml:"fl"`
	FLRoot float64    `json:"fl_root" yaml:"fl_root"`
	Z      float64    `json:"z" yaml:"z"`
	RGBD   [3]float64 `json:"rgb_d" yaml:"rgb_d"`
}

func viewCmd(c *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the viewing conditions and the constants derived from them",
		Long: `view prints the viewing conditions given by --view, or the standard ones, in
the TOML format of the --view files, followed by the constants derived from them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vo, err := viewOptions(c)
			if err != nil {
				return err
			}
			vw, err := vo.View()
			if err != nil {
				return err
			}
			rep := viewReport{
				WhitePoint: vo.WhitePoint, AmbientLux: vo.AmbientLux,
				AdaptingLuminance: vw.AdaptingLuminance, BackgroundLstar: vw.BackgroundLstar,
				Surround: vo.Surround, Discounting: vo.Discounting,
				N: vw.N, AW: vw.AW, NBB: vw.NBB, NCB: vw.NCB, C: vw.C, NC: vw.NC,
				FL: vw.FL, FLRoot: vw.FLRoot, Z: vw.Z, RGBD: vw.RGBD,
			}
			w := cmd.OutOrStdout()
			return write(w, c, rep, func() error {
				b, err := tomlx.WriteBytes(&vo)
				if err != nil {
					return err
				}
				if _, err := w.Write(b); err != nil {
					return err
				}
				_, err = fmt.Fprintf(w, "\n# n = %g, aw = %g, nbb = %g, ncb = %g, c = %g, nc = %g\n# fl = %g, fl_root = %g, z = %g, rgb_d = %v\n",
					vw.N, vw.AW, vw.NBB, vw.NCB, vw.C, vw.NC, vw.FL, vw.FLRoot, vw.Z, vw.RGBD)
				return err
			})
		},
	}
}
