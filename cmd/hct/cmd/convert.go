// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"

	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/cmd/hct/config"
	"cogentcore.org/cam/hct"
	"github.com/spf13/cobra"
)

// colorReport is the result of converting one color.
type colorReport struct {
	Input string `json:"input" yaml:"input"`
	Hex   string `json:"hex" yaml:"hex"`
	ARGB  uint32 `json:"argb" yaml:"argb"`

	HCT   hctReport   `json:"hct" yaml:"hct"`
	CAM16 cam16Report `json:"cam16" yaml:"cam16"`
	UCS   ucsReport   `json:"ucs" yaml:"ucs"`
	LAB   labReport   `json:"lab" yaml:"lab"`

	// Viewed is the color that looks under the standard viewing
	// conditions like this color does under the loaded ones.
	Viewed string `json:"viewed,omitempty" yaml:"viewed,omitempty"`
}

type hctReport struct {
	Hue    float64 `json:"hue" yaml:"hue"`
	Chroma float64 `json:"chroma" yaml:"chroma"`
	Tone   float64 `json:"tone" yaml:"tone"`
}

type cam16Report struct {
	J float64 `json:"j" yaml:"j"`
	C float64 `json:"c" yaml:"c"`
	H float64 `json:"h" yaml:"h"`
	M float64 `json:"m" yaml:"m"`
	S float64 `json:"s" yaml:"s"`
	Q float64 `json:"q" yaml:"q"`
}

type ucsReport struct {
	JStar float64 `json:"jstar" yaml:"jstar"`
	AStar float64 `json:"astar" yaml:"astar"`
	BStar float64 `json:"bstar" yaml:"bstar"`
}

type labReport struct {
	L float64 `json:"l" yaml:"l"`
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
}

func newColorReport(input string, c cie.ARGB, vw *cam16.View, viewed bool) colorReport {
	h := hct.FromARGB(c)
	cam := cam16.FromARGBView(c, vw)
	l, a, b := cie.LABFromARGB(c)
	r := colorReport{
		Input: input,
		Hex:   c.Hex(),
		ARGB:  uint32(c),
		HCT:   hctReport{Hue: h.Hue, Chroma: h.Chroma, Tone: h.Tone},
		CAM16: cam16Report{
			J: cam.Lightness, C: cam.Chroma, H: cam.Hue,
			M: cam.Colorfulness, S: cam.Saturation, Q: cam.Brightness,
		},
		UCS: ucsReport{JStar: cam.JStar, AStar: cam.AStar, BStar: cam.BStar},
		LAB: labReport{L: l, A: a, B: b},
	}
	if viewed {
		r.Viewed = h.InViewingConditions(vw).ARGB().Hex()
	}
	return r
}

func convertCmd(c *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>...",
		Short: "Print the HCT, CAM16, CAM16-UCS and L*a*b* coordinates of colors",
		Long: `convert prints the HCT, CAM16, CAM16-UCS and L*a*b* coordinates of the given colors.
CAM16 and CAM16-UCS use the viewing conditions given by --view, and the color
that looks the same under the standard viewing conditions is also printed then.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, c, args)
		},
	}
}

func convert(cmd *cobra.Command, c *config.Config, args []string) error {
	cs, err := parseColors(args)
	if err != nil {
		return err
	}
	vw, err := loadView(c)
	if err != nil {
		return err
	}
	reports := make([]colorReport, len(cs))
	for i, clr := range cs {
		reports[i] = newColorReport(args[i], clr, vw, len(c.View) > 0)
		slog.Debug("converted color", "input", args[i], "argb", clr)
	}
	p := newPainter(c)
	w := cmd.OutOrStdout()
	return write(w, c, reports, func() error {
		for i, r := range reports {
			_, err := fmt.Fprintf(w, "%s hct(%.2f, %.2f, %.2f) cam16(j=%.2f c=%.2f h=%.2f m=%.2f s=%.2f q=%.2f) ucs(%.2f, %.2f, %.2f) lab(%.2f, %.2f, %.2f)",
				p.swatch(cs[i]), r.HCT.Hue, r.HCT.Chroma, r.HCT.Tone,
				r.CAM16.J, r.CAM16.C, r.CAM16.H, r.CAM16.M, r.CAM16.S, r.CAM16.Q,
				r.UCS.JStar, r.UCS.AStar, r.UCS.BStar, r.LAB.L, r.LAB.A, r.LAB.B)
			if err != nil {
				return err
			}
			if r.Viewed != "" {
				fmt.Fprintf(w, " viewed(%s)", r.Viewed)
			}
			fmt.Fprintln(w)
		}
		return nil
	})
}
