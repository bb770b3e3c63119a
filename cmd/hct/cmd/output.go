// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"io"

	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/cmd/hct/config"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// write writes v to w in the configured format,
// calling text to write it in the text format.
func write(w io.Writer, c *config.Config, v any, text func() error) error {
	switch c.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return text()
}

// painter renders color swatches for the text format.
type painter struct {
	profile termenv.Profile
}

func newPainter(c *config.Config) *painter {
	p := &painter{profile: termenv.Ascii}
	if c.Color {
		p.profile = termenv.TrueColor
	}
	return p
}

// swatch returns the hex code of the color, preceded by a
// swatch of it when colors are enabled.
func (p *painter) swatch(c cie.ARGB) string {
	hex := c.Hex()
	if p.profile == termenv.Ascii {
		return hex
	}
	return p.profile.String("  ").Background(p.profile.Color(hex)).String() + " " + hex
}
