// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"
)

// Formats are the output formats of the hct tool.
type Formats int32

const (
	// FormatText prints human readable text.
	FormatText Formats = iota

	// FormatJSON prints indented JSON.
	FormatJSON

	// FormatYAML prints YAML.
	FormatYAML
)

var formatNames = []string{"text", "json", "yaml"}

// FormatsValues returns all possible values of [Formats].
func FormatsValues() []Formats {
	return []Formats{FormatText, FormatJSON, FormatYAML}
}

// String returns the lowercase name of the format.
func (f Formats) String() string { return enumString(int32(f), formatNames, "Formats") }

// SetString sets the format from its name, case insensitively.
func (f *Formats) SetString(s string) error { return enumSet((*int32)(f), formatNames, "Formats", s) }

// Set implements the flag value interface.
func (f *Formats) Set(s string) error { return f.SetString(s) }

// Type implements the flag value interface.
func (f *Formats) Type() string { return "format" }

// MarshalText implements [encoding.TextMarshaler].
func (f Formats) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Formats) UnmarshalText(text []byte) error { return f.SetString(string(text)) }

// BlendModes are the ways in which two colors can be blended.
type BlendModes int32

const (
	// BlendUCS interpolates the CAM16-UCS coordinates of the colors.
	BlendUCS BlendModes = iota

	// BlendHue rotates the hue of the first color towards the second,
	// keeping its chroma and tone.
	BlendHue

	// BlendHCT interpolates the hue, chroma and tone of the colors.
	BlendHCT
)

var blendModeNames = []string{"ucs", "hue", "hct"}

// BlendModesValues returns all possible values of [BlendModes].
func BlendModesValues() []BlendModes {
	return []BlendModes{BlendUCS, BlendHue, BlendHCT}
}

// String returns the lowercase name of the blend mode.
func (m BlendModes) String() string { return enumString(int32(m), blendModeNames, "BlendModes") }

// SetString sets the blend mode from its name, case insensitively.
func (m *BlendModes) SetString(s string) error {
	return enumSet((*int32)(m), blendModeNames, "BlendModes", s)
}

// Set implements the flag value interface.
func (m *BlendModes) Set(s string) error { return m.SetString(s) }

// Type implements the flag value interface.
func (m *BlendModes) Type() string { return "mode" }

// MarshalText implements [encoding.TextMarshaler].
func (m BlendModes) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *BlendModes) UnmarshalText(text []byte) error { return m.SetString(string(text)) }

func enumString(v int32, names []string, typ string) string {
	if v < 0 || int(v) >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, v)
	}
	return names[v]
}

func enumSet(v *int32, names []string, typ, s string) error {
	for i, nm := range names {
		if strings.EqualFold(nm, s) {
			*v = int32(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type %s; valid values are %s", s, typ, strings.Join(names, ", "))
}
