// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/cli"
	"cogentcore.org/cam/cmd/hct/config"
	"cogentcore.org/cam/hct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run runs the hct tool with the given arguments and a fresh config,
// returning its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := &config.Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	root := Root(c)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseColor(t *testing.T) {
	for _, s := range []string{"red", "Red", "#ff0000", "ff0000", "#FF0000", "#f00", "f00"} {
		c, err := ParseColor(s)
		if assert.NoError(t, err, s) {
			assert.Equal(t, cie.ARGB(0xffff0000), c, s)
		}
	}
	c, err := ParseColor("cornflowerblue")
	assert.NoError(t, err)
	assert.Equal(t, "#6495ed", c.Hex())

	for _, s := range []string{"", "zzz", "#ggg", "notacolor"} {
		_, err := ParseColor(s)
		assert.Error(t, err, s)
	}
}

func TestHarmonize(t *testing.T) {
	out, err := run(t, "harmonize", "red", "blue")
	require.NoError(t, err)
	assert.Equal(t, "#fb0057\n", out)

	out, err = run(t, "harmonize", "red", "blue", "--format", "yaml")
	require.NoError(t, err)
	var s string
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	assert.Equal(t, "#fb0057", s)

	_, err = run(t, "harmonize", "red")
	assert.Error(t, err)
	_, err = run(t, "harmonize", "red", "nope")
	assert.Error(t, err)
}

func TestColorSwatch(t *testing.T) {
	out, err := run(t, "harmonize", "red", "blue", "--color")
	require.NoError(t, err)
	assert.Contains(t, out, "48;2;251;0;87")
	assert.True(t, strings.HasSuffix(out, " #fb0057\n"), out)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "red", "#0000ff")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "#ff0000 hct(27.41, 113.36, 53.23)"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "#0000ff "), lines[1])
	assert.NotContains(t, out, "viewed")

	out, err = run(t, "convert", "red", "--format", "json")
	require.NoError(t, err)
	var reps []colorReport
	require.NoError(t, json.Unmarshal([]byte(out), &reps))
	require.Len(t, reps, 1)
	r := reps[0]
	assert.Equal(t, "red", r.Input)
	assert.Equal(t, "#ff0000", r.Hex)
	assert.Equal(t, uint32(0xffff0000), r.ARGB)
	assert.InDelta(t, 27.408, r.HCT.Hue, 0.01)
	assert.InDelta(t, 113.357, r.HCT.Chroma, 0.01)
	assert.InDelta(t, 53.233, r.HCT.Tone, 0.01)
	assert.InDelta(t, r.HCT.Hue, r.CAM16.H, 1e-9)
	assert.InDelta(t, 53.2329, r.LAB.L, 0.001)
	assert.Empty(t, r.Viewed)

	out, err = run(t, "convert", "red", "blue", "--format", "yaml")
	require.NoError(t, err)
	reps = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &reps))
	require.Len(t, reps, 2)
	assert.Equal(t, "#0000ff", reps[1].Hex)
	assert.InDelta(t, 113.357, reps[0].HCT.Chroma, 0.01)
}

func writeView(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "view.toml")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestConvertView(t *testing.T) {
	fn := writeView(t, "surround = \"dark\"\nbackground_lstar = 10\n")
	out, err := run(t, "convert", "#6633cc", "--view", fn, "--format", "json")
	require.NoError(t, err)
	var reps []colorReport
	require.NoError(t, json.Unmarshal([]byte(out), &reps))
	require.Len(t, reps, 1)
	r := reps[0]
	assert.NotEmpty(t, r.Viewed)
	std := cam16.FromARGB(0xff6633cc)
	assert.NotEqual(t, std.Lightness, r.CAM16.J)
	assert.InDelta(t, hct.FromARGB(0xff6633cc).Tone, r.HCT.Tone, 1e-9)
}

func TestRamp(t *testing.T) {
	out, err := run(t, "ramp", "--tones", "0,50,100", "#777777")
	require.NoError(t, err)
	assert.Contains(t, out, "#000000 #777777 #ffffff")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1)

	out, err = run(t, "ramp", "red", "--hues", "3", "--hue-step", "120")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	out, err = run(t, "ramp", "red", "--tones", "20,80", "--hues", "2", "--format", "json")
	require.NoError(t, err)
	var rows []rampRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.InDelta(t, 27.408, rows[0].Hue, 0.01)
	assert.InDelta(t, 57.408, rows[1].Hue, 0.01)
	for _, row := range rows {
		require.Len(t, row.Colors, 2)
		for i, tone := range []float64{20, 80} {
			c, err := ParseColor(row.Colors[i])
			require.NoError(t, err)
			assert.InDelta(t, tone, hct.FromARGB(c).Tone, 0.5)
		}
	}

	_, err = run(t, "ramp", "red", "--tones", "0,120")
	assert.Error(t, err)
	_, err = run(t, "ramp", "red", "--hues", "0")
	assert.Error(t, err)
}

func TestBlend(t *testing.T) {
	out, err := run(t, "blend", "red", "blue", "--amount", "0")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000\n", out)

	out, err = run(t, "blend", "red", "blue", "--amount", "1")
	require.NoError(t, err)
	assert.Equal(t, "#0000ff\n", out)

	for _, mode := range []string{"ucs", "hue", "hct"} {
		out, err = run(t, "blend", "red", "blue", "--mode", mode)
		require.NoError(t, err, mode)
		c, err := ParseColor(strings.TrimSpace(out))
		require.NoError(t, err, mode)
		assert.NotEqual(t, cie.ARGB(0xffff0000), c, mode)
		assert.NotEqual(t, cie.ARGB(0xff0000ff), c, mode)
	}

	_, err = run(t, "blend", "red", "blue", "--mode", "rgb")
	assert.Error(t, err)
	_, err = run(t, "blend", "red", "blue", "--amount", "2")
	assert.Error(t, err)
}

func TestContrast(t *testing.T) {
	out, err := run(t, "contrast", "white", "black")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "21.00"), out)

	out, err = run(t, "contrast", "white", "--ratio", "4.5", "--format", "json")
	require.NoError(t, err)
	var rep contrastReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	c, err := ParseColor(rep.Color)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, hct.ContrastRatio(cie.ARGB(0xffffffff), c), 4.5)

	_, err = run(t, "contrast", "white")
	assert.Error(t, err)
	_, err = run(t, "contrast", "white", "--ratio", "30")
	assert.Error(t, err)
}

func TestView(t *testing.T) {
	out, err := run(t, "view", "--format", "json")
	require.NoError(t, err)
	var rep viewReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	std := cam16.StdView()
	assert.Equal(t, cam16.SurroundAverage, rep.Surround)
	assert.InDelta(t, std.AW, rep.AW, 1e-9)
	assert.InDelta(t, std.FL, rep.FL, 1e-9)

	fn := writeView(t, "surround = \"dim\"\n")
	out, err = run(t, "view", "--view", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "dim")
	assert.Contains(t, out, "# n = ")

	out, err = run(t, "view", "--view", fn, "--format", "yaml")
	require.NoError(t, err)
	rep = viewReport{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, cam16.SurroundDim, rep.Surround)
	assert.Equal(t, 50.0, rep.BackgroundLstar)

	noLight := writeView(t, "ambient_lux = 0\n")
	_, err = run(t, "view", "--view", noLight)
	assert.Error(t, err)
	_, err = run(t, "convert", "red", "--view", noLight, "--format", "json")
	assert.Error(t, err)

	_, err = run(t, "view", "--view", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	_, err = run(t, "view", "--view", writeView(t, "nonsense = 3\n"))
	assert.Error(t, err)
}
