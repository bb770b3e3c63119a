// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name      string
	Luminance float64
	Tones     []int
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "cfg.toml")
	c := testConfig{Name: "dim room", Luminance: 11.72, Tones: []int{10, 40, 90}}
	require.NoError(t, Save(&c, fn))

	var o testConfig
	require.NoError(t, Open(&o, fn))
	assert.Equal(t, c, o)
}

func TestOpenFilesOverride(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(a, []byte("Name = \"a\"\nLuminance = 1.5\n"), 0666))
	require.NoError(t, os.WriteFile(b, []byte("Name = \"b\"\n"), 0666))

	var c testConfig
	require.NoError(t, OpenFiles(&c, a, b))
	assert.Equal(t, "b", c.Name)
	assert.Equal(t, 1.5, c.Luminance)
}

func TestReadUnknownField(t *testing.T) {
	var c testConfig
	err := ReadBytes(&c, []byte("Nmae = \"typo\"\n"))
	assert.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	var c testConfig
	assert.Error(t, Open(&c, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestWriteBytes(t *testing.T) {
	b, err := WriteBytes(&testConfig{Name: "x"})
	require.NoError(t, err)
	assert.Regexp(t, `Name = ['"]x['"]`, string(b))
}
