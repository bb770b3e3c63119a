// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestToneContrastRatio(t *testing.T) {
	type data struct {
		a    float64
		b    float64
		want float64
	}
	tests := []data{
		{0, 100, 21},
		{100, 0, 21},
		{50, 50, 1},
		{-10, 150, 21},
	}
	for i, test := range tests {
		assert.InDelta(t, test.want, ToneContrastRatio(test.a, test.b), 1e-9, "%d", i)
	}
}

func TestContrastTone(t *testing.T) {
	l, ok := ContrastToneLighter(50, 3)
	assert.True(t, ok)
	assert.Greater(t, l, 50.0)
	assert.GreaterOrEqual(t, ToneContrastRatio(50, l), 3.0)

	d, ok := ContrastToneDarker(50, 3)
	assert.True(t, ok)
	assert.Less(t, d, 50.0)
	assert.GreaterOrEqual(t, ToneContrastRatio(50, d), 3.0)

	// dark tones try lighter first, light tones darker first
	ct, ok := ContrastTone(50, 3)
	assert.True(t, ok)
	assert.Equal(t, l, ct)
	ct, ok = ContrastTone(60, 3)
	assert.True(t, ok)
	assert.Less(t, ct, 60.0)

	ct, ok = ContrastTone(50, 21)
	assert.False(t, ok)
	assert.Equal(t, -1.0, ct)
	assert.Equal(t, 0.0, ContrastToneUnsafe(50, 21))
	assert.Equal(t, 100.0, ContrastToneLighterUnsafe(50, 21))
	assert.Equal(t, 0.0, ContrastToneDarkerUnsafe(50, 21))

	_, ok = ContrastToneLighter(101, 2)
	assert.False(t, ok)
	_, ok = ContrastToneDarker(-1, 2)
	assert.False(t, ok)
}

func TestContrastColor(t *testing.T) {
	assert.InDelta(t, 21, ContrastRatio(colornames.White, colornames.Black), 1e-9)

	c, ok := ContrastColor(colornames.White, 4.5)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, ContrastRatio(colornames.White, c), 4.5)

	_, ok = ContrastColor(FromARGB(0xFF777777), 21)
	assert.False(t, ok)
	u := ContrastColorUnsafe(FromARGB(0xFF777777), 21)
	assert.Less(t, FromColor(u).Tone, 1.0)
}
