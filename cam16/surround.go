// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"fmt"
	"strings"
)

// Surround is the brightness of the environment surrounding the
// field of view, which determines the CAM16 surround factors.
type Surround int32

const (
	// SurroundDark is a dark surround, such as a cinema.
	SurroundDark Surround = iota

	// SurroundDim is a dim surround, such as a television in a dim room.
	SurroundDim

	// SurroundAverage is an average surround, such as a display
	// viewed in a lit room. It is the standard condition.
	SurroundAverage

	surroundN
)

var surroundNames = [...]string{"dark", "dim", "average"}

// Factors returns the CAM16 surround parameters: f is the factor
// determining the degree of adaptation, c is the impact of the surround
// (the exponential nonlinearity), and nc is the chromatic induction factor.
func (s Surround) Factors() (f, c, nc float64) {
	switch s {
	case SurroundDark:
		return 0.8, 0.525, 0.8
	case SurroundDim:
		return 0.9, 0.59, 0.9
	default:
		return 1, 0.69, 1
	}
}

// String returns the lowercase name of the surround.
func (s Surround) String() string {
	if s < 0 || s >= surroundN {
		return fmt.Sprintf("Surround(%d)", int32(s))
	}
	return surroundNames[s]
}

// SetString sets the surround from its name, case insensitively.
func (s *Surround) SetString(str string) error {
	for i, nm := range surroundNames {
		if strings.EqualFold(nm, str) {
			*s = Surround(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Surround", str)
}

// SurroundValues returns all possible values of [Surround].
func SurroundValues() []Surround {
	return []Surround{SurroundDark, SurroundDim, SurroundAverage}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Surround) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Surround) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}
