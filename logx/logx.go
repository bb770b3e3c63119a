// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the level and handler setup for
// the structured logging done through log/slog.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the -v and -q flags of a command line tool. It defaults
// to [slog.LevelInfo], [slog.LevelDebug] with the debug build tag, and
// [slog.LevelWarn] with the release build tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger installs a text [slog.Handler] writing to w that
// filters by [UserLevel] as the default logger. If w is nil, os.Stderr
// is used.
func SetDefaultLogger(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar{}})
	slog.SetDefault(slog.New(h))
}

// levelVar is a [slog.Leveler] that always reports the current [UserLevel],
// so that changes to it take effect without reinstalling the handler.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }
