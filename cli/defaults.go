// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides helpers shared by the command line tools.
package cli

import (
	"fmt"

	"cogentcore.org/cam/base/errors"
	"cogentcore.org/cam/base/reflectx"
)

// SetFromDefaults sets the fields of the given config struct pointer from
// their `default:` struct tags, so that flags built from the config show
// those values as their defaults. It must be called before the flags are
// bound. Errors name the config type, and are logged in addition to
// being returned.
func SetFromDefaults(cfg any) error {
	if err := reflectx.SetFromDefaultTags(cfg); err != nil {
		return errors.Log(fmt.Errorf("setting defaults of %T: %w", cfg, err))
	}
	return nil
}
