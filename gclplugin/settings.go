// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package gclplugin

import (
	"fmt"

	onevar "fillmore-labs.com/onevar/analyzer"
	"fillmore-labs.com/onevar/analyzer/mode"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Mode is the var declaration policy, "always" or "never".
	Mode *string `json:"mode,omitzero"`
	// FileScope enables reports of package-level declarations.
	FileScope *bool `json:"file-scope,omitzero"`
}

// Options converts [Settings] into a list of [onevar.Option].
func (s Settings) Options() ([]onevar.Option, error) {
	var opts []onevar.Option

	if s.Mode != nil {
		var m mode.Mode
		if err := m.UnmarshalText([]byte(*s.Mode)); err != nil {
			return nil, fmt.Errorf("onevar: setting mode: %w", err)
		}

		opts = append(opts, onevar.WithMode(m))
	}

	opts = appendOption(opts, s.FileScope, onevar.WithFileScope)

	return opts, nil
}

func appendOption[T any](opts []onevar.Option, value *T, constructor func(T) onevar.Option) []onevar.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
