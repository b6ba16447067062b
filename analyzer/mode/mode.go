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

// Package mode defines the var declaration policies of the onevar analyzer.
package mode

import (
	"errors"
	"fmt"
	"strings"
)

// Mode specifies the var declaration policy.
type Mode uint8

const (
	// Always requires all var declarations of a function scope to be combined into one statement.
	Always Mode = iota

	// Never requires one var statement per declared variable.
	Never
)

// ErrUnknownMode is returned when parsing an unrecognized policy.
var ErrUnknownMode = errors.New("unknown mode")

// String returns the textual form of the mode.
func (m Mode) String() string {
	switch m {
	case Always:
		return "always"

	case Never:
		return "never"

	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Always, Never:
		return []byte(m.String()), nil

	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownMode, m)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "always":
		*m = Always

	case "never":
		*m = Never

	default:
		return fmt.Errorf("%w %q", ErrUnknownMode, string(text))
	}

	return nil
}
