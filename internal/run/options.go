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

package run

import (
	"fillmore-labs.com/onevar/analyzer/mode"
	"fillmore-labs.com/onevar/internal/config"
)

// Options holds the configuration of an analyzer run.
type Options struct {
	// Mode is the var declaration policy.
	Mode mode.Mode

	// Behavior holds behavioral options.
	Behavior config.Behavior
}

// DefaultOptions returns the [Options] used when nothing is configured.
func DefaultOptions() *Options {
	return &Options{
		Mode:     mode.Always,
		Behavior: config.DefaultBehavior(),
	}
}
