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

package analyzer

import (
	"flag"

	"fillmore-labs.com/onevar/internal/config"
	"fillmore-labs.com/onevar/internal/run"
)

// registerFlags binds the command line flags to the run options.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	flags.TextVar(&r.Mode, "mode", r.Mode, "var declaration policy: always (combine per function) or never (one variable per statement)")
	flags.Var(behaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(behaviorValue(&r.Behavior, config.FileScope), "file-scope", "report package-level var declarations")
}
