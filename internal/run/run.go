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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/onevar/internal/astutil"
	"fillmore-labs.com/onevar/internal/check"
	"fillmore-labs.com/onevar/internal/config"
)

var (
	// ErrResultMissing is returned when a required analyzer result is missing.
	ErrResultMissing = errors.New("analyzer result missing")

	// ErrNoFileInfo is reported for files not found in the file set.
	ErrNoFileInfo = errors.New("file without valid info")
)

// Run checks the var declarations of all files in the package.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("onevar: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx, task := trace.NewTask(context.Background(), "OneVar")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	fileScope := o.Behavior.Enabled(config.FileScope)

	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, fmt.Errorf("%s: %w", file.Name.Name, ErrNoFileInfo))

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		// Each file gets a fresh tracker, no state is carried between files
		w := Walker{
			Tracker:   check.New(o.Mode),
			File:      currentFile,
			FileScope: fileScope,
			Report:    p.Report,
		}

		region := trace.StartRegion(ctx, "File")
		err := w.WalkFile(f)
		region.End()

		if err != nil {
			astutil.InternalError(p, file, err)
		}
	}

	return nil, nil
}
