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
	"errors"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/onevar/internal/astutil"
	"fillmore-labs.com/onevar/internal/check"
)

// relatedMessage labels the first var statement of a scope.
const relatedMessage = "Previous 'var' statement"

// visited are the node types the [Walker] acts on.
var visited = []ast.Node{
	(*ast.FuncDecl)(nil),
	(*ast.FuncLit)(nil),
	(*ast.GenDecl)(nil),
}

// Walker drives a [check.Tracker] over the syntax tree of a single file.
type Walker struct {
	// Tracker holds the scope state; it must not have open scopes.
	Tracker *check.Tracker

	// File is used for //nolint comments.
	File astutil.CurrentFile

	// FileScope enables reports of package-level declarations.
	FileScope bool

	// Report receives the diagnostics.
	Report func(analysis.Diagnostic)
}

// WalkFile visits all var declarations of the file in source order.
func (w Walker) WalkFile(file inspector.Cursor) error {
	return w.walkScope(file)
}

// walkScope opens a scope for a file or function and visits its children.
func (w Walker) walkScope(c inspector.Cursor) (err error) {
	h := w.Tracker.EnterScope()
	defer func() { err = errors.Join(err, h.Exit()) }()

	for child := range c.Children() {
		if err := w.walk(child); err != nil {
			return err
		}
	}

	return nil
}

func (w Walker) walk(c inspector.Cursor) error {
	var err error

	c.Inspect(visited, func(c inspector.Cursor) bool {
		if err != nil {
			return false
		}

		switch n := c.Node().(type) {
		case *ast.FuncDecl:
			// a declaration without body has no var statements
			if n.Body != nil && !astutil.DocHasNoLint(n.Doc) {
				err = w.walkScope(c)
			}

			return false

		case *ast.FuncLit:
			err = w.walkScope(c)

			return false

		case *ast.GenDecl:
			if decl, ok := astutil.VarDecl(n); ok {
				err = w.check(decl)
			}
		}

		return true // initializers may contain function literals
	})

	return err
}

func (w Walker) check(decl *ast.GenDecl) error {
	v, ok, err := w.Tracker.Check(decl)
	if err != nil || !ok {
		return err
	}

	if !w.FileScope && w.Tracker.Depth() == 1 {
		return nil
	}

	if w.File.NoLintComment(decl.Pos()) {
		return nil
	}

	diagnostic := analysis.Diagnostic{
		Pos:     decl.Pos(),
		End:     decl.End(),
		Message: v.Message,
	}

	if v.Previous.IsValid() {
		diagnostic.Related = []analysis.RelatedInformation{{Pos: v.Previous, Message: relatedMessage}}
	}

	w.Report(diagnostic)

	return nil
}
