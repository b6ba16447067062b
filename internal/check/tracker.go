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

// Package check classifies var declarations according to the configured policy.
package check

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/onevar/analyzer/mode"
	"fillmore-labs.com/onevar/internal/astutil"
	"fillmore-labs.com/onevar/internal/scope"
)

// Diagnostic messages.
const (
	CombineMessage = "Combine this with the previous 'var' statement."
	SplitMessage   = "Split 'var' declaration into multiple statements."
)

// Violation is a var declaration breaking the policy.
type Violation struct {
	Decl    *ast.GenDecl
	Message string

	// Previous is the first var declaration of the scope, set only for [mode.Always].
	Previous token.Pos
}

// Tracker decides for each var declaration whether it violates the policy.
//
// Function-like scopes are opened with [Tracker.EnterScope] and must be closed
// through the returned handle. A Tracker serves a single traversal.
type Tracker struct {
	mode   mode.Mode
	scopes scope.Stack
}

// New creates a [Tracker] for the given policy.
func New(m mode.Mode) *Tracker {
	return &Tracker{mode: m}
}

// Mode returns the policy of this tracker.
func (t *Tracker) Mode() mode.Mode {
	return t.mode
}

// EnterScope opens the scope of a file or function.
func (t *Tracker) EnterScope() scope.Handle {
	return t.scopes.Enter()
}

// Depth returns the number of open scopes.
func (t *Tracker) Depth() int {
	return t.scopes.Depth()
}

// Check applies the policy to a var declaration.
func (t *Tracker) Check(decl *ast.GenDecl) (Violation, bool, error) {
	if t.mode == mode.Never {
		v, ok := t.CheckSplit(decl)

		return v, ok, nil
	}

	return t.CheckCombine(decl)
}

// CheckCombine reports every var declaration after the first one in the innermost scope.
func (t *Tracker) CheckCombine(decl *ast.GenDecl) (Violation, bool, error) {
	first, prev, err := t.scopes.MarkFirst(decl.Pos())
	if err != nil || first {
		return Violation{}, false, err
	}

	return Violation{Decl: decl, Message: CombineMessage, Previous: prev}, true, nil
}

// CheckSplit reports a var declaration with more than one declared variable.
func (*Tracker) CheckSplit(decl *ast.GenDecl) (Violation, bool) {
	if astutil.Declarators(decl) <= 1 {
		return Violation{}, false
	}

	return Violation{Decl: decl, Message: SplitMessage}, true
}
