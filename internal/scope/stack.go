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

// Package scope tracks the function-like scopes open during a traversal.
//
// A [Stack] holds one entry per open scope. Scopes are opened with
// [Stack.Enter] and closed through the returned [Handle], which detects
// releases that do not match the nesting of their openings.
package scope

import (
	"errors"
	"go/token"
)

var (
	// ErrEmpty is returned when an operation requires an open scope, but none is.
	ErrEmpty = errors.New("no open scope")

	// ErrUnbalanced is returned when a scope is released out of order or twice.
	ErrUnbalanced = errors.New("unbalanced scope release")
)

// Stack is a last-in-first-out sequence of open scopes.
//
// The zero value is an empty stack ready to use.
type Stack struct {
	entries []entry
	serial  uint64
}

// entry records whether a var statement has been seen in a scope.
type entry struct {
	id    uint64
	seen  bool
	first token.Pos
}

// Handle is the guard for a scope opened with [Stack.Enter].
type Handle struct {
	stack *Stack
	id    uint64
}

// Enter opens a new innermost scope in state unseen.
func (s *Stack) Enter() Handle {
	s.serial++
	s.entries = append(s.entries, entry{id: s.serial})

	return Handle{stack: s, id: s.serial}
}

// Exit closes the scope opened by the handle.
//
// The scope must be the innermost open scope; otherwise [ErrUnbalanced] is
// returned and the stack is left unchanged.
func (h Handle) Exit() error {
	s := h.stack
	if s == nil || len(s.entries) == 0 || s.entries[len(s.entries)-1].id != h.id {
		return ErrUnbalanced
	}

	s.entries = s.entries[:len(s.entries)-1]

	return nil
}

// MarkFirst records a var statement at pos in the innermost scope.
//
// It reports whether this is the first statement seen in that scope. When it
// is not, prev is the position passed with the first one.
func (s *Stack) MarkFirst(pos token.Pos) (first bool, prev token.Pos, err error) {
	if len(s.entries) == 0 {
		return false, token.NoPos, ErrEmpty
	}

	top := &s.entries[len(s.entries)-1]
	if top.seen {
		return false, top.first, nil
	}

	top.seen, top.first = true, pos

	return true, token.NoPos, nil
}

// Depth returns the number of open scopes.
func (s *Stack) Depth() int {
	return len(s.entries)
}
