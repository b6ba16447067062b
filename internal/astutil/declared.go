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

package astutil

import (
	"go/ast"
	"go/token"
	"iter"
)

// VarDecl returns the var declaration of a package-level declaration or a declaration statement.
func VarDecl(n ast.Node) (*ast.GenDecl, bool) {
	if stmt, ok := n.(*ast.DeclStmt); ok {
		n = stmt.Decl
	}

	decl, ok := n.(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR {
		return nil, false
	}

	return decl, true
}

// AllDeclared yields the identifiers of all variables declared, including blank identifiers.
func AllDeclared(decl *ast.GenDecl) iter.Seq[*ast.Ident] {
	return func(yield func(*ast.Ident) bool) {
		for _, spec := range decl.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			for _, id := range vspec.Names {
				if !yield(id) {
					return
				}
			}
		}
	}
}

// Declarators returns the number of variables declared.
func Declarators(decl *ast.GenDecl) int {
	n := 0
	for range AllDeclared(decl) {
		n++
	}

	return n
}
