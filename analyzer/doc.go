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

// Package analyzer implements the onevar static analysis pass.
//
// # Overview
//
// onevar enforces one of two styles for var declarations.
//
// In the default mode "always", every function (including function literals)
// and every file has at most one var statement:
//
//	func process() {
//	    var n int
//	    var s string // Combine this with the previous 'var' statement.
//	}
//
// In mode "never", every var statement declares exactly one variable:
//
//	func process() {
//	    var n, m int // Split 'var' declaration into multiple statements.
//	}
//
// Blocks inside a function share the function's scope; function literals
// start a scope of their own. Short variable declarations are not var
// statements.
//
// # Suppression
//
// A trailing //nolint:onevar comment suppresses the report of a statement.
// The same comment as the last line of a function's documentation or the
// package documentation of a file suppresses all reports inside.
package analyzer
