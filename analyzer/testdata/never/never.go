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

package never

import "fmt"

var a, b int // want `Split 'var' declaration into multiple statements\.`

var c int

var ( // want `Split 'var' declaration into multiple statements\.`
	d int
	e int
)

func f() {
	var x int
	var y int
	var u, v = 1, 2 // want `Split 'var' declaration into multiple statements\.`
	var _, w = fmt.Println() // want `Split 'var' declaration into multiple statements\.`
	var z, _ int //nolint:onevar
	g := func() {
		var p, q int // want `Split 'var' declaration into multiple statements\.`
		fmt.Println(p, q)
	}
	g()
	fmt.Println(a, b, c, d, e, x, y, u, v, w, z)
}
