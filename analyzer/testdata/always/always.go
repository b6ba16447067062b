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

package always

import "fmt"

var version = "1.0"

var debug bool // want `Combine this with the previous 'var' statement\.`

const limit = 10

func single() {
	var a, b int
	fmt.Println(a, b)
}

func twice() {
	var a int
	var b int // want `Combine this with the previous 'var' statement\.`
	fmt.Println(a, b)
}

func many() {
	var (
		a int
		b int
	)
	var c int // want `Combine this with the previous 'var' statement\.`
	var d int // want `Combine this with the previous 'var' statement\.`
	fmt.Println(a, b, c, d)
}

func blocks(n int) {
	var a int
	if n > limit {
		var b int // want `Combine this with the previous 'var' statement\.`
		a = b
	}
	for range n {
		var c int // want `Combine this with the previous 'var' statement\.`
		a += c
	}
	fmt.Println(a)
}

func shortDeclarations() {
	a := 1
	var b int
	c := 2
	fmt.Println(a, b, c)
}

func nested() {
	var a int
	f := func() {
		var b int
		var c int // want `Combine this with the previous 'var' statement\.`
		fmt.Println(b, c)
	}
	var d int // want `Combine this with the previous 'var' statement\.`
	f()
	fmt.Println(a, d)
}

func initializer() {
	var f = func() int {
		var x int
		return x
	}
	var g int // want `Combine this with the previous 'var' statement\.`
	fmt.Println(f(), g)
}

func suppressed() {
	var a int
	var b int //nolint:onevar
	fmt.Println(a, b)
}

//nolint:onevar
func suppressedFunction() {
	var a int
	var b int
	fmt.Println(a, b)
}

type T struct{}

func (T) method() {
	var a int
	var b int // want `Combine this with the previous 'var' statement\.`
	fmt.Println(a, b, version, debug)
}
