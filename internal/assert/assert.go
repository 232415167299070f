//
// corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2026 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// Package assert provides a zero-cost assertion helper for debug builds.
//
// DEBUG is a compile-time constant; when false the Go compiler eliminates
// the body of Assert (it is guarded by DEBUG), so callers still need to
// guard expensive argument construction with "if assert.DEBUG".
package assert

import "fmt"

// DEBUG switches assertions on. Keep false in release builds.
const DEBUG = false

// Assert panics with the formatted message if test is false.
// No-op when DEBUG is false.
//
// Example:
//  if assert.DEBUG {
//    assert.Assert(sq.IsValid(), "invalid square %d", sq)
//  }
func Assert(test bool, msg string, a ...interface{}) {
	if DEBUG && !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
