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
// Package util provides small helper functions used throughout the engine
// that are not available in the Go standard library.
package util

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Abs returns the absolute value of n using a branch-free bit trick.
func Abs(n int) int {
	y := n >> 63
	return (n ^ y) - y
}

// Abs16 is Abs for int16.
func Abs16(n int16) int16 {
	y := n >> 15
	return (n ^ y) - y
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MemStat returns a short string with current heap usage, used for
// debug logging around large allocations (TT/eval-cache resizing).
func MemStat() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Alloc=%d MiB Sys=%d MiB NumGC=%d", m.Alloc/1024/1024, m.Sys/1024/1024, m.NumGC)
}

// AtomicBool is a thin wrapper used as the cooperative stop / stopHelpers
// flag shared across search threads. See internal/search/search.go.
type AtomicBool struct {
	flag int32
}

// Set stores v.
func (b *AtomicBool) Set(v bool) {
	if v {
		atomic.StoreInt32(&b.flag, 1)
	} else {
		atomic.StoreInt32(&b.flag, 0)
	}
}

// Get loads the current value.
func (b *AtomicBool) Get() bool {
	return atomic.LoadInt32(&b.flag) != 0
}
