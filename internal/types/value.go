/*
 * corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 The Corvid Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import "fmt"

// Value is a centipawn score or a mate-distance score, always from the
// perspective of the side to move (negamax convention).
type Value int32

// Named Value sentinels.
const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueInfinite Value = 32000
	ValueNA       Value = -32001
	ValueMate     Value = 31000
	ValueMateInMaxPly Value = ValueMate - 1000
	ValueMatedInMaxPly Value = -ValueMate + 1000
	ValueMin      Value = -ValueMate
	ValueMax      Value = ValueMate
)

// IsValid reports whether v is within the representable score range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsMate reports whether v represents a forced mate score (win or loss).
func (v Value) IsMate() bool {
	return v >= ValueMateInMaxPly || v <= ValueMatedInMaxPly
}

// MatePly returns the number of plies to mate for a mate score (positive
// for a winning mate, negative for a losing one). Behaviour is undefined
// if !v.IsMate().
func (v Value) MatePly() int {
	if v > 0 {
		return int(ValueMate - v)
	}
	return -int(ValueMate + v)
}

// String renders a UCI-style "cp N" / "mate N" fragment, with N counted
// in moves.
func (v Value) String() string {
	if v.IsMate() {
		plies := v.MatePly()
		if plies > 0 {
			return fmt.Sprintf("mate %d", (plies+1)/2)
		}
		return fmt.Sprintf("mate %d", (plies-1)/2)
	}
	return fmt.Sprintf("cp %d", v)
}

// ValueType classifies a stored search value relative to the alpha-beta
// window that produced it, per the usual transposition-table convention.
type ValueType uint8

// ValueType constants.
const (
	ValueTypeNone ValueType = iota
	ValueTypeExact
	ValueTypeAlpha // upper bound: true value <= stored value
	ValueTypeBeta  // lower bound: true value >= stored value
)

// String returns a short mnemonic for v.
func (v ValueType) String() string {
	switch v {
	case ValueTypeExact:
		return "EXACT"
	case ValueTypeAlpha:
		return "ALPHA"
	case ValueTypeBeta:
		return "BETA"
	default:
		return "NONE"
	}
}
