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
// Package tablebase defines the seam between the search kernel and an
// external Syzygy endgame-tablebase oracle. Probing itself is treated as
// opaque: this package owns only the interface the kernel calls through
// and a no-op implementation used whenever SyzygyPath is unset.
package tablebase

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// WDL is the win/draw/loss verdict a tablebase probe returns, from the
// perspective of the side to move.
type WDL int8

const (
	Loss WDL = iota - 2
	BlessedLoss
	Draw
	CursedWin
	Win
)

// Prober is implemented by anything that can answer WDL/DTZ queries for
// a position. ProbeWDL is consulted deep in the search tree. ProbeRootDTZ
// answers for the root position (a move that converts a known win or
// holds a known draw); the search does not call it.
type Prober interface {
	// ProbeWDL reports the tablebase verdict for pos, if available.
	ProbeWDL(pos *position.Position) (WDL, bool)

	// ProbeRootDTZ reports the best move at the root along with its WDL
	// class, if the root position is within the tablebase's piece limit.
	ProbeRootDTZ(pos *position.Position) (Move, WDL, bool)
}

// NullProber never has an answer. It is the default Prober whenever no
// SyzygyPath is configured, so every call site can probe unconditionally
// without a nil check.
type NullProber struct{}

func (NullProber) ProbeWDL(*position.Position) (WDL, bool) { return Draw, false }

func (NullProber) ProbeRootDTZ(*position.Position) (Move, WDL, bool) {
	return MoveNone, Draw, false
}

// value converts a WDL verdict into a mate-distance-style search score,
// close enough to the mate bound to sort above any ordinary evaluation
// but clearly distinguishable in the TT from an actual forced mate.
func (w WDL) value(ply int) Value {
	switch w {
	case Win:
		return ValueMateInMaxPly - Value(ply) - 1
	case CursedWin:
		return ValueDraw + 1
	case BlessedLoss:
		return ValueDraw - 1
	case Loss:
		return ValueMatedInMaxPly + Value(ply) + 1
	default:
		return ValueDraw
	}
}

// Value exports the WDL-to-score mapping for callers outside this
// package (the search kernel, when it stores a probe result as a PV
// entry).
func (w WDL) Value(ply int) Value { return w.value(ply) }

// Probeable reports whether pos is simple enough to be worth probing at
// all: few enough pieces, no castling rights left, and an irreversible
// (halfmove-clock-zero) position.
func Probeable(pos *position.Position, pieceLimit int) bool {
	if pos.CastlingRights() != CastlingNone {
		return false
	}
	if pos.HalfmoveClock() != 0 {
		return false
	}
	return pos.OccupiedSquares().PopCount() <= pieceLimit
}
