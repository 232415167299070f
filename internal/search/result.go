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

package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// Result is what a completed (or stopped) search reports back: the move
// to play, an optional ponder move, the score behind that choice, and a
// few depth/timing figures for the UCI "info"/"bestmove" lines.
type Result struct {
	BestMove   Move
	PonderMove Move
	BestValue  Value

	SearchTime  time.Duration
	SearchDepth int
	ExtraDepth  int

	BookMove bool

	// MultiPV holds one entry per requested PV line, best first, when
	// config.Settings.Search.MultiPV > 1. Entry 0 always mirrors
	// BestMove/BestValue.
	MultiPV []PVEntry
}

// PVEntry is one ranked line of a multi-PV result: the root move and the
// value its subtree searched to.
type PVEntry struct {
	Move  Move
	Value Value
}

// String renders a short human-readable summary.
func (r *Result) String() string {
	return out.Sprintf("Best Move: %s (%s) Ponder: %s Depth: %d/%d Time: %s",
		r.BestMove.StringUci(), r.BestValue, r.PonderMove.StringUci(), r.SearchDepth, r.ExtraDepth, r.SearchTime)
}
