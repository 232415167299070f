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
// Package movegen hosts the perft move-generation verification harness.
// Move generation itself lives on internal/position.Position; this
// package only drives it and tallies node/capture/check statistics.
package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

var out = message.NewPrinter(language.English)

// Perft counts the leaf positions (and a few move-category statistics)
// reachable from a starting position at a fixed depth, used to verify
// move generation against known-correct node counts.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CheckCounter     uint64
	CastleCounter    uint64
	PromotionCounter uint64

	stop util.AtomicBool
}

// Stop requests that a running perft abort at its next node. Safe to call
// from another goroutine (e.g. a UCI "stop" while perft runs in the
// background), unlike a plain bool field would be.
func (pf *Perft) Stop() {
	pf.stop.Set(true)
}

// NewPerft returns a zeroed Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Run computes perft(depth) from fen and logs a summary, returning the
// total node count (0 if the run was stopped early).
func (pf *Perft) Run(fen string, depth int) uint64 {
	if depth < 1 {
		depth = 1
	}
	pf.reset()

	p, err := position.FromFEN(fen)
	if err != nil {
		out.Printf("perft: invalid FEN %q: %v\n", fen, err)
		return 0
	}

	out.Printf("Perft depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)

	start := time.Now()
	nodes := pf.search(p, depth)
	elapsed := time.Since(start)

	if pf.stop.Get() {
		out.Print("perft stopped\n")
		return 0
	}

	pf.Nodes = nodes
	nanos := elapsed.Nanoseconds()
	if nanos == 0 {
		nanos = 1
	}
	out.Printf("Nodes: %d  Captures: %d  EnPassant: %d  Checks: %d  Castles: %d  Promotions: %d\n",
		pf.Nodes, pf.CaptureCounter, pf.EnpassantCounter, pf.CheckCounter, pf.CastleCounter, pf.PromotionCounter)
	out.Printf("Time: %s  NPS: %d\n", elapsed, (pf.Nodes*uint64(time.Second.Nanoseconds()))/uint64(nanos))
	return nodes
}

func (pf *Perft) reset() {
	pf.Nodes = 0
	pf.CaptureCounter = 0
	pf.EnpassantCounter = 0
	pf.CheckCounter = 0
	pf.CastleCounter = 0
	pf.PromotionCounter = 0
	pf.stop.Set(false)
}

func (pf *Perft) search(p position.Position, depth int) uint64 {
	if pf.stop.Get() {
		return 0
	}

	var ml MoveList
	p.PseudoLegalMoves(&ml)

	var total uint64
	us := p.SideToMove()
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		np := p.DoMove(m)
		if np.IsInCheck(us) {
			continue
		}
		if depth == 1 {
			total++
			pf.tally(m, np)
		} else {
			total += pf.search(np, depth-1)
		}
	}
	return total
}

func (pf *Perft) tally(m Move, after position.Position) {
	if m.IsCapture() {
		pf.CaptureCounter++
	}
	if m.IsEnPassant() {
		pf.EnpassantCounter++
	}
	if m.IsCastle() {
		pf.CastleCounter++
	}
	if m.IsPromotion() {
		pf.PromotionCounter++
	}
	if after.IsInCheck(after.SideToMove()) {
		pf.CheckCounter++
	}
}
