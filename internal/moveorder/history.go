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
// Package moveorder ranks pseudo-legal moves so the search kernel tries
// the moves most likely to cause a beta cutoff first: the transposition
// table's suggested move, then internal iterative deepening's best guess,
// then captures ordered by MVV-LVA alone (SEE plays no part in the
// ordering), then quiet moves ordered by the
// history heuristic and killer-move slots.
package moveorder

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// History tracks three complementary signals used to order quiet moves
// that the hash/IID/capture stages didn't already produce:
//
//   - Butterfly: a from/to counter bumped by depth^2 whenever a quiet
//     move causes a beta cutoff, and nudged down for quiets that were
//     tried and failed.
//   - CounterMove: the quiet reply that most often refuted the opponent's
//     last move, indexed by that move's from/to square.
//   - FollowupMove: the same idea one ply further back, indexed by the
//     mover's own previous move, which tends to catch positional plans
//     that unfold over two of the side's own moves.
type History struct {
	Butterfly    [2][SqLength][SqLength]int32
	CounterMove  [2][SqLength][SqLength]Move
	FollowupMove [2][SqLength][SqLength]Move
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// historyMax bounds Butterfly so a long search can't let it overflow or
// let one early cutoff dominate move ordering for the rest of the game.
const historyMax = 1 << 20

// Good records that m caused a beta cutoff at depth (plies remaining),
// rewarding deeper cutoffs more heavily.
func (h *History) Good(c Color, m Move, depth int) {
	bonus := int32(depth * depth)
	cell := &h.Butterfly[c][m.From()][m.To()]
	*cell += bonus - (*cell * bonus / historyMax)
}

// Bad records that m was tried and did not cause a cutoff, so its score
// decays relative to moves that do - otherwise a move could only ever
// gain history weight and ordering would never adapt away from it.
func (h *History) Bad(c Color, m Move, depth int) {
	bonus := int32(depth * depth)
	cell := &h.Butterfly[c][m.From()][m.To()]
	*cell -= bonus + (*cell * bonus / historyMax)
}

// Score returns m's current butterfly score for ordering.
func (h *History) Score(c Color, m Move) int32 {
	return h.Butterfly[c][m.From()][m.To()]
}

// StoreCounterMove records m as the reply that refuted prevMove.
func (h *History) StoreCounterMove(c Color, prevMove, m Move) {
	if prevMove == MoveNone {
		return
	}
	h.CounterMove[c][prevMove.From()][prevMove.To()] = m
}

// CounterMoveFor returns the stored counter to prevMove, or MoveNone.
func (h *History) CounterMoveFor(c Color, prevMove Move) Move {
	if prevMove == MoveNone {
		return MoveNone
	}
	return h.CounterMove[c][prevMove.From()][prevMove.To()]
}

// StoreFollowupMove records m as the reply that paired well with the
// mover's own move two plies earlier.
func (h *History) StoreFollowupMove(c Color, ownPrevMove, m Move) {
	if ownPrevMove == MoveNone {
		return
	}
	h.FollowupMove[c][ownPrevMove.From()][ownPrevMove.To()] = m
}

// FollowupMoveFor returns the stored followup to ownPrevMove, or MoveNone.
func (h *History) FollowupMoveFor(c Color, ownPrevMove Move) Move {
	if ownPrevMove == MoveNone {
		return MoveNone
	}
	return h.FollowupMove[c][ownPrevMove.From()][ownPrevMove.To()]
}

// Age halves every butterfly count, keeping recent search iterations'
// cutoffs weighted more heavily than moves from many iterations ago
// without discarding the table outright.
func (h *History) Age() {
	for c := White; c <= Black; c++ {
		for f := SqA1; f < SqNone; f++ {
			for t := SqA1; t < SqNone; t++ {
				h.Butterfly[c][f][t] /= 2
			}
		}
	}
}

// Clear wipes every table.
func (h *History) Clear() {
	*h = History{}
}

func (h *History) String() string {
	var sb strings.Builder
	nonZero := 0
	for c := White; c <= Black; c++ {
		for f := SqA1; f < SqNone; f++ {
			for t := SqA1; t < SqNone; t++ {
				if h.Butterfly[c][f][t] != 0 {
					nonZero++
				}
			}
		}
	}
	sb.WriteString(out.Sprintf("History: %d non-zero butterfly entries\n", nonZero))
	return sb.String()
}
