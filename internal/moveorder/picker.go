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

package moveorder

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Stage is the staged move generator's current phase, driving what kind
// of move Next produces and in what order:
// NONE -> HASH_MOVE -> [IID_MOVE] -> CAPTURES -> QUIETS -> DONE. Killer
// moves are not a separate stage: they're scored into the quiet stage
// with a bonus that outranks history, so a killer only surfaces once it's
// confirmed pseudo-legal by appearing in the generated quiet list.
type Stage int8

// Stage constants, in generation order.
const (
	StageNone Stage = iota
	StageHashMove
	StageIIDMove
	StageGenCaptures
	StageCaptures
	StageGenQuiets
	StageQuiets
	StageDone
)

// killerBonus outranks any butterfly/counter/followup score so a killer
// move that is actually pseudo-legal here (it was found in the generated
// quiet list, not merely assumed legal) is tried first among quiets.
const killerBonus = historyMax * 4

// MvvLvaValue gives captures a coarse ordering independent of the
// tapered evaluator: value of the victim dominates, value of the
// attacker is a tie-breaker (prefer capturing with the cheapest piece).
func MvvLvaValue(p *position.Position, m Move) int32 {
	victim := p.PieceAt(m.To())
	if m.IsEnPassant() {
		victim = MakePiece(p.SideToMove().Flip(), Pawn)
	}
	attacker := p.PieceAt(m.From())
	return int32(victim.TypeOf().ValueOf())*16 - int32(attacker.TypeOf().ValueOf())
}

// Picker is a staged, partial-selection-sort move generator: it only
// pays the cost of scoring and sorting a stage's moves once that stage
// is actually reached, so a beta cutoff in the capture stage never
// touches quiet-move generation at all.
type Picker struct {
	pos *position.Position

	hashMove Move
	iidMove  Move
	killers  [2]Move

	history      *History
	prevMove     Move
	ownPrevMove  Move

	stage Stage

	captures    MoveList
	captureScores [MaxMoves]int32
	capIdx      int

	quiets      MoveList
	quietScores [MaxMoves]int32
	qIdx        int

	inCheck bool
}

// NewPicker returns a Picker for pos. hashMove and iidMove may be
// MoveNone. killers, history, prevMove (the opponent's last move) and
// ownPrevMove (this side's own move two plies back) feed the quiet-move
// ordering heuristics; history may be nil if move ordering stats aren't
// being tracked (e.g. perft).
func NewPicker(pos *position.Position, hashMove, iidMove Move, killers [2]Move, history *History, prevMove, ownPrevMove Move, inCheck bool) *Picker {
	return &Picker{
		pos:         pos,
		hashMove:    hashMove,
		iidMove:     iidMove,
		killers:     killers,
		history:     history,
		prevMove:    prevMove,
		ownPrevMove: ownPrevMove,
		stage:       StageHashMove,
		inCheck:     inCheck,
	}
}

// Stage returns the picker's current stage, which callers use to decide
// e.g. whether a move came from the capture stage (for SEE pruning) or
// the quiet stage (for history updates on a cutoff).
func (pk *Picker) Stage() Stage { return pk.stage }

// Next returns the next move to try, or MoveNone once every stage is
// exhausted.
func (pk *Picker) Next() Move {
	for {
		switch pk.stage {
		case StageHashMove:
			pk.stage = StageIIDMove
			if pk.hashMove != MoveNone {
				return pk.hashMove
			}

		case StageIIDMove:
			pk.stage = StageGenCaptures
			if pk.iidMove != MoveNone && pk.iidMove != pk.hashMove {
				return pk.iidMove
			}

		case StageGenCaptures:
			if pk.inCheck {
				pk.pos.GenerateCheckEscapes(&pk.captures)
			} else {
				pk.pos.GenerateCaptures(&pk.captures)
			}
			for i := 0; i < pk.captures.Len(); i++ {
				pk.captureScores[i] = MvvLvaValue(pk.pos, pk.captures.At(i))
			}
			pk.stage = StageCaptures

		case StageCaptures:
			if m, ok := pk.pickBest(&pk.captures, pk.captureScores[:pk.captures.Len()], &pk.capIdx); ok {
				if m == pk.hashMove || m == pk.iidMove {
					continue
				}
				return m
			}
			if pk.inCheck {
				// check-escape generation already returned everything;
				// skip straight past the quiet-only stages.
				pk.stage = StageDone
				continue
			}
			pk.stage = StageGenQuiets

		case StageGenQuiets:
			pk.pos.GenerateQuiets(&pk.quiets)
			us := pk.pos.SideToMove()
			for i := 0; i < pk.quiets.Len(); i++ {
				m := pk.quiets.At(i)
				if m == pk.killers[0] || m == pk.killers[1] {
					pk.quietScores[i] = killerBonus
					continue
				}
				score := int32(0)
				if pk.history != nil {
					score = pk.history.Score(us, m)
					if cm := pk.history.CounterMoveFor(us, pk.prevMove); cm == m {
						score += historyMax
					}
					if fm := pk.history.FollowupMoveFor(us, pk.ownPrevMove); fm == m {
						score += historyMax
					}
				}
				pk.quietScores[i] = score
			}
			pk.stage = StageQuiets

		case StageQuiets:
			if m, ok := pk.pickBest(&pk.quiets, pk.quietScores[:pk.quiets.Len()], &pk.qIdx); ok {
				if m == pk.hashMove || m == pk.iidMove {
					continue
				}
				return m
			}
			pk.stage = StageDone

		case StageDone:
			return MoveNone
		}
	}
}

// pickBest does a partial selection sort: it finds the best-scoring move
// from *idx onward, swaps it into place, and returns it - an O(n^2) sort
// that is worth paying only move by move, since most nodes cut off long
// before the whole stage is exhausted.
func (pk *Picker) pickBest(ml *MoveList, scores []int32, idx *int) (Move, bool) {
	if *idx >= ml.Len() {
		return MoveNone, false
	}
	best := *idx
	for i := *idx + 1; i < ml.Len(); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	ml.Swap(*idx, best)
	scores[*idx], scores[best] = scores[best], scores[*idx]
	m := ml.At(*idx)
	*idx++
	return m, true
}
