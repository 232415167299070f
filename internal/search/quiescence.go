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
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/moveorder"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// deltaMargin/futilityQMargin/checkQMargin are the fixed centipawn
// margins quiescence uses for delta pruning, futility pruning, and the
// shallow limited-check extension.
const (
	deltaMargin     = 130
	futilityQMargin = 80
	checkQMargin    = 110
	maxCheckPlies   = 2
)

// orderByScore does the same partial-selection-sort the staged move
// ordering driver uses, but for the flat, ungenerated-in-stages move
// lists quiescence works with.
func orderByScore(ml *MoveList, scores []int32) {
	n := ml.Len()
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			ml.Swap(i, best)
			scores[i], scores[best] = scores[best], scores[i]
		}
	}
}

// quiescence resolves tactical noise at the leaves: captures, promotions
// and (for the first couple of plies) checks, until the position is
// "quiet" enough for the static evaluator to be trusted.
func (w *worker) quiescence(pos position.Position, alpha, beta Value, ply, qPly int) Value {
	w.s.addNode()
	if ply > w.selDepth {
		w.selDepth = ply
	}
	if w.stopped() {
		return ValueInfinite
	}

	us := pos.SideToMove()
	if pos.IsInCheck(us) {
		return w.checkQuiescence(pos, alpha, beta, ply, qPly)
	}

	if pos.IsInsufficientMaterial() || w.isRepetition(pos.Zobrist(), pos.HalfmoveClock()) {
		return ValueDraw
	}

	var ttMove Move
	var ttHit bool
	var ttValue, ttEval Value
	var ttType ValueType
	if w.s.tt != nil && config.Settings.Search.UseTT {
		ttMove, ttValue, ttEval, _, ttType, ttHit = w.s.tt.Probe(pos.Zobrist(), ply)
		if ttHit {
			switch {
			case ttType == ValueTypeExact:
				return ttValue
			case ttType == ValueTypeAlpha && ttValue <= alpha:
				return alpha
			case ttType == ValueTypeBeta && ttValue >= beta:
				return beta
			}
		}
	}

	standPat := ttEval
	if !ttHit {
		standPat = w.eval.Evaluate(&pos)
	}
	if standPat >= beta {
		w.statistics.BetaCuts++
		w.storeTT(pos.Zobrist(), ttMove, -qPly, standPat, ValueTypeBeta, standPat, ply)
		return standPat
	}
	if alpha < standPat {
		alpha = standPat
	}
	bestValue := standPat

	var captures MoveList
	pos.GenerateCaptures(&captures)
	scores := make([]int32, captures.Len())
	for i := 0; i < captures.Len(); i++ {
		scores[i] = moveorder.MvvLvaValue(&pos, captures.At(i))
	}
	orderByScore(&captures, scores)

	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)
		if m.IsPromotion() {
			continue // handled in the dedicated promotion pass below
		}

		victim := pos.PieceAt(m.To())
		victimValue := Value(0)
		if m.IsEnPassant() {
			victimValue = Pawn.ValueOf()
		} else if victim != PieceNone {
			victimValue = victim.TypeOf().ValueOf()
		}

		if standPat+victimValue < alpha-deltaMargin {
			if v := standPat + victimValue + deltaMargin; v > bestValue {
				bestValue = v
			}
			continue
		}
		see := pos.SeeForMove(m)
		if config.Settings.Search.UseSEE {
			if standPat < alpha-futilityQMargin && see <= 0 {
				continue
			}
			if see < 0 {
				continue
			}
		}

		np := pos.DoMove(m)
		if np.IsInCheck(us) {
			continue
		}
		w.pushPath(np.Zobrist(), m)
		score := -w.quiescence(np, -beta, -alpha, ply+1, qPly+1)
		w.popPath()
		if w.stopped() {
			return ValueInfinite
		}
		if score > bestValue {
			bestValue = score
			if score > alpha {
				alpha = score
			}
		}
		if score >= beta {
			w.storeTT(pos.Zobrist(), m, -qPly, score, ValueTypeBeta, standPat, ply)
			return score
		}
	}

	var promos MoveList
	pos.GeneratePromotions(&promos)
	for i := 0; i < promos.Len(); i++ {
		m := promos.At(i)
		if config.Settings.Search.UseSEE && pos.SeeForMove(m) < 0 {
			continue
		}
		np := pos.DoMove(m)
		if np.IsInCheck(us) {
			continue
		}
		w.pushPath(np.Zobrist(), m)
		score := -w.quiescence(np, -beta, -alpha, ply+1, qPly+1)
		w.popPath()
		if w.stopped() {
			return ValueInfinite
		}
		if score > bestValue {
			bestValue = score
			if score > alpha {
				alpha = score
			}
		}
		if score >= beta {
			w.storeTT(pos.Zobrist(), m, -qPly, score, ValueTypeBeta, standPat, ply)
			return score
		}
	}

	if qPly < maxCheckPlies && standPat >= alpha-checkQMargin {
		var checks MoveList
		pos.GenerateQuietChecks(&checks)
		for i := 0; i < checks.Len(); i++ {
			m := checks.At(i)
			if config.Settings.Search.UseSEE && pos.SeeForMove(m) < 0 {
				continue
			}
			np := pos.DoMove(m)
			if np.IsInCheck(us) {
				continue
			}
			w.pushPath(np.Zobrist(), m)
			score := -w.checkQuiescence(np, -beta, -alpha, ply+1, qPly+1)
			w.popPath()
			if w.stopped() {
				return ValueInfinite
			}
			if score > bestValue {
				bestValue = score
				if score > alpha {
					alpha = score
				}
			}
			if score >= beta {
				w.storeTT(pos.Zobrist(), m, -qPly, score, ValueTypeBeta, standPat, ply)
				return score
			}
		}
	}

	vt := ValueTypeAlpha
	if bestValue > alpha {
		vt = ValueTypeExact
	}
	w.storeTT(pos.Zobrist(), ttMove, -qPly, bestValue, vt, standPat, ply)
	return bestValue
}

// checkQuiescence handles the in-check case: every evasion is
// pseudo-legal-filtered to legal, MVV-LVA-ordered, and searched, except
// that the first move tried is never SEE-pruned since an in-check position may
// have no good-looking escape at all.
func (w *worker) checkQuiescence(pos position.Position, alpha, beta Value, ply, qPly int) Value {
	us := pos.SideToMove()

	var evasions MoveList
	var all MoveList
	pos.GenerateCheckEscapes(&all)
	for i := 0; i < all.Len(); i++ {
		np := pos.DoMove(all.At(i))
		if !np.IsInCheck(us) {
			evasions.Add(all.At(i))
		}
	}

	if evasions.Len() == 0 {
		return -ValueMate + Value(ply) + Value(qPly)
	}

	scores := make([]int32, evasions.Len())
	for i := 0; i < evasions.Len(); i++ {
		scores[i] = moveorder.MvvLvaValue(&pos, evasions.At(i))
	}
	orderByScore(&evasions, scores)

	bestValue := ValueMin
	for i := 0; i < evasions.Len(); i++ {
		m := evasions.At(i)
		if i > 0 && config.Settings.Search.UseSEE && pos.SeeForMove(m) < 0 {
			continue
		}
		np := pos.DoMove(m)
		w.pushPath(np.Zobrist(), m)
		score := -w.quiescence(np, -beta, -alpha, ply+1, qPly+1)
		w.popPath()
		if w.stopped() {
			return ValueInfinite
		}
		if score > bestValue {
			bestValue = score
			if score > alpha {
				alpha = score
			}
		}
		if score >= beta {
			return score
		}
	}
	return bestValue
}
