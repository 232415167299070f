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
	"math"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evaluator"
	"github.com/corvidchess/corvid/internal/moveorder"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tablebase"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

// rootMove pairs a root move with the value its subtree returned in the
// last completed iteration, so the next iteration can search the
// previous best move first.
type rootMove struct {
	move  Move
	value Value
}

// worker is one Lazy SMP search thread: its own evaluator (and pawn
// cache), its own move-ordering history/killers, and its own two-fold
// repetition path, all sharing the parent Search's transposition table
// and eval cache.
type worker struct {
	id int
	s  *Search

	eval *evaluator.Evaluator
	hist *moveorder.History

	killers     [MaxDepth + 2][2]Move
	pv          [MaxDepth + 2]MoveList
	staticEvals [MaxDepth + 2]Value
	path        []Key
	moveHistory []Move

	selDepth      int
	nullMoveCount int
	statistics    Statistics

	rootMoves []rootMove
	result    *Result
}

func newWorker(id int, s *Search) *worker {
	return &worker{
		id:          id,
		s:           s,
		eval:        evaluator.NewEvaluatorShared(s.evalCache),
		hist:        moveorder.NewHistory(),
		path:        make([]Key, 0, MaxDepth+len(s.gameHistory)+2),
		moveHistory: make([]Move, 0, MaxDepth+2),
	}
}

// legalMoves generates every legal move from pos: check escapes if in
// check, else pseudo-legal captures+quiets filtered by copy-make +
// IsInCheck.
func legalMoves(pos *position.Position, ml *MoveList) {
	var pseudo MoveList
	us := pos.SideToMove()
	if pos.IsInCheck(us) {
		pos.GenerateCheckEscapes(&pseudo)
	} else {
		pos.PseudoLegalMoves(&pseudo)
	}
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		np := pos.DoMove(m)
		if !np.IsInCheck(us) {
			ml.Add(m)
		}
	}
}

// isRepetition reports a two-fold repetition of key within the portion
// of the path that hasn't been made irreversible by a pawn move or
// capture, i.e. the last halfmoveClock plies. A single repeat is treated
// as a draw, not three, since from the search's point of view repeating
// at all signals the opponent has a forced repetition available - the
// usual "two-fold inside search, three-fold at the board" convention.
func (w *worker) isRepetition(key Key, halfmoveClock int) bool {
	n := len(w.path)
	if n < 5 {
		return false
	}
	limit := n - 1 - halfmoveClock
	if limit < 0 {
		limit = 0
	}
	for i := n - 3; i >= limit; i -= 2 {
		if w.path[i] == key {
			return true
		}
	}
	return false
}

func (w *worker) pushPath(key Key, m Move) {
	w.path = append(w.path, key)
	w.moveHistory = append(w.moveHistory, m)
}

func (w *worker) popPath() {
	w.path = w.path[:len(w.path)-1]
	w.moveHistory = w.moveHistory[:len(w.moveHistory)-1]
}

// prevMoveAt returns the move played at ply-1 (the opponent's last move
// as seen from the node at ply), or MoveNone at/before the root.
func (w *worker) prevMoveAt(ply int) Move {
	i := ply - 1
	if i < 0 || i >= len(w.moveHistory) {
		return MoveNone
	}
	return w.moveHistory[i]
}

// ownPrevMoveAt returns this side's own move two plies back, or MoveNone
// if not yet that deep.
func (w *worker) ownPrevMoveAt(ply int) Move {
	i := ply - 2
	if i < 0 || i >= len(w.moveHistory) {
		return MoveNone
	}
	return w.moveHistory[i]
}

// updatePV records m as the best move at ply, followed by the
// continuation already found one ply deeper.
func (w *worker) updatePV(ply int, m Move) {
	line := &w.pv[ply]
	line.Clear()
	line.Add(m)
	child := &w.pv[ply+1]
	for i := 0; i < child.Len(); i++ {
		line.Add(child.At(i))
	}
}

func (w *worker) stopped() bool {
	return w.s.stopFlag.Get() || (w.id > 0 && w.s.stopHelpers.Get())
}

// search is the fail-soft PVS kernel, called with pos already made and
// its Zobrist key already pushed onto w.path.
func (w *worker) search(pos position.Position, alpha, beta Value, depth, ply int, isPV, cutNode bool) Value {
	if ply > w.selDepth {
		w.selDepth = ply
	}

	if depth <= 0 || ply >= MaxDepth {
		return w.quiescence(pos, alpha, beta, ply, 0)
	}

	w.s.addNode()
	if w.id == 0 && w.s.nodesVisited()&2047 == 0 {
		w.s.checkTime()
	}
	if w.stopped() {
		return ValueInfinite // sentinel: caller discards
	}

	us := pos.SideToMove()
	inCheck := pos.IsInCheck(us)

	if ply > 0 {
		if pos.IsInsufficientMaterial() || pos.HalfmoveClock() >= 100 || w.isRepetition(pos.Zobrist(), pos.HalfmoveClock()) {
			return ValueDraw
		}
	}

	if config.Settings.Search.UseMDP {
		if a := -ValueMate + Value(ply); alpha < a {
			alpha = a
		}
		if b := ValueMate - Value(ply); beta > b {
			beta = b
		}
		if alpha >= beta {
			w.statistics.Mdp++
			return alpha
		}
	}

	var ttMove Move
	var ttHit bool
	var ttEval, ttValue Value
	var ttDepth int8
	var ttType ValueType
	if w.s.tt != nil && config.Settings.Search.UseTT {
		ttMove, ttValue, ttEval, ttDepth, ttType, ttHit = w.s.tt.Probe(pos.Zobrist(), ply)
		if ttHit {
			w.statistics.TTHit++
			if int(ttDepth) >= depth && !isPV {
				switch {
				case ttType == ValueTypeExact:
					w.statistics.TTCuts++
					return ttValue
				case ttType == ValueTypeAlpha && ttValue <= alpha:
					w.statistics.TTCuts++
					return alpha
				case ttType == ValueTypeBeta && ttValue >= beta:
					w.statistics.TTCuts++
					return beta
				}
			}
		} else {
			w.statistics.TTMiss++
		}
	}

	if ply > 0 && config.Settings.Search.SyzygyPath != "" {
		if tablebase.Probeable(&pos, config.Settings.Search.SyzygyProbeLimit) {
			if wdl, ok := w.s.tb.ProbeWDL(&pos); ok {
				w.statistics.TBHits++
				v := wdl.Value(ply)
				w.storeTT(pos.Zobrist(), MoveNone, depth, v, ValueTypeExact, v, ply)
				return v
			}
		}
	}

	var staticEval Value
	if !inCheck {
		staticEval = ttEval
		if !ttHit {
			staticEval = w.eval.Evaluate(&pos)
		}
		if ttHit {
			switch {
			case ttType == ValueTypeExact:
				staticEval = ttValue
			case ttType == ValueTypeBeta && ttValue > staticEval:
				staticEval = ttValue
			case ttType == ValueTypeAlpha && ttValue < staticEval:
				staticEval = ttValue
			}
		}
		w.staticEvals[ply] = staticEval
	} else {
		w.staticEvals[ply] = ValueNA
	}

	canPrune := !isPV && !inCheck
	nonPawnMat := pos.NonPawnMaterial(us) > 0

	if canPrune {
		if config.Settings.Search.UseRFP && depth <= 6 && nonPawnMat {
			if staticEval-reverseFutilityMargin[depth] >= beta {
				w.statistics.RfpPrunings++
				return staticEval
			}
		}

		if config.Settings.Search.UseRazoring && depth <= 3 {
			margin := razorMargin[depth]
			if staticEval <= alpha-margin {
				w.statistics.RazorPrunings++
				score := w.quiescence(pos, alpha-margin, alpha-margin+1, ply, 0)
				if score <= alpha-margin {
					return score
				}
			}
		}

		if config.Settings.Search.UseNullMove && depth >= 2 && staticEval >= beta &&
			w.nullMoveCount < 2 && nonPawnMat {
			r := 2 + (32*depth+util.Min(int(staticEval-beta), 384))/128
			np := pos.DoNullMove()
			w.nullMoveCount++
			w.pushPath(np.Zobrist(), MoveNone)
			reduced := depth - 1 - r
			var score Value
			if reduced <= 0 {
				score = -w.quiescence(np, -beta, -beta+1, ply+1, 0)
			} else {
				score = -w.search(np, -beta, -beta+1, reduced, ply+1, false, !cutNode)
			}
			w.popPath()
			w.nullMoveCount--
			if w.stopped() {
				return ValueInfinite
			}
			if score >= beta {
				if depth >= 10 {
					verify := w.search(pos, beta-1, beta, reduced, ply, false, cutNode)
					if w.stopped() {
						return ValueInfinite
					}
					if verify >= beta {
						w.statistics.NullMoveCuts++
						return beta
					}
				} else {
					w.statistics.NullMoveCuts++
					return beta
				}
			}
		}
	}

	var iidMove Move
	if config.Settings.Search.UseIID && ttMove == MoveNone {
		doIID := (isPV && depth >= config.Settings.Search.IIDDepth) ||
			(depth >= iidNonPVDepth && (cutNode || (!inCheck && staticEval >= beta-50-10*Value(depth))))
		if doIID {
			iidDepth := depth - depth/4 - 1
			if !isPV {
				iidDepth = (depth - 5) / 2
			}
			if iidDepth < 1 {
				iidDepth = 1
			}
			w.search(pos, alpha, beta, iidDepth, ply, isPV, cutNode)
			if w.pv[ply].Len() > 0 {
				iidMove = w.pv[ply].At(0)
			}
			w.statistics.IIDSearches++
		}
	}

	w.pv[ply].Clear()

	var killers [2]Move
	if config.Settings.Search.UseKiller {
		killers = w.killers[ply]
	}
	prevMove := w.prevMoveAt(ply)
	ownPrevMove := w.ownPrevMoveAt(ply)
	picker := moveorder.NewPicker(&pos, ttMove, iidMove, killers, w.hist, prevMove, ownPrevMove, inCheck)

	singularMove := w.singularCandidate(pos, ttMove, ttValue, ttDepth, ttType, ttHit, depth, ply)

	bestValue := ValueMin
	bestMove := MoveNone
	movesSearched := 0
	// improving mirrors the static eval's trend for this side: if it
	// beats what it was two plies ago, pruning can afford to be less
	// aggressive since the position is trending in our favor.
	improving := ply >= 2 && !inCheck && w.staticEvals[ply-2] != ValueNA && staticEval > w.staticEvals[ply-2]

	for {
		m := picker.Next()
		if m == MoveNone {
			break
		}

		if w.id == 0 {
			if w.s.nodesVisited()&4095 == 0 {
				w.s.checkTime()
			}
		}
		if w.stopped() {
			return ValueInfinite
		}

		isCapture := m.IsCapture()
		isPromo := m.IsPromotion()
		isTTMove := m == ttMove
		givesCheck := pos.IsCheckMove(m)
		isKiller := m == killers[0] || m == killers[1]

		if canPrune && !isCapture && !isPromo && !isTTMove && !givesCheck && !staticEval.IsMate() {
			pruneDepth := depth
			if pruneDepth >= len(futilityMargin) {
				pruneDepth = len(futilityMargin) - 1
			}
			if config.Settings.Search.UseFutility && staticEval <= alpha-futilityMargin[pruneDepth] && !isKiller {
				w.statistics.FpPrunings++
				continue
			}
			if config.Settings.Search.UseLMP && depth <= 7 {
				lmpBudget := LmpMovesSearched(depth)
				if isPV {
					lmpBudget += depth
				}
				if !improving {
					lmpBudget -= depth / 2
				}
				if movesSearched > lmpBudget {
					w.statistics.LmpCuts++
					continue
				}
			}
			if config.Settings.Search.UseHistoryPr && depth <= 2 {
				threshold := int32(3 - 3*depth*depth)
				cm := w.hist.Score(us, m)
				if cm < threshold {
					continue
				}
			}
			if config.Settings.Search.UseSEEPr && depth <= 5 {
				if pos.SeeForMove(m) < -100*int32(depth) {
					w.statistics.SeePrunings++
					continue
				}
			}
		}

		np := pos.DoMove(m)
		w.pushPath(np.Zobrist(), m)
		movesSearched++

		ext := 0
		reduction := 0
		if config.Settings.Search.UseLMR && depth >= 3 && movesSearched > boolToInt(isPV, 4, 2)+boolToInt(inCheck, 1, 0) &&
			!isCapture && !isPromo && !givesCheck {
			r := int(math.Floor(0.5 + math.Log(float64(depth))*math.Log(float64(movesSearched))/2.1))
			if isKiller {
				r--
			}
			if inCheck {
				r--
			}
			r -= int(w.hist.Score(us, m) / 512)
			if cutNode {
				r++
			}
			if isPV {
				r--
			}
			if r < 0 {
				r = 0
			}
			if r > depth-2 {
				r = depth - 2
			}
			reduction = r
		}
		if reduction == 0 && config.Settings.Search.UseCheckExt && givesCheck && pos.SeeForMove(m) >= 0 {
			ext = 1
			w.statistics.CheckExtensions++
		} else if reduction == 0 && singularMove != MoveNone && m == singularMove {
			ext = 1
			w.statistics.SingularExtensions++
		}

		var score Value
		if movesSearched == 1 {
			score = -w.search(np, -beta, -alpha, depth-1+ext, ply+1, isPV, false)
		} else {
			score = -w.search(np, -alpha-1, -alpha, depth-1-reduction+ext, ply+1, false, !cutNode)
			if score > alpha && reduction > 0 {
				w.statistics.LmrResearches++
				score = -w.search(np, -alpha-1, -alpha, depth-1+ext, ply+1, false, !cutNode)
			}
			if isPV && score > alpha && score < beta {
				w.statistics.AspirationResearches++
				score = -w.search(np, -beta, -alpha, depth-1+ext, ply+1, true, false)
			}
		}

		w.popPath()

		if w.stopped() {
			return ValueInfinite
		}

		if score > bestValue {
			bestValue = score
			bestMove = m
			if score > alpha {
				alpha = score
				w.updatePV(ply, m)
				if score >= beta {
					w.statistics.BetaCuts++
					if movesSearched == 1 {
						w.statistics.BetaCuts1st++
					}
					if !isCapture && config.Settings.Search.UseKiller {
						if killers[0] != m {
							w.killers[ply][1] = w.killers[ply][0]
							w.killers[ply][0] = m
						}
					}
					if !isCapture {
						w.hist.Good(us, m, depth)
						if prevMove != MoveNone {
							w.hist.StoreCounterMove(us, prevMove, m)
						}
						if ownPrevMove != MoveNone {
							w.hist.StoreFollowupMove(us, ownPrevMove, m)
						}
					}
					w.storeTT(pos.Zobrist(), m, depth, score, ValueTypeBeta, staticEval, ply)
					return score
				}
			}
		} else if !isCapture {
			w.hist.Bad(us, m, depth)
		}
	}

	if movesSearched == 0 {
		if inCheck {
			w.statistics.Checkmates++
			return -ValueMate + Value(ply)
		}
		w.statistics.Stalemates++
		return ValueDraw
	}

	vt := ValueTypeAlpha
	if bestMove != MoveNone && bestValue > alpha-1 && w.pv[ply].Len() > 0 {
		vt = ValueTypeExact
	}
	storeMove := bestMove
	if storeMove == MoveNone {
		storeMove = iidMove
	}
	w.storeTT(pos.Zobrist(), storeMove, depth, bestValue, vt, staticEval, ply)
	return bestValue
}

// singularCandidate reports whether ttMove should receive a singular
// extension: every other legal move is searched at a reduced depth
// against a null window just below the TT value (the TT move itself is
// skipped) and, if none of them reaches it, the position is "singular"
// on the TT move and it deserves the extra ply. Returns MoveNone when the conditions don't apply or the
// test doesn't confirm singularity.
func (w *worker) singularCandidate(pos position.Position, ttMove Move, ttValue Value, ttDepth int8, ttType ValueType, ttHit bool, depth, ply int) Move {
	if !config.Settings.Search.UseSingular || !ttHit || ttMove == MoveNone {
		return MoveNone
	}
	if depth < config.Settings.Search.SingularMinD {
		return MoveNone
	}
	if int(ttDepth) < depth-3 {
		return MoveNone
	}
	if ttType != ValueTypeExact && ttType != ValueTypeBeta {
		return MoveNone
	}

	singularBeta := ttValue - Value(10+depth)
	singularDepth := depth/2 - 1
	if singularDepth < 1 {
		singularDepth = 1
	}

	var others MoveList
	legalMoves(&pos, &others)
	for i := 0; i < others.Len(); i++ {
		m := others.At(i)
		if m == ttMove {
			continue
		}
		np := pos.DoMove(m)
		w.pushPath(np.Zobrist(), m)
		score := -w.search(np, -singularBeta-1, -singularBeta, singularDepth, ply+1, false, true)
		w.popPath()
		if w.stopped() {
			return MoveNone
		}
		if score >= singularBeta {
			return MoveNone
		}
	}
	return ttMove
}

func (w *worker) storeTT(key Key, move Move, depth int, value Value, vt ValueType, eval Value, ply int) {
	if w.s.tt == nil || !config.Settings.Search.UseTT {
		return
	}
	d := depth
	if d < 0 {
		d = 0
	}
	if d > 127 {
		d = 127
	}
	w.s.tt.Put(key, move, int8(d), value, vt, eval, ply)
}

func boolToInt(b bool, ifTrue, ifFalse int) int {
	if b {
		return ifTrue
	}
	return ifFalse
}
