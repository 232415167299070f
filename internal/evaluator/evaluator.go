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
// Package evaluator computes the static, tapered evaluation of a
// position: material, piece-square tables, mobility, king safety, pawn
// structure, threats and a handful of recognized drawn/won endgames.
// Every term is accumulated as a Score pair from White's point of view
// and only flipped to the side-to-move's perspective once, at the very
// end - the classic "evaluate as White, flip once" convention.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/attacks"
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evalcache"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// phaseAlpha/phaseBeta parametrize the tapered-phase formula; with alpha
// pinned at zero, phase is simply a linear ramp from
// 0 at a full starting set of non-pawn material to ScoreRes once it's
// all gone, over a span of phaseBeta phase-weight points - the sum of
// PieceType.GamePhaseValue() across both full starting armies.
const (
	phaseAlpha = 0
	phaseBeta  = 24
)

// Evaluator holds the reusable, per-search-thread working state for
// static evaluation: its own pawn-structure cache plus a reference to
// the shared, lock-free whole-position eval cache. Not safe for
// concurrent use by more than one goroutine - each Lazy SMP worker owns
// its own Evaluator.
type Evaluator struct {
	log       *logging.Logger
	pawnCache *pawnCache
	evalCache *evalcache.Cache

	pos   *position.Position
	phase int

	occAll      Bitboard
	occ         [ColorLength]Bitboard
	pawnAttacks [ColorLength]Bitboard
	attacked    [ColorLength]Bitboard
	mobility    [ColorLength]Bitboard
}

// NewEvaluator builds an Evaluator with its own pawn cache (if enabled)
// and its own whole-position eval cache built from config. Use
// NewEvaluatorShared instead when several Lazy SMP workers should share
// one eval cache.
func NewEvaluator() *Evaluator {
	return NewEvaluatorShared(evalcache.NewFromConfig())
}

// NewEvaluatorShared builds an Evaluator with its own pawn cache (pawn
// structure recurs far less than whole positions, so each worker keeping
// a private one is cheap and avoids any cross-thread traffic on it) but
// sharing the given eval cache, which is lock-free and XOR-validated
// precisely so Lazy SMP workers can probe and store it concurrently.
// shared may be nil, matching UseEvalCache=false.
func NewEvaluatorShared(shared *evalcache.Cache) *Evaluator {
	e := &Evaluator{log: myLogging.GetLog(), evalCache: shared}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache()
	}
	return e
}

// initEval resets per-position working state: attack sets, occupancy,
// and the game-phase factor. Exported behavior lives in Evaluate; this
// is split out so tests can probe a single term without re-deriving it
// every call.
func (e *Evaluator) initEval(p *position.Position) {
	e.pos = p
	e.occAll = p.OccupiedSquares()
	e.occ[White] = p.Occupancy(White)
	e.occ[Black] = p.Occupancy(Black)
	e.phase = e.computePhase()

	for c := White; c <= Black; c++ {
		e.pawnAttacks[c] = pawnAttacksBb(p.Pieces(c, Pawn), c)
	}
	for c := White; c <= Black; c++ {
		them := c.Flip()
		all := e.pawnAttacks[c] | attacks.KingAttacks(p.King(c))
		rammed := rammedPawns(p, c)
		area := ^e.occ[c] &^ e.pawnAttacks[them] &^ p.King(c).Bb()
		for pt := Knight; pt <= Queen; pt++ {
			bb := p.Pieces(c, pt)
			for bb != BbZero {
				all |= attacksFor(pt, bb.PopLsb(), e.occAll)
			}
		}
		e.attacked[c] = all
		e.mobility[c] = area &^ rammed
	}
}

func rammedPawns(p *position.Position, c Color) Bitboard {
	pawns := p.Pieces(c, Pawn)
	opp := p.Pieces(c.Flip(), Pawn)
	if c == White {
		return pawns & opp.ShiftSouth()
	}
	return pawns & opp.ShiftNorth()
}

func (e *Evaluator) computePhase() int {
	raw := 0
	for c := White; c <= Black; c++ {
		for pt := Knight; pt <= Queen; pt++ {
			raw += e.pos.Pieces(c, pt).PopCount() * pt.GamePhaseValue()
		}
	}
	phase := phaseAlpha + (phaseBeta-raw)*ScoreRes/phaseBeta
	if phase < 0 {
		phase = 0
	}
	if phase > ScoreRes {
		phase = ScoreRes
	}
	return phase
}

// Evaluate returns the static score of p, positive for the side to move.
// It probes the shared eval cache first, keyed by p's Zobrist hash,
// falling back to a full evaluation on a miss.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	if p.IsInsufficientMaterial() {
		return ValueDraw
	}
	e.initEval(p)

	if e.evalCache != nil {
		if s, ok := e.evalCache.Probe(p.Zobrist()); ok {
			return e.finalize(s)
		}
	}

	s := e.evaluateWhitePerspective()

	if e.evalCache != nil {
		e.evalCache.Store(p.Zobrist(), s)
	}
	return e.finalize(s)
}

// finalize tapers s by the current phase, scales it if the position
// matches a recognized drawish-endgame pattern, and orients the result
// to the side to move.
func (e *Evaluator) finalize(s Score) Value {
	if es, ok := e.endgameSpecialCase(s); ok {
		if e.pos.SideToMove() == Black {
			es = -es
		}
		return es
	}
	v := s.Taper(e.phase)
	v = Value(int(v) * e.scaleFactor(s) / maxScaleFactor)
	if e.pos.SideToMove() == Black {
		v = -v
	}
	return v
}

// evaluateWhitePerspective sums every term from White's point of view.
// Each helper returns White-minus-Black so the sign convention never has
// to be juggled term by term.
func (e *Evaluator) evaluateWhitePerspective() Score {
	var s Score

	s = s.Add(e.material())
	s.Mg += config.Settings.Eval.Tempo

	if config.Settings.Eval.UseImbalance {
		s = s.Add(e.imbalance())
	}
	s = s.Add(e.knightClosedBonus())

	s = s.Add(e.psqtTotal())

	if config.Settings.Eval.UseMobility {
		s = s.Add(e.mobilityTotal())
	}
	s = s.Add(e.centerControl())

	s = s.Add(e.evaluatePawns())

	s = s.Add(e.pieceTerm(White)).Sub(e.pieceTerm(Black))

	if config.Settings.Eval.UseKingSafety {
		s = s.Add(e.kingSafety(White)).Sub(e.kingSafety(Black))
	}

	if config.Settings.Eval.UseThreats {
		s = s.Add(e.threats(White)).Sub(e.threats(Black))
	}

	return s
}

// material sums side totals for both phases, plus the bishop-pair bonus.
func (e *Evaluator) material() Score {
	p := e.pos
	var s Score
	for pt := Pawn; pt <= Queen; pt++ {
		diff := p.Pieces(White, pt).PopCount() - p.Pieces(Black, pt).PopCount()
		s.Mg += int16(diff) * materialValueMg[pt]
		s.Eg += int16(diff) * materialValueEg[pt]
	}
	if p.Pieces(White, Bishop).PopCount() >= 2 {
		s.Mg += bishopPairBonus
		s.Eg += bishopPairBonus
	}
	if p.Pieces(Black, Bishop).PopCount() >= 2 {
		s.Mg -= bishopPairBonus
		s.Eg -= bishopPairBonus
	}
	return s
}

func (e *Evaluator) psqtTotal() Score {
	p := e.pos
	var s Score
	for c := White; c <= Black; c++ {
		sign := int16(1)
		if c == Black {
			sign = -1
		}
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces(c, pt)
			for bb != BbZero {
				t := psqtScore(pt, c, bb.PopLsb())
				s.Mg += sign * t.Mg
				s.Eg += sign * t.Eg
			}
		}
	}
	return s
}

func (e *Evaluator) mobilityTotal() Score {
	p := e.pos
	var s Score
	for c := White; c <= Black; c++ {
		sign := int16(1)
		if c == Black {
			sign = -1
		}
		for pt := Knight; pt <= Queen; pt++ {
			bb := p.Pieces(c, pt)
			area := e.mobility[c]
			if pt == Queen {
				// queens additionally avoid squares covered by enemy
				// minors/rooks, not just pawns.
				them := c.Flip()
				area &^= e.minorRookAttacks(them)
			}
			for bb != BbZero {
				sq := bb.PopLsb()
				n := (attacksFor(pt, sq, e.occAll) & area).PopCount()
				t := mobilityScore(pt, n)
				s.Mg += sign * t.Mg
				s.Eg += sign * t.Eg
			}
		}
	}
	return s
}

func (e *Evaluator) minorRookAttacks(c Color) Bitboard {
	p := e.pos
	var bb Bitboard
	for pt := Knight; pt <= Rook; pt++ {
		pieces := p.Pieces(c, pt)
		for pieces != BbZero {
			bb |= attacksFor(pt, pieces.PopLsb(), e.occAll)
		}
	}
	return bb
}

// centerControl scores squares in the four- and twelve-square center
// under attack, excluding squares only reachable through an opposing
// pawn attack.
func (e *Evaluator) centerControl() Score {
	var s Score
	for c := White; c <= Black; c++ {
		sign := int16(1)
		if c == Black {
			sign = -1
		}
		own := e.attacked[c] &^ e.pawnAttacks[c.Flip()]
		s.Mg += sign * int16((own&centerSquares).PopCount()*(centerBonus+extendedCenterBonus))
		s.Mg += sign * int16((own&extendedCenterSquares).PopCount()*extendedCenterBonus)
	}
	return s
}

// imbalance applies the own/opponent matrix: every own-type count times
// opponent-type count product adds ownOppImbalance[own][opp]. There is no
// separate penalty for a side's own pair of knights or rooks.
func (e *Evaluator) imbalance() Score {
	p := e.pos
	var s Score
	for c := White; c <= Black; c++ {
		sign := int16(1)
		if c == Black {
			sign = -1
		}
		them := c.Flip()
		for own := Pawn; own <= Queen; own++ {
			ownCount := p.Pieces(c, own).PopCount()
			if ownCount == 0 {
				continue
			}
			for opp := Pawn; opp <= Queen; opp++ {
				oppCount := p.Pieces(them, opp).PopCount()
				if oppCount == 0 {
					continue
				}
				v := ownOppImbalance[own][opp]
				s.Mg += sign * int16(ownCount*oppCount*int(v.Mg))
				s.Eg += sign * int16(ownCount*oppCount*int(v.Eg))
			}
		}
	}
	return s
}

// knightClosedBonus rewards knights in closed positions, scaled by the
// square of the number of rammed pawn pairs on the board: knights get
// relatively stronger as the position locks up and sliding pieces lose
// scope.
func (e *Evaluator) knightClosedBonus() Score {
	p := e.pos
	rammed := rammedPawns(p, White).PopCount()
	closedness := rammed * rammed
	var s Score
	for c := White; c <= Black; c++ {
		sign := int16(1)
		if c == Black {
			sign = -1
		}
		n := p.Pieces(c, Knight).PopCount()
		s.Mg += sign * int16(closedness*n*knightClosedMg)
		s.Eg += sign * int16(closedness*n*knightClosedEg)
	}
	return s
}

// Report renders a human-readable breakdown for debug logging.
func (e *Evaluator) Report(p *position.Position) string {
	var b strings.Builder
	b.WriteString("Evaluation Report\n")
	b.WriteString("=================\n")
	b.WriteString(out.Sprintf("Position: %s\n", p.String()))
	e.initEval(p)
	b.WriteString(out.Sprintf("Game phase: %d/%d\n", e.phase, ScoreRes))
	b.WriteString(out.Sprintf("Value (side to move): %d\n", e.Evaluate(p)))
	return b.String()
}
