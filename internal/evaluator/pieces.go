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

package evaluator

import (
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Material and imbalance constants.
var materialValueMg = [PtLength]int16{Pawn: 100, Knight: 397, Bishop: 441, Rook: 668, Queen: 1356}
var materialValueEg = [PtLength]int16{Pawn: 137, Knight: 397, Bishop: 451, Rook: 726, Queen: 1403}

const bishopPairBonus = 58

const (
	knightClosedMg = 3
	knightClosedEg = 5
)

// ownOppImbalance[own][opp] is the per-pair penalty/bonus applied once for
// every own/opponent piece-count product, indexed Pawn..Queen both ways;
// the table is intentionally asymmetric (own bishops vs opp knights is not
// the mirror of own knights vs opp bishops) because knight pairs lose value
// faster than bishop pairs as the opposing minor count grows.
var ownOppImbalance = [PtLength][PtLength]Score{
	Pawn:   {Pawn: {0, 0}},
	Knight: {Pawn: {2, 2}, Knight: {0, 0}},
	Bishop: {Pawn: {1, 1}, Knight: {-5, -5}, Bishop: {0, 0}},
	Rook:   {Pawn: {-1, -1}, Knight: {-6, -6}, Bishop: {-13, -13}, Rook: {0, 0}},
	Queen:  {Pawn: {-1, -1}, Knight: {-10, -10}, Bishop: {-5, -5}, Rook: {-18, -18}, Queen: {0, 0}},
}

// Minor-piece and rook constants.
var (
	bishopPawnColorPenalty       = Score{-4, -3}
	bishopRammedPawnColorPenalty = Score{-5, -9}
	shieldedMinorBonus           = Score{15, 0}

	knightOutpostBonus                   = Score{32, 17}
	knightOutpostPawnDefBonus            = Score{20, 11}
	knightPotentialOutpostBonus          = Score{10, 10}
	knightPotentialOutpostPawnDefBonus   = Score{10, 10}
	bishopOutpostBonus                   = Score{20, 12}
	bishopOutpostPawnDefBonus            = Score{23, 10}
	bishopPotentialOutpostBonus          = Score{8, 6}
	bishopPotentialOutpostPawnDefBonus   = Score{12, 9}

	rookOpenFileBonus     = Score{37, 16}
	rookSemiopenFileBonus = Score{20, 2}
	rookPawnRankThreat    = Score{2, 9}
)

// Threat constants.
var (
	undefendedPawn  = Score{-1, -18}
	undefendedMinor = Score{-18, -48}
	pawnPieceThreat = Score{-74, -44}
	minorRookThreat = Score{-67, -39}
	minorQueenThreat = Score{-71, -30}
	rookQueenThreat  = Score{-73, -29}
	loosePawn        = Score{-9, -1}
	looseMinor       = Score{-14, -13}
)

// outpostSquares are the ranks a minor piece must stand on to qualify as an
// outpost: never attackable by an enemy pawn again, ranks 4-6 for White.
func outpostSquares(c Color) Bitboard {
	if c == White {
		return RankBb[Rank4] | RankBb[Rank5] | RankBb[Rank6]
	}
	return RankBb[Rank5] | RankBb[Rank4] | RankBb[Rank3]
}

// pieceTerm sums the per-minor outpost/shield bonuses, the bishop
// pawn-color penalty, and the rook file/pawn-rank terms for one side.
func (e *Evaluator) pieceTerm(us Color) Score {
	p := e.pos
	them := us.Flip()
	var s Score

	ourPawns := p.Pieces(us, Pawn)
	theirPawns := p.Pieces(them, Pawn)
	theirPawnAttacks := e.pawnAttacks[them]
	ourPawnAttacks := e.pawnAttacks[us]
	shieldSquares := ourPawns.ShiftNorth()
	if us == Black {
		shieldSquares = ourPawns.ShiftSouth()
	}

	knights := p.Pieces(us, Knight)
	for knights != BbZero {
		sq := knights.PopLsb()
		if config.Settings.Eval.UseOutposts {
			s = s.Add(e.outpostTerm(sq, us, knightOutpostBonus, knightOutpostPawnDefBonus,
				knightPotentialOutpostBonus, knightPotentialOutpostPawnDefBonus, theirPawnAttacks, ourPawnAttacks))
		}
		if sq.Bb()&shieldSquares != BbZero {
			s = s.Add(shieldedMinorBonus)
		}
	}

	bishops := p.Pieces(us, Bishop)
	rammed := rammedPawns(p, us)
	for bb := bishops; bb != BbZero; {
		sq := bb.PopLsb()
		sameColor := lightSquares
		if sq.Bb()&lightSquares == BbZero {
			sameColor = ^lightSquares
		}
		n := int16((ourPawns & sameColor).PopCount())
		s.Mg += bishopPawnColorPenalty.Mg * n
		s.Eg += bishopPawnColorPenalty.Eg * n
		nRammed := int16((rammed & sameColor).PopCount())
		s.Mg += bishopRammedPawnColorPenalty.Mg * nRammed
		s.Eg += bishopRammedPawnColorPenalty.Eg * nRammed
	}

	for bb := bishops; bb != BbZero; {
		sq := bb.PopLsb()
		if config.Settings.Eval.UseOutposts {
			s = s.Add(e.outpostTerm(sq, us, bishopOutpostBonus, bishopOutpostPawnDefBonus,
				bishopPotentialOutpostBonus, bishopPotentialOutpostPawnDefBonus, theirPawnAttacks, ourPawnAttacks))
		}
		if sq.Bb()&shieldSquares != BbZero {
			s = s.Add(shieldedMinorBonus)
		}
	}

	rooks := p.Pieces(us, Rook)
	for rooks != BbZero {
		sq := rooks.PopLsb()
		f := sq.FileOf()
		ownOnFile := ourPawns & FileBb[f]
		oppOnFile := theirPawns & FileBb[f]
		if ownOnFile == BbZero && oppOnFile == BbZero {
			s = s.Add(rookOpenFileBonus)
		} else if ownOnFile == BbZero {
			s = s.Add(rookSemiopenFileBonus)
		}
		seventh := RankBb[Rank7]
		if us == Black {
			seventh = RankBb[Rank2]
		}
		if sq.Bb()&seventh != BbZero {
			s.Mg += rookPawnRankThreat.Mg * int16((theirPawns & seventh).PopCount())
			s.Eg += rookPawnRankThreat.Eg * int16((theirPawns & seventh).PopCount())
		}
	}

	return s
}

// outpostTerm scores one minor on sq as an outpost: nothing if an enemy
// pawn currently attacks sq, otherwise the full bonus on the outpost ranks
// or the smaller "potential" bonus outside them, each with a larger
// variant when sq is defended by an own pawn.
func (e *Evaluator) outpostTerm(sq Square, us Color, full, fullDef, potential, potentialDef Score, theirPawnAttacks, ourPawnAttacks Bitboard) Score {
	if theirPawnAttacks.Has(sq) {
		return Score{}
	}
	if sq.Bb()&outpostSquares(us) == BbZero {
		if ourPawnAttacks.Has(sq) {
			return potentialDef
		}
		return potential
	}
	if ourPawnAttacks.Has(sq) {
		return fullDef
	}
	return full
}

// lightSquares is every square where (file+rank) is odd, the traditional
// board coloring convention (a1 is dark).
var lightSquares = func() Bitboard {
	var bb Bitboard
	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			if (int(f)+int(r))%2 == 1 {
				bb = bb.Set(SquareOf(f, r))
			}
		}
	}
	return bb
}()

// threats penalizes hanging pawns and minors, and pieces attacked by a
// lower-value enemy piece.
func (e *Evaluator) threats(us Color) Score {
	p := e.pos
	them := us.Flip()
	var s Score

	ourPawns := p.Pieces(us, Pawn)
	undefendedPawns := ourPawns &^ e.pawnAttacks[us]
	s.Mg += undefendedPawn.Mg * int16((undefendedPawns & e.attacked[them]).PopCount())
	s.Eg += undefendedPawn.Eg * int16((undefendedPawns & e.attacked[them]).PopCount())
	s.Mg += loosePawn.Mg * int16((undefendedPawns &^ e.attacked[them]).PopCount())
	s.Eg += loosePawn.Eg * int16((undefendedPawns &^ e.attacked[them]).PopCount())

	minors := p.Pieces(us, Knight) | p.Pieces(us, Bishop)
	defended := e.attacked[us]
	undefendedMinors := minors &^ defended
	s.Mg += undefendedMinor.Mg * int16((undefendedMinors & e.attacked[them]).PopCount())
	s.Eg += undefendedMinor.Eg * int16((undefendedMinors & e.attacked[them]).PopCount())
	s.Mg += looseMinor.Mg * int16((undefendedMinors &^ e.attacked[them]).PopCount())
	s.Eg += looseMinor.Eg * int16((undefendedMinors &^ e.attacked[them]).PopCount())

	theirPawnAttacks := e.pawnAttacks[them]
	attackedMinors := minors & theirPawnAttacks
	s.Mg += pawnPieceThreat.Mg * int16(attackedMinors.PopCount())
	s.Eg += pawnPieceThreat.Eg * int16(attackedMinors.PopCount())

	rooksQueens := p.Pieces(us, Rook) | p.Pieces(us, Queen)
	theirMinors := p.Pieces(them, Knight) | p.Pieces(them, Bishop)
	var theirMinorAttacks Bitboard
	bb := theirMinors
	for bb != BbZero {
		sq := bb.PopLsb()
		pt := Knight
		if p.Pieces(them, Bishop).Has(sq) {
			pt = Bishop
		}
		theirMinorAttacks |= attacksFor(pt, sq, e.occAll)
	}
	attackedRooks := rooksQueens & theirMinorAttacks
	s.Mg += minorRookThreat.Mg * int16((attackedRooks & p.Pieces(us, Rook)).PopCount())
	s.Eg += minorRookThreat.Eg * int16((attackedRooks & p.Pieces(us, Rook)).PopCount())
	s.Mg += minorQueenThreat.Mg * int16((theirMinorAttacks & p.Pieces(us, Queen)).PopCount())
	s.Eg += minorQueenThreat.Eg * int16((theirMinorAttacks & p.Pieces(us, Queen)).PopCount())

	var theirRookAttacks Bitboard
	rb := p.Pieces(them, Rook)
	for rb != BbZero {
		theirRookAttacks |= attacksFor(Rook, rb.PopLsb(), e.occAll)
	}
	s.Mg += rookQueenThreat.Mg * int16((theirRookAttacks & p.Pieces(us, Queen)).PopCount())
	s.Eg += rookQueenThreat.Eg * int16((theirRookAttacks & p.Pieces(us, Queen)).PopCount())

	return s
}

// maxScaleFactor is the denominator every scale factor is expressed over:
// a drawish endgame scales the tapered score down toward zero without the
// search having to special-case it as an exact draw.
const maxScaleFactor = 32

var oppositeBishopScaling = [2]int{14, 28}
var pawnlessScaling = [4]int{3, 4, 7, 24}

// scaleFactor shrinks the endgame score for recognized drawish material
// patterns: opposite-colored bishops, and a side that is ahead but has no
// pawns left, scaled by the size of its non-pawn material edge.
func (e *Evaluator) scaleFactor(s Score) int {
	p := e.pos
	if s.Eg == 0 {
		return maxScaleFactor
	}
	strong, weak := White, Black
	if s.Eg < 0 {
		strong, weak = Black, White
	}

	if p.Pieces(White, Bishop).PopCount() == 1 && p.Pieces(Black, Bishop).PopCount() == 1 {
		wBishopLight := p.Pieces(White, Bishop)&lightSquares != BbZero
		bBishopLight := p.Pieces(Black, Bishop)&lightSquares != BbZero
		if wBishopLight != bBishopLight {
			pawns := p.Pieces(White, Pawn).PopCount() + p.Pieces(Black, Pawn).PopCount()
			idx := 0
			if pawns > 2 {
				idx = 1
			}
			onlyMinorsLeft := p.Pieces(White, Rook) == BbZero && p.Pieces(Black, Rook) == BbZero &&
				p.Pieces(White, Queen) == BbZero && p.Pieces(Black, Queen) == BbZero &&
				p.Pieces(White, Knight) == BbZero && p.Pieces(Black, Knight) == BbZero
			if onlyMinorsLeft {
				return oppositeBishopScaling[idx]
			}
		}
	}

	if p.Pieces(strong, Pawn) == BbZero {
		strongNonPawn := nonPawnMaterial(p, strong)
		weakNonPawn := nonPawnMaterial(p, weak)
		diff := strongNonPawn - weakNonPawn
		switch {
		case diff <= int(materialValueEg[Bishop]):
			return pawnlessScaling[0]
		case diff <= int(materialValueEg[Rook]):
			return pawnlessScaling[1]
		case diff <= int(materialValueEg[Queen]):
			return pawnlessScaling[2]
		default:
			return pawnlessScaling[3]
		}
	}

	return maxScaleFactor
}

func nonPawnMaterial(p *position.Position, c Color) int {
	total := 0
	for pt := Knight; pt <= Queen; pt++ {
		total += p.Pieces(c, pt).PopCount() * int(materialValueEg[pt])
	}
	return total
}

// endgameSpecialCase recognizes a handful of drawn/trivially-won material
// signatures that the general tapered formula handles poorly: bare kings,
// or the classic wrong-bishop KBP-vs-K fortress. Both return a draw; no
// won endgame (such as a lone king facing overwhelming material) is
// recognized here. Returns ok=false when none applies, in which case the
// caller falls through to the ordinary tapered+scaled path.
func (e *Evaluator) endgameSpecialCase(s Score) (Value, bool) {
	p := e.pos
	whiteNonPawn := nonPawnMaterial(p, White)
	blackNonPawn := nonPawnMaterial(p, Black)
	whitePawns := p.Pieces(White, Pawn).PopCount()
	blackPawns := p.Pieces(Black, Pawn).PopCount()

	// lone king vs king + any material: drive toward mate/known-win value,
	// already captured by the ordinary material+PSQT terms, so only the
	// true dead draws need special-casing here.
	if whiteNonPawn == 0 && blackNonPawn == 0 && whitePawns == 0 && blackPawns == 0 {
		return ValueDraw, true
	}

	if wrongBishopDraw(p) {
		return ValueDraw, true
	}

	return 0, false
}

// wrongBishopDraw recognizes KBP-vs-K where the lone pawn is a rook pawn
// promoting on a square the bishop doesn't control and the defending king
// has reached the corner: an unconditional draw regardless of material
// count.
func wrongBishopDraw(p *position.Position) bool {
	for _, c := range [2]Color{White, Black} {
		them := c.Flip()
		if p.Pieces(c, Bishop).PopCount() != 1 {
			continue
		}
		if p.Pieces(c, Knight) != BbZero || p.Pieces(c, Rook) != BbZero || p.Pieces(c, Queen) != BbZero {
			continue
		}
		if p.Pieces(them, Pawn) != BbZero || p.Pieces(them, Knight) != BbZero ||
			p.Pieces(them, Bishop) != BbZero || p.Pieces(them, Rook) != BbZero || p.Pieces(them, Queen) != BbZero {
			continue
		}
		pawns := p.Pieces(c, Pawn)
		if pawns == BbZero {
			continue
		}
		onlyRookPawns := pawns&^(FileBb[FileA]|FileBb[FileH]) == BbZero
		if !onlyRookPawns {
			continue
		}
		bishopLight := p.Pieces(c, Bishop)&lightSquares != BbZero
		promoFile := FileA
		if pawns&FileBb[FileH] != BbZero {
			promoFile = FileH
		}
		promoRank := Rank8
		if c == Black {
			promoRank = Rank1
		}
		promoSquareLight := SquareOf(promoFile, promoRank).Bb()&lightSquares != BbZero
		if bishopLight == promoSquareLight {
			continue
		}
		kingSq := p.King(them)
		dist := ManhattanDistance(kingSq, SquareOf(promoFile, promoRank))
		if dist <= 2 {
			return true
		}
	}
	return false
}
