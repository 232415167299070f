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
	"github.com/corvidchess/corvid/internal/attacks"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// King safety constants for the quadratic-lookup king-danger scheme and
// its per-piece-type threat weights.
const (
	ksArrayFactor        = 128
	kingDefenselessSquare = 22
	ksPawnFactor         = 11
	kingPressure         = 3
	ksKingPressureFactor = 9
)

// kingThreatMultiplier/kingThreatSquare are indexed by attacker type,
// Knight=0, Bishop=1, Rook=2, Queen=3.
var kingThreatMultiplier = [4]int{8, 4, 6, 6}
var kingThreatSquare = [4]int{7, 12, 10, 13}
var safeCheckBonus = [4]int{77, 24, 49, 51}

// castlingRightsValue[n] is the mg bonus for having n of the two castling
// rights still available.
var castlingRightsValue = [3]int16{0, 24, 62}

func kingThreatIdx(pt PieceType) int {
	switch pt {
	case Knight:
		return 0
	case Bishop:
		return 1
	case Rook:
		return 2
	default:
		return 3
	}
}

// kingZone is the king-ring used throughout evaluator.go: the king's own
// square plus every square a king standing there could step to.
func kingZone(sq Square) Bitboard {
	return sq.Bb() | attacks.KingAttacks(sq)
}

// pawnShieldValue scores the pawns in front of a castled king; a missing
// shield pawn on a file is itself penalized via the rank-0 entry of
// pawnShieldValue.
var pawnShieldValue = [4][8]int16{
	{-12, 22, 26, 11, 7, 5, -12, 0},
	{-18, 37, 23, -2, -3, -5, -12, 0},
	{-13, 38, 5, -3, -4, -5, -7, 0},
	{-7, 16, 10, 7, -2, -6, -8, 0},
}

// shieldColumn maps a file to pawnShieldValue's row: the h/a files share a
// row, g/b, f/c, and e/d, since the shield shape is symmetric about the
// board's center.
func shieldColumn(f File) int {
	d := int(f)
	if d > 3 {
		d = 7 - d
	}
	return 3 - d
}

// pawnShieldScore returns the mg bonus for us's pawn shield in front of
// kingSq on file f, using the pawn nearest the king (the one with the
// smallest relative-rank distance), or the rank-0 "missing" entry if no
// such pawn exists.
func pawnShieldScore(pos *position.Position, us Color, f File) int16 {
	pawns := pos.Pieces(us, Pawn) & FileBb[f]
	if pawns == BbZero {
		return pawnShieldValue[shieldColumn(f)][0]
	}
	var dist int
	if us == White {
		dist = int(pawns.Lsb().RankOf())
	} else {
		dist = int(Rank8 - pawns.Msb().RankOf())
	}
	if dist < 0 {
		dist = 0
	}
	if dist > 7 {
		dist = 7
	}
	return pawnShieldValue[shieldColumn(f)][dist]
}

// kingSafety combines shield/castling-rights bonuses with a quadratic
// "king danger" score (points squared over ksArrayFactor, with no upper
// cap) built from attacker counts and undefended king-ring squares.
func (e *Evaluator) kingSafety(us Color) Score {
	pos := e.pos
	them := us.Flip()
	kingSq := pos.King(us)

	var s Score
	s.Mg += castlingRightsValue[castlingRightCount(pos, us)]

	for f := kingSq.FileOf() - 1; f <= kingSq.FileOf()+1; f++ {
		if f > FileH {
			continue
		}
		s.Mg += pawnShieldScore(pos, us, f)
	}

	ring := kingZone(kingSq)
	undefendedRing := ring &^ e.attacked[us]
	points := 0
	for pt := Knight; pt <= Queen; pt++ {
		idx := kingThreatIdx(pt)
		bb := pos.Pieces(them, pt)
		attackerCount := 0
		ringAttacks := BbZero
		for bb != BbZero {
			sq := bb.PopLsb()
			atk := attacksFor(pt, sq, e.occAll)
			if atk&ring != BbZero {
				attackerCount++
				ringAttacks |= atk & ring
			}
			if safe := atk & undefendedRing; safe != BbZero {
				points += safeCheckBonus[idx] * safe.PopCount()
			}
		}
		if attackerCount == 0 {
			continue
		}
		points += kingThreatMultiplier[idx] * attackerCount
		points += kingThreatSquare[idx] * ringAttacks.PopCount()
	}

	points += kingDefenselessSquare * (undefendedRing & e.attacked[them]).PopCount()
	points += kingPressure * (e.attacked[them] &^ e.attacked[us]).PopCount() * ksKingPressureFactor / 32

	danger := points * points / ksArrayFactor
	s.Mg -= int16(danger)
	s.Eg -= int16(danger / 2)

	return s
}

func castlingRightCount(pos *position.Position, c Color) int {
	n := 0
	if pos.CastlingRights().Has(KingSide(c)) {
		n++
	}
	if pos.CastlingRights().Has(QueenSide(c)) {
		n++
	}
	return n
}

func attacksFor(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Knight:
		return attacks.KnightAttacks(sq)
	case Bishop:
		return attacks.BishopAttacks(sq, occ)
	case Rook:
		return attacks.RookAttacks(sq, occ)
	case Queen:
		return attacks.QueenAttacks(sq, occ)
	case King:
		return attacks.KingAttacks(sq)
	default:
		return BbZero
	}
}
