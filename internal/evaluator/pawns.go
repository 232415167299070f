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
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Passed-pawn and pawn-structure constants: the rFactor family and the
// per-rank passer/phalanx/connected tables.
var passerBonus = [8]Score{
	{0, 0}, {3, 11}, {3, 13}, {7, 16}, {23, 23}, {56, 56}, {108, 108}, {0, 0},
}
var passerFileBonus = [8]Score{
	{13, 11}, {3, 6}, {-8, -2}, {-11, -7}, {-11, -7}, {-8, -2}, {3, 6}, {11, 13},
}
var phalanxBonus = [8]Score{
	{0, 0}, {6, -1}, {4, 2}, {11, 6}, {28, 20}, {55, 40}, {79, 72}, {0, 0},
}
var connectedBonus = [8]Score{
	{0, 0}, {0, 0}, {9, 3}, {7, 2}, {16, 9}, {33, 33}, {55, 55}, {0, 0},
}

const (
	freePromotionBonusMg = 14
	freePromotionBonusEg = 19
	freeStopBonusMg      = 6
	freeStopBonusEg      = 8
	fullyDefendedBonusMg = 9
	fullyDefendedBonusEg = 11
	defendedPasserMg     = 7
	defendedPasserEg     = 8
	ownKingDistEg        = 3
	oppKingDistEg        = 7
)

var (
	doubledPenalty            = Score{-7, -20}
	isolatedPenalty           = Score{-20, -14}
	isolatedSemiopenPenalty   = Score{-6, -6}
	backwardPenalty           = Score{-14, -10}
	backwardSemiopenPenalty   = Score{-15, -11}
	undefendedPawnPenalty     = Score{-8, -5}
)

// rFactor is the quadratic ramp used to scale a passed pawn's "free path"
// bonuses by how advanced it already is: zero for a pawn that has barely
// moved, rising fast as it nears promotion.
func rFactor(relRank int) int {
	r := relRank - 1
	return r * (r - 1) / 2
}

func relativeRank(c Color, sq Square) int {
	if c == White {
		return int(sq.RankOf()) + 1
	}
	return int(Rank8-sq.RankOf()) + 1
}

func adjacentFiles(f File) Bitboard {
	var bb Bitboard
	if f > FileA {
		bb |= FileBb[f-1]
	}
	if f < FileH {
		bb |= FileBb[f+1]
	}
	return bb
}

// passedMask is every square in front of sq (exclusive) on sq's file and
// the two adjacent files, from c's point of view - if no enemy pawn
// occupies it, the pawn on sq is passed.
func passedMask(c Color, sq Square) Bitboard {
	files := FileBb[sq.FileOf()] | adjacentFiles(sq.FileOf())
	var ahead Bitboard
	if c == White {
		for r := sq.RankOf() + 1; r <= Rank8; r++ {
			ahead |= RankBb[r]
		}
	} else {
		for r := sq.RankOf(); r > Rank1; r-- {
			ahead |= RankBb[r-1]
		}
	}
	return files & ahead
}

func fileAhead(c Color, sq Square) Bitboard {
	file := FileBb[sq.FileOf()]
	var ahead Bitboard
	if c == White {
		for r := sq.RankOf() + 1; r <= Rank8; r++ {
			ahead |= RankBb[r]
		}
	} else {
		for r := sq.RankOf(); r > Rank1; r-- {
			ahead |= RankBb[r-1]
		}
	}
	return file & ahead
}

// nearestAhead returns the square of path closest to c's own side of the
// board - i.e. the very next square the pawn would step onto - since
// Bitboard.Lsb/Msb pick the lowest/highest square index, not "nearest".
func nearestAhead(path Bitboard, c Color) Square {
	if c == White {
		return path.Lsb()
	}
	return path.Msb()
}

func pawnAttacksBb(pawns Bitboard, c Color) Bitboard {
	if c == White {
		return pawns.ShiftNortheast() | pawns.ShiftNorthwest()
	}
	return pawns.ShiftSoutheast() | pawns.ShiftSouthwest()
}

// evaluatePawns computes the full pawn-structure term for both sides,
// probing/filling the pawn cache first. The result is always from
// White's point of view, matching every other term in evaluator.go.
func (e *Evaluator) evaluatePawns() Score {
	if e.pawnCache != nil {
		if s, ok := e.pawnCache.get(e.pos.PawnKey()); ok {
			return s
		}
	}
	s := e.pawnStructure(White).Sub(e.pawnStructure(Black))
	if e.pawnCache != nil {
		e.pawnCache.put(e.pos.PawnKey(), s)
	}
	return s
}

func (e *Evaluator) pawnStructure(us Color) Score {
	them := us.Flip()
	ourPawns := e.pos.Pieces(us, Pawn)
	theirPawns := e.pos.Pieces(them, Pawn)
	theirAttacks := pawnAttacksBb(theirPawns, them)
	ourAttacks := pawnAttacksBb(ourPawns, us)
	ourKing := e.pos.King(us)
	theirKing := e.pos.King(them)

	var s Score
	bb := ourPawns
	for bb != BbZero {
		sq := bb.PopLsb()
		f := sq.FileOf()
		rr := relativeRank(us, sq)

		onFile := ourPawns & FileBb[f]
		hasNeighbor := ourPawns&adjacentFiles(f) != BbZero
		defended := pawnAttacksBb(ourPawns&^sq.Bb(), us).Has(sq)
		semiOpen := theirPawns&FileBb[f] == BbZero

		// doubled: penalize every pawn on the file except the most-advanced one.
		if onFile.PopCount() > 1 && sq != relevantDoubledSquare(onFile, us) {
			s = s.Add(doubledPenalty)
		}

		if !hasNeighbor {
			if semiOpen {
				s = s.Add(isolatedSemiopenPenalty)
			} else {
				s = s.Add(isolatedPenalty)
			}
		} else if isBackward(ourPawns, theirPawns, us, sq) {
			if semiOpen {
				s = s.Add(backwardSemiopenPenalty)
			} else {
				s = s.Add(backwardPenalty)
			}
		} else if !defended && hasNeighbor {
			s = s.Add(undefendedPawnPenalty)
		}

		// phalanx / connected
		if adjacentFiles(f)&RankBb[sq.RankOf()]&ourPawns != BbZero {
			s = s.Add(phalanxBonus[rr-1])
		}
		if defended {
			s = s.Add(connectedBonus[rr-1])
		}

		// passed pawn
		if passedMask(us, sq)&theirPawns == BbZero {
			s = s.Add(passedPawnScore(e.pos, us, sq, rr, ourAttacks, theirAttacks))
		}
	}

	if e.phase == ScoreRes {
		avgOwn, avgOpp := kingTropism(ourPawns, ourKing, theirKing)
		s.Eg += int16(avgOpp*oppKingDistEg - avgOwn*ownKingDistEg)
	}

	return s
}

// relevantDoubledSquare picks the pawn on a doubled file that is NOT
// penalized: the one furthest advanced (the "real" pawn leading the push).
func relevantDoubledSquare(file Bitboard, c Color) Square {
	if c == White {
		return file.Msb()
	}
	return file.Lsb()
}

// isBackward reports whether the pawn on sq has fallen behind its
// neighbors to the point that it can never be defended by them again and
// its advance square is covered by an enemy pawn.
func isBackward(ourPawns, theirPawns Bitboard, c Color, sq Square) bool {
	f := sq.FileOf()
	var behind Bitboard
	if c == White {
		for r := Rank1; r <= sq.RankOf(); r++ {
			behind |= RankBb[r]
		}
	} else {
		for r := sq.RankOf(); r <= Rank8; r++ {
			behind |= RankBb[r]
		}
	}
	if ourPawns&adjacentFiles(f)&behind != BbZero {
		return false
	}
	var stop Square
	if c == White {
		stop = sq.To(North)
	} else {
		stop = sq.To(South)
	}
	if !stop.IsValid() {
		return false
	}
	return pawnAttacksBb(theirPawns, c.Flip()).Has(stop)
}

// passedPawnScore scores one passed pawn: the base rank+file bonus, plus
// the rFactor-scaled family of "free path" bonuses, with a
// rook/queen-behind-the-passer role swap: an enemy major behind the
// passer on its file defends the path instead of our own major, and vice
// versa.
func passedPawnScore(pos *position.Position, us Color, sq Square, rr int, ourAttacks, theirAttacks Bitboard) Score {
	them := us.Flip()
	s := passerBonus[rr-1].Add(passerFileBonus[sq.FileOf()])

	path := fileAhead(us, sq)
	occ := pos.OccupiedSquares()
	blocked := path&occ != BbZero

	rf := rFactor(rr)
	if rf == 0 {
		return s
	}

	majorsBehind := fileAhead(them, sq) & (pos.Pieces(us, Rook) | pos.Pieces(us, Queen))
	enemyMajorsBehind := fileAhead(them, sq) & (pos.Pieces(them, Rook) | pos.Pieces(them, Queen))
	pathDefended := path &^ theirAttacks
	pathAttacked := path & theirAttacks
	if enemyMajorsBehind != BbZero {
		// an enemy major supports the blockader from behind: treat the
		// whole path as attacked regardless of our own piece attacks.
		pathDefended = BbZero
		pathAttacked = path
	} else if majorsBehind != BbZero {
		pathDefended = path
		pathAttacked = BbZero
	}

	if !blocked && pathAttacked == BbZero {
		s.Mg += int16(rf * freePromotionBonusMg)
		s.Eg += int16(rf * freePromotionBonusEg)
	}
	stop := nearestAhead(path, us)
	if path != BbZero && !occ.Has(stop) && !theirAttacks.Has(stop) {
		s.Mg += int16(rf * freeStopBonusMg)
		s.Eg += int16(rf * freeStopBonusEg)
	}
	if pathDefended == path {
		s.Mg += int16(rf * fullyDefendedBonusMg)
		s.Eg += int16(rf * fullyDefendedBonusEg)
	} else if path != BbZero && ourAttacks.Has(stop) {
		s.Mg += int16(rf * defendedPasserMg)
		s.Eg += int16(rf * defendedPasserEg)
	}
	return s
}

// kingTropism returns the average Manhattan distance of a side's pawns to
// its own king and to the enemy king, used only in the endgame.
func kingTropism(pawns Bitboard, ownKing, oppKing Square) (own, opp int) {
	n := pawns.PopCount()
	if n == 0 {
		return 0, 0
	}
	bb := pawns
	var sumOwn, sumOpp int
	for bb != BbZero {
		sq := bb.PopLsb()
		sumOwn += ManhattanDistance(sq, ownKing)
		sumOpp += ManhattanDistance(sq, oppKing)
	}
	return sumOwn / n, sumOpp / n
}
