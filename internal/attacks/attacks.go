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
// Package attacks precomputes every lookup table the move generator and
// evaluator need to answer "what does a piece on this square attack":
// knight/king leaper attacks, pawn attacks, the in-between-squares table,
// and magic-bitboard sliding attacks for bishops and rooks.
//
// Everything here is built once by Init (called from internal/position's
// package init) from the fixed seedMagic constant and is immutable
// afterwards - safe to read concurrently from every Lazy SMP search thread.
package attacks

import (
	. "github.com/corvidchess/corvid/internal/types"
)

var (
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	pawnAttacks   [2][SqLength]Bitboard

	bishopTable magicTable
	rookTable   magicTable

	inBetween [SqLength][SqLength]Bitboard
	rays      [SqLength][OrientationLength]Bitboard

	initialized bool
)

type magicSquare struct {
	mask  Bitboard
	magic uint64
	shift uint
	attks []Bitboard
}

type magicTable struct {
	sq [SqLength]magicSquare
}

func (t *magicTable) attacksFor(sq Square, occ Bitboard) Bitboard {
	m := &t.sq[sq]
	idx := (uint64(occ&m.mask) * m.magic) >> m.shift
	return m.attks[idx]
}

// KnightAttacks returns the knight attack bitboard from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king attack bitboard from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// BishopAttacks returns the bishop attack bitboard from sq given the
// board occupancy occ, via a magic-bitboard table lookup.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return bishopTable.attacksFor(sq, occ)
}

// RookAttacks returns the rook attack bitboard from sq given occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return rookTable.attacksFor(sq, occ)
}

// QueenAttacks is the union of bishop and rook attacks from sq.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// SliderAttacks dispatches to Bishop/Rook/QueenAttacks by piece type.
func SliderAttacks(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	default:
		return BbZero
	}
}

// InBetween returns the bitboard of squares strictly between a and b when
// they share a rank, file, or diagonal; otherwise the empty bitboard.
func InBetween(a, b Square) Bitboard {
	return inBetween[a][b]
}

// Ray returns the full ray from sq in orientation o on an empty board.
func Ray(sq Square, o Orientation) Bitboard {
	return rays[sq][o]
}

// Init builds every table. Safe to call more than once; subsequent calls
// are no-ops. Must be called before any position/movegen/evaluator code
// runs - internal/position's init() calls this automatically.
func Init() {
	if initialized {
		return
	}
	initLeaperAttacks()
	initRays()
	initInBetween()
	initMagics(&bishopTable, bishopDeltas, bishopRelevantBits)
	initMagics(&rookTable, rookDeltas, rookRelevantBits)
	initialized = true
}

func initLeaperAttacks() {
	knightDeltas := []int{17, 15, 10, 6, -6, -10, -15, -17}
	kingDeltas := []int{8, -8, 1, -1, 9, 7, -7, -9}
	for sq := SqA1; sq < SqNone; sq++ {
		knightAttacks[sq] = leaperAttack(sq, knightDeltas, 2)
		kingAttacks[sq] = leaperAttack(sq, kingDeltas, 1)
		pawnAttacks[White][sq] = pawnAttackBb(sq, White)
		pawnAttacks[Black][sq] = pawnAttackBb(sq, Black)
	}
}

// leaperAttack builds a leaper's (knight/king) attack set by filtering
// deltas whose implied file-step would wrap around the board edge.
func leaperAttack(sq Square, deltas []int, maxFileStep int) Bitboard {
	var bb Bitboard
	for _, d := range deltas {
		to := int(sq) + d
		if to < 0 || to >= SqLength {
			continue
		}
		if FileDistance(sq.FileOf(), Square(to).FileOf()) > maxFileStep {
			continue
		}
		bb = bb.Set(Square(to))
	}
	return bb
}

func pawnAttackBb(sq Square, c Color) Bitboard {
	bb := sq.Bb()
	if c == White {
		return bb.ShiftNortheast() | bb.ShiftNorthwest()
	}
	return bb.ShiftSoutheast() | bb.ShiftSouthwest()
}

var bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// raySlide walks from sq in the given file/rank step direction, stopping
// (inclusive of the blocking square) the first time it hits a bit in occ.
// With occ == BbAll it naturally terminates at the first ray step since
// genuinely every square is "occupied"; callers that want a full empty-
// board ray pass occ == BbZero.
func raySlide(sq Square, df, dr int, occ Bitboard) Bitboard {
	var bb Bitboard
	f, r := int(sq.FileOf()), int(sq.RankOf())
	for {
		f += df
		r += dr
		if f < 0 || f > 7 || r < 0 || r > 7 {
			break
		}
		s := SquareOf(File(f), Rank(r))
		bb = bb.Set(s)
		if occ.Has(s) {
			break
		}
	}
	return bb
}

func slidingAttacksOnTheFly(sq Square, occ Bitboard, deltas [4][2]int) Bitboard {
	var bb Bitboard
	for _, d := range deltas {
		bb |= raySlide(sq, d[0], d[1], occ)
	}
	return bb
}

// relevantMask is the attack set on an empty board with the board-edge
// squares removed from the far end of each ray (a slider doesn't need to
// know whether the very edge square is occupied, since there's nothing
// beyond it to block).
func relevantMask(sq Square, deltas [4][2]int) Bitboard {
	full := slidingAttacksOnTheFly(sq, BbZero, deltas)
	edge := (RankBb[Rank1] | RankBb[Rank8]) &^ RankBb[sq.RankOf()]
	edge |= (FileBb[FileA] | FileBb[FileH]) &^ FileBb[sq.FileOf()]
	return full &^ edge
}

func bishopRelevantBits(sq Square) int { return relevantMask(sq, bishopDeltas).PopCount() }
func rookRelevantBits(sq Square) int   { return relevantMask(sq, rookDeltas).PopCount() }

func initMagics(t *magicTable, deltas [4][2]int, relevantBits func(Square) int) {
	for sq := SqA1; sq < SqNone; sq++ {
		mask := relevantMask(sq, deltas)
		nBits := uint(relevantBits(sq))
		magic, table, ok := findMagic(mask, nBits, func(occ Bitboard) Bitboard {
			return slidingAttacksOnTheFly(sq, occ, deltas)
		}, 100_000_000)
		if !ok {
			// Magic generation failure is fatal at startup - it should
			// never happen with the tuned seed.
			panic("attacks: failed to find magic number for square " + sq.String())
		}
		t.sq[sq] = magicSquare{mask: mask, magic: magic, shift: 64 - nBits, attks: table}
	}
}

func initRays() {
	dirs := [OrientationLength][2]int{
		N: {0, 1}, E: {1, 0}, S: {0, -1}, W: {-1, 0},
		NE: {1, 1}, SE: {1, -1}, SW: {-1, -1}, NW: {-1, 1},
	}
	for sq := SqA1; sq < SqNone; sq++ {
		for o := 0; o < OrientationLength; o++ {
			d := dirs[o]
			rays[sq][o] = raySlide(sq, d[0], d[1], BbZero)
		}
	}
}

// initInBetween computes inBetween[a][b] by intersecting the rook/bishop
// ray from a that reaches b with the ray from b that reaches a.
func initInBetween() {
	for a := SqA1; a < SqNone; a++ {
		for b := SqA1; b < SqNone; b++ {
			if a == b {
				continue
			}
			if sameLine(a, b) {
				rayAB := lineAttack(a, b)
				rayBA := lineAttack(b, a)
				inBetween[a][b] = rayAB & rayBA
			}
		}
	}
}

func sameLine(a, b Square) bool {
	if a.FileOf() == b.FileOf() || a.RankOf() == b.RankOf() {
		return true
	}
	return FileDistance(a.FileOf(), b.FileOf()) == RankDistance(a.RankOf(), b.RankOf())
}

// lineAttack returns the full ray attack from a on an empty board that
// passes through b, using whichever of rook/bishop deltas apply.
func lineAttack(a, b Square) Bitboard {
	if a.FileOf() == b.FileOf() || a.RankOf() == b.RankOf() {
		return slidingAttacksOnTheFly(a, BbZero, rookDeltas)
	}
	return slidingAttacksOnTheFly(a, BbZero, bishopDeltas)
}
