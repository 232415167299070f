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
	. "github.com/corvidchess/corvid/internal/types"
)

// psqt holds one quarter-board (file a..d, rank 1..8) per piece type; the
// e..h files mirror the a..d files, so the table is declared once per
// side and flipped for Black. Row 0 is rank 8, row 7 is rank 1, matching
// the FEN top-to-bottom order the table was transcribed in.
var psqtMg = [PtLength][8][4]int16{
	Pawn: {
		{0, 0, 0, 0},
		{1, 9, 16, 25},
		{7, 9, 16, 23},
		{0, 1, 6, 16},
		{-10, -10, 5, 11},
		{-10, -5, 0, 4},
		{-7, -1, -3, -2},
		{0, 0, 0, 0},
	},
	Knight: {
		{-110, -38, -30, -24},
		{-24, -13, 0, 6},
		{-12, 1, 16, 25},
		{5, 7, 20, 26},
		{0, 7, 16, 22},
		{-15, 2, 5, 12},
		{-19, -10, -6, 7},
		{-57, -18, -13, -8},
	},
	Bishop: {
		{-20, -15, -10, -10},
		{-15, -8, -4, -2},
		{3, 4, 3, 2},
		{2, 10, 5, 5},
		{3, 4, 4, 9},
		{0, 10, 7, 5},
		{-2, 12, 7, 5},
		{-10, -5, -5, -2},
	},
	Rook: {
		{-5, 0, 0, 0},
		{5, 10, 10, 10},
		{-5, 0, 0, 0},
		{-5, 0, 0, 0},
		{-5, 0, 0, 0},
		{-5, 0, 0, 0},
		{-5, 0, 0, 0},
		{-5, 0, 0, 0},
	},
	Queen: {
		{-29, -21, -12, -8},
		{-11, -18, -7, -4},
		{-3, 0, 0, 2},
		{-3, -3, 0, 0},
		{-3, -3, 0, 0},
		{-7, 4, -1, -2},
		{-11, 0, 2, 2},
		{-16, -11, -7, 0},
	},
	King: {
		{-42, -34, -39, -42},
		{-34, -28, -32, -36},
		{-29, -24, -28, -30},
		{-31, -27, -30, -31},
		{-28, -13, -28, -28},
		{-4, 21, -12, -16},
		{35, 42, 10, -3},
		{32, 53, 20, 0},
	},
}

var psqtEg = [PtLength][8][4]int16{
	Pawn: {
		{0, 0, 0, 0},
		{16, 21, 25, 32},
		{11, 13, 15, 17},
		{-2, 0, 2, 2},
		{-7, -3, 0, 0},
		{-7, -3, 0, 0},
		{-7, -3, 0, 0},
		{0, 0, 0, 0},
	},
	Knight: {
		{-61, -26, -18, -12},
		{-12, 0, 4, 10},
		{-4, 5, 13, 18},
		{4, 9, 18, 25},
		{2, 9, 16, 21},
		{-8, 3, 7, 19},
		{-17, -4, -2, 7},
		{-34, -17, -12, -5},
	},
	Bishop: {
		{-12, -7, -5, -5},
		{-4, 0, 2, 3},
		{-2, 2, 5, 4},
		{1, 3, 3, 4},
		{-3, 2, 2, 2},
		{-5, -1, 5, 5},
		{-8, -4, -2, -1},
		{-13, -10, -7, -4},
	},
	Rook: {
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	Queen: {
		{-17, -9, -4, -2},
		{-6, 6, 8, 11},
		{0, 10, 10, 16},
		{2, 12, 14, 20},
		{1, 10, 14, 19},
		{-1, 4, 6, 8},
		{-14, -11, -8, -8},
		{-23, -20, -19, -11},
	},
	King: {
		{-81, -20, -14, -10},
		{-10, 20, 24, 24},
		{10, 32, 34, 36},
		{-3, 19, 24, 26},
		{-14, 10, 16, 18},
		{-20, 0, 9, 12},
		{-24, -6, 0, 3},
		{-57, -26, -20, -18},
	},
}

func quarterFile(f File) int {
	if f >= FileE {
		return int(FileH - f)
	}
	return int(f)
}

// psqtScore returns the piece-square term for a piece of type pt and
// color c standing on sq, from White's point of view (the evaluator
// negates it for Black at the call site the same way it negates every
// other per-side term).
func psqtScore(pt PieceType, c Color, sq Square) Score {
	fIdx := quarterFile(sq.FileOf())
	rIdx := 7 - int(sq.RankOf())
	if c == Black {
		rIdx = int(sq.RankOf())
	}
	return Score{Mg: psqtMg[pt][rIdx][fIdx], Eg: psqtEg[pt][rIdx][fIdx]}
}

// mobilityTable[pieceIdx] holds the mg/eg bonus indexed by the number of
// squares a piece of that kind can reach. Index 0 = knights, 1 = bishops,
// 2 = rooks, 3 = queens - pawns and kings don't get a mobility term.
var mobilityMg = [4][]int16{
	{-39, -7, 10, 24, 31, 35, 39, 43, 46},
	{-45, -21, -6, 5, 14, 21, 25, 29, 32, 35, 39, 44, 48, 52},
	{-63, -40, -15, -5, 1, 4, 7, 12, 15, 18, 20, 22, 26, 28, 29},
	{-54, -39, -27, -18, -11, -6, -2, 1, 4, 7, 9, 12, 15, 17,
		20, 22, 25, 27, 30, 32, 34, 37, 39, 41, 43, 45, 47, 49},
}

var mobilityEg = [4][]int16{
	{-67, -24, -2, 10, 18, 26, 31, 33, 34},
	{-83, -35, -12, 5, 14, 21, 26, 31, 36, 40, 43, 46, 48, 50},
	{-77, -32, -2, 23, 38, 48, 55, 61, 66, 71, 75, 79, 83, 87, 90},
	{-86, -55, -38, -25, -15, -7, -1, 4, 8, 12, 15, 18, 20, 23,
		25, 27, 29, 31, 33, 35, 37, 39, 41, 43, 45, 47, 49, 51},
}

// mobilityIndex maps a piece type to its row in the mobility tables above.
func mobilityIndex(pt PieceType) int {
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

// mobilityScore returns the mobility bonus for n reachable squares,
// clamping to the table's last entry the way a missing count (shouldn't
// happen, tables are sized to the piece's theoretical maximum) is handled
// defensively.
func mobilityScore(pt PieceType, n int) Score {
	idx := mobilityIndex(pt)
	mg, eg := mobilityMg[idx], mobilityEg[idx]
	if n >= len(mg) {
		n = len(mg) - 1
	}
	return Score{Mg: mg[n], Eg: eg[n]}
}

// centerSquares is the classic four-square center (d4/d5/e4/e5).
var centerSquares = SquareOf(FileD, Rank4).Bb() | SquareOf(FileD, Rank5).Bb() |
	SquareOf(FileE, Rank4).Bb() | SquareOf(FileE, Rank5).Bb()

// extendedCenterSquares is the twelve-square extended center: the
// immediate ring around the four-square center on the c/d/e/f files and
// ranks 3..6, with the four center squares themselves excluded.
var extendedCenterSquares = func() Bitboard {
	var bb Bitboard
	for f := FileC; f <= FileF; f++ {
		for r := Rank3; r <= Rank6; r++ {
			bb = bb.Set(SquareOf(f, r))
		}
	}
	return bb &^ centerSquares
}()

const (
	centerBonus         = 4
	extendedCenterBonus = 3
)
