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

package position

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// castleInfo describes one side's castling move in full: which squares
// the king and rook start/end on, which squares must be empty, and which
// squares the king must not be attacked on while castling.
type castleInfo struct {
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	emptySquares     Bitboard
	kingPath         Bitboard
	right            CastlingRights
}

var castles = map[CastlingRights]castleInfo{
	CastlingWhiteOO: {
		kingFrom: SqE1, kingTo: SqG1, rookFrom: SqH1, rookTo: SqF1,
		emptySquares: SqF1.Bb() | SqG1.Bb(),
		kingPath:     SqE1.Bb() | SqF1.Bb() | SqG1.Bb(),
		right:        CastlingWhiteOO,
	},
	CastlingWhiteOOO: {
		kingFrom: SqE1, kingTo: SqC1, rookFrom: SqA1, rookTo: SqD1,
		emptySquares: SqB1.Bb() | SqC1.Bb() | SqD1.Bb(),
		kingPath:     SqE1.Bb() | SqD1.Bb() | SqC1.Bb(),
		right:        CastlingWhiteOOO,
	},
	CastlingBlackOO: {
		kingFrom: SqE8, kingTo: SqG8, rookFrom: SqH8, rookTo: SqF8,
		emptySquares: SqF8.Bb() | SqG8.Bb(),
		kingPath:     SqE8.Bb() | SqF8.Bb() | SqG8.Bb(),
		right:        CastlingBlackOO,
	},
	CastlingBlackOOO: {
		kingFrom: SqE8, kingTo: SqC8, rookFrom: SqA8, rookTo: SqD8,
		emptySquares: SqB8.Bb() | SqC8.Bb() | SqD8.Bb(),
		kingPath:     SqE8.Bb() | SqD8.Bb() | SqC8.Bb(),
		right:        CastlingBlackOOO,
	},
}

// rookHomeRight maps a rook's home square to the castling right it
// revokes when that rook moves or is captured.
var rookHomeRight = map[Square]CastlingRights{
	SqA1: CastlingWhiteOOO, SqH1: CastlingWhiteOO,
	SqA8: CastlingBlackOOO, SqH8: CastlingBlackOO,
}
