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

package types

// CastlingRights packs the four castling rights into a 4-bit value, used
// both as Position state and as an index into the Zobrist castling-rights
// sub-table.
type CastlingRights uint8

// Castling right bits.
const (
	CastlingNone      CastlingRights = 0
	CastlingWhiteOO   CastlingRights = 1 << 0
	CastlingWhiteOOO  CastlingRights = 1 << 1
	CastlingBlackOO   CastlingRights = 1 << 2
	CastlingBlackOOO  CastlingRights = 1 << 3
	CastlingAny       CastlingRights = CastlingWhiteOO | CastlingWhiteOOO | CastlingBlackOO | CastlingBlackOOO
	CastlingRightsLen                = 16
)

// Has reports whether all bits of other are set in cr.
func (cr CastlingRights) Has(other CastlingRights) bool {
	return cr&other == other
}

// Remove clears the given bits and returns the result.
func (cr CastlingRights) Remove(other CastlingRights) CastlingRights {
	return cr &^ other
}

// String renders castling rights in FEN order, e.g. "KQkq", or "-" if none.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteOO) {
		s += "K"
	}
	if cr.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if cr.Has(CastlingBlackOO) {
		s += "k"
	}
	if cr.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}

// kingSideRight/queenSideRight index by Color.
var kingSideRight = [2]CastlingRights{CastlingWhiteOO, CastlingBlackOO}
var queenSideRight = [2]CastlingRights{CastlingWhiteOOO, CastlingBlackOOO}

// KingSide returns the king-side castling bit for color c.
func KingSide(c Color) CastlingRights { return kingSideRight[c] }

// QueenSide returns the queen-side castling bit for color c.
func QueenSide(c Color) CastlingRights { return queenSideRight[c] }
