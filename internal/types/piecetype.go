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

// PieceType is a kind of chess piece, independent of color.
type PieceType uint8

// PieceType constants.
const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// IsValid reports whether pt is Pawn..King.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// IsSlider reports whether pt slides along rays (bishop, rook, queen).
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeValue = [PtLength]Value{0, 100, 320, 330, 500, 900, 20000}

// ValueOf returns the static material value of pt in centipawns, used by
// MVV-LVA ordering and non-pawn-material checks. Distinct from the
// SEE exchange values in internal/position, which the spec calls out as
// a separate table.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var gamePhaseValue = [PtLength]int{0, 0, 1, 1, 2, 4, 0}

// GamePhaseValue is the per-piece-type weight used to compute the tapered
// evaluation phase.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

var pieceTypeToChar = "-PNBRQK"

// Char returns the single upper-case FEN character for pt.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

var pieceTypeToString = [PtLength]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the English name of pt.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}
