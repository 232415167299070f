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

import "strings"

// Piece packs a Color and a PieceType into a single small value:
// bit 3 is the color, bits 0-2 are the piece type.
type Piece uint8

// Piece constants.
const (
	PieceNone   Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)
	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
	PieceLength Piece = 16
)

// MakePiece builds a Piece from its color and type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(pt) | Piece(c)<<3
}

// TypeOf returns the PieceType part of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0b0111)
}

// ColorOf returns the Color part of p. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// IsValid reports whether p is a real piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

const pieceChars = "-PNBRQK -pnbrqk "

// Char returns the FEN character for p (upper case for White, lower for Black).
func (p Piece) Char() string {
	return string(pieceChars[p])
}

// PieceFromChar parses a single FEN piece character, or PieceNone if s
// isn't exactly one recognised character.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceChars, s[0])
	if idx < 0 || idx == 7 || idx == 15 {
		return PieceNone
	}
	return Piece(idx)
}

// String returns the English "White Pawn" style name of p.
func (p Piece) String() string {
	if p == PieceNone {
		return "None"
	}
	color := "White"
	if p.ColorOf() == Black {
		color = "Black"
	}
	return color + " " + p.TypeOf().String()
}
