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
// Package zobrist builds and exposes the 794-entry random key table used
// to incrementally maintain each Position's hash.
//
// Layout:
//
//	index 0..767    384*color + 64*pieceType + square   (piece-on-square keys)
//	index 768       side-to-move key
//	index 769..784  castling rights (one per 4-bit CastlingRights value)
//	index 785..793  en-passant file (8 files + "none")
package zobrist

import (
	. "github.com/corvidchess/corvid/internal/types"
)

const (
	pieceKeysOffset    = 0
	pieceKeysCount     = 768
	sideKeyIndex       = 768
	castlingKeysOffset = 769
	castlingKeysCount  = 16
	epKeysOffset       = 785
	epKeysCount        = 9
	tableSize          = epKeysOffset + epKeysCount // 794
)

var table [tableSize]Key

// seedZobrist is the fixed seed for the Zobrist key table.
const seedZobrist uint64 = 0x9E3779B97F4A7C15

type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return z
}

func init() {
	rng := splitmix64{state: seedZobrist}
	for i := range table {
		table[i] = Key(rng.next())
	}
}

// pieceIndex mirrors the Piece encoding: TypeOf() is 1..6 (Pawn..King),
// so we subtract 1 to get a dense 0..5 index before applying the layout
// from the doc comment above.
func pieceIndex(p Piece) int {
	return int(p.ColorOf())*384 + (int(p.TypeOf())-1)*64
}

// PieceSquare returns the key for piece p standing on square sq.
func PieceSquare(p Piece, sq Square) Key {
	return table[pieceKeysOffset+pieceIndex(p)+int(sq)]
}

// SideToMove returns the key XORed in/out whenever the side to move flips.
func SideToMove() Key {
	return table[sideKeyIndex]
}

// Castling returns the key for a given castling-rights value.
func Castling(cr CastlingRights) Key {
	return table[castlingKeysOffset+int(cr)]
}

// EpFile returns the key for en-passant file f (0..7), or for "none" when
// f == FileNone (8).
func EpFile(f File) Key {
	return table[epKeysOffset+int(f)]
}
