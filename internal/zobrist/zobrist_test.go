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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestPieceSquareIsStableAcrossCalls(t *testing.T) {
	wp := MakePiece(White, Pawn)
	assert.Equal(t, PieceSquare(wp, SqE4), PieceSquare(wp, SqE4))
}

func TestPieceSquareDistinguishesSquare(t *testing.T) {
	wp := MakePiece(White, Pawn)
	assert.NotEqual(t, PieceSquare(wp, SqE4), PieceSquare(wp, SqE5))
}

func TestPieceSquareDistinguishesPieceType(t *testing.T) {
	assert.NotEqual(t, PieceSquare(MakePiece(White, Pawn), SqE4), PieceSquare(MakePiece(White, Knight), SqE4))
}

func TestPieceSquareDistinguishesColor(t *testing.T) {
	assert.NotEqual(t, PieceSquare(MakePiece(White, Queen), SqD1), PieceSquare(MakePiece(Black, Queen), SqD1))
}

func TestSideToMoveIsNonZeroAndFixed(t *testing.T) {
	assert.NotEqual(t, Key(0), SideToMove())
	assert.Equal(t, SideToMove(), SideToMove())
}

func TestCastlingKeysAreDistinctPerRightsValue(t *testing.T) {
	seen := make(map[Key]CastlingRights)
	for v := 0; v < 16; v++ {
		cr := CastlingRights(v)
		k := Castling(cr)
		if other, ok := seen[k]; ok {
			t.Fatalf("castling rights %d and %d collide on key %d", v, other, k)
		}
		seen[k] = cr
	}
}

func TestEpFileKeysAreDistinctIncludingNone(t *testing.T) {
	seen := make(map[Key]bool)
	for f := FileA; f <= FileNone; f++ {
		k := EpFile(f)
		assert.False(t, seen[k], "en-passant file key must be unique, including the FileNone sentinel")
		seen[k] = true
	}
}

func TestPieceSquareKeysSpanAllSixtyFourSquaresWithoutCollision(t *testing.T) {
	wk := MakePiece(White, King)
	seen := make(map[Key]bool)
	for sq := SqA1; sq <= SqH8; sq++ {
		k := PieceSquare(wk, sq)
		assert.False(t, seen[k], "piece-square keys must not collide across squares")
		seen[k] = true
	}
}
