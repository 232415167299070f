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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestDoHashMoveRejectsMoveNone(t *testing.T) {
	pos := NewStandard()
	_, ok := pos.DoHashMove(MoveNone)
	assert.False(t, ok)
}

func TestDoHashMoveRejectsAnEmptyFromSquare(t *testing.T) {
	pos := NewStandard()
	// e4 is empty in the starting position.
	_, ok := pos.DoHashMove(NewMove(SqE4, SqE5, FlagQuiet))
	assert.False(t, ok, "a stale TT move referencing a piece that is no longer there must be rejected")
}

func TestDoHashMoveRejectsMovingTheOpponentsPiece(t *testing.T) {
	pos := NewStandard()
	// It's white to move; e7 holds a black pawn.
	_, ok := pos.DoHashMove(NewMove(SqE7, SqE5, FlagQuiet))
	assert.False(t, ok)
}

func TestDoHashMoveRejectsACaptureFlagOnAnEmptyTarget(t *testing.T) {
	pos := NewStandard()
	_, ok := pos.DoHashMove(NewMove(SqE2, SqE5, FlagCapture))
	assert.False(t, ok, "a capture-flagged move must land on an actual enemy piece")
}

func TestDoHashMoveRejectsCapturingOwnPiece(t *testing.T) {
	pos := NewStandard()
	_, ok := pos.DoHashMove(NewMove(SqD1, SqD2, FlagCapture))
	assert.False(t, ok, "a hash move cannot capture a piece of its own color")
}

func TestDoHashMoveRejectsCapturingAKing(t *testing.T) {
	// A contrived capture by white's rook on d1 onto black's king square
	// e8 - a move onto a king must never be accepted as a hash move,
	// collision artifact or not.
	pos, err := FromFEN("4k3/8/8/8/8/8/8/3RK3 w - - 0 1")
	assert.NoError(t, err)
	_, ok := pos.DoHashMove(NewMove(SqD1, SqE8, FlagCapture))
	assert.False(t, ok)
}

func TestDoHashMoveRejectsAQuietFlagOntoAnOccupiedSquare(t *testing.T) {
	pos := NewStandard()
	// e1 to d2 is not flagged as a capture, but d2 holds a white pawn.
	_, ok := pos.DoHashMove(NewMove(SqE1, SqD2, FlagQuiet))
	assert.False(t, ok)
}

func TestDoHashMoveRejectsAMoveThatLeavesTheMoverInCheck(t *testing.T) {
	// White king on e1 is pinned against check from a rook on e8 by the
	// e2 pawn; moving that pawn off the e-file exposes the king.
	pos, err := FromFEN("4r3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)
	_, ok := pos.DoHashMove(NewMove(SqE2, SqD3, FlagQuiet))
	assert.False(t, ok, "a move that leaves the mover's own king in check is never legal, hash move or not")
}

func TestDoHashMoveAcceptsAnOrdinaryLegalMove(t *testing.T) {
	pos := NewStandard()
	next, ok := pos.DoHashMove(NewMove(SqE2, SqE4, FlagDoublePawn))
	assert.True(t, ok)
	assert.Equal(t, Black, next.sideToMove)
}

func TestDoHashMoveAcceptsAnOrdinaryCapture(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	next, ok := pos.DoHashMove(NewMove(SqE4, SqD5, FlagCapture))
	assert.True(t, ok)
	assert.Equal(t, MakePiece(White, Pawn), next.board[SqD5])
}
