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

// DoMove maintains the hash incrementally; it must always agree with a
// from-scratch recomputation over the resulting board state.
func TestDoMoveKeepsZobristConsistentWithFromScratch(t *testing.T) {
	pos := NewStandard()

	next := pos.DoMove(NewMove(SqE2, SqE4, FlagDoublePawn))
	assert.Equal(t, next.computeZobrist(), next.Zobrist(), "double pawn push must update the hash incrementally to match a full recompute")

	next = next.DoMove(NewMove(SqB8, SqC6, FlagQuiet))
	assert.Equal(t, next.computeZobrist(), next.Zobrist())

	next = next.DoMove(NewMove(SqF1, SqC4, FlagQuiet))
	assert.Equal(t, next.computeZobrist(), next.Zobrist())
}

func TestDoMoveCaptureAndCastleKeepZobristConsistent(t *testing.T) {
	// A position with a pending capture and both sides still able to castle.
	pos, err := FromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	assert.NoError(t, err)

	castled := pos.DoMove(NewMove(SqE1, SqG1, FlagCastleK))
	assert.Equal(t, castled.computeZobrist(), castled.Zobrist(), "kingside castle must update rook and king keys and castling rights consistently")
}

func TestDoNullMoveKeepsZobristConsistent(t *testing.T) {
	pos := NewStandard()
	nulled := pos.DoNullMove()
	assert.Equal(t, nulled.computeZobrist(), nulled.Zobrist())
	assert.Equal(t, FileNone, nulled.epFile)
}

func TestDoMoveEnPassantKeepsZobristConsistent(t *testing.T) {
	pos, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)

	captured := pos.DoMove(NewMove(SqE5, SqD6, FlagEnPassant))
	assert.Equal(t, captured.computeZobrist(), captured.Zobrist())
}
