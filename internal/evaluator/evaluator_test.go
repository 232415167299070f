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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestEvaluateStartingPositionIsRoughlyBalanced(t *testing.T) {
	pos := position.NewStandard()
	e := NewEvaluator()

	v := e.Evaluate(&pos)
	assert.InDelta(t, 0, int(v), 40, "the opening position has no material or structural imbalance")
}

func TestEvaluateFavorsTheSideUpAQueen(t *testing.T) {
	// White is missing nothing, black is missing its queen.
	const fen = "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	pos, err := position.FromFEN(fen)
	assert.NoError(t, err)

	e := NewEvaluator()
	v := e.Evaluate(&pos)
	assert.Greater(t, int(v), 700, "white should be evaluated as clearly winning without a black queen on the board")
}

func TestEvaluateReturnsDrawOnInsufficientMaterial(t *testing.T) {
	const fen = "8/8/4k3/8/8/4K3/8/8 w - - 0 1"
	pos, err := position.FromFEN(fen)
	assert.NoError(t, err)

	e := NewEvaluator()
	assert.Equal(t, ValueDraw, e.Evaluate(&pos))
}

func TestEvaluateIsSymmetricUnderSideToMove(t *testing.T) {
	// Same pawn-up material imbalance, but it's black's material edge and
	// black to move; Evaluate always returns the score from the mover's
	// perspective so this should read positive too.
	const whiteUp = "rnbqkbnr/pppp1ppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	const blackUp = "rnbqkbnr/pppppppp/8/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"

	posWhiteUp, err := position.FromFEN(whiteUp)
	assert.NoError(t, err)
	posBlackUp, err := position.FromFEN(blackUp)
	assert.NoError(t, err)

	e1 := NewEvaluator()
	e2 := NewEvaluator()
	v1 := e1.Evaluate(&posWhiteUp)
	v2 := e2.Evaluate(&posBlackUp)

	assert.Greater(t, int(v1), 0)
	assert.Greater(t, int(v2), 0)
}

func TestEvalCacheHitMatchesAFreshEvaluation(t *testing.T) {
	pos := position.NewStandard()
	e := NewEvaluator()

	first := e.Evaluate(&pos)
	second := e.Evaluate(&pos)
	assert.Equal(t, first, second, "probing the same position twice must be stable")
}
