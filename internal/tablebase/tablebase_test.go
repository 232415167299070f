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

package tablebase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestNullProberNeverAnswersWDL(t *testing.T) {
	pos := position.NewStandard()
	wdl, ok := NullProber{}.ProbeWDL(&pos)
	assert.False(t, ok)
	assert.Equal(t, Draw, wdl)
}

func TestNullProberNeverAnswersRootDTZ(t *testing.T) {
	pos := position.NewStandard()
	m, wdl, ok := NullProber{}.ProbeRootDTZ(&pos)
	assert.False(t, ok)
	assert.Equal(t, MoveNone, m)
	assert.Equal(t, Draw, wdl)
}

func TestWDLValueOrdersWinAboveCursedWinAboveDrawAboveBlessedLossAboveLoss(t *testing.T) {
	const ply = 4
	assert.Greater(t, int(Win.Value(ply)), int(CursedWin.Value(ply)))
	assert.Greater(t, int(CursedWin.Value(ply)), int(Draw.Value(ply)))
	assert.Greater(t, int(Draw.Value(ply)), int(BlessedLoss.Value(ply)))
	assert.Greater(t, int(BlessedLoss.Value(ply)), int(Loss.Value(ply)))
}

func TestWDLValueIsSymmetricForWinAndLoss(t *testing.T) {
	const ply = 7
	assert.Equal(t, Win.Value(ply), -Loss.Value(ply))
}

func TestWDLValuePrefersACloserWin(t *testing.T) {
	// A win found closer to the root (smaller ply) should score at least as
	// high as one found deeper, so the search prefers converting sooner.
	assert.Greater(t, int(Win.Value(2)), int(Win.Value(20)))
}

func TestWDLValueStaysBelowAnActualForcedMate(t *testing.T) {
	// A tablebase win is a known, certain result, but it must never be
	// confused in the TT with (or outrank) a directly-calculated mate score.
	assert.Less(t, int(Win.Value(0)), int(ValueMateInMaxPly))
	assert.False(t, Win.Value(0).IsMate())
}

func TestWDLValueDrawIsExactlyValueDraw(t *testing.T) {
	assert.Equal(t, ValueDraw, Draw.Value(10))
}

func TestProbeableRejectsPositionsWithCastlingRights(t *testing.T) {
	pos := position.NewStandard()
	assert.False(t, Probeable(&pos, 6))
}

func TestProbeableRejectsANonzeroHalfmoveClock(t *testing.T) {
	pos, err := position.FromFEN("4k3/8/8/8/8/8/8/3RK3 w - - 3 40")
	assert.NoError(t, err)
	assert.False(t, Probeable(&pos, 6))
}

func TestProbeableRejectsTooManyPieces(t *testing.T) {
	pos, err := position.FromFEN("4k3/8/8/8/8/8/8/3RK3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, Probeable(&pos, 2))
}

func TestProbeableAcceptsASimpleEndgame(t *testing.T) {
	pos, err := position.FromFEN("4k3/8/8/8/8/8/8/3RK3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, Probeable(&pos, 6))
}
