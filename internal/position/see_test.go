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

func TestSeeCapturingAnUndefendedPieceNetsItsFullValue(t *testing.T) {
	// White pawn e4 can take the black knight on d5; nothing defends it.
	pos, err := FromFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	assert.EqualValues(t, 400, pos.See(SqD5, White))
}

func TestSeeStopsTheExchangeWhenContinuingWouldLoseMaterial(t *testing.T) {
	// A white rook capturing a pawn defended by another pawn is a losing
	// trade (rook for pawn): the defender recaptures for free, so the
	// exchange nets white -500, not the +100 of the bare capture.
	pos, err := FromFEN("4k3/8/4p3/3p4/8/8/8/3RK3 w - - 0 1")
	assert.NoError(t, err)

	assert.EqualValues(t, -500, pos.See(SqD5, White))
}

func TestSeeEvenPawnTradeNetsZero(t *testing.T) {
	// e4 takes d5, c6 recaptures for free (no further attacker) - an even
	// pawn-for-pawn trade nets nothing, not the value of one pawn alone.
	pos, err := FromFEN("4k3/8/2p5/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	assert.EqualValues(t, 0, pos.See(SqD5, White))
}

func TestSeeForMoveMatchesSeeWhenTheCheapestAttackerIsUsed(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	m := NewMove(SqE4, SqD5, FlagCapture)
	assert.EqualValues(t, pos.See(SqD5, White), pos.SeeForMove(m))
}

func TestSeeForMoveIsNegativeWhenForcingAnOverpayingCapture(t *testing.T) {
	// Forcing the rook (rather than some cheaper piece) to make the
	// capture on a pawn defended by another pawn is a losing exchange.
	pos, err := FromFEN("4k3/8/4p3/3p4/8/8/8/3RK3 w - - 0 1")
	assert.NoError(t, err)

	m := NewMove(SqD1, SqD5, FlagCapture)
	assert.EqualValues(t, -500, pos.SeeForMove(m))
}
