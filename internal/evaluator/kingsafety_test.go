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

func TestKingZoneIncludesTheKingSquareAndItsNeighbors(t *testing.T) {
	zone := kingZone(SqE1)
	assert.NotEqual(t, BbZero, zone&SqE1.Bb())
	assert.NotEqual(t, BbZero, zone&SqE2.Bb())
	assert.NotEqual(t, BbZero, zone&SqD1.Bb())
}

func TestShieldColumnIsSymmetricAboutTheCenter(t *testing.T) {
	assert.Equal(t, shieldColumn(FileA), shieldColumn(FileH))
	assert.Equal(t, shieldColumn(FileB), shieldColumn(FileG))
	assert.Equal(t, shieldColumn(FileC), shieldColumn(FileF))
	assert.Equal(t, shieldColumn(FileD), shieldColumn(FileE))
}

func TestCastlingRightCountReflectsStandardStart(t *testing.T) {
	pos := position.NewStandard()
	assert.Equal(t, 2, castlingRightCount(&pos, White))
	assert.Equal(t, 2, castlingRightCount(&pos, Black))
}

func TestCastlingRightCountIsZeroOnceAllRightsAreLost(t *testing.T) {
	pos, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, 0, castlingRightCount(&pos, White))
	assert.Equal(t, 0, castlingRightCount(&pos, Black))
}

func TestPawnShieldScoreFallsBackToMissingEntryOnAnOpenFile(t *testing.T) {
	pos, err := position.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	got := pawnShieldScore(&pos, White, FileE)
	assert.Equal(t, pawnShieldValue[shieldColumn(FileE)][0], got)
}
