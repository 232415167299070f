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

package moveorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestPickerReturnsHashMoveFirst(t *testing.T) {
	p := position.NewStandard()
	hashMove := NewMove(SqE2, SqE4, FlagDoublePawn)
	pk := NewPicker(&p, hashMove, MoveNone, [2]Move{MoveNone, MoveNone}, nil, MoveNone, MoveNone, false)
	assert.Equal(t, hashMove, pk.Next())
}

func TestPickerDoesNotRepeatHashMove(t *testing.T) {
	p := position.NewStandard()
	hashMove := NewMove(SqE2, SqE4, FlagDoublePawn)
	pk := NewPicker(&p, hashMove, MoveNone, [2]Move{MoveNone, MoveNone}, nil, MoveNone, MoveNone, false)

	seen := map[Move]int{}
	for {
		m := pk.Next()
		if m == MoveNone {
			break
		}
		seen[m]++
	}
	assert.Equal(t, 1, seen[hashMove], "the hash move must not be emitted twice")
	assert.Equal(t, 20, len(seen), "the starting position has 20 legal moves")
}

func TestPickerOrdersCapturesByMvvLva(t *testing.T) {
	// white queen on a1 can take either a pawn on a6 (up the file) or a
	// rook on h1 (along the rank); the rook capture must be offered first.
	p, err := position.FromFEN("4k3/8/p7/8/4K3/8/8/Q6r w - - 0 1")
	assert.NoError(t, err)

	pk := NewPicker(&p, MoveNone, MoveNone, [2]Move{MoveNone, MoveNone}, nil, MoveNone, MoveNone, false)
	var firstCapture Move
	for {
		m := pk.Next()
		if m == MoveNone {
			break
		}
		if m.IsCapture() {
			firstCapture = m
			break
		}
	}
	assert.Equal(t, SqH1, firstCapture.To(), "capturing the rook scores higher than capturing the pawn")
}

func TestPickerSurfacesKillerAmongQuiets(t *testing.T) {
	p := position.NewStandard()
	killer := NewMove(SqG1, SqF3, FlagQuiet)
	pk := NewPicker(&p, MoveNone, MoveNone, [2]Move{killer, MoveNone}, NewHistory(), MoveNone, MoveNone, false)

	var firstQuiet Move
	for {
		m := pk.Next()
		if m == MoveNone {
			break
		}
		if m.IsQuiet() && !m.IsCastle() {
			firstQuiet = m
			break
		}
	}
	assert.Equal(t, killer, firstQuiet)
}

func TestHistoryGoodIncreasesScore(t *testing.T) {
	h := NewHistory()
	m := NewMove(SqE2, SqE4, FlagDoublePawn)
	before := h.Score(White, m)
	h.Good(White, m, 4)
	assert.Greater(t, h.Score(White, m), before)
}

func TestHistoryAgeHalves(t *testing.T) {
	h := NewHistory()
	m := NewMove(SqE2, SqE4, FlagDoublePawn)
	h.Good(White, m, 10)
	before := h.Score(White, m)
	h.Age()
	assert.Equal(t, before/2, h.Score(White, m))
}
