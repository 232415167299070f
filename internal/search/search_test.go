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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestSearchFindsLegalMoveAtFixedDepth(t *testing.T) {
	s := NewSearch()
	pos := position.NewStandard()

	s.StartSearch(pos, Limits{Depth: 3})
	s.WaitWhileSearching()

	result := s.LastResult()
	assert.NotNil(t, result)
	assert.NotEqual(t, MoveNone, result.BestMove)

	var legal MoveList
	legalMoves(&pos, &legal)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == result.BestMove {
			found = true
			break
		}
	}
	assert.True(t, found, "best move must be one of the root position's legal moves")
}

func TestSearchStopRespondsPromptly(t *testing.T) {
	s := NewSearch()
	pos := position.NewStandard()

	s.StartSearch(pos, Limits{Infinite: true})
	time.Sleep(20 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.StopSearch()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("StopSearch did not return promptly")
	}

	assert.False(t, s.IsSearching())
	assert.NotNil(t, s.LastResult())
}

func TestSearchReportsMateAtRoot(t *testing.T) {
	// Fool's mate: white to move is already checkmated.
	const fen = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	pos, err := position.FromFEN(fen)
	assert.NoError(t, err)

	s := NewSearch()
	s.StartSearch(pos, Limits{Depth: 1})
	s.WaitWhileSearching()

	result := s.LastResult()
	assert.NotNil(t, result)
	assert.Equal(t, MoveNone, result.BestMove)
	assert.True(t, result.BestValue.IsMate() || result.BestValue == -ValueMate)
}

func TestIsRepetitionDetectsMatchWithinHalfmoveWindow(t *testing.T) {
	s := NewSearch()
	w := newWorker(0, s)
	w.path = []Key{100, 200, 300, 400, 500}

	assert.True(t, w.isRepetition(300, 50), "key at n-3 with an ample halfmove window must be found")
	assert.False(t, w.isRepetition(999, 50), "a key never seen on the path must not match")
}

func TestIsRepetitionRespectsHalfmoveClockBoundary(t *testing.T) {
	s := NewSearch()
	w := newWorker(0, s)
	w.path = []Key{100, 200, 300, 400, 500}

	// halfmoveClock=0 means the position became irreversible on the
	// very last ply, so nothing before the current position may count
	// as a repetition even though 300 appears at the right parity.
	assert.False(t, w.isRepetition(300, 0))
}

func TestIsRepetitionNeedsAMinimumPathLength(t *testing.T) {
	s := NewSearch()
	w := newWorker(0, s)
	w.path = []Key{100, 200, 300}

	assert.False(t, w.isRepetition(300, 50), "fewer than 5 path entries can never contain a two-fold repeat")
}

func TestSingularCandidateRequiresConfiguredDepth(t *testing.T) {
	s := NewSearch()
	w := newWorker(0, s)
	pos := position.NewStandard()

	m := w.singularCandidate(pos, NewMove(SqE2, SqE4, FlagDoublePawn), Value(50), 10, ValueTypeExact, true, 3, 0)
	assert.Equal(t, MoveNone, m, "below SingularMinD the TT move is never treated as singular")
}

func TestMultiPVIsEmptyWhenOneLineRequested(t *testing.T) {
	s := NewSearch()
	pos := position.NewStandard()

	s.StartSearch(pos, Limits{Depth: 2})
	s.WaitWhileSearching()

	result := s.LastResult()
	assert.NotNil(t, result)
	// MultiPV defaults to 1, so no extra lines are reported.
	assert.Empty(t, result.MultiPV)
}
