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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
)

func TestPerftStartingPosition(t *testing.T) {
	expected := []uint64{1, 20, 400, 8902, 197281, 4865609}
	for depth, want := range expected {
		if depth == 0 {
			continue
		}
		pf := NewPerft()
		got := pf.Run(position.StartFEN, depth)
		assert.Equal(t, want, got, "perft(%d) from the starting position", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pf := NewPerft()
	got := pf.Run(kiwipete, 4)
	assert.Equal(t, uint64(4085603), got)
}

func TestPerftPosition3(t *testing.T) {
	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	pf := NewPerft()
	got := pf.Run(fen, 5)
	assert.Equal(t, uint64(674624), got)
}

func TestPerftStopMidSearch(t *testing.T) {
	pf := NewPerft()
	go func() {
		pf.Stop()
	}()
	got := pf.Run(position.StartFEN, 6)
	assert.True(t, got == 0 || got == 119060324, "a stopped run returns 0, otherwise the full count")
}
