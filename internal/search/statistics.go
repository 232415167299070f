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

import . "github.com/corvidchess/corvid/internal/types"

// Statistics are extra counters not essential to a functioning search but
// useful for tuning move ordering and the pruning thresholds.
type Statistics struct {
	BestMoveChanges      uint64
	AspirationResearches uint64

	BetaCuts    uint64
	BetaCuts1st uint64

	RfpPrunings        uint64
	FpPrunings         uint64
	RazorPrunings      uint64
	NullMoveCuts       uint64
	LmpCuts            uint64
	LmrReductions      uint64
	LmrResearches      uint64
	SeePrunings        uint64
	CheckExtensions    uint64
	SingularExtensions uint64

	TTHit      uint64
	TTMiss     uint64
	TTMoveUsed uint64
	TTCuts     uint64

	IIDSearches   uint64
	EasyMoveStops uint64

	TBHits uint64

	Checkmates uint64
	Stalemates uint64
	Mdp        uint64

	CurrentIterationDepth   int
	CurrentSearchDepth      int
	CurrentExtraSearchDepth int
	CurrentBestRootMove     Move
	CurrentBestRootValue    Value
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
