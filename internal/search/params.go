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
	"math"

	. "github.com/corvidchess/corvid/internal/types"
)

// Precomputed pruning/reduction tables too irregular to be plain config
// constants.

var lmr [32][64]int

// LmrReduction returns the late-move-reduction depth cut for a move
// searched at the given remaining depth and move-count index.
func LmrReduction(depth, movesSearched int) int {
	if depth >= 32 {
		depth = 31
	}
	if movesSearched >= 64 {
		movesSearched = 63
	}
	return lmr[depth][movesSearched]
}

func init() {
	for i := 0; i < 32; i++ {
		for j := 0; j < 64; j++ {
			switch {
			case i <= 3, j <= 3:
				lmr[i][j] = 1
			default:
				lmr[i][j] = int(math.Round((float64(i)*0.7)*(float64(j)*0.005) + 1.0))
			}
		}
	}
}

var lmp [16]int

func init() {
	for i := 1; i < 16; i++ {
		lmp[i] = 6 + int(math.Pow(float64(i)+0.5, 1.3))
	}
}

// LmpMovesSearched returns the depth-dependent move-count threshold for
// late move pruning: beyond this many quiet moves tried, stop searching
// further quiets at this node.
func LmpMovesSearched(depth int) int {
	if depth >= 16 {
		return lmp[15]
	}
	if depth < 0 {
		return lmp[1]
	}
	return lmp[depth]
}

// futilityMargin[depthLeft] bounds how far a quiet move's static eval can
// trail beta and still be pruned outright near the leaves.
var futilityMargin = [7]Value{0, 100, 200, 300, 500, 900, 1200}

// reverseFutilityMargin[depthLeft] is the analogous margin for reverse
// futility pruning (static eval far enough above beta to fail high),
// covering depths up to 6.
var reverseFutilityMargin = [7]Value{0, 200, 400, 800, 1200, 1600, 2000}

// razorMargin[depthLeft] is how far static eval may trail alpha before
// razoring drops straight into quiescence instead of searching on.
var razorMargin = [4]Value{0, 240, 280, 320}

// smpDepths[i] is the root-depth offset applied to Lazy SMP helper
// thread i (thread 0 always searches at the nominal root depth).
var smpDepths = [16]int{0, 1, 0, 1, 0, 1, 0, 2, 0, 1, 0, 2, 0, 1, 0, 3}

// MaxDepth bounds both iterative-deepening depth and recursion ply: the
// killer/history/pv arrays are sized to it and the search kernel falls
// into quiescence once a recursion reaches it regardless of remaining
// depth.
const MaxDepth = 128

// iidNonPVDepth is the depth threshold at which a non-PV node still runs
// internal iterative deepening, provided it's an expected cut node or its
// static eval already sits close enough to beta.
const iidNonPVDepth = 6
