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
	"math"
	"unsafe"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
)

// pawnCacheMaxMB bounds the pawn cache the same way evalcache bounds
// itself; the pawn structure changes far less often than the rest of the
// position so this table stays hot across many search nodes.
const pawnCacheMaxMB = 1_024

// pawnCacheEntrySize is the in-memory footprint of one slot.
const pawnCacheEntrySize = 16

type pawnCacheEntry struct {
	key   Key
	score Score
}

// pawnCache is a single-slot, direct-mapped cache from a position's pawn
// key (internal/position's Position.PawnKey) to the white-perspective
// pawn-structure Score. Applies the same "stored key XOR'd, zero means
// empty" idea as the shared eval cache, but this is read far more often
// so it runs single-threaded per search worker rather than lock-free
// shared, one per Evaluator instance.
type pawnCache struct {
	log      *logging.Logger
	data     []pawnCacheEntry
	mask     uint64
	entries  uint64
	hits     uint64
	misses   uint64
	replaced uint64
}

func newPawnCache() *pawnCache {
	pc := &pawnCache{log: myLogging.GetLog()}
	pc.resize(config.Settings.Eval.PawnCacheSize)
	return pc
}

func (pc *pawnCache) resize(sizeInMB int) {
	if sizeInMB > pawnCacheMaxMB {
		sizeInMB = pawnCacheMaxMB
	}
	if sizeInMB < 1 {
		sizeInMB = 1
	}
	sizeInBytes := uint64(sizeInMB) * 1024 * 1024
	slots := uint64(1) << uint(math.Floor(math.Log2(float64(sizeInBytes/pawnCacheEntrySize))))
	if slots == 0 {
		slots = 1
	}
	pc.data = make([]pawnCacheEntry, slots)
	pc.mask = slots - 1
	pc.entries, pc.hits, pc.misses, pc.replaced = 0, 0, 0, 0
	pc.log.Debugf("pawn cache resized to %d MB, %d entries (%d bytes each)", sizeInMB, slots, unsafe.Sizeof(pawnCacheEntry{}))
}

func (pc *pawnCache) hash(key Key) uint64 { return uint64(key) & pc.mask }

// get returns the cached pawn-structure score for key, or the zero Score
// and false on a miss.
func (pc *pawnCache) get(key Key) (Score, bool) {
	e := &pc.data[pc.hash(key)]
	if e.key == key && key != 0 {
		pc.hits++
		return e.score, true
	}
	pc.misses++
	return Score{}, false
}

// put stores score for key, unconditionally replacing whatever slot
// previously occupied the index.
func (pc *pawnCache) put(key Key, score Score) {
	e := &pc.data[pc.hash(key)]
	if e.key == 0 {
		pc.entries++
	} else if e.key != key {
		pc.replaced++
	}
	e.key = key
	e.score = score
}

func (pc *pawnCache) clear() {
	pc.data = make([]pawnCacheEntry, len(pc.data))
	pc.entries, pc.hits, pc.misses, pc.replaced = 0, 0, 0, 0
}

func (pc *pawnCache) len() uint64 { return pc.entries }
