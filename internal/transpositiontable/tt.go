//
// corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2026 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// Package transpositiontable implements the shared hash table that
// caches search results keyed by Zobrist hash. Unlike a single-slot
// design, each bucket holds two entries so a deep result and a recent
// shallow result can coexist instead of one immediately evicting the
// other; every write is lock-free and XOR-validated so Lazy SMP threads
// can probe and store concurrently without a mutex.
package transpositiontable

import (
	"math"
	"sync"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/assert"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

var out = message.NewPrinter(language.English)

const (
	// MaxSizeInMB is the largest table this engine will allocate.
	MaxSizeInMB = 65_536
	// bucketSize is the number of entries sharing one hash index.
	bucketSize = 2
	mb         = 1024 * 1024
)

type bucket [bucketSize]ttEntry

// Stats holds running counters for diagnostics and the UCI "info"
// Hashfull-adjacent reporting.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// Table is the shared transposition table. The zero value is not usable;
// construct with New.
type Table struct {
	log          *logging.Logger
	data         []bucket
	indexMask    uint64
	numBuckets   uint64
	numEntries   uint64
	generation   uint8
	Stats        Stats
}

// New returns a Table sized to sizeInMByte (rounded down to a power of
// two bucket count).
func New(sizeInMByte int) *Table {
	tt := &Table{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize discards all entries and rebuilds the table at sizeInMByte.
// Not safe to call while a search thread may be probing or storing.
func (tt *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 1 {
		sizeInMByte = 1
	}
	sizeInByte := uint64(sizeInMByte) * mb
	bucketBytes := uint64(bucketSize * TtEntrySize)
	tt.numBuckets = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/bucketBytes))))
	if tt.numBuckets == 0 {
		tt.numBuckets = 1
	}
	tt.indexMask = tt.numBuckets - 1
	tt.data = make([]bucket, tt.numBuckets)
	tt.numEntries = 0
	tt.generation = 0
	tt.Stats = Stats{}

	tt.log.Info(out.Sprintf("TT size %d MB, %d buckets x %d entries (%d bytes each)",
		(tt.numBuckets*bucketBytes)/mb, tt.numBuckets, bucketSize, unsafe.Sizeof(ttEntry{})))
	tt.log.Debug(util.MemStat())
}

// Clear empties every entry without resizing.
func (tt *Table) Clear() {
	tt.data = make([]bucket, tt.numBuckets)
	tt.numEntries = 0
	tt.generation = 0
	tt.Stats = Stats{}
}

// NewSearch bumps the generation counter so every entry from a prior
// search is treated as progressively stale by the replacement policy,
// without needing to touch every bucket.
func (tt *Table) NewSearch() {
	tt.generation++
}

func (tt *Table) hash(key Key) uint64 {
	return uint64(key) & tt.indexMask
}

// Probe looks up key, returning the matching entry's fields and true on
// a validated hit. ply adjusts any mate score back to be relative to the
// current search node.
func (tt *Table) Probe(key Key, ply int) (move Move, value Value, eval Value, depth int8, vt ValueType, ok bool) {
	if len(tt.data) == 0 {
		return MoveNone, ValueNA, ValueNA, 0, ValueTypeNone, false
	}
	tt.Stats.Probes++
	b := &tt.data[tt.hash(key)]
	for i := range b {
		e := &b[i]
		if e.valid(key) {
			tt.Stats.Hits++
			return e.move(), ValueFromTT(e.value(), ply), e.eval(), e.depth(), e.vtype(), true
		}
	}
	tt.Stats.Misses++
	return MoveNone, ValueNA, ValueNA, 0, ValueTypeNone, false
}

// Put stores a search result for key. depth/value/vt describe the search
// result; eval is the static evaluation of the node (stored even on a
// fail-high/low so move ordering can reuse it cheaply next time); ply
// converts a mate score to the ply-independent form ValueToTT expects.
func (tt *Table) Put(key Key, move Move, depth int8, value Value, vt ValueType, eval Value, ply int) {
	if assert.DEBUG {
		assert.Assert(depth >= 0, "TT Put: depth must be >= 0")
	}
	if len(tt.data) == 0 {
		return
	}
	tt.Stats.Puts++
	storedValue := ValueToTT(value, ply)
	b := &tt.data[tt.hash(key)]

	for i := range b {
		e := &b[i]
		if e.isEmpty() {
			tt.numEntries++
			e.store(key, move, eval, storedValue, depth, vt, tt.generation)
			return
		}
	}

	for i := range b {
		e := &b[i]
		if e.valid(key) {
			tt.Stats.Updates++
			if move == MoveNone {
				move = e.move()
			}
			e.store(key, move, eval, storedValue, depth, vt, tt.generation)
			return
		}
	}

	tt.Stats.Collisions++
	victim := 0
	var bestScore int64 = math.MinInt64
	for i := range b {
		e := &b[i]
		score := 128*int64(tt.relativeAge(e.age())) + int64(depth) - int64(e.depth())
		if score > bestScore {
			bestScore = score
			victim = i
		}
	}
	tt.Stats.Overwrites++
	b[victim].store(key, move, eval, storedValue, depth, vt, tt.generation)
}

// relativeAge returns how many generations old entryAge is compared to
// the table's current generation, wrapping the 3-bit age field the same
// way a sequence number wraps.
func (tt *Table) relativeAge(entryAge uint8) uint8 {
	return (tt.generation - entryAge) & 0x7
}

// Hashfull reports usage in permille, UCI-style, sampled from the first
// 1000 buckets rather than scanning the whole table.
func (tt *Table) Hashfull() int {
	if len(tt.data) == 0 {
		return 0
	}
	sample := len(tt.data)
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		for j := range tt.data[i] {
			if !tt.data[i][j].isEmpty() {
				used++
			}
		}
	}
	return used * 1000 / (sample * bucketSize)
}

// Len returns the number of occupied slots: it counts stores into empty
// slots only, so updates and overwrites leave it unchanged.
func (tt *Table) Len() uint64 { return tt.numEntries }

// String renders a one-line summary for debug logging.
func (tt *Table) String() string {
	return out.Sprintf("TT: %d buckets, %d entries (%.1f%%), puts %d updates %d collisions %d overwrites %d probes %d hits %d misses %d",
		tt.numBuckets, tt.numEntries, float64(tt.Hashfull())/10,
		tt.Stats.Puts, tt.Stats.Updates, tt.Stats.Collisions, tt.Stats.Overwrites,
		tt.Stats.Probes, tt.Stats.Hits, tt.Stats.Misses)
}

// concurrencyGuard documents (rather than enforces) that Resize/Clear
// must not run concurrently with search threads still probing/storing;
// ordinary Probe/Put calls from multiple goroutines are safe without it.
var concurrencyGuard sync.Mutex

// Lock/Unlock let the search driver serialize Resize/Clear against a
// brief moment where no search thread is active, without forcing every
// Probe/Put to pay for a mutex they don't need.
func (tt *Table) Lock()   { concurrencyGuard.Lock() }
func (tt *Table) Unlock() { concurrencyGuard.Unlock() }
