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
// Package evalcache is a direct-mapped, single-slot cache from a
// position's Zobrist key to its static evaluation Score. It is shared
// read/write across every Lazy SMP search thread without locks: each
// entry's key word is stored XORed with its data word, so a torn read
// (one goroutine reading while another writes) is detected by
// recomputing the XOR rather than prevented by a mutex.
package evalcache

import (
	"math"
	"sync/atomic"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
)

// entrySize is the memory footprint of one slot: two 8-byte words.
const entrySize = 16

type entry struct {
	key  uint64 // zobristKey ^ data, XOR-validated on read
	data uint64 // packed Score
}

// Cache is a lock-free, fixed-size evaluation cache. The zero value is
// not usable; construct with New.
type Cache struct {
	log     *logging.Logger
	data    []entry
	mask    uint64
	entries uint64
	hits    uint64
	misses  uint64
}

// New returns a Cache sized to sizeInMB megabytes, rounded down to a
// power-of-two slot count so the hash index is a cheap mask.
func New(sizeInMB int) *Cache {
	c := &Cache{log: myLogging.GetLog()}
	c.Resize(sizeInMB)
	return c
}

// Resize discards all entries and rebuilds the cache at sizeInMB.
func (c *Cache) Resize(sizeInMB int) {
	if sizeInMB < 1 {
		sizeInMB = 1
	}
	sizeInBytes := uint64(sizeInMB) * 1024 * 1024
	slots := uint64(1) << uint(math.Floor(math.Log2(float64(sizeInBytes/entrySize))))
	if slots == 0 {
		slots = 1
	}
	c.data = make([]entry, slots)
	c.mask = slots - 1
	c.entries = 0
	c.hits = 0
	c.misses = 0
	c.log.Infof("eval cache resized to %d MB, %d entries", sizeInMB, slots)
}

// Clear empties every slot without resizing.
func (c *Cache) Clear() {
	c.data = make([]entry, len(c.data))
	c.entries = 0
	c.hits = 0
	c.misses = 0
}

func packScore(s Score) uint64 {
	return uint64(uint16(s.Mg)) | uint64(uint16(s.Eg))<<16
}

func unpackScore(data uint64) Score {
	return Score{Mg: int16(uint16(data)), Eg: int16(uint16(data >> 16))}
}

func (c *Cache) index(key Key) uint64 {
	return uint64(key) & c.mask
}

// Probe looks up key and returns (score, true) on a hit, or the zero
// Score and false on a miss or a detected torn/colliding read.
func (c *Cache) Probe(key Key) (Score, bool) {
	if len(c.data) == 0 {
		return Score{}, false
	}
	e := &c.data[c.index(key)]
	k := atomic.LoadUint64(&e.key)
	d := atomic.LoadUint64(&e.data)
	if k^d != uint64(key) {
		c.misses++
		return Score{}, false
	}
	c.hits++
	return unpackScore(d), true
}

// Store writes score for key, unconditionally replacing whatever
// previously occupied the slot (single-slot, always-replace).
func (c *Cache) Store(key Key, score Score) {
	if len(c.data) == 0 {
		return
	}
	e := &c.data[c.index(key)]
	data := packScore(score)
	if e.key == 0 && e.data == 0 {
		c.entries++
	}
	atomic.StoreUint64(&e.data, data)
	atomic.StoreUint64(&e.key, uint64(key)^data)
}

// Len returns the number of slots ever written, without accounting for
// subsequent overwrites colliding into the same slot.
func (c *Cache) Len() uint64 { return c.entries }

// Hashfull reports entries used out of 1000, UCI-style.
func (c *Cache) Hashfull() int {
	if len(c.data) == 0 {
		return 0
	}
	n := len(c.data)
	if n > 1000 {
		n = 1000
	}
	used := 0
	for i := 0; i < n; i++ {
		if c.data[i].key != 0 || c.data[i].data != 0 {
			used++
		}
	}
	return used
}

// NewFromConfig builds a Cache sized per config.Settings.Eval, or nil if
// the eval cache is disabled.
func NewFromConfig() *Cache {
	if !config.Settings.Eval.UseEvalCache {
		return nil
	}
	return New(config.Settings.Eval.EvalCacheSizeMB)
}
