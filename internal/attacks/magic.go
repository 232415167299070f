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

package attacks

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// Prng is a deterministic xorshift64* pseudo-random generator used only
// for magic-bitboard discovery at startup, so the discovered magics (and
// therefore the whole attack table) are 100% reproducible across builds
// and platforms.
type Prng struct {
	state uint64
}

// NewPrng seeds a generator. The engine always seeds with the same fixed
// constant (see seedMagic below) so magic numbers never change between runs.
func NewPrng(seed uint64) *Prng {
	if seed == 0 {
		seed = 1
	}
	return &Prng{state: seed}
}

// Next returns the next pseudo-random 64-bit value.
func (p *Prng) Next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 2685821657736338717
}

// Sparse returns a sparsely-populated 64-bit candidate: the AND of three
// successive draws, which tends to produce the kind of low-popcount
// numbers that make good magic multipliers.
func (p *Prng) Sparse() uint64 {
	return p.Next() & p.Next() & p.Next()
}

// seedMagic is the fixed seed for magic-number discovery.
const seedMagic uint64 = 0x1234_5678_9ABC_DEF0

// popcountHighBits counts set bits in the top 12 bits of a 64-bit value,
// used by the candidate-rejection filter below.
func popcountHighBits(v uint64) int {
	cnt := 0
	for i := 52; i < 64; i++ {
		if v&(1<<uint(i)) != 0 {
			cnt++
		}
	}
	return cnt
}

// findMagic searches for a magic multiplier for the given relevant-
// occupancy mask and index width nBits, such that
//
//	((occ & mask) * magic) >> (64 - nBits)
//
// maps every subset of mask to an index in [0, 2^nBits) with no two
// subsets producing different attack sets at the same index
// ("constructive collisions" - two subsets that collide but happen to
// want the same attack set - are fine). attacksOf computes the true
// attack set for a given occupancy subset.
//
// Tries up to maxTries candidates before giving up; the caller treats
// failure to find a magic as a fatal startup error.
func findMagic(mask Bitboard, nBits uint, attacksOf func(occ Bitboard) Bitboard, maxTries int) (uint64, []Bitboard, bool) {
	rng := NewPrng(seedMagic ^ uint64(mask))

	n := mask.PopCount()
	subsets := make([]Bitboard, 1<<uint(n))
	refAttacks := make([]Bitboard, 1<<uint(n))
	for i := range subsets {
		subsets[i] = occupancySubset(mask, i)
		refAttacks[i] = attacksOf(subsets[i])
	}

	table := make([]Bitboard, 1<<nBits)
	used := make([]bool, 1<<nBits)

	for try := 0; try < maxTries; try++ {
		candidate := rng.Sparse()
		if popcountHighBits(uint64(mask) * candidate) < 10 {
			continue
		}
		for i := range used {
			used[i] = false
		}
		ok := true
		for i, occ := range subsets {
			idx := (uint64(occ) * candidate) >> (64 - nBits)
			if used[idx] {
				if table[idx] != refAttacks[i] {
					ok = false
					break
				}
			} else {
				used[idx] = true
				table[idx] = refAttacks[i]
			}
		}
		if ok {
			result := make([]Bitboard, 1<<nBits)
			copy(result, table)
			return candidate, result, true
		}
	}
	return 0, nil, false
}

// occupancySubset returns the i-th subset of mask, enumerating the
// 2^popcount(mask) subsets via the standard bit-index trick.
func occupancySubset(mask Bitboard, i int) Bitboard {
	var result Bitboard
	bits := mask
	idx := 0
	for bits != 0 {
		sq := bits.Lsb()
		bits = bits.ClearLsb()
		if i&(1<<uint(idx)) != 0 {
			result = result.Set(sq)
		}
		idx++
	}
	return result
}
