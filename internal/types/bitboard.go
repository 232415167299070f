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

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per square.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// BbAll has every square set.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// IndexToBit maps a square index to its singleton bitboard, precomputed
// once at init time.
var IndexToBit [SqLength]Bitboard

// FileBb[f] is the bitboard of every square on file f.
var FileBb [FileLength]Bitboard

// RankBb[r] is the bitboard of every square on rank r.
var RankBb [RankLength]Bitboard

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		IndexToBit[sq] = Bitboard(1) << uint(sq)
	}
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb |= IndexToBit[SquareOf(f, r)]
		}
		FileBb[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb |= IndexToBit[SquareOf(f, r)]
		}
		RankBb[r] = bb
	}
}

// Bb returns the singleton bitboard for sq.
func (sq Square) Bb() Bitboard {
	return IndexToBit[sq]
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&IndexToBit[sq] != 0
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | IndexToBit[sq]
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ IndexToBit[sq]
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most-significant set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// LsbIsolate returns a bitboard containing only the least-significant set bit.
func (b Bitboard) LsbIsolate() Bitboard {
	return b & Bitboard(-int64(b))
}

// ClearLsb returns b with its least-significant set bit removed.
func (b Bitboard) ClearLsb() Bitboard {
	return b & (b - 1)
}

// PopLsb returns the least-significant square and removes it from *b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b = b.ClearLsb()
	return sq
}

// ShiftNorth etc. shift the whole board by one step, masking off squares
// that would wrap around a file edge. These are the primitives pawn move
// generation and mobility counting build on.
func (b Bitboard) ShiftNorth() Bitboard { return b << 8 }
func (b Bitboard) ShiftSouth() Bitboard { return b >> 8 }
func (b Bitboard) ShiftEast() Bitboard  { return (b &^ FileBb[FileH]) << 1 }
func (b Bitboard) ShiftWest() Bitboard  { return (b &^ FileBb[FileA]) >> 1 }
func (b Bitboard) ShiftNortheast() Bitboard { return (b &^ FileBb[FileH]) << 9 }
func (b Bitboard) ShiftNorthwest() Bitboard { return (b &^ FileBb[FileA]) << 7 }
func (b Bitboard) ShiftSoutheast() Bitboard { return (b &^ FileBb[FileH]) >> 7 }
func (b Bitboard) ShiftSouthwest() Bitboard { return (b &^ FileBb[FileA]) >> 9 }

// String renders b as a hex literal.
func (b Bitboard) String() string {
	return "0x" + strings.ToUpper(toHex(uint64(b)))
}

func toHex(v uint64) string {
	const digits = "0123456789abcdef"
	if v == 0 {
		return "0"
	}
	var buf [16]byte
	i := 16
	for v > 0 {
		i--
		buf[i] = digits[v&0xF]
		v >>= 4
	}
	return string(buf[i:])
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 at the top, for
// debug printing.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteString(r.String() + " ")
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
