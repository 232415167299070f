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

package transpositiontable

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// TtEntrySize is the size in bytes of one slot (two 8-byte words).
const TtEntrySize = 16

// ttEntry is one slot of a bucket. It is written and read without a lock:
// key is always stored as zobristKey ^ data, so a torn read across two
// concurrent writers is caught by recomputing the XOR rather than
// prevented up front, the same trick internal/evalcache uses. data packs
// move/eval/value/vmeta at the bit offsets the constants below define;
// the packed form is what actually gets XORed and stored
// atomically.
type ttEntry struct {
	keyXor uint64
	data   uint64
}

// vmeta layout within the low 16 bits of data's top word: depth (7 bits),
// vtype (2 bits), age (3 bits). Mirrors the classic compact TT entry
// layout, just computed from/to a single packed uint64 instead of having
// its own struct fields, so the whole entry is two atomically-sized words.
const (
	moveShift  = 0
	evalShift  = 16
	valueShift = 32
	vmetaShift = 48

	ageMask    = uint64(0b0000_0000_0000_0111)
	vtypeMask  = uint64(0b0000_0000_0001_1000)
	vtypeShift = uint64(3)
	depthMask  = uint64(0b0000_1111_1110_0000)
	depthShift = uint64(5)
)

func packEntry(move Move, eval, value Value, depth int8, vt ValueType, age uint8) uint64 {
	vmeta := uint64(depth&0x7F)<<depthShift | uint64(vt)<<vtypeShift | uint64(age&0x7)
	return uint64(uint16(move))<<moveShift |
		uint64(uint16(eval))<<evalShift |
		uint64(uint16(value))<<valueShift |
		vmeta<<vmetaShift
}

func (e *ttEntry) isEmpty() bool {
	return e.keyXor == 0 && e.data == 0
}

// valid reports whether e actually holds key (i.e. the XOR check passes,
// so the word pair was not torn by a concurrent writer and does belong to
// this key rather than a prior occupant).
func (e *ttEntry) valid(key Key) bool {
	return !e.isEmpty() && e.keyXor^e.data == uint64(key)
}

func (e *ttEntry) move() Move   { return Move(uint16(e.data >> moveShift)) }
func (e *ttEntry) eval() Value  { return Value(int16(uint16(e.data >> evalShift))) }
func (e *ttEntry) value() Value { return Value(int16(uint16(e.data >> valueShift))) }

func (e *ttEntry) vmeta() uint64 { return e.data >> vmetaShift }
func (e *ttEntry) depth() int8   { return int8((e.vmeta() & depthMask) >> depthShift) }
func (e *ttEntry) vtype() ValueType {
	return ValueType((e.vmeta() & vtypeMask) >> vtypeShift)
}
func (e *ttEntry) age() uint8 { return uint8(e.vmeta() & ageMask) }

func (e *ttEntry) store(key Key, move Move, eval, value Value, depth int8, vt ValueType, age uint8) {
	data := packEntry(move, eval, value, depth, vt, age)
	e.data = data
	e.keyXor = uint64(key) ^ data
}

// ValueToTT adjusts a search value for storage so mate scores become
// ply-independent: "mate in N from here" rather than "mate in N from
// root", so a later probe at a different ply still yields a sensible
// distance once adjusted back by ValueFromTT.
func ValueToTT(v Value, ply int) Value {
	switch {
	case v >= ValueMateInMaxPly:
		return v + Value(ply)
	case v <= ValueMatedInMaxPly:
		return v - Value(ply)
	default:
		return v
	}
}

// ValueFromTT is the inverse of ValueToTT, applied when reading a stored
// value back at the current search ply.
func ValueFromTT(v Value, ply int) Value {
	if v == ValueNA {
		return v
	}
	switch {
	case v >= ValueMateInMaxPly:
		return v - Value(ply)
	case v <= ValueMatedInMaxPly:
		return v + Value(ply)
	default:
		return v
	}
}
