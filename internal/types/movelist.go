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

// MaxMoves is the documented upper bound on legal moves in any reachable
// chess position (the true bound is ~218); MoveList is sized generously
// above it.
const MaxMoves = 256

// MoveList is a fixed-capacity, stack-allocatable ordered sequence of
// moves. Used for pseudo-legal move generation and for the staged output
// of the move ordering driver.
type MoveList struct {
	moves [MaxMoves]Move
	len   int
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return ml.len
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.len = 0
}

// Add appends m. Panics if the list is already at capacity, which would
// indicate a move generation bug (capacity is above the real bound).
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.len] = m
	ml.len++
}

// At returns the move at index i.
func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// Set overwrites the move at index i, used by the move-ordering partial
// selection sort to swap the next-best move into place.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap exchanges the moves at i and j.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Remove deletes the move at index i, preserving the order of the rest.
func (ml *MoveList) Remove(i int) {
	copy(ml.moves[i:ml.len-1], ml.moves[i+1:ml.len])
	ml.len--
}

// IndexOf returns the index of m, or -1 if not present.
func (ml *MoveList) IndexOf(m Move) int {
	mo := m
	for i := 0; i < ml.len; i++ {
		if ml.moves[i] == mo {
			return i
		}
	}
	return -1
}

// Slice returns the populated portion as a plain slice (shares storage).
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.len]
}
