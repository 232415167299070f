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

import "fmt"

// Square is a board square, 0 (a1) .. 63 (h8), encoded as file + 8*rank.
type Square uint8

// Square constants, SqA1 = 0 .. SqH8 = 63, SqNone = 64.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// SqLength is the number of valid squares.
const SqLength = int(SqNone)

// IsValid reports whether sq is in 0..63.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a square from a file and rank, or SqNone if either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(uint8(r)<<3 | uint8(f))
}

// MakeSquare parses a square from its algebraic notation ("e4"), returning
// SqNone for anything that isn't exactly two valid characters.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String returns algebraic notation ("e4"), or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

var sqTo [SqLength][8]Square

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		for i, d := range Directions {
			sqTo[sq][i] = sq.stepPreCompute(d)
		}
	}
}

// To returns the square reached from sq by stepping once in direction d,
// or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		return sqTo[sq][0]
	case East:
		return sqTo[sq][1]
	case South:
		return sqTo[sq][2]
	case West:
		return sqTo[sq][3]
	case Northeast:
		return sqTo[sq][4]
	case Southeast:
		return sqTo[sq][5]
	case Southwest:
		return sqTo[sq][6]
	case Northwest:
		return sqTo[sq][7]
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

func (sq Square) stepPreCompute(d Direction) Square {
	switch d {
	case North, South:
		// vertical overflow is caught by the final bounds check
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Southwest, Northwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	}
	n := int(sq) + int(d)
	if n < 0 || n >= SqLength {
		return SqNone
	}
	return Square(n)
}

// FileDistance returns the absolute difference between two files.
func FileDistance(f1, f2 File) int {
	d := int(f1) - int(f2)
	if d < 0 {
		d = -d
	}
	return d
}

// RankDistance returns the absolute difference between two ranks.
func RankDistance(r1, r2 Rank) int {
	d := int(r1) - int(r2)
	if d < 0 {
		d = -d
	}
	return d
}

// SquareDistance is the Chebyshev distance between two squares.
func SquareDistance(s1, s2 Square) int {
	fd := FileDistance(s1.FileOf(), s2.FileOf())
	rd := RankDistance(s1.RankOf(), s2.RankOf())
	if fd > rd {
		return fd
	}
	return rd
}

// ManhattanDistance is the taxicab distance between two squares, used by
// the king-pawn tropism and endgame-driving evaluation terms.
func ManhattanDistance(s1, s2 Square) int {
	return FileDistance(s1.FileOf(), s2.FileOf()) + RankDistance(s1.RankOf(), s2.RankOf())
}
