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

// Color is White or Black.
type Color uint8

// Color constants.
const (
	White Color = iota
	Black
	ColorNone
	ColorLength = int(ColorNone)
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < ColorNone
}

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

var pawnPushDirection = [2]Direction{North, South}

// PawnPushDirection returns the direction a pawn of color c moves forward.
func (c Color) PawnPushDirection() Direction {
	return pawnPushDirection[c]
}

var promotionRank = [2]Rank{Rank8, Rank1}

// PromotionRank returns the rank on which color c's pawns promote.
func (c Color) PromotionRank() Rank {
	return promotionRank[c]
}

var doublePushRank = [2]Rank{Rank2, Rank7}

// DoublePushRank returns the rank from which color c's pawns may make a
// double push.
func (c Color) DoublePushRank() Rank {
	return doublePushRank[c]
}
