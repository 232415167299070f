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

package position

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// NonPawnMaterial returns the sum of piece values for every piece of
// color c except pawns and the king, used by search as the zugzwang
// guard for null-move pruning and reverse futility pruning.
func (p *Position) NonPawnMaterial(c Color) Value {
	var v Value
	for pt := Knight; pt <= Queen; pt++ {
		v += Value(p.pieces[c][pt].PopCount()) * pt.ValueOf()
	}
	return v
}

// IsInsufficientMaterial reports whether neither side has mating material
// left on the board: king vs king, king+minor vs king, or king+bishop vs
// king+bishop with both bishops on the same color complex.
func (p *Position) IsInsufficientMaterial() bool {
	if p.pieces[White][Pawn] != 0 || p.pieces[Black][Pawn] != 0 {
		return false
	}
	if p.pieces[White][Rook] != 0 || p.pieces[Black][Rook] != 0 {
		return false
	}
	if p.pieces[White][Queen] != 0 || p.pieces[Black][Queen] != 0 {
		return false
	}

	wMinors := p.pieces[White][Knight].PopCount() + p.pieces[White][Bishop].PopCount()
	bMinors := p.pieces[Black][Knight].PopCount() + p.pieces[Black][Bishop].PopCount()

	if wMinors == 0 && bMinors == 0 {
		return true
	}
	if wMinors+bMinors == 1 {
		return true
	}
	if wMinors == 1 && bMinors == 1 &&
		p.pieces[White][Bishop].PopCount() == 1 && p.pieces[Black][Bishop].PopCount() == 1 {
		wBishopSq := p.pieces[White][Bishop].Lsb()
		bBishopSq := p.pieces[Black][Bishop].Lsb()
		return squareColor(wBishopSq) == squareColor(bBishopSq)
	}
	return false
}

// squareColor reports whether sq is a light (true) or dark (false) square.
func squareColor(sq Square) bool {
	return (int(sq.FileOf())+int(sq.RankOf()))%2 != 0
}

// IsDrawByFiftyOrMaterial reports whether the position is an immediate
// draw by the fifty-move rule or by insufficient material, independent of
// the game's move history (so it does not cover threefold repetition,
// which search tracks separately via its two-fold stack).
func (p *Position) IsDrawByFiftyOrMaterial() bool {
	if p.halfmoveClock >= 100 {
		return true
	}
	return p.IsInsufficientMaterial()
}
