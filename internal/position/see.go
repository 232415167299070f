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

// SEE piece values, distinct from the general evaluator's material table:
// {P=100, N=400, B=400, R=600, Q=1150, K=mate/2}.
var seeValue = [PtLength]int32{PtNone: 0, Pawn: 100, Knight: 400, Bishop: 400, Rook: 600, Queen: 1150, King: 15500}

// seeOrder lists piece types from least to most valuable, used to find
// the least valuable attacker at each step of the swap algorithm.
var seeOrder = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// leastValuableAttacker returns the square and piece type of the
// cheapest attacker of color c present in the attackers bitboard, or
// (SqNone, PtNone, false) if none.
func (p *Position) leastValuableAttacker(attackers Bitboard, c Color) (Square, PieceType, bool) {
	own := attackers & p.occupancy[c]
	if own == 0 {
		return SqNone, PtNone, false
	}
	for _, pt := range seeOrder {
		bb := own & p.pieces[c][pt]
		if bb != 0 {
			return bb.Lsb(), pt, true
		}
	}
	return SqNone, PtNone, false
}

// See performs static exchange evaluation on sq: the net material gain,
// in the SEE point scale, from a hypothetical sequence of captures on sq
// started by color `side`, using the swap algorithm with x-ray
// re-attackers.
func (p *Position) See(sq Square, side Color) int32 {
	occ := p.OccupiedSquares()
	target := p.board[sq]

	var gain [40]int32
	d := 0
	gain[0] = seeValue[target.TypeOf()]

	attackerColor := side
	curOcc := occ
	attackers := p.attackersTo(sq, curOcc)

	for {
		fromSq, pt, ok := p.leastValuableAttacker(attackers, attackerColor)
		if !ok {
			break
		}
		d++
		gain[d] = seeValue[pt] - gain[d-1]

		curOcc = curOcc.Clear(fromSq)
		attackers = p.attackersTo(sq, curOcc)
		attackerColor = attackerColor.Flip()
	}

	return backpropagateSwapGain(gain, d)
}

// backpropagateSwapGain folds a forward-built swap-algorithm gain chain
// back into a single value: from the deepest forced capture up to the
// initiating one, each side only lets the next capture stand if it beats
// having stopped one ply earlier.
func backpropagateSwapGain(gain [40]int32, d int) int32 {
	for d > 1 {
		d--
		opt := -gain[d-1]
		if gain[d] > opt {
			opt = gain[d]
		}
		gain[d-1] = -opt
	}
	return gain[0]
}

// SeeForMove is See but forces the exchange sequence to begin with the
// specific piece making move m, rather than picking the cheapest
// attacker on m.To().
func (p *Position) SeeForMove(m Move) int32 {
	from, to := m.From(), m.To()
	mover := p.board[from]
	us := mover.ColorOf()

	occ := p.OccupiedSquares()
	var target Piece
	if m.IsEnPassant() {
		target = MakePiece(us.Flip(), Pawn)
	} else {
		target = p.board[to]
	}

	var gain [40]int32
	d := 0
	gain[0] = seeValue[target.TypeOf()]

	curOcc := occ.Clear(from)
	attackerPt := mover.TypeOf()
	if m.IsPromotion() {
		attackerPt = m.PromotionType()
	}
	attackerColor := us.Flip()
	attackers := p.attackersTo(to, curOcc)

	for {
		d++
		gain[d] = seeValue[attackerPt] - gain[d-1]

		fromSq, pt, ok := p.leastValuableAttacker(attackers, attackerColor)
		if !ok {
			break
		}
		curOcc = curOcc.Clear(fromSq)
		attackers = p.attackersTo(to, curOcc)
		attackerPt = pt
		attackerColor = attackerColor.Flip()
	}

	return backpropagateSwapGain(gain, d)
}
