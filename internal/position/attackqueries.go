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
	"github.com/corvidchess/corvid/internal/attacks"
	. "github.com/corvidchess/corvid/internal/types"
)

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.OccupiedSquares()
	if attacks.PawnAttacks(by.Flip(), sq)&p.pieces[by][Pawn] != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.pieces[by][Knight] != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.pieces[by][King] != 0 {
		return true
	}
	bishopsQueens := p.pieces[by][Bishop] | p.pieces[by][Queen]
	if attacks.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.pieces[by][Rook] | p.pieces[by][Queen]
	if attacks.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// attackersTo returns every piece of either color attacking sq given a
// (possibly hypothetical) board occupancy occ, used by SEE as it peels
// attackers away from the real occupancy one at a time.
func (p *Position) attackersTo(sq Square, occ Bitboard) Bitboard {
	var result Bitboard
	result |= attacks.PawnAttacks(Black, sq) & p.pieces[White][Pawn]
	result |= attacks.PawnAttacks(White, sq) & p.pieces[Black][Pawn]
	result |= attacks.KnightAttacks(sq) & (p.pieces[White][Knight] | p.pieces[Black][Knight])
	result |= attacks.KingAttacks(sq) & (p.pieces[White][King] | p.pieces[Black][King])
	bishopsQueens := p.pieces[White][Bishop] | p.pieces[Black][Bishop] | p.pieces[White][Queen] | p.pieces[Black][Queen]
	result |= attacks.BishopAttacks(sq, occ) & bishopsQueens
	rooksQueens := p.pieces[White][Rook] | p.pieces[Black][Rook] | p.pieces[White][Queen] | p.pieces[Black][Queen]
	result |= attacks.RookAttacks(sq, occ) & rooksQueens
	return result & occ
}

// Attackers returns every piece (of either color) currently attacking sq.
func (p *Position) Attackers(sq Square) Bitboard {
	return p.attackersTo(sq, p.OccupiedSquares())
}

// IsInCheck reports whether c's king is currently attacked.
func (p *Position) IsInCheck(c Color) bool {
	return p.IsAttacked(p.King(c), c.Flip())
}

// checkers returns the bitboard of enemy pieces currently giving check to
// color c's king.
func (p *Position) checkers(c Color) Bitboard {
	kingSq := p.King(c)
	return p.attackersTo(kingSq, p.OccupiedSquares()) & p.occupancy[c.Flip()]
}

// Pinned returns the bitboard of color c's pieces that are pinned to c's
// king by an enemy slider (and so may only move along the pin ray).
func (p *Position) Pinned(c Color) Bitboard {
	var pinned Bitboard
	kingSq := p.King(c)
	them := c.Flip()
	occ := p.OccupiedSquares()

	// x-ray: find enemy sliders that would attack the king if our pieces
	// were transparent, then check whether exactly one of our pieces sits
	// between them and the king.
	candidates := (attacks.BishopAttacks(kingSq, p.occupancy[them]) & (p.pieces[them][Bishop] | p.pieces[them][Queen])) |
		(attacks.RookAttacks(kingSq, p.occupancy[them]) & (p.pieces[them][Rook] | p.pieces[them][Queen]))

	for candidates != 0 {
		sliderSq := candidates.PopLsb()
		between := attacks.InBetween(kingSq, sliderSq) & occ
		if between != 0 && between.PopCount() == 1 && between&p.occupancy[c] != 0 {
			pinned |= between
		}
	}
	return pinned
}

// IsCheckMove reports whether playing m would give check - direct (the
// moved piece attacks the enemy king from its destination) or discovered
// (moving the piece unveils an attack from behind it). Does not consider
// en-passant or castling discovered checks.
func (p *Position) IsCheckMove(m Move) bool {
	us := p.sideToMove
	them := us.Flip()
	enemyKing := p.King(them)
	moving := p.board[m.From()]
	pt := moving.TypeOf()
	if m.IsPromotion() {
		pt = m.PromotionType()
	}

	occAfter := p.OccupiedSquares().Clear(m.From()).Set(m.To())
	if m.IsCapture() && !m.IsEnPassant() {
		occAfter = occAfter.Clear(m.To()).Set(m.To())
	}

	direct := false
	switch pt {
	case Pawn:
		direct = attacks.PawnAttacks(us, m.To()).Has(enemyKing)
	case Knight:
		direct = attacks.KnightAttacks(m.To()).Has(enemyKing)
	case Bishop:
		direct = attacks.BishopAttacks(m.To(), occAfter).Has(enemyKing)
	case Rook:
		direct = attacks.RookAttacks(m.To(), occAfter).Has(enemyKing)
	case Queen:
		direct = attacks.QueenAttacks(m.To(), occAfter).Has(enemyKing)
	case King:
		direct = false
	}
	if direct {
		return true
	}

	// discovered check: a friendly slider behind m.From(), on the line
	// through the enemy king, unveiled once m.From() becomes empty.
	bishopsQueens := p.pieces[us][Bishop] | p.pieces[us][Queen]
	rooksQueens := p.pieces[us][Rook] | p.pieces[us][Queen]
	discoverers := (attacks.BishopAttacks(enemyKing, occAfter) & bishopsQueens) |
		(attacks.RookAttacks(enemyKing, occAfter) & rooksQueens)
	for discoverers != 0 {
		sq := discoverers.PopLsb()
		if sq == m.To() {
			continue
		}
		between := attacks.InBetween(enemyKing, sq) & occAfter
		if between == 0 {
			return true
		}
	}
	return false
}
