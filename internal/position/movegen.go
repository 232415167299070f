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
	"github.com/corvidchess/corvid/internal/assert"
	"github.com/corvidchess/corvid/internal/attacks"
	. "github.com/corvidchess/corvid/internal/types"
)

// promoTypes lists underpromotion order queen-first.
var promoTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves appends every pseudo-legal move (captures, quiets,
// promotions, en-passant and castling) to ml. Pseudo-legal: a move may
// leave the mover's own king in check, which the caller must filter by
// playing it with DoMove and testing IsInCheck.
func (p *Position) PseudoLegalMoves(ml *MoveList) {
	p.GenerateCaptures(ml)
	p.GenerateQuiets(ml)
}

// GenerateCaptures appends every capturing move, including en-passant and
// promotion-captures, to ml. Quiet (non-capturing) promotions are emitted
// by GenerateQuiets instead.
func (p *Position) GenerateCaptures(ml *MoveList) {
	us := p.sideToMove
	them := us.Flip()
	occ := p.OccupiedSquares()
	enemy := p.occupancy[them]

	p.genPawnCapturesAndPromotions(ml, enemy)

	p.genLeaperCaptures(ml, Knight, enemy)
	p.genLeaperCaptures(ml, King, enemy)
	p.genSliderCaptures(ml, Bishop, occ, enemy)
	p.genSliderCaptures(ml, Rook, occ, enemy)
	p.genSliderCaptures(ml, Queen, occ, enemy)
}

// GenerateQuiets appends every non-capturing move, including castling,
// double pawn pushes and quiet promotions, to ml.
func (p *Position) GenerateQuiets(ml *MoveList) {
	us := p.sideToMove
	occ := p.OccupiedSquares()
	empty := ^occ

	p.genPawnQuiets(ml, empty)
	p.genLeaperQuiets(ml, Knight, empty)
	p.genLeaperQuiets(ml, King, empty)
	p.genSliderQuiets(ml, Bishop, occ, empty)
	p.genSliderQuiets(ml, Rook, occ, empty)
	p.genSliderQuiets(ml, Queen, occ, empty)
	p.genCastles(ml, us, occ)
}

// GeneratePromotions appends every promotion move (quiet or capturing) to
// ml; used by quiescence search, which otherwise skips quiet moves.
func (p *Position) GeneratePromotions(ml *MoveList) {
	us := p.sideToMove
	them := us.Flip()
	promoRank := RankBb[Rank8]
	if us == Black {
		promoRank = RankBb[Rank1]
	}
	pawns := p.pieces[us][Pawn]
	occ := p.OccupiedSquares()
	empty := ^occ
	enemy := p.occupancy[them]

	var push Bitboard
	if us == White {
		push = pawns.ShiftNorth() & empty & promoRank
	} else {
		push = pawns.ShiftSouth() & empty & promoRank
	}
	p.addPromotions(ml, push, pushDelta(us), false)

	var capL, capR Bitboard
	deltaL, deltaR := 7, 9
	if us == White {
		capL = pawns.ShiftNorthwest() & enemy & promoRank
		capR = pawns.ShiftNortheast() & enemy & promoRank
	} else {
		capL = pawns.ShiftSouthwest() & enemy & promoRank
		capR = pawns.ShiftSoutheast() & enemy & promoRank
		deltaL, deltaR = -9, -7
	}
	p.addPromotions(ml, capL, deltaL, true)
	p.addPromotions(ml, capR, deltaR, true)
}

func pushDelta(us Color) int {
	if us == White {
		return 8
	}
	return -8
}

func (p *Position) addPromotions(ml *MoveList, targets Bitboard, delta int, capture bool) {
	for targets != 0 {
		to := targets.PopLsb()
		from := Square(int(to) - delta)
		for _, pt := range promoTypes {
			ml.Add(NewPromotionMove(from, to, pt, capture))
		}
	}
}

func (p *Position) genPawnCapturesAndPromotions(ml *MoveList, enemy Bitboard) {
	us := p.sideToMove
	pawns := p.pieces[us][Pawn]
	promoRank := RankBb[Rank8]
	if us == Black {
		promoRank = RankBb[Rank1]
	}

	var capL, capR Bitboard
	if us == White {
		capL = pawns.ShiftNorthwest() & enemy
		capR = pawns.ShiftNortheast() & enemy
	} else {
		capL = pawns.ShiftSouthwest() & enemy
		capR = pawns.ShiftSoutheast() & enemy
	}

	var deltaL, deltaR int
	if us == White {
		deltaL, deltaR = 7, 9
	} else {
		deltaL, deltaR = -9, -7
	}

	p.addPawnCaptures(ml, capL&^promoRank, deltaL)
	p.addPawnCaptures(ml, capR&^promoRank, deltaR)
	p.addPromotions(ml, capL&promoRank, deltaL, true)
	p.addPromotions(ml, capR&promoRank, deltaR, true)

	p.genEnPassant(ml)
}

func (p *Position) addPawnCaptures(ml *MoveList, targets Bitboard, delta int) {
	for targets != 0 {
		to := targets.PopLsb()
		from := Square(int(to) - delta)
		ml.Add(NewMove(from, to, FlagCapture))
	}
}

func (p *Position) genEnPassant(ml *MoveList) {
	if p.epFile == FileNone {
		return
	}
	us := p.sideToMove
	var epRank Rank
	if us == White {
		epRank = Rank6
	} else {
		epRank = Rank3
	}
	to := SquareOf(p.epFile, epRank)
	attackers := attacks.PawnAttacks(us.Flip(), to) & p.pieces[us][Pawn]
	for attackers != 0 {
		from := attackers.PopLsb()
		ml.Add(NewMove(from, to, FlagEnPassant))
	}
}

func (p *Position) genPawnQuiets(ml *MoveList, empty Bitboard) {
	us := p.sideToMove
	pawns := p.pieces[us][Pawn]
	promoRank := RankBb[Rank8]
	if us == Black {
		promoRank = RankBb[Rank1]
	}
	delta := pushDelta(us)

	var single Bitboard
	if us == White {
		single = pawns.ShiftNorth() & empty
	} else {
		single = pawns.ShiftSouth() & empty
	}

	for b := single &^ promoRank; b != 0; {
		to := b.PopLsb()
		from := Square(int(to) - delta)
		ml.Add(NewMove(from, to, FlagQuiet))
	}
	p.addPromotions(ml, single&promoRank, delta, false)

	var double Bitboard
	if us == White {
		double = single.ShiftNorth() & empty & RankBb[Rank4]
	} else {
		double = single.ShiftSouth() & empty & RankBb[Rank5]
	}
	for b := double; b != 0; {
		to := b.PopLsb()
		from := Square(int(to) - 2*delta)
		ml.Add(NewMove(from, to, FlagDoublePawn))
	}
}

func (p *Position) genLeaperCaptures(ml *MoveList, pt PieceType, enemy Bitboard) {
	us := p.sideToMove
	pieces := p.pieces[us][pt]
	for pieces != 0 {
		from := pieces.PopLsb()
		var att Bitboard
		if pt == Knight {
			att = attacks.KnightAttacks(from)
		} else {
			att = attacks.KingAttacks(from)
		}
		targets := att & enemy
		for targets != 0 {
			to := targets.PopLsb()
			ml.Add(NewMove(from, to, FlagCapture))
		}
	}
}

func (p *Position) genLeaperQuiets(ml *MoveList, pt PieceType, empty Bitboard) {
	us := p.sideToMove
	pieces := p.pieces[us][pt]
	for pieces != 0 {
		from := pieces.PopLsb()
		var att Bitboard
		if pt == Knight {
			att = attacks.KnightAttacks(from)
		} else {
			att = attacks.KingAttacks(from)
		}
		targets := att & empty
		for targets != 0 {
			to := targets.PopLsb()
			ml.Add(NewMove(from, to, FlagQuiet))
		}
	}
}

func (p *Position) genSliderCaptures(ml *MoveList, pt PieceType, occ, enemy Bitboard) {
	us := p.sideToMove
	pieces := p.pieces[us][pt]
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := attacks.SliderAttacks(pt, from, occ) & enemy
		for targets != 0 {
			to := targets.PopLsb()
			ml.Add(NewMove(from, to, FlagCapture))
		}
	}
}

func (p *Position) genSliderQuiets(ml *MoveList, pt PieceType, occ, empty Bitboard) {
	us := p.sideToMove
	pieces := p.pieces[us][pt]
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := attacks.SliderAttacks(pt, from, occ) & empty
		for targets != 0 {
			to := targets.PopLsb()
			ml.Add(NewMove(from, to, FlagQuiet))
		}
	}
}

func (p *Position) genCastles(ml *MoveList, us Color, occ Bitboard) {
	them := us.Flip()
	for _, right := range []CastlingRights{KingSide(us), QueenSide(us)} {
		if p.castlingRights&right == 0 {
			continue
		}
		info := castles[right]
		if assert.DEBUG {
			assert.Assert(p.King(us) == info.kingFrom, "genCastles: king not on its castling home square")
			assert.Assert(p.PieceAt(info.rookFrom) == MakePiece(us, Rook), "genCastles: rook not on its castling home square")
		}
		if info.emptySquares&occ != 0 {
			continue
		}
		attacked := false
		path := info.kingPath
		for path != 0 {
			sq := path.PopLsb()
			if p.IsAttacked(sq, them) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		flag := FlagCastleQ
		if right == KingSide(us) {
			flag = FlagCastleK
		}
		ml.Add(NewMove(info.kingFrom, info.kingTo, flag))
	}
}

// GenerateCheckEscapes appends every pseudo-legal move available while the
// side to move's king is in check: king moves off the attacked square,
// captures of a single checking piece, and interpositions on the line
// between a single checking slider and the king. Callers must still
// filter with DoMove+IsInCheck, since king moves may step into another
// attacked square and interpositions may unveil a discovered check.
func (p *Position) GenerateCheckEscapes(ml *MoveList) {
	us := p.sideToMove
	them := us.Flip()
	kingSq := p.King(us)
	occ := p.OccupiedSquares()
	empty := ^occ
	enemy := p.occupancy[them]

	p.genLeaperCaptures2(ml, kingSq, attacks.KingAttacks(kingSq), enemy)
	p.genLeaperQuiets2(ml, kingSq, attacks.KingAttacks(kingSq), empty)

	checkers := p.checkers(us)
	if checkers.PopCount() != 1 {
		// double check: only king moves escape it, already generated above.
		return
	}
	checkerSq := checkers.Lsb()

	var target Bitboard
	target = target.Set(checkerSq)
	if sameLineAdjacent(kingSq, checkerSq, p.board[checkerSq].TypeOf()) {
		target |= attacks.InBetween(kingSq, checkerSq)
	}

	var all MoveList
	p.GenerateCaptures(&all)
	p.GenerateQuiets(&all)
	for i := 0; i < all.Len(); i++ {
		m := all.At(i)
		if m.From() == kingSq {
			continue
		}
		if m.IsEnPassant() {
			victimSq := SquareOf(m.To().FileOf(), m.From().RankOf())
			if victimSq == checkerSq {
				ml.Add(m)
			}
			continue
		}
		if target.Has(m.To()) {
			ml.Add(m)
		}
	}
}

func sameLineAdjacent(kingSq, checkerSq Square, pt PieceType) bool {
	switch pt {
	case Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

func (p *Position) genLeaperCaptures2(ml *MoveList, from Square, att, enemy Bitboard) {
	targets := att & enemy
	for targets != 0 {
		to := targets.PopLsb()
		ml.Add(NewMove(from, to, FlagCapture))
	}
}

func (p *Position) genLeaperQuiets2(ml *MoveList, from Square, att, empty Bitboard) {
	targets := att & empty
	for targets != 0 {
		to := targets.PopLsb()
		ml.Add(NewMove(from, to, FlagQuiet))
	}
}

// GenerateQuietChecks appends quiet (non-capturing, non-promoting) moves
// that give check, used by quiescence search's limited check extension.
func (p *Position) GenerateQuietChecks(ml *MoveList) {
	var quiets MoveList
	p.GenerateQuiets(&quiets)
	for i := 0; i < quiets.Len(); i++ {
		m := quiets.At(i)
		if m.IsCastle() {
			continue
		}
		if p.IsCheckMove(m) {
			ml.Add(m)
		}
	}
}
