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

import "strings"

// Move is a 16-bit move encoding:
//  bits 0-5   from square
//  bits 6-11  to square
//  bits 12-15 flags (see the MoveFlag constants)
//
// MoveNone (all zero bits) is never a legal generated move and is used as
// the "no move" sentinel throughout move ordering and the TT.
type Move uint16

// MoveNone is the all-zero sentinel "no move" value.
const MoveNone Move = 0

// MoveFlag occupies bits 12-15 of a Move. The encoding follows the
// well-known 4-bit scheme: bit 3 (value 8) marks promotions, bit 2
// (value 4) marks captures, bits 1-0 carry the promotion piece or the
// castle/en-passant sub-type.
type MoveFlag uint8

// MoveFlag constants.
const (
	FlagQuiet       MoveFlag = 0b0000
	FlagDoublePawn  MoveFlag = 0b0001
	FlagCastleK     MoveFlag = 0b0010
	FlagCastleQ     MoveFlag = 0b0011
	FlagCapture     MoveFlag = 0b0100
	FlagEnPassant   MoveFlag = 0b0101
	FlagPromoN      MoveFlag = 0b1000
	FlagPromoB      MoveFlag = 0b1001
	FlagPromoR      MoveFlag = 0b1010
	FlagPromoQ      MoveFlag = 0b1011
	FlagPromoCaptN  MoveFlag = 0b1100
	FlagPromoCaptB  MoveFlag = 0b1101
	FlagPromoCaptR  MoveFlag = 0b1110
	FlagPromoCaptQ  MoveFlag = 0b1111
)

const (
	fromMask  Move = 0x003F
	toShift        = 6
	toMask    Move = 0x0FC0
	flagShift      = 12

	captureBit   = 0b0100
	promotionBit = 0b1000
	castleBit    = 0b0010
)

// NewMove encodes a move from its squares and flag.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(from) | Move(to)<<toShift | Move(flag)<<flagShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & fromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Flag returns the 4-bit flag field.
func (m Move) Flag() MoveFlag {
	return MoveFlag(m >> flagShift)
}

// IsCapture reports whether m captures a piece (including en-passant and
// promotion-captures).
func (m Move) IsCapture() bool {
	return uint8(m.Flag())&captureBit != 0
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return uint8(m.Flag())&promotionBit != 0
}

// IsCastle reports whether m is a castling move (the flag's bit 1 set
// without the promotion bit set distinguishes 0010/0011 from 1010/1011).
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleK || f == FlagCastleQ
}

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsDoublePawnPush reports whether m is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == FlagDoublePawn
}

// IsQuiet reports whether m is neither a capture nor a promotion. Castles
// count as quiet for move-ordering purposes (they aren't captures).
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// PromotionType returns the piece type promoted to. Only meaningful when
// IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	switch m.Flag() & 0b0011 {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

var promoFlagByType = map[PieceType]MoveFlag{
	Knight: 0, Bishop: 1, Rook: 2, Queen: 3,
}

// NewPromotionMove encodes a promotion (or promotion-capture) move.
func NewPromotionMove(from, to Square, promo PieceType, capture bool) Move {
	sub := promoFlagByType[promo]
	flag := MoveFlag(promotionBit) | sub
	if capture {
		flag |= captureBit
	}
	return NewMove(from, to, flag)
}

// StringUci renders m in UCI long algebraic notation ("e2e4", "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

// String is a debug-friendly rendering of m.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{none}"
	}
	return "Move{" + m.StringUci() + "}"
}
