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
	"github.com/corvidchess/corvid/internal/zobrist"
)

// DoMove applies m to a copy of p and returns the resulting position.
// Copy-make: p itself is never modified. m is assumed pseudo-legal; the
// caller must verify with IsInCheck after the fact for moves coming from
// normal generation, or use DoHashMove for moves that may be the product
// of a TT hash collision.
func (p Position) DoMove(m Move) Position {
	np := p
	us := p.sideToMove
	them := us.Flip()
	from, to := m.From(), m.To()
	moving := p.board[from]

	np.zobristKey ^= zobrist.Castling(np.castlingRights)
	np.zobristKey ^= zobrist.EpFile(np.epFile)

	switch {
	case m.IsCastle():
		info := castles[castleRightFor(us, m.Flag())]
		rook := MakePiece(us, Rook)
		np.movePiece(moving, from, to)
		np.zobristKey ^= zobrist.PieceSquare(moving, from) ^ zobrist.PieceSquare(moving, to)
		np.movePiece(rook, info.rookFrom, info.rookTo)
		np.zobristKey ^= zobrist.PieceSquare(rook, info.rookFrom) ^ zobrist.PieceSquare(rook, info.rookTo)

	case m.IsEnPassant():
		victimSq := SquareOf(to.FileOf(), from.RankOf())
		victim := MakePiece(them, Pawn)
		np.removePiece(victim, victimSq)
		np.zobristKey ^= zobrist.PieceSquare(victim, victimSq)
		np.movePiece(moving, from, to)
		np.zobristKey ^= zobrist.PieceSquare(moving, from) ^ zobrist.PieceSquare(moving, to)

	case m.IsCapture() && m.IsPromotion():
		captured := p.board[to]
		np.removePiece(captured, to)
		np.zobristKey ^= zobrist.PieceSquare(captured, to)
		np.removePiece(moving, from)
		np.zobristKey ^= zobrist.PieceSquare(moving, from)
		promoted := MakePiece(us, m.PromotionType())
		np.putPiece(promoted, to)
		np.zobristKey ^= zobrist.PieceSquare(promoted, to)

	case m.IsPromotion():
		np.removePiece(moving, from)
		np.zobristKey ^= zobrist.PieceSquare(moving, from)
		promoted := MakePiece(us, m.PromotionType())
		np.putPiece(promoted, to)
		np.zobristKey ^= zobrist.PieceSquare(promoted, to)

	case m.IsCapture():
		captured := p.board[to]
		np.removePiece(captured, to)
		np.zobristKey ^= zobrist.PieceSquare(captured, to)
		np.movePiece(moving, from, to)
		np.zobristKey ^= zobrist.PieceSquare(moving, from) ^ zobrist.PieceSquare(moving, to)

	default:
		np.movePiece(moving, from, to)
		np.zobristKey ^= zobrist.PieceSquare(moving, from) ^ zobrist.PieceSquare(moving, to)
	}

	// castling rights: moving the king or a rook, or capturing on a
	// rook's home square, revokes the associated rights.
	if moving.TypeOf() == King {
		np.castlingRights = np.castlingRights.Remove(KingSide(us) | QueenSide(us))
	}
	if right, ok := rookHomeRight[from]; ok {
		np.castlingRights = np.castlingRights.Remove(right)
	}
	if right, ok := rookHomeRight[to]; ok {
		np.castlingRights = np.castlingRights.Remove(right)
	}

	// en-passant file for the new position
	if m.IsDoublePawnPush() {
		np.epFile = from.FileOf()
	} else {
		np.epFile = FileNone
	}

	if moving.TypeOf() == Pawn || m.IsCapture() {
		np.halfmoveClock = 0
	} else {
		np.halfmoveClock++
	}
	if us == Black {
		np.moveNumber++
	}

	np.sideToMove = them
	np.zobristKey ^= zobrist.SideToMove()
	np.zobristKey ^= zobrist.Castling(np.castlingRights)
	np.zobristKey ^= zobrist.EpFile(np.epFile)

	return np
}

func castleRightFor(c Color, flag MoveFlag) CastlingRights {
	if flag == FlagCastleK {
		return KingSide(c)
	}
	return QueenSide(c)
}

// DoNullMove returns the position with the side to move flipped and the
// en-passant file cleared, used by the null-move pruning heuristic.
func (p Position) DoNullMove() Position {
	np := p
	np.zobristKey ^= zobrist.SideToMove()
	np.zobristKey ^= zobrist.EpFile(np.epFile)
	np.epFile = FileNone
	np.zobristKey ^= zobrist.EpFile(np.epFile)
	np.sideToMove = p.sideToMove.Flip()
	np.halfmoveClock++
	return np
}

// DoHashMove applies m after verifying it is actually legal to play from
// p. TT moves can be stale artifacts of a hash collision (a "type-1
// error"): the from-square must hold a piece of the side to move, the
// to-square's occupancy must match the capture flag, and a king must
// never be the captured piece. On any inconsistency it returns
// (Position{}, false) without mutating p, and the caller falls back to
// normal move ordering.
func (p Position) DoHashMove(m Move) (Position, bool) {
	if m == MoveNone {
		return Position{}, false
	}
	from, to := m.From(), m.To()
	if !from.IsValid() || !to.IsValid() {
		return Position{}, false
	}
	moving := p.board[from]
	if moving == PieceNone || moving.ColorOf() != p.sideToMove {
		return Position{}, false
	}
	target := p.board[to]
	if m.IsCapture() && !m.IsEnPassant() {
		if target == PieceNone || target.ColorOf() == p.sideToMove || target.TypeOf() == King {
			return Position{}, false
		}
	}
	if !m.IsCapture() && target != PieceNone {
		return Position{}, false
	}
	np := p.DoMove(m)
	if np.IsInCheck(p.sideToMove) {
		return Position{}, false
	}
	return np, true
}
