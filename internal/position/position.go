//
// corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2026 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// Package position implements the bitboard board representation: a
// cheaply-copyable Position value type with make-move (copy-make, no
// unmake), FEN parsing, attack/check/pin queries and static exchange
// evaluation.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/internal/attacks"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/zobrist"
)

func init() {
	// Attack tables must exist before any Position method runs.
	attacks.Init()
}

// StartFEN is the standard chess starting position in FEN.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a plain, cheaply-copyable chess position. It has no owned
// heap memory so recursive search can pass it by value ("copy-make")
// without ever needing to unmake a move.
type Position struct {
	pieces     [ColorLength][PtLength]Bitboard
	occupancy  [ColorLength]Bitboard
	board      [SqLength]Piece

	sideToMove     Color
	castlingRights CastlingRights
	epFile         File // 0..7, or FileNone (8) for "none"
	halfmoveClock  int16
	moveNumber     int16

	zobristKey Key
	pawnKey    Key
}

// NewStandard returns the standard chess starting position.
func NewStandard() Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic("position: StartFEN failed to parse: " + err.Error())
	}
	return p
}

// FromFEN parses a FEN string into a Position. On any parse error the
// returned Position is the zero value and must be discarded; the caller
// is never left with a partially-mutated position.
func FromFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("position: malformed FEN %q: need at least 4 fields", fen)
	}
	var p Position
	p.epFile = FileNone

	if err := p.setBoard(fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return Position{}, fmt.Errorf("position: invalid side to move %q", fields[1])
	}

	p.castlingRights = parseCastling(fields[2])

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if !sq.IsValid() {
			return Position{}, fmt.Errorf("position: invalid en-passant square %q", fields[3])
		}
		p.epFile = sq.FileOf()
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return Position{}, fmt.Errorf("position: invalid halfmove clock %q", fields[4])
		}
		p.halfmoveClock = int16(n)
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return Position{}, fmt.Errorf("position: invalid move number %q", fields[5])
		}
		p.moveNumber = int16(n)
	} else {
		p.moveNumber = 1
	}

	p.zobristKey = p.computeZobrist()
	return p, nil
}

func (p *Position) setBoard(boardField string) error {
	ranks := strings.Split(boardField, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: board needs 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			if f > FileH {
				return fmt.Errorf("position: rank %q overflows the board", rankStr)
			}
			pc := pieceFromFenChar(ch)
			if pc == PieceNone {
				return fmt.Errorf("position: invalid piece character %q", string(ch))
			}
			p.putPiece(pc, SquareOf(f, r))
			f++
		}
		if f != FileNone {
			return fmt.Errorf("position: rank %q does not cover 8 files", rankStr)
		}
	}
	return nil
}

func pieceFromFenChar(ch rune) Piece {
	c := White
	lc := ch
	if ch >= 'a' && ch <= 'z' {
		c = Black
	} else {
		lc = ch - 'A' + 'a'
	}
	var pt PieceType
	switch lc {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return PieceNone
	}
	return MakePiece(c, pt)
}

func parseCastling(s string) CastlingRights {
	if s == "-" {
		return CastlingNone
	}
	var cr CastlingRights
	for _, ch := range s {
		switch ch {
		case 'K':
			cr |= CastlingWhiteOO
		case 'Q':
			cr |= CastlingWhiteOOO
		case 'k':
			cr |= CastlingBlackOO
		case 'q':
			cr |= CastlingBlackOOO
		}
	}
	return cr
}

func (p *Position) putPiece(pc Piece, sq Square) {
	p.pieces[pc.ColorOf()][pc.TypeOf()] = p.pieces[pc.ColorOf()][pc.TypeOf()].Set(sq)
	p.occupancy[pc.ColorOf()] = p.occupancy[pc.ColorOf()].Set(sq)
	p.board[sq] = pc
	if pc.TypeOf() == Pawn {
		p.pawnKey ^= zobrist.PieceSquare(pc, sq)
	}
}

func (p *Position) removePiece(pc Piece, sq Square) {
	p.pieces[pc.ColorOf()][pc.TypeOf()] = p.pieces[pc.ColorOf()][pc.TypeOf()].Clear(sq)
	p.occupancy[pc.ColorOf()] = p.occupancy[pc.ColorOf()].Clear(sq)
	p.board[sq] = PieceNone
	if pc.TypeOf() == Pawn {
		p.pawnKey ^= zobrist.PieceSquare(pc, sq)
	}
}

func (p *Position) movePiece(pc Piece, from, to Square) {
	p.removePiece(pc, from)
	p.putPiece(pc, to)
}

// PieceAt returns the piece (possibly PieceNone) standing on sq.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// Pieces returns the bitboard of pieces of type pt and color c.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.pieces[c][pt]
}

// Occupancy returns the union of all pieces of color c.
func (p *Position) Occupancy(c Color) Bitboard {
	return p.occupancy[c]
}

// OccupiedSquares returns the union of both sides' pieces.
func (p *Position) OccupiedSquares() Bitboard {
	return p.occupancy[White] | p.occupancy[Black]
}

// King returns the square of color c's king.
func (p *Position) King(c Color) Square {
	return p.pieces[c][King].Lsb()
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Zobrist returns the current Zobrist hash.
func (p *Position) Zobrist() Key { return p.zobristKey }

// PawnKey returns a Zobrist-style hash of the pawn structure alone (both
// colors' pawns, ignoring every other piece, side to move, castling and
// en-passant state), maintained incrementally the same way Zobrist is.
// The pawn-structure evaluation term uses it to key its own cache, which
// stays valid far longer than the full-position cache since most moves
// don't touch any pawn.
func (p *Position) PawnKey() Key { return p.pawnKey }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EpFile returns the en-passant file, or FileNone if there is none.
func (p *Position) EpFile() File { return p.epFile }

// HalfmoveClock returns the fifty-move-rule half-move counter.
func (p *Position) HalfmoveClock() int { return int(p.halfmoveClock) }

// MoveNumber returns the full-move number.
func (p *Position) MoveNumber() int { return int(p.moveNumber) }

// computeZobrist recomputes the hash from scratch; used at FEN-parse time
// and by tests that verify incremental maintenance against ground truth.
func (p *Position) computeZobrist() Key {
	var key Key
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLsb()
				key ^= zobrist.PieceSquare(MakePiece(c, pt), sq)
			}
		}
	}
	if p.sideToMove == Black {
		key ^= zobrist.SideToMove()
	}
	key ^= zobrist.Castling(p.castlingRights)
	key ^= zobrist.EpFile(p.epFile)
	return key
}

// String renders the position as an 8x8 ASCII board plus FEN-style
// metadata, for debug logging.
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteString(r.String() + " ")
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceAt(SquareOf(f, r))
			if pc == PieceNone {
				sb.WriteString(". ")
			} else {
				sb.WriteString(pc.Char() + " ")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString(fmt.Sprintf("side=%s castling=%s ep=%s halfmove=%d move=%d zobrist=%016X\n",
		p.sideToMove, p.castlingRights, p.epFile.String(), p.halfmoveClock, p.moveNumber, uint64(p.zobristKey)))
	return sb.String()
}
