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
// Package uci implements the UciHandler: the command loop and protocol
// translation between a UCI-speaking chess GUI and the search/position
// packages underneath.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/version"
)

var log *logging.Logger

// UciHandler owns the engine's single Search and current Position and
// translates UCI protocol lines into calls against them.
type UciHandler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	mySearch   *search.Search
	myPosition position.Position
	myPerft    *movegen.Perft

	gameHistory []Key

	uciLog *logging.Logger
}

// NewUciHandler returns a handler reading from stdin and writing to
// stdout; swap InIo/OutIo before calling Loop to redirect either.
func NewUciHandler() *UciHandler {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &UciHandler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		mySearch:   search.NewSearch(),
		myPosition: position.NewStandard(),
		myPerft:    movegen.NewPerft(),
		uciLog:     myLogging.GetUciLog(),
	}
}

// Loop reads and handles commands until "quit" is received.
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			return
		}
	}
}

// Command runs a single UCI command line and returns whatever it wrote
// to the output stream, for debugging and tests.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// SendInfoString sends an arbitrary "info string" line.
func (u *UciHandler) SendInfoString(info string) {
	u.send("info string " + info)
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	u.uciLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.isReadyCommand()
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.stopCommand()
	case "ponderhit":
		u.mySearch.PonderHit()
	case "register":
		u.SendInfoString("Command 'register' not implemented")
	case "debug":
		u.SendInfoString("Command 'debug' not implemented")
	case "perft":
		u.perftCommand(tokens)
	default:
		log.Warningf("Unknown command: %s", cmd)
	}
	return false
}

// uciCommand answers "uci" with the engine identity, its options, then
// "uciok", per the UCI protocol's initialization handshake.
func (u *UciHandler) uciCommand() {
	u.send("id name " + version.Info())
	u.send("id author " + version.Author)
	for _, o := range *uciOptions.GetOptions() {
		u.send(o)
	}
	u.send("uciok")
}

func (u *UciHandler) setOptionCommand(tokens []string) {
	if len(tokens) < 2 || tokens[1] != "name" {
		u.SendInfoString("Command 'setoption' is malformed")
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	o, found := uciOptions[name.String()]
	if !found {
		u.SendInfoString(fmt.Sprintf("Command 'setoption': no such option %q", name.String()))
		return
	}
	o.CurrentValue = value
	o.HandlerFunc(u, o)
}

func (u *UciHandler) isReadyCommand() {
	u.mySearch.IsReady()
	u.send("readyok")
}

func (u *UciHandler) stopCommand() {
	u.mySearch.StopSearch()
	u.myPerft.Stop()
}

func (u *UciHandler) uciNewGameCommand() {
	u.myPosition = position.NewStandard()
	u.gameHistory = nil
	u.mySearch.NewGame()
}

func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	// "perft" always runs from the standard starting position rather
	// than the handler's current position.
	go u.myPerft.Run(position.StartFEN, depth)
}

// positionCommand rebuilds u.myPosition from "position [startpos|fen
// <fen>] [moves <uci-move>...]", matching each move token against the
// legal moves of the position reached so far.
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.SendInfoString("Command 'position' malformed")
		return
	}
	i := 1
	var pos position.Position
	switch tokens[i] {
	case "startpos":
		pos = position.NewStandard()
		i++
	case "fen":
		i++
		var fen strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if fen.Len() > 0 {
				fen.WriteByte(' ')
			}
			fen.WriteString(tokens[i])
			i++
		}
		p, err := position.FromFEN(fen.String())
		if err != nil {
			u.SendInfoString(fmt.Sprintf("Command 'position' malformed: invalid FEN %q", fen.String()))
			return
		}
		pos = p
	default:
		u.SendInfoString("Command 'position' malformed")
		return
	}

	history := []Key{pos.Zobrist()}
	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := moveFromUci(&pos, tokens[i])
			if m == MoveNone {
				u.SendInfoString(fmt.Sprintf("Command 'position' malformed: invalid move %q", tokens[i]))
				return
			}
			pos = pos.DoMove(m)
			history = append(history, pos.Zobrist())
		}
	}

	u.myPosition = pos
	u.gameHistory = history
	log.Debugf("New position: %s", u.myPosition.String())
}

// goCommand parses the search limits and starts a search in the
// background, then reports progress and the final bestmove.
func (u *UciHandler) goCommand(tokens []string) {
	limits, ok := u.readSearchLimits(tokens)
	if !ok {
		return
	}
	u.mySearch.SetMoveHistory(u.gameHistory)
	u.mySearch.StartSearch(u.myPosition, *limits)
	go u.reportSearch()
}

// reportSearch emits periodic "info" lines while a search is running and
// the final "bestmove" line once it completes, pulled by polling rather
// than pushed through a callback.
func (u *UciHandler) reportSearch() {
	for u.mySearch.IsSearching() {
		time.Sleep(time.Second)
		if !u.mySearch.IsSearching() {
			break
		}
		u.send(fmt.Sprintf("info nodes %d nps %d time %d hashfull %d",
			u.mySearch.NodesVisited(), nps(u.mySearch.NodesVisited(), u.mySearch.Elapsed()),
			u.mySearch.Elapsed().Milliseconds(), u.mySearch.Hashfull()))
	}
	u.sendResult()
}

func (u *UciHandler) sendResult() {
	result := u.mySearch.LastResult()
	if result == nil {
		return
	}
	u.send(fmt.Sprintf("info depth %d seldepth %d score %s nodes %d nps %d time %d pv %s",
		result.SearchDepth, result.ExtraDepth, result.BestValue.String(),
		u.mySearch.NodesVisited(), nps(u.mySearch.NodesVisited(), result.SearchTime),
		result.SearchTime.Milliseconds(), pvString(result)))

	var b strings.Builder
	b.WriteString("bestmove ")
	b.WriteString(result.BestMove.StringUci())
	if result.PonderMove != MoveNone {
		b.WriteString(" ponder ")
		b.WriteString(result.PonderMove.StringUci())
	}
	u.send(b.String())
}

func pvString(r *search.Result) string {
	var b strings.Builder
	b.WriteString(r.BestMove.StringUci())
	if r.PonderMove != MoveNone {
		b.WriteByte(' ')
		b.WriteString(r.PonderMove.StringUci())
	}
	return b.String()
}

func nps(nodes uint64, elapsed time.Duration) uint64 {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return uint64(float64(nodes) / seconds)
}

// readSearchLimits parses everything that can follow "go", per the UCI
// protocol's go-command grammar.
func (u *UciHandler) readSearchLimits(tokens []string) (*search.Limits, bool) {
	limits := search.NewLimits()
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "depth", "nodes", "mate", "movetime", "wtime", "btime", "winc", "binc", "movestogo":
			if i+1 >= len(tokens) {
				u.SendInfoString(fmt.Sprintf("go malformed: %s has no value", tokens[i]))
				return nil, false
			}
		}
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "ponder":
			limits.Ponder = true
			i++
		case "depth":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.SendInfoString("go malformed: depth not a number")
				return nil, false
			}
			limits.Depth = v
			i++
		case "nodes":
			i++
			v, err := strconv.ParseUint(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go malformed: nodes not a number")
				return nil, false
			}
			limits.Nodes = v
			i++
		case "mate":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.SendInfoString("go malformed: mate not a number")
				return nil, false
			}
			limits.Mate = v
			i++
		case "movetime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go malformed: movetime not a number")
				return nil, false
			}
			limits.MoveTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "wtime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go malformed: wtime not a number")
				return nil, false
			}
			limits.WhiteTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "btime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go malformed: btime not a number")
				return nil, false
			}
			limits.BlackTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "winc":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go malformed: winc not a number")
				return nil, false
			}
			limits.WhiteInc = time.Duration(v) * time.Millisecond
			i++
		case "binc":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go malformed: binc not a number")
				return nil, false
			}
			limits.BlackInc = time.Duration(v) * time.Millisecond
			i++
		case "movestogo":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.SendInfoString("go malformed: movestogo not a number")
				return nil, false
			}
			limits.MovesToGo = v
			i++
		case "searchmoves":
			i++
			for i < len(tokens) {
				m := moveFromUci(&u.myPosition, tokens[i])
				if m == MoveNone {
					break
				}
				limits.Moves.Add(m)
				i++
			}
		default:
			u.SendInfoString(fmt.Sprintf("go malformed: invalid subcommand %q", tokens[i]))
			return nil, false
		}
	}
	if !(limits.Infinite || limits.Ponder || limits.Depth > 0 || limits.Nodes > 0 || limits.Mate > 0 || limits.TimeControl) {
		u.SendInfoString("go malformed: no effective limits set")
		return nil, false
	}
	return limits, true
}

// moveFromUci generates the legal moves of pos and returns the one
// matching uciMove's long algebraic notation, or MoveNone if there is
// no match - the same generate-then-filter pattern internal/movegen.Perft
// uses.
func moveFromUci(pos *position.Position, uciMove string) Move {
	var pseudo MoveList
	pos.PseudoLegalMoves(&pseudo)
	us := pos.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if m.StringUci() != uciMove {
			continue
		}
		next := pos.DoMove(m)
		if next.IsInCheck(us) {
			return MoveNone
		}
		return m
	}
	return MoveNone
}

// send writes one line to the UCI output stream.
func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
