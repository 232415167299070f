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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	m.Run()
}

func TestUciHandlerLoopStopsOnQuit(t *testing.T) {
	uh := NewUciHandler()
	uh.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buffer := new(bytes.Buffer)
	uh.OutIo = bufio.NewWriter(buffer)
	uh.Loop()
	assert.Contains(t, buffer.String(), "uciok")
}

func TestUciCommandReportsIdentityAndOptions(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("uci")
	assert.Contains(t, result, "id name Corvid")
	assert.Contains(t, result, "id author")
	assert.Contains(t, result, "option name Clear Hash")
	assert.Contains(t, result, "option name Hash")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyCommand(t *testing.T) {
	uh := NewUciHandler()
	assert.Contains(t, uh.Command("isready"), "readyok")
}

func TestSetOptionHashResizesTheTable(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("isready")
	uh.Command("setoption name Hash value 4")
	assert.Equal(t, 4, config.Settings.Search.TTSizeMb)
}

func TestSetOptionOnUnknownNameReportsAnError(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("setoption name NoSuchOption value 1")
	assert.Contains(t, result, "no such option")
}

func TestPositionCommandFromStartpos(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")
	assert.Equal(t, position.NewStandard().Zobrist(), uh.myPosition.Zobrist())
}

func TestPositionCommandFromStartposWithMoves(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos moves e2e4 e7e5 g1f3 b8c6")
	want, err := position.FromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	assert.NoError(t, err)
	assert.Equal(t, want.Zobrist(), uh.myPosition.Zobrist())
}

func TestPositionCommandRejectsAnInvalidMove(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("position startpos moves e7e5")
	assert.Contains(t, result, "Command 'position' malformed")
}

func TestPositionCommandRejectsAMissingFen(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("position fen")
	assert.Contains(t, result, "Command 'position' malformed")
}

func TestReadSearchLimitsInfinite(t *testing.T) {
	uh := NewUciHandler()
	tokens := regexWhiteSpace.Split("go infinite", -1)
	limits, ok := uh.readSearchLimits(tokens)
	assert.True(t, ok)
	assert.True(t, limits.Infinite)
	assert.False(t, limits.TimeControl)
}

func TestReadSearchLimitsDepthAndMate(t *testing.T) {
	uh := NewUciHandler()
	tokens := regexWhiteSpace.Split("go depth 6 mate 4", -1)
	limits, ok := uh.readSearchLimits(tokens)
	assert.True(t, ok)
	assert.Equal(t, 6, limits.Depth)
	assert.Equal(t, 4, limits.Mate)
	assert.False(t, limits.TimeControl)
}

func TestReadSearchLimitsMoveTimeSetsTimeControl(t *testing.T) {
	uh := NewUciHandler()
	tokens := regexWhiteSpace.Split("go movetime 5000", -1)
	limits, ok := uh.readSearchLimits(tokens)
	assert.True(t, ok)
	assert.EqualValues(t, 5000, limits.MoveTime.Milliseconds())
	assert.True(t, limits.TimeControl)
}

func TestReadSearchLimitsRejectsAMissingValue(t *testing.T) {
	uh := NewUciHandler()
	tokens := regexWhiteSpace.Split("go depth", -1)
	_, ok := uh.readSearchLimits(tokens)
	assert.False(t, ok)
}

func TestReadSearchLimitsSearchmoves(t *testing.T) {
	uh := NewUciHandler()
	tokens := regexWhiteSpace.Split("go infinite searchmoves e2e4 d2d4", -1)
	limits, ok := uh.readSearchLimits(tokens)
	assert.True(t, ok)
	assert.Equal(t, 2, limits.Moves.Len())
	assert.Equal(t, "e2e4", limits.Moves.At(0).StringUci())
	assert.Equal(t, "d2d4", limits.Moves.At(1).StringUci())
}

func TestMoveFromUciRejectsAnIllegalMove(t *testing.T) {
	pos := position.NewStandard()
	assert.Equal(t, MoveNone, moveFromUci(&pos, "e2e5"))
}

func TestMoveFromUciAcceptsALegalMove(t *testing.T) {
	pos := position.NewStandard()
	m := moveFromUci(&pos, "e2e4")
	assert.NotEqual(t, MoveNone, m)
	assert.Equal(t, "e2e4", m.StringUci())
}
