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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestRFactorGrowsWithAdvancement(t *testing.T) {
	assert.Equal(t, 0, rFactor(1))
	assert.Equal(t, 0, rFactor(2))
	assert.Greater(t, rFactor(6), rFactor(4), "a pawn two squares from promotion should be worth more than one four squares out")
}

func TestRelativeRankMirrorsForBlack(t *testing.T) {
	assert.Equal(t, 4, relativeRank(White, SqE4))
	assert.Equal(t, 5, relativeRank(Black, SqE4))
}

func TestAdjacentFilesExcludesTheFileItself(t *testing.T) {
	bb := adjacentFiles(FileE)
	assert.Equal(t, BbZero, bb&FileBb[FileE], "a file is never adjacent to itself")
	assert.NotEqual(t, BbZero, bb&FileBb[FileD])
	assert.NotEqual(t, BbZero, bb&FileBb[FileF])
}

func TestAdjacentFilesClampsAtTheEdge(t *testing.T) {
	bb := adjacentFiles(FileA)
	assert.Equal(t, FileBb[FileB], bb, "file A only has one neighbor")
}

func TestPassedMaskCoversFileAndNeighborsAhead(t *testing.T) {
	mask := passedMask(White, SqE4)
	assert.NotEqual(t, BbZero, mask&FileBb[FileE])
	assert.NotEqual(t, BbZero, mask&FileBb[FileD])
	assert.NotEqual(t, BbZero, mask&FileBb[FileF])
	assert.Equal(t, BbZero, mask&RankBb[Rank4], "the pawn's own rank is not ahead of it")
}

func TestNearestAheadPicksTheClosestSquare(t *testing.T) {
	path := SqE5.Bb() | SqE7.Bb()
	assert.Equal(t, SqE5, nearestAhead(path, White), "white advances upward, so e5 is nearer than e7")
	assert.Equal(t, SqE7, nearestAhead(path, Black), "black advances downward, so e7 is nearer")
}
