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
// Package search implements the parallel iterative-deepening PVS search
// driver: time management, aspiration windows, Lazy SMP dispatch, and
// the recursive alpha-beta kernel itself.
package search

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evalcache"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tablebase"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

// Search is the engine's single search instance: one transposition table
// and eval cache shared by every Lazy SMP worker, plus the bookkeeping
// needed to drive one search invocation at a time. A semaphore gates
// starting a new search until any prior one has fully wound down.
type Search struct {
	log *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt        *transpositiontable.Table
	evalCache *evalcache.Cache
	tb        tablebase.Prober

	stopFlag    util.AtomicBool
	stopHelpers util.AtomicBool

	startTime time.Time
	timeLimit time.Duration
	extraTime time.Duration

	nodes uint64

	gameHistory []Key

	limits *Limits

	lastSearchResult *Result
	statistics       Statistics
}

// NewSearch returns a ready-to-use Search with no transposition table or
// eval cache yet - those are (re)built lazily by initialize.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		tb:            tablebase.NullProber{},
	}
}

// SetTablebase installs the Prober used for WDL lookups during search.
// Passing nil restores tablebase.NullProber{}, disabling probing. The
// UCI front end calls this with nil when the SyzygyPath option is
// cleared.
func (s *Search) SetTablebase(p tablebase.Prober) {
	if p == nil {
		p = tablebase.NullProber{}
	}
	s.tb = p
}

// NewGame resets all state that must not leak across games: stops any
// running search and clears the transposition table.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.gameHistory = nil
}

// SetMoveHistory records the Zobrist keys of the game played up to (but
// not including) the position about to be searched, so the two-fold
// repetition check can see repetitions that span moves already played
// on the board, not just ones made during this search.
func (s *Search) SetMoveHistory(keys []Key) {
	s.gameHistory = append(s.gameHistory[:0], keys...)
}

func (s *Search) initialize() {
	if s.tt == nil && config.Settings.Search.UseTT {
		size := config.Settings.Search.TTSizeMb
		if size == 0 {
			size = 64
		}
		s.tt = transpositiontable.New(size)
	}
	if s.evalCache == nil && config.Settings.Search.UseEvalCache {
		s.evalCache = evalcache.NewFromConfig()
	}
}

// ClearHash empties the transposition table. Refused while a search is
// running.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		s.log.Warning("Can't clear hash while searching")
		return
	}
	if s.tt != nil {
		s.tt.Clear()
	}
}

// IsSearching reports whether a search is currently in flight.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has finished.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// StartSearch begins a new search on pos under the given limits and
// blocks the caller until the search has both started and set up its
// internal state, returning immediately after that. The actual search
// runs on other goroutines; use WaitWhileSearching or StopSearch to
// synchronize with completion.
func (s *Search) StartSearch(pos position.Position, limits Limits) {
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.limits = &limits
	go s.run(pos)
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch requests the running search stop as soon as possible and
// waits for it to actually do so.
func (s *Search) StopSearch() {
	s.stopFlag.Set(true)
	s.WaitWhileSearching()
}

// LastResult returns the result of the most recently completed search,
// or nil if none has completed yet.
func (s *Search) LastResult() *Result { return s.lastSearchResult }

// NodesVisited returns the node count of the search currently running,
// or of the last completed search once it has finished.
func (s *Search) NodesVisited() uint64 { return s.nodesVisited() }

// Elapsed returns how long the current (or most recently started) search
// has been running.
func (s *Search) Elapsed() time.Duration { return time.Since(s.startTime) }

// Hashfull reports the transposition table's fill level in permille, or
// 0 if no table has been allocated yet.
func (s *Search) Hashfull() int {
	if s.tt == nil {
		return 0
	}
	return s.tt.Hashfull()
}

// IsReady lazily allocates the transposition table and eval cache if they
// don't exist yet, so a UCI "isready" can be answered only once the
// engine is actually ready to search.
func (s *Search) IsReady() {
	s.initialize()
}

// ResizeCache rebuilds the transposition table at the size currently set
// in config.Settings.Search.TTSizeMb. Refused while a search is running.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		s.log.Warning("Can't resize hash while searching")
		return
	}
	s.tt = nil
	s.initialize()
}

// PonderHit signals that the move searched as a ponder guess was actually
// played, so the search's time control (previously suspended) starts
// counting down for real.
func (s *Search) PonderHit() {
	if s.limits != nil && s.limits.Ponder {
		s.limits.Ponder = false
		s.startTime = time.Now()
		return
	}
	s.log.Warning("Ponderhit received while not pondering")
}

func (s *Search) addNode()             { atomic.AddUint64(&s.nodes, 1) }
func (s *Search) nodesVisited() uint64 { return atomic.LoadUint64(&s.nodes) }

// checkTime is polled periodically by the main thread only: past the
// hard budget it sets stopFlag; soft-budget expiry is instead read by
// iterativeDeepening between iterations, since an in-flight iteration
// should finish or be aborted, never started fresh once the soft budget
// is gone.
func (s *Search) checkTime() {
	if s.limits == nil || !s.limits.TimeControl || s.limits.Ponder {
		return
	}
	elapsed := time.Since(s.startTime)
	if elapsed >= s.timeLimit+s.extraTime {
		s.stopFlag.Set(true)
	}
}

func (s *Search) softBudgetExpired() bool {
	if s.limits == nil || !s.limits.TimeControl || s.limits.Ponder {
		return false
	}
	return time.Since(s.startTime) >= time.Duration(float64(s.timeLimit)*config.Settings.Search.SoftTimeFactor)
}

// run is the body of one full search: setup, the Lazy SMP fan-out, and
// result assembly. Invoked on its own goroutine by StartSearch.
func (s *Search) run(pos position.Position) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Warning("search already running, waiting for it to finish")
		_ = s.isRunning.Acquire(context.Background(), 1)
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.stopFlag.Set(false)
	s.stopHelpers.Set(false)
	s.nodes = 0
	s.statistics = Statistics{}
	s.initialize()
	if s.tt != nil {
		s.tt.NewSearch()
	}
	s.setupTimeControl(pos)

	s.initSemaphore.Release(1)

	threads := config.Settings.Search.NumberOfThreads
	if threads < 1 {
		threads = 1
	}

	workers := make([]*worker, threads)
	for i := range workers {
		workers[i] = newWorker(i, s)
	}

	var g errgroup.Group
	for i := 1; i < threads; i++ {
		w := workers[i]
		g.Go(func() error {
			w.iterativeDeepening(pos)
			return nil
		})
	}

	main := workers[0]
	main.iterativeDeepening(pos)

	// thread 0 is authoritative and done; signal helpers to park and
	// wait for the barrier before assembling the result.
	s.stopHelpers.Set(true)
	_ = g.Wait()

	s.stopFlag.Set(true)
	result := main.result
	if result == nil {
		result = &Result{BestValue: ValueDraw}
	}
	result.SearchTime = time.Since(s.startTime)
	result.SearchDepth = main.statistics.CurrentIterationDepth
	result.ExtraDepth = main.selDepth
	s.statistics = main.statistics
	s.lastSearchResult = result
}

// setupTimeControl derives the soft/hard search-time budget from the
// limits, using the configured SoftTimeFactor/HardTimeFactor knobs.
func (s *Search) setupTimeControl(pos position.Position) {
	l := s.limits
	s.extraTime = 0
	if !l.TimeControl {
		s.timeLimit = 0
		return
	}
	if l.MoveTime > 0 {
		s.timeLimit = l.MoveTime
		return
	}
	us := pos.SideToMove()
	left, inc := l.TimeLeft(us)
	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	base := left/time.Duration(movesToGo) + inc
	s.timeLimit = time.Duration(float64(base) * config.Settings.Search.HardTimeFactor)
	if s.timeLimit > left {
		s.timeLimit = left - left/20
	}
	if s.timeLimit < 0 {
		s.timeLimit = 0
	}
}

// iterativeDeepening drives one worker's own depth-1..MaxDepth loop,
// storing its final Result in w.result. Root moves are re-sorted by the
// previous iteration's value before each new iteration so a partially
// completed deeper iteration can never demote the prior best move.
func (w *worker) iterativeDeepening(rootPos position.Position) {
	w.path = append(w.path[:0], w.s.gameHistory...)
	w.path = append(w.path, rootPos.Zobrist())
	w.moveHistory = w.moveHistory[:0]

	us := rootPos.SideToMove()

	var legal MoveList
	legalMoves(&rootPos, &legal)
	if legal.Len() == 0 {
		v := ValueDraw
		if rootPos.IsInCheck(us) {
			v = -ValueMate
		}
		w.result = &Result{BestValue: v}
		return
	}

	w.rootMoves = make([]rootMove, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		w.rootMoves[i] = rootMove{move: legal.At(i)}
	}

	maxDepth := MaxDepth
	if w.s.limits != nil && w.s.limits.Depth > 0 {
		maxDepth = w.s.limits.Depth
	}

	startDepth := 1
	if w.id > 0 {
		startDepth += smpDepths[w.id%16]
		if startDepth < 1 {
			startDepth = 1
		}
	}

	bestValue := ValueNA
	var completedResult *Result

	easyMove := MoveNone
	easyMoveStable := 0

	for depth := startDepth; depth <= maxDepth; depth++ {
		w.statistics.CurrentIterationDepth = depth
		w.statistics.CurrentSearchDepth = depth
		w.selDepth = depth

		var value Value
		if config.Settings.Search.UseAspiration && depth >= 6 && bestValue.IsValid() && !bestValue.IsMate() {
			value = w.aspirationSearch(rootPos, depth, bestValue)
		} else {
			value = w.searchRoot(rootPos, ValueMin, ValueMax, depth)
		}

		if w.stopped() {
			break
		}
		bestValue = value

		sort.SliceStable(w.rootMoves, func(i, j int) bool {
			return w.rootMoves[i].value > w.rootMoves[j].value
		})
		w.statistics.CurrentBestRootMove = w.rootMoves[0].move
		w.statistics.CurrentBestRootValue = w.rootMoves[0].value

		completedResult = &Result{
			BestMove:  w.rootMoves[0].move,
			BestValue: bestValue,
		}
		if w.pv[0].Len() > 1 {
			completedResult.PonderMove = w.pv[0].At(1)
		}

		multiPV := config.Settings.Search.MultiPV
		if multiPV > 1 {
			if multiPV > len(w.rootMoves) {
				multiPV = len(w.rootMoves)
			}
			completedResult.MultiPV = make([]PVEntry, multiPV)
			for i := 0; i < multiPV; i++ {
				completedResult.MultiPV[i] = PVEntry{Move: w.rootMoves[i].move, Value: w.rootMoves[i].value}
			}
		}

		// Easymove: once the best root move has stayed put for several
		// iterations in a row, a shallow verification search confirms
		// it isn't about to be overturned before cutting the remaining
		// time budget short.
		if completedResult.BestMove == easyMove {
			easyMoveStable++
		} else {
			easyMove = completedResult.BestMove
			easyMoveStable = 1
		}
		if w.id == 0 && w.s.limits != nil && w.s.limits.TimeControl && easyMoveStable >= 8 && depth >= 10 {
			verifyDepth := depth - 5
			margin := Value(30)
			v := w.searchRoot(rootPos, bestValue-margin, bestValue+margin, verifyDepth)
			if !w.stopped() && v > bestValue-margin && v < bestValue+margin {
				w.statistics.EasyMoveStops++
				break
			}
		}

		if w.id == 0 && w.s.softBudgetExpired() {
			break
		}
		if len(w.rootMoves) == 1 && w.s.limits != nil && w.s.limits.TimeControl {
			break
		}
	}

	if completedResult == nil {
		completedResult = &Result{BestMove: w.rootMoves[0].move, BestValue: bestValue}
	}
	completedResult.ExtraDepth = w.selDepth
	w.result = completedResult
}

// aspirationSearch narrows the window around the previous iteration's
// score and widens it step by step on a fail-high/low.
func (w *worker) aspirationSearch(rootPos position.Position, depth int, prevValue Value) Value {
	delta := Value(20 - util.Min(depth/3, 10) + int(prevValue)/20)
	if delta < 1 {
		delta = 1
	}
	alpha := prevValue - delta
	beta := prevValue + delta
	if alpha < ValueMin {
		alpha = ValueMin
	}
	if beta > ValueMax {
		beta = ValueMax
	}

	for {
		value := w.searchRoot(rootPos, alpha, beta, depth)
		if w.stopped() {
			return value
		}
		if value <= alpha {
			w.statistics.AspirationResearches++
			alpha -= delta
			if alpha < ValueMin {
				alpha = ValueMin
			}
			delta *= 2
			continue
		}
		if value >= beta {
			w.statistics.AspirationResearches++
			beta += delta
			if beta > ValueMax {
				beta = ValueMax
			}
			delta *= 2
			continue
		}
		return value
	}
}

// searchRoot runs one full root move loop at depth, updating
// w.rootMoves in place with each move's value and leaving w.pv[0] set
// to the best line found.
func (w *worker) searchRoot(rootPos position.Position, alpha, beta Value, depth int) Value {
	w.pv[0].Clear()
	bestValue := ValueMin
	us := rootPos.SideToMove()
	inCheck := rootPos.IsInCheck(us)

	multiPV := config.Settings.Search.MultiPV
	if multiPV < 1 {
		multiPV = 1
	}

	for i := range w.rootMoves {
		if w.stopped() {
			return bestValue
		}
		m := w.rootMoves[i].move
		np := rootPos.DoMove(m)
		w.pushPath(np.Zobrist(), m)

		// The first multiPV root moves (already best-first from the
		// previous iteration's sort) each get a full-window search so
		// their values are exact, not just a null-window bound - what
		// "go" with a MultiPV>1 option needs to report several ranked
		// lines instead of one.
		var score Value
		if i < multiPV {
			score = -w.search(np, -beta, -alpha, depth-1, 1, true, false)
		} else {
			score = -w.search(np, -alpha-1, -alpha, depth-1, 1, false, true)
			if score > alpha {
				score = -w.search(np, -beta, -alpha, depth-1, 1, true, false)
			}
		}

		w.popPath()
		if w.stopped() {
			return bestValue
		}

		w.rootMoves[i].value = score
		if score > bestValue {
			bestValue = score
			if score > alpha {
				alpha = score
				w.updatePV(0, m)
			}
		}
	}

	if bestValue == ValueMin {
		if inCheck {
			return -ValueMate
		}
		return ValueDraw
	}
	return bestValue
}
