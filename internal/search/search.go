//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

// Package search implements iterative-deepening alpha-beta with MVV-LVA
// move ordering and a capture-only quiescence extension. There is no
// transposition table, opening book or pondering: every node is searched
// fresh, and the engine only ever follows the line it is told to play.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cwm4030/nuvo-chess/config"
	"github.com/cwm4030/nuvo-chess/internal/movegen"
	"github.com/cwm4030/nuvo-chess/internal/position"
	"github.com/cwm4030/nuvo-chess/internal/types"
)

// Out is a locale-aware printer for node counts and other large numbers in
// diagnostic output, shared with internal/logging's convention.
var Out = message.NewPrinter(language.German)

// Search runs one position at a time on its own goroutine; StartSearch
// launches it, StopSearch (or a limit firing inside the controller) brings
// it back.
type Search struct {
	controller *Controller
	reporter   Reporter

	isRunning *semaphore.Weighted

	nodesVisited int64
	curDepth     int
	startTime    time.Time

	lastResult Result
}

// NewSearch creates an idle Search ready for StartSearch.
func NewSearch() *Search {
	return &Search{
		controller: NewController(),
		isRunning:  semaphore.NewWeighted(1),
	}
}

// SetReporter installs the sink for progress and result notifications. Pass
// nil to go back to silent.
func (s *Search) SetReporter(r Reporter) {
	s.reporter = r
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// StartSearch takes ownership of p (the caller must not mutate it further)
// and starts searching it on a new goroutine. It returns once the search
// goroutine has acquired the running lock, so a StartSearch immediately
// followed by StopSearch can never race a search that hasn't started yet.
func (s *Search) StartSearch(p *position.Position, limits Limits) {
	started := make(chan struct{})
	go s.run(p, limits, started)
	<-started
}

// StopSearch asks the running search to stop and blocks until it has.
func (s *Search) StopSearch() {
	s.controller.Stop()
	s.WaitWhileSearching()
}

// WaitWhileSearching blocks until no search is running.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// LastResult returns a copy of the most recently completed search's result.
func (s *Search) LastResult() Result {
	return s.lastResult
}

func (s *Search) run(p *position.Position, limits Limits, started chan struct{}) {
	if !s.isRunning.TryAcquire(1) {
		close(started)
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.nodesVisited = 0
	s.curDepth = 0

	maxDepth := limits.Depth
	if maxDepth == 0 {
		maxDepth = config.Settings.Search.DefaultDepth
	}
	if maxDepth <= 0 || maxDepth > types.MaxPly {
		maxDepth = types.MaxPly
	}
	maxNodes := limits.Nodes
	if maxNodes == 0 && config.Settings.Search.DefaultNodes > 0 {
		maxNodes = int64(config.Settings.Search.DefaultNodes)
	}
	timeBudget := s.timeBudget(p, &limits)
	if limits.Infinite {
		maxDepth, maxNodes, timeBudget = types.MaxPly, 0, 0
	}

	s.controller.Start(maxDepth, maxNodes, timeBudget)
	close(started)

	result := s.iterativeDeepening(p, maxDepth)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodesVisited

	s.lastResult = result
	if s.reporter != nil {
		s.reporter.SendBestMove(result.BestMove, result.PonderMove)
	}
}

// iterativeDeepening searches depth 1, 2, ... up to maxDepth, keeping the
// best move of the last depth that ran to completion: a depth abandoned
// because the controller asked to stop never overwrites the previous
// result.
func (s *Search) iterativeDeepening(p *position.Position, maxDepth int) Result {
	rootMoves, checkCount := movegen.GenerateLegal(p, movegen.GenAll)
	if rootMoves.Len() == 0 {
		value := types.ValueDraw
		if checkCount > 0 {
			value = mateScore(p.NextPlayer(), 0)
		}
		return Result{BestMove: types.MoveNone, BestValue: value}
	}

	result := Result{BestMove: rootMoves.At(0), BestValue: types.ValueNA}

	for depth := 1; depth <= maxDepth; depth++ {
		s.curDepth = depth
		if s.controller.ShouldStop(depth, s.nodesVisited) {
			break
		}

		best, bestMove, completed := s.rootSearch(p, rootMoves, depth)
		if !completed {
			break
		}
		result.BestMove = bestMove
		result.BestValue = best
		result.SearchDepth = depth

		if s.reporter != nil {
			s.reporter.SendInfoDepth(depth, best, s.nodesVisited, time.Since(s.startTime))
		}
		if best.IsMateValue() {
			break
		}
	}
	return result
}

// rootSearch runs one iterative-deepening depth over every root move,
// returning the side-relative best value and move, and whether the
// iteration ran to completion (false if the controller asked to stop
// partway through, in which case the caller must discard these results).
func (s *Search) rootSearch(p *position.Position, rootMoves interface {
	Len() int
	At(int) types.Move
	Set(int, types.Move)
	Sort()
}, depth int) (types.Value, types.Move, bool) {
	orderByMvvLva(p, rootMoves)

	white := p.NextPlayer() == types.White
	alpha, beta := -types.ValueInf, types.ValueInf
	best := types.ValueNA
	bestMove := rootMoves.At(0)

	for i := 0; i < rootMoves.Len(); i++ {
		m := rootMoves.At(i)

		p.DoMove(m)
		value := s.search(p, depth-1, 1, alpha, beta)
		p.UndoMove()

		if s.controller.ShouldStop(depth, s.nodesVisited) {
			return best, bestMove, false
		}

		if best == types.ValueNA || (white && value > best) || (!white && value < best) {
			best = value
			bestMove = m
		}
		if white && value > alpha {
			alpha = value
		}
		if !white && value < beta {
			beta = value
		}
	}
	return best, bestMove, true
}

// timeBudget derives a per-move wall-clock allowance from the "go"
// command's clock fields. When the search isn't time controlled it returns
// the configured DefaultMoveTime, or 0 (unbounded) if that is not positive.
func (s *Search) timeBudget(p *position.Position, limits *Limits) time.Duration {
	if limits.MoveTime > 0 {
		return limits.MoveTime
	}
	if !limits.TimeControlled() {
		if config.Settings.Search.DefaultMoveTime > 0 {
			return time.Duration(config.Settings.Search.DefaultMoveTime) * time.Millisecond
		}
		return 0
	}

	var timeLeft, inc time.Duration
	switch p.NextPlayer() {
	case types.White:
		timeLeft, inc = limits.WhiteTime, limits.WhiteInc
	case types.Black:
		timeLeft, inc = limits.BlackTime, limits.BlackInc
	}

	movesToGo := int64(limits.MovesToGo)
	if movesToGo <= 0 {
		movesToGo = 30
	}

	budget := timeLeft/time.Duration(movesToGo) + inc
	// leave headroom for move overhead (gc pauses, I/O) near the flag
	budget = time.Duration(int64(float64(budget) * 0.9))
	if budget < 0 {
		budget = 0
	}
	return budget
}
