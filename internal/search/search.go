/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

// Package search implements iterative deepening over the alpha-beta
// core in alphabeta.go: a single, non-parallel search thread that
// deepens one ply at a time until a time, depth or node budget runs
// out, reporting progress after every completed depth the way the
// UCI "info" line expects.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oskarnyqvist/mateline/internal/board"
	"github.com/oskarnyqvist/mateline/internal/config"
	myLogging "github.com/oskarnyqvist/mateline/internal/logging"
	"github.com/oskarnyqvist/mateline/internal/movegen"
	"github.com/oskarnyqvist/mateline/internal/transpositiontable"
	. "github.com/oskarnyqvist/mateline/internal/types"
	"github.com/oskarnyqvist/mateline/internal/util"
)

var out = message.NewPrinter(language.German)

// InfoFunc receives one formatted UCI "info ..." line per completed
// iteration. The uci package wires this to its stdout writer; tests
// can capture the lines directly.
type InfoFunc func(line string)

// MaxDepth bounds iterative deepening so a search with no other limit
// set (depth/nodes/movetime/clock) cannot run forever.
const MaxDepth = 64

// Search drives one iterative-deepening alpha-beta search. A Search
// value is reused across moves of a game - NewSearch allocates the
// transposition table once. The table is cleared by NewGame and at the
// end of every search without a depth limit; a search with a depth
// limit keeps it, and it is never cleared between iterations.
type Search struct {
	log  *logging.Logger
	tt   *transpositiontable.TtTable
	stats Statistics

	running *util.Bool
	stop    *util.Bool
	guard   *semaphore.Weighted

	Info InfoFunc
}

// NewSearch creates a Search ready to run. Set the Info field to an
// InfoFunc to receive "info depth ..." progress lines as the uci
// package does; nil is fine for tests that only care about the final
// Result.
func NewSearch() *Search {
	return &Search{
		log:     myLogging.GetSearchLog(),
		tt:      transpositiontable.NewTtTable(),
		running: util.NewBool(false),
		stop:    util.NewBool(false),
		guard:   semaphore.NewWeighted(1),
	}
}

// IsSearching reports whether a search is currently in progress.
func (s *Search) IsSearching() bool {
	return s.running.Load()
}

// Stop asks a running search to return its current best move as soon
// as it finishes the iteration in progress.
func (s *Search) Stop() {
	s.stop.Store(true)
}

// NewGame clears the transposition table and statistics, call
// between games so stale entries from a previous game are never
// reused.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.stats = Statistics{}
}

// StartSearch runs iterative deepening on b under the given limits
// and returns once it has stopped, either because a limit was
// reached or Stop was called. Concurrent calls are serialized by an
// internal semaphore rather than rejected, so a caller never needs to
// check IsSearching before calling StartSearch - the single-threaded
// search model is an invariant this type enforces, not one callers
// must remember.
func (s *Search) StartSearch(b board.Board, limits Limits) Result {
	_ = s.guard.Acquire(context.Background(), 1)
	defer s.guard.Release(1)

	s.stop.Store(false)
	s.running.Store(true)
	s.stats = Statistics{}
	defer s.running.Store(false)

	result := s.iterativeDeepening(b, limits)
	if limits.Depth <= 0 {
		s.tt.Clear()
	}
	return result
}

func (s *Search) iterativeDeepening(b board.Board, limits Limits) Result {
	start := time.Now()
	deadline, hasDeadline := s.computeDeadline(b, limits, start)

	maxDepth := MaxDepth
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}
	if !limits.HasExplicitLimit() && limits.TimeFor(b.SideToMove()) <= 0 {
		if d := config.Settings.Search.DefaultDepth; d > 0 && d < maxDepth {
			maxDepth = d
		}
		if ms := config.Settings.Search.DefaultMoveTime; ms > 0 {
			deadline, hasDeadline = start.Add(time.Duration(ms)*time.Millisecond), true
		}
	}

	var result Result
	moves := movegen.GenerateLegalMoves(b)
	if len(moves) == 0 {
		return Result{SearchTime: time.Since(start)}
	}
	result.BestMove = moves[0]

	for depth := 1; depth <= maxDepth; depth++ {
		if s.stop.Load() {
			break
		}
		if hasDeadline && time.Now().After(deadline) {
			break
		}
		if limits.Nodes > 0 && s.stats.Nodes >= limits.Nodes {
			break
		}

		value := s.alphabeta(b, depth, 0, Value(-32000), Value(32000))

		if entry, ok := s.tt.Probe(b); ok && entry.Move != MoveNone {
			result.BestMove = entry.Move
		}
		result.BestValue = value
		result.Depth = depth
		result.Nodes = s.stats.Nodes
		result.SearchTime = time.Since(start)

		if s.Info != nil {
			s.Info(s.formatInfo(result))
		}

		if value.IsMateValue() {
			break
		}
	}

	return result
}

// computeDeadline turns the UCI time controls into a wall clock
// deadline. MoveTime is honored verbatim; otherwise a simple fraction
// of the side to move's remaining clock plus its increment is
// budgeted, leaving slack for GC pauses and the next iteration
// possibly overrunning slightly.
func (s *Search) computeDeadline(b board.Board, limits Limits, start time.Time) (time.Time, bool) {
	if limits.MoveTime > 0 {
		return start.Add(limits.MoveTime), true
	}
	if limits.Infinite || limits.Depth > 0 || limits.Nodes > 0 {
		return time.Time{}, false
	}
	clock := limits.TimeFor(b.SideToMove())
	if clock <= 0 {
		return time.Time{}, false
	}
	movesToGo := limits.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	budget := clock/time.Duration(movesToGo) + limits.IncrementFor(b.SideToMove())/2
	return start.Add(budget), true
}

func (s *Search) formatInfo(r Result) string {
	return out.Sprintf("info depth %d score cp %d nodes %d nps %d time %d pv %s",
		r.Depth, r.BestValue, r.Nodes, r.Nps(), r.SearchTime.Milliseconds(), r.BestMove.String())
}

// Stats returns a copy of this search's running node/TT statistics.
func (s *Search) Stats() Statistics {
	return s.stats
}
