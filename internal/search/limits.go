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

package search

import (
	"time"

	. "github.com/oskarnyqvist/mateline/internal/types"
)

// Limits bundles every "go" command parameter the UCI protocol can
// send to bound a search. Only one time-control or hard-stop
// mechanism is normally active at a time; IterativeDeepening decides
// which to honor in order of precedence: MoveTime, then Depth/Nodes,
// then the wtime/btime clock, then Infinite (search until Stop).
type Limits struct {
	WhiteTime      time.Duration
	BlackTime      time.Duration
	WhiteIncrement time.Duration
	BlackIncrement time.Duration
	MovesToGo      int
	Depth          int
	Nodes          uint64
	MoveTime       time.Duration
	Mate           int
	Infinite       bool
	Ponder         bool
	SearchMoves    []Move
}

// TimeFor returns how much time the position's side to move has left
// on the clock, honoring whichever of White's/Black's time the
// position says is on move.
func (l Limits) TimeFor(side Color) time.Duration {
	if side == White {
		return l.WhiteTime
	}
	return l.BlackTime
}

// IncrementFor returns the per-move increment for side.
func (l Limits) IncrementFor(side Color) time.Duration {
	if side == White {
		return l.WhiteIncrement
	}
	return l.BlackIncrement
}

// HasExplicitLimit reports whether any bound other than the game
// clock was given (depth, nodes, movetime, mate or infinite).
func (l Limits) HasExplicitLimit() bool {
	return l.Depth > 0 || l.Nodes > 0 || l.MoveTime > 0 || l.Mate > 0 || l.Infinite
}
