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
	"sort"

	"github.com/oskarnyqvist/mateline/internal/board"
	"github.com/oskarnyqvist/mateline/internal/evaluator"
	"github.com/oskarnyqvist/mateline/internal/movegen"
	"github.com/oskarnyqvist/mateline/internal/transpositiontable"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

// alphabeta is a plain fixed-depth minimax search with alpha-beta
// pruning. Deliberately not written as negamax: White always
// maximizes and Black always minimizes, matching how a reader thinks
// about the score ("White is better" means the number went up), at
// the cost of the two near-duplicate branches below. There is no
// quiescence search past the horizon - a known, accepted gap, since a
// capture on the last searched ply is scored as if the position were
// quiet.
func (s *Search) alphabeta(b board.Board, depth, ply int, alpha, beta Value) Value {
	s.stats.Nodes++

	if entry, ok := s.tt.Probe(b); ok && entry.Depth >= depth {
		s.stats.TtHits++
		switch entry.ValueType {
		case transpositiontable.ValueExact:
			return entry.Value
		case transpositiontable.ValueLower:
			if entry.Value > alpha {
				alpha = entry.Value
			}
		case transpositiontable.ValueUpper:
			if entry.Value < beta {
				beta = entry.Value
			}
		}
		if alpha >= beta {
			return entry.Value
		}
	}

	moves := movegen.GenerateLegalMoves(b)

	if depth <= 0 || len(moves) == 0 {
		value := evaluator.Evaluate(b, len(moves))
		if value.IsMateValue() {
			// A mate found deeper in the tree is worth slightly less
			// than one found sooner: prefer the faster mate by
			// discounting it one unit per ply of depth already spent
			// getting here.
			value -= Value(ply) * Value(b.SideToMove().Other().Polarize())
		}
		s.tt.Put(b, MoveNone, value, transpositiontable.ValueExact, depth)
		return value
	}

	s.orderMoves(b, moves)

	var best Move
	valueType := transpositiontable.ValueUpper

	if b.SideToMove() == White {
		value := Value(-32000)
		for _, m := range moves {
			next, err := b.ApplyMove(m)
			if err != nil {
				continue
			}
			score := s.alphabeta(next, depth-1, ply+1, alpha, beta)
			if score > value {
				value = score
				best = m
			}
			if value > alpha {
				alpha = value
				valueType = transpositiontable.ValueExact
			}
			if alpha >= beta {
				valueType = transpositiontable.ValueLower
				break
			}
		}
		s.tt.Put(b, best, value, valueType, depth)
		return value
	}

	valueType = transpositiontable.ValueLower
	value := Value(32000)
	for _, m := range moves {
		next, err := b.ApplyMove(m)
		if err != nil {
			continue
		}
		score := s.alphabeta(next, depth-1, ply+1, alpha, beta)
		if score < value {
			value = score
			best = m
		}
		if value < beta {
			beta = value
			valueType = transpositiontable.ValueExact
		}
		if alpha >= beta {
			valueType = transpositiontable.ValueUpper
			break
		}
	}
	s.tt.Put(b, best, value, valueType, depth)
	return value
}

// orderMoves sorts moves in place by the static evaluation of the
// position each one leads to - best-for-the-mover first - so
// alpha-beta is more likely to search the strongest reply first and
// prune earlier. This is the same "sort by promise" idea the
// reference search used, just applied once per node instead of being
// threaded through killer-move/history tables.
func (s *Search) orderMoves(b board.Board, moves []Move) {
	mover := b.SideToMove()
	type scoredMove struct {
		move  Move
		score Value
	}
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		next, err := b.ApplyMove(m)
		if err != nil {
			scored[i] = scoredMove{move: m}
			continue
		}
		scored[i] = scoredMove{move: m, score: evaluator.Evaluate(next, 1)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if mover == White {
			return scored[i].score > scored[j].score
		}
		return scored[i].score < scored[j].score
	})
	for i, sm := range scored {
		moves[i] = sm.move
	}
}
