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

// Package evaluator scores a position: material plus piece-square
// tables for an ongoing game, and the mate/stalemate sentinels once
// the side to move has no legal moves. There is no midgame/endgame
// tapering and no pawn structure or mobility evaluation - a single
// piece-square table per piece type covers the whole game.
package evaluator

import (
	"github.com/oskarnyqvist/mateline/internal/board"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

// Evaluate scores b from White's perspective: positive favors White,
// negative favors Black. legalMoveCount must be the number of legal
// moves available to the side to move, typically already known to
// the caller from move generation.
//
// When the side to move has no legal moves, the result is a mate
// score (if in check) or Draw (stalemate). A mate score is polarized
// toward the side that delivered it - if Black has been mated, the
// score is +Mate, favoring White - and is not yet ply-adjusted; the
// search is responsible for converting a "mate" evaluation into a
// "mate in N" score based on how deep in the tree it was found.
func Evaluate(b board.Board, legalMoveCount int) Value {
	if legalMoveCount == 0 {
		if b.InCheck() {
			return Mate * Value(b.SideToMove().Other().Polarize())
		}
		return Draw
	}
	return materialAndPosition(b)
}

func materialAndPosition(b board.Board) Value {
	var score Value
	for c := Color(0); c < ColorLength; c++ {
		colorScore := colorScore(b, c)
		if c == White {
			score += colorScore
		} else {
			score -= colorScore
		}
	}
	return score
}

func colorScore(b board.Board, c Color) Value {
	var score Value
	for pt := Pawn; pt < PtLength; pt++ {
		for bb := b.PieceBB(c, pt); bb != BbZero; {
			sq := bb.PopLsb()
			score += squareValue(c, pt, sq)
		}
	}
	return score
}
