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

package board

import (
	"fmt"

	. "github.com/oskarnyqvist/mateline/internal/types"
)

// ApplyMove returns the Board that results from playing m on b. It
// does not check legality beyond "there is a movable piece of the
// side to move on the from square" - callers that need only legal
// moves to be playable should only ever pass moves produced by the
// move generator.
//
// It handles en-passant capture, moving the castling rook alongside
// the king, and updating castling rights when a king or rook moves or
// is captured.
func (b Board) ApplyMove(m Move) (Board, error) {
	from, to := m.From(), m.To()
	mover := b.PieceAt(from)
	if mover == PieceNone {
		return Board{}, fmt.Errorf("apply move %s: no piece on %s", m, from)
	}
	if mover.ColorOf() != b.sideToMove {
		return Board{}, fmt.Errorf("apply move %s: %s is not on move", m, mover.ColorOf())
	}

	next := b // Board is a value type: this copies the whole position.
	next.enPassant = SqNone
	next.halfMoveClock++

	isPawnMove := mover.TypeOf() == Pawn
	isEnPassantCapture := isPawnMove && to == b.enPassant
	isCapture := isEnPassantCapture

	if isEnPassantCapture {
		capturedSq := to.To(mover.ColorOf().Other().MoveDirection())
		next.remove(NewPiece(mover.ColorOf().Other(), Pawn), capturedSq)
	} else if captured := b.PieceAt(to); captured != PieceNone {
		next.remove(captured, to)
		isCapture = true
	}

	next.remove(mover, from)
	if promote, ok := m.Promotes(); ok {
		next.place(NewPiece(mover.ColorOf(), promote), to)
	} else {
		next.place(mover, to)
	}

	if isPawnMove && SquareRankDistance(from, to) == 2 {
		next.enPassant = from.To(mover.ColorOf().MoveDirection())
	}

	if mover.TypeOf() == King && isCastlingMove(from, to) {
		moveCastlingRook(&next, mover.ColorOf(), to)
	}

	next.castling = updatedCastlingRights(b.castling, mover, from, to)

	if isPawnMove || isCapture {
		next.halfMoveClock = 0
	}

	if next.sideToMove == Black {
		next.fullMoveNumber++
	}
	next.sideToMove = next.sideToMove.Other()

	return next, nil
}

// isCastlingMove reports whether a king move from `from` to `to` is a
// castling move, i.e. a two square horizontal king move.
func isCastlingMove(from, to Square) bool {
	return from.RankOf() == to.RankOf() && abs(int(to.FileOf())-int(from.FileOf())) == 2
}

// moveCastlingRook relocates the rook involved in a castling move
// that has already moved its king from `from` to `kingTo`.
func moveCastlingRook(b *Board, c Color, kingTo Square) {
	rook := NewPiece(c, Rook)
	rank := kingTo.RankOf()
	if kingTo.FileOf() == FileG {
		b.remove(rook, NewSquare(rank, FileH))
		b.place(rook, NewSquare(rank, FileF))
	} else {
		b.remove(rook, NewSquare(rank, FileA))
		b.place(rook, NewSquare(rank, FileD))
	}
}

// updatedCastlingRights returns the castling rights remaining after a
// move of `mover` from `from` to `to`: a king move forfeits both of
// its side's rights, a rook move (or capture of a rook still on its
// home square) forfeits that specific right.
func updatedCastlingRights(rights CastlingRights, mover Piece, from, to Square) CastlingRights {
	if mover.TypeOf() == King {
		rights = rights.Remove(ForColor(mover.ColorOf()))
	}
	rights = removeRightIfRookSquare(rights, from)
	rights = removeRightIfRookSquare(rights, to)
	return rights
}

func removeRightIfRookSquare(rights CastlingRights, sq Square) CastlingRights {
	switch sq {
	case NewSquare(Rank1, FileH):
		return rights.Remove(CastlingWhiteKingside)
	case NewSquare(Rank1, FileA):
		return rights.Remove(CastlingWhiteQueenside)
	case NewSquare(Rank8, FileH):
		return rights.Remove(CastlingBlackKingside)
	case NewSquare(Rank8, FileA):
		return rights.Remove(CastlingBlackQueenside)
	default:
		return rights
	}
}

// SquareRankDistance returns the absolute difference in rank between
// two squares.
func SquareRankDistance(a, b Square) int {
	return abs(int(a.RankOf()) - int(b.RankOf()))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
