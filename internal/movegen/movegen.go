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

// Package movegen generates the moves available in a position: first
// pseudo-legal moves (piece movement rules only), then filters them
// down to legal moves by trial-applying each one and rejecting those
// that leave the mover's own king in check.
package movegen

import (
	"github.com/oskarnyqvist/mateline/internal/attacks"
	"github.com/oskarnyqvist/mateline/internal/board"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

// GenerateLegalMoves returns every legal move available to the side
// to move in b.
func GenerateLegalMoves(b board.Board) []Move {
	pseudo := GeneratePseudoLegalMoves(b)
	legal := make([]Move, 0, len(pseudo))
	mover := b.SideToMove()
	for _, m := range pseudo {
		next, err := b.ApplyMove(m)
		if err != nil {
			continue
		}
		if !next.KingInCheck(mover) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one
// legal move, without building the full move list.
func HasLegalMove(b board.Board) bool {
	mover := b.SideToMove()
	for _, m := range GeneratePseudoLegalMoves(b) {
		next, err := b.ApplyMove(m)
		if err != nil {
			continue
		}
		if !next.KingInCheck(mover) {
			return true
		}
	}
	return false
}

// GeneratePseudoLegalMoves returns every move the piece movement
// rules allow the side to move to play, without checking whether the
// mover's own king ends up in check.
func GeneratePseudoLegalMoves(b board.Board) []Move {
	us := b.SideToMove()
	moves := make([]Move, 0, 48)

	moves = generatePawnMoves(b, us, moves)
	moves = generateLeaperMoves(b, us, Knight, attacks.GetKnightAttacks, moves)
	moves = generateSliderMoves(b, us, Bishop, moves)
	moves = generateSliderMoves(b, us, Rook, moves)
	moves = generateSliderMoves(b, us, Queen, moves)
	moves = generateLeaperMoves(b, us, King, attacks.GetKingAttacks, moves)
	moves = generateCastlingMoves(b, us, moves)

	return moves
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func generatePawnMoves(b board.Board, us Color, moves []Move) []Move {
	enemyPieces := b.OccupiedBy(us.Other())
	occupied := b.Occupied()
	forward := us.MoveDirection()
	startRank := us.PawnStartRank()
	promoRank := us.PromotionRank()

	for pawns := b.PieceBB(us, Pawn); pawns != BbZero; {
		from := pawns.PopLsb()

		if one := from.To(forward); one != SqNone && !occupied.Has(one) {
			moves = appendPawnMove(moves, from, one, promoRank)
			if from.RankOf() == startRank {
				if two := one.To(forward); two != SqNone && !occupied.Has(two) {
					moves = append(moves, NewMove(from, two))
				}
			}
		}

		for _, capDir := range pawnCaptureDirections(us) {
			to := from.To(capDir)
			if to == SqNone {
				continue
			}
			if enemyPieces.Has(to) || to == b.EnPassantSquare() {
				moves = appendPawnMove(moves, from, to, promoRank)
			}
		}
	}
	return moves
}

func pawnCaptureDirections(c Color) [2]Direction {
	if c == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

func appendPawnMove(moves []Move, from, to Square, promoRank Rank) []Move {
	if to.RankOf() == promoRank {
		for _, pt := range promotionPieces {
			moves = append(moves, NewPromotionMove(from, to, pt))
		}
		return moves
	}
	return append(moves, NewMove(from, to))
}

func generateLeaperMoves(b board.Board, us Color, pt PieceType, attacksFn func(Square) Bitboard, moves []Move) []Move {
	ownPieces := b.OccupiedBy(us)
	for pieces := b.PieceBB(us, pt); pieces != BbZero; {
		from := pieces.PopLsb()
		for targets := attacksFn(from) &^ ownPieces; targets != BbZero; {
			moves = append(moves, NewMove(from, targets.PopLsb()))
		}
	}
	return moves
}

func generateSliderMoves(b board.Board, us Color, pt PieceType, moves []Move) []Move {
	ownPieces := b.OccupiedBy(us)
	occupied := b.Occupied()
	for pieces := b.PieceBB(us, pt); pieces != BbZero; {
		from := pieces.PopLsb()
		for targets := attacks.GetAttacksBb(pt, from, occupied) &^ ownPieces; targets != BbZero; {
			moves = append(moves, NewMove(from, targets.PopLsb()))
		}
	}
	return moves
}

// generateCastlingMoves adds kingside/queenside castling moves when
// the remaining castling right is held, the squares between king and
// rook are empty, and the king is not currently in check, does not
// pass through check, and does not land in check. The rook's actual
// presence is implied by the castling right bookkeeping in
// board.ApplyMove - a right only survives while its rook is on its
// home square.
func generateCastlingMoves(b board.Board, us Color, moves []Move) []Move {
	if b.KingInCheck(us) {
		return moves
	}
	rank := Rank1
	if us == Black {
		rank = Rank8
	}
	kingFrom := NewSquare(rank, FileE)
	occupied := b.Occupied()

	if b.Castling().Has(Kingside(us)) {
		fSq, gSq := NewSquare(rank, FileF), NewSquare(rank, FileG)
		if !occupied.Has(fSq) && !occupied.Has(gSq) &&
			!b.IsAttacked(fSq, us.Other()) && !b.IsAttacked(gSq, us.Other()) {
			moves = append(moves, NewMove(kingFrom, gSq))
		}
	}
	if b.Castling().Has(Queenside(us)) {
		dSq, cSq, bSq := NewSquare(rank, FileD), NewSquare(rank, FileC), NewSquare(rank, FileB)
		if !occupied.Has(dSq) && !occupied.Has(cSq) && !occupied.Has(bSq) &&
			!b.IsAttacked(dSq, us.Other()) && !b.IsAttacked(cSq, us.Other()) {
			moves = append(moves, NewMove(kingFrom, cSq))
		}
	}
	return moves
}
