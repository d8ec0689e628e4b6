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

// Package board implements the chess board state: a value type that
// never aliases, where every move produces a brand new Board rather
// than mutating one in place. There is no make/unmake history stack -
// search simply keeps the Board value it wants to back out to.
package board

import (
	. "github.com/oskarnyqvist/mateline/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is the full state of a chess position. It is a plain value
// type: copying a Board copies the whole position, and ApplyMove
// returns a new Board leaving its receiver untouched.
type Board struct {
	pieces      [ColorLength][PtLength]Bitboard // per color, per piece type
	occupied    [ColorLength]Bitboard           // per color, all pieces
	sideToMove  Color
	castling    CastlingRights
	enPassant   Square // target square of a just-played double pawn push, SqNone otherwise
	halfMoveClock int
	fullMoveNumber int
}

// New returns the standard chess starting position.
func New() Board {
	b, err := FromFEN(StartFen)
	if err != nil {
		panic("startpos FEN is malformed: " + err.Error())
	}
	return b
}

// SideToMove returns the color to move.
func (b Board) SideToMove() Color {
	return b.sideToMove
}

// Castling returns the remaining castling rights.
func (b Board) Castling() CastlingRights {
	return b.castling
}

// EnPassantSquare returns the current en passant target square, or
// SqNone if the previous move was not a double pawn push.
func (b Board) EnPassantSquare() Square {
	return b.enPassant
}

// HalfMoveClock returns the number of half moves since the last
// capture or pawn move.
func (b Board) HalfMoveClock() int {
	return b.halfMoveClock
}

// FullMoveNumber returns the current full move number, starting at 1.
func (b Board) FullMoveNumber() int {
	return b.fullMoveNumber
}

// PieceBB returns the bitboard of pieces of type pt and color c.
func (b Board) PieceBB(c Color, pt PieceType) Bitboard {
	return b.pieces[c][pt]
}

// OccupiedBy returns the bitboard of all pieces of color c.
func (b Board) OccupiedBy(c Color) Bitboard {
	return b.occupied[c]
}

// Occupied returns the bitboard of all pieces on the board.
func (b Board) Occupied() Bitboard {
	return b.occupied[White] | b.occupied[Black]
}

// PieceAt returns the piece standing on sq, or PieceNone if sq is empty.
func (b Board) PieceAt(sq Square) Piece {
	for c := Color(0); c < ColorLength; c++ {
		if !b.occupied[c].Has(sq) {
			continue
		}
		for pt := Pawn; pt < PtLength; pt++ {
			if b.pieces[c][pt].Has(sq) {
				return NewPiece(c, pt)
			}
		}
	}
	return PieceNone
}

// place puts piece p on sq. sq must currently be empty.
func (b *Board) place(p Piece, sq Square) {
	b.pieces[p.ColorOf()][p.TypeOf()].PushSquare(sq)
	b.occupied[p.ColorOf()].PushSquare(sq)
}

// remove takes piece p off sq. sq must currently hold p.
func (b *Board) remove(p Piece, sq Square) {
	b.pieces[p.ColorOf()][p.TypeOf()].PopSquare(sq)
	b.occupied[p.ColorOf()].PopSquare(sq)
}

// Key computes this Board's transposition table hash. It is
// recomputed from the full position every time it is needed rather
// than carried incrementally, since Board never mutates in place.
func (b Board) Key() Key {
	var k Key
	for c := Color(0); c < ColorLength; c++ {
		for pt := Pawn; pt < PtLength; pt++ {
			for bb := b.pieces[c][pt]; bb != BbZero; {
				sq := bb.PopLsb()
				k ^= PieceKey(NewPiece(c, pt), sq)
			}
		}
	}
	k ^= CastlingKey(b.castling)
	if b.enPassant != SqNone {
		k ^= EnPassantKey(b.enPassant.FileOf())
	}
	k ^= SideKey(b.sideToMove)
	return k
}

// Equals reports whether two boards represent the same chess position
// (ignores half/full move counters, which do not affect legality or
// evaluation). Used by the transposition table to verify a Key match
// is not a hash collision.
func (b Board) Equals(o Board) bool {
	if b.sideToMove != o.sideToMove || b.castling != o.castling || b.enPassant != o.enPassant {
		return false
	}
	return b.pieces == o.pieces
}
