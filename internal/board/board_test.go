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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/oskarnyqvist/mateline/internal/types"
)

func TestNewIsStartPosition(t *testing.T) {
	b := New()
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, StartFen, b.ToFEN())
}

func TestColorBitboardsPartitionOccupied(t *testing.T) {
	b := New()
	assert.Equal(t, BbZero, b.OccupiedBy(White)&b.OccupiedBy(Black))
	assert.Equal(t, b.Occupied(), b.OccupiedBy(White)|b.OccupiedBy(Black))

	for pt := Pawn; pt < PtLength; pt++ {
		assert.Equal(t, b.PieceBB(White, pt), b.PieceBB(White, pt)&b.OccupiedBy(White))
		assert.Equal(t, b.PieceBB(Black, pt), b.PieceBB(Black, pt)&b.OccupiedBy(Black))
	}
}

func TestFromFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1b1kb1r/pppp1pp1/2n5/1B2p3/4PP2/6p1/PPPP2Pq/RNBQNRK1 w kq f3 0 8",
		"k1R5/8/1K6/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range fens {
		b, err := FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, b.ToFEN())
	}
}

func TestFromFenRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",    // only 5 fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",           // only 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",  // invalid piece char
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // invalid side to move
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",  // invalid castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", // invalid en passant square
	}
	for _, fen := range bad {
		_, err := FromFEN(fen)
		assert.Error(t, err, fen)
	}
}

func TestApplyMoveDoublePawnPushSetsEnPassant(t *testing.T) {
	b := New()
	m := NewMove(FromNotation("e2"), FromNotation("e4"))
	next, err := b.ApplyMove(m)
	assert.NoError(t, err)
	assert.Equal(t, FromNotation("e3"), next.EnPassantSquare())
	assert.Equal(t, Black, next.SideToMove())
	assert.Equal(t, NewPiece(White, Pawn), next.PieceAt(FromNotation("e4")))
	assert.Equal(t, PieceNone, next.PieceAt(FromNotation("e2")))
}

func TestApplyMovePromotionReplacesPawn(t *testing.T) {
	b, err := FromFEN("1nbqkbnr/rP1ppppp/p1p5/8/8/8/1PPPPPPP/RNBQKBNR w KQk - 1 5")
	assert.NoError(t, err)
	m := NewPromotionMove(FromNotation("b7"), FromNotation("c8"), Queen)
	next, err := b.ApplyMove(m)
	assert.NoError(t, err)
	assert.Equal(t, NewPiece(White, Queen), next.PieceAt(FromNotation("c8")))
	assert.Equal(t, PieceNone, next.PieceAt(FromNotation("b7")))
}

func TestApplyMoveCastlingMovesRookToo(t *testing.T) {
	b, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	next, err := b.ApplyMove(NewMove(FromNotation("e1"), FromNotation("g1")))
	assert.NoError(t, err)
	assert.Equal(t, NewPiece(White, King), next.PieceAt(FromNotation("g1")))
	assert.Equal(t, NewPiece(White, Rook), next.PieceAt(FromNotation("f1")))
	assert.Equal(t, PieceNone, next.PieceAt(FromNotation("h1")))
	assert.False(t, next.Castling().Has(CastlingWhiteKingside))
	assert.False(t, next.Castling().Has(CastlingWhiteQueenside))
}

func TestApplyMoveEnPassantCaptureRemovesVictim(t *testing.T) {
	b, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	next, err := b.ApplyMove(NewMove(FromNotation("e5"), FromNotation("d6")))
	assert.NoError(t, err)
	assert.Equal(t, NewPiece(White, Pawn), next.PieceAt(FromNotation("d6")))
	assert.Equal(t, PieceNone, next.PieceAt(FromNotation("d5")))
}

func TestApplyMoveRejectsEmptyFromSquare(t *testing.T) {
	b := New()
	_, err := b.ApplyMove(NewMove(FromNotation("e4"), FromNotation("e5")))
	assert.Error(t, err)
}

func TestKeyMatchesForEqualPositionsOnly(t *testing.T) {
	a := New()
	b := New()
	assert.Equal(t, a.Key(), b.Key())

	c, err := a.ApplyMove(NewMove(FromNotation("e2"), FromNotation("e4")))
	assert.NoError(t, err)
	assert.NotEqual(t, a.Key(), c.Key())
}
