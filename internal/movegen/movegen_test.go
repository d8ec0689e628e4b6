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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oskarnyqvist/mateline/internal/board"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

func TestKnightMovesAtStartpos(t *testing.T) {
	b := board.New()
	var knightMoves []Move
	for _, m := range GeneratePseudoLegalMoves(b) {
		if m.From() == FromNotation("b1") {
			knightMoves = append(knightMoves, m)
		}
	}
	want := map[string]bool{"b1a3": true, "b1c3": true}
	assert.Len(t, knightMoves, 2)
	for _, m := range knightMoves {
		assert.True(t, want[m.String()], m.String())
	}

	var allKnightTargets []string
	for _, m := range GeneratePseudoLegalMoves(b) {
		if m.From() == FromNotation("b1") || m.From() == FromNotation("g1") {
			allKnightTargets = append(allKnightTargets, m.String())
		}
	}
	assert.ElementsMatch(t, []string{"b1a3", "b1c3", "g1f3", "g1h3"}, allKnightTargets)
}

func TestLegalMovesNeverLeaveMoverInCheck(t *testing.T) {
	b := board.New()
	for _, m := range GenerateLegalMoves(b) {
		next, err := b.ApplyMove(m)
		assert.NoError(t, err)
		assert.False(t, next.KingInCheck(b.SideToMove()), m.String())
	}
}

func TestGenerateLegalMovesHasNoDuplicates(t *testing.T) {
	b := board.New()
	moves := GenerateLegalMoves(b)
	seen := make(map[Move]bool, len(moves))
	for _, m := range moves {
		assert.False(t, seen[m], "duplicate move %s", m)
		seen[m] = true
	}
	assert.Equal(t, 20, len(moves))
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	b, err := board.FromFEN("r1b1kb1r/pppp1pp1/2n5/1B2p3/4PP2/6p1/PPPP2Pq/RNBQNRK1 w kq f3 0 8")
	assert.NoError(t, err)
	assert.False(t, HasLegalMove(b))
	assert.Empty(t, GenerateLegalMoves(b))
	assert.True(t, b.InCheck())
}

func TestCastlingMoveAvailableWhenClearAndUnattacked(t *testing.T) {
	b, err := board.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	var castles []string
	for _, m := range GenerateLegalMoves(b) {
		if m.From() == FromNotation("e1") {
			castles = append(castles, m.String())
		}
	}
	assert.Contains(t, castles, "e1g1")
	assert.Contains(t, castles, "e1c1")
}

func TestCastlingUnavailableThroughCheck(t *testing.T) {
	// black rook on f8 attacks f1, the square the king passes through castling kingside.
	b, err := board.FromFEN("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	for _, m := range GenerateLegalMoves(b) {
		assert.NotEqual(t, "e1g1", m.String())
	}
}

func TestPromotionExpandsToFourMoves(t *testing.T) {
	b, err := board.FromFEN("1nbqkbnr/rP1ppppp/p1p5/8/8/8/1PPPPPPP/RNBQKBNR w KQk - 1 5")
	assert.NoError(t, err)
	var promos []Move
	for _, m := range GeneratePseudoLegalMoves(b) {
		if m.From() == FromNotation("b7") && m.To() == FromNotation("c8") {
			promos = append(promos, m)
		}
	}
	assert.Len(t, promos, 4)
}
