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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oskarnyqvist/mateline/internal/board"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

func TestStartposIsMaterialBalanced(t *testing.T) {
	b := board.New()
	assert.Equal(t, Value(0), Evaluate(b, 20))
}

func TestCheckmateReturnsMateFavoringTheMater(t *testing.T) {
	b, err := board.FromFEN("r1b1kb1r/pppp1pp1/2n5/1B2p3/4PP2/6p1/PPPP2Pq/RNBQNRK1 w kq f3 0 8")
	assert.NoError(t, err)
	assert.True(t, b.InCheck())
	assert.Equal(t, -Mate, Evaluate(b, 0))
}

func TestCheckmateFavoringWhite(t *testing.T) {
	b, err := board.FromFEN("k1R5/8/1K6/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, Mate, Evaluate(b, 0))
}

func TestStalemateReturnsDraw(t *testing.T) {
	// black king boxed in on a8 with no legal move and not in check.
	b, err := board.FromFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, b.InCheck())
	assert.Equal(t, Draw, Evaluate(b, 0))
}

func TestEvalFavorsMaterialAdvantage(t *testing.T) {
	// White is up a queen.
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, int(Evaluate(b, 30)), 900)
}
