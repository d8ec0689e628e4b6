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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oskarnyqvist/mateline/internal/board"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

func TestStartSearchReturnsLegalMoveAtFixedDepth(t *testing.T) {
	s := NewSearch()
	b := board.New()
	result := s.StartSearch(b, Limits{Depth: 2})
	assert.True(t, result.BestMove.IsValid())
	_, err := b.ApplyMove(result.BestMove)
	assert.NoError(t, err)
	assert.False(t, s.IsSearching())
}

func TestStartSearchFindsMateInOne(t *testing.T) {
	b, err := board.FromFEN("7k/6pp/8/8/8/8/8/R5K1 w - - 0 1")
	assert.NoError(t, err)

	s := NewSearch()
	result := s.StartSearch(b, Limits{Depth: 1})
	assert.Equal(t, "a1a8", result.BestMove.String())
	assert.Equal(t, Mate-1, result.BestValue)
}

func TestAlphaBetaWindowDoesNotChangeRootScore(t *testing.T) {
	b, err := board.FromFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	assert.NoError(t, err)

	full := NewSearch()
	fullValue := full.alphabeta(b, 2, 0, Value(-32000), Value(32000))

	narrow := NewSearch()
	narrowValue := narrow.alphabeta(b, 2, 0, fullValue-50, fullValue+50)

	assert.Equal(t, fullValue, narrowValue)
}

func TestIterativeDeepeningEmitsInfoPerDepth(t *testing.T) {
	var lines []string
	s := NewSearch()
	s.Info = func(line string) { lines = append(lines, line) }
	s.StartSearch(board.New(), Limits{Depth: 3})
	assert.Len(t, lines, 3)
	for i, line := range lines {
		assert.Contains(t, line, "info depth")
		_ = i
	}
}

func TestStopEndsInfiniteSearchEarly(t *testing.T) {
	s := NewSearch()
	done := make(chan Result, 1)
	go func() {
		done <- s.StartSearch(board.New(), Limits{Infinite: true})
	}()

	deadline := time.Now().Add(time.Second)
	for !s.IsSearching() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	s.Stop()

	select {
	case result := <-done:
		assert.True(t, result.BestMove.IsValid())
	case <-time.After(5 * time.Second):
		t.Fatal("search did not stop in time")
	}
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	s := NewSearch()
	s.StartSearch(board.New(), Limits{Depth: 2})
	assert.Greater(t, s.tt.Len(), 0)
	s.NewGame()
	assert.Equal(t, 0, s.tt.Len())
}
