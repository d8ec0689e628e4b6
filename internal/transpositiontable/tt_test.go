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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oskarnyqvist/mateline/internal/board"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := NewTtTable()
	_, ok := tt.Probe(board.New())
	assert.False(t, ok)
	assert.Equal(t, uint64(1), tt.Stats.Misses)
}

func TestPutThenProbeHits(t *testing.T) {
	tt := NewTtTable()
	b := board.New()
	tt.Put(b, NewMove(FromNotation("e2"), FromNotation("e4")), Value(25), ValueExact, 4)

	entry, ok := tt.Probe(b)
	assert.True(t, ok)
	assert.Equal(t, Value(25), entry.Value)
	assert.Equal(t, 4, entry.Depth)
	assert.Equal(t, uint64(1), tt.Stats.Hits)
}

func TestProbeDetectsKeyCollisionAgainstADifferentBoard(t *testing.T) {
	tt := NewTtTable()
	a := board.New()
	b, err := a.ApplyMove(NewMove(FromNotation("e2"), FromNotation("e4")))
	assert.NoError(t, err)

	tt.Put(a, MoveNone, Value(0), ValueExact, 1)
	// Overwrite a's slot with b's entry at the same key only if they
	// happen to collide; otherwise this simply exercises two distinct
	// slots. Either way Probe(a) after Put(b) must never return b's
	// value as if it were a's.
	tt.Put(b, MoveNone, Value(999), ValueExact, 1)
	if entry, ok := tt.Probe(a); ok {
		assert.NotEqual(t, Value(999), entry.Value)
	}
}

func TestClearEmptiesTableAndResetsStats(t *testing.T) {
	tt := NewTtTable()
	tt.Put(board.New(), MoveNone, Value(0), ValueExact, 1)
	assert.Equal(t, 1, tt.Len())
	tt.Clear()
	assert.Equal(t, 0, tt.Len())
	assert.Equal(t, TtStats{}, tt.Stats)
}
