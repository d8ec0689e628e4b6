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

// Package transpositiontable caches search results keyed on the full
// board position, per the search design's Value/Depth/best-move
// cache contract. It is keyed internally by a fast, non-incremental
// position Key with full Board equality verification on lookup, so a
// hash collision can never return a wrong result - see TtEntry.
//
// TtTable is not safe for concurrent use; the search is single
// threaded and only clears the table between searches.
package transpositiontable

import (
	"github.com/oskarnyqvist/mateline/internal/board"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

// TtStats holds counters describing how effective the table has been.
type TtStats struct {
	Puts      uint64
	Collisions uint64
	Probes    uint64
	Hits      uint64
	Misses    uint64
}

// TtTable is the transposition table.
type TtTable struct {
	data  map[Key]TtEntry
	Stats TtStats
}

// NewTtTable creates an empty transposition table.
func NewTtTable() *TtTable {
	return &TtTable{data: make(map[Key]TtEntry)}
}

// Probe looks up b's entry. ok is false both when the key is entirely
// absent and when it collided with a different position - in the
// latter case the stored entry is simply unusable for b.
func (tt *TtTable) Probe(b board.Board) (TtEntry, bool) {
	tt.Stats.Probes++
	key := b.Key()
	entry, found := tt.data[key]
	if !found {
		tt.Stats.Misses++
		return TtEntry{}, false
	}
	if !entry.position.Equals(b) {
		tt.Stats.Collisions++
		tt.Stats.Misses++
		return TtEntry{}, false
	}
	tt.Stats.Hits++
	return entry, true
}

// Put stores a search result for b, replacing any result currently
// held at the same key - including one for a different position,
// which simply means that collision is now resolved in the new
// entry's favor. The replacement is unconditional: the depth of the
// old entry is not compared, so a shallower result can replace a
// deeper one.
func (tt *TtTable) Put(b board.Board, move Move, value Value, valueType ValueType, depth int) {
	tt.Stats.Puts++
	tt.data[b.Key()] = TtEntry{
		position:  b,
		Move:      move,
		Value:     value,
		ValueType: valueType,
		Depth:     depth,
	}
}

// Clear empties the table and resets its statistics. The search calls
// it from NewGame and at the end of every search without a depth limit.
func (tt *TtTable) Clear() {
	tt.data = make(map[Key]TtEntry)
	tt.Stats = TtStats{}
}

// Len returns the number of entries currently stored.
func (tt *TtTable) Len() int {
	return len(tt.data)
}
