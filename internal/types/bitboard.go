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

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with one bit per square on the board.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// BbAll has every square set.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

var (
	fileBb [8]Bitboard
	rankBb [8]Bitboard
	sqBb   [64]Bitboard

	// NotFileA etc. guard leaper shifts against wrapping around the
	// east/west edge of the board.
	NotFileA  Bitboard
	NotFileH  Bitboard
	NotFileAB Bitboard
	NotFileGH Bitboard
)

func init() {
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb |= NewSquare(r, f).bitboard()
		}
		fileBb[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb |= NewSquare(r, f).bitboard()
		}
		rankBb[r] = bb
	}
	for sq := Square(0); sq < SqLength; sq++ {
		sqBb[sq] = 1 << uint(sq)
	}
	NotFileA = ^fileBb[FileA]
	NotFileH = ^fileBb[FileH]
	NotFileAB = ^(fileBb[FileA] | fileBb[FileB])
	NotFileGH = ^(fileBb[FileG] | fileBb[FileH])
}

// bitboard is the unexported bootstrap helper used only while the
// fileBb/rankBb/sqBb tables themselves are still being built.
func (sq Square) bitboard() Bitboard {
	return 1 << uint(sq)
}

// Bb returns the single-bit Bitboard for this square.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the bit for s and returns the new board.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears the bit for s and returns the new board.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b &^= s.Bb()
	return *b
}

// Has reports whether s is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bb() != 0
}

// Lsb returns the square of the least significant set bit, or SqNone
// if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set bit's square.
// Used to iterate over a bitboard's squares, e.g.
//
//	for pieces := board.PieceBB(White, Knight); pieces != BbZero; {
//	    sq := pieces.PopLsb()
//	    ...
//	}
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &^= sq.Bb()
	}
	return sq
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftBitboard shifts every bit of b one step in direction d,
// clipping bits that would wrap around the east/west edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ fileBb[FileH]) << 1
	case West:
		return (b &^ fileBb[FileA]) >> 1
	case Northeast:
		return (b &^ fileBb[FileH]) << 9
	case Northwest:
		return (b &^ fileBb[FileA]) << 7
	case Southeast:
		return (b &^ fileBb[FileH]) >> 7
	case Southwest:
		return (b &^ fileBb[FileA]) >> 9
	default:
		return BbZero
	}
}

// String renders a bitboard as a multi-line 8x8 grid of "X"/"." with
// rank 8 on top, useful in debug logging and test failure messages.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(NewSquare(r, f)) {
				sb.WriteString("X")
			} else {
				sb.WriteString(".")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
