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

import "fmt"

// Square is a single field of the board, numbered 0 (a1) to 63 (h8),
// rank major (a1, b1, ..., h1, a2, ...).
type Square int8

// SqNone is the invalid/empty square sentinel.
const (
	SqNone   Square = -1
	SqLength Square = 64
)

// NewSquare builds a Square from a zero based rank and file.
func NewSquare(r Rank, f File) Square {
	if !r.IsValid() || !f.IsValid() {
		return SqNone
	}
	return Square(int8(r)*8 + int8(f))
}

// FromNotation parses a two character algebraic square name (e.g. "e4").
// Returns SqNone if s is not a well formed square.
func FromNotation(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return NewSquare(Rank(r-'1'), File(f-'a'))
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < SqLength
}

// FileOf returns the file (column) the square is on.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank (row) the square is on.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// To shifts the square one step in the given compass direction.
// Returns SqNone if the shift would leave the board.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	f := sq.FileOf()
	switch d {
	case East, Northeast, Southeast:
		if f == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if f == FileA {
			return SqNone
		}
	}
	target := Square(int8(sq) + int8(d))
	if !target.IsValid() {
		return SqNone
	}
	return target
}

// FlipVertical mirrors the square across the horizontal center line of
// the board (rank 1 <-> rank 8). Used to reuse White's piece-square
// tables for Black by indexing with the flipped square.
func (sq Square) FlipVertical() Square {
	return sq ^ 0b111000
}

// String returns the algebraic notation for the square, e.g. "e4", or
// "-" if sq is not a valid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.FileOf().String(), sq.RankOf().String())
}
