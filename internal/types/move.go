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

// Move packs a from-square, to-square and optional promotion piece
// type into a single comparable value suitable for move lists,
// killer move slots and transposition table entries.
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-14: promotion piece type (PtNone if none)
type Move uint16

// MoveNone is the invalid/empty move sentinel.
const MoveNone Move = 0

// NewMove builds a quiet or capturing move with no promotion.
func NewMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<6)
}

// NewPromotionMove builds a pawn promotion move to the given piece type.
func NewPromotionMove(from, to Square, promote PieceType) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(promote)<<12)
}

// From returns the origin square of the move.
func (m Move) From() Square {
	return Square(m & 0x3f)
}

// To returns the destination square of the move.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3f)
}

// Promotes reports whether the move promotes a pawn, and to which type.
func (m Move) Promotes() (PieceType, bool) {
	pt := PieceType((m >> 12) & 0x7)
	return pt, pt.IsValid()
}

// IsValid reports whether m has a non-sentinel, well formed from/to pair.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// String renders the move in long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a promotion. This is the wire format used by the UCI
// protocol and by the legacy test suite's move notation.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if pt, ok := m.Promotes(); ok {
		s += string(rune(pt.String()[0] + ('a' - 'A')))
	}
	return s
}

// MoveFromNotation parses a long algebraic notation move such as
// "e2e4" or "a7a8q". Returns MoveNone, false for malformed input.
func MoveFromNotation(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, false
	}
	from := FromNotation(s[0:2])
	to := FromNotation(s[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, false
	}
	if len(s) == 5 {
		promo, ok := FromChar(s[4])
		if !ok || promo.TypeOf() == Pawn || promo.TypeOf() == King {
			return MoveNone, false
		}
		return NewPromotionMove(from, to, promo.TypeOf()), true
	}
	return NewMove(from, to), true
}
