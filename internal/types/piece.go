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

// PieceType is a piece kind without color, the discriminant used to
// index bitboards, piece-square tables and material values.
type PieceType uint8

//noinspection GoUnusedConst
const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

var pieceTypeChars = ".PNBRQK"

// String returns the upper case algebraic letter for the piece type,
// e.g. "N" for knight, "." for PtNone.
func (pt PieceType) String() string {
	if pt >= PtLength {
		return "?"
	}
	return string(pieceTypeChars[pt])
}

// IsValid reports whether pt is one of the six real piece types.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// Piece combines a PieceType with the Color that owns it, as found on
// a square of the board.
type Piece uint8

// PieceNone is the empty-square sentinel.
const PieceNone Piece = 0

// NewPiece builds a Piece from a color and piece type.
func NewPiece(c Color, pt PieceType) Piece {
	if !pt.IsValid() {
		return PieceNone
	}
	return Piece(uint8(c)<<3 | uint8(pt))
}

// TypeOf returns the piece type component of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0b0111)
}

// ColorOf returns the color component of p.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// IsValid reports whether p represents an actual piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

// String returns the algebraic character for the piece, upper case for
// White and lower case for Black, "." for an empty square.
func (p Piece) String() string {
	if p == PieceNone {
		return "."
	}
	s := p.TypeOf().String()
	if p.ColorOf() == Black {
		return string(s[0] + ('a' - 'A'))
	}
	return s
}

// FromChar parses a single FEN piece character into a Piece. Returns
// PieceNone, false for any character that does not denote a piece.
func FromChar(c byte) (Piece, bool) {
	color := White
	uc := c
	if c >= 'a' && c <= 'z' {
		color = Black
		uc = c - ('a' - 'A')
	}
	idx := indexOf(pieceTypeChars, uc)
	if idx <= 0 {
		return PieceNone, false
	}
	return NewPiece(color, PieceType(idx)), true
}

func indexOf(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
