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

// CastlingRights is a 4 bit mask of which castling moves are still
// available, independent of whether the squares involved are
// currently clear - that is checked at move generation time.
type CastlingRights uint8

//noinspection GoUnusedConst
const (
	CastlingWhiteKingside  CastlingRights = 1 << iota // "K"
	CastlingWhiteQueenside                            // "Q"
	CastlingBlackKingside                             // "k"
	CastlingBlackQueenside                            // "q"
	CastlingNone           CastlingRights = 0
	CastlingAll                           = CastlingWhiteKingside | CastlingWhiteQueenside | CastlingBlackKingside | CastlingBlackQueenside
)

// Has reports whether all bits of other are set in c.
func (c CastlingRights) Has(other CastlingRights) bool {
	return c&other == other
}

// Remove clears the given rights and returns the result.
func (c CastlingRights) Remove(other CastlingRights) CastlingRights {
	return c &^ other
}

// Kingside returns the kingside castling right for the given color.
func Kingside(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteKingside
	}
	return CastlingBlackKingside
}

// Queenside returns the queenside castling right for the given color.
func Queenside(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteQueenside
	}
	return CastlingBlackQueenside
}

// ForColor returns the mask of both castling rights belonging to color c.
func ForColor(c Color) CastlingRights {
	return Kingside(c) | Queenside(c)
}

// String renders the rights using the FEN convention, e.g. "KQkq",
// or "-" when none remain.
func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	out := ""
	if c.Has(CastlingWhiteKingside) {
		out += "K"
	}
	if c.Has(CastlingWhiteQueenside) {
		out += "Q"
	}
	if c.Has(CastlingBlackKingside) {
		out += "k"
	}
	if c.Has(CastlingBlackQueenside) {
		out += "q"
	}
	return out
}

// CastlingRightsFromChar maps a single FEN castling availability
// character to its CastlingRights bit. ok is false for any other
// character.
func CastlingRightsFromChar(ch byte) (CastlingRights, bool) {
	switch ch {
	case 'K':
		return CastlingWhiteKingside, true
	case 'Q':
		return CastlingWhiteQueenside, true
	case 'k':
		return CastlingBlackKingside, true
	case 'q':
		return CastlingBlackQueenside, true
	default:
		return CastlingNone, false
	}
}
