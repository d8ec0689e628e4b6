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

package board

import (
	"github.com/oskarnyqvist/mateline/internal/attacks"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

// IsAttacked reports whether sq is attacked by any piece of color by.
// This is a reverse attack lookup: it generates the attack set of
// each piece type as if it stood on sq and intersects it with the
// actual pieces of `by`, rather than generating every move of every
// piece of `by` and checking if one lands on sq.
func (b Board) IsAttacked(sq Square, by Color) bool {
	occupied := b.Occupied()
	if attacks.GetPawnAttacks(by.Other(), sq)&b.PieceBB(by, Pawn) != BbZero {
		return true
	}
	if attacks.GetKnightAttacks(sq)&b.PieceBB(by, Knight) != BbZero {
		return true
	}
	if attacks.GetKingAttacks(sq)&b.PieceBB(by, King) != BbZero {
		return true
	}
	rookSliders := b.PieceBB(by, Rook) | b.PieceBB(by, Queen)
	if attacks.GetAttacksBb(Rook, sq, occupied)&rookSliders != BbZero {
		return true
	}
	bishopSliders := b.PieceBB(by, Bishop) | b.PieceBB(by, Queen)
	if attacks.GetAttacksBb(Bishop, sq, occupied)&bishopSliders != BbZero {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (b Board) InCheck() bool {
	return b.KingInCheck(b.sideToMove)
}

// KingInCheck reports whether color c's king is currently attacked.
func (b Board) KingInCheck(c Color) bool {
	kingSq := b.PieceBB(c, King).Lsb()
	if kingSq == SqNone {
		return false
	}
	return b.IsAttacked(kingSq, c.Other())
}
