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

// Package attacks pre-computes and looks up the attack sets of every
// piece type: fixed tables for the leaping pieces (pawn, knight, king)
// and magic-bitboard tables for the sliding pieces (bishop, rook,
// queen).
package attacks

import (
	"github.com/oskarnyqvist/mateline/internal/assert"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

var (
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard
)

func init() {
	for sq := Square(0); sq < SqLength; sq++ {
		knightAttacks[sq] = knightAttacksFrom(sq)
		kingAttacks[sq] = kingAttacksFrom(sq)
		pawnAttacks[White][sq] = pawnAttacksFrom(sq, White)
		pawnAttacks[Black][sq] = pawnAttacksFrom(sq, Black)
	}
}

// knightAttacksFrom computes the knight's eight possible L-shaped
// jumps from sq, discarding any that would wrap around a board edge.
func knightAttacksFrom(sq Square) Bitboard {
	b := sq.Bb()
	return ((b << 17) & NotFileA) | ((b << 15) & NotFileH) |
		((b << 10) & NotFileAB) | ((b << 6) & NotFileGH) |
		((b >> 17) & NotFileH) | ((b >> 15) & NotFileA) |
		((b >> 10) & NotFileGH) | ((b >> 6) & NotFileAB)
}

// kingAttacksFrom computes the king's eight neighbouring squares.
func kingAttacksFrom(sq Square) Bitboard {
	b := sq.Bb()
	attacks := ShiftBitboard(b, North) | ShiftBitboard(b, South) |
		ShiftBitboard(b, East) | ShiftBitboard(b, West) |
		ShiftBitboard(b, Northeast) | ShiftBitboard(b, Northwest) |
		ShiftBitboard(b, Southeast) | ShiftBitboard(b, Southwest)
	return attacks
}

// pawnAttacksFrom computes the two diagonal capture squares of a pawn
// of color c standing on sq.
func pawnAttacksFrom(sq Square, c Color) Bitboard {
	b := sq.Bb()
	if c == White {
		return ShiftBitboard(b, Northeast) | ShiftBitboard(b, Northwest)
	}
	return ShiftBitboard(b, Southeast) | ShiftBitboard(b, Southwest)
}

// GetPawnAttacks returns the capture squares of a pawn of color c on sq.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetKnightAttacks returns the knight attack set from sq.
func GetKnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// GetKingAttacks returns the king attack set from sq.
func GetKingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// GetAttacksBb returns the attack set of a piece of type pt standing
// on sq, given the current full board occupancy. For the leaping
// pieces occupied is ignored; for sliders it is looked up via the
// magic bitboard tables.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	case Bishop:
		return bishopMagics[sq].attacks(occupied)
	case Rook:
		return rookMagics[sq].attacks(occupied)
	case Queen:
		return bishopMagics[sq].attacks(occupied) | rookMagics[sq].attacks(occupied)
	default:
		if assert.DEBUG {
			assert.Assert(false, "GetAttacksBb: %s is not a sliding or leaping piece", pt)
		}
		return BbZero
	}
}
