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

// Key is a fast, non-incremental position hash used to key the
// transposition table. Unlike a classical Zobrist hash it is
// recomputed from scratch for every Board value rather than updated
// move by move - Board is a value type with no mutation to hook an
// incremental update onto. A Key collision is possible (this is a
//64 bit hash of an unbounded state space) so callers must always
// verify a transposition table hit against the full Board before
// trusting it.
type Key uint64

// zobrist random tables, filled once at process start by a fixed
// deterministic xorshift64star stream so that a given process always
// derives the same Key for the same Board.
var (
	zobristPiece    [ColorLength][PtLength][SqLength]Key
	zobristCastling [16]Key
	zobristEnPassant [8]Key
	zobristSide     Key
)

func init() {
	rng := prng{seed: 0x9E3779B97F4A7C15}
	for c := Color(0); c < ColorLength; c++ {
		for pt := PtNone; pt < PtLength; pt++ {
			for sq := Square(0); sq < SqLength; sq++ {
				zobristPiece[c][pt][sq] = Key(rng.next())
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = Key(rng.next())
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = Key(rng.next())
	}
	zobristSide = Key(rng.next())
}

// PieceKey returns the hash contribution of piece p standing on sq.
func PieceKey(p Piece, sq Square) Key {
	return zobristPiece[p.ColorOf()][p.TypeOf()][sq]
}

// CastlingKey returns the hash contribution of a castling rights mask.
func CastlingKey(rights CastlingRights) Key {
	return zobristCastling[rights&0xF]
}

// EnPassantKey returns the hash contribution of an en passant target
// file, or zero if there is none.
func EnPassantKey(f File) Key {
	if !f.IsValid() {
		return 0
	}
	return zobristEnPassant[f]
}

// SideKey returns the hash contribution toggled when it is Black to move.
func SideKey(c Color) Key {
	if c == Black {
		return zobristSide
	}
	return 0
}

// prng is a xorshift64star generator, the same construction the
// magic bitboard search uses, seeded independently so the zobrist
// tables and the magic search do not share state.
type prng struct {
	seed uint64
}

func (p *prng) next() uint64 {
	p.seed ^= p.seed >> 12
	p.seed ^= p.seed << 25
	p.seed ^= p.seed >> 27
	return p.seed * 2685821657736338717
}
