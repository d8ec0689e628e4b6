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

package attacks

import (
	. "github.com/oskarnyqvist/mateline/internal/types"
)

// magic holds one square's entry in a magic bitboard table: the
// relevant occupancy mask, the multiplier, the right-shift amount and
// the slice of pre-computed attack sets indexed by the hash of an
// occupancy subset.
type magic struct {
	mask    Bitboard
	number  uint64
	shift   uint
	table  []Bitboard
}

func (m *magic) index(occupied Bitboard) uint64 {
	return (uint64(occupied&m.mask) * m.number) >> m.shift
}

// attacks is the public lookup used by GetAttacksBb.
func (m *magic) attacks(occupied Bitboard) Bitboard {
	return m.table[m.index(occupied)]
}

var (
	bishopMagics [SqLength]magic
	rookMagics   [SqLength]magic
)

// magicSeeds gives the search a reasonable starting candidate per
// rank - sparse 64 bit numbers (few set bits) are far more likely to
// be valid magics, so the search mixes them from the pseudo-random
// stream rather than drawing uniformly.
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func init() {
	gen := magicPrng{seed: magicSeeds[0]}
	for sq := Square(0); sq < SqLength; sq++ {
		gen.seed = magicSeeds[sq.RankOf()]
		bishopMagics[sq] = buildMagic(sq, BishopDirections, &gen)
	}
	for sq := Square(0); sq < SqLength; sq++ {
		gen.seed = magicSeeds[sq.RankOf()]
		rookMagics[sq] = buildMagic(sq, RookDirections, &gen)
	}
}

// buildMagic finds a magic number for sq along the given slider
// directions and materializes its attack table. It mirrors the
// collision-rejecting search: draw a sparse random candidate, reject
// it outright if it does not spread bits well across the top byte,
// otherwise try it against every occupancy subset of the mask and
// accept only if no two subsets with different attack sets hash to
// the same index.
func buildMagic(sq Square, directions [4]Direction, gen *magicPrng) magic {
	mask := relevantOccupancy(sq, directions)
	bits := mask.PopCount()
	shift := uint(64 - bits)

	// enumerate every occupancy subset of mask via the carry-rippler
	// trick, and the slider attack set each one produces.
	size := 1 << uint(bits)
	occupancies := make([]Bitboard, size)
	references := make([]Bitboard, size)
	subset := BbZero
	for i := 0; i < size; i++ {
		occupancies[i] = subset
		references[i] = slidingAttacks(sq, directions, subset)
		subset = (subset - mask) & mask
	}

	attackTable := make([]Bitboard, size)
	for {
		candidate := gen.sparse()
		if Bitboard((candidate*uint64(mask))>>56).PopCount() < 6 {
			continue
		}
		for i := range attackTable {
			attackTable[i] = BbZero
		}
		m := magic{mask: mask, number: candidate, shift: shift}
		collision := false
		for i := 0; i < size; i++ {
			idx := m.index(occupancies[i])
			if attackTable[idx] != BbZero && attackTable[idx] != references[i] {
				collision = true
				break
			}
			attackTable[idx] = references[i]
		}
		if !collision {
			m.table = append([]Bitboard(nil), attackTable...)
			return m
		}
	}
}

// relevantOccupancy returns the squares along sq's slider rays whose
// occupancy can affect the attack set - i.e. every ray square except
// the last one, since a blocker on the board's edge never needs a
// further square beyond it to be distinguished.
func relevantOccupancy(sq Square, directions [4]Direction) Bitboard {
	var mask Bitboard
	for _, d := range directions {
		cur := sq
		for {
			next := cur.To(d)
			if next == SqNone {
				break
			}
			afterNext := next.To(d)
			if afterNext == SqNone {
				break
			}
			mask |= next.Bb()
			cur = next
		}
	}
	return mask
}

// slidingAttacks rays out from sq in the given directions over the
// given occupancy, stopping (inclusive) at the first occupied square
// in each direction.
func slidingAttacks(sq Square, directions [4]Direction, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range directions {
		cur := sq
		for {
			next := cur.To(d)
			if next == SqNone {
				break
			}
			attacks |= next.Bb()
			if occupied.Has(next) {
				break
			}
			cur = next
		}
	}
	return attacks
}

// magicPrng is the xorshift64star stream the magic search draws
// sparse candidates from - AND-ing three draws together, as in the
// classic "fancy magic bitboard" construction, yields numbers with
// few set bits, which are far likelier to be valid magics.
type magicPrng struct {
	seed uint64
}

func (g *magicPrng) next() uint64 {
	g.seed ^= g.seed >> 12
	g.seed ^= g.seed << 25
	g.seed ^= g.seed >> 27
	return g.seed * 2685821657736338717
}

func (g *magicPrng) sparse() uint64 {
	return g.next() & g.next() & g.next()
}
