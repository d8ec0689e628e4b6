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

import "math"

// Value is a centipawn evaluation score. Positive favors White,
// negative favors Black, regardless of which side is on move.
type Value int16

// Mate is the base magnitude used for a forced checkmate score. It is
// deliberately far above the range of any realistic material+position
// evaluation but well short of math.MaxInt16, so that arithmetic such
// as "mate in N" ply adjustments never overflows.
const Mate Value = 10_000

// Draw is the value of a stalemate or other drawn position.
const Draw Value = 0

// ValueNA marks the absence of a value, e.g. an empty transposition
// table slot.
const ValueNA Value = math.MinInt16

// IsMateValue reports whether v represents some distance-to-mate score
// rather than an ordinary material/positional evaluation.
func (v Value) IsMateValue() bool {
	return v > Mate-1000 || v < -Mate+1000
}
