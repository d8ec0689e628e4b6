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
	"fmt"
	"strconv"
	"strings"

	. "github.com/oskarnyqvist/mateline/internal/types"
)

// FromFEN parses a complete FEN record into a Board. Unlike the
// original reference parser this is strict: all six fields are
// required and malformed input is rejected with an error rather than
// silently producing a partially initialized board.
func FromFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Board{}, fmt.Errorf("fen: expected 6 fields, got %d: %q", len(fields), fen)
	}

	var b Board

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("fen: expected 8 ranks, got %d: %q", len(ranks), fields[0])
	}
	for i, rankStr := range ranks {
		r := Rank(int(Rank8) - i) // FEN lists rank 8 first
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			if !f.IsValid() {
				return Board{}, fmt.Errorf("fen: rank %d overflows files: %q", 8-i, rankStr)
			}
			p, ok := FromChar(ch)
			if !ok {
				return Board{}, fmt.Errorf("fen: invalid piece char %q in rank %q", ch, rankStr)
			}
			b.place(p, NewSquare(r, f))
			f++
		}
		if f != FileNone {
			return Board{}, fmt.Errorf("fen: rank %q does not cover all 8 files", rankStr)
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return Board{}, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			right, ok := CastlingRightsFromChar(fields[2][i])
			if !ok {
				return Board{}, fmt.Errorf("fen: invalid castling char %q", fields[2][i])
			}
			b.castling |= right
		}
	}

	if fields[3] != "-" {
		sq := FromNotation(fields[3])
		if sq == SqNone {
			return Board{}, fmt.Errorf("fen: invalid en passant square %q", fields[3])
		}
		b.enPassant = sq
	} else {
		b.enPassant = SqNone
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return Board{}, fmt.Errorf("fen: invalid half move clock %q", fields[4])
	}
	b.halfMoveClock = halfMove

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 1 {
		return Board{}, fmt.Errorf("fen: invalid full move number %q", fields[5])
	}
	b.fullMoveNumber = fullMove

	return b, nil
}

// ToFEN renders the board back into a FEN record.
func (b Board) ToFEN() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			p := b.PieceAt(NewSquare(r, f))
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteString("/")
		}
		if r == Rank1 {
			break
		}
	}
	sb.WriteString(" ")
	sb.WriteString(b.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(b.castling.String())
	sb.WriteString(" ")
	sb.WriteString(b.enPassant.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))
	return sb.String()
}

// String renders the board as an 8x8 grid for debug output.
func (b Board) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			sb.WriteString(b.PieceAt(NewSquare(r, f)).String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
