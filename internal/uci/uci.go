//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package uci contains the UciHandler data structure and functionality to
// handle the UCI protocol communication between the Chess User Interface
// and the chess engine.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/oskarnyqvist/mateline/internal/board"
	myLogging "github.com/oskarnyqvist/mateline/internal/logging"
	"github.com/oskarnyqvist/mateline/internal/movegen"
	"github.com/oskarnyqvist/mateline/internal/search"
	. "github.com/oskarnyqvist/mateline/internal/types"
)

// UciHandler handles all communication with the chess UI via UCI and
// drives the board and search. Create an instance with NewUciHandler.
type UciHandler struct {
	InIo   *bufio.Scanner
	OutIo  *bufio.Writer
	board  board.Board
	search *search.Search
	uciLog *logging.Logger
	debug  bool
}

// NewUciHandler creates a new UciHandler instance, ready to run Loop.
// InIo/OutIo may be swapped for tests, e.g.:
//  u.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
func NewUciHandler() *UciHandler {
	u := &UciHandler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		board:  board.New(),
		search: search.NewSearch(),
		uciLog: myLogging.GetUciLog(),
	}
	u.search.Info = func(line string) { u.send(line) }
	return u
}

// Loop reads commands from InIo until "quit" is received.
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			return
		}
	}
}

// Command handles a single line of UCI protocol and returns everything
// it wrote to OutIo, useful for tests.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// SendInfoString sends an arbitrary diagnostic string to the UCI UI.
func (u *UciHandler) SendInfoString(info string) {
	u.send("info string " + info)
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	u.uciLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.send("readyok")
	case "ucinewgame":
		u.board = board.New()
		u.search.NewGame()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.search.Stop()
	case "ponderhit":
		// no pondering is implemented; treated as a no-op.
	case "debug":
		u.debugCommand(tokens)
	default:
		u.uciLog.Warningf("Unknown command: %s", cmd)
	}
	return false
}

func (u *UciHandler) uciCommand() {
	u.send("id name Mateline")
	u.send("id author the Mateline contributors")
	for _, o := range *uciOptions.GetOptions() {
		u.send(o)
	}
	u.send("uciok")
}

func (u *UciHandler) setOptionCommand(tokens []string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		u.SendInfoString("Command 'setoption' is malformed")
		return
	}
	i := 2
	name := ""
	for i < len(tokens) && tokens[i] != "value" {
		name += tokens[i] + " "
		i++
	}
	name = strings.TrimSpace(name)
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = tokens[i+1]
	}
	o, found := uciOptions[name]
	if !found {
		u.SendInfoString(fmt.Sprintf("Command 'setoption': no such option '%s'", name))
		return
	}
	o.CurrentValue = value
	o.HandlerFunc(u, o)
}

func (u *UciHandler) debugCommand(tokens []string) {
	if len(tokens) > 1 {
		u.debug = tokens[1] == "on"
	}
}

func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.SendInfoString("Command 'position' malformed")
		return
	}
	fen := board.StartFen
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(fenb.String())
	default:
		u.SendInfoString(fmt.Sprintf("Command 'position' malformed: %v", tokens))
		return
	}

	b, err := board.FromFEN(fen)
	if err != nil {
		u.SendInfoString(fmt.Sprintf("Command 'position' invalid FEN: %v", err))
		return
	}
	prior := u.board
	u.board = b

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			next, ok := u.applyUciMove(tokens[i])
			if !ok {
				u.board = prior
				u.SendInfoString(fmt.Sprintf("Command 'position' invalid move '%s'", tokens[i]))
				return
			}
			u.board = next
		}
	}
}

// applyUciMove parses a long-algebraic-notation token, matches it
// against the legal moves of the current board (so a bare "e7e8q"
// token picks up the right promotion disambiguation for free), and
// returns the resulting board.
func (u *UciHandler) applyUciMove(token string) (board.Board, bool) {
	parsed, ok := MoveFromNotation(token)
	if !ok {
		return board.Board{}, false
	}
	for _, m := range movegen.GenerateLegalMoves(u.board) {
		if m == parsed {
			next, err := u.board.ApplyMove(m)
			if err != nil {
				return board.Board{}, false
			}
			return next, true
		}
	}
	return board.Board{}, false
}

func (u *UciHandler) goCommand(tokens []string) {
	limits, ok := u.readSearchLimits(tokens)
	if !ok {
		return
	}
	b := u.board
	go func() {
		result := u.search.StartSearch(b, limits)
		u.sendResult(result)
	}()
}

func (u *UciHandler) sendResult(r search.Result) {
	u.send("bestmove " + r.BestMove.String())
}

func (u *UciHandler) readSearchLimits(tokens []string) (search.Limits, bool) {
	var limits search.Limits
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "searchmoves":
			i++
			for i < len(tokens) {
				m, ok := MoveFromNotation(tokens[i])
				if !ok {
					break
				}
				limits.SearchMoves = append(limits.SearchMoves, m)
				i++
			}
		case "infinite":
			limits.Infinite = true
			i++
		case "ponder":
			limits.Ponder = true
			i++
		case "depth":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.SendInfoString("go: depth is not a number")
				return limits, false
			}
			limits.Depth = v
			i++
		case "nodes":
			i++
			v, err := strconv.ParseUint(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: nodes is not a number")
				return limits, false
			}
			limits.Nodes = v
			i++
		case "mate":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.SendInfoString("go: mate is not a number")
				return limits, false
			}
			limits.Mate = v
			i++
		case "movetime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: movetime is not a number")
				return limits, false
			}
			limits.MoveTime = time.Duration(v) * time.Millisecond
			i++
		case "wtime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: wtime is not a number")
				return limits, false
			}
			limits.WhiteTime = time.Duration(v) * time.Millisecond
			i++
		case "btime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: btime is not a number")
				return limits, false
			}
			limits.BlackTime = time.Duration(v) * time.Millisecond
			i++
		case "winc":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: winc is not a number")
				return limits, false
			}
			limits.WhiteIncrement = time.Duration(v) * time.Millisecond
			i++
		case "binc":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: binc is not a number")
				return limits, false
			}
			limits.BlackIncrement = time.Duration(v) * time.Millisecond
			i++
		case "movestogo":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.SendInfoString("go: movestogo is not a number")
				return limits, false
			}
			limits.MovesToGo = v
			i++
		default:
			i++
		}
	}
	return limits, true
}

func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
