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

package uci

import (
	"bufio"
	"bytes"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oskarnyqvist/mateline/internal/board"
	"github.com/oskarnyqvist/mateline/internal/config"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestUciHandlerLoop(t *testing.T) {
	uh := NewUciHandler()
	uh.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buffer := new(bytes.Buffer)
	uh.OutIo = bufio.NewWriter(buffer)
	uh.Loop()
	assert.Contains(t, buffer.String(), "uciok")
}

func TestUciCommand(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("uci")
	assert.Contains(t, result, "id name Mateline")
	assert.Contains(t, result, "Clear Hash")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyCmd(t *testing.T) {
	uh := NewUciHandler()
	assert.Contains(t, uh.Command("isready"), "readyok")
}

func TestSetOptionHash(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("setoption name Hash value 512")
	assert.Equal(t, "512", uciOptions["Hash"].CurrentValue)
}

func TestPositionCmdStartpos(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")
	assert.Equal(t, board.StartFen, uh.board.ToFEN())
}

func TestPositionCmdFen(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position fen " + board.StartFen)
	assert.Equal(t, board.StartFen, uh.board.ToFEN())
}

func TestPositionCmdMalformed(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("position fen")
	assert.Contains(t, result, "Command 'position'")
}

func TestPositionCmdWithMoves(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos moves e2e4 e7e5 g1f3 b8c6")
	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", uh.board.ToFEN())
}

func TestPositionCmdIllegalMove(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("position startpos moves e2e5")
	assert.Contains(t, result, "invalid move")
}

func TestReadSearchLimits(t *testing.T) {
	uh := NewUciHandler()

	tokens := regexWhiteSpace.Split("go infinite", -1)
	limits, ok := uh.readSearchLimits(tokens)
	assert.True(t, ok)
	assert.True(t, limits.Infinite)

	tokens = regexWhiteSpace.Split("go depth 6", -1)
	limits, ok = uh.readSearchLimits(tokens)
	assert.True(t, ok)
	assert.Equal(t, 6, limits.Depth)

	tokens = regexWhiteSpace.Split("go movetime 5000", -1)
	limits, ok = uh.readSearchLimits(tokens)
	assert.True(t, ok)
	assert.Equal(t, int64(5000), limits.MoveTime.Milliseconds())

	tokens = regexWhiteSpace.Split("go wtime 60000 btime 60000 winc 2000 binc 2000 movestogo 20", -1)
	limits, ok = uh.readSearchLimits(tokens)
	assert.True(t, ok)
	assert.Equal(t, int64(60000), limits.WhiteTime.Milliseconds())
	assert.Equal(t, int64(60000), limits.BlackTime.Milliseconds())
	assert.Equal(t, int64(2000), limits.WhiteIncrement.Milliseconds())
	assert.Equal(t, int64(2000), limits.BlackIncrement.Milliseconds())
	assert.Equal(t, 20, limits.MovesToGo)
}

func TestGoCommandProducesBestmove(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")

	buffer := new(bytes.Buffer)
	uh.OutIo = bufio.NewWriter(buffer)
	uh.handleReceivedCommand("go depth 2")

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(buffer.String(), "bestmove") && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	assert.Contains(t, buffer.String(), "bestmove")
}

func TestStopEndsInfiniteSearch(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")

	buffer := new(bytes.Buffer)
	uh.OutIo = bufio.NewWriter(buffer)
	uh.handleReceivedCommand("go infinite")
	startDeadline := time.Now().Add(time.Second)
	for !uh.search.IsSearching() && time.Now().Before(startDeadline) {
		time.Sleep(time.Millisecond)
	}
	assert.True(t, uh.search.IsSearching())

	time.Sleep(50 * time.Millisecond)
	uh.handleReceivedCommand("stop")

	deadline := time.Now().Add(5 * time.Second)
	for uh.search.IsSearching() && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	assert.False(t, uh.search.IsSearching())
}
