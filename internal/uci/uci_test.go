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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwm4030/nuvo-chess/config"
)

func init() {
	config.Setup()
}

func TestUciCommandAnswersUciok(t *testing.T) {
	u := NewUciHandler()
	result := u.Command("uci")
	assert.Contains(t, result, "id name nuvo-chess")
	assert.Contains(t, result, "uciok")
}

func TestIsreadyCommandAnswersReadyok(t *testing.T) {
	u := NewUciHandler()
	assert.Contains(t, u.Command("isready"), "readyok")
}

func TestLoopStopsOnQuit(t *testing.T) {
	u := NewUciHandler()
	u.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buf)
	u.Loop()
	assert.Contains(t, buf.String(), "uciok")
}

func TestPositionCommandWithFenAndMoves(t *testing.T) {
	u := NewUciHandler()
	u.Command("position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 moves e2e4 e7e5")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", u.pos.Fen())
}

func TestPositionCommandRejectsIllegalMove(t *testing.T) {
	u := NewUciHandler()
	result := u.Command("position startpos moves e2e5")
	assert.Contains(t, result, "illegal move")
}

func TestGoCommandFindsMateInOne(t *testing.T) {
	u := NewUciHandler()
	u.Command("position fen 6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")

	buf := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buf)
	u.handleReceivedCommand("go depth 2")
	u.s.WaitWhileSearching()

	assert.Contains(t, buf.String(), "bestmove a1a8")
}
