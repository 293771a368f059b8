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
// handle the UCI protocol communication between a chess user interface and
// the engine over stdin/stdout.
package uci

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	oplog "github.com/op/go-logging"

	"github.com/cwm4030/nuvo-chess/internal/logging"
	"github.com/cwm4030/nuvo-chess/internal/movegen"
	"github.com/cwm4030/nuvo-chess/internal/position"
	"github.com/cwm4030/nuvo-chess/internal/search"
	"github.com/cwm4030/nuvo-chess/internal/types"
	"github.com/cwm4030/nuvo-chess/internal/util"
)

// UciHandler reads UCI commands from InIo, drives a Search against the
// current Position, and writes UCI responses to OutIo. A zero Search is
// enough to drive the loop; SendInfoDepth/SendBestMove are wired up to the
// handler itself so search progress reaches the UI as it happens.
type UciHandler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos *position.Position
	s   *search.Search

	uciLog *oplog.Logger
}

// NewUciHandler creates a handler wired to stdin/stdout and the starting
// position. Replace InIo/OutIo before calling Loop to redirect i/o.
func NewUciHandler() *UciHandler {
	u := &UciHandler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    position.New(),
		s:      search.NewSearch(),
		uciLog: logging.GetUciLog(),
	}
	u.s.SetReporter(u)
	return u
}

// Loop reads and dispatches commands until "quit" is received.
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			return
		}
	}
}

// Command handles a single command line and returns whatever was written to
// OutIo while handling it. Useful for tests and scripted drivers.
func (u *UciHandler) Command(cmd string) string {
	saved := u.OutIo
	buf := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buf)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = saved
	return buf.String()
}

// SendInfoDepth implements search.Reporter: it reports one completed
// iterative-deepening depth as a UCI "info" line.
func (u *UciHandler) SendInfoDepth(depth int, value types.Value, nodes int64, elapsed time.Duration) {
	nps := util.Nps(uint64(nodes), elapsed)
	u.send(search.Out.Sprintf("info depth %d score %s nodes %d nps %d time %d",
		depth, value.String(), nodes, nps, elapsed.Milliseconds()))
}

// SendBestMove implements search.Reporter: it reports the final best move
// (and ponder move, always none since this engine never ponders).
func (u *UciHandler) SendBestMove(best, ponder types.Move) {
	if ponder != types.MoveNone {
		u.send("bestmove " + best.UciString() + " ponder " + ponder.UciString())
		return
	}
	u.send("bestmove " + best.UciString())
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand dispatches one line of input, returning true if it
// was "quit" and the loop should end.
func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) == 0 {
		return false
	}
	u.uciLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "isready":
		u.send("readyok")
	case "ucinewgame":
		u.pos = position.New()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.s.StopSearch()
	case "setoption", "debug", "register", "ponderhit":
		// accepted but have no effect: this engine has no tunable
		// options, no pondering and no registration gate.
	case "noop":
	default:
		u.sendInfoString("unknown command: " + cmd)
	}
	return false
}

func (u *UciHandler) uciCommand() {
	u.send("id name nuvo-chess")
	u.send("id author the nuvo-chess contributors")
	u.send("uciok")
}

// positionCommand parses "position [startpos | fen <fen>] [moves <uci>...]".
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.sendInfoString("malformed position command")
		return
	}

	i := 1
	switch tokens[1] {
	case "startpos":
		u.pos = position.New()
		i = 2
	case "fen":
		i = 2
		var fen strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fen.WriteString(tokens[i])
			fen.WriteString(" ")
			i++
		}
		p, err := position.NewFen(strings.TrimSpace(fen.String()))
		if err != nil {
			u.sendInfoString("malformed fen: " + err.Error())
			return
		}
		u.pos = p
	default:
		u.sendInfoString("malformed position command")
		return
	}

	if i >= len(tokens) {
		return
	}
	if tokens[i] != "moves" {
		u.sendInfoString("malformed position command: expected 'moves'")
		return
	}
	for i++; i < len(tokens); i++ {
		m := movegen.MoveFromUci(u.pos, tokens[i])
		if !m.IsValid() {
			u.sendInfoString("illegal move in position command: " + tokens[i])
			return
		}
		u.pos.DoMove(m)
	}
}

// goCommand parses the search limits and starts a search on the current
// position; the search runs on its own goroutine and reports back through
// SendInfoDepth/SendBestMove as it progresses.
func (u *UciHandler) goCommand(tokens []string) {
	limits, ok := u.readSearchLimits(tokens)
	if !ok {
		return
	}
	u.s.StartSearch(u.pos, limits)
}

func (u *UciHandler) readSearchLimits(tokens []string) (search.Limits, bool) {
	var limits search.Limits
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "ponder":
			// not supported; treat like a plain search.
			i++
		case "depth":
			v, ok := u.readInt(tokens, i+1)
			if !ok {
				return limits, false
			}
			limits.Depth = v
			i += 2
		case "nodes":
			v, ok := u.readInt64(tokens, i+1)
			if !ok {
				return limits, false
			}
			limits.Nodes = v
			i += 2
		case "movetime":
			v, ok := u.readInt64(tokens, i+1)
			if !ok {
				return limits, false
			}
			limits.MoveTime = time.Duration(v) * time.Millisecond
			i += 2
		case "wtime":
			v, ok := u.readInt64(tokens, i+1)
			if !ok {
				return limits, false
			}
			limits.WhiteTime = time.Duration(v) * time.Millisecond
			i += 2
		case "btime":
			v, ok := u.readInt64(tokens, i+1)
			if !ok {
				return limits, false
			}
			limits.BlackTime = time.Duration(v) * time.Millisecond
			i += 2
		case "winc":
			v, ok := u.readInt64(tokens, i+1)
			if !ok {
				return limits, false
			}
			limits.WhiteInc = time.Duration(v) * time.Millisecond
			i += 2
		case "binc":
			v, ok := u.readInt64(tokens, i+1)
			if !ok {
				return limits, false
			}
			limits.BlackInc = time.Duration(v) * time.Millisecond
			i += 2
		case "movestogo":
			v, ok := u.readInt(tokens, i+1)
			if !ok {
				return limits, false
			}
			limits.MovesToGo = v
			i += 2
		default:
			u.sendInfoString("go: unknown subcommand " + tokens[i])
			return limits, false
		}
	}
	return limits, true
}

func (u *UciHandler) readInt(tokens []string, i int) (int, bool) {
	if i >= len(tokens) {
		u.sendInfoString("go: missing value")
		return 0, false
	}
	v, err := strconv.Atoi(tokens[i])
	if err != nil {
		u.sendInfoString("go: not a number: " + tokens[i])
		return 0, false
	}
	return v, true
}

func (u *UciHandler) readInt64(tokens []string, i int) (int64, bool) {
	if i >= len(tokens) {
		u.sendInfoString("go: missing value")
		return 0, false
	}
	v, err := strconv.ParseInt(tokens[i], 10, 64)
	if err != nil {
		u.sendInfoString("go: not a number: " + tokens[i])
		return 0, false
	}
	return v, true
}

func (u *UciHandler) sendInfoString(s string) {
	u.send("info string " + s)
}

func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
