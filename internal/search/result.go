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

package search

import (
	"time"

	"github.com/cwm4030/nuvo-chess/internal/types"
)

// Result is the outcome of a search: the best move found, in what is
// reported as if no stop or limit had ever been hit. PonderMove is always
// MoveNone since this engine does not ponder.
type Result struct {
	BestMove    types.Move
	BestValue   types.Value
	PonderMove  types.Move
	SearchTime  time.Duration
	SearchDepth int
	Nodes       int64
}

func (r *Result) String() string {
	return Out.Sprintf("bestmove %s value %s depth %d nodes %d time %d ms",
		r.BestMove.UciString(), r.BestValue.String(), r.SearchDepth, r.Nodes, r.SearchTime.Milliseconds())
}

// Reporter is implemented by whoever drives the search (typically the UCI
// command loop) to receive progress and the final result. A nil Reporter
// is valid: Search simply keeps quiet.
type Reporter interface {
	SendInfoDepth(depth int, value types.Value, nodes int64, elapsed time.Duration)
	SendBestMove(best, ponder types.Move)
}
