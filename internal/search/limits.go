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

import "time"

// Limits carries the budgets a "go" command places on a search: a time
// control (clock plus increment, or a flat move time), a depth, a node
// count, or an open-ended "infinite" search, which lifts every limit. A
// zero Depth, Nodes or clock field falls back to the matching
// config.Settings.Search default (DefaultDepth, DefaultNodes,
// DefaultMoveTime); when that default is not positive either, nodes and
// time are unconstrained and depth is capped at types.MaxPly.
type Limits struct {
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
	MoveTime  time.Duration
	MovesToGo int

	Depth int
	Nodes int64

	Infinite bool
}

// TimeControlled reports whether any clock-derived budget applies.
func (l *Limits) TimeControlled() bool {
	return l.MoveTime > 0 || l.WhiteTime > 0 || l.BlackTime > 0
}
