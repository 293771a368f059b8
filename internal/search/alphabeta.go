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
	"github.com/cwm4030/nuvo-chess/internal/eval"
	"github.com/cwm4030/nuvo-chess/internal/movegen"
	"github.com/cwm4030/nuvo-chess/internal/position"
	"github.com/cwm4030/nuvo-chess/internal/types"
)

// stopCheckInterval is how many visited nodes pass between polls of the
// controller. Checking every node would put a mutex acquisition on the
// hottest path in the engine; checking this rarely still reacts to a stop
// well within a UCI user's patience.
const stopCheckInterval = 2048

// mateScore returns the score, from White's point of view, of the side to
// move being checkmated at the given ply: closer-to-root mates score
// further from zero so the search always prefers the faster mate.
func mateScore(sideToMove types.Color, ply int) types.Value {
	v := types.Mate - types.Value(ply)
	if sideToMove == types.White {
		return -v
	}
	return v
}

// search runs alpha-beta to depth, returning a score from White's point of
// view (positive favours White, negative favours Black) regardless of
// which side is to move at this node. White widens alpha as it improves on
// the maximum, Black narrows beta as it improves on the minimum; the two
// windows meet at the same alpha>=beta cutoff test either way.
func (s *Search) search(p *position.Position, depth, ply int, alpha, beta types.Value) types.Value {
	if p.HalfMoveClock() >= 50 {
		return types.ValueDraw
	}

	s.nodesVisited++
	if s.nodesVisited%stopCheckInterval == 0 && s.controller.ShouldStop(s.curDepth, s.nodesVisited) {
		return types.ValueDraw
	}

	legal, checkCount := movegen.GenerateLegal(p, movegen.GenAll)
	if legal.Len() == 0 {
		if checkCount > 0 {
			return mateScore(p.NextPlayer(), ply)
		}
		return types.ValueDraw
	}

	if p.IsPossibleThreefold() {
		return types.ValueDraw
	}

	if depth == 0 {
		return s.quiescence(p, ply, alpha, beta)
	}

	orderByMvvLva(p, legal)

	white := p.NextPlayer() == types.White
	best := types.ValueNA
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		p.DoMove(m)
		value := s.search(p, depth-1, ply+1, alpha, beta)
		p.UndoMove()

		if white {
			if best == types.ValueNA || value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if best == types.ValueNA || value < best {
				best = value
			}
			if value < beta {
				beta = value
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// quiescence extends the search along capture sequences past the nominal
// leaf depth so the static evaluation is never taken in the middle of a
// tactical exchange. Stand-pat (the side to move's option to make no
// capture at all) bounds the result against the window exactly like a
// move would.
func (s *Search) quiescence(p *position.Position, ply int, alpha, beta types.Value) types.Value {
	s.nodesVisited++
	if s.nodesVisited%stopCheckInterval == 0 && s.controller.ShouldStop(s.curDepth, s.nodesVisited) {
		return types.ValueDraw
	}

	standPat := eval.Evaluate(p)
	white := p.NextPlayer() == types.White

	if white {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return standPat
		}
		if standPat < beta {
			beta = standPat
		}
	}

	captures, _ := movegen.GenerateLegal(p, movegen.GenCapture)
	orderByMvvLva(p, captures)

	best := standPat
	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)
		p.DoMove(m)
		value := s.quiescence(p, ply+1, alpha, beta)
		p.UndoMove()

		if white {
			if value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if value < best {
				best = value
			}
			if value < beta {
				beta = value
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
