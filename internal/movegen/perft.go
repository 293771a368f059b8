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

package movegen

import "github.com/cwm4030/nuvo-chess/internal/position"

// Perft counts the leaf nodes of the full game tree to the given depth,
// walking every legal move with DoMove/UndoMove. It exists to validate
// move generation against known node counts for standard test positions,
// not for engine use.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	legal, _ := GenerateLegal(p, GenAll)
	if depth == 1 {
		return uint64(legal.Len())
	}
	var nodes uint64
	legal.ForEach(func(i int) {
		m := legal.At(i)
		p.DoMove(m)
		nodes += Perft(p, depth-1)
		p.UndoMove()
	})
	return nodes
}
