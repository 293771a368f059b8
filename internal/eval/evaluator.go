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

// Package eval provides a stateless static evaluation of a position:
// material plus per-piece-kind piece-square tables, scored from White's
// point of view.
package eval

import (
	"github.com/cwm4030/nuvo-chess/config"
	"github.com/cwm4030/nuvo-chess/internal/position"
	"github.com/cwm4030/nuvo-chess/internal/types"
)

var evaluatedTypes = [5]types.PieceType{types.Pawn, types.Knight, types.Bishop, types.Rook, types.Queen}

// Evaluate returns the static value of p from White's point of view:
// positive favours White, negative favours Black.
func Evaluate(p *position.Position) types.Value {
	var score types.Value

	for _, pt := range evaluatedTypes {
		table := tableFor(pt)
		whiteCount := 0
		blackCount := 0

		white := p.PiecesBb(types.White, pt)
		for white != 0 {
			sq := white.PopLsb()
			whiteCount++
			score += table[mirrorIndex(types.White, sq)]
		}

		black := p.PiecesBb(types.Black, pt)
		for black != 0 {
			sq := black.PopLsb()
			blackCount++
			score -= table[mirrorIndex(types.Black, sq)]
		}

		score += types.Value(whiteCount-blackCount) * pt.ValueOf()
	}

	tempo := types.Value(config.Settings.Eval.Tempo)
	if p.NextPlayer() == types.White {
		score += tempo
	} else {
		score -= tempo
	}

	return score
}
