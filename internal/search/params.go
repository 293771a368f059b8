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

// This file holds static move-ordering parameters, kept separate from the
// search algorithm itself since they're tuning data rather than control
// flow.
package search

import (
	"github.com/cwm4030/nuvo-chess/internal/position"
	"github.com/cwm4030/nuvo-chess/internal/types"
)

// mvvLva scores a move for ordering: most valuable victim first, and among
// equal victims, least valuable attacker first. Non-captures score 0 so
// they sort after every capture; en passant looks up the captured pawn's
// square rather than the (empty) destination square.
func mvvLva(p *position.Position, m types.Move) types.Value {
	to := m.To()
	if m.MoveType() == types.EnPassant {
		to = to.To(p.NextPlayer().Flip().MoveDirection())
	}
	victim := p.PieceAt(to).TypeOf()
	if victim == types.PtNone {
		return types.ValueZero
	}
	attacker := p.PieceAt(m.From()).TypeOf()
	// offset by the king's value so every capture, even one by the king,
	// scores above the 0 of a quiet move
	return 10*victim.ValueOf() - attacker.ValueOf() + types.King.ValueOf()
}

// orderByMvvLva embeds an MVV-LVA sort value into every move of ml and
// sorts it highest-first. Used for both the full pseudo-legal move list
// (captures float to the front, quiet moves keep generation order amongst
// themselves since they all score 0) and the capture-only list quiescence
// generates.
func orderByMvvLva(p *position.Position, ml interface {
	Len() int
	At(int) types.Move
	Set(int, types.Move)
	Sort()
}) {
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		ml.Set(i, m.SetValue(mvvLva(p, m)))
	}
	ml.Sort()
}
