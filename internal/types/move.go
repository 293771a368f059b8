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

package types

import (
	"strings"
)

// MoveType distinguishes the handling a Move needs at make/unmake time:
// Position.DoMove and UndoMove branch on the tag for castling, promotion
// and en passant. Carrying it on the move also lets search and UI code
// print or order a move without the Position at hand.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// Move is a packed 32-bit encoding of a chess move plus an optional 16-bit
// sort value used by move ordering:
//
//	|-- value (16 bits) -----------|-- move (16 bits) -------------|
//	bit31 .......................16 15 ....................... 0
//	                                |2|2|6      |6      |
//	                                |ty|promo|from   |to     |
//
// 6 bits "to", 6 bits "from", 2 bits promotion piece type (Knight..Queen
// mapped to 0..3), 2 bits move type, 16 bits signed sort value.
type Move uint32

// MoveNone is the zero value: an invalid, empty move.
const MoveNone Move = 0

const (
	toShift       = 0
	toMask        = Move(0x3f) << toShift
	fromShift     = 6
	fromMask      = Move(0x3f) << fromShift
	promTypeShift = 12
	promTypeMask  = Move(0x3) << promTypeShift
	typeShift     = 14
	typeMask      = Move(0x3) << typeShift
	moveMask      = Move(0xffff)
	valueShift    = 16
	valueMask     = Move(0xffff) << valueShift
)

// NewMove encodes a move with no sort value.
func NewMove(from, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// MoveType returns the move's type tag.
func (m Move) MoveType() MoveType {
	return MoveType((m & typeMask) >> typeShift)
}

// PromotionType returns the promotion piece type. Only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// MoveOf strips the sort value, leaving only the move encoding.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the embedded sort value.
func (m Move) ValueOf() Value {
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// SetValue encodes a sort value into the high 16 bits and returns the
// result; MoveNone is left unchanged since there is nothing to sort.
func (m Move) SetValue(v Value) Move {
	if m == MoveNone {
		return m
	}
	return m&moveMask | Move(v-ValueNA)<<valueShift
}

// IsValid reports whether m encodes real squares and a sane promotion type.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// UciString renders the move in long algebraic UCI notation, e.g. "e2e4"
// or "a7a8q".
func (m Move) UciString() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

func (m Move) String() string {
	return m.UciString()
}
