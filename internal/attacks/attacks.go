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

package attacks

import (
	"github.com/cwm4030/nuvo-chess/internal/types"
)

// Bb returns the set of squares attacked by a piece of type pt standing on
// sq, given the board's full occupancy. pt must not be Pawn; pawns attack
// differently depending on color, use PawnAttacks instead.
func Bb(pt types.PieceType, sq types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occupied)]
	case types.Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occupied)]
	case types.Queen:
		mb := &bishopMagics[sq]
		mr := &rookMagics[sq]
		return mb.Attacks[mb.index(occupied)] | mr.Attacks[mr.index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}

// PawnAttacks returns the squares a pawn of color c standing on sq attacks.
func PawnAttacks(c types.Color, sq types.Square) types.Bitboard {
	return pawnAttacksTable[c][sq]
}

// Between returns the squares strictly between from and to if they lie on a
// common rank, file or diagonal, BbZero otherwise. Used to test whether a
// piece blocks a check or pin.
//
// For the slider type (rook or bishop) on whose lines the two squares are
// aligned, intersecting its attacks from each endpoint, each blocked by the
// other endpoint, leaves exactly the open segment between them.
func Between(from, to types.Square) types.Bitboard {
	if from == to {
		return types.BbZero
	}
	for _, pt := range [2]types.PieceType{types.Rook, types.Bishop} {
		if Bb(pt, from, types.BbZero).Has(to) {
			return Bb(pt, from, to.Bb()) & Bb(pt, to, from.Bb())
		}
	}
	return types.BbZero
}
