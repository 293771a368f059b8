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
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit word with one bit per square: bit i set iff the
// predicate holds on square i.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// BbAll has every square set.
const BbAll Bitboard = 0xffffffffffffffff

// PushSquare sets the bit for sq and returns the new value.
func PushSquare(b Bitboard, sq Square) Bitboard {
	return b | sq.Bb()
}

// PushSquare sets the bit for sq in place.
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b |= sq.Bb()
	return *b
}

// PopSquare clears the bit for sq and returns the new value.
func PopSquare(b Bitboard, sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PopSquare clears the bit for sq in place.
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b = *b &^ sq.Bb()
	return *b
}

// Toggle flips the bit for sq in place.
func (b *Bitboard) Toggle(sq Square) Bitboard {
	*b ^= sq.Bb()
	return *b
}

// Has reports whether the bit for sq is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the least significant set bit. Undefined for
// b == 0; callers must guard with b != 0.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the index of the most significant set bit. Undefined for
// b == 0; callers must guard with b != 0.
func (b Bitboard) Msb() Square {
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set bit's square.
// Undefined for *b == 0.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	b.PopSquare(sq)
	return sq
}

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// any bits that would wrap around a board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & FileHMask) << 1
	case West:
		return (b & FileAMask) >> 1
	case Northeast:
		return (b & FileHMask) << 9
	case Southeast:
		return (b & FileHMask) >> 7
	case Southwest:
		return (b & FileAMask) >> 9
	case Northwest:
		return (b & FileAMask) << 7
	}
	return b
}

// String renders the bitboard as an 8x8 grid, rank 8 first, for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := FileA; f < FileLength; f++ {
			sq := SquareOf(f, Rank(r))
			if b.Has(sq) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
