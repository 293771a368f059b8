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

// Rank is one of the eight ranks (rows) of a chess board, 1..8.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

// RankLength is the number of ranks on the board.
const RankLength = 8

// IsValid reports whether r is one of the eight real ranks.
func (r Rank) IsValid() bool {
	return r < RankLength
}

// Bb returns the bitboard with every square of the rank set.
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

var rankBb [RankLength]Bitboard

func init() {
	for r := Rank1; r < RankLength; r++ {
		var bb Bitboard
		for f := File(0); f < FileLength; f++ {
			bb |= SquareOf(f, r).Bb()
		}
		rankBb[r] = bb
	}
}

const (
	Rank1Mask Bitboard = 0x00000000000000ff
	Rank2Mask Bitboard = 0x000000000000ff00
	Rank3Mask Bitboard = 0x0000000000ff0000
	Rank6Mask Bitboard = 0x0000ff0000000000
	Rank7Mask Bitboard = 0x00ff000000000000
	Rank8Mask Bitboard = 0xff00000000000000
)
