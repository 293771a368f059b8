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

import "fmt"

// Color represents the two sides of a chess game.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// ColorLength is the number of colours.
const ColorLength = 2

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < ColorLength
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var pawnDir = [ColorLength]Direction{North, South}

// MoveDirection returns the direction a pawn of this color pushes.
func (c Color) MoveDirection() Direction {
	return pawnDir[c]
}

var promRank = [ColorLength]Rank{Rank8, Rank1}

// PromotionRankBb returns the rank on which this color promotes.
func (c Color) PromotionRankBb() Bitboard {
	return promRank[c].Bb()
}

// PromotionRank returns the rank on which this color promotes.
func (c Color) PromotionRank() Rank {
	return promRank[c]
}

var doublePushRank = [ColorLength]Rank{Rank4, Rank5}

// DoublePushRankBb returns the rank a pawn of this color lands on after a
// double push.
func (c Color) DoublePushRankBb() Bitboard {
	return doublePushRank[c].Bb()
}

var startRank = [ColorLength]Rank{Rank2, Rank7}

// PawnStartRankBb returns the rank pawns of this color start the game on.
func (c Color) PawnStartRankBb() Bitboard {
	return startRank[c].Bb()
}
