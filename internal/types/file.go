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

// File is one of the eight files (columns) of a chess board, a..h.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

// FileLength is the number of files on the board.
const FileLength = 8

// IsValid reports whether f is one of the eight real files.
func (f File) IsValid() bool {
	return f < FileLength
}

// Bb returns the bitboard with every square of the file set.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

var fileBb [FileLength]Bitboard

func init() {
	for f := FileA; f < FileLength; f++ {
		var bb Bitboard
		for r := Rank(0); r < RankLength; r++ {
			bb |= SquareOf(f, r).Bb()
		}
		fileBb[f] = bb
	}
}

// Masks for the edge files, used by shift-based attack construction.
const (
	FileAMask Bitboard = 0xfefefefefefefefe // all but file A
	FileHMask Bitboard = 0x7f7f7f7f7f7f7f7f // all but file H
)
