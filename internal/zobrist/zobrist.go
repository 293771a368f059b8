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

// Package zobrist precomputes the random keys used to incrementally hash a
// position for repetition detection. Keys are derived once at process
// start from a fixed seed so that two engine instances hash identical
// positions identically.
package zobrist

import (
	"github.com/cwm4030/nuvo-chess/internal/types"
)

// Key is a Zobrist hash value for a position.
type Key uint64

const seed uint64 = 1070372

// random is the xorshift64star generator used by Stockfish/FrankyGo to
// derive magic numbers and Zobrist keys. Dedicated to the public domain by
// Sebastiano Vigna (2014).
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	if seed == 0 {
		panic("zobrist: seed must not be 0")
	}
	return random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

var (
	pieceKeys         [types.PieceLength][types.SqLength]Key
	castlingKeys      [types.CastlingRightsLength]Key
	enPassantFileKeys [types.FileLength]Key
	sideToMoveKey     Key
)

func init() {
	r := newRandom(seed)
	for pc := types.PieceNone; pc < types.PieceLength; pc++ {
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			pieceKeys[pc][sq] = Key(r.rand64())
		}
	}
	for cr := types.CastlingNone; cr <= types.CastlingAny; cr++ {
		castlingKeys[cr] = Key(r.rand64())
	}
	for f := types.FileA; f <= types.FileH; f++ {
		enPassantFileKeys[f] = Key(r.rand64())
	}
	sideToMoveKey = Key(r.rand64())
}

// PieceKey returns the key contribution of piece pc standing on square sq.
func PieceKey(pc types.Piece, sq types.Square) Key {
	return pieceKeys[pc][sq]
}

// CastlingKey returns the key contribution of the given castling rights.
func CastlingKey(cr types.CastlingRights) Key {
	return castlingKeys[cr]
}

// EnPassantKey returns the key contribution of an en passant capture being
// available on file f. Callers must not call this for FileNone; positions
// with no en passant square simply omit this term.
func EnPassantKey(f types.File) Key {
	return enPassantFileKeys[f]
}

// SideToMoveKey returns the key contribution toggled whenever the side to
// move changes.
func SideToMoveKey() Key {
	return sideToMoveKey
}
