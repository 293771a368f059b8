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

// Package attacks precomputes the lookup tables the move generator and
// search need to answer "what does a piece on square X attack" in O(1):
// fancy magic bitboards for the sliding pieces and flat tables for king,
// knight and pawn attacks. Everything here is pure precomputation, run
// once from init(); callers never allocate.
package attacks

import (
	"github.com/cwm4030/nuvo-chess/internal/types"
)

// Magic holds the fancy-magic-bitboard lookup data for one square of one
// sliding piece type.
type Magic struct {
	Mask    types.Bitboard
	Number  types.Bitboard
	Attacks []types.Bitboard
	Shift   uint
}

func (m *Magic) index(occupied types.Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	occ >>= m.Shift
	return uint(occ)
}

var (
	rookTable  []types.Bitboard
	bishopTable []types.Bitboard

	rookMagics   [types.SqLength]Magic
	bishopMagics [types.SqLength]Magic

	pseudoAttacks [types.PtLength][types.SqLength]types.Bitboard
	pawnAttacksTable [types.ColorLength][types.SqLength]types.Bitboard
)

func init() {
	precomputeNonSliders()
	rookTable = make([]types.Bitboard, 0x19000)
	bishopTable = make([]types.Bitboard, 0x1480)
	initMagics(rookTable, &rookMagics, &types.RookDirections)
	initMagics(bishopTable, &bishopMagics, &types.BishopDirections)
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		pseudoAttacks[types.Rook][sq] = rookMagics[sq].Attacks[rookMagics[sq].index(types.BbZero)]
		pseudoAttacks[types.Bishop][sq] = bishopMagics[sq].Attacks[bishopMagics[sq].index(types.BbZero)]
		pseudoAttacks[types.Queen][sq] = pseudoAttacks[types.Rook][sq] | pseudoAttacks[types.Bishop][sq]
	}
}

// knightSteps are the eight (file, rank) deltas of a knight move. These
// aren't expressible as a single types.Direction step (a knight move isn't
// one square), so they're applied directly to file/rank instead of through
// Square.To.
var knightSteps = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// precomputeNonSliders fills in pseudoAttacks for King and Knight, and the
// per-color pawn attack table. Sliding piece entries are filled in later,
// once the magic tables exist, by reading the attack set for an empty
// board out of the magic tables themselves.
func precomputeNonSliders() {
	kingSteps := types.Directions[:]

	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		for _, d := range kingSteps {
			to := sq.To(d)
			if to.IsValid() && types.SquareDistance(sq, to) == 1 {
				pseudoAttacks[types.King][sq].PushSquare(to)
			}
		}
		f, r := int(sq.FileOf()), int(sq.RankOf())
		for _, step := range knightSteps {
			nf, nr := f+step[0], r+step[1]
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				continue
			}
			to := types.SquareOf(types.File(nf), types.Rank(nr))
			pseudoAttacks[types.Knight][sq].PushSquare(to)
		}
		for _, c := range []types.Color{types.White, types.Black} {
			pawnDir := c.MoveDirection()
			for _, d := range []types.Direction{pawnDir + types.East, pawnDir + types.West} {
				to := sq.To(d)
				if to.IsValid() && types.SquareDistance(sq, to) == 1 {
					pawnAttacksTable[c][sq].PushSquare(to)
				}
			}
		}
	}
}

// initMagics computes fancy magic bitboards for all squares of one sliding
// piece type. Taken almost verbatim from Stockfish's magic bitboard
// generator (the "fancy" approach); see
// https://www.chessprogramming.org/Magic_Bitboards.
func initMagics(table []types.Bitboard, magics *[types.SqLength]Magic, directions *[4]types.Direction) {
	seeds := [types.RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy [4096]types.Bitboard
	var reference [4096]types.Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		edges := ((types.Rank1Mask | types.Rank8Mask) &^ sq.RankOf().Bb()) |
			((types.FileA.Bb() | types.FileH.Bb()) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, types.BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == types.SqA1 {
			m.Attacks = table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		b := types.Bitboard(0)
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.Number = 0; ; {
				m.Number = types.Bitboard(rng.sparseRand())
				if ((m.Number * m.Mask) >> 56).PopCount() < 6 {
					continue
				}
				break
			}

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks each of the given ray directions from sq one square
// at a time, stopping at the board edge or at the first occupied square
// (inclusive, so the blocker itself is marked attacked). Only used during
// precomputation; move generation and search go through the magic tables.
func slidingAttack(directions *[4]types.Direction, sq types.Square, occupied types.Bitboard) types.Bitboard {
	var attack types.Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() || types.SquareDistance(s, next) != 1 {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// prnG is the special-purpose generator used only to find magic numbers
// quickly; taken from Stockfish.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns values with roughly 1/8th of their bits set on
// average, which converges to a working magic number much faster than a
// uniformly distributed 64-bit value.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
