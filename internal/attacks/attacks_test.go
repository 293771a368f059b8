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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwm4030/nuvo-chess/internal/types"
)

func TestRookAttacksCorners(t *testing.T) {
	got := Bb(types.Rook, types.SqA1, types.BbZero)
	assert.True(t, got.Has(types.SqA8))
	assert.True(t, got.Has(types.SqH1))
	assert.False(t, got.Has(types.SqB2))
}

func TestBishopAttacksBlockedByOccupancy(t *testing.T) {
	occ := types.SqC3.Bb()
	got := Bb(types.Bishop, types.SqA1, occ)
	assert.True(t, got.Has(types.SqB2))
	assert.True(t, got.Has(types.SqC3))
	assert.False(t, got.Has(types.SqD4))
}

func TestQueenAttacksUnionRookAndBishop(t *testing.T) {
	got := Bb(types.Queen, types.SqD4, types.BbZero)
	require.Equal(t, Bb(types.Rook, types.SqD4, types.BbZero)|Bb(types.Bishop, types.SqD4, types.BbZero), got)
}

func TestKnightAttacksFromCorner(t *testing.T) {
	got := Bb(types.Knight, types.SqA1, types.BbZero)
	assert.Equal(t, 2, got.PopCount())
	assert.True(t, got.Has(types.SqB3))
	assert.True(t, got.Has(types.SqC2))
}

func TestKingAttacksFromCenter(t *testing.T) {
	got := Bb(types.King, types.SqE4, types.BbZero)
	assert.Equal(t, 8, got.PopCount())
}

func TestPawnAttacksDifferByColor(t *testing.T) {
	white := PawnAttacks(types.White, types.SqE4)
	black := PawnAttacks(types.Black, types.SqE4)
	assert.True(t, white.Has(types.SqD5))
	assert.True(t, white.Has(types.SqF5))
	assert.True(t, black.Has(types.SqD3))
	assert.True(t, black.Has(types.SqF3))
}

func TestBetweenOnRank(t *testing.T) {
	got := Between(types.SqA1, types.SqD1)
	assert.Equal(t, types.SqB1.Bb()|types.SqC1.Bb(), got)
}

func TestBetweenUnaligned(t *testing.T) {
	assert.Equal(t, types.BbZero, Between(types.SqA1, types.SqB3))
}

func TestBetweenAdjacentIsEmpty(t *testing.T) {
	assert.Equal(t, types.BbZero, Between(types.SqA1, types.SqB1))
}
