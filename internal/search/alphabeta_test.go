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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwm4030/nuvo-chess/internal/movegen"
	"github.com/cwm4030/nuvo-chess/internal/position"
	"github.com/cwm4030/nuvo-chess/internal/types"
)

// Ra1-a8 traps the black king behind its own f7/g7/h7 pawns: the rook
// covers every square on the back rank, so the move is mate in one.
func TestSearchFindsBackRankMateInOne(t *testing.T) {
	p, err := position.NewFen("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	s := NewSearch()
	s.StartSearch(p, Limits{Depth: 2})
	s.WaitWhileSearching()

	result := s.LastResult()
	assert.Equal(t, "a1a8", result.BestMove.UciString())
	assert.True(t, result.BestValue.IsMateValue(), "winning a rank-8 mate should score as a forced mate")
	assert.True(t, result.BestValue > 0, "the mate favours White")
}

// With colours reversed the same pattern is winning for Black: the search
// must pick the mating move regardless of which side is to move, since
// scores are always reported from White's point of view.
func TestSearchFindsBackRankMateInOneForBlack(t *testing.T) {
	p, err := position.NewFen("r3k3/8/8/8/8/8/5PPP/6K1 b - - 0 1")
	require.NoError(t, err)

	s := NewSearch()
	s.StartSearch(p, Limits{Depth: 2})
	s.WaitWhileSearching()

	result := s.LastResult()
	assert.Equal(t, "a8a1", result.BestMove.UciString())
	assert.True(t, result.BestValue.IsMateValue())
	assert.True(t, result.BestValue < 0, "the mate favours Black")
}

// Stalemate is a draw, not a loss: the king has no legal move and is not
// in check. Queen on g6 covers g7, g8 and h7 without itself attacking h8.
func TestSearchScoresStalemateAsDraw(t *testing.T) {
	p, err := position.NewFen("7k/8/6Q1/8/8/8/8/3K4 b - - 0 1")
	require.NoError(t, err)

	legal, checkCount := movegen.GenerateLegal(p, movegen.GenAll)
	require.Equal(t, 0, legal.Len())
	require.Equal(t, 0, checkCount)

	s := NewSearch()
	s.StartSearch(p, Limits{Depth: 2})
	s.WaitWhileSearching()

	assert.Equal(t, types.ValueDraw, s.LastResult().BestValue)
}

func TestMvvLvaOrdersTheOnlyCaptureFirst(t *testing.T) {
	p, err := position.NewFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	legal, _ := movegen.GenerateLegal(p, movegen.GenAll)
	orderByMvvLva(p, legal)

	assert.Equal(t, "e4d5", legal.At(0).UciString(), "the only capture must sort ahead of every quiet king move")
}
