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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwm4030/nuvo-chess/internal/position"
)

// Node counts are the well known perft values for the standard starting
// position, Kiwipete, and positions 3 and 4 from the perft reference suite.
func TestPerftStartPosition(t *testing.T) {
	p := position.New()
	want := []uint64{1, 20, 400, 8902, 197281}
	for depth, w := range want {
		assert.Equal(t, w, Perft(p, depth), "perft(%d) start position", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	p, err := position.NewFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	want := []uint64{1, 48, 2039, 97862}
	for depth, w := range want {
		assert.Equal(t, w, Perft(p, depth), "perft(%d) kiwipete", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	p, err := position.NewFen("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)
	want := []uint64{1, 14, 191, 2812, 43238}
	for depth, w := range want {
		assert.Equal(t, w, Perft(p, depth), "perft(%d) position 3", depth)
	}
}

func TestPerftPosition4(t *testing.T) {
	p, err := position.NewFen("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	require.NoError(t, err)
	want := []uint64{1, 6, 264, 9467}
	for depth, w := range want {
		assert.Equal(t, w, Perft(p, depth), "perft(%d) position 4", depth)
	}
}
