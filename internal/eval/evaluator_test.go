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

package eval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwm4030/nuvo-chess/config"
	"github.com/cwm4030/nuvo-chess/internal/position"
)

func TestEvaluateStartPositionScoresOnlyTempo(t *testing.T) {
	p := position.New()
	assert.Equal(t, config.Settings.Eval.Tempo, int(Evaluate(p)), "material and PSQT cancel out; only the side-to-move tempo bonus remains")
}

func TestEvaluateFavoursMaterialAdvantage(t *testing.T) {
	p, err := position.NewFen("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, Evaluate(p) > 0, "an extra queen must score as an advantage for White")
}

// mirrorFen swaps colours and flips ranks top to bottom, the construction
// the anti-symmetry property relies on.
func mirrorFen(fen string) string {
	fields := strings.Fields(fen)
	ranks := strings.Split(fields[0], "/")
	mirroredRanks := make([]string, len(ranks))
	for i, r := range ranks {
		mirroredRanks[len(ranks)-1-i] = swapCase(r)
	}
	board := strings.Join(mirroredRanks, "/")

	side := "w"
	if fields[1] == "w" {
		side = "b"
	}

	castling := swapCase(fields[2])

	ep := fields[3]
	if ep != "-" {
		file := ep[0]
		rank := ep[1]
		mirroredRank := byte('1' + ('8' - rank))
		ep = string(file) + string(mirroredRank)
	}

	return board + " " + side + " " + castling + " " + ep + " " + fields[4] + " " + fields[5]
}

func swapCase(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z':
			out[i] = c - 'A' + 'a'
		default:
			out[i] = c
		}
	}
	return string(out)
}

func TestEvaluateAntiSymmetryUnderMirror(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}
	for _, fen := range fens {
		p, err := position.NewFen(fen)
		require.NoError(t, err)
		mirrored, err := position.NewFen(mirrorFen(fen))
		require.NoError(t, err, "mirrored fen %q", mirrorFen(fen))
		assert.Equal(t, Evaluate(p), -Evaluate(mirrored), "fen %q", fen)
	}
}
