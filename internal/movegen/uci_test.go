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
	"github.com/cwm4030/nuvo-chess/internal/types"
)

func TestMoveFromUciFindsMatchingLegalMove(t *testing.T) {
	p := position.New()
	m := MoveFromUci(p, "e2e4")
	require.True(t, m.IsValid())
	assert.Equal(t, "e2e4", m.UciString())
}

func TestMoveFromUciHandlesPromotionSuffix(t *testing.T) {
	p, err := position.NewFen("8/P7/8/8/8/8/7k/K7 w - - 0 1")
	require.NoError(t, err)
	m := MoveFromUci(p, "a7a8q")
	require.True(t, m.IsValid())
	assert.Equal(t, types.Queen, m.PromotionType())
}

func TestMoveFromUciRejectsIllegalOrMalformedInput(t *testing.T) {
	p := position.New()
	assert.Equal(t, types.MoveNone, MoveFromUci(p, "e2e5"))
	assert.Equal(t, types.MoveNone, MoveFromUci(p, "not-a-move"))
}
