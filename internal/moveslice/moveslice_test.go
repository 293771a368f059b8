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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwm4030/nuvo-chess/internal/types"
)

func TestNew(t *testing.T) {
	ms := New(10)
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 10, ms.Cap())
}

func TestPushBackPopBack(t *testing.T) {
	ms := New(5)
	m1 := types.NewMove(types.SqE2, types.SqE4, types.Normal, types.PieceNone)
	m2 := types.NewMove(types.SqD2, types.SqD4, types.Normal, types.PieceNone)
	ms.PushBack(m1)
	ms.PushBack(m2)
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, m2, ms.PopBack())
	assert.Equal(t, m1, ms.PopBack())
	assert.Equal(t, 0, ms.Len())
}

func TestAtSet(t *testing.T) {
	ms := New(5)
	m1 := types.NewMove(types.SqE2, types.SqE4, types.Normal, types.PieceNone)
	m2 := types.NewMove(types.SqD2, types.SqD4, types.Normal, types.PieceNone)
	ms.PushBack(m1)
	assert.Equal(t, m1, ms.At(0))
	ms.Set(0, m2)
	assert.Equal(t, m2, ms.At(0))
}

func TestClear(t *testing.T) {
	ms := New(5)
	ms.PushBack(types.NewMove(types.SqE2, types.SqE4, types.Normal, types.PieceNone))
	cp := ms.Cap()
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, cp, ms.Cap())
}

func TestClone(t *testing.T) {
	ms := New(5)
	ms.PushBack(types.NewMove(types.SqE2, types.SqE4, types.Normal, types.PieceNone))
	other := ms.Clone()
	other.PushBack(types.NewMove(types.SqD2, types.SqD4, types.Normal, types.PieceNone))
	assert.Equal(t, 1, ms.Len())
	assert.Equal(t, 2, other.Len())
}

func TestSortOrdersByDescendingValue(t *testing.T) {
	ms := New(3)
	low := types.NewMove(types.SqA2, types.SqA3, types.Normal, types.PieceNone).SetValue(10)
	mid := types.NewMove(types.SqB2, types.SqB3, types.Normal, types.PieceNone).SetValue(50)
	high := types.NewMove(types.SqC2, types.SqC3, types.Normal, types.PieceNone).SetValue(100)
	ms.PushBack(low)
	ms.PushBack(high)
	ms.PushBack(mid)
	ms.Sort()
	assert.Equal(t, high.ValueOf(), ms.At(0).ValueOf())
	assert.Equal(t, mid.ValueOf(), ms.At(1).ValueOf())
	assert.Equal(t, low.ValueOf(), ms.At(2).ValueOf())
}

func TestForEachVisitsEveryIndex(t *testing.T) {
	ms := New(3)
	ms.PushBack(types.NewMove(types.SqA2, types.SqA3, types.Normal, types.PieceNone))
	ms.PushBack(types.NewMove(types.SqB2, types.SqB3, types.Normal, types.PieceNone))
	seen := make([]int, 0, 2)
	ms.ForEach(func(index int) {
		seen = append(seen, index)
	})
	assert.Equal(t, []int{0, 1}, seen)
}

func TestStringUci(t *testing.T) {
	ms := New(2)
	ms.PushBack(types.NewMove(types.SqE2, types.SqE4, types.Normal, types.PieceNone))
	ms.PushBack(types.NewMove(types.SqA7, types.SqA8, types.Promotion, types.Queen))
	assert.Equal(t, "e2e4 a7a8q", ms.StringUci())
}
