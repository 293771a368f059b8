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

// Package moveslice provides a growable list of Move with the in-place
// insertion sort move ordering in search leans on.
package moveslice

import (
	"fmt"
	"strings"

	"github.com/cwm4030/nuvo-chess/internal/types"
)

// MoveSlice is a slice of moves with list-like helpers. The zero value is
// not usable; construct with New.
type MoveSlice []types.Move

// New creates an empty MoveSlice with the given capacity.
func New(cap int) *MoveSlice {
	moves := make([]types.Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the underlying array.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m types.Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the move at the back of the slice. Panics if
// the slice is empty.
func (ms *MoveSlice) PopBack() types.Move {
	if len(*ms) == 0 {
		panic("moveslice: PopBack on empty slice")
	}
	m := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return m
}

// At returns the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) At(i int) types.Move {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	return (*ms)[i]
}

// Set replaces the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) Set(i int, m types.Move) {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	(*ms)[i] = m
}

// Clear empties the slice but keeps its capacity, so a MoveSlice can be
// reused across search nodes without allocating.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Clone makes a deep copy of the slice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]types.Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// ForEach calls f with the index of every element, in order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for i := range *ms {
		f(i)
	}
}

// Sort orders moves from highest embedded sort value to lowest, using a
// stable insertion sort. Move lists from the generator are mostly
// pre-sorted and small (a few dozen moves), where insertion sort beats the
// overhead of a general-purpose sort.
func (ms *MoveSlice) Sort() {
	for i := 1; i < len(*ms); i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && tmp.ValueOf() > (*ms)[j-1].ValueOf() {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// String renders the list for debugging.
func (ms *MoveSlice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveSlice: [%d] { ", len(*ms))
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

// StringUci renders the list as a space separated sequence of UCI move
// strings, the format the "position ... moves ..." command expects.
func (ms *MoveSlice) StringUci() string {
	var b strings.Builder
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.UciString())
	}
	return b.String()
}
