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

import (
	"strconv"
	"strings"
)

// Value is a centipawn evaluation or search score.
type Value int16

// Constants for values. MATE sits well below the int16 maximum so that
// mate-in-N scores (MATE - N) never approach overflow, and -MATE remains
// representable.
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueInf       Value = 15_000
	ValueNA        Value = -ValueInf - 1
	Mate           Value = 10_000
	ValueMax       Value = Mate
	ValueMin       Value = -ValueMax
	MateThreshold  Value = Mate - MaxPly - 1
)

// IsValid reports whether v is within the representable score range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsMateValue reports whether v represents a forced mate.
func (v Value) IsMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > MateThreshold && a <= Mate
}

func abs16(v Value) Value {
	if v < 0 {
		return -v
	}
	return v
}

// String renders the value the way UCI "info score" does: "cp <n>" or
// "mate <n>".
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsMateValue():
		b.WriteString("mate ")
		plies := Mate - abs16(v)
		moves := (int(plies) + 1) / 2
		if v < 0 {
			moves = -moves
		}
		b.WriteString(strconv.Itoa(moves))
	case v == ValueNA:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
