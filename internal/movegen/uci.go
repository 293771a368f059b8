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
	"regexp"
	"strings"

	"github.com/cwm4030/nuvo-chess/internal/position"
	"github.com/cwm4030/nuvo-chess/internal/types"
)

var regexUciMove = regexp.MustCompile(`([a-h][1-8][a-h][1-8])([NBRQnbrq])?`)

// MoveFromUci generates every legal move for p and matches uciMove (e.g.
// "e2e4" or "e7e8q") against them, returning the matching move or MoveNone
// if uciMove is malformed or names no legal move. It is not efficient: it
// allocates and stringifies the full legal move list on every call, so it
// belongs on the UCI command path, not inside search.
func MoveFromUci(p *position.Position, uciMove string) types.Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return types.MoveNone
	}

	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 && matches[2] != "" {
		promotionPart = strings.ToLower(matches[2])
	}
	want := movePart + promotionPart

	legal, _ := GenerateLegal(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.UciString() == want {
			return m
		}
	}
	return types.MoveNone
}
