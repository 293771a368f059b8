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
	"time"

	"github.com/stretchr/testify/assert"
)

func TestControllerStopsOnExplicitStop(t *testing.T) {
	c := NewController()
	c.Start(0, 0, 0)
	assert.False(t, c.ShouldStop(1, 0))
	c.Stop()
	assert.True(t, c.ShouldStop(1, 0))
}

func TestControllerStopsOnNodeBudget(t *testing.T) {
	c := NewController()
	c.Start(0, 1000, 0)
	assert.False(t, c.ShouldStop(1, 500))
	assert.True(t, c.ShouldStop(1, 1001))
}

func TestControllerStopsOnDepthBudget(t *testing.T) {
	c := NewController()
	c.Start(4, 0, 0)
	assert.False(t, c.ShouldStop(4, 0))
	assert.True(t, c.ShouldStop(5, 0))
}

func TestControllerStopsOnTimeBudget(t *testing.T) {
	c := NewController()
	c.Start(0, 0, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.True(t, c.ShouldStop(1, 0))
}

func TestControllerLatchesStopAcrossRestartOfTheSameIteration(t *testing.T) {
	c := NewController()
	c.Start(0, 0, 0)
	c.Stop()
	// Once latched, a fresh Start is required to search again.
	assert.True(t, c.ShouldStop(1, 0))
	c.Start(0, 0, 0)
	assert.False(t, c.ShouldStop(1, 0))
}
