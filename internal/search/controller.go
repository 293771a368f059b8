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
	"sync"
	"time"
)

// Controller is the stop/budget governor shared between the protocol reader
// goroutine and the search goroutine. A single mutex guards its handful of
// fields; it is only touched at coarse boundaries (command dispatch, the
// search's periodic node-count checkpoint), never on the per-move hot path.
type Controller struct {
	mu       sync.Mutex
	stopFlag bool
	deadline time.Time
	maxDepth int
	maxNodes int64
}

// NewController returns an idle controller. Arm it with Start before a
// search begins.
func NewController() *Controller {
	return &Controller{}
}

// Start arms the controller for a new search. A zero maxDepth, maxNodes or
// timeBudget leaves that dimension unconstrained.
func (c *Controller) Start(maxDepth int, maxNodes int64, timeBudget time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopFlag = false
	c.maxDepth = maxDepth
	c.maxNodes = maxNodes
	if timeBudget > 0 {
		c.deadline = time.Now().Add(timeBudget)
	} else {
		c.deadline = time.Time{}
	}
}

// Stop requests that the running search unwind to the root and report its
// current best move as soon as possible.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopFlag = true
	c.mu.Unlock()
}

// ShouldStop reports whether the search should abandon the current
// iteration: the stop flag is set, the wall-clock deadline has passed,
// depth exceeds the configured maximum, or nodes exceeds the configured
// maximum. Once any of these trips, the flag latches so every later poll
// (and any concurrent one) agrees the search is over.
func (c *Controller) ShouldStop(currentDepth int, currentNodes int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopFlag {
		return true
	}
	switch {
	case !c.deadline.IsZero() && time.Now().After(c.deadline):
		c.stopFlag = true
	case c.maxDepth > 0 && currentDepth > c.maxDepth:
		c.stopFlag = true
	case c.maxNodes > 0 && currentNodes > c.maxNodes:
		c.stopFlag = true
	}
	return c.stopFlag
}
