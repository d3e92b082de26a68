// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "sync"

// Cursor tracks which proposal a session is looking at in the single-item
// voting view. It initializes to the newest proposal on the first count it
// observes and after that moves only by explicit navigation, so background
// re-polls never yank the view to a newly created proposal. All transitions
// saturate at [1, count].
type Cursor struct {
	mu          sync.Mutex
	current     uint64
	initialized bool
}

// Observe feeds the latest known proposal count. The first non-zero count
// initializes the cursor to it; later counts are ignored.
func (c *Cursor) Observe(count uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized && count > 0 {
		c.current = count
		c.initialized = true
	}
}

// Current returns the cursor position, 0 if no count has been observed yet.
func (c *Cursor) Current() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Prev moves toward older proposals, stopping at 1.
func (c *Cursor) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized && c.current > 1 {
		c.current--
	}
}

// Next moves toward newer proposals, stopping at the given count.
func (c *Cursor) Next(count uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized && c.current < count {
		c.current++
	}
}
