// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"sync"
)

type concurrentArena struct {
	mtx sync.Mutex
	a   Allocator
}

// NewConcurrentArena returns an allocator that serializes all calls to the
// wrapped allocator with a mutex, making it safe to use from multiple
// goroutines. The wrapped allocator must not be used directly while the
// wrapper is in use.
func NewConcurrentArena(a Allocator) Allocator {
	return &concurrentArena{a: a}
}

// Alloc satisfies the Allocator interface.
func (c *concurrentArena) Alloc(size int) (Ptr, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.a.Alloc(size)
}

// Free satisfies the Allocator interface.
func (c *concurrentArena) Free(p Ptr) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.a.Free(p)
}

// Len returns the number of bytes currently allocated in the arena.
func (c *concurrentArena) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.a.Len()
}

// Cap returns the arena capacity in bytes.
func (c *concurrentArena) Cap() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.a.Cap()
}
