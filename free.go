// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"errors"
	"fmt"
)

// Reasons a Free call can be rejected. They are never returned to the
// caller; Free absorbs them, counts them, and reports them through the
// handler installed with WithInvalidFreeHandler. Use errors.Is against the
// handler's argument to distinguish them.
var (
	// ErrInvalidPointer marks a reference whose header would lie outside
	// the arena.
	ErrInvalidPointer = errors.New("pointer outside arena bounds")

	// ErrDoubleFree marks a reference whose block is already free.
	ErrDoubleFree = errors.New("block already free")

	// ErrCorruptHeader marks a reference whose header carries a zero size.
	ErrCorruptHeader = errors.New("corrupt zero-size header")
)

// Free releases the block whose payload starts at p. The block is marked
// free and, if the immediately following block is also free, the two are
// merged into one. Only that single forward merge happens per call: a freed
// block is never merged with a free predecessor.
//
// Free(NilPtr) is a no-op. Invalid references are rejected without touching
// the arena, see WithInvalidFreeHandler.
func (a *Arena) Free(p Ptr) {
	if p == NilPtr {
		return
	}

	c := a.capWords()
	off := uint32(p) - 1
	// The last valid header position is c-2: a live block needs at least
	// one payload word after its header.
	if off >= c-1 {
		a.rejectFree(p, ErrInvalidPointer)
		return
	}
	h := a.header(off)
	if !h.allocated() {
		a.rejectFree(p, ErrDoubleFree)
		return
	}
	sz := h.size()
	if sz == 0 {
		a.rejectFree(p, ErrCorruptHeader)
		return
	}

	a.setHeader(off, packHeader(sz, false))
	a.allocatedWords -= sz

	// Forward coalesce: absorb the next block if it exists and is free.
	// An allocated or zero-size successor is left alone.
	next := off + sz
	if next < c {
		nh := a.header(next)
		if !nh.allocated() && nh.size() != 0 {
			a.setHeader(off, packHeader(sz+nh.size(), false))
		}
	}
}

func (a *Arena) rejectFree(p Ptr, reason error) {
	a.invalidFrees++
	if a.onInvalidFree != nil {
		a.onInvalidFree(fmt.Errorf("arena: free of ptr %d: %w", uint32(p), reason))
	}
}
