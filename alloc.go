// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"errors"
)

// ErrNoMem is returned by Alloc when no free block is large enough to
// satisfy the request, or when the request exceeds the arena capacity
// outright. The arena is left unmodified in either case.
var ErrNoMem = errors.New("arena: out of memory")

// Alloc allocates at least size bytes, rounded up to whole words, and
// returns the word offset of the payload. The block chain is scanned from
// the start of the arena and the first free block large enough is taken
// (first-fit). If the block is larger than needed and the remainder can hold
// a header plus at least one payload word, the block is split and the tail
// becomes a new free block; otherwise the caller gets the whole block.
//
// size <= 0 returns (NilPtr, nil).
func (a *Arena) Alloc(size int) (Ptr, error) {
	if size <= 0 {
		return NilPtr, nil
	}
	if uint64(size) > uint64(len(a.words))*WordSize {
		return NilPtr, ErrNoMem
	}

	payloadWords := (uint32(size) + WordSize - 1) / WordSize
	need := payloadWords + 1 // payload plus this block's header word
	if need > a.capWords() {
		return NilPtr, ErrNoMem
	}

	a.ensureInit()

	off, ok := a.findBlock(need)
	if !ok {
		return NilPtr, ErrNoMem
	}

	found := a.header(off).size()
	if remainder := found - need; remainder >= minBlockWords {
		a.setHeader(off, packHeader(need, true))
		a.setHeader(off+need, packHeader(remainder, false))
	} else {
		// Too small to stand alone as a block; hand the caller the slack
		// instead of creating a degenerate zero-payload neighbor.
		a.setHeader(off, packHeader(found, true))
	}

	a.allocatedWords += a.header(off).size()
	if a.allocatedWords > a.peakWords {
		a.peakWords = a.allocatedWords
	}
	return Ptr(off + 1), nil
}

// findBlock walks the block chain in address order looking for the first
// free block of at least need words, need counting the header. The walk
// stops once the remaining arena cannot hold a block of the required size.
// A zero size field means the chain is corrupt; the walk stops rather than
// looping in place.
func (a *Arena) findBlock(need uint32) (uint32, bool) {
	c := a.capWords()
	for off := uint32(0); off+need <= c; {
		h := a.header(off)
		sz := h.size()
		if sz == 0 {
			return 0, false
		}
		if !h.allocated() && sz >= need {
			return off, true
		}
		off += sz
	}
	return 0, false
}
