// SPDX-License-Identifier: Apache-2.0

// Package arena implements a fixed-capacity, first-fit memory allocator.
// A single word-granular buffer is carved into variable-length blocks that
// can be allocated and freed individually; adjacent free space is merged
// forward on free to limit fragmentation.
package arena

import (
	"unsafe"
)

// WordSize is the allocation granularity in bytes. All sizes are rounded up
// to whole words and all block offsets are expressed in words.
const WordSize = 4

// DefaultCapacityWords is the arena capacity used when no option overrides
// it: just under 1 MiB of 4-byte words.
const DefaultCapacityWords = 1<<20/WordSize - 1

// Ptr is a reference to an allocated block: the word offset of the block's
// first payload word inside the arena. The zero value NilPtr never refers to
// a live allocation.
type Ptr uint32

// NilPtr is the null block reference. Alloc returns it on failure and Free
// ignores it.
const NilPtr Ptr = 0

// Allocator is the interface shared by arena implementations.
type Allocator interface {
	// Alloc allocates at least size bytes and returns a reference to the
	// payload. It fails with ErrNoMem when no free block is large enough.
	Alloc(size int) (Ptr, error)

	// Free releases a block previously returned by Alloc. Invalid references
	// (out of bounds, double free, corrupt header) are absorbed without
	// modifying the arena. Free(NilPtr) is a no-op.
	Free(p Ptr)

	// Len returns the number of bytes currently allocated, headers included.
	Len() int

	// Cap returns the arena capacity in bytes.
	Cap() int
}

// Arena is a fixed-capacity first-fit allocator over a single word buffer.
// The buffer is partitioned end to end into blocks, each a one-word header
// followed by payload; the chain of blocks always tiles the whole arena.
//
// Arena is not safe for concurrent use; wrap it with NewConcurrentArena or
// serialize calls externally.
type Arena struct {
	words []uint32

	allocatedWords uint32 // words in allocated blocks, headers included
	peakWords      uint32
	invalidFrees   uint64

	onInvalidFree func(error)
}

var _ Allocator = (*Arena)(nil)

// Option configures an Arena created by New.
type Option func(*Arena)

// WithCapacityWords sets the arena capacity in 4-byte words. Values above
// MaxBlockWords are clamped; values below 1 fall back to the default.
func WithCapacityWords(words int) Option {
	return func(a *Arena) {
		if words < 1 {
			return
		}
		if words > MaxBlockWords {
			words = MaxBlockWords
		}
		a.words = make([]uint32, words)
	}
}

// WithBuffer adopts buf as the arena's backing store instead of allocating
// one. The capacity becomes len(buf)/WordSize words; trailing bytes beyond
// the last whole word are unused. The region must be zero-filled (a fresh
// slice from make is) and must not be touched by the caller afterwards
// except through references returned by Alloc.
func WithBuffer(buf []byte) Option {
	return func(a *Arena) {
		words := len(buf) / WordSize
		if words < 1 {
			return
		}
		if words > MaxBlockWords {
			words = MaxBlockWords
		}
		a.words = unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(buf))), words)
	}
}

// WithInvalidFreeHandler installs a handler invoked whenever Free rejects a
// reference. The handler receives an error wrapping one of ErrInvalidPointer,
// ErrDoubleFree or ErrCorruptHeader. Rejected frees never modify the arena
// regardless of whether a handler is set.
func WithInvalidFreeHandler(fn func(error)) Option {
	return func(a *Arena) {
		a.onInvalidFree = fn
	}
}

// New creates an arena. Without options it owns a zeroed buffer of
// DefaultCapacityWords words. The arena starts uninitialized and converts
// itself into one spanning free block on the first allocation.
func New(opts ...Option) *Arena {
	a := &Arena{}
	for _, opt := range opts {
		opt(a)
	}
	if a.words == nil {
		a.words = make([]uint32, DefaultCapacityWords)
	}
	return a
}

// CapWords returns the arena capacity in words.
func (a *Arena) CapWords() int {
	return len(a.words)
}

// Cap returns the arena capacity in bytes.
func (a *Arena) Cap() int {
	return len(a.words) * WordSize
}

func (a *Arena) capWords() uint32 {
	return uint32(len(a.words))
}

func (a *Arena) header(off uint32) header {
	return header(a.words[off])
}

func (a *Arena) setHeader(off uint32, h header) {
	a.words[off] = uint32(h)
}

// initialized reports whether the virgin-arena sentinel at offset 0 has been
// replaced by a real header.
func (a *Arena) initialized() bool {
	return a.header(0).size() != 0
}

// ensureInit converts the virgin arena into one spanning free block. The
// sentinel is a zero size field at offset 0; after initialization no correct
// operation ever produces a zero size again, so this runs at most once.
func (a *Arena) ensureInit() {
	if !a.initialized() {
		a.setHeader(0, packHeader(a.capWords(), false))
	}
}
