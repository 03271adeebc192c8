// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bytes returns the payload of the allocated block p as a byte slice. The
// slice covers the block's full usable payload, which may be slightly larger
// than the requested size due to word rounding and the no-split threshold.
// It returns nil if p does not refer to a live allocated block. The slice is
// valid until the block is freed.
func (a *Arena) Bytes(p Ptr) []byte {
	if p == NilPtr {
		return nil
	}
	off := uint32(p) - 1
	if off >= a.capWords()-1 {
		return nil
	}
	h := a.header(off)
	if !h.allocated() || h.size() < minBlockWords {
		return nil
	}
	payloadWords := h.size() - 1
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.words[uint32(p)])), payloadWords*WordSize)
}

// Allocate allocates a zeroed T inside the arena and returns its block
// reference alongside the typed pointer. Pass the reference to Free to
// release it.
//
// The arena guarantees word (4-byte) alignment only; do not use this for
// values requiring stricter alignment, such as fields accessed via
// sync/atomic 64-bit operations.
func Allocate[T any](a *Arena) (Ptr, *T, error) {
	var x T
	size := int(unsafe.Sizeof(x))
	if size == 0 {
		return NilPtr, &x, nil
	}
	p, err := a.Alloc(size)
	if err != nil {
		return NilPtr, nil, err
	}
	b := a.Bytes(p)
	clear(b)
	return p, (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// AllocateSlice allocates a zeroed slice of n elements of type T inside the
// arena. The returned reference releases the whole slice when passed to
// Free. n <= 0 returns (NilPtr, nil, nil).
//
// Appending beyond the slice capacity moves the data onto the Go heap; the
// arena block is not freed by that, so keep using the reference to release
// it. The word-alignment caveat of Allocate applies.
func AllocateSlice[T any, N constraints.Integer](a *Arena, n N) (Ptr, []T, error) {
	if n <= 0 {
		return NilPtr, nil, nil
	}
	var x T
	elemSize := int(unsafe.Sizeof(x))
	if elemSize == 0 {
		return NilPtr, make([]T, int(n)), nil
	}
	p, err := a.Alloc(elemSize * int(n))
	if err != nil {
		return NilPtr, nil, err
	}
	b := a.Bytes(p)
	s := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), int(n))
	clear(s)
	return p, s, nil
}
