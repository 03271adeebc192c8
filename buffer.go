// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"io"
)

// minBufferBytes is the smallest block a Buffer allocates for itself.
const minBufferBytes = 64

// Buffer is a bytes.Buffer-like writer whose storage lives inside an Arena
// block. When the block fills up the buffer allocates a larger block, copies
// the contents over and frees the old one, so a Buffer never holds more than
// one block at a time.
//
// Like the arena itself, Buffer is not safe for concurrent use.
type Buffer struct {
	arena *Arena
	ptr   Ptr
	data  []byte // payload view of the current block
	n     int    // bytes written
}

var _ io.Writer = (*Buffer)(nil)

// NewBuffer creates an empty Buffer backed by the given arena. No block is
// allocated until the first write.
func NewBuffer(a *Arena) *Buffer {
	return &Buffer{arena: a}
}

// Write appends p to the buffer, growing its arena block as needed. It
// returns ErrNoMem without losing the buffered contents when the arena
// cannot hold the grown block.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := b.grow(b.n + len(p)); err != nil {
		return 0, err
	}
	copy(b.data[b.n:], p)
	b.n += len(p)
	return len(p), nil
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	if err := b.grow(b.n + len(s)); err != nil {
		return 0, err
	}
	copy(b.data[b.n:], s)
	b.n += len(s)
	return len(s), nil
}

// WriteByte appends a single byte to the buffer.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.grow(b.n + 1); err != nil {
		return err
	}
	b.data[b.n] = c
	b.n++
	return nil
}

// grow makes sure the current block can hold at least need bytes. Growth
// allocates the new block before freeing the old one so the contents survive
// an ErrNoMem.
func (b *Buffer) grow(need int) error {
	if need <= len(b.data) {
		return nil
	}
	newCap := len(b.data) * 2
	if newCap < minBufferBytes {
		newCap = minBufferBytes
	}
	for newCap < need {
		newCap *= 2
	}
	p, err := b.arena.Alloc(newCap)
	if err != nil {
		return err
	}
	data := b.arena.Bytes(p)
	copy(data, b.data[:b.n])
	if b.ptr != NilPtr {
		b.arena.Free(b.ptr)
	}
	b.ptr = p
	b.data = data
	return nil
}

// Bytes returns the written contents. The slice is valid until the next
// write, Reset or Free.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.n]
}

// String returns the written contents as a string.
func (b *Buffer) String() string {
	return string(b.data[:b.n])
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the usable capacity of the buffer's current block.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Reset discards the contents but keeps the current block for reuse.
func (b *Buffer) Reset() {
	b.n = 0
}

// Free releases the buffer's block back to the arena. The buffer is empty
// and usable again afterwards.
func (b *Buffer) Free() {
	if b.ptr != NilPtr {
		b.arena.Free(b.ptr)
	}
	b.ptr = NilPtr
	b.data = nil
	b.n = 0
}
