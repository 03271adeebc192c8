// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"fmt"
	"io"
)

// Block describes one block of the arena's chain, as seen by read-only
// diagnostics. Offsets and sizes are in words; Size includes the header.
type Block struct {
	Offset    uint32
	Size      uint32
	Allocated bool
}

// Blocks returns the current block chain in address order. An arena that has
// not served its first allocation yet has no chain and returns nil. The walk
// stops early if it runs into a corrupt zero-size header.
func (a *Arena) Blocks() []Block {
	if !a.initialized() {
		return nil
	}
	var blocks []Block
	c := a.capWords()
	for off := uint32(0); off < c; {
		h := a.header(off)
		if h.size() == 0 {
			break
		}
		blocks = append(blocks, Block{
			Offset:    off,
			Size:      h.size(),
			Allocated: h.allocated(),
		})
		off += h.size()
	}
	return blocks
}

// CheckIntegrity verifies the tiling invariant: starting at offset 0, each
// block's header is followed by the next block's header at offset+size, no
// block has a zero size, and the last block ends exactly at the arena
// capacity. An uninitialized arena is trivially valid.
func (a *Arena) CheckIntegrity() error {
	if !a.initialized() {
		return nil
	}
	c := a.capWords()
	off := uint32(0)
	for off < c {
		sz := a.header(off).size()
		if sz == 0 {
			return fmt.Errorf("arena: zero-size block at offset %d", off)
		}
		if sz > c-off {
			return fmt.Errorf("arena: block at offset %d (size %d words) overruns capacity %d", off, sz, c)
		}
		off += sz
	}
	return nil
}

// Dump writes a human-readable description of the block chain to w. It is a
// read-only diagnostic and never modifies the arena.
func (a *Arena) Dump(w io.Writer) {
	blocks := a.Blocks()
	fmt.Fprintf(w, "arena: %d/%d words allocated, %d blocks\n",
		a.allocatedWords, a.capWords(), len(blocks))
	for _, b := range blocks {
		state := "free"
		if b.Allocated {
			state = "allocated"
		}
		fmt.Fprintf(w, "  %6d  %6d words  %s\n", b.Offset, b.Size, state)
	}
}
