// SPDX-License-Identifier: Apache-2.0

package arena

// Every block starts with a one-word header packed into a single uint32:
//
//	bits  0..29  size of the block in words, header included
//	bit   30     allocated flag
//	bit   31     reserved, always zero
//
// The 30-bit size field caps a single block at 2^30-1 words, which also caps
// the arena capacity itself since the virgin arena is one block.
type header uint32

const (
	sizeBits = 30
	sizeMask = 1<<sizeBits - 1

	allocatedBit = 1 << sizeBits
	reservedBit  = 1 << (sizeBits + 1)
)

// MaxBlockWords is the largest block size representable in a header.
const MaxBlockWords = sizeMask

// minBlockWords is the smallest block worth carving out on a split:
// one header word plus one payload word.
const minBlockWords = 2

func packHeader(sizeWords uint32, allocated bool) header {
	h := header(sizeWords & sizeMask)
	if allocated {
		h |= allocatedBit
	}
	return h
}

// size returns the block's total length in words, header included.
func (h header) size() uint32 {
	return uint32(h) & sizeMask
}

func (h header) allocated() bool {
	return h&allocatedBit != 0
}
