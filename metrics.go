package arena

// Len returns the number of bytes currently allocated in the arena, block
// headers included.
func (a *Arena) Len() int {
	return int(a.allocatedWords) * WordSize
}

// Peak returns the peak number of allocated bytes observed since the arena
// was created. It is never reset.
func (a *Arena) Peak() int {
	return int(a.peakWords) * WordSize
}

// FreeBytes returns the number of unallocated bytes in the arena, counting
// the headers of free blocks. This walks the block chain.
func (a *Arena) FreeBytes() int {
	if !a.initialized() {
		return a.Cap()
	}
	free := 0
	for _, b := range a.Blocks() {
		if !b.Allocated {
			free += int(b.Size) * WordSize
		}
	}
	return free
}

// LargestFreeBytes returns the payload capacity of the largest free block:
// the biggest single request Alloc could still satisfy. This walks the block
// chain.
func (a *Arena) LargestFreeBytes() int {
	if !a.initialized() {
		return (a.CapWords() - 1) * WordSize
	}
	largest := uint32(0)
	for _, b := range a.Blocks() {
		if !b.Allocated && b.Size > largest {
			largest = b.Size
		}
	}
	if largest < minBlockWords {
		return 0
	}
	return int(largest-1) * WordSize
}

// InvalidFrees returns the number of Free calls rejected so far.
func (a *Arena) InvalidFrees() uint64 {
	return a.invalidFrees
}

// Utilization returns the ratio of allocated bytes to capacity (0.0 to 1.0).
func (a *Arena) Utilization() float64 {
	if len(a.words) == 0 {
		return 0
	}
	return float64(a.allocatedWords) / float64(len(a.words))
}

// ArenaMetrics is a snapshot of arena statistics.
type ArenaMetrics struct {
	CapacityWords  int     // total capacity in words
	AllocatedWords int     // words in allocated blocks, headers included
	FreeWords      int     // words in free blocks, headers included
	Blocks         int     // blocks in the chain
	PeakWords      int     // high-water mark of allocated words
	InvalidFrees   uint64  // rejected Free calls
	Utilization    float64 // allocated / capacity, 0.0-1.0
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		CapacityWords:  a.CapWords(),
		AllocatedWords: int(a.allocatedWords),
		FreeWords:      a.FreeBytes() / WordSize,
		Blocks:         len(a.Blocks()),
		PeakWords:      int(a.peakWords),
		InvalidFrees:   a.invalidFrees,
		Utilization:    a.Utilization(),
	}
}
