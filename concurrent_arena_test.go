// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcurrentArenaPassthrough(t *testing.T) {
	base := New(WithCapacityWords(20))
	ca := NewConcurrentArena(base)

	require.Equal(t, 80, ca.Cap())
	require.Zero(t, ca.Len())

	p, err := ca.Alloc(8)
	require.NoError(t, err)
	require.Equal(t, 12, ca.Len())

	ca.Free(p)
	require.Zero(t, ca.Len())
}

func TestConcurrentArenaConcurrentAccess(t *testing.T) {
	base := New(WithCapacityWords(1 << 16))
	ca := NewConcurrentArena(base)

	const goroutines = 8
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				p, err := ca.Alloc(8 + (g+i)%64)
				if err != nil {
					continue
				}
				ca.Free(p)
			}
		}(g)
	}
	wg.Wait()

	require.Zero(t, base.Len())
	require.NoError(t, base.CheckIntegrity())
	require.Zero(t, base.InvalidFrees())
}
