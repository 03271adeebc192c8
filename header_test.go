// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderPacking(t *testing.T) {
	h := packHeader(1, false)
	require.Equal(t, uint32(1), h.size())
	require.False(t, h.allocated())

	h = packHeader(1, true)
	require.Equal(t, uint32(1), h.size())
	require.True(t, h.allocated())

	// Size occupies the low 30 bits only.
	h = packHeader(MaxBlockWords, true)
	require.Equal(t, uint32(MaxBlockWords), h.size())
	require.True(t, h.allocated())
}

func TestHeaderReservedBitZero(t *testing.T) {
	require.Zero(t, uint32(packHeader(MaxBlockWords, true))&reservedBit)
	require.Zero(t, uint32(packHeader(12345, false))&reservedBit)
}

func TestHeaderAllocatedBitDoesNotLeakIntoSize(t *testing.T) {
	free := packHeader(7, false)
	alloced := packHeader(7, true)
	require.Equal(t, free.size(), alloced.size())
	require.NotEqual(t, uint32(free), uint32(alloced))
}
