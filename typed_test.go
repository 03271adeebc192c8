// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
}

func TestBytes(t *testing.T) {
	a := New(WithCapacityWords(20))

	p, err := a.Alloc(8)
	require.NoError(t, err)

	b := a.Bytes(p)
	require.Len(t, b, 8)
	b[0] = 0xde
	b[7] = 0xad
	require.Equal(t, b, a.Bytes(p))
}

func TestBytesInvalidRef(t *testing.T) {
	a := New(WithCapacityWords(20))
	require.Nil(t, a.Bytes(NilPtr))
	require.Nil(t, a.Bytes(Ptr(100)))

	p, err := a.Alloc(8)
	require.NoError(t, err)
	a.Free(p)
	// Freed blocks expose no payload.
	require.Nil(t, a.Bytes(p))
}

func TestAllocateStruct(t *testing.T) {
	a := New(WithCapacityWords(20))

	p, pt, err := Allocate[point](a)
	require.NoError(t, err)
	require.NotEqual(t, NilPtr, p)
	require.Zero(t, *pt)

	pt.X = 3
	pt.Y = -7
	require.Equal(t, int32(3), pt.X)

	a.Free(p)
	require.Zero(t, a.Len())
}

func TestAllocateZeroed(t *testing.T) {
	a := New(WithCapacityWords(20))

	p, _, err := Allocate[point](a)
	require.NoError(t, err)
	b := a.Bytes(p)
	for i := range b {
		b[i] = 0xff
	}
	a.Free(p)

	// The same block is reused and handed back zeroed.
	p2, pt, err := Allocate[point](a)
	require.NoError(t, err)
	require.Equal(t, p, p2)
	require.Zero(t, *pt)
}

func TestAllocateZeroSizeType(t *testing.T) {
	a := New(WithCapacityWords(20))

	p, pt, err := Allocate[struct{}](a)
	require.NoError(t, err)
	require.Equal(t, NilPtr, p)
	require.NotNil(t, pt)
	require.Nil(t, a.Blocks())
}

func TestAllocateSlice(t *testing.T) {
	a := New(WithCapacityWords(20))

	p, s, err := AllocateSlice[int32](a, 5)
	require.NoError(t, err)
	require.Len(t, s, 5)
	for i := range s {
		s[i] = int32(i * i)
	}
	require.Equal(t, []int32{0, 1, 4, 9, 16}, s)

	a.Free(p)
	require.Zero(t, a.Len())
}

func TestAllocateSliceEmpty(t *testing.T) {
	a := New(WithCapacityWords(20))

	p, s, err := AllocateSlice[int32](a, 0)
	require.NoError(t, err)
	require.Equal(t, NilPtr, p)
	require.Nil(t, s)

	p, s, err = AllocateSlice[int32](a, -1)
	require.NoError(t, err)
	require.Equal(t, NilPtr, p)
	require.Nil(t, s)
}

func TestAllocateSliceNoMem(t *testing.T) {
	a := New(WithCapacityWords(4))

	_, _, err := AllocateSlice[int32](a, 100)
	require.ErrorIs(t, err, ErrNoMem)
	require.Nil(t, a.Blocks())
}
