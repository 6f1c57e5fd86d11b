// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package slaballoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLockedHeapEmptyPanicsUntilInit(t *testing.T) {
	lh := Empty()

	require.Panics(t, func() {
		_, _ = lh.Allocate(Layout{Size: 8, Align: 8})
	})

	start := newTestRegion(t, MinHeapSize)
	lh.Init(start, MinHeapSize)

	require.NotPanics(t, func() {
		_, err := lh.Allocate(Layout{Size: 8, Align: 8})
		require.NoError(t, err)
	})
}

func TestNewLockedHeapMatchesBareHeapClassification(t *testing.T) {
	// 2*MinHeapSize gives an 8192-byte BigRegion, room for the 4097-byte
	// layout below.
	size := uintptr(2 * MinHeapSize)

	start1 := newTestRegion(t, size)
	h := NewHeap(start1, size)

	start2 := newTestRegion(t, size)
	lh := NewLockedHeap(start2, size)

	subLen := size / NumOfSlabs

	layouts := []Layout{
		{Size: 8, Align: 8},
		{Size: 24, Align: 512},
		{Size: 4097, Align: 8},
	}

	for _, layout := range layouts {
		addr, err := h.Allocate(layout)
		require.NoError(t, err)
		offset := addr - start1

		laddr, err := lh.Allocate(layout)
		require.NoError(t, err)
		loffset := laddr - start2

		require.Equal(t, offset/subLen, loffset/subLen,
			"LockedHeap must route a given layout to the same relative sub-allocator as a bare Heap")
	}
}

func TestLockedHeapAllocPanicsOnOom(t *testing.T) {
	start := newTestRegion(t, MinHeapSize)
	lh := NewLockedHeap(start, MinHeapSize)

	subLen := MinHeapSize / NumOfSlabs
	n := int(subLen / 64)

	for i := 0; i < n; i++ {
		lh.Alloc(Layout{Size: 8, Align: 8})
	}

	require.Panics(t, func() {
		lh.Alloc(Layout{Size: 8, Align: 8})
	})
}

func TestLockedHeapDeallocZeroIsNoOp(t *testing.T) {
	start := newTestRegion(t, MinHeapSize)
	lh := NewLockedHeap(start, MinHeapSize)

	require.NotPanics(t, func() {
		lh.Dealloc(0, Layout{Size: 8, Align: 8})
	})
}
