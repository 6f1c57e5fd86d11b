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

func TestBigRegionAllocateRoundTrip(t *testing.T) {
	start := newTestRegion(t, 4096)
	r := NewBigRegion(start, 4096)

	addr, err := r.Allocate(Layout{Size: 200, Align: 16})
	require.NoError(t, err)
	require.Zero(t, addr%16)

	r.Deallocate(addr, Layout{Size: 200, Align: 16})

	addr2, err := r.Allocate(Layout{Size: 200, Align: 16})
	require.NoError(t, err)
	require.Equal(t, addr, addr2, "freed extent must be reused by a same-size request")
}

func TestBigRegionOutOfMemory(t *testing.T) {
	start := newTestRegion(t, 512)
	r := NewBigRegion(start, 512)

	_, err := r.Allocate(Layout{Size: 1024, Align: 8})
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestBigRegionSplitsAndCoalesces(t *testing.T) {
	start := newTestRegion(t, 4096)
	r := NewBigRegion(start, 4096)

	a, err := r.Allocate(Layout{Size: 1024, Align: 8})
	require.NoError(t, err)
	b, err := r.Allocate(Layout{Size: 1024, Align: 8})
	require.NoError(t, err)
	c, err := r.Allocate(Layout{Size: 1024, Align: 8})
	require.NoError(t, err)

	r.Deallocate(a, Layout{Size: 1024, Align: 8})
	r.Deallocate(b, Layout{Size: 1024, Align: 8})
	r.Deallocate(c, Layout{Size: 1024, Align: 8})

	// adjacent frees must have coalesced back into one extent large enough
	// to serve a request bigger than any single original carve.
	big, err := r.Allocate(Layout{Size: 3000, Align: 8})
	require.NoError(t, err)
	require.Equal(t, start, big)
}

func TestBigRegionExtendGrowsCapacity(t *testing.T) {
	start := newTestRegion(t, 8192)
	r := NewBigRegion(start, 4096)

	_, err := r.Allocate(Layout{Size: 4096, Align: 8})
	require.NoError(t, err)

	_, err = r.Allocate(Layout{Size: 100, Align: 8})
	require.ErrorIs(t, err, ErrOutOfMemory)

	r.Extend(start+4096, 4096)

	addr, err := r.Allocate(Layout{Size: 100, Align: 8})
	require.NoError(t, err)
	require.Equal(t, start+4096, addr)
}

func TestBigRegionAlignedCarveLeavesPaddingExtent(t *testing.T) {
	start := newTestRegion(t, 4096)
	r := NewBigRegion(start+8, 4088)

	addr, err := r.Allocate(Layout{Size: 64, Align: 256})
	require.NoError(t, err)
	require.Zero(t, addr%256)
	require.Equal(t, extent{addr: start + 8, size: 248}, *r.free.Front().Value.(*extent))
}
