// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package slaballoc

import (
	"runtime"
	"testing"
	"unsafe"
)

// newTestRegion allocates a page-aligned backing buffer of at least size
// bytes and returns its start address as a uintptr, the same oversize-then-
// align technique used to simulate a page-aligned physical region from Go's
// ordinary heap.
func newTestRegion(t *testing.T, size uintptr) uintptr {
	t.Helper()

	buf := make([]byte, size+MinSlabSize)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	start := alignUp(base, MinSlabSize)

	t.Cleanup(func() { runtime.KeepAlive(buf) })

	return start
}
