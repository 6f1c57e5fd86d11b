// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package slaballoc

// extent is a contiguous address range tracked by a BigRegion, either on
// its free list or (by address, via the used map) currently handed
// out to a caller.
type extent struct {
	addr uintptr
	size uintptr
}
