// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package slaballoc implements a fixed-base, segregated-fit memory allocator
// for bare-metal or freestanding environments where no operating system heap
// exists.
//
// A caller hands the allocator a contiguous, page-aligned region of physical
// (or identity-mapped) memory via NewHeap or LockedHeap.Init, and afterwards
// requests and releases aligned byte-ranges described by a Layout. Small,
// power-of-two-sized requests are served in constant time from a bank of
// slab caches; everything larger than the biggest slab falls through to a
// first-fit linked-list allocator over a separate sub-region.
//
// The package never allocates Go-managed memory for the regions it serves:
// free-list links are written directly into the free bytes of the
// caller-supplied region via unsafe.Pointer, so that blocks can be handed
// out by address alone without passing live Go pointers across a hardware
// boundary.
package slaballoc
