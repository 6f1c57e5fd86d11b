// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package slaballoc

import "unsafe"

// FreeBlockList is an intrusive singly linked LIFO of free blocks. Its
// storage is the free blocks themselves: the first machine word of a free
// block holds the address of the next free block (or 0 for the end of the
// chain), exactly the way a bare-metal allocator must thread a free list
// through memory it cannot separately allocate bookkeeping nodes for.
//
// A FreeBlockList is not safe for concurrent use; callers serialize access
// externally (LockedHeap's spin lock, or single-threaded use of a bare
// Heap).
type FreeBlockList struct {
	head uintptr
	len  int
}

// nextLink reads the next-pointer stored at the first word of the block at
// addr.
func nextLink(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr))
}

// setNextLink overwrites the next-pointer stored at the first word of the
// block at addr.
func setNextLink(addr uintptr, next uintptr) {
	*(*uintptr)(unsafe.Pointer(addr)) = next
}

// BuildFreeBlockList threads a fresh FreeBlockList over n contiguous blocks of size
// blockSize starting at start. Blocks are linked high address to low, so
// that the first Pop returns the lowest address in the region.
func BuildFreeBlockList(start, blockSize uintptr, n int) *FreeBlockList {
	l := &FreeBlockList{}

	for i := n - 1; i >= 0; i-- {
		l.Push(start + uintptr(i)*blockSize)
	}

	return l
}

// Len returns the number of free blocks currently on the list.
func (l *FreeBlockList) Len() int {
	return l.len
}

// Push places addr at the head of the free list. addr must be block-size
// aligned and must not already be present on the list.
func (l *FreeBlockList) Push(addr uintptr) {
	setNextLink(addr, l.head)
	l.head = addr
	l.len++
}

// Pop removes and returns the block at the head of the free list. ok is
// false when the list is empty.
func (l *FreeBlockList) Pop() (addr uintptr, ok bool) {
	if l.head == 0 {
		return 0, false
	}

	addr = l.head
	l.head = nextLink(addr)
	l.len--

	return addr, true
}
