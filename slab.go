// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package slaballoc

// Slab is a bounded cache of uniformly sized, uniformly aligned blocks
// carved from a contiguous region. Its block size doubles as its
// alignment guarantee: every block address is a multiple of blockSize
// because the region start is itself blockSize-aligned and blocks are
// blockSize apart.
type Slab struct {
	blockSize uintptr
	start     uintptr
	size      uintptr

	free *FreeBlockList
}

// NewSlab builds a Slab of blockSize-byte blocks over the region
// [start, start+regionLen). regionLen must be a multiple of blockSize.
func NewSlab(start, regionLen, blockSize uintptr) *Slab {
	if regionLen%blockSize != 0 {
		panic("slab: region length is not a multiple of block size")
	}

	n := int(regionLen / blockSize)

	return &Slab{
		blockSize: blockSize,
		start:     start,
		size:      regionLen,
		free:      BuildFreeBlockList(start, blockSize, n),
	}
}

// Grow appends regionLen/blockSize newly minted free blocks drawn from
// [start, start+regionLen) to the slab. The new region is assumed
// contiguous with, or otherwise disjoint from, the slab's existing region;
// the slab does not verify this.
func (s *Slab) Grow(start, regionLen uintptr) {
	if regionLen%s.blockSize != 0 {
		panic("slab: grow region length is not a multiple of block size")
	}

	n := int(regionLen / s.blockSize)

	for i := n - 1; i >= 0; i-- {
		s.free.Push(start + uintptr(i)*s.blockSize)
	}

	s.size += regionLen
}

// BlockSize returns the slab's fixed block size.
func (s *Slab) BlockSize() uintptr {
	return s.blockSize
}

// NumBlocks returns the total number of blocks, free and used, in the slab.
func (s *Slab) NumBlocks() int {
	return int(s.size / s.blockSize)
}

// FreeBlocks returns the number of blocks currently on the free list.
func (s *Slab) FreeBlocks() int {
	return s.free.Len()
}

// UsedBlocks returns the number of blocks currently allocated out.
func (s *Slab) UsedBlocks() int {
	return s.NumBlocks() - s.FreeBlocks()
}

// ContainsAddr reports whether addr falls within the slab's region.
func (s *Slab) ContainsAddr(addr uintptr) bool {
	return addr >= s.start && addr < s.start+s.size
}

// Allocate pops a block off the free list. The caller (Heap) has already
// proved layout.Size <= blockSize and layout.Align <= blockSize; Slab does
// no further arithmetic on layout.
func (s *Slab) Allocate(layout Layout) (uintptr, error) {
	addr, ok := s.free.Pop()
	if !ok {
		return 0, ErrExhausted
	}

	return addr, nil
}

// Deallocate pushes ptr back onto the free list. ptr must have been
// previously returned by this slab's Allocate and not since deallocated;
// violating this is undefined behavior, the slab cannot detect it.
func (s *Slab) Deallocate(ptr uintptr) {
	s.free.Push(ptr)
}
