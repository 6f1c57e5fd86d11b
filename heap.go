// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package slaballoc

const (
	// NumOfSlabs is the number of sub-allocators a Heap is divided into:
	// seven fixed-size slabs plus one BigRegion.
	NumOfSlabs = 8

	// MinSlabSize is the page alignment enforced on a Heap's start
	// address and the unit its total length must divide into evenly.
	MinSlabSize = 4096

	// MinHeapSize is the smallest region a Heap can be built over.
	MinHeapSize = NumOfSlabs * MinSlabSize
)

// SlabID names one of the Heap's eight sub-allocators, for use with Grow.
type SlabID int

const (
	Slab64Bytes SlabID = iota
	Slab128Bytes
	Slab256Bytes
	Slab512Bytes
	Slab1024Bytes
	Slab2048Bytes
	Slab4096Bytes
	BigRegionAllocator
)

// blockSizes lists the slab block sizes in the order the Heap's slab array
// is populated, matching SlabID's ordering for the first seven IDs.
var blockSizes = [7]uintptr{64, 128, 256, 512, 1024, 2048, 4096}

// Heap is a fixed size heap composed of seven fixed-block-size slabs plus
// one BigRegion for anything larger than 4096 bytes (or too highly
// aligned for any slab). It is not safe for concurrent use; see
// LockedHeap for a process-wide wrapper.
type Heap struct {
	slabs [7]*Slab
	big   *BigRegion
}

// NewHeap builds a Heap over [start, start+size). start must be page
// aligned (MinSlabSize) and size must be a multiple of MinHeapSize.
func NewHeap(start, size uintptr) *Heap {
	if start%MinSlabSize != 0 {
		panic("heap: start address is not page aligned")
	}
	if size < MinHeapSize {
		panic("heap: size is smaller than the minimum heap size")
	}
	if size%MinHeapSize != 0 {
		panic("heap: size is not a multiple of the minimum heap size")
	}

	subLen := size / NumOfSlabs

	h := &Heap{}

	for i, blockSize := range blockSizes {
		h.slabs[i] = NewSlab(start+uintptr(i)*subLen, subLen, blockSize)
	}

	// no truncating cast: the BigRegion's start is computed directly from
	// the full-width start address, never narrowed through a smaller
	// integer type.
	h.big = NewBigRegion(start+7*subLen, subLen)

	return h
}

// Grow forwards additional memory to the named sub-allocator. which
// selects one of the seven slabs or the BigRegion; for the BigRegion only
// contiguous extension is supported.
func (h *Heap) Grow(start, size uintptr, which SlabID) {
	if which == BigRegionAllocator {
		h.big.Extend(start, size)
		return
	}

	h.slabs[which].Grow(start, size)
}

// Classify maps a Layout to the sub-allocator that must serve it. The
// size > MinSlabSize and align > MinSlabSize tests are evaluated first so
// that a request too big, or too highly aligned, for any slab is never
// mistakenly routed into the Slab4096Bytes cascade.
func Classify(layout Layout) SlabID {
	size, align := layout.Size, layout.Align

	switch {
	case size > MinSlabSize || align > MinSlabSize:
		return BigRegionAllocator
	case size <= 64 && align <= 64:
		return Slab64Bytes
	case size <= 128 && align <= 128:
		return Slab128Bytes
	case size <= 256 && align <= 256:
		return Slab256Bytes
	case size <= 512 && align <= 512:
		return Slab512Bytes
	case size <= 1024 && align <= 1024:
		return Slab1024Bytes
	case size <= 2048 && align <= 2048:
		return Slab2048Bytes
	default:
		return Slab4096Bytes
	}
}

// Allocate classifies layout and delegates to the chosen sub-allocator.
// Runtime is O(1) for layouts routed to a slab and O(number of free
// extents) when routed to the BigRegion.
func (h *Heap) Allocate(layout Layout) (uintptr, error) {
	id := Classify(layout)

	if id == BigRegionAllocator {
		return h.big.Allocate(layout)
	}

	return h.slabs[id].Allocate(layout)
}

// Deallocate classifies layout identically to Allocate and returns ptr to
// the matching sub-allocator's free structure. ptr and layout must be the
// exact pair a prior Allocate returned and accepted; Heap does not verify
// this.
func (h *Heap) Deallocate(ptr uintptr, layout Layout) {
	id := Classify(layout)

	if id == BigRegionAllocator {
		h.big.Deallocate(ptr, layout)
		return
	}

	h.slabs[id].Deallocate(ptr)
}

// UsableSize returns bounds on the guaranteed usable size of an allocation
// made with layout: the requested size, and the actual capacity of the
// slab (or exact size, for the BigRegion) that would serve it.
func (h *Heap) UsableSize(layout Layout) (min, max uintptr) {
	id := Classify(layout)

	if id == BigRegionAllocator {
		return layout.Size, layout.Size
	}

	return layout.Size, h.slabs[id].BlockSize()
}
