// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package slaballoc

import "container/list"

// BigRegion is a first-fit free-extent allocator for requests too large, or
// too highly aligned, for any Slab. It keeps an address-ordered
// container/list of free extents and coalesces adjacent free extents back
// together on Deallocate.
type BigRegion struct {
	free *list.List // of *extent, ordered by ascending addr
	used map[uintptr]*extent
}

// NewBigRegion builds a BigRegion with a single free extent covering
// [start, start+size).
func NewBigRegion(start, size uintptr) *BigRegion {
	r := &BigRegion{
		free: list.New(),
		used: make(map[uintptr]*extent),
	}

	r.free.PushFront(&extent{addr: start, size: size})

	return r
}

// Extend grows the region by adding a free extent contiguous with (or
// otherwise following) the highest address already tracked, then
// coalescing. The caller guarantees the new range does not overlap any
// extent already known to the region.
func (r *BigRegion) Extend(start, size uintptr) {
	r.insertFree(&extent{addr: start, size: size})
}

// Allocate scans the free-extent list for the first extent that can fit an
// align-aligned, size-byte carve, splitting off the unused head and tail as
// new free extents.
func (r *BigRegion) Allocate(layout Layout) (uintptr, error) {
	size := layout.Size
	align := layout.Align

	if align < wordSize {
		align = wordSize
	}

	size = alignUp(size, wordSize)

	for e := r.free.Front(); e != nil; e = e.Next() {
		ext := e.Value.(*extent)

		pad := padding(ext.addr, align)
		carveAddr := ext.addr + pad
		carveEnd := carveAddr + size

		if carveEnd > ext.addr+ext.size {
			continue
		}

		if pad != 0 {
			r.free.InsertBefore(&extent{addr: ext.addr, size: pad}, e)
		}

		if tail := (ext.addr + ext.size) - carveEnd; tail != 0 {
			r.free.InsertBefore(&extent{addr: carveEnd, size: tail}, e)
		}

		r.free.Remove(e)

		used := &extent{addr: carveAddr, size: size}
		r.used[carveAddr] = used

		return carveAddr, nil
	}

	return 0, ErrOutOfMemory
}

// Deallocate returns the extent at ptr, previously returned by Allocate, to
// the free list, coalescing it with any adjacent free extents.
func (r *BigRegion) Deallocate(ptr uintptr, layout Layout) {
	used, ok := r.used[ptr]
	if !ok {
		return
	}

	delete(r.used, ptr)
	r.insertFree(used)
}

// insertFree reinserts ext into the address-ordered free list and merges it
// with the immediately preceding and following extents when they are
// contiguous.
func (r *BigRegion) insertFree(ext *extent) {
	var at *list.Element

	for e := r.free.Front(); e != nil; e = e.Next() {
		if e.Value.(*extent).addr > ext.addr {
			at = e
			break
		}
	}

	var inserted *list.Element
	if at != nil {
		inserted = r.free.InsertBefore(ext, at)
	} else {
		inserted = r.free.PushBack(ext)
	}

	r.defrag(inserted)
}

// defrag merges the extent at e with its immediate predecessor and
// successor in address order, if they are contiguous.
func (r *BigRegion) defrag(e *list.Element) {
	cur := e.Value.(*extent)

	if next := e.Next(); next != nil {
		n := next.Value.(*extent)
		if cur.addr+cur.size == n.addr {
			cur.size += n.size
			r.free.Remove(next)
		}
	}

	if prev := e.Prev(); prev != nil {
		p := prev.Value.(*extent)
		if p.addr+p.size == cur.addr {
			p.size += cur.size
			r.free.Remove(e)
		}
	}
}
