// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package slaballoc

// Allocator is the process-wide allocator contract LockedHeap implements:
// Alloc returns an address or panics ("out of memory" / "heap not
// initialized"), Dealloc releases a previously allocated address, and Oom
// is invoked on unrecoverable exhaustion and never returns.
type Allocator interface {
	Alloc(layout Layout) uintptr
	Dealloc(ptr uintptr, layout Layout)
	Oom() uintptr
}

// LockedHeap wraps a Heap behind a spin lock so it can be called from
// multiple execution contexts, including ones that cannot block (an
// interrupt handler that has already disabled preemption). Before Init is
// called it is in the Empty state and every operation panics; once
// initialized it stays initialized for the rest of the process's life.
type LockedHeap struct {
	lock spinLock
	heap *Heap
}

// Empty returns a LockedHeap in the uninitialized state. The zero value of
// LockedHeap is equally valid and already empty; Empty exists for
// readability at call sites, mirroring a compile-time constant constructor.
func Empty() *LockedHeap {
	return &LockedHeap{}
}

// NewLockedHeap builds an already-initialized LockedHeap over
// [start, start+size), equivalent to calling Empty() followed by
// Init(start, size).
func NewLockedHeap(start, size uintptr) *LockedHeap {
	lh := Empty()
	lh.Init(start, size)
	return lh
}

// Init transitions the LockedHeap from Empty to Initialized, building a
// Heap over [start, start+size). It must be called at most once: a second
// call overwrites the previous Heap under the lock, silently leaking any
// of its outstanding allocations. That is a caller bug, not a detected
// error.
func (lh *LockedHeap) Init(start, size uintptr) {
	lh.lock.Lock()
	defer lh.lock.Unlock()

	lh.heap = NewHeap(start, size)
}

// Allocate acquires the lock, classifies and dispatches layout, and
// releases the lock. It panics with "heap not initialized" if Init has not
// yet been called.
func (lh *LockedHeap) Allocate(layout Layout) (uintptr, error) {
	lh.lock.Lock()
	defer lh.lock.Unlock()

	if lh.heap == nil {
		panic("heap not initialized")
	}

	return lh.heap.Allocate(layout)
}

// Deallocate acquires the lock, returns ptr to its classified
// sub-allocator, and releases the lock.
func (lh *LockedHeap) Deallocate(ptr uintptr, layout Layout) {
	lh.lock.Lock()
	defer lh.lock.Unlock()

	if lh.heap == nil {
		panic("heap not initialized")
	}

	lh.heap.Deallocate(ptr, layout)
}

// UsableSize reports bounds on the guaranteed usable size of an allocation
// made with layout.
func (lh *LockedHeap) UsableSize(layout Layout) (min, max uintptr) {
	lh.lock.Lock()
	defer lh.lock.Unlock()

	if lh.heap == nil {
		panic("heap not initialized")
	}

	return lh.heap.UsableSize(layout)
}

// Alloc implements the Allocator contract: it behaves like Allocate but
// converts an allocation failure into a panic rather than returning an
// error, per the standard single-heap contract.
func (lh *LockedHeap) Alloc(layout Layout) uintptr {
	addr, err := lh.Allocate(layout)
	if err != nil {
		return lh.Oom()
	}

	return addr
}

// Dealloc implements the Allocator contract. Deallocating the zero address
// is a no-op.
func (lh *LockedHeap) Dealloc(ptr uintptr, layout Layout) {
	if ptr == 0 {
		return
	}

	lh.Deallocate(ptr, layout)
}

// Oom is invoked on unrecoverable allocation failure reached through the
// Allocator contract; it never returns.
func (lh *LockedHeap) Oom() uintptr {
	panic("out of memory")
}
