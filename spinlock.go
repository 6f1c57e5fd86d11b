// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package slaballoc

import (
	"runtime"
	"sync/atomic"
)

// spinBeforeYield bounds how many failed CAS attempts a lock waiter makes
// before giving the scheduler a chance to run something else. It is not a
// blocking wait: a caller with preemption disabled (an interrupt handler)
// never reaches runtime.Gosched with a lock contended against it in
// practice, since the only other holder is itself serialized out by the
// same disabled-preemption guarantee.
const spinBeforeYield = 1000

// spinLock is a compare-and-swap based mutual exclusion lock. Unlike
// sync.Mutex it never parks the calling goroutine on a runtime wait queue,
// so it remains safe to acquire from a context that cannot be descheduled,
// such as an interrupt handler that has already disabled preemption.
type spinLock struct {
	held uint32
}

// Lock busy-waits until the lock is free, then acquires it.
func (l *spinLock) Lock() {
	spins := 0

	for !atomic.CompareAndSwapUint32(&l.held, 0, 1) {
		spins++
		if spins > spinBeforeYield {
			runtime.Gosched()
			spins = 0
		}
	}
}

// TryLock attempts to acquire the lock without waiting, reporting whether
// it succeeded.
func (l *spinLock) TryLock() bool {
	return atomic.CompareAndSwapUint32(&l.held, 0, 1)
}

// Unlock releases the lock. It does not check that the lock is held:
// unlocking an unheld lock leaves it unheld, where sync.Mutex would panic,
// and unlocking a lock held by another caller releases it.
func (l *spinLock) Unlock() {
	atomic.StoreUint32(&l.held, 0)
}
