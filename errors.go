// Fixed-base, growable, segregated-fit memory allocator
// https://github.com/weclaw1/slab-allocator
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package slaballoc

import "errors"

// ErrExhausted is returned when a Slab's free list has no blocks left. The
// Heap never retries a request against a different slab after this error;
// the caller sees it unchanged.
var ErrExhausted = errors.New("slab: exhausted")

// ErrOutOfMemory is returned when the BigRegion allocator cannot find a
// free extent large enough to carve the requested, aligned size from.
var ErrOutOfMemory = errors.New("bigregion: out of memory")
