// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arena provides a bump allocator for the byte buffers a Root stages
// for no-copy bytes-views.
//
// Object nodes are not allocated here: they carry ordinary Go pointers
// (to child Objects, to arena-backed byte slices), so they are left to the
// garbage collector. This arena exists purely so that bytes can be staged
// with a lifetime matching a Root's: Schema_AllocateBuffer hands out arena
// memory a caller can fill and pass to Schema_MergeFromBuffer without a
// further copy, and Object.AddBytes copies its input into the arena.
package arena

// minBlock is the smallest block this arena ever allocates.
const minBlock = 4096

// align is the alignment of every allocation handed out by Alloc.
const align = 8

// Arena is a growable, append-only byte-buffer allocator.
//
// A zero Arena is empty and ready to use. Arena is not safe for concurrent
// use; callers are expected to confine a Root (and therefore its Arena) to
// a single goroutine at a time, per the library's concurrency contract.
type Arena struct {
	cur   []byte // current block, full capacity
	used  int    // bytes of cur already handed out
	total int    // bytes ever allocated, across all blocks; for diagnostics
}

// Alloc returns n freshly allocated, zeroed bytes whose address is stable
// for the remaining lifetime of the Arena: subsequent allocations never
// move or invalidate previously returned slices, since a full block is
// replaced by a fresh one rather than reallocated in place.
func (a *Arena) Alloc(n int) []byte {
	if n == 0 {
		return nil
	}

	size := (n + align - 1) &^ (align - 1)
	if a.used+size > cap(a.cur) {
		a.grow(size)
	}

	p := a.cur[a.used : a.used+size : a.used+size]
	a.used += size
	a.total += size
	return p[:n:n]
}

// grow allocates a fresh block of at least size bytes, following a
// geometric growth policy with a 4 KiB floor: each new block is at least
// double the previous block's capacity.
func (a *Arena) grow(size int) {
	next := minBlock
	if prev := cap(a.cur); prev*2 > next {
		next = prev * 2
	}
	for next < size {
		next *= 2
	}

	a.cur = make([]byte, next)
	a.used = 0
}

// Allocated reports the total number of bytes this arena has handed out
// across its lifetime. Useful for diagnostics only.
func (a *Arena) Allocated() int {
	return a.total
}
