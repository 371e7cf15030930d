// Package blockpool implements the grow-on-demand block allocator
// described in spec.md §4.3: a sequence of fixed-size heaps, each
// serviced internally by a buddy.Buddy, used for the CPU
// (non-shader-visible) descriptor pools of each descriptor category.
//
// No single file in the teacher repository implements this tier (its
// Vulkan backend only ever allocates one pool), so this package
// follows spec.md's algorithm directly: try each existing heap in
// turn, then grow by creating a new heap sized
// max(initial, nextPow2(count)).
package blockpool

import "github.com/vitreous-gpu/rhi/internal/buddy"

// Handle identifies a live allocation: which heap it lives in, its
// starting slot, and its slot count. Owners keep a Handle and call
// Pool.Free with it on Destroy (RAII-style), per spec.md §4.3.
type Handle struct {
	Heap  int
	Start int
	Size  int
}

// Pool is a block allocator for one descriptor category.
type Pool struct {
	initial int
	heaps   []*buddy.Buddy
}

// New creates a Pool whose first heap has the given initial length
// (a category-dependent constant per spec.md §4.3, e.g. 512 for
// CBV/SRV/UAV, 128 for RTV/DSV, 64 for Sampler).
func New(initial int) *Pool {
	if initial <= 0 {
		initial = 1
	}
	initial = buddy.NextPow2(initial)
	return &Pool{initial: initial}
}

// Alloc reserves count contiguous slots, growing the pool with a new
// heap if no existing heap can satisfy the request.
func (p *Pool) Alloc(count int) Handle {
	for i, h := range p.heaps {
		if start, size, ok := h.Alloc(count); ok {
			return Handle{Heap: i, Start: start, Size: size}
		}
	}
	length := p.initial
	if n := buddy.NextPow2(count); n > length {
		length = n
	}
	h := buddy.New(length, 1)
	p.heaps = append(p.heaps, h)
	start, size, ok := h.Alloc(count)
	if !ok {
		// A freshly created heap sized to fit count must always
		// accept the first allocation; failure here means the
		// buddy allocator's invariants were violated.
		panic("blockpool: newly grown heap rejected its own allocation")
	}
	return Handle{Heap: len(p.heaps) - 1, Start: start, Size: size}
}

// Free releases h back to its heap.
func (p *Pool) Free(h Handle) {
	p.heaps[h.Heap].Free(h.Start, h.Size)
}

// HeapCount returns the number of heaps the pool has grown to.
func (p *Pool) HeapCount() int { return len(p.heaps) }

// HeapLen returns the slot count of the given heap.
func (p *Pool) HeapLen(heap int) int { return p.heaps[heap].Len() }
