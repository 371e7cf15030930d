// Package buddy implements a power-of-two buddy allocator over a
// fixed-length integer range.
//
// It backs the CPU descriptor-heap block allocator and the D3D12
// GPU descriptor heap (see spec.md §4.3): within one fixed-size heap,
// it services variable-length requests by rounding up to the next
// power of two and splitting/coalescing blocks. Free blocks are kept
// as one list of block start indices per size class.
package buddy

import "math/bits"

// Buddy is a buddy allocator over the range [0, length), where length
// must be a power of two.
type Buddy struct {
	length int
	minLog int
	// free[k] holds the starting indices of free blocks of size
	// 1<<(minLog+k), in ascending order.
	free [][]int
}

// New creates a Buddy managing length slots, with minSize the
// smallest block it ever splits down to (rounded up to a power of
// two). length must itself be a power of two and a multiple of
// minSize.
func New(length, minSize int) *Buddy {
	if length <= 0 {
		panic("buddy: length must be positive")
	}
	if minSize <= 0 {
		minSize = 1
	}
	minSize = NextPow2(minSize)
	length = NextPow2(length)
	nlevel := bits.Len(uint(length/minSize)) // number of size classes, inclusive of the top one
	b := &Buddy{
		length: length,
		minLog: bits.TrailingZeros(uint(minSize)),
		free:   make([][]int, nlevel),
	}
	top := nlevel - 1
	b.free[top] = []int{0}
	return b
}

// NextPow2 returns the smallest power of two >= n (n>=1).
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Len returns the total number of slots managed by b.
func (b *Buddy) Len() int { return b.length }

// order returns the size-class index for a block of the given size
// (already rounded up to a power of two), and that rounded size.
func (b *Buddy) order(size int) (order, rounded int) {
	rounded = NextPow2(size)
	if rounded < 1<<b.minLog {
		rounded = 1 << b.minLog
	}
	order = bits.TrailingZeros(uint(rounded)) - b.minLog
	return
}

// Alloc reserves a contiguous range of at least count slots, rounded
// up to the allocator's size classes, returning its starting index.
// ok is false if no block is available (the caller must grow the
// heap and retry, per spec.md §4.3's "try each existing heap; if any
// buddy accepts, return" algorithm).
func (b *Buddy) Alloc(count int) (start, size int, ok bool) {
	if count <= 0 {
		count = 1
	}
	ord, rounded := b.order(count)
	if ord >= len(b.free) {
		return 0, 0, false
	}
	// Find the smallest non-empty class >= ord.
	src := -1
	for i := ord; i < len(b.free); i++ {
		if len(b.free[i]) > 0 {
			src = i
			break
		}
	}
	if src == -1 {
		return 0, 0, false
	}
	// Pop one block from src, splitting down to ord.
	idx := b.free[src][len(b.free[src])-1]
	b.free[src] = b.free[src][:len(b.free[src])-1]
	for lvl := src; lvl > ord; lvl-- {
		half := (1 << (lvl - 1 + b.minLog))
		buddy := idx + half
		b.free[lvl-1] = append(b.free[lvl-1], buddy)
	}
	return idx, rounded, true
}

// Free releases a block previously returned by Alloc, coalescing with
// its buddy wherever possible. size must be the value Alloc returned
// alongside start.
func (b *Buddy) Free(start, size int) {
	ord, _ := b.order(size)
	idx := start
	for ord < len(b.free)-1 {
		blockSize := 1 << (ord + b.minLog)
		buddyIdx := idx ^ blockSize
		if !b.removeFree(ord, buddyIdx) {
			break
		}
		if buddyIdx < idx {
			idx = buddyIdx
		}
		ord++
	}
	b.free[ord] = append(b.free[ord], idx)
}

// removeFree removes idx from the free list at the given order, if
// present, reporting whether it found (and removed) it.
func (b *Buddy) removeFree(order, idx int) bool {
	list := b.free[order]
	for i, v := range list {
		if v == idx {
			list[i] = list[len(list)-1]
			b.free[order] = list[:len(list)-1]
			return true
		}
	}
	return false
}

// Rem returns the number of free slots currently available, not
// accounting for fragmentation (i.e. the sum of all free blocks'
// sizes, which may still fail to satisfy a large contiguous request).
func (b *Buddy) Rem() int {
	n := 0
	for lvl, list := range b.free {
		n += len(list) << (lvl + b.minLog)
	}
	return n
}
