package blockpool_test

import (
	"testing"

	"github.com/vitreous-gpu/rhi/internal/blockpool"
)

// TestGrowthOnExhaustion is spec.md §8 scenario S3: on an otherwise
// empty CPU RTV allocator (initial 128), allocate count=1 150 times.
// The first 128 come from one heap, then a new heap of length
// max(initial 128, nextPow2(1)) = 128 (at least 22, a power of two) is
// created; all 150 stay live simultaneously, then all 150 are freed.
func TestGrowthOnExhaustion(t *testing.T) {
	p := blockpool.New(128)
	var handles []blockpool.Handle
	for i := 0; i < 150; i++ {
		handles = append(handles, p.Alloc(1))
	}
	if p.HeapCount() != 2 {
		t.Fatalf("HeapCount() = %d, want 2", p.HeapCount())
	}
	if p.HeapLen(0) != 128 {
		t.Errorf("HeapLen(0) = %d, want 128", p.HeapLen(0))
	}
	if p.HeapLen(1) != 128 {
		t.Errorf("HeapLen(1) = %d, want 128 (max(initial, nextPow2(1)))", p.HeapLen(1))
	}
	for _, h := range handles {
		p.Free(h)
	}
}

func TestAllocReusesExistingHeap(t *testing.T) {
	p := blockpool.New(16)
	a := p.Alloc(4)
	p.Free(a)
	b := p.Alloc(4)
	if p.HeapCount() != 1 {
		t.Errorf("HeapCount() = %d, want 1 (should reuse the first heap)", p.HeapCount())
	}
	if a.Heap != b.Heap {
		t.Errorf("expected reallocation to land in the same heap")
	}
}
