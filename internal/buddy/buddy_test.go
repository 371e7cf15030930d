package buddy_test

import (
	"testing"

	"github.com/vitreous-gpu/rhi/internal/buddy"
)

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 17: 32, 128: 128, 129: 256}
	for in, want := range cases {
		if got := buddy.NextPow2(in); got != want {
			t.Errorf("NextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestAllocFreeRoundTrip(t *testing.T) {
	b := buddy.New(128, 1)
	start, size, ok := b.Alloc(1)
	if !ok || start != 0 || size != 1 {
		t.Fatalf("Alloc(1) = (%d, %d, %v)", start, size, ok)
	}
	b.Free(start, size)
	if b.Rem() != 128 {
		t.Errorf("Rem() = %d after free, want 128 (fully reclaimed)", b.Rem())
	}
}

// TestUnionNeverExceedsLength is spec.md §8 invariant 2: the union of
// live allocations on one heap never exceeds the heap's length.
func TestUnionNeverExceedsLength(t *testing.T) {
	const length = 64
	b := buddy.New(length, 1)
	type live struct{ start, size int }
	var lives []live
	total := 0
	for {
		start, size, ok := b.Alloc(3)
		if !ok {
			break
		}
		lives = append(lives, live{start, size})
		total += size
		if total > length {
			t.Fatalf("allocated %d slots, exceeding heap length %d", total, length)
		}
	}
	for _, l := range lives {
		b.Free(l.start, l.size)
	}
	if b.Rem() != length {
		t.Errorf("Rem() = %d after freeing everything, want %d", b.Rem(), length)
	}
}

func TestFullReallocationAfterFreeAll(t *testing.T) {
	b := buddy.New(256, 1)
	var starts, sizes []int
	for i := 0; i < 8; i++ {
		s, sz, ok := b.Alloc(16)
		if !ok {
			t.Fatalf("Alloc(16) #%d failed", i)
		}
		starts = append(starts, s)
		sizes = append(sizes, sz)
	}
	for i := range starts {
		b.Free(starts[i], sizes[i])
	}
	// Coalescing should now let us allocate the whole range as one
	// block.
	start, size, ok := b.Alloc(256)
	if !ok || start != 0 || size != 256 {
		t.Errorf("Alloc(256) after freeing all = (%d, %d, %v), want (0, 256, true)", start, size, ok)
	}
}

func TestAllocExhaustion(t *testing.T) {
	b := buddy.New(8, 1)
	for i := 0; i < 8; i++ {
		if _, _, ok := b.Alloc(1); !ok {
			t.Fatalf("Alloc(1) #%d unexpectedly failed", i)
		}
	}
	if _, _, ok := b.Alloc(1); ok {
		t.Error("Alloc(1) succeeded after heap was exhausted")
	}
}
