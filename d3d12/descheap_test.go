//go:build windows

package d3d12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitreous-gpu/rhi/internal/buddy"
	"github.com/vitreous-gpu/rhi/rhi"
)

// TestGPUHeapExhaustion is spec.md §8 scenario S4: allocN's
// shader-visible reservation (descheap.go) is a thin wrapper over
// buddy.Buddy.Alloc returning rhi.OutOfMemory on failure; this
// exercises that same path directly against a 256-slot sampler heap
// without needing a live device, since CreateDescriptorHeap cannot be
// called outside a real adapter.
func TestGPUHeapExhaustion(t *testing.T) {
	const capacity = 256
	b := buddy.New(capacity, 1)

	var starts, sizes []int
	for i := 0; i < capacity; i++ {
		start, size, ok := b.Alloc(1)
		require.Truef(t, ok, "DescriptorSet #%d allocation unexpectedly failed", i)
		starts = append(starts, start)
		sizes = append(sizes, size)
	}

	_, _, ok := b.Alloc(1)
	assert.False(t, ok, "the 257th allocation on a 256-capacity heap must fail")
	err := rhi.OutOfMemory("d3d12: shader-visible %v heap exhausted", categorySampler)
	assert.True(t, rhi.IsKind(err, rhi.KindOutOfMemory))

	b.Free(starts[0], sizes[0])
	_, _, ok = b.Alloc(1)
	assert.True(t, ok, "freeing one slot must let the next allocation succeed")
}
