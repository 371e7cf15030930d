//go:build windows

package d3d12

import (
	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/rhi"
)

// memoryAllocator implements rhi.MemoryAllocator directly over
// CreateCommittedResource, grounded on vk.memoryAllocator's shape but
// with no equivalent to vkAllocateMemory/VkMemoryRequirements: D3D12
// commits a heap and binds a resource to it in one call, so allocation
// and buffer creation happen together instead of in two steps.
type memoryAllocator struct {
	dev *Device
}

func newMemoryAllocator(d *Device) *memoryAllocator { return &memoryAllocator{dev: d} }

// allocation wraps the committed ID3D12Resource backing an
// rhi.Allocation; unlike vk.allocation (a bare VkDeviceMemory handle),
// the resource IS the allocation on this backend, since
// CreateCommittedResource produces both in one object.
type allocation struct {
	resource *com.ID3D12Resource
	size     int64
}

func (a *allocation) Size() int64 { return a.size }

func initialStateFor(ht com.D3D12_HEAP_TYPE) com.D3D12_RESOURCE_STATES {
	switch ht {
	case com.D3D12_HEAP_TYPE_UPLOAD:
		return com.D3D12_RESOURCE_STATE_GENERIC_READ
	case com.D3D12_HEAP_TYPE_READBACK:
		return com.D3D12_RESOURCE_STATE_COPY_DEST
	default:
		return com.D3D12_RESOURCE_STATE_COMMON
	}
}

// alignTo256 rounds up to the 256-byte constant-buffer-view alignment
// D3D12 requires (D3D12_CONSTANT_BUFFER_DATA_PLACEMENT_ALIGNMENT); the
// vk backend needs no analogous rounding, so this is D3D12-specific.
func alignTo256(n int64) int64 { return (n + 255) &^ 255 }

func (m *memoryAllocator) commitBuffer(size int64, ht com.D3D12_HEAP_TYPE, flags com.D3D12_RESOURCE_FLAGS) (*allocation, error) {
	props := &com.D3D12_HEAP_PROPERTIES{Type: ht}
	desc := &com.D3D12_RESOURCE_DESC{
		Dimension:  com.D3D12_RESOURCE_DIMENSION_BUFFER,
		Width:      uint64(size),
		Height:     1,
		DepthOrArraySize: 1,
		MipLevels:  1,
		Format:     com.DXGI_FORMAT_UNKNOWN,
		SampleDesc: com.DXGI_SAMPLE_DESC{Count: 1},
		Layout:     com.D3D12_TEXTURE_LAYOUT_ROW_MAJOR,
		Flags:      flags,
	}
	res, err := m.dev.dev.CreateCommittedResource(props, com.D3D12_HEAP_FLAG_NONE, desc, initialStateFor(ht), nil)
	if err != nil {
		return nil, checkResult("CreateCommittedResource", err)
	}
	return &allocation{resource: res, size: size}, nil
}

// CreateBuffer commits a dedicated resource sized to size; D3D12 has
// no sub-allocation tier analogous to vk.memoryAllocator.allocate, so
// dedicated is accepted but every allocation is already dedicated.
// Device.NewBuffer (resource.go) bypasses this and calls commitBuffer
// directly, since it needs the heap type picked from the buffer's
// MemoryKind rather than just a host-visible flag.
func (m *memoryAllocator) CreateBuffer(size int64, visible bool, dedicated bool) (rhi.Allocation, error) {
	if size <= 0 {
		return nil, rhi.Invalid("CreateBuffer: size must be positive, got %d", size)
	}
	ht := com.D3D12_HEAP_TYPE_DEFAULT
	if visible {
		ht = com.D3D12_HEAP_TYPE_UPLOAD
	}
	return m.commitBuffer(size, ht, com.D3D12_RESOURCE_FLAG_NONE)
}

// CreateImage is not used by this backend: textures are always
// created as their own committed resource directly by
// Device.NewTexture, mirroring vk's decision to reject
// MemoryAllocator.CreateImage as Unsupported and route callers to
// NewTexture instead.
func (m *memoryAllocator) CreateImage(desc rhi.TextureDesc) (rhi.Allocation, error) {
	return nil, rhi.Unsupported("d3d12 backend: call Device.NewTexture instead of MemoryAllocator.CreateImage")
}

func (m *memoryAllocator) CreateCommitted(size int64, visible bool) (rhi.Allocation, error) {
	if size <= 0 {
		return nil, rhi.Invalid("CreateCommitted: size must be positive, got %d", size)
	}
	ht := com.D3D12_HEAP_TYPE_DEFAULT
	if visible {
		ht = com.D3D12_HEAP_TYPE_UPLOAD
	}
	return m.commitBuffer(size, ht, com.D3D12_RESOURCE_FLAG_NONE)
}

func (m *memoryAllocator) Destroy(alloc rhi.Allocation) {
	a, ok := alloc.(*allocation)
	if !ok || a.resource == nil {
		return
	}
	a.resource.Release()
	a.resource = nil
}
