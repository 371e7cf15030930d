package vk

import (
	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// memoryAllocator implements rhi.MemoryAllocator directly against
// vkAllocateMemory, following the teacher's own driver/vk/driver.go
// memory/newMemory type: every request gets its own VkDeviceMemory
// block. Neither VulkanMemoryAllocator nor D3D12MA has a Go binding
// anywhere in the example corpus (see DESIGN.md), so this is the
// reference implementation of C2 rather than a wrapper over a
// sub-allocating library; "dedicated" and "non-dedicated" allocations
// are therefore identical here.
type memoryAllocator struct {
	dev  *Device
	vdev vulkan.Device
}

func newMemoryAllocator(d *Device) *memoryAllocator {
	return &memoryAllocator{dev: d, vdev: d.dev}
}

type allocation struct {
	mem         vulkan.DeviceMemory
	size        int64
	hostVisible bool
}

func (a *allocation) Size() int64 { return a.size }

func (d *memoryAllocator) findMemoryType(typeBits uint32, props vulkan.MemoryPropertyFlagBits) (uint32, error) {
	mp := d.dev.memProp
	for i := uint32(0); i < mp.MemoryTypeCount; i++ {
		mp.MemoryTypes[i].Deref()
		if typeBits&(1<<i) == 0 {
			continue
		}
		if vulkan.MemoryPropertyFlagBits(mp.MemoryTypes[i].PropertyFlags)&props == props {
			return i, nil
		}
	}
	return 0, rhi.OutOfMemory("no memory type supports requested properties")
}

func (d *memoryAllocator) allocate(reqs vulkan.MemoryRequirements, visible bool) (*allocation, error) {
	reqs.Deref()
	props := vulkan.MemoryPropertyDeviceLocalBit
	if visible {
		props = vulkan.MemoryPropertyHostVisibleBit | vulkan.MemoryPropertyHostCoherentBit
	}
	typeIdx, err := d.findMemoryType(reqs.MemoryTypeBits, props)
	if err != nil {
		return nil, err
	}
	info := &vulkan.MemoryAllocateInfo{
		SType:           vulkan.StructureTypeMemoryAllocateInfo,
		AllocationSize:  reqs.Size,
		MemoryTypeIndex: typeIdx,
	}
	var mem vulkan.DeviceMemory
	if ret := vulkan.AllocateMemory(d.vdev, info, nil, &mem); ret != vulkan.Success {
		return nil, checkResult("vkAllocateMemory", ret)
	}
	return &allocation{mem: mem, size: int64(reqs.Size), hostVisible: visible}, nil
}

// CreateBuffer is not used directly by resource.go (buffers bind
// memory via allocate+vkBindBufferMemory inline, since the
// VkMemoryRequirements must come from the already-created
// VkBuffer); it exists to satisfy rhi.MemoryAllocator for callers
// that only need a bare allocation sized by hand.
func (d *memoryAllocator) CreateBuffer(size int64, visible, dedicated bool) (rhi.Allocation, error) {
	reqs := vulkan.MemoryRequirements{Size: vulkan.DeviceSize(size), MemoryTypeBits: ^uint32(0)}
	return d.allocate(reqs, visible)
}

func (d *memoryAllocator) CreateImage(desc rhi.TextureDesc) (rhi.Allocation, error) {
	return nil, rhi.Unsupported("CreateImage: use Device.NewTexture, which sizes the allocation from VkImage requirements")
}

func (d *memoryAllocator) CreateCommitted(size int64, visible bool) (rhi.Allocation, error) {
	return d.CreateBuffer(size, visible, true)
}

func (d *memoryAllocator) Destroy(alloc rhi.Allocation) {
	a, ok := alloc.(*allocation)
	if !ok || a.mem == vulkan.NullDeviceMemory {
		return
	}
	vulkan.FreeMemory(d.vdev, a.mem, nil)
	a.mem = vulkan.NullDeviceMemory
}
