//go:build windows

package d3d12

import (
	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/internal/blockpool"
	"github.com/vitreous-gpu/rhi/internal/buddy"
	"github.com/vitreous-gpu/rhi/rhi"
)

// descCategory indexes the four D3D12 descriptor-heap types this
// backend allocates from.
type descCategory int

const (
	categoryCBVSRVUAV descCategory = iota
	categoryRTV
	categoryDSV
	categorySampler
	categoryCount
)

func (c descCategory) nativeType() com.D3D12_DESCRIPTOR_HEAP_TYPE {
	switch c {
	case categoryRTV:
		return com.D3D12_DESCRIPTOR_HEAP_TYPE_RTV
	case categoryDSV:
		return com.D3D12_DESCRIPTOR_HEAP_TYPE_DSV
	case categorySampler:
		return com.D3D12_DESCRIPTOR_HEAP_TYPE_SAMPLER
	default:
		return com.D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV
	}
}

// cpuInitialLen is the first heap's slot count for each category, per
// spec.md §4.3; RTV/DSV/Sampler views are far less numerous in
// practice than shader-visible CBV/SRV/UAV descriptors.
func (c descCategory) cpuInitialLen() int {
	switch c {
	case categoryRTV, categoryDSV:
		return 128
	case categorySampler:
		return 64
	default:
		return 512
	}
}

// shaderVisible reports whether category c has a GPU-bound heap at
// all; RTV/DSV descriptors are only ever written and read from the
// CPU-visible heap, never bound to the pipeline directly.
func (c descCategory) shaderVisible() bool {
	return c == categoryCBVSRVUAV || c == categorySampler
}

// gpuHeapLen is the fixed size of the single shader-visible heap for
// category c; D3D12_MAX_SHADER_VISIBLE_SAMPLER_HEAP_SIZE is 2048 on
// every tier, so the sampler heap cannot grow past it. The resource
// heap uses a generous hardware-tier-2-class size.
func (c descCategory) gpuHeapLen() int {
	if c == categorySampler {
		return 2048
	}
	return 1 << 20
}

// descHandle identifies one reserved descriptor-heap slot. gpuValid
// is set only for categories with a shader-visible counterpart.
type descHandle struct {
	category descCategory
	cpu      blockpool.Handle
	gpuSlot  int
	gpuSize  int
	gpuValid bool
}

// cpuCategoryHeaps is the non-shader-visible block allocator for one
// descriptor category: a growing sequence of native
// ID3D12DescriptorHeap objects, each backed by one blockpool heap,
// following spec.md §4.3's "try each heap, else grow" algorithm.
type cpuCategoryHeaps struct {
	category  descCategory
	increment uint32
	pool      *blockpool.Pool
	natives   []*com.ID3D12DescriptorHeap
	bases     []com.D3D12_CPU_DESCRIPTOR_HANDLE
}

func newCPUCategoryHeaps(category descCategory, increment uint32) *cpuCategoryHeaps {
	return &cpuCategoryHeaps{
		category:  category,
		increment: increment,
		pool:      blockpool.New(category.cpuInitialLen()),
	}
}

func (c *cpuCategoryHeaps) alloc(dev *Device, count int) (blockpool.Handle, error) {
	h := c.pool.Alloc(count)
	if h.Heap >= len(c.natives) {
		native, err := dev.dev.CreateDescriptorHeap(&com.D3D12_DESCRIPTOR_HEAP_DESC{
			Type:           c.category.nativeType(),
			NumDescriptors: uint32(c.pool.HeapLen(h.Heap)),
			Flags:          com.D3D12_DESCRIPTOR_HEAP_FLAG_NONE,
		})
		if err != nil {
			return blockpool.Handle{}, checkResult("CreateDescriptorHeap", err)
		}
		c.natives = append(c.natives, native)
		c.bases = append(c.bases, native.GetCPUDescriptorHandleForHeapStart())
	}
	return h, nil
}

func (c *cpuCategoryHeaps) free(h blockpool.Handle) { c.pool.Free(h) }

func (c *cpuCategoryHeaps) handle(h blockpool.Handle) com.D3D12_CPU_DESCRIPTOR_HANDLE {
	return c.bases[h.Heap].Offset(h.Start, c.increment)
}

// gpuCategoryHeap is the single shader-visible heap bound to the
// command list for a category; unlike the CPU side it never grows,
// since only one resource heap and one sampler heap can be bound at
// once (D3D12's SetDescriptorHeaps takes at most one of each type).
type gpuCategoryHeap struct {
	native    *com.ID3D12DescriptorHeap
	increment uint32
	cpuBase   com.D3D12_CPU_DESCRIPTOR_HANDLE
	gpuBase   com.D3D12_GPU_DESCRIPTOR_HANDLE
	alloc     *buddy.Buddy
}

func newGPUCategoryHeap(dev *Device, category descCategory, increment uint32) (*gpuCategoryHeap, error) {
	length := category.gpuHeapLen()
	native, err := dev.dev.CreateDescriptorHeap(&com.D3D12_DESCRIPTOR_HEAP_DESC{
		Type:           category.nativeType(),
		NumDescriptors: uint32(length),
		Flags:          com.D3D12_DESCRIPTOR_HEAP_FLAG_SHADER_VISIBLE,
	})
	if err != nil {
		return nil, checkResult("CreateDescriptorHeap", err)
	}
	return &gpuCategoryHeap{
		native:    native,
		increment: increment,
		cpuBase:   native.GetCPUDescriptorHandleForHeapStart(),
		gpuBase:   native.GetGPUDescriptorHandleForHeapStart(),
		alloc:     buddy.New(length, 1),
	}, nil
}

func (g *gpuCategoryHeap) cpuHandle(slot int) com.D3D12_CPU_DESCRIPTOR_HANDLE {
	return g.cpuBase.Offset(slot, g.increment)
}

func (g *gpuCategoryHeap) gpuHandle(slot int) com.D3D12_GPU_DESCRIPTOR_HANDLE {
	return g.gpuBase.Offset(slot, g.increment)
}

// descriptorHeaps owns every CPU block pool and GPU-visible heap the
// device uses, mirroring vk.descriptorPager's role as the Device's
// lazily-created descriptor collaborator.
type descriptorHeaps struct {
	dev *Device
	cpu [categoryCount]*cpuCategoryHeaps
	gpu [categoryCount]*gpuCategoryHeap
}

func newDescriptorHeaps(dev *Device) *descriptorHeaps {
	dh := &descriptorHeaps{dev: dev}
	for c := descCategory(0); c < categoryCount; c++ {
		increment := dev.dev.GetDescriptorHandleIncrementSize(c.nativeType())
		dh.cpu[c] = newCPUCategoryHeaps(c, increment)
	}
	return dh
}

func (dh *descriptorHeaps) gpuHeap(category descCategory) (*gpuCategoryHeap, error) {
	if g := dh.gpu[category]; g != nil {
		return g, nil
	}
	increment := dh.dev.dev.GetDescriptorHandleIncrementSize(category.nativeType())
	g, err := newGPUCategoryHeap(dh.dev, category, increment)
	if err != nil {
		return nil, err
	}
	dh.gpu[category] = g
	return g, nil
}

// alloc reserves one slot from category's CPU block pool, and, for
// shader-visible categories, a matching slot in the GPU heap that the
// CPU-side descriptor is later copied into via CopyDescriptorsSimple.
func (dh *descriptorHeaps) alloc(category descCategory) (descHandle, error) {
	return dh.allocN(category, 1)
}

// allocN reserves count contiguous slots instead of one, for a whole
// descriptor table's worth of bindings (rootsig.go's descriptorSet):
// D3D12 binds a table by a single base descriptor, so every binding
// in the table must land at a fixed offset within one reservation
// rather than in slots scattered across separate allocations.
func (dh *descriptorHeaps) allocN(category descCategory, count int) (descHandle, error) {
	if count <= 0 {
		count = 1
	}
	cpuH, err := dh.cpu[category].alloc(dh.dev, count)
	if err != nil {
		return descHandle{}, err
	}
	h := descHandle{category: category, cpu: cpuH}
	if category.shaderVisible() {
		g, err := dh.gpuHeap(category)
		if err != nil {
			dh.cpu[category].free(cpuH)
			return descHandle{}, err
		}
		start, size, ok := g.alloc.Alloc(count)
		if !ok {
			dh.cpu[category].free(cpuH)
			return descHandle{}, rhi.OutOfMemory("d3d12: shader-visible %v heap exhausted", category)
		}
		h.gpuSlot, h.gpuSize, h.gpuValid = start, size, true
	}
	return h, nil
}

func (dh *descriptorHeaps) free(h descHandle) {
	dh.cpu[h.category].free(h.cpu)
	if h.gpuValid {
		dh.gpu[h.category].alloc.Free(h.gpuSlot, h.gpuSize)
	}
}

// cpuHandle returns the CPU-visible descriptor handle for h's first
// slot; this is where Device.New*View writes the actual descriptor
// via CreateShaderResourceView et al.
func (dh *descriptorHeaps) cpuHandle(h descHandle) com.D3D12_CPU_DESCRIPTOR_HANDLE {
	return dh.cpu[h.category].handle(h.cpu)
}

// cpuHandleAt returns the CPU-visible handle for the slot at index
// within h's reservation, for a multi-slot allocN table reservation.
func (dh *descriptorHeaps) cpuHandleAt(h descHandle, index int) com.D3D12_CPU_DESCRIPTOR_HANDLE {
	return dh.cpuHandle(h).Offset(index, dh.cpu[h.category].increment)
}

// syncToGPU copies every CPU-visible descriptor reserved by h into
// its matching run in the shader-visible heap, making it visible to
// SetGraphicsRootDescriptorTable / SetComputeRootDescriptorTable
// binds. Relative offsets within h are preserved, since both the CPU
// and GPU reservations were carved out in one allocN call.
func (dh *descriptorHeaps) syncToGPU(h descHandle) com.D3D12_GPU_DESCRIPTOR_HANDLE {
	g := dh.gpu[h.category]
	dest := g.cpuHandle(h.gpuSlot)
	dh.dev.dev.CopyDescriptorsSimple(uint32(h.cpu.Size), dest, dh.cpuHandle(h), h.category.nativeType())
	return g.gpuHandle(h.gpuSlot)
}
