//go:build windows

// Package d3d12 implements the rhi backend interfaces using Direct3D
// 12, through the hand-rolled COM interop layer in
// github.com/vitreous-gpu/rhi/d3d12/internal/com (no cgo, following
// the calling convention demonstrated by Ebiten's directx package and
// gogpu-wgpu's hal/dx12).
package d3d12

import (
	"fmt"

	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/rhi"
)

const backendName = "d3d12"

func init() {
	rhi.Register(&Backend{})
}

// Backend implements rhi.Backend for Direct3D 12.
type Backend struct {
	dev *Device
}

func (b *Backend) Name() string { return backendName }

// Open loads d3d12.dll, creates a device against the default adapter,
// and sets up the per-list-type command allocators and descriptor
// heaps lazily. Mirrors vk.Backend.Open's idempotent bring-up shape:
// calling Open twice on an already-open Backend is a no-op returning
// the same Device.
func (b *Backend) Open(opts rhi.DeviceOptions) (rhi.Device, error) {
	if b.dev != nil {
		return b.dev, nil
	}
	lib, err := com.LoadD3D12()
	if err != nil {
		return nil, rhi.ErrNotInstalled
	}
	native, err := lib.CreateDevice(nil, com.D3D_FEATURE_LEVEL_11_0)
	if err != nil {
		return nil, checkResult("D3D12CreateDevice", err)
	}

	d := &Device{
		backend: b,
		lib:     lib,
		dev:     native,
		limits:  defaultLimits(),
		queues:  map[rhi.QueueType]*Queue{},
		allocs:  map[com.D3D12_COMMAND_LIST_TYPE]*com.ID3D12CommandAllocator{},
	}
	b.dev = d
	return d, nil
}

func (b *Backend) Close() {
	if b.dev == nil {
		return
	}
	d := b.dev
	for _, a := range d.allocs {
		a.Release()
	}
	d.dev.Release()
	b.dev = nil
}

// Device implements rhi.Device atop one ID3D12Device.
type Device struct {
	backend *Backend
	lib     *com.D3D12Lib
	dev     *com.ID3D12Device
	limits  rhi.Limits

	queues map[rhi.QueueType]*Queue
	allocs map[com.D3D12_COMMAND_LIST_TYPE]*com.ID3D12CommandAllocator

	descHeaps *descriptorHeaps
	allocator *memoryAllocator
}

// heaps returns the Device's lazily-created CPU/GPU descriptor-heap
// suballocator.
func (d *Device) heaps() *descriptorHeaps {
	if d.descHeaps == nil {
		d.descHeaps = newDescriptorHeaps(d)
	}
	return d.descHeaps
}

// mem returns the Device's lazily-created committed-resource
// allocator façade.
func (d *Device) mem() *memoryAllocator {
	if d.allocator == nil {
		d.allocator = newMemoryAllocator(d)
	}
	return d.allocator
}

func (d *Device) Destroy() {}

func (d *Device) Backend() rhi.Backend { return d.backend }
func (d *Device) Tag() rhi.Tag         { return rhi.TagD3D12 }
func (d *Device) Limits() rhi.Limits   { return d.limits }

// listType maps a neutral QueueType to the D3D12_COMMAND_LIST_TYPE
// that both the queue and its command allocators are created with;
// unlike Vulkan's queue-family enumeration (see vk.Backend.Open),
// D3D12 queue kinds are fixed enum values with no device query needed.
func listType(t rhi.QueueType) com.D3D12_COMMAND_LIST_TYPE {
	switch t {
	case rhi.QueueCompute:
		return com.D3D12_COMMAND_LIST_TYPE_COMPUTE
	case rhi.QueueCopy:
		return com.D3D12_COMMAND_LIST_TYPE_COPY
	default:
		return com.D3D12_COMMAND_LIST_TYPE_DIRECT
	}
}

func (d *Device) Queue(t rhi.QueueType) (rhi.Queue, error) {
	if q, ok := d.queues[t]; ok {
		return q, nil
	}
	lt := listType(t)
	native, err := d.dev.CreateCommandQueue(&com.D3D12_COMMAND_QUEUE_DESC{Type: lt})
	if err != nil {
		return nil, checkResult("CreateCommandQueue", err)
	}
	fence, err := d.dev.CreateFence(0, com.D3D12_FENCE_FLAG_NONE)
	if err != nil {
		native.Release()
		return nil, checkResult("CreateFence", err)
	}
	q := &Queue{dev: d, typ: t, listType: lt, q: native, fence: fence}
	d.queues[t] = q
	return q, nil
}

// cmdAllocator returns the Device's command allocator for listType,
// creating it on first use. Mirrors vk.Device.pool's one-per-family
// caching, keyed on D3D12_COMMAND_LIST_TYPE instead of a queue family
// index.
func (d *Device) cmdAllocator(lt com.D3D12_COMMAND_LIST_TYPE) (*com.ID3D12CommandAllocator, error) {
	if a, ok := d.allocs[lt]; ok {
		return a, nil
	}
	a, err := d.dev.CreateCommandAllocator(lt)
	if err != nil {
		return nil, checkResult("CreateCommandAllocator", err)
	}
	d.allocs[lt] = a
	return a, nil
}

// defaultLimits reports the guaranteed Direct3D 12 Feature Level 11_0
// resource limits (D3D12_REQ_* constants from d3d12.h); there is no
// device-properties query in the trimmed com surface equivalent to
// Vulkan's VkPhysicalDeviceLimits, so these are the spec-guaranteed
// minimums every FL11_0 driver supports.
func defaultLimits() rhi.Limits {
	return rhi.Limits{
		MaxImage1D:        16384,
		MaxImage2D:        16384,
		MaxImageCube:      16384,
		MaxImage3D:        2048,
		MaxLayers:         2048,
		MaxDescHeaps:      4,
		MaxDBuffer:        14,
		MaxDImage:         128,
		MaxDConstant:      64,
		MaxDTexture:       128,
		MaxDSampler:       16,
		MaxDBufferRange:   1 << 27,
		MaxDConstantRange: 1 << 16,
		MaxColorTargets:   8,
		MaxFBSize:         [2]int{16384, 16384},
		MaxFBLayers:       2048,
		MaxPointSize:      256,
		MaxViewports:      16,
		MaxVertexIn:       32,
		MaxFragmentIn:     32,
		MaxDispatch:       [3]int{65535, 65535, 65535},
	}
}

// checkResult maps a com error (always an HRESULTError or nil) to an
// error: E_OUTOFMEMORY and DXGI_ERROR_DEVICE_REMOVED map to rhi's
// sentinel errors, any other failure to a KindBackendError *rhi.Error
// tagged with the name of the native call that produced it, following
// vk.checkResult's convention.
func checkResult(fn string, err error) error {
	if err == nil {
		return nil
	}
	if herr, ok := err.(com.HRESULTError); ok {
		switch herr.HRESULT() {
		case 0x8007000E: // E_OUTOFMEMORY
			return rhi.ErrNoHostMemory
		case 0x887A0005: // DXGI_ERROR_DEVICE_REMOVED
			return rhi.ErrFatal
		}
	}
	return rhi.WrapBackend(fn, fmt.Errorf("%w", err))
}
