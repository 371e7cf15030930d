//go:build windows

package com

import (
	"syscall"
	"unsafe"
)

func (d *ID3D12Device) Release() uint32 {
	ret, _, _ := syscall.Syscall(d.vtbl.Release, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	return uint32(ret)
}

func (d *ID3D12Device) GetNodeCount() uint32 {
	ret, _, _ := syscall.Syscall(d.vtbl.GetNodeCount, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	return uint32(ret)
}

func (d *ID3D12Device) CreateCommandQueue(desc *D3D12_COMMAND_QUEUE_DESC) (*ID3D12CommandQueue, error) {
	var q *ID3D12CommandQueue
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateCommandQueue, 4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12CommandQueue)),
		uintptr(unsafe.Pointer(&q)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return q, nil
}

func (d *ID3D12Device) CreateCommandAllocator(listType D3D12_COMMAND_LIST_TYPE) (*ID3D12CommandAllocator, error) {
	var a *ID3D12CommandAllocator
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateCommandAllocator, 4,
		uintptr(unsafe.Pointer(d)),
		uintptr(listType),
		uintptr(unsafe.Pointer(&IID_ID3D12CommandAllocator)),
		uintptr(unsafe.Pointer(&a)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return a, nil
}

func (d *ID3D12Device) CreateGraphicsPipelineState(desc *D3D12_GRAPHICS_PIPELINE_STATE_DESC) (*ID3D12PipelineState, error) {
	var p *ID3D12PipelineState
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateGraphicsPipelineState, 4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12PipelineState)),
		uintptr(unsafe.Pointer(&p)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return p, nil
}

func (d *ID3D12Device) CreateComputePipelineState(desc *D3D12_COMPUTE_PIPELINE_STATE_DESC) (*ID3D12PipelineState, error) {
	var p *ID3D12PipelineState
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateComputePipelineState, 4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12PipelineState)),
		uintptr(unsafe.Pointer(&p)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return p, nil
}

func (d *ID3D12Device) CreateCommandList(nodeMask uint32, listType D3D12_COMMAND_LIST_TYPE, allocator *ID3D12CommandAllocator, initialState *ID3D12PipelineState) (*ID3D12GraphicsCommandList, error) {
	var c *ID3D12GraphicsCommandList
	ret, _, _ := syscall.Syscall9(
		d.vtbl.CreateCommandList, 7,
		uintptr(unsafe.Pointer(d)),
		uintptr(nodeMask),
		uintptr(listType),
		uintptr(unsafe.Pointer(allocator)),
		uintptr(unsafe.Pointer(initialState)),
		uintptr(unsafe.Pointer(&IID_ID3D12GraphicsCommandList)),
		uintptr(unsafe.Pointer(&c)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return c, nil
}

func (d *ID3D12Device) CreateDescriptorHeap(desc *D3D12_DESCRIPTOR_HEAP_DESC) (*ID3D12DescriptorHeap, error) {
	var h *ID3D12DescriptorHeap
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateDescriptorHeap, 4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12DescriptorHeap)),
		uintptr(unsafe.Pointer(&h)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return h, nil
}

func (d *ID3D12Device) GetDescriptorHandleIncrementSize(heapType D3D12_DESCRIPTOR_HEAP_TYPE) uint32 {
	ret, _, _ := syscall.Syscall(d.vtbl.GetDescriptorHandleIncrementSize, 2, uintptr(unsafe.Pointer(d)), uintptr(heapType), 0)
	return uint32(ret)
}

func (d *ID3D12Device) CreateRootSignature(nodeMask uint32, blobWithRootSignature unsafe.Pointer, blobLengthInBytes uintptr) (*ID3D12RootSignature, error) {
	var r *ID3D12RootSignature
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateRootSignature, 6,
		uintptr(unsafe.Pointer(d)),
		uintptr(nodeMask),
		uintptr(blobWithRootSignature),
		blobLengthInBytes,
		uintptr(unsafe.Pointer(&IID_ID3D12RootSignature)),
		uintptr(unsafe.Pointer(&r)),
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return r, nil
}

func (d *ID3D12Device) CreateConstantBufferView(desc *D3D12_CONSTANT_BUFFER_VIEW_DESC, dest D3D12_CPU_DESCRIPTOR_HANDLE) {
	_, _, _ = syscall.Syscall(d.vtbl.CreateConstantBufferView, 3, uintptr(unsafe.Pointer(d)), uintptr(unsafe.Pointer(desc)), dest.Ptr)
}

func (d *ID3D12Device) CreateShaderResourceView(resource *ID3D12Resource, desc *D3D12_SHADER_RESOURCE_VIEW_DESC, dest D3D12_CPU_DESCRIPTOR_HANDLE) {
	_, _, _ = syscall.Syscall6(
		d.vtbl.CreateShaderResourceView, 4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(unsafe.Pointer(desc)),
		dest.Ptr,
		0, 0,
	)
}

func (d *ID3D12Device) CreateUnorderedAccessView(resource, counterResource *ID3D12Resource, desc *D3D12_UNORDERED_ACCESS_VIEW_DESC, dest D3D12_CPU_DESCRIPTOR_HANDLE) {
	_, _, _ = syscall.Syscall6(
		d.vtbl.CreateUnorderedAccessView, 5,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(unsafe.Pointer(counterResource)),
		uintptr(unsafe.Pointer(desc)),
		dest.Ptr,
		0,
	)
}

func (d *ID3D12Device) CreateRenderTargetView(resource *ID3D12Resource, desc *D3D12_RENDER_TARGET_VIEW_DESC, dest D3D12_CPU_DESCRIPTOR_HANDLE) {
	_, _, _ = syscall.Syscall6(
		d.vtbl.CreateRenderTargetView, 4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(unsafe.Pointer(desc)),
		dest.Ptr,
		0, 0,
	)
}

func (d *ID3D12Device) CreateDepthStencilView(resource *ID3D12Resource, desc *D3D12_DEPTH_STENCIL_VIEW_DESC, dest D3D12_CPU_DESCRIPTOR_HANDLE) {
	_, _, _ = syscall.Syscall6(
		d.vtbl.CreateDepthStencilView, 4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(unsafe.Pointer(desc)),
		dest.Ptr,
		0, 0,
	)
}

func (d *ID3D12Device) CreateSampler(desc *D3D12_SAMPLER_DESC, dest D3D12_CPU_DESCRIPTOR_HANDLE) {
	_, _, _ = syscall.Syscall(d.vtbl.CreateSampler, 3, uintptr(unsafe.Pointer(d)), uintptr(unsafe.Pointer(desc)), dest.Ptr)
}

func (d *ID3D12Device) CopyDescriptorsSimple(numDescriptors uint32, destStart, srcStart D3D12_CPU_DESCRIPTOR_HANDLE, heapType D3D12_DESCRIPTOR_HEAP_TYPE) {
	_, _, _ = syscall.Syscall6(
		d.vtbl.CopyDescriptorsSimple, 5,
		uintptr(unsafe.Pointer(d)),
		uintptr(numDescriptors),
		destStart.Ptr,
		srcStart.Ptr,
		uintptr(heapType),
		0,
	)
}

func (d *ID3D12Device) GetResourceAllocationInfo(visibleMask uint32, numResourceDescs uint32, resourceDescs *D3D12_RESOURCE_DESC) D3D12_RESOURCE_ALLOCATION_INFO {
	var info D3D12_RESOURCE_ALLOCATION_INFO
	_, _, _ = syscall.Syscall6(
		d.vtbl.GetResourceAllocationInfo, 5,
		uintptr(unsafe.Pointer(&info)),
		uintptr(unsafe.Pointer(d)),
		uintptr(visibleMask),
		uintptr(numResourceDescs),
		uintptr(unsafe.Pointer(resourceDescs)),
		0,
	)
	return info
}

func (d *ID3D12Device) CreateCommittedResource(heapProperties *D3D12_HEAP_PROPERTIES, heapFlags D3D12_HEAP_FLAGS, desc *D3D12_RESOURCE_DESC, initialState D3D12_RESOURCE_STATES, clearValue *D3D12_CLEAR_VALUE) (*ID3D12Resource, error) {
	var r *ID3D12Resource
	ret, _, _ := syscall.Syscall9(
		d.vtbl.CreateCommittedResource, 8,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(heapProperties)),
		uintptr(heapFlags),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialState),
		uintptr(unsafe.Pointer(clearValue)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&r)),
		0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return r, nil
}

func (d *ID3D12Device) CreateHeap(desc *D3D12_HEAP_DESC) (*ID3D12Heap, error) {
	var h *ID3D12Heap
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateHeap, 4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12Heap)),
		uintptr(unsafe.Pointer(&h)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return h, nil
}

func (d *ID3D12Device) CreatePlacedResource(heap *ID3D12Heap, heapOffset uint64, desc *D3D12_RESOURCE_DESC, initialState D3D12_RESOURCE_STATES, clearValue *D3D12_CLEAR_VALUE) (*ID3D12Resource, error) {
	var r *ID3D12Resource
	ret, _, _ := syscall.Syscall9(
		d.vtbl.CreatePlacedResource, 8,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(heap)),
		uintptr(heapOffset),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialState),
		uintptr(unsafe.Pointer(clearValue)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&r)),
		0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return r, nil
}

func (d *ID3D12Device) CreateFence(initialValue uint64, flags D3D12_FENCE_FLAGS) (*ID3D12Fence, error) {
	var f *ID3D12Fence
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateFence, 5,
		uintptr(unsafe.Pointer(d)),
		uintptr(initialValue),
		uintptr(flags),
		uintptr(unsafe.Pointer(&IID_ID3D12Fence)),
		uintptr(unsafe.Pointer(&f)),
		0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return f, nil
}

func (d *ID3D12Device) GetDeviceRemovedReason() error {
	ret, _, _ := syscall.Syscall(d.vtbl.GetDeviceRemovedReason, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}
