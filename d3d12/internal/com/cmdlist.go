//go:build windows

package com

import (
	"syscall"
	"unsafe"
)

func (c *ID3D12GraphicsCommandList) Release() uint32 {
	ret, _, _ := syscall.Syscall(c.vtbl.Release, 1, uintptr(unsafe.Pointer(c)), 0, 0)
	return uint32(ret)
}

func (c *ID3D12GraphicsCommandList) Close() error {
	ret, _, _ := syscall.Syscall(c.vtbl.Close, 1, uintptr(unsafe.Pointer(c)), 0, 0)
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}

func (c *ID3D12GraphicsCommandList) Reset(allocator *ID3D12CommandAllocator, initialState *ID3D12PipelineState) error {
	ret, _, _ := syscall.Syscall(c.vtbl.Reset, 3, uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(allocator)), uintptr(unsafe.Pointer(initialState)))
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}

func (c *ID3D12GraphicsCommandList) DrawInstanced(vertexCountPerInstance, instanceCount, startVertexLocation, startInstanceLocation uint32) {
	_, _, _ = syscall.Syscall6(
		c.vtbl.DrawInstanced, 5,
		uintptr(unsafe.Pointer(c)),
		uintptr(vertexCountPerInstance),
		uintptr(instanceCount),
		uintptr(startVertexLocation),
		uintptr(startInstanceLocation),
		0,
	)
}

func (c *ID3D12GraphicsCommandList) DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndexLocation uint32, baseVertexLocation int32, startInstanceLocation uint32) {
	_, _, _ = syscall.Syscall6(
		c.vtbl.DrawIndexedInstanced, 6,
		uintptr(unsafe.Pointer(c)),
		uintptr(indexCountPerInstance),
		uintptr(instanceCount),
		uintptr(startIndexLocation),
		uintptr(baseVertexLocation),
		uintptr(startInstanceLocation),
	)
}

func (c *ID3D12GraphicsCommandList) Dispatch(x, y, z uint32) {
	_, _, _ = syscall.Syscall6(c.vtbl.Dispatch, 4, uintptr(unsafe.Pointer(c)), uintptr(x), uintptr(y), uintptr(z), 0, 0)
}

func (c *ID3D12GraphicsCommandList) CopyBufferRegion(dst *ID3D12Resource, dstOffset uint64, src *ID3D12Resource, srcOffset, numBytes uint64) {
	_, _, _ = syscall.Syscall6(
		c.vtbl.CopyBufferRegion, 5,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(dstOffset),
		uintptr(unsafe.Pointer(src)),
		uintptr(srcOffset),
		uintptr(numBytes),
	)
}

func (c *ID3D12GraphicsCommandList) CopyTextureRegion(dst *D3D12_TEXTURE_COPY_LOCATION, dstX, dstY, dstZ uint32, src *D3D12_TEXTURE_COPY_LOCATION, srcBox *D3D12_BOX) {
	_, _, _ = syscall.Syscall9(
		c.vtbl.CopyTextureRegion, 7,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(dstX),
		uintptr(dstY),
		uintptr(dstZ),
		uintptr(unsafe.Pointer(src)),
		uintptr(unsafe.Pointer(srcBox)),
		0, 0,
	)
}

func (c *ID3D12GraphicsCommandList) IASetPrimitiveTopology(topology D3D_PRIMITIVE_TOPOLOGY) {
	_, _, _ = syscall.Syscall(c.vtbl.IASetPrimitiveTopology, 2, uintptr(unsafe.Pointer(c)), uintptr(topology), 0)
}

func (c *ID3D12GraphicsCommandList) RSSetViewports(viewports []D3D12_VIEWPORT) {
	_, _, _ = syscall.Syscall(c.vtbl.RSSetViewports, 3, uintptr(unsafe.Pointer(c)), uintptr(len(viewports)), uintptr(unsafe.Pointer(&viewports[0])))
}

func (c *ID3D12GraphicsCommandList) RSSetScissorRects(rects []D3D12_RECT) {
	_, _, _ = syscall.Syscall(c.vtbl.RSSetScissorRects, 3, uintptr(unsafe.Pointer(c)), uintptr(len(rects)), uintptr(unsafe.Pointer(&rects[0])))
}

func (c *ID3D12GraphicsCommandList) OMSetBlendFactor(factor *[4]float32) {
	_, _, _ = syscall.Syscall(c.vtbl.OMSetBlendFactor, 2, uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(factor)), 0)
}

func (c *ID3D12GraphicsCommandList) OMSetStencilRef(ref uint32) {
	_, _, _ = syscall.Syscall(c.vtbl.OMSetStencilRef, 2, uintptr(unsafe.Pointer(c)), uintptr(ref), 0)
}

func (c *ID3D12GraphicsCommandList) SetPipelineState(pso *ID3D12PipelineState) {
	_, _, _ = syscall.Syscall(c.vtbl.SetPipelineState, 2, uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(pso)), 0)
}

func (c *ID3D12GraphicsCommandList) ResourceBarrier(barriers []D3D12_RESOURCE_BARRIER) {
	if len(barriers) == 0 {
		return
	}
	_, _, _ = syscall.Syscall(
		c.vtbl.ResourceBarrier, 3,
		uintptr(unsafe.Pointer(c)),
		uintptr(len(barriers)),
		uintptr(unsafe.Pointer(&barriers[0])),
	)
}

func (c *ID3D12GraphicsCommandList) SetDescriptorHeaps(heaps []*ID3D12DescriptorHeap) {
	if len(heaps) == 0 {
		return
	}
	_, _, _ = syscall.Syscall(
		c.vtbl.SetDescriptorHeaps, 3,
		uintptr(unsafe.Pointer(c)),
		uintptr(len(heaps)),
		uintptr(unsafe.Pointer(&heaps[0])),
	)
}

func (c *ID3D12GraphicsCommandList) SetGraphicsRootSignature(rs *ID3D12RootSignature) {
	_, _, _ = syscall.Syscall(c.vtbl.SetGraphicsRootSignature, 2, uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(rs)), 0)
}

func (c *ID3D12GraphicsCommandList) SetComputeRootSignature(rs *ID3D12RootSignature) {
	_, _, _ = syscall.Syscall(c.vtbl.SetComputeRootSignature, 2, uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(rs)), 0)
}

func (c *ID3D12GraphicsCommandList) SetGraphicsRootDescriptorTable(rootParameterIndex uint32, base D3D12_GPU_DESCRIPTOR_HANDLE) {
	_, _, _ = syscall.Syscall(c.vtbl.SetGraphicsRootDescriptorTable, 3, uintptr(unsafe.Pointer(c)), uintptr(rootParameterIndex), uintptr(base.Ptr))
}

func (c *ID3D12GraphicsCommandList) SetComputeRootDescriptorTable(rootParameterIndex uint32, base D3D12_GPU_DESCRIPTOR_HANDLE) {
	_, _, _ = syscall.Syscall(c.vtbl.SetComputeRootDescriptorTable, 3, uintptr(unsafe.Pointer(c)), uintptr(rootParameterIndex), uintptr(base.Ptr))
}

func (c *ID3D12GraphicsCommandList) SetGraphicsRoot32BitConstants(rootParameterIndex uint32, numValues uint32, srcData unsafe.Pointer, destOffset uint32) {
	_, _, _ = syscall.Syscall6(
		c.vtbl.SetGraphicsRoot32BitConstants, 5,
		uintptr(unsafe.Pointer(c)),
		uintptr(rootParameterIndex),
		uintptr(numValues),
		uintptr(srcData),
		uintptr(destOffset),
		0,
	)
}

func (c *ID3D12GraphicsCommandList) SetComputeRoot32BitConstants(rootParameterIndex uint32, numValues uint32, srcData unsafe.Pointer, destOffset uint32) {
	_, _, _ = syscall.Syscall6(
		c.vtbl.SetComputeRoot32BitConstants, 5,
		uintptr(unsafe.Pointer(c)),
		uintptr(rootParameterIndex),
		uintptr(numValues),
		uintptr(srcData),
		uintptr(destOffset),
		0,
	)
}

func (c *ID3D12GraphicsCommandList) SetGraphicsRootConstantBufferView(rootParameterIndex uint32, addr D3D12_GPU_VIRTUAL_ADDRESS) {
	_, _, _ = syscall.Syscall(c.vtbl.SetGraphicsRootConstantBufferView, 3, uintptr(unsafe.Pointer(c)), uintptr(rootParameterIndex), uintptr(addr))
}

func (c *ID3D12GraphicsCommandList) SetGraphicsRootShaderResourceView(rootParameterIndex uint32, addr D3D12_GPU_VIRTUAL_ADDRESS) {
	_, _, _ = syscall.Syscall(c.vtbl.SetGraphicsRootShaderResourceView, 3, uintptr(unsafe.Pointer(c)), uintptr(rootParameterIndex), uintptr(addr))
}

func (c *ID3D12GraphicsCommandList) SetGraphicsRootUnorderedAccessView(rootParameterIndex uint32, addr D3D12_GPU_VIRTUAL_ADDRESS) {
	_, _, _ = syscall.Syscall(c.vtbl.SetGraphicsRootUnorderedAccessView, 3, uintptr(unsafe.Pointer(c)), uintptr(rootParameterIndex), uintptr(addr))
}

func (c *ID3D12GraphicsCommandList) SetComputeRootConstantBufferView(rootParameterIndex uint32, addr D3D12_GPU_VIRTUAL_ADDRESS) {
	_, _, _ = syscall.Syscall(c.vtbl.SetComputeRootConstantBufferView, 3, uintptr(unsafe.Pointer(c)), uintptr(rootParameterIndex), uintptr(addr))
}

func (c *ID3D12GraphicsCommandList) SetComputeRootShaderResourceView(rootParameterIndex uint32, addr D3D12_GPU_VIRTUAL_ADDRESS) {
	_, _, _ = syscall.Syscall(c.vtbl.SetComputeRootShaderResourceView, 3, uintptr(unsafe.Pointer(c)), uintptr(rootParameterIndex), uintptr(addr))
}

func (c *ID3D12GraphicsCommandList) SetComputeRootUnorderedAccessView(rootParameterIndex uint32, addr D3D12_GPU_VIRTUAL_ADDRESS) {
	_, _, _ = syscall.Syscall(c.vtbl.SetComputeRootUnorderedAccessView, 3, uintptr(unsafe.Pointer(c)), uintptr(rootParameterIndex), uintptr(addr))
}

func (c *ID3D12GraphicsCommandList) IASetIndexBuffer(view *D3D12_INDEX_BUFFER_VIEW) {
	_, _, _ = syscall.Syscall(c.vtbl.IASetIndexBuffer, 2, uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(view)), 0)
}

func (c *ID3D12GraphicsCommandList) IASetVertexBuffers(startSlot uint32, views []D3D12_VERTEX_BUFFER_VIEW) {
	if len(views) == 0 {
		return
	}
	_, _, _ = syscall.Syscall6(
		c.vtbl.IASetVertexBuffers, 4,
		uintptr(unsafe.Pointer(c)),
		uintptr(startSlot),
		uintptr(len(views)),
		uintptr(unsafe.Pointer(&views[0])),
		0, 0,
	)
}

func (c *ID3D12GraphicsCommandList) OMSetRenderTargets(rtvs []D3D12_CPU_DESCRIPTOR_HANDLE, singleHandleToRange bool, dsv *D3D12_CPU_DESCRIPTOR_HANDLE) {
	var rtvPtr unsafe.Pointer
	if len(rtvs) > 0 {
		rtvPtr = unsafe.Pointer(&rtvs[0])
	}
	single := uintptr(0)
	if singleHandleToRange {
		single = 1
	}
	_, _, _ = syscall.Syscall6(
		c.vtbl.OMSetRenderTargets, 5,
		uintptr(unsafe.Pointer(c)),
		uintptr(len(rtvs)),
		uintptr(rtvPtr),
		single,
		uintptr(unsafe.Pointer(dsv)),
		0,
	)
}

func (c *ID3D12GraphicsCommandList) ClearRenderTargetView(rtv D3D12_CPU_DESCRIPTOR_HANDLE, color *[4]float32, rects []D3D12_RECT) {
	var rectPtr unsafe.Pointer
	if len(rects) > 0 {
		rectPtr = unsafe.Pointer(&rects[0])
	}
	_, _, _ = syscall.Syscall6(
		c.vtbl.ClearRenderTargetView, 5,
		uintptr(unsafe.Pointer(c)),
		rtv.Ptr,
		uintptr(unsafe.Pointer(color)),
		uintptr(len(rects)),
		uintptr(rectPtr),
		0,
	)
}

// D3D12_CLEAR_FLAGS selects depth, stencil, or both in
// ClearDepthStencilView.
type D3D12_CLEAR_FLAGS uint32

const (
	D3D12_CLEAR_FLAG_DEPTH   D3D12_CLEAR_FLAGS = 0x1
	D3D12_CLEAR_FLAG_STENCIL D3D12_CLEAR_FLAGS = 0x2
)

func (c *ID3D12GraphicsCommandList) ClearDepthStencilView(dsv D3D12_CPU_DESCRIPTOR_HANDLE, flags D3D12_CLEAR_FLAGS, depth float32, stencil uint8, rects []D3D12_RECT) {
	var rectPtr unsafe.Pointer
	if len(rects) > 0 {
		rectPtr = unsafe.Pointer(&rects[0])
	}
	_, _, _ = syscall.Syscall9(
		c.vtbl.ClearDepthStencilView, 7,
		uintptr(unsafe.Pointer(c)),
		dsv.Ptr,
		uintptr(flags),
		uintptr(depth),
		uintptr(stencil),
		uintptr(len(rects)),
		uintptr(rectPtr),
		0, 0,
	)
}
