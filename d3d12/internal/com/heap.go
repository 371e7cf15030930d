//go:build windows

package com

import (
	"syscall"
	"unsafe"
)

func (h *ID3D12DescriptorHeap) Release() uint32 {
	ret, _, _ := syscall.Syscall(h.vtbl.Release, 1, uintptr(unsafe.Pointer(h)), 0, 0)
	return uint32(ret)
}

func (h *ID3D12DescriptorHeap) GetCPUDescriptorHandleForHeapStart() D3D12_CPU_DESCRIPTOR_HANDLE {
	var handle D3D12_CPU_DESCRIPTOR_HANDLE
	_, _, _ = syscall.Syscall(h.vtbl.GetCPUDescriptorHandleForHeapStart, 2, uintptr(unsafe.Pointer(&handle)), uintptr(unsafe.Pointer(h)), 0)
	return handle
}

func (h *ID3D12DescriptorHeap) GetGPUDescriptorHandleForHeapStart() D3D12_GPU_DESCRIPTOR_HANDLE {
	var handle D3D12_GPU_DESCRIPTOR_HANDLE
	_, _, _ = syscall.Syscall(h.vtbl.GetGPUDescriptorHandleForHeapStart, 2, uintptr(unsafe.Pointer(&handle)), uintptr(unsafe.Pointer(h)), 0)
	return handle
}

func (heap *ID3D12Heap) Release() uint32 {
	ret, _, _ := syscall.Syscall(heap.vtbl.Release, 1, uintptr(unsafe.Pointer(heap)), 0, 0)
	return uint32(ret)
}
