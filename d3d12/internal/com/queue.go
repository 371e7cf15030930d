//go:build windows

package com

import (
	"syscall"
	"unsafe"
)

func (q *ID3D12CommandQueue) Release() uint32 {
	ret, _, _ := syscall.Syscall(q.vtbl.Release, 1, uintptr(unsafe.Pointer(q)), 0, 0)
	return uint32(ret)
}

func (q *ID3D12CommandQueue) ExecuteCommandLists(lists []*ID3D12GraphicsCommandList) {
	if len(lists) == 0 {
		return
	}
	_, _, _ = syscall.Syscall(
		q.vtbl.ExecuteCommandLists, 3,
		uintptr(unsafe.Pointer(q)),
		uintptr(len(lists)),
		uintptr(unsafe.Pointer(&lists[0])),
	)
}

func (q *ID3D12CommandQueue) Signal(fence *ID3D12Fence, value uint64) error {
	ret, _, _ := syscall.Syscall(q.vtbl.Signal, 3, uintptr(unsafe.Pointer(q)), uintptr(unsafe.Pointer(fence)), uintptr(value))
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}

func (q *ID3D12CommandQueue) Wait(fence *ID3D12Fence, value uint64) error {
	ret, _, _ := syscall.Syscall(q.vtbl.Wait, 3, uintptr(unsafe.Pointer(q)), uintptr(unsafe.Pointer(fence)), uintptr(value))
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}
