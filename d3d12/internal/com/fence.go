//go:build windows

package com

import (
	"syscall"
	"unsafe"
)

func (f *ID3D12Fence) Release() uint32 {
	ret, _, _ := syscall.Syscall(f.vtbl.Release, 1, uintptr(unsafe.Pointer(f)), 0, 0)
	return uint32(ret)
}

func (f *ID3D12Fence) GetCompletedValue() uint64 {
	ret, _, _ := syscall.Syscall(f.vtbl.GetCompletedValue, 1, uintptr(unsafe.Pointer(f)), 0, 0)
	return uint64(ret)
}

func (f *ID3D12Fence) SetEventOnCompletion(value uint64, event uintptr) error {
	ret, _, _ := syscall.Syscall(f.vtbl.SetEventOnCompletion, 3, uintptr(unsafe.Pointer(f)), uintptr(value), event)
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}

func (f *ID3D12Fence) Signal(value uint64) error {
	ret, _, _ := syscall.Syscall(f.vtbl.Signal, 2, uintptr(unsafe.Pointer(f)), uintptr(value), 0)
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}
