//go:build windows

package com

import (
	"syscall"
	"unsafe"
)

func (r *ID3D12Resource) Release() uint32 {
	ret, _, _ := syscall.Syscall(r.vtbl.Release, 1, uintptr(unsafe.Pointer(r)), 0, 0)
	return uint32(ret)
}

func (r *ID3D12Resource) Map(subresource uint32, readRange *D3D12_RANGE) (unsafe.Pointer, error) {
	var data unsafe.Pointer
	ret, _, _ := syscall.Syscall6(
		r.vtbl.Map, 4,
		uintptr(unsafe.Pointer(r)),
		uintptr(subresource),
		uintptr(unsafe.Pointer(readRange)),
		uintptr(unsafe.Pointer(&data)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return data, nil
}

func (r *ID3D12Resource) Unmap(subresource uint32, writtenRange *D3D12_RANGE) {
	_, _, _ = syscall.Syscall(r.vtbl.Unmap, 3, uintptr(unsafe.Pointer(r)), uintptr(subresource), uintptr(unsafe.Pointer(writtenRange)))
}

func (r *ID3D12Resource) GetGPUVirtualAddress() D3D12_GPU_VIRTUAL_ADDRESS {
	ret, _, _ := syscall.Syscall(r.vtbl.GetGPUVirtualAddress, 1, uintptr(unsafe.Pointer(r)), 0, 0)
	return D3D12_GPU_VIRTUAL_ADDRESS(ret)
}

func (r *ID3D12Resource) GetDesc() D3D12_RESOURCE_DESC {
	var desc D3D12_RESOURCE_DESC
	_, _, _ = syscall.Syscall(r.vtbl.GetDesc, 2, uintptr(unsafe.Pointer(&desc)), uintptr(unsafe.Pointer(r)), 0)
	return desc
}
