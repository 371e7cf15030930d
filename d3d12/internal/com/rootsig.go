//go:build windows

package com

import (
	"syscall"
	"unsafe"
)

func (s *ID3D12RootSignature) Release() uint32 {
	ret, _, _ := syscall.Syscall(s.vtbl.Release, 1, uintptr(unsafe.Pointer(s)), 0, 0)
	return uint32(ret)
}

func (p *ID3D12PipelineState) Release() uint32 {
	ret, _, _ := syscall.Syscall(p.vtbl.Release, 1, uintptr(unsafe.Pointer(p)), 0, 0)
	return uint32(ret)
}
