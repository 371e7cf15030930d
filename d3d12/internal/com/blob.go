//go:build windows

package com

import (
	"syscall"
	"unsafe"
)

func (b *ID3DBlob) Release() uint32 {
	ret, _, _ := syscall.Syscall(b.vtbl.Release, 1, uintptr(unsafe.Pointer(b)), 0, 0)
	return uint32(ret)
}

func (b *ID3DBlob) GetBufferPointer() unsafe.Pointer {
	ret, _, _ := syscall.Syscall(b.vtbl.GetBufferPointer, 1, uintptr(unsafe.Pointer(b)), 0, 0)
	return unsafe.Pointer(ret)
}

func (b *ID3DBlob) GetBufferSize() uintptr {
	ret, _, _ := syscall.Syscall(b.vtbl.GetBufferSize, 1, uintptr(unsafe.Pointer(b)), 0, 0)
	return ret
}
