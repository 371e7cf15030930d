//go:build windows

package com

import "unsafe"

// ptrOf returns an unsafe.Pointer to a fixed-size byte array, used to
// reinterpret the union-shaped fields (D3D12_CLEAR_VALUE,
// D3D12_RESOURCE_BARRIER, D3D12_ROOT_PARAMETER1) the way gogpu-wgpu's
// d3d12 package punches through Go's lack of native unions.
func ptrOf(p any) unsafe.Pointer {
	switch v := p.(type) {
	case *[16]byte:
		return unsafe.Pointer(v)
	case *[24]byte:
		return unsafe.Pointer(v)
	default:
		panic("com: ptrOf: unsupported type")
	}
}
