//go:build windows

package com

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	d3d12Lib     *D3D12Lib
	d3d12LibOnce sync.Once
	d3d12LibErr  error
)

// D3D12Lib holds resolved entry points into d3d12.dll, loaded with
// golang.org/x/sys/windows instead of the stdlib syscall package's
// lazy-DLL facility (SPEC_FULL.md's DOMAIN STACK section on the
// Windows backend).
type D3D12Lib struct {
	dll                                  *windows.LazyDLL
	d3d12CreateDevice                    *windows.LazyProc
	d3d12SerializeVersionedRootSignature *windows.LazyProc
}

// LoadD3D12 loads d3d12.dll. Safe to call multiple times; the library
// is resolved once and cached.
func LoadD3D12() (*D3D12Lib, error) {
	d3d12LibOnce.Do(func() {
		d3d12Lib, d3d12LibErr = loadD3D12Internal()
	})
	return d3d12Lib, d3d12LibErr
}

func loadD3D12Internal() (*D3D12Lib, error) {
	dll := windows.NewLazySystemDLL("d3d12.dll")
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("com: failed to load d3d12.dll: %w", err)
	}
	return &D3D12Lib{
		dll:                                  dll,
		d3d12CreateDevice:                    dll.NewProc("D3D12CreateDevice"),
		d3d12SerializeVersionedRootSignature: dll.NewProc("D3D12SerializeVersionedRootSignature"),
	}, nil
}

// CreateDevice creates a D3D12 device against adapter (nil selects
// the default adapter) at minFeatureLevel.
func (lib *D3D12Lib) CreateDevice(adapter unsafe.Pointer, minFeatureLevel D3D_FEATURE_LEVEL) (*ID3D12Device, error) {
	var device *ID3D12Device
	ret, _, _ := lib.d3d12CreateDevice.Call(
		uintptr(adapter),
		uintptr(minFeatureLevel),
		uintptr(unsafe.Pointer(&IID_ID3D12Device)),
		uintptr(unsafe.Pointer(&device)),
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return device, nil
}

// SerializeVersionedRootSignature serializes a v1.1 root-signature
// description to a blob ready for ID3D12Device.CreateRootSignature.
func (lib *D3D12Lib) SerializeVersionedRootSignature(desc *D3D12_VERSIONED_ROOT_SIGNATURE_DESC) (*ID3DBlob, *ID3DBlob, error) {
	var blob *ID3DBlob
	var errorBlob *ID3DBlob
	ret, _, _ := lib.d3d12SerializeVersionedRootSignature.Call(
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&blob)),
		uintptr(unsafe.Pointer(&errorBlob)),
	)
	if ret != 0 {
		return nil, errorBlob, HRESULTError(ret)
	}
	return blob, nil, nil
}
