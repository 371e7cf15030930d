//go:build windows

// Package com provides the hand-rolled COM interop layer the d3d12
// backend is built on: GUIDs, vtable layouts, struct/enum definitions,
// and syscall-based vtable-call wrappers for the subset of the D3D12
// API the backend exercises. It has no dependency on the rhi package
// and knows nothing about the neutral surface.
package com

// GUID mirrors the Windows GUID layout exactly; every COM interface
// identifier below is a real Microsoft-assigned value.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// IID_ID3D12Device is the interface ID for ID3D12Device.
// {189819F1-1DB6-4B57-BE54-1821339B85F7}
var IID_ID3D12Device = GUID{0x189819F1, 0x1DB6, 0x4B57, [8]byte{0xBE, 0x54, 0x18, 0x21, 0x33, 0x9B, 0x85, 0xF7}}

// IID_ID3D12CommandQueue is the interface ID for ID3D12CommandQueue.
// {0EC870A6-5D7E-4C22-8CFC-5BAAE07616ED}
var IID_ID3D12CommandQueue = GUID{0x0EC870A6, 0x5D7E, 0x4C22, [8]byte{0x8C, 0xFC, 0x5B, 0xAA, 0xE0, 0x76, 0x16, 0xED}}

// IID_ID3D12CommandAllocator is the interface ID for ID3D12CommandAllocator.
// {6102DEE4-AF59-4B09-B999-B44D73F09B24}
var IID_ID3D12CommandAllocator = GUID{0x6102DEE4, 0xAF59, 0x4B09, [8]byte{0xB9, 0x99, 0xB4, 0x4D, 0x73, 0xF0, 0x9B, 0x24}}

// IID_ID3D12GraphicsCommandList is the interface ID for ID3D12GraphicsCommandList.
// {5B160D0F-AC1B-4185-8BA8-B3AE42A5A455}
var IID_ID3D12GraphicsCommandList = GUID{0x5B160D0F, 0xAC1B, 0x4185, [8]byte{0x8B, 0xA8, 0xB3, 0xAE, 0x42, 0xA5, 0xA4, 0x55}}

// IID_ID3D12Fence is the interface ID for ID3D12Fence.
// {0A753DCF-C4D8-4B91-ADF6-BE5A60D95A76}
var IID_ID3D12Fence = GUID{0x0A753DCF, 0xC4D8, 0x4B91, [8]byte{0xAD, 0xF6, 0xBE, 0x5A, 0x60, 0xD9, 0x5A, 0x76}}

// IID_ID3D12Resource is the interface ID for ID3D12Resource.
// {696442BE-A72E-4059-BC79-5B5C98040FAD}
var IID_ID3D12Resource = GUID{0x696442BE, 0xA72E, 0x4059, [8]byte{0xBC, 0x79, 0x5B, 0x5C, 0x98, 0x04, 0x0F, 0xAD}}

// IID_ID3D12DescriptorHeap is the interface ID for ID3D12DescriptorHeap.
// {8EFB471D-616C-4F49-90F7-127BB763FA51}
var IID_ID3D12DescriptorHeap = GUID{0x8EFB471D, 0x616C, 0x4F49, [8]byte{0x90, 0xF7, 0x12, 0x7B, 0xB7, 0x63, 0xFA, 0x51}}

// IID_ID3D12Heap is the interface ID for ID3D12Heap.
// {6B3B2502-6E51-45B3-90EE-9884265E8DF3}
var IID_ID3D12Heap = GUID{0x6B3B2502, 0x6E51, 0x45B3, [8]byte{0x90, 0xEE, 0x98, 0x84, 0x26, 0x5E, 0x8D, 0xF3}}

// IID_ID3D12PipelineState is the interface ID for ID3D12PipelineState.
// {765A30F3-F624-4C6F-A828-ACE948622445}
var IID_ID3D12PipelineState = GUID{0x765A30F3, 0xF624, 0x4C6F, [8]byte{0xA8, 0x28, 0xAC, 0xE9, 0x48, 0x62, 0x24, 0x45}}

// IID_ID3D12RootSignature is the interface ID for ID3D12RootSignature.
// {C54A6B66-72DF-4EE8-8BE5-A946A1429214}
var IID_ID3D12RootSignature = GUID{0xC54A6B66, 0x72DF, 0x4EE8, [8]byte{0x8B, 0xE5, 0xA9, 0x46, 0xA1, 0x42, 0x92, 0x14}}

// IID_ID3DBlob is the interface ID for ID3DBlob (ID3D10Blob).
// {8BA5FB08-5195-40E2-AC58-0D989C3A0102}
var IID_ID3DBlob = GUID{0x8BA5FB08, 0x5195, 0x40E2, [8]byte{0xAC, 0x58, 0x0D, 0x98, 0x9C, 0x3A, 0x01, 0x02}}
