//go:build windows

package com

// Structures supporting copy_buffer_to_texture / GetCopyableFootprints
// (spec.md §4.6's D3D12 copy path).

type D3D12_SUBRESOURCE_FOOTPRINT struct {
	Format   DXGI_FORMAT
	Width    uint32
	Height   uint32
	Depth    uint32
	RowPitch uint32
}

type D3D12_PLACED_SUBRESOURCE_FOOTPRINT struct {
	Offset     uint64
	Footprint  D3D12_SUBRESOURCE_FOOTPRINT
}

type D3D12_TEXTURE_COPY_TYPE uint32

const (
	D3D12_TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX D3D12_TEXTURE_COPY_TYPE = 0
	D3D12_TEXTURE_COPY_TYPE_PLACED_FOOTPRINT  D3D12_TEXTURE_COPY_TYPE = 1
)

// D3D12_TEXTURE_COPY_LOCATION approximates the native union: only one
// of SubresourceIndex / PlacedFootprint is meaningful, selected by
// Type.
type D3D12_TEXTURE_COPY_LOCATION struct {
	Resource         *ID3D12Resource
	Type             D3D12_TEXTURE_COPY_TYPE
	SubresourceIndex uint32
	PlacedFootprint  D3D12_PLACED_SUBRESOURCE_FOOTPRINT
}

type D3D12_BOX struct {
	Left   uint32
	Top    uint32
	Front  uint32
	Right  uint32
	Bottom uint32
	Back   uint32
}
