//go:build windows

package d3d12

import (
	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/rhi"
)

// pixelFormats maps rhi.PixelFmt to the matching DXGI_FORMAT, one map
// literal per neutral enum, following the table style of vk/convert.go.
var pixelFormats = map[rhi.PixelFmt]com.DXGI_FORMAT{
	rhi.RGBA8un:   com.DXGI_FORMAT_R8G8B8A8_UNORM,
	rhi.RGBA8srgb: com.DXGI_FORMAT_R8G8B8A8_UNORM_SRGB,
	rhi.BGRA8un:   com.DXGI_FORMAT_B8G8R8A8_UNORM,
	rhi.BGRA8srgb: com.DXGI_FORMAT_B8G8R8A8_UNORM_SRGB,
	rhi.RG8un:     com.DXGI_FORMAT_R8G8_UNORM,
	rhi.R8un:      com.DXGI_FORMAT_R8_UNORM,
	rhi.RGBA16f:   com.DXGI_FORMAT_R16G16B16A16_FLOAT,
	rhi.RG16f:     com.DXGI_FORMAT_R16G16_FLOAT,
	rhi.R16f:      com.DXGI_FORMAT_R16_FLOAT,
	rhi.RGBA32f:   com.DXGI_FORMAT_R32G32B32A32_FLOAT,
	rhi.RG32f:     com.DXGI_FORMAT_R32G32_FLOAT,
	rhi.R32f:      com.DXGI_FORMAT_R32_FLOAT,
	rhi.D16un:     com.DXGI_FORMAT_D16_UNORM,
	rhi.D32f:      com.DXGI_FORMAT_D32_FLOAT,
	rhi.D24unS8ui: com.DXGI_FORMAT_D24_UNORM_S8_UINT,
	rhi.D32fS8ui:  com.DXGI_FORMAT_D32_FLOAT_S8X24_UINT,
}

func dxgiFormat(f rhi.PixelFmt) (com.DXGI_FORMAT, error) {
	df, ok := pixelFormats[f]
	if !ok {
		return com.DXGI_FORMAT_UNKNOWN, rhi.Invalid("unsupported pixel format %d", f)
	}
	return df, nil
}

var vertexFormats = map[rhi.VertexFmt]com.DXGI_FORMAT{
	rhi.Int8x4:    com.DXGI_FORMAT_R8G8B8A8_SINT,
	rhi.Int16:     com.DXGI_FORMAT_R16_SINT,
	rhi.Int16x2:   com.DXGI_FORMAT_R16G16_SINT,
	rhi.Int16x4:   com.DXGI_FORMAT_R16G16B16A16_SINT,
	rhi.Int32:     com.DXGI_FORMAT_R32_SINT,
	rhi.Int32x2:   com.DXGI_FORMAT_R32G32_SINT,
	rhi.Int32x3:   com.DXGI_FORMAT_R32G32B32_SINT,
	rhi.Int32x4:   com.DXGI_FORMAT_R32G32B32A32_SINT,
	rhi.UInt8x4:   com.DXGI_FORMAT_R8G8B8A8_UINT,
	rhi.UInt16:    com.DXGI_FORMAT_R16_UINT,
	rhi.UInt16x2:  com.DXGI_FORMAT_R16G16_UINT,
	rhi.UInt16x4:  com.DXGI_FORMAT_R16G16B16A16_UINT,
	rhi.UInt32:    com.DXGI_FORMAT_R32_UINT,
	rhi.UInt32x2:  com.DXGI_FORMAT_R32G32_UINT,
	rhi.UInt32x3:  com.DXGI_FORMAT_R32G32B32_UINT,
	rhi.UInt32x4:  com.DXGI_FORMAT_R32G32B32A32_UINT,
	rhi.Float32:   com.DXGI_FORMAT_R32_FLOAT,
	rhi.Float32x2: com.DXGI_FORMAT_R32G32_FLOAT,
	rhi.Float32x3: com.DXGI_FORMAT_R32G32B32_FLOAT,
	rhi.Float32x4: com.DXGI_FORMAT_R32G32B32A32_FLOAT,
}

// dxgiVertexFormat maps the VertexFmt values listed in vertexFormats.
// The 1-, 2- and 3-component 8-bit formats and the 3-component 16-bit
// formats are not in the table and are rejected with an Invalid error,
// same as gogpu-wgpu/hal/dx12's vertex-format table does for the
// formats it doesn't carry.
func dxgiVertexFormat(f rhi.VertexFmt) (com.DXGI_FORMAT, error) {
	vf, ok := vertexFormats[f]
	if !ok {
		return com.DXGI_FORMAT_UNKNOWN, rhi.Invalid("unsupported vertex format %d", f)
	}
	return vf, nil
}

func dxgiIndexFormat(f rhi.IndexFmt) com.DXGI_FORMAT {
	if f == rhi.Index16 {
		return com.DXGI_FORMAT_R16_UINT
	}
	return com.DXGI_FORMAT_R32_UINT
}

// topologyType maps a neutral Topology to the PSO's
// D3D12_PRIMITIVE_TOPOLOGY_TYPE; topology() below separately maps it
// to the per-draw D3D_PRIMITIVE_TOPOLOGY the command list is set to,
// since D3D12 splits the concept the way Vulkan does not.
var topologyTypes = map[rhi.Topology]com.D3D12_PRIMITIVE_TOPOLOGY_TYPE{
	rhi.TPoint:         com.D3D12_PRIMITIVE_TOPOLOGY_TYPE_POINT,
	rhi.TLine:          com.D3D12_PRIMITIVE_TOPOLOGY_TYPE_LINE,
	rhi.TLineStrip:     com.D3D12_PRIMITIVE_TOPOLOGY_TYPE_LINE,
	rhi.TTriangle:      com.D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE,
	rhi.TTriangleStrip: com.D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE,
}

func topologyType(t rhi.Topology) com.D3D12_PRIMITIVE_TOPOLOGY_TYPE { return topologyTypes[t] }

var topologies = map[rhi.Topology]com.D3D_PRIMITIVE_TOPOLOGY{
	rhi.TPoint:         com.D3D_PRIMITIVE_TOPOLOGY_POINTLIST,
	rhi.TLine:          com.D3D_PRIMITIVE_TOPOLOGY_LINELIST,
	rhi.TLineStrip:     com.D3D_PRIMITIVE_TOPOLOGY_LINESTRIP,
	rhi.TTriangle:      com.D3D_PRIMITIVE_TOPOLOGY_TRIANGLELIST,
	rhi.TTriangleStrip: com.D3D_PRIMITIVE_TOPOLOGY_TRIANGLESTRIP,
}

func topology(t rhi.Topology) com.D3D_PRIMITIVE_TOPOLOGY { return topologies[t] }

func cullMode(c rhi.CullMode) com.D3D12_CULL_MODE {
	switch c {
	case rhi.CullFront:
		return com.D3D12_CULL_MODE_FRONT
	case rhi.CullBack:
		return com.D3D12_CULL_MODE_BACK
	default:
		return com.D3D12_CULL_MODE_NONE
	}
}

func fillMode(f rhi.FillMode) com.D3D12_FILL_MODE {
	if f == rhi.FillWireframe {
		return com.D3D12_FILL_MODE_WIREFRAME
	}
	return com.D3D12_FILL_MODE_SOLID
}

var cmpFuncs = map[rhi.CmpFunc]com.D3D12_COMPARISON_FUNC{
	rhi.CmpNever:        com.D3D12_COMPARISON_FUNC_NEVER,
	rhi.CmpLess:         com.D3D12_COMPARISON_FUNC_LESS,
	rhi.CmpEqual:        com.D3D12_COMPARISON_FUNC_EQUAL,
	rhi.CmpLessEqual:    com.D3D12_COMPARISON_FUNC_LESS_EQUAL,
	rhi.CmpGreater:      com.D3D12_COMPARISON_FUNC_GREATER,
	rhi.CmpNotEqual:     com.D3D12_COMPARISON_FUNC_NOT_EQUAL,
	rhi.CmpGreaterEqual: com.D3D12_COMPARISON_FUNC_GREATER_EQUAL,
	rhi.CmpAlways:       com.D3D12_COMPARISON_FUNC_ALWAYS,
}

func compareFunc(c rhi.CmpFunc) com.D3D12_COMPARISON_FUNC { return cmpFuncs[c] }

var stencilOps = map[rhi.StencilOp]com.D3D12_STENCIL_OP{
	rhi.StencilKeep:     com.D3D12_STENCIL_OP_KEEP,
	rhi.StencilZero:     com.D3D12_STENCIL_OP_ZERO,
	rhi.StencilReplace:  com.D3D12_STENCIL_OP_REPLACE,
	rhi.StencilIncClamp: com.D3D12_STENCIL_OP_INCR_SAT,
	rhi.StencilDecClamp: com.D3D12_STENCIL_OP_DECR_SAT,
	rhi.StencilInvert:   com.D3D12_STENCIL_OP_INVERT,
	rhi.StencilIncWrap:  com.D3D12_STENCIL_OP_INCR,
	rhi.StencilDecWrap:  com.D3D12_STENCIL_OP_DECR,
}

func stencilOp(s rhi.StencilOp) com.D3D12_STENCIL_OP { return stencilOps[s] }

var blendOps = map[rhi.BlendOp]com.D3D12_BLEND_OP{
	rhi.BlendAdd:        com.D3D12_BLEND_OP_ADD,
	rhi.BlendSubtract:   com.D3D12_BLEND_OP_SUBTRACT,
	rhi.BlendRevSubtract: com.D3D12_BLEND_OP_REV_SUBTRACT,
	rhi.BlendMin:        com.D3D12_BLEND_OP_MIN,
	rhi.BlendMax:        com.D3D12_BLEND_OP_MAX,
}

func blendOp(b rhi.BlendOp) com.D3D12_BLEND_OP { return blendOps[b] }

// colorBlendFactors and alphaBlendFactors hold the color-channel and
// alpha-channel D3D12_BLEND values for the factors that differ between
// the two (SRC_COLOR/DST_COLOR have no meaning on the alpha channel,
// so D3D12 substitutes the alpha equivalent there); blendFactor below
// picks the right table at the call site, unlike Vulkan's single
// VkBlendFactor enum that needs no such promotion (see vk/convert.go).
var colorBlendFactors = map[rhi.BlendFac]com.D3D12_BLEND{
	rhi.BlendZero:             com.D3D12_BLEND_ZERO,
	rhi.BlendOne:              com.D3D12_BLEND_ONE,
	rhi.BlendSrcColor:         com.D3D12_BLEND_SRC_COLOR,
	rhi.BlendInvSrcColor:      com.D3D12_BLEND_INV_SRC_COLOR,
	rhi.BlendSrcAlpha:         com.D3D12_BLEND_SRC_ALPHA,
	rhi.BlendInvSrcAlpha:      com.D3D12_BLEND_INV_SRC_ALPHA,
	rhi.BlendDstColor:         com.D3D12_BLEND_DEST_COLOR,
	rhi.BlendInvDstColor:      com.D3D12_BLEND_INV_DEST_COLOR,
	rhi.BlendDstAlpha:         com.D3D12_BLEND_DEST_ALPHA,
	rhi.BlendInvDstAlpha:      com.D3D12_BLEND_INV_DEST_ALPHA,
	rhi.BlendSrcAlphaSaturated: com.D3D12_BLEND_SRC_ALPHA_SAT,
	rhi.BlendConstColor:       com.D3D12_BLEND_BLEND_FACTOR,
	rhi.BlendInvConstColor:    com.D3D12_BLEND_INV_BLEND_FACTOR,
}

var alphaBlendFactors = map[rhi.BlendFac]com.D3D12_BLEND{
	rhi.BlendZero:             com.D3D12_BLEND_ZERO,
	rhi.BlendOne:              com.D3D12_BLEND_ONE,
	rhi.BlendSrcColor:         com.D3D12_BLEND_SRC_ALPHA,
	rhi.BlendInvSrcColor:      com.D3D12_BLEND_INV_SRC_ALPHA,
	rhi.BlendSrcAlpha:         com.D3D12_BLEND_SRC_ALPHA,
	rhi.BlendInvSrcAlpha:      com.D3D12_BLEND_INV_SRC_ALPHA,
	rhi.BlendDstColor:         com.D3D12_BLEND_DEST_ALPHA,
	rhi.BlendInvDstColor:      com.D3D12_BLEND_INV_DEST_ALPHA,
	rhi.BlendDstAlpha:         com.D3D12_BLEND_DEST_ALPHA,
	rhi.BlendInvDstAlpha:      com.D3D12_BLEND_INV_DEST_ALPHA,
	rhi.BlendSrcAlphaSaturated: com.D3D12_BLEND_SRC_ALPHA_SAT,
	rhi.BlendConstColor:       com.D3D12_BLEND_BLEND_FACTOR,
	rhi.BlendInvConstColor:    com.D3D12_BLEND_INV_BLEND_FACTOR,
}

func blendFactor(b rhi.BlendFac, alpha bool) com.D3D12_BLEND {
	if alpha {
		return alphaBlendFactors[b]
	}
	return colorBlendFactors[b]
}

func colorWriteMask(m rhi.ColorMask) uint8 {
	var w uint8
	if m&rhi.ColorRed != 0 {
		w |= com.D3D12_COLOR_WRITE_ENABLE_RED
	}
	if m&rhi.ColorGreen != 0 {
		w |= com.D3D12_COLOR_WRITE_ENABLE_GREEN
	}
	if m&rhi.ColorBlue != 0 {
		w |= com.D3D12_COLOR_WRITE_ENABLE_BLUE
	}
	if m&rhi.ColorAlpha != 0 {
		w |= com.D3D12_COLOR_WRITE_ENABLE_ALPHA
	}
	return w
}

// filter builds a D3D12_FILTER by OR-ing the bit constants for each
// stage (mip/mag/min) and adding the comparison/anisotropic bits,
// following the bit layout documented on com.D3D12_FILTER.
func filter(min, mag, mip rhi.Filter, cmp bool, anisotropic bool) com.D3D12_FILTER {
	if anisotropic {
		f := com.D3D12_FILTER_BIT_ANISOTROPIC
		if cmp {
			f |= com.D3D12_FILTER_BIT_COMPARISON
		}
		return com.D3D12_FILTER(f)
	}
	var f uint32
	if min == rhi.FilterLinear {
		f |= com.D3D12_FILTER_BIT_MIN_LINEAR
	}
	if mag == rhi.FilterLinear {
		f |= com.D3D12_FILTER_BIT_MAG_LINEAR
	}
	if mip == rhi.FilterLinear {
		f |= com.D3D12_FILTER_BIT_MIP_LINEAR
	}
	if cmp {
		f |= com.D3D12_FILTER_BIT_COMPARISON
	}
	return com.D3D12_FILTER(f)
}

var addrModes = map[rhi.AddrMode]com.D3D12_TEXTURE_ADDRESS_MODE{
	rhi.AddrWrap:   com.D3D12_TEXTURE_ADDRESS_MODE_WRAP,
	rhi.AddrMirror: com.D3D12_TEXTURE_ADDRESS_MODE_MIRROR,
	rhi.AddrClamp:  com.D3D12_TEXTURE_ADDRESS_MODE_CLAMP,
	rhi.AddrBorder: com.D3D12_TEXTURE_ADDRESS_MODE_BORDER,
}

func addrMode(a rhi.AddrMode) com.D3D12_TEXTURE_ADDRESS_MODE { return addrModes[a] }

// resourceDimension derives the D3D12_RESOURCE_DIMENSION from the
// neutral Dimension, per the resource factory build in resource.go.
func resourceDimension(d rhi.Dimension) com.D3D12_RESOURCE_DIMENSION {
	switch d {
	case rhi.Dim1D:
		return com.D3D12_RESOURCE_DIMENSION_TEXTURE1D
	case rhi.Dim3D_:
		return com.D3D12_RESOURCE_DIMENSION_TEXTURE3D
	default:
		return com.D3D12_RESOURCE_DIMENSION_TEXTURE2D
	}
}

func descriptorRangeType(t rhi.DescType) com.D3D12_DESCRIPTOR_RANGE_TYPE {
	switch t {
	case rhi.DCBuffer:
		return com.D3D12_DESCRIPTOR_RANGE_TYPE_CBV
	case rhi.DBuffer, rhi.DTexture:
		return com.D3D12_DESCRIPTOR_RANGE_TYPE_SRV
	case rhi.DRWBuffer, rhi.DRWTexture:
		return com.D3D12_DESCRIPTOR_RANGE_TYPE_UAV
	case rhi.DSampler:
		return com.D3D12_DESCRIPTOR_RANGE_TYPE_SAMPLER
	default:
		return com.D3D12_DESCRIPTOR_RANGE_TYPE_SRV
	}
}

// shaderVisibility collapses a neutral Stage mask to a single
// D3D12_SHADER_VISIBILITY; root parameters can only target one stage
// or all of them, unlike Vulkan's OR-able VkShaderStageFlags, so a
// mixed mask always widens to ALL (see rootsig.go's layout build).
func shaderVisibility(s rhi.Stage) com.D3D12_SHADER_VISIBILITY {
	switch s {
	case rhi.SVertex:
		return com.D3D12_SHADER_VISIBILITY_VERTEX
	case rhi.SFragment:
		return com.D3D12_SHADER_VISIBILITY_PIXEL
	default:
		return com.D3D12_SHADER_VISIBILITY_ALL
	}
}

// resourceState maps the neutral Layout used on the Vulkan side (see
// vk/convert.go's imageLayouts) to the D3D12_RESOURCE_STATES the
// command recorder's barrier translation (cmd.go) transitions
// resources through; D3D12 has no separate "layout" concept, states
// double as both access rights and the synchronization scope.
var resourceStates = map[rhi.Layout]com.D3D12_RESOURCE_STATES{
	rhi.LayoutUndefined:   com.D3D12_RESOURCE_STATE_COMMON,
	rhi.LayoutCommon:      com.D3D12_RESOURCE_STATE_COMMON,
	rhi.LayoutColorTarget: com.D3D12_RESOURCE_STATE_RENDER_TARGET,
	rhi.LayoutDSTarget:    com.D3D12_RESOURCE_STATE_DEPTH_WRITE,
	rhi.LayoutDSRead:      com.D3D12_RESOURCE_STATE_DEPTH_READ,
	rhi.LayoutResolveSrc:  com.D3D12_RESOURCE_STATE_RESOLVE_SOURCE,
	rhi.LayoutResolveDst:  com.D3D12_RESOURCE_STATE_RESOLVE_DEST,
	rhi.LayoutCopySrc:     com.D3D12_RESOURCE_STATE_COPY_SOURCE,
	rhi.LayoutCopyDst:     com.D3D12_RESOURCE_STATE_COPY_DEST,
	rhi.LayoutShaderRead:  com.D3D12_RESOURCE_STATE_PIXEL_SHADER_RESOURCE | com.D3D12_RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE,
	rhi.LayoutPresent:     com.D3D12_RESOURCE_STATE_PRESENT,
}

func resourceState(l rhi.Layout) com.D3D12_RESOURCE_STATES { return resourceStates[l] }

func loadOp(l rhi.LoadOp) bool { return l == rhi.LoadClear }

func storeOp(s rhi.StoreOp) bool { return s == rhi.StoreStore }

// blockSizes holds the bytes-per-texel of every format pixelFormats
// carries; cmd.go's placedFootprint uses it to derive a copy's row
// pitch, since ID3D12Device has no GetCopyableFootprints wrapper here.
var blockSizes = map[rhi.PixelFmt]int{
	rhi.RGBA8un:   4,
	rhi.RGBA8srgb: 4,
	rhi.BGRA8un:   4,
	rhi.BGRA8srgb: 4,
	rhi.RG8un:     2,
	rhi.R8un:      1,
	rhi.RGBA16f:   8,
	rhi.RG16f:     4,
	rhi.R16f:      2,
	rhi.RGBA32f:   16,
	rhi.RG32f:     8,
	rhi.R32f:      4,
	rhi.D16un:     2,
	rhi.D32f:      4,
	rhi.D24unS8ui: 4,
	rhi.D32fS8ui:  8,
}

func formatBlockSize(f rhi.PixelFmt) int {
	if n, ok := blockSizes[f]; ok {
		return n
	}
	return 4
}

// accessResourceState maps a buffer's neutral Access scope to the
// D3D12_RESOURCE_STATES bits that grant it, OR-ing together every bit
// set in a (potentially combined) access mask; cmd.go's Barrier uses
// this for buffer barriers, which carry Access/Sync but no Layout,
// unlike textures which go through resourceState above.
func accessResourceState(a rhi.Access) com.D3D12_RESOURCE_STATES {
	var s com.D3D12_RESOURCE_STATES
	if a&rhi.AccessVertexBufRead != 0 {
		s |= com.D3D12_RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER
	}
	if a&rhi.AccessIndexBufRead != 0 {
		s |= com.D3D12_RESOURCE_STATE_INDEX_BUFFER
	}
	if a&rhi.AccessCopyRead != 0 {
		s |= com.D3D12_RESOURCE_STATE_COPY_SOURCE
	}
	if a&rhi.AccessCopyWrite != 0 {
		s |= com.D3D12_RESOURCE_STATE_COPY_DEST
	}
	if a&rhi.AccessShaderRead != 0 {
		s |= com.D3D12_RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE | com.D3D12_RESOURCE_STATE_PIXEL_SHADER_RESOURCE
	}
	if a&rhi.AccessShaderWrite != 0 {
		s |= com.D3D12_RESOURCE_STATE_UNORDERED_ACCESS
	}
	if s == 0 {
		s = com.D3D12_RESOURCE_STATE_COMMON
	}
	return s
}
