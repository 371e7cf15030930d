//go:build windows

package com

// D3D12_GPU_VIRTUAL_ADDRESS is a device virtual address, always 64-bit
// regardless of host pointer width.
type D3D12_GPU_VIRTUAL_ADDRESS uint64

type D3D12_COMMAND_QUEUE_DESC struct {
	Type     D3D12_COMMAND_LIST_TYPE
	Priority int32
	Flags    D3D12_COMMAND_QUEUE_FLAGS
	NodeMask uint32
}

type D3D12_HEAP_PROPERTIES struct {
	Type                 D3D12_HEAP_TYPE
	CPUPageProperty      D3D12_CPU_PAGE_PROPERTY
	MemoryPoolPreference D3D12_MEMORY_POOL
	CreationNodeMask     uint32
	VisibleNodeMask      uint32
}

type D3D12_HEAP_DESC struct {
	SizeInBytes uint64
	Properties  D3D12_HEAP_PROPERTIES
	Alignment   uint64
	Flags       D3D12_HEAP_FLAGS
}

type D3D12_RESOURCE_DESC struct {
	Dimension        D3D12_RESOURCE_DIMENSION
	Alignment        uint64
	Width            uint64
	Height           uint32
	DepthOrArraySize uint16
	MipLevels        uint16
	Format           DXGI_FORMAT
	SampleDesc       DXGI_SAMPLE_DESC
	Layout           D3D12_TEXTURE_LAYOUT
	Flags            D3D12_RESOURCE_FLAGS
}

type D3D12_RESOURCE_ALLOCATION_INFO struct {
	SizeInBytes uint64
	Alignment   uint64
}

type D3D12_DEPTH_STENCIL_VALUE struct {
	Depth   float32
	Stencil uint8
}

// D3D12_CLEAR_VALUE's Format+union is approximated with a fixed byte
// array large enough for either a float[4] color or a depth/stencil
// pair; SetColor/SetDepthStencil write into it directly.
type D3D12_CLEAR_VALUE struct {
	Format DXGI_FORMAT
	Union  [16]byte
}

func (c *D3D12_CLEAR_VALUE) SetColor(r, g, b, a float32) {
	*(*[4]float32)(ptrOf(&c.Union)) = [4]float32{r, g, b, a}
}

func (c *D3D12_CLEAR_VALUE) SetDepthStencil(depth float32, stencil uint8) {
	*(*D3D12_DEPTH_STENCIL_VALUE)(ptrOf(&c.Union)) = D3D12_DEPTH_STENCIL_VALUE{Depth: depth, Stencil: stencil}
}

type D3D12_RANGE struct {
	Begin uint64
	End   uint64
}

// D3D12_CPU_DESCRIPTOR_HANDLE / D3D12_GPU_DESCRIPTOR_HANDLE wrap a raw
// address; Offset walks them by a fixed per-descriptor increment, the
// same arithmetic the D3D12 block+buddy allocator (../descheap.go)
// relies on to turn a (heap, start) pair into a concrete handle.
type D3D12_CPU_DESCRIPTOR_HANDLE struct {
	Ptr uintptr
}

func (h D3D12_CPU_DESCRIPTOR_HANDLE) Offset(index int, incrementSize uint32) D3D12_CPU_DESCRIPTOR_HANDLE {
	return D3D12_CPU_DESCRIPTOR_HANDLE{Ptr: h.Ptr + uintptr(index)*uintptr(incrementSize)}
}

type D3D12_GPU_DESCRIPTOR_HANDLE struct {
	Ptr uint64
}

func (h D3D12_GPU_DESCRIPTOR_HANDLE) Offset(index int, incrementSize uint32) D3D12_GPU_DESCRIPTOR_HANDLE {
	return D3D12_GPU_DESCRIPTOR_HANDLE{Ptr: h.Ptr + uint64(index)*uint64(incrementSize)}
}

type D3D12_DESCRIPTOR_HEAP_DESC struct {
	Type           D3D12_DESCRIPTOR_HEAP_TYPE
	NumDescriptors uint32
	Flags          D3D12_DESCRIPTOR_HEAP_FLAGS
	NodeMask       uint32
}

const D3D12_RESOURCE_BARRIER_ALL_SUBRESOURCES uint32 = 0xffffffff

type D3D12_RESOURCE_BARRIER_TYPE uint32

const (
	D3D12_RESOURCE_BARRIER_TYPE_TRANSITION D3D12_RESOURCE_BARRIER_TYPE = 0
	D3D12_RESOURCE_BARRIER_TYPE_UAV        D3D12_RESOURCE_BARRIER_TYPE = 2
)

type D3D12_RESOURCE_BARRIER_FLAGS uint32

const D3D12_RESOURCE_BARRIER_FLAG_NONE D3D12_RESOURCE_BARRIER_FLAGS = 0

type D3D12_RESOURCE_TRANSITION_BARRIER struct {
	Resource   *ID3D12Resource
	Subresource uint32
	StateBefore D3D12_RESOURCE_STATES
	StateAfter  D3D12_RESOURCE_STATES
}

type D3D12_RESOURCE_UAV_BARRIER struct {
	Resource *ID3D12Resource
}

// D3D12_RESOURCE_BARRIER approximates the native tagged union: Type
// and Flags precede a union whose largest member (the transition
// barrier) is 24 bytes on amd64. Transition/UAV return typed views
// over the same storage.
type D3D12_RESOURCE_BARRIER struct {
	Type  D3D12_RESOURCE_BARRIER_TYPE
	Flags D3D12_RESOURCE_BARRIER_FLAGS
	union [24]byte
}

func NewTransitionBarrier(b D3D12_RESOURCE_TRANSITION_BARRIER) D3D12_RESOURCE_BARRIER {
	var r D3D12_RESOURCE_BARRIER
	r.Type = D3D12_RESOURCE_BARRIER_TYPE_TRANSITION
	*(*D3D12_RESOURCE_TRANSITION_BARRIER)(ptrOf(&r.union)) = b
	return r
}

func NewUAVBarrier(b D3D12_RESOURCE_UAV_BARRIER) D3D12_RESOURCE_BARRIER {
	var r D3D12_RESOURCE_BARRIER
	r.Type = D3D12_RESOURCE_BARRIER_TYPE_UAV
	*(*D3D12_RESOURCE_UAV_BARRIER)(ptrOf(&r.union)) = b
	return r
}

type D3D12_VERTEX_BUFFER_VIEW struct {
	BufferLocation D3D12_GPU_VIRTUAL_ADDRESS
	SizeInBytes    uint32
	StrideInBytes  uint32
}

type D3D12_INDEX_BUFFER_VIEW struct {
	BufferLocation D3D12_GPU_VIRTUAL_ADDRESS
	SizeInBytes    uint32
	Format         DXGI_FORMAT
}

type D3D12_CONSTANT_BUFFER_VIEW_DESC struct {
	BufferLocation D3D12_GPU_VIRTUAL_ADDRESS
	SizeInBytes    uint32
}

type D3D12_SRV_DIMENSION uint32

const (
	D3D12_SRV_DIMENSION_BUFFER         D3D12_SRV_DIMENSION = 1
	D3D12_SRV_DIMENSION_TEXTURE1D      D3D12_SRV_DIMENSION = 2
	D3D12_SRV_DIMENSION_TEXTURE1DARRAY D3D12_SRV_DIMENSION = 3
	D3D12_SRV_DIMENSION_TEXTURE2D      D3D12_SRV_DIMENSION = 4
	D3D12_SRV_DIMENSION_TEXTURE2DARRAY D3D12_SRV_DIMENSION = 5
	D3D12_SRV_DIMENSION_TEXTURE2DMS    D3D12_SRV_DIMENSION = 6
	D3D12_SRV_DIMENSION_TEXTURE2DMSARRAY D3D12_SRV_DIMENSION = 7
	D3D12_SRV_DIMENSION_TEXTURE3D      D3D12_SRV_DIMENSION = 8
	D3D12_SRV_DIMENSION_TEXTURECUBE    D3D12_SRV_DIMENSION = 9
	D3D12_SRV_DIMENSION_TEXTURECUBEARRAY D3D12_SRV_DIMENSION = 10
)

const D3D12_DEFAULT_SHADER_4_COMPONENT_MAPPING uint32 = 0x1688

// D3D12_SHADER_RESOURCE_VIEW_DESC / D3D12_UNORDERED_ACCESS_VIEW_DESC /
// D3D12_RENDER_TARGET_VIEW_DESC / D3D12_DEPTH_STENCIL_VIEW_DESC each
// carry Format + a dimension selector + a per-dimension union; since
// every dimension this backend uses (buffer, tex1d/2d/3d, cube) fits
// in five uint32 fields, the union is modeled directly rather than
// through a byte array.
type D3D12_TEX_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	PlaneSlice          uint32
	ResourceMinLODClamp float32
}

type D3D12_TEX_ARRAY_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	FirstArraySlice     uint32
	ArraySize           uint32
	PlaneSlice          uint32
	ResourceMinLODClamp float32
}

type D3D12_BUFFER_SRV struct {
	FirstElement        uint64
	NumElements          uint32
	StructureByteStride uint32
	Flags               uint32
}

type D3D12_SHADER_RESOURCE_VIEW_DESC struct {
	Format                  DXGI_FORMAT
	ViewDimension           D3D12_SRV_DIMENSION
	Shader4ComponentMapping uint32
	Buffer                  D3D12_BUFFER_SRV
	Texture                 D3D12_TEX_ARRAY_SRV
}

type D3D12_UAV_DIMENSION uint32

const (
	D3D12_UAV_DIMENSION_BUFFER         D3D12_UAV_DIMENSION = 1
	D3D12_UAV_DIMENSION_TEXTURE1D      D3D12_UAV_DIMENSION = 2
	D3D12_UAV_DIMENSION_TEXTURE1DARRAY D3D12_UAV_DIMENSION = 3
	D3D12_UAV_DIMENSION_TEXTURE2D      D3D12_UAV_DIMENSION = 4
	D3D12_UAV_DIMENSION_TEXTURE2DARRAY D3D12_UAV_DIMENSION = 5
	D3D12_UAV_DIMENSION_TEXTURE3D      D3D12_UAV_DIMENSION = 8
)

type D3D12_TEX_UAV struct {
	MipSlice   uint32
	PlaneSlice uint32
}

type D3D12_TEX_ARRAY_UAV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
	PlaneSlice      uint32
}

type D3D12_BUFFER_UAV struct {
	FirstElement         uint64
	NumElements          uint32
	StructureByteStride  uint32
	CounterOffsetInBytes uint64
	Flags                uint32
}

type D3D12_UNORDERED_ACCESS_VIEW_DESC struct {
	Format        DXGI_FORMAT
	ViewDimension D3D12_UAV_DIMENSION
	Buffer        D3D12_BUFFER_UAV
	Texture       D3D12_TEX_ARRAY_UAV
}

type D3D12_RTV_DIMENSION uint32

const (
	D3D12_RTV_DIMENSION_TEXTURE1D      D3D12_RTV_DIMENSION = 2
	D3D12_RTV_DIMENSION_TEXTURE1DARRAY D3D12_RTV_DIMENSION = 3
	D3D12_RTV_DIMENSION_TEXTURE2D      D3D12_RTV_DIMENSION = 4
	D3D12_RTV_DIMENSION_TEXTURE2DARRAY D3D12_RTV_DIMENSION = 5
	D3D12_RTV_DIMENSION_TEXTURE2DMS    D3D12_RTV_DIMENSION = 6
	D3D12_RTV_DIMENSION_TEXTURE2DMSARRAY D3D12_RTV_DIMENSION = 7
	D3D12_RTV_DIMENSION_TEXTURE3D      D3D12_RTV_DIMENSION = 8
)

type D3D12_TEX_ARRAY_RTV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
	PlaneSlice      uint32
}

type D3D12_RENDER_TARGET_VIEW_DESC struct {
	Format        DXGI_FORMAT
	ViewDimension D3D12_RTV_DIMENSION
	Texture       D3D12_TEX_ARRAY_RTV
}

type D3D12_DSV_DIMENSION uint32

const (
	D3D12_DSV_DIMENSION_TEXTURE1D      D3D12_DSV_DIMENSION = 1
	D3D12_DSV_DIMENSION_TEXTURE1DARRAY D3D12_DSV_DIMENSION = 2
	D3D12_DSV_DIMENSION_TEXTURE2D      D3D12_DSV_DIMENSION = 3
	D3D12_DSV_DIMENSION_TEXTURE2DARRAY D3D12_DSV_DIMENSION = 4
	D3D12_DSV_DIMENSION_TEXTURE2DMS    D3D12_DSV_DIMENSION = 5
	D3D12_DSV_DIMENSION_TEXTURE2DMSARRAY D3D12_DSV_DIMENSION = 6
)

type D3D12_DSV_FLAGS uint32

type D3D12_TEX_ARRAY_DSV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

type D3D12_DEPTH_STENCIL_VIEW_DESC struct {
	Format        DXGI_FORMAT
	ViewDimension D3D12_DSV_DIMENSION
	Flags         D3D12_DSV_FLAGS
	Texture       D3D12_TEX_ARRAY_DSV
}

type D3D12_SAMPLER_DESC struct {
	Filter         D3D12_FILTER
	AddressU       D3D12_TEXTURE_ADDRESS_MODE
	AddressV       D3D12_TEXTURE_ADDRESS_MODE
	AddressW       D3D12_TEXTURE_ADDRESS_MODE
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc D3D12_COMPARISON_FUNC
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}

type D3D12_STATIC_SAMPLER_DESC struct {
	Filter           D3D12_FILTER
	AddressU         D3D12_TEXTURE_ADDRESS_MODE
	AddressV         D3D12_TEXTURE_ADDRESS_MODE
	AddressW         D3D12_TEXTURE_ADDRESS_MODE
	MipLODBias       float32
	MaxAnisotropy    uint32
	ComparisonFunc   D3D12_COMPARISON_FUNC
	BorderColor      uint32
	MinLOD           float32
	MaxLOD           float32
	ShaderRegister   uint32
	RegisterSpace    uint32
	ShaderVisibility D3D12_SHADER_VISIBILITY
}

type D3D12_VIEWPORT struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type D3D12_RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// D3D12_ROOT_SIGNATURE_DESC / VERSIONED wrap the v1.1 binding model
// (.../rootsig.go always serializes with D3D_ROOT_SIGNATURE_VERSION_1_1
// per spec step 5).
type D3D12_DESCRIPTOR_RANGE1 struct {
	RangeType                         D3D12_DESCRIPTOR_RANGE_TYPE
	NumDescriptors                     uint32
	BaseShaderRegister                 uint32
	RegisterSpace                      uint32
	Flags                              uint32
	OffsetInDescriptorsFromTableStart uint32
}

const D3D12_DESCRIPTOR_RANGE_OFFSET_APPEND uint32 = 0xffffffff

type D3D12_ROOT_DESCRIPTOR_TABLE1 struct {
	NumDescriptorRanges uint32
	PDescriptorRanges   *D3D12_DESCRIPTOR_RANGE1
}

type D3D12_ROOT_CONSTANTS struct {
	ShaderRegister   uint32
	RegisterSpace    uint32
	Num32BitValues   uint32
}

type D3D12_ROOT_DESCRIPTOR1 struct {
	ShaderRegister uint32
	RegisterSpace  uint32
	Flags          uint32
}

// D3D12_ROOT_PARAMETER1 approximates the native union with a fixed
// byte array sized to the largest member (descriptor table: a count
// plus a pointer).
type D3D12_ROOT_PARAMETER1 struct {
	ParameterType    D3D12_ROOT_PARAMETER_TYPE
	union            [16]byte
	ShaderVisibility D3D12_SHADER_VISIBILITY
}

func NewDescriptorTableParameter(ranges []D3D12_DESCRIPTOR_RANGE1, vis D3D12_SHADER_VISIBILITY) D3D12_ROOT_PARAMETER1 {
	p := D3D12_ROOT_PARAMETER1{ParameterType: D3D12_ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE, ShaderVisibility: vis}
	*(*D3D12_ROOT_DESCRIPTOR_TABLE1)(ptrOf(&p.union)) = D3D12_ROOT_DESCRIPTOR_TABLE1{
		NumDescriptorRanges: uint32(len(ranges)),
		PDescriptorRanges:   &ranges[0],
	}
	return p
}

func NewConstantsParameter(c D3D12_ROOT_CONSTANTS, vis D3D12_SHADER_VISIBILITY) D3D12_ROOT_PARAMETER1 {
	p := D3D12_ROOT_PARAMETER1{ParameterType: D3D12_ROOT_PARAMETER_TYPE_32BIT_CONSTANTS, ShaderVisibility: vis}
	*(*D3D12_ROOT_CONSTANTS)(ptrOf(&p.union)) = c
	return p
}

func NewRootDescriptorParameter(typ D3D12_ROOT_PARAMETER_TYPE, d D3D12_ROOT_DESCRIPTOR1, vis D3D12_SHADER_VISIBILITY) D3D12_ROOT_PARAMETER1 {
	p := D3D12_ROOT_PARAMETER1{ParameterType: typ, ShaderVisibility: vis}
	*(*D3D12_ROOT_DESCRIPTOR1)(ptrOf(&p.union)) = d
	return p
}

type D3D12_ROOT_SIGNATURE_DESC1 struct {
	NumParameters     uint32
	PParameters       *D3D12_ROOT_PARAMETER1
	NumStaticSamplers uint32
	PStaticSamplers   *D3D12_STATIC_SAMPLER_DESC
	Flags             D3D12_ROOT_SIGNATURE_FLAGS
}

// D3D12_VERSIONED_ROOT_SIGNATURE_DESC tags its union with Version;
// this backend only ever constructs the v1.1 variant.
type D3D12_VERSIONED_ROOT_SIGNATURE_DESC struct {
	Version D3D12_ROOT_SIGNATURE_VERSION
	Desc1_1 D3D12_ROOT_SIGNATURE_DESC1
}

type D3D12_INPUT_ELEMENT_DESC struct {
	SemanticName         *byte
	SemanticIndex        uint32
	Format               DXGI_FORMAT
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       D3D12_INPUT_CLASSIFICATION
	InstanceDataStepRate uint32
}

type D3D12_INPUT_LAYOUT_DESC struct {
	PInputElementDescs *D3D12_INPUT_ELEMENT_DESC
	NumElements        uint32
}

type D3D12_SHADER_BYTECODE struct {
	PShaderBytecode uintptr
	BytecodeLength  uintptr
}

type D3D12_RASTERIZER_DESC struct {
	FillMode              D3D12_FILL_MODE
	CullMode              D3D12_CULL_MODE
	FrontCounterClockwise int32
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       int32
	MultisampleEnable     int32
	AntialiasedLineEnable int32
	ForcedSampleCount     uint32
}

type D3D12_DEPTH_STENCILOP_DESC struct {
	StencilFailOp      D3D12_STENCIL_OP
	StencilDepthFailOp D3D12_STENCIL_OP
	StencilPassOp      D3D12_STENCIL_OP
	StencilFunc        D3D12_COMPARISON_FUNC
}

type D3D12_DEPTH_STENCIL_DESC struct {
	DepthEnable      int32
	DepthWriteMask   uint32
	DepthFunc        D3D12_COMPARISON_FUNC
	StencilEnable    int32
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        D3D12_DEPTH_STENCILOP_DESC
	BackFace         D3D12_DEPTH_STENCILOP_DESC
}

type D3D12_RENDER_TARGET_BLEND_DESC struct {
	BlendEnable           int32
	LogicOpEnable         int32
	SrcBlend              D3D12_BLEND
	DestBlend             D3D12_BLEND
	BlendOp               D3D12_BLEND_OP
	SrcBlendAlpha         D3D12_BLEND
	DestBlendAlpha        D3D12_BLEND
	BlendOpAlpha          D3D12_BLEND_OP
	LogicOp               uint32
	RenderTargetWriteMask uint8
}

type D3D12_BLEND_DESC struct {
	AlphaToCoverageEnable  int32
	IndependentBlendEnable int32
	RenderTarget           [8]D3D12_RENDER_TARGET_BLEND_DESC
}

type D3D12_STREAM_OUTPUT_DESC struct {
	NumEntries          uint32
	RasterizedStream    uint32
}

type D3D12_CACHED_PIPELINE_STATE struct {
	PCachedBlob           uintptr
	CachedBlobSizeInBytes uintptr
}

type D3D12_GRAPHICS_PIPELINE_STATE_DESC struct {
	PRootSignature     *ID3D12RootSignature
	VS                  D3D12_SHADER_BYTECODE
	PS                  D3D12_SHADER_BYTECODE
	StreamOutput        D3D12_STREAM_OUTPUT_DESC
	BlendState          D3D12_BLEND_DESC
	SampleMask          uint32
	RasterizerState     D3D12_RASTERIZER_DESC
	DepthStencilState   D3D12_DEPTH_STENCIL_DESC
	InputLayout         D3D12_INPUT_LAYOUT_DESC
	IBStripCutValue     uint32
	PrimitiveTopologyType D3D12_PRIMITIVE_TOPOLOGY_TYPE
	NumRenderTargets    uint32
	RTVFormats          [8]DXGI_FORMAT
	DSVFormat           DXGI_FORMAT
	SampleDesc          DXGI_SAMPLE_DESC
	NodeMask            uint32
	CachedPSO           D3D12_CACHED_PIPELINE_STATE
	Flags               uint32
}

type D3D12_COMPUTE_PIPELINE_STATE_DESC struct {
	PRootSignature *ID3D12RootSignature
	CS             D3D12_SHADER_BYTECODE
	NodeMask       uint32
	CachedPSO      D3D12_CACHED_PIPELINE_STATE
	Flags          uint32
}
