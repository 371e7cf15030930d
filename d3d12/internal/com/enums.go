//go:build windows

package com

// DXGI_FORMAT is the subset of DXGI_FORMAT values the backend's
// format table (../convert.go) maps neutral pixel/vertex formats to.
type DXGI_FORMAT uint32

const (
	DXGI_FORMAT_UNKNOWN               DXGI_FORMAT = 0
	DXGI_FORMAT_R32G32B32A32_TYPELESS DXGI_FORMAT = 1
	DXGI_FORMAT_R32G32B32A32_FLOAT    DXGI_FORMAT = 2
	DXGI_FORMAT_R32G32B32A32_UINT     DXGI_FORMAT = 3
	DXGI_FORMAT_R32G32B32A32_SINT     DXGI_FORMAT = 4
	DXGI_FORMAT_R32G32B32_TYPELESS    DXGI_FORMAT = 5
	DXGI_FORMAT_R32G32B32_FLOAT       DXGI_FORMAT = 6
	DXGI_FORMAT_R32G32B32_UINT        DXGI_FORMAT = 7
	DXGI_FORMAT_R32G32B32_SINT        DXGI_FORMAT = 8
	DXGI_FORMAT_R16G16B16A16_TYPELESS DXGI_FORMAT = 9
	DXGI_FORMAT_R16G16B16A16_FLOAT    DXGI_FORMAT = 10
	DXGI_FORMAT_R16G16B16A16_UINT     DXGI_FORMAT = 12
	DXGI_FORMAT_R16G16B16A16_SINT     DXGI_FORMAT = 14
	DXGI_FORMAT_R32G32_TYPELESS       DXGI_FORMAT = 15
	DXGI_FORMAT_R32G32_FLOAT          DXGI_FORMAT = 16
	DXGI_FORMAT_R32G32_UINT           DXGI_FORMAT = 17
	DXGI_FORMAT_R32G32_SINT           DXGI_FORMAT = 18
	DXGI_FORMAT_R32G8X24_TYPELESS     DXGI_FORMAT = 19
	DXGI_FORMAT_D32_FLOAT_S8X24_UINT  DXGI_FORMAT = 20
	DXGI_FORMAT_R32_FLOAT_X8X24_TYPELESS DXGI_FORMAT = 21
	DXGI_FORMAT_R8G8B8A8_TYPELESS     DXGI_FORMAT = 27
	DXGI_FORMAT_R8G8B8A8_UNORM        DXGI_FORMAT = 28
	DXGI_FORMAT_R8G8B8A8_UNORM_SRGB   DXGI_FORMAT = 29
	DXGI_FORMAT_R8G8B8A8_UINT         DXGI_FORMAT = 30
	DXGI_FORMAT_R8G8B8A8_SINT         DXGI_FORMAT = 32
	DXGI_FORMAT_R16G16_TYPELESS       DXGI_FORMAT = 33
	DXGI_FORMAT_R16G16_FLOAT          DXGI_FORMAT = 34
	DXGI_FORMAT_R16G16_UINT           DXGI_FORMAT = 36
	DXGI_FORMAT_R16G16_SINT           DXGI_FORMAT = 38
	DXGI_FORMAT_R32_TYPELESS          DXGI_FORMAT = 39
	DXGI_FORMAT_D32_FLOAT             DXGI_FORMAT = 40
	DXGI_FORMAT_R32_FLOAT             DXGI_FORMAT = 41
	DXGI_FORMAT_R32_UINT              DXGI_FORMAT = 42
	DXGI_FORMAT_R32_SINT              DXGI_FORMAT = 43
	DXGI_FORMAT_R24G8_TYPELESS        DXGI_FORMAT = 44
	DXGI_FORMAT_D24_UNORM_S8_UINT     DXGI_FORMAT = 45
	DXGI_FORMAT_R24_UNORM_X8_TYPELESS DXGI_FORMAT = 46
	DXGI_FORMAT_R8G8_TYPELESS         DXGI_FORMAT = 48
	DXGI_FORMAT_R8G8_UNORM            DXGI_FORMAT = 49
	DXGI_FORMAT_R8G8_UINT             DXGI_FORMAT = 50
	DXGI_FORMAT_R8G8_SINT             DXGI_FORMAT = 52
	DXGI_FORMAT_R16_TYPELESS          DXGI_FORMAT = 53
	DXGI_FORMAT_R16_FLOAT             DXGI_FORMAT = 54
	DXGI_FORMAT_D16_UNORM             DXGI_FORMAT = 55
	DXGI_FORMAT_R16_UNORM             DXGI_FORMAT = 56
	DXGI_FORMAT_R16_UINT              DXGI_FORMAT = 57
	DXGI_FORMAT_R16_SINT              DXGI_FORMAT = 59
	DXGI_FORMAT_R8_TYPELESS           DXGI_FORMAT = 60
	DXGI_FORMAT_R8_UNORM              DXGI_FORMAT = 61
	DXGI_FORMAT_R8_UINT               DXGI_FORMAT = 62
	DXGI_FORMAT_R8_SINT               DXGI_FORMAT = 64
	DXGI_FORMAT_B8G8R8A8_UNORM        DXGI_FORMAT = 87
	DXGI_FORMAT_B8G8R8A8_TYPELESS     DXGI_FORMAT = 90
	DXGI_FORMAT_B8G8R8A8_UNORM_SRGB   DXGI_FORMAT = 91
)

type D3D12_COMMAND_LIST_TYPE uint32

const (
	D3D12_COMMAND_LIST_TYPE_DIRECT  D3D12_COMMAND_LIST_TYPE = 0
	D3D12_COMMAND_LIST_TYPE_BUNDLE  D3D12_COMMAND_LIST_TYPE = 1
	D3D12_COMMAND_LIST_TYPE_COMPUTE D3D12_COMMAND_LIST_TYPE = 2
	D3D12_COMMAND_LIST_TYPE_COPY    D3D12_COMMAND_LIST_TYPE = 3
)

type D3D12_COMMAND_QUEUE_PRIORITY int32

const (
	D3D12_COMMAND_QUEUE_PRIORITY_NORMAL D3D12_COMMAND_QUEUE_PRIORITY = 0
	D3D12_COMMAND_QUEUE_PRIORITY_HIGH   D3D12_COMMAND_QUEUE_PRIORITY = 100
)

type D3D12_COMMAND_QUEUE_FLAGS uint32

const (
	D3D12_COMMAND_QUEUE_FLAG_NONE                D3D12_COMMAND_QUEUE_FLAGS = 0
	D3D12_COMMAND_QUEUE_FLAG_DISABLE_GPU_TIMEOUT D3D12_COMMAND_QUEUE_FLAGS = 0x1
)

type D3D12_FENCE_FLAGS uint32

const D3D12_FENCE_FLAG_NONE D3D12_FENCE_FLAGS = 0

type D3D12_HEAP_TYPE uint32

const (
	D3D12_HEAP_TYPE_DEFAULT  D3D12_HEAP_TYPE = 1
	D3D12_HEAP_TYPE_UPLOAD   D3D12_HEAP_TYPE = 2
	D3D12_HEAP_TYPE_READBACK D3D12_HEAP_TYPE = 3
	D3D12_HEAP_TYPE_CUSTOM   D3D12_HEAP_TYPE = 4
)

type D3D12_CPU_PAGE_PROPERTY uint32

const (
	D3D12_CPU_PAGE_PROPERTY_UNKNOWN       D3D12_CPU_PAGE_PROPERTY = 0
	D3D12_CPU_PAGE_PROPERTY_NOT_AVAILABLE D3D12_CPU_PAGE_PROPERTY = 1
	D3D12_CPU_PAGE_PROPERTY_WRITE_COMBINE D3D12_CPU_PAGE_PROPERTY = 2
	D3D12_CPU_PAGE_PROPERTY_WRITE_BACK    D3D12_CPU_PAGE_PROPERTY = 3
)

type D3D12_MEMORY_POOL uint32

const (
	D3D12_MEMORY_POOL_UNKNOWN D3D12_MEMORY_POOL = 0
	D3D12_MEMORY_POOL_L0      D3D12_MEMORY_POOL = 1
	D3D12_MEMORY_POOL_L1      D3D12_MEMORY_POOL = 2
)

type D3D12_HEAP_FLAGS uint32

const (
	D3D12_HEAP_FLAG_NONE                       D3D12_HEAP_FLAGS = 0
	D3D12_HEAP_FLAG_SHARED                     D3D12_HEAP_FLAGS = 0x1
	D3D12_HEAP_FLAG_DENY_BUFFERS               D3D12_HEAP_FLAGS = 0x4
	D3D12_HEAP_FLAG_ALLOW_DISPLAY              D3D12_HEAP_FLAGS = 0x8
	D3D12_HEAP_FLAG_DENY_RT_DS_TEXTURES        D3D12_HEAP_FLAGS = 0x40
	D3D12_HEAP_FLAG_DENY_NON_RT_DS_TEXTURES    D3D12_HEAP_FLAGS = 0x80
	D3D12_HEAP_FLAG_ALLOW_ALL_BUFFERS_AND_TEXTURES D3D12_HEAP_FLAGS = 0
)

type D3D12_RESOURCE_DIMENSION uint32

const (
	D3D12_RESOURCE_DIMENSION_UNKNOWN   D3D12_RESOURCE_DIMENSION = 0
	D3D12_RESOURCE_DIMENSION_BUFFER    D3D12_RESOURCE_DIMENSION = 1
	D3D12_RESOURCE_DIMENSION_TEXTURE1D D3D12_RESOURCE_DIMENSION = 2
	D3D12_RESOURCE_DIMENSION_TEXTURE2D D3D12_RESOURCE_DIMENSION = 3
	D3D12_RESOURCE_DIMENSION_TEXTURE3D D3D12_RESOURCE_DIMENSION = 4
)

type D3D12_TEXTURE_LAYOUT uint32

const (
	D3D12_TEXTURE_LAYOUT_UNKNOWN          D3D12_TEXTURE_LAYOUT = 0
	D3D12_TEXTURE_LAYOUT_ROW_MAJOR        D3D12_TEXTURE_LAYOUT = 1
	D3D12_TEXTURE_LAYOUT_STANDARD_SWIZZLE D3D12_TEXTURE_LAYOUT = 3
)

type D3D12_RESOURCE_FLAGS uint32

const (
	D3D12_RESOURCE_FLAG_NONE                       D3D12_RESOURCE_FLAGS = 0
	D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET        D3D12_RESOURCE_FLAGS = 0x1
	D3D12_RESOURCE_FLAG_ALLOW_DEPTH_STENCIL        D3D12_RESOURCE_FLAGS = 0x2
	D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS     D3D12_RESOURCE_FLAGS = 0x4
	D3D12_RESOURCE_FLAG_DENY_SHADER_RESOURCE       D3D12_RESOURCE_FLAGS = 0x8
)

// D3D12_RESOURCE_STATES values; GENERIC_READ is the OR of the common
// read states, matching the real header's composite constant.
type D3D12_RESOURCE_STATES uint32

const (
	D3D12_RESOURCE_STATE_COMMON                    D3D12_RESOURCE_STATES = 0
	D3D12_RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER D3D12_RESOURCE_STATES = 0x1
	D3D12_RESOURCE_STATE_INDEX_BUFFER              D3D12_RESOURCE_STATES = 0x2
	D3D12_RESOURCE_STATE_RENDER_TARGET              D3D12_RESOURCE_STATES = 0x4
	D3D12_RESOURCE_STATE_UNORDERED_ACCESS           D3D12_RESOURCE_STATES = 0x8
	D3D12_RESOURCE_STATE_DEPTH_WRITE                D3D12_RESOURCE_STATES = 0x10
	D3D12_RESOURCE_STATE_DEPTH_READ                 D3D12_RESOURCE_STATES = 0x20
	D3D12_RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE  D3D12_RESOURCE_STATES = 0x40
	D3D12_RESOURCE_STATE_PIXEL_SHADER_RESOURCE      D3D12_RESOURCE_STATES = 0x80
	D3D12_RESOURCE_STATE_INDIRECT_ARGUMENT          D3D12_RESOURCE_STATES = 0x200
	D3D12_RESOURCE_STATE_COPY_DEST                  D3D12_RESOURCE_STATES = 0x400
	D3D12_RESOURCE_STATE_COPY_SOURCE                D3D12_RESOURCE_STATES = 0x800
	D3D12_RESOURCE_STATE_RESOLVE_DEST               D3D12_RESOURCE_STATES = 0x1000
	D3D12_RESOURCE_STATE_RESOLVE_SOURCE             D3D12_RESOURCE_STATES = 0x2000
	D3D12_RESOURCE_STATE_GENERIC_READ                = D3D12_RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER |
		D3D12_RESOURCE_STATE_INDEX_BUFFER | D3D12_RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE |
		D3D12_RESOURCE_STATE_PIXEL_SHADER_RESOURCE | D3D12_RESOURCE_STATE_INDIRECT_ARGUMENT |
		D3D12_RESOURCE_STATE_COPY_SOURCE
	D3D12_RESOURCE_STATE_PRESENT D3D12_RESOURCE_STATES = 0
)

type D3D12_DESCRIPTOR_HEAP_TYPE uint32

const (
	D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV D3D12_DESCRIPTOR_HEAP_TYPE = 0
	D3D12_DESCRIPTOR_HEAP_TYPE_SAMPLER     D3D12_DESCRIPTOR_HEAP_TYPE = 1
	D3D12_DESCRIPTOR_HEAP_TYPE_RTV         D3D12_DESCRIPTOR_HEAP_TYPE = 2
	D3D12_DESCRIPTOR_HEAP_TYPE_DSV         D3D12_DESCRIPTOR_HEAP_TYPE = 3
)

type D3D12_DESCRIPTOR_HEAP_FLAGS uint32

const (
	D3D12_DESCRIPTOR_HEAP_FLAG_NONE           D3D12_DESCRIPTOR_HEAP_FLAGS = 0
	D3D12_DESCRIPTOR_HEAP_FLAG_SHADER_VISIBLE D3D12_DESCRIPTOR_HEAP_FLAGS = 0x1
)

type D3D12_ROOT_SIGNATURE_FLAGS uint32

const (
	D3D12_ROOT_SIGNATURE_FLAG_NONE                             D3D12_ROOT_SIGNATURE_FLAGS = 0
	D3D12_ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT D3D12_ROOT_SIGNATURE_FLAGS = 0x1
	D3D12_ROOT_SIGNATURE_FLAG_DENY_VERTEX_SHADER_ROOT_ACCESS   D3D12_ROOT_SIGNATURE_FLAGS = 0x2
	D3D12_ROOT_SIGNATURE_FLAG_DENY_HULL_SHADER_ROOT_ACCESS     D3D12_ROOT_SIGNATURE_FLAGS = 0x4
	D3D12_ROOT_SIGNATURE_FLAG_DENY_DOMAIN_SHADER_ROOT_ACCESS   D3D12_ROOT_SIGNATURE_FLAGS = 0x8
	D3D12_ROOT_SIGNATURE_FLAG_DENY_GEOMETRY_SHADER_ROOT_ACCESS D3D12_ROOT_SIGNATURE_FLAGS = 0x10
	D3D12_ROOT_SIGNATURE_FLAG_DENY_PIXEL_SHADER_ROOT_ACCESS    D3D12_ROOT_SIGNATURE_FLAGS = 0x20
	D3D12_ROOT_SIGNATURE_FLAG_DENY_AMPLIFICATION_SHADER_ROOT_ACCESS D3D12_ROOT_SIGNATURE_FLAGS = 0x100
	D3D12_ROOT_SIGNATURE_FLAG_DENY_MESH_SHADER_ROOT_ACCESS     D3D12_ROOT_SIGNATURE_FLAGS = 0x200
)

type D3D12_ROOT_PARAMETER_TYPE uint32

const (
	D3D12_ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE D3D12_ROOT_PARAMETER_TYPE = 0
	D3D12_ROOT_PARAMETER_TYPE_32BIT_CONSTANTS  D3D12_ROOT_PARAMETER_TYPE = 1
	D3D12_ROOT_PARAMETER_TYPE_CBV              D3D12_ROOT_PARAMETER_TYPE = 2
	D3D12_ROOT_PARAMETER_TYPE_SRV              D3D12_ROOT_PARAMETER_TYPE = 3
	D3D12_ROOT_PARAMETER_TYPE_UAV              D3D12_ROOT_PARAMETER_TYPE = 4
)

type D3D12_SHADER_VISIBILITY uint32

const (
	D3D12_SHADER_VISIBILITY_ALL           D3D12_SHADER_VISIBILITY = 0
	D3D12_SHADER_VISIBILITY_VERTEX        D3D12_SHADER_VISIBILITY = 1
	D3D12_SHADER_VISIBILITY_HULL          D3D12_SHADER_VISIBILITY = 2
	D3D12_SHADER_VISIBILITY_DOMAIN        D3D12_SHADER_VISIBILITY = 3
	D3D12_SHADER_VISIBILITY_GEOMETRY      D3D12_SHADER_VISIBILITY = 4
	D3D12_SHADER_VISIBILITY_PIXEL         D3D12_SHADER_VISIBILITY = 5
	D3D12_SHADER_VISIBILITY_AMPLIFICATION D3D12_SHADER_VISIBILITY = 6
	D3D12_SHADER_VISIBILITY_MESH          D3D12_SHADER_VISIBILITY = 7
)

type D3D12_DESCRIPTOR_RANGE_TYPE uint32

const (
	D3D12_DESCRIPTOR_RANGE_TYPE_SRV     D3D12_DESCRIPTOR_RANGE_TYPE = 0
	D3D12_DESCRIPTOR_RANGE_TYPE_UAV     D3D12_DESCRIPTOR_RANGE_TYPE = 1
	D3D12_DESCRIPTOR_RANGE_TYPE_CBV     D3D12_DESCRIPTOR_RANGE_TYPE = 2
	D3D12_DESCRIPTOR_RANGE_TYPE_SAMPLER D3D12_DESCRIPTOR_RANGE_TYPE = 3
)

type D3D12_ROOT_SIGNATURE_VERSION uint32

const (
	D3D_ROOT_SIGNATURE_VERSION_1_0 D3D12_ROOT_SIGNATURE_VERSION = 0x1
	D3D_ROOT_SIGNATURE_VERSION_1_1 D3D12_ROOT_SIGNATURE_VERSION = 0x2
)

type D3D_FEATURE_LEVEL uint32

const (
	D3D_FEATURE_LEVEL_11_0 D3D_FEATURE_LEVEL = 0xb000
	D3D_FEATURE_LEVEL_11_1 D3D_FEATURE_LEVEL = 0xb100
	D3D_FEATURE_LEVEL_12_0 D3D_FEATURE_LEVEL = 0xc000
	D3D_FEATURE_LEVEL_12_1 D3D_FEATURE_LEVEL = 0xc100
	D3D_FEATURE_LEVEL_12_2 D3D_FEATURE_LEVEL = 0xc200
)

type D3D12_PRIMITIVE_TOPOLOGY_TYPE uint32

const (
	D3D12_PRIMITIVE_TOPOLOGY_TYPE_UNDEFINED D3D12_PRIMITIVE_TOPOLOGY_TYPE = 0
	D3D12_PRIMITIVE_TOPOLOGY_TYPE_POINT     D3D12_PRIMITIVE_TOPOLOGY_TYPE = 1
	D3D12_PRIMITIVE_TOPOLOGY_TYPE_LINE      D3D12_PRIMITIVE_TOPOLOGY_TYPE = 2
	D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE  D3D12_PRIMITIVE_TOPOLOGY_TYPE = 3
)

type D3D_PRIMITIVE_TOPOLOGY uint32

const (
	D3D_PRIMITIVE_TOPOLOGY_UNDEFINED     D3D_PRIMITIVE_TOPOLOGY = 0
	D3D_PRIMITIVE_TOPOLOGY_POINTLIST     D3D_PRIMITIVE_TOPOLOGY = 1
	D3D_PRIMITIVE_TOPOLOGY_LINELIST      D3D_PRIMITIVE_TOPOLOGY = 2
	D3D_PRIMITIVE_TOPOLOGY_LINESTRIP     D3D_PRIMITIVE_TOPOLOGY = 3
	D3D_PRIMITIVE_TOPOLOGY_TRIANGLELIST  D3D_PRIMITIVE_TOPOLOGY = 4
	D3D_PRIMITIVE_TOPOLOGY_TRIANGLESTRIP D3D_PRIMITIVE_TOPOLOGY = 5
)

type D3D12_FILL_MODE uint32

const (
	D3D12_FILL_MODE_WIREFRAME D3D12_FILL_MODE = 2
	D3D12_FILL_MODE_SOLID     D3D12_FILL_MODE = 3
)

type D3D12_CULL_MODE uint32

const (
	D3D12_CULL_MODE_NONE  D3D12_CULL_MODE = 1
	D3D12_CULL_MODE_FRONT D3D12_CULL_MODE = 2
	D3D12_CULL_MODE_BACK  D3D12_CULL_MODE = 3
)

type D3D12_COMPARISON_FUNC uint32

const (
	D3D12_COMPARISON_FUNC_NEVER         D3D12_COMPARISON_FUNC = 1
	D3D12_COMPARISON_FUNC_LESS          D3D12_COMPARISON_FUNC = 2
	D3D12_COMPARISON_FUNC_EQUAL         D3D12_COMPARISON_FUNC = 3
	D3D12_COMPARISON_FUNC_LESS_EQUAL    D3D12_COMPARISON_FUNC = 4
	D3D12_COMPARISON_FUNC_GREATER       D3D12_COMPARISON_FUNC = 5
	D3D12_COMPARISON_FUNC_NOT_EQUAL     D3D12_COMPARISON_FUNC = 6
	D3D12_COMPARISON_FUNC_GREATER_EQUAL D3D12_COMPARISON_FUNC = 7
	D3D12_COMPARISON_FUNC_ALWAYS        D3D12_COMPARISON_FUNC = 8
)

type D3D12_STENCIL_OP uint32

const (
	D3D12_STENCIL_OP_KEEP     D3D12_STENCIL_OP = 1
	D3D12_STENCIL_OP_ZERO     D3D12_STENCIL_OP = 2
	D3D12_STENCIL_OP_REPLACE  D3D12_STENCIL_OP = 3
	D3D12_STENCIL_OP_INCR_SAT D3D12_STENCIL_OP = 4
	D3D12_STENCIL_OP_DECR_SAT D3D12_STENCIL_OP = 5
	D3D12_STENCIL_OP_INVERT   D3D12_STENCIL_OP = 6
	D3D12_STENCIL_OP_INCR     D3D12_STENCIL_OP = 7
	D3D12_STENCIL_OP_DECR     D3D12_STENCIL_OP = 8
)

type D3D12_BLEND uint32

const (
	D3D12_BLEND_ZERO             D3D12_BLEND = 1
	D3D12_BLEND_ONE              D3D12_BLEND = 2
	D3D12_BLEND_SRC_COLOR        D3D12_BLEND = 3
	D3D12_BLEND_INV_SRC_COLOR    D3D12_BLEND = 4
	D3D12_BLEND_SRC_ALPHA        D3D12_BLEND = 5
	D3D12_BLEND_INV_SRC_ALPHA    D3D12_BLEND = 6
	D3D12_BLEND_DEST_ALPHA       D3D12_BLEND = 7
	D3D12_BLEND_INV_DEST_ALPHA   D3D12_BLEND = 8
	D3D12_BLEND_DEST_COLOR       D3D12_BLEND = 9
	D3D12_BLEND_INV_DEST_COLOR   D3D12_BLEND = 10
	D3D12_BLEND_SRC_ALPHA_SAT    D3D12_BLEND = 11
	D3D12_BLEND_BLEND_FACTOR     D3D12_BLEND = 14
	D3D12_BLEND_INV_BLEND_FACTOR D3D12_BLEND = 15
)

type D3D12_BLEND_OP uint32

const (
	D3D12_BLEND_OP_ADD          D3D12_BLEND_OP = 1
	D3D12_BLEND_OP_SUBTRACT     D3D12_BLEND_OP = 2
	D3D12_BLEND_OP_REV_SUBTRACT D3D12_BLEND_OP = 3
	D3D12_BLEND_OP_MIN          D3D12_BLEND_OP = 4
	D3D12_BLEND_OP_MAX          D3D12_BLEND_OP = 5
)

// D3D12_COLOR_WRITE_ENABLE bits; RenderTargetWriteMask is a single
// byte field on D3D12_RENDER_TARGET_BLEND_DESC, unlike Vulkan's 32-bit
// VkColorComponentFlags (see ../convert.go's vkColorWriteMask comment).
const (
	D3D12_COLOR_WRITE_ENABLE_RED   uint8 = 0x1
	D3D12_COLOR_WRITE_ENABLE_GREEN uint8 = 0x2
	D3D12_COLOR_WRITE_ENABLE_BLUE  uint8 = 0x4
	D3D12_COLOR_WRITE_ENABLE_ALPHA uint8 = 0x8
	D3D12_COLOR_WRITE_ENABLE_ALL   uint8 = 0xF
)

// D3D12_FILTER bit layout: bit4=min linear, bit2=mag linear, bit0=mip
// linear, bit7=comparison, 0x55 pattern=anisotropic. Filter values are
// built by OR-ing these bits together (see ../convert.go's filter()).
type D3D12_FILTER uint32

const (
	D3D12_FILTER_BIT_MIP_LINEAR  uint32 = 0x01
	D3D12_FILTER_BIT_MAG_LINEAR  uint32 = 0x04
	D3D12_FILTER_BIT_MIN_LINEAR  uint32 = 0x10
	D3D12_FILTER_BIT_ANISOTROPIC uint32 = 0x55
	D3D12_FILTER_BIT_COMPARISON  uint32 = 0x80
)

type D3D12_TEXTURE_ADDRESS_MODE uint32

const (
	D3D12_TEXTURE_ADDRESS_MODE_WRAP   D3D12_TEXTURE_ADDRESS_MODE = 1
	D3D12_TEXTURE_ADDRESS_MODE_MIRROR D3D12_TEXTURE_ADDRESS_MODE = 2
	D3D12_TEXTURE_ADDRESS_MODE_CLAMP  D3D12_TEXTURE_ADDRESS_MODE = 3
	D3D12_TEXTURE_ADDRESS_MODE_BORDER D3D12_TEXTURE_ADDRESS_MODE = 4
)

type D3D12_INPUT_CLASSIFICATION uint32

const (
	D3D12_INPUT_CLASSIFICATION_PER_VERTEX_DATA   D3D12_INPUT_CLASSIFICATION = 0
	D3D12_INPUT_CLASSIFICATION_PER_INSTANCE_DATA D3D12_INPUT_CLASSIFICATION = 1
)

type DXGI_SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}
