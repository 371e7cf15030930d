package rhi

// ShaderCategory identifies the precompiled shape of a ShaderCode
// blob, per spec.md §6.
type ShaderCategory int

// Shader categories.
const (
	CategoryDXIL ShaderCategory = iota
	CategorySPIRV
)

// ShaderCode is a precompiled shader binary for one programmable
// stage. Shader compilation is out of scope (spec.md §1); blobs
// arrive precompiled.
type ShaderCode interface {
	Destroyer
}

// ShaderDesc describes a precompiled shader blob bundle, per spec.md
// §6. SPIR-V bytes must have a length that's a multiple of 4.
type ShaderDesc struct {
	Category ShaderCategory
	Bytes    []byte
	Entry    string
	Stage    Stage
}

// ShaderFunc specifies a function within a shader binary.
type ShaderFunc struct {
	Code ShaderCode
	Name string
}

// VertexIn describes a vertex input. Each VertexIn is a separate
// buffer binding; interleaved inputs are not supported (spec.md §3's
// GraphicsPipelineState "per-vertex-buffer stride table").
type VertexIn struct {
	Format VertexFmt
	Stride int
	Slot   int
	Name   string
}

// RasterState defines the rasterization state of a graphics pipeline.
type RasterState struct {
	Clockwise bool
	Cull      CullMode
	Fill      FillMode
	DepthBias bool
	BiasValue float32
	BiasSlope float32
	BiasClamp float32
}

// StencilT defines one face's stencil test parameters.
type StencilT struct {
	// DSFail[0] applies when the depth test fails, DSFail[1] when the
	// stencil test itself fails.
	DSFail    [2]StencilOp
	Pass      StencilOp
	ReadMask  uint32
	WriteMask uint32
	Cmp       CmpFunc
}

// DSState defines the depth/stencil state of a graphics pipeline.
type DSState struct {
	DepthTest   bool
	DepthWrite  bool
	DepthCmp    CmpFunc
	StencilTest bool
	Front       StencilT
	Back        StencilT
}

// ColorBlend defines one render target's blend parameters.
type ColorBlend struct {
	Blend     bool
	WriteMask ColorMask
	// Op/SrcFac/DstFac index 0 is color, index 1 is alpha.
	Op     [2]BlendOp
	SrcFac [2]BlendFac
	DstFac [2]BlendFac
}

// BlendState defines the color blend state of a graphics pipeline.
type BlendState struct {
	IndependentBlend bool
	// Targets holds blend parameters for each render target. Only
	// Targets[0] is used if IndependentBlend is false.
	Targets []ColorBlend
}

// Attachment describes the configuration of one render target for
// use in a RenderPass, per spec.md §4.6.
type Attachment struct {
	Format  PixelFmt
	Samples int
	// Load/Store index 0 is color or depth, index 1 is stencil.
	// Stencil load/store is coerced to NoAccess/DontCare when Format
	// has no stencil aspect (spec.md §4.6).
	Load  [2]LoadOp
	Store [2]StoreOp
}

// Subpass defines one subpass of a render pass. Color/DS/MSR are
// indices into the render pass' Attachment list.
type Subpass struct {
	Color []int
	DS    int
	MSR   []int
	Wait  bool
}

// RenderPass groups the attachments and subpasses a GraphicsPipelineState
// is built against; the pipeline "must not be used outside this
// subpass" (spec.md §3).
type RenderPass interface {
	Destroyer
	// NewFB creates a new Framebuf of the given width, height and
	// layers. Neither backend compares the views' sizes with each
	// other or with width/height; NewFB does not fail on a mismatch.
	NewFB(views []TextureView, width, height, layers int) (Framebuf, error)
}

// Framebuf is the interface that defines the render targets of a
// RenderPass.
type Framebuf interface {
	Destroyer
}

// ClearValue defines clear values for color or depth/stencil
// aspects of a render target.
type ClearValue struct {
	Color   [4]float32
	Depth   float32
	Stencil uint32
}

// GraphicsPipelineDesc defines the combination of programmable and
// fixed-function stages of a graphics pipeline, per spec.md §3.
type GraphicsPipelineDesc struct {
	VertFunc ShaderFunc
	FragFunc ShaderFunc
	Layout   RootSignature
	Input    []VertexIn
	Topology Topology
	Raster   RasterState
	Samples  int
	DS       DSState
	Blend    BlendState
	Pass     RenderPass
	Subpass  int
}

// ComputePipelineDesc defines the state of a compute pipeline
// (SPEC_FULL.md §3 [NEW]).
type ComputePipelineDesc struct {
	Func   ShaderFunc
	Layout RootSignature
}

// GraphicsPipelineState is a native pipeline object plus a
// per-vertex-buffer stride table and resolved primitive topology.
type GraphicsPipelineState interface {
	Destroyer
	// Stride returns the stride, in bytes, of the vertex buffer
	// bound at the given slot, as declared by the VertexIn list this
	// pipeline was built from.
	Stride(slot int) (int, bool)
	Topology() Topology
}

// ComputePipelineState is a native compute pipeline object.
type ComputePipelineState interface {
	Destroyer
}
