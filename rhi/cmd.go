package rhi

// Sync is the type of a synchronization scope, used in barrier
// translation (spec.md §4.6, §4.1).
type Sync int

// Synchronization scopes.
const (
	SyncVertexInput Sync = 1 << iota
	SyncVertexShading
	SyncFragmentShading
	SyncComputeShading
	SyncColorOutput
	SyncDSOutput
	SyncDraw
	SyncResolve
	SyncCopy
	SyncAll
	SyncNone Sync = 0
)

// Access is the type of a memory access scope.
type Access int

// Memory access scopes.
const (
	AccessVertexBufRead Access = 1 << iota
	AccessIndexBufRead
	AccessColorRead
	AccessColorWrite
	AccessDSRead
	AccessDSWrite
	AccessResolveRead
	AccessResolveWrite
	AccessCopyRead
	AccessCopyWrite
	AccessShaderRead
	AccessShaderWrite
	AccessNone Access = 0
)

// Layout is the type of an image layout.
type Layout int

// Image layouts.
const (
	LayoutUndefined Layout = iota
	LayoutCommon
	LayoutColorTarget
	LayoutDSTarget
	LayoutDSRead
	LayoutResolveSrc
	LayoutResolveDst
	LayoutCopySrc
	LayoutCopyDst
	LayoutShaderRead
	LayoutPresent
)

// BufferBarrier represents a synchronization barrier on a buffer
// resource, per spec.md §3/§4.6.
type BufferBarrier struct {
	Target       Buffer
	SyncBefore   Sync
	SyncAfter    Sync
	AccessBefore Access
	AccessAfter  Access
	// OtherQueue, if non-nil, marks this as a queue-ownership
	// transfer; Direction selects which side of the transfer this
	// barrier performs.
	OtherQueue *Queue
	Direction  TransferDirection
}

// TextureBarrier represents a synchronization barrier plus a layout
// transition on a specific Texture subresource.
type TextureBarrier struct {
	Target       Texture
	SyncBefore   Sync
	SyncAfter    Sync
	AccessBefore Access
	AccessAfter  Access
	LayoutBefore Layout
	LayoutAfter  Layout
	// IsSubresource selects a single (mip, layer, plane) via Range;
	// otherwise the barrier applies to every subresource.
	IsSubresource bool
	Range         SubresourceRange
	OtherQueue    *Queue
	Direction     TransferDirection
}

// TransferDirection selects which side of a queue-ownership transfer
// a barrier performs.
type TransferDirection int

// Transfer directions.
const (
	TransferRelease TransferDirection = iota
	TransferAcquire
)

// SubresourceRange identifies one (mip, layer, plane) slice of a
// Texture.
type SubresourceRange struct {
	Mip   int
	Layer int
	Plane int
}

// Viewport defines the bounds of a viewport.
type Viewport struct {
	X, Y, Width, Height, ZNear, ZFar float32
}

// Scissor defines a scissor rectangle.
type Scissor struct {
	X, Y, Width, Height int
}

// BufferCopy describes a buffer-to-buffer copy.
type BufferCopy struct {
	Dst    Buffer
	DstOff int64
	Src    Buffer
	SrcOff int64
	Size   int64
}

// BufImgCopy describes a copy between a buffer and a texture, per
// spec.md §4.6. BufOff must be aligned to 512 bytes; Stride[0] (the
// row length, in texels) must be aligned to 256 bytes when copying
// to/from a buffer on D3D12.
type BufImgCopy struct {
	Buf     Buffer
	BufOff  int64
	Stride  [2]int64
	Img     Texture
	ImgOff  Off3D
	Range   SubresourceRange
	Size    Dim3D
	Stencil bool
}

// CommandBuffer is a recordable/submittable unit bound to one Queue.
// Its state machine is Initial -> Recording -> Executable ->
// Submitted -> Recording (reset-on-Begin is mandatory, spec.md §3).
type CommandBuffer interface {
	Destroyer

	// Begin resets the owned allocator/pool, resets the command
	// list, and (on graphics/compute queues only, never on copy
	// queues) rebinds the shader-visible descriptor heaps.
	Begin() error

	// BeginRenderPass begins recording into pass/fb and returns an
	// ephemeral RenderPassEncoder valid until EndRenderPass. At most
	// one encoder may be active per CommandBuffer at a time.
	BeginRenderPass(pass RenderPass, fb Framebuf, clear []ClearValue) (RenderPassEncoder, error)

	// BeginCompute begins compute command recording.
	BeginCompute()
	// EndCompute ends compute command recording.
	EndCompute()
	// SetComputePipeline sets the bound compute pipeline.
	SetComputePipeline(pl ComputePipelineState)
	// SetComputeDescriptorSet binds table at the given set index for
	// compute dispatches.
	SetComputeDescriptorSet(layout RootSignature, index int, set DescriptorSet)
	// Dispatch dispatches compute thread groups. Must only be called
	// between BeginCompute/EndCompute.
	Dispatch(groupsX, groupsY, groupsZ int)

	// CopyBuffer, CopyBufferToTexture, CopyTextureToBuffer record
	// copy commands. They may be called at any point outside a
	// render pass.
	CopyBuffer(c BufferCopy)
	CopyBufferToTexture(c BufImgCopy)
	CopyTextureToBuffer(c BufImgCopy)

	// Barrier inserts buffer and texture barriers/transitions,
	// translated and batched into a single native call (spec.md
	// §4.6). A barrier with Before == After is dropped (§8 invariant
	// 6); an UnorderedAccess -> UnorderedAccess transition becomes a
	// UAV barrier rather than a state transition.
	Barrier(buffers []BufferBarrier, textures []TextureBarrier)

	// TransitionResource is a reserved surface method: spec.md's
	// Open Questions mark the equivalent D3D12 source routine
	// unimplemented, so it is included on the neutral surface but
	// always returns an Unimplemented error (DESIGN.md).
	TransitionResource(t TextureBarrier) error

	// End closes the command list. New recordings are not allowed
	// until the command buffer is submitted or Reset.
	End() error

	// Reset discards all recorded commands. Calling it twice in a
	// row (double Begin with no intervening End) is equivalent to a
	// single reset (spec.md §8 invariant 4).
	Reset() error
}

// RenderPassEncoder is an ephemeral handle valid only between
// BeginRenderPass and EndRenderPass on a single CommandBuffer. It
// holds a back-reference to its CommandBuffer plus bound-pipeline and
// pending-vertex-buffer state (spec.md §3, §4.6).
type RenderPassEncoder interface {
	// NextSubpass ends the current subpass and begins the next one.
	// Must not be called in the last subpass.
	NextSubpass()

	// EndRenderPass ends the render pass on the CommandBuffer that
	// created this encoder. It is called on the encoder itself, which
	// carries its own back-reference, so on both backends it cannot be
	// invoked through a different CommandBuffer; no further check is
	// made.
	EndRenderPass()

	SetViewport(vp []Viewport)
	SetScissor(s []Scissor)
	SetBlendColor(r, g, b, a float32)
	SetStencilRef(value uint32)

	// SetGraphicsPipeline applies pl. If SetVertexBuffer was called
	// before any pipeline was bound, the stashed vertex buffer
	// bindings are replayed now (because stride comes from the
	// pipeline's VertexIn list, not the buffer) and the stash is
	// cleared (spec.md §4.6's bind-state cache).
	SetGraphicsPipeline(pl GraphicsPipelineState)

	// SetVertexBuffer sets one or more vertex buffers starting at
	// slot start. If no pipeline is bound yet, the call is stashed
	// and replayed on the next SetGraphicsPipeline.
	SetVertexBuffer(start int, buf []Buffer, off []int64)

	// SetIndexBuffer sets the index buffer. off must be aligned to 4
	// bytes.
	SetIndexBuffer(format IndexFmt, buf Buffer, off int64)

	// SetDescriptorSet binds set at the given index of the bound
	// RootSignature's Sets list, calling SetGraphicsRootDescriptorTable
	// (D3D12, possibly twice if the set spans both the resource and
	// sampler heaps) or vkCmdBindDescriptorSets (Vulkan).
	SetDescriptorSet(layout RootSignature, index int, set DescriptorSet)

	// SetRootDescriptor binds a direct CBV/SRV/UAV (D3D12 only; a
	// Vulkan encoder returns Unsupported, since Vulkan has no root
	// descriptor equivalent). Passing a TextureView or a buffer view
	// whose usage doesn't match the root descriptor's declared type
	// is Invalid.
	SetRootDescriptor(layout RootSignature, slot int, view BufferView) error

	// PushConstants writes data into the bound RootSignature's single
	// root-constant range. len(data) must be <= the declared size and
	// a multiple of 4.
	PushConstants(layout RootSignature, data []byte) error

	// Draw draws primitives.
	Draw(vertCount, instCount, baseVert, baseInst int)
	// DrawIndexed draws indexed primitives.
	DrawIndexed(idxCount, instCount, baseIdx, vertOff, baseInst int)
}
