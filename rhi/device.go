package rhi

// Device is the top-level handle owning a native device object, the
// memory allocator façade, CPU/GPU descriptor pools, a feature/limits
// record, and per-type queue slots, per spec.md §3. It is obtained
// from Backend.Open and is destroyed last, after every object it
// spawned has been destroyed.
type Device interface {
	Destroyer

	// Backend returns the Backend that owns this Device.
	Backend() Backend

	// Tag identifies which concrete backend this Device belongs to.
	Tag() Tag

	// Limits returns the implementation limits. Immutable for the
	// Device's lifetime.
	Limits() Limits

	// Queue returns the Queue bound to the given QueueType, creating
	// it on first use. Queues are never destroyed independently of
	// the Device.
	Queue(t QueueType) (Queue, error)

	NewCommandBuffer(q Queue) (CommandBuffer, error)
	NewRenderPass(att []Attachment, sub []Subpass) (RenderPass, error)
	NewShaderCode(desc ShaderDesc) (ShaderCode, error)

	NewDescriptorSetLayout(desc DescriptorSetLayoutDesc) (DescriptorSetLayout, error)
	NewDescriptorSet(layout DescriptorSetLayout) (DescriptorSet, error)
	NewRootSignature(desc RootSignatureDesc) (RootSignature, error)

	NewGraphicsPipeline(desc GraphicsPipelineDesc) (GraphicsPipelineState, error)
	NewComputePipeline(desc ComputePipelineDesc) (ComputePipelineState, error)

	NewBuffer(desc BufferDesc) (Buffer, error)
	NewTexture(desc TextureDesc) (Texture, error)
	NewSampler(s Sampling) (Sampler, error)

	NewFence() (Fence, error)
	NewSemaphore() (Semaphore, error)
	NewTimelineSemaphore(initial uint64) (TimelineSemaphore, error)
}

// MemoryAllocator is the device-memory façade described in spec.md
// §4.2/§6 (C2): a thin trait-like interface over a third-party block
// allocator (D3D12MA/VMA), which is out of scope for this module. See
// SPEC_FULL.md §4.2 and DESIGN.md for why the reference backends
// implement it directly rather than binding an external allocator.
type MemoryAllocator interface {
	// CreateBuffer allocates native buffer storage of size bytes for
	// the given usage/visibility, returning an opaque Allocation
	// handle. If dedicated is set, the allocation should get its own
	// memory block.
	CreateBuffer(size int64, visible, dedicated bool) (Allocation, error)

	// CreateImage allocates native image storage per desc, returning
	// an opaque Allocation handle.
	CreateImage(desc TextureDesc) (Allocation, error)

	// CreateCommitted is the alternative path used when the block
	// allocator cannot satisfy a request (e.g. D3D12 CPU-writable
	// UAV buffers requiring the Custom/WRITE_COMBINE heap type).
	CreateCommitted(size int64, visible bool) (Allocation, error)

	// Destroy releases alloc. Failure leaves no side effects.
	Destroy(alloc Allocation)
}

// Allocation is an opaque device-memory allocation handle returned
// by a MemoryAllocator. Concrete backends type-assert it back to
// their own allocation type.
type Allocation interface {
	// Size returns the allocation's size in bytes.
	Size() int64
}
