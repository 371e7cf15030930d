package rhi

// Stage is a mask of programmable pipeline stages.
type Stage int

// Stages.
const (
	SVertex Stage = 1 << iota
	SFragment
	SCompute
)

// DescType is the type of a descriptor, per spec.md §3.
type DescType int

// Descriptor types.
const (
	DCBuffer DescType = iota
	DBuffer
	DRWBuffer
	DTexture
	DRWTexture
	DSampler
)

// BindingEntry describes one binding within a DescriptorSetLayout, per
// spec.md §3: {slot, space, type, count, stage-mask, optional static
// samplers}.
type BindingEntry struct {
	Slot   int
	Space  int
	Type   DescType
	Count  int
	Stages Stage
	// StaticSamplers, if non-empty, must have length == Count. When
	// present, the binding's samplers are interned into the owning
	// DescriptorSetLayout and are immutable for its lifetime (the
	// binding itself then contributes zero descriptor ranges to the
	// D3D12 root signature, per spec.md §4.5 step 1).
	StaticSamplers []Sampling
}

// DescriptorSetLayoutDesc describes a DescriptorSetLayout to create.
type DescriptorSetLayoutDesc struct {
	Entries []BindingEntry
}

// DescriptorSetLayout is a list of binding entries, per spec.md §3.
// It owns any interned static samplers: they are destroyed along
// with the layout.
type DescriptorSetLayout interface {
	Destroyer
	Desc() DescriptorSetLayoutDesc
}

// DescriptorSet cannot outlive the layout it was created from.
// SetBuffer, SetTexture and SetSampler write into one binding slot.
type DescriptorSet interface {
	Destroyer

	// Layout returns the DescriptorSetLayout this set was created
	// from.
	Layout() DescriptorSetLayout

	// SetBuffer writes buf (a CBuffer/Buffer/RWBuffer view) into the
	// binding identified by (slot, index).
	SetBuffer(slot, index int, view BufferView) error

	// SetTexture writes view (a Texture/RWTexture view) into the
	// binding identified by (slot, index).
	SetTexture(slot, index int, view TextureView) error

	// SetSampler writes splr into the binding identified by
	// (slot, index). Invalid if the binding uses static samplers.
	SetSampler(slot, index int, splr Sampler) error
}

// RootConstant describes the single optional push/root-constant
// range of a RootSignature, per spec.md §4.5.
type RootConstant struct {
	Size   int
	Slot   int
	Space  int
	Stages Stage
}

// RootDescriptorType is the type of a D3D12 root descriptor (a direct
// CBV/SRV/UAV binding with no intermediary descriptor table). Vulkan
// has no equivalent; RootSignatureDesc.RootDescriptors must be empty
// when building a Vulkan PipelineLayout (spec.md §4.5 step 1).
type RootDescriptorType int

// Root descriptor types.
const (
	RootCBV RootDescriptorType = iota
	RootSRV
	RootUAV
)

// RootDescriptor describes one root descriptor binding.
type RootDescriptor struct {
	Type   RootDescriptorType
	Slot   int
	Space  int
	Stages Stage
}

// RootSignatureDesc describes a RootSignature/PipelineLayout to
// build, per spec.md §4.5's input shape.
type RootSignatureDesc struct {
	Constant        *RootConstant
	RootDescriptors []RootDescriptor
	Sets            []DescriptorSetLayout
}

// RootSignature is the ordered list of root parameters built from a
// RootSignatureDesc: an optional push/root-constant range, optional
// root descriptors (D3D12 only), and one descriptor-table/descriptor-
// set binding per Sets element, plus interned static samplers. A
// union stage-access mask is computed at creation time and used to
// deny unused shader stages (spec.md §4.5 step 4, §8 invariant 8).
type RootSignature interface {
	Destroyer

	// StageMask returns the union of the Stages of every Sets
	// element, of the root constant and of the root descriptors,
	// i.e. the stages that are *not* denied in the built native root
	// signature/pipeline layout.
	StageMask() Stage
}
