//go:build windows

package d3d12

import (
	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/rhi"
)

// descriptorSetLayout implements rhi.DescriptorSetLayout. Unlike
// vk.descriptorSetLayout, D3D12 has no native layout object: binding
// entries are only materialized into descriptor-range/static-sampler
// arrays when the owning RootSignature is built, so this type mostly
// just holds the desc for NewRootSignature to consume.
type descriptorSetLayout struct {
	dev  *Device
	desc rhi.DescriptorSetLayoutDesc
}

func (d *Device) NewDescriptorSetLayout(desc rhi.DescriptorSetLayoutDesc) (rhi.DescriptorSetLayout, error) {
	for _, e := range desc.Entries {
		if len(e.StaticSamplers) > 0 && len(e.StaticSamplers) != e.Count {
			return nil, rhi.Invalid("binding %d: StaticSamplers length %d != Count %d", e.Slot, len(e.StaticSamplers), e.Count)
		}
	}
	return &descriptorSetLayout{dev: d, desc: desc}, nil
}

func (l *descriptorSetLayout) Desc() rhi.DescriptorSetLayoutDesc { return l.desc }

func (l *descriptorSetLayout) Destroy() {}

// setTables is the layout's materialized root-parameter shape: up to
// one CBV/SRV/UAV descriptor table and one sampler descriptor table,
// since D3D12 cannot mix the two heap types within a single table.
type setTables struct {
	resourceRanges []com.D3D12_DESCRIPTOR_RANGE1
	samplerRanges  []com.D3D12_DESCRIPTOR_RANGE1
	resourceSlots  []rhi.BindingEntry
	samplerSlots   []rhi.BindingEntry
}

// buildTables splits l's non-static-sampler entries into resource and
// sampler descriptor ranges, per spec.md §4.5 step 1: a binding with
// StaticSamplers set contributes zero ranges (its samplers are
// interned directly into the root signature instead).
func buildTables(l *descriptorSetLayout) setTables {
	var t setTables
	var resOffset, sampOffset uint32
	for _, e := range l.desc.Entries {
		if len(e.StaticSamplers) > 0 {
			continue
		}
		r := com.D3D12_DESCRIPTOR_RANGE1{
			RangeType:          descriptorRangeType(e.Type),
			NumDescriptors:     uint32(e.Count),
			BaseShaderRegister: uint32(e.Slot),
			RegisterSpace:      uint32(e.Space),
		}
		if e.Type == rhi.DSampler {
			r.OffsetInDescriptorsFromTableStart = sampOffset
			sampOffset += uint32(e.Count)
			t.samplerRanges = append(t.samplerRanges, r)
			t.samplerSlots = append(t.samplerSlots, e)
		} else {
			r.OffsetInDescriptorsFromTableStart = resOffset
			resOffset += uint32(e.Count)
			t.resourceRanges = append(t.resourceRanges, r)
			t.resourceSlots = append(t.resourceSlots, e)
		}
	}
	return t
}

// staticSamplers converts l's static-sampler entries to native
// D3D12_STATIC_SAMPLER_DESC, one per array element, interned directly
// in the root signature rather than allocated from a descriptor heap.
func staticSamplers(l *descriptorSetLayout) []com.D3D12_STATIC_SAMPLER_DESC {
	var out []com.D3D12_STATIC_SAMPLER_DESC
	for _, e := range l.desc.Entries {
		for i, s := range e.StaticSamplers {
			cmp := s.Cmp != nil
			var cf com.D3D12_COMPARISON_FUNC
			if cmp {
				cf = compareFunc(*s.Cmp)
			}
			maxAniso := s.MaxAniso
			if maxAniso <= 0 {
				maxAniso = 1
			}
			out = append(out, com.D3D12_STATIC_SAMPLER_DESC{
				Filter:           filter(s.Min, s.Mag, s.Mipmap, cmp, s.MaxAniso > 0),
				AddressU:         addrMode(s.AddrU),
				AddressV:         addrMode(s.AddrV),
				AddressW:         addrMode(s.AddrW),
				MaxAnisotropy:    uint32(maxAniso),
				ComparisonFunc:   cf,
				MinLOD:           s.MinLOD,
				MaxLOD:           s.MaxLOD,
				ShaderRegister:   uint32(e.Slot + i),
				RegisterSpace:    uint32(e.Space),
				ShaderVisibility: shaderVisibility(e.Stages),
			})
		}
	}
	return out
}

// rootSignature implements rhi.RootSignature over a native
// ID3D12RootSignature built from RootSignatureDesc, grounded on
// vk.rootSignature's shape but following spec.md §4.5's full 6-step
// D3D12 algorithm: descriptor tables, root constants, root
// descriptors, static samplers, and a stage-derived deny mask, where
// Vulkan only ever needs steps 1 and 2.
type rootSignature struct {
	dev       *Device
	sig       *com.ID3D12RootSignature
	constant  *rhi.RootConstant
	sets      []rhi.DescriptorSetLayout
	params    []rootParam
	stageMask rhi.Stage
}

// rootParam records what each native root-parameter index is bound
// to, so cmd.go can translate SetDescriptorSet/SetRootDescriptor/
// PushConstants calls into the matching SetGraphicsRoot* call.
type rootParam struct {
	kind       rootParamKind
	setIndex   int // for kind == paramTable
	sampler    bool
	rootDesc   rhi.RootDescriptor
}

type rootParamKind int

const (
	paramTable rootParamKind = iota
	paramConstants
	paramRootDescriptor
)

func (d *Device) NewRootSignature(desc rhi.RootSignatureDesc) (rhi.RootSignature, error) {
	var layouts []*descriptorSetLayout
	for _, s := range desc.Sets {
		impl, ok := s.(*descriptorSetLayout)
		if !ok {
			return nil, rhi.Invalid("RootSignatureDesc.Sets: handle belongs to a different backend")
		}
		layouts = append(layouts, impl)
	}

	var nativeParams []com.D3D12_ROOT_PARAMETER1
	var params []rootParam
	var staticSamps []com.D3D12_STATIC_SAMPLER_DESC
	var stageMask rhi.Stage

	for i, l := range layouts {
		t := buildTables(l)
		for _, e := range l.desc.Entries {
			stageMask |= e.Stages
		}
		if len(t.resourceRanges) > 0 {
			vis := visibilityOf(t.resourceSlots)
			nativeParams = append(nativeParams, com.NewDescriptorTableParameter(t.resourceRanges, vis))
			params = append(params, rootParam{kind: paramTable, setIndex: i, sampler: false})
		}
		if len(t.samplerRanges) > 0 {
			vis := visibilityOf(t.samplerSlots)
			nativeParams = append(nativeParams, com.NewDescriptorTableParameter(t.samplerRanges, vis))
			params = append(params, rootParam{kind: paramTable, setIndex: i, sampler: true})
		}
		staticSamps = append(staticSamps, staticSamplers(l)...)
	}

	if desc.Constant != nil {
		c := desc.Constant
		nativeParams = append(nativeParams, com.NewConstantsParameter(com.D3D12_ROOT_CONSTANTS{
			ShaderRegister: uint32(c.Slot),
			RegisterSpace:  uint32(c.Space),
			Num32BitValues: uint32(c.Size / 4),
		}, shaderVisibility(c.Stages)))
		params = append(params, rootParam{kind: paramConstants})
		stageMask |= c.Stages
	}

	for _, rd := range desc.RootDescriptors {
		nativeParams = append(nativeParams, com.NewRootDescriptorParameter(rootDescriptorType(rd.Type), com.D3D12_ROOT_DESCRIPTOR1{
			ShaderRegister: uint32(rd.Slot),
			RegisterSpace:  uint32(rd.Space),
		}, shaderVisibility(rd.Stages)))
		params = append(params, rootParam{kind: paramRootDescriptor, rootDesc: rd})
		stageMask |= rd.Stages
	}

	rdesc := com.D3D12_ROOT_SIGNATURE_DESC1{
		NumParameters:     uint32(len(nativeParams)),
		NumStaticSamplers: uint32(len(staticSamps)),
		Flags:             rootSignatureFlags(stageMask),
	}
	if len(nativeParams) > 0 {
		rdesc.PParameters = &nativeParams[0]
	}
	if len(staticSamps) > 0 {
		rdesc.PStaticSamplers = &staticSamps[0]
	}

	blob, errBlob, err := d.lib.SerializeVersionedRootSignature(&com.D3D12_VERSIONED_ROOT_SIGNATURE_DESC{
		Version: com.D3D_ROOT_SIGNATURE_VERSION_1_1,
		Desc1_1: rdesc,
	})
	if errBlob != nil {
		errBlob.Release()
	}
	if err != nil {
		return nil, checkResult("D3D12SerializeVersionedRootSignature", err)
	}
	defer blob.Release()

	native, err := d.dev.CreateRootSignature(0, blob.GetBufferPointer(), blob.GetBufferSize())
	if err != nil {
		return nil, checkResult("CreateRootSignature", err)
	}

	return &rootSignature{dev: d, sig: native, constant: desc.Constant, sets: desc.Sets, params: params, stageMask: stageMask}, nil
}

// visibilityOf collapses a set of binding entries to a single
// D3D12_SHADER_VISIBILITY, widening to ALL when the entries target
// more than one stage (see convert.go's shaderVisibility).
func visibilityOf(entries []rhi.BindingEntry) com.D3D12_SHADER_VISIBILITY {
	var mask rhi.Stage
	for _, e := range entries {
		mask |= e.Stages
	}
	return shaderVisibility(mask)
}

func rootDescriptorType(t rhi.RootDescriptorType) com.D3D12_ROOT_PARAMETER_TYPE {
	switch t {
	case rhi.RootSRV:
		return com.D3D12_ROOT_PARAMETER_TYPE_SRV
	case rhi.RootUAV:
		return com.D3D12_ROOT_PARAMETER_TYPE_UAV
	default:
		return com.D3D12_ROOT_PARAMETER_TYPE_CBV
	}
}

// rootSignatureFlags derives the deny-access bits from the union
// stage mask (spec.md §4.5 step 4, §8 invariant 8): any stage absent
// from mask is denied root-signature access, and the input-assembler
// flag is set whenever a graphics stage is present at all. The
// neutral Stage mask has no hull/domain/geometry/amplification/mesh
// bits at all, so those five stages are always denied.
func rootSignatureFlags(mask rhi.Stage) com.D3D12_ROOT_SIGNATURE_FLAGS {
	f := com.D3D12_ROOT_SIGNATURE_FLAG_DENY_HULL_SHADER_ROOT_ACCESS |
		com.D3D12_ROOT_SIGNATURE_FLAG_DENY_DOMAIN_SHADER_ROOT_ACCESS |
		com.D3D12_ROOT_SIGNATURE_FLAG_DENY_GEOMETRY_SHADER_ROOT_ACCESS |
		com.D3D12_ROOT_SIGNATURE_FLAG_DENY_AMPLIFICATION_SHADER_ROOT_ACCESS |
		com.D3D12_ROOT_SIGNATURE_FLAG_DENY_MESH_SHADER_ROOT_ACCESS
	if mask&rhi.SVertex == 0 {
		f |= com.D3D12_ROOT_SIGNATURE_FLAG_DENY_VERTEX_SHADER_ROOT_ACCESS
	}
	if mask&rhi.SFragment == 0 {
		f |= com.D3D12_ROOT_SIGNATURE_FLAG_DENY_PIXEL_SHADER_ROOT_ACCESS
	}
	if mask&(rhi.SVertex|rhi.SFragment) != 0 {
		f |= com.D3D12_ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT
	}
	return f
}

// tableParamIndex returns the native root-parameter index bound to
// set index setIndex's resource or sampler table, if that table
// exists at all (a layout with only static samplers and no
// non-static sampler entries has no sampler table, for instance).
func (r *rootSignature) tableParamIndex(setIndex int, sampler bool) (int, bool) {
	for i, p := range r.params {
		if p.kind == paramTable && p.setIndex == setIndex && p.sampler == sampler {
			return i, true
		}
	}
	return 0, false
}

// rootDescriptorParamIndex returns the native root-parameter index of
// the root descriptor declared at slot/space, for SetRootDescriptor.
func (r *rootSignature) rootDescriptorParamIndex(slot, space int) (int, rhi.RootDescriptorType, bool) {
	for i, p := range r.params {
		if p.kind == paramRootDescriptor && p.rootDesc.Slot == slot && p.rootDesc.Space == space {
			return i, p.rootDesc.Type, true
		}
	}
	return 0, 0, false
}

// constantsParamIndex returns the native root-parameter index of the
// root signature's single root-constants range, if it declares one.
func (r *rootSignature) constantsParamIndex() (int, bool) {
	for i, p := range r.params {
		if p.kind == paramConstants {
			return i, true
		}
	}
	return 0, false
}

func (r *rootSignature) StageMask() rhi.Stage { return r.stageMask }

func (r *rootSignature) Destroy() {
	if r.sig == nil {
		return
	}
	r.sig.Release()
	r.sig = nil
}

// descriptorSet implements rhi.DescriptorSet over two contiguous
// descriptor-heap reservations, one per table (buildTables' resource
// and sampler ranges), rather than vk's single VkDescriptorSet
// allocated from a pool in one call. A table must be bound to the
// pipeline by a single base descriptor handle, so every binding that
// belongs to it has to live at its declared offset within one
// reservation instead of in slots scattered across separate ones.
type descriptorSet struct {
	dev          *Device
	layout       *descriptorSetLayout
	table        setTables
	resourceBase descHandle
	samplerBase  descHandle
	hasResource  bool
	hasSampler   bool
	// offsetOf maps a binding slot to its base index within
	// resourceBase or samplerBase, mirroring the range's
	// OffsetInDescriptorsFromTableStart computed by buildTables.
	offsetOf map[int]int
}

func (d *Device) NewDescriptorSet(layout rhi.DescriptorSetLayout) (rhi.DescriptorSet, error) {
	impl, ok := layout.(*descriptorSetLayout)
	if !ok {
		return nil, rhi.Invalid("NewDescriptorSet: handle belongs to a different backend")
	}
	t := buildTables(impl)
	s := &descriptorSet{dev: d, layout: impl, table: t, offsetOf: map[int]int{}}

	var resCount, sampCount uint32
	for _, r := range t.resourceRanges {
		resCount += r.NumDescriptors
	}
	for _, r := range t.samplerRanges {
		sampCount += r.NumDescriptors
	}
	if resCount > 0 {
		h, err := d.heaps().allocN(categoryCBVSRVUAV, int(resCount))
		if err != nil {
			return nil, err
		}
		s.resourceBase, s.hasResource = h, true
	}
	if sampCount > 0 {
		h, err := d.heaps().allocN(categorySampler, int(sampCount))
		if err != nil {
			s.Destroy()
			return nil, err
		}
		s.samplerBase, s.hasSampler = h, true
	}
	for i, e := range t.resourceSlots {
		s.offsetOf[e.Slot] = int(t.resourceRanges[i].OffsetInDescriptorsFromTableStart)
	}
	for i, e := range t.samplerSlots {
		s.offsetOf[e.Slot] = int(t.samplerRanges[i].OffsetInDescriptorsFromTableStart)
	}
	return s, nil
}

func (s *descriptorSet) Layout() rhi.DescriptorSetLayout { return s.layout }

func (s *descriptorSet) entryFor(slot int) (rhi.BindingEntry, error) {
	for _, e := range s.layout.desc.Entries {
		if e.Slot == slot {
			return e, nil
		}
	}
	return rhi.BindingEntry{}, rhi.Invalid("descriptor set: no binding at slot %d", slot)
}

func (s *descriptorSet) handleFor(slot, index int) (com.D3D12_CPU_DESCRIPTOR_HANDLE, com.D3D12_DESCRIPTOR_HEAP_TYPE, error) {
	base, ok := s.offsetOf[slot]
	if !ok {
		return com.D3D12_CPU_DESCRIPTOR_HANDLE{}, 0, rhi.Invalid("descriptor set: no reserved slot at binding %d", slot)
	}
	e, err := s.entryFor(slot)
	if err != nil {
		return com.D3D12_CPU_DESCRIPTOR_HANDLE{}, 0, err
	}
	h := s.resourceBase
	if e.Type == rhi.DSampler {
		h = s.samplerBase
	}
	return s.dev.heaps().cpuHandleAt(h, base+index), h.category.nativeType(), nil
}

func (s *descriptorSet) SetBuffer(slot, index int, view rhi.BufferView) error {
	e, err := s.entryFor(slot)
	if err != nil {
		return err
	}
	bv, ok := view.(*bufferView)
	if !ok {
		return rhi.Invalid("SetBuffer: view belongs to a different backend")
	}
	dest, _, err := s.handleFor(slot, index)
	if err != nil {
		return err
	}
	switch e.Type {
	case rhi.DCBuffer:
		s.dev.dev.CreateConstantBufferView(&com.D3D12_CONSTANT_BUFFER_VIEW_DESC{
			BufferLocation: bv.buf.res.GetGPUVirtualAddress() + com.D3D12_GPU_VIRTUAL_ADDRESS(bv.off),
			SizeInBytes:    uint32(alignTo256(bv.size)),
		}, dest)
	case rhi.DRWBuffer:
		s.dev.dev.CreateUnorderedAccessView(bv.buf.res, nil, &com.D3D12_UNORDERED_ACCESS_VIEW_DESC{
			Format:        com.DXGI_FORMAT_UNKNOWN,
			ViewDimension: com.D3D12_UAV_DIMENSION_BUFFER,
		}, dest)
	default:
		s.dev.dev.CreateShaderResourceView(bv.buf.res, &com.D3D12_SHADER_RESOURCE_VIEW_DESC{
			Format:                  com.DXGI_FORMAT_UNKNOWN,
			ViewDimension:           com.D3D12_SRV_DIMENSION_BUFFER,
			Shader4ComponentMapping: com.D3D12_DEFAULT_SHADER_4_COMPONENT_MAPPING,
		}, dest)
	}
	return nil
}

func (s *descriptorSet) SetTexture(slot, index int, view rhi.TextureView) error {
	e, err := s.entryFor(slot)
	if err != nil {
		return err
	}
	tv, ok := view.(*textureView)
	if !ok {
		return rhi.Invalid("SetTexture: view belongs to a different backend")
	}
	dest, _, err := s.handleFor(slot, index)
	if err != nil {
		return err
	}
	var src com.D3D12_CPU_DESCRIPTOR_HANDLE
	if e.Type == rhi.DRWTexture {
		src, err = tv.unorderedAccessView()
	} else {
		src, err = tv.shaderResourceView()
	}
	if err != nil {
		return err
	}
	s.dev.dev.CopyDescriptorsSimple(1, dest, src, com.D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV)
	return nil
}

func (s *descriptorSet) SetSampler(slot, index int, splr rhi.Sampler) error {
	e, err := s.entryFor(slot)
	if err != nil {
		return err
	}
	if len(e.StaticSamplers) > 0 {
		return rhi.Invalid("SetSampler: binding %d uses static samplers", slot)
	}
	impl, ok := splr.(*sampler)
	if !ok {
		return rhi.Invalid("SetSampler: handle belongs to a different backend")
	}
	dest, _, err := s.handleFor(slot, index)
	if err != nil {
		return err
	}
	s.dev.dev.CopyDescriptorsSimple(1, dest, impl.cpu, com.D3D12_DESCRIPTOR_HEAP_TYPE_SAMPLER)
	return nil
}

func (s *descriptorSet) Destroy() {
	if s.hasResource {
		s.dev.heaps().free(s.resourceBase)
		s.hasResource = false
	}
	if s.hasSampler {
		s.dev.heaps().free(s.samplerBase)
		s.hasSampler = false
	}
}

// gpuTable returns the base GPU-visible handle for the set's resource
// or sampler table, copying the whole reserved run from the CPU heap
// first so that every binding written since the last sync is visible.
// cmd.go calls this right before SetGraphicsRootDescriptorTable /
// SetComputeRootDescriptorTable.
func (s *descriptorSet) gpuTable(sampler bool) (com.D3D12_GPU_DESCRIPTOR_HANDLE, bool) {
	h, ok := s.resourceBase, s.hasResource
	if sampler {
		h, ok = s.samplerBase, s.hasSampler
	}
	if !ok {
		return com.D3D12_GPU_DESCRIPTOR_HANDLE{}, false
	}
	return s.dev.heaps().syncToGPU(h), true
}
