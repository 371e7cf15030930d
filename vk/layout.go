package vk

import (
	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// descriptorSetLayout implements rhi.DescriptorSetLayout, grounded on
// gviegas-neo3/driver/vk/desc.go's NewDescHeap: one VkDescriptorSetLayoutBinding
// per rhi.BindingEntry, immutable samplers interned for entries that
// declare StaticSamplers.
type descriptorSetLayout struct {
	dev      *Device
	desc     rhi.DescriptorSetLayoutDesc
	vkLayout vulkan.DescriptorSetLayout
	samplers []vulkan.Sampler // interned static samplers, owned by this layout
}

func (d *Device) NewDescriptorSetLayout(desc rhi.DescriptorSetLayoutDesc) (rhi.DescriptorSetLayout, error) {
	var binds []vulkan.DescriptorSetLayoutBinding
	var owned []vulkan.Sampler
	for _, e := range desc.Entries {
		b := vulkan.DescriptorSetLayoutBinding{
			Binding:         uint32(e.Slot),
			DescriptorType:  vkDescriptorType(e.Type),
			DescriptorCount: uint32(e.Count),
			StageFlags:      vulkan.ShaderStageFlags(vkShaderStage(e.Stages)),
		}
		if len(e.StaticSamplers) > 0 {
			if len(e.StaticSamplers) != e.Count {
				return nil, rhi.Invalid("binding %d: StaticSamplers length %d != Count %d", e.Slot, len(e.StaticSamplers), e.Count)
			}
			immut := make([]vulkan.Sampler, len(e.StaticSamplers))
			for i, s := range e.StaticSamplers {
				samp, err := d.createNativeSampler(s)
				if err != nil {
					return nil, err
				}
				immut[i] = samp
				owned = append(owned, samp)
			}
			b.PImmutableSamplers = immut
		}
		binds = append(binds, b)
	}

	info := &vulkan.DescriptorSetLayoutCreateInfo{
		SType:        vulkan.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(binds)),
		PBindings:    binds,
	}
	var vkLayout vulkan.DescriptorSetLayout
	if ret := vulkan.CreateDescriptorSetLayout(d.dev, info, nil, &vkLayout); ret != vulkan.Success {
		for _, s := range owned {
			vulkan.DestroySampler(d.dev, s, nil)
		}
		return nil, checkResult("vkCreateDescriptorSetLayout", ret)
	}
	return &descriptorSetLayout{dev: d, desc: desc, vkLayout: vkLayout, samplers: owned}, nil
}

func (l *descriptorSetLayout) Desc() rhi.DescriptorSetLayoutDesc { return l.desc }

func (l *descriptorSetLayout) Destroy() {
	if l.vkLayout == vulkan.NullDescriptorSetLayout {
		return
	}
	vulkan.DestroyDescriptorSetLayout(l.dev.dev, l.vkLayout, nil)
	for _, s := range l.samplers {
		vulkan.DestroySampler(l.dev.dev, s, nil)
	}
	l.vkLayout = vulkan.NullDescriptorSetLayout
}

// rootSignature implements rhi.RootSignature as a VkPipelineLayout.
// Vulkan has no root-descriptor equivalent, so RootSignatureDesc.RootDescriptors
// must be empty here (spec.md §4.5 step 1); D3D12's separate
// resource/sampler descriptor-table split also has no Vulkan
// analogue, since one VkDescriptorSetLayout freely mixes types.
type rootSignature struct {
	dev        *Device
	layout     vulkan.PipelineLayout
	constant   *rhi.RootConstant
	sets       []rhi.DescriptorSetLayout
	stageMask  rhi.Stage
}

func (d *Device) NewRootSignature(desc rhi.RootSignatureDesc) (rhi.RootSignature, error) {
	if len(desc.RootDescriptors) > 0 {
		return nil, rhi.Unsupported("Vulkan pipeline layouts have no root-descriptor equivalent")
	}
	var setLayouts []vulkan.DescriptorSetLayout
	var mask rhi.Stage
	for _, s := range desc.Sets {
		impl, ok := s.(*descriptorSetLayout)
		if !ok {
			return nil, rhi.Invalid("RootSignatureDesc.Sets: handle belongs to a different backend")
		}
		setLayouts = append(setLayouts, impl.vkLayout)
		for _, e := range impl.desc.Entries {
			mask |= e.Stages
		}
	}

	var ranges []vulkan.PushConstantRange
	if desc.Constant != nil {
		ranges = append(ranges, vulkan.PushConstantRange{
			StageFlags: vulkan.ShaderStageFlags(vkShaderStage(desc.Constant.Stages)),
			Offset:     0,
			Size:       uint32(desc.Constant.Size),
		})
		mask |= desc.Constant.Stages
	}

	info := &vulkan.PipelineLayoutCreateInfo{
		SType:                  vulkan.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         uint32(len(setLayouts)),
		PSetLayouts:            setLayouts,
		PushConstantRangeCount: uint32(len(ranges)),
		PPushConstantRanges:    ranges,
	}
	var pl vulkan.PipelineLayout
	if ret := vulkan.CreatePipelineLayout(d.dev, info, nil, &pl); ret != vulkan.Success {
		return nil, checkResult("vkCreatePipelineLayout", ret)
	}
	return &rootSignature{dev: d, layout: pl, constant: desc.Constant, sets: desc.Sets, stageMask: mask}, nil
}

func (r *rootSignature) StageMask() rhi.Stage { return r.stageMask }

func (r *rootSignature) Destroy() {
	if r.layout == vulkan.NullPipelineLayout {
		return
	}
	vulkan.DestroyPipelineLayout(r.dev.dev, r.layout, nil)
	r.layout = vulkan.NullPipelineLayout
}
