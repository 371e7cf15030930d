package vk

import (
	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// descriptorSet implements rhi.DescriptorSet over one VkDescriptorSet
// allocated from the Device's descriptorPager, per spec.md §4.3/§4.5.
// Writes go through vkUpdateDescriptorSets, following the
// WriteDescriptorSet construction in runsys-core/vgpu/system.go's
// SetVals.
type descriptorSet struct {
	dev     *Device
	layout  *descriptorSetLayout
	vk      vulkan.DescriptorSet
	pageIdx int
}

func (d *Device) NewDescriptorSet(layout rhi.DescriptorSetLayout) (rhi.DescriptorSet, error) {
	impl, ok := layout.(*descriptorSetLayout)
	if !ok {
		return nil, rhi.Invalid("NewDescriptorSet: handle belongs to a different backend")
	}
	set, pageIdx, err := d.pager().Alloc(impl.vkLayout)
	if err != nil {
		return nil, err
	}
	return &descriptorSet{dev: d, layout: impl, vk: set, pageIdx: pageIdx}, nil
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

func (s *descriptorSet) SetBuffer(slot, index int, view rhi.BufferView) error {
	e, err := s.entryFor(slot)
	if err != nil {
		return err
	}
	bv, ok := view.(*bufferView)
	if !ok {
		return rhi.Invalid("SetBuffer: view belongs to a different backend")
	}
	write := vulkan.WriteDescriptorSet{
		SType:           vulkan.StructureTypeWriteDescriptorSet,
		DstSet:          s.vk,
		DstBinding:      uint32(slot),
		DstArrayElement: uint32(index),
		DescriptorCount: 1,
		DescriptorType:  vkDescriptorType(e.Type),
		PBufferInfo: []vulkan.DescriptorBufferInfo{{
			Buffer: bv.buf.vk,
			Offset: vulkan.DeviceSize(bv.off),
			Range:  vulkan.DeviceSize(bv.size),
		}},
	}
	vulkan.UpdateDescriptorSets(s.dev.dev, 1, []vulkan.WriteDescriptorSet{write}, 0, nil)
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
	layout := vulkan.ImageLayoutShaderReadOnlyOptimal
	if e.Type == rhi.DRWTexture {
		layout = vulkan.ImageLayoutGeneral
	}
	write := vulkan.WriteDescriptorSet{
		SType:           vulkan.StructureTypeWriteDescriptorSet,
		DstSet:          s.vk,
		DstBinding:      uint32(slot),
		DstArrayElement: uint32(index),
		DescriptorCount: 1,
		DescriptorType:  vkDescriptorType(e.Type),
		PImageInfo: []vulkan.DescriptorImageInfo{{
			ImageView:   tv.vk,
			ImageLayout: layout,
		}},
	}
	vulkan.UpdateDescriptorSets(s.dev.dev, 1, []vulkan.WriteDescriptorSet{write}, 0, nil)
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
	write := vulkan.WriteDescriptorSet{
		SType:           vulkan.StructureTypeWriteDescriptorSet,
		DstSet:          s.vk,
		DstBinding:      uint32(slot),
		DstArrayElement: uint32(index),
		DescriptorCount: 1,
		DescriptorType:  vulkan.DescriptorTypeSampler,
		PImageInfo: []vulkan.DescriptorImageInfo{{
			Sampler: impl.vk,
		}},
	}
	vulkan.UpdateDescriptorSets(s.dev.dev, 1, []vulkan.WriteDescriptorSet{write}, 0, nil)
	return nil
}

func (s *descriptorSet) Destroy() {
	if s.vk == vulkan.NullDescriptorSet {
		return
	}
	s.dev.pager().Free(s.pageIdx, s.vk)
	s.vk = vulkan.NullDescriptorSet
}
