package vk

import (
	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// sampler implements rhi.Sampler over a VkSampler, grounded on
// runsys-core/vgpu/texture.go's Sampler.Config.
type sampler struct {
	dev *Device
	vk  vulkan.Sampler
}

func (d *Device) createNativeSampler(s rhi.Sampling) (vulkan.Sampler, error) {
	info := &vulkan.SamplerCreateInfo{
		SType:                   vulkan.StructureTypeSamplerCreateInfo,
		MagFilter:               vkFilter(s.Mag),
		MinFilter:               vkFilter(s.Min),
		MipmapMode:              vkMipmapMode(s.Mipmap),
		AddressModeU:            vkAddrMode(s.AddrU),
		AddressModeV:            vkAddrMode(s.AddrV),
		AddressModeW:            vkAddrMode(s.AddrW),
		AnisotropyEnable:        boolToVk(s.MaxAniso > 1),
		MaxAnisotropy:           float32(s.MaxAniso),
		MinLod:                  s.MinLOD,
		MaxLod:                  s.MaxLOD,
		UnnormalizedCoordinates: vulkan.False,
	}
	if s.Cmp != nil {
		info.CompareEnable = vulkan.True
		info.CompareOp = vkCompareOp(*s.Cmp)
	}
	var native vulkan.Sampler
	if ret := vulkan.CreateSampler(d.dev, info, nil, &native); ret != vulkan.Success {
		return vulkan.NullSampler, checkResult("vkCreateSampler", ret)
	}
	return native, nil
}

func (d *Device) NewSampler(s rhi.Sampling) (rhi.Sampler, error) {
	native, err := d.createNativeSampler(s)
	if err != nil {
		return nil, err
	}
	return &sampler{dev: d, vk: native}, nil
}

func (s *sampler) Destroy() {
	if s.vk == vulkan.NullSampler {
		return
	}
	vulkan.DestroySampler(s.dev.dev, s.vk, nil)
	s.vk = vulkan.NullSampler
}

func boolToVk(b bool) vulkan.Bool32 {
	if b {
		return vulkan.True
	}
	return vulkan.False
}
