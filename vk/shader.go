package vk

import (
	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// shaderCode implements rhi.ShaderCode over a VkShaderModule built
// from a SPIR-V blob. Shader compilation is out of scope; bytes
// arrive precompiled (spec.md §1).
type shaderCode struct {
	dev    *Device
	vk     vulkan.ShaderModule
	entry  string
	stage  rhi.Stage
}

func (d *Device) NewShaderCode(desc rhi.ShaderDesc) (rhi.ShaderCode, error) {
	if desc.Category != rhi.CategorySPIRV {
		return nil, rhi.Unsupported("vulkan backend only accepts SPIR-V shader code")
	}
	if len(desc.Bytes)%4 != 0 {
		return nil, rhi.Invalid("SPIR-V byte length %d is not a multiple of 4", len(desc.Bytes))
	}
	info := &vulkan.ShaderModuleCreateInfo{
		SType:    vulkan.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(desc.Bytes)),
		PCode:    sliceUint32(desc.Bytes),
	}
	var mod vulkan.ShaderModule
	if ret := vulkan.CreateShaderModule(d.dev, info, nil, &mod); ret != vulkan.Success {
		return nil, checkResult("vkCreateShaderModule", ret)
	}
	entry := desc.Entry
	if entry == "" {
		entry = "main"
	}
	return &shaderCode{dev: d, vk: mod, entry: entry, stage: desc.Stage}, nil
}

func (s *shaderCode) Destroy() {
	if s.vk == vulkan.NullShaderModule {
		return
	}
	vulkan.DestroyShaderModule(s.dev.dev, s.vk, nil)
	s.vk = vulkan.NullShaderModule
}

// sliceUint32 reinterprets a SPIR-V byte blob as the []uint32 the
// goki/vulkan binding's PCode field expects.
func sliceUint32(b []byte) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return out
}
