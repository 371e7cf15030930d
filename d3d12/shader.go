//go:build windows

package d3d12

import "github.com/vitreous-gpu/rhi/rhi"

// shaderCode implements rhi.ShaderCode by holding the raw DXIL bytes;
// unlike vk.shaderCode there is no native object to create up front,
// since a D3D12_SHADER_BYTECODE is just a pointer/length pair plugged
// directly into the pipeline-state desc at PSO-creation time
// (pipeline.go).
type shaderCode struct {
	bytes []byte
	entry string
	stage rhi.Stage
}

func (d *Device) NewShaderCode(desc rhi.ShaderDesc) (rhi.ShaderCode, error) {
	if desc.Category != rhi.CategoryDXIL {
		return nil, rhi.Unsupported("d3d12 backend requires CategoryDXIL shader bytes, got %v", desc.Category)
	}
	if len(desc.Bytes) == 0 {
		return nil, rhi.Invalid("shader code: Bytes must not be empty")
	}
	return &shaderCode{bytes: desc.Bytes, entry: desc.Entry, stage: desc.Stage}, nil
}

func (s *shaderCode) Destroy() {}
