package vk

import (
	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// graphicsPipeline implements rhi.GraphicsPipelineState over a
// VkPipeline, following the fixed-function-state assembly style of
// runsys-core/vgpu's Pipeline configuration (separate
// VkPipeline*StateCreateInfo structs per GraphicsPipelineDesc field).
type graphicsPipeline struct {
	dev      *Device
	vk       vulkan.Pipeline
	strides  map[int]int
	topology rhi.Topology
}

func (d *Device) NewGraphicsPipeline(desc rhi.GraphicsPipelineDesc) (rhi.GraphicsPipelineState, error) {
	vert, ok := desc.VertFunc.Code.(*shaderCode)
	if !ok {
		return nil, rhi.Invalid("NewGraphicsPipeline: vertex shader handle belongs to a different backend")
	}
	frag, ok := desc.FragFunc.Code.(*shaderCode)
	if !ok {
		return nil, rhi.Invalid("NewGraphicsPipeline: fragment shader handle belongs to a different backend")
	}
	layout, ok := desc.Layout.(*rootSignature)
	if !ok {
		return nil, rhi.Invalid("NewGraphicsPipeline: layout handle belongs to a different backend")
	}
	pass, ok := desc.Pass.(*renderPass)
	if !ok {
		return nil, rhi.Invalid("NewGraphicsPipeline: render pass handle belongs to a different backend")
	}

	entryName := func(f rhi.ShaderFunc, impl *shaderCode) string {
		if f.Name != "" {
			return f.Name
		}
		return impl.entry
	}
	stages := []vulkan.PipelineShaderStageCreateInfo{
		{
			SType:  vulkan.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vulkan.ShaderStageVertexBit,
			Module: vert.vk,
			PName:  entryName(desc.VertFunc, vert) + "\x00",
		},
		{
			SType:  vulkan.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vulkan.ShaderStageFragmentBit,
			Module: frag.vk,
			PName:  entryName(desc.FragFunc, frag) + "\x00",
		},
	}

	strides := make(map[int]int, len(desc.Input))
	var bindings []vulkan.VertexInputBindingDescription
	var attrs []vulkan.VertexInputAttributeDescription
	for _, in := range desc.Input {
		vf, err := vkVertexFormat(in.Format)
		if err != nil {
			return nil, err
		}
		strides[in.Slot] = in.Stride
		bindings = append(bindings, vulkan.VertexInputBindingDescription{
			Binding:   uint32(in.Slot),
			Stride:    uint32(in.Stride),
			InputRate: vulkan.VertexInputRateVertex,
		})
		attrs = append(attrs, vulkan.VertexInputAttributeDescription{
			Location: uint32(in.Slot),
			Binding:  uint32(in.Slot),
			Format:   vf,
		})
	}
	vertexInput := &vulkan.PipelineVertexInputStateCreateInfo{
		SType:                           vulkan.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   uint32(len(bindings)),
		PVertexBindingDescriptions:      bindings,
		VertexAttributeDescriptionCount: uint32(len(attrs)),
		PVertexAttributeDescriptions:    attrs,
	}

	assembly := &vulkan.PipelineInputAssemblyStateCreateInfo{
		SType:    vulkan.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology: vkTopology(desc.Topology),
	}

	viewportState := &vulkan.PipelineViewportStateCreateInfo{
		SType:         vulkan.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		ScissorCount:  1,
	}

	raster := &vulkan.PipelineRasterizationStateCreateInfo{
		SType:                   vulkan.StructureTypePipelineRasterizationStateCreateInfo,
		PolygonMode:             vkPolygonMode(desc.Raster.Fill),
		CullMode:                vulkan.CullModeFlags(vkCullMode(desc.Raster.Cull)),
		FrontFace:               vkFrontFace(desc.Raster.Clockwise),
		DepthBiasEnable:         boolToVk(desc.Raster.DepthBias),
		DepthBiasConstantFactor: desc.Raster.BiasValue,
		DepthBiasSlopeFactor:    desc.Raster.BiasSlope,
		DepthBiasClamp:          desc.Raster.BiasClamp,
		LineWidth:               1,
	}

	multisample := &vulkan.PipelineMultisampleStateCreateInfo{
		SType:                vulkan.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: sampleCountFlag(desc.Samples),
	}

	dsState := &vulkan.PipelineDepthStencilStateCreateInfo{
		SType:                 vulkan.StructureTypePipelineDepthStencilStateCreateInfo,
		DepthTestEnable:       boolToVk(desc.DS.DepthTest),
		DepthWriteEnable:      boolToVk(desc.DS.DepthWrite),
		DepthCompareOp:        vkCompareOp(desc.DS.DepthCmp),
		StencilTestEnable:     boolToVk(desc.DS.StencilTest),
		Front:                 stencilOpState(desc.DS.Front),
		Back:                  stencilOpState(desc.DS.Back),
	}

	var colorBlends []vulkan.PipelineColorBlendAttachmentState
	targets := desc.Blend.Targets
	if len(targets) == 0 {
		targets = []rhi.ColorBlend{{WriteMask: rhi.ColorAll}}
	}
	for i, sub := range pass.sub[desc.Subpass].Color {
		_ = sub
		t := targets[0]
		if desc.Blend.IndependentBlend && i < len(targets) {
			t = targets[i]
		}
		colorBlends = append(colorBlends, vulkan.PipelineColorBlendAttachmentState{
			BlendEnable:         boolToVk(t.Blend),
			SrcColorBlendFactor: vkBlendFactor(t.SrcFac[0]),
			DstColorBlendFactor: vkBlendFactor(t.DstFac[0]),
			ColorBlendOp:        vkBlendOp(t.Op[0]),
			SrcAlphaBlendFactor: vkBlendFactor(t.SrcFac[1]),
			DstAlphaBlendFactor: vkBlendFactor(t.DstFac[1]),
			AlphaBlendOp:        vkBlendOp(t.Op[1]),
			ColorWriteMask:      vulkan.ColorComponentFlags(vkColorWriteMask(t.WriteMask)),
		})
	}
	colorBlend := &vulkan.PipelineColorBlendStateCreateInfo{
		SType:           vulkan.StructureTypePipelineColorBlendStateCreateInfo,
		AttachmentCount: uint32(len(colorBlends)),
		PAttachments:    colorBlends,
	}

	dynamic := &vulkan.PipelineDynamicStateCreateInfo{
		SType: vulkan.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: 2,
		PDynamicStates: []vulkan.DynamicState{
			vulkan.DynamicStateViewport,
			vulkan.DynamicStateScissor,
		},
	}

	info := vulkan.GraphicsPipelineCreateInfo{
		SType:               vulkan.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:           uint32(len(stages)),
		PStages:              stages,
		PVertexInputState:    vertexInput,
		PInputAssemblyState:  assembly,
		PViewportState:       viewportState,
		PRasterizationState:  raster,
		PMultisampleState:    multisample,
		PDepthStencilState:   dsState,
		PColorBlendState:     colorBlend,
		PDynamicState:        dynamic,
		Layout:               layout.layout,
		RenderPass:            pass.vk,
		Subpass:               uint32(desc.Subpass),
	}
	pipelines := make([]vulkan.Pipeline, 1)
	if ret := vulkan.CreateGraphicsPipelines(d.dev, vulkan.NullPipelineCache, 1, []vulkan.GraphicsPipelineCreateInfo{info}, nil, pipelines); ret != vulkan.Success {
		return nil, checkResult("vkCreateGraphicsPipelines", ret)
	}
	return &graphicsPipeline{dev: d, vk: pipelines[0], strides: strides, topology: desc.Topology}, nil
}

func stencilOpState(s rhi.StencilT) vulkan.StencilOpState {
	return vulkan.StencilOpState{
		FailOp:      vkStencilOp(s.DSFail[1]),
		PassOp:      vkStencilOp(s.Pass),
		DepthFailOp: vkStencilOp(s.DSFail[0]),
		CompareOp:   vkCompareOp(s.Cmp),
		CompareMask: s.ReadMask,
		WriteMask:   s.WriteMask,
	}
}

func (p *graphicsPipeline) Stride(slot int) (int, bool) {
	s, ok := p.strides[slot]
	return s, ok
}

func (p *graphicsPipeline) Topology() rhi.Topology { return p.topology }

func (p *graphicsPipeline) Destroy() {
	if p.vk == vulkan.NullPipeline {
		return
	}
	vulkan.DestroyPipeline(p.dev.dev, p.vk, nil)
	p.vk = vulkan.NullPipeline
}

// computePipeline implements rhi.ComputePipelineState.
type computePipeline struct {
	dev *Device
	vk  vulkan.Pipeline
}

func (d *Device) NewComputePipeline(desc rhi.ComputePipelineDesc) (rhi.ComputePipelineState, error) {
	code, ok := desc.Func.Code.(*shaderCode)
	if !ok {
		return nil, rhi.Invalid("NewComputePipeline: shader handle belongs to a different backend")
	}
	layout, ok := desc.Layout.(*rootSignature)
	if !ok {
		return nil, rhi.Invalid("NewComputePipeline: layout handle belongs to a different backend")
	}
	entry := desc.Func.Name
	if entry == "" {
		entry = code.entry
	}
	info := vulkan.ComputePipelineCreateInfo{
		SType: vulkan.StructureTypeComputePipelineCreateInfo,
		Stage: vulkan.PipelineShaderStageCreateInfo{
			SType:  vulkan.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vulkan.ShaderStageComputeBit,
			Module: code.vk,
			PName:  entry + "\x00",
		},
		Layout: layout.layout,
	}
	pipelines := make([]vulkan.Pipeline, 1)
	if ret := vulkan.CreateComputePipelines(d.dev, vulkan.NullPipelineCache, 1, []vulkan.ComputePipelineCreateInfo{info}, nil, pipelines); ret != vulkan.Success {
		return nil, checkResult("vkCreateComputePipelines", ret)
	}
	return &computePipeline{dev: d, vk: pipelines[0]}, nil
}

func (p *computePipeline) Destroy() {
	if p.vk == vulkan.NullPipeline {
		return
	}
	vulkan.DestroyPipeline(p.dev.dev, p.vk, nil)
	p.vk = vulkan.NullPipeline
}
