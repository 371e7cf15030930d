//go:build windows

package d3d12

import (
	"unsafe"

	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/rhi"
)

func shaderBytecode(f rhi.ShaderFunc) (com.D3D12_SHADER_BYTECODE, error) {
	if f.Code == nil {
		return com.D3D12_SHADER_BYTECODE{}, nil
	}
	sc, ok := f.Code.(*shaderCode)
	if !ok {
		return com.D3D12_SHADER_BYTECODE{}, rhi.Invalid("ShaderFunc.Code belongs to a different backend")
	}
	if len(sc.bytes) == 0 {
		return com.D3D12_SHADER_BYTECODE{}, nil
	}
	return com.D3D12_SHADER_BYTECODE{
		PShaderBytecode: uintptr(unsafe.Pointer(&sc.bytes[0])),
		BytecodeLength:  uintptr(len(sc.bytes)),
	}, nil
}

func boolToI32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func rasterizerDesc(r rhi.RasterState) com.D3D12_RASTERIZER_DESC {
	return com.D3D12_RASTERIZER_DESC{
		FillMode:              fillMode(r.Fill),
		CullMode:              cullMode(r.Cull),
		FrontCounterClockwise: boolToI32(!r.Clockwise),
		DepthBias:             int32(r.BiasValue),
		DepthBiasClamp:        r.BiasClamp,
		SlopeScaledDepthBias:  r.BiasSlope,
		DepthClipEnable:       1,
	}
}

func stencilOpDesc(s rhi.StencilT) com.D3D12_DEPTH_STENCILOP_DESC {
	return com.D3D12_DEPTH_STENCILOP_DESC{
		StencilFailOp:      stencilOp(s.DSFail[1]),
		StencilDepthFailOp: stencilOp(s.DSFail[0]),
		StencilPassOp:      stencilOp(s.Pass),
		StencilFunc:        compareFunc(s.Cmp),
	}
}

func depthStencilDesc(d rhi.DSState) com.D3D12_DEPTH_STENCIL_DESC {
	var writeMask uint32
	if d.DepthWrite {
		writeMask = 1 // D3D12_DEPTH_WRITE_MASK_ALL
	}
	return com.D3D12_DEPTH_STENCIL_DESC{
		DepthEnable:      boolToI32(d.DepthTest),
		DepthWriteMask:   writeMask,
		DepthFunc:        compareFunc(d.DepthCmp),
		StencilEnable:    boolToI32(d.StencilTest),
		StencilReadMask:  uint8(d.Front.ReadMask),
		StencilWriteMask: uint8(d.Front.WriteMask),
		FrontFace:        stencilOpDesc(d.Front),
		BackFace:         stencilOpDesc(d.Back),
	}
}

func renderTargetBlendDesc(b rhi.ColorBlend) com.D3D12_RENDER_TARGET_BLEND_DESC {
	return com.D3D12_RENDER_TARGET_BLEND_DESC{
		BlendEnable:           boolToI32(b.Blend),
		SrcBlend:              blendFactor(b.SrcFac[0], false),
		DestBlend:             blendFactor(b.DstFac[0], false),
		BlendOp:               blendOp(b.Op[0]),
		SrcBlendAlpha:         blendFactor(b.SrcFac[1], true),
		DestBlendAlpha:        blendFactor(b.DstFac[1], true),
		BlendOpAlpha:          blendOp(b.Op[1]),
		RenderTargetWriteMask: colorWriteMask(b.WriteMask),
	}
}

func blendDesc(b rhi.BlendState) com.D3D12_BLEND_DESC {
	var d com.D3D12_BLEND_DESC
	d.IndependentBlendEnable = boolToI32(b.IndependentBlend)
	if len(b.Targets) == 0 {
		return d
	}
	for i := 0; i < 8; i++ {
		t := b.Targets[0]
		if b.IndependentBlend && i < len(b.Targets) {
			t = b.Targets[i]
		}
		d.RenderTarget[i] = renderTargetBlendDesc(t)
	}
	return d
}

// graphicsPipeline implements rhi.GraphicsPipelineState over a native
// ID3D12PipelineState built from a full D3D12_GRAPHICS_PIPELINE_STATE_DESC,
// grounded on vk.graphicsPipeline's shape.
type graphicsPipeline struct {
	dev      *Device
	pso      *com.ID3D12PipelineState
	strides  map[int]int
	topology rhi.Topology
}

func (d *Device) NewGraphicsPipeline(desc rhi.GraphicsPipelineDesc) (rhi.GraphicsPipelineState, error) {
	sig, ok := desc.Layout.(*rootSignature)
	if !ok {
		return nil, rhi.Invalid("GraphicsPipelineDesc.Layout belongs to a different backend")
	}
	pass, ok := desc.Pass.(*renderPass)
	if !ok {
		return nil, rhi.Invalid("GraphicsPipelineDesc.Pass belongs to a different backend")
	}
	if desc.Subpass < 0 || desc.Subpass >= len(pass.sub) {
		return nil, rhi.Invalid("GraphicsPipelineDesc.Subpass %d out of range", desc.Subpass)
	}
	vs, err := shaderBytecode(desc.VertFunc)
	if err != nil {
		return nil, err
	}
	ps, err := shaderBytecode(desc.FragFunc)
	if err != nil {
		return nil, err
	}

	// Keep per-element semantic-name C strings alive for the duration
	// of CreateGraphicsPipelineState; D3D12_INPUT_ELEMENT_DESC holds a
	// raw *byte into them.
	names := make([][]byte, len(desc.Input))
	elems := make([]com.D3D12_INPUT_ELEMENT_DESC, len(desc.Input))
	strides := make(map[int]int, len(desc.Input))
	for i, in := range desc.Input {
		vf, err := dxgiVertexFormat(in.Format)
		if err != nil {
			return nil, err
		}
		names[i] = append([]byte(in.Name), 0)
		elems[i] = com.D3D12_INPUT_ELEMENT_DESC{
			SemanticName:   &names[i][0],
			Format:         vf,
			InputSlot:      uint32(in.Slot),
			InputSlotClass: com.D3D12_INPUT_CLASSIFICATION_PER_VERTEX_DATA,
		}
		strides[in.Slot] = in.Stride
	}
	var layout com.D3D12_INPUT_LAYOUT_DESC
	if len(elems) > 0 {
		layout = com.D3D12_INPUT_LAYOUT_DESC{PInputElementDescs: &elems[0], NumElements: uint32(len(elems))}
	}

	sp := pass.sub[desc.Subpass]
	var rtvFormats [8]com.DXGI_FORMAT
	for i, ci := range sp.Color {
		f, err := dxgiFormat(pass.att[ci].Format)
		if err != nil {
			return nil, err
		}
		rtvFormats[i] = f
	}
	var dsvFormat com.DXGI_FORMAT
	if sp.DS >= 0 {
		f, err := dxgiFormat(pass.att[sp.DS].Format)
		if err != nil {
			return nil, err
		}
		dsvFormat = f
	}

	samples := desc.Samples
	if samples < 1 {
		samples = 1
	}

	pdesc := &com.D3D12_GRAPHICS_PIPELINE_STATE_DESC{
		PRootSignature:        sig.sig,
		VS:                    vs,
		PS:                    ps,
		BlendState:            blendDesc(desc.Blend),
		SampleMask:            0xffffffff,
		RasterizerState:       rasterizerDesc(desc.Raster),
		DepthStencilState:     depthStencilDesc(desc.DS),
		InputLayout:           layout,
		PrimitiveTopologyType: topologyType(desc.Topology),
		NumRenderTargets:      uint32(len(sp.Color)),
		RTVFormats:            rtvFormats,
		DSVFormat:             dsvFormat,
		SampleDesc:            com.DXGI_SAMPLE_DESC{Count: uint32(samples)},
	}
	pso, err := d.dev.CreateGraphicsPipelineState(pdesc)
	if err != nil {
		return nil, checkResult("CreateGraphicsPipelineState", err)
	}
	return &graphicsPipeline{dev: d, pso: pso, strides: strides, topology: desc.Topology}, nil
}

func (p *graphicsPipeline) Stride(slot int) (int, bool) {
	s, ok := p.strides[slot]
	return s, ok
}

func (p *graphicsPipeline) Topology() rhi.Topology { return p.topology }

func (p *graphicsPipeline) Destroy() {
	if p.pso == nil {
		return
	}
	p.pso.Release()
	p.pso = nil
}

// computePipeline implements rhi.ComputePipelineState.
type computePipeline struct {
	dev *Device
	pso *com.ID3D12PipelineState
}

func (d *Device) NewComputePipeline(desc rhi.ComputePipelineDesc) (rhi.ComputePipelineState, error) {
	sig, ok := desc.Layout.(*rootSignature)
	if !ok {
		return nil, rhi.Invalid("ComputePipelineDesc.Layout belongs to a different backend")
	}
	cs, err := shaderBytecode(desc.Func)
	if err != nil {
		return nil, err
	}
	pso, err := d.dev.CreateComputePipelineState(&com.D3D12_COMPUTE_PIPELINE_STATE_DESC{
		PRootSignature: sig.sig,
		CS:             cs,
	})
	if err != nil {
		return nil, checkResult("CreateComputePipelineState", err)
	}
	return &computePipeline{dev: d, pso: pso}, nil
}

func (p *computePipeline) Destroy() {
	if p.pso == nil {
		return
	}
	p.pso.Release()
	p.pso = nil
}
