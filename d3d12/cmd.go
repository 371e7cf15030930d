//go:build windows

package d3d12

import (
	"unsafe"

	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/rhi"
)

// cbStatus tracks the command buffer lifecycle required by rhi's
// CommandBuffer contract, mirroring vk.cbStatus; unlike a
// VkCommandBuffer, a native ID3D12GraphicsCommandList must be closed
// before it can be reset, so Reset here closes an open list first.
type cbStatus int

const (
	cbIdle cbStatus = iota
	cbBegun
	cbEnded
)

// commandBuffer implements rhi.CommandBuffer over one
// ID3D12GraphicsCommandList and the Device's shared per-list-type
// command allocator (d3d12.go's Device.cmdAllocator).
type commandBuffer struct {
	dev      *Device
	listType com.D3D12_COMMAND_LIST_TYPE
	alloc    *com.ID3D12CommandAllocator
	list     *com.ID3D12GraphicsCommandList
	status   cbStatus

	inCompute  bool
	computeSig *rootSignature
	encoder    *renderPassEncoder
}

func (d *Device) NewCommandBuffer(q rhi.Queue) (rhi.CommandBuffer, error) {
	impl, ok := q.(*Queue)
	if !ok {
		return nil, rhi.Invalid("NewCommandBuffer: queue belongs to a different backend")
	}
	alloc, err := d.cmdAllocator(impl.listType)
	if err != nil {
		return nil, err
	}
	list, err := d.dev.CreateCommandList(0, impl.listType, alloc, nil)
	if err != nil {
		return nil, checkResult("CreateCommandList", err)
	}
	// A freshly created command list starts open; close it so the new
	// commandBuffer begins in cbIdle like every other status.
	if err := list.Close(); err != nil {
		return nil, checkResult("ID3D12GraphicsCommandList::Close", err)
	}
	return &commandBuffer{dev: d, listType: impl.listType, alloc: alloc, list: list}, nil
}

func (c *commandBuffer) Destroy() {
	if c.list == nil {
		return
	}
	c.list.Release()
	c.list = nil
}

// Begin resets the shared command allocator and the command list,
// then, outside copy queues, rebinds whichever shader-visible
// descriptor heaps the Device has created so far (spec.md §4.6);
// Vulkan has no equivalent step since descriptor sets bind directly.
func (c *commandBuffer) Begin() error {
	if c.status == cbBegun {
		if err := c.Reset(); err != nil {
			return err
		}
	}
	if err := c.alloc.Reset(); err != nil {
		return checkResult("ID3D12CommandAllocator::Reset", err)
	}
	if err := c.list.Reset(c.alloc, nil); err != nil {
		return checkResult("ID3D12GraphicsCommandList::Reset", err)
	}
	if c.listType != com.D3D12_COMMAND_LIST_TYPE_COPY {
		dh := c.dev.heaps()
		var visHeaps []*com.ID3D12DescriptorHeap
		if g := dh.gpu[categoryCBVSRVUAV]; g != nil {
			visHeaps = append(visHeaps, g.native)
		}
		if g := dh.gpu[categorySampler]; g != nil {
			visHeaps = append(visHeaps, g.native)
		}
		c.list.SetDescriptorHeaps(visHeaps)
	}
	c.status = cbBegun
	return nil
}

func (c *commandBuffer) End() error {
	if err := c.list.Close(); err != nil {
		return checkResult("ID3D12GraphicsCommandList::Close", err)
	}
	c.status = cbEnded
	return nil
}

// Reset discards all recorded commands. The native list must be
// closed before it can be reset again, so an open list is closed
// first; Begin always performs the actual CommandList::Reset call.
func (c *commandBuffer) Reset() error {
	if c.status == cbBegun {
		if err := c.list.Close(); err != nil {
			return checkResult("ID3D12GraphicsCommandList::Close", err)
		}
	}
	c.status = cbIdle
	c.encoder = nil
	c.inCompute = false
	c.computeSig = nil
	return nil
}

func (c *commandBuffer) BeginRenderPass(pass rhi.RenderPass, fb rhi.Framebuf, clear []rhi.ClearValue) (rhi.RenderPassEncoder, error) {
	p, ok := pass.(*renderPass)
	if !ok {
		return nil, rhi.Invalid("BeginRenderPass: render pass belongs to a different backend")
	}
	f, ok := fb.(*framebuf)
	if !ok {
		return nil, rhi.Invalid("BeginRenderPass: framebuffer belongs to a different backend")
	}
	rtvs, dsv, err := f.renderTargets(0)
	if err != nil {
		return nil, err
	}
	c.list.OMSetRenderTargets(rtvs, false, dsv)

	sp := p.sub[0]
	for i, ci := range sp.Color {
		if ci >= len(clear) || !loadOp(p.att[ci].Load[0]) {
			continue
		}
		color := clear[ci].Color
		c.list.ClearRenderTargetView(rtvs[i], &color, nil)
	}
	if sp.DS >= 0 && dsv != nil && sp.DS < len(clear) {
		att := p.att[sp.DS]
		var flags com.D3D12_CLEAR_FLAGS
		if att.Format.HasDepth() && loadOp(att.Load[0]) {
			flags |= com.D3D12_CLEAR_FLAG_DEPTH
		}
		if att.Format.HasStencil() && loadOp(att.Load[1]) {
			flags |= com.D3D12_CLEAR_FLAG_STENCIL
		}
		if flags != 0 {
			cv := clear[sp.DS]
			c.list.ClearDepthStencilView(*dsv, flags, cv.Depth, uint8(cv.Stencil), nil)
		}
	}
	enc := &renderPassEncoder{cb: c, pass: p, fb: f}
	c.encoder = enc
	return enc, nil
}

func (c *commandBuffer) BeginCompute() { c.inCompute = true }
func (c *commandBuffer) EndCompute()   { c.inCompute = false }

func (c *commandBuffer) bindComputeSignature(l *rootSignature) {
	if c.computeSig != l {
		c.list.SetComputeRootSignature(l.sig)
		c.computeSig = l
	}
}

func (c *commandBuffer) SetComputePipeline(pl rhi.ComputePipelineState) {
	impl, ok := pl.(*computePipeline)
	if !ok {
		return
	}
	c.list.SetPipelineState(impl.pso)
}

func (c *commandBuffer) SetComputeDescriptorSet(layout rhi.RootSignature, index int, set rhi.DescriptorSet) {
	l, ok := layout.(*rootSignature)
	if !ok {
		return
	}
	s, ok := set.(*descriptorSet)
	if !ok {
		return
	}
	c.bindComputeSignature(l)
	if idx, ok := l.tableParamIndex(index, false); ok {
		if h, ok := s.gpuTable(false); ok {
			c.list.SetComputeRootDescriptorTable(uint32(idx), h)
		}
	}
	if idx, ok := l.tableParamIndex(index, true); ok {
		if h, ok := s.gpuTable(true); ok {
			c.list.SetComputeRootDescriptorTable(uint32(idx), h)
		}
	}
}

func (c *commandBuffer) Dispatch(groupsX, groupsY, groupsZ int) {
	c.list.Dispatch(uint32(groupsX), uint32(groupsY), uint32(groupsZ))
}

func (c *commandBuffer) CopyBuffer(cp rhi.BufferCopy) {
	dst, dok := cp.Dst.(*buffer)
	src, sok := cp.Src.(*buffer)
	if !dok || !sok {
		return
	}
	c.list.CopyBufferRegion(dst.res, uint64(cp.DstOff), src.res, uint64(cp.SrcOff), uint64(cp.Size))
}

// placedFootprint builds the D3D12_PLACED_SUBRESOURCE_FOOTPRINT
// describing cp's buffer-side layout; row pitch must land on the
// 256-byte D3D12_TEXTURE_DATA_PITCH_ALIGNMENT boundary spec.md §4.6
// documents on BufImgCopy.
func placedFootprint(tex *texture, cp rhi.BufImgCopy) com.D3D12_PLACED_SUBRESOURCE_FOOTPRINT {
	bpp := int64(formatBlockSize(tex.desc.Format))
	rowPitch := cp.Stride[0] * bpp
	if rowPitch <= 0 {
		rowPitch = int64(cp.Size.Width) * bpp
	}
	rowPitch = (rowPitch + 255) &^ 255
	return com.D3D12_PLACED_SUBRESOURCE_FOOTPRINT{
		Offset: uint64(cp.BufOff),
		Footprint: com.D3D12_SUBRESOURCE_FOOTPRINT{
			Format:   tex.fmt,
			Width:    uint32(cp.Size.Width),
			Height:   uint32(maxInt(cp.Size.Height, 1)),
			Depth:    uint32(maxInt(cp.Size.Depth, 1)),
			RowPitch: uint32(rowPitch),
		},
	}
}

// subresourceIndex flattens (mip, layer, plane) into the linear
// subresource index CopyTextureRegion's SUBRESOURCE_INDEX union member
// and ResourceBarrier both expect; the depth-stencil formats with a
// stencil aspect are two-plane in D3D12, with stencil in plane 1.
func subresourceIndex(tex *texture, r rhi.SubresourceRange) uint32 {
	mipLevels := maxInt(tex.desc.MipLevels, 1)
	return uint32(rhi.SubresourceIndex(r.Mip, r.Layer, r.Plane, mipLevels, maxInt(tex.array, 1)))
}

func (c *commandBuffer) CopyBufferToTexture(cp rhi.BufImgCopy) {
	buf, bok := cp.Buf.(*buffer)
	tex, tok := cp.Img.(*texture)
	if !bok || !tok {
		return
	}
	src := com.D3D12_TEXTURE_COPY_LOCATION{
		Resource:        buf.res,
		Type:            com.D3D12_TEXTURE_COPY_TYPE_PLACED_FOOTPRINT,
		PlacedFootprint: placedFootprint(tex, cp),
	}
	dst := com.D3D12_TEXTURE_COPY_LOCATION{
		Resource:         tex.res,
		Type:             com.D3D12_TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX,
		SubresourceIndex: subresourceIndex(tex, cp.Range),
	}
	c.list.CopyTextureRegion(&dst, uint32(cp.ImgOff.X), uint32(cp.ImgOff.Y), uint32(cp.ImgOff.Z), &src, nil)
}

func (c *commandBuffer) CopyTextureToBuffer(cp rhi.BufImgCopy) {
	buf, bok := cp.Buf.(*buffer)
	tex, tok := cp.Img.(*texture)
	if !bok || !tok {
		return
	}
	dst := com.D3D12_TEXTURE_COPY_LOCATION{
		Resource:        buf.res,
		Type:            com.D3D12_TEXTURE_COPY_TYPE_PLACED_FOOTPRINT,
		PlacedFootprint: placedFootprint(tex, cp),
	}
	src := com.D3D12_TEXTURE_COPY_LOCATION{
		Resource:         tex.res,
		Type:             com.D3D12_TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX,
		SubresourceIndex: subresourceIndex(tex, cp.Range),
	}
	box := com.D3D12_BOX{
		Left:   uint32(cp.ImgOff.X),
		Top:    uint32(cp.ImgOff.Y),
		Front:  uint32(cp.ImgOff.Z),
		Right:  uint32(cp.ImgOff.X + cp.Size.Width),
		Bottom: uint32(cp.ImgOff.Y + maxInt(cp.Size.Height, 1)),
		Back:   uint32(cp.ImgOff.Z + maxInt(cp.Size.Depth, 1)),
	}
	c.list.CopyTextureRegion(&dst, 0, 0, 0, &src, &box)
}

// Barrier translates and batches buffer/texture barriers into a
// single ResourceBarrier call, dropping any barrier whose before/after
// state is identical (spec.md §8 invariant 6) and promoting an
// unordered-access-to-unordered-access transition to a UAV barrier
// rather than a no-op state transition, mirroring vk.commandBuffer's
// one-call-per-Barrier convention.
func (c *commandBuffer) Barrier(buffers []rhi.BufferBarrier, textures []rhi.TextureBarrier) {
	var barriers []com.D3D12_RESOURCE_BARRIER

	for _, b := range buffers {
		if b.SyncBefore == b.SyncAfter && b.AccessBefore == b.AccessAfter {
			continue
		}
		buf, ok := b.Target.(*buffer)
		if !ok {
			continue
		}
		before := accessResourceState(b.AccessBefore)
		after := accessResourceState(b.AccessAfter)
		if before == com.D3D12_RESOURCE_STATE_UNORDERED_ACCESS && after == com.D3D12_RESOURCE_STATE_UNORDERED_ACCESS {
			barriers = append(barriers, com.NewUAVBarrier(com.D3D12_RESOURCE_UAV_BARRIER{Resource: buf.res}))
			continue
		}
		barriers = append(barriers, com.NewTransitionBarrier(com.D3D12_RESOURCE_TRANSITION_BARRIER{
			Resource:    buf.res,
			Subresource: com.D3D12_RESOURCE_BARRIER_ALL_SUBRESOURCES,
			StateBefore: before,
			StateAfter:  after,
		}))
	}

	for _, t := range textures {
		if t.SyncBefore == t.SyncAfter && t.AccessBefore == t.AccessAfter && t.LayoutBefore == t.LayoutAfter {
			continue
		}
		tex, ok := t.Target.(*texture)
		if !ok {
			continue
		}
		before := resourceState(t.LayoutBefore)
		after := resourceState(t.LayoutAfter)
		if before == after && before == com.D3D12_RESOURCE_STATE_UNORDERED_ACCESS {
			barriers = append(barriers, com.NewUAVBarrier(com.D3D12_RESOURCE_UAV_BARRIER{Resource: tex.res}))
			continue
		}
		// PRESENT and COMMON both translate to the zero state, so
		// distinct neutral layouts (Present->Common, Undefined->Common)
		// can still collapse to an identical before/after; the debug
		// layer rejects a same-state transition, so drop it here too.
		if before == after {
			continue
		}
		sub := uint32(com.D3D12_RESOURCE_BARRIER_ALL_SUBRESOURCES)
		if t.IsSubresource {
			sub = subresourceIndex(tex, t.Range)
		}
		barriers = append(barriers, com.NewTransitionBarrier(com.D3D12_RESOURCE_TRANSITION_BARRIER{
			Resource:    tex.res,
			Subresource: sub,
			StateBefore: before,
			StateAfter:  after,
		}))
	}

	c.list.ResourceBarrier(barriers)
}

// TransitionResource always reports Unimplemented; see DESIGN.md's
// Open Questions resolution for the equivalent source routine.
func (c *commandBuffer) TransitionResource(t rhi.TextureBarrier) error {
	return rhi.Unimplemented("CommandBuffer.TransitionResource")
}

// renderPassEncoder implements rhi.RenderPassEncoder over the owning
// commandBuffer's native list; D3D12 needs the bound pipeline's
// per-slot vertex stride table (graphicsPipeline.strides) to build a
// D3D12_VERTEX_BUFFER_VIEW, so SetVertexBuffer before any
// SetGraphicsPipeline call is stashed and replayed once a pipeline is
// bound, the same way vk.renderPassEncoder does for its own reasons.
type renderPassEncoder struct {
	cb          *commandBuffer
	pass        *renderPass
	fb          *framebuf
	subpass     int
	pipeline    *graphicsPipeline
	graphicsSig *rootSignature
	vertexStash map[int]vertexStashEntry
	hasPipeline bool
}

type vertexStashEntry struct {
	buf *buffer
	off int64
}

func (e *renderPassEncoder) NextSubpass() {
	e.subpass++
	rtvs, dsv, err := e.fb.renderTargets(e.subpass)
	if err != nil {
		return
	}
	e.cb.list.OMSetRenderTargets(rtvs, false, dsv)
}

func (e *renderPassEncoder) EndRenderPass() {
	e.cb.encoder = nil
}

func (e *renderPassEncoder) SetViewport(vp []rhi.Viewport) {
	var vps []com.D3D12_VIEWPORT
	for _, v := range vp {
		vps = append(vps, com.D3D12_VIEWPORT{
			TopLeftX: v.X, TopLeftY: v.Y, Width: v.Width, Height: v.Height,
			MinDepth: v.ZNear, MaxDepth: v.ZFar,
		})
	}
	if len(vps) > 0 {
		e.cb.list.RSSetViewports(vps)
	}
}

func (e *renderPassEncoder) SetScissor(s []rhi.Scissor) {
	var rects []com.D3D12_RECT
	for _, sc := range s {
		rects = append(rects, com.D3D12_RECT{
			Left: int32(sc.X), Top: int32(sc.Y),
			Right: int32(sc.X + sc.Width), Bottom: int32(sc.Y + sc.Height),
		})
	}
	if len(rects) > 0 {
		e.cb.list.RSSetScissorRects(rects)
	}
}

func (e *renderPassEncoder) SetBlendColor(r, g, b, a float32) {
	factor := [4]float32{r, g, b, a}
	e.cb.list.OMSetBlendFactor(&factor)
}

func (e *renderPassEncoder) SetStencilRef(value uint32) {
	e.cb.list.OMSetStencilRef(value)
}

func (e *renderPassEncoder) bindGraphicsSignature(l *rootSignature) {
	if e.graphicsSig != l {
		e.cb.list.SetGraphicsRootSignature(l.sig)
		e.graphicsSig = l
	}
}

func (e *renderPassEncoder) SetGraphicsPipeline(pl rhi.GraphicsPipelineState) {
	impl, ok := pl.(*graphicsPipeline)
	if !ok {
		return
	}
	e.cb.list.SetPipelineState(impl.pso)
	e.cb.list.IASetPrimitiveTopology(topology(impl.topology))
	e.pipeline = impl
	e.hasPipeline = true
	for slot, entry := range e.vertexStash {
		e.bindVertexBuffer(slot, entry.buf, entry.off)
	}
	e.vertexStash = nil
}

func (e *renderPassEncoder) bindVertexBuffer(slot int, buf *buffer, off int64) {
	stride := 0
	if e.pipeline != nil {
		stride, _ = e.pipeline.Stride(slot)
	}
	view := com.D3D12_VERTEX_BUFFER_VIEW{
		BufferLocation: buf.res.GetGPUVirtualAddress() + com.D3D12_GPU_VIRTUAL_ADDRESS(off),
		SizeInBytes:    uint32(buf.size - off),
		StrideInBytes:  uint32(stride),
	}
	e.cb.list.IASetVertexBuffers(uint32(slot), []com.D3D12_VERTEX_BUFFER_VIEW{view})
}

func (e *renderPassEncoder) SetVertexBuffer(start int, buf []rhi.Buffer, off []int64) {
	if !e.hasPipeline {
		if e.vertexStash == nil {
			e.vertexStash = map[int]vertexStashEntry{}
		}
		for i, b := range buf {
			impl, ok := b.(*buffer)
			if !ok {
				continue
			}
			o := int64(0)
			if i < len(off) {
				o = off[i]
			}
			e.vertexStash[start+i] = vertexStashEntry{buf: impl, off: o}
		}
		return
	}
	for i, b := range buf {
		impl, ok := b.(*buffer)
		if !ok {
			continue
		}
		o := int64(0)
		if i < len(off) {
			o = off[i]
		}
		e.bindVertexBuffer(start+i, impl, o)
	}
}

func (e *renderPassEncoder) SetIndexBuffer(format rhi.IndexFmt, buf rhi.Buffer, off int64) {
	impl, ok := buf.(*buffer)
	if !ok {
		return
	}
	view := com.D3D12_INDEX_BUFFER_VIEW{
		BufferLocation: impl.res.GetGPUVirtualAddress() + com.D3D12_GPU_VIRTUAL_ADDRESS(off),
		SizeInBytes:    uint32(impl.size - off),
		Format:         dxgiIndexFormat(format),
	}
	e.cb.list.IASetIndexBuffer(&view)
}

func (e *renderPassEncoder) SetDescriptorSet(layout rhi.RootSignature, index int, set rhi.DescriptorSet) {
	l, ok := layout.(*rootSignature)
	if !ok {
		return
	}
	s, ok := set.(*descriptorSet)
	if !ok {
		return
	}
	e.bindGraphicsSignature(l)
	if idx, ok := l.tableParamIndex(index, false); ok {
		if h, ok := s.gpuTable(false); ok {
			e.cb.list.SetGraphicsRootDescriptorTable(uint32(idx), h)
		}
	}
	if idx, ok := l.tableParamIndex(index, true); ok {
		if h, ok := s.gpuTable(true); ok {
			e.cb.list.SetGraphicsRootDescriptorTable(uint32(idx), h)
		}
	}
}

// SetRootDescriptor binds a direct CBV/SRV/UAV root parameter; spec.md
// §4.5 step 1 is D3D12-only, so Vulkan's encoder (vk/cmd.go) always
// reports Unsupported for the same call.
func (e *renderPassEncoder) SetRootDescriptor(layout rhi.RootSignature, slot int, view rhi.BufferView) error {
	l, ok := layout.(*rootSignature)
	if !ok {
		return rhi.Invalid("SetRootDescriptor: layout belongs to a different backend")
	}
	bv, ok := view.(*bufferView)
	if !ok {
		return rhi.Invalid("SetRootDescriptor: view belongs to a different backend")
	}
	idx, typ, found := l.rootDescriptorParamIndex(slot, 0)
	if !found {
		return rhi.Invalid("SetRootDescriptor: layout declares no root descriptor at slot %d", slot)
	}
	e.bindGraphicsSignature(l)
	addr := bv.buf.res.GetGPUVirtualAddress() + com.D3D12_GPU_VIRTUAL_ADDRESS(bv.off)
	switch typ {
	case rhi.RootSRV:
		e.cb.list.SetGraphicsRootShaderResourceView(uint32(idx), addr)
	case rhi.RootUAV:
		e.cb.list.SetGraphicsRootUnorderedAccessView(uint32(idx), addr)
	default:
		e.cb.list.SetGraphicsRootConstantBufferView(uint32(idx), addr)
	}
	return nil
}

func (e *renderPassEncoder) PushConstants(layout rhi.RootSignature, data []byte) error {
	l, ok := layout.(*rootSignature)
	if !ok {
		return rhi.Invalid("PushConstants: layout belongs to a different backend")
	}
	if l.constant == nil {
		return rhi.Invalid("PushConstants: layout declares no root constant range")
	}
	if len(data) > l.constant.Size || len(data)%4 != 0 {
		return rhi.Invalid("PushConstants: data length %d invalid for range size %d", len(data), l.constant.Size)
	}
	idx, ok := l.constantsParamIndex()
	if !ok {
		return rhi.Invalid("PushConstants: layout declares no root constant range")
	}
	e.bindGraphicsSignature(l)
	if len(data) == 0 {
		return nil
	}
	e.cb.list.SetGraphicsRoot32BitConstants(uint32(idx), uint32(len(data)/4), unsafe.Pointer(&data[0]), 0)
	return nil
}

func (e *renderPassEncoder) Draw(vertCount, instCount, baseVert, baseInst int) {
	e.cb.list.DrawInstanced(uint32(vertCount), uint32(instCount), uint32(baseVert), uint32(baseInst))
}

func (e *renderPassEncoder) DrawIndexed(idxCount, instCount, baseIdx, vertOff, baseInst int) {
	e.cb.list.DrawIndexedInstanced(uint32(idxCount), uint32(instCount), uint32(baseIdx), int32(vertOff), uint32(baseInst))
}
