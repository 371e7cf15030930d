package vk

import (
	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// cbStatus tracks the command buffer lifecycle required by rhi's
// CommandBuffer contract, following the cbStatus state machine in
// gviegas-neo3/driver/vk/cmd.go.
type cbStatus int

const (
	cbIdle cbStatus = iota
	cbBegun
	cbEnded
)

// commandBuffer implements rhi.CommandBuffer over one VkCommandBuffer
// allocated from a per-queue-family VkCommandPool.
type commandBuffer struct {
	dev    *Device
	family uint32
	pool   vulkan.CommandPool
	vk     vulkan.CommandBuffer
	status cbStatus

	inCompute bool
	encoder   *renderPassEncoder
}

func (d *Device) NewCommandBuffer(q rhi.Queue) (rhi.CommandBuffer, error) {
	impl, ok := q.(*Queue)
	if !ok {
		return nil, rhi.Invalid("NewCommandBuffer: queue belongs to a different backend")
	}
	pool, err := d.pool(impl.family)
	if err != nil {
		return nil, err
	}
	info := &vulkan.CommandBufferAllocateInfo{
		SType:              vulkan.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool,
		Level:              vulkan.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
	cbs := make([]vulkan.CommandBuffer, 1)
	if ret := vulkan.AllocateCommandBuffers(d.dev, info, cbs); ret != vulkan.Success {
		return nil, checkResult("vkAllocateCommandBuffers", ret)
	}
	return &commandBuffer{dev: d, family: impl.family, pool: pool, vk: cbs[0]}, nil
}

// Begin resets the command buffer (valid from any prior status, per
// spec.md §8 invariant 4 treating double-Begin as a single reset) and
// starts a new recording. Vulkan command buffers have no equivalent
// to D3D12's shader-visible descriptor heap rebind step, since
// descriptor sets are bound per-draw/dispatch instead.
func (c *commandBuffer) Begin() error {
	if c.status == cbBegun {
		if err := c.Reset(); err != nil {
			return err
		}
	}
	if ret := vulkan.ResetCommandBuffer(c.vk, vulkan.CommandBufferResetFlags(0)); ret != vulkan.Success {
		return checkResult("vkResetCommandBuffer", ret)
	}
	info := &vulkan.CommandBufferBeginInfo{
		SType: vulkan.StructureTypeCommandBufferBeginInfo,
		Flags: vulkan.CommandBufferUsageFlags(vulkan.CommandBufferUsageOneTimeSubmitBit),
	}
	if ret := vulkan.BeginCommandBuffer(c.vk, info); ret != vulkan.Success {
		return checkResult("vkBeginCommandBuffer", ret)
	}
	c.status = cbBegun
	return nil
}

func (c *commandBuffer) End() error {
	if ret := vulkan.EndCommandBuffer(c.vk); ret != vulkan.Success {
		return checkResult("vkEndCommandBuffer", ret)
	}
	c.status = cbEnded
	return nil
}

func (c *commandBuffer) Reset() error {
	if ret := vulkan.ResetCommandBuffer(c.vk, vulkan.CommandBufferResetFlags(0)); ret != vulkan.Success {
		return checkResult("vkResetCommandBuffer", ret)
	}
	c.status = cbIdle
	c.encoder = nil
	c.inCompute = false
	return nil
}

func (c *commandBuffer) Destroy() {
	if c.vk == vulkan.NullCommandBuffer {
		return
	}
	vulkan.FreeCommandBuffers(c.dev.dev, c.pool, 1, []vulkan.CommandBuffer{c.vk})
	c.vk = vulkan.NullCommandBuffer
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
	var clears []vulkan.ClearValue
	for i, cv := range clear {
		if i < len(p.att) && p.att[i].Format.IsDepthStencil() {
			clears = append(clears, vulkan.NewClearDepthStencil(cv.Depth, cv.Stencil))
			continue
		}
		clears = append(clears, vulkan.NewClearValue(cv.Color))
	}
	info := &vulkan.RenderPassBeginInfo{
		SType:       vulkan.StructureTypeRenderPassBeginInfo,
		RenderPass:  p.vk,
		Framebuffer: f.vk,
		RenderArea: vulkan.Rect2D{
			Offset: vulkan.Offset2D{X: 0, Y: 0},
			Extent: vulkan.Extent2D{Width: uint32(f.width), Height: uint32(f.height)},
		},
		ClearValueCount: uint32(len(clears)),
		PClearValues:    clears,
	}
	vulkan.CmdBeginRenderPass(c.vk, info, vulkan.SubpassContentsInline)
	enc := &renderPassEncoder{cb: c, pass: p, subpass: 0, vertexStash: map[int]vertexStashEntry{}}
	c.encoder = enc
	return enc, nil
}

func (c *commandBuffer) BeginCompute() { c.inCompute = true }
func (c *commandBuffer) EndCompute()   { c.inCompute = false }

func (c *commandBuffer) SetComputePipeline(pl rhi.ComputePipelineState) {
	impl, ok := pl.(*computePipeline)
	if !ok {
		return
	}
	vulkan.CmdBindPipeline(c.vk, vulkan.PipelineBindPointCompute, impl.vk)
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
	vulkan.CmdBindDescriptorSets(c.vk, vulkan.PipelineBindPointCompute, l.layout, uint32(index), 1, []vulkan.DescriptorSet{s.vk}, 0, nil)
}

func (c *commandBuffer) Dispatch(groupsX, groupsY, groupsZ int) {
	vulkan.CmdDispatch(c.vk, uint32(groupsX), uint32(groupsY), uint32(groupsZ))
}

func (c *commandBuffer) CopyBuffer(cp rhi.BufferCopy) {
	dst, dok := cp.Dst.(*buffer)
	src, sok := cp.Src.(*buffer)
	if !dok || !sok {
		return
	}
	region := vulkan.BufferCopy{
		SrcOffset: vulkan.DeviceSize(cp.SrcOff),
		DstOffset: vulkan.DeviceSize(cp.DstOff),
		Size:      vulkan.DeviceSize(cp.Size),
	}
	vulkan.CmdCopyBuffer(c.vk, src.vk, dst.vk, 1, []vulkan.BufferCopy{region})
}

func bufImgRegion(cp rhi.BufImgCopy) vulkan.BufferImageCopy {
	tex := cp.Img.(*texture)
	return vulkan.BufferImageCopy{
		BufferOffset:      vulkan.DeviceSize(cp.BufOff),
		BufferRowLength:   uint32(cp.Stride[0]),
		BufferImageHeight: uint32(cp.Stride[1]),
		ImageSubresource: vulkan.ImageSubresourceLayers{
			AspectMask:     vulkan.ImageAspectFlags(aspectMask(tex.desc.Format)),
			MipLevel:       uint32(cp.Range.Mip),
			BaseArrayLayer: uint32(cp.Range.Layer),
			LayerCount:     1,
		},
		ImageOffset: vulkan.Offset3D{X: int32(cp.ImgOff.X), Y: int32(cp.ImgOff.Y), Z: int32(cp.ImgOff.Z)},
		ImageExtent: vulkan.Extent3D{Width: uint32(cp.Size.Width), Height: uint32(cp.Size.Height), Depth: uint32(cp.Size.Depth)},
	}
}

func (c *commandBuffer) CopyBufferToTexture(cp rhi.BufImgCopy) {
	buf, bok := cp.Buf.(*buffer)
	tex, tok := cp.Img.(*texture)
	if !bok || !tok {
		return
	}
	region := bufImgRegion(cp)
	vulkan.CmdCopyBufferToImage(c.vk, buf.vk, tex.vk, vulkan.ImageLayoutTransferDstOptimal, 1, []vulkan.BufferImageCopy{region})
}

func (c *commandBuffer) CopyTextureToBuffer(cp rhi.BufImgCopy) {
	buf, bok := cp.Buf.(*buffer)
	tex, tok := cp.Img.(*texture)
	if !bok || !tok {
		return
	}
	region := bufImgRegion(cp)
	vulkan.CmdCopyImageToBuffer(c.vk, tex.vk, vulkan.ImageLayoutTransferSrcOptimal, buf.vk, 1, []vulkan.BufferImageCopy{region})
}

// Barrier translates and batches buffer/image barriers into a single
// vkCmdPipelineBarrier call, dropping any barrier whose before/after
// state is identical (spec.md §8 invariant 6) and following
// gviegas-neo3/driver/vk/cmd.go's one-call-per-Barrier convention.
func (c *commandBuffer) Barrier(buffers []rhi.BufferBarrier, textures []rhi.TextureBarrier) {
	var srcStage, dstStage vulkan.PipelineStageFlagBits
	var memBarriers []vulkan.MemoryBarrier
	var bufBarriers []vulkan.BufferMemoryBarrier
	var imgBarriers []vulkan.ImageMemoryBarrier

	for _, b := range buffers {
		if b.SyncBefore == b.SyncAfter && b.AccessBefore == b.AccessAfter {
			continue
		}
		buf, ok := b.Target.(*buffer)
		if !ok {
			continue
		}
		srcStage |= syncStage(b.SyncBefore)
		dstStage |= syncStage(b.SyncAfter)
		bufBarriers = append(bufBarriers, vulkan.BufferMemoryBarrier{
			SType:               vulkan.StructureTypeBufferMemoryBarrier,
			SrcAccessMask:       vulkan.AccessFlags(syncAccess(b.AccessBefore)),
			DstAccessMask:       vulkan.AccessFlags(syncAccess(b.AccessAfter)),
			SrcQueueFamilyIndex: vulkan.QueueFamilyIgnored,
			DstQueueFamilyIndex: vulkan.QueueFamilyIgnored,
			Buffer:              buf.vk,
			Offset:              0,
			Size:                vulkan.WholeSize,
		})
	}

	for _, t := range textures {
		if t.SyncBefore == t.SyncAfter && t.AccessBefore == t.AccessAfter && t.LayoutBefore == t.LayoutAfter {
			continue
		}
		tex, ok := t.Target.(*texture)
		if !ok {
			continue
		}
		srcStage |= syncStage(t.SyncBefore)
		dstStage |= syncStage(t.SyncAfter)
		rng := vulkan.ImageSubresourceRange{
			AspectMask:     vulkan.ImageAspectFlags(aspectMask(tex.desc.Format)),
			BaseMipLevel:   0,
			LevelCount:     vulkan.RemainingMipLevels,
			BaseArrayLayer: 0,
			LayerCount:     vulkan.RemainingArrayLayers,
		}
		if t.IsSubresource {
			rng.BaseMipLevel = uint32(t.Range.Mip)
			rng.LevelCount = 1
			rng.BaseArrayLayer = uint32(t.Range.Layer)
			rng.LayerCount = 1
		}
		imgBarriers = append(imgBarriers, vulkan.ImageMemoryBarrier{
			SType:               vulkan.StructureTypeImageMemoryBarrier,
			SrcAccessMask:       vulkan.AccessFlags(syncAccess(t.AccessBefore)),
			DstAccessMask:       vulkan.AccessFlags(syncAccess(t.AccessAfter)),
			OldLayout:           vkImageLayout(t.LayoutBefore),
			NewLayout:           vkImageLayout(t.LayoutAfter),
			SrcQueueFamilyIndex: vulkan.QueueFamilyIgnored,
			DstQueueFamilyIndex: vulkan.QueueFamilyIgnored,
			Image:               tex.vk,
			SubresourceRange:    rng,
		})
	}

	if len(bufBarriers) == 0 && len(imgBarriers) == 0 {
		return
	}
	if srcStage == 0 {
		srcStage = vulkan.PipelineStageTopOfPipeBit
	}
	if dstStage == 0 {
		dstStage = vulkan.PipelineStageBottomOfPipeBit
	}
	vulkan.CmdPipelineBarrier(c.vk,
		vulkan.PipelineStageFlags(srcStage), vulkan.PipelineStageFlags(dstStage), 0,
		uint32(len(memBarriers)), memBarriers,
		uint32(len(bufBarriers)), bufBarriers,
		uint32(len(imgBarriers)), imgBarriers)
}

// TransitionResource always reports Unimplemented; see DESIGN.md's
// Open Questions resolution for the equivalent source routine.
func (c *commandBuffer) TransitionResource(t rhi.TextureBarrier) error {
	return rhi.Unimplemented("CommandBuffer.TransitionResource")
}

type vertexStashEntry struct {
	buf *buffer
	off int64
}

// renderPassEncoder implements rhi.RenderPassEncoder. Unlike D3D12,
// Vulkan vertex buffer bindings do not need a pipeline's stride table
// to bind (the stride lives in the VkPipeline's vertex input state),
// so the stash here exists purely to satisfy the shared neutral
// contract: SetVertexBuffer before any SetGraphicsPipeline call is
// still legal and is replayed once a pipeline is bound.
type renderPassEncoder struct {
	cb          *commandBuffer
	pass        *renderPass
	subpass     int
	pipeline    *graphicsPipeline
	vertexStash map[int]vertexStashEntry
	hasPipeline bool
}

func (e *renderPassEncoder) NextSubpass() {
	vulkan.CmdNextSubpass(e.cb.vk, vulkan.SubpassContentsInline)
	e.subpass++
}

func (e *renderPassEncoder) EndRenderPass() {
	vulkan.CmdEndRenderPass(e.cb.vk)
	e.cb.encoder = nil
}

func (e *renderPassEncoder) SetViewport(vp []rhi.Viewport) {
	var vps []vulkan.Viewport
	for _, v := range vp {
		vps = append(vps, vulkan.Viewport{
			X: v.X, Y: v.Y, Width: v.Width, Height: v.Height,
			MinDepth: v.ZNear, MaxDepth: v.ZFar,
		})
	}
	vulkan.CmdSetViewport(e.cb.vk, 0, uint32(len(vps)), vps)
}

func (e *renderPassEncoder) SetScissor(s []rhi.Scissor) {
	var scs []vulkan.Rect2D
	for _, sc := range s {
		scs = append(scs, vulkan.Rect2D{
			Offset: vulkan.Offset2D{X: int32(sc.X), Y: int32(sc.Y)},
			Extent: vulkan.Extent2D{Width: uint32(sc.Width), Height: uint32(sc.Height)},
		})
	}
	vulkan.CmdSetScissor(e.cb.vk, 0, uint32(len(scs)), scs)
}

func (e *renderPassEncoder) SetBlendColor(r, g, b, a float32) {
	vulkan.CmdSetBlendConstants(e.cb.vk, [4]float32{r, g, b, a})
}

func (e *renderPassEncoder) SetStencilRef(value uint32) {
	vulkan.CmdSetStencilReference(e.cb.vk, vulkan.StencilFrontAndBack, value)
}

func (e *renderPassEncoder) SetGraphicsPipeline(pl rhi.GraphicsPipelineState) {
	impl, ok := pl.(*graphicsPipeline)
	if !ok {
		return
	}
	vulkan.CmdBindPipeline(e.cb.vk, vulkan.PipelineBindPointGraphics, impl.vk)
	e.pipeline = impl
	e.hasPipeline = true
	for slot, entry := range e.vertexStash {
		vulkan.CmdBindVertexBuffers(e.cb.vk, uint32(slot), 1, []vulkan.Buffer{entry.buf.vk}, []vulkan.DeviceSize{vulkan.DeviceSize(entry.off)})
	}
	e.vertexStash = map[int]vertexStashEntry{}
}

func (e *renderPassEncoder) SetVertexBuffer(start int, buf []rhi.Buffer, off []int64) {
	if !e.hasPipeline {
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
	var bufs []vulkan.Buffer
	var offs []vulkan.DeviceSize
	for i, b := range buf {
		impl, ok := b.(*buffer)
		if !ok {
			return
		}
		bufs = append(bufs, impl.vk)
		o := int64(0)
		if i < len(off) {
			o = off[i]
		}
		offs = append(offs, vulkan.DeviceSize(o))
	}
	vulkan.CmdBindVertexBuffers(e.cb.vk, uint32(start), uint32(len(bufs)), bufs, offs)
}

func (e *renderPassEncoder) SetIndexBuffer(format rhi.IndexFmt, buf rhi.Buffer, off int64) {
	impl, ok := buf.(*buffer)
	if !ok {
		return
	}
	vulkan.CmdBindIndexBuffer(e.cb.vk, impl.vk, vulkan.DeviceSize(off), vkIndexType(format))
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
	vulkan.CmdBindDescriptorSets(e.cb.vk, vulkan.PipelineBindPointGraphics, l.layout, uint32(index), 1, []vulkan.DescriptorSet{s.vk}, 0, nil)
}

// SetRootDescriptor has no Vulkan equivalent (spec.md §4.5 step 1);
// Vulkan pipeline layouts carry no direct-descriptor binding slot.
func (e *renderPassEncoder) SetRootDescriptor(layout rhi.RootSignature, slot int, view rhi.BufferView) error {
	return rhi.Unsupported("Vulkan has no root-descriptor equivalent; use a descriptor set instead")
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
	vulkan.CmdPushConstants(e.cb.vk, l.layout, vulkan.ShaderStageFlags(vkShaderStage(l.constant.Stages)), 0, uint32(len(data)), data)
	return nil
}

func (e *renderPassEncoder) Draw(vertCount, instCount, baseVert, baseInst int) {
	vulkan.CmdDraw(e.cb.vk, uint32(vertCount), uint32(instCount), uint32(baseVert), uint32(baseInst))
}

func (e *renderPassEncoder) DrawIndexed(idxCount, instCount, baseIdx, vertOff, baseInst int) {
	vulkan.CmdDrawIndexed(e.cb.vk, uint32(idxCount), uint32(instCount), uint32(baseIdx), int32(vertOff), uint32(baseInst))
}
