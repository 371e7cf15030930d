package vk

import (
	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// renderPass implements rhi.RenderPass over a VkRenderPass, following
// gviegas-neo3/driver/vk/pass.go's attachment/subpass translation:
// one VkAttachmentDescription per rhi.Attachment, one
// VkSubpassDescription per rhi.Subpass with color/depth-stencil/
// resolve attachment references built from the subpass' index lists.
type renderPass struct {
	dev  *Device
	vk   vulkan.RenderPass
	att  []rhi.Attachment
	sub  []rhi.Subpass
}

func (d *Device) NewRenderPass(att []rhi.Attachment, sub []rhi.Subpass) (rhi.RenderPass, error) {
	if len(sub) == 0 {
		return nil, rhi.Invalid("NewRenderPass: at least one subpass is required")
	}
	var attDescs []vulkan.AttachmentDescription
	for _, a := range att {
		vf, err := vkFormat(a.Format)
		if err != nil {
			return nil, err
		}
		stLoad, stStore := vkLoadOp(a.Load[1]), vkStoreOp(a.Store[1])
		if !a.Format.HasStencil() {
			stLoad, stStore = vulkan.AttachmentLoadOpDontCare, vulkan.AttachmentStoreOpDontCare
		}
		attDescs = append(attDescs, vulkan.AttachmentDescription{
			Format:         vf,
			Samples:        sampleCountFlag(a.Samples),
			LoadOp:         vkLoadOp(a.Load[0]),
			StoreOp:        vkStoreOp(a.Store[0]),
			StencilLoadOp:  stLoad,
			StencilStoreOp: stStore,
			InitialLayout:  vulkan.ImageLayoutGeneral,
			FinalLayout:    vulkan.ImageLayoutGeneral,
		})
	}

	var subDescs []vulkan.SubpassDescription
	// Reference slices must outlive vkCreateRenderPass, so they are
	// kept alive in these per-subpass slices rather than reused.
	var colorRefs, resolveRefs [][]vulkan.AttachmentReference
	var dsRefs []*vulkan.AttachmentReference
	for _, sp := range sub {
		var colors []vulkan.AttachmentReference
		for _, c := range sp.Color {
			colors = append(colors, vulkan.AttachmentReference{
				Attachment: uint32(c),
				Layout:     vulkan.ImageLayoutColorAttachmentOptimal,
			})
		}
		colorRefs = append(colorRefs, colors)

		var resolves []vulkan.AttachmentReference
		for _, r := range sp.MSR {
			resolves = append(resolves, vulkan.AttachmentReference{
				Attachment: uint32(r),
				Layout:     vulkan.ImageLayoutColorAttachmentOptimal,
			})
		}
		resolveRefs = append(resolveRefs, resolves)

		var dsRef *vulkan.AttachmentReference
		if sp.DS >= 0 && sp.DS < len(att) {
			dsRef = &vulkan.AttachmentReference{
				Attachment: uint32(sp.DS),
				Layout:     vulkan.ImageLayoutDepthStencilAttachmentOptimal,
			}
		}
		dsRefs = append(dsRefs, dsRef)

		desc := vulkan.SubpassDescription{
			PipelineBindPoint:    vulkan.PipelineBindPointGraphics,
			ColorAttachmentCount: uint32(len(colors)),
		}
		if len(colors) > 0 {
			desc.PColorAttachments = colors
		}
		if len(resolves) == len(colors) && len(resolves) > 0 {
			desc.PResolveAttachments = resolves
		}
		if dsRef != nil {
			desc.PDepthStencilAttachment = dsRef
		}
		subDescs = append(subDescs, desc)
	}

	info := &vulkan.RenderPassCreateInfo{
		SType:           vulkan.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attDescs)),
		PAttachments:    attDescs,
		SubpassCount:    uint32(len(subDescs)),
		PSubpasses:      subDescs,
	}
	var vkPass vulkan.RenderPass
	if ret := vulkan.CreateRenderPass(d.dev, info, nil, &vkPass); ret != vulkan.Success {
		return nil, checkResult("vkCreateRenderPass", ret)
	}
	return &renderPass{dev: d, vk: vkPass, att: att, sub: sub}, nil
}

func (p *renderPass) NewFB(views []rhi.TextureView, width, height, layers int) (rhi.Framebuf, error) {
	var attachments []vulkan.ImageView
	for _, v := range views {
		tv, ok := v.(*textureView)
		if !ok {
			return nil, rhi.Invalid("NewFB: view belongs to a different backend")
		}
		attachments = append(attachments, tv.vk)
	}
	info := &vulkan.FramebufferCreateInfo{
		SType:           vulkan.StructureTypeFramebufferCreateInfo,
		RenderPass:      p.vk,
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    attachments,
		Width:           uint32(width),
		Height:          uint32(height),
		Layers:          uint32(layers),
	}
	var fb vulkan.Framebuffer
	if ret := vulkan.CreateFramebuffer(p.dev.dev, info, nil, &fb); ret != vulkan.Success {
		return nil, checkResult("vkCreateFramebuffer", ret)
	}
	return &framebuf{dev: p.dev, vk: fb, width: width, height: height}, nil
}

func (p *renderPass) Destroy() {
	if p.vk == vulkan.NullRenderPass {
		return
	}
	vulkan.DestroyRenderPass(p.dev.dev, p.vk, nil)
	p.vk = vulkan.NullRenderPass
}

type framebuf struct {
	dev           *Device
	vk            vulkan.Framebuffer
	width, height int
}

func (f *framebuf) Destroy() {
	if f.vk == vulkan.NullFramebuffer {
		return
	}
	vulkan.DestroyFramebuffer(f.dev.dev, f.vk, nil)
	f.vk = vulkan.NullFramebuffer
}
