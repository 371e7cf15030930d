//go:build windows

package d3d12

import (
	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/rhi"
)

// renderPass implements rhi.RenderPass with no native object: D3D12
// has no VkRenderPass equivalent, so attachment/subpass information
// is only used to validate framebuffer creation and to drive manual
// OMSetRenderTargets/ClearRenderTargetView/ClearDepthStencilView calls
// from cmd.go's BeginRenderPass, per spec.md §4.6.
type renderPass struct {
	dev *Device
	att []rhi.Attachment
	sub []rhi.Subpass
}

func (d *Device) NewRenderPass(att []rhi.Attachment, sub []rhi.Subpass) (rhi.RenderPass, error) {
	if len(sub) == 0 {
		return nil, rhi.Invalid("NewRenderPass: at least one subpass is required")
	}
	for i, sp := range sub {
		for _, ci := range sp.Color {
			if ci < 0 || ci >= len(att) {
				return nil, rhi.Invalid("subpass %d: color attachment index %d out of range", i, ci)
			}
		}
		if sp.DS >= len(att) {
			return nil, rhi.Invalid("subpass %d: depth-stencil attachment index %d out of range", i, sp.DS)
		}
	}
	return &renderPass{dev: d, att: att, sub: sub}, nil
}

func (r *renderPass) Destroy() {}

func (r *renderPass) NewFB(views []rhi.TextureView, width, height, layers int) (rhi.Framebuf, error) {
	impl := make([]*textureView, len(views))
	for i, v := range views {
		tv, ok := v.(*textureView)
		if !ok {
			return nil, rhi.Invalid("NewFB: view %d belongs to a different backend", i)
		}
		impl[i] = tv
	}
	return &framebuf{dev: r.dev, pass: r, views: impl, width: width, height: height, layers: layers}, nil
}

// framebuf implements rhi.Framebuf as a plain list of attachment
// views; there is no native object, since D3D12 binds RTV/DSV handles
// directly on the command list rather than through a framebuffer.
type framebuf struct {
	dev    *Device
	pass   *renderPass
	views  []*textureView
	width  int
	height int
	layers int
}

func (f *framebuf) Destroy() {}

// renderTargets resolves the RTV handles and, if present, the DSV
// handle for subpass index sp, for cmd.go's BeginRenderPass to bind
// via OMSetRenderTargets.
func (f *framebuf) renderTargets(sp int) ([]com.D3D12_CPU_DESCRIPTOR_HANDLE, *com.D3D12_CPU_DESCRIPTOR_HANDLE, error) {
	if sp < 0 || sp >= len(f.pass.sub) {
		return nil, nil, rhi.Invalid("renderTargets: subpass index %d out of range", sp)
	}
	subpass := f.pass.sub[sp]
	rtvs := make([]com.D3D12_CPU_DESCRIPTOR_HANDLE, 0, len(subpass.Color))
	for _, ci := range subpass.Color {
		h, err := f.views[ci].renderTargetView()
		if err != nil {
			return nil, nil, err
		}
		rtvs = append(rtvs, h)
	}
	var dsv *com.D3D12_CPU_DESCRIPTOR_HANDLE
	if subpass.DS >= 0 {
		h, err := f.views[subpass.DS].depthStencilView()
		if err != nil {
			return nil, nil, err
		}
		dsv = &h
	}
	return rtvs, dsv, nil
}
