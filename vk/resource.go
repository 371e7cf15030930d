package vk

import (
	"unsafe"

	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// buffer implements rhi.Buffer over a VkBuffer plus a dedicated
// VkDeviceMemory allocation, grounded on runsys-core/vgpu/membuff.go's
// MemBuff. Unlike D3D12, Vulkan buffers need no 256-byte constant-
// buffer rounding; uniform-buffer offset alignment is instead the
// caller's concern when slicing a BufferView.
type buffer struct {
	dev    *Device
	desc   rhi.BufferDesc
	vk     vulkan.Buffer
	alloc  *allocation
	mapped []byte
}

func (d *Device) NewBuffer(desc rhi.BufferDesc) (rhi.Buffer, error) {
	if desc.Size <= 0 {
		return nil, rhi.Invalid("buffer size must be positive, got %d", desc.Size)
	}
	info := &vulkan.BufferCreateInfo{
		SType:       vulkan.StructureTypeBufferCreateInfo,
		Size:        vulkan.DeviceSize(desc.Size),
		Usage:       vulkan.BufferUsageFlags(vkBufferUsage(desc.Usage)),
		SharingMode: vulkan.SharingModeExclusive,
	}
	var vkBuf vulkan.Buffer
	if ret := vulkan.CreateBuffer(d.dev, info, nil, &vkBuf); ret != vulkan.Success {
		return nil, checkResult("vkCreateBuffer", ret)
	}

	var reqs vulkan.MemoryRequirements
	vulkan.GetBufferMemoryRequirements(d.dev, vkBuf, &reqs)
	visible := desc.Kind != rhi.MemDevice
	alloc, err := d.mem().allocate(reqs, visible)
	if err != nil {
		vulkan.DestroyBuffer(d.dev, vkBuf, nil)
		return nil, err
	}
	if ret := vulkan.BindBufferMemory(d.dev, vkBuf, alloc.mem, 0); ret != vulkan.Success {
		vulkan.DestroyBuffer(d.dev, vkBuf, nil)
		d.mem().Destroy(alloc)
		return nil, checkResult("vkBindBufferMemory", ret)
	}
	return &buffer{dev: d, desc: desc, vk: vkBuf, alloc: alloc}, nil
}

func (b *buffer) Desc() rhi.BufferDesc { return b.desc }

func (b *buffer) Map() ([]byte, error) {
	if b.desc.Kind == rhi.MemDevice {
		return nil, rhi.Invalid("Map: buffer kind %v is not host-visible", b.desc.Kind)
	}
	if b.desc.Usage&(rhi.UMapRead|rhi.UMapWrite) == 0 {
		return nil, rhi.Invalid("Map: buffer usage has neither UMapRead nor UMapWrite")
	}
	if b.mapped != nil {
		return b.mapped, nil
	}
	var ptr unsafe.Pointer
	if ret := vulkan.MapMemory(b.dev.dev, b.alloc.mem, 0, vulkan.DeviceSize(b.desc.Size), 0, &ptr); ret != vulkan.Success {
		return nil, checkResult("vkMapMemory", ret)
	}
	b.mapped = unsafe.Slice((*byte)(ptr), int(b.desc.Size))
	return b.mapped, nil
}

func (b *buffer) Unmap() {
	if b.mapped == nil {
		return
	}
	vulkan.UnmapMemory(b.dev.dev, b.alloc.mem)
	b.mapped = nil
}

func (b *buffer) Destroy() {
	if b.vk == vulkan.NullBuffer {
		return
	}
	b.Unmap()
	vulkan.DestroyBuffer(b.dev.dev, b.vk, nil)
	b.dev.mem().Destroy(b.alloc)
	b.vk = vulkan.NullBuffer
}

// texture implements rhi.Texture over a VkImage.
type texture struct {
	dev   *Device
	desc  rhi.TextureDesc
	vk    vulkan.Image
	alloc *allocation
	fmt   vulkan.Format
}

func (d *Device) NewTexture(desc rhi.TextureDesc) (rhi.Texture, error) {
	vf, err := vkFormat(desc.Format)
	if err != nil {
		return nil, err
	}
	arrayLayers := 1
	depth := 1
	switch desc.Dim {
	case rhi.Dim3D_:
		depth = desc.DepthOrArrayLayers
	case rhi.DimCube:
		arrayLayers = desc.DepthOrArrayLayers * 6
	default:
		arrayLayers = desc.DepthOrArrayLayers
	}
	if arrayLayers < 1 {
		arrayLayers = 1
	}
	if depth < 1 {
		depth = 1
	}

	info := &vulkan.ImageCreateInfo{
		SType:       vulkan.StructureTypeImageCreateInfo,
		ImageType:   vkImageType(desc.Dim),
		Format:      vf,
		Extent:      vulkan.Extent3D{Width: uint32(desc.Width), Height: uint32(desc.Height), Depth: uint32(depth)},
		MipLevels:   uint32(maxInt(desc.MipLevels, 1)),
		ArrayLayers: uint32(arrayLayers),
		Samples:     sampleCountFlag(desc.Samples),
		Tiling:      vulkan.ImageTilingOptimal,
		Usage:       vulkan.ImageUsageFlags(vkImageUsage(desc.Usage)),
		SharingMode: vulkan.SharingModeExclusive,
	}
	if desc.Dim == rhi.DimCube {
		info.Flags = vulkan.ImageCreateFlags(vulkan.ImageCreateCubeCompatibleBit)
	}
	var img vulkan.Image
	if ret := vulkan.CreateImage(d.dev, info, nil, &img); ret != vulkan.Success {
		return nil, checkResult("vkCreateImage", ret)
	}

	var reqs vulkan.MemoryRequirements
	vulkan.GetImageMemoryRequirements(d.dev, img, &reqs)
	alloc, err := d.mem().allocate(reqs, false)
	if err != nil {
		vulkan.DestroyImage(d.dev, img, nil)
		return nil, err
	}
	if ret := vulkan.BindImageMemory(d.dev, img, alloc.mem, 0); ret != vulkan.Success {
		vulkan.DestroyImage(d.dev, img, nil)
		d.mem().Destroy(alloc)
		return nil, checkResult("vkBindImageMemory", ret)
	}
	return &texture{dev: d, desc: desc, vk: img, alloc: alloc, fmt: vf}, nil
}

func sampleCountFlag(samples int) vulkan.SampleCountFlagBits {
	switch samples {
	case 2:
		return vulkan.SampleCount2Bit
	case 4:
		return vulkan.SampleCount4Bit
	case 8:
		return vulkan.SampleCount8Bit
	case 16:
		return vulkan.SampleCount16Bit
	default:
		return vulkan.SampleCount1Bit
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (t *texture) Desc() rhi.TextureDesc { return t.desc }

func aspectMask(f rhi.PixelFmt) vulkan.ImageAspectFlagBits {
	switch {
	case f.HasDepth() && f.HasStencil():
		return vulkan.ImageAspectDepthBit | vulkan.ImageAspectStencilBit
	case f.HasDepth():
		return vulkan.ImageAspectDepthBit
	case f.HasStencil():
		return vulkan.ImageAspectStencilBit
	default:
		return vulkan.ImageAspectColorBit
	}
}

func (t *texture) NewView(typ rhi.ViewType, layer, layers, level, levels int) (rhi.TextureView, error) {
	if layers <= 0 {
		layers = maxInt(t.desc.DepthOrArrayLayers, 1)
	}
	if levels <= 0 {
		levels = maxInt(t.desc.MipLevels, 1)
	}
	info := &vulkan.ImageViewCreateInfo{
		SType:    vulkan.StructureTypeImageViewCreateInfo,
		Image:    t.vk,
		ViewType: vkImageViewType(typ),
		Format:   t.fmt,
		SubresourceRange: vulkan.ImageSubresourceRange{
			AspectMask:     vulkan.ImageAspectFlags(aspectMask(t.desc.Format)),
			BaseMipLevel:   uint32(level),
			LevelCount:     uint32(levels),
			BaseArrayLayer: uint32(layer),
			LayerCount:     uint32(layers),
		},
	}
	var view vulkan.ImageView
	if ret := vulkan.CreateImageView(t.dev.dev, info, nil, &view); ret != vulkan.Success {
		return nil, checkResult("vkCreateImageView", ret)
	}
	return &textureView{tex: t, typ: typ, vk: view}, nil
}

func (t *texture) Destroy() {
	if t.vk == vulkan.NullImage {
		return
	}
	vulkan.DestroyImage(t.dev.dev, t.vk, nil)
	t.dev.mem().Destroy(t.alloc)
	t.vk = vulkan.NullImage
}

type textureView struct {
	tex *texture
	typ rhi.ViewType
	vk  vulkan.ImageView
}

func (v *textureView) Texture() rhi.Texture { return v.tex }
func (v *textureView) Type() rhi.ViewType   { return v.typ }
func (v *textureView) Destroy() {
	if v.vk == vulkan.NullImageView {
		return
	}
	vulkan.DestroyImageView(v.tex.dev.dev, v.vk, nil)
	v.vk = vulkan.NullImageView
}

// bufferView is a BufferView over a sub-range of a buffer; Vulkan
// descriptor writes reference the range directly via
// VkDescriptorBufferInfo rather than a separate native view object,
// so this is a plain neutral-side wrapper (as is D3D12's bufferView,
// whose descriptor is written only when DescriptorSet.SetBuffer runs).
type bufferView struct {
	buf  *buffer
	off  int64
	size int64
}

func (b *buffer) NewView(off, size int64) (rhi.BufferView, error) {
	if off < 0 || off > b.desc.Size {
		return nil, rhi.Invalid("buffer view offset %d out of range [0, %d]", off, b.desc.Size)
	}
	if size <= 0 {
		size = b.desc.Size - off
	}
	if off+size > b.desc.Size {
		return nil, rhi.Invalid("buffer view range [%d, %d) exceeds buffer size %d", off, off+size, b.desc.Size)
	}
	return &bufferView{buf: b, off: off, size: size}, nil
}

func (v *bufferView) Buffer() rhi.Buffer { return v.buf }
func (v *bufferView) Offset() int64      { return v.off }
func (v *bufferView) Size() int64        { return v.size }
func (v *bufferView) Destroy()           {}
