//go:build windows

package d3d12

import (
	"unsafe"

	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/rhi"
)

// resourceFlags derives D3D12_RESOURCE_FLAGS from a neutral Usage
// mask; D3D12 requires these to be declared up front at resource
// creation, unlike Vulkan's VkImageUsageFlags/VkBufferUsageFlags which
// this backend's convert.go counterpart (vk/convert.go) maps the same
// way but without the render-target/depth-stencil split being a
// creation-time concern on both APIs equally.
func resourceFlags(u rhi.Usage) com.D3D12_RESOURCE_FLAGS {
	var f com.D3D12_RESOURCE_FLAGS
	if u&rhi.UUnorderedAccess != 0 {
		f |= com.D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS
	}
	if u&rhi.URenderTarget != 0 {
		f |= com.D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET
	}
	if u&(rhi.UDepthStencilRead|rhi.UDepthStencilWrite) != 0 {
		f |= com.D3D12_RESOURCE_FLAG_ALLOW_DEPTH_STENCIL
	}
	return f
}

// buffer implements rhi.Buffer over a committed ID3D12Resource,
// grounded on vk.buffer but with no separate memory-requirements
// query: CreateCommittedResource both allocates and binds the
// resource in one call.
type buffer struct {
	dev    *Device
	desc   rhi.BufferDesc
	size   int64
	res    *com.ID3D12Resource
	mapped []byte
}

func (d *Device) NewBuffer(desc rhi.BufferDesc) (rhi.Buffer, error) {
	if desc.Size <= 0 {
		return nil, rhi.Invalid("buffer size must be positive, got %d", desc.Size)
	}
	size := desc.Size
	if desc.Usage&rhi.UCBuffer != 0 {
		size = alignTo256(size)
	}
	ht := com.D3D12_HEAP_TYPE_DEFAULT
	switch desc.Kind {
	case rhi.MemUpload:
		ht = com.D3D12_HEAP_TYPE_UPLOAD
	case rhi.MemReadback:
		ht = com.D3D12_HEAP_TYPE_READBACK
	}
	alloc, err := d.mem().commitBuffer(size, ht, resourceFlags(desc.Usage))
	if err != nil {
		return nil, err
	}
	return &buffer{dev: d, desc: desc, size: size, res: alloc.resource}, nil
}

func (b *buffer) Desc() rhi.BufferDesc {
	d := b.desc
	d.Size = b.size
	return d
}

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
	ptr, err := b.res.Map(0, nil)
	if err != nil {
		return nil, checkResult("ID3D12Resource::Map", err)
	}
	b.mapped = unsafe.Slice((*byte)(ptr), int(b.size))
	return b.mapped, nil
}

func (b *buffer) Unmap() {
	if b.mapped == nil {
		return
	}
	b.res.Unmap(0, nil)
	b.mapped = nil
}

func (b *buffer) Destroy() {
	if b.res == nil {
		return
	}
	b.Unmap()
	b.res.Release()
	b.res = nil
}

func (b *buffer) NewView(off, size int64) (rhi.BufferView, error) {
	if off < 0 || off > b.size {
		return nil, rhi.Invalid("buffer view offset %d out of range [0, %d]", off, b.size)
	}
	if size <= 0 {
		size = b.size - off
	}
	if off+size > b.size {
		return nil, rhi.Invalid("buffer view range [%d, %d) exceeds buffer size %d", off, off+size, b.size)
	}
	return &bufferView{buf: b, off: off, size: size}, nil
}

// bufferView is a plain range wrapper; the concrete CBV/SRV/UAV
// descriptor is built on demand by DescriptorSet.SetBuffer (rootsig.go)
// since the same range can serve different descriptor types depending
// on the binding's DescType, mirroring vk.bufferView's no-native-object
// design.
type bufferView struct {
	buf  *buffer
	off  int64
	size int64
}

func (v *bufferView) Buffer() rhi.Buffer { return v.buf }
func (v *bufferView) Offset() int64      { return v.off }
func (v *bufferView) Size() int64        { return v.size }
func (v *bufferView) Destroy()           {}

// texture implements rhi.Texture over a committed ID3D12Resource.
type texture struct {
	dev   *Device
	desc  rhi.TextureDesc
	res   *com.ID3D12Resource
	fmt   com.DXGI_FORMAT
	depth int
	array int
}

func (d *Device) NewTexture(desc rhi.TextureDesc) (rhi.Texture, error) {
	df, err := dxgiFormat(desc.Format)
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
	depthOrArray := arrayLayers
	if desc.Dim == rhi.Dim3D_ {
		depthOrArray = depth
	}

	rdesc := &com.D3D12_RESOURCE_DESC{
		Dimension:        resourceDimension(desc.Dim),
		Width:            uint64(desc.Width),
		Height:           uint32(maxInt(desc.Height, 1)),
		DepthOrArraySize: uint16(depthOrArray),
		MipLevels:        uint16(maxInt(desc.MipLevels, 1)),
		Format:           df,
		SampleDesc:       com.DXGI_SAMPLE_DESC{Count: uint32(maxInt(desc.Samples, 1))},
		Layout:           com.D3D12_TEXTURE_LAYOUT_UNKNOWN,
		Flags:            resourceFlags(desc.Usage),
	}
	props := &com.D3D12_HEAP_PROPERTIES{Type: com.D3D12_HEAP_TYPE_DEFAULT}
	res, err := d.dev.CreateCommittedResource(props, com.D3D12_HEAP_FLAG_NONE, rdesc, com.D3D12_RESOURCE_STATE_COMMON, nil)
	if err != nil {
		return nil, checkResult("CreateCommittedResource", err)
	}
	return &texture{dev: d, desc: desc, res: res, fmt: df, depth: depth, array: arrayLayers}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (t *texture) Desc() rhi.TextureDesc { return t.desc }

func (t *texture) Destroy() {
	if t.res == nil {
		return
	}
	t.res.Release()
	t.res = nil
}

func (t *texture) NewView(typ rhi.ViewType, layer, layers, level, levels int) (rhi.TextureView, error) {
	if layers <= 0 {
		layers = maxInt(t.array, 1)
	}
	if levels <= 0 {
		levels = maxInt(t.desc.MipLevels, 1)
	}
	return &textureView{dev: t.dev, tex: t, typ: typ, layer: layer, layers: layers, level: level, levels: levels}, nil
}

// textureView defers native-view creation: D3D12 needs a distinct
// descriptor object per kind of access (SRV, UAV, RTV, DSV), unlike
// Vulkan's single VkImageView usable everywhere (vk/resource.go).
// Each kind is created and reserved from the descriptor-heap
// suballocator on first use and cached.
type textureView struct {
	dev                        *Device
	tex                        *texture
	typ                        rhi.ViewType
	layer, layers, level, levels int

	srv, uav, rtv, dsv *descHandle
}

func (v *textureView) Texture() rhi.Texture { return v.tex }
func (v *textureView) Type() rhi.ViewType   { return v.typ }

func (v *textureView) srvDimension() com.D3D12_SRV_DIMENSION {
	switch v.typ {
	case rhi.View1D:
		return com.D3D12_SRV_DIMENSION_TEXTURE1D
	case rhi.View1DArray:
		return com.D3D12_SRV_DIMENSION_TEXTURE1DARRAY
	case rhi.View3D:
		return com.D3D12_SRV_DIMENSION_TEXTURE3D
	case rhi.ViewCube:
		return com.D3D12_SRV_DIMENSION_TEXTURECUBE
	case rhi.ViewCubeArray:
		return com.D3D12_SRV_DIMENSION_TEXTURECUBEARRAY
	case rhi.View2DMS:
		return com.D3D12_SRV_DIMENSION_TEXTURE2DMS
	case rhi.View2DMSArray:
		return com.D3D12_SRV_DIMENSION_TEXTURE2DMSARRAY
	case rhi.View2DArray:
		return com.D3D12_SRV_DIMENSION_TEXTURE2DARRAY
	default:
		return com.D3D12_SRV_DIMENSION_TEXTURE2D
	}
}

// shaderResourceView reserves and writes the SRV descriptor for this
// view, creating it on first call.
func (v *textureView) shaderResourceView() (com.D3D12_CPU_DESCRIPTOR_HANDLE, error) {
	if v.srv != nil {
		return v.dev.heaps().cpuHandle(*v.srv), nil
	}
	h, err := v.dev.heaps().alloc(categoryCBVSRVUAV)
	if err != nil {
		return com.D3D12_CPU_DESCRIPTOR_HANDLE{}, err
	}
	desc := &com.D3D12_SHADER_RESOURCE_VIEW_DESC{
		Format:                  v.tex.fmt,
		ViewDimension:           v.srvDimension(),
		Shader4ComponentMapping: com.D3D12_DEFAULT_SHADER_4_COMPONENT_MAPPING,
		Texture: com.D3D12_TEX_ARRAY_SRV{
			MostDetailedMip: uint32(v.level),
			MipLevels:       uint32(v.levels),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		},
	}
	dest := v.dev.heaps().cpuHandle(h)
	v.dev.dev.CreateShaderResourceView(v.tex.res, desc, dest)
	v.srv = &h
	return dest, nil
}

// unorderedAccessView reserves and writes the UAV descriptor for this
// view, creating it on first call.
func (v *textureView) unorderedAccessView() (com.D3D12_CPU_DESCRIPTOR_HANDLE, error) {
	if v.uav != nil {
		return v.dev.heaps().cpuHandle(*v.uav), nil
	}
	h, err := v.dev.heaps().alloc(categoryCBVSRVUAV)
	if err != nil {
		return com.D3D12_CPU_DESCRIPTOR_HANDLE{}, err
	}
	desc := &com.D3D12_UNORDERED_ACCESS_VIEW_DESC{
		Format:        v.tex.fmt,
		ViewDimension: com.D3D12_UAV_DIMENSION_TEXTURE2D,
		Texture: com.D3D12_TEX_ARRAY_UAV{
			MipSlice:        uint32(v.level),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		},
	}
	if v.tex.desc.Dim == rhi.Dim3D_ {
		desc.ViewDimension = com.D3D12_UAV_DIMENSION_TEXTURE3D
	}
	dest := v.dev.heaps().cpuHandle(h)
	v.dev.dev.CreateUnorderedAccessView(v.tex.res, nil, desc, dest)
	v.uav = &h
	return dest, nil
}

// renderTargetView reserves and writes the RTV descriptor for this
// view, used by pass.go's framebuffer/attachment binding.
func (v *textureView) renderTargetView() (com.D3D12_CPU_DESCRIPTOR_HANDLE, error) {
	if v.rtv != nil {
		return v.dev.heaps().cpuHandle(*v.rtv), nil
	}
	h, err := v.dev.heaps().alloc(categoryRTV)
	if err != nil {
		return com.D3D12_CPU_DESCRIPTOR_HANDLE{}, err
	}
	desc := &com.D3D12_RENDER_TARGET_VIEW_DESC{
		Format:        v.tex.fmt,
		ViewDimension: com.D3D12_RTV_DIMENSION_TEXTURE2DARRAY,
		Texture: com.D3D12_TEX_ARRAY_RTV{
			MipSlice:        uint32(v.level),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		},
	}
	dest := v.dev.heaps().cpuHandle(h)
	v.dev.dev.CreateRenderTargetView(v.tex.res, desc, dest)
	v.rtv = &h
	return dest, nil
}

// depthStencilView reserves and writes the DSV descriptor for this
// view, used by pass.go's depth/stencil attachment binding.
func (v *textureView) depthStencilView() (com.D3D12_CPU_DESCRIPTOR_HANDLE, error) {
	if v.dsv != nil {
		return v.dev.heaps().cpuHandle(*v.dsv), nil
	}
	h, err := v.dev.heaps().alloc(categoryDSV)
	if err != nil {
		return com.D3D12_CPU_DESCRIPTOR_HANDLE{}, err
	}
	desc := &com.D3D12_DEPTH_STENCIL_VIEW_DESC{
		Format:        v.tex.fmt,
		ViewDimension: com.D3D12_DSV_DIMENSION_TEXTURE2DARRAY,
		Texture: com.D3D12_TEX_ARRAY_DSV{
			MipSlice:        uint32(v.level),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		},
	}
	dest := v.dev.heaps().cpuHandle(h)
	v.dev.dev.CreateDepthStencilView(v.tex.res, desc, dest)
	v.dsv = &h
	return dest, nil
}

func (v *textureView) Destroy() {
	for _, h := range []**descHandle{&v.srv, &v.uav, &v.rtv, &v.dsv} {
		if *h != nil {
			v.dev.heaps().free(**h)
			*h = nil
		}
	}
}
