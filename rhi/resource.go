package rhi

// Destroyer is the interface wrapping the Destroy method. Types that
// implement it may hold external memory the GC does not manage, so
// Destroy must be called explicitly.
type Destroyer interface {
	Destroy()
}

// MemoryKind classifies a Buffer's memory, per spec.md §3.
type MemoryKind int

// Memory kinds.
const (
	MemDevice MemoryKind = iota
	MemUpload
	MemReadback
)

// Usage is a mask indicating valid uses for a Buffer or Texture.
type Usage int

// Usage flags.
const (
	UMapRead Usage = 1 << iota
	UMapWrite
	UCopySource
	UCopyDest
	UIndex
	UVertex
	UCBuffer
	UResource
	UUnorderedAccess
	UIndirect
	URenderTarget
	UDepthStencilRead
	UDepthStencilWrite
	UPresent
)

// Hint is a creation-time hint, per spec.md §6.
type Hint int

// Hints.
const (
	// HDedicated hints that the allocation should get its own
	// memory block rather than being sub-allocated.
	HDedicated Hint = 1 << iota
)

// BufferDesc describes a Buffer to create.
type BufferDesc struct {
	Size  int64
	Kind  MemoryKind
	Usage Usage
	Hints Hint
	Name  string
}

// Buffer is the interface that defines a GPU buffer. Size is fixed;
// a larger buffer requires creating a new one and copying.
type Buffer interface {
	Destroyer

	// Desc returns the descriptor this buffer was created from,
	// Size possibly rounded up per backend alignment rules (e.g. a
	// CBuffer-usage buffer's size is rounded to 256 bytes on D3D12).
	Desc() BufferDesc

	// Map returns a slice of length Desc().Size referring to the
	// underlying data. It is only valid when Desc().Kind != MemDevice
	// and Desc().Usage has UMapRead or UMapWrite set; otherwise it
	// returns an Invalid error. The slice is valid until Unmap.
	Map() ([]byte, error)

	// Unmap invalidates the slice returned by Map. It is the
	// identity operation (a no-op) if the buffer is not mapped.
	Unmap()

	// NewView creates a new view over [off, off+size) of the buffer.
	// size <= 0 selects "to the end of the buffer".
	NewView(off, size int64) (BufferView, error)
}

// TextureDesc describes a Texture to create.
type TextureDesc struct {
	Dim                Dimension
	Width              int
	Height             int
	DepthOrArrayLayers int
	MipLevels          int
	Samples            int
	Format             PixelFmt
	Usage              Usage
	Name               string
}

// Texture is the interface that defines a GPU image. Direct CPU
// access is not provided; copying data requires a staging Buffer.
type Texture interface {
	Destroyer

	Desc() TextureDesc

	// NewView creates a new view of this texture. layer/layers and
	// level/levels select the subresource range; pass layers or
	// levels <= 0 to select "all" (the backend's all-layers/all-mips
	// sentinel).
	NewView(typ ViewType, layer, layers, level, levels int) (TextureView, error)
}

// SubresourceIndex computes mip + layer*mipCount + plane*mipCount*arraySize,
// per spec.md §8 invariant 7.
func SubresourceIndex(mip, layer, plane, mipCount, arraySize int) int {
	return mip + layer*mipCount + plane*mipCount*arraySize
}

// BufferView is a typed view over a Buffer range (SRV/UAV/CBV
// depending on the descriptor type it is later bound through).
type BufferView interface {
	Destroyer
	Buffer() Buffer
	Offset() int64
	Size() int64
}

// TextureView is a typed view of a Texture resource.
type TextureView interface {
	Destroyer
	Texture() Texture
	Type() ViewType
}

// Sampling describes image sampler state, per spec.md §6.
type Sampling struct {
	Min      Filter
	Mag      Filter
	Mipmap   Filter
	AddrU    AddrMode
	AddrV    AddrMode
	AddrW    AddrMode
	MaxAniso int
	// Cmp, if non-nil, enables comparison sampling using *Cmp as the
	// comparison function.
	Cmp    *CmpFunc
	MinLOD float32
	MaxLOD float32
}

// Sampler is the interface that defines an image sampler.
type Sampler interface {
	Destroyer
}
