//go:build windows

package d3d12

import (
	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/rhi"
)

// sampler implements rhi.Sampler over a reserved CPU descriptor-heap
// slot in the sampler category, following vk.sampler's shape but
// needing a heap reservation up front, the same way a texture view's
// SRV/RTV/UAV/DSV descriptor does (resource.go).
type sampler struct {
	dev *Device
	h   descHandle
	cpu com.D3D12_CPU_DESCRIPTOR_HANDLE
}

func (d *Device) NewSampler(s rhi.Sampling) (rhi.Sampler, error) {
	h, err := d.heaps().alloc(categorySampler)
	if err != nil {
		return nil, err
	}
	cmp := s.Cmp != nil
	var cf com.D3D12_COMPARISON_FUNC
	if cmp {
		cf = compareFunc(*s.Cmp)
	}
	maxAniso := s.MaxAniso
	if maxAniso <= 0 {
		maxAniso = 1
	}
	dest := d.heaps().cpuHandle(h)
	d.dev.CreateSampler(&com.D3D12_SAMPLER_DESC{
		Filter:         filter(s.Min, s.Mag, s.Mipmap, cmp, s.MaxAniso > 0),
		AddressU:       addrMode(s.AddrU),
		AddressV:       addrMode(s.AddrV),
		AddressW:       addrMode(s.AddrW),
		MaxAnisotropy:  uint32(maxAniso),
		ComparisonFunc: cf,
		MinLOD:         s.MinLOD,
		MaxLOD:         s.MaxLOD,
	}, dest)
	return &sampler{dev: d, h: h, cpu: dest}, nil
}

func (s *sampler) Destroy() {
	if s.dev == nil {
		return
	}
	s.dev.heaps().free(s.h)
	s.dev = nil
}
