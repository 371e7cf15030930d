//go:build windows

package d3d12

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitreous-gpu/rhi/d3d12/internal/com"
	"github.com/vitreous-gpu/rhi/rhi"
)

// TestRootSignatureFlagsSamplerOnly is spec.md §8 scenario S2: a root
// signature with exactly one sampler binding visible to the pixel
// stage must deny every other stage, including the five the neutral
// Stage mask never even represents (hull, domain, geometry,
// amplification, mesh), while still allowing pixel and the
// input-assembler input layout.
func TestRootSignatureFlagsSamplerOnly(t *testing.T) {
	got := rootSignatureFlags(rhi.SFragment)

	assert.NotZero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_VERTEX_SHADER_ROOT_ACCESS, "VS must be denied")
	assert.NotZero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_HULL_SHADER_ROOT_ACCESS, "HS must be denied")
	assert.NotZero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_DOMAIN_SHADER_ROOT_ACCESS, "DS must be denied")
	assert.NotZero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_GEOMETRY_SHADER_ROOT_ACCESS, "GS must be denied")
	assert.NotZero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_AMPLIFICATION_SHADER_ROOT_ACCESS, "AS must be denied")
	assert.NotZero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_MESH_SHADER_ROOT_ACCESS, "MS must be denied")

	assert.Zero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_PIXEL_SHADER_ROOT_ACCESS, "PS must be allowed")
	assert.NotZero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT, "input assembler must be allowed")
}

// TestRootSignatureFlagsVertexAndFragment covers the symmetric case:
// both graphics stages present denies neither, but the five stages
// absent from the neutral model are still always denied.
func TestRootSignatureFlagsVertexAndFragment(t *testing.T) {
	got := rootSignatureFlags(rhi.SVertex | rhi.SFragment)

	assert.Zero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_VERTEX_SHADER_ROOT_ACCESS)
	assert.Zero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_PIXEL_SHADER_ROOT_ACCESS)
	assert.NotZero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT)

	always := com.D3D12_ROOT_SIGNATURE_FLAG_DENY_HULL_SHADER_ROOT_ACCESS |
		com.D3D12_ROOT_SIGNATURE_FLAG_DENY_DOMAIN_SHADER_ROOT_ACCESS |
		com.D3D12_ROOT_SIGNATURE_FLAG_DENY_GEOMETRY_SHADER_ROOT_ACCESS |
		com.D3D12_ROOT_SIGNATURE_FLAG_DENY_AMPLIFICATION_SHADER_ROOT_ACCESS |
		com.D3D12_ROOT_SIGNATURE_FLAG_DENY_MESH_SHADER_ROOT_ACCESS
	assert.Equal(t, always, got&always)
}

// TestRootSignatureFlagsComputeOnly covers a root signature with no
// graphics stage at all: both VS and PS are denied and the
// input-assembler flag is never set.
func TestRootSignatureFlagsComputeOnly(t *testing.T) {
	got := rootSignatureFlags(rhi.SCompute)

	assert.NotZero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_VERTEX_SHADER_ROOT_ACCESS)
	assert.NotZero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_DENY_PIXEL_SHADER_ROOT_ACCESS)
	assert.Zero(t, got&com.D3D12_ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT)
}
