package vk

import (
	"testing"

	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// TestPixelFormatsTotal mirrors gviegas-neo3/driver/vk's conv_test.go
// style of exercising every neutral enum value against its native
// mapping, without requiring an opened device.
func TestPixelFormatsTotal(t *testing.T) {
	all := []rhi.PixelFmt{
		rhi.RGBA8un, rhi.RGBA8srgb, rhi.BGRA8un, rhi.BGRA8srgb, rhi.RG8un, rhi.R8un,
		rhi.RGBA16f, rhi.RG16f, rhi.R16f, rhi.RGBA32f, rhi.RG32f, rhi.R32f,
		rhi.D16un, rhi.D32f, rhi.S8ui, rhi.D24unS8ui, rhi.D32fS8ui,
	}
	for _, f := range all {
		if _, err := vkFormat(f); err != nil {
			t.Errorf("vkFormat(%d): %v", f, err)
		}
	}
}

func TestVkFormatUnknown(t *testing.T) {
	if _, err := vkFormat(rhi.PixelFmt(999)); err == nil {
		t.Error("vkFormat: expected error for unknown format")
	}
}

func TestVkIndexType(t *testing.T) {
	if vkIndexType(rhi.Index16) != vulkan.IndexTypeUint16 {
		t.Error("vkIndexType(Index16) mismatch")
	}
	if vkIndexType(rhi.Index32) != vulkan.IndexTypeUint32 {
		t.Error("vkIndexType(Index32) mismatch")
	}
}

func TestVkColorWriteMaskAll(t *testing.T) {
	got := vkColorWriteMask(rhi.ColorAll)
	want := vulkan.ColorComponentRBit | vulkan.ColorComponentGBit | vulkan.ColorComponentBBit | vulkan.ColorComponentABit
	if got != want {
		t.Errorf("vkColorWriteMask(ColorAll) = %v, want %v", got, want)
	}
}

func TestSyncStageFallback(t *testing.T) {
	if syncStage(rhi.SyncNone) != vulkan.PipelineStageTopOfPipeBit {
		t.Error("syncStage(SyncNone): expected TOP_OF_PIPE fallback")
	}
}

func TestSyncAccessCombinesCopyAndResolve(t *testing.T) {
	got := syncAccess(rhi.AccessCopyRead | rhi.AccessResolveRead)
	if got != vulkan.AccessTransferReadBit {
		t.Errorf("syncAccess(copy|resolve read) = %v, want AccessTransferReadBit", got)
	}
}
