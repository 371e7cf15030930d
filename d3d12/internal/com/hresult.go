//go:build windows

package com

import "fmt"

// HRESULTError wraps a raw HRESULT return value as an error. It knows
// nothing about rhi's error taxonomy; the d3d12 package's checkResult
// (mirroring vk/vk.go's) converts it into an *rhi.Error at the call
// site.
type HRESULTError uintptr

func (e HRESULTError) HRESULT() uint32 { return uint32(e) }

func (e HRESULTError) Error() string {
	switch uint32(e) {
	case 0x80004005:
		return "E_FAIL"
	case 0x80070057:
		return "E_INVALIDARG"
	case 0x8007000E:
		return "E_OUTOFMEMORY"
	case 0x80004001:
		return "E_NOTIMPL"
	case 0x887A0005:
		return "DXGI_ERROR_DEVICE_REMOVED"
	case 0x887A0020:
		return "DXGI_ERROR_DRIVER_INTERNAL_ERROR"
	default:
		return fmt.Sprintf("HRESULT 0x%08X", uint32(e))
	}
}
