package rhi_test

import (
	"testing"

	"github.com/vitreous-gpu/rhi/rhi"
)

type fakeBackend struct{ name string }

func (f *fakeBackend) Open(rhi.DeviceOptions) (rhi.Device, error) { return nil, nil }
func (f *fakeBackend) Name() string                               { return f.name }
func (f *fakeBackend) Close()                                     {}

func TestBackendsUnique(t *testing.T) {
	rhi.Register(&fakeBackend{name: "test-a"})
	rhi.Register(&fakeBackend{name: "test-b"})
	backends := rhi.Backends()
	for i := range backends {
		for j := range backends {
			if i == j {
				continue
			}
			if backends[i].Name() == backends[j].Name() {
				t.Errorf("Backends: duplicate name %q", backends[i].Name())
			}
		}
	}
}

func TestRegisterReplaces(t *testing.T) {
	rhi.Register(&fakeBackend{name: "test-replace"})
	before := len(rhi.Backends())
	rhi.Register(&fakeBackend{name: "test-replace"})
	after := len(rhi.Backends())
	if before != after {
		t.Errorf("Register: expected replacement in place, got %d backends before and %d after", before, after)
	}
}

func TestErrorKind(t *testing.T) {
	err := rhi.Invalid("bad value %d", 7)
	if !rhi.IsKind(err, rhi.KindInvalid) {
		t.Error("IsKind: expected KindInvalid")
	}
	if rhi.IsKind(err, rhi.KindOutOfMemory) {
		t.Error("IsKind: unexpected KindOutOfMemory match")
	}
}

func TestSubresourceIndex(t *testing.T) {
	got := rhi.SubresourceIndex(2, 3, 1, 4, 6)
	want := 2 + 3*4 + 1*4*6
	if got != want {
		t.Errorf("SubresourceIndex = %d, want %d", got, want)
	}
}
