// Package rhi defines a backend-agnostic render hardware interface.
//
// Client code describes devices, queues, command lists, pipelines,
// resources and descriptor bindings in neutral terms; a Backend
// implementation (see the d3d12 and vk packages) translates those
// descriptions into the underlying graphics API's object model.
package rhi

import (
	"log"
	"sync"
)

// Backend is the interface that provides methods for opening and
// closing an underlying implementation (a concrete graphics API).
type Backend interface {
	// Open initializes the backend and returns its Device.
	// If it succeeds, further calls with the same receiver have no
	// effect and must return the same Device. Open is not safe for
	// parallel execution.
	Open(opts DeviceOptions) (Device, error)

	// Name returns the name of the backend.
	// It must not cause the backend to be opened.
	Name() string

	// Close deinitializes the backend.
	// Closing a backend that is not open has no effect.
	Close()
}

// Tag identifies which concrete backend produced a handle.
type Tag int

// Backend tags.
const (
	TagNone Tag = iota
	TagD3D12
	TagVulkan
)

func (t Tag) String() string {
	switch t {
	case TagD3D12:
		return "d3d12"
	case TagVulkan:
		return "vulkan"
	default:
		return "none"
	}
}

// DeviceOptions configures Backend.Open.
type DeviceOptions struct {
	// Debug requests validation/debug layers where the backend
	// supports them.
	Debug bool
	// HostAllocator, if non-nil, is used for host-memory allocations
	// the backend performs on the client's behalf. Neither reference
	// backend currently calls into it (see SPEC_FULL.md §6); it is
	// threaded through Device construction so a backend that can use
	// it has somewhere to receive it from.
	HostAllocator HostAllocator
}

// HostAllocator is the optional pluggable host-memory allocator
// described in spec.md §6.
type HostAllocator interface {
	Allocate(size, align uintptr) uintptr
	Free(ptr uintptr)
	Reallocate(ptr uintptr, size, align uintptr) uintptr
}

// Backends returns the registered backends.
func Backends() []Backend {
	mu.Lock()
	defer mu.Unlock()
	b := make([]Backend, len(backends))
	copy(b, backends)
	return b
}

// Register registers a Backend implementation.
// Backend implementations are expected to call Register exactly once,
// from an init function. If a backend with the same name has already
// been registered, it is replaced by b.
func Register(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	for i := range backends {
		if backends[i].Name() == b.Name() {
			backends[i] = b
			log.Printf("[!] backend %q replaced", b.Name())
			return
		}
	}
	backends = append(backends, b)
	log.Printf("backend %q registered", b.Name())
}

var (
	mu       sync.Mutex
	backends []Backend = make([]Backend, 0, 2)
)
