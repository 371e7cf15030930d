package rhi

// QueueType identifies the kind of work a Queue accepts, per spec.md
// §3.
type QueueType int

// Queue types.
const (
	QueueGraphics QueueType = iota
	QueueCompute
	QueueCopy
)

// Semaphore is a legacy (binary) wait/signal primitive. Its Signaled
// flag avoids double-waits: a wait semaphore must have it set
// (toggled off on consume); a signal semaphore must have it unset
// (toggled on after submit) — spec.md §4.7.
type Semaphore interface {
	Destroyer
	Signaled() bool
}

// TimelineSemaphore is a monotonically increasing 64-bit sync
// primitive.
type TimelineSemaphore interface {
	Destroyer
	// CompletedValue returns the semaphore's current value.
	CompletedValue() (uint64, error)
	// Wait blocks until the semaphore reaches at least value.
	Wait(value uint64) error
	// Signal sets the semaphore to value from the host side.
	Signal(value uint64) error
}

// Fence carries a Submitted flag used to avoid waiting on a fence
// that was never part of a submission (spec.md §3).
type Fence interface {
	Destroyer
	Submitted() bool
	// Wait blocks until the submission this fence was handed to has
	// completed, then clears Submitted; it returns nil at once if the
	// fence was never submitted. Queue.Wait and TimelineSemaphore.Wait
	// also block.
	Wait() error
}

// SubmitInfo packs the arguments to Queue.Submit, per spec.md §4.7.
type SubmitInfo struct {
	Waits       []Semaphore
	CmdBuffers  []CommandBuffer
	Signals     []Semaphore
	SignalFence Fence
}

// Queue is bound to a QueueType and a queue-family/slot index. The
// D3D12 Queue owns a monotonically advancing internal fence that
// tracks its submissions; the Vulkan Queue keeps no internal fence. A
// Queue is created by Device on demand and never destroyed
// independently by the client.
type Queue interface {
	Type() QueueType

	// Submit packs waits/cmdBuffers/signals into the native submit
	// structure. On D3D12 it also advances the queue's internal fence
	// by one, always signalling it; on Vulkan it signals only the
	// semaphores and fence given in info. Commands recorded into one CommandBuffer
	// execute in recorded order; submissions to a queue execute in
	// submitted order (spec.md §5).
	Submit(info SubmitInfo) error

	// Wait blocks until every submission made so far has completed.
	Wait() error
}

// Swapchain is the external collaborator described in spec.md §6: it
// uses a Queue to present and feeds back one Texture per back-buffer
// image. No OS window integration is implemented by this module (see
// SPEC_FULL.md §1); this interface only defines the boundary a
// windowing layer would implement against.
type Swapchain interface {
	Destroyer
	// Images returns the current set of back-buffer textures.
	Images() []Texture
	// AcquireNext blocks (if signal is non-nil, signals it instead of
	// blocking) and returns the index into Images of the next
	// available back buffer.
	AcquireNext(signal Semaphore) (int, error)
	// Present presents the image at index, waiting on wait first if
	// non-nil.
	Present(q Queue, index int, wait Semaphore) error
}
