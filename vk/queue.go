package vk

import (
	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// Queue implements rhi.Queue over one VkQueue, following
// runsys-core/vgpu/device.go's Device.Queue field. vkQueueSubmit
// requires external synchronization, and Queue takes no lock: callers
// submitting to one Queue from several goroutines serialize those
// calls themselves. It keeps no internal fence: Submit signals only
// what info names, and Wait uses vkQueueWaitIdle.
type Queue struct {
	dev    *Device
	typ    rhi.QueueType
	family uint32
	q      vulkan.Queue
	fence  vulkan.Fence
}

func (q *Queue) Type() rhi.QueueType { return q.typ }

func (q *Queue) Submit(info rhi.SubmitInfo) error {
	var cmdBufs []vulkan.CommandBuffer
	for _, c := range info.CmdBuffers {
		impl, ok := c.(*commandBuffer)
		if !ok {
			return rhi.Invalid("Submit: command buffer belongs to a different backend")
		}
		cmdBufs = append(cmdBufs, impl.vk)
	}
	var waitSems, signalSems []vulkan.Semaphore
	var waitStages []vulkan.PipelineStageFlags
	for _, w := range info.Waits {
		s, ok := w.(*semaphore)
		if !ok {
			return rhi.Invalid("Submit: wait semaphore belongs to a different backend")
		}
		if !s.Signaled() {
			return rhi.Invalid("Submit: wait semaphore is not signaled")
		}
		waitSems = append(waitSems, s.vk)
		waitStages = append(waitStages, vulkan.PipelineStageFlags(vulkan.PipelineStageAllCommandsBit))
		s.signaled = false
	}
	for _, sg := range info.Signals {
		s, ok := sg.(*semaphore)
		if !ok {
			return rhi.Invalid("Submit: signal semaphore belongs to a different backend")
		}
		if s.Signaled() {
			return rhi.Invalid("Submit: signal semaphore is already signaled")
		}
		signalSems = append(signalSems, s.vk)
	}

	submitInfo := vulkan.SubmitInfo{
		SType:                vulkan.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   uint32(len(waitSems)),
		PWaitSemaphores:      waitSems,
		PWaitDstStageMask:    waitStages,
		CommandBufferCount:   uint32(len(cmdBufs)),
		PCommandBuffers:      cmdBufs,
		SignalSemaphoreCount: uint32(len(signalSems)),
		PSignalSemaphores:    signalSems,
	}

	var nativeFence vulkan.Fence
	var f *fence
	if info.SignalFence != nil {
		var ok bool
		f, ok = info.SignalFence.(*fence)
		if !ok {
			return rhi.Invalid("Submit: fence belongs to a different backend")
		}
		nativeFence = f.vk
	}

	if ret := vulkan.QueueSubmit(q.q, 1, []vulkan.SubmitInfo{submitInfo}, nativeFence); ret != vulkan.Success {
		return checkResult("vkQueueSubmit", ret)
	}
	for _, sg := range info.Signals {
		sg.(*semaphore).signaled = true
	}
	if f != nil {
		f.submitted = true
	}
	return nil
}

func (q *Queue) Wait() error {
	if ret := vulkan.QueueWaitIdle(q.q); ret != vulkan.Success {
		return checkResult("vkQueueWaitIdle", ret)
	}
	return nil
}

// semaphore implements rhi.Semaphore over a binary VkSemaphore.
type semaphore struct {
	dev      *Device
	vk       vulkan.Semaphore
	signaled bool
}

func (d *Device) NewSemaphore() (rhi.Semaphore, error) {
	info := &vulkan.SemaphoreCreateInfo{SType: vulkan.StructureTypeSemaphoreCreateInfo}
	var s vulkan.Semaphore
	if ret := vulkan.CreateSemaphore(d.dev, info, nil, &s); ret != vulkan.Success {
		return nil, checkResult("vkCreateSemaphore", ret)
	}
	return &semaphore{dev: d, vk: s}, nil
}

func (s *semaphore) Signaled() bool { return s.signaled }

func (s *semaphore) Destroy() {
	if s.vk == vulkan.NullSemaphore {
		return
	}
	vulkan.DestroySemaphore(s.dev.dev, s.vk, nil)
	s.vk = vulkan.NullSemaphore
}

// timelineSemaphore implements rhi.TimelineSemaphore over a
// VK_SEMAPHORE_TYPE_TIMELINE semaphore.
type timelineSemaphore struct {
	dev *Device
	vk  vulkan.Semaphore
}

func (d *Device) NewTimelineSemaphore(initial uint64) (rhi.TimelineSemaphore, error) {
	typeInfo := &vulkan.SemaphoreTypeCreateInfo{
		SType:         vulkan.StructureTypeSemaphoreTypeCreateInfo,
		SemaphoreType: vulkan.SemaphoreTypeTimeline,
		InitialValue:  initial,
	}
	info := &vulkan.SemaphoreCreateInfo{
		SType: vulkan.StructureTypeSemaphoreCreateInfo,
		PNext: typeInfo,
	}
	var s vulkan.Semaphore
	if ret := vulkan.CreateSemaphore(d.dev, info, nil, &s); ret != vulkan.Success {
		return nil, checkResult("vkCreateSemaphore", ret)
	}
	return &timelineSemaphore{dev: d, vk: s}, nil
}

func (t *timelineSemaphore) CompletedValue() (uint64, error) {
	var value uint64
	if ret := vulkan.GetSemaphoreCounterValue(t.dev.dev, t.vk, &value); ret != vulkan.Success {
		return 0, checkResult("vkGetSemaphoreCounterValue", ret)
	}
	return value, nil
}

func (t *timelineSemaphore) Wait(value uint64) error {
	info := &vulkan.SemaphoreWaitInfo{
		SType:          vulkan.StructureTypeSemaphoreWaitInfo,
		SemaphoreCount: 1,
		PSemaphores:    []vulkan.Semaphore{t.vk},
		PValues:        []uint64{value},
	}
	if ret := vulkan.WaitSemaphores(t.dev.dev, info, ^uint64(0)); ret != vulkan.Success {
		return checkResult("vkWaitSemaphores", ret)
	}
	return nil
}

func (t *timelineSemaphore) Signal(value uint64) error {
	info := &vulkan.SemaphoreSignalInfo{
		SType:     vulkan.StructureTypeSemaphoreSignalInfo,
		Semaphore: t.vk,
		Value:     value,
	}
	if ret := vulkan.SignalSemaphore(t.dev.dev, info); ret != vulkan.Success {
		return checkResult("vkSignalSemaphore", ret)
	}
	return nil
}

func (t *timelineSemaphore) Destroy() {
	if t.vk == vulkan.NullSemaphore {
		return
	}
	vulkan.DestroySemaphore(t.dev.dev, t.vk, nil)
	t.vk = vulkan.NullSemaphore
}

// fence implements rhi.Fence over a VkFence, tracking whether it has
// ever been part of a submission so Wait can avoid blocking on a
// fence nothing will ever signal (spec.md §3).
type fence struct {
	dev       *Device
	vk        vulkan.Fence
	submitted bool
}

func (d *Device) NewFence() (rhi.Fence, error) {
	info := &vulkan.FenceCreateInfo{SType: vulkan.StructureTypeFenceCreateInfo}
	var f vulkan.Fence
	if ret := vulkan.CreateFence(d.dev, info, nil, &f); ret != vulkan.Success {
		return nil, checkResult("vkCreateFence", ret)
	}
	return &fence{dev: d, vk: f}, nil
}

func (f *fence) Submitted() bool { return f.submitted }

func (f *fence) Wait() error {
	if !f.submitted {
		return nil
	}
	if ret := vulkan.WaitForFences(f.dev.dev, 1, []vulkan.Fence{f.vk}, vulkan.True, ^uint64(0)); ret != vulkan.Success {
		return checkResult("vkWaitForFences", ret)
	}
	if ret := vulkan.ResetFences(f.dev.dev, 1, []vulkan.Fence{f.vk}); ret != vulkan.Success {
		return checkResult("vkResetFences", ret)
	}
	f.submitted = false
	return nil
}

func (f *fence) Destroy() {
	if f.vk == vulkan.NullFence {
		return
	}
	vulkan.DestroyFence(f.dev.dev, f.vk, nil)
	f.vk = vulkan.NullFence
}
