// Package vk implements the rhi backend interfaces using the Vulkan
// API, through the Go-typed bindings in github.com/goki/vulkan (the
// same package gviegas-neo3's driver/vk and runsys-core/vgpu build
// on, the latter without cgo in the calling code).
package vk

import (
	"fmt"

	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

const backendName = "vulkan"

func init() {
	rhi.Register(&Backend{})
}

// Backend implements rhi.Backend for Vulkan.
type Backend struct {
	dev *Device
}

func (b *Backend) Name() string { return backendName }

// Open creates a VkInstance, selects a physical device, creates a
// VkDevice and its queues, and populates Limits. Mirrors the
// Instance/GPU/Device bring-up sequence of runsys-core/vgpu's
// GPU.Config and Device.Init, adapted to the rhi.Backend contract
// (Open is idempotent and returns the same Device thereafter).
func (b *Backend) Open(opts rhi.DeviceOptions) (rhi.Device, error) {
	if b.dev != nil {
		return b.dev, nil
	}
	if vulkan.Init() != nil {
		return nil, rhi.ErrNotInstalled
	}

	appInfo := &vulkan.ApplicationInfo{
		SType:      vulkan.StructureTypeApplicationInfo,
		ApiVersion: vulkan.MakeVersion(1, 2, 0),
	}
	var layers []string
	if opts.Debug {
		layers = append(layers, "VK_LAYER_KHRONOS_validation\x00")
	}
	instInfo := &vulkan.InstanceCreateInfo{
		SType:               vulkan.StructureTypeInstanceCreateInfo,
		PApplicationInfo:    appInfo,
		EnabledLayerCount:   uint32(len(layers)),
		PpEnabledLayerNames: layers,
	}
	var inst vulkan.Instance
	if ret := vulkan.CreateInstance(instInfo, nil, &inst); ret != vulkan.Success {
		return nil, checkResult("vkCreateInstance", ret)
	}
	vulkan.InitInstance(inst)

	var n uint32
	if ret := vulkan.EnumeratePhysicalDevices(inst, &n, nil); ret != vulkan.Success || n == 0 {
		vulkan.DestroyInstance(inst, nil)
		return nil, rhi.ErrNoDevice
	}
	phys := make([]vulkan.PhysicalDevice, n)
	if ret := vulkan.EnumeratePhysicalDevices(inst, &n, phys); ret != vulkan.Success {
		vulkan.DestroyInstance(inst, nil)
		return nil, checkResult("vkEnumeratePhysicalDevices", ret)
	}
	pdev := phys[0]

	var queueCount uint32
	vulkan.GetPhysicalDeviceQueueFamilyProperties(pdev, &queueCount, nil)
	queueProps := make([]vulkan.QueueFamilyProperties, queueCount)
	vulkan.GetPhysicalDeviceQueueFamilyProperties(pdev, &queueCount, queueProps)

	fams := familyIndices{graphics: -1, compute: -1, copy: -1}
	for i := uint32(0); i < queueCount; i++ {
		queueProps[i].Deref()
		flags := vulkan.QueueFlagBits(queueProps[i].QueueFlags)
		if flags&vulkan.QueueGraphicsBit != 0 && fams.graphics < 0 {
			fams.graphics = int(i)
		}
		if flags&vulkan.QueueComputeBit != 0 && fams.compute < 0 {
			fams.compute = int(i)
		}
		if flags&vulkan.QueueTransferBit != 0 && fams.copy < 0 {
			fams.copy = int(i)
		}
	}
	if fams.graphics < 0 {
		vulkan.DestroyInstance(inst, nil)
		return nil, rhi.ErrNoDevice
	}
	if fams.compute < 0 {
		fams.compute = fams.graphics
	}
	if fams.copy < 0 {
		fams.copy = fams.graphics
	}

	seen := map[int]bool{}
	var queueInfos []vulkan.DeviceQueueCreateInfo
	for _, f := range []int{fams.graphics, fams.compute, fams.copy} {
		if seen[f] {
			continue
		}
		seen[f] = true
		queueInfos = append(queueInfos, vulkan.DeviceQueueCreateInfo{
			SType:            vulkan.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: uint32(f),
			QueueCount:       1,
			PQueuePriorities: []float32{1.0},
		})
	}

	feats := vulkan.PhysicalDeviceFeatures{
		SamplerAnisotropy: vulkan.True,
	}
	devInfo := &vulkan.DeviceCreateInfo{
		SType:                vulkan.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: uint32(len(queueInfos)),
		PQueueCreateInfos:    queueInfos,
		PEnabledFeatures:     []vulkan.PhysicalDeviceFeatures{feats},
	}
	var vdev vulkan.Device
	if ret := vulkan.CreateDevice(pdev, devInfo, nil, &vdev); ret != vulkan.Success {
		vulkan.DestroyInstance(inst, nil)
		return nil, checkResult("vkCreateDevice", ret)
	}

	var props vulkan.PhysicalDeviceProperties
	vulkan.GetPhysicalDeviceProperties(pdev, &props)
	props.Deref()
	props.Limits.Deref()

	var memProps vulkan.PhysicalDeviceMemoryProperties
	vulkan.GetPhysicalDeviceMemoryProperties(pdev, &memProps)
	memProps.Deref()

	d := &Device{
		backend: b,
		inst:    inst,
		pdev:    pdev,
		dev:     vdev,
		fams:    fams,
		memProp: memProps,
		limits:  limitsFromVk(&props),
		pools:   make(map[uint32]vulkan.CommandPool),
	}
	d.queues = map[rhi.QueueType]*Queue{}
	b.dev = d
	return d, nil
}

func (b *Backend) Close() {
	if b.dev == nil {
		return
	}
	d := b.dev
	for _, p := range d.pools {
		vulkan.DestroyCommandPool(d.dev, p, nil)
	}
	vulkan.DestroyDevice(d.dev, nil)
	vulkan.DestroyInstance(d.inst, nil)
	b.dev = nil
}

type familyIndices struct {
	graphics, compute, copy int
}

// Device implements rhi.Device atop one VkDevice.
type Device struct {
	backend *Backend
	inst    vulkan.Instance
	pdev    vulkan.PhysicalDevice
	dev     vulkan.Device
	fams    familyIndices
	memProp vulkan.PhysicalDeviceMemoryProperties
	limits  rhi.Limits

	queues map[rhi.QueueType]*Queue
	pools  map[uint32]vulkan.CommandPool

	descPager  *descriptorPager
	allocator  *memoryAllocator
}

// mem returns the Device's lazily-created memory allocator façade.
func (d *Device) mem() *memoryAllocator {
	if d.allocator == nil {
		d.allocator = newMemoryAllocator(d)
	}
	return d.allocator
}

// pager returns the Device's lazily-created descriptor-pool pager.
func (d *Device) pager() *descriptorPager {
	if d.descPager == nil {
		d.descPager = newDescriptorPager(d.dev)
	}
	return d.descPager
}

func (d *Device) Destroy() {}

func (d *Device) Backend() rhi.Backend { return d.backend }
func (d *Device) Tag() rhi.Tag         { return rhi.TagVulkan }
func (d *Device) Limits() rhi.Limits   { return d.limits }

func (d *Device) familyFor(t rhi.QueueType) uint32 {
	switch t {
	case rhi.QueueCompute:
		return uint32(d.fams.compute)
	case rhi.QueueCopy:
		return uint32(d.fams.copy)
	default:
		return uint32(d.fams.graphics)
	}
}

func (d *Device) Queue(t rhi.QueueType) (rhi.Queue, error) {
	if q, ok := d.queues[t]; ok {
		return q, nil
	}
	fam := d.familyFor(t)
	var vq vulkan.Queue
	vulkan.GetDeviceQueue(d.dev, fam, 0, &vq)
	q := &Queue{dev: d, typ: t, family: fam, q: vq}
	d.queues[t] = q
	return q, nil
}

func (d *Device) pool(family uint32) (vulkan.CommandPool, error) {
	if p, ok := d.pools[family]; ok {
		return p, nil
	}
	var pool vulkan.CommandPool
	info := &vulkan.CommandPoolCreateInfo{
		SType:            vulkan.StructureTypeCommandPoolCreateInfo,
		Flags:            vulkan.CommandPoolCreateFlags(vulkan.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: family,
	}
	if ret := vulkan.CreateCommandPool(d.dev, info, nil, &pool); ret != vulkan.Success {
		return vulkan.NullCommandPool, checkResult("vkCreateCommandPool", ret)
	}
	d.pools[family] = pool
	return pool, nil
}

func limitsFromVk(p *vulkan.PhysicalDeviceProperties) rhi.Limits {
	l := p.Limits
	return rhi.Limits{
		MaxImage1D:        int(l.MaxImageDimension1D),
		MaxImage2D:        int(l.MaxImageDimension2D),
		MaxImageCube:      int(l.MaxImageDimensionCube),
		MaxImage3D:        int(l.MaxImageDimension3D),
		MaxLayers:         int(l.MaxImageArrayLayers),
		MaxDescHeaps:      4,
		MaxDBuffer:        int(l.MaxDescriptorSetUniformBuffers),
		MaxDImage:         int(l.MaxDescriptorSetSampledImages),
		MaxDConstant:      int(l.MaxPushConstantsSize),
		MaxDTexture:       int(l.MaxDescriptorSetSampledImages),
		MaxDSampler:       int(l.MaxDescriptorSetSamplers),
		MaxDBufferRange:   int64(l.MaxUniformBufferRange),
		MaxDConstantRange: int64(l.MaxPushConstantsSize),
		MaxColorTargets:   int(l.MaxColorAttachments),
		MaxFBSize:         [2]int{int(l.MaxFramebufferWidth), int(l.MaxFramebufferHeight)},
		MaxFBLayers:       int(l.MaxFramebufferLayers),
		MaxPointSize:      l.PointSizeRange[1],
		MaxViewports:      int(l.MaxViewports),
		MaxVertexIn:       int(l.MaxVertexInputAttributes),
		MaxFragmentIn:     int(l.MaxFragmentInputComponents),
		MaxDispatch:       [3]int{int(l.MaxComputeWorkGroupCount[0]), int(l.MaxComputeWorkGroupCount[1]), int(l.MaxComputeWorkGroupCount[2])},
	}
}

// checkResult maps a VkResult to an error: out-of-host-memory,
// out-of-device-memory and device-lost map to rhi's sentinel errors,
// any other failure to a KindBackendError *rhi.Error tagged with the
// native call that produced it, following the gviegas-neo3
// driver/vk/driver.go checkResult convention.
func checkResult(fn string, ret vulkan.Result) error {
	if ret == vulkan.Success {
		return nil
	}
	switch ret {
	case vulkan.ErrorOutOfHostMemory:
		return rhi.ErrNoHostMemory
	case vulkan.ErrorOutOfDeviceMemory:
		return rhi.ErrNoDeviceMemory
	case vulkan.ErrorDeviceLost:
		return rhi.ErrFatal
	default:
		return rhi.WrapBackend(fn, fmt.Errorf("VkResult(%d)", ret))
	}
}
