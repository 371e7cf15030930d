package vk

import (
	vulkan "github.com/goki/vulkan"
	"github.com/vitreous-gpu/rhi/rhi"
)

// maxSetsPerPage is the fixed capacity of one VkDescriptorPool page,
// per spec.md §4.3.
const maxSetsPerPage = 1024

// keepFreePages is the number of idle pages the pager keeps around
// after a page's live-count drops to zero, beyond the mandatory
// current page, per spec.md §4.3/§8 scenario S6.
const keepFreePages = 1

// descriptorPage is one VkDescriptorPool page plus its live-set
// count, used by descriptorPager to implement the grow-on-demand
// allocator spec.md §4.3 describes (VkDescriptorSet cannot spill
// across pools, unlike a D3D12 descriptor heap range).
type descriptorPage struct {
	pool vulkan.DescriptorPool
	live int
}

// descriptorPager is the Vulkan-specific half of C3: no teacher file
// implements page rotation (gviegas-neo3's descHeap.New keeps one
// pool sized for n copies and destroys/recreates it on resize), so
// this follows spec.md's algorithm directly.
type descriptorPager struct {
	dev   vulkan.Device
	pages []*descriptorPage
	hint  int // index of the page last used for allocation
}

func newDescriptorPager(dev vulkan.Device) *descriptorPager {
	return &descriptorPager{dev: dev}
}

func poolSizes() []vulkan.DescriptorPoolSize {
	return []vulkan.DescriptorPoolSize{
		{Type: vulkan.DescriptorTypeUniformBuffer, DescriptorCount: maxSetsPerPage},
		{Type: vulkan.DescriptorTypeStorageBuffer, DescriptorCount: maxSetsPerPage},
		{Type: vulkan.DescriptorTypeSampledImage, DescriptorCount: maxSetsPerPage},
		{Type: vulkan.DescriptorTypeStorageImage, DescriptorCount: maxSetsPerPage},
		{Type: vulkan.DescriptorTypeSampler, DescriptorCount: maxSetsPerPage},
	}
}

func (p *descriptorPager) newPage() (*descriptorPage, error) {
	info := &vulkan.DescriptorPoolCreateInfo{
		SType:         vulkan.StructureTypeDescriptorPoolCreateInfo,
		Flags:         vulkan.DescriptorPoolCreateFlags(vulkan.DescriptorPoolCreateFreeDescriptorSetBit),
		MaxSets:       maxSetsPerPage,
		PoolSizeCount: uint32(len(poolSizes())),
		PPoolSizes:    poolSizes(),
	}
	var pool vulkan.DescriptorPool
	if ret := vulkan.CreateDescriptorPool(p.dev, info, nil, &pool); ret != vulkan.Success {
		return nil, checkResult("vkCreateDescriptorPool", ret)
	}
	page := &descriptorPage{pool: pool}
	p.pages = append(p.pages, page)
	return page, nil
}

// Alloc allocates one VkDescriptorSet from layout, trying the hint
// page first, then rotating through the remaining pages, then
// growing with a new page, per spec.md §4.3 steps 1-2.
func (p *descriptorPager) Alloc(layout vulkan.DescriptorSetLayout) (vulkan.DescriptorSet, int, error) {
	try := func(pageIdx int) (vulkan.DescriptorSet, bool) {
		page := p.pages[pageIdx]
		info := &vulkan.DescriptorSetAllocateInfo{
			SType:              vulkan.StructureTypeDescriptorSetAllocateInfo,
			DescriptorPool:     page.pool,
			DescriptorSetCount: 1,
			PSetLayouts:        []vulkan.DescriptorSetLayout{layout},
		}
		var set vulkan.DescriptorSet
		ret := vulkan.AllocateDescriptorSets(p.dev, info, &set)
		if ret == vulkan.Success {
			page.live++
			p.hint = pageIdx
			return set, true
		}
		return vulkan.NullDescriptorSet, false
	}

	if len(p.pages) > 0 {
		if set, ok := try(p.hint); ok {
			return set, p.hint, nil
		}
		for i := range p.pages {
			if i == p.hint {
				continue
			}
			if set, ok := try(i); ok {
				return set, i, nil
			}
		}
	}

	page, err := p.newPage()
	if err != nil {
		return vulkan.NullDescriptorSet, 0, err
	}
	idx := len(p.pages) - 1
	if set, ok := try(idx); ok {
		return set, idx, nil
	}
	return vulkan.NullDescriptorSet, 0, rhi.OutOfMemory("descriptor set allocation failed on a freshly created pool page")
}

// Free returns set to page pageIdx. When the page's live-count
// reaches zero and the idle-page count (pages with live == 0)
// exceeds keepFreePages+1 (the mandatory current page plus the
// kept-around pages), surplus idle pages are destroyed via
// swap-remove and the hint is reset, per spec.md §4.3 step 3 / §8
// scenario S6.
func (p *descriptorPager) Free(pageIdx int, set vulkan.DescriptorSet) {
	page := p.pages[pageIdx]
	vulkan.FreeDescriptorSets(p.dev, page.pool, 1, []vulkan.DescriptorSet{set})
	page.live--
	if page.live > 0 {
		return
	}
	p.trim()
}

// idleTrimCount returns how many of idle idle pages must be destroyed
// to bring the idle count down to keep, per spec.md §4.3 step 3 / §8
// scenario S6 (never negative).
func idleTrimCount(idle, keep int) int {
	if idle <= keep {
		return 0
	}
	return idle - keep
}

func (p *descriptorPager) trim() {
	idle := 0
	for _, pg := range p.pages {
		if pg.live == 0 {
			idle++
		}
	}
	for n := idleTrimCount(idle, keepFreePages+1); n > 0; n-- {
		removed := false
		for i := len(p.pages) - 1; i >= 0; i-- {
			if p.pages[i].live != 0 {
				continue
			}
			vulkan.DestroyDescriptorPool(p.dev, p.pages[i].pool, nil)
			last := len(p.pages) - 1
			p.pages[i] = p.pages[last]
			p.pages = p.pages[:last]
			idle--
			removed = true
			break
		}
		if !removed {
			break
		}
	}
	p.hint = 0
}

// PageCount reports the number of pages the pager holds, idle or
// not.
func (p *descriptorPager) PageCount() int { return len(p.pages) }

// IdlePageCount reports the number of pages with a zero live-count.
func (p *descriptorPager) IdlePageCount() int {
	n := 0
	for _, pg := range p.pages {
		if pg.live == 0 {
			n++
		}
	}
	return n
}
