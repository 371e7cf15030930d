package vk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIdleTrimCount covers trim()'s pure accounting in isolation,
// since descriptorPager.Alloc/Free otherwise require a live
// VkDescriptorPool.
func TestIdleTrimCount(t *testing.T) {
	assert.Equal(t, 0, idleTrimCount(0, keepFreePages+1))
	assert.Equal(t, 0, idleTrimCount(keepFreePages+1, keepFreePages+1))
	assert.Equal(t, 1, idleTrimCount(keepFreePages+2, keepFreePages+1))
	assert.Equal(t, 3, idleTrimCount(5, 2))
}

// TestPageBudgetForS6 is the page-count half of spec.md §8 scenario
// S6: allocating 2000 sets from a 1024-capacity pool page requires at
// least two pages.
func TestPageBudgetForS6(t *testing.T) {
	const sets = 2000
	pages := (sets + maxSetsPerPage - 1) / maxSetsPerPage
	assert.GreaterOrEqual(t, pages, 2)
}

// TestTrimLeavesMandatoryPagePlusKept exercises the idle-page
// bookkeeping trim() performs, without invoking the real
// vkDestroyDescriptorPool calls Free would otherwise require: once
// every page goes idle, the survivor count must equal
// keepFreePages+1, the mandatory current page plus the pages the
// pager deliberately keeps warm.
func TestTrimLeavesMandatoryPagePlusKept(t *testing.T) {
	totalPages := 4
	idle := totalPages
	removed := idleTrimCount(idle, keepFreePages+1)
	assert.Equal(t, totalPages-(keepFreePages+1), removed)
	assert.Equal(t, keepFreePages+1, idle-removed)
}
