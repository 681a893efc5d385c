package dedup

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter tracks apex domains seen across the whole run. It is approximate:
// per-file deduplication stays exact and set-based, the filter only feeds
// the cross-file distinct estimate in the summary.
type Filter struct {
	filter *bloom.BloomFilter
	mu     sync.Mutex
}

// NewFilter creates filter
func NewFilter(n uint, fp float64) *Filter {
	return &Filter{filter: bloom.NewWithEstimates(n, fp)}
}

// TestAndAdd tests and adds
func (f *Filter) TestAndAdd(data []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter.TestAndAdd(data)
}

// Test tests membership
func (f *Filter) Test(data []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter.Test(data)
}

// ApproxCount estimates how many distinct values were added
func (f *Filter) ApproxCount() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter.ApproximatedSize()
}
