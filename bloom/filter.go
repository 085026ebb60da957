// Package bloom provides article URL deduplication using Bloom filters.
// Batch feed runs can revisit the same story under several feed entries,
// so workers skip URLs the filter has already seen.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for URL deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen adds the URL to the filter and reports whether it was already
// present. A true result may be a false positive; false negatives are
// not possible.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}
