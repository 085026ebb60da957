package bloom_test

import (
	"fmt"
	"testing"

	"github.com/mjarosz/newsprobe/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	url := "https://example.com/news/budget"

	// First visit is new, every later visit is a duplicate
	assert.False(t, f.Seen(url))
	assert.True(t, f.Seen(url))
	assert.True(t, f.Seen(url))

	// A different URL is still new
	assert.False(t, f.Seen("https://example.com/news/election"))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	// Seen inserts while it tests, so size for seeds and probes together
	f := bloom.NewFilter(numItems+testProbes, fpRate)

	for i := range numItems {
		f.Seen(fmt.Sprintf("https://example.com/added/%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		url := fmt.Sprintf("https://example.com/notadded/%d", i)
		if f.Seen(url) {
			falsePositives++
		}
	}

	// False positive rate should be approximately 1%
	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
