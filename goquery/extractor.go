package goquery

import (
	"strings"

	"github.com/mjarosz/newsprobe"
)

// DefaultMinContentLength is the minimum cleaned-content length in
// characters below which extraction reports a quality problem.
const DefaultMinContentLength = 100

// Ensure Extractor implements newsprobe.Extractor at compile time.
var _ newsprobe.Extractor = (*Extractor)(nil)

// Extractor runs the full extraction pipeline: normalize, extract metadata,
// locate content, detect paywall, clean. Each call builds a fresh document
// tree, so an Extractor is safe for concurrent use.
type Extractor struct {
	minContentLength int
	strict           bool
	fallback         newsprobe.MainTextExtractor
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinContentLength sets the minimum cleaned-content length in
// characters. Defaults to DefaultMinContentLength.
func WithMinContentLength(n int) Option {
	return func(e *Extractor) {
		e.minContentLength = n
	}
}

// WithStrict makes too-short content a hard ETOOSHORT failure instead of a
// warning on the result.
func WithStrict() Option {
	return func(e *Extractor) {
		e.strict = true
	}
}

// WithFallback sets a readability-style extractor tried when no content
// selector matches, before falling back to full body text.
func WithFallback(f newsprobe.MainTextExtractor) Option {
	return func(e *Extractor) {
		e.fallback = f
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		minContentLength: DefaultMinContentLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML fetched from sourceURL and returns the
// extraction result. Returns EINVALID for empty or non-markup input. In
// strict mode, content below the minimum length returns ETOOSHORT;
// otherwise the result carries a warning.
//
// Calling Extract twice on identical input yields identical results: the
// pipeline holds no state across calls.
func (e *Extractor) Extract(html string, sourceURL string) (*newsprobe.ExtractionResult, error) {
	doc, err := Normalize(html)
	if err != nil {
		return nil, err
	}

	metadata := ExtractMetadata(doc)

	region := LocateContent(doc)
	if region.Source() == RegionSourceBody && e.fallback != nil {
		if text, ferr := e.fallback.ExtractMainText(html); ferr == nil && strings.TrimSpace(text) != "" {
			region = NewTextRegion(text, "readability")
		}
	}

	verdict := DetectPaywall(doc, region)

	// Clean strips chrome from the region in place, so render HTML after.
	content, wordCount, cleanErr := Clean(region, e.minContentLength)
	contentHTML := region.HTML()

	result := &newsprobe.ExtractionResult{
		Content:       content,
		Metadata:      metadata,
		WordCount:     wordCount,
		HasPaywall:    verdict.Detected,
		PaywallReason: verdict.Reason,
		ContentHTML:   contentHTML,
	}

	if cleanErr != nil {
		if e.strict {
			return nil, cleanErr
		}
		result.Warnings = append(result.Warnings, newsprobe.ErrorMessage(cleanErr))
	}

	return result, nil
}
