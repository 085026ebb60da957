// Package trafilatura provides a readability-style main-text extractor
// backed by go-trafilatura, used as a fallback when selector-based content
// location finds nothing.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/mjarosz/newsprobe"
)

// Ensure Extractor implements newsprobe.MainTextExtractor at compile time.
var _ newsprobe.MainTextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main article text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMainText returns the main content as plain text. An empty result
// means trafilatura found no article body; callers treat it as a miss.
func (e *Extractor) ExtractMainText(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", newsprobe.Errorf(newsprobe.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}
