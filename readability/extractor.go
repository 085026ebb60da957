// Package readability provides a main-text extractor backed by
// go-readability, an alternative to the trafilatura implementation.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/mjarosz/newsprobe"
)

// Ensure Extractor implements newsprobe.MainTextExtractor at compile time.
var _ newsprobe.MainTextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main article text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMainText returns the main content as plain text.
func (e *Extractor) ExtractMainText(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", newsprobe.Errorf(newsprobe.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.TextContent), nil
}
