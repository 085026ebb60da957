package mock

import "github.com/mjarosz/newsprobe"

var _ newsprobe.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsprobe.Extractor.
type Extractor struct {
	ExtractFn func(html, sourceURL string) (*newsprobe.ExtractionResult, error)
}

func (e *Extractor) Extract(html, sourceURL string) (*newsprobe.ExtractionResult, error) {
	return e.ExtractFn(html, sourceURL)
}

var _ newsprobe.MainTextExtractor = (*MainTextExtractor)(nil)

// MainTextExtractor is a mock implementation of newsprobe.MainTextExtractor.
type MainTextExtractor struct {
	ExtractMainTextFn func(html string) (string, error)
}

func (e *MainTextExtractor) ExtractMainText(html string) (string, error) {
	return e.ExtractMainTextFn(html)
}
