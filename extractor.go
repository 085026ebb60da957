package newsprobe

// Metadata holds article metadata pulled from meta tags, structured markup,
// and fallback heuristics. Absent fields are empty strings, never errors.
type Metadata struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	Date         string `json:"date"` // raw, unparsed publisher form
	CanonicalURL string `json:"canonical_url"`
}

// PaywallReason categorizes which heuristic triggered a paywall verdict.
// The reason is explanatory, not authoritative.
type PaywallReason string

// Paywall reason categories, in detection order.
const (
	ReasonNone         PaywallReason = ""
	ReasonSelector     PaywallReason = "selector-match"
	ReasonKeyword      PaywallReason = "keyword-match"
	ReasonActionButton PaywallReason = "action-button"
	ReasonShortContent PaywallReason = "short-content"
)

// PaywallVerdict classifies a document as paywalled or open.
type PaywallVerdict struct {
	Detected bool          `json:"detected"`
	Reason   PaywallReason `json:"reason"`
}

// ExtractionResult is the sole artifact the extraction pipeline returns.
//
// Invariants: WordCount equals the number of whitespace-delimited tokens in
// Content; Content is whitespace-normalized with no leading or trailing
// space.
type ExtractionResult struct {
	Content    string   `json:"content"`
	Metadata   Metadata `json:"metadata"`
	WordCount  int      `json:"word_count"`
	HasPaywall bool     `json:"has_paywall"`

	// PaywallReason explains a positive HasPaywall for diagnostics.
	PaywallReason PaywallReason `json:"paywall_reason,omitempty"`

	// ContentHTML is the located content region as HTML, for markdown
	// conversion and export. Empty when the region is a text-only
	// projection (readability fallback).
	ContentHTML string `json:"content_html,omitempty"`

	// Warnings collects non-fatal quality issues (e.g. content below the
	// minimum length when the extractor runs in non-strict mode).
	Warnings []string `json:"warnings,omitempty"`
}

// Extractor turns a raw HTML document into an ExtractionResult.
type Extractor interface {
	// Extract processes raw HTML fetched from sourceURL.
	// Returns EINVALID if the input is empty or not parseable as markup,
	// and ETOOSHORT if the cleaned content is below the minimum length
	// and the implementation enforces a strict policy. Both are
	// non-retryable.
	Extract(html string, sourceURL string) (*ExtractionResult, error)
}

// MainTextExtractor extracts the main article text from raw HTML using a
// readability-style algorithm. It serves as a fallback when selector-based
// content location finds nothing.
type MainTextExtractor interface {
	// ExtractMainText returns the main content as plain text.
	// An empty result is not an error; callers treat it as a miss.
	ExtractMainText(html string) (string, error)
}
