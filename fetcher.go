package newsprobe

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content; the extraction pipeline is agnostic to which implementation
// produced the HTML.
type Fetcher interface {
	// Fetch retrieves the document at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher (e.g. a browser).
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
