// Package goquery implements the article extraction pipeline using CSS
// selector queries over a parsed document tree: normalization, metadata
// extraction, content location, paywall detection, and content cleaning.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjarosz/newsprobe"
)

// nonContentTags are structurally removed during normalization.
// Downstream stages never re-filter these.
const nonContentTags = "script, style, iframe, noscript"

// chromeTags hold page chrome rather than article text. They are kept in
// the normalized tree so paywall markers placed in headers stay visible,
// and removed from the content region by Clean.
const chromeTags = "nav, header, footer, aside"

// Normalize parses raw HTML into a traversable document tree and removes
// non-content nodes (scripts, styles, iframes). Malformed or unclosed tags
// are recovered best-effort; only an empty or non-markup payload returns
// EINVALID, which callers must treat as non-retryable.
func Normalize(html string) (*goquery.Document, error) {
	if strings.TrimSpace(html) == "" {
		return nil, newsprobe.Errorf(newsprobe.EINVALID, "empty HTML input")
	}
	if !strings.Contains(html, "<") {
		return nil, newsprobe.Errorf(newsprobe.EINVALID, "input is not HTML")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsprobe.Errorf(newsprobe.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(nonContentTags).Remove()

	return doc, nil
}
