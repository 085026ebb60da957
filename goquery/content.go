package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// contentSelectors is the ordered candidate list for locating the article
// body. The first candidate with non-empty text wins. The ordering trades
// recall for precision: a narrow, correctly-scoped region beats the noisier
// full-body fallback.
var contentSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	".article-content",
	".post-content",
	".entry-content",
	"#content",
	".content",
}

// RegionSourceBody marks a region produced by the full-body fallback.
const RegionSourceBody = "body"

// Region is the subtree (or text-only projection) judged to contain the
// article body. A Region with no selection carries only text, e.g. when a
// readability-style fallback produced it.
type Region struct {
	sel    *goquery.Selection
	text   string
	source string
}

// NewTextRegion creates a text-only Region, used when a fallback extractor
// produced plain text without a backing subtree.
func NewTextRegion(text, source string) Region {
	return Region{text: text, source: source}
}

// Source reports which selector (or fallback) produced the region.
func (r Region) Source() string { return r.source }

// IsEmpty reports whether the region holds no text.
func (r Region) IsEmpty() bool { return strings.TrimSpace(r.Text()) == "" }

// Text returns the region's text with single spaces between text nodes.
func (r Region) Text() string {
	if r.sel == nil {
		return r.text
	}
	var sb strings.Builder
	for _, n := range r.sel.Nodes {
		appendNodeText(n, &sb)
	}
	return sb.String()
}

// ParagraphCount counts paragraph-level units: <p> descendants for subtree
// regions, non-empty lines for text-only regions. Fallback extractors give
// no newline guarantee and may return a whole article on one line, so a
// sentence count backstops the line count; otherwise a long single-line
// text would look like a paywall stub to the short-content heuristic.
func (r Region) ParagraphCount() int {
	if r.sel != nil {
		return r.sel.Find("p").Length()
	}
	lines := 0
	for _, line := range strings.Split(r.text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	return max(lines, countSentences(r.text))
}

// countSentences counts sentence-terminating punctuation runs followed by
// whitespace or end of text.
func countSentences(text string) int {
	count := 0
	runes := []rune(text)
	for i, c := range runes {
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		// Collapse runs like "?!" or "..." into one terminator
		if i+1 < len(runes) {
			next := runes[i+1]
			if next == '.' || next == '!' || next == '?' {
				continue
			}
			if !unicode.IsSpace(next) {
				continue
			}
		}
		count++
	}
	return count
}

// HTML renders the region's subtree. Text-only regions return an empty
// string.
func (r Region) HTML() string {
	if r.sel == nil {
		return ""
	}
	var parts []string
	r.sel.Each(func(_ int, sel *goquery.Selection) {
		if h, err := goquery.OuterHtml(sel); err == nil {
			parts = append(parts, h)
		}
	})
	return strings.Join(parts, "\n")
}

// find returns matching descendants, or the selection's own nodes when they
// match the region semantics (used by the paywall detector).
func (r Region) find(selector string) *goquery.Selection {
	if r.sel == nil {
		return nil
	}
	return r.sel.Find(selector)
}

// LocateContent selects the most likely content region from the candidate
// list, falling back to the full document body. It never fails; callers
// check IsEmpty. Multiple <article> elements are kept together in one
// selection so multi-part articles concatenate rather than truncate.
func LocateContent(doc *goquery.Document) Region {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		region := Region{sel: sel, source: selector}
		if !region.IsEmpty() {
			return region
		}
	}
	return Region{sel: doc.Find("body"), source: RegionSourceBody}
}

// appendNodeText walks a node collecting text content, separating text
// nodes with single spaces so adjacent block elements don't run together.
func appendNodeText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendNodeText(c, sb)
	}
}
