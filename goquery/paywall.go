package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjarosz/newsprobe"
)

// paywallSelectors are substrings matched against class and id attributes
// of any element. An ordered table so entries can be tested and extended
// individually.
var paywallSelectors = []string{
	"paywall",
	"subscription-required",
	"premium-content",
	"subscriber-only",
	"paid-content",
	"restricted-content",
}

// paywallPhrases are matched against the case-folded visible text of the
// whole document.
var paywallPhrases = []string{
	"subscribe to continue",
	"subscription required",
	"premium article",
	"subscribe now",
	"sign up to read",
	"premium content",
	"subscribers only",
	"register to continue",
}

// actionWords are matched against button and link text inside the content
// region.
var actionWords = []string{
	"subscribe",
	"sign in",
	"log in",
	"register",
}

// shortContentThreshold is the paragraph count at or below which a region
// is treated as a paywall teaser. Most paywalled pages show only a 2-3
// paragraph preview.
const shortContentThreshold = 3

// DetectPaywall classifies the document as paywalled or open. It never
// fails. Checks run in order and short-circuit on the first positive:
// explicit structural signals first (selector vocabulary, paywall phrases,
// action buttons), then the short-content heuristic as a last resort since
// it can false-positive on genuinely short articles.
func DetectPaywall(doc *goquery.Document, region Region) newsprobe.PaywallVerdict {
	if matchesPaywallSelector(doc) {
		return newsprobe.PaywallVerdict{Detected: true, Reason: newsprobe.ReasonSelector}
	}

	pageText := strings.ToLower(documentText(doc))
	for _, phrase := range paywallPhrases {
		if strings.Contains(pageText, phrase) {
			return newsprobe.PaywallVerdict{Detected: true, Reason: newsprobe.ReasonKeyword}
		}
	}

	if hasActionButton(doc, region) {
		return newsprobe.PaywallVerdict{Detected: true, Reason: newsprobe.ReasonActionButton}
	}

	if region.ParagraphCount() <= shortContentThreshold {
		return newsprobe.PaywallVerdict{Detected: true, Reason: newsprobe.ReasonShortContent}
	}

	return newsprobe.PaywallVerdict{}
}

// matchesPaywallSelector reports whether any element carries a class or id
// containing a paywall vocabulary entry.
func matchesPaywallSelector(doc *goquery.Document) bool {
	found := false
	doc.Find("[class],[id]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		attrs := strings.ToLower(sel.AttrOr("class", "") + " " + sel.AttrOr("id", ""))
		for _, marker := range paywallSelectors {
			if strings.Contains(attrs, marker) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// hasActionButton reports whether any button or link inside the content
// region carries subscription/login wording. Text-only regions have no
// elements, so the scan widens to the whole tree.
func hasActionButton(doc *goquery.Document, region Region) bool {
	buttons := region.find("button, a")
	if buttons == nil {
		buttons = doc.Find("button, a")
	}

	found := false
	buttons.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.ToLower(sel.Text())
		for _, word := range actionWords {
			if strings.Contains(text, word) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// documentText returns the visible text of the whole tree with text nodes
// space-separated.
func documentText(doc *goquery.Document) string {
	var sb strings.Builder
	for _, n := range doc.Selection.Nodes {
		appendNodeText(n, &sb)
	}
	return sb.String()
}
