package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjarosz/newsprobe"
)

// bylineRe matches class or id attributes that typically mark an author
// byline element.
var bylineRe = regexp.MustCompile(`(?i)byline|author`)

// dateMetaNames are meta tag names/properties that carry the publish date,
// checked in document order.
var dateMetaNames = map[string]bool{
	"date":                   true,
	"article:published_time": true,
	"publication_date":       true,
	"pubdate":                true,
}

// ExtractMetadata pulls title, author, publish date, and canonical URL from
// the normalized tree. It never fails; absent fields are empty strings.
// Each field is resolved by an independent, order-sensitive scan where the
// first qualifying node wins.
func ExtractMetadata(doc *goquery.Document) newsprobe.Metadata {
	return newsprobe.Metadata{
		Title:        extractTitle(doc),
		Author:       extractAuthor(doc),
		Date:         extractDate(doc),
		CanonicalURL: extractCanonicalURL(doc),
	}
}

// extractTitle resolves og:title → twitter:title → first h1 → <title>.
func extractTitle(doc *goquery.Document) string {
	if v := metaContent(doc, `meta[property="og:title"]`); v != "" {
		return v
	}
	if v := metaContent(doc, `meta[name="twitter:title"]`); v != "" {
		return v
	}
	if v := strings.TrimSpace(doc.Find("h1").First().Text()); v != "" {
		return v
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractAuthor resolves meta[name=author] → meta[property=article:author]
// → first element with a byline/author class or id.
func extractAuthor(doc *goquery.Document) string {
	if v := metaContent(doc, `meta[name="author"]`); v != "" {
		return v
	}
	if v := metaContent(doc, `meta[property="article:author"]`); v != "" {
		return v
	}

	var author string
	doc.Find("[class],[id]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if bylineRe.MatchString(sel.AttrOr("class", "")) || bylineRe.MatchString(sel.AttrOr("id", "")) {
			author = strings.TrimSpace(sel.Text())
			return false
		}
		return true
	})
	return author
}

// extractDate resolves date-bearing meta tags → time[datetime].
// The raw, unparsed attribute value is returned.
func extractDate(doc *goquery.Document) string {
	var date string
	var found bool
	doc.Find("meta").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name := sel.AttrOr("name", sel.AttrOr("property", ""))
		if dateMetaNames[name] {
			date = sel.AttrOr("content", "")
			found = true
			return false
		}
		return true
	})
	if found {
		return date
	}
	return doc.Find("time[datetime]").First().AttrOr("datetime", "")
}

// extractCanonicalURL resolves link[rel=canonical].
func extractCanonicalURL(doc *goquery.Document) string {
	return doc.Find(`link[rel="canonical"]`).First().AttrOr("href", "")
}

// metaContent returns the content attribute of the first element matching
// the selector, or empty string.
func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}
