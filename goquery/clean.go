package goquery

import (
	"regexp"
	"strings"

	"github.com/mjarosz/newsprobe"
)

// urlRe matches embedded http(s) URL tokens left over from markup.
var urlRe = regexp.MustCompile(`https?://\S+`)

// punctRe matches residual non-linguistic characters. Sentence punctuation
// (. , ! ? -) survives.
var punctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?-]`)

// Clean normalizes the region's text: page chrome is dropped from subtree
// regions, whitespace runs collapse to single spaces, URL tokens and
// residual punctuation clusters are stripped, and the result is trimmed.
// The word count equals the number of whitespace-delimited tokens.
//
// When the cleaned content is shorter than minLength characters, Clean
// returns ETOOSHORT along with the cleaned content and count, so callers
// can choose between rejecting and downgrading to a warning.
func Clean(region Region, minLength int) (content string, wordCount int, err error) {
	if sel := region.sel; sel != nil {
		sel.Find(chromeTags).Remove()
	}

	text := urlRe.ReplaceAllString(region.Text(), " ")
	text = punctRe.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")

	wordCount = len(strings.Fields(text))

	if len(text) < minLength {
		return text, wordCount, newsprobe.Errorf(newsprobe.ETOOSHORT,
			"content length %d below minimum %d", len(text), minLength)
	}
	return text, wordCount, nil
}
