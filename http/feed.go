package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/mjarosz/newsprobe"
)

// Ensure FeedService implements newsprobe.FeedService.
var _ newsprobe.FeedService = (*FeedService)(nil)

// FeedService discovers article URLs from RSS 2.0 and Atom feeds via HTTP.
type FeedService struct {
	client *http.Client
}

// NewFeedService creates a new FeedService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedService(client *http.Client) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{client: client}
}

// DiscoverArticles fetches the feed at feedURL and returns its entries.
// Both RSS 2.0 (<rss><channel><item>) and Atom (<feed><entry>) are supported.
func (s *FeedService) DiscoverArticles(ctx context.Context, feedURL string) ([]newsprobe.FeedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := s.fetchURL(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, newsprobe.Errorf(newsprobe.EINVALID, "parsing feed XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, newsprobe.Errorf(newsprobe.EINVALID, "empty feed XML")
	}

	switch root.Tag {
	case "rss":
		return parseRSS(root), nil
	case "feed":
		return parseAtom(root), nil
	default:
		return nil, newsprobe.Errorf(newsprobe.EINVALID, "unsupported feed root element <%s>", root.Tag)
	}
}

// parseRSS extracts items from an <rss><channel> document.
func parseRSS(root *etree.Element) []newsprobe.FeedItem {
	items := []newsprobe.FeedItem{}

	channel := root.SelectElement("channel")
	if channel == nil {
		return items
	}

	for _, el := range channel.SelectElements("item") {
		link := elementText(el, "link")
		if link == "" {
			continue
		}
		items = append(items, newsprobe.FeedItem{
			Title:       elementText(el, "title"),
			URL:         link,
			PublishedAt: parseFeedTime(elementText(el, "pubDate"), time.RFC1123Z, time.RFC1123),
		})
	}

	return items
}

// parseAtom extracts entries from an Atom <feed> document.
func parseAtom(root *etree.Element) []newsprobe.FeedItem {
	items := []newsprobe.FeedItem{}

	for _, el := range root.SelectElements("entry") {
		link := atomEntryLink(el)
		if link == "" {
			continue
		}
		published := elementText(el, "published")
		if published == "" {
			published = elementText(el, "updated")
		}
		items = append(items, newsprobe.FeedItem{
			Title:       elementText(el, "title"),
			URL:         link,
			PublishedAt: parseFeedTime(published, time.RFC3339),
		})
	}

	return items
}

// atomEntryLink returns the entry's alternate link, falling back to the
// first link element with an href.
func atomEntryLink(entry *etree.Element) string {
	var first string
	for _, link := range entry.SelectElements("link") {
		href := strings.TrimSpace(link.SelectAttrValue("href", ""))
		if href == "" {
			continue
		}
		rel := link.SelectAttrValue("rel", "alternate")
		if rel == "alternate" {
			return href
		}
		if first == "" {
			first = href
		}
	}
	return first
}

// elementText returns the trimmed text of the named child element.
func elementText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// parseFeedTime tries each layout in turn. Feeds are sloppy about date
// formats, so an unparseable date yields nil rather than an error.
func parseFeedTime(value string, layouts ...string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// fetchURL fetches a URL and returns the response body.
func (s *FeedService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}
