package newsprobe

import (
	"context"
	"time"
)

// FeedItem is a single entry discovered in an RSS or Atom feed.
type FeedItem struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// FeedService discovers article URLs from syndication feeds.
type FeedService interface {
	// DiscoverArticles fetches the feed at feedURL and returns its entries
	// in document order. Entries without a link are skipped.
	DiscoverArticles(ctx context.Context, feedURL string) ([]FeedItem, error)
}
