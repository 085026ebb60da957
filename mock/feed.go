package mock

import (
	"context"

	"github.com/mjarosz/newsprobe"
)

var _ newsprobe.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of newsprobe.FeedService.
type FeedService struct {
	DiscoverArticlesFn func(ctx context.Context, feedURL string) ([]newsprobe.FeedItem, error)
}

func (s *FeedService) DiscoverArticles(ctx context.Context, feedURL string) ([]newsprobe.FeedItem, error) {
	return s.DiscoverArticlesFn(ctx, feedURL)
}
