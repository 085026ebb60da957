package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mjarosz/newsprobe"
)

// Ensure LoggingFeedService implements newsprobe.FeedService.
var _ newsprobe.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with debug logging.
type LoggingFeedService struct {
	next   newsprobe.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next newsprobe.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// DiscoverArticles delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) DiscoverArticles(ctx context.Context, feedURL string) (items []newsprobe.FeedItem, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed discovery",
			"url", feedURL,
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverArticles(ctx, feedURL)
}
