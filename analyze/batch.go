package analyze

import (
	"context"
	"sync/atomic"

	"github.com/mjarosz/newsprobe"
	"github.com/mjarosz/newsprobe/bloom"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for feed deduplication.
const (
	dedupExpectedURLs      = 10000
	dedupFalsePositiveRate = 0.01
)

// FeedResult holds the outcome of a batch feed analysis.
type FeedResult struct {
	Analyzed int
	Failed   int
	Skipped  int
	Reports  []*Report
}

// ProgressEvent reports progress during a batch analysis.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// itemResult holds the outcome of processing a single feed entry.
type itemResult struct {
	position int
	url      string
	report   *Report
	err      error
}

// AnalyzeFeed discovers article URLs from a feed and analyzes each one.
// Duplicate URLs within the feed are skipped. The progress callback, if
// provided, receives events as analysis proceeds.
func (s *Service) AnalyzeFeed(ctx context.Context, feedURL string, progress ProgressFunc) (*FeedResult, error) {
	if s.Feeds == nil {
		return nil, newsprobe.Errorf(newsprobe.EINTERNAL, "feed service not configured")
	}

	items, err := s.Feeds.DiscoverArticles(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	// Feeds often list the same story under several entries
	filter := bloom.NewFilter(dedupExpectedURLs, dedupFalsePositiveRate)
	var urls []string
	var skipped int
	for _, item := range items {
		if filter.Seen(item.URL) {
			skipped++
			continue
		}
		urls = append(urls, item.URL)
	}

	result := &FeedResult{Skipped: skipped}
	if len(urls) == 0 {
		return result, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan itemResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				report, err := s.AnalyzeURL(gctx, u)
				resultCh <- itemResult{position: i, url: u, report: report, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in feed order
	ordered := make([]itemResult, len(urls))
	for r := range resultCh {
		completed.Add(1)
		ordered[r.position] = r

		if progress == nil {
			continue
		}
		if r.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       r.url,
				Error:     r.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       r.url,
			})
		}
	}

	for _, r := range ordered {
		if r.err != nil {
			result.Failed++
			continue
		}
		result.Analyzed++
		result.Reports = append(result.Reports, r.report)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, nil
}
