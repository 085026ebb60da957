package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mjarosz/newsprobe"
	"github.com/mjarosz/newsprobe/analyze"
	main "github.com/mjarosz/newsprobe/cmd/newsprobe"
	"github.com/mjarosz/newsprobe/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedCmd_Run_PrintsProgressAndSummary(t *testing.T) {
	t.Parallel()

	content := "The council voted to approve the budget on Tuesday evening."

	svc := &analyze.Service{
		Feeds: &mock.FeedService{
			DiscoverArticlesFn: func(ctx context.Context, feedURL string) ([]newsprobe.FeedItem, error) {
				return []newsprobe.FeedItem{
					{Title: "Budget", URL: "https://example.com/news/budget"},
					{Title: "Budget again", URL: "https://example.com/news/budget"},
				}, nil
			},
		},
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><article>story</article></body></html>", nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html, sourceURL string) (*newsprobe.ExtractionResult, error) {
				return &newsprobe.ExtractionResult{Content: content, WordCount: 10}, nil
			},
		},
		RetryDelays: []time.Duration{},
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Service: svc,
	}

	cmd := &main.FeedCmd{URL: "https://example.com/feed.xml"}
	err := cmd.Run(deps)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "Found 1 articles")
	assert.Contains(t, out, "[1/1]")
	assert.Contains(t, out, "Analyzed 1 articles")
	assert.Contains(t, out, analyze.FormatBytes(len(content)))
	assert.Contains(t, out, analyze.FormatTokens(0))
	assert.Contains(t, out, "1 duplicates skipped")
	assert.Empty(t, stderr.String())
}
