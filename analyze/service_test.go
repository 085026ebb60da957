package analyze_test

import (
	"context"
	"testing"
	"time"

	"github.com/mjarosz/newsprobe"
	"github.com/mjarosz/newsprobe/analyze"
	"github.com/mjarosz/newsprobe/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noDelays disables retry backoff in tests.
var noDelays = []time.Duration{}

func TestService_AnalyzeURL(t *testing.T) {
	t.Parallel()

	t.Run("runs full pipeline and stores results", func(t *testing.T) {
		t.Parallel()

		var storedArticle *newsprobe.Article
		var storedAnalysis *newsprobe.Analysis

		svc := &analyze.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html><body><article><p>text</p></article></body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html, sourceURL string) (*newsprobe.ExtractionResult, error) {
					return &newsprobe.ExtractionResult{
						Content:   "The council voted to approve the budget on Tuesday evening.",
						WordCount: 10,
						Metadata: newsprobe.Metadata{
							Title:  "Council Passes Budget",
							Author: "Jane Smith",
						},
					}, nil
				},
			},
			Analyzer: &mock.Analyzer{
				AnalyzeFn: func(ctx context.Context, content string) (*newsprobe.Analysis, error) {
					return &newsprobe.Analysis{Summary: "budget approved"}, nil
				},
			},
			Articles: &mock.ArticleService{
				CreateArticleFn: func(ctx context.Context, article *newsprobe.Article) error {
					article.ID = "art-1"
					storedArticle = article
					return nil
				},
			},
			Analyses: &mock.AnalysisService{
				CreateAnalysisFn: func(ctx context.Context, analysis *newsprobe.Analysis) error {
					storedAnalysis = analysis
					return nil
				},
			},
			RetryDelays: noDelays,
		}

		report, err := svc.AnalyzeURL(context.Background(), "https://example.com/news/budget")

		require.NoError(t, err)
		require.NotNil(t, report.Article)
		assert.Equal(t, "Council Passes Budget", report.Article.Title)
		assert.Equal(t, 10, report.Article.WordCount)
		assert.False(t, report.Cached)
		assert.False(t, report.BypassUsed)

		require.NotNil(t, storedArticle)
		require.NotNil(t, storedAnalysis)
		assert.Equal(t, "art-1", storedAnalysis.ArticleID)
	})

	t.Run("retries fetch failures before giving up", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		svc := &analyze.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					attempts++
					if attempts < 2 {
						return "", newsprobe.Errorf(newsprobe.EINTERNAL, "connection reset")
					}
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html, sourceURL string) (*newsprobe.ExtractionResult, error) {
					return &newsprobe.ExtractionResult{Content: "ok", WordCount: 1}, nil
				},
			},
			RetryDelays: []time.Duration{time.Millisecond},
		}

		_, err := svc.AnalyzeURL(context.Background(), "https://example.com/news")

		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("uses bypass fetcher when paywall detected", func(t *testing.T) {
		t.Parallel()

		svc := &analyze.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "paywalled html", nil
				},
			},
			BypassFetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "open html", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html, sourceURL string) (*newsprobe.ExtractionResult, error) {
					if html == "paywalled html" {
						return &newsprobe.ExtractionResult{
							Content:       "Subscribe to continue reading.",
							WordCount:     4,
							HasPaywall:    true,
							PaywallReason: newsprobe.ReasonKeyword,
						}, nil
					}
					return &newsprobe.ExtractionResult{
						Content:   "The full article text with everything in it.",
						WordCount: 8,
					}, nil
				},
			},
			RetryDelays: noDelays,
		}

		report, err := svc.AnalyzeURL(context.Background(), "https://example.com/news/gated")

		require.NoError(t, err)
		assert.True(t, report.BypassUsed)
		assert.False(t, report.Article.HasPaywall)
		assert.Equal(t, 8, report.Article.WordCount)
	})

	t.Run("keeps first result when bypass is still paywalled", func(t *testing.T) {
		t.Parallel()

		svc := &analyze.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "html", nil
				},
			},
			BypassFetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "html", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html, sourceURL string) (*newsprobe.ExtractionResult, error) {
					return &newsprobe.ExtractionResult{
						Content:    "Subscribe now.",
						WordCount:  2,
						HasPaywall: true,
					}, nil
				},
			},
			RetryDelays: noDelays,
		}

		report, err := svc.AnalyzeURL(context.Background(), "https://example.com/news/gated")

		require.NoError(t, err)
		assert.False(t, report.BypassUsed)
		assert.True(t, report.Article.HasPaywall)
	})

	t.Run("returns cached report without refetching", func(t *testing.T) {
		t.Parallel()

		cached := &analyze.Report{
			Article: &newsprobe.Article{SourceURL: "https://example.com/news", Title: "Cached"},
		}
		fetchCalls := 0

		svc := &analyze.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					fetchCalls++
					return "", nil
				},
			},
			Cache: &mock.Cache{
				GetFn: func(key string) (any, bool) {
					return cached, true
				},
			},
			RetryDelays: noDelays,
		}

		report, err := svc.AnalyzeURL(context.Background(), "https://example.com/news")

		require.NoError(t, err)
		assert.True(t, report.Cached)
		assert.Equal(t, "Cached", report.Article.Title)
		assert.Zero(t, fetchCalls)
	})

	t.Run("merges loaded language heuristics into model analysis", func(t *testing.T) {
		t.Parallel()

		content := "The mayor slammed the outrageous plan during a chaotic meeting of the council."

		svc := &analyze.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) { return "html", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html, sourceURL string) (*newsprobe.ExtractionResult, error) {
					return &newsprobe.ExtractionResult{Content: content, WordCount: 13}, nil
				},
			},
			Analyzer: &mock.Analyzer{
				AnalyzeFn: func(ctx context.Context, c string) (*newsprobe.Analysis, error) {
					return &newsprobe.Analysis{
						Bias: newsprobe.BiasAnalysis{BiasScore: 0.2, LoadedLanguage: []string{"slammed"}},
					}, nil
				},
			},
			RetryDelays: noDelays,
		}

		report, err := svc.AnalyzeURL(context.Background(), "https://example.com/news")

		require.NoError(t, err)
		require.NotNil(t, report.Analysis)
		// Model score is averaged with the word-table score
		assert.Greater(t, report.Analysis.Bias.BiasScore, 0.2)
		assert.Contains(t, report.Analysis.Bias.LoadedLanguage, "slammed")
		assert.Contains(t, report.Analysis.Bias.LoadedLanguage, "outrageous")
	})

	t.Run("waits on the domain limiter before fetching", func(t *testing.T) {
		t.Parallel()

		var waitedDomain string
		svc := &analyze.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) { return "html", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html, sourceURL string) (*newsprobe.ExtractionResult, error) {
					return &newsprobe.ExtractionResult{Content: "ok", WordCount: 1}, nil
				},
			},
			RateLimiter: &mock.DomainLimiter{
				WaitFn: func(ctx context.Context, domain string) error {
					waitedDomain = domain
					return nil
				},
			},
			RetryDelays: noDelays,
		}

		_, err := svc.AnalyzeURL(context.Background(), "https://news.example.com/story")

		require.NoError(t, err)
		assert.Equal(t, "news.example.com", waitedDomain)
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		t.Parallel()

		svc := &analyze.Service{}

		_, err := svc.AnalyzeURL(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, newsprobe.EINVALID, newsprobe.ErrorCode(err))
	})

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		svc := &analyze.Service{}

		_, err := svc.AnalyzeURL(context.Background(), "not-a-url")

		require.Error(t, err)
		assert.Equal(t, newsprobe.EINVALID, newsprobe.ErrorCode(err))
	})
}
