// Package analyze provides article analysis orchestration.
// It coordinates fetching, extraction, paywall bypass, bias analysis,
// and storage of news articles.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/mjarosz/newsprobe"
)

// Service orchestrates the analysis of news articles.
type Service struct {
	Fetcher   newsprobe.Fetcher
	Extractor newsprobe.Extractor
	Analyzer  newsprobe.Analyzer

	// BypassFetcher, when set, is used for a single second fetch attempt
	// after a paywall is detected on the first extraction. It is typically
	// a browser fetcher with a crawler user agent and no cookies.
	BypassFetcher newsprobe.Fetcher

	// Optional collaborators. Nil disables the corresponding step.
	Converter    newsprobe.Converter
	Feeds        newsprobe.FeedService
	Articles     newsprobe.ArticleService
	Analyses     newsprobe.AnalysisService
	Cache        newsprobe.Cache
	RateLimiter  newsprobe.DomainLimiter
	TokenCounter newsprobe.TokenCounter
	Logger       *slog.Logger

	Concurrency int
	RetryDelays []time.Duration
}

// Report holds the outcome of analyzing one article URL.
type Report struct {
	Article    *newsprobe.Article
	Analysis   *newsprobe.Analysis
	Cached     bool
	BypassUsed bool
	Tokens     int
	Warnings   []string
}

// AnalyzeURL fetches, extracts, analyzes and stores a single article.
func (s *Service) AnalyzeURL(ctx context.Context, articleURL string) (*Report, error) {
	if articleURL == "" {
		return nil, newsprobe.Errorf(newsprobe.EINVALID, "article URL required")
	}
	parsed, err := url.Parse(articleURL)
	if err != nil || parsed.Host == "" {
		return nil, newsprobe.Errorf(newsprobe.EINVALID, "invalid article URL %q", articleURL)
	}

	cacheKey := "report:" + articleURL
	if s.Cache != nil {
		if v, ok := s.Cache.Get(cacheKey); ok {
			if cached, ok := v.(*Report); ok {
				hit := *cached
				hit.Cached = true
				return &hit, nil
			}
		}
	}

	result, bypassUsed, err := s.fetchAndExtract(ctx, articleURL, parsed.Host)
	if err != nil {
		return nil, err
	}

	report := &Report{
		BypassUsed: bypassUsed,
		Warnings:   result.Warnings,
	}

	article := &newsprobe.Article{
		SourceURL:    articleURL,
		CanonicalURL: result.Metadata.CanonicalURL,
		Title:        result.Metadata.Title,
		Author:       result.Metadata.Author,
		PublishedAt:  result.Metadata.Date,
		Content:      result.Content,
		WordCount:    result.WordCount,
		HasPaywall:   result.HasPaywall,
	}
	if s.Converter != nil && result.ContentHTML != "" {
		if md, err := s.Converter.Convert(result.ContentHTML); err == nil {
			article.ContentMarkdown = md
		}
	}
	report.Article = article

	if s.TokenCounter != nil {
		if tokens, err := s.TokenCounter.CountTokens(ctx, result.Content); err == nil {
			report.Tokens = tokens
		}
	}

	var analysis *newsprobe.Analysis
	if s.Analyzer != nil && result.Content != "" {
		analysis, err = s.Analyzer.Analyze(ctx, result.Content)
		if err != nil {
			return nil, err
		}
		mergeHeuristics(analysis, result.Content, result.WordCount)
		report.Analysis = analysis
	}

	if s.Articles != nil {
		if err := s.Articles.CreateArticle(ctx, article); err != nil {
			return nil, err
		}
		if s.Analyses != nil && analysis != nil {
			analysis.ArticleID = article.ID
			if err := s.Analyses.CreateAnalysis(ctx, analysis); err != nil {
				return nil, err
			}
		}
	}

	if s.Cache != nil {
		s.Cache.Set(cacheKey, report)
	}

	return report, nil
}

// fetchAndExtract runs the fetch-extract pipeline, retrying once through
// the bypass fetcher when the first pass hits a paywall. The first result
// is kept if the bypass attempt fails or is still paywalled.
func (s *Service) fetchAndExtract(ctx context.Context, articleURL, host string) (*newsprobe.ExtractionResult, bool, error) {
	result, err := s.fetchAndExtractWith(ctx, s.Fetcher, articleURL, host)
	if err != nil {
		return nil, false, err
	}

	if !result.HasPaywall || s.BypassFetcher == nil {
		return result, false, nil
	}

	s.logf("paywall detected, retrying with bypass profile", "url", articleURL, "reason", result.PaywallReason)

	second, err := s.fetchAndExtractWith(ctx, s.BypassFetcher, articleURL, host)
	if err != nil || second.HasPaywall {
		return result, false, nil
	}

	return second, true, nil
}

func (s *Service) fetchAndExtractWith(ctx context.Context, fetcher newsprobe.Fetcher, articleURL, host string) (*newsprobe.ExtractionResult, error) {
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, host); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, articleURL, fetcher.Fetch, s.retryLog, delays)
	if err != nil {
		return nil, err
	}

	return s.Extractor.Extract(html, articleURL)
}

func (s *Service) logf(msg string, args ...any) {
	if s.Logger != nil {
		s.Logger.Info(msg, args...)
	}
}

func (s *Service) retryLog(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Debug("fetch retry", "detail", fmt.Sprintf(format, args...))
	}
}
