// Package slog provides logging decorators for newsprobe domain services.
package slog

import (
	"log/slog"
	"time"

	"github.com/mjarosz/newsprobe"
)

// Ensure LoggingExtractor implements newsprobe.Extractor.
var _ newsprobe.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   newsprobe.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next newsprobe.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html, sourceURL string) (result *newsprobe.ExtractionResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", sourceURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"words", result.WordCount,
				"paywall", result.HasPaywall,
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
