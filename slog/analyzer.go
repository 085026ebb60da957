package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mjarosz/newsprobe"
)

// Ensure LoggingAnalyzer implements newsprobe.Analyzer.
var _ newsprobe.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with debug logging.
type LoggingAnalyzer struct {
	next   newsprobe.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next newsprobe.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, content string) (analysis *newsprobe.Analysis, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		}
		if analysis != nil {
			attrs = append(attrs,
				"bias", analysis.Bias.BiasScore,
				"claims", len(analysis.Claims),
			)
		}
		a.logger.Info("analyze", attrs...)
	}(time.Now())
	return a.next.Analyze(ctx, content)
}
