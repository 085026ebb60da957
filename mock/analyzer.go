package mock

import (
	"context"

	"github.com/mjarosz/newsprobe"
)

var _ newsprobe.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of newsprobe.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, content string) (*newsprobe.Analysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, content string) (*newsprobe.Analysis, error) {
	return a.AnalyzeFn(ctx, content)
}
