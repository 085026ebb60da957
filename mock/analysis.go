package mock

import (
	"context"

	"github.com/mjarosz/newsprobe"
)

var _ newsprobe.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of newsprobe.AnalysisService.
type AnalysisService struct {
	CreateAnalysisFn          func(ctx context.Context, analysis *newsprobe.Analysis) error
	FindAnalysisByArticleFn   func(ctx context.Context, articleID string) (*newsprobe.Analysis, error)
	DeleteAnalysesByArticleFn func(ctx context.Context, articleID string) error
}

func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *newsprobe.Analysis) error {
	return s.CreateAnalysisFn(ctx, analysis)
}

func (s *AnalysisService) FindAnalysisByArticle(ctx context.Context, articleID string) (*newsprobe.Analysis, error) {
	return s.FindAnalysisByArticleFn(ctx, articleID)
}

func (s *AnalysisService) DeleteAnalysesByArticle(ctx context.Context, articleID string) error {
	return s.DeleteAnalysesByArticleFn(ctx, articleID)
}
