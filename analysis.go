package newsprobe

import (
	"context"
	"time"
)

// BiasAnalysis describes bias signals found in article text.
type BiasAnalysis struct {
	// BiasScore is 0.0 (neutral) to 1.0 (heavily biased).
	BiasScore float64 `json:"biasScore"`

	// NeutralLanguageScore is 1.0 when language is fully neutral.
	NeutralLanguageScore float64 `json:"neutralLanguageScore"`

	// PerspectiveBalance is 1.0 when competing perspectives are
	// represented evenly.
	PerspectiveBalance float64 `json:"perspectiveBalance"`

	DetectedBiasTypes []string `json:"detectedBiasTypes"`
	LoadedLanguage    []string `json:"loadedLanguage"`
	Suggestions       []string `json:"suggestions"`
}

// Claim is a factual claim extracted from article text.
type Claim struct {
	Text                 string  `json:"text"`
	Type                 string  `json:"type"` // statistic, quote, event, definition
	Confidence           float64 `json:"confidence"`
	RequiresVerification bool    `json:"requiresVerification"`
}

// Analysis is the complete analysis of one article.
type Analysis struct {
	ID        string       `json:"id"`
	ArticleID string       `json:"articleId"`
	Bias      BiasAnalysis `json:"bias"`
	Claims    []Claim      `json:"claims"`
	Summary   string       `json:"summary"`
	Model     string       `json:"model"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.ArticleID == "" {
		return Errorf(EINVALID, "analysis article ID required")
	}
	return nil
}

// AnalysisService represents a service for managing stored analyses.
type AnalysisService interface {
	// CreateAnalysis creates a new analysis.
	CreateAnalysis(ctx context.Context, analysis *Analysis) error

	// FindAnalysisByArticle retrieves the most recent analysis for an
	// article. Returns ENOTFOUND if none exists.
	FindAnalysisByArticle(ctx context.Context, articleID string) (*Analysis, error)

	// DeleteAnalysesByArticle removes all analyses for an article.
	DeleteAnalysesByArticle(ctx context.Context, articleID string) error
}

// Analyzer runs bias and claim analysis over article text using a
// language model.
type Analyzer interface {
	// Analyze returns a structured analysis of the given content.
	// The content should already be cleaned plain text.
	Analyze(ctx context.Context, content string) (*Analysis, error)
}
