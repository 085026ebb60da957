package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mjarosz/newsprobe"
)

// Compile-time interface verification.
var _ newsprobe.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements newsprobe.AnalysisService using SQLite.
// Bias and claim structures are stored as JSON columns since they are
// only ever read back whole.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// CreateAnalysis creates a new analysis.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *newsprobe.Analysis) error {
	if err := analysis.Validate(); err != nil {
		return err
	}

	analysis.ID = uuid.New().String()
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now().UTC()
	}

	bias, err := json.Marshal(analysis.Bias)
	if err != nil {
		return fmt.Errorf("failed to marshal bias: %w", err)
	}
	claims, err := json.Marshal(analysis.Claims)
	if err != nil {
		return fmt.Errorf("failed to marshal claims: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, article_id, bias, claims, summary, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, analysis.ID, analysis.ArticleID, string(bias), string(claims), analysis.Summary,
		analysis.Model, analysis.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnalysisByArticle retrieves the most recent analysis for an article.
func (s *AnalysisService) FindAnalysisByArticle(ctx context.Context, articleID string) (*newsprobe.Analysis, error) {
	var analysis newsprobe.Analysis
	var bias, claims, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, article_id, bias, claims, summary, model, created_at
		FROM analyses
		WHERE article_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, articleID).Scan(&analysis.ID, &analysis.ArticleID, &bias, &claims,
		&analysis.Summary, &analysis.Model, &createdAt)

	if err == sql.ErrNoRows {
		return nil, newsprobe.Errorf(newsprobe.ENOTFOUND, "no analysis found for article %q", articleID)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(bias), &analysis.Bias); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bias: %w", err)
	}
	if err := json.Unmarshal([]byte(claims), &analysis.Claims); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	analysis.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &analysis, nil
}

// DeleteAnalysesByArticle removes all analyses for an article.
func (s *AnalysisService) DeleteAnalysesByArticle(ctx context.Context, articleID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE article_id = ?", articleID)
	return err
}
