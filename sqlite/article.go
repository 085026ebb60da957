package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mjarosz/newsprobe"
)

// Compile-time interface verification.
var _ newsprobe.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsprobe.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateArticle creates a new article.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsprobe.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.FetchedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, source_url, canonical_url, title, author, published_at, content, content_markdown, content_hash, word_count, has_paywall, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.SourceURL, article.CanonicalURL, article.Title, article.Author,
		article.PublishedAt, article.Content, article.ContentMarkdown, article.ContentHash,
		article.WordCount, article.HasPaywall, article.FetchedAt.Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsprobe.Article, error) {
	var article newsprobe.Article
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, canonical_url, title, author, published_at, content, content_markdown, content_hash, word_count, has_paywall, fetched_at
		FROM articles
		WHERE id = ?
	`, id).Scan(&article.ID, &article.SourceURL, &article.CanonicalURL, &article.Title,
		&article.Author, &article.PublishedAt, &article.Content, &article.ContentMarkdown,
		&article.ContentHash, &article.WordCount, &article.HasPaywall, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, newsprobe.Errorf(newsprobe.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	article.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// FindArticles retrieves articles matching the filter.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsprobe.ArticleFilter) ([]*newsprobe.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, canonical_url, title, author, published_at, content, content_markdown, content_hash, word_count, has_paywall, fetched_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.CanonicalURL != nil {
		query.WriteString(" AND canonical_url = ?")
		args = append(args, *filter.CanonicalURL)
	}
	if filter.HasPaywall != nil {
		query.WriteString(" AND has_paywall = ?")
		args = append(args, *filter.HasPaywall)
	}

	switch filter.SortBy {
	case newsprobe.SortByWordCount:
		query.WriteString(" ORDER BY word_count DESC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*newsprobe.Article
	for rows.Next() {
		var article newsprobe.Article
		var fetchedAt string

		if err := rows.Scan(&article.ID, &article.SourceURL, &article.CanonicalURL, &article.Title,
			&article.Author, &article.PublishedAt, &article.Content, &article.ContentMarkdown,
			&article.ContentHash, &article.WordCount, &article.HasPaywall, &fetchedAt); err != nil {
			return nil, err
		}

		article.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article. Analyses are removed by the
// foreign key cascade.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsprobe.Errorf(newsprobe.ENOTFOUND, "article not found")
	}

	return nil
}
