package newsprobe

import (
	"context"
	"time"
)

// Article represents a fetched and extracted news article.
type Article struct {
	ID              string    `json:"id"`
	SourceURL       string    `json:"sourceUrl"`
	CanonicalURL    string    `json:"canonicalUrl"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	PublishedAt     string    `json:"publishedAt"` // raw publisher-declared form, best-effort
	Content         string    `json:"content"`
	ContentMarkdown string    `json:"contentMarkdown,omitempty"`
	ContentHash     string    `json:"contentHash"`
	WordCount       int       `json:"wordCount"`
	HasPaywall      bool      `json:"hasPaywall"`
	FetchedAt       time.Time `json:"fetchedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.WordCount < 0 {
		return Errorf(EINVALID, "article word count cannot be negative")
	}
	return nil
}

// SortOrder represents the sort order for article queries.
type SortOrder string

// SortOrder constants for ArticleFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByWordCount SortOrder = "word_count"
)

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID           *string `json:"id"`
	SourceURL    *string `json:"sourceUrl"`
	CanonicalURL *string `json:"canonicalUrl"`
	HasPaywall   *bool   `json:"hasPaywall"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// ArticleService represents a service for managing articles.
type ArticleService interface {
	// CreateArticle creates a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article and its analyses.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}
