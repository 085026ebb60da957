package sqlite_test

import (
	"context"
	"testing"

	"github.com/mjarosz/newsprobe"
	"github.com/mjarosz/newsprobe/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface verification.
var _ newsprobe.ArticleService = (*sqlite.ArticleService)(nil)

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, hash and fetched time", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewArticleService(db)

		article := &newsprobe.Article{
			SourceURL: "https://example.com/news/budget",
			Title:     "Council Passes Budget",
			Content:   "The council voted to approve the budget.",
			WordCount: 7,
		}

		err := svc.CreateArticle(context.Background(), article)

		require.NoError(t, err)
		assert.NotEmpty(t, article.ID)
		assert.NotEmpty(t, article.ContentHash)
		assert.False(t, article.FetchedAt.IsZero())
	})

	t.Run("identical content gets identical hash", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		a := &newsprobe.Article{SourceURL: "https://example.com/a", Content: "same text"}
		b := &newsprobe.Article{SourceURL: "https://example.com/b", Content: "same text"}

		require.NoError(t, svc.CreateArticle(ctx, a))
		require.NoError(t, svc.CreateArticle(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects article without source URL", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewArticleService(db)

		err := svc.CreateArticle(context.Background(), &newsprobe.Article{})

		require.Error(t, err)
		assert.Equal(t, newsprobe.EINVALID, newsprobe.ErrorCode(err))
	})
}

func TestArticleService_FindArticleByID(t *testing.T) {
	t.Parallel()

	t.Run("round trips all fields", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := &newsprobe.Article{
			SourceURL:       "https://example.com/news/budget",
			CanonicalURL:    "https://example.com/news/budget",
			Title:           "Council Passes Budget",
			Author:          "Jane Smith",
			PublishedAt:     "2024-03-01",
			Content:         "The council voted to approve the budget.",
			ContentMarkdown: "The council voted to approve the budget.",
			WordCount:       7,
			HasPaywall:      true,
		}
		require.NoError(t, svc.CreateArticle(ctx, article))

		got, err := svc.FindArticleByID(ctx, article.ID)

		require.NoError(t, err)
		assert.Equal(t, article.SourceURL, got.SourceURL)
		assert.Equal(t, article.CanonicalURL, got.CanonicalURL)
		assert.Equal(t, article.Title, got.Title)
		assert.Equal(t, article.Author, got.Author)
		assert.Equal(t, article.PublishedAt, got.PublishedAt)
		assert.Equal(t, article.Content, got.Content)
		assert.Equal(t, article.ContentHash, got.ContentHash)
		assert.Equal(t, article.WordCount, got.WordCount)
		assert.True(t, got.HasPaywall)
	})

	t.Run("returns ENOTFOUND for missing article", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewArticleService(db)

		_, err := svc.FindArticleByID(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, newsprobe.ENOTFOUND, newsprobe.ErrorCode(err))
	})
}

func TestArticleService_FindArticles(t *testing.T) {
	t.Parallel()

	t.Run("filters by paywall status", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateArticle(ctx, &newsprobe.Article{SourceURL: "https://a.example.com/1", HasPaywall: true}))
		require.NoError(t, svc.CreateArticle(ctx, &newsprobe.Article{SourceURL: "https://a.example.com/2"}))

		paywalled := true
		articles, err := svc.FindArticles(ctx, newsprobe.ArticleFilter{HasPaywall: &paywalled})

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "https://a.example.com/1", articles[0].SourceURL)
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateArticle(ctx, &newsprobe.Article{SourceURL: "https://a.example.com/1"}))
		require.NoError(t, svc.CreateArticle(ctx, &newsprobe.Article{SourceURL: "https://a.example.com/2"}))

		url := "https://a.example.com/2"
		articles, err := svc.FindArticles(ctx, newsprobe.ArticleFilter{SourceURL: &url})

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, url, articles[0].SourceURL)
	})

	t.Run("sorts by word count descending", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateArticle(ctx, &newsprobe.Article{SourceURL: "https://a.example.com/short", WordCount: 10}))
		require.NoError(t, svc.CreateArticle(ctx, &newsprobe.Article{SourceURL: "https://a.example.com/long", WordCount: 500}))

		articles, err := svc.FindArticles(ctx, newsprobe.ArticleFilter{SortBy: newsprobe.SortByWordCount})

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "https://a.example.com/long", articles[0].SourceURL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		for _, u := range []string{"https://a.example.com/1", "https://a.example.com/2", "https://a.example.com/3"} {
			require.NoError(t, svc.CreateArticle(ctx, &newsprobe.Article{SourceURL: u}))
		}

		articles, err := svc.FindArticles(ctx, newsprobe.ArticleFilter{Limit: 2, Offset: 1})

		require.NoError(t, err)
		assert.Len(t, articles, 2)
	})
}

func TestArticleService_DeleteArticle(t *testing.T) {
	t.Parallel()

	t.Run("removes article and cascades to analyses", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		articles := sqlite.NewArticleService(db)
		analyses := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		article := &newsprobe.Article{SourceURL: "https://example.com/news"}
		require.NoError(t, articles.CreateArticle(ctx, article))
		require.NoError(t, analyses.CreateAnalysis(ctx, &newsprobe.Analysis{ArticleID: article.ID}))

		require.NoError(t, articles.DeleteArticle(ctx, article.ID))

		_, err := articles.FindArticleByID(ctx, article.ID)
		assert.Equal(t, newsprobe.ENOTFOUND, newsprobe.ErrorCode(err))

		_, err = analyses.FindAnalysisByArticle(ctx, article.ID)
		assert.Equal(t, newsprobe.ENOTFOUND, newsprobe.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing article", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewArticleService(db)

		err := svc.DeleteArticle(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, newsprobe.ENOTFOUND, newsprobe.ErrorCode(err))
	})
}
