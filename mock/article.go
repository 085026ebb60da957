package mock

import (
	"context"

	"github.com/mjarosz/newsprobe"
)

var _ newsprobe.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of newsprobe.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *newsprobe.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*newsprobe.Article, error)
	FindArticlesFn    func(ctx context.Context, filter newsprobe.ArticleFilter) ([]*newsprobe.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *newsprobe.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsprobe.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter newsprobe.ArticleFilter) ([]*newsprobe.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}
