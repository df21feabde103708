package repositories

import (
	"context"

	"github.com/SscSPs/price_listing_app/internal/core/domain"
)

// ArticleReader defines read operations for article data
type ArticleReader interface {
	// FindArticleByNo retrieves a live article by number.
	FindArticleByNo(ctx context.Context, articleNo int64) (*domain.Article, error)

	// ListArticles retrieves one page of live articles, newest first.
	ListArticles(ctx context.Context, limit, offset int) (*domain.ArticlePage, error)

	// LiveArticleExists reports whether a live article already pairs the
	// currency with the provider. excludeArticleNo is ignored when zero.
	LiveArticleExists(ctx context.Context, currencyID, providerNo string, excludeArticleNo int64) (bool, error)
}

// ArticleWriter defines write operations for article data
type ArticleWriter interface {
	// CreateArticle allocates the next article number and persists the article.
	CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error)

	// UpdateArticle writes the mutable fields of a live article.
	UpdateArticle(ctx context.Context, article domain.Article) (*domain.Article, error)

	// SoftDeleteArticle flags a live article as deleted.
	SoftDeleteArticle(ctx context.Context, articleNo int64) error
}

// ArticleRepositoryFacade combines all article-related repository interfaces
type ArticleRepositoryFacade interface {
	ArticleReader
	ArticleWriter
}
