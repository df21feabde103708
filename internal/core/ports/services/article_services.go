package services

import (
	"context"

	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/SscSPs/price_listing_app/internal/dto"
)

// ArticleReaderSvc defines read operations for article data
type ArticleReaderSvc interface {
	// GetArticleByNo retrieves a live article by number.
	GetArticleByNo(ctx context.Context, articleNo int64) (*domain.Article, error)

	// ListArticles retrieves one page of live articles.
	ListArticles(ctx context.Context, limit, offset int) (*domain.ArticlePage, error)
}

// ArticleWriterSvc defines write operations for article data
type ArticleWriterSvc interface {
	// CreateArticle resolves the referenced currency and provider and persists a new article.
	CreateArticle(ctx context.Context, req dto.CreateArticleRequest) (*domain.Article, error)

	// UpdateArticle applies the supplied fields to a live article.
	UpdateArticle(ctx context.Context, articleNo int64, req dto.UpdateArticleRequest) (*domain.Article, error)

	// DeleteArticle soft-deletes a live article.
	DeleteArticle(ctx context.Context, articleNo int64) error
}

// ArticleSvcFacade combines all article-related service interfaces
type ArticleSvcFacade interface {
	ArticleReaderSvc
	ArticleWriterSvc
}
