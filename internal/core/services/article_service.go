package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/price_listing_app/internal/apperrors"
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/price_listing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/price_listing_app/internal/core/ports/services"
	"github.com/SscSPs/price_listing_app/internal/dto"
	"github.com/SscSPs/price_listing_app/internal/validation"
	"github.com/shopspring/decimal"
)

// articleService implements the ArticleSvcFacade interface
type articleService struct {
	BaseService
	articleRepo  portsrepo.ArticleRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	providerRepo portsrepo.ProviderReader
}

// NewArticleService creates a new article service. Currency and provider
// readers resolve the keys an article refers to.
func NewArticleService(
	articleRepo portsrepo.ArticleRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	providerRepo portsrepo.ProviderReader,
) portssvc.ArticleSvcFacade {
	return &articleService{
		articleRepo:  articleRepo,
		currencyRepo: currencyRepo,
		providerRepo: providerRepo,
	}
}

var _ portssvc.ArticleSvcFacade = (*articleService)(nil)

// GetArticleByNo retrieves a live article by number
func (s *articleService) GetArticleByNo(ctx context.Context, articleNo int64) (*domain.Article, error) {
	article, err := s.articleRepo.FindArticleByNo(ctx, articleNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(domain.MsgInvalidArticleNo)
		}
		return nil, s.internal(ctx, err, "Failed to find article", slog.Int64("article_no", articleNo))
	}
	return article, nil
}

// ListArticles retrieves one page of live articles
func (s *articleService) ListArticles(ctx context.Context, limit, offset int) (*domain.ArticlePage, error) {
	page, err := s.articleRepo.ListArticles(ctx, limit, offset)
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to list articles",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
	}
	if page.Articles == nil {
		page.Articles = []domain.Article{}
	}
	return page, nil
}

// CreateArticle resolves the referenced currency and provider, then persists
// the article under the next article number.
func (s *articleService) CreateArticle(ctx context.Context, req dto.CreateArticleRequest) (*domain.Article, error) {
	currency, err := s.resolveCurrency(ctx, req.CurrencyID.String())
	if err != nil {
		return nil, err
	}
	provider, err := s.resolveProvider(ctx, req.ProviderNo.String())
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(req.Price.String())
	if err != nil {
		return nil, err
	}

	if err := s.ensurePairFree(ctx, currency.CurrencyID, provider.ProviderNo, 0); err != nil {
		return nil, err
	}

	created, err := s.articleRepo.CreateArticle(ctx, domain.Article{
		CurrencyID:   currency.CurrencyID,
		CurrencyName: currency.CurrencyName,
		ProviderNo:   provider.ProviderNo,
		ProviderName: provider.ProviderName,
		Price:        price,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError(domain.MsgArticleExists)
		}
		return nil, s.internal(ctx, err, "Failed to create article",
			slog.String("currency_id", currency.CurrencyID),
			slog.String("provider_no", provider.ProviderNo))
	}

	s.LogInfo(ctx, "Article created", slog.Int64("article_no", created.ArticleNo))
	return created, nil
}

// UpdateArticle applies the supplied fields to a live article
func (s *articleService) UpdateArticle(ctx context.Context, articleNo int64, req dto.UpdateArticleRequest) (*domain.Article, error) {
	article, err := s.GetArticleByNo(ctx, articleNo)
	if err != nil {
		return nil, err
	}

	changed, pairChanged := false, false
	if key := req.CurrencyKey(); key != nil {
		currency, err := s.resolveCurrency(ctx, *key)
		if err != nil {
			return nil, err
		}
		pairChanged = pairChanged || currency.CurrencyID != article.CurrencyID
		article.CurrencyID, article.CurrencyName = currency.CurrencyID, currency.CurrencyName
		changed = true
	}
	if key := req.ProviderKey(); key != nil {
		provider, err := s.resolveProvider(ctx, *key)
		if err != nil {
			return nil, err
		}
		pairChanged = pairChanged || provider.ProviderNo != article.ProviderNo
		article.ProviderNo, article.ProviderName = provider.ProviderNo, provider.ProviderName
		changed = true
	}
	if req.Price != nil {
		price, err := parsePrice(req.Price.String())
		if err != nil {
			return nil, err
		}
		article.Price = price
		changed = true
	}
	if !changed {
		s.LogDebug(ctx, "Article update carried no changes", slog.Int64("article_no", article.ArticleNo))
		return article, nil
	}

	if pairChanged {
		if err := s.ensurePairFree(ctx, article.CurrencyID, article.ProviderNo, article.ArticleNo); err != nil {
			return nil, err
		}
	}

	updated, err := s.articleRepo.UpdateArticle(ctx, *article)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError(domain.MsgInvalidArticleNo)
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.NewConflictError(domain.MsgArticleExists)
		}
		return nil, s.internal(ctx, err, "Failed to update article", slog.Int64("article_no", articleNo))
	}
	return updated, nil
}

// DeleteArticle soft-deletes a live article
func (s *articleService) DeleteArticle(ctx context.Context, articleNo int64) error {
	if _, err := s.GetArticleByNo(ctx, articleNo); err != nil {
		return err
	}
	if err := s.articleRepo.SoftDeleteArticle(ctx, articleNo); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(domain.MsgInvalidArticleNo)
		}
		return s.internal(ctx, err, "Failed to delete article", slog.Int64("article_no", articleNo))
	}
	s.LogInfo(ctx, "Article deleted", slog.Int64("article_no", articleNo))
	return nil
}

// resolveCurrency looks up a live currency, ignoring case. A missing
// currency is a validation failure of the article, not a missing article.
func (s *articleService) resolveCurrency(ctx context.Context, key string) (*domain.Currency, error) {
	id := domain.NormalizeCurrencyID(key)
	if id == "" {
		return nil, apperrors.NewValidationFailedError(domain.MsgInvalidCurrencyID)
	}
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(domain.MsgInvalidCurrencyID)
		}
		return nil, s.internal(ctx, err, "Failed to resolve currency", slog.String("currency_id", id))
	}
	return currency, nil
}

// resolveProvider looks up a live provider by its exact number.
func (s *articleService) resolveProvider(ctx context.Context, key string) (*domain.Provider, error) {
	if key == "" {
		return nil, apperrors.NewValidationFailedError(domain.MsgInvalidProviderID)
	}
	provider, err := s.providerRepo.FindProviderByNo(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(domain.MsgInvalidProviderID)
		}
		return nil, s.internal(ctx, err, "Failed to resolve provider", slog.String("provider_no", key))
	}
	return provider, nil
}

func (s *articleService) ensurePairFree(ctx context.Context, currencyID, providerNo string, excludeArticleNo int64) error {
	exists, err := s.articleRepo.LiveArticleExists(ctx, currencyID, providerNo, excludeArticleNo)
	if err != nil {
		return s.internal(ctx, err, "Failed to check article pair",
			slog.String("currency_id", currencyID),
			slog.String("provider_no", providerNo))
	}
	if exists {
		return apperrors.NewConflictError(domain.MsgArticleExists)
	}
	return nil
}

func parsePrice(text string) (decimal.Decimal, error) {
	if !validation.ValidPrice(text) {
		return decimal.Zero, apperrors.NewValidationFailedError(validation.PriceMessage)
	}
	price, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, apperrors.NewValidationFailedError(validation.PriceMessage)
	}
	return price, nil
}
