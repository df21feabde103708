package services_test

import (
	"context"

	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProviderRepository ---
type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindProviderByNo(ctx context.Context, providerNo string) (*domain.Provider, error) {
	args := m.Called(ctx, providerNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) FindProviderByNoIncludingDeleted(ctx context.Context, providerNo string) (*domain.Provider, error) {
	args := m.Called(ctx, providerNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) ProviderNameTaken(ctx context.Context, name, excludeProviderNo string) (bool, error) {
	args := m.Called(ctx, name, excludeProviderNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockProviderRepository) CreateProvider(ctx context.Context, provider domain.Provider) (*domain.Provider, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) UpdateProvider(ctx context.Context, provider domain.Provider) (*domain.Provider, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) SoftDeleteProvider(ctx context.Context, providerNo string) error {
	args := m.Called(ctx, providerNo)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByIDIncludingDeleted(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) CurrencyNameTaken(ctx context.Context, name, excludeCurrencyID string) (bool, error) {
	args := m.Called(ctx, name, excludeCurrencyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SoftDeleteCurrency(ctx context.Context, currencyID string) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

// --- Mock ArticleRepository ---
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) FindArticleByNo(ctx context.Context, articleNo int64) (*domain.Article, error) {
	args := m.Called(ctx, articleNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepository) ListArticles(ctx context.Context, limit, offset int) (*domain.ArticlePage, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticlePage), args.Error(1)
}

func (m *MockArticleRepository) LiveArticleExists(ctx context.Context, currencyID, providerNo string, excludeArticleNo int64) (bool, error) {
	args := m.Called(ctx, currencyID, providerNo, excludeArticleNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	args := m.Called(ctx, article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepository) UpdateArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	args := m.Called(ctx, article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepository) SoftDeleteArticle(ctx context.Context, articleNo int64) error {
	args := m.Called(ctx, articleNo)
	return args.Error(0)
}
