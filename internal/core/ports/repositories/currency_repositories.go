package repositories

import (
	"context"

	"github.com/SscSPs/price_listing_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
// Lookups match the code case-insensitively and skip soft-deleted rows.
type CurrencyReader interface {
	// FindCurrencyByID retrieves a live currency by its code.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// FindCurrencyByIDIncludingDeleted retrieves a currency regardless of its soft-delete flag.
	FindCurrencyByIDIncludingDeleted(ctx context.Context, currencyID string) (*domain.Currency, error)

	// ListCurrencies retrieves all live currencies, newest first.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// CurrencyNameTaken reports whether any currency other than
	// excludeCurrencyID, deleted or not, uses name ignoring case.
	CurrencyNameTaken(ctx context.Context, name, excludeCurrencyID string) (bool, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// UpdateCurrency writes the mutable fields of a live currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// SoftDeleteCurrency flags a live currency as deleted.
	SoftDeleteCurrency(ctx context.Context, currencyID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
