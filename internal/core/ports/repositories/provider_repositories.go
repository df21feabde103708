package repositories

import (
	"context"

	"github.com/SscSPs/price_listing_app/internal/core/domain"
)

// ProviderReader defines read operations for provider data
type ProviderReader interface {
	// FindProviderByNo retrieves a live provider by its exact number.
	FindProviderByNo(ctx context.Context, providerNo string) (*domain.Provider, error)

	// FindProviderByNoIncludingDeleted retrieves a provider regardless of its soft-delete flag.
	FindProviderByNoIncludingDeleted(ctx context.Context, providerNo string) (*domain.Provider, error)

	// ListProviders retrieves all live providers, newest first.
	ListProviders(ctx context.Context) ([]domain.Provider, error)

	// ProviderNameTaken reports whether any provider other than
	// excludeProviderNo, deleted or not, already uses name.
	ProviderNameTaken(ctx context.Context, name, excludeProviderNo string) (bool, error)
}

// ProviderWriter defines write operations for provider data
type ProviderWriter interface {
	// CreateProvider allocates the next provider number and persists the provider.
	CreateProvider(ctx context.Context, provider domain.Provider) (*domain.Provider, error)

	// UpdateProvider writes the mutable fields of a live provider.
	UpdateProvider(ctx context.Context, provider domain.Provider) (*domain.Provider, error)

	// SoftDeleteProvider flags a live provider as deleted.
	SoftDeleteProvider(ctx context.Context, providerNo string) error
}

// ProviderRepositoryFacade combines all provider-related repository interfaces
type ProviderRepositoryFacade interface {
	ProviderReader
	ProviderWriter
}
