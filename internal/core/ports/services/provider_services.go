package services

import (
	"context"

	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/SscSPs/price_listing_app/internal/dto"
)

// ProviderReaderSvc defines read operations for provider data
type ProviderReaderSvc interface {
	// GetProviderByNo retrieves a live provider by its number.
	GetProviderByNo(ctx context.Context, providerNo string) (*domain.Provider, error)

	// ListProviders retrieves all live providers.
	ListProviders(ctx context.Context) ([]domain.Provider, error)
}

// ProviderWriterSvc defines write operations for provider data
type ProviderWriterSvc interface {
	// CreateProvider validates and persists a new provider with the next provider number.
	CreateProvider(ctx context.Context, req dto.CreateProviderRequest) (*domain.Provider, error)

	// UpdateProvider applies the supplied fields to a live provider.
	UpdateProvider(ctx context.Context, providerNo string, req dto.UpdateProviderRequest) (*domain.Provider, error)

	// DeleteProvider soft-deletes a live provider.
	DeleteProvider(ctx context.Context, providerNo string) error
}

// ProviderSvcFacade combines all provider-related service interfaces
type ProviderSvcFacade interface {
	ProviderReaderSvc
	ProviderWriterSvc
}
