package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/price_listing_app/internal/apperrors"
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/price_listing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/price_listing_app/internal/core/ports/services"
	"github.com/SscSPs/price_listing_app/internal/dto"
)

// providerService implements the ProviderSvcFacade interface
type providerService struct {
	BaseService
	providerRepo portsrepo.ProviderRepositoryFacade
}

// NewProviderService creates a new provider service with the provided dependencies
func NewProviderService(providerRepo portsrepo.ProviderRepositoryFacade) portssvc.ProviderSvcFacade {
	return &providerService{providerRepo: providerRepo}
}

var _ portssvc.ProviderSvcFacade = (*providerService)(nil)

// GetProviderByNo retrieves a live provider by its number
func (s *providerService) GetProviderByNo(ctx context.Context, providerNo string) (*domain.Provider, error) {
	provider, err := s.providerRepo.FindProviderByNo(ctx, providerNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(domain.MsgInvalidProviderID)
		}
		return nil, s.internal(ctx, err, "Failed to find provider", slog.String("provider_no", providerNo))
	}
	return provider, nil
}

// ListProviders retrieves all live providers
func (s *providerService) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	providers, err := s.providerRepo.ListProviders(ctx)
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to list providers")
	}
	if providers == nil {
		return []domain.Provider{}, nil
	}
	return providers, nil
}

// CreateProvider validates the name and persists a provider under the next number
func (s *providerService) CreateProvider(ctx context.Context, req dto.CreateProviderRequest) (*domain.Provider, error) {
	name := strings.TrimSpace(req.ProviderName)
	if name == "" {
		return nil, apperrors.NewValidationFailedError(domain.MsgProviderNameEmpty)
	}

	taken, err := s.providerRepo.ProviderNameTaken(ctx, name, "")
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to check provider name", slog.String("provider_name", name))
	}
	if taken {
		return nil, apperrors.NewConflictError(domain.MsgProviderNameExists)
	}

	created, err := s.providerRepo.CreateProvider(ctx, domain.Provider{ProviderName: name})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError(domain.MsgProviderNameExists)
		}
		return nil, s.internal(ctx, err, "Failed to create provider", slog.String("provider_name", name))
	}

	s.LogInfo(ctx, "Provider created", slog.String("provider_no", created.ProviderNo))
	return created, nil
}

// UpdateProvider applies the supplied fields to a live provider
func (s *providerService) UpdateProvider(ctx context.Context, providerNo string, req dto.UpdateProviderRequest) (*domain.Provider, error) {
	provider, err := s.GetProviderByNo(ctx, providerNo)
	if err != nil {
		return nil, err
	}
	if req.ProviderName == nil {
		return nil, apperrors.NewValidationFailedError(domain.MsgProviderNameEmpty)
	}

	name := strings.TrimSpace(*req.ProviderName)
	if name == "" {
		return nil, apperrors.NewValidationFailedError(domain.MsgProviderNameEmpty)
	}

	taken, err := s.providerRepo.ProviderNameTaken(ctx, name, provider.ProviderNo)
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to check provider name", slog.String("provider_name", name))
	}
	if taken {
		return nil, apperrors.NewConflictError(domain.MsgProviderNameExists)
	}

	provider.ProviderName = name
	updated, err := s.providerRepo.UpdateProvider(ctx, *provider)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError(domain.MsgInvalidProviderID)
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.NewConflictError(domain.MsgProviderNameExists)
		}
		return nil, s.internal(ctx, err, "Failed to update provider", slog.String("provider_no", providerNo))
	}
	return updated, nil
}

// DeleteProvider soft-deletes a live provider. Its articles keep their own flag.
func (s *providerService) DeleteProvider(ctx context.Context, providerNo string) error {
	if _, err := s.GetProviderByNo(ctx, providerNo); err != nil {
		return err
	}
	if err := s.providerRepo.SoftDeleteProvider(ctx, providerNo); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(domain.MsgInvalidProviderID)
		}
		return s.internal(ctx, err, "Failed to delete provider", slog.String("provider_no", providerNo))
	}
	s.LogInfo(ctx, "Provider deleted", slog.String("provider_no", providerNo))
	return nil
}
