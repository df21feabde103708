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

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service with the provided dependencies
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	id := domain.NormalizeCurrencyID(currencyID)
	if id == "" {
		return nil, apperrors.NewNotFoundError(domain.MsgInvalidCurrencyID)
	}
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(domain.MsgInvalidCurrencyID)
		}
		return nil, s.internal(ctx, err, "Failed to find currency", slog.String("currency_id", id))
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to list currencies")
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	id := domain.NormalizeCurrencyID(req.CurrencyID)
	if id == "" {
		return nil, apperrors.NewValidationFailedError(domain.MsgCurrencyIDEmpty)
	}
	name := strings.TrimSpace(req.CurrencyName)
	if name == "" {
		return nil, apperrors.NewValidationFailedError(domain.MsgCurrencyNameEmpty)
	}

	// The code stays reserved after a soft delete.
	if _, err := s.currencyRepo.FindCurrencyByIDIncludingDeleted(ctx, id); err == nil {
		return nil, apperrors.NewConflictError(domain.MsgCurrencyExists)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, s.internal(ctx, err, "Failed to look up currency", slog.String("currency_id", id))
	}

	taken, err := s.currencyRepo.CurrencyNameTaken(ctx, name, "")
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to check currency name", slog.String("currency_name", name))
	}
	if taken {
		return nil, apperrors.NewConflictError(domain.MsgCurrencyExists)
	}

	created, err := s.currencyRepo.SaveCurrency(ctx, domain.Currency{CurrencyID: id, CurrencyName: name})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError(domain.MsgCurrencyExists)
		}
		return nil, s.internal(ctx, err, "Failed to create currency", slog.String("currency_id", id))
	}

	s.LogInfo(ctx, "Currency created", slog.String("currency_id", created.CurrencyID))
	return created, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	currency, err := s.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	if req.CurrencyName == nil {
		return nil, apperrors.NewValidationFailedError(domain.MsgCurrencyNameEmpty)
	}

	name := strings.TrimSpace(*req.CurrencyName)
	if name == "" {
		return nil, apperrors.NewValidationFailedError(domain.MsgCurrencyNameEmpty)
	}

	taken, err := s.currencyRepo.CurrencyNameTaken(ctx, name, currency.CurrencyID)
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to check currency name", slog.String("currency_name", name))
	}
	if taken {
		return nil, apperrors.NewConflictError(domain.MsgCurrencyExists)
	}

	currency.CurrencyName = name
	updated, err := s.currencyRepo.UpdateCurrency(ctx, *currency)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError(domain.MsgInvalidCurrencyID)
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.NewConflictError(domain.MsgCurrencyExists)
		}
		return nil, s.internal(ctx, err, "Failed to update currency", slog.String("currency_id", currency.CurrencyID))
	}
	return updated, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, currencyID string) error {
	currency, err := s.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return err
	}
	if err := s.currencyRepo.SoftDeleteCurrency(ctx, currency.CurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(domain.MsgInvalidCurrencyID)
		}
		return s.internal(ctx, err, "Failed to delete currency", slog.String("currency_id", currency.CurrencyID))
	}
	s.LogInfo(ctx, "Currency deleted", slog.String("currency_id", currency.CurrencyID))
	return nil
}
