package pgsql

import (
	"errors"

	"github.com/SscSPs/price_listing_app/internal/apperrors"
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Constraint names as created by the migrations.
const (
	providersPKey        = "providers_pkey"
	providersNameKey     = "providers_provider_name_key"
	currenciesPKey       = "currencies_pkey"
	currenciesNameKey    = "currencies_currency_name_upper_key"
	articlesPKey         = "articles_pkey"
	articlesLivePairKey  = "articles_live_pair_key"
	articlesCurrencyFKey = "articles_currency_id_fkey"
	articlesProviderFKey = "articles_provider_no_fkey"
)

func isUniqueViolationOn(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}

// translateError maps storage failures onto application error kinds.
// Anything unrecognised is wrapped as internal with msg.
func translateError(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			switch pgErr.ConstraintName {
			case providersNameKey:
				return apperrors.NewConflictError(domain.MsgProviderNameExists)
			case currenciesPKey, currenciesNameKey:
				return apperrors.NewConflictError(domain.MsgCurrencyExists)
			case articlesLivePairKey:
				return apperrors.NewConflictError(domain.MsgArticleExists)
			}
			return &apperrors.AppError{Kind: apperrors.KindConflict, Message: msg, Err: err}
		case foreignKeyViolation:
			switch pgErr.ConstraintName {
			case articlesCurrencyFKey:
				return apperrors.NewValidationFailedError(domain.MsgInvalidCurrencyID)
			case articlesProviderFKey:
				return apperrors.NewValidationFailedError(domain.MsgInvalidProviderID)
			}
		}
	}
	return apperrors.NewAppError(msg, err)
}
