package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/price_listing_app/internal/apperrors"
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/price_listing_app/internal/core/ports/repositories"
	"github.com/SscSPs/price_listing_app/internal/models"
	"github.com/SscSPs/price_listing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `currency_id, currency_name, created_at, updated_at, is_deleted`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.CurrencyID,
		&c.CurrencyName,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.IsDeleted,
	)
	return c, err
}

// SaveCurrency inserts a new currency. Codes are stored upper-case.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)
	query := `
		INSERT INTO currencies (currency_id, currency_name)
		VALUES (upper($1), $2)
		RETURNING ` + currencyColumns + `;
	`
	created, err := scanCurrency(r.Pool.QueryRow(ctx, query, modelCurr.CurrencyID, modelCurr.CurrencyName))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to save currency %s", modelCurr.CurrencyID))
	}
	domainCurr := mapping.ToDomainCurrency(created)
	return &domainCurr, nil
}

func (r *PgxCurrencyRepository) findCurrency(ctx context.Context, currencyID string, includeDeleted bool) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_id = upper($1)`
	if !includeDeleted {
		query += ` AND NOT is_deleted`
	}
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find currency by id %s", currencyID))
	}
	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByID retrieves a live currency by its code, ignoring case.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	return r.findCurrency(ctx, currencyID, false)
}

// FindCurrencyByIDIncludingDeleted retrieves a currency regardless of its soft-delete flag.
func (r *PgxCurrencyRepository) FindCurrencyByIDIncludingDeleted(ctx context.Context, currencyID string) (*domain.Currency, error) {
	return r.findCurrency(ctx, currencyID, true)
}

// ListCurrencies retrieves all live currencies, newest first.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE NOT is_deleted
		ORDER BY created_at DESC, updated_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError("failed to query currencies", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError("failed to scan currencies", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// CurrencyNameTaken reports whether another currency, deleted or not, uses name ignoring case.
func (r *PgxCurrencyRepository) CurrencyNameTaken(ctx context.Context, name, excludeCurrencyID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM currencies
			WHERE upper(currency_name) = upper($1) AND currency_id <> upper($2)
		);
	`
	var taken bool
	if err := r.Pool.QueryRow(ctx, query, name, excludeCurrencyID).Scan(&taken); err != nil {
		return false, apperrors.NewAppError("failed to check currency name", err)
	}
	return taken, nil
}

// UpdateCurrency writes the mutable fields of a live currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	query := `
		UPDATE currencies
		SET currency_name = $2, updated_at = NOW()
		WHERE currency_id = upper($1) AND NOT is_deleted
		RETURNING ` + currencyColumns + `;
	`
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, currency.CurrencyID, currency.CurrencyName))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to update currency %s", currency.CurrencyID))
	}
	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// SoftDeleteCurrency flags a live currency as deleted.
func (r *PgxCurrencyRepository) SoftDeleteCurrency(ctx context.Context, currencyID string) error {
	query := `UPDATE currencies SET is_deleted = TRUE, updated_at = NOW() WHERE currency_id = upper($1) AND NOT is_deleted;`
	tag, err := r.Pool.Exec(ctx, query, currencyID)
	if err != nil {
		return apperrors.NewAppError(fmt.Sprintf("failed to delete currency %s", currencyID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
