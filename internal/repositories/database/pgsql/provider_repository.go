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

const providerColumns = `provider_no, provider_name, created_at, updated_at, is_deleted`

type PgxProviderRepository struct {
	BaseRepository
}

// newPgxProviderRepository creates a new repository for provider data.
func newPgxProviderRepository(pool *pgxpool.Pool) portsrepo.ProviderRepositoryFacade {
	return &PgxProviderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProviderRepositoryFacade = (*PgxProviderRepository)(nil)

func scanProvider(row pgx.Row) (models.Provider, error) {
	var p models.Provider
	err := row.Scan(
		&p.ProviderNo,
		&p.ProviderName,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.IsDeleted,
	)
	return p, err
}

func (r *PgxProviderRepository) findProvider(ctx context.Context, providerNo string, includeDeleted bool) (*domain.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE provider_no = $1`
	if !includeDeleted {
		query += ` AND NOT is_deleted`
	}
	modelProvider, err := scanProvider(r.Pool.QueryRow(ctx, query, providerNo))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find provider %s", providerNo))
	}
	domainProvider := mapping.ToDomainProvider(modelProvider)
	return &domainProvider, nil
}

// FindProviderByNo retrieves a live provider by its exact number.
func (r *PgxProviderRepository) FindProviderByNo(ctx context.Context, providerNo string) (*domain.Provider, error) {
	return r.findProvider(ctx, providerNo, false)
}

// FindProviderByNoIncludingDeleted retrieves a provider regardless of its soft-delete flag.
func (r *PgxProviderRepository) FindProviderByNoIncludingDeleted(ctx context.Context, providerNo string) (*domain.Provider, error) {
	return r.findProvider(ctx, providerNo, true)
}

// ListProviders retrieves all live providers, newest first.
func (r *PgxProviderRepository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM providers
		WHERE NOT is_deleted
		ORDER BY created_at DESC, updated_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError("failed to query providers", err)
	}
	defer rows.Close()

	modelProviders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Provider, error) {
		return scanProvider(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError("failed to scan providers", err)
	}

	return mapping.ToDomainProviderSlice(modelProviders), nil
}

// ProviderNameTaken reports whether another provider, deleted or not, uses name.
func (r *PgxProviderRepository) ProviderNameTaken(ctx context.Context, name, excludeProviderNo string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM providers WHERE provider_name = $1 AND provider_no <> $2);`
	var taken bool
	if err := r.Pool.QueryRow(ctx, query, name, excludeProviderNo).Scan(&taken); err != nil {
		return false, apperrors.NewAppError("failed to check provider name", err)
	}
	return taken, nil
}

// CreateProvider allocates the next provider number and persists the provider.
func (r *PgxProviderRepository) CreateProvider(ctx context.Context, provider domain.Provider) (*domain.Provider, error) {
	modelProvider := mapping.ToModelProvider(provider)
	query := `
		INSERT INTO providers (provider_no, provider_name)
		VALUES ($1, $2)
		RETURNING ` + providerColumns + `;
	`

	_, err := r.insertWithSequence(ctx, providerSequence, domain.FirstProviderSequence, providersPKey,
		func(ctx context.Context, tx pgx.Tx, value int64) error {
			created, err := scanProvider(tx.QueryRow(ctx, query, domain.FormatProviderNo(value), modelProvider.ProviderName))
			if err != nil {
				return err
			}
			modelProvider = created
			return nil
		})
	if err != nil {
		return nil, translateError(err, "failed to create provider")
	}

	domainProvider := mapping.ToDomainProvider(modelProvider)
	return &domainProvider, nil
}

// UpdateProvider writes the mutable fields of a live provider.
func (r *PgxProviderRepository) UpdateProvider(ctx context.Context, provider domain.Provider) (*domain.Provider, error) {
	query := `
		UPDATE providers
		SET provider_name = $2, updated_at = NOW()
		WHERE provider_no = $1 AND NOT is_deleted
		RETURNING ` + providerColumns + `;
	`
	modelProvider, err := scanProvider(r.Pool.QueryRow(ctx, query, provider.ProviderNo, provider.ProviderName))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to update provider %s", provider.ProviderNo))
	}
	domainProvider := mapping.ToDomainProvider(modelProvider)
	return &domainProvider, nil
}

// SoftDeleteProvider flags a live provider as deleted.
func (r *PgxProviderRepository) SoftDeleteProvider(ctx context.Context, providerNo string) error {
	query := `UPDATE providers SET is_deleted = TRUE, updated_at = NOW() WHERE provider_no = $1 AND NOT is_deleted;`
	tag, err := r.Pool.Exec(ctx, query, providerNo)
	if err != nil {
		return apperrors.NewAppError(fmt.Sprintf("failed to delete provider %s", providerNo), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
