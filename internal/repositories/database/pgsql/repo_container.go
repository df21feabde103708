package pgsql

import (
	portsrepo "github.com/SscSPs/price_listing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProviderRepo: newPgxProviderRepository(dbPool),
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		ArticleRepo:  newPgxArticleRepository(dbPool),
	}
}
