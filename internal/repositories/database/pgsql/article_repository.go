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

// Articles are always read together with the names of what they reference.
const articleSelect = `
	SELECT a.article_no, a.currency_id, a.provider_no, a.price,
		c.currency_name, p.provider_name,
		a.created_at, a.updated_at, a.is_deleted
	FROM articles a
	JOIN currencies c ON c.currency_id = a.currency_id
	JOIN providers p ON p.provider_no = a.provider_no
`

type PgxArticleRepository struct {
	BaseRepository
}

// newPgxArticleRepository creates a new repository for article data.
func newPgxArticleRepository(pool *pgxpool.Pool) portsrepo.ArticleRepositoryFacade {
	return &PgxArticleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ArticleRepositoryFacade = (*PgxArticleRepository)(nil)

func scanArticle(row pgx.Row) (models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ArticleNo,
		&a.CurrencyID,
		&a.ProviderNo,
		&a.Price,
		&a.CurrencyName,
		&a.ProviderName,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.IsDeleted,
	)
	return a, err
}

// FindArticleByNo retrieves a live article by number.
func (r *PgxArticleRepository) FindArticleByNo(ctx context.Context, articleNo int64) (*domain.Article, error) {
	return r.findArticle(ctx, r.Pool, articleNo)
}

func (r *PgxArticleRepository) findArticle(ctx context.Context, q pgxQuerier, articleNo int64) (*domain.Article, error) {
	query := articleSelect + ` WHERE a.article_no = $1 AND NOT a.is_deleted;`
	modelArticle, err := scanArticle(q.QueryRow(ctx, query, articleNo))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find article %d", articleNo))
	}
	domainArticle := mapping.ToDomainArticle(modelArticle)
	return &domainArticle, nil
}

// ListArticles retrieves one page of live articles, newest first, and the
// total number of live articles.
func (r *PgxArticleRepository) ListArticles(ctx context.Context, limit, offset int) (*domain.ArticlePage, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles WHERE NOT is_deleted;`).Scan(&total); err != nil {
		return nil, apperrors.NewAppError("failed to count articles", err)
	}

	query := articleSelect + `
		WHERE NOT a.is_deleted
		ORDER BY a.created_at DESC, a.updated_at DESC, a.article_no DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError("failed to query articles", err)
	}
	defer rows.Close()

	modelArticles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Article, error) {
		return scanArticle(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError("failed to scan articles", err)
	}

	return &domain.ArticlePage{
		Articles: mapping.ToDomainArticleSlice(modelArticles),
		Total:    total,
	}, nil
}

// LiveArticleExists reports whether a live article already pairs the currency with the provider.
func (r *PgxArticleRepository) LiveArticleExists(ctx context.Context, currencyID, providerNo string, excludeArticleNo int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM articles
			WHERE currency_id = upper($1) AND provider_no = $2 AND article_no <> $3 AND NOT is_deleted
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, currencyID, providerNo, excludeArticleNo).Scan(&exists); err != nil {
		return false, apperrors.NewAppError("failed to check article pair", err)
	}
	return exists, nil
}

// CreateArticle allocates the next article number and persists the article.
func (r *PgxArticleRepository) CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	modelArticle := mapping.ToModelArticle(article)
	query := `
		INSERT INTO articles (article_no, currency_id, provider_no, price)
		VALUES ($1, $2, $3, $4);
	`

	var created *domain.Article
	_, err := r.insertWithSequence(ctx, articleSequence, domain.FirstArticleNo, articlesPKey,
		func(ctx context.Context, tx pgx.Tx, value int64) error {
			if _, err := tx.Exec(ctx, query, value, modelArticle.CurrencyID, modelArticle.ProviderNo, modelArticle.Price); err != nil {
				return err
			}
			var err error
			created, err = r.findArticle(ctx, tx, value)
			return err
		})
	if err != nil {
		return nil, translateError(err, "failed to create article")
	}
	return created, nil
}

// UpdateArticle writes the mutable fields of a live article.
func (r *PgxArticleRepository) UpdateArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	modelArticle := mapping.ToModelArticle(article)
	query := `
		UPDATE articles
		SET currency_id = $2, provider_no = $3, price = $4, updated_at = NOW()
		WHERE article_no = $1 AND NOT is_deleted;
	`
	tag, err := r.Pool.Exec(ctx, query, modelArticle.ArticleNo, modelArticle.CurrencyID, modelArticle.ProviderNo, modelArticle.Price)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to update article %d", article.ArticleNo))
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindArticleByNo(ctx, article.ArticleNo)
}

// SoftDeleteArticle flags a live article as deleted.
func (r *PgxArticleRepository) SoftDeleteArticle(ctx context.Context, articleNo int64) error {
	query := `UPDATE articles SET is_deleted = TRUE, updated_at = NOW() WHERE article_no = $1 AND NOT is_deleted;`
	tag, err := r.Pool.Exec(ctx, query, articleNo)
	if err != nil {
		return apperrors.NewAppError(fmt.Sprintf("failed to delete article %d", articleNo), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
