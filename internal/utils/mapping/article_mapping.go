package mapping

import (
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/SscSPs/price_listing_app/internal/models"
)

// ToModelArticle converts a domain Article to a model Article
func ToModelArticle(d domain.Article) models.Article {
	return models.Article{
		ArticleNo:    d.ArticleNo,
		CurrencyID:   d.CurrencyID,
		ProviderNo:   d.ProviderNo,
		Price:        d.Price,
		CurrencyName: d.CurrencyName,
		ProviderName: d.ProviderName,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainArticle converts a model Article to a domain Article
func ToDomainArticle(m models.Article) domain.Article {
	return domain.Article{
		ArticleNo:    m.ArticleNo,
		CurrencyID:   m.CurrencyID,
		ProviderNo:   m.ProviderNo,
		Price:        m.Price,
		CurrencyName: m.CurrencyName,
		ProviderName: m.ProviderName,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainArticleSlice converts a slice of model Articles to a slice of domain Articles
func ToDomainArticleSlice(ms []models.Article) []domain.Article {
	ds := make([]domain.Article, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainArticle(m)
	}
	return ds
}
