package models

import "github.com/shopspring/decimal"

// Article is a row of the articles table joined with the names of the
// currency and provider it references.
type Article struct {
	ArticleNo    int64           `db:"article_no"`
	CurrencyID   string          `db:"currency_id"`
	ProviderNo   string          `db:"provider_no"`
	Price        decimal.Decimal `db:"price"`
	CurrencyName string          `db:"currency_name"`
	ProviderName string          `db:"provider_name"`
	AuditFields
}
