package domain

import "github.com/shopspring/decimal"

// FirstArticleNo is the number given to the very first article.
const FirstArticleNo int64 = 101

// PriceScale is the number of fractional digits a price may carry.
const PriceScale = 2

// PriceMaxDigits is the total number of digits a stored price may carry.
const PriceMaxDigits = 16

// Article is a price quoted by one provider in one currency.
type Article struct {
	ArticleNo  int64           `json:"articleNo" db:"article_no"`
	CurrencyID string          `json:"currencyID" db:"currency_id"`
	ProviderNo string          `json:"providerNo" db:"provider_no"`
	Price      decimal.Decimal `json:"price" db:"price"`
	AuditFields

	// Resolved on reads, not stored on the article row.
	CurrencyName string `json:"currencyName,omitempty" db:"currency_name"`
	ProviderName string `json:"providerName,omitempty" db:"provider_name"`
}

// ArticlePage is one page of live articles plus the total live count.
type ArticlePage struct {
	Articles []Article
	Total    int64
}
