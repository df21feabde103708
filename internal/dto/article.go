package dto

import (
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/SscSPs/price_listing_app/internal/utils"
	"github.com/SscSPs/price_listing_app/internal/validation"
)

// CreateArticleRequest defines the data needed to create a new article.
// Keys may arrive as JSON strings or numbers.
type CreateArticleRequest struct {
	CurrencyID FlexString `json:"currency_id" swaggertype:"string" example:"USD"`
	ProviderNo FlexString `json:"provider_no" swaggertype:"string" example:"0001"`
	Price      PriceInput `json:"price" binding:"required,price" swaggertype:"string" example:"100.50"`
}

// UpdateArticleRequest carries the article fields a partial update may change.
// The currency may be addressed as article_id or currency_id, the provider as
// provider_id or provider_no.
type UpdateArticleRequest struct {
	ArticleID  *FlexString `json:"article_id" swaggertype:"string"`
	CurrencyID *FlexString `json:"currency_id" swaggertype:"string"`
	ProviderID *FlexString `json:"provider_id" swaggertype:"string"`
	ProviderNo *FlexString `json:"provider_no" swaggertype:"string"`
	Price      *PriceInput `json:"price" binding:"omitnil,price" swaggertype:"string"`
}

// CurrencyKey returns the currency reference supplied, if any.
func (r UpdateArticleRequest) CurrencyKey() *string {
	return firstKey(r.ArticleID, r.CurrencyID)
}

// ProviderKey returns the provider reference supplied, if any.
// An explicit empty or null key is still returned so it can be rejected.
func (r UpdateArticleRequest) ProviderKey() *string {
	return firstKey(r.ProviderID, r.ProviderNo)
}

func firstKey(keys ...*FlexString) *string {
	for _, k := range keys {
		if k != nil {
			s := k.String()
			return &s
		}
	}
	return nil
}

// ArticleValidationMessages are the caller-facing texts for article rule failures.
var ArticleValidationMessages = validation.Messages{
	"price.required": validation.PriceMessage,
	"price.price":    validation.PriceMessage,
}

// ListArticlesParams defines the query parameters for listing articles.
type ListArticlesParams struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1"`
}

// ArticleResponse defines the data returned for an article.
type ArticleResponse struct {
	ArticleNo    int64  `json:"article_no" example:"101"`
	CurrencyID   string `json:"currency_id" example:"USD"`
	CurrencyName string `json:"currency_name" example:"dola"`
	ProviderNo   string `json:"provider_no" example:"0001"`
	ProviderName string `json:"provider_name" example:"Acme Rates"`
	Price        string `json:"price" example:"100.50"`
}

// ListArticlesResponse is one page of articles with links to its neighbours.
type ListArticlesResponse struct {
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []ArticleResponse `json:"results"`
}

// ToArticleResponse converts a domain.Article to ArticleResponse DTO
func ToArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleNo:    a.ArticleNo,
		CurrencyID:   a.CurrencyID,
		CurrencyName: a.CurrencyName,
		ProviderNo:   a.ProviderNo,
		ProviderName: a.ProviderName,
		Price:        utils.FormatPrice(a.Price),
	}
}

// ToListArticleResponse converts a slice of domain.Article to ArticleResponse DTOs
func ToListArticleResponse(articles []domain.Article) []ArticleResponse {
	res := make([]ArticleResponse, len(articles))
	for i := range articles {
		res[i] = ToArticleResponse(&articles[i])
	}
	return res
}
