package dto

import (
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/SscSPs/price_listing_app/internal/validation"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	CurrencyID   string `json:"currency_id" binding:"required,max=5" example:"USD"`
	CurrencyName string `json:"currency_name" binding:"required,max=9" example:"dola"`
}

// UpdateCurrencyRequest carries the currency fields a partial update may change.
type UpdateCurrencyRequest struct {
	CurrencyName *string `json:"currency_name" binding:"omitnil,max=9"`
}

// CurrencyValidationMessages are the caller-facing texts for currency rule failures.
var CurrencyValidationMessages = validation.Messages{
	"currency_id.required":   "Currency id cannot be empty",
	"currency_id.max":        "Currency id must not exceed 5 characters",
	"currency_name.required": "Currency name cannot be empty",
	"currency_name.max":      "Currency name must not exceed 9 characters",
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID   string `json:"currency_id" example:"USD"`
	CurrencyName string `json:"currency_name" example:"dola"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:   curr.CurrencyID,
		CurrencyName: curr.CurrencyName,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
