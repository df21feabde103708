package dto

import (
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/SscSPs/price_listing_app/internal/validation"
)

// CreateProviderRequest defines the data needed to create a new provider.
type CreateProviderRequest struct {
	ProviderName string `json:"provider_name" binding:"required,max=50" example:"Acme Rates"`
}

// UpdateProviderRequest carries the provider fields a partial update may change.
type UpdateProviderRequest struct {
	ProviderName *string `json:"provider_name" binding:"omitnil,max=50"`
}

// ProviderValidationMessages are the caller-facing texts for provider rule failures.
var ProviderValidationMessages = validation.Messages{
	"provider_name.required": "Provider name cannot be empty",
	"provider_name.max":      "Provider name must not exceed 50 characters",
}

// ProviderResponse defines the data returned for a provider.
type ProviderResponse struct {
	ProviderNo   string `json:"provider_no" example:"0001"`
	ProviderName string `json:"provider_name" example:"Acme Rates"`
}

// ToProviderResponse converts a domain.Provider to ProviderResponse DTO
func ToProviderResponse(p *domain.Provider) ProviderResponse {
	return ProviderResponse{
		ProviderNo:   p.ProviderNo,
		ProviderName: p.ProviderName,
	}
}

// ToListProviderResponse converts a slice of domain.Provider to ProviderResponse DTOs
func ToListProviderResponse(providers []domain.Provider) []ProviderResponse {
	res := make([]ProviderResponse, len(providers))
	for i := range providers {
		res[i] = ToProviderResponse(&providers[i])
	}
	return res
}
