package mapping

import (
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/SscSPs/price_listing_app/internal/models"
)

// ToModelProvider converts a domain Provider to a model Provider
func ToModelProvider(d domain.Provider) models.Provider {
	return models.Provider{
		ProviderNo:   d.ProviderNo,
		ProviderName: d.ProviderName,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProvider converts a model Provider to a domain Provider
func ToDomainProvider(m models.Provider) domain.Provider {
	return domain.Provider{
		ProviderNo:   m.ProviderNo,
		ProviderName: m.ProviderName,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProviderSlice converts a slice of model Providers to a slice of domain Providers
func ToDomainProviderSlice(ms []models.Provider) []domain.Provider {
	ds := make([]domain.Provider, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProvider(m)
	}
	return ds
}
