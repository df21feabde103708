package services

import (
	portsrepo "github.com/SscSPs/price_listing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/price_listing_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Provider: NewProviderService(repos.ProviderRepo),
		Currency: NewCurrencyService(repos.CurrencyRepo),
		Article:  NewArticleService(repos.ArticleRepo, repos.CurrencyRepo, repos.ProviderRepo),
	}
}
