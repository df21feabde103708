package services

// ServiceContainer holds all the services the handlers depend on.
type ServiceContainer struct {
	Provider ProviderSvcFacade
	Currency CurrencySvcFacade
	Article  ArticleSvcFacade
}
