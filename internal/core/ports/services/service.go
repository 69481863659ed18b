package services

// ServiceContainer holds instances of all the application services.
// It is the entry point the handlers use to reach service functionality.
type ServiceContainer struct {
	Currency   CurrencySvcFacade
	MoneyField MoneyFieldSvcFacade
}
