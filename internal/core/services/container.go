package services

import (
	portsrepo "github.com/SscSPs/money_field/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_field/internal/core/ports/services"
	"github.com/SscSPs/money_field/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	defaults := cfg.FormatDefaults()
	return &portssvc.ServiceContainer{
		Currency:   NewCurrencyService(repos.CurrencyRepo, defaults.Locale),
		MoneyField: NewMoneyFieldService(defaults, cfg.Money.StrictParse),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade   = (*CurrencyService)(nil)
	_ portssvc.MoneyFieldSvcFacade = (*MoneyFieldService)(nil)
)
