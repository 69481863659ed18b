package cldr

import (
	portsrepo "github.com/SscSPs/money_field/internal/core/ports/repositories"
)

func NewRepositoryProvider() (portsrepo.RepositoryProvider, error) {
	currencyRepo, err := newCurrencyRepository(listCacheSize)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	return portsrepo.RepositoryProvider{
		CurrencyRepo: currencyRepo,
	}, nil
}
