package repositories

import (
	"context"

	"github.com/SscSPs/money_field/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code, with the
	// symbol as displayed in locale.
	FindCurrencyByCode(ctx context.Context, currencyCode, locale string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context, locale string) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
