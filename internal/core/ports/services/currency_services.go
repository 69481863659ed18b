package services

import (
	"context"

	"github.com/SscSPs/money_field/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its ISO 4217 code, with
	// the symbol localized for locale. An empty locale uses the server default.
	GetCurrencyByCode(ctx context.Context, currencyCode, locale string) (*domain.Currency, error)

	// ListCurrencies retrieves all known currencies sorted by code.
	ListCurrencies(ctx context.Context, locale string) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
