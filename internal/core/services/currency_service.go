package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_field/internal/core/domain"
	portsrepo "github.com/SscSPs/money_field/internal/core/ports/repositories"
)

type CurrencyService struct {
	BaseService
	currencyRepo  portsrepo.CurrencyReader
	defaultLocale string
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyReader, defaultLocale string) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo, defaultLocale: defaultLocale}
}

func (s *CurrencyService) locale(locale string) string {
	if locale == "" {
		return s.defaultLocale
	}
	return locale
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode, locale string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode, s.locale(locale))
	if err != nil {
		s.LogDebug(ctx, "Currency lookup failed", slog.String("currency_code", currencyCode), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context, locale string) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, s.locale(locale))
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
