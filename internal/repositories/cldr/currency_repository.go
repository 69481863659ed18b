package cldr

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/money_field/internal/apperrors"
	"github.com/SscSPs/money_field/internal/core/domain"
	"github.com/SscSPs/money_field/internal/core/money"
	portsrepo "github.com/SscSPs/money_field/internal/core/ports/repositories"
	lru "github.com/hashicorp/golang-lru/v2"
)

// listCacheSize bounds the number of locales whose currency list is kept.
const listCacheSize = 64

// CurrencyRepository serves the ISO 4217 table bundled with the CLDR data.
// Lists are built once per locale and reused.
type CurrencyRepository struct {
	lists *lru.Cache[string, []domain.Currency]
}

func newCurrencyRepository(size int) (*CurrencyRepository, error) {
	lists, err := lru.New[string, []domain.Currency](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency list cache: %w", err)
	}
	return &CurrencyRepository{lists: lists}, nil
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

// FindCurrencyByCode returns apperrors.ErrNotFound for codes outside ISO 4217.
func (r *CurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode, locale string) (*domain.Currency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	curr, err := money.LookupCurrency(currencyCode, locale)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCurrency) {
			return nil, fmt.Errorf("%w: currency %q", apperrors.ErrNotFound, currencyCode)
		}
		return nil, fmt.Errorf("failed to look up currency %s: %w", currencyCode, err)
	}
	return &curr, nil
}

// ListCurrencies returns a copy of the cached list for locale.
func (r *CurrencyRepository) ListCurrencies(ctx context.Context, locale string) ([]domain.Currency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cached, ok := r.lists.Get(locale)
	if !ok {
		list, err := money.KnownCurrencies(locale)
		if err != nil {
			return nil, fmt.Errorf("failed to list currencies: %w", err)
		}
		r.lists.Add(locale, list)
		cached = list
	}

	out := make([]domain.Currency, len(cached))
	copy(out, cached)
	return out, nil
}
