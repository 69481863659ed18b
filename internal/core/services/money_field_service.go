package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/money_field/internal/apperrors"
	"github.com/SscSPs/money_field/internal/components"
	"github.com/SscSPs/money_field/internal/core/domain"
	"github.com/SscSPs/money_field/internal/core/money"
	"github.com/SscSPs/money_field/internal/dto"
)

const defaultFieldName = "amount"

// MoneyFieldService evaluates money components on behalf of remote hosts. Each
// request builds its component from the server defaults and the request settings.
type MoneyFieldService struct {
	BaseService
	defaults domain.FormatConfig
	strict   bool
}

func NewMoneyFieldService(defaults domain.FormatConfig, strict bool) *MoneyFieldService {
	return &MoneyFieldService{defaults: defaults, strict: strict}
}

// stateComponent is satisfied by every money component.
type stateComponent interface {
	components.StateFormatter
	components.RangeChecker
	Formatter(rc components.ResolveContext) (*money.Formatter, error)
}

func fieldName(settings dto.FieldSettings) string {
	if settings.Name == "" {
		return defaultFieldName
	}
	return settings.Name
}

func (s *MoneyFieldService) options(ctx context.Context, settings dto.FieldSettings) []components.Option {
	opts := []components.Option{
		components.WithDefaults(s.defaults),
		components.WithObserver(s.Observer(ctx)),
	}
	if settings.Currency != "" {
		opts = append(opts, components.WithCurrency(components.Value(settings.Currency)))
	}
	if settings.Locale != "" {
		opts = append(opts, components.WithLocale(components.Value(settings.Locale)))
	}
	if settings.Decimals != nil {
		opts = append(opts, components.WithDecimals(components.Value(*settings.Decimals)))
	}
	if settings.SymbolPlacement != "" {
		opts = append(opts, components.WithSymbolPlacement(settings.SymbolPlacement))
	}
	if settings.MinValue != nil {
		opts = append(opts, components.WithMinValue(*settings.MinValue))
	}
	if settings.MaxValue != nil {
		opts = append(opts, components.WithMaxValue(*settings.MaxValue))
	}
	if settings.Step != nil {
		opts = append(opts, components.WithStep(*settings.Step))
	}
	return opts
}

func (s *MoneyFieldService) newInput(ctx context.Context, settings dto.FieldSettings) (*components.MoneyInput, error) {
	input, err := components.NewMoneyInput(fieldName(settings), s.options(ctx, settings)...)
	if err != nil {
		return nil, err
	}
	if settings.HideCurrencySymbol {
		input.HideCurrencySymbol()
	}
	strict := s.strict
	if settings.Strict != nil {
		strict = *settings.Strict
	}
	if strict {
		input.StrictParse()
	}
	return input, nil
}

func (s *MoneyFieldService) newComponent(ctx context.Context, settings dto.FieldSettings) (stateComponent, error) {
	name := fieldName(settings)
	switch settings.Component {
	case dto.ComponentColumn:
		column, err := components.NewMoneyColumn(name, s.options(ctx, settings)...)
		if err != nil {
			return nil, err
		}
		column.HideCurrencySymbol(settings.HideCurrencySymbol)
		if settings.Short {
			column.Short()
		}
		return column, nil
	case dto.ComponentEntry:
		entry, err := components.NewMoneyEntry(name, s.options(ctx, settings)...)
		if err != nil {
			return nil, err
		}
		entry.HideCurrencySymbol(settings.HideCurrencySymbol)
		if settings.Short {
			entry.Short()
		}
		return entry, nil
	case "", dto.ComponentInput:
		return s.newInput(ctx, settings)
	default:
		return nil, fmt.Errorf("%w: unknown component %q", apperrors.ErrValidation, settings.Component)
	}
}

// FormatState renders req.State through the requested component. Inputs also
// report the prefix and suffix they would display around the text.
func (s *MoneyFieldService) FormatState(ctx context.Context, req dto.FormatStateRequest) (*dto.FormatStateResponse, error) {
	component, err := s.newComponent(ctx, req.FieldSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to configure money field in service: %w", err)
	}
	rc := components.ResolveContext{Ctx: ctx, Field: fieldName(req.FieldSettings)}

	f, err := component.Formatter(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to configure money field in service: %w", err)
	}
	formatted, err := component.FormatState(rc, req.State)
	if err != nil {
		return nil, fmt.Errorf("failed to format state in service: %w", err)
	}

	resp := &dto.FormatStateResponse{Formatted: formatted, Config: f.Config()}
	if input, ok := component.(*components.MoneyInput); ok {
		if resp.Prefix, resp.Suffix, err = input.Affixes(rc); err != nil {
			return nil, fmt.Errorf("failed to resolve affixes in service: %w", err)
		}
		resp.Step = input.Step()
	}
	return resp, nil
}

// DehydrateState converts req.Value into minor units and checks the
// configured bounds. Only inputs accept submitted values.
func (s *MoneyFieldService) DehydrateState(ctx context.Context, req dto.DehydrateStateRequest) (*dto.DehydrateStateResponse, error) {
	if req.Component != "" && req.Component != dto.ComponentInput {
		return nil, fmt.Errorf("%w: component %q is read-only", apperrors.ErrValidation, req.Component)
	}
	input, err := s.newInput(ctx, req.FieldSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to configure money field in service: %w", err)
	}
	rc := components.ResolveContext{Ctx: ctx, Field: input.Name()}

	f, err := input.Formatter(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to configure money field in service: %w", err)
	}
	stored, err := input.DehydrateState(rc, req.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to dehydrate state in service: %w", err)
	}

	if stored != nil {
		amount, err := strconv.ParseInt(*stored, 10, 64)
		if err != nil {
			s.LogError(ctx, err, "Dehydrated value is not an integer", slog.String("value", *stored))
			return nil, fmt.Errorf("failed to dehydrate state in service: %w", err)
		}
		if err := input.CheckRange(amount); err != nil {
			return nil, err
		}
	}
	return &dto.DehydrateStateResponse{MinorUnits: stored, Config: f.Config()}, nil
}
