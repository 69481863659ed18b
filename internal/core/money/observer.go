package money

import (
	"log/slog"

	"github.com/SscSPs/money_field/internal/core/domain"
)

// EventKind names a notable formatter event.
type EventKind string

const (
	// EventConfigResolved fires when a formatter is built from a resolved configuration.
	EventConfigResolved EventKind = "config_resolved"
	// EventParseFallback fires when locale-aware parsing failed and the permissive pass ran.
	EventParseFallback EventKind = "parse_fallback"
	// EventParseDegraded fires when input could not be read at all and became zero.
	EventParseDegraded EventKind = "parse_degraded"
	// EventStateDegraded fires when a stored value could not be read as an amount.
	EventStateDegraded EventKind = "state_degraded"
)

// Event is passed to an Observer.
type Event struct {
	Kind   EventKind
	Input  string
	Config domain.FormatConfig
}

// Observer receives formatter events. It must be safe for concurrent use.
type Observer func(Event)

// LogObserver reports events to logger: configuration at debug, degraded input at warn.
func LogObserver(logger *slog.Logger) Observer {
	return func(e Event) {
		attrs := []any{
			slog.String("event", string(e.Kind)),
			slog.String("currency", e.Config.CurrencyCode),
			slog.String("locale", e.Config.Locale),
			slog.Int("decimal_digits", e.Config.DecimalDigits),
		}
		switch e.Kind {
		case EventConfigResolved:
			logger.Debug("Money format configuration resolved", append(attrs, slog.String("symbol_placement", string(e.Config.SymbolPlacement)))...)
		case EventParseFallback:
			logger.Debug("Money parse fell back to permissive mode", append(attrs, slog.String("input", e.Input))...)
		default:
			logger.Warn("Money value degraded to zero", append(attrs, slog.String("input", e.Input))...)
		}
	}
}
