package dto

import (
	"github.com/SscSPs/money_field/internal/core/domain"
)

// Component kinds accepted by the money field endpoints.
const (
	ComponentInput  = "input"
	ComponentColumn = "column"
	ComponentEntry  = "entry"
)

// FieldSettings describes the component a request is evaluated against.
// Unset fields fall back to the server defaults.
type FieldSettings struct {
	Component          string `json:"component" binding:"omitempty,oneof=input column entry"`
	Name               string `json:"name"`
	Currency           string `json:"currency" binding:"omitempty,len=3"`
	Locale             string `json:"locale"`
	Decimals           *int   `json:"decimals" binding:"omitempty,min=0,max=18"`
	SymbolPlacement    string `json:"symbolPlacement" binding:"omitempty,oneof=before after hidden"`
	HideCurrencySymbol bool   `json:"hideCurrencySymbol"`
	Short              bool   `json:"short"`
	Strict             *bool  `json:"strict"`
	MinValue           *int64 `json:"minValue"`
	MaxValue           *int64 `json:"maxValue"`
	Step               *int64 `json:"step" binding:"omitempty,min=1"`
}

// FormatStateRequest carries a stored minor-unit value to be rendered.
type FormatStateRequest struct {
	FieldSettings
	State any `json:"state"`
}

// FormatStateResponse is the display text plus the affixes and step an input
// would show.
type FormatStateResponse struct {
	Formatted string              `json:"formatted"`
	Prefix    string              `json:"prefix"`
	Suffix    string              `json:"suffix"`
	Step      *int64              `json:"step,omitempty"`
	Config    domain.FormatConfig `json:"config"`
}

// DehydrateStateRequest carries user-submitted text (or a number) to be stored.
type DehydrateStateRequest struct {
	FieldSettings
	Value any `json:"value"`
}

// DehydrateStateResponse holds the minor-unit string; nil when the value was empty.
type DehydrateStateResponse struct {
	MinorUnits *string             `json:"minorUnits"`
	Config     domain.FormatConfig `json:"config"`
}
