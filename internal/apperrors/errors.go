package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// Every configuration error below wraps it so callers can test a single sentinel.
var ErrValidation = errors.New("validation error")

// ErrInvalidCurrency indicates a currency code outside the ISO 4217 table.
var ErrInvalidCurrency = errors.New("invalid currency code")

// ErrInvalidLocale indicates a locale identifier that is not well-formed or unknown.
var ErrInvalidLocale = errors.New("invalid locale")

// ErrInvalidPlacement indicates a symbol placement other than before, after or hidden.
var ErrInvalidPlacement = errors.New("currency symbol placement must be one of: before, after, hidden")

// ErrInvalidDecimals indicates a decimal digit count outside the supported range.
var ErrInvalidDecimals = errors.New("invalid decimal digits")

// ErrMalformedAmount is returned by strict parsing when amount text cannot be read.
// Lenient parsing never returns it and degrades to zero instead.
var ErrMalformedAmount = errors.New("malformed amount")

// ErrOutOfRange indicates an amount outside a component's min/max bounds.
var ErrOutOfRange = errors.New("amount out of range")
