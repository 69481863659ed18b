package components

import "github.com/SscSPs/money_field/internal/core/domain"

// StateFormatter is the read hook a host calls when populating a component from stored state.
type StateFormatter interface {
	FormatState(rc ResolveContext, raw any) (string, error)
}

// StateDehydrator is the write hook a host calls when persisting submitted state.
type StateDehydrator interface {
	DehydrateState(rc ResolveContext, raw any) (*string, error)
}

// RangeChecker exposes the min/max bounds so the host can validate amounts.
type RangeChecker interface {
	CheckRange(amount domain.MinorUnits) error
}

var (
	_ StateFormatter  = (*MoneyInput)(nil)
	_ StateDehydrator = (*MoneyInput)(nil)
	_ RangeChecker    = (*MoneyInput)(nil)
	_ StateFormatter  = (*MoneyColumn)(nil)
	_ StateFormatter  = (*MoneyEntry)(nil)
)
