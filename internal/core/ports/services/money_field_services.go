package services

import (
	"context"

	"github.com/SscSPs/money_field/internal/dto"
)

// MoneyFieldReaderSvc renders stored minor units the way a component would.
type MoneyFieldReaderSvc interface {
	FormatState(ctx context.Context, req dto.FormatStateRequest) (*dto.FormatStateResponse, error)
}

// MoneyFieldWriterSvc converts submitted values into minor units for storage.
type MoneyFieldWriterSvc interface {
	DehydrateState(ctx context.Context, req dto.DehydrateStateRequest) (*dto.DehydrateStateResponse, error)
}

// MoneyFieldSvcFacade combines all money field service interfaces
type MoneyFieldSvcFacade interface {
	MoneyFieldReaderSvc
	MoneyFieldWriterSvc
}
