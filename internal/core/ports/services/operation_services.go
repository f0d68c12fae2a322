package services

import (
	"context"

	"github.com/cambiosys/currency_exchange_app/internal/dto"
)

// OperationSvcFacade prices exchange operations. Computing an operation has no
// side effects; transactions persist the quote they were created from.
type OperationSvcFacade interface {
	// ComputeOperation resolves the direction of a currency pair, applies the
	// rate engine with method commission and client discount, and returns the
	// priced quote.
	ComputeOperation(ctx context.Context, req dto.ComputeOperationRequest) (*dto.ComputeOperationResponse, error)
}
