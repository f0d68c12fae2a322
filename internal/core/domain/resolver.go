package domain

import (
	"fmt"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
)

// ResolveDirection determines the operation direction for a currency pair.
// Exactly one of origin/destination must be the base currency: if origin is
// base the client is buying foreign currency (the house sells); if destination
// is base the client is selling (the house buys).
func ResolveDirection(origin, destination Currency) (OperationDirection, error) {
	if origin.CurrencyCode == destination.CurrencyCode {
		return OperationDirection{}, fmt.Errorf("%w: %s/%s", apperrors.ErrInvalidCurrencyPair, origin.CurrencyCode, destination.CurrencyCode)
	}
	if origin.IsBase == destination.IsBase {
		// both base or both foreign
		return OperationDirection{}, fmt.Errorf("%w: %s/%s", apperrors.ErrInvalidCurrencyPair, origin.CurrencyCode, destination.CurrencyCode)
	}

	if origin.IsBase {
		return OperationDirection{
			Client:          Buy,
			House:           Sell,
			ForeignCurrency: destination.CurrencyCode,
			OriginIsBase:    true,
		}, nil
	}
	return OperationDirection{
		Client:          Sell,
		House:           Buy,
		ForeignCurrency: origin.CurrencyCode,
	}, nil
}
