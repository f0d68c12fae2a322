package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	portssvc "github.com/cambiosys/currency_exchange_app/internal/core/ports/services"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/cambiosys/currency_exchange_app/internal/utils/fxmath"
	"github.com/shopspring/decimal"
)

// operationService prices exchange operations. It orchestrates the direction
// resolver, the rate engine, the method commission and the client discount;
// it never writes anything.
type operationService struct {
	currencySvc portssvc.CurrencyReaderSvc
	rateSvc     portssvc.RateReaderSvc
	methodSvc   portssvc.MethodReaderSvc
	clientSvc   portssvc.ClientReaderSvc
}

// NewOperationService creates a new operation pricing service.
func NewOperationService(
	currencySvc portssvc.CurrencyReaderSvc,
	rateSvc portssvc.RateReaderSvc,
	methodSvc portssvc.MethodReaderSvc,
	clientSvc portssvc.ClientReaderSvc,
) portssvc.OperationSvcFacade {
	return &operationService{
		currencySvc: currencySvc,
		rateSvc:     rateSvc,
		methodSvc:   methodSvc,
		clientSvc:   clientSvc,
	}
}

var _ portssvc.OperationSvcFacade = (*operationService)(nil)

func (s *operationService) lookupCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencySvc.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s not found", apperrors.ErrValidation, code)
		}
		return nil, fmt.Errorf("failed to look up currency %s: %w", code, err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: currency %s is inactive", apperrors.ErrValidation, code)
	}
	return currency, nil
}

// ComputeOperation prices one exchange operation. The applied rate and the
// destination amount are each rounded exactly once, at the end; every
// intermediate value keeps full precision.
func (s *operationService) ComputeOperation(ctx context.Context, req dto.ComputeOperationRequest) (*dto.ComputeOperationResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	origin, err := s.lookupCurrency(ctx, req.OriginCurrencyCode)
	if err != nil {
		return nil, err
	}
	destination, err := s.lookupCurrency(ctx, req.DestinationCurrencyCode)
	if err != nil {
		return nil, err
	}

	direction, err := domain.ResolveDirection(*origin, *destination)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateSvc.GetActiveRate(ctx, direction.ForeignCurrency)
	if err != nil {
		return nil, err
	}

	methodPct, _, err := s.methodSvc.ResolveCommission(ctx, req.MethodID, req.MethodDetailID)
	if err != nil {
		return nil, err
	}

	discountPct := decimal.Zero
	if req.ClientID != nil {
		discountPct, err = s.clientSvc.ResolveDiscount(ctx, *req.ClientID)
		if err != nil {
			return nil, err
		}
	}

	var commissionBase decimal.Decimal
	var appliedRate decimal.Decimal
	if direction.House == domain.Buy {
		commissionBase = rate.CommissionBuy
		appliedRate, err = fxmath.HouseBuyRate(rate.BasePrice, commissionBase, methodPct, discountPct)
	} else {
		commissionBase = rate.CommissionSell
		appliedRate, err = fxmath.HouseSellRate(rate.BasePrice, commissionBase, methodPct, discountPct)
	}
	if err != nil {
		return nil, err
	}

	destAmount, err := fxmath.Convert(direction.House, req.Amount, appliedRate)
	if err != nil {
		return nil, err
	}

	return &dto.ComputeOperationResponse{
		ClientSide:              string(direction.Client),
		HouseSide:               string(direction.House),
		OriginCurrencyCode:      origin.CurrencyCode,
		DestinationCurrencyCode: destination.CurrencyCode,
		ForeignCurrencyCode:     direction.ForeignCurrency,
		OriginAmount:            req.Amount,
		DestinationAmount:       fxmath.RoundAmount(destAmount),
		MarketRate:              rate.BasePrice,
		AppliedRate:             fxmath.RoundRate(appliedRate),
		CommissionBase:          commissionBase,
		MethodCommissionPct:     methodPct,
		DiscountPct:             discountPct,
	}, nil
}
