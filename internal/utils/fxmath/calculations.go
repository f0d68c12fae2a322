// Package fxmath holds the pure rate and profit arithmetic of the exchange
// core. All values are shopspring decimals, never float64, and rounding
// happens exactly once, at presentation, via RoundRate/RoundAmount.
package fxmath

import (
	"fmt"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// RateScale is the number of fractional digits of a presented rate.
	RateScale int32 = 4
	// AmountScale is the number of fractional digits of a presented amount.
	AmountScale int32 = 2
)

var oneHundred = decimal.NewFromInt(100)

// pctFactor returns pct/100.
func pctFactor(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(oneHundred)
}

// HouseBuyRate computes the applied per-unit rate when the house buys foreign
// currency (the client sells):
//
//	base_price * (1 - method_pct/100) - commission_base * (1 - discount_pct/100)
//
// The discount scales the commission base only, never the market price.
// Public quotes pass discountPct = 0.
func HouseBuyRate(basePrice, commissionBase, methodPct, discountPct decimal.Decimal) (decimal.Decimal, error) {
	rate := basePrice.Mul(decimal.NewFromInt(1).Sub(pctFactor(methodPct))).
		Sub(commissionBase.Mul(decimal.NewFromInt(1).Sub(pctFactor(discountPct))))
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: house buy rate %s", apperrors.ErrInvalidRate, rate.String())
	}
	return rate, nil
}

// HouseSellRate computes the applied per-unit rate when the house sells foreign
// currency (the client buys):
//
//	base_price * (1 + method_pct/100) + commission_base * (1 - discount_pct/100)
func HouseSellRate(basePrice, commissionBase, methodPct, discountPct decimal.Decimal) (decimal.Decimal, error) {
	rate := basePrice.Mul(decimal.NewFromInt(1).Add(pctFactor(methodPct))).
		Add(commissionBase.Mul(decimal.NewFromInt(1).Sub(pctFactor(discountPct))))
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: house sell rate %s", apperrors.ErrInvalidRate, rate.String())
	}
	return rate, nil
}

// Convert derives the destination amount from the origin amount and the
// unrounded applied rate. When the house buys, the client delivers foreign
// units and receives originAmount*rate in base currency; when the house sells,
// the client delivers base currency and receives originAmount/rate foreign units.
func Convert(houseSide domain.OperationSide, originAmount, appliedRate decimal.Decimal) (decimal.Decimal, error) {
	if appliedRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: applied rate %s", apperrors.ErrInvalidRate, appliedRate.String())
	}
	if houseSide == domain.Buy {
		return originAmount.Mul(appliedRate), nil
	}
	return originAmount.Div(appliedRate), nil
}

// RoundRate rounds a rate for presentation. Intermediate math must stay unrounded.
func RoundRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Round(RateScale)
}

// RoundAmount rounds a monetary amount for presentation.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountScale)
}

// MarginPerUnit is the house earning per foreign-currency unit: market minus
// applied when the house bought, applied minus market when it sold.
func MarginPerUnit(houseSide domain.OperationSide, marketRate, appliedRate decimal.Decimal) decimal.Decimal {
	if houseSide == domain.Buy {
		return marketRate.Sub(appliedRate)
	}
	return appliedRate.Sub(marketRate)
}

// NetProfit is the total earning of a completed transaction.
func NetProfit(houseSide domain.OperationSide, marketRate, appliedRate, foreignAmount decimal.Decimal) decimal.Decimal {
	return MarginPerUnit(houseSide, marketRate, appliedRate).Mul(foreignAmount)
}
