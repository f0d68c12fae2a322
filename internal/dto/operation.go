package dto

import (
	"github.com/shopspring/decimal"
)

// ComputeOperationRequest defines the inputs for pricing an exchange
// operation. Exactly one of MethodID/MethodDetailID may be given; with
// neither, the operation is priced without a method commission. ClientID is
// optional; without it the public rate applies.
type ComputeOperationRequest struct {
	OriginCurrencyCode      string          `json:"originCurrencyCode" binding:"required,uppercase,min=3,max=5"`
	DestinationCurrencyCode string          `json:"destinationCurrencyCode" binding:"required,uppercase,min=3,max=5"`
	Amount                  decimal.Decimal `json:"amount" binding:"required"`
	ClientID                *string         `json:"clientID" binding:"omitempty,uuid"`
	MethodID                *string         `json:"methodID" binding:"omitempty,uuid"`
	MethodDetailID          *string         `json:"methodDetailID" binding:"omitempty,uuid"`
}

// ComputeOperationResponse is a priced quote: the resolved direction, the
// applied rate and the destination amount, plus the parameters that produced
// them.
type ComputeOperationResponse struct {
	ClientSide              string          `json:"clientSide"`
	HouseSide               string          `json:"houseSide"`
	OriginCurrencyCode      string          `json:"originCurrencyCode"`
	DestinationCurrencyCode string          `json:"destinationCurrencyCode"`
	ForeignCurrencyCode     string          `json:"foreignCurrencyCode"`
	OriginAmount            decimal.Decimal `json:"originAmount"`
	DestinationAmount       decimal.Decimal `json:"destinationAmount"`
	MarketRate              decimal.Decimal `json:"marketRate"`
	AppliedRate             decimal.Decimal `json:"appliedRate"`
	CommissionBase          decimal.Decimal `json:"commissionBase"`
	MethodCommissionPct     decimal.Decimal `json:"methodCommissionPct"`
	DiscountPct             decimal.Decimal `json:"discountPct"`
}
