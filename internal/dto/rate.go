package dto

import (
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRateRequest defines the data needed to create a rate configuration
// for a foreign currency.
type CreateRateRequest struct {
	CurrencyCode   string          `json:"currencyCode" binding:"required,uppercase,min=3,max=5"`
	BasePrice      decimal.Decimal `json:"basePrice" binding:"required"`
	CommissionBuy  decimal.Decimal `json:"commissionBuy"`
	CommissionSell decimal.Decimal `json:"commissionSell"`
}

// UpdateRateRequest defines the data allowed for updating a rate configuration.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateRateRequest struct {
	BasePrice      *decimal.Decimal `json:"basePrice"`
	CommissionBuy  *decimal.Decimal `json:"commissionBuy"`
	CommissionSell *decimal.Decimal `json:"commissionSell"`
}

// RateResponse defines the data returned for a rate configuration.
type RateResponse struct {
	RateID         string          `json:"rateID"`
	CurrencyCode   string          `json:"currencyCode"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	CommissionBuy  decimal.Decimal `json:"commissionBuy"`
	CommissionSell decimal.Decimal `json:"commissionSell"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToRateResponse converts a domain.Rate to RateResponse DTO
func ToRateResponse(rate *domain.Rate) RateResponse {
	return RateResponse{
		RateID:         rate.RateID,
		CurrencyCode:   rate.CurrencyCode,
		BasePrice:      rate.BasePrice,
		CommissionBuy:  rate.CommissionBuy,
		CommissionSell: rate.CommissionSell,
		IsActive:       rate.IsActive,
		CreatedAt:      rate.CreatedAt,
		CreatedBy:      rate.CreatedBy,
		LastUpdatedAt:  rate.LastUpdatedAt,
		LastUpdatedBy:  rate.LastUpdatedBy,
	}
}

// ToListRateResponse converts a slice of domain.Rate to a slice of RateResponse DTOs
func ToListRateResponse(rates []domain.Rate) []RateResponse {
	res := make([]RateResponse, len(rates))
	for i, rate := range rates {
		res[i] = ToRateResponse(&rate)
	}
	return res
}

// RateHistoryResponse defines one append-only rate snapshot.
type RateHistoryResponse struct {
	RateHistoryID  string          `json:"rateHistoryID"`
	RateID         string          `json:"rateID"`
	CurrencyCode   string          `json:"currencyCode"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	CommissionBuy  decimal.Decimal `json:"commissionBuy"`
	CommissionSell decimal.Decimal `json:"commissionSell"`
	BuyRate        decimal.Decimal `json:"buyRate"`
	SellRate       decimal.Decimal `json:"sellRate"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ToRateHistoryResponse converts a domain.RateHistory to RateHistoryResponse DTO
func ToRateHistoryResponse(h *domain.RateHistory) RateHistoryResponse {
	return RateHistoryResponse{
		RateHistoryID:  h.RateHistoryID,
		RateID:         h.RateID,
		CurrencyCode:   h.CurrencyCode,
		BasePrice:      h.BasePrice,
		CommissionBuy:  h.CommissionBuy,
		CommissionSell: h.CommissionSell,
		BuyRate:        h.BuyRate,
		SellRate:       h.SellRate,
		CreatedAt:      h.CreatedAt,
		CreatedBy:      h.CreatedBy,
	}
}

// ToListRateHistoryResponse converts a slice of domain.RateHistory to DTOs
func ToListRateHistoryResponse(hs []domain.RateHistory) []RateHistoryResponse {
	res := make([]RateHistoryResponse, len(hs))
	for i, h := range hs {
		res[i] = ToRateHistoryResponse(&h)
	}
	return res
}
