package dto

import (
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,min=3,max=5"`
	Name         string `json:"name" binding:"required"`
	Symbol       string `json:"symbol" binding:"required"`
	Precision    int32  `json:"precision" binding:"min=0,max=6"`
	IsBase       bool   `json:"isBase"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string    `json:"currencyCode"`
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	Precision     int32     `json:"precision"`
	IsBase        bool      `json:"isBase"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Name:          curr.Name,
		Symbol:        curr.Symbol,
		Precision:     curr.Precision,
		IsBase:        curr.IsBase,
		IsActive:      curr.IsActive,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}

// CreateDenominationRequest defines the data needed to register a denomination.
type CreateDenominationRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,min=3,max=5"`
	Value        int64  `json:"value" binding:"required,gt=0"`
}

// DenominationResponse defines the data returned for a denomination.
type DenominationResponse struct {
	DenominationID string    `json:"denominationID"`
	CurrencyCode   string    `json:"currencyCode"`
	Value          int64     `json:"value"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy  string    `json:"lastUpdatedBy"`
}

// ToDenominationResponse converts a domain.Denomination to DenominationResponse DTO
func ToDenominationResponse(den *domain.Denomination) DenominationResponse {
	return DenominationResponse{
		DenominationID: den.DenominationID,
		CurrencyCode:   den.CurrencyCode,
		Value:          den.Value,
		IsActive:       den.IsActive,
		CreatedAt:      den.CreatedAt,
		CreatedBy:      den.CreatedBy,
		LastUpdatedAt:  den.LastUpdatedAt,
		LastUpdatedBy:  den.LastUpdatedBy,
	}
}

// ToListDenominationResponse converts a slice of domain.Denomination to DTOs
func ToListDenominationResponse(dens []domain.Denomination) []DenominationResponse {
	res := make([]DenominationResponse, len(dens))
	for i, den := range dens {
		res[i] = ToDenominationResponse(&den)
	}
	return res
}
