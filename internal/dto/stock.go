package dto

import (
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLocationRequest defines the data needed to register a stock location.
type CreateLocationRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=VAULT TERMINAL"`
}

// LocationResponse defines the data returned for a stock location.
type LocationResponse struct {
	LocationID    string    `json:"locationID"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToLocationResponse converts a domain.Location to LocationResponse DTO
func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		LocationID:    l.LocationID,
		Kind:          string(l.Kind),
		Name:          l.Name,
		IsActive:      l.IsActive,
		CreatedAt:     l.CreatedAt,
		CreatedBy:     l.CreatedBy,
		LastUpdatedAt: l.LastUpdatedAt,
		LastUpdatedBy: l.LastUpdatedBy,
	}
}

// ToListLocationResponse converts a slice of domain.Location to DTOs
func ToListLocationResponse(ls []domain.Location) []LocationResponse {
	res := make([]LocationResponse, len(ls))
	for i, l := range ls {
		res[i] = ToLocationResponse(&l)
	}
	return res
}

// StockEntryResponse defines one denomination's quantity at a location.
type StockEntryResponse struct {
	LocationID     string    `json:"locationID"`
	DenominationID string    `json:"denominationID"`
	Quantity       int64     `json:"quantity"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy  string    `json:"lastUpdatedBy"`
}

// ToStockEntryResponse converts a domain.StockEntry to StockEntryResponse DTO
func ToStockEntryResponse(e *domain.StockEntry) StockEntryResponse {
	return StockEntryResponse{
		LocationID:     e.LocationID,
		DenominationID: e.DenominationID,
		Quantity:       e.Quantity,
		LastUpdatedAt:  e.LastUpdatedAt,
		LastUpdatedBy:  e.LastUpdatedBy,
	}
}

// ToListStockEntryResponse converts a slice of domain.StockEntry to DTOs
func ToListStockEntryResponse(es []domain.StockEntry) []StockEntryResponse {
	res := make([]StockEntryResponse, len(es))
	for i, e := range es {
		res[i] = ToStockEntryResponse(&e)
	}
	return res
}

// CoverageResponse answers whether a terminal can pay out an exact amount.
type CoverageResponse struct {
	LocationID   string          `json:"locationID"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	CanCover     bool            `json:"canCover"`
}

// MovementDetailRequest is one caller-supplied denomination line.
type MovementDetailRequest struct {
	DenominationID string `json:"denominationID" binding:"required,uuid"`
	Quantity       int64  `json:"quantity" binding:"required,gt=0"`
}

// CreateMovementRequest defines the data needed to record a cash flow event.
// Amount may be omitted when a transaction is linked; detail lines are
// required except for client withdrawals, where the payout breakdown is
// allocated automatically.
type CreateMovementRequest struct {
	Type          string                  `json:"type" binding:"required,oneof=CLIENT_DEPOSIT HOUSE_DEPOSIT CLIENT_WITHDRAWAL HOUSE_WITHDRAWAL"`
	LocationID    string                  `json:"locationID" binding:"required,uuid"`
	CurrencyCode  string                  `json:"currencyCode" binding:"required,uppercase,min=3,max=5"`
	Amount        *decimal.Decimal        `json:"amount"`
	Details       []MovementDetailRequest `json:"details" binding:"omitempty,dive"`
	TransactionID *string                 `json:"transactionID" binding:"omitempty,uuid"`
}

// MovementDetailResponse is one denomination line of a recorded movement.
type MovementDetailResponse struct {
	DetailID       string `json:"detailID"`
	DenominationID string `json:"denominationID"`
	Quantity       int64  `json:"quantity"`
}

// MovementResponse defines the data returned for a stock movement.
type MovementResponse struct {
	MovementID    string                   `json:"movementID"`
	Type          string                   `json:"type"`
	LocationID    string                   `json:"locationID"`
	CurrencyCode  string                   `json:"currencyCode"`
	Amount        decimal.Decimal          `json:"amount"`
	Status        string                   `json:"status"`
	TransactionID *string                  `json:"transactionID,omitempty"`
	Details       []MovementDetailResponse `json:"details"`
	CreatedAt     time.Time                `json:"createdAt"`
	CreatedBy     string                   `json:"createdBy"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy string                   `json:"lastUpdatedBy"`
}

// ToMovementResponse converts a domain.StockMovement to MovementResponse DTO
func ToMovementResponse(m *domain.StockMovement) MovementResponse {
	details := make([]MovementDetailResponse, len(m.Details))
	for i, d := range m.Details {
		details[i] = MovementDetailResponse{
			DetailID:       d.DetailID,
			DenominationID: d.DenominationID,
			Quantity:       d.Quantity,
		}
	}
	return MovementResponse{
		MovementID:    m.MovementID,
		Type:          string(m.Type),
		LocationID:    m.LocationID,
		CurrencyCode:  m.CurrencyCode,
		Amount:        m.Amount,
		Status:        string(m.Status),
		TransactionID: m.TransactionID,
		Details:       details,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToListMovementResponse converts a slice of domain.StockMovement to DTOs
func ToListMovementResponse(ms []domain.StockMovement) []MovementResponse {
	res := make([]MovementResponse, len(ms))
	for i, m := range ms {
		res[i] = ToMovementResponse(&m)
	}
	return res
}
