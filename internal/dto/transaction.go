package dto

import (
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to open an exchange
// transaction. Pricing parameters are resolved server-side at creation time.
type CreateTransactionRequest struct {
	OriginCurrencyCode      string          `json:"originCurrencyCode" binding:"required,uppercase,min=3,max=5"`
	DestinationCurrencyCode string          `json:"destinationCurrencyCode" binding:"required,uppercase,min=3,max=5"`
	Amount                  decimal.Decimal `json:"amount" binding:"required"`
	ClientID                *string         `json:"clientID" binding:"omitempty,uuid"`
	MethodDetailID          *string         `json:"methodDetailID" binding:"omitempty,uuid"`
	TerminalID              *string         `json:"terminalID" binding:"omitempty,uuid"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID      string          `json:"transactionID"`
	ClientID           *string         `json:"clientID,omitempty"`
	HouseSide          string          `json:"houseSide"`
	SourceCurrencyCode string          `json:"sourceCurrencyCode"`
	DestCurrencyCode   string          `json:"destCurrencyCode"`
	SourceAmount       decimal.Decimal `json:"sourceAmount"`
	DestAmount         decimal.Decimal `json:"destAmount"`
	MarketRate         decimal.Decimal `json:"marketRate"`
	AppliedRate        decimal.Decimal `json:"appliedRate"`
	MethodDetailID     *string         `json:"methodDetailID,omitempty"`
	Status             string          `json:"status"`
	TerminalID         *string         `json:"terminalID,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy      string          `json:"lastUpdatedBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:      t.TransactionID,
		ClientID:           t.ClientID,
		HouseSide:          string(t.HouseSide),
		SourceCurrencyCode: t.SourceCurrencyCode,
		DestCurrencyCode:   t.DestCurrencyCode,
		SourceAmount:       t.SourceAmount,
		DestAmount:         t.DestAmount,
		MarketRate:         t.MarketRate,
		AppliedRate:        t.AppliedRate,
		MethodDetailID:     t.MethodDetailID,
		Status:             string(t.Status),
		TerminalID:         t.TerminalID,
		CreatedAt:          t.CreatedAt,
		CreatedBy:          t.CreatedBy,
		LastUpdatedAt:      t.LastUpdatedAt,
		LastUpdatedBy:      t.LastUpdatedBy,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs
func ToListTransactionResponse(ts []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}
