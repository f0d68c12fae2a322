package domain

import "github.com/shopspring/decimal"

// Profit is the derived earnings record of one completed transaction.
// Created once, read-only thereafter.
type Profit struct {
	ProfitID      string          `json:"profitID"`      // Primary Key (UUID)
	TransactionID string          `json:"transactionID"` // unique FK -> Transaction
	NetProfit     decimal.Decimal `json:"netProfit"`
	MarketRate    decimal.Decimal `json:"marketRate"`
	AppliedRate   decimal.Decimal `json:"appliedRate"`
	ForeignAmount decimal.Decimal `json:"foreignAmount"`
	CurrencyCode  string          `json:"currencyCode"` // foreign currency classified for reporting
	MethodID      *string         `json:"methodID,omitempty"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	AuditFields
}
