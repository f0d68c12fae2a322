package domain

import "github.com/shopspring/decimal"

// Rate is the live pricing record for one foreign currency. At most one active
// Rate may exist per currency; activation changes go through the service layer.
type Rate struct {
	RateID         string          `json:"rateID"`       // Primary Key (UUID)
	CurrencyCode   string          `json:"currencyCode"` // FK -> Currency (foreign leg)
	BasePrice      decimal.Decimal `json:"basePrice"`    // market price, 10dp precision
	CommissionBuy  decimal.Decimal `json:"commissionBuy"`
	CommissionSell decimal.Decimal `json:"commissionSell"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// RateHistory is an append-only snapshot written in the same transaction as
// every Rate mutation. Never updated or deleted.
type RateHistory struct {
	RateHistoryID  string          `json:"rateHistoryID"`
	RateID         string          `json:"rateID"`
	CurrencyCode   string          `json:"currencyCode"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	CommissionBuy  decimal.Decimal `json:"commissionBuy"`
	CommissionSell decimal.Decimal `json:"commissionSell"`
	BuyRate        decimal.Decimal `json:"buyRate"`  // derived public buy rate at change time
	SellRate       decimal.Decimal `json:"sellRate"` // derived public sell rate at change time
	AuditFields
}
