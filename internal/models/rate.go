package models

import "github.com/shopspring/decimal"

// Rate is the pricing row for one foreign currency.
type Rate struct {
	RateID         string          `json:"rateID" db:"rate_id"`
	CurrencyCode   string          `json:"currencyCode" db:"currency_code"`
	BasePrice      decimal.Decimal `json:"basePrice" db:"base_price"`
	CommissionBuy  decimal.Decimal `json:"commissionBuy" db:"commission_buy"`
	CommissionSell decimal.Decimal `json:"commissionSell" db:"commission_sell"`
	IsActive       bool            `json:"isActive" db:"is_active"`
	AuditFields
}

// RateHistory is an append-only audit snapshot of a rate mutation.
type RateHistory struct {
	RateHistoryID  string          `json:"rateHistoryID" db:"rate_history_id"`
	RateID         string          `json:"rateID" db:"rate_id"`
	CurrencyCode   string          `json:"currencyCode" db:"currency_code"`
	BasePrice      decimal.Decimal `json:"basePrice" db:"base_price"`
	CommissionBuy  decimal.Decimal `json:"commissionBuy" db:"commission_buy"`
	CommissionSell decimal.Decimal `json:"commissionSell" db:"commission_sell"`
	BuyRate        decimal.Decimal `json:"buyRate" db:"buy_rate"`
	SellRate       decimal.Decimal `json:"sellRate" db:"sell_rate"`
	AuditFields
}
