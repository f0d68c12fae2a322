package models

import "github.com/shopspring/decimal"

// Transaction is one business exchange operation row.
type Transaction struct {
	TransactionID      string          `json:"transactionID" db:"transaction_id"`
	ClientID           *string         `json:"clientID,omitempty" db:"client_id"`
	HouseSide          string          `json:"houseSide" db:"house_side"`
	SourceCurrencyCode string          `json:"sourceCurrencyCode" db:"source_currency_code"`
	DestCurrencyCode   string          `json:"destCurrencyCode" db:"dest_currency_code"`
	SourceAmount       decimal.Decimal `json:"sourceAmount" db:"source_amount"`
	DestAmount         decimal.Decimal `json:"destAmount" db:"dest_amount"`
	MarketRate         decimal.Decimal `json:"marketRate" db:"market_rate"`
	AppliedRate        decimal.Decimal `json:"appliedRate" db:"applied_rate"`
	MethodDetailID     *string         `json:"methodDetailID,omitempty" db:"method_detail_id"`
	Status             string          `json:"status" db:"status"`
	TerminalID         *string         `json:"terminalID,omitempty" db:"terminal_id"`
	AuditFields
}

// Profit is the derived earnings row of one completed transaction.
type Profit struct {
	ProfitID      string          `json:"profitID" db:"profit_id"`
	TransactionID string          `json:"transactionID" db:"transaction_id"`
	NetProfit     decimal.Decimal `json:"netProfit" db:"net_profit"`
	MarketRate    decimal.Decimal `json:"marketRate" db:"market_rate"`
	AppliedRate   decimal.Decimal `json:"appliedRate" db:"applied_rate"`
	ForeignAmount decimal.Decimal `json:"foreignAmount" db:"foreign_amount"`
	CurrencyCode  string          `json:"currencyCode" db:"currency_code"`
	MethodID      *string         `json:"methodID,omitempty" db:"method_id"`
	Year          int             `json:"year" db:"year"`
	Month         int             `json:"month" db:"month"`
	AuditFields
}
