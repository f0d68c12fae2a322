package models

// Currency represents a tradable currency row.
type Currency struct {
	CurrencyCode string `json:"currencyCode" db:"currency_code"`
	Name         string `json:"name" db:"name"`
	Symbol       string `json:"symbol" db:"symbol"`
	Precision    int32  `json:"precision" db:"precision"`
	IsBase       bool   `json:"isBase" db:"is_base"`
	IsActive     bool   `json:"isActive" db:"is_active"`
	AuditFields
}

// Denomination is a face value of physical currency under one Currency.
type Denomination struct {
	DenominationID string `json:"denominationID" db:"denomination_id"`
	CurrencyCode   string `json:"currencyCode" db:"currency_code"`
	Value          int64  `json:"value" db:"value"`
	IsActive       bool   `json:"isActive" db:"is_active"`
	AuditFields
}
