package models

import "github.com/shopspring/decimal"

// Location is a place cash is held (the vault or a terminal).
type Location struct {
	LocationID string `json:"locationID" db:"location_id"`
	Kind       string `json:"kind" db:"kind"`
	Name       string `json:"name" db:"name"`
	IsActive   bool   `json:"isActive" db:"is_active"`
	AuditFields
}

// StockEntry is the stock of one denomination at one location.
type StockEntry struct {
	LocationID     string `json:"locationID" db:"location_id"`
	DenominationID string `json:"denominationID" db:"denomination_id"`
	Quantity       int64  `json:"quantity" db:"quantity"`
	AuditFields
}

// StockMovement is one cash flow event.
type StockMovement struct {
	MovementID    string          `json:"movementID" db:"movement_id"`
	Type          string          `json:"type" db:"movement_type"`
	LocationID    string          `json:"locationID" db:"location_id"`
	CurrencyCode  string          `json:"currencyCode" db:"currency_code"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Status        string          `json:"status" db:"status"`
	TransactionID *string         `json:"transactionID,omitempty" db:"transaction_id"`
	AuditFields
}

// StockMovementDetail is one denomination line of a movement.
type StockMovementDetail struct {
	DetailID       string `json:"detailID" db:"detail_id"`
	MovementID     string `json:"movementID" db:"movement_id"`
	DenominationID string `json:"denominationID" db:"denomination_id"`
	Quantity       int64  `json:"quantity" db:"quantity"`
}
