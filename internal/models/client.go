package models

import "github.com/shopspring/decimal"

// ClientCategory is a discount tier row.
type ClientCategory struct {
	CategoryID  string          `json:"categoryID" db:"category_id"`
	Name        string          `json:"name" db:"name"`
	DiscountPct decimal.Decimal `json:"discountPct" db:"discount_pct"`
	IsActive    bool            `json:"isActive" db:"is_active"`
	AuditFields
}

// Client links a client to its category.
type Client struct {
	ClientID   string `json:"clientID" db:"client_id"`
	Name       string `json:"name" db:"name"`
	CategoryID string `json:"categoryID" db:"category_id"`
	IsActive   bool   `json:"isActive" db:"is_active"`
	AuditFields
}
