package domain

import "github.com/shopspring/decimal"

// ClientCategory is a pricing tier (retail/wholesale/VIP). Its discount is
// applied to the commission base of client-scoped quotes, never to the market
// base price. Categories are referenced by clients and are never hard-deleted.
type ClientCategory struct {
	CategoryID  string          `json:"categoryID"` // Primary Key (UUID)
	Name        string          `json:"name"`
	DiscountPct decimal.Decimal `json:"discountPct"` // 0..100
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// Client is the minimal client record the pricing core needs: a link to the
// discount category. Full client management lives outside this system.
type Client struct {
	ClientID   string `json:"clientID"` // Primary Key (UUID)
	Name       string `json:"name"`
	CategoryID string `json:"categoryID"` // FK -> ClientCategory
	IsActive   bool   `json:"isActive"`
	AuditFields
}
