package dto

import (
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientCategoryRequest defines the data needed to create a client category.
type CreateClientCategoryRequest struct {
	Name        string          `json:"name" binding:"required"`
	DiscountPct decimal.Decimal `json:"discountPct"` // 0..100, percentage of commission waived
}

// ClientCategoryResponse defines the data returned for a client category.
type ClientCategoryResponse struct {
	CategoryID    string          `json:"categoryID"`
	Name          string          `json:"name"`
	DiscountPct   decimal.Decimal `json:"discountPct"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToClientCategoryResponse converts a domain.ClientCategory to its DTO
func ToClientCategoryResponse(cat *domain.ClientCategory) ClientCategoryResponse {
	return ClientCategoryResponse{
		CategoryID:    cat.CategoryID,
		Name:          cat.Name,
		DiscountPct:   cat.DiscountPct,
		IsActive:      cat.IsActive,
		CreatedAt:     cat.CreatedAt,
		CreatedBy:     cat.CreatedBy,
		LastUpdatedAt: cat.LastUpdatedAt,
		LastUpdatedBy: cat.LastUpdatedBy,
	}
}

// ToListClientCategoryResponse converts a slice of domain.ClientCategory to DTOs
func ToListClientCategoryResponse(cats []domain.ClientCategory) []ClientCategoryResponse {
	res := make([]ClientCategoryResponse, len(cats))
	for i, cat := range cats {
		res[i] = ToClientCategoryResponse(&cat)
	}
	return res
}

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"categoryID" binding:"required,uuid"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	Name          string    `json:"name"`
	CategoryID    string    `json:"categoryID"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      c.ClientID,
		Name:          c.Name,
		CategoryID:    c.CategoryID,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToListClientResponse converts a slice of domain.Client to ClientResponse DTOs
func ToListClientResponse(cs []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(cs))
	for i, c := range cs {
		res[i] = ToClientResponse(&c)
	}
	return res
}
