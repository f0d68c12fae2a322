package dto

import (
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFinancialMethodRequest defines the data needed to create a financial method.
type CreateFinancialMethodRequest struct {
	Name          string          `json:"name" binding:"required"`
	Kind          string          `json:"kind" binding:"required,oneof=BANK_TRANSFER WALLET CARD CASH CHECK"`
	CommissionPct decimal.Decimal `json:"commissionPct"` // 0..100
}

// FinancialMethodResponse defines the data returned for a financial method.
type FinancialMethodResponse struct {
	MethodID      string          `json:"methodID"`
	Name          string          `json:"name"`
	Kind          string          `json:"kind"`
	CommissionPct decimal.Decimal `json:"commissionPct"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToFinancialMethodResponse converts a domain.FinancialMethod to its DTO
func ToFinancialMethodResponse(m *domain.FinancialMethod) FinancialMethodResponse {
	return FinancialMethodResponse{
		MethodID:      m.MethodID,
		Name:          m.Name,
		Kind:          string(m.Kind),
		CommissionPct: m.CommissionPct,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToListFinancialMethodResponse converts a slice of domain.FinancialMethod to DTOs
func ToListFinancialMethodResponse(ms []domain.FinancialMethod) []FinancialMethodResponse {
	res := make([]FinancialMethodResponse, len(ms))
	for i, m := range ms {
		res[i] = ToFinancialMethodResponse(&m)
	}
	return res
}

// CreateMethodDetailRequest defines the data needed to add a concrete
// instrument (an account, wallet or card) under a financial method.
type CreateMethodDetailRequest struct {
	MethodID      string           `json:"methodID" binding:"required,uuid"`
	OwnerName     string           `json:"ownerName" binding:"required"`
	Handle        string           `json:"handle" binding:"required"` // account number, wallet address, card alias
	CommissionPct *decimal.Decimal `json:"commissionPct"`             // overrides the method's percentage when set
}

// MethodDetailResponse defines the data returned for a method detail.
type MethodDetailResponse struct {
	DetailID             string           `json:"detailID"`
	MethodID             string           `json:"methodID"`
	OwnerName            string           `json:"ownerName"`
	Handle               string           `json:"handle"`
	CommissionPct        *decimal.Decimal `json:"commissionPct,omitempty"`
	IsActive             bool             `json:"isActive"`
	DeactivatedByCascade bool             `json:"deactivatedByCascade"`
	CreatedAt            time.Time        `json:"createdAt"`
	CreatedBy            string           `json:"createdBy"`
	LastUpdatedAt        time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy        string           `json:"lastUpdatedBy"`
}

// ToMethodDetailResponse converts a domain.FinancialMethodDetail to its DTO
func ToMethodDetailResponse(d *domain.FinancialMethodDetail) MethodDetailResponse {
	return MethodDetailResponse{
		DetailID:             d.DetailID,
		MethodID:             d.MethodID,
		OwnerName:            d.OwnerName,
		Handle:               d.Handle,
		CommissionPct:        d.CommissionPct,
		IsActive:             d.IsActive,
		DeactivatedByCascade: d.DeactivatedByCascade,
		CreatedAt:            d.CreatedAt,
		CreatedBy:            d.CreatedBy,
		LastUpdatedAt:        d.LastUpdatedAt,
		LastUpdatedBy:        d.LastUpdatedBy,
	}
}

// ToListMethodDetailResponse converts a slice of domain.FinancialMethodDetail to DTOs
func ToListMethodDetailResponse(ds []domain.FinancialMethodDetail) []MethodDetailResponse {
	res := make([]MethodDetailResponse, len(ds))
	for i, d := range ds {
		res[i] = ToMethodDetailResponse(&d)
	}
	return res
}
