package models

import "github.com/shopspring/decimal"

// FinancialMethod is a payment channel catalog row.
type FinancialMethod struct {
	MethodID      string          `json:"methodID" db:"method_id"`
	Name          string          `json:"name" db:"name"`
	Kind          string          `json:"kind" db:"kind"`
	CommissionPct decimal.Decimal `json:"commissionPct" db:"commission_pct"`
	IsActive      bool            `json:"isActive" db:"is_active"`
	AuditFields
}

// FinancialMethodDetail is a concrete method instance row.
type FinancialMethodDetail struct {
	DetailID             string           `json:"detailID" db:"detail_id"`
	MethodID             string           `json:"methodID" db:"method_id"`
	OwnerName            string           `json:"ownerName" db:"owner_name"`
	Handle               string           `json:"handle" db:"handle"`
	CommissionPct        *decimal.Decimal `json:"commissionPct,omitempty" db:"commission_pct"`
	IsActive             bool             `json:"isActive" db:"is_active"`
	DeactivatedByCascade bool             `json:"deactivatedByCascade" db:"deactivated_by_cascade"`
	AuditFields
}
