package domain

import "github.com/shopspring/decimal"

// MethodKind is the generic payment/collection channel.
type MethodKind string

const (
	MethodBankTransfer MethodKind = "BANK_TRANSFER"
	MethodWallet       MethodKind = "WALLET"
	MethodCard         MethodKind = "CARD"
	MethodCash         MethodKind = "CASH"
	MethodCheck        MethodKind = "CHECK"
)

// FinancialMethod is a catalog entry for a payment channel carrying its default
// commission percentage.
type FinancialMethod struct {
	MethodID      string          `json:"methodID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	Kind          MethodKind      `json:"kind"`
	CommissionPct decimal.Decimal `json:"commissionPct"` // 0..100
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// FinancialMethodDetail is a concrete instance of a method (a specific bank
// account, wallet handle or card). Its commission, when set, overrides the
// method default.
//
// DeactivatedByCascade distinguishes a detail switched off because its parent
// method was deactivated from one its owner turned off directly; only the
// former is reactivated when the parent comes back.
type FinancialMethodDetail struct {
	DetailID             string           `json:"detailID"` // Primary Key (UUID)
	MethodID             string           `json:"methodID"` // FK -> FinancialMethod
	OwnerName            string           `json:"ownerName"`
	Handle               string           `json:"handle"` // account number, wallet id, card ref
	CommissionPct        *decimal.Decimal `json:"commissionPct,omitempty"`
	IsActive             bool             `json:"isActive"`
	DeactivatedByCascade bool             `json:"deactivatedByCascade"`
	AuditFields
}

// EffectiveCommission returns the detail override when present, the method
// default otherwise.
func (d FinancialMethodDetail) EffectiveCommission(method FinancialMethod) decimal.Decimal {
	if d.CommissionPct != nil {
		return *d.CommissionPct
	}
	return method.CommissionPct
}
