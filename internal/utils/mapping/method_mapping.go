package mapping

import (
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/models"
)

// ToModelFinancialMethod converts a domain FinancialMethod to a model row.
func ToModelFinancialMethod(d domain.FinancialMethod) models.FinancialMethod {
	return models.FinancialMethod{
		MethodID:      d.MethodID,
		Name:          d.Name,
		Kind:          string(d.Kind),
		CommissionPct: d.CommissionPct,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinancialMethod converts a model row to a domain FinancialMethod.
func ToDomainFinancialMethod(m models.FinancialMethod) domain.FinancialMethod {
	return domain.FinancialMethod{
		MethodID:      m.MethodID,
		Name:          m.Name,
		Kind:          domain.MethodKind(m.Kind),
		CommissionPct: m.CommissionPct,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFinancialMethodDetail converts a domain detail to a model row.
func ToModelFinancialMethodDetail(d domain.FinancialMethodDetail) models.FinancialMethodDetail {
	return models.FinancialMethodDetail{
		DetailID:             d.DetailID,
		MethodID:             d.MethodID,
		OwnerName:            d.OwnerName,
		Handle:               d.Handle,
		CommissionPct:        d.CommissionPct,
		IsActive:             d.IsActive,
		DeactivatedByCascade: d.DeactivatedByCascade,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinancialMethodDetail converts a model row to a domain detail.
func ToDomainFinancialMethodDetail(m models.FinancialMethodDetail) domain.FinancialMethodDetail {
	return domain.FinancialMethodDetail{
		DetailID:             m.DetailID,
		MethodID:             m.MethodID,
		OwnerName:            m.OwnerName,
		Handle:               m.Handle,
		CommissionPct:        m.CommissionPct,
		IsActive:             m.IsActive,
		DeactivatedByCascade: m.DeactivatedByCascade,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFinancialMethodDetailSlice converts model detail rows to domain values.
func ToDomainFinancialMethodDetailSlice(ms []models.FinancialMethodDetail) []domain.FinancialMethodDetail {
	ds := make([]domain.FinancialMethodDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialMethodDetail(m)
	}
	return ds
}

// ToDomainClientCategory converts a model category row to a domain value.
func ToDomainClientCategory(m models.ClientCategory) domain.ClientCategory {
	return domain.ClientCategory{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		DiscountPct: m.DiscountPct,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClient converts a model client row to a domain value.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		Name:        m.Name,
		CategoryID:  m.CategoryID,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFinancialMethodSlice converts model method rows to domain values.
func ToDomainFinancialMethodSlice(ms []models.FinancialMethod) []domain.FinancialMethod {
	ds := make([]domain.FinancialMethod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialMethod(m)
	}
	return ds
}

// ToModelClientCategory converts a domain category to a model row.
func ToModelClientCategory(d domain.ClientCategory) models.ClientCategory {
	return models.ClientCategory{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		DiscountPct: d.DiscountPct,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelClient converts a domain client to a model row.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:    d.ClientID,
		Name:        d.Name,
		CategoryID:  d.CategoryID,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClientCategorySlice converts model category rows to domain values.
func ToDomainClientCategorySlice(ms []models.ClientCategory) []domain.ClientCategory {
	ds := make([]domain.ClientCategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClientCategory(m)
	}
	return ds
}

// ToDomainClientSlice converts model client rows to domain values.
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
