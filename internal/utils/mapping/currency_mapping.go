package mapping

import (
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency.
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: d.CurrencyCode,
		Name:         d.Name,
		Symbol:       d.Symbol,
		Precision:    d.Precision,
		IsBase:       d.IsBase,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Name:         m.Name,
		Symbol:       m.Symbol,
		Precision:    m.Precision,
		IsBase:       m.IsBase,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts model Currencies to domain Currencies.
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

// ToModelDenomination converts a domain Denomination to a model Denomination.
func ToModelDenomination(d domain.Denomination) models.Denomination {
	return models.Denomination{
		DenominationID: d.DenominationID,
		CurrencyCode:   d.CurrencyCode,
		Value:          d.Value,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDenomination converts a model Denomination to a domain Denomination.
func ToDomainDenomination(m models.Denomination) domain.Denomination {
	return domain.Denomination{
		DenominationID: m.DenominationID,
		CurrencyCode:   m.CurrencyCode,
		Value:          m.Value,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDenominationSlice converts model Denominations to domain Denominations.
func ToDomainDenominationSlice(ms []models.Denomination) []domain.Denomination {
	ds := make([]domain.Denomination, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDenomination(m)
	}
	return ds
}
