package mapping

import (
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate.
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		RateID:         d.RateID,
		CurrencyCode:   d.CurrencyCode,
		BasePrice:      d.BasePrice,
		CommissionBuy:  d.CommissionBuy,
		CommissionSell: d.CommissionSell,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRate converts a model Rate to a domain Rate.
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		RateID:         m.RateID,
		CurrencyCode:   m.CurrencyCode,
		BasePrice:      m.BasePrice,
		CommissionBuy:  m.CommissionBuy,
		CommissionSell: m.CommissionSell,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRateHistory converts a domain RateHistory to a model RateHistory.
func ToModelRateHistory(d domain.RateHistory) models.RateHistory {
	return models.RateHistory{
		RateHistoryID:  d.RateHistoryID,
		RateID:         d.RateID,
		CurrencyCode:   d.CurrencyCode,
		BasePrice:      d.BasePrice,
		CommissionBuy:  d.CommissionBuy,
		CommissionSell: d.CommissionSell,
		BuyRate:        d.BuyRate,
		SellRate:       d.SellRate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRateHistory converts a model RateHistory to a domain RateHistory.
func ToDomainRateHistory(m models.RateHistory) domain.RateHistory {
	return domain.RateHistory{
		RateHistoryID:  m.RateHistoryID,
		RateID:         m.RateID,
		CurrencyCode:   m.CurrencyCode,
		BasePrice:      m.BasePrice,
		CommissionBuy:  m.CommissionBuy,
		CommissionSell: m.CommissionSell,
		BuyRate:        m.BuyRate,
		SellRate:       m.SellRate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRateHistorySlice converts model RateHistory rows to domain values.
func ToDomainRateHistorySlice(ms []models.RateHistory) []domain.RateHistory {
	ds := make([]domain.RateHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRateHistory(m)
	}
	return ds
}

// ToDomainRateSlice converts model Rates to domain Rates.
func ToDomainRateSlice(ms []models.Rate) []domain.Rate {
	ds := make([]domain.Rate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRate(m)
	}
	return ds
}
