package mapping

import (
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:      d.TransactionID,
		ClientID:           d.ClientID,
		HouseSide:          string(d.HouseSide),
		SourceCurrencyCode: d.SourceCurrencyCode,
		DestCurrencyCode:   d.DestCurrencyCode,
		SourceAmount:       d.SourceAmount,
		DestAmount:         d.DestAmount,
		MarketRate:         d.MarketRate,
		AppliedRate:        d.AppliedRate,
		MethodDetailID:     d.MethodDetailID,
		Status:             string(d.Status),
		TerminalID:         d.TerminalID,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		ClientID:           m.ClientID,
		HouseSide:          domain.OperationSide(m.HouseSide),
		SourceCurrencyCode: m.SourceCurrencyCode,
		DestCurrencyCode:   m.DestCurrencyCode,
		SourceAmount:       m.SourceAmount,
		DestAmount:         m.DestAmount,
		MarketRate:         m.MarketRate,
		AppliedRate:        m.AppliedRate,
		MethodDetailID:     m.MethodDetailID,
		Status:             domain.TransactionStatus(m.Status),
		TerminalID:         m.TerminalID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelProfit converts a domain Profit to a model Profit.
func ToModelProfit(d domain.Profit) models.Profit {
	return models.Profit{
		ProfitID:      d.ProfitID,
		TransactionID: d.TransactionID,
		NetProfit:     d.NetProfit,
		MarketRate:    d.MarketRate,
		AppliedRate:   d.AppliedRate,
		ForeignAmount: d.ForeignAmount,
		CurrencyCode:  d.CurrencyCode,
		MethodID:      d.MethodID,
		Year:          d.Year,
		Month:         d.Month,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProfit converts a model Profit to a domain Profit.
func ToDomainProfit(m models.Profit) domain.Profit {
	return domain.Profit{
		ProfitID:      m.ProfitID,
		TransactionID: m.TransactionID,
		NetProfit:     m.NetProfit,
		MarketRate:    m.MarketRate,
		AppliedRate:   m.AppliedRate,
		ForeignAmount: m.ForeignAmount,
		CurrencyCode:  m.CurrencyCode,
		MethodID:      m.MethodID,
		Year:          m.Year,
		Month:         m.Month,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts model Transactions to domain values.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToDomainProfitSlice converts model Profits to domain values.
func ToDomainProfitSlice(ms []models.Profit) []domain.Profit {
	ds := make([]domain.Profit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfit(m)
	}
	return ds
}
