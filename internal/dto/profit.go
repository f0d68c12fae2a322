package dto

import (
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfitResponse defines the data returned for one transaction's profit entry.
type ProfitResponse struct {
	ProfitID      string          `json:"profitID"`
	TransactionID string          `json:"transactionID"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	MarketRate    decimal.Decimal `json:"marketRate"`
	AppliedRate   decimal.Decimal `json:"appliedRate"`
	ForeignAmount decimal.Decimal `json:"foreignAmount"`
	CurrencyCode  string          `json:"currencyCode"`
	MethodID      *string         `json:"methodID,omitempty"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToProfitResponse converts a domain.Profit to ProfitResponse DTO
func ToProfitResponse(p *domain.Profit) ProfitResponse {
	return ProfitResponse{
		ProfitID:      p.ProfitID,
		TransactionID: p.TransactionID,
		NetProfit:     p.NetProfit,
		MarketRate:    p.MarketRate,
		AppliedRate:   p.AppliedRate,
		ForeignAmount: p.ForeignAmount,
		CurrencyCode:  p.CurrencyCode,
		MethodID:      p.MethodID,
		Year:          p.Year,
		Month:         p.Month,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// PeriodProfitResponse aggregates one calendar month of profit entries.
type PeriodProfitResponse struct {
	Year    int              `json:"year"`
	Month   int              `json:"month"`
	Total   decimal.Decimal  `json:"total"`
	Entries []ProfitResponse `json:"entries"`
}

// ToPeriodProfitResponse aggregates domain.Profit entries into a period view.
func ToPeriodProfitResponse(year, month int, ps []domain.Profit) PeriodProfitResponse {
	entries := make([]ProfitResponse, len(ps))
	total := decimal.Zero
	for i, p := range ps {
		entries[i] = ToProfitResponse(&p)
		total = total.Add(p.NetProfit)
	}
	return PeriodProfitResponse{Year: year, Month: month, Total: total, Entries: entries}
}
