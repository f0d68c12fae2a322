package domain

import "github.com/shopspring/decimal"

// OperationSide labels one party's role in an exchange operation.
type OperationSide string

const (
	Buy  OperationSide = "BUY"
	Sell OperationSide = "SELL"
)

// OperationDirection is the resolved direction of a currency-pair operation,
// from both perspectives, plus the foreign leg it was resolved against.
type OperationDirection struct {
	Client          OperationSide `json:"client"`
	House           OperationSide `json:"house"`
	ForeignCurrency string        `json:"foreignCurrency"`
	OriginIsBase    bool          `json:"originIsBase"`
}

// TransactionStatus is the lifecycle state of a business transaction.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "PENDING"
	TransactionInProgress TransactionStatus = "IN_PROGRESS"
	TransactionCompleted  TransactionStatus = "COMPLETED"
	TransactionCancelled  TransactionStatus = "CANCELLED"
	TransactionFailed     TransactionStatus = "FAILED"
)

// IsTerminal reports whether the status admits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionCompleted || s == TransactionCancelled || s == TransactionFailed
}

// Transaction is one buy/sell exchange operation with a client.
// Direction is recorded from the house perspective.
type Transaction struct {
	TransactionID       string            `json:"transactionID"` // Primary Key (UUID)
	ClientID            *string           `json:"clientID,omitempty"`
	HouseSide           OperationSide     `json:"houseSide"`
	SourceCurrencyCode  string            `json:"sourceCurrencyCode"`
	DestCurrencyCode    string            `json:"destCurrencyCode"`
	SourceAmount        decimal.Decimal   `json:"sourceAmount"`
	DestAmount          decimal.Decimal   `json:"destAmount"`
	MarketRate          decimal.Decimal   `json:"marketRate"`
	AppliedRate         decimal.Decimal   `json:"appliedRate"`
	MethodDetailID      *string           `json:"methodDetailID,omitempty"`
	Status              TransactionStatus `json:"status"`
	TerminalID          *string           `json:"terminalID,omitempty"` // terminal handling the cash leg, if any
	AuditFields
}

// ForeignCurrency returns the non-base leg of the transaction given the base
// currency code.
func (t Transaction) ForeignCurrency(baseCode string) string {
	if t.SourceCurrencyCode == baseCode {
		return t.DestCurrencyCode
	}
	return t.SourceCurrencyCode
}

// ForeignAmount returns the amount on the foreign leg.
func (t Transaction) ForeignAmount(baseCode string) decimal.Decimal {
	if t.SourceCurrencyCode == baseCode {
		return t.DestAmount
	}
	return t.SourceAmount
}
