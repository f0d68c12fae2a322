package domain

// Currency represents a tradable currency. Exactly one currency system-wide
// carries IsBase; every operation must pair the base currency with a foreign one.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string `json:"name"`         // e.g., "US Dollar"
	Symbol       string `json:"symbol"`       // e.g., "$"
	Precision    int32  `json:"precision"`    // decimal digits of the minor unit
	IsBase       bool   `json:"isBase"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Denomination is a fixed face value of physical currency belonging to one
// Currency. Immutable once referenced by stock or movements; deactivation is
// logical, never deletion.
type Denomination struct {
	DenominationID string `json:"denominationID"` // Primary Key (UUID)
	CurrencyCode   string `json:"currencyCode"`   // FK -> Currency.currencyCode
	Value          int64  `json:"value"`          // face value in the currency's minor unit
	IsActive       bool   `json:"isActive"`
	AuditFields
}
