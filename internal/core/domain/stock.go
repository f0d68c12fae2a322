package domain

import "github.com/shopspring/decimal"

// LocationKind distinguishes the singular central vault from self-service
// terminals.
type LocationKind string

const (
	LocationVault    LocationKind = "VAULT"
	LocationTerminal LocationKind = "TERMINAL"
)

// Location is a place physical cash is held.
type Location struct {
	LocationID string       `json:"locationID"` // Primary Key (UUID)
	Kind       LocationKind `json:"kind"`
	Name       string       `json:"name"`
	IsActive   bool         `json:"isActive"`
	AuditFields
}

// StockEntry is the quantity of one denomination held at one location.
// Quantity never goes below zero; unique per (location, denomination).
type StockEntry struct {
	LocationID     string `json:"locationID"`
	DenominationID string `json:"denominationID"`
	Quantity       int64  `json:"quantity"`
	AuditFields
}

// DenominationStock is the joined view of one denomination's face value and
// its quantity at a location, as consumed by feasibility checks and payout
// allocation.
type DenominationStock struct {
	DenominationID string `json:"denominationID"`
	FaceValue      int64  `json:"faceValue"` // in the currency's smallest unit
	Quantity       int64  `json:"quantity"`
}

// MovementType is the direction/type of a cash flow event.
type MovementType string

const (
	// ClientDeposit: a client hands cash into a terminal.
	ClientDeposit MovementType = "CLIENT_DEPOSIT"
	// HouseDeposit: the house restocks a terminal from the vault.
	HouseDeposit MovementType = "HOUSE_DEPOSIT"
	// ClientWithdrawal: a terminal pays cash out to a client (automatic payout).
	ClientWithdrawal MovementType = "CLIENT_WITHDRAWAL"
	// HouseWithdrawal: the house drains a terminal back into the vault.
	HouseWithdrawal MovementType = "HOUSE_WITHDRAWAL"
)

// StockEffect describes how a movement type touches the terminal and vault
// stock for each detail line.
type StockEffect struct {
	TerminalDelta int64 // +1 credit, -1 debit, per detail quantity unit
	VaultDelta    int64
	AutoAllocate  bool // detail lines derived by the allocator, not caller-supplied
}

// movementEffects is the single dispatch table for movement semantics. New
// movement types get a row here instead of branches scattered across services.
var movementEffects = map[MovementType]StockEffect{
	ClientDeposit:    {TerminalDelta: +1, VaultDelta: 0},
	HouseDeposit:     {TerminalDelta: +1, VaultDelta: -1},
	ClientWithdrawal: {TerminalDelta: -1, VaultDelta: 0, AutoAllocate: true},
	HouseWithdrawal:  {TerminalDelta: -1, VaultDelta: +1},
}

// Effect returns the stock effect for the movement type and whether the type
// is known.
func (t MovementType) Effect() (StockEffect, bool) {
	e, ok := movementEffects[t]
	return e, ok
}

// MovementStatus is the lifecycle state of a stock movement.
// IN_PROGRESS -> {FINALIZED, CANCELLED}; both are terminal.
type MovementStatus string

const (
	MovementInProgress MovementStatus = "IN_PROGRESS"
	MovementFinalized  MovementStatus = "FINALIZED"
	MovementCancelled  MovementStatus = "CANCELLED"
)

// IsTerminal reports whether the status admits no further transitions.
func (s MovementStatus) IsTerminal() bool {
	return s == MovementFinalized || s == MovementCancelled
}

// StockMovement is an immutable record of a cash flow event. Stock is
// debited/credited when the movement is created; finalization only seals the
// record, cancellation restocks every detail line.
type StockMovement struct {
	MovementID    string          `json:"movementID"` // Primary Key (UUID)
	Type          MovementType    `json:"type"`
	LocationID    string          `json:"locationID"` // the terminal involved
	CurrencyCode  string          `json:"currencyCode"`
	Amount        decimal.Decimal `json:"amount"`
	Status        MovementStatus  `json:"status"`
	TransactionID *string         `json:"transactionID,omitempty"` // at most one non-cancelled movement per transaction
	Details       []StockMovementDetail
	AuditFields
}

// StockMovementDetail is one denomination line of a movement.
type StockMovementDetail struct {
	DetailID       string `json:"detailID"`
	MovementID     string `json:"movementID"`
	DenominationID string `json:"denominationID"`
	Quantity       int64  `json:"quantity"`
}
