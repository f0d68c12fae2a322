package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the resource is in a state that forbids the requested action.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Business-rule violations of the exchange core. These surface to the caller
// synchronously and are never retried automatically.
var (
	// ErrInvalidCurrencyPair indicates an operation whose currency pair does not
	// involve exactly one base-currency leg.
	ErrInvalidCurrencyPair = errors.New("currency pair must have exactly one base currency leg")

	// ErrRateNotFound indicates no active rate exists for the foreign currency.
	ErrRateNotFound = errors.New("no active rate for currency")

	// ErrMethodUnavailable indicates the financial method or detail is inactive.
	ErrMethodUnavailable = errors.New("financial method unavailable")

	// ErrInvalidRate indicates a computed applied rate that is zero or negative.
	ErrInvalidRate = errors.New("computed rate is not positive")

	// ErrInsufficientStock indicates a debit could not be covered by the
	// location's stock. A lost conditional-update race collapses into this same
	// error: the caller should re-check feasibility before retrying either way.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateMovement indicates the transaction already has a non-cancelled
	// stock movement.
	ErrDuplicateMovement = errors.New("transaction already has a stock movement")

	// ErrDenominationMismatch indicates a detail line naming a denomination of a
	// different currency than the movement's.
	ErrDenominationMismatch = errors.New("denomination does not belong to movement currency")

	// ErrAmountMismatch indicates detail lines that do not sum to the movement amount.
	ErrAmountMismatch = errors.New("detail lines do not sum to movement amount")
)
