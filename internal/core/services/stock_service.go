package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/cambiosys/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/cambiosys/currency_exchange_app/internal/core/ports/services"
	"github.com/cambiosys/currency_exchange_app/internal/dto"
	"github.com/cambiosys/currency_exchange_app/internal/utils/cashcount"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// stockService provides business logic for locations, stock levels and cash
// movements.
type stockService struct {
	stockRepo   portsrepo.StockRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
}

// NewStockService creates a new stock service.
func NewStockService(stockRepo portsrepo.StockRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc) portssvc.StockSvcFacade {
	return &stockService{
		stockRepo:   stockRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

// toMinorUnits converts a decimal amount into the currency's minor unit.
// Amounts that do not land on a whole number of minor units cannot be paid in
// physical cash.
func toMinorUnits(amount decimal.Decimal, precision int32) (int64, error) {
	shifted := amount.Shift(precision)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%w: amount %s is not representable at precision %d", apperrors.ErrValidation, amount.String(), precision)
	}
	return shifted.IntPart(), nil
}

// CreateLocation persists a new stock location.
func (s *stockService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error) {
	now := time.Now()
	location := domain.Location{
		LocationID: uuid.NewString(),
		Kind:       domain.LocationKind(req.Kind),
		Name:       req.Name,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.stockRepo.SaveLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return &location, nil
}

// GetLocationByID retrieves a location by its identifier.
func (s *stockService) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	location, err := s.stockRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location %s: %w", locationID, err)
	}
	return location, nil
}

// ListLocations retrieves all locations.
func (s *stockService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.stockRepo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	if locations == nil {
		return []domain.Location{}, nil
	}
	return locations, nil
}

// DeactivateLocation marks a location as inactive. The vault cannot be
// deactivated.
func (s *stockService) DeactivateLocation(ctx context.Context, locationID string, userID string) error {
	location, err := s.stockRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return fmt.Errorf("failed to deactivate location: %w", err)
	}
	if location.Kind == domain.LocationVault {
		return fmt.Errorf("%w: the vault cannot be deactivated", apperrors.ErrConflict)
	}

	if err := s.stockRepo.DeactivateLocation(ctx, locationID, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate location %s: %w", locationID, err)
	}
	return nil
}

// ListStock retrieves every stock entry at a location.
func (s *stockService) ListStock(ctx context.Context, locationID string) ([]domain.StockEntry, error) {
	entries, err := s.stockRepo.ListStockByLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock at %s: %w", locationID, err)
	}
	if entries == nil {
		return []domain.StockEntry{}, nil
	}
	return entries, nil
}

// terminal loads a location and checks it is an active terminal.
func (s *stockService) terminal(ctx context.Context, locationID string) (*domain.Location, error) {
	location, err := s.stockRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: location %s not found", apperrors.ErrValidation, locationID)
		}
		return nil, fmt.Errorf("failed to look up location %s: %w", locationID, err)
	}
	if location.Kind != domain.LocationTerminal {
		return nil, fmt.Errorf("%w: location %s is not a terminal", apperrors.ErrValidation, locationID)
	}
	if !location.IsActive {
		return nil, fmt.Errorf("%w: terminal %s is inactive", apperrors.ErrValidation, locationID)
	}
	return location, nil
}

// TerminalCanCover reports whether the terminal's stock of the currency can
// pay out the exact amount with some combination of its denominations.
func (s *stockService) TerminalCanCover(ctx context.Context, locationID string, currencyCode string, amount decimal.Decimal) (bool, error) {
	if amount.IsNegative() {
		return false, fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
	}

	if _, err := s.terminal(ctx, locationID); err != nil {
		return false, err
	}
	currency, err := s.currencySvc.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, fmt.Errorf("%w: currency %s not found", apperrors.ErrValidation, currencyCode)
		}
		return false, fmt.Errorf("failed to look up currency %s: %w", currencyCode, err)
	}

	minor, err := toMinorUnits(amount, currency.Precision)
	if err != nil {
		return false, err
	}

	available, err := s.stockRepo.ListDenominationStock(ctx, locationID, currencyCode)
	if err != nil {
		return false, fmt.Errorf("failed to load stock for coverage check: %w", err)
	}

	return cashcount.CanCover(minor, available), nil
}

// CreateMovement records a cash flow event. Stock deltas are applied when the
// movement is created; the dispatch table on the movement type decides which
// locations move and in which direction.
func (s *stockService) CreateMovement(ctx context.Context, req dto.CreateMovementRequest, creatorUserID string) (*domain.StockMovement, error) {
	movementType := domain.MovementType(req.Type)
	effect, ok := movementType.Effect()
	if !ok {
		return nil, fmt.Errorf("%w: unknown movement type %s", apperrors.ErrValidation, req.Type)
	}

	if _, err := s.terminal(ctx, req.LocationID); err != nil {
		return nil, err
	}

	currency, err := s.currencySvc.GetCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s not found", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to look up currency %s: %w", req.CurrencyCode, err)
	}

	if req.Amount == nil || req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: movement amount must be positive", apperrors.ErrValidation)
	}
	minorAmount, err := toMinorUnits(*req.Amount, currency.Precision)
	if err != nil {
		return nil, err
	}

	// One live movement per transaction; the partial unique index closes the
	// race this check cannot see.
	if req.TransactionID != nil {
		existing, err := s.stockRepo.FindActiveMovementByTransactionID(ctx, *req.TransactionID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check movements of transaction %s: %w", *req.TransactionID, err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: transaction %s already has movement %s", apperrors.ErrDuplicateMovement, *req.TransactionID, existing.MovementID)
		}
	}

	vaultID := ""
	if effect.VaultDelta != 0 {
		vault, err := s.stockRepo.FindVault(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve vault: %w", err)
		}
		vaultID = vault.LocationID
	}

	now := time.Now()
	movement := domain.StockMovement{
		MovementID:    uuid.NewString(),
		Type:          movementType,
		LocationID:    req.LocationID,
		CurrencyCode:  req.CurrencyCode,
		Amount:        *req.Amount,
		Status:        domain.MovementInProgress,
		TransactionID: req.TransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if effect.AutoAllocate {
		if len(req.Details) > 0 {
			return nil, fmt.Errorf("%w: %s derives its own denomination breakdown", apperrors.ErrValidation, movementType)
		}
		available, err := s.stockRepo.ListDenominationStock(ctx, req.LocationID, req.CurrencyCode)
		if err != nil {
			return nil, fmt.Errorf("failed to load stock for allocation: %w", err)
		}
		allocation, err := cashcount.Allocate(minorAmount, available)
		if err != nil {
			return nil, err
		}
		for denominationID, quantity := range allocation {
			movement.Details = append(movement.Details, domain.StockMovementDetail{
				DetailID:       uuid.NewString(),
				MovementID:     movement.MovementID,
				DenominationID: denominationID,
				Quantity:       quantity,
			})
		}
	} else {
		details, err := s.validateDetails(ctx, movement.MovementID, req.CurrencyCode, minorAmount, req.Details)
		if err != nil {
			return nil, err
		}
		movement.Details = details
	}

	if err := s.stockRepo.CreateMovement(ctx, movement, effect, vaultID); err != nil {
		return nil, err
	}
	return &movement, nil
}

// validateDetails checks caller-supplied denomination lines: every
// denomination must be an active one of the movement currency, and the lines
// must sum exactly to the movement amount.
func (s *stockService) validateDetails(ctx context.Context, movementID, currencyCode string, minorAmount int64, reqDetails []dto.MovementDetailRequest) ([]domain.StockMovementDetail, error) {
	if len(reqDetails) == 0 {
		return nil, fmt.Errorf("%w: movement needs at least one detail line", apperrors.ErrValidation)
	}

	denominations, err := s.currencySvc.ListDenominations(ctx, currencyCode, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load denominations of %s: %w", currencyCode, err)
	}
	faceValues := make(map[string]int64, len(denominations))
	for _, d := range denominations {
		faceValues[d.DenominationID] = d.Value
	}

	details := make([]domain.StockMovementDetail, 0, len(reqDetails))
	var sum int64
	for _, line := range reqDetails {
		face, ok := faceValues[line.DenominationID]
		if !ok {
			return nil, fmt.Errorf("%w: denomination %s", apperrors.ErrDenominationMismatch, line.DenominationID)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: detail quantity must be positive", apperrors.ErrValidation)
		}
		sum += face * line.Quantity
		details = append(details, domain.StockMovementDetail{
			DetailID:       uuid.NewString(),
			MovementID:     movementID,
			DenominationID: line.DenominationID,
			Quantity:       line.Quantity,
		})
	}
	if sum != minorAmount {
		return nil, fmt.Errorf("%w: details sum to %d, movement amount is %d", apperrors.ErrAmountMismatch, sum, minorAmount)
	}
	return details, nil
}

// GetMovementByID retrieves a movement with its detail lines.
func (s *stockService) GetMovementByID(ctx context.Context, movementID string) (*domain.StockMovement, error) {
	movement, err := s.stockRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movement %s: %w", movementID, err)
	}
	return movement, nil
}

// GetMovementByTransactionID retrieves the non-cancelled movement linked to a
// transaction.
func (s *stockService) GetMovementByTransactionID(ctx context.Context, transactionID string) (*domain.StockMovement, error) {
	movement, err := s.stockRepo.FindActiveMovementByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movement for transaction %s: %w", transactionID, err)
	}
	return movement, nil
}

// ListMovementsByLocation retrieves a paginated list of movements at a location.
func (s *stockService) ListMovementsByLocation(ctx context.Context, locationID string, limit int, offset int) ([]domain.StockMovement, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	movements, err := s.stockRepo.ListMovementsByLocation(ctx, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements at %s: %w", locationID, err)
	}
	if movements == nil {
		return []domain.StockMovement{}, nil
	}
	return movements, nil
}

// FinalizeMovement seals an in-progress movement.
func (s *stockService) FinalizeMovement(ctx context.Context, movementID string, userID string) (*domain.StockMovement, error) {
	movement, err := s.stockRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize movement %s: %w", movementID, err)
	}
	if movement.Status.IsTerminal() {
		return nil, fmt.Errorf("movement %s is already %s: %w", movementID, movement.Status, apperrors.ErrConflict)
	}

	if err := s.stockRepo.FinalizeMovement(ctx, movementID, userID, time.Now()); err != nil {
		return nil, err
	}
	movement.Status = domain.MovementFinalized
	return movement, nil
}

// CancelMovement cancels a movement and restores every stock delta it
// applied. Cancelling an already-cancelled movement is a no-op; a finalized
// movement cannot be cancelled.
func (s *stockService) CancelMovement(ctx context.Context, movementID string, userID string) (*domain.StockMovement, error) {
	movement, err := s.stockRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel movement %s: %w", movementID, err)
	}
	if movement.Status == domain.MovementCancelled {
		return movement, nil
	}
	if movement.Status == domain.MovementFinalized {
		return nil, fmt.Errorf("movement %s is finalized: %w", movementID, apperrors.ErrConflict)
	}

	effect, ok := movement.Type.Effect()
	if !ok {
		return nil, fmt.Errorf("%w: unknown movement type %s", apperrors.ErrInternal, movement.Type)
	}

	vaultID := ""
	if effect.VaultDelta != 0 {
		vault, err := s.stockRepo.FindVault(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve vault: %w", err)
		}
		vaultID = vault.LocationID
	}

	if err := s.stockRepo.CancelMovement(ctx, *movement, effect, vaultID, userID, time.Now()); err != nil {
		return nil, err
	}
	movement.Status = domain.MovementCancelled
	return movement, nil
}
