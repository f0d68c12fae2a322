package mapping

import (
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/models"
)

// ToDomainLocation converts a model Location to a domain Location.
func ToDomainLocation(m models.Location) domain.Location {
	return domain.Location{
		LocationID:  m.LocationID,
		Kind:        domain.LocationKind(m.Kind),
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStockEntry converts a model StockEntry to a domain StockEntry.
func ToDomainStockEntry(m models.StockEntry) domain.StockEntry {
	return domain.StockEntry{
		LocationID:     m.LocationID,
		DenominationID: m.DenominationID,
		Quantity:       m.Quantity,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStockEntrySlice converts model StockEntries to domain StockEntries.
func ToDomainStockEntrySlice(ms []models.StockEntry) []domain.StockEntry {
	ds := make([]domain.StockEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockEntry(m)
	}
	return ds
}

// ToModelStockMovement converts a domain StockMovement to a model StockMovement.
func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		MovementID:    d.MovementID,
		Type:          string(d.Type),
		LocationID:    d.LocationID,
		CurrencyCode:  d.CurrencyCode,
		Amount:        d.Amount,
		Status:        string(d.Status),
		TransactionID: d.TransactionID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockMovement converts a model StockMovement to a domain StockMovement.
func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID:    m.MovementID,
		Type:          domain.MovementType(m.Type),
		LocationID:    m.LocationID,
		CurrencyCode:  m.CurrencyCode,
		Amount:        m.Amount,
		Status:        domain.MovementStatus(m.Status),
		TransactionID: m.TransactionID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovementDetail converts a model StockMovementDetail to a domain value.
func ToDomainMovementDetail(m models.StockMovementDetail) domain.StockMovementDetail {
	return domain.StockMovementDetail{
		DetailID:       m.DetailID,
		MovementID:     m.MovementID,
		DenominationID: m.DenominationID,
		Quantity:       m.Quantity,
	}
}

// ToDomainMovementDetailSlice converts model detail rows to domain values.
func ToDomainMovementDetailSlice(ms []models.StockMovementDetail) []domain.StockMovementDetail {
	ds := make([]domain.StockMovementDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovementDetail(m)
	}
	return ds
}

// ToModelLocation converts a domain Location to a model Location.
func ToModelLocation(d domain.Location) models.Location {
	return models.Location{
		LocationID:  d.LocationID,
		Kind:        string(d.Kind),
		Name:        d.Name,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLocationSlice converts model Locations to domain Locations.
func ToDomainLocationSlice(ms []models.Location) []domain.Location {
	ds := make([]domain.Location, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLocation(m)
	}
	return ds
}

// ToDomainStockMovementSlice converts model StockMovements to domain values.
func ToDomainStockMovementSlice(ms []models.StockMovement) []domain.StockMovement {
	ds := make([]domain.StockMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockMovement(m)
	}
	return ds
}
