// Package zone provides the Zone catalog (Справочник "Зоны").
// A zone is an area of one warehouse. Its type tag selects the norms that apply there.
package zone

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"capplan/internal/core/apperror"
	"capplan/internal/core/entity"
	"capplan/internal/core/id"
)

// Common zone type tags. Any other non-empty tag is accepted.
const (
	TypeReceiving = "receiving"
	TypeStorage   = "storage"
	TypeShipping  = "shipping"
)

// Zone is a storage area inside a warehouse.
type Zone struct {
	entity.Catalog

	// WarehouseID is the owning warehouse
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`

	// Type is a free-text tag matched against norm zone types
	Type string `db:"type" json:"type"`

	// MaxCapacity is an optional capacity limit
	MaxCapacity *decimal.Decimal `db:"max_capacity" json:"maxCapacity,omitempty"`
}

// NewZone creates a new Zone.
func NewZone(warehouseID id.ID, name, zoneType string) *Zone {
	return &Zone{
		Catalog:     entity.NewCatalog(name),
		WarehouseID: warehouseID,
		Type:        strings.TrimSpace(zoneType),
	}
}

// Validate implements entity.Validatable interface.
func (z *Zone) Validate(ctx context.Context) error {
	if err := z.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(z.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	if strings.TrimSpace(z.Type) == "" {
		return apperror.NewValidation("zone type is required").
			WithDetail("field", "type")
	}

	if z.MaxCapacity != nil && z.MaxCapacity.IsNegative() {
		return apperror.NewValidation("max capacity must not be negative").
			WithDetail("field", "maxCapacity")
	}

	return nil
}
