// Package warehouse provides the Warehouse catalog (Справочник "Склады").
// A warehouse is a physical site divided into zones.
package warehouse

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"capplan/internal/core/apperror"
	"capplan/internal/core/entity"
)

// Warehouse represents a storage site.
type Warehouse struct {
	entity.Catalog

	// Address is the physical address
	Address string `db:"address" json:"address"`

	// Capacity is the storage volume in cubic metres (optional)
	Capacity *decimal.Decimal `db:"capacity_m3" json:"capacityM3,omitempty"`
}

// NewWarehouse creates a new Warehouse with required fields.
func NewWarehouse(name, address string) *Warehouse {
	return &Warehouse{
		Catalog: entity.NewCatalog(name),
		Address: strings.TrimSpace(address),
	}
}

// Validate implements entity.Validatable interface.
func (w *Warehouse) Validate(ctx context.Context) error {
	if err := w.Catalog.Validate(ctx); err != nil {
		return err
	}

	if w.Capacity != nil && w.Capacity.IsNegative() {
		return apperror.NewValidation("capacity must not be negative").
			WithDetail("field", "capacityM3").
			WithDetail("value", w.Capacity.String())
	}

	return nil
}
