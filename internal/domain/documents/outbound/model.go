// Package outbound provides outbound shipment plan entries (План отгрузки).
package outbound

import (
	"context"
	"strings"
	"time"

	"capplan/internal/core/apperror"
	"capplan/internal/core/entity"
	"capplan/internal/core/id"
	"capplan/internal/core/types"
)

// EntityType names the plan entry in the audit trail.
const EntityType = "outbound_plan"

// PlanEntry is a single planned shipment of one SKU from one zone.
type PlanEntry struct {
	entity.Document

	ProductID id.ID          `db:"sku_id" json:"skuId"`
	ZoneID    id.ID          `db:"zone_id" json:"zoneId"`
	Quantity  types.Quantity `db:"quantity" json:"quantity"`
	UnitType  string         `db:"unit_type" json:"unitType"`

	// Reference is the optional plan number
	Reference string `db:"reference" json:"reference"`
}

// NewPlanEntry creates a draft plan entry. Quantity is checked by Validate.
func NewPlanEntry(clientID, productID, zoneID id.ID, date time.Time, qty types.Quantity) *PlanEntry {
	return &PlanEntry{
		Document:  entity.NewDocument(clientID, date),
		ProductID: productID,
		ZoneID:    zoneID,
		Quantity:  qty,
		UnitType:  types.DefaultUnitType,
	}
}

// DocumentNumber returns the reference, falling back to the entry id.
func (p *PlanEntry) DocumentNumber() string {
	if p.Reference != "" {
		return p.Reference
	}
	return p.ID.String()
}

// Validate implements entity.Validatable.
func (p *PlanEntry) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.ProductID) {
		return apperror.NewValidation("sku is required").
			WithDetail("field", "skuId")
	}
	if id.IsNil(p.ZoneID) {
		return apperror.NewValidation("zone is required").
			WithDetail("field", "zoneId")
	}
	if !p.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}

	p.Reference = strings.TrimSpace(p.Reference)
	p.UnitType = types.UnitOrDefault(p.UnitType)
	return nil
}
