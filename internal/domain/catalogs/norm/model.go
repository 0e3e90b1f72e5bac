// Package norm provides the productivity norm registry (Справочник "Нормативы").
// A norm states how many hours of one resource subtype a unit of a product
// needs for one operation in one type of zone.
package norm

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"capplan/internal/core/apperror"
	"capplan/internal/core/entity"
	"capplan/internal/core/id"
	"capplan/internal/core/types"
	"capplan/internal/domain/capacity"
)

// Norm is hours per unit for one (client, sku, operation, zone type, subtype, unit) key.
type Norm struct {
	entity.BaseCatalog

	ClientID        id.ID                  `db:"client_id" json:"clientId"`
	ProductID       id.ID                  `db:"sku_id" json:"skuId"`
	OperationType   capacity.OperationType `db:"operation_type" json:"operationType"`
	ZoneType        string                 `db:"zone_type" json:"zoneType"`
	ResourceSubtype string                 `db:"resource_subtype" json:"resourceSubtype"`
	UnitType        string                 `db:"unit_type" json:"unitType"`

	// Value is hours per unit, always positive
	Value decimal.Decimal `db:"norm_value" json:"normValue"`
}

// Key is the uniqueness tuple of a norm.
type Key struct {
	ClientID        id.ID
	ProductID       id.ID
	OperationType   capacity.OperationType
	ZoneType        string
	ResourceSubtype string
	UnitType        string
}

// String renders the key for error details.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s",
		k.ClientID, k.ProductID, k.OperationType, k.ZoneType, k.ResourceSubtype, k.UnitType)
}

// NewNorm creates a new Norm.
func NewNorm(key Key, value decimal.Decimal) *Norm {
	n := &Norm{
		BaseCatalog:     entity.NewBaseCatalog(),
		ClientID:        key.ClientID,
		ProductID:       key.ProductID,
		OperationType:   key.OperationType,
		ZoneType:        key.ZoneType,
		ResourceSubtype: key.ResourceSubtype,
		UnitType:        key.UnitType,
		Value:           value,
	}
	n.normalize()
	return n
}

// Key returns the uniqueness tuple.
func (n *Norm) Key() Key {
	return Key{
		ClientID:        n.ClientID,
		ProductID:       n.ProductID,
		OperationType:   n.OperationType,
		ZoneType:        n.ZoneType,
		ResourceSubtype: n.ResourceSubtype,
		UnitType:        n.UnitType,
	}
}

func (n *Norm) normalize() {
	n.ZoneType = strings.TrimSpace(n.ZoneType)
	n.ResourceSubtype = strings.TrimSpace(n.ResourceSubtype)
	n.UnitType = types.UnitOrDefault(n.UnitType)
}

// Validate implements entity.Validatable interface.
func (n *Norm) Validate(ctx context.Context) error {
	n.normalize()

	if id.IsNil(n.ClientID) {
		return apperror.NewValidation("client is required").WithDetail("field", "clientId")
	}
	if id.IsNil(n.ProductID) {
		return apperror.NewValidation("sku is required").WithDetail("field", "skuId")
	}
	if !n.OperationType.IsValid() {
		return apperror.NewValidation("operation type must be inbound or outbound").
			WithDetail("field", "operationType").
			WithDetail("value", string(n.OperationType))
	}
	if n.ZoneType == "" {
		return apperror.NewValidation("zone type is required").WithDetail("field", "zoneType")
	}
	if n.ResourceSubtype == "" {
		return apperror.NewValidation("resource subtype is required").WithDetail("field", "resourceSubtype")
	}
	if !n.Value.IsPositive() {
		return apperror.NewValidation("norm value must be greater than zero").
			WithDetail("field", "normValue").
			WithDetail("value", n.Value.String())
	}

	return nil
}
