// Package product provides the Product catalog (Справочник "Товары", SKU).
package product

import (
	"context"

	"github.com/shopspring/decimal"

	"capplan/internal/core/apperror"
	"capplan/internal/core/entity"
	"capplan/internal/core/id"
)

// Product is a stock keeping unit that belongs to exactly one client.
type Product struct {
	entity.Catalog

	// ClientID is the owning client
	ClientID id.ID `db:"client_id" json:"clientId"`

	// WeightPerUnit in kilograms
	WeightPerUnit decimal.Decimal `db:"weight_per_unit" json:"weightPerUnit"`

	// Packaging
	UnitsPerBox    int `db:"units_per_box" json:"unitsPerBox"`
	UnitsPerPallet int `db:"units_per_pallet" json:"unitsPerPallet"`
}

// NewProduct creates a new Product.
func NewProduct(clientID id.ID, name string) *Product {
	return &Product{
		Catalog:  entity.NewCatalog(name),
		ClientID: clientID,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	if p.WeightPerUnit.IsNegative() {
		return apperror.NewValidation("weight per unit must not be negative").
			WithDetail("field", "weightPerUnit")
	}

	if p.UnitsPerBox < 0 || p.UnitsPerPallet < 0 {
		return apperror.NewValidation("packaging counts must not be negative").
			WithDetail("unitsPerBox", p.UnitsPerBox).
			WithDetail("unitsPerPallet", p.UnitsPerPallet)
	}

	return nil
}
