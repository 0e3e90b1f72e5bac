package entity

import (
	"context"
	"strings"

	"capplan/internal/core/apperror"
)

// Catalog is the base type for named master data.
// Examples: Client, Warehouse, Zone, Product, Resource.
type Catalog struct {
	BaseCatalog

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(name string) Catalog {
	return Catalog{
		BaseCatalog: NewBaseCatalog(),
		Name:        strings.TrimSpace(name),
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
