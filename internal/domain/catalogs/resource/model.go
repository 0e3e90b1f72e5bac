// Package resource provides the Resource catalog (Справочник "Ресурсы").
// A resource is a worker or a machine, optionally assigned to a zone.
package resource

import (
	"context"
	"strings"

	"capplan/internal/core/apperror"
	"capplan/internal/core/entity"
	"capplan/internal/core/id"
	"capplan/internal/domain/capacity"
)

// Resource is a unit of labor or equipment capacity.
type Resource struct {
	entity.Catalog

	// Kind is staff or equipment
	Kind capacity.ResourceKind `db:"kind" json:"kind"`

	// Subtype is the role or machine class, e.g. "Приёмщик", "Ричтрак".
	// Norms are defined per subtype.
	Subtype string `db:"subtype" json:"subtype"`

	// ZoneID is the zone the resource works in; nil when unassigned
	ZoneID *id.ID `db:"zone_id" json:"zoneId,omitempty"`
}

// NewResource creates a new Resource.
func NewResource(kind capacity.ResourceKind, subtype, name string) *Resource {
	return &Resource{
		Catalog: entity.NewCatalog(name),
		Kind:    kind,
		Subtype: strings.TrimSpace(subtype),
	}
}

// Validate implements entity.Validatable interface.
func (r *Resource) Validate(ctx context.Context) error {
	if err := r.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !r.Kind.IsValid() {
		return apperror.NewValidation("kind must be staff or equipment").
			WithDetail("field", "kind").
			WithDetail("value", string(r.Kind))
	}

	if strings.TrimSpace(r.Subtype) == "" {
		return apperror.NewValidation("subtype is required").
			WithDetail("field", "subtype")
	}

	if r.ZoneID != nil && id.IsNil(*r.ZoneID) {
		r.ZoneID = nil
	}

	return nil
}
