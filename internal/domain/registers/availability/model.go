// Package availability provides the resource availability register
// (Регистр сведений "Доступность ресурсов"): hours a resource can work per day.
package availability

import (
	"context"
	"time"

	"capplan/internal/core/apperror"
	"capplan/internal/core/entity"
	"capplan/internal/core/id"
	"capplan/internal/core/types"
)

// Record is the available hours of one resource on one date.
// The pair (ResourceID, Date) is unique.
type Record struct {
	entity.BaseEntity

	ResourceID id.ID       `db:"resource_id" json:"resourceId"`
	Date       time.Time   `db:"date" json:"date"`
	Hours      types.Hours `db:"available_hours" json:"availableHours"`
}

// NewRecord creates a new availability record.
func NewRecord(resourceID id.ID, date time.Time, hours types.Hours) *Record {
	return &Record{
		BaseEntity: entity.NewBaseEntity(),
		ResourceID: resourceID,
		Date:       entity.TruncateDate(date),
		Hours:      hours,
	}
}

// Validate implements entity.Validatable interface.
func (r *Record) Validate(ctx context.Context) error {
	if id.IsNil(r.ResourceID) {
		return apperror.NewValidation("resource is required").
			WithDetail("field", "resourceId")
	}
	if r.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	r.Date = entity.TruncateDate(r.Date)
	if r.Hours.IsNegative() {
		return apperror.NewValidation("available hours must not be negative").
			WithDetail("field", "availableHours").
			WithDetail("value", r.Hours.String())
	}
	return nil
}
