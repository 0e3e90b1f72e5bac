package outbound

import (
	"context"

	"capplan/internal/core/id"
	"capplan/internal/domain"
	"capplan/internal/domain/capacity"
)

// Repository defines operations for outbound plan entries.
type Repository interface {
	Create(ctx context.Context, entry *PlanEntry) error
	GetByID(ctx context.Context, entryID id.ID) (*PlanEntry, error)
	Update(ctx context.Context, entry *PlanEntry) error
	Delete(ctx context.Context, entryID id.ID) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*PlanEntry], error)
}

// ListFilter for filtering plan entries.
type ListFilter struct {
	domain.ListFilter

	ClientID  *id.ID
	ZoneID    *id.ID
	Validated *bool
	Dates     capacity.DateRange
}
