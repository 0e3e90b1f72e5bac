package inbound

import (
	"context"

	"capplan/internal/core/id"
	"capplan/internal/domain"
	"capplan/internal/domain/capacity"
)

// Repository defines operations for inbound documents.
type Repository interface {
	Create(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, docID id.ID) (*Document, error)
	Update(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]Item, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Item) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Document], error)
}

// ListFilter for filtering inbound documents.
type ListFilter struct {
	domain.ListFilter

	ClientID  *id.ID
	Validated *bool
	Dates     capacity.DateRange
}
