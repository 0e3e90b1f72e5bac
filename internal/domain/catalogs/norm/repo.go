package norm

import (
	"context"

	"capplan/internal/domain"
)

// Repository defines the interface for Norm persistence.
type Repository interface {
	domain.CatalogRepository[*Norm]

	// FindByKey returns the norm with the given key or a not-found error.
	FindByKey(ctx context.Context, key Key) (*Norm, error)
}
