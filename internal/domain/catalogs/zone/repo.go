package zone

import "capplan/internal/domain"

// Repository defines the interface for Zone persistence.
type Repository interface {
	domain.CatalogRepository[*Zone]
}
