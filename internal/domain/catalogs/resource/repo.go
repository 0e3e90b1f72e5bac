package resource

import "capplan/internal/domain"

// Repository defines the interface for Resource persistence.
type Repository interface {
	domain.CatalogRepository[*Resource]
}
