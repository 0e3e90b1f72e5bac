package availability

import "capplan/internal/domain"

// Repository defines the interface for availability persistence.
// Filters: resource_id (eq), date (gte/lte) through ListFilter.AdvancedFilters.
type Repository interface {
	domain.CatalogRepository[*Record]
}
