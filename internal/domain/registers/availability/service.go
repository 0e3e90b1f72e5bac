package availability

import (
	"capplan/internal/core/id"
	"capplan/internal/core/tx"
	"capplan/internal/domain"
	"capplan/internal/domain/capacity"
	"capplan/internal/domain/filter"
)

// Service provides availability register operations.
type Service struct {
	*domain.CatalogService[*Record]
}

// NewService creates a new availability service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Record]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: "availability",
		}),
	}
}

// ListFilter builds a list filter for a date range and an optional resource.
func ListFilter(base domain.ListFilter, r capacity.DateRange, resourceID *id.ID) domain.ListFilter {
	if r.Start != nil {
		base.AdvancedFilters = append(base.AdvancedFilters, filter.Item{Field: "date", Operator: filter.GreaterOrEqual, Value: *r.Start})
	}
	if r.End != nil {
		base.AdvancedFilters = append(base.AdvancedFilters, filter.Item{Field: "date", Operator: filter.LessOrEqual, Value: *r.End})
	}
	if resourceID != nil {
		base.AdvancedFilters = append(base.AdvancedFilters, filter.Eq("resource_id", *resourceID))
	}
	if base.OrderBy == "" {
		base.OrderBy = "date"
	}
	return base
}
