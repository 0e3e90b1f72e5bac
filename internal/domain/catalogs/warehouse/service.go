package warehouse

import (
	"capplan/internal/core/tx"
	"capplan/internal/domain"
)

// Service provides business logic for Warehouse catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Warehouse]
}

// NewService creates a new Warehouse service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Warehouse]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: "warehouse",
		}),
	}
}
