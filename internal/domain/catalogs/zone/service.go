package zone

import (
	"capplan/internal/core/tx"
	"capplan/internal/domain"
)

// Service provides business logic for Zone catalog.
type Service struct {
	*domain.CatalogService[*Zone]
}

// NewService creates a new Zone service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Zone]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: "zone",
		}),
	}
}
