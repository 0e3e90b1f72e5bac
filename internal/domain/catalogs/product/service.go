package product

import (
	"capplan/internal/core/tx"
	"capplan/internal/domain"
)

// Service provides business logic for Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
}

// NewService creates a new Product service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: "product",
		}),
	}
}
