package resource

import (
	"capplan/internal/core/tx"
	"capplan/internal/domain"
)

// Service provides business logic for Resource catalog.
type Service struct {
	*domain.CatalogService[*Resource]
}

// NewService creates a new Resource service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Resource]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: "resource",
		}),
	}
}
