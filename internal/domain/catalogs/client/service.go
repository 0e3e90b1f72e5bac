package client

import (
	"capplan/internal/core/tx"
	"capplan/internal/domain"
)

// Service provides business logic for Client catalog.
type Service struct {
	*domain.CatalogService[*Client]
}

// NewService creates a new Client service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: "client",
		}),
	}
}
