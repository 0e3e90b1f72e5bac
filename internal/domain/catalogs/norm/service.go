package norm

import (
	"context"

	"capplan/internal/core/apperror"
	"capplan/internal/core/tx"
	"capplan/internal/domain"
)

// Service provides business logic for the norm registry.
type Service struct {
	*domain.CatalogService[*Norm]
	repo Repository
}

// NewService creates a new Norm service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Norm]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "norm",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.ensureUniqueKey)
	base.Hooks().OnBeforeUpdate(svc.ensureUniqueKey)

	return svc
}

// ensureUniqueKey rejects a norm whose key is taken by another norm.
// The unique index backs this check under concurrent writers.
//
// A norm marked for deletion still holds its key: the mark only hides it
// from capacity input. The caller has to clear the mark and edit that norm,
// or delete it physically, before the key is free again.
func (s *Service) ensureUniqueKey(ctx context.Context, n *Norm) error {
	existing, err := s.repo.FindByKey(ctx, n.Key())
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID == n.ID {
		return nil
	}
	if existing.DeletionMark {
		return apperror.NewConflict("norm with this key exists and is marked for deletion; clear the mark or delete it first").
			WithDetail("field", "key").
			WithDetail("value", n.Key().String()).
			WithDetail("existingId", existing.ID.String()).
			WithDetail("deletionMark", true)
	}
	return apperror.NewDuplicate("norm", "key", n.Key().String()).
		WithDetail("existingId", existing.ID.String())
}
