package outbound

import (
	"context"
	"fmt"

	"capplan/internal/core/id"
	"capplan/internal/core/tx"
	"capplan/internal/domain"
	"capplan/internal/domain/audit"
	"capplan/pkg/logger"
)

// Service provides business operations for outbound plan entries.
type Service struct {
	repo      Repository
	txManager tx.Manager
	audit     audit.Logger
}

// NewService creates a new plan service. A nil auditor disables the audit trail.
func NewService(repo Repository, txManager tx.Manager, auditor audit.Logger) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{repo: repo, txManager: txManager, audit: auditor}
}

func (s *Service) write(ctx context.Context, entry *PlanEntry, action audit.Action, fn func(ctx context.Context) error) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return fmt.Errorf("%s plan entry: %w", action, err)
		}
		return s.audit.LogChange(ctx, EntityType, entry.ID, action, audit.Snapshot(entry))
	})
}

// Create stores a new plan entry.
func (s *Service) Create(ctx context.Context, entry *PlanEntry) error {
	if err := entry.Validate(ctx); err != nil {
		return err
	}

	if err := s.write(ctx, entry, audit.ActionCreate, func(ctx context.Context) error {
		return s.repo.Create(ctx, entry)
	}); err != nil {
		return err
	}

	logger.Info(ctx, "outbound plan entry created",
		"id", entry.ID,
		"reference", entry.Reference,
		"date", entry.Date.Format("2006-01-02"))
	return nil
}

// GetByID retrieves a plan entry.
func (s *Service) GetByID(ctx context.Context, entryID id.ID) (*PlanEntry, error) {
	return s.repo.GetByID(ctx, entryID)
}

// Update saves an edited entry. A validated entry stays validated.
func (s *Service) Update(ctx context.Context, entry *PlanEntry) error {
	if err := entry.Validate(ctx); err != nil {
		return err
	}

	if err := s.write(ctx, entry, audit.ActionUpdate, func(ctx context.Context) error {
		return s.repo.Update(ctx, entry)
	}); err != nil {
		return err
	}

	logger.Info(ctx, "outbound plan entry updated", "id", entry.ID)
	return nil
}

// Delete removes a plan entry.
func (s *Service) Delete(ctx context.Context, entryID id.ID) error {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}

	if err := s.write(ctx, entry, audit.ActionDelete, func(ctx context.Context) error {
		return s.repo.Delete(ctx, entryID)
	}); err != nil {
		return err
	}

	logger.Info(ctx, "outbound plan entry deleted", "id", entryID)
	return nil
}

// Validate confirms a plan entry. Repeated calls are no-ops.
func (s *Service) Validate(ctx context.Context, entryID id.ID) (*PlanEntry, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.MarkValidated() {
		return entry, nil
	}

	if err := s.write(ctx, entry, audit.ActionValidate, func(ctx context.Context) error {
		return s.repo.Update(ctx, entry)
	}); err != nil {
		return nil, err
	}

	logger.Info(ctx, "outbound plan entry validated", "id", entryID)
	return entry, nil
}

// List retrieves plan entries with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*PlanEntry], error) {
	return s.repo.List(ctx, filter)
}
