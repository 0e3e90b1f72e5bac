package inbound

import (
	"context"
	"fmt"

	"capplan/internal/core/id"
	"capplan/internal/core/tx"
	"capplan/internal/domain"
	"capplan/internal/domain/audit"
	"capplan/pkg/logger"
)

// Service provides business operations for inbound documents.
type Service struct {
	repo      Repository
	txManager tx.Manager
	audit     audit.Logger
}

// NewService creates a new inbound document service. A nil auditor disables the audit trail.
func NewService(repo Repository, txManager tx.Manager, auditor audit.Logger) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{
		repo:      repo,
		txManager: txManager,
		audit:     auditor,
	}
}

// Create stores the header and lines atomically.
func (s *Service) Create(ctx context.Context, doc *Document) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return s.audit.LogChange(ctx, EntityType, doc.ID, audit.ActionCreate, audit.Snapshot(doc))
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "inbound document created",
		"id", doc.ID,
		"number", doc.Number,
		"lines", len(doc.Lines))

	return nil
}

// GetByID retrieves a document with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Document, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Update replaces the header and all lines atomically.
// A validated document stays validated.
func (s *Service) Update(ctx context.Context, doc *Document) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return s.audit.LogChange(ctx, EntityType, doc.ID, audit.ActionUpdate, audit.Snapshot(doc))
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "inbound document updated", "id", doc.ID, "number", doc.Number)
	return nil
}

// Delete removes a document and its lines.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, docID); err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
		return s.audit.LogChange(ctx, EntityType, docID, audit.ActionDelete, audit.Snapshot(doc))
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "inbound document deleted", "id", docID, "number", doc.Number)
	return nil
}

// Validate confirms a document. Validating an already validated document is a no-op.
func (s *Service) Validate(ctx context.Context, docID id.ID) (*Document, error) {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if !doc.MarkValidated() {
		return doc, nil
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("validate document: %w", err)
		}
		return s.audit.LogChange(ctx, EntityType, docID, audit.ActionValidate, map[string]any{"validated": true})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "inbound document validated", "id", docID, "number", doc.Number)
	return doc, nil
}

// List retrieves documents with filtering. Lines are not loaded.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Document], error) {
	return s.repo.List(ctx, filter)
}
