package entity

import (
	"context"
	"time"

	"capplan/internal/core/id"
)

// Validatable is implemented by everything a service stores.
// Validate checks the row's own invariants without touching the database.
type Validatable interface {
	Validate(ctx context.Context) error
}

// Versioned rows carry an optimistic-lock counter. Repositories call Touch
// after a successful UPDATE so the value in memory matches the stored row.
type Versioned interface {
	Touch()
}

// BaseEntity holds the columns every catalog, norm and ledger row shares.
type BaseEntity struct {
	ID id.ID `db:"id" json:"id"`

	// DeletionMark hides the row from lists and from capacity input.
	DeletionMark bool `db:"deletion_mark" json:"deletionMark"`

	// Version starts at 1 and grows by one per UPDATE.
	Version int `db:"version" json:"version"`
}

// NewBaseEntity creates a new BaseEntity with generated ID.
func NewBaseEntity() BaseEntity {
	return BaseEntity{ID: id.New(), Version: 1}
}

// Touch mirrors the version bump the UPDATE statement made.
func (b *BaseEntity) Touch() {
	b.Version++
}

// BaseDocument adds timestamps to inbound documents and outbound plans.
type BaseDocument struct {
	BaseEntity

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewBaseDocument creates a new BaseDocument stamped with the current UTC time.
func NewBaseDocument() BaseDocument {
	now := time.Now().UTC()
	return BaseDocument{
		BaseEntity: NewBaseEntity(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Touch mirrors the version bump and updated_at = NOW() of a document UPDATE.
func (b *BaseDocument) Touch() {
	b.UpdatedAt = time.Now().UTC()
	b.BaseEntity.Touch()
}

// BaseCatalog is the base of catalogs, norms and availability records.
// Catalog rows have no timestamps.
type BaseCatalog struct {
	BaseEntity
}

// NewBaseCatalog creates a new BaseCatalog with generated ID.
func NewBaseCatalog() BaseCatalog {
	return BaseCatalog{BaseEntity: NewBaseEntity()}
}
