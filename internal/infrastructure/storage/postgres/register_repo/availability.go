// Package register_repo provides PostgreSQL implementations for register repositories.
package register_repo

import (
	"capplan/internal/domain/registers/availability"
	"capplan/internal/infrastructure/storage/postgres"
	"capplan/internal/infrastructure/storage/postgres/catalog_repo"
)

const availabilityTable = "reg_availability"

// AvailabilityRepo implements availability.Repository.
// (resource_id, date) is unique; duplicates surface as DUPLICATE_ENTRY.
type AvailabilityRepo struct {
	*catalog_repo.BaseCatalogRepo[*availability.Record]
}

// NewAvailabilityRepo creates a new availability register repository.
func NewAvailabilityRepo(txm *postgres.TxManager) *AvailabilityRepo {
	return &AvailabilityRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo[*availability.Record](
			txm,
			availabilityTable,
			postgres.ExtractDBColumns[availability.Record](),
			func() *availability.Record { return &availability.Record{} },
		).
			WithSearch().
			WithDefaultOrder("date ASC, resource_id ASC"),
	}
}

var _ availability.Repository = (*AvailabilityRepo)(nil)
