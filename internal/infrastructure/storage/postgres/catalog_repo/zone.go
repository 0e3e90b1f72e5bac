package catalog_repo

import (
	"capplan/internal/domain/catalogs/zone"
	"capplan/internal/infrastructure/storage/postgres"
)

const zoneTable = "cat_zones"

// ZoneRepo implements zone.Repository.
type ZoneRepo struct {
	*BaseCatalogRepo[*zone.Zone]
}

// NewZoneRepo creates a new zone repository.
func NewZoneRepo(txm *postgres.TxManager) *ZoneRepo {
	return &ZoneRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*zone.Zone](
			txm,
			zoneTable,
			postgres.ExtractDBColumns[zone.Zone](),
			func() *zone.Zone { return &zone.Zone{} },
		).WithSearch("name", "type"),
	}
}

var _ zone.Repository = (*ZoneRepo)(nil)
