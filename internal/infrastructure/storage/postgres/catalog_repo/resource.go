package catalog_repo

import (
	"capplan/internal/domain/catalogs/resource"
	"capplan/internal/infrastructure/storage/postgres"
)

const resourceTable = "cat_resources"

// ResourceRepo implements resource.Repository.
type ResourceRepo struct {
	*BaseCatalogRepo[*resource.Resource]
}

// NewResourceRepo creates a new resource repository.
func NewResourceRepo(txm *postgres.TxManager) *ResourceRepo {
	return &ResourceRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*resource.Resource](
			txm,
			resourceTable,
			postgres.ExtractDBColumns[resource.Resource](),
			func() *resource.Resource { return &resource.Resource{} },
		).WithSearch("name", "subtype").WithDefaultOrder("subtype ASC, name ASC"),
	}
}

var _ resource.Repository = (*ResourceRepo)(nil)
