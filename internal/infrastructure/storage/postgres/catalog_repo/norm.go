package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"capplan/internal/core/apperror"
	"capplan/internal/domain/catalogs/norm"
	"capplan/internal/infrastructure/storage/postgres"
)

const normTable = "cat_norms"

// NormRepo implements norm.Repository.
// The key tuple is backed by the uq_cat_norms_key unique index.
type NormRepo struct {
	*BaseCatalogRepo[*norm.Norm]
}

// NewNormRepo creates a new norm repository.
func NewNormRepo(txm *postgres.TxManager) *NormRepo {
	return &NormRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*norm.Norm](
			txm,
			normTable,
			postgres.ExtractDBColumns[norm.Norm](),
			func() *norm.Norm { return &norm.Norm{} },
		).
			WithSearch("zone_type", "resource_subtype", "unit_type").
			WithDefaultOrder("operation_type ASC, zone_type ASC, resource_subtype ASC"),
	}
}

func (r *NormRepo) keyQuery(key norm.Key) squirrel.SelectBuilder {
	return r.baseSelect().
		Where(squirrel.Eq{
			"client_id":        key.ClientID,
			"sku_id":           key.ProductID,
			"operation_type":   key.OperationType,
			"zone_type":        key.ZoneType,
			"resource_subtype": key.ResourceSubtype,
			"unit_type":        key.UnitType,
		}).
		Limit(1)
}

// FindByKey returns the norm with the given key tuple, marked for deletion or not.
// uq_cat_norms_key covers marked rows too, so the lookup must see them.
func (r *NormRepo) FindByKey(ctx context.Context, key norm.Key) (*norm.Norm, error) {
	n, err := r.FindOne(ctx, r.keyQuery(key))
	if apperror.IsNotFound(err) {
		return nil, apperror.NewNotFound("norm", key.String())
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

var _ norm.Repository = (*NormRepo)(nil)
