package report_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"capplan/internal/domain/capacity"
	"capplan/internal/domain/reports"
	"capplan/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	*CapacitySource
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{CapacitySource: NewCapacitySource(txm)}
}

var _ reports.Repository = (*ReportRepo)(nil)

func (r *ReportRepo) loadQuery(dates capacity.DateRange) squirrel.SelectBuilder {
	q := r.builder.
		Select(
			"d.date", "d.doc_number",
			"c.name AS client_name", "p.name AS product_name",
			"l.quantity", "l.unit_type",
		).
		From("doc_inbound d").
		Join("doc_inbound_lines l ON l.document_id = d.id").
		Join("cat_clients c ON c.id = d.client_id").
		Join("cat_products p ON p.id = l.sku_id").
		Where(squirrel.Eq{"d.validated": true, "d.deletion_mark": false})

	return postgres.WhereDateRange(q, "d.date", dates).
		OrderBy("d.date", "d.doc_number", "l.line_no")
}

// LoadItems returns validated inbound lines with client and product names.
func (r *ReportRepo) LoadItems(ctx context.Context, dates capacity.DateRange) ([]reports.LoadItem, error) {
	items := make([]reports.LoadItem, 0)
	if err := r.selectAll(ctx, &items, r.loadQuery(dates), "doc_inbound"); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ReportRepo) capacityQuery(dates capacity.DateRange) squirrel.SelectBuilder {
	q := r.builder.
		Select("a.date", "a.resource_id", "r.name AS resource_name", "r.subtype", "a.available_hours").
		From("reg_availability a").
		Join("cat_resources r ON r.id = a.resource_id").
		Where(squirrel.Eq{"a.deletion_mark": false, "r.deletion_mark": false})

	return postgres.WhereDateRange(q, "a.date", dates).
		OrderBy("a.date", "r.name")
}

// CapacityItems returns availability per resource.
func (r *ReportRepo) CapacityItems(ctx context.Context, dates capacity.DateRange) ([]reports.CapacityItem, error) {
	items := make([]reports.CapacityItem, 0)
	if err := r.selectAll(ctx, &items, r.capacityQuery(dates), "reg_availability"); err != nil {
		return nil, err
	}
	return items, nil
}
