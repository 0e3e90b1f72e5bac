// Package report_repo provides PostgreSQL read models for capacity planning and reports.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"capplan/internal/core/id"
	"capplan/internal/domain/capacity"
	"capplan/internal/infrastructure/storage/postgres"
)

// CapacitySource implements capacity.Source over the ledgers and catalogs.
type CapacitySource struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewCapacitySource creates a new capacity source.
func NewCapacitySource(txm *postgres.TxManager) *CapacitySource {
	return &CapacitySource{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var (
	_ capacity.Source      = (*CapacitySource)(nil)
	_ capacity.Snapshotter = (*CapacitySource)(nil)
)

// Snapshot runs fn in one read-only transaction so every read sees the same data.
func (s *CapacitySource) Snapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.txm.ReadOnly(ctx, fn)
}

func (s *CapacitySource) selectAll(ctx context.Context, dst any, q squirrel.SelectBuilder, what string) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build %s query: %w", what, err)
	}
	if err := pgxscan.Select(ctx, s.txm.GetQuerier(ctx), dst, sql, args...); err != nil {
		return postgres.MapError(err, what, "select")
	}
	return nil
}

type demandRow struct {
	ClientID       id.ID           `db:"client_id"`
	ProductID      id.ID           `db:"sku_id"`
	ZoneID         id.ID           `db:"zone_id"`
	Quantity       decimal.Decimal `db:"quantity"`
	UnitType       string          `db:"unit_type"`
	DocumentNumber string          `db:"document_number"`
	Date           time.Time       `db:"date"`
	Validated      bool            `db:"validated"`
}

func toDemand(op capacity.OperationType, rows []demandRow) []capacity.DemandLine {
	out := make([]capacity.DemandLine, 0, len(rows))
	for _, r := range rows {
		out = append(out, capacity.DemandLine{
			Operation:      op,
			ClientID:       r.ClientID,
			ProductID:      r.ProductID,
			ZoneID:         r.ZoneID,
			Quantity:       r.Quantity,
			UnitType:       r.UnitType,
			DocumentNumber: r.DocumentNumber,
			Date:           r.Date,
			Validated:      r.Validated,
		})
	}
	return out
}

func (s *CapacitySource) inboundQuery(r capacity.DateRange) squirrel.SelectBuilder {
	q := s.builder.
		Select(
			"d.client_id", "l.sku_id", "l.zone_id", "l.quantity", "l.unit_type",
			"d.doc_number AS document_number", "d.date", "d.validated",
		).
		From("doc_inbound d").
		Join("doc_inbound_lines l ON l.document_id = d.id").
		Where(squirrel.Eq{"d.validated": true, "d.deletion_mark": false})
	return postgres.WhereDateRange(q, "d.date", r)
}

func (s *CapacitySource) outboundQuery(r capacity.DateRange) squirrel.SelectBuilder {
	q := s.builder.
		Select(
			"client_id", "sku_id", "zone_id", "quantity", "unit_type",
			"COALESCE(NULLIF(reference, ''), id::text) AS document_number", "date", "validated",
		).
		From("doc_outbound_plan").
		Where(squirrel.Eq{"validated": true, "deletion_mark": false})
	return postgres.WhereDateRange(q, "date", r)
}

// ValidatedInbound returns lines of validated inbound documents dated inside r.
func (s *CapacitySource) ValidatedInbound(ctx context.Context, r capacity.DateRange) ([]capacity.DemandLine, error) {
	var rows []demandRow
	if err := s.selectAll(ctx, &rows, s.inboundQuery(r), "doc_inbound"); err != nil {
		return nil, err
	}
	return toDemand(capacity.OperationInbound, rows), nil
}

// ValidatedOutbound returns validated plan entries dated inside r.
func (s *CapacitySource) ValidatedOutbound(ctx context.Context, r capacity.DateRange) ([]capacity.DemandLine, error) {
	var rows []demandRow
	if err := s.selectAll(ctx, &rows, s.outboundQuery(r), "doc_outbound_plan"); err != nil {
		return nil, err
	}
	return toDemand(capacity.OperationOutbound, rows), nil
}

type normRow struct {
	ClientID        id.ID                  `db:"client_id"`
	ProductID       id.ID                  `db:"sku_id"`
	Operation       capacity.OperationType `db:"operation_type"`
	ZoneType        string                 `db:"zone_type"`
	ResourceSubtype string                 `db:"resource_subtype"`
	UnitType        string                 `db:"unit_type"`
	Value           decimal.Decimal        `db:"norm_value"`
}

// Norms returns norms not marked for deletion.
func (s *CapacitySource) Norms(ctx context.Context) ([]capacity.NormEntry, error) {
	q := s.builder.
		Select("client_id", "sku_id", "operation_type", "zone_type", "resource_subtype", "unit_type", "norm_value").
		From("cat_norms").
		Where(squirrel.Eq{"deletion_mark": false})

	var rows []normRow
	if err := s.selectAll(ctx, &rows, q, "cat_norms"); err != nil {
		return nil, err
	}

	out := make([]capacity.NormEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, capacity.NormEntry(r))
	}
	return out, nil
}

type availabilityRow struct {
	ResourceID id.ID           `db:"resource_id"`
	Date       time.Time       `db:"date"`
	Hours      decimal.Decimal `db:"available_hours"`
}

// Availability returns availability records dated inside r.
func (s *CapacitySource) Availability(ctx context.Context, r capacity.DateRange) ([]capacity.AvailabilityEntry, error) {
	q := s.builder.
		Select("resource_id", "date", "available_hours").
		From("reg_availability").
		Where(squirrel.Eq{"deletion_mark": false})
	q = postgres.WhereDateRange(q, "date", r)

	var rows []availabilityRow
	if err := s.selectAll(ctx, &rows, q, "reg_availability"); err != nil {
		return nil, err
	}

	out := make([]capacity.AvailabilityEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, capacity.AvailabilityEntry(r))
	}
	return out, nil
}

type zoneRow struct {
	ID   id.ID  `db:"id"`
	Name string `db:"name"`
	Type string `db:"type"`
}

// zonesQuery keeps zones marked for deletion: validated documents may still
// point at them, and their demand must keep a name and a zone type.
func (s *CapacitySource) zonesQuery() squirrel.SelectBuilder {
	return s.builder.Select("id", "name", "type").From("cat_zones")
}

// Zones returns every zone, including those marked for deletion.
func (s *CapacitySource) Zones(ctx context.Context) ([]capacity.ZoneInfo, error) {
	var rows []zoneRow
	if err := s.selectAll(ctx, &rows, s.zonesQuery(), "cat_zones"); err != nil {
		return nil, err
	}

	out := make([]capacity.ZoneInfo, 0, len(rows))
	for _, r := range rows {
		out = append(out, capacity.ZoneInfo(r))
	}
	return out, nil
}

type resourceRow struct {
	ID      id.ID                 `db:"id"`
	Kind    capacity.ResourceKind `db:"kind"`
	Subtype string                `db:"subtype"`
	Name    string                `db:"name"`
	ZoneID  *id.ID                `db:"zone_id"`
}

func (s *CapacitySource) resourcesQuery() squirrel.SelectBuilder {
	return s.builder.
		Select("id", "kind", "subtype", "name", "zone_id").
		From("cat_resources").
		Where(squirrel.Eq{"deletion_mark": false})
}

// Resources returns resources not marked for deletion. Availability of a
// marked resource finds no resource and adds no hours.
func (s *CapacitySource) Resources(ctx context.Context) ([]capacity.ResourceInfo, error) {
	var rows []resourceRow
	if err := s.selectAll(ctx, &rows, s.resourcesQuery(), "cat_resources"); err != nil {
		return nil, err
	}

	out := make([]capacity.ResourceInfo, 0, len(rows))
	for _, r := range rows {
		out = append(out, capacity.ResourceInfo(r))
	}
	return out, nil
}
