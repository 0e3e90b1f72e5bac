package report_repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capplan/internal/domain/capacity"
)

func date(d int) *time.Time {
	t := time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCapacitySource_InboundQuery(t *testing.T) {
	src := NewCapacitySource(nil)

	sql, args, err := src.inboundQuery(capacity.DateRange{Start: date(1), End: date(7)}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT d.client_id, l.sku_id, l.zone_id, l.quantity, l.unit_type, d.doc_number AS document_number, d.date, d.validated "+
			"FROM doc_inbound d JOIN doc_inbound_lines l ON l.document_id = d.id "+
			"WHERE d.deletion_mark = $1 AND d.validated = $2 AND (d.date >= $3 AND d.date <= $4)",
		sql)
	assert.Equal(t, []any{false, true, *date(1), *date(7)}, args)
}

func TestCapacitySource_OutboundQueryFallsBackToID(t *testing.T) {
	src := NewCapacitySource(nil)

	sql, args, err := src.outboundQuery(capacity.DateRange{}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "COALESCE(NULLIF(reference, ''), id::text) AS document_number")
	assert.NotContains(t, sql, "date >=")
	assert.Equal(t, []any{false, true}, args)
}

func TestCapacitySource_ResourcesSkipMarked(t *testing.T) {
	src := NewCapacitySource(nil)

	sql, args, err := src.resourcesQuery().ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, kind, subtype, name, zone_id FROM cat_resources WHERE deletion_mark = $1", sql)
	assert.Equal(t, []any{false}, args)
}

func TestCapacitySource_ZonesIncludeMarked(t *testing.T) {
	src := NewCapacitySource(nil)

	sql, args, err := src.zonesQuery().ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, type FROM cat_zones", sql)
	assert.Empty(t, args)
}

func TestLoadQuery(t *testing.T) {
	repo := NewReportRepo(nil)

	sql, args, err := repo.loadQuery(capacity.DateRange{End: date(30)}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "JOIN cat_clients c ON c.id = d.client_id")
	assert.Contains(t, sql, "JOIN cat_products p ON p.id = l.sku_id")
	assert.Contains(t, sql, "(d.date <= $3)")
	assert.Contains(t, sql, "ORDER BY d.date, d.doc_number, l.line_no")
	assert.Equal(t, []any{false, true, *date(30)}, args)
}

func TestCapacityQuery(t *testing.T) {
	repo := NewReportRepo(nil)

	sql, args, err := repo.capacityQuery(capacity.DateRange{Start: date(1)}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM reg_availability a JOIN cat_resources r ON r.id = a.resource_id")
	assert.Contains(t, sql, "a.deletion_mark = $1 AND r.deletion_mark = $2")
	assert.Equal(t, []any{false, false, *date(1)}, args)
	assert.Contains(t, sql, "ORDER BY a.date, r.name")
}
