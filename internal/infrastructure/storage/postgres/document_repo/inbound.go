package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"capplan/internal/core/id"
	"capplan/internal/domain"
	"capplan/internal/domain/documents/inbound"
	"capplan/internal/infrastructure/storage/postgres"
)

const (
	inboundTable      = "doc_inbound"
	inboundLinesTable = "doc_inbound_lines"
)

var inboundLineColumns = []string{
	"line_id", "document_id", "line_no", "sku_id", "zone_id", "quantity", "unit_type",
}

// InboundRepo implements inbound.Repository.
type InboundRepo struct {
	*BaseDocumentRepo[*inbound.Document]
	inserter *postgres.BatchInserter
}

// NewInboundRepo creates a new inbound document repository.
func NewInboundRepo(txm *postgres.TxManager) *InboundRepo {
	return &InboundRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*inbound.Document](
			txm,
			inboundTable,
			postgres.ExtractDBColumns[inbound.Document](),
			"doc_number",
			func() *inbound.Document { return &inbound.Document{} },
		),
		inserter: postgres.NewBatchInserter(txm),
	}
}

// GetLines retrieves document lines ordered by line number.
func (r *InboundRepo) GetLines(ctx context.Context, docID id.ID) ([]inbound.Item, error) {
	sql, args, err := r.Builder().
		Select(inboundLineColumns...).
		From(inboundLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	lines := make([]inbound.Item, 0)
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, postgres.MapError(err, inboundLinesTable, "select")
	}

	return lines, nil
}

// SaveLines replaces all lines of a document.
// Inside a transaction lines are written with COPY.
func (r *InboundRepo) SaveLines(ctx context.Context, docID id.ID, lines []inbound.Item) error {
	delSQL, delArgs, err := r.Builder().
		Delete(inboundLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete lines: %w", err)
	}

	querier := r.querier(ctx)
	if _, err := querier.Exec(ctx, delSQL, delArgs...); err != nil {
		return postgres.MapError(err, inboundLinesTable, "delete")
	}

	if len(lines) == 0 {
		return nil
	}

	if r.txm.GetTx(ctx) != nil {
		rows := make([][]any, 0, len(lines))
		for _, l := range lines {
			rows = append(rows, []any{
				l.LineID, docID, l.LineNo, l.ProductID, l.ZoneID, postgres.Numeric(l.Quantity), l.UnitType,
			})
		}
		if _, err := r.inserter.CopyFromSlice(ctx, inboundLinesTable, inboundLineColumns, rows); err != nil {
			return fmt.Errorf("copy lines: %w", err)
		}
		return nil
	}

	sql, args, err := r.insertLinesQuery(docID, lines).ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, inboundLinesTable, "insert")
	}

	return nil
}

func (r *InboundRepo) insertLinesQuery(docID id.ID, lines []inbound.Item) squirrel.InsertBuilder {
	q := r.Builder().Insert(inboundLinesTable).Columns(inboundLineColumns...)
	for _, l := range lines {
		q = q.Values(l.LineID, docID, l.LineNo, l.ProductID, l.ZoneID, l.Quantity, l.UnitType)
	}
	return q
}

// List retrieves document headers.
func (r *InboundRepo) List(ctx context.Context, f inbound.ListFilter) (domain.ListResult[*inbound.Document], error) {
	return r.BaseDocumentRepo.List(ctx, f.ListFilter, commonConds(f.ClientID, f.Validated, f.Dates)...)
}

var _ inbound.Repository = (*InboundRepo)(nil)
