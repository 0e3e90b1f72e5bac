package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"capplan/internal/domain"
	"capplan/internal/domain/documents/outbound"
	"capplan/internal/infrastructure/storage/postgres"
)

const outboundTable = "doc_outbound_plan"

// OutboundRepo implements outbound.Repository.
type OutboundRepo struct {
	*BaseDocumentRepo[*outbound.PlanEntry]
}

// NewOutboundRepo creates a new outbound plan repository.
func NewOutboundRepo(txm *postgres.TxManager) *OutboundRepo {
	return &OutboundRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*outbound.PlanEntry](
			txm,
			outboundTable,
			postgres.ExtractDBColumns[outbound.PlanEntry](),
			"reference",
			func() *outbound.PlanEntry { return &outbound.PlanEntry{} },
		),
	}
}

// List retrieves plan entries.
func (r *OutboundRepo) List(ctx context.Context, f outbound.ListFilter) (domain.ListResult[*outbound.PlanEntry], error) {
	conds := commonConds(f.ClientID, f.Validated, f.Dates)
	if f.ZoneID != nil {
		conds = append(conds, squirrel.Eq{"zone_id": *f.ZoneID})
	}
	return r.BaseDocumentRepo.List(ctx, f.ListFilter, conds...)
}

var _ outbound.Repository = (*OutboundRepo)(nil)
