package reports

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"capplan/internal/core/types"
	"capplan/internal/domain/capacity"
)

// Repository reads the ledger-based report data.
type Repository interface {
	// LoadItems returns validated inbound lines ordered by date and document number.
	LoadItems(ctx context.Context, r capacity.DateRange) ([]LoadItem, error)

	// CapacityItems returns availability records ordered by date and resource name.
	CapacityItems(ctx context.Context, r capacity.DateRange) ([]CapacityItem, error)
}

// Calculator provides the derived capacity rows.
type Calculator interface {
	ComputeRequirements(ctx context.Context, r capacity.DateRange) ([]capacity.RequirementRow, error)
	ComputeBalance(ctx context.Context, r capacity.DateRange) ([]capacity.BalanceRow, error)
}

// Service provides report generation operations.
type Service struct {
	repo Repository
	calc Calculator
}

// NewService creates a new reports service.
func NewService(repo Repository, calc Calculator) *Service {
	return &Service{repo: repo, calc: calc}
}

// Generate builds the report of type t for range r.
// Numbers are rounded to 2 decimals.
func (s *Service) Generate(ctx context.Context, t Type, r capacity.DateRange) (*Report, error) {
	rep := &Report{
		Type:    t,
		Title:   t.Title(),
		Range:   r,
		Columns: columns[t],
	}

	var err error
	switch t {
	case TypeBalance:
		rep.Rows, err = s.balanceRows(ctx, r)
	case TypeLoad:
		rep.Rows, err = s.loadRows(ctx, r)
	case TypeRequirement:
		rep.Rows, err = s.requirementRows(ctx, r)
	case TypeCapacity:
		rep.Rows, err = s.capacityRows(ctx, r)
	default:
		_, err = ParseType(string(t))
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%s report: %w", t, err)
	}

	return rep, nil
}

func (s *Service) balanceRows(ctx context.Context, r capacity.DateRange) ([][]any, error) {
	balance, err := s.calc.ComputeBalance(ctx, r)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(balance))
	for _, b := range balance {
		b = b.Rounded()
		rows = append(rows, []any{b.Date, b.ZoneName, b.ResourceSubtype, b.RequiredHours, b.AvailableHours, b.Balance})
	}
	return rows, nil
}

func (s *Service) requirementRows(ctx context.Context, r capacity.DateRange) ([][]any, error) {
	reqs, err := s.calc.ComputeRequirements(ctx, r)
	if err != nil {
		return nil, err
	}

	// Report is ordered by date and document, the zone only separates ties.
	slices.SortStableFunc(reqs, func(a, b capacity.RequirementRow) int {
		return cmp.Or(
			a.Date.Compare(b.Date),
			cmp.Compare(a.DocumentNumber, b.DocumentNumber),
		)
	})

	rows := make([][]any, 0, len(reqs))
	for _, q := range reqs {
		q = q.Rounded()
		rows = append(rows, []any{q.Date, q.DocumentNumber, q.ZoneName, q.ResourceSubtype, q.RequiredUnits})
	}
	return rows, nil
}

func (s *Service) loadRows(ctx context.Context, r capacity.DateRange) ([][]any, error) {
	items, err := s.repo.LoadItems(ctx, r)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{it.Date, it.DocumentNumber, it.ClientName, it.ProductName, types.Present(it.Quantity), it.UnitType})
	}
	return rows, nil
}

func (s *Service) capacityRows(ctx context.Context, r capacity.DateRange) ([][]any, error) {
	items, err := s.repo.CapacityItems(ctx, r)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{it.Date, it.ResourceName, it.ResourceSubtype, types.Present(it.Hours)})
	}
	return rows, nil
}
