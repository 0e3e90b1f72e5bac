package capacity

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"capplan/internal/core/id"
	"capplan/internal/core/types"
)

// Gap reasons. A gap is a ledger line that produced no requirement row.
const (
	GapUnvalidated         = "unvalidated"
	GapNonPositiveQuantity = "non_positive_quantity"
	GapUnknownZone         = "unknown_zone"
	GapNoNorm              = "no_norm"
)

// Calculator turns validated ledger lines into requirement rows.
// It holds no state between calls and is safe for concurrent use.
type Calculator struct {
	src     Source
	metrics Metrics
}

// NewCalculator creates a calculator. A nil metrics disables gap counting.
func NewCalculator(src Source, metrics Metrics) *Calculator {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Calculator{src: src, metrics: metrics}
}

// Compute returns requirement rows for r, ordered by date, zone name and subtype.
func (c *Calculator) Compute(ctx context.Context, r DateRange) ([]RequirementRow, error) {
	var rows []RequirementRow
	err := snapshot(ctx, c.src, func(ctx context.Context) error {
		zones, err := c.src.Zones(ctx)
		if err != nil {
			return fmt.Errorf("load zones: %w", err)
		}
		rows, err = c.compute(ctx, r, indexZones(zones))
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Calculator) compute(ctx context.Context, r DateRange, zones map[id.ID]ZoneInfo) ([]RequirementRow, error) {
	inbound, err := c.src.ValidatedInbound(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("load inbound lines: %w", err)
	}
	outbound, err := c.src.ValidatedOutbound(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("load outbound entries: %w", err)
	}
	norms, err := c.src.Norms(ctx)
	if err != nil {
		return nil, fmt.Errorf("load norms: %w", err)
	}

	idx := indexNorms(norms)
	acc := make(map[requirementKey]*RequirementRow)

	for _, lines := range [][]DemandLine{inbound, outbound} {
		for _, line := range lines {
			if !r.Contains(line.Date) {
				continue
			}
			if !line.Validated {
				c.metrics.RecordGap(GapUnvalidated)
				continue
			}
			if !line.Quantity.IsPositive() {
				c.metrics.RecordGap(GapNonPositiveQuantity)
				continue
			}
			zone, ok := zones[line.ZoneID]
			if !ok {
				c.metrics.RecordGap(GapUnknownZone)
				continue
			}

			matched := idx[normKey{
				client:   line.ClientID,
				product:  line.ProductID,
				op:       line.Operation,
				zoneType: normalizeLabel(zone.Type),
				unit:     types.UnitOrDefault(line.UnitType),
			}]
			if len(matched) == 0 {
				c.metrics.RecordGap(GapNoNorm)
				continue
			}

			date := truncate(line.Date)
			for _, n := range matched {
				key := requirementKey{
					date:    date,
					op:      line.Operation,
					doc:     line.DocumentNumber,
					zone:    zone.ID,
					subtype: n.ResourceSubtype,
				}
				row, ok := acc[key]
				if !ok {
					row = &RequirementRow{
						Date:            date,
						Operation:       line.Operation,
						DocumentNumber:  line.DocumentNumber,
						ZoneID:          zone.ID,
						ZoneName:        zone.Name,
						ResourceSubtype: n.ResourceSubtype,
						RequiredUnits:   decimal.Zero,
					}
					acc[key] = row
				}
				row.RequiredUnits = row.RequiredUnits.Add(line.Quantity.Mul(n.Value))
			}
		}
	}

	rows := make([]RequirementRow, 0, len(acc))
	for _, row := range acc {
		rows = append(rows, *row)
	}
	slices.SortFunc(rows, compareRequirements)
	return rows, nil
}

type requirementKey struct {
	date    time.Time
	op      OperationType
	doc     string
	zone    id.ID
	subtype string
}

type normKey struct {
	client   id.ID
	product  id.ID
	op       OperationType
	zoneType string
	unit     string
}

// indexNorms groups norms by match key. Norms with a non-positive value never match.
func indexNorms(norms []NormEntry) map[normKey][]NormEntry {
	idx := make(map[normKey][]NormEntry, len(norms))
	for _, n := range norms {
		if !n.Value.IsPositive() {
			continue
		}
		k := normKey{
			client:   n.ClientID,
			product:  n.ProductID,
			op:       n.Operation,
			zoneType: normalizeLabel(n.ZoneType),
			unit:     types.UnitOrDefault(n.UnitType),
		}
		idx[k] = append(idx[k], n)
	}
	return idx
}

func indexZones(zones []ZoneInfo) map[id.ID]ZoneInfo {
	idx := make(map[id.ID]ZoneInfo, len(zones))
	for _, z := range zones {
		idx[z.ID] = z
	}
	return idx
}

func normalizeLabel(s string) string {
	return strings.TrimSpace(s)
}

func compareRequirements(a, b RequirementRow) int {
	return cmp.Or(
		a.Date.Compare(b.Date),
		cmp.Compare(a.ZoneName, b.ZoneName),
		cmp.Compare(a.ResourceSubtype, b.ResourceSubtype),
		cmp.Compare(a.DocumentNumber, b.DocumentNumber),
		cmp.Compare(a.ZoneID.String(), b.ZoneID.String()),
		cmp.Compare(a.Operation, b.Operation),
	)
}
