package capacity

import (
	"cmp"
	"slices"

	"capplan/internal/core/types"
)

// Generate derives recommendations from balance rows.
// It is pure: the same rows always yield the same output in the same order.
// Thresholds apply to the exact balance. Rows with a zero balance or a
// balance within [0, 3] produce nothing. Only the reported balance is rounded.
func Generate(rows []BalanceRow) []Recommendation {
	out := make([]Recommendation, 0, len(rows))
	for _, row := range rows {
		if row.Balance.IsZero() {
			continue
		}
		sev := classify(row.Balance)
		if sev == severityNone {
			continue
		}

		category := CategorySurplus
		if row.Balance.IsNegative() {
			category = CategoryDeficit
		}
		kind := InferKind(row.ResourceSubtype)

		out = append(out, Recommendation{
			Date:            row.Date,
			ZoneID:          row.ZoneID,
			ZoneName:        row.ZoneName,
			ResourceSubtype: row.ResourceSubtype,
			Balance:         types.Present(row.Balance),
			Category:        category,
			Kind:            kind,
			Message:         message(sev, kind),
		})
	}
	slices.SortStableFunc(out, compareRecommendations)
	return out
}

func compareRecommendations(a, b Recommendation) int {
	return cmp.Or(
		a.Date.Compare(b.Date),
		cmp.Compare(a.ZoneName, b.ZoneName),
		cmp.Compare(a.ResourceSubtype, b.ResourceSubtype),
		cmp.Compare(a.ZoneID.String(), b.ZoneID.String()),
	)
}
