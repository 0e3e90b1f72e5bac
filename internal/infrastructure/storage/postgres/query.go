package postgres

import (
	"github.com/Masterminds/squirrel"

	"capplan/internal/domain/capacity"
)

// DateRangeCond renders an inclusive date range on col, open on a nil side.
// Returns nil when both sides are open.
func DateRangeCond(col string, r capacity.DateRange) squirrel.Sqlizer {
	and := squirrel.And{}
	if r.Start != nil {
		and = append(and, squirrel.GtOrEq{col: *r.Start})
	}
	if r.End != nil {
		and = append(and, squirrel.LtOrEq{col: *r.End})
	}
	if len(and) == 0 {
		return nil
	}
	return and
}

// WhereDateRange applies DateRangeCond to q when the range is bounded.
func WhereDateRange(q squirrel.SelectBuilder, col string, r capacity.DateRange) squirrel.SelectBuilder {
	if c := DateRangeCond(col, r); c != nil {
		return q.Where(c)
	}
	return q
}
