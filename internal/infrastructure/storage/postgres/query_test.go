package postgres

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capplan/internal/domain/capacity"
)

func day(d int) *time.Time {
	t := time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDateRangeCond(t *testing.T) {
	tests := []struct {
		name     string
		r        capacity.DateRange
		wantSQL  string
		wantArgs []any
	}{
		{"both", capacity.DateRange{Start: day(1), End: day(7)}, "(d.date >= ? AND d.date <= ?)", []any{*day(1), *day(7)}},
		{"start only", capacity.DateRange{Start: day(1)}, "(d.date >= ?)", []any{*day(1)}},
		{"end only", capacity.DateRange{End: day(7)}, "(d.date <= ?)", []any{*day(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := DateRangeCond("d.date", tt.r).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}

	assert.Nil(t, DateRangeCond("d.date", capacity.DateRange{}))
}

func TestWhereDateRange_Unbounded(t *testing.T) {
	q := squirrel.Select("1").From("t")

	sql, args, err := WhereDateRange(q, "date", capacity.DateRange{}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM t", sql)
	assert.Empty(t, args)
}
