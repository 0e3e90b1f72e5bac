package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capplan/internal/core/id"
	"capplan/internal/domain"
	"capplan/internal/domain/capacity"
	"capplan/internal/domain/filter"
)

func date(s string) *time.Time {
	t, err := time.Parse(capacity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestListFilter_DateBounds(t *testing.T) {
	tests := []struct {
		name  string
		r     capacity.DateRange
		wants []filter.Item
	}{
		{name: "unbounded", r: capacity.DateRange{}},
		{
			name:  "start only",
			r:     capacity.DateRange{Start: date("2024-03-01")},
			wants: []filter.Item{{Field: "date", Operator: filter.GreaterOrEqual, Value: *date("2024-03-01")}},
		},
		{
			name:  "end only",
			r:     capacity.DateRange{End: date("2024-03-31")},
			wants: []filter.Item{{Field: "date", Operator: filter.LessOrEqual, Value: *date("2024-03-31")}},
		},
		{
			name: "both inclusive",
			r:    capacity.DateRange{Start: date("2024-03-01"), End: date("2024-03-31")},
			wants: []filter.Item{
				{Field: "date", Operator: filter.GreaterOrEqual, Value: *date("2024-03-01")},
				{Field: "date", Operator: filter.LessOrEqual, Value: *date("2024-03-31")},
			},
		},
		{
			name: "single day",
			r:    capacity.DateRange{Start: date("2024-03-05"), End: date("2024-03-05")},
			wants: []filter.Item{
				{Field: "date", Operator: filter.GreaterOrEqual, Value: *date("2024-03-05")},
				{Field: "date", Operator: filter.LessOrEqual, Value: *date("2024-03-05")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ListFilter(domain.DefaultListFilter(), tt.r, nil)
			if len(tt.wants) == 0 {
				assert.Empty(t, f.AdvancedFilters)
			} else {
				assert.Equal(t, tt.wants, f.AdvancedFilters)
			}
			assert.Equal(t, "date", f.OrderBy)
		})
	}
}

func TestListFilter_Resource(t *testing.T) {
	resourceID := id.New()
	f := ListFilter(domain.DefaultListFilter(), capacity.DateRange{Start: date("2024-03-01")}, &resourceID)

	require.Len(t, f.AdvancedFilters, 2)
	assert.Equal(t, filter.Eq("resource_id", resourceID), f.AdvancedFilters[1])
}

func TestListFilter_KeepsCallerSettings(t *testing.T) {
	base := domain.DefaultListFilter()
	base.OrderBy = "-date"
	base.AdvancedFilters = []filter.Item{filter.Eq("deletion_mark", false)}

	f := ListFilter(base, capacity.DateRange{End: date("2024-03-31")}, nil)

	assert.Equal(t, "-date", f.OrderBy)
	assert.Equal(t, 50, f.Limit)
	require.Len(t, f.AdvancedFilters, 2)
	assert.Equal(t, filter.Eq("deletion_mark", false), f.AdvancedFilters[0])
}
