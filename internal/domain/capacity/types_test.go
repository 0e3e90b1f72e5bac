package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capplan/internal/core/apperror"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name           string
		start, end     string
		wantErr        bool
		wantStartLabel string
		wantEndLabel   string
	}{
		{name: "both", start: "2024-03-01", end: "2024-03-31", wantStartLabel: "2024-03-01", wantEndLabel: "2024-03-31"},
		{name: "start only", start: "2024-03-01", wantStartLabel: "2024-03-01", wantEndLabel: "all"},
		{name: "end only", end: "2024-03-31", wantStartLabel: "all", wantEndLabel: "2024-03-31"},
		{name: "none", wantStartLabel: "all", wantEndLabel: "all"},
		{name: "same day", start: "2024-03-01", end: "2024-03-01", wantStartLabel: "2024-03-01", wantEndLabel: "2024-03-01"},
		{name: "inverted", start: "2024-03-02", end: "2024-03-01", wantErr: true},
		{name: "malformed start", start: "01.03.2024", wantErr: true},
		{name: "malformed end", end: "2024-13-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseDateRange(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
				return
			}
			require.NoError(t, err)
			start, end := r.Labels()
			assert.Equal(t, tt.wantStartLabel, start)
			assert.Equal(t, tt.wantEndLabel, end)
		})
	}
}

func TestDateRange_ContainsIgnoresTimeOfDay(t *testing.T) {
	r, err := ParseDateRange("2024-03-01", "2024-03-01")
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, severityStrongDeficit, classify(strongDeficitThreshold.Sub(surplusThreshold)))
	assert.Equal(t, severityModerateDeficit, classify(strongDeficitThreshold))
	assert.Equal(t, severityNone, classify(surplusThreshold))
}
