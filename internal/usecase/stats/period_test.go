package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodFilter(t *testing.T) {
	today := time.Date(2024, 3, 31, 18, 45, 0, 0, time.UTC)

	tests := []struct {
		key      string
		wantKey  string
		label    string
		wantDate string
	}{
		{key: "week", wantKey: "week", label: "Last 7 days", wantDate: "2024-03-24"},
		{key: "month", wantKey: "month", label: "Last 30 Days", wantDate: "2024-03-01"},
		{key: "year", wantKey: "year", label: "Last Year", wantDate: "2023-04-01"},
		{key: "all", wantKey: "all", label: "All Time"},
		{key: "fortnight", wantKey: "all", label: "All Time"},
		{key: "", wantKey: "all", label: "All Time"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p := PeriodFilter(tt.key, today)

			assert.Equal(t, tt.wantKey, p.Key)
			assert.Equal(t, tt.label, p.Label)
			if tt.wantDate == "" {
				assert.Nil(t, p.Start)
				return
			}
			require.NotNil(t, p.Start)
			assert.Equal(t, tt.wantDate, p.Start.Format(time.DateOnly))
		})
	}
}
