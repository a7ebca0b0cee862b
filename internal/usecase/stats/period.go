package stats

import (
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
)

// Period keys accepted by PeriodFilter
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// PeriodKeys lists the keys in display order
var PeriodKeys = []string{PeriodWeek, PeriodMonth, PeriodYear, PeriodAll}

// PeriodFilter maps a period key to its lower bound relative to today.
// Unknown keys behave as "all".
func PeriodFilter(key string, today time.Time) domain.Period {
	day := domain.DateOf(today)
	since := func(days int) *time.Time {
		start := day.AddDate(0, 0, -days)
		return &start
	}

	switch key {
	case PeriodWeek:
		return domain.Period{Key: key, Label: "Last 7 days", Start: since(7)}
	case PeriodMonth:
		return domain.Period{Key: key, Label: "Last 30 Days", Start: since(30)}
	case PeriodYear:
		return domain.Period{Key: key, Label: "Last Year", Start: since(365)}
	}
	return domain.Period{Key: PeriodAll, Label: "All Time"}
}
