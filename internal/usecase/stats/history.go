package stats

import (
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/shopspring/decimal"
)

// BalanceSeries replays events (oldest first) over days calendar days starting at
// start and returns the closing balance of each day. opening is the balance
// before the first day.
func BalanceSeries(opening decimal.Decimal, events []*domain.BankrollEvent, start time.Time, days int) []domain.BalancePoint {
	points := make([]domain.BalancePoint, 0, days)
	balance := opening
	day := domain.DateOf(start)
	i := 0
	for n := 0; n < days; n++ {
		next := day.AddDate(0, 0, 1)
		for i < len(events) && events[i].CreatedAt.Before(next) {
			balance = events[i].BalanceAfter
			i++
		}
		points = append(points, domain.BalancePoint{Date: day, Balance: balance})
		day = next
	}
	return points
}
