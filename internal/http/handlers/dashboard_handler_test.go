package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/domain/mocks"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardRouter(t *testing.T) (*mocks.MockDashboardUseCase, http.Handler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc, logger.NewNop())

	r := newTestRouter(false)
	r.GET("/users/dashboard", h.Dashboard)
	r.GET("/users/bankroll_history", h.History)
	return uc, r
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	uc, r := newDashboardRouter(t)
	uc.EXPECT().Dashboard(gomock.Any(), testActor, "bogus").Return(&domain.Dashboard{
		Period: domain.Period{Key: "all", Label: "All Time"},
		User:   testUser(),
		Stats: domain.TournamentStats{
			TotalTournaments: 1,
			TotalProfit:      decimal.RequireFromString("100"),
		},
		Totals: domain.AdjustmentTotals{
			TotalDeposits:    decimal.RequireFromString("500"),
			TotalWithdrawals: decimal.RequireFromString("200"),
		},
		RecentTournaments: []*domain.Tournament{storedTournament()},
	}, nil)

	w := doJSON(r, http.MethodGet, "/users/dashboard?period=bogus", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]any](t, w)
	assert.Equal(t, "all", got["period"])
	assert.Equal(t, "All Time", got["period_display"])

	stats := got["stats"].(map[string]any)
	assert.Equal(t, 1.0, stats["total_tournaments"])
	assert.Equal(t, 100.0, stats["total_profit"])
	assert.Equal(t, 300.0, stats["net_adjustments"])

	assert.Len(t, got["recent_tournaments"], 1)
	assert.Len(t, got["recent_adjustments"], 0)
}

func TestDashboardHandler_History(t *testing.T) {
	uc, r := newDashboardRouter(t)
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().History(gomock.Any(), testActor, 2).Return(&domain.BankrollHistory{
		Days: 2,
		Points: []domain.BalancePoint{
			{Date: day, Balance: decimal.RequireFromString("1000")},
			{Date: day.AddDate(0, 0, 1), Balance: decimal.RequireFromString("1100")},
		},
	}, nil)

	w := doJSON(r, http.MethodGet, "/users/bankroll_history?days=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[HistoryResponse](t, w)
	assert.Equal(t, []string{"2024-03-14", "2024-03-15"}, got.Labels)
	assert.Equal(t, []float64{1000, 1100}, got.Data)
}

func TestDashboardHandler_HistoryDays(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		uc, r := newDashboardRouter(t)
		uc.EXPECT().History(gomock.Any(), testActor, 0).Return(&domain.BankrollHistory{Days: 30}, nil)

		w := doJSON(r, http.MethodGet, "/users/bankroll_history", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not a number", func(t *testing.T) {
		_, r := newDashboardRouter(t)

		w := doJSON(r, http.MethodGet, "/users/bankroll_history?days=ten", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Fields, "days")
	})

	t.Run("explicit zero is passed as out of range", func(t *testing.T) {
		uc, r := newDashboardRouter(t)
		uc.EXPECT().History(gomock.Any(), testActor, -1).
			Return(nil, domain.NewValidationError("days", "Ensure this value is between 1 and 365."))

		w := doJSON(r, http.MethodGet, "/users/bankroll_history?days=0", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
