package dashboard

import (
	"context"
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

var (
	fixedNow = time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)
	actor    = domain.Actor{UserID: 1, Username: "player1"}
)

type dashboardFixture struct {
	users       *mocks.MockUserRepository
	tournaments *mocks.MockTournamentRepository
	adjustments *mocks.MockAdjustmentRepository
	events      *mocks.MockBankrollEventRepository
	uc          domain.DashboardUseCase
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	ctrl := gomock.NewController(t)
	f := &dashboardFixture{
		users:       mocks.NewMockUserRepository(ctrl),
		tournaments: mocks.NewMockTournamentRepository(ctrl),
		adjustments: mocks.NewMockAdjustmentRepository(ctrl),
		events:      mocks.NewMockBankrollEventRepository(ctrl),
	}
	f.uc = NewDashboardUseCase(f.users, f.tournaments, f.adjustments, f.events,
		func() time.Time { return fixedNow }, logger.NewNop())
	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDashboardUseCase_Dashboard(t *testing.T) {
	f := newDashboardFixture(t)

	tournaments := make([]*domain.Tournament, 12)
	for i := range tournaments {
		tournaments[i] = &domain.Tournament{ID: int64(12 - i), UserID: 1, BuyIn: dec("10"), CashedFor: dec("0"), PlaceFinished: 100}
	}
	adjustments := make([]*domain.Adjustment, 7)
	for i := range adjustments {
		adjustments[i] = &domain.Adjustment{ID: int64(7 - i), UserID: 1, Amount: dec("100"), TransactionType: domain.TransactionTypeDeposit}
	}

	user := &domain.User{ID: 1, Username: "player1", Bankroll: dec("1380")}
	f.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(user, nil)
	f.tournaments.EXPECT().List(gomock.Any(), actor, domain.ListQuery{}).Return(tournaments, nil)
	f.adjustments.EXPECT().List(gomock.Any(), actor, domain.ListQuery{}).Return(adjustments, nil)

	d, err := f.uc.Dashboard(context.Background(), actor, "all")

	require.NoError(t, err)
	assert.Equal(t, "All Time", d.Period.Label)
	assert.Equal(t, user, d.User)
	assert.Equal(t, 12, d.Stats.TotalTournaments)
	assert.True(t, dec("-120").Equal(d.Stats.TotalProfit))
	assert.True(t, dec("700").Equal(d.Totals.TotalDeposits))
	require.Len(t, d.RecentTournaments, RecentTournaments)
	assert.Equal(t, int64(12), d.RecentTournaments[0].ID)
	require.Len(t, d.RecentAdjustments, RecentAdjustments)
	assert.Equal(t, int64(7), d.RecentAdjustments[0].ID)
}

func TestDashboardUseCase_History(t *testing.T) {
	f := newDashboardFixture(t)

	start := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	f.events.EXPECT().LastBefore(gomock.Any(), actor, start).Return(&domain.BankrollEvent{BalanceAfter: dec("100")}, nil)
	f.events.EXPECT().ListBetween(gomock.Any(), actor, start, end).Return([]*domain.BankrollEvent{
		{CreatedAt: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC), BalanceAfter: dec("200")},
		{CreatedAt: time.Date(2024, 3, 14, 22, 0, 0, 0, time.UTC), BalanceAfter: dec("150")},
	}, nil)

	h, err := f.uc.History(context.Background(), actor, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, h.Days)
	require.Len(t, h.Points, 3)
	assert.Equal(t, start, h.Points[0].Date)
	assert.True(t, dec("100").Equal(h.Points[0].Balance))
	assert.True(t, dec("150").Equal(h.Points[1].Balance))
	assert.True(t, dec("150").Equal(h.Points[2].Balance))
}

func TestDashboardUseCase_History_DefaultsAndBounds(t *testing.T) {
	f := newDashboardFixture(t)
	f.events.EXPECT().LastBefore(gomock.Any(), actor, gomock.Any()).Return(nil, nil)
	f.events.EXPECT().ListBetween(gomock.Any(), actor, gomock.Any(), gomock.Any()).Return(nil, nil)

	h, err := f.uc.History(context.Background(), actor, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultHistoryDays, h.Days)
	require.Len(t, h.Points, DefaultHistoryDays)
	assert.True(t, h.Points[0].Balance.IsZero())
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), h.Points[DefaultHistoryDays-1].Date)

	for _, days := range []int{-1, 366} {
		_, err := f.uc.History(context.Background(), actor, days)
		assert.True(t, domain.IsValidation(err), "days=%d", days)
	}
}
