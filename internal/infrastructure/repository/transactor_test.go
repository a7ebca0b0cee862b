package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/repository/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_RollsBackEveryWrite(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	tx := NewTransactor(testDB.DB)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, testDB.DB, "player1", "1000")
	actor := testutil.ActorOf(user)
	boom := errors.New("boom")

	err := tx.WithinTransaction(ctx, func(ctx context.Context, repos domain.Repositories) error {
		a := &domain.Adjustment{UserID: user.ID, Amount: decimal.NewFromInt(500), TransactionType: domain.TransactionTypeDeposit}
		require.NoError(t, repos.Adjustments.Create(ctx, a))
		_, err := repos.Users.AdjustBankroll(ctx, user.ID, a.Amount)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	repos := NewRepositories(testDB.DB)
	stored, err := repos.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1000").Equal(stored.Bankroll))

	adjustments, err := repos.Adjustments.List(ctx, actor, domain.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, adjustments)
}

func TestBankrollEventRepository_Window(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewBankrollEventRepository(testDB.DB)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, testDB.DB, "player1", "100")
	other := testutil.CreateTestUser(t, testDB.DB, "player2", "100")
	actor := testutil.ActorOf(user)

	at := func(d int, h int) time.Time { return time.Date(2024, 3, d, h, 0, 0, 0, time.UTC) }
	add := func(owner *domain.User, when time.Time, after string) {
		require.NoError(t, repo.Create(ctx, &domain.BankrollEvent{
			UserID:        owner.ID,
			Source:        domain.EventSourceDeposit,
			Delta:         decimal.Zero,
			BalanceBefore: decimal.Zero,
			BalanceAfter:  decimal.RequireFromString(after),
			CreatedAt:     when,
		}))
	}
	add(user, at(1, 10), "100")
	add(user, at(3, 9), "300")
	add(user, at(3, 20), "250")
	add(other, at(3, 12), "999")

	last, err := repo.LastBefore(ctx, actor, at(3, 0))
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, decimal.RequireFromString("100").Equal(last.BalanceAfter))

	none, err := repo.LastBefore(ctx, actor, at(1, 0))
	require.NoError(t, err)
	assert.Nil(t, none)

	events, err := repo.ListBetween(ctx, actor, at(3, 0), at(4, 0))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, decimal.RequireFromString("300").Equal(events[0].BalanceAfter))
	assert.True(t, decimal.RequireFromString("250").Equal(events[1].BalanceAfter))
}
