package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// TestDatabase represents a migrated PostgreSQL test container
type TestDatabase struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	URL       string
}

// SetupTestDatabase starts a PostgreSQL container and applies the embedded migrations.
// The test is skipped when no container provider is available.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("bankroll_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		postgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{
			"test":      "pokerbankroll-repository",
			"test-name": t.Name(),
		}),
	)
	require.NoError(t, err)

	testDB := &TestDatabase{Container: container}
	t.Cleanup(func() { testDB.cleanup(t) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, database.MigrateUp(url))

	db, err := database.Open(url, nil)
	require.NoError(t, err)

	testDB.DB = db.GetDB()
	testDB.URL = url
	return testDB
}

func (td *TestDatabase) cleanup(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if td.DB != nil {
		if sqlDB, err := td.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if td.Container != nil {
		if err := td.Container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate test container: %v", err)
		}
	}
}

// CreateTestUser inserts a user with the given balance
func CreateTestUser(t *testing.T, db *gorm.DB, username, bankroll string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:  username,
		Password:  "hash",
		Bankroll:  decimal.RequireFromString(bankroll),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// ActorOf returns the actor for user
func ActorOf(user *domain.User) domain.Actor {
	return domain.Actor{UserID: user.ID, Username: user.Username}
}
