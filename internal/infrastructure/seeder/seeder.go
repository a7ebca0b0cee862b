package seeder

import (
	"context"
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DemoPassword is the password of every seeded account
const DemoPassword = "password123"

type demoResult struct {
	daysAgo int
	buyIn   string
	cashed  string
	place   int
}

type demoAccount struct {
	username string
	bankroll string
	results  []demoResult
}

var demoAccounts = []demoAccount{
	{
		username: "player1",
		bankroll: "1000.00",
		results: []demoResult{
			{daysAgo: 40, buyIn: "55.00", cashed: "0", place: 312},
			{daysAgo: 12, buyIn: "109.00", cashed: "850.00", place: 4},
			{daysAgo: 3, buyIn: "22.00", cashed: "0", place: 77},
		},
	},
	{
		username: "player2",
		bankroll: "500.00",
		results: []demoResult{
			{daysAgo: 1, buyIn: "11.00", cashed: "40.00", place: 9},
		},
	},
	{username: "player3", bankroll: "100.00"},
}

// Seeder handles database seeding operations
type Seeder struct {
	userRepo domain.UserRepository
	ledger   domain.BankrollLedger
	hasher   auth.PasswordHasher
	logger   *logger.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo domain.UserRepository, ledger domain.BankrollLedger, hasher auth.PasswordHasher, logger *logger.Logger) *Seeder {
	return &Seeder{
		userRepo: userRepo,
		ledger:   ledger,
		hasher:   hasher,
		logger:   logger,
	}
}

// SeedUsers creates the demo accounts that do not exist yet, with their results.
// Existing accounts are left untouched.
func (s *Seeder) SeedUsers(ctx context.Context) error {
	s.logger.Info("Seeding users", zap.Int("count", len(demoAccounts)))

	hash, err := s.hasher.Hash(DemoPassword)
	if err != nil {
		return err
	}

	for _, acc := range demoAccounts {
		existing, err := s.userRepo.GetByUsername(ctx, acc.username)
		if err != nil {
			return err
		}
		if existing != nil {
			s.logger.Info("User already exists, skipping", zap.String("username", acc.username))
			continue
		}

		user := &domain.User{
			Username: acc.username,
			Password: hash,
			Bankroll: decimal.RequireFromString(acc.bankroll),
		}
		if err := s.ledger.OpenAccount(ctx, user); err != nil {
			s.logger.Error("Error creating user", zap.String("username", acc.username), zap.Error(err))
			return err
		}

		actor := domain.Actor{UserID: user.ID, Username: user.Username}
		for _, r := range acc.results {
			date := time.Now().UTC().AddDate(0, 0, -r.daysAgo)
			buyIn := decimal.RequireFromString(r.buyIn)
			cashed := decimal.RequireFromString(r.cashed)
			place := r.place
			in := domain.TournamentInput{Date: &date, BuyIn: &buyIn, CashedFor: &cashed, PlaceFinished: &place}
			if _, err := s.ledger.RecordTournament(ctx, actor, in); err != nil {
				return err
			}
		}

		s.logger.Info("Successfully created user",
			zap.Int64("user_id", user.ID),
			zap.String("username", user.Username),
			zap.Int("tournaments", len(acc.results)))
	}

	s.logger.Info("User seeding completed successfully")
	return nil
}
