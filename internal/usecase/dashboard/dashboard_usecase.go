package dashboard

import (
	"context"
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/saradorri/pokerbankroll/internal/usecase/stats"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Dashboard and history sizes
const (
	RecentTournaments = 10
	RecentAdjustments = 5

	DefaultHistoryDays = 30
	MaxHistoryDays     = 365
)

// DashboardUseCase implements domain.DashboardUseCase
type DashboardUseCase struct {
	userRepo       domain.UserRepository
	tournamentRepo domain.TournamentRepository
	adjustmentRepo domain.AdjustmentRepository
	eventRepo      domain.BankrollEventRepository
	clock          domain.Clock
	logger         *logger.Logger
}

// NewDashboardUseCase creates a new dashboard use case
func NewDashboardUseCase(
	userRepo domain.UserRepository,
	tournamentRepo domain.TournamentRepository,
	adjustmentRepo domain.AdjustmentRepository,
	eventRepo domain.BankrollEventRepository,
	clock domain.Clock,
	logger *logger.Logger,
) domain.DashboardUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &DashboardUseCase{
		userRepo:       userRepo,
		tournamentRepo: tournamentRepo,
		adjustmentRepo: adjustmentRepo,
		eventRepo:      eventRepo,
		clock:          clock,
		logger:         logger,
	}
}

// Dashboard assembles the actor's overview for the period
func (uc *DashboardUseCase) Dashboard(ctx context.Context, actor domain.Actor, period string) (*domain.Dashboard, error) {
	p := stats.PeriodFilter(period, uc.clock())
	log := uc.logger.WithContext(ctx).WithField("period", p.Key)

	user, err := uc.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		log.Error("Failed to get user", zap.Error(err))
		return nil, domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User")
	}

	q := domain.ListQuery{Since: p.Start}
	tournaments, err := uc.tournamentRepo.List(ctx, actor, q)
	if err != nil {
		log.Error("Failed to list tournaments", zap.Error(err))
		return nil, domain.NewDatabaseError("list tournaments", err)
	}
	adjustments, err := uc.adjustmentRepo.List(ctx, actor, q)
	if err != nil {
		log.Error("Failed to list adjustments", zap.Error(err))
		return nil, domain.NewDatabaseError("list adjustments", err)
	}

	return &domain.Dashboard{
		Period:            p,
		User:              user,
		Stats:             stats.TournamentStats(tournaments),
		Totals:            stats.AdjustmentTotals(adjustments),
		RecentTournaments: head(tournaments, RecentTournaments),
		RecentAdjustments: head(adjustments, RecentAdjustments),
	}, nil
}

// History returns the daily closing bankroll for the last days days, today included.
// days 0 selects DefaultHistoryDays.
func (uc *DashboardUseCase) History(ctx context.Context, actor domain.Actor, days int) (*domain.BankrollHistory, error) {
	if days == 0 {
		days = DefaultHistoryDays
	}
	if days < 1 || days > MaxHistoryDays {
		return nil, domain.NewValidationError("days", "Ensure this value is between 1 and 365.")
	}

	today := domain.DateOf(uc.clock())
	start := today.AddDate(0, 0, -(days - 1))
	end := today.AddDate(0, 0, 1)

	opening := decimal.Zero
	last, err := uc.eventRepo.LastBefore(ctx, actor, start)
	if err != nil {
		uc.logger.Error("Failed to read opening balance", zap.Int64("user_id", actor.UserID), zap.Error(err))
		return nil, domain.NewDatabaseError("read bankroll events", err)
	}
	if last != nil {
		opening = last.BalanceAfter
	}

	events, err := uc.eventRepo.ListBetween(ctx, actor, start, end)
	if err != nil {
		uc.logger.Error("Failed to list bankroll events", zap.Int64("user_id", actor.UserID), zap.Error(err))
		return nil, domain.NewDatabaseError("read bankroll events", err)
	}

	return &domain.BankrollHistory{
		Days:   days,
		Points: stats.BalanceSeries(opening, events, start, days),
	}, nil
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
