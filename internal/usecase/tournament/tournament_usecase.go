package tournament

import (
	"context"
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/saradorri/pokerbankroll/internal/usecase/stats"
	"go.uber.org/zap"
)

// TournamentUseCase implements domain.TournamentUseCase
type TournamentUseCase struct {
	tournamentRepo domain.TournamentRepository
	ledger         domain.BankrollLedger
	clock          domain.Clock
	logger         *logger.Logger
}

// NewTournamentUseCase creates a new tournament use case
func NewTournamentUseCase(tournamentRepo domain.TournamentRepository, ledger domain.BankrollLedger, clock domain.Clock, logger *logger.Logger) domain.TournamentUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &TournamentUseCase{
		tournamentRepo: tournamentRepo,
		ledger:         ledger,
		clock:          clock,
		logger:         logger,
	}
}

// Create logs a new result for the actor
func (uc *TournamentUseCase) Create(ctx context.Context, actor domain.Actor, in domain.TournamentInput) (*domain.Tournament, error) {
	return uc.ledger.RecordTournament(ctx, actor, in)
}

// Get returns one of the actor's results
func (uc *TournamentUseCase) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Tournament, error) {
	t, err := uc.tournamentRepo.GetByID(ctx, actor, id)
	if err != nil {
		uc.logger.Error("Failed to get tournament",
			zap.Int64("user_id", actor.UserID),
			zap.Int64("tournament_id", id),
			zap.Error(err))
		return nil, domain.NewDatabaseError("get tournament", err)
	}
	if t == nil {
		return nil, domain.NewNotFoundError("Tournament")
	}
	return t, nil
}

// List returns the actor's results in the period, newest first, with their total profit
func (uc *TournamentUseCase) List(ctx context.Context, actor domain.Actor, period string) (*domain.TournamentList, error) {
	p := stats.PeriodFilter(period, uc.clock())
	results, err := uc.list(ctx, actor, p)
	if err != nil {
		return nil, err
	}
	return &domain.TournamentList{
		Period:      p,
		Tournaments: results,
		TotalCount:  len(results),
		TotalProfit: stats.TotalProfit(results),
	}, nil
}

// Update replaces or patches one of the actor's results
func (uc *TournamentUseCase) Update(ctx context.Context, actor domain.Actor, id int64, in domain.TournamentInput, partial bool) (*domain.Tournament, error) {
	return uc.ledger.ReviseTournament(ctx, actor, id, in, partial)
}

// Delete removes one of the actor's results
func (uc *TournamentUseCase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	return uc.ledger.RemoveTournament(ctx, actor, id)
}

// Stats aggregates the actor's results in the period
func (uc *TournamentUseCase) Stats(ctx context.Context, actor domain.Actor, period string) (*domain.TournamentStats, error) {
	results, err := uc.list(ctx, actor, stats.PeriodFilter(period, uc.clock()))
	if err != nil {
		return nil, err
	}
	s := stats.TournamentStats(results)
	return &s, nil
}

func (uc *TournamentUseCase) list(ctx context.Context, actor domain.Actor, p domain.Period) ([]*domain.Tournament, error) {
	results, err := uc.tournamentRepo.List(ctx, actor, domain.ListQuery{Since: p.Start})
	if err != nil {
		uc.logger.Error("Failed to list tournaments",
			zap.Int64("user_id", actor.UserID),
			zap.String("period", p.Key),
			zap.Error(err))
		return nil, domain.NewDatabaseError("list tournaments", err)
	}
	return results, nil
}
