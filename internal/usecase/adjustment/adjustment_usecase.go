package adjustment

import (
	"context"
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/saradorri/pokerbankroll/internal/usecase/stats"
	"go.uber.org/zap"
)

// AdjustmentUseCase implements domain.AdjustmentUseCase
type AdjustmentUseCase struct {
	adjustmentRepo domain.AdjustmentRepository
	ledger         domain.BankrollLedger
	clock          domain.Clock
	logger         *logger.Logger
}

// NewAdjustmentUseCase creates a new adjustment use case
func NewAdjustmentUseCase(adjustmentRepo domain.AdjustmentRepository, ledger domain.BankrollLedger, clock domain.Clock, logger *logger.Logger) domain.AdjustmentUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &AdjustmentUseCase{
		adjustmentRepo: adjustmentRepo,
		ledger:         ledger,
		clock:          clock,
		logger:         logger,
	}
}

// Create records a deposit, withdrawal or correction
func (uc *AdjustmentUseCase) Create(ctx context.Context, actor domain.Actor, in domain.AdjustmentInput) (*domain.Adjustment, error) {
	return uc.ledger.ApplyAdjustment(ctx, actor, in)
}

// Get returns one of the actor's adjustments
func (uc *AdjustmentUseCase) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Adjustment, error) {
	a, err := uc.adjustmentRepo.GetByID(ctx, actor, id)
	if err != nil {
		uc.logger.Error("Failed to get adjustment", zap.Int64("adjustment_id", id), zap.Error(err))
		return nil, domain.NewDatabaseError("get adjustment", err)
	}
	if a == nil {
		return nil, domain.NewNotFoundError("Adjustment")
	}
	return a, nil
}

// List returns the actor's adjustments in the period, newest first
func (uc *AdjustmentUseCase) List(ctx context.Context, actor domain.Actor, period string) (*domain.AdjustmentList, error) {
	p := stats.PeriodFilter(period, uc.clock())
	adjustments, err := uc.list(ctx, actor, p)
	if err != nil {
		return nil, err
	}
	return &domain.AdjustmentList{Period: p, Adjustments: adjustments}, nil
}

// Summary sums the actor's deposits and withdrawals in the period
func (uc *AdjustmentUseCase) Summary(ctx context.Context, actor domain.Actor, period string) (*domain.AdjustmentTotals, error) {
	adjustments, err := uc.list(ctx, actor, stats.PeriodFilter(period, uc.clock()))
	if err != nil {
		return nil, err
	}
	totals := stats.AdjustmentTotals(adjustments)
	return &totals, nil
}

func (uc *AdjustmentUseCase) list(ctx context.Context, actor domain.Actor, p domain.Period) ([]*domain.Adjustment, error) {
	adjustments, err := uc.adjustmentRepo.List(ctx, actor, domain.ListQuery{Since: p.Start})
	if err != nil {
		uc.logger.Error("Failed to list adjustments",
			zap.Int64("user_id", actor.UserID),
			zap.String("period", p.Key),
			zap.Error(err))
		return nil, domain.NewDatabaseError("list adjustments", err)
	}
	return adjustments, nil
}
