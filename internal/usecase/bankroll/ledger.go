// Package bankroll applies every change to a player's bankroll. Each operation writes
// the record, the balance and a BankrollEvent in one transaction.
package bankroll

import (
	"context"
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger implements domain.BankrollLedger
type Ledger struct {
	transactor domain.Transactor
	policy     domain.NegativeBalancePolicy
	clock      domain.Clock
	logger     *logger.Logger
}

// NewLedger creates a new bankroll ledger
func NewLedger(transactor domain.Transactor, policy domain.NegativeBalancePolicy, clock domain.Clock, logger *logger.Logger) *Ledger {
	if clock == nil {
		clock = time.Now
	}
	return &Ledger{
		transactor: transactor,
		policy:     policy,
		clock:      clock,
		logger:     logger,
	}
}

// OpenAccount stores a new user with its starting balance and writes the opening event
func (l *Ledger) OpenAccount(ctx context.Context, user *domain.User) error {
	return l.run(ctx, "open account", func(ctx context.Context, repos domain.Repositories) error {
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		return l.record(ctx, repos, &domain.BankrollEvent{
			UserID:        user.ID,
			Source:        domain.EventSourceOpening,
			Delta:         user.Bankroll,
			BalanceBefore: decimal.Zero,
			BalanceAfter:  user.Bankroll,
		})
	})
}

// RecordTournament stores a result and adds its net amount to the bankroll
func (l *Ledger) RecordTournament(ctx context.Context, actor domain.Actor, in domain.TournamentInput) (*domain.Tournament, error) {
	if err := in.Validate(l.clock()); err != nil {
		return nil, err
	}

	t := &domain.Tournament{UserID: actor.UserID}
	in.Apply(t)

	err := l.run(ctx, "record tournament", func(ctx context.Context, repos domain.Repositories) error {
		if err := repos.Tournaments.Create(ctx, t); err != nil {
			return err
		}
		return l.shift(ctx, repos, actor, t.NetAmount(), domain.EventSourceTournamentCreated, &t.ID)
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Tournament recorded",
		zap.Int64("user_id", actor.UserID),
		zap.Int64("tournament_id", t.ID),
		zap.String("net", t.NetAmount().StringFixed(domain.MoneyPlaces)))
	return t, nil
}

// ReviseTournament replaces (or, when partial, patches) a stored result and moves the
// bankroll by the difference between the new and the old net amount
func (l *Ledger) ReviseTournament(ctx context.Context, actor domain.Actor, id int64, in domain.TournamentInput, partial bool) (*domain.Tournament, error) {
	today := l.clock()
	if !partial {
		if err := in.Validate(today); err != nil {
			return nil, err
		}
	}

	var revised *domain.Tournament
	err := l.run(ctx, "revise tournament", func(ctx context.Context, repos domain.Repositories) error {
		existing, err := repos.Tournaments.GetByIDForUpdate(ctx, actor, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.NewNotFoundError("Tournament")
		}

		if partial {
			in = in.Merge(*existing)
			if err := in.Validate(today); err != nil {
				return err
			}
		}

		oldNet := existing.NetAmount()
		in.Apply(existing)
		if err := repos.Tournaments.Update(ctx, existing); err != nil {
			return err
		}
		revised = existing

		delta := existing.NetAmount().Sub(oldNet)
		if delta.IsZero() {
			return nil
		}
		return l.shift(ctx, repos, actor, delta, domain.EventSourceTournamentUpdated, &existing.ID)
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Tournament revised",
		zap.Int64("user_id", actor.UserID),
		zap.Int64("tournament_id", id),
		zap.String("net", revised.NetAmount().StringFixed(domain.MoneyPlaces)))
	return revised, nil
}

// RemoveTournament deletes a stored result and reverses its net amount
func (l *Ledger) RemoveTournament(ctx context.Context, actor domain.Actor, id int64) error {
	err := l.run(ctx, "remove tournament", func(ctx context.Context, repos domain.Repositories) error {
		existing, err := repos.Tournaments.GetByIDForUpdate(ctx, actor, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.NewNotFoundError("Tournament")
		}
		if err := repos.Tournaments.Delete(ctx, actor, id); err != nil {
			return err
		}
		return l.shift(ctx, repos, actor, existing.NetAmount().Neg(), domain.EventSourceTournamentDeleted, &id)
	})
	if err != nil {
		return err
	}

	l.logger.Info("Tournament removed", zap.Int64("user_id", actor.UserID), zap.Int64("tournament_id", id))
	return nil
}

// ApplyAdjustment stores a deposit, withdrawal or correction and applies it to the bankroll.
// Deposits add, withdrawals subtract and corrections overwrite the balance.
func (l *Ledger) ApplyAdjustment(ctx context.Context, actor domain.Actor, in domain.AdjustmentInput) (*domain.Adjustment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a := &domain.Adjustment{
		UserID:          actor.UserID,
		Amount:          in.Amount.Round(domain.MoneyPlaces),
		TransactionType: in.TransactionType,
		Description:     in.Description,
	}

	err := l.run(ctx, "apply adjustment", func(ctx context.Context, repos domain.Repositories) error {
		if err := repos.Adjustments.Create(ctx, a); err != nil {
			return err
		}
		switch a.TransactionType {
		case domain.TransactionTypeDeposit:
			return l.shift(ctx, repos, actor, a.Amount, domain.EventSourceDeposit, &a.ID)
		case domain.TransactionTypeWithdrawal:
			return l.shift(ctx, repos, actor, a.Amount.Neg(), domain.EventSourceWithdrawal, &a.ID)
		default:
			return l.correct(ctx, repos, actor, a)
		}
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Bankroll adjusted",
		zap.Int64("user_id", actor.UserID),
		zap.Int64("adjustment_id", a.ID),
		zap.String("type", string(a.TransactionType)),
		zap.String("amount", a.Amount.StringFixed(domain.MoneyPlaces)))
	return a, nil
}

// shift adds delta to the actor's balance and writes the matching event
func (l *Ledger) shift(ctx context.Context, repos domain.Repositories, actor domain.Actor, delta decimal.Decimal, source domain.EventSource, ref *int64) error {
	user, err := repos.Users.AdjustBankroll(ctx, actor.UserID, delta)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewNotFoundError("User")
	}
	if err := l.checkPolicy(user.Bankroll); err != nil {
		return err
	}
	return l.record(ctx, repos, &domain.BankrollEvent{
		UserID:        actor.UserID,
		Source:        source,
		ReferenceID:   ref,
		Delta:         delta,
		BalanceBefore: user.Bankroll.Sub(delta),
		BalanceAfter:  user.Bankroll,
	})
}

// correct overwrites the balance with the adjustment amount, guarded by the user version
func (l *Ledger) correct(ctx context.Context, repos domain.Repositories, actor domain.Actor, a *domain.Adjustment) error {
	current, err := repos.Users.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.NewNotFoundError("User")
	}

	updated, err := repos.Users.SetBankroll(ctx, actor.UserID, a.Amount, current.Version)
	if err != nil {
		return err
	}
	if updated == nil {
		l.logger.Warn("Bankroll correction lost a concurrent update",
			zap.Int64("user_id", actor.UserID), zap.Int64("version", current.Version))
		return domain.NewConflictError(domain.ErrCodeConcurrentModification,
			"Bankroll was modified concurrently, please retry the correction")
	}

	return l.record(ctx, repos, &domain.BankrollEvent{
		UserID:        actor.UserID,
		Source:        domain.EventSourceCorrection,
		ReferenceID:   &a.ID,
		Delta:         updated.Bankroll.Sub(current.Bankroll),
		BalanceBefore: current.Bankroll,
		BalanceAfter:  updated.Bankroll,
	})
}

func (l *Ledger) checkPolicy(balance decimal.Decimal) error {
	if l.policy == domain.NegativeBalanceReject && balance.IsNegative() {
		return domain.NewValidationError("bankroll", "Bankroll cannot go below zero")
	}
	return nil
}

func (l *Ledger) record(ctx context.Context, repos domain.Repositories, e *domain.BankrollEvent) error {
	e.CreatedAt = l.clock()
	return repos.Events.Create(ctx, e)
}

// run executes fn in one transaction; non application errors become DATABASE_ERROR
func (l *Ledger) run(ctx context.Context, op string, fn func(ctx context.Context, repos domain.Repositories) error) error {
	err := l.transactor.WithinTransaction(ctx, fn)
	if err == nil {
		return nil
	}
	if _, ok := domain.IsAppError(err); ok {
		return err
	}
	l.logger.WithContext(ctx).Error("Bankroll transaction rolled back", zap.String("operation", op), zap.Error(err))
	return domain.NewDatabaseError(op, err)
}
