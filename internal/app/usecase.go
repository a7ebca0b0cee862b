package app

import (
	"fmt"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/saradorri/pokerbankroll/internal/usecase/adjustment"
	"github.com/saradorri/pokerbankroll/internal/usecase/bankroll"
	"github.com/saradorri/pokerbankroll/internal/usecase/dashboard"
	"github.com/saradorri/pokerbankroll/internal/usecase/tournament"
	"github.com/saradorri/pokerbankroll/internal/usecase/user"
	"github.com/shopspring/decimal"
)

func (a *application) InitLedger(tx domain.Transactor, clock domain.Clock, log *logger.Logger) (domain.BankrollLedger, error) {
	policy, err := domain.ParseNegativeBalancePolicy(a.config.Bankroll.NegativeBalance)
	if err != nil {
		return nil, err
	}
	return bankroll.NewLedger(tx, policy, clock, log), nil
}

func (a *application) InitJWTService() auth.JWTService {
	return auth.NewJWTService(&a.config.JWT)
}

func (a *application) InitPasswordHasher() auth.PasswordHasher {
	return auth.NewBcryptHasher(0)
}

func (a *application) InitUserUseCase(
	ur domain.UserRepository,
	ledger domain.BankrollLedger,
	jwt auth.JWTService,
	hasher auth.PasswordHasher,
	log *logger.Logger,
) (domain.UserUseCase, error) {
	opening, err := OpeningBalance(a.config.Bankroll.DefaultBalance)
	if err != nil {
		return nil, err
	}
	return user.NewUserUseCase(ur, ledger, jwt, hasher, opening, log), nil
}

func (a *application) InitTournamentUseCase(tr domain.TournamentRepository, ledger domain.BankrollLedger, clock domain.Clock, log *logger.Logger) domain.TournamentUseCase {
	return tournament.NewTournamentUseCase(tr, ledger, clock, log)
}

func (a *application) InitAdjustmentUseCase(ar domain.AdjustmentRepository, ledger domain.BankrollLedger, clock domain.Clock, log *logger.Logger) domain.AdjustmentUseCase {
	return adjustment.NewAdjustmentUseCase(ar, ledger, clock, log)
}

func (a *application) InitDashboardUseCase(
	ur domain.UserRepository,
	tr domain.TournamentRepository,
	ar domain.AdjustmentRepository,
	er domain.BankrollEventRepository,
	clock domain.Clock,
	log *logger.Logger,
) domain.DashboardUseCase {
	return dashboard.NewDashboardUseCase(ur, tr, ar, er, clock, log)
}

// OpeningBalance parses the configured signup balance; empty means domain.DefaultBankroll
func OpeningBalance(s string) (decimal.Decimal, error) {
	if s == "" {
		return domain.DefaultBankroll, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid bankroll.default_balance %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("bankroll.default_balance must not be negative, got %s", s)
	}
	return d.Round(domain.MoneyPlaces), nil
}
