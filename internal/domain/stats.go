package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Period is a named lower bound on listings and statistics
type Period struct {
	Key   string
	Label string
	// Start is nil for "all"
	Start *time.Time
}

// TournamentStats aggregates a set of tournament results
type TournamentStats struct {
	TotalTournaments     int             `json:"total_tournaments"`
	TotalBuyIns          decimal.Decimal `json:"total_buy_ins"`
	TotalCash            decimal.Decimal `json:"total_cash"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	ROI                  decimal.Decimal `json:"roi"`
	ITMCount             int             `json:"itm_count"`
	ITMPercentage        decimal.Decimal `json:"itm_percentage"`
	FirstPlaces          int             `json:"first_places"`
	Top10Finishes        int             `json:"top_10_finishes"`
	FirstPlacePercentage decimal.Decimal `json:"first_place_percentage"`
	Top10Percentage      decimal.Decimal `json:"top_10_percentage"`
	AvgBuyIn             decimal.Decimal `json:"avg_buy_in"`
}

// AdjustmentTotals sums deposits and withdrawals; corrections are excluded
type AdjustmentTotals struct {
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
}

// NetAdjustments is deposits minus withdrawals
func (a AdjustmentTotals) NetAdjustments() decimal.Decimal {
	return a.TotalDeposits.Sub(a.TotalWithdrawals)
}

// Dashboard is the per-period overview of one player
type Dashboard struct {
	Period            Period
	User              *User
	Stats             TournamentStats
	Totals            AdjustmentTotals
	RecentTournaments []*Tournament
	RecentAdjustments []*Adjustment
}

// BalancePoint is the closing bankroll of one day
type BalancePoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// BankrollHistory is a daily closing balance series
type BankrollHistory struct {
	Days   int
	Points []BalancePoint
}

// DashboardUseCase defines the interface for overview reads
type DashboardUseCase interface {
	Dashboard(ctx context.Context, actor Actor, period string) (*Dashboard, error)
	History(ctx context.Context, actor Actor, days int) (*BankrollHistory, error)
}
