package handlers

import (
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/shopspring/decimal"
)

// UserResponse represents a player and their bankroll
type UserResponse struct {
	ID              int64   `json:"id" example:"1"`
	Username        string  `json:"username" example:"player1"`
	Bankroll        float64 `json:"bankroll" example:"1000.00"`
	DisplayBankroll string  `json:"display_bankroll" example:"$1000.00"`
}

// TournamentResponse represents a stored tournament result
type TournamentResponse struct {
	ID            int64   `json:"id" example:"1"`
	Player        int64   `json:"player" example:"1"`
	Date          string  `json:"date" example:"2024-02-20"`
	BuyIn         float64 `json:"buy_in" example:"50.00"`
	CashedFor     float64 `json:"cashed_for" example:"150.00"`
	PlaceFinished int     `json:"place_finished" example:"3"`
	NetAmount     float64 `json:"net_amount" example:"100.00"`
	DisplayNet    string  `json:"display_net" example:"+$100.00"`
	IsITM         bool    `json:"is_itm" example:"true"`
}

// AdjustmentResponse represents a stored bankroll adjustment
type AdjustmentResponse struct {
	ID              int64     `json:"id" example:"1"`
	User            int64     `json:"user" example:"1"`
	Amount          float64   `json:"amount" example:"500.00"`
	TransactionType string    `json:"transaction_type" example:"deposit"`
	Description     string    `json:"description" example:"Monthly top up"`
	Date            time.Time `json:"date" example:"2024-01-15T10:30:00Z"`
}

// StatsResponse represents aggregated tournament statistics
type StatsResponse struct {
	TotalTournaments     int     `json:"total_tournaments" example:"12"`
	TotalBuyIns          float64 `json:"total_buy_ins" example:"600.00"`
	TotalCash            float64 `json:"total_cash" example:"800.00"`
	TotalProfit          float64 `json:"total_profit" example:"200.00"`
	ROI                  float64 `json:"roi" example:"33.33"`
	ITMCount             int     `json:"itm_count" example:"4"`
	ITMPercentage        float64 `json:"itm_percentage" example:"33.33"`
	FirstPlaces          int     `json:"first_places" example:"1"`
	Top10Finishes        int     `json:"top_10_finishes" example:"5"`
	FirstPlacePercentage float64 `json:"first_place_percentage" example:"8.33"`
	Top10Percentage      float64 `json:"top_10_percentage" example:"41.67"`
	AvgBuyIn             float64 `json:"avg_buy_in" example:"50.00"`
}

// SummaryResponse represents deposit and withdrawal totals
type SummaryResponse struct {
	TotalDeposits    float64 `json:"total_deposits" example:"1500.00"`
	TotalWithdrawals float64 `json:"total_withdrawals" example:"200.00"`
	NetAdjustments   float64 `json:"net_adjustments" example:"1300.00"`
}

// TournamentListResponse represents a period filtered tournament listing
type TournamentListResponse struct {
	Period        string               `json:"period" example:"month"`
	PeriodDisplay string               `json:"period_display" example:"Last 30 Days"`
	TotalCount    int                  `json:"total_count" example:"2"`
	TotalProfit   float64              `json:"total_profit" example:"150.00"`
	Results       []TournamentResponse `json:"results"`
}

// AdjustmentListResponse represents a period filtered adjustment listing
type AdjustmentListResponse struct {
	Period        string               `json:"period" example:"all"`
	PeriodDisplay string               `json:"period_display" example:"All Time"`
	Results       []AdjustmentResponse `json:"results"`
}

// DashboardStats merges tournament statistics with adjustment totals
type DashboardStats struct {
	StatsResponse
	SummaryResponse
}

// DashboardResponse represents the per-period overview
type DashboardResponse struct {
	Period            string               `json:"period" example:"week"`
	PeriodDisplay     string               `json:"period_display" example:"Last 7 Days"`
	User              UserResponse         `json:"user"`
	Stats             DashboardStats       `json:"stats"`
	RecentTournaments []TournamentResponse `json:"recent_tournaments"`
	RecentAdjustments []AdjustmentResponse `json:"recent_adjustments"`
}

// HistoryPoint is the closing balance of one day
type HistoryPoint struct {
	Date    string  `json:"date" example:"2024-03-01"`
	Balance float64 `json:"balance" example:"1100.00"`
}

// HistoryResponse represents the daily bankroll series
type HistoryResponse struct {
	Days   int            `json:"days" example:"30"`
	Labels []string       `json:"labels"`
	Data   []float64      `json:"data"`
	Points []HistoryPoint `json:"points"`
}

func amount(d decimal.Decimal) float64 {
	return d.Round(domain.MoneyPlaces).InexactFloat64()
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Bankroll:        amount(u.Bankroll),
		DisplayBankroll: u.DisplayBankroll(),
	}
}

func newTournamentResponse(t *domain.Tournament) TournamentResponse {
	return TournamentResponse{
		ID:            t.ID,
		Player:        t.UserID,
		Date:          t.Date.Format(time.DateOnly),
		BuyIn:         amount(t.BuyIn),
		CashedFor:     amount(t.CashedFor),
		PlaceFinished: t.PlaceFinished,
		NetAmount:     amount(t.NetAmount()),
		DisplayNet:    t.DisplayNet(),
		IsITM:         t.IsITM(),
	}
}

func newTournamentResponses(ts []*domain.Tournament) []TournamentResponse {
	out := make([]TournamentResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, newTournamentResponse(t))
	}
	return out
}

func newAdjustmentResponse(a *domain.Adjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:              a.ID,
		User:            a.UserID,
		Amount:          amount(a.Amount),
		TransactionType: string(a.TransactionType),
		Description:     a.Description,
		Date:            a.CreatedAt.UTC(),
	}
}

func newAdjustmentResponses(as []*domain.Adjustment) []AdjustmentResponse {
	out := make([]AdjustmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, newAdjustmentResponse(a))
	}
	return out
}

func newStatsResponse(s domain.TournamentStats) StatsResponse {
	return StatsResponse{
		TotalTournaments:     s.TotalTournaments,
		TotalBuyIns:          amount(s.TotalBuyIns),
		TotalCash:            amount(s.TotalCash),
		TotalProfit:          amount(s.TotalProfit),
		ROI:                  amount(s.ROI),
		ITMCount:             s.ITMCount,
		ITMPercentage:        amount(s.ITMPercentage),
		FirstPlaces:          s.FirstPlaces,
		Top10Finishes:        s.Top10Finishes,
		FirstPlacePercentage: amount(s.FirstPlacePercentage),
		Top10Percentage:      amount(s.Top10Percentage),
		AvgBuyIn:             amount(s.AvgBuyIn),
	}
}

func newSummaryResponse(t domain.AdjustmentTotals) SummaryResponse {
	return SummaryResponse{
		TotalDeposits:    amount(t.TotalDeposits),
		TotalWithdrawals: amount(t.TotalWithdrawals),
		NetAdjustments:   amount(t.NetAdjustments()),
	}
}
