// Package stats holds the pure aggregation functions behind dashboards and reports.
// None of them touch storage; callers pass records already scoped to one owner.
package stats

import (
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TournamentStats computes totals, ROI and finish rates over results.
// An empty input yields all-zero statistics.
func TournamentStats(results []*domain.Tournament) domain.TournamentStats {
	total := len(results)
	if total == 0 {
		return domain.TournamentStats{
			TotalBuyIns:          decimal.Zero,
			TotalCash:            decimal.Zero,
			TotalProfit:          decimal.Zero,
			ROI:                  decimal.Zero,
			ITMPercentage:        decimal.Zero,
			FirstPlacePercentage: decimal.Zero,
			Top10Percentage:      decimal.Zero,
			AvgBuyIn:             decimal.Zero,
		}
	}

	totalBuyIns, totalCash := decimal.Zero, decimal.Zero
	var itm, firsts, top10 int
	for _, r := range results {
		totalBuyIns = totalBuyIns.Add(r.BuyIn)
		totalCash = totalCash.Add(r.CashedFor)
		if r.IsITM() {
			itm++
		}
		if r.PlaceFinished == 1 {
			firsts++
		}
		if r.PlaceFinished <= 10 {
			top10++
		}
	}

	profit := totalCash.Sub(totalBuyIns)
	roi := decimal.Zero
	if totalBuyIns.IsPositive() {
		roi = profit.Div(totalBuyIns).Mul(hundred).RoundBank(2)
	}

	return domain.TournamentStats{
		TotalTournaments:     total,
		TotalBuyIns:          totalBuyIns,
		TotalCash:            totalCash,
		TotalProfit:          profit,
		ROI:                  roi,
		ITMCount:             itm,
		ITMPercentage:        percentage(itm, total),
		FirstPlaces:          firsts,
		Top10Finishes:        top10,
		FirstPlacePercentage: percentage(firsts, total),
		Top10Percentage:      percentage(top10, total),
		AvgBuyIn:             totalBuyIns.Div(decimal.NewFromInt(int64(total))).RoundBank(2),
	}
}

// AdjustmentTotals sums deposits and withdrawals. Corrections overwrite the
// balance rather than contribute to it, so they are left out of both sums.
func AdjustmentTotals(adjustments []*domain.Adjustment) domain.AdjustmentTotals {
	totals := domain.AdjustmentTotals{TotalDeposits: decimal.Zero, TotalWithdrawals: decimal.Zero}
	for _, a := range adjustments {
		switch a.TransactionType {
		case domain.TransactionTypeDeposit:
			totals.TotalDeposits = totals.TotalDeposits.Add(a.Amount)
		case domain.TransactionTypeWithdrawal:
			totals.TotalWithdrawals = totals.TotalWithdrawals.Add(a.Amount)
		}
	}
	return totals
}

// TotalProfit sums the net amount of results
func TotalProfit(results []*domain.Tournament) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range results {
		sum = sum.Add(r.NetAmount())
	}
	return sum
}

func percentage(part, whole int) decimal.Decimal {
	return decimal.NewFromInt(int64(part)).Div(decimal.NewFromInt(int64(whole))).Mul(hundred).RoundBank(2)
}
