package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/gridline/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Profit computes the fixed-stake profit of a settled bet from American
// odds. A push or ungraded bet (nil won) returns zero; a loss returns the
// negated stake.
func Profit(won *bool, odds int, stake decimal.Decimal) decimal.Decimal {
	if won == nil {
		return decimal.Zero
	}
	if !*won {
		return stake.Neg()
	}
	switch {
	case odds > 0:
		return stake.Mul(decimal.NewFromInt(int64(odds))).Div(hundred)
	case odds < 0:
		return stake.Mul(hundred).Div(decimal.NewFromInt(int64(-odds)))
	default:
		return decimal.Zero
	}
}

func profitFloat(won *bool, odds int, stake decimal.Decimal) float64 {
	return Profit(won, odds, stake).Round(2).InexactFloat64()
}

// buildSummary aggregates settled bets. Win rate is wins over all bets, so
// pushes and errors dilute the record the same way they dilute ROI.
func buildSummary(results []models.SettlementResult, stake decimal.Decimal) models.SettlementSummary {
	summary := models.SettlementSummary{TotalBets: len(results)}

	profit := decimal.Zero
	for _, r := range results {
		if r.Won != nil {
			if *r.Won {
				summary.BetsWon++
			} else {
				summary.BetsLost++
			}
		}
		profit = profit.Add(decimal.NewFromFloat(r.Profit))
	}

	staked := stake.Mul(decimal.NewFromInt(int64(summary.TotalBets)))
	summary.TotalProfit = profit.Round(2).InexactFloat64()
	summary.TotalStaked = staked.Round(2).InexactFloat64()

	if summary.TotalBets > 0 {
		rate := decimal.NewFromInt(int64(summary.BetsWon)).
			Div(decimal.NewFromInt(int64(summary.TotalBets))).
			Mul(hundred)
		summary.WinRate = rate.Round(1).InexactFloat64()
	}
	if staked.IsPositive() {
		summary.ROIPercent = profit.Div(staked).Mul(hundred).Round(1).InexactFloat64()
	}
	return summary
}
