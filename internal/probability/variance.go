package probability

import (
	"math"

	"github.com/yourusername/gridline/internal/models"
)

// Matchup multiplier constants. Ranks run 1 (best) to 32 (worst), so a bad
// opposing defense pushes the multiplier above 1.
const (
	rankCurveSlope = 0.0125
	middleRank     = 16

	pressureBaseline = 22.5
	pressureWeight   = 0.015
	sackBaseline     = 3.0
	sackWeight       = 0.02

	multiplierMin = 0.65
	multiplierMax = 1.40
)

// Base coefficient of variation per market family
const (
	passingVariance   = 0.28
	rushingVariance   = 0.35
	receivingVariance = 0.42
	receptionVariance = 0.22
	defaultVariance   = 0.30

	starterVarianceScale  = 0.90
	lowUsageVarianceScale = 1.25
	blowoutVarianceScale  = 1.35 // |spread| >= 14
	closeVarianceScale    = 0.95 // |spread| <= 3

	varianceMin = 0.18
	varianceMax = 0.50
)

// matchupMultiplier scales a player average by opponent defense quality and
// own offense quality. Passing markets get a further pass-rush refinement.
func matchupMultiplier(market string, ctx Context) float64 {
	m := defenseCurve(ctx.OpponentDefenseRank) * offenseCurve(ctx.TeamOffenseRank)

	if isPassingMarket(market) {
		m *= 1 - (ctx.OpponentPressureRate-pressureBaseline)*pressureWeight
		m *= 1 - (ctx.OpponentSacksPerGame-sackBaseline)*sackWeight
	}
	return clamp(m, multiplierMin, multiplierMax)
}

func defenseCurve(rank int) float64 {
	if rank == 0 {
		rank = middleRank
	}
	return 1 + float64(rank-middleRank)*rankCurveSlope
}

func offenseCurve(rank int) float64 {
	if rank == 0 {
		rank = middleRank
	}
	return 1 + float64(middleRank-rank)*rankCurveSlope
}

// gameScriptMultiplier discounts usage that dries up in lopsided games: heavy
// favorites stop running their QB and stop throwing to their backs, heavy
// underdogs abandon the run and their depth receivers.
func gameScriptMultiplier(market string, ctx Context) float64 {
	spread := ctx.SpreadLine // player's team perspective, negative = favorite
	pos := ctx.Player.Position
	m := 1.0

	switch market {
	case models.MarketRushingYards, models.MarketRushAttempts:
		if pos == "QB" && spread <= -7 {
			m = 0.65
		}
	case models.MarketReceivingYards, models.MarketReceptions:
		if pos == "RB" {
			if spread <= -7 {
				m = 0.85
			} else if spread >= 7 {
				m = 0.75
			}
		}
		if (pos == "WR" || pos == "TE") && ctx.Player.Averages.Rec < 3.0 && spread >= 7 {
			m *= 0.80
		}
	}
	return m
}

// injuryMultiplier folds the team's injury report into the projection.
// Passing volume suffers when receivers and linemen sit; healthy receivers
// absorb the vacated targets.
func injuryMultiplier(market string, ctx Context) float64 {
	switch {
	case isPassingMarket(market):
		m := 1 - 0.05*float64(ctx.InjuredReceivers) - 0.03*float64(ctx.InjuredLinemen)
		return math.Max(m, 0.70)
	case market == models.MarketReceivingYards || market == models.MarketReceptions:
		m := 1 + 0.05*float64(ctx.InjuredReceivers)
		return math.Min(m, 1.25)
	default:
		return 1.0
	}
}

// varianceRatio is the coefficient of variation for a market, adapted to the
// player's role and the game's expected competitiveness.
func varianceRatio(market string, ctx Context) float64 {
	var ratio float64
	switch market {
	case models.MarketPassingYards, models.MarketPassCompletions, models.MarketPassAttempts:
		ratio = passingVariance
	case models.MarketRushingYards, models.MarketRushAttempts:
		ratio = rushingVariance
	case models.MarketReceivingYards:
		ratio = receivingVariance
	case models.MarketReceptions:
		ratio = receptionVariance
	default:
		ratio = defaultVariance
	}

	if ctx.Role.Starter() {
		ratio *= starterVarianceScale
	} else if ctx.Role.LowUsage() {
		ratio *= lowUsageVarianceScale
	}

	abs := math.Abs(ctx.SpreadLine)
	switch {
	case abs >= 14:
		ratio *= blowoutVarianceScale
	case abs > 0 && abs <= 3:
		ratio *= closeVarianceScale
	}
	return clamp(ratio, varianceMin, varianceMax)
}

func isPassingMarket(market string) bool {
	switch market {
	case models.MarketPassingYards, models.MarketPassCompletions,
		models.MarketPassAttempts, models.MarketPassingTDs:
		return true
	}
	return false
}
