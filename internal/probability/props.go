package probability

import (
	"math"

	"github.com/yourusername/gridline/internal/models"
)

// propProbability dispatches a player prop to the matching model. Yardage,
// attempt and reception markets are modeled as normal distributions around an
// adjusted per-game average; touchdown markets use count models.
func propProbability(opp models.Opportunity, ctx Context) float64 {
	if ctx.Player == nil {
		return clamp(unmodeledDiscount*opp.ImpliedProb, propProbMin, propProbMax)
	}

	switch opp.Market {
	case models.MarketAnytimeTD:
		return anytimeTDProbability(ctx)
	case models.MarketPassingTDs:
		return passingTDProbability(opp, ctx)
	case models.MarketPassingYards, models.MarketPassCompletions, models.MarketPassAttempts,
		models.MarketRushingYards, models.MarketRushAttempts,
		models.MarketReceivingYards, models.MarketReceptions:
		return continuousProbability(opp, ctx)
	default:
		return clamp(unmodeledDiscount*opp.ImpliedProb, propProbMin, propProbMax)
	}
}

// continuousProbability models a stat line as normal around the player's
// matchup-adjusted average, with spread- and role-aware variance.
func continuousProbability(opp models.Opportunity, ctx Context) float64 {
	avg, ok := ctx.Player.Averages.ForMarket(opp.Market)
	if !ok {
		return clamp(unmodeledDiscount*opp.ImpliedProb, propProbMin, propProbMax)
	}

	adjusted := avg *
		matchupMultiplier(opp.Market, ctx) *
		gameScriptMultiplier(opp.Market, ctx) *
		injuryMultiplier(opp.Market, ctx)

	sigma := adjusted * varianceRatio(opp.Market, ctx)
	if sigma <= 0 {
		sigma = 1
	}

	z := (opp.LineValue(adjusted) - adjusted) / sigma
	over := (1 - normalCDF(z)) * 100
	if opp.Side == models.SideUnder {
		over = 100 - over
	}
	return clamp(over, propProbMin, propProbMax)
}

// passingTDProbability treats passing touchdowns as an approximately Poisson
// count, so the spread of outcomes grows with the square root of the mean.
func passingTDProbability(opp models.Opportunity, ctx Context) float64 {
	mean := ctx.Player.Averages.PassTD * matchupMultiplier(opp.Market, ctx)
	if mean <= 0 {
		mean = 0.1
	}
	sigma := math.Sqrt(mean)

	z := (opp.LineValue(mean) - mean) / sigma
	over := (1 - normalCDF(z)) * 100
	if opp.Side == models.SideUnder {
		over = 100 - over
	}
	return clamp(over, propProbMin, propProbMax)
}

// anytimeTDProbability models touchdowns as a Poisson arrival process:
// P(at least one) = 1 - e^-rate, where the rate is the player's dominant
// per-game scoring average, rushing when present and receiving otherwise.
func anytimeTDProbability(ctx Context) float64 {
	avg := ctx.Player.Averages
	rate := avg.RushTD
	if rate <= 0 {
		rate = avg.RecTD
	}
	if rate <= 0 {
		rate = 0.1
	}

	prob := (1 - math.Exp(-rate)) * 100
	return clamp(prob, tdProbMin, tdProbMax)
}
