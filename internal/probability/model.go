package probability

import (
	"math"

	"github.com/yourusername/gridline/internal/models"
)

// Probability bounds and model constants, all expressed as percentages
const (
	gameProbMin = 5.0
	gameProbMax = 95.0
	propProbMin = 1.0
	propProbMax = 99.0
	tdProbMin   = 2.0
	tdProbMax   = 80.0

	// percentage points of win probability per point of expected margin
	pctPerPoint = 3.3

	// standard deviation of an NFL game total
	totalSigma = 12.0

	// drive-efficiency adjustment per score-percentage point vs baseline
	scorePctBaseline = 35.0
	scorePctWeight   = 0.01

	// markets with no model fall back to a discounted implied probability
	unmodeledDiscount = 0.75
)

// Estimate returns the model's true probability, as a percentage, that the
// opportunity wins. Unmodeled kinds and markets get a conservative discount
// off the implied probability rather than an error.
func Estimate(opp models.Opportunity, ctx Context) float64 {
	switch opp.Kind {
	case models.BetKindMoneyline:
		return winProbability(ctx)
	case models.BetKindSpread:
		return spreadProbability(opp, ctx)
	case models.BetKindTotal:
		return totalProbability(opp, ctx)
	case models.BetKindPlayerProp:
		return propProbability(opp, ctx)
	default:
		return clamp(unmodeledDiscount*opp.ImpliedProb, propProbMin, propProbMax)
	}
}

// expectedPoints blends a team's scoring average with what the opponent's
// defense gives up.
func expectedPoints(team, opponent models.TeamAggregate) float64 {
	return (teamPPG(team) + teamPA(opponent)) / 2
}

// winProbability converts the expected point differential into a win
// probability around a 50% baseline.
func winProbability(ctx Context) float64 {
	diff := expectedPoints(ctx.Team, ctx.Opponent) - expectedPoints(ctx.Opponent, ctx.Team)
	return clamp(50+diff*pctPerPoint, gameProbMin, gameProbMax)
}

// spreadProbability estimates the chance the team covers its line. The
// expected differential less the line drives the same linear conversion the
// moneyline model uses.
func spreadProbability(opp models.Opportunity, ctx Context) float64 {
	diff := expectedPoints(ctx.Team, ctx.Opponent) - expectedPoints(ctx.Opponent, ctx.Team)
	edge := diff - opp.LineValue(0)
	return clamp(50+edge*pctPerPoint, gameProbMin, gameProbMax)
}

// totalProbability models the combined score as a normal distribution around
// the sum of both teams' scoring averages, each scaled by drive-level scoring
// efficiency.
func totalProbability(opp models.Opportunity, ctx Context) float64 {
	expected := teamPPG(ctx.Team)*driveMultiplier(ctx.TeamDriveEff) +
		teamPPG(ctx.Opponent)*driveMultiplier(ctx.OpponentDriveEff)

	z := (opp.LineValue(expected) - expected) / totalSigma
	over := (1 - normalCDF(z)) * 100
	if opp.Side == models.SideUnder {
		over = 100 - over
	}
	return clamp(over, gameProbMin, gameProbMax)
}

// driveMultiplier shifts a team's expected points by how often its drives
// score relative to the league baseline.
func driveMultiplier(eff *models.DriveEfficiency) float64 {
	if eff == nil {
		return 1.0
	}
	return 1 + (eff.ScorePct-scorePctBaseline)*scorePctWeight
}

func normalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
