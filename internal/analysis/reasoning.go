package analysis

import (
	"fmt"
	"strings"

	"github.com/yourusername/gridline/internal/models"
	"github.com/yourusername/gridline/internal/probability"
)

// buildReasoning renders a one-line explanation of why the model likes or
// dislikes an opportunity. It is display text only and never parsed back.
func buildReasoning(opp models.Opportunity, ctx probability.Context, trueProb float64) string {
	var parts []string

	switch {
	case opp.Kind == models.BetKindPlayerProp && ctx.Player != nil:
		parts = append(parts, propReasoning(opp, ctx)...)
	case opp.Kind.IsGameLevel():
		parts = append(parts, gameReasoning(ctx)...)
	}

	parts = append(parts, fmt.Sprintf("model %.1f%% vs implied %.1f%% at %s",
		trueProb, opp.ImpliedProb, describeOdds(opp.Odds)))
	return strings.Join(parts, "; ")
}

func propReasoning(opp models.Opportunity, ctx probability.Context) []string {
	var parts []string

	if avg, ok := ctx.Player.Averages.ForMarket(opp.Market); ok && avg > 0 {
		parts = append(parts, fmt.Sprintf("averages %.1f per game", avg))
	} else if opp.Market == models.MarketAnytimeTD {
		tdRate := ctx.Player.Averages.RushTD + ctx.Player.Averages.RecTD
		parts = append(parts, fmt.Sprintf("scores %.2f TD per game", tdRate))
	}

	if ctx.OpponentDefenseRank > 0 {
		parts = append(parts, fmt.Sprintf("faces #%d ranked %s defense",
			ctx.OpponentDefenseRank, rankCategory(opp.Market)))
	}
	if ctx.SpreadLine <= -7 {
		parts = append(parts, "heavy favorite game script")
	} else if ctx.SpreadLine >= 7 {
		parts = append(parts, "heavy underdog game script")
	}
	if ctx.InjuredReceivers > 0 {
		parts = append(parts, fmt.Sprintf("%d receiver(s) out", ctx.InjuredReceivers))
	}
	return parts
}

func gameReasoning(ctx probability.Context) []string {
	if ctx.Team.PointsPerG == nil || ctx.Opponent.PointsPerG == nil {
		return nil
	}
	return []string{fmt.Sprintf("scoring %.1f ppg against a defense allowing %.1f",
		*ctx.Team.PointsPerG, pointsAllowed(ctx.Opponent))}
}

func pointsAllowed(agg models.TeamAggregate) float64 {
	if agg.PointsAllowedPerG == nil {
		return 0
	}
	return *agg.PointsAllowedPerG
}
