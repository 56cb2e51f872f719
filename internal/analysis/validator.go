// Package analysis validates, scores and ranks betting opportunities by
// expected value.
package analysis

import (
	"github.com/yourusername/gridline/internal/models"
	"github.com/yourusername/gridline/internal/stats"
)

// Rejection reasons. These double as metric labels, so keep them stable.
const (
	ReasonNoStats        = "no_stats"
	ReasonInjured        = "injured"
	ReasonLowProduction  = "low_production"
	ReasonLowUsage       = "low_usage"
	ReasonIncompleteTeam = "incomplete_team_stats"
)

// minProduction is the per-game average below which a prop is unscoreable
const minProduction = 0.1

// Anytime-TD usage proxy thresholds. TD averages are too sparse to gate on
// directly, so usage stands in for scoring opportunity.
const (
	tdMinReceptions = 3.0
	tdMinRushYards  = 30.0
)

// Validator rejects opportunities the repository cannot support: unknown or
// injured players, players without meaningful production, and game bets where
// either side's scoring aggregates are missing.
type Validator struct {
	repo *stats.Repository
}

// NewValidator creates a validator over a built stat repository
func NewValidator(repo *stats.Repository) *Validator {
	return &Validator{repo: repo}
}

// Validate checks one opportunity. For player props it returns the resolved
// player record; the reason is empty when the opportunity is scoreable.
func (v *Validator) Validate(opp models.Opportunity, awayTeam, homeTeam string) (*models.PlayerRecord, string) {
	if opp.Kind.IsGameLevel() {
		return nil, v.validateGameBet(awayTeam, homeTeam)
	}
	return v.validateProp(opp)
}

func (v *Validator) validateGameBet(awayTeam, homeTeam string) string {
	if !v.repo.TeamAggregate(awayTeam).Complete() || !v.repo.TeamAggregate(homeTeam).Complete() {
		return ReasonIncompleteTeam
	}
	return ""
}

func (v *Validator) validateProp(opp models.Opportunity) (*models.PlayerRecord, string) {
	record := v.repo.LookupPlayer(opp.Team, opp.Player)
	if record == nil {
		return nil, ReasonNoStats
	}
	if record.Injury.Excluded() {
		return nil, ReasonInjured
	}

	if opp.Market == models.MarketAnytimeTD {
		avg := record.Averages
		if avg.Rec < tdMinReceptions && avg.RushYds < tdMinRushYards {
			return nil, ReasonLowUsage
		}
		return record, ""
	}

	// Unknown markets pass through; the model discounts them instead
	if avg, ok := record.Averages.ForMarket(opp.Market); ok && avg < minProduction {
		return nil, ReasonLowProduction
	}
	return record, ""
}
