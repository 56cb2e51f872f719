package models

// BetKind represents the kind of betting opportunity
type BetKind string

const (
	BetKindMoneyline  BetKind = "moneyline"
	BetKindSpread     BetKind = "spread"
	BetKindTotal      BetKind = "total"
	BetKindPlayerProp BetKind = "player_prop"
	BetKindTeamTotal  BetKind = "team_total"
)

// IsGameLevel reports whether the bet settles on the game score rather than a player stat
func (k BetKind) IsGameLevel() bool {
	return k == BetKindMoneyline || k == BetKindSpread || k == BetKindTotal || k == BetKindTeamTotal
}

// Side represents which side of a market the opportunity is on
type Side string

const (
	SideAway  Side = "away"
	SideHome  Side = "home"
	SideOver  Side = "over"
	SideUnder Side = "under"
)

// Market identifiers for player props
const (
	MarketPassingYards    = "passing_yards"
	MarketPassCompletions = "pass_completions"
	MarketPassAttempts    = "pass_attempts"
	MarketPassingTDs      = "passing_tds"
	MarketRushingYards    = "rushing_yards"
	MarketRushAttempts    = "rush_attempts"
	MarketRushingTDs      = "rushing_tds"
	MarketReceivingYards  = "receiving_yards"
	MarketReceptions      = "receptions"
	MarketReceivingTDs    = "receiving_tds"
	MarketAnytimeTD       = "anytime_td"
)

// Opportunity represents a single normalized betting opportunity.
// Immutable once parsed; DecimalOdds and ImpliedProb are derived from Odds.
type Opportunity struct {
	Kind        BetKind  `json:"bet_type" validate:"required"`
	Market      string   `json:"market,omitempty"`
	Player      string   `json:"player,omitempty"`
	Team        string   `json:"team,omitempty"`
	TeamAbbr    string   `json:"team_abbr,omitempty"`
	Position    string   `json:"position,omitempty"`
	Side        Side     `json:"side,omitempty"`
	Line        *float64 `json:"line,omitempty"`
	Description string   `json:"description"`
	Odds        int      `json:"odds"`
	DecimalOdds float64  `json:"decimal_odds"`
	ImpliedProb float64  `json:"implied_prob"`
}

// LineValue returns the line or the given default when the market has none
func (o *Opportunity) LineValue(def float64) float64 {
	if o.Line == nil {
		return def
	}
	return *o.Line
}

// ScoredOpportunity is an Opportunity with model output attached.
// Created only by the EV ranker, never mutated afterwards.
type ScoredOpportunity struct {
	Opportunity
	TrueProb     float64 `json:"true_prob"`
	AdjustedProb float64 `json:"adjusted_prob"`
	EVPercent    float64 `json:"ev_percent"`
	Reasoning    string  `json:"reasoning,omitempty"`
}
