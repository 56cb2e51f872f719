package models

// InjuryStatus is a player's status from the injury report
type InjuryStatus string

const (
	InjuryHealthy      InjuryStatus = "healthy"
	InjuryQuestionable InjuryStatus = "questionable"
	InjuryOut          InjuryStatus = "out"
	InjuryReserve      InjuryStatus = "injured_reserve"
)

// Excluded reports whether the status rules a player out of consideration
func (s InjuryStatus) Excluded() bool {
	return s == InjuryOut || s == InjuryReserve
}

// PlayerRole is the inferred usage tier for a player (QB1, RB2, WR3, ...)
type PlayerRole string

// Starter reports whether the role is a primary starter tier
func (r PlayerRole) Starter() bool {
	return len(r) > 0 && r[len(r)-1] == '1'
}

// LowUsage reports whether the role is a depth/situational tier
func (r PlayerRole) LowUsage() bool {
	return r == "RB3" || r == "WR3" || r == "TE2"
}

// PlayerAverages holds a player's per-game averages, one field per stat the
// engine models. Every field is populated (zero when the player has no
// production) so validators can always read the mapped stat.
type PlayerAverages struct {
	PassYds float64 `json:"pass_yds_per_g"`
	PassCmp float64 `json:"pass_cmp_per_g"`
	PassAtt float64 `json:"pass_att_per_g"`
	PassTD  float64 `json:"pass_td_per_g"`
	RushYds float64 `json:"rush_yds_per_g"`
	RushAtt float64 `json:"rush_att_per_g"`
	RushTD  float64 `json:"rush_td_per_g"`
	RecYds  float64 `json:"rec_yds_per_g"`
	Rec     float64 `json:"rec_per_g"`
	RecTD   float64 `json:"rec_td_per_g"`
	Targets float64 `json:"targets_per_g"`
}

// ForMarket returns the average mapped to a prop market. The second return
// is false for markets with no mapped stat (unknown markets are allowed
// through validation).
func (a PlayerAverages) ForMarket(market string) (float64, bool) {
	switch market {
	case MarketPassingYards:
		return a.PassYds, true
	case MarketPassCompletions:
		return a.PassCmp, true
	case MarketPassAttempts:
		return a.PassAtt, true
	case MarketPassingTDs:
		return a.PassTD, true
	case MarketRushingYards:
		return a.RushYds, true
	case MarketRushAttempts:
		return a.RushAtt, true
	case MarketRushingTDs:
		return a.RushTD, true
	case MarketReceivingYards:
		return a.RecYds, true
	case MarketReceptions:
		return a.Rec, true
	case MarketReceivingTDs:
		return a.RecTD, true
	default:
		return 0, false
	}
}

// PlayerRecord is a player's merged stat row drawn from one or more source
// tables, nickname-normalized and read-only after construction.
type PlayerRecord struct {
	Name     string         `json:"name"`
	Position string         `json:"position"`
	Games    float64        `json:"games"`
	Source   string         `json:"source"` // passing, rushing_receiving or both
	Averages PlayerAverages `json:"averages"`
	Injury   InjuryStatus   `json:"injury_status"`
}

// TeamAggregate holds the team-level fields game bets are modeled on.
// Nil means the underlying table was absent; the validator rejects bets
// before the probability model ever dereferences these.
type TeamAggregate struct {
	PointsPerG        *float64 `json:"points_per_g"`
	PointsAllowedPerG *float64 `json:"points_allowed_per_g"`
}

// Complete reports whether both aggregates are present
func (t TeamAggregate) Complete() bool {
	return t.PointsPerG != nil && t.PointsAllowedPerG != nil
}

// DriveEfficiency holds per-drive scoring efficiency for a team
type DriveEfficiency struct {
	ScorePct      float64 `json:"score_pct"`
	TurnoverPct   float64 `json:"turnover_pct"`
	YardsPerDrive float64 `json:"yards_per_drive"`
	PointsAvg     float64 `json:"points_avg"`
}
