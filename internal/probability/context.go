// Package probability estimates true outcome probabilities for betting
// opportunities from team and player statistics. Inputs are assumed to have
// passed validation; the model dereferences aggregates the validator
// guarantees are present.
package probability

import "github.com/yourusername/gridline/internal/models"

// Context carries the statistics relevant to one opportunity. For game-level
// bets Team is the side being bet on and Opponent the other side; for player
// props Team aggregates are unused and the player fields apply.
type Context struct {
	Team     models.TeamAggregate
	Opponent models.TeamAggregate

	// Drive efficiency, set for total bets only
	TeamDriveEff     *models.DriveEfficiency
	OpponentDriveEff *models.DriveEfficiency

	// Player prop fields
	Player               *models.PlayerRecord
	Role                 models.PlayerRole
	OpponentDefenseRank  int
	TeamOffenseRank      int
	OpponentPressureRate float64
	OpponentSacksPerGame float64
	SpreadLine           float64
	InjuredReceivers     int // other out/IR WR+TE on the player's team
	InjuredLinemen       int // out/IR offensive linemen on the player's team
}

// teamPPG returns the team scoring average with a league-average fallback.
// The validator rejects game bets before these are nil, but props reuse the
// same context and leave aggregates empty.
func teamPPG(agg models.TeamAggregate) float64 {
	if agg.PointsPerG == nil {
		return 20.0
	}
	return *agg.PointsPerG
}

func teamPA(agg models.TeamAggregate) float64 {
	if agg.PointsAllowedPerG == nil {
		return 22.0
	}
	return *agg.PointsAllowedPerG
}
