package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridline/internal/models"
	"github.com/yourusername/gridline/internal/stats"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func fixtureRankings() []models.RankingTable {
	return []models.RankingTable{
		{
			TableName: "scoring_offense",
			Data: []models.TableRow{
				{"team": "Kansas City Chiefs", "ranker": 3.0, "points_per_g": 28.5},
				{"team": "Buffalo Bills", "ranker": 5.0, "points_per_g": 27.0},
			},
		},
		{
			TableName: "team_defense",
			Data: []models.TableRow{
				{"team": "Kansas City Chiefs", "ranker": 8.0, "points": 198.0, "g": 9.0},
				{"team": "Buffalo Bills", "ranker": 12.0, "points": 180.0, "g": 9.0},
			},
		},
		{
			TableName: "passing_defense",
			Data: []models.TableRow{
				{"team": "Kansas City Chiefs", "ranker": 10.0},
				{"team": "Buffalo Bills", "ranker": 28.0},
			},
		},
	}
}

func fixtureProfiles() map[string]models.TeamProfile {
	return map[string]models.TeamProfile{
		"KC": {
			"passing": models.ProfileTable{
				Data: []models.TableRow{
					{
						"name_display": "Patrick Mahomes", "pos": "QB", "games": 9.0,
						"pass_yds_per_g": 270.5, "pass_td": 18.0,
					},
				},
			},
			"rushing_receiving": models.ProfileTable{
				Data: []models.TableRow{
					{
						"name_display": "Travis Kelce", "pos": "TE", "games": 9.0,
						"rec_yds_per_g": 65.0, "rec_per_g": 5.5, "rec_td": 4.0,
					},
					{
						"name_display": "Rashee Rice", "pos": "WR", "games": 4.0,
						"rec_yds_per_g": 70.0, "rec_per_g": 6.0, "rec_td": 2.0,
					},
					{
						"name_display": "Deep Bench", "pos": "WR", "games": 9.0,
						"rec_yds_per_g": 0.0, "rec_per_g": 0.0,
					},
					{
						"name_display": "Isiah Pacheco", "pos": "RB", "games": 9.0,
						"rush_yds_per_g": 62.0, "rush_att_per_g": 14.0, "rush_td": 4.0,
						"rec_per_g": 2.0,
					},
					{
						"name_display": "Blocking Back", "pos": "RB", "games": 9.0,
						"rush_yds_per_g": 8.0, "rush_att_per_g": 2.0, "rec_per_g": 0.5,
					},
				},
			},
			"injury_report": models.ProfileTable{
				Data: []models.TableRow{
					{"player": "Rashee Rice", "pos": "WR", "status": "Out"},
				},
			},
		},
	}
}

func fixtureRepo() *stats.Repository {
	return stats.NewRepository(fixtureRankings(), fixtureProfiles())
}

func prop(player, market string) models.Opportunity {
	return models.Opportunity{
		Kind:   models.BetKindPlayerProp,
		Market: market,
		Player: player,
		Team:   "KC",
	}
}

func TestValidateAcceptsKnownHealthyPlayer(t *testing.T) {
	v := NewValidator(fixtureRepo())

	record, reason := v.Validate(prop("Patrick Mahomes", models.MarketPassingYards), "Buffalo Bills", "Kansas City Chiefs")
	assert.Empty(t, reason)
	require.NotNil(t, record)
	assert.Equal(t, "QB", record.Position)
}

func TestValidateRejectsUnknownPlayer(t *testing.T) {
	v := NewValidator(fixtureRepo())

	record, reason := v.Validate(prop("Ghost Player", models.MarketReceivingYards), "Buffalo Bills", "Kansas City Chiefs")
	assert.Nil(t, record)
	assert.Equal(t, ReasonNoStats, reason)
}

func TestValidateRejectsInjuredPlayer(t *testing.T) {
	v := NewValidator(fixtureRepo())

	record, reason := v.Validate(prop("Rashee Rice", models.MarketReceivingYards), "Buffalo Bills", "Kansas City Chiefs")
	assert.Nil(t, record)
	assert.Equal(t, ReasonInjured, reason)
}

func TestValidateRejectsLowProduction(t *testing.T) {
	v := NewValidator(fixtureRepo())

	record, reason := v.Validate(prop("Deep Bench", models.MarketReceivingYards), "Buffalo Bills", "Kansas City Chiefs")
	assert.Nil(t, record)
	assert.Equal(t, ReasonLowProduction, reason)
}

func TestValidateAnytimeTDUsageProxy(t *testing.T) {
	v := NewValidator(fixtureRepo())

	// Enough rushing volume even with few catches
	record, reason := v.Validate(prop("Isiah Pacheco", models.MarketAnytimeTD), "Buffalo Bills", "Kansas City Chiefs")
	assert.Empty(t, reason)
	assert.NotNil(t, record)

	// Neither catches nor rushing volume
	record, reason = v.Validate(prop("Blocking Back", models.MarketAnytimeTD), "Buffalo Bills", "Kansas City Chiefs")
	assert.Nil(t, record)
	assert.Equal(t, ReasonLowUsage, reason)

	// Enough receptions qualifies receivers with zero rushing
	record, reason = v.Validate(prop("Travis Kelce", models.MarketAnytimeTD), "Buffalo Bills", "Kansas City Chiefs")
	assert.Empty(t, reason)
	assert.NotNil(t, record)
}

func TestValidateGameBetNeedsBothAggregates(t *testing.T) {
	v := NewValidator(fixtureRepo())

	ml := models.Opportunity{Kind: models.BetKindMoneyline, Team: "Kansas City Chiefs", Side: models.SideHome}
	_, reason := v.Validate(ml, "Buffalo Bills", "Kansas City Chiefs")
	assert.Empty(t, reason)

	// One side without scoring data fails both sides' bets
	_, reason = v.Validate(ml, "Detroit Lions", "Kansas City Chiefs")
	assert.Equal(t, ReasonIncompleteTeam, reason)
}

func TestValidateAllowsUnknownMarkets(t *testing.T) {
	v := NewValidator(fixtureRepo())

	record, reason := v.Validate(prop("Patrick Mahomes", "longest_completion"), "Buffalo Bills", "Kansas City Chiefs")
	assert.Empty(t, reason)
	assert.NotNil(t, record)
}
