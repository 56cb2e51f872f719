// Package stats indexes ranking and profile tables into a read-only
// repository for one analysis session. Team names are resolved to canonical
// form before indexing so every accessor is an O(1) lookup.
package stats

import (
	"strconv"
	"strings"

	"github.com/yourusername/gridline/internal/models"
	"github.com/yourusername/gridline/internal/teams"
)

// League-average fallbacks used when a table or field is absent
const (
	DefaultPointsPerGame     = 20.0
	DefaultPointsAllowed     = 22.0
	DefaultPressureRate      = 22.5
	DefaultBlitzRate         = 25.0
	DefaultScorePct          = 35.0
	DefaultTurnoverPct       = 12.0
	DefaultYardsPerDrive     = 30.0
	DefaultPointsPerDrive    = 2.0
	MiddleRank               = 16
)

var defenseTables = map[string]bool{
	"passing_defense":  true,
	"rushing_defense":  true,
	"team_defense":     true,
	"advanced_defense": true,
}

var defenseRankTables = map[string]string{
	"passing": "passing_defense",
	"rushing": "rushing_defense",
	"overall": "team_defense",
}

var offenseRankTables = map[string]string{
	"passing": "passing_offense",
	"rushing": "rushing_offense",
	"overall": "team_offense",
}

// Repository is an immutable per-session index of ranking tables and team
// profiles. Build it once per sport/session and share it freely; it is
// never mutated after construction.
type Repository struct {
	offense  map[string]map[string]models.TableRow
	defense  map[string]map[string]models.TableRow
	profiles map[string]models.TeamProfile
}

// NewRepository indexes every ranking table by canonical team name and keys
// profiles the same way.
func NewRepository(rankings []models.RankingTable, profiles map[string]models.TeamProfile) *Repository {
	r := &Repository{
		offense:  make(map[string]map[string]models.TableRow),
		defense:  make(map[string]map[string]models.TableRow),
		profiles: make(map[string]models.TeamProfile, len(profiles)),
	}

	for _, table := range rankings {
		indexed := indexByTeam(table.Data)
		if defenseTables[table.TableName] {
			r.defense[table.TableName] = indexed
		} else {
			r.offense[table.TableName] = indexed
		}
	}

	for team, profile := range profiles {
		r.profiles[teams.Canonical(team)] = profile
	}

	return r
}

func indexByTeam(rows []models.TableRow) map[string]models.TableRow {
	indexed := make(map[string]models.TableRow, len(rows))
	for _, row := range rows {
		name, _ := row["team"].(string)
		if name == "" {
			continue
		}
		indexed[teams.Canonical(name)] = row
	}
	return indexed
}

// Profile returns the profile tables for a team, if loaded
func (r *Repository) Profile(team string) (models.TeamProfile, bool) {
	p, ok := r.profiles[teams.Canonical(team)]
	return p, ok
}

// GetTeamStat returns a numeric ranking-table field for a team, falling back
// to def when the table, team or field is absent or non-numeric.
func (r *Repository) GetTeamStat(team, table, field string, def float64) float64 {
	row, ok := r.row(team, table)
	if !ok {
		return def
	}
	if v, ok := toFloat(row[field]); ok {
		return v
	}
	return def
}

// GetDefenseRank returns the team's defensive rank for a category
// ("passing", "rushing", "overall"). The second return is false when the
// team or table is missing.
func (r *Repository) GetDefenseRank(team, category string) (int, bool) {
	table, ok := defenseRankTables[category]
	if !ok {
		table = "team_defense"
	}
	return r.rank(r.defense[table], team)
}

// GetOffenseRank returns the team's offensive rank for a category
func (r *Repository) GetOffenseRank(team, category string) (int, bool) {
	table, ok := offenseRankTables[category]
	if !ok {
		table = "team_offense"
	}
	return r.rank(r.offense[table], team)
}

func (r *Repository) rank(table map[string]models.TableRow, team string) (int, bool) {
	row, ok := table[teams.Canonical(team)]
	if !ok {
		return 0, false
	}
	if v, ok := toFloat(row["ranker"]); ok {
		return int(v), true
	}
	return 0, false
}

// ScoringAverage returns offensive points per game (scoring_offense table)
func (r *Repository) ScoringAverage(team string) float64 {
	return r.GetTeamStat(team, "scoring_offense", "points_per_g", DefaultPointsPerGame)
}

// TeamAggregate builds the aggregate the game-line models run on. Fields
// stay nil when the backing tables are missing, which the validator treats
// as a rejection.
func (r *Repository) TeamAggregate(team string) models.TeamAggregate {
	var agg models.TeamAggregate

	if row, ok := r.row(team, "scoring_offense"); ok {
		if ppg, ok := toFloat(row["points_per_g"]); ok {
			agg.PointsPerG = &ppg
		}
	}
	if pa, ok := r.pointsAllowed(team); ok {
		agg.PointsAllowedPerG = &pa
	}
	return agg
}

// PointsAllowedPerGame returns defensive points allowed per game, computed
// from the team_defense table (points / games), defaulting to league average.
func (r *Repository) PointsAllowedPerGame(team string) float64 {
	if pa, ok := r.pointsAllowed(team); ok {
		return pa
	}
	return DefaultPointsAllowed
}

func (r *Repository) pointsAllowed(team string) (float64, bool) {
	row, ok := r.defense["team_defense"][teams.Canonical(team)]
	if !ok {
		return 0, false
	}
	points, pok := toFloat(row["points"])
	games, gok := toFloat(row["g"])
	if !pok || !gok || games <= 0 {
		return 0, false
	}
	return points / games, true
}

// DefensePressureRate returns the QB pressure percentage from the advanced
// defense table. Values arrive as percentage strings ("23.4%").
func (r *Repository) DefensePressureRate(team string) float64 {
	row, ok := r.defense["advanced_defense"][teams.Canonical(team)]
	if !ok {
		return DefaultPressureRate
	}
	return percentOrDefault(row["pressures_pct"], DefaultPressureRate)
}

// DefenseBlitzRate returns the blitz percentage from the advanced defense table
func (r *Repository) DefenseBlitzRate(team string) float64 {
	row, ok := r.defense["advanced_defense"][teams.Canonical(team)]
	if !ok {
		return DefaultBlitzRate
	}
	return percentOrDefault(row["blitz_pct"], DefaultBlitzRate)
}

// DefenseSackTotal returns season sack total from the advanced defense table
func (r *Repository) DefenseSackTotal(team string) int {
	row, ok := r.defense["advanced_defense"][teams.Canonical(team)]
	if !ok {
		return 0
	}
	if v, ok := toFloat(row["sacks"]); ok {
		return int(v)
	}
	return 0
}

// DriveEfficiency returns per-drive scoring efficiency from the team_stats
// profile table, with league-average defaults when absent.
func (r *Repository) DriveEfficiency(team string) models.DriveEfficiency {
	eff := models.DriveEfficiency{
		ScorePct:      DefaultScorePct,
		TurnoverPct:   DefaultTurnoverPct,
		YardsPerDrive: DefaultYardsPerDrive,
		PointsAvg:     DefaultPointsPerDrive,
	}

	profile, ok := r.Profile(team)
	if !ok {
		return eff
	}
	table, ok := profile["team_stats"]
	if !ok || len(table.Data) == 0 {
		return eff
	}

	row := table.Data[0] // first row is the team's own line
	eff.ScorePct = percentOrDefault(row["score_pct"], DefaultScorePct)
	eff.TurnoverPct = percentOrDefault(row["turnover_pct"], DefaultTurnoverPct)
	if v, ok := toFloat(row["yds_per_drive"]); ok {
		eff.YardsPerDrive = v
	}
	if v, ok := toFloat(row["points_avg"]); ok {
		eff.PointsAvg = v
	}
	return eff
}

func (r *Repository) row(team, table string) (models.TableRow, bool) {
	canonical := teams.Canonical(team)
	if row, ok := r.offense[table][canonical]; ok {
		return row, true
	}
	row, ok := r.defense[table][canonical]
	return row, ok
}

// toFloat coerces a loosely-typed table value to float64
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" || s == "-" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// percentOrDefault coerces a percentage value that may carry a "%" suffix
func percentOrDefault(v any, def float64) float64 {
	if s, ok := v.(string); ok {
		s = strings.TrimSuffix(strings.TrimSpace(s), "%")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return def
	}
	if f, ok := toFloat(v); ok {
		return f
	}
	return def
}
