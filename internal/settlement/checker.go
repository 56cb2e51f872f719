package settlement

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridline/internal/metrics"
	"github.com/yourusername/gridline/internal/models"
	"github.com/yourusername/gridline/internal/teams"
)

// DefaultMatchThreshold is the minimum name similarity for a box-score match
const DefaultMatchThreshold = 0.85

// DefaultStakeUnits is the flat stake assumed per bet
const DefaultStakeUnits = 100

// marketColumns maps each prop market to its box-score table and stat column
var marketColumns = map[string]struct{ table, column string }{
	models.MarketPassingYards:    {"passing", "pass_yds"},
	models.MarketPassingTDs:      {"passing", "pass_td"},
	models.MarketPassCompletions: {"passing", "pass_cmp"},
	models.MarketPassAttempts:    {"passing", "pass_att"},
	models.MarketRushingYards:    {"rushing", "rush_yds"},
	models.MarketRushAttempts:    {"rushing", "rush_att"},
	models.MarketRushingTDs:      {"rushing", "rush_td"},
	models.MarketReceivingYards:  {"receiving", "rec_yds"},
	models.MarketReceptions:      {"receiving", "rec"},
	models.MarketReceivingTDs:    {"receiving", "rec_td"},
}

// tdTables are the box-score tables an anytime-TD bet is settled across
var tdTables = []struct{ table, column string }{
	{"passing", "pass_td"},
	{"rushing", "rush_td"},
	{"receiving", "rec_td"},
}

// Checker grades recommendations against a finalized game result
type Checker struct {
	log            *logrus.Logger
	matchThreshold float64
	stake          decimal.Decimal
}

// NewChecker creates a checker with the default threshold and stake
func NewChecker(log *logrus.Logger) *Checker {
	return &Checker{
		log:            log,
		matchThreshold: DefaultMatchThreshold,
		stake:          decimal.NewFromInt(DefaultStakeUnits),
	}
}

// NewCheckerWith creates a checker with an explicit threshold and stake
func NewCheckerWith(log *logrus.Logger, threshold float64, stake decimal.Decimal) *Checker {
	return &Checker{log: log, matchThreshold: threshold, stake: stake}
}

// Settle grades every recommendation and aggregates the results. Individual
// failures become per-bet errors, never a failed run.
func (c *Checker) Settle(recs []models.Recommendation, result *models.GameResult) *models.SettlementReport {
	results := make([]models.SettlementResult, 0, len(recs))
	for _, rec := range recs {
		res := c.settleOne(normalizeBet(rec), result)
		if res.Error != "" {
			metrics.RecordSettlementError()
			c.log.WithFields(logrus.Fields{
				"bet":   res.Bet,
				"error": res.Error,
			}).Warn("Could not settle bet")
		} else {
			metrics.RecordBetSettled(res.Won == nil)
		}
		results = append(results, res)
	}

	return &models.SettlementReport{
		BetResults: results,
		Summary:    buildSummary(results, c.stake),
	}
}

func (c *Checker) settleOne(rec models.Recommendation, result *models.GameResult) models.SettlementResult {
	switch rec.Kind {
	case models.BetKindPlayerProp:
		if rec.Market == models.MarketAnytimeTD {
			return c.settleAnytimeTD(rec, result)
		}
		return c.settleProp(rec, result)
	case models.BetKindSpread:
		return c.settleSpread(rec, result, rec.Line)
	case models.BetKindMoneyline:
		zero := 0.0
		return c.settleSpread(rec, result, &zero)
	case models.BetKindTotal, models.BetKindTeamTotal:
		return c.settleTotal(rec, result)
	default:
		kind := string(rec.Kind)
		if kind == "" {
			kind = rec.Bet
		}
		return models.SettlementResult{
			Bet:   rec.Bet,
			Error: fmt.Sprintf("Unknown bet type: %s", kind),
		}
	}
}

// settleProp grades an over/under on one player stat. A player absent from
// the box score settles at zero production rather than erroring.
func (c *Checker) settleProp(rec models.Recommendation, result *models.GameResult) models.SettlementResult {
	if rec.Line == nil {
		return models.SettlementResult{Bet: rec.Bet, Error: "Missing line"}
	}
	mapping, ok := marketColumns[rec.Market]
	if !ok {
		return models.SettlementResult{
			Bet:   rec.Bet,
			Error: fmt.Sprintf("Unknown market: %s", rec.Market),
		}
	}

	actual := 0.0
	if row, found := findPlayerRow(result.Tables[mapping.table].Data, rec.Player, c.matchThreshold); found {
		actual = numeric(row[mapping.column])
	}
	return c.grade(rec, actual, *rec.Line)
}

// settleAnytimeTD wins when the player has at least one touchdown across the
// passing, rushing and receiving tables.
func (c *Checker) settleAnytimeTD(rec models.Recommendation, result *models.GameResult) models.SettlementResult {
	total := 0.0
	for _, t := range tdTables {
		if row, found := findPlayerRow(result.Tables[t.table].Data, rec.Player, c.matchThreshold); found {
			total += numeric(row[t.column])
		}
	}

	won := total >= 1
	return models.SettlementResult{
		Bet:    rec.Bet,
		Won:    &won,
		Actual: &total,
		Profit: profitFloat(&won, rec.Odds, c.stake),
	}
}

// settleSpread grades a spread bet; moneylines come through with a zero line.
// Landing exactly on the line is a push.
func (c *Checker) settleSpread(rec models.Recommendation, result *models.GameResult, line *float64) models.SettlementResult {
	if line == nil {
		return models.SettlementResult{Bet: rec.Bet, Error: "Missing line"}
	}
	if result.FinalScore.Home == nil || result.FinalScore.Away == nil {
		return models.SettlementResult{Bet: rec.Bet, Error: "No final score available"}
	}

	var margin float64
	switch {
	case teams.Match(rec.Team, result.Teams.Home):
		margin = *result.FinalScore.Home - *result.FinalScore.Away
	case teams.Match(rec.Team, result.Teams.Away):
		margin = *result.FinalScore.Away - *result.FinalScore.Home
	default:
		return models.SettlementResult{
			Bet:   rec.Bet,
			Error: fmt.Sprintf("Team not found: %s", rec.Team),
		}
	}

	adjusted := margin + *line
	if adjusted == 0 {
		return models.SettlementResult{Bet: rec.Bet, Actual: &margin, Line: line}
	}
	won := adjusted > 0
	return models.SettlementResult{
		Bet:    rec.Bet,
		Won:    &won,
		Actual: &margin,
		Line:   line,
		Profit: profitFloat(&won, rec.Odds, c.stake),
	}
}

// settleTotal grades a combined-score over/under. Team totals grade the same
// way against the full game total.
func (c *Checker) settleTotal(rec models.Recommendation, result *models.GameResult) models.SettlementResult {
	if rec.Line == nil {
		return models.SettlementResult{Bet: rec.Bet, Error: "Missing line"}
	}
	if result.FinalScore.Home == nil || result.FinalScore.Away == nil {
		return models.SettlementResult{Bet: rec.Bet, Error: "No final score available"}
	}

	actual := *result.FinalScore.Home + *result.FinalScore.Away
	return c.grade(rec, actual, *rec.Line)
}

// grade resolves an over/under against an actual value. Only totals push on
// an exact landing; a player prop on the line strictly misses either side.
func (c *Checker) grade(rec models.Recommendation, actual, line float64) models.SettlementResult {
	if actual == line && (rec.Kind == models.BetKindTotal || rec.Kind == models.BetKindTeamTotal) {
		return models.SettlementResult{Bet: rec.Bet, Actual: &actual, Line: &line}
	}

	won := actual > line
	if rec.Side == models.SideUnder {
		won = actual < line
	}
	return models.SettlementResult{
		Bet:    rec.Bet,
		Won:    &won,
		Actual: &actual,
		Line:   &line,
		Profit: profitFloat(&won, rec.Odds, c.stake),
	}
}

// numeric coerces a box-score value that may arrive as string or number
func numeric(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
