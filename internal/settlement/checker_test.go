package settlement

import (
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridline/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fp(v float64) *float64 { return &v }

func testResult() *models.GameResult {
	return &models.GameResult{
		Teams:      models.ResultTeams{Home: "Kansas City Chiefs", Away: "Buffalo Bills"},
		FinalScore: models.FinalScore{Home: fp(27), Away: fp(20)},
		Tables: map[string]models.ResultTable{
			"passing": {Data: []models.TableRow{
				{"name_display": "Patrick Mahomes", "pass_yds": 291.0, "pass_td": 2.0, "pass_cmp": 24.0},
				{"name_display": "Josh Allen", "pass_yds": 244.0, "pass_td": 1.0},
			}},
			"rushing": {Data: []models.TableRow{
				{"name_display": "Isiah Pacheco", "rush_yds": 88.0, "rush_td": 1.0, "rush_att": 19.0},
			}},
			"receiving": {Data: []models.TableRow{
				{"name_display": "Travis Kelce", "rec_yds": 74.0, "rec": 6.0, "rec_td": 0.0},
				{"name_display": "Isiah Pacheco", "rec_yds": 12.0, "rec": 2.0, "rec_td": 1.0},
			}},
		},
	}
}

func settleOne(t *testing.T, bet string) models.SettlementResult {
	t.Helper()
	checker := NewChecker(testLogger())
	report := checker.Settle([]models.Recommendation{{Bet: bet}}, testResult())
	require.Len(t, report.BetResults, 1)
	return report.BetResults[0]
}

func TestSettlePropOverWin(t *testing.T) {
	res := settleOne(t, "Patrick Mahomes Over 249.5 Passing Yards (-110)")

	require.NotNil(t, res.Won)
	assert.True(t, *res.Won)
	assert.Equal(t, 291.0, *res.Actual)
	assert.InDelta(t, 90.91, res.Profit, 0.001)
}

func TestSettlePropOverLoss(t *testing.T) {
	res := settleOne(t, "Josh Allen Over 249.5 Passing Yards (-110)")

	require.NotNil(t, res.Won)
	assert.False(t, *res.Won)
	assert.Equal(t, 244.0, *res.Actual)
	assert.Equal(t, -100.0, res.Profit)
}

func TestSettlePropUnderWin(t *testing.T) {
	res := settleOne(t, "Travis Kelce Under 6.5 Receptions (+150)")

	require.NotNil(t, res.Won)
	assert.True(t, *res.Won)
	assert.Equal(t, 150.0, res.Profit)
}

func TestSettlePropOnTheLineLosesBothSides(t *testing.T) {
	over := settleOne(t, "Travis Kelce Over 6 Receptions (-110)")
	require.NotNil(t, over.Won)
	assert.False(t, *over.Won)
	assert.Equal(t, -100.0, over.Profit)

	under := settleOne(t, "Travis Kelce Under 6 Receptions (-110)")
	require.NotNil(t, under.Won)
	assert.False(t, *under.Won)
}

func TestSettlePropAbsentPlayerCountsAsZero(t *testing.T) {
	over := settleOne(t, "Ghost Player Over 49.5 Rushing Yards (-110)")
	require.NotNil(t, over.Won)
	assert.False(t, *over.Won)
	assert.Equal(t, 0.0, *over.Actual)

	under := settleOne(t, "Ghost Player Under 49.5 Rushing Yards (-110)")
	require.NotNil(t, under.Won)
	assert.True(t, *under.Won)
}

func TestSettlePropFuzzyNameMatch(t *testing.T) {
	res := settleOne(t, "Pat Mahomes Over 249.5 Passing Yards (-110)")

	require.NotNil(t, res.Won)
	assert.True(t, *res.Won)
	assert.Equal(t, 291.0, *res.Actual)
}

func TestSettleAnytimeTDAcrossTables(t *testing.T) {
	// Pacheco scored rushing and receiving: 2 total
	res := settleOne(t, "Isiah Pacheco Anytime TD (+120)")
	require.NotNil(t, res.Won)
	assert.True(t, *res.Won)
	assert.Equal(t, 2.0, *res.Actual)
	assert.Equal(t, 120.0, res.Profit)

	// Kelce caught 6 balls but never scored
	res = settleOne(t, "Travis Kelce Anytime TD (+105)")
	require.NotNil(t, res.Won)
	assert.False(t, *res.Won)
	assert.Equal(t, 0.0, *res.Actual)

	// Passing-table touchdowns count as well
	res = settleOne(t, "Patrick Mahomes Anytime TD (+400)")
	require.NotNil(t, res.Won)
	assert.True(t, *res.Won)
	assert.Equal(t, 2.0, *res.Actual)
}

func TestSettleSpread(t *testing.T) {
	// Home won by 7; laying 3.5 covers
	res := settleOne(t, "Kansas City Chiefs -3.5 (-110)")
	require.NotNil(t, res.Won)
	assert.True(t, *res.Won)
	assert.Equal(t, 7.0, *res.Actual)

	// Getting 3.5 on a 7-point loss does not cover
	res = settleOne(t, "Buffalo Bills +3.5 (-110)")
	require.NotNil(t, res.Won)
	assert.False(t, *res.Won)
	assert.Equal(t, -7.0, *res.Actual)

	// Laying 10.5 on a 7-point win does not cover either
	res = settleOne(t, "Kansas City Chiefs -10.5 (-110)")
	require.NotNil(t, res.Won)
	assert.False(t, *res.Won)
}

func TestSettleSpreadPush(t *testing.T) {
	res := settleOne(t, "Buffalo Bills +7 (-110)")

	assert.Nil(t, res.Won)
	assert.Equal(t, 0.0, res.Profit)
	assert.Empty(t, res.Error)
}

func TestSettleMoneyline(t *testing.T) {
	res := settleOne(t, "Kansas City Chiefs Moneyline (-140)")
	require.NotNil(t, res.Won)
	assert.True(t, *res.Won)
	assert.InDelta(t, 71.43, res.Profit, 0.001)

	res = settleOne(t, "Buffalo Bills ML (+130)")
	require.NotNil(t, res.Won)
	assert.False(t, *res.Won)
	assert.Equal(t, -100.0, res.Profit)
}

func TestSettleTotal(t *testing.T) {
	// Final total 47
	res := settleOne(t, "Over 44.5 Total Points (-105)")
	require.NotNil(t, res.Won)
	assert.True(t, *res.Won)
	assert.Equal(t, 47.0, *res.Actual)

	res = settleOne(t, "Under 44.5 Total Points (-115)")
	require.NotNil(t, res.Won)
	assert.False(t, *res.Won)

	res = settleOne(t, "Over 47 Total Points (-110)")
	assert.Nil(t, res.Won)
	assert.Empty(t, res.Error)
}

func TestSettleUnknownBet(t *testing.T) {
	res := settleOne(t, "first touchdown scorer parlay???")
	assert.Equal(t, "Unknown bet type: first touchdown scorer parlay???", res.Error)
}

func TestSettleTeamNotFound(t *testing.T) {
	res := settleOne(t, "Detroit Lions -3.5 (-110)")
	assert.Equal(t, "Team not found: Detroit Lions", res.Error)
}

func TestSettleMissingFinalScore(t *testing.T) {
	checker := NewChecker(testLogger())
	result := testResult()
	result.FinalScore.Home = nil

	report := checker.Settle([]models.Recommendation{{Bet: "Over 44.5 Total Points"}}, result)
	assert.Equal(t, "No final score available", report.BetResults[0].Error)
}

func TestSettleSummary(t *testing.T) {
	checker := NewChecker(testLogger())
	recs := []models.Recommendation{
		{Bet: "Patrick Mahomes Over 249.5 Passing Yards (-110)"}, // win +90.91
		{Bet: "Josh Allen Over 249.5 Passing Yards (-110)"},      // loss -100
		{Bet: "Buffalo Bills +7 (-110)"},                          // push
		{Bet: "Isiah Pacheco Anytime TD (+120)"},                  // win +120
	}

	report := checker.Settle(recs, testResult())
	summary := report.Summary

	assert.Equal(t, 4, summary.TotalBets)
	assert.Equal(t, 2, summary.BetsWon)
	assert.Equal(t, 1, summary.BetsLost)
	assert.InDelta(t, 50.0, summary.WinRate, 0.001) // 2 of 4, push included
	assert.InDelta(t, 110.91, summary.TotalProfit, 0.001)
	assert.Equal(t, 400.0, summary.TotalStaked)
	assert.InDelta(t, 27.7, summary.ROIPercent, 0.001)
}

func TestProfit(t *testing.T) {
	stake := decimal.NewFromInt(100)
	won := true
	lost := false

	assert.InDelta(t, 90.909, Profit(&won, -110, stake).InexactFloat64(), 0.001)
	assert.Equal(t, 150.0, Profit(&won, 150, stake).InexactFloat64())
	assert.Equal(t, -100.0, Profit(&lost, 150, stake).InexactFloat64())
	assert.Equal(t, 0.0, Profit(nil, -110, stake).InexactFloat64())
}
