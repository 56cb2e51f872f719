package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/gridline/internal/models"
)

func qbRecord(passYds float64) *models.PlayerRecord {
	return &models.PlayerRecord{
		Name:     "Test Quarterback",
		Position: "QB",
		Games:    9,
		Averages: models.PlayerAverages{PassYds: passYds, PassTD: 1.8},
	}
}

func propCtx(record *models.PlayerRecord, role models.PlayerRole) Context {
	return Context{
		Player:               record,
		Role:                 role,
		OpponentDefenseRank:  16,
		TeamOffenseRank:      16,
		OpponentPressureRate: 22.5,
		OpponentSacksPerGame: 3.0,
	}
}

func passingOver(line float64) models.Opportunity {
	return models.Opportunity{
		Kind:   models.BetKindPlayerProp,
		Market: models.MarketPassingYards,
		Side:   models.SideOver,
		Line:   &line,
	}
}

func TestContinuousProbabilityAtAverageIsEven(t *testing.T) {
	ctx := propCtx(qbRecord(260), "QB1")
	p := Estimate(passingOver(260), ctx)
	assert.InDelta(t, 50.0, p, 1e-9)
}

func TestContinuousProbabilityMonotoneInLine(t *testing.T) {
	ctx := propCtx(qbRecord(260), "QB1")

	low := Estimate(passingOver(220.5), ctx)
	mid := Estimate(passingOver(260.5), ctx)
	high := Estimate(passingOver(300.5), ctx)

	assert.Greater(t, low, mid)
	assert.Greater(t, mid, high)
	assert.GreaterOrEqual(t, high, 1.0)
	assert.LessOrEqual(t, low, 99.0)
}

func TestContinuousProbabilityUnderSide(t *testing.T) {
	ctx := propCtx(qbRecord(260), "QB1")

	over := Estimate(passingOver(275.5), ctx)
	under := models.Opportunity{
		Kind:   models.BetKindPlayerProp,
		Market: models.MarketPassingYards,
		Side:   models.SideUnder,
		Line:   fp(275.5),
	}
	p := Estimate(under, ctx)
	assert.InDelta(t, 100.0, over+p, 1e-9)
}

func TestMatchupShiftsProjection(t *testing.T) {
	line := 260.5

	soft := propCtx(qbRecord(260), "QB1")
	soft.OpponentDefenseRank = 30
	tough := propCtx(qbRecord(260), "QB1")
	tough.OpponentDefenseRank = 2

	pSoft := Estimate(passingOver(line), soft)
	pTough := Estimate(passingOver(line), tough)
	assert.Greater(t, pSoft, pTough)
}

func TestPressureHurtsPassingProps(t *testing.T) {
	calm := propCtx(qbRecord(260), "QB1")
	pressured := propCtx(qbRecord(260), "QB1")
	pressured.OpponentPressureRate = 30.0
	pressured.OpponentSacksPerGame = 4.5

	pCalm := Estimate(passingOver(255.5), calm)
	pPressured := Estimate(passingOver(255.5), pressured)
	assert.Greater(t, pCalm, pPressured)
}

func TestInjuredReceiversHurtPassing(t *testing.T) {
	healthy := propCtx(qbRecord(260), "QB1")
	depleted := propCtx(qbRecord(260), "QB1")
	depleted.InjuredReceivers = 2
	depleted.InjuredLinemen = 1

	pHealthy := Estimate(passingOver(250.5), healthy)
	pDepleted := Estimate(passingOver(250.5), depleted)
	assert.Greater(t, pHealthy, pDepleted)
}

func TestGameScriptMultipliers(t *testing.T) {
	qb := &models.PlayerRecord{Position: "QB", Averages: models.PlayerAverages{RushYds: 30}}
	rb := &models.PlayerRecord{Position: "RB", Averages: models.PlayerAverages{Rec: 4, RecYds: 30}}
	depthWR := &models.PlayerRecord{Position: "WR", Averages: models.PlayerAverages{Rec: 2, RecYds: 22}}

	ctx := Context{Player: qb, SpreadLine: -10}
	assert.Equal(t, 0.65, gameScriptMultiplier(models.MarketRushingYards, ctx))

	ctx = Context{Player: rb, SpreadLine: -10}
	assert.Equal(t, 0.85, gameScriptMultiplier(models.MarketReceptions, ctx))
	ctx.SpreadLine = 10
	assert.Equal(t, 0.75, gameScriptMultiplier(models.MarketReceptions, ctx))

	ctx = Context{Player: depthWR, SpreadLine: 10}
	assert.Equal(t, 0.80, gameScriptMultiplier(models.MarketReceivingYards, ctx))

	// Neutral spread leaves projections alone
	ctx = Context{Player: rb, SpreadLine: -3}
	assert.Equal(t, 1.0, gameScriptMultiplier(models.MarketReceptions, ctx))
}

func TestVarianceRatio(t *testing.T) {
	base := propCtx(nil, "")

	assert.InDelta(t, 0.28, varianceRatio(models.MarketPassingYards, base), 1e-9)
	assert.InDelta(t, 0.35, varianceRatio(models.MarketRushingYards, base), 1e-9)
	assert.InDelta(t, 0.42, varianceRatio(models.MarketReceivingYards, base), 1e-9)
	assert.InDelta(t, 0.22, varianceRatio(models.MarketReceptions, base), 1e-9)

	starter := base
	starter.Role = "QB1"
	assert.InDelta(t, 0.28*0.90, varianceRatio(models.MarketPassingYards, starter), 1e-9)

	bench := base
	bench.Role = "WR3"
	blowout := bench
	blowout.SpreadLine = -14
	// 0.42 * 1.25 * 1.35 exceeds the cap
	assert.Equal(t, 0.50, varianceRatio(models.MarketReceivingYards, blowout))

	close := base
	close.Role = "QB1"
	close.SpreadLine = -2.5
	assert.InDelta(t, 0.28*0.90*0.95, varianceRatio(models.MarketPassingYards, close), 1e-9)
}

func TestAnytimeTDProbability(t *testing.T) {
	scorer := propCtx(&models.PlayerRecord{
		Position: "RB",
		Averages: models.PlayerAverages{RushTD: 0.8, RecTD: 0.2},
	}, "RB1")

	opp := models.Opportunity{Kind: models.BetKindPlayerProp, Market: models.MarketAnytimeTD}
	p := Estimate(opp, scorer)
	// rushing production dominates: 1 - e^-0.8
	assert.InDelta(t, 55.07, p, 0.01)

	// receiving average carries a pure pass catcher
	catcher := propCtx(&models.PlayerRecord{
		Position: "WR",
		Averages: models.PlayerAverages{RecTD: 0.5},
	}, "WR1")
	assert.InDelta(t, 39.35, Estimate(opp, catcher), 0.01)

	rare := propCtx(&models.PlayerRecord{Position: "RB"}, "RB3")
	pRare := Estimate(opp, rare)
	assert.GreaterOrEqual(t, pRare, 2.0)
	assert.Less(t, pRare, p)

	machine := propCtx(&models.PlayerRecord{
		Position: "RB",
		Averages: models.PlayerAverages{RushTD: 3.0},
	}, "RB1")
	assert.Equal(t, 80.0, Estimate(opp, machine))
}

func TestPassingTDProbability(t *testing.T) {
	ctx := propCtx(qbRecord(260), "QB1")

	over := models.Opportunity{
		Kind:   models.BetKindPlayerProp,
		Market: models.MarketPassingTDs,
		Side:   models.SideOver,
		Line:   fp(1.5),
	}
	p := Estimate(over, ctx)
	assert.Greater(t, p, 50.0) // averages 1.8 against a 1.5 line
	assert.LessOrEqual(t, p, 99.0)

	over.Line = fp(3.5)
	assert.Less(t, Estimate(over, ctx), 50.0)
}

func TestUnknownMarketDiscountsImplied(t *testing.T) {
	ctx := propCtx(qbRecord(260), "QB1")
	opp := models.Opportunity{
		Kind:        models.BetKindPlayerProp,
		Market:      "longest_completion",
		ImpliedProb: 52.4,
	}
	assert.InDelta(t, 0.75*52.4, Estimate(opp, ctx), 1e-9)
}

func TestPropWithoutPlayerFallsBack(t *testing.T) {
	opp := models.Opportunity{
		Kind:        models.BetKindPlayerProp,
		Market:      models.MarketPassingYards,
		ImpliedProb: 50,
	}
	assert.InDelta(t, 37.5, Estimate(opp, Context{}), 1e-9)
}
