package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridline/internal/metrics"
	"github.com/yourusername/gridline/internal/models"
	"github.com/yourusername/gridline/internal/probability"
	"github.com/yourusername/gridline/internal/stats"
	"github.com/yourusername/gridline/internal/teams"
)

// Config holds the ranker's tunables
type Config struct {
	// Conservative shrinks every model probability before EV is computed
	Conservative float64
	// MinEV filters scored opportunities below this EV percentage
	MinEV float64
	// TopN is the number of recommendations Top returns
	TopN int
	// DedupPlayers keeps only the best prop per player in Top
	DedupPlayers bool
	// MaxReceiversPerTeam caps receiver props per team in Top
	MaxReceiversPerTeam int
}

// DefaultConfig returns the standard ranker configuration
func DefaultConfig() Config {
	return Config{
		Conservative:        0.85,
		MinEV:               0.0,
		TopN:                10,
		DedupPlayers:        true,
		MaxReceiversPerTeam: 1,
	}
}

// Ranker scores opportunities and orders them by expected value. A panic
// while scoring one opportunity drops that opportunity only.
type Ranker struct {
	repo      *stats.Repository
	validator *Validator
	cfg       Config
	log       *logrus.Logger
}

// NewRanker creates a ranker over a built stat repository
func NewRanker(repo *stats.Repository, cfg Config, log *logrus.Logger) *Ranker {
	return &Ranker{
		repo:      repo,
		validator: NewValidator(repo),
		cfg:       cfg,
		log:       log,
	}
}

// Rank validates and scores every opportunity, returning survivors sorted by
// EV descending. Rejections and panics are logged and counted, never fatal.
func (r *Ranker) Rank(payload *models.OddsPayload, opps []models.Opportunity) []models.ScoredOpportunity {
	away := payload.Teams.Away.Name
	home := payload.Teams.Home.Name

	scored := make([]models.ScoredOpportunity, 0, len(opps))
	for _, opp := range opps {
		s, ok := r.scoreOne(payload, opp, away, home)
		if !ok {
			continue
		}
		if s.EVPercent < r.cfg.MinEV {
			continue
		}
		metrics.RecordOpportunityScored(s.EVPercent)
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].EVPercent > scored[j].EVPercent
	})
	return scored
}

func (r *Ranker) scoreOne(payload *models.OddsPayload, opp models.Opportunity, away, home string) (s models.ScoredOpportunity, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			metrics.RecordScoringPanic()
			r.log.WithFields(logrus.Fields{
				"description": opp.Description,
				"panic":       rec,
			}).Warn("Recovered panic while scoring opportunity, skipping")
			ok = false
		}
	}()

	record, reason := r.validator.Validate(opp, away, home)
	if reason != "" {
		metrics.RecordOpportunitySkipped(reason)
		r.log.WithFields(logrus.Fields{
			"description": opp.Description,
			"reason":      reason,
		}).Debug("Skipping opportunity")
		return s, false
	}

	ctx := r.buildContext(payload, opp, record, away, home)
	trueProb := probability.Estimate(opp, ctx)
	adjusted := trueProb * r.cfg.Conservative
	ev := (adjusted/100*opp.DecimalOdds - 1) * 100

	s = models.ScoredOpportunity{
		Opportunity:  opp,
		TrueProb:     trueProb,
		AdjustedProb: adjusted,
		EVPercent:    ev,
		Reasoning:    buildReasoning(opp, ctx, trueProb),
	}
	return s, true
}

// buildContext assembles the statistical context an opportunity is modeled
// on. Game bets are always framed from the bet side's perspective.
func (r *Ranker) buildContext(payload *models.OddsPayload, opp models.Opportunity, record *models.PlayerRecord, away, home string) probability.Context {
	if opp.Kind.IsGameLevel() {
		return r.gameContext(opp, away, home)
	}
	return r.propContext(payload, opp, record, away, home)
}

func (r *Ranker) gameContext(opp models.Opportunity, away, home string) probability.Context {
	team, opponent := away, home
	if opp.Side == models.SideHome {
		team, opponent = home, away
	}

	ctx := probability.Context{
		Team:     r.repo.TeamAggregate(team),
		Opponent: r.repo.TeamAggregate(opponent),
	}
	if opp.Kind == models.BetKindTotal {
		teamEff := r.repo.DriveEfficiency(team)
		oppEff := r.repo.DriveEfficiency(opponent)
		ctx.TeamDriveEff = &teamEff
		ctx.OpponentDriveEff = &oppEff
	}
	return ctx
}

func (r *Ranker) propContext(payload *models.OddsPayload, opp models.Opportunity, record *models.PlayerRecord, away, home string) probability.Context {
	team, opponent := away, home
	if teams.Match(opp.Team, home) {
		team, opponent = home, away
	}

	position := record.Position
	if position == "" {
		position = strings.ToUpper(opp.Position)
	}

	category := rankCategory(opp.Market)
	defRank, _ := r.repo.GetDefenseRank(opponent, category)
	offRank, _ := r.repo.GetOffenseRank(team, category)

	oppGames := r.repo.GetTeamStat(opponent, "team_defense", "g", 9)
	if oppGames <= 0 {
		oppGames = 9
	}

	return probability.Context{
		Player:               record,
		Role:                 stats.InferRole(position, record.Averages),
		OpponentDefenseRank:  defRank,
		TeamOffenseRank:      offRank,
		OpponentPressureRate: r.repo.DefensePressureRate(opponent),
		OpponentSacksPerGame: float64(r.repo.DefenseSackTotal(opponent)) / oppGames,
		SpreadLine:           spreadFor(payload, team, home),
		InjuredReceivers:     len(r.repo.InjuredReceivers(team)),
		InjuredLinemen:       len(r.repo.InjuredLinemen(team)),
	}
}

// rankCategory maps a prop market to the defensive ranking that opposes it.
// Receiving production runs through the pass defense.
func rankCategory(market string) string {
	switch market {
	case models.MarketRushingYards, models.MarketRushAttempts, models.MarketRushingTDs:
		return "rushing"
	case models.MarketAnytimeTD:
		return "overall"
	default:
		return "passing"
	}
}

// spreadFor returns the spread line from the given team's perspective,
// negative when that team is favored. Zero when no spread was posted.
func spreadFor(payload *models.OddsPayload, team, home string) float64 {
	sp := payload.GameLines.Spread
	if sp == nil {
		return 0
	}
	if teams.Match(team, home) {
		if sp.Home != nil {
			return *sp.Home
		}
		return 0
	}
	if sp.Away != nil {
		return *sp.Away
	}
	return 0
}

// Top returns the n best recommendations, deduplicating player props so one
// player appears once and each team sends a bounded number of receivers.
// Game-level bets are never deduplicated.
func (r *Ranker) Top(scored []models.ScoredOpportunity, n int) []models.ScoredOpportunity {
	if n <= 0 {
		n = r.cfg.TopN
	}

	seenPlayers := make(map[string]bool)
	receiversPerTeam := make(map[string]int)

	top := make([]models.ScoredOpportunity, 0, n)
	for _, s := range scored {
		if len(top) >= n {
			break
		}
		if s.Kind.IsGameLevel() {
			top = append(top, s)
			continue
		}

		if r.cfg.DedupPlayers {
			key := stats.NormalizePlayerName(s.Player)
			if seenPlayers[key] {
				continue
			}
			seenPlayers[key] = true
		}

		if r.cfg.MaxReceiversPerTeam > 0 && isReceiverProp(s.Opportunity) {
			team := teams.Canonical(s.Team)
			if receiversPerTeam[team] >= r.cfg.MaxReceiversPerTeam {
				continue
			}
			receiversPerTeam[team]++
		}

		top = append(top, s)
	}
	return top
}

func isReceiverProp(opp models.Opportunity) bool {
	switch opp.Market {
	case models.MarketReceivingYards, models.MarketReceptions, models.MarketReceivingTDs:
		return true
	}
	pos := strings.ToUpper(opp.Position)
	return pos == "WR" || pos == "TE"
}

// describeOdds renders American odds with an explicit sign
func describeOdds(odds int) string {
	return fmt.Sprintf("%+d", odds)
}
