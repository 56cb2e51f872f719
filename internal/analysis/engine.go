package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridline/internal/metrics"
	"github.com/yourusername/gridline/internal/models"
	"github.com/yourusername/gridline/internal/odds"
	"github.com/yourusername/gridline/internal/stats"
)

// repositoryTTL bounds how long an indexed repository is reused before the
// caller's tables are re-indexed.
const repositoryTTL = 30 * time.Minute

// Engine is the top-level analysis pipeline: parse an odds payload, index the
// stat tables, score every opportunity and pick recommendations.
type Engine struct {
	parser *odds.Parser
	cache  *stats.SessionCache
	cfg    Config
	log    *logrus.Logger
}

// NewEngine creates an engine with the given price band and ranker config
func NewEngine(band odds.Band, cfg Config, log *logrus.Logger) *Engine {
	return &Engine{
		parser: odds.NewParser(band),
		cache:  stats.NewSessionCache(repositoryTTL),
		cfg:    cfg,
		log:    log,
	}
}

// Report is the output of one full analysis run
type Report struct {
	RunID              string                    `json:"run_id"`
	Sport              string                    `json:"sport"`
	Matchup            string                    `json:"matchup"`
	GeneratedAt        time.Time                 `json:"generated_at"`
	TotalOpportunities int                       `json:"total_opportunities"`
	TotalScored        int                       `json:"total_scored"`
	AvgEVPercent       float64                   `json:"avg_ev_percent"`
	BestEVPercent      float64                   `json:"best_ev_percent"`
	Recommendations    []models.ScoredOpportunity `json:"recommendations"`
	AllScored          []models.ScoredOpportunity `json:"all_scored,omitempty"`
}

// Analyze runs the full pipeline over one payload. Stat tables are indexed
// once per sport and reused for the session, so callers should pass the same
// tables for a given sport within a session.
func (e *Engine) Analyze(payload *models.OddsPayload, rankings []models.RankingTable, profiles map[string]models.TeamProfile) (*Report, error) {
	start := time.Now()

	opps, err := e.parser.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("parsing odds payload: %w", err)
	}
	metrics.RecordOpportunitiesParsed(len(opps))

	repo, ok := e.cache.Get(payload.Sport)
	if !ok {
		repo = stats.NewRepository(rankings, profiles)
		e.cache.Set(payload.Sport, repo)
	}

	ranker := NewRanker(repo, e.cfg, e.log)
	scored := ranker.Rank(payload, opps)
	recommendations := ranker.Top(scored, e.cfg.TopN)

	report := &Report{
		RunID:              uuid.NewString(),
		Sport:              payload.Sport,
		Matchup:            fmt.Sprintf("%s @ %s", payload.Teams.Away.Name, payload.Teams.Home.Name),
		GeneratedAt:        time.Now().UTC(),
		TotalOpportunities: len(opps),
		TotalScored:        len(scored),
		AvgEVPercent:       averageEV(scored),
		BestEVPercent:      bestEV(scored),
		Recommendations:    recommendations,
		AllScored:          scored,
	}

	e.log.WithFields(logrus.Fields{
		"run_id":        report.RunID,
		"matchup":       report.Matchup,
		"opportunities": report.TotalOpportunities,
		"scored":        report.TotalScored,
		"recommended":   len(recommendations),
	}).Info("Analysis complete")

	metrics.RecordAnalysisDuration(time.Since(start).Seconds())
	return report, nil
}

func averageEV(scored []models.ScoredOpportunity) float64 {
	if len(scored) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scored {
		sum += s.EVPercent
	}
	return sum / float64(len(scored))
}

func bestEV(scored []models.ScoredOpportunity) float64 {
	if len(scored) == 0 {
		return 0
	}
	return scored[0].EVPercent // Rank sorts descending
}
